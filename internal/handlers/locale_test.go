package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domain "github.com/svitanok-centre/site/internal/domain"
	"github.com/svitanok-centre/site/internal/platform/requestctx"
)

func resolveThroughMiddleware(t *testing.T, target string, header string) domain.Lang {
	t.Helper()
	var got domain.Lang
	handler := LocaleMiddleware(domain.LangUA)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = requestctx.Lang(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	if header != "" {
		req.Header.Set("Accept-Language", header)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestLocaleMiddleware_QueryParamWins(t *testing.T) {
	if got := resolveThroughMiddleware(t, "/news?lang=en", "uk-UA"); got != domain.LangEN {
		t.Fatalf("lang = %s", got)
	}
}

func TestLocaleMiddleware_UkQueryMapsToUA(t *testing.T) {
	if got := resolveThroughMiddleware(t, "/news?lang=uk", ""); got != domain.LangUA {
		t.Fatalf("lang = %s", got)
	}
}

func TestLocaleMiddleware_AcceptLanguageHeader(t *testing.T) {
	if got := resolveThroughMiddleware(t, "/news", "en-GB,en;q=0.9"); got != domain.LangEN {
		t.Fatalf("lang = %s", got)
	}
	if got := resolveThroughMiddleware(t, "/news", "uk-UA,uk;q=0.9,en;q=0.5"); got != domain.LangUA {
		t.Fatalf("lang = %s", got)
	}
}

func TestLocaleMiddleware_DefaultWhenUnrecognized(t *testing.T) {
	if got := resolveThroughMiddleware(t, "/news?lang=fr", "not a header;;;"); got != domain.LangUA {
		t.Fatalf("lang = %s", got)
	}
	if got := resolveThroughMiddleware(t, "/news", ""); got != domain.LangUA {
		t.Fatalf("lang = %s", got)
	}
}
