package handlers

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"

	domain "github.com/svitanok-centre/site/internal/domain"
	"github.com/svitanok-centre/site/internal/platform/requestctx"
)

// supportedLangs drives the Accept-Language matcher. Ukrainian first so it
// wins ties and wildcard headers.
var supportedLangs = language.NewMatcher([]language.Tag{
	language.Ukrainian,
	language.English,
})

// LocaleMiddleware resolves the content language for the request and stores
// it on the context. An explicit ?lang= beats the Accept-Language header;
// anything unrecognised falls back to the configured default.
func LocaleMiddleware(defaultLang domain.Lang) func(http.Handler) http.Handler {
	if defaultLang != domain.LangUA && defaultLang != domain.LangEN {
		defaultLang = domain.LangUA
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := resolveLang(r, defaultLang)
			next.ServeHTTP(w, r.WithContext(requestctx.WithLang(r.Context(), lang)))
		})
	}
}

func resolveLang(r *http.Request, defaultLang domain.Lang) domain.Lang {
	switch strings.ToLower(strings.TrimSpace(r.URL.Query().Get("lang"))) {
	case string(domain.LangUA), "uk":
		return domain.LangUA
	case string(domain.LangEN):
		return domain.LangEN
	}

	header := r.Header.Get("Accept-Language")
	if header == "" {
		return defaultLang
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return defaultLang
	}
	tag, _, conf := supportedLangs.Match(tags...)
	if conf == language.No {
		return defaultLang
	}
	base, _ := tag.Base()
	if base.String() == "uk" {
		return domain.LangUA
	}
	return domain.LangEN
}
