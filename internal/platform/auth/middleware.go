package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/svitanok-centre/site/internal/platform/httpx"
)

type contextKey string

const identityContextKey contextKey = "github.com/svitanok-centre/site/internal/platform/auth/identity"

// WithIdentity stores the caller identity on the context.
func WithIdentity(ctx context.Context, identity Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, identity)
}

// IdentityFromContext retrieves the caller identity when present.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	identity, ok := ctx.Value(identityContextKey).(Identity)
	return identity, ok
}

// RequireAdmin authenticates the bearer token and authorises only the
// configured administrator address. The rule is an exact, case-insensitive
// email match; there is no role system.
func RequireAdmin(verifier TokenVerifier, adminEmail string) func(http.Handler) http.Handler {
	adminEmail = strings.ToLower(strings.TrimSpace(adminEmail))
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			token := bearerToken(r)
			if token == "" {
				httpx.WriteError(ctx, w, httpx.NewError("unauthenticated", "missing bearer token", http.StatusUnauthorized))
				return
			}
			identity, err := verifier.VerifyIDToken(ctx, token)
			if err != nil {
				httpx.WriteError(ctx, w, httpx.NewError("unauthenticated", "invalid or expired token", http.StatusUnauthorized))
				return
			}
			if adminEmail == "" || !strings.EqualFold(identity.Email, adminEmail) {
				httpx.WriteError(ctx, w, httpx.NewError("forbidden", "administrator access required", http.StatusForbidden))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(ctx, identity)))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
