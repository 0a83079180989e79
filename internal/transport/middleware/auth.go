package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/ideamatcher-backend/internal/domain"
	"github.com/heartmarshall/ideamatcher-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Identity, string, error)
}

// Auth resolves the bearer token into the acting identity. Requests without
// a bearer token pass through anonymously; handlers decide whether that is
// acceptable.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			id, scope, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}
			ctx := ctxutil.WithIdentity(r.Context(), id)
			if scope != "" {
				ctx = ctxutil.WithScope(ctx, scope)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireService returns domain.ErrForbidden unless the caller presented a
// service-scoped token. Use in handlers, not as HTTP middleware.
func RequireService(ctx context.Context) error {
	if !ctxutil.IsServiceCtx(ctx) {
		return domain.ErrForbidden
	}
	return nil
}

// extractBearerToken reads the Authorization header. Browsers cannot set
// headers on a WebSocket handshake, so upgrade requests may pass the token
// as the access_token query parameter instead.
func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" && strings.EqualFold(r.Header.Get("Upgrade"), "websocket") {
		return strings.TrimSpace(r.URL.Query().Get("access_token"))
	}
	scheme, token, ok := strings.Cut(auth, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
