package auth

import (
	"log/slog"
	"net/http"

	"github.com/hannahsm1th/art-gallery-api/internal/rbac"
)

// Middleware resolves Basic credentials to a principal in the request
// context. Requests with no or invalid credentials proceed anonymously;
// the per-route permission gates decide what an anonymous caller may do,
// so authentication failure never reveals more than a gate denial would.
func (s *Service) Middleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, password, ok := r.BasicAuth()
			if !ok {
				next.ServeHTTP(w, r)
				return
			}
			principal, err := s.Authenticate(r.Context(), email, password)
			if err != nil {
				if logger != nil {
					logger.Debug("basic auth failed", slog.String("email", email))
				}
				next.ServeHTTP(w, r)
				return
			}
			ctx := rbac.ContextWithPrincipal(r.Context(), principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
