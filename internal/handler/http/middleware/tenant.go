package middleware

import (
	"net/http"

	"github.com/glowlabs/salon-backend-go/internal/domain/user"
	"github.com/glowlabs/salon-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// RequireTenant rejects tokens that carry no tenant context. Every scheduling
// route is tenant scoped; a token without tenant_id can only hit the
// platform-level tenant management routes.
func RequireTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			response.HandleError(w, user.ErrTenantIDRequired)
			return
		}

		tenantID, ok := claims["tenant_id"].(string)
		if !ok || tenantID == "" {
			response.HandleError(w, user.ErrTenantIDRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
