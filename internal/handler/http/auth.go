package http

import (
	"net/http"

	"github.com/glowlabs/salon-backend-go/internal/handler/http/response"
	"github.com/glowlabs/salon-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	jwtService jwt.Service
}

func NewAuthHandler(jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{jwtService: jwtService}
}

// Logout revokes the bearer token so it stops passing auth before it expires.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if raw := jwtauth.TokenFromHeader(r); raw != "" {
		h.jwtService.RevokeToken(raw)
	}
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}
