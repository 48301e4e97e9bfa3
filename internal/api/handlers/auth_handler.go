package handlers

import (
	"net/http"

	"github.com/zatekoja/Schooldirectorydesign/backend/internal/api/middleware"
)

// AuthHandler serves identity information for the current session
type AuthHandler struct{}

// NewAuthHandler creates a new auth handler
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Me handles GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		respondWithError(w, http.StatusUnauthorized, "not signed in")
		return
	}
	respondWithJSON(w, http.StatusOK, identity)
}
