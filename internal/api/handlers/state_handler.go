package handlers

import (
	"net/http"

	"github.com/zatekoja/Schooldirectorydesign/backend/pkg/navigation"
)

// StateHandler resolves proposed navigation states for the client
type StateHandler struct{}

// NewStateHandler creates a new state handler
func NewStateHandler() *StateHandler {
	return &StateHandler{}
}

// ResolveState handles GET /api/state/resolve?page=...&school_id=...&q=...
// It answers with the normalized state the client should actually render.
func (h *StateHandler) ResolveState(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	resolved := navigation.Resolve(navigation.State{
		Page:        navigation.Page(params.Get("page")),
		SchoolID:    params.Get("school_id"),
		SearchQuery: params.Get("q"),
	})

	respondWithJSON(w, http.StatusOK, resolved)
}
