package handlers

import (
	"net/http"
	"strings"

	"github.com/zatekoja/Schooldirectorydesign/backend/internal/application/services"
	"github.com/zatekoja/Schooldirectorydesign/backend/pkg/stars"
)

// CompareHandler handles side-by-side comparison requests
type CompareHandler struct {
	comparisonService *services.ComparisonService
}

// NewCompareHandler creates a new compare handler
func NewCompareHandler(comparisonService *services.ComparisonService) *CompareHandler {
	return &CompareHandler{comparisonService: comparisonService}
}

// CompareSchools handles GET /api/schools/compare?ids=a,b,c
func (h *CompareHandler) CompareSchools(w http.ResponseWriter, r *http.Request) {
	ids := splitIDs(r.URL.Query().Get("ids"))
	if len(ids) == 0 {
		respondWithError(w, http.StatusBadRequest, "ids parameter is required")
		return
	}

	result, err := h.comparisonService.Compare(r.Context(), ids)
	if err != nil {
		respondWithAppError(w, err)
		return
	}

	// Each column carries its rendered overall stars so the compare view
	// shares the detail page's renderer.
	overallStars := make(map[string][]string, len(result.Schools))
	for _, school := range result.Schools {
		overallStars[school.ID] = stars.Slice(school.Ratings.Overall)
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"schools":       result.Schools,
		"highlights":    result.Highlights,
		"overall_stars": overallStars,
		"count":         len(result.Schools),
	})
}

func splitIDs(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}
