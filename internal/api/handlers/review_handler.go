package handlers

import (
	"net/http"
	"strconv"

	"github.com/zatekoja/Schooldirectorydesign/backend/internal/application/services"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/Schooldirectorydesign/backend/pkg/errors"
)

// ReviewHandler handles review-related HTTP requests
type ReviewHandler struct {
	reviewService *services.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// ListSchoolReviews handles GET /api/schools/{id}/reviews
func (h *ReviewHandler) ListSchoolReviews(w http.ResponseWriter, r *http.Request) {
	schoolID := r.PathValue("id")
	if schoolID == "" {
		respondWithError(w, http.StatusBadRequest, "school ID is required")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	reviews, err := h.reviewService.ListBySchool(r.Context(), schoolID, limit, offset)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondWithAppError(w, err)
			return
		}
		// Review fetch failures render as an empty list.
		observability.LoggerFromContext(r.Context()).Warn().Err(err).Str("school_id", schoolID).Msg("review list failed")
		reviews = []*entities.Review{}
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"reviews": reviews,
		"count":   len(reviews),
	})
}

// CreateReview handles POST /api/schools/{id}/reviews. Review authoring is
// not offered yet; the endpoint exists so clients get a stable answer
// instead of a routing 404.
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	respondWithError(w, http.StatusNotImplemented, "review submission is not available yet")
}
