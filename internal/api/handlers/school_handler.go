package handlers

import (
	"net/http"
	"strconv"

	"github.com/zatekoja/Schooldirectorydesign/backend/internal/application/services"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/domain/entities"
	"github.com/zatekoja/Schooldirectorydesign/backend/internal/infrastructure/observability"
	apperrors "github.com/zatekoja/Schooldirectorydesign/backend/pkg/errors"
	"github.com/zatekoja/Schooldirectorydesign/backend/pkg/stars"
)

// SchoolHandler handles school-related HTTP requests
type SchoolHandler struct {
	schoolService *services.SchoolService
}

// NewSchoolHandler creates a new school handler
func NewSchoolHandler(schoolService *services.SchoolService) *SchoolHandler {
	return &SchoolHandler{schoolService: schoolService}
}

// parseSearchRequest reads the filter panel state from query parameters.
// Malformed numeric values default to zero rather than failing the request.
func parseSearchRequest(r *http.Request) services.SearchRequest {
	params := r.URL.Query()

	minRating, _ := strconv.ParseFloat(params.Get("min_rating"), 64)
	limit, _ := strconv.Atoi(params.Get("limit"))

	return services.SearchRequest{
		Text:        params.Get("q"),
		SchoolTypes: params["type"],
		GradeLevel:  params.Get("grade_level"),
		MinRating:   minRating,
		SortBy:      params.Get("sort"),
		Limit:       limit,
	}
}

// schoolListPayload is the shared list/search/suggest response shape.
type schoolListPayload struct {
	Schools []*entities.School `json:"schools"`
	Count   int                `json:"count"`
	Tag     string             `json:"tag,omitempty"`
}

// ListSchools handles GET /api/schools
func (h *SchoolHandler) ListSchools(w http.ResponseWriter, r *http.Request) {
	query := services.BuildSchoolQuery(parseSearchRequest(r))

	schools, err := h.schoolService.List(r.Context(), query)
	if err != nil {
		// A failed fetch renders as zero matches, not an error page.
		observability.LoggerFromContext(r.Context()).Warn().Err(err).Msg("school list failed")
		schools = []*entities.School{}
	}

	respondWithJSON(w, http.StatusOK, schoolListPayload{Schools: schools, Count: len(schools)})
}

// SearchSchools handles GET /api/schools/search
func (h *SchoolHandler) SearchSchools(w http.ResponseWriter, r *http.Request) {
	query := services.BuildSchoolQuery(parseSearchRequest(r))

	schools, err := h.schoolService.Search(r.Context(), query)
	if err != nil {
		observability.LoggerFromContext(r.Context()).Warn().Err(err).Msg("school search failed")
		schools = []*entities.School{}
	}

	respondWithJSON(w, http.StatusOK, schoolListPayload{Schools: schools, Count: len(schools)})
}

// SuggestSchools handles GET /api/schools/suggest. The client sends an
// opaque tag with each keystroke's request and drops any response whose
// echoed tag is not the latest one it issued.
func (h *SchoolHandler) SuggestSchools(w http.ResponseWriter, r *http.Request) {
	tag := r.URL.Query().Get("tag")

	schools, err := h.schoolService.Suggest(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		observability.LoggerFromContext(r.Context()).Warn().Err(err).Msg("school suggest failed")
		schools = []*entities.School{}
	}

	respondWithJSON(w, http.StatusOK, schoolListPayload{Schools: schools, Count: len(schools), Tag: tag})
}

// GetSchool handles GET /api/schools/{id}
func (h *SchoolHandler) GetSchool(w http.ResponseWriter, r *http.Request) {
	schoolID := r.PathValue("id")
	if schoolID == "" {
		respondWithError(w, http.StatusBadRequest, "school ID is required")
		return
	}

	school, err := h.schoolService.GetByID(r.Context(), schoolID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			respondWithJSON(w, http.StatusNotFound, map[string]string{
				"error": "school not found",
				"hint":  "it may have been removed; try searching the directory",
			})
			return
		}
		respondWithAppError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"school":        school,
		"overall_stars": stars.Slice(school.Ratings.Overall),
	})
}
