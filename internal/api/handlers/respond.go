package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/zatekoja/Schooldirectorydesign/backend/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps an AppError to its HTTP status, hiding internal
// detail behind a generic message. Anything that is not an AppError is an
// internal error.
func respondWithAppError(w http.ResponseWriter, err error) {
	if appErr, ok := err.(*apperrors.AppError); ok {
		switch appErr.Type {
		case apperrors.ErrorTypeInternal, apperrors.ErrorTypeExternal:
			respondWithError(w, appErr.HTTPStatus(), "internal server error")
		default:
			respondWithError(w, appErr.HTTPStatus(), appErr.Message)
		}
		return
	}
	respondWithError(w, http.StatusInternalServerError, "internal server error")
}
