package handler

import (
	"encoding/json"
	"net/http"

	"doc-processor/internal/domain"
	apperrors "doc-processor/pkg/errors"
)

type contextKey string

const userContextKey contextKey = "user"

// GetUserFromContext extracts the authenticated user from request context
func GetUserFromContext(r *http.Request) (*domain.AuthenticatedUser, bool) {
	user, ok := r.Context().Value(userContextKey).(*domain.AuthenticatedUser)
	return user, ok
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeServiceError maps a service error onto an HTTP response, surfacing
// the original message so clients see actionable detail.
func writeServiceError(w http.ResponseWriter, err error) {
	writeError(w, apperrors.GetStatusCode(err), err.Error())
}
