package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/sitebazaar/sitebazaar-api/internal/usecase"
)

type errorResponse struct {
	Error  string                    `json:"error"`
	Fields []usecase.ValidationError `json:"fields,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// respondError maps the domain error taxonomy onto HTTP statuses.
// Technical errors are logged with their cause and surfaced as a
// generic 500, no storage detail included.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case usecase.IsValidation(err):
		resp := errorResponse{Error: err.Error()}
		var ve usecase.ValidationErrors
		if asValidationErrors(err, &ve) {
			resp.Fields = ve
		}
		respondJSON(w, http.StatusUnprocessableEntity, resp)
	case usecase.IsNotFound(err):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case usecase.IsForbidden(err):
		respondJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case usecase.IsConflict(err):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		log.Printf("[http] internal error: %+v", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func asValidationErrors(err error, target *usecase.ValidationErrors) bool {
	ve, ok := err.(usecase.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}
