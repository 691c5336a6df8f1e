package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/evalease/sentiment-service/internal/domain"
)

// missingTextMessage is the exact client-facing message for a request
// without usable text.
const missingTextMessage = "Missing 'text' in request body"

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// mapError translates domain sentinel errors to HTTP status codes.
// All mapping lives here so individual handlers stay concise.
func mapError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingText):
		respondError(w, http.StatusBadRequest, missingTextMessage)
	case errors.Is(err, domain.ErrBodyTooLarge):
		respondError(w, http.StatusRequestEntityTooLarge, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
