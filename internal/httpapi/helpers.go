package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"wikiquiz/internal/quizgen"
	"wikiquiz/internal/wikipedia"
)

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quizgen.ErrQuizNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Quiz not found"})
	case errors.Is(err, wikipedia.ErrUnsupportedURL):
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: wikipedia.ErrUnsupportedURL.Error()})
	default:
		// Generation failures carry actionable upstream context (scrape or
		// model errors), so the message is forwarded as the detail.
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: err.Error()})
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}
