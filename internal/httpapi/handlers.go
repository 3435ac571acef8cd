package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

func (a *API) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

func (a *API) HandleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	if a.service == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "quiz service unavailable"})
		return
	}

	defer r.Body.Close()

	var request generateQuizRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid JSON body"})
		return
	}
	if strings.TrimSpace(request.URL) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "url is required"})
		return
	}

	quiz, err := a.service.Generate(r.Context(), request.URL)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, quiz)
}

func (a *API) HandleListQuizzes(w http.ResponseWriter, r *http.Request) {
	if a.service == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "quiz service unavailable"})
		return
	}

	summaries, err := a.service.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "failed to list quizzes"})
		return
	}

	writeJSON(w, http.StatusOK, summaries)
}

func (a *API) HandleGetQuiz(w http.ResponseWriter, r *http.Request) {
	if a.service == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "quiz service unavailable"})
		return
	}

	quiz, err := a.service.Get(r.Context(), chi.URLParam(r, "quizID"))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, quiz)
}

func (a *API) HandleDeleteQuiz(w http.ResponseWriter, r *http.Request) {
	if a.service == nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "quiz service unavailable"})
		return
	}

	if err := a.service.Delete(r.Context(), chi.URLParam(r, "quizID")); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
