package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"wikiquiz/internal/quizgen"
)

// Quiz generation scrapes an article and waits on a language model, so the
// per-request timeout is generous.
const requestTimeout = 90 * time.Second

func NewRouter(service *quizgen.Service) http.Handler {
	api := NewAPI(service)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", api.HandleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate-quiz", api.HandleGenerateQuiz)
		r.Get("/quizzes", api.HandleListQuizzes)
		r.Get("/quizzes/{quizID}", api.HandleGetQuiz)
		r.Delete("/quizzes/{quizID}", api.HandleDeleteQuiz)
	})

	return r
}
