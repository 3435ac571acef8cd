// Package webui serves the quiz front end. All state for the single user
// lives in the Server behind one mutex: the active tab, the last generated
// quiz, the cached history listing and the current attempt. Every user action
// arrives as a POST to /intent/{name} and redirects back to GET /, which
// re-renders the whole page from that state.
package webui

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"wikiquiz/internal/quiz"
	"wikiquiz/internal/quizclient"
)

// Backend is the surface of the quiz-generation service the UI talks to.
type Backend interface {
	GenerateQuiz(ctx context.Context, articleURL string) (quiz.Quiz, error)
	ListQuizzes(ctx context.Context) ([]quiz.HistoryEntry, error)
	GetQuiz(ctx context.Context, quizID string) (quiz.Quiz, error)
	DeleteQuiz(ctx context.Context, quizID string) error
}

const (
	tabGenerate = "generate"
	tabHistory  = "history"
)

type modal int

const (
	modalNone modal = iota
	modalDetail
	modalTake
)

type Server struct {
	backend Backend

	mu            sync.Mutex
	tab           string
	articleURL    string
	generating    bool
	current       *quiz.Quiz
	detail        *quiz.Quiz
	modal         modal
	session       *quiz.Session
	history       []quiz.HistoryEntry
	historyLoaded bool
	pendingDelete string
	// notice is a one-shot message consumed by the next page render.
	notice string

	intents map[string]func(*http.Request)
}

func NewServer(backend Backend, requireAllAnswered bool) *Server {
	s := &Server{
		backend: backend,
		tab:     tabGenerate,
		session: quiz.NewSession(requireAllAnswered),
	}
	s.intents = map[string]func(*http.Request){
		"generate":        s.intentGenerate,
		"switch-tab":      s.intentSwitchTab,
		"refresh-history": s.intentRefreshHistory,
		"view-details":    s.intentViewDetails,
		"take-quiz":       s.intentTakeQuiz,
		"select-option":   s.intentSelectOption,
		"submit":          s.intentSubmit,
		"reset":           s.intentReset,
		"close-modal":     s.intentCloseModal,
		"delete":          s.intentDelete,
		"confirm-delete":  s.intentConfirmDelete,
	}
	return s
}

// Router builds the HTTP handler for the front end.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	// Quiz generation rides on this request, and the LLM can be slow.
	r.Use(middleware.Timeout(120 * time.Second))

	r.Get("/", s.handleHome)
	r.Post("/intent/{name}", s.handleIntent)

	return r
}

// setNotice stores a one-shot message for the next render. Caller holds mu.
func (s *Server) setNotice(message string) {
	s.notice = message
}

// humanMessage maps an internal error to the message shown to the user.
func humanMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, quiz.ErrEmptyURL), errors.Is(err, quiz.ErrNotWikipediaURL):
		return err.Error()
	case errors.Is(err, quizclient.ErrServiceUnavailable):
		return "the quiz service is unreachable; please try again shortly"
	case errors.Is(err, quiz.ErrUnanswered):
		return err.Error()
	}

	var apiErr *quizclient.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	var shapeErr *quiz.DataShapeError
	if errors.As(err, &shapeErr) {
		return "the quiz came back malformed; try generating it again"
	}
	return "something went wrong; please try again"
}

func normalizeTab(tab string) string {
	if tab == tabHistory {
		return tabHistory
	}
	return tabGenerate
}

func formID(r *http.Request) string {
	return strings.TrimSpace(r.FormValue("id"))
}
