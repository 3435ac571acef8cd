package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"wikiquiz/internal/llm"
	"wikiquiz/internal/quizgen"
	"wikiquiz/internal/wikipedia"
)

type stubRepo struct {
	quizzes map[string]quizgen.WikiQuiz

	saveCalls   int
	deleteCalls int
}

func newStubRepo() *stubRepo {
	return &stubRepo{quizzes: make(map[string]quizgen.WikiQuiz)}
}

func (s *stubRepo) SaveQuiz(_ context.Context, quiz quizgen.WikiQuiz) error {
	s.saveCalls++
	s.quizzes[quiz.ID] = quiz
	return nil
}

func (s *stubRepo) GetQuiz(_ context.Context, quizID string) (quizgen.WikiQuiz, error) {
	quiz, ok := s.quizzes[quizID]
	if !ok {
		return quizgen.WikiQuiz{}, quizgen.ErrQuizNotFound
	}
	return quiz, nil
}

func (s *stubRepo) GetQuizByURL(_ context.Context, url string) (quizgen.WikiQuiz, error) {
	for _, quiz := range s.quizzes {
		if quiz.URL == url {
			return quiz, nil
		}
	}
	return quizgen.WikiQuiz{}, quizgen.ErrQuizNotFound
}

func (s *stubRepo) ListQuizzes(_ context.Context, limit int) ([]quizgen.QuizSummary, error) {
	out := make([]quizgen.QuizSummary, 0, len(s.quizzes))
	for _, quiz := range s.quizzes {
		out = append(out, quizgen.QuizSummary{ID: quiz.ID, URL: quiz.URL, Title: quiz.Title, CreatedAt: quiz.CreatedAt})
	}
	return out, nil
}

func (s *stubRepo) DeleteQuiz(_ context.Context, quizID string) error {
	s.deleteCalls++
	if _, ok := s.quizzes[quizID]; !ok {
		return quizgen.ErrQuizNotFound
	}
	delete(s.quizzes, quizID)
	return nil
}

type stubGenerator struct{}

func (stubGenerator) GenerateQuiz(_ context.Context, title, articleText string) ([]llm.RawQuestion, error) {
	return []llm.RawQuestion{
		{
			Question:    "Who designed Go?",
			Options:     []string{"Google", "Oracle", "Microsoft", "IBM"},
			Answer:      "Google",
			Explanation: "Go was designed at Google.",
			Difficulty:  "easy",
		},
	}, nil
}

func (stubGenerator) GenerateRelatedTopics(_ context.Context, title, summary string) []string {
	return []string{"Computing"}
}

func stubFetcher(ctx context.Context, url string) (wikipedia.Article, error) {
	if !strings.HasPrefix(url, "https://en.wikipedia.org/wiki/") {
		return wikipedia.Article{}, wikipedia.ErrUnsupportedURL
	}
	return wikipedia.Article{
		URL:      url,
		Title:    "Go (programming language)",
		Summary:  "Go is a programming language.",
		Sections: []string{"History"},
		BodyText: "Go is a programming language designed at Google.",
	}, nil
}

func newTestRouter(t *testing.T) (http.Handler, *stubRepo) {
	t.Helper()

	repo := newStubRepo()
	service := quizgen.NewService(repo, stubFetcher, stubGenerator{})
	return NewRouter(service), repo
}

func TestHandleGenerateQuizCreatesQuiz(t *testing.T) {
	router, repo := newTestRouter(t)

	body := bytes.NewBufferString(`{"url":"https://en.wikipedia.org/wiki/Go_(programming_language)"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}

	var payload quizgen.WikiQuiz
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.ID == "" || payload.Title != "Go (programming language)" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if len(payload.Questions) != 1 || payload.Questions[0].Answer != "Google" {
		t.Fatalf("unexpected questions: %+v", payload.Questions)
	}
	if repo.saveCalls != 1 {
		t.Fatalf("saveCalls = %d, want 1", repo.saveCalls)
	}
}

func TestHandleGenerateQuizRejectsUnsupportedURL(t *testing.T) {
	router, _ := newTestRouter(t)

	body := bytes.NewBufferString(`{"url":"https://example.com/article"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var payload errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !strings.Contains(payload.Detail, "Wikipedia") {
		t.Fatalf("detail = %q", payload.Detail)
	}
}

func TestHandleGenerateQuizRejectsMissingURL(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", bytes.NewBufferString(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleListQuizzes(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.quizzes["quiz-1"] = quizgen.WikiQuiz{
		ID:        "quiz-1",
		URL:       "https://en.wikipedia.org/wiki/Go",
		Title:     "Go",
		CreatedAt: time.Unix(1700000000, 0).UTC(),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/quizzes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var payload []quizgen.QuizSummary
	if err := json.NewDecoder(rec.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(payload) != 1 || payload[0].ID != "quiz-1" {
		t.Fatalf("unexpected listing: %+v", payload)
	}
}

func TestHandleGetQuizNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/quizzes/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if !strings.Contains(rec.Body.String(), "Quiz not found") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestHandleDeleteQuiz(t *testing.T) {
	router, repo := newTestRouter(t)
	repo.quizzes["quiz-1"] = quizgen.WikiQuiz{ID: "quiz-1"}

	req := httptest.NewRequest(http.MethodDelete, "/api/quizzes/quiz-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}

	req = httptest.NewRequest(http.MethodDelete, "/api/quizzes/quiz-1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("repeat delete status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
