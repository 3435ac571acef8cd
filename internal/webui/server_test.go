package webui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"wikiquiz/internal/quiz"
	"wikiquiz/internal/quizclient"
)

type fakeBackend struct {
	quizzes map[string]quiz.Quiz
	entries []quiz.HistoryEntry

	generateErr error
	listErr     error
	getErr      error
	deleteErr   error

	generateCalls int
	listCalls     int
	getCalls      int
	deleteCalls   int
}

func (f *fakeBackend) GenerateQuiz(ctx context.Context, articleURL string) (quiz.Quiz, error) {
	f.generateCalls++
	if f.generateErr != nil {
		return quiz.Quiz{}, f.generateErr
	}
	return quiz.Quiz{
		ID:    "generated-1",
		URL:   articleURL,
		Title: "Generated Title",
		Questions: []quiz.Question{
			{Text: "Q1", Options: []string{"A", "X"}, Answer: "A"},
		},
		CreatedAt: time.Now(),
	}, nil
}

func (f *fakeBackend) ListQuizzes(ctx context.Context) ([]quiz.HistoryEntry, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.entries, nil
}

func (f *fakeBackend) GetQuiz(ctx context.Context, quizID string) (quiz.Quiz, error) {
	f.getCalls++
	if f.getErr != nil {
		return quiz.Quiz{}, f.getErr
	}
	q, ok := f.quizzes[quizID]
	if !ok {
		return quiz.Quiz{}, &quizclient.APIError{StatusCode: http.StatusNotFound, Detail: "Quiz not found"}
	}
	return q, nil
}

func (f *fakeBackend) DeleteQuiz(ctx context.Context, quizID string) error {
	f.deleteCalls++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	kept := f.entries[:0]
	for _, entry := range f.entries {
		if entry.ID != quizID {
			kept = append(kept, entry)
		}
	}
	f.entries = kept
	return nil
}

func takeableQuiz() quiz.Quiz {
	return quiz.Quiz{
		ID:    "quiz-1",
		URL:   "https://en.wikipedia.org/wiki/Go",
		Title: "Go",
		Questions: []quiz.Question{
			{Text: "Q1", Options: []string{"A", "X"}, Answer: "A"},
			{Text: "Q2", Options: []string{"B", "X"}, Answer: "B"},
		},
	}
}

func newTestServer(backend *fakeBackend) http.Handler {
	return NewServer(backend, false).Router()
}

func getPage(t *testing.T, handler http.Handler) string {
	t.Helper()
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))
	if recorder.Code != http.StatusOK {
		t.Fatalf("GET / status = %d", recorder.Code)
	}
	return recorder.Body.String()
}

func postIntent(t *testing.T, handler http.Handler, name string, form url.Values) {
	t.Helper()
	request := httptest.NewRequest(http.MethodPost, "/intent/"+name, strings.NewReader(form.Encode()))
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusSeeOther {
		t.Fatalf("POST /intent/%s status = %d, want %d", name, recorder.Code, http.StatusSeeOther)
	}
	if location := recorder.Header().Get("Location"); location != "/" {
		t.Fatalf("redirect location = %q, want /", location)
	}
}

func TestHomeRendersGenerateTab(t *testing.T) {
	handler := newTestServer(&fakeBackend{})

	page := getPage(t, handler)
	if !strings.Contains(page, "Generate quiz") {
		t.Fatalf("generate form missing:\n%s", page)
	}
	if !strings.Contains(page, "/intent/switch-tab") {
		t.Fatalf("tab controls missing")
	}
}

func TestGenerateRendersQuiz(t *testing.T) {
	backend := &fakeBackend{}
	handler := newTestServer(backend)

	postIntent(t, handler, "generate", url.Values{"url": {"https://en.wikipedia.org/wiki/Go"}})

	if backend.generateCalls != 1 {
		t.Fatalf("generateCalls = %d, want 1", backend.generateCalls)
	}
	page := getPage(t, handler)
	if !strings.Contains(page, "Generated Title") {
		t.Fatalf("generated quiz missing:\n%s", page)
	}
}

func TestGenerateRejectsBadURLLocally(t *testing.T) {
	backend := &fakeBackend{}
	handler := newTestServer(backend)

	postIntent(t, handler, "generate", url.Values{"url": {"https://example.com/page"}})

	if backend.generateCalls != 0 {
		t.Fatalf("backend must not be called for an invalid URL")
	}
	page := getPage(t, handler)
	if !strings.Contains(page, "valid Wikipedia article URL") {
		t.Fatalf("validation notice missing:\n%s", page)
	}

	// The notice is one-shot.
	page = getPage(t, handler)
	if strings.Contains(page, "valid Wikipedia article URL") {
		t.Fatalf("notice should be consumed by the first render")
	}
}

func TestGenerateSurfacesBackendDetail(t *testing.T) {
	backend := &fakeBackend{
		generateErr: &quizclient.APIError{StatusCode: http.StatusInternalServerError, Detail: "Error generating quiz"},
	}
	handler := newTestServer(backend)

	postIntent(t, handler, "generate", url.Values{"url": {"https://en.wikipedia.org/wiki/Go"}})

	page := getPage(t, handler)
	if !strings.Contains(page, "Error generating quiz") {
		t.Fatalf("backend detail missing from notice:\n%s", page)
	}
}

func TestHistoryLoadsLazilyAndCaches(t *testing.T) {
	backend := &fakeBackend{
		entries: []quiz.HistoryEntry{{ID: "quiz-1", Title: "Go", URL: "u", CreatedAt: time.Now()}},
	}
	handler := newTestServer(backend)

	// Generate tab does not touch the listing.
	getPage(t, handler)
	if backend.listCalls != 0 {
		t.Fatalf("listing fetched before the history tab was opened")
	}

	postIntent(t, handler, "switch-tab", url.Values{"tab": {"history"}})
	page := getPage(t, handler)
	if backend.listCalls != 1 {
		t.Fatalf("listCalls = %d, want 1", backend.listCalls)
	}
	if !strings.Contains(page, "Go") {
		t.Fatalf("history row missing:\n%s", page)
	}

	// Cached on the next render.
	getPage(t, handler)
	if backend.listCalls != 1 {
		t.Fatalf("listCalls = %d after cached render, want 1", backend.listCalls)
	}

	postIntent(t, handler, "refresh-history", nil)
	if backend.listCalls != 2 {
		t.Fatalf("listCalls = %d after refresh, want 2", backend.listCalls)
	}
}

func TestHistoryFailureKeepsPreviousListing(t *testing.T) {
	backend := &fakeBackend{
		entries: []quiz.HistoryEntry{{ID: "quiz-1", Title: "Go", URL: "u", CreatedAt: time.Now()}},
	}
	handler := newTestServer(backend)

	postIntent(t, handler, "switch-tab", url.Values{"tab": {"history"}})
	getPage(t, handler)

	backend.listErr = quizclient.ErrServiceUnavailable
	postIntent(t, handler, "refresh-history", nil)

	page := getPage(t, handler)
	if !strings.Contains(page, "unreachable") {
		t.Fatalf("service notice missing:\n%s", page)
	}
	if !strings.Contains(page, "Go") {
		t.Fatalf("previous listing should survive a failed refresh:\n%s", page)
	}
}

func TestTakeQuizFlow(t *testing.T) {
	backend := &fakeBackend{quizzes: map[string]quiz.Quiz{"quiz-1": takeableQuiz()}}
	handler := newTestServer(backend)

	postIntent(t, handler, "take-quiz", url.Values{"id": {"quiz-1"}})
	page := getPage(t, handler)
	if !strings.Contains(page, "/intent/select-option") {
		t.Fatalf("interactive quiz missing:\n%s", page)
	}

	postIntent(t, handler, "select-option", url.Values{"question": {"0"}, "option": {"A"}})
	postIntent(t, handler, "select-option", url.Values{"question": {"1"}, "option": {"X"}})
	postIntent(t, handler, "submit", nil)

	page = getPage(t, handler)
	if !strings.Contains(page, "Score: 1 / 2") {
		t.Fatalf("score missing after submit:\n%s", page)
	}

	postIntent(t, handler, "close-modal", nil)
	page = getPage(t, handler)
	if strings.Contains(page, "Score: 1 / 2") {
		t.Fatalf("modal should be gone after close:\n%s", page)
	}
}

func TestViewDetailsShowsAnswerKey(t *testing.T) {
	backend := &fakeBackend{quizzes: map[string]quiz.Quiz{"quiz-1": takeableQuiz()}}
	handler := newTestServer(backend)

	postIntent(t, handler, "view-details", url.Values{"id": {"quiz-1"}})
	page := getPage(t, handler)
	if !strings.Contains(page, "correct answer") {
		t.Fatalf("detail modal should mark the answer key:\n%s", page)
	}
	if strings.Contains(page, "/intent/select-option") {
		t.Fatalf("detail modal must not be interactive")
	}
}

func TestViewDetailsMissingQuiz(t *testing.T) {
	backend := &fakeBackend{quizzes: map[string]quiz.Quiz{}}
	handler := newTestServer(backend)

	postIntent(t, handler, "view-details", url.Values{"id": {"missing"}})
	page := getPage(t, handler)
	if !strings.Contains(page, "Quiz not found") {
		t.Fatalf("not-found notice missing:\n%s", page)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	backend := &fakeBackend{
		entries: []quiz.HistoryEntry{{ID: "quiz-1", Title: "Go", URL: "u", CreatedAt: time.Now()}},
	}
	handler := newTestServer(backend)

	postIntent(t, handler, "switch-tab", url.Values{"tab": {"history"}})
	postIntent(t, handler, "delete", url.Values{"id": {"quiz-1"}})

	if backend.deleteCalls != 0 {
		t.Fatalf("delete must wait for confirmation")
	}
	page := getPage(t, handler)
	if !strings.Contains(page, "Confirm delete") {
		t.Fatalf("confirmation control missing:\n%s", page)
	}

	listCallsBefore := backend.listCalls
	postIntent(t, handler, "confirm-delete", url.Values{"id": {"quiz-1"}})
	if backend.deleteCalls != 1 {
		t.Fatalf("deleteCalls = %d, want 1", backend.deleteCalls)
	}
	// The listing comes back from the backend, not from local filtering.
	if backend.listCalls != listCallsBefore+1 {
		t.Fatalf("listCalls = %d, want %d: successful delete must re-fetch the listing", backend.listCalls, listCallsBefore+1)
	}
	page = getPage(t, handler)
	if !strings.Contains(page, "quiz deleted") {
		t.Fatalf("deletion notice missing:\n%s", page)
	}
	if !strings.Contains(page, "No quizzes generated yet") {
		t.Fatalf("row should be gone from the listing:\n%s", page)
	}
}

func TestDeleteFailureKeepsRow(t *testing.T) {
	backend := &fakeBackend{
		entries:   []quiz.HistoryEntry{{ID: "quiz-1", Title: "Go", URL: "u", CreatedAt: time.Now()}},
		deleteErr: quizclient.ErrServiceUnavailable,
	}
	handler := newTestServer(backend)

	postIntent(t, handler, "switch-tab", url.Values{"tab": {"history"}})
	getPage(t, handler)
	postIntent(t, handler, "delete", url.Values{"id": {"quiz-1"}})
	postIntent(t, handler, "confirm-delete", url.Values{"id": {"quiz-1"}})

	page := getPage(t, handler)
	if !strings.Contains(page, "unreachable") {
		t.Fatalf("failure notice missing:\n%s", page)
	}
	if !strings.Contains(page, "Go") {
		t.Fatalf("row must survive a failed delete:\n%s", page)
	}
	if backend.listCalls != 1 {
		t.Fatalf("failed delete must not trigger a refresh, listCalls = %d", backend.listCalls)
	}
}

func TestHomeReportsRenderFailure(t *testing.T) {
	server := NewServer(&fakeBackend{}, false)
	// A detail modal with no quiz loaded cannot be rendered.
	server.modal = modalDetail
	handler := server.Router()

	page := getPage(t, handler)
	if !strings.Contains(page, "could not be rendered") {
		t.Fatalf("render failure notice missing:\n%s", page)
	}
	if strings.Contains(page, `class="overlay"`) {
		t.Fatalf("broken modal must not open:\n%s", page)
	}
}

func TestUnknownIntent(t *testing.T) {
	handler := newTestServer(&fakeBackend{})

	request := httptest.NewRequest(http.MethodPost, "/intent/nope", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("unknown intent status = %d, want 404", recorder.Code)
	}
}
