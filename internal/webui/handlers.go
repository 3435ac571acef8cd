package webui

import (
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"wikiquiz/internal/quiz"
	"wikiquiz/internal/render"
)

type pageData struct {
	Tab        string
	Notice     string
	ArticleURL string
	Generating bool

	Quiz    template.HTML
	History template.HTML

	ModalOpen bool
	Modal     template.HTML
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	needHistory := s.tab == tabHistory && !s.historyLoaded
	s.mu.Unlock()
	if needHistory {
		s.loadHistory(r)
	}

	s.mu.Lock()
	data := pageData{
		Tab:        s.tab,
		Notice:     s.notice,
		ArticleURL: s.articleURL,
		Generating: s.generating,
	}
	s.notice = ""

	renderFailed := false
	if s.current != nil {
		if html, err := render.RenderQuiz(s.current, render.ModeSummary, nil); err == nil {
			data.Quiz = html
		} else {
			renderFailed = true
		}
	}
	if html, err := render.RenderHistory(s.history, s.pendingDelete); err == nil {
		data.History = html
	} else {
		renderFailed = true
	}
	switch s.modal {
	case modalDetail:
		if html, err := render.RenderQuiz(s.detail, render.ModeDetail, nil); err == nil {
			data.ModalOpen = true
			data.Modal = html
		} else {
			renderFailed = true
		}
	case modalTake:
		if html, err := render.RenderQuiz(s.session.Quiz(), render.ModeInteractive, s.session); err == nil {
			data.ModalOpen = true
			data.Modal = html
		} else {
			renderFailed = true
		}
	}
	if renderFailed && data.Notice == "" {
		data.Notice = "part of the page could not be rendered; please try again"
	}
	s.mu.Unlock()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		http.Error(w, "render failed", http.StatusInternalServerError)
	}
}

func (s *Server) handleIntent(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	name := chi.URLParam(r, "name")
	handler, ok := s.intents[name]
	if !ok {
		http.NotFound(w, r)
		return
	}
	handler(r)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// intentGenerate validates the URL locally, then calls the backend with the
// mutex released so the page stays responsive. Only one generation runs at a
// time.
func (s *Server) intentGenerate(r *http.Request) {
	rawURL := strings.TrimSpace(r.FormValue("url"))

	s.mu.Lock()
	s.articleURL = rawURL
	if s.generating {
		s.setNotice("a quiz is already being generated")
		s.mu.Unlock()
		return
	}
	if err := quiz.ValidateArticleURL(rawURL); err != nil {
		s.setNotice(humanMessage(err))
		s.mu.Unlock()
		return
	}
	s.generating = true
	s.mu.Unlock()

	generated, err := s.backend.GenerateQuiz(r.Context(), rawURL)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.generating = false
	if err != nil {
		s.setNotice(humanMessage(err))
		return
	}
	s.current = &generated
	s.tab = tabGenerate
	s.articleURL = ""
	// The listing is stale now; the next history visit refetches it.
	s.historyLoaded = false
}

func (s *Server) intentSwitchTab(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tab = normalizeTab(r.FormValue("tab"))
	s.pendingDelete = ""
	// Every visit to the history tab refetches the listing.
	if s.tab == tabHistory {
		s.historyLoaded = false
	}
}

func (s *Server) intentRefreshHistory(r *http.Request) {
	s.mu.Lock()
	s.historyLoaded = false
	s.tab = tabHistory
	s.mu.Unlock()
	s.loadHistory(r)
}

// loadHistory fetches the listing with the mutex released. On failure the
// previous listing is kept and a notice explains what happened.
func (s *Server) loadHistory(r *http.Request) {
	entries, err := s.backend.ListQuizzes(r.Context())

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.setNotice(humanMessage(err))
		return
	}
	s.history = entries
	s.historyLoaded = true
}

func (s *Server) intentViewDetails(r *http.Request) {
	id := formID(r)
	if id == "" {
		return
	}

	fetched, err := s.backend.GetQuiz(r.Context(), id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.setNotice(humanMessage(err))
		return
	}
	s.detail = &fetched
	s.modal = modalDetail
}

func (s *Server) intentTakeQuiz(r *http.Request) {
	id := formID(r)
	if id == "" {
		return
	}

	fetched, err := s.backend.GetQuiz(r.Context(), id)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.setNotice(humanMessage(err))
		return
	}
	s.session.Open(&fetched)
	s.modal = modalTake
}

func (s *Server) intentSelectOption(r *http.Request) {
	index, err := strconv.Atoi(r.FormValue("question"))
	if err != nil {
		return
	}
	option := r.FormValue("option")

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.session.Select(index, option); err != nil {
		s.setNotice(humanMessage(err))
	}
}

func (s *Server) intentSubmit(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.session.Submit(); err != nil {
		s.setNotice(humanMessage(err))
	}
}

func (s *Server) intentReset(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.session.Reset(); err != nil {
		s.setNotice(humanMessage(err))
	}
}

// intentCloseModal dismisses whichever overlay is open, including a pending
// delete confirmation. Closing the take-quiz modal discards the attempt.
func (s *Server) intentCloseModal(r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.modal == modalTake {
		s.session.Close()
	}
	s.modal = modalNone
	s.detail = nil
	s.pendingDelete = ""
}

func (s *Server) intentDelete(r *http.Request) {
	id := formID(r)
	if id == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingDelete = id
}

// intentConfirmDelete deletes on the backend first. On success the listing is
// re-fetched rather than filtered locally, so concurrent changes on the
// backend show up too.
func (s *Server) intentConfirmDelete(r *http.Request) {
	id := formID(r)
	if id == "" {
		return
	}

	err := s.backend.DeleteQuiz(r.Context(), id)

	s.mu.Lock()
	s.pendingDelete = ""
	if err != nil {
		s.setNotice(humanMessage(err))
		s.mu.Unlock()
		return
	}
	s.setNotice("quiz deleted")

	// Drop views of the deleted quiz.
	if s.current != nil && s.current.ID == id {
		s.current = nil
	}
	if s.detail != nil && s.detail.ID == id {
		s.detail = nil
		if s.modal == modalDetail {
			s.modal = modalNone
		}
	}
	if active := s.session.Quiz(); active != nil && active.ID == id {
		s.session.Close()
		if s.modal == modalTake {
			s.modal = modalNone
		}
	}
	s.mu.Unlock()

	s.loadHistory(r)
}
