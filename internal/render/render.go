// Package render turns quizzes and history listings into HTML fragments.
// Everything flows through html/template so user-visible strings from the
// backend are escaped; the web layer composes the fragments into pages.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"wikiquiz/internal/quiz"
)

// Mode selects how a quiz is rendered.
type Mode int

const (
	// ModeSummary is the generate-tab view: article metadata, the full
	// question set with the answer key and explanations visible, and a
	// control to start an attempt.
	ModeSummary Mode = iota
	// ModeInteractive renders the attempt: option buttons, progress and,
	// once submitted, per-question results and the score.
	ModeInteractive
	// ModeDetail is the read-only history view with the answer key visible.
	ModeDetail
)

const createdAtLayout = "Jan 2, 2006 3:04 PM"

// RenderQuiz renders one quiz in the given mode. attempt is consulted only in
// ModeInteractive and may be nil otherwise.
func RenderQuiz(q *quiz.Quiz, mode Mode, attempt *quiz.Session) (template.HTML, error) {
	if q == nil {
		return "", fmt.Errorf("no quiz to render")
	}

	view := buildQuizView(q, mode, attempt)

	var buf bytes.Buffer
	if err := quizTmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// RenderHistory renders the generation history table. pendingDelete is the id
// of the entry whose delete is awaiting confirmation, or empty.
func RenderHistory(entries []quiz.HistoryEntry, pendingDelete string) (template.HTML, error) {
	view := historyView{PendingDelete: pendingDelete}
	for _, entry := range entries {
		view.Rows = append(view.Rows, historyRowView{
			ID:             entry.ID,
			Title:          entry.Title,
			URL:            entry.URL,
			CreatedAt:      entry.CreatedAt.Format(createdAtLayout),
			ConfirmPending: entry.ID == pendingDelete,
		})
	}

	var buf bytes.Buffer
	if err := historyTmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

type historyView struct {
	Rows          []historyRowView
	PendingDelete string
}

type historyRowView struct {
	ID             string
	Title          string
	URL            string
	CreatedAt      string
	ConfirmPending bool
}

type quizView struct {
	ID        string
	URL       string
	Title     string
	Summary   string
	Sections  []string
	Topics    []topicView
	Questions []questionView
	CreatedAt string

	Interactive bool
	ShowAnswers bool
	// TakeQuizControl renders the start-attempt button (generate tab).
	TakeQuizControl bool

	// Attempt state, meaningful only when Interactive.
	Submitted      bool
	Answered       int
	Total          int
	ProgressPct    int
	Score          int
	ScorePct       int
	SubmitDisabled bool
}

type topicView struct {
	Label string
	Href  string
}

type questionView struct {
	Index            int
	Number           int
	Text             string
	Difficulty       string
	SectionReference string
	Explanation      string
	Options          []optionView
	Mismatch         bool

	Interactive bool
	ShowAnswers bool
	// Status after submit: "correct", "incorrect" or "not-answered".
	Status string
}

type optionView struct {
	Label    string
	Selected bool
	Correct  bool
	// ChosenWrong marks a selected option that was not the answer.
	ChosenWrong bool
}

func buildQuizView(q *quiz.Quiz, mode Mode, attempt *quiz.Session) quizView {
	view := quizView{
		ID:              q.ID,
		URL:             q.URL,
		Title:           q.Title,
		Summary:         q.Summary,
		Sections:        q.Sections,
		Interactive:     mode == ModeInteractive,
		ShowAnswers:     mode == ModeSummary || mode == ModeDetail,
		TakeQuizControl: mode == ModeSummary,
		Total:           len(q.Questions),
	}
	if !q.CreatedAt.IsZero() {
		view.CreatedAt = q.CreatedAt.Format(createdAtLayout)
	}
	for _, topic := range q.RelatedTopics {
		view.Topics = append(view.Topics, topicView{
			Label: topic,
			Href:  topicArticleURL(topic),
		})
	}

	if mode == ModeInteractive && attempt != nil {
		view.Submitted = attempt.Submitted()
		view.Answered = attempt.AnsweredCount()
		if view.Total > 0 {
			view.ProgressPct = view.Answered * 100 / view.Total
		}
		if view.Submitted {
			score, total := attempt.Score()
			view.Score = score
			view.ShowAnswers = true
			if total > 0 {
				view.ScorePct = score * 100 / total
			}
		}
		view.SubmitDisabled = attempt.RequireAllAnswered() && view.Answered < view.Total
	}

	for idx, question := range q.Questions {
		view.Questions = append(view.Questions, buildQuestionView(idx, question, view, attempt))
	}
	return view
}

func buildQuestionView(idx int, question quiz.Question, parent quizView, attempt *quiz.Session) questionView {
	qv := questionView{
		Index:            idx,
		Number:           idx + 1,
		Text:             question.Text,
		Difficulty:       question.Difficulty,
		SectionReference: question.SectionReference,
		Mismatch:         question.AnswerKeyMismatch,
		Interactive:      parent.Interactive && !parent.Submitted,
		ShowAnswers:      parent.ShowAnswers,
	}
	if qv.ShowAnswers {
		qv.Explanation = question.Explanation
	}

	var selected string
	var answered bool
	if attempt != nil {
		selected, answered = attempt.Selection(idx)
	}

	if parent.Interactive && parent.Submitted {
		switch {
		case !answered:
			qv.Status = "not-answered"
		case selected == question.Answer:
			qv.Status = "correct"
		default:
			qv.Status = "incorrect"
		}
	}

	for _, option := range question.Options {
		ov := optionView{
			Label:    option,
			Selected: option == selected && answered,
		}
		if qv.ShowAnswers {
			ov.Correct = option == question.Answer
			ov.ChosenWrong = ov.Selected && !ov.Correct
		}
		qv.Options = append(qv.Options, ov)
	}
	return qv
}

// topicArticleURL builds the Wikipedia article link for a related topic.
func topicArticleURL(topic string) string {
	slug := strings.ReplaceAll(strings.TrimSpace(topic), " ", "_")
	return "https://en.wikipedia.org/wiki/" + url.PathEscape(slug)
}
