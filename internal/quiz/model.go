package quiz

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	// ErrEmptyURL and ErrNotWikipediaURL are the local validation failures
	// raised before any network call is issued.
	ErrEmptyURL        = errors.New("please enter a Wikipedia URL")
	ErrNotWikipediaURL = errors.New("please enter a valid Wikipedia article URL")
)

// DataShapeError flags a backend payload that is missing required fields or
// otherwise malformed beyond what rendering can tolerate.
type DataShapeError struct {
	Field  string
	Reason string
}

func (e *DataShapeError) Error() string {
	return fmt.Sprintf("quiz payload: %s %s", e.Field, e.Reason)
}

// Question is one quiz item. AnswerKeyMismatch is set when the backend's
// answer string is not one of the options; such questions are rendered with a
// marker and excluded from scoring instead of failing the whole quiz.
type Question struct {
	Text              string   `json:"question"`
	Options           []string `json:"options"`
	Answer            string   `json:"answer"`
	Explanation       string   `json:"explanation"`
	Difficulty        string   `json:"difficulty"`
	SectionReference  string   `json:"section_reference,omitempty"`
	AnswerKeyMismatch bool     `json:"-"`
}

// HasOption reports whether option is one of the question's options.
func (q Question) HasOption(option string) bool {
	for _, candidate := range q.Options {
		if candidate == option {
			return true
		}
	}
	return false
}

// Quiz is one generated quiz. Question order is the canonical numbering and
// is preserved by every view.
type Quiz struct {
	ID            string     `json:"id"`
	URL           string     `json:"url"`
	Title         string     `json:"title"`
	Summary       string     `json:"summary"`
	Sections      []string   `json:"sections"`
	RelatedTopics []string   `json:"related_topics"`
	Questions     []Question `json:"quiz"`
	CreatedAt     time.Time  `json:"created_at"`
}

// HistoryEntry is one row of the generation history listing.
type HistoryEntry struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidateArticleURL applies the pre-network URL shape check.
func ValidateArticleURL(rawURL string) error {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return ErrEmptyURL
	}
	if !strings.Contains(rawURL, "wikipedia.org/wiki/") {
		return ErrNotWikipediaURL
	}
	return nil
}

// Normalize validates a decoded quiz payload and flags answer-key mismatches.
// Shape violations return a *DataShapeError; a mismatched answer key does not.
func (q *Quiz) Normalize() error {
	if strings.TrimSpace(q.ID) == "" {
		return &DataShapeError{Field: "id", Reason: "is required"}
	}
	if strings.TrimSpace(q.Title) == "" {
		return &DataShapeError{Field: "title", Reason: "is required"}
	}

	for idx := range q.Questions {
		question := &q.Questions[idx]
		if strings.TrimSpace(question.Text) == "" {
			return &DataShapeError{Field: fmt.Sprintf("quiz[%d].question", idx), Reason: "is required"}
		}
		if len(question.Options) < 2 {
			return &DataShapeError{Field: fmt.Sprintf("quiz[%d].options", idx), Reason: "needs at least 2 entries"}
		}
		question.AnswerKeyMismatch = !question.HasOption(question.Answer)
	}
	return nil
}
