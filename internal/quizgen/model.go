package quizgen

import (
	"time"

	"wikiquiz/internal/llm"
	"wikiquiz/internal/wikipedia"
)

// Question is one generated quiz item in the wire/persisted shape.
type Question struct {
	Question         string   `json:"question"`
	Options          []string `json:"options"`
	Answer           string   `json:"answer"`
	Explanation      string   `json:"explanation"`
	Difficulty       string   `json:"difficulty"`
	SectionReference string   `json:"section_reference,omitempty"`
}

type KeyEntities struct {
	People        []string `json:"people"`
	Organizations []string `json:"organizations"`
	Locations     []string `json:"locations"`
}

// WikiQuiz is one generated quiz tied to a source article URL.
type WikiQuiz struct {
	ID            string      `json:"id"`
	URL           string      `json:"url"`
	Title         string      `json:"title"`
	Summary       string      `json:"summary"`
	KeyEntities   KeyEntities `json:"key_entities"`
	Sections      []string    `json:"sections"`
	Questions     []Question  `json:"quiz"`
	RelatedTopics []string    `json:"related_topics"`
	CreatedAt     time.Time   `json:"created_at"`
}

// QuizSummary is the history listing row.
type QuizSummary struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// BuildQuestions converts raw model output into persisted questions.
func BuildQuestions(raw []llm.RawQuestion) []Question {
	questions := make([]Question, 0, len(raw))
	for _, item := range raw {
		questions = append(questions, Question{
			Question:         item.Question,
			Options:          item.Options,
			Answer:           item.Answer,
			Explanation:      item.Explanation,
			Difficulty:       item.Difficulty,
			SectionReference: item.SectionReference,
		})
	}
	return questions
}

func buildKeyEntities(entities wikipedia.KeyEntities) KeyEntities {
	return KeyEntities{
		People:        entities.People,
		Organizations: entities.Organizations,
		Locations:     entities.Locations,
	}
}
