package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const maxRelatedTopics = 7

// fallbackTopics keeps the related-topics panel populated when the model
// response is unusable.
var fallbackTopics = []string{"History", "Science", "Technology"}

// RawQuestion mirrors the question objects the model is asked to emit.
type RawQuestion struct {
	Question         string   `json:"question"`
	Options          []string `json:"options"`
	Answer           string   `json:"answer"`
	Explanation      string   `json:"explanation"`
	Difficulty       string   `json:"difficulty"`
	SectionReference string   `json:"section_reference,omitempty"`
}

type quizPayload struct {
	Quiz []RawQuestion `json:"quiz"`
}

const quizPromptTemplate = `You are a quiz generator. Read the Wikipedia article below and write 5 multiple-choice questions about "%s".

Respond with ONLY a valid JSON object of this exact shape, nothing else:
{"quiz": [{"question": "...", "options": ["...", "...", "...", "..."], "answer": "...", "explanation": "...", "difficulty": "easy|medium|hard", "section_reference": "..."}]}

Rules:
- Each question has exactly 4 distinct options.
- "answer" must be copied verbatim from "options".
- "explanation" states why the answer is correct in one or two sentences.
- "section_reference" names the article section the question comes from, or is omitted.

Article:
%s`

// GenerateQuiz asks the model for quiz questions about one article.
func (c *Client) GenerateQuiz(ctx context.Context, title, articleText string) ([]RawQuestion, error) {
	prompt := fmt.Sprintf(quizPromptTemplate, title, articleText)

	response, err := c.chat(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("quiz generation failed: %w", err)
	}

	cleaned := stripFences(response)
	jsonObject, ok := extractJSONObject(cleaned)
	if !ok {
		return nil, errors.New("no JSON object found in llm response")
	}

	var payload quizPayload
	if err := json.Unmarshal([]byte(jsonObject), &payload); err != nil {
		return nil, fmt.Errorf("parse quiz JSON: %w", err)
	}
	if len(payload.Quiz) == 0 {
		return nil, errors.New("llm response missing quiz questions")
	}
	return payload.Quiz, nil
}

const topicsPromptTemplate = `Suggest 5-7 related Wikipedia topics for the article "%s".

Article summary:
%s

Respond with ONLY a valid JSON array of topic names, nothing else.
Example:
["Topic 1", "Topic 2", "Topic 3"]`

// GenerateRelatedTopics asks for related article names. Any failure falls back
// to a static list rather than failing the whole generation.
func (c *Client) GenerateRelatedTopics(ctx context.Context, title, summary string) []string {
	prompt := fmt.Sprintf(topicsPromptTemplate, title, summary)

	response, err := c.chat(ctx, prompt)
	if err != nil {
		return fallbackTopics
	}

	var topics []string
	if err := json.Unmarshal([]byte(stripFences(response)), &topics); err != nil || len(topics) == 0 {
		return fallbackTopics
	}
	if len(topics) > maxRelatedTopics {
		topics = topics[:maxRelatedTopics]
	}
	return topics
}

// stripFences removes a wrapping markdown code block if present.
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.ReplaceAll(text, "```json", "")
		text = strings.ReplaceAll(text, "```", "")
	}
	return strings.TrimSpace(text)
}

// extractJSONObject returns the outermost {...} span of the text.
func extractJSONObject(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return text[start : end+1], true
}
