// Package quizclient is the HTTP adapter for the quiz-generation backend.
// Every call is a single attempt; failures come back as values, either a
// *APIError for non-success statuses or a wrapped ErrServiceUnavailable for
// transport problems.
package quizclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"wikiquiz/internal/quiz"
)

var ErrServiceUnavailable = errors.New("quiz service unavailable")

// APIError carries a non-success backend response. Detail is the
// server-supplied message when the error payload had one.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Detail) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Detail
}

type errorPayload struct {
	Detail string `json:"detail"`
}

type generateRequest struct {
	URL string `json:"url"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	baseURL = strings.TrimSpace(baseURL)
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8000"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

// GenerateQuiz asks the backend to build a quiz for one article URL. The
// caller validates the URL shape before this is invoked.
func (c *Client) GenerateQuiz(ctx context.Context, articleURL string) (quiz.Quiz, error) {
	var payload quiz.Quiz
	if err := c.doJSON(ctx, http.MethodPost, "/api/generate-quiz", generateRequest{URL: articleURL}, &payload); err != nil {
		return quiz.Quiz{}, err
	}
	if err := payload.Normalize(); err != nil {
		return quiz.Quiz{}, err
	}
	return payload, nil
}

func (c *Client) ListQuizzes(ctx context.Context) ([]quiz.HistoryEntry, error) {
	var payload []quiz.HistoryEntry
	if err := c.doJSON(ctx, http.MethodGet, "/api/quizzes", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *Client) GetQuiz(ctx context.Context, quizID string) (quiz.Quiz, error) {
	if strings.TrimSpace(quizID) == "" {
		return quiz.Quiz{}, errors.New("quiz id is required")
	}

	var payload quiz.Quiz
	if err := c.doJSON(ctx, http.MethodGet, "/api/quizzes/"+url.PathEscape(quizID), nil, &payload); err != nil {
		return quiz.Quiz{}, err
	}
	if err := payload.Normalize(); err != nil {
		return quiz.Quiz{}, err
	}
	return payload, nil
}

func (c *Client) DeleteQuiz(ctx context.Context, quizID string) error {
	if strings.TrimSpace(quizID) == "" {
		return errors.New("quiz id is required")
	}
	return c.doJSON(ctx, http.MethodDelete, "/api/quizzes/"+url.PathEscape(quizID), nil, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	fullURL := c.baseURL + path

	var body *bytes.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	} else {
		body = bytes.NewReader(nil)
	}

	request, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorPayload
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Detail) != "" {
			apiErr.Detail = payload.Detail
		}
		return &apiErr
	}

	if responseBody == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(responseBody)
}
