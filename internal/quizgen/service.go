package quizgen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"wikiquiz/internal/llm"
	"wikiquiz/internal/wikipedia"
)

const listLimit = 50

// ArticleFetcher scrapes one Wikipedia article.
type ArticleFetcher func(ctx context.Context, url string) (wikipedia.Article, error)

// Generator produces quiz content from scraped article pieces.
type Generator interface {
	GenerateQuiz(ctx context.Context, title, articleText string) ([]llm.RawQuestion, error)
	GenerateRelatedTopics(ctx context.Context, title, summary string) []string
}

type Service struct {
	repo      Repository
	fetch     ArticleFetcher
	generator Generator
}

func NewService(repo Repository, fetch ArticleFetcher, generator Generator) *Service {
	return &Service{
		repo:      repo,
		fetch:     fetch,
		generator: generator,
	}
}

// Generate returns the quiz for a URL, generating and persisting it on first
// request. Repeated requests for the same article reuse the stored quiz.
func (s *Service) Generate(ctx context.Context, url string) (WikiQuiz, error) {
	url = strings.TrimSpace(url)

	existing, err := s.repo.GetQuizByURL(ctx, url)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrQuizNotFound) {
		return WikiQuiz{}, err
	}

	if s.fetch == nil || s.generator == nil {
		return WikiQuiz{}, errors.New("quiz generation is not configured")
	}

	article, err := s.fetch(ctx, url)
	if err != nil {
		return WikiQuiz{}, err
	}

	raw, err := s.generator.GenerateQuiz(ctx, article.Title, article.BodyText)
	if err != nil {
		return WikiQuiz{}, err
	}

	quiz := WikiQuiz{
		ID:            uuid.NewString(),
		URL:           url,
		Title:         article.Title,
		Summary:       article.Summary,
		KeyEntities:   buildKeyEntities(article.KeyEntities),
		Sections:      article.Sections,
		Questions:     BuildQuestions(raw),
		RelatedTopics: s.generator.GenerateRelatedTopics(ctx, article.Title, article.Summary),
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.repo.SaveQuiz(ctx, quiz); err != nil {
		// A concurrent request for the same URL may have won the unique-URL
		// race; the stored quiz is the canonical one.
		stored, lookupErr := s.repo.GetQuizByURL(ctx, url)
		if lookupErr == nil {
			return stored, nil
		}
		return WikiQuiz{}, fmt.Errorf("save quiz: %w", err)
	}

	return quiz, nil
}

func (s *Service) List(ctx context.Context) ([]QuizSummary, error) {
	return s.repo.ListQuizzes(ctx, listLimit)
}

func (s *Service) Get(ctx context.Context, quizID string) (WikiQuiz, error) {
	quizID = strings.TrimSpace(quizID)
	if quizID == "" {
		return WikiQuiz{}, ErrQuizNotFound
	}
	return s.repo.GetQuiz(ctx, quizID)
}

func (s *Service) Delete(ctx context.Context, quizID string) error {
	quizID = strings.TrimSpace(quizID)
	if quizID == "" {
		return ErrQuizNotFound
	}
	return s.repo.DeleteQuiz(ctx, quizID)
}
