package quizgen

import (
	"context"
	"errors"
)

var ErrQuizNotFound = errors.New("quiz not found")

type Repository interface {
	SaveQuiz(ctx context.Context, quiz WikiQuiz) error
	GetQuiz(ctx context.Context, quizID string) (WikiQuiz, error)
	GetQuizByURL(ctx context.Context, url string) (WikiQuiz, error)
	ListQuizzes(ctx context.Context, limit int) ([]QuizSummary, error)
	DeleteQuiz(ctx context.Context, quizID string) error
}
