package quizgen

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		path = "wikiquiz.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &SQLiteStore{db: db}
	if err := store.initSchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	// Quiz content is stored as JSON columns mirroring the API payload, so the
	// row round-trips without per-question tables.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS wiki_quizzes (
			quiz_id TEXT PRIMARY KEY,
			url TEXT NOT NULL UNIQUE,
			title TEXT NOT NULL,
			summary TEXT NOT NULL,
			key_entities_json TEXT NOT NULL,
			sections_json TEXT NOT NULL,
			quiz_json TEXT NOT NULL,
			related_topics_json TEXT NOT NULL,
			created_at_unix INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_wiki_quizzes_created_at ON wiki_quizzes(created_at_unix DESC);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) SaveQuiz(ctx context.Context, quiz WikiQuiz) error {
	if quiz.ID == "" {
		return errors.New("quiz id is required")
	}
	if quiz.CreatedAt.IsZero() {
		quiz.CreatedAt = time.Now().UTC()
	}

	keyEntitiesJSON, err := json.Marshal(quiz.KeyEntities)
	if err != nil {
		return err
	}
	sectionsJSON, err := json.Marshal(quiz.Sections)
	if err != nil {
		return err
	}
	quizJSON, err := json.Marshal(quiz.Questions)
	if err != nil {
		return err
	}
	topicsJSON, err := json.Marshal(quiz.RelatedTopics)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO wiki_quizzes (quiz_id, url, title, summary, key_entities_json, sections_json, quiz_json, related_topics_json, created_at_unix)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		quiz.ID,
		quiz.URL,
		quiz.Title,
		quiz.Summary,
		string(keyEntitiesJSON),
		string(sectionsJSON),
		string(quizJSON),
		string(topicsJSON),
		quiz.CreatedAt.UnixNano(),
	)
	return err
}

func (s *SQLiteStore) GetQuiz(ctx context.Context, quizID string) (WikiQuiz, error) {
	return s.getQuizWhere(ctx, `quiz_id = ?`, quizID)
}

func (s *SQLiteStore) GetQuizByURL(ctx context.Context, url string) (WikiQuiz, error) {
	return s.getQuizWhere(ctx, `url = ?`, url)
}

func (s *SQLiteStore) getQuizWhere(ctx context.Context, where string, arg any) (WikiQuiz, error) {
	var (
		quiz            WikiQuiz
		keyEntitiesJSON string
		sectionsJSON    string
		quizJSON        string
		topicsJSON      string
		createdAtUnix   int64
	)

	err := s.db.QueryRowContext(
		ctx,
		`SELECT quiz_id, url, title, summary, key_entities_json, sections_json, quiz_json, related_topics_json, created_at_unix
		 FROM wiki_quizzes WHERE `+where,
		arg,
	).Scan(&quiz.ID, &quiz.URL, &quiz.Title, &quiz.Summary, &keyEntitiesJSON, &sectionsJSON, &quizJSON, &topicsJSON, &createdAtUnix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return WikiQuiz{}, ErrQuizNotFound
		}
		return WikiQuiz{}, err
	}

	if err := json.Unmarshal([]byte(keyEntitiesJSON), &quiz.KeyEntities); err != nil {
		return WikiQuiz{}, err
	}
	if err := json.Unmarshal([]byte(sectionsJSON), &quiz.Sections); err != nil {
		return WikiQuiz{}, err
	}
	if err := json.Unmarshal([]byte(quizJSON), &quiz.Questions); err != nil {
		return WikiQuiz{}, err
	}
	if err := json.Unmarshal([]byte(topicsJSON), &quiz.RelatedTopics); err != nil {
		return WikiQuiz{}, err
	}

	quiz.CreatedAt = time.Unix(0, createdAtUnix).UTC()
	return quiz, nil
}

func (s *SQLiteStore) ListQuizzes(ctx context.Context, limit int) ([]QuizSummary, error) {
	if limit <= 0 {
		limit = listLimit
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT quiz_id, url, title, created_at_unix
		 FROM wiki_quizzes
		 ORDER BY created_at_unix DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]QuizSummary, 0)
	for rows.Next() {
		var (
			item          QuizSummary
			createdAtUnix int64
		)
		if err := rows.Scan(&item.ID, &item.URL, &item.Title, &createdAtUnix); err != nil {
			return nil, err
		}
		item.CreatedAt = time.Unix(0, createdAtUnix).UTC()
		summaries = append(summaries, item)
	}

	return summaries, rows.Err()
}

func (s *SQLiteStore) DeleteQuiz(ctx context.Context, quizID string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM wiki_quizzes WHERE quiz_id = ?`, quizID)
	if err != nil {
		return err
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrQuizNotFound
	}
	return nil
}
