package quiz

import "errors"

// State is the attempt lifecycle position.
type State int

const (
	StateIdle State = iota
	StateInProgress
	StateSubmitted
)

var (
	ErrNoAttempt        = errors.New("no attempt in progress")
	ErrAttemptSubmitted = errors.New("attempt already submitted")
	ErrQuestionIndex    = errors.New("question index out of range")
	ErrUnknownOption    = errors.New("option does not belong to the question")
	ErrUnanswered       = errors.New("all questions must be answered before submitting")
)

// Session owns the single active quiz attempt. It is not safe for concurrent
// use; the web layer serializes access.
//
// Lifecycle: Idle -> InProgress (Open) -> Submitted (Submit) -> InProgress
// (Reset) or Idle (Close). Opening a new quiz while an attempt exists
// replaces it outright.
type Session struct {
	quiz       *Quiz
	selections map[int]string
	state      State
	score      int

	// requireAll gates Submit on every question being answered. Off by
	// default: submitting early counts unanswered questions as incorrect.
	requireAll bool
}

func NewSession(requireAll bool) *Session {
	return &Session{
		state:      StateIdle,
		requireAll: requireAll,
	}
}

func (s *Session) State() State { return s.state }

// Quiz returns the loaded quiz, or nil when idle.
func (s *Session) Quiz() *Quiz {
	return s.quiz
}

// Open starts a fresh attempt on the given quiz, discarding any prior one.
func (s *Session) Open(q *Quiz) {
	s.quiz = q
	s.selections = make(map[int]string)
	s.state = StateInProgress
	s.score = 0
}

// Select records the chosen option for one question. The last selection for a
// given index wins.
func (s *Session) Select(questionIndex int, option string) error {
	switch s.state {
	case StateIdle:
		return ErrNoAttempt
	case StateSubmitted:
		return ErrAttemptSubmitted
	}

	if questionIndex < 0 || questionIndex >= len(s.quiz.Questions) {
		return ErrQuestionIndex
	}
	if !s.quiz.Questions[questionIndex].HasOption(option) {
		return ErrUnknownOption
	}

	s.selections[questionIndex] = option
	return nil
}

// Submit freezes the selections and fixes the score. Unanswered questions
// count as incorrect; an empty quiz scores 0/0.
func (s *Session) Submit() error {
	switch s.state {
	case StateIdle:
		return ErrNoAttempt
	case StateSubmitted:
		return ErrAttemptSubmitted
	}

	if s.requireAll && len(s.selections) < len(s.quiz.Questions) {
		return ErrUnanswered
	}

	score := 0
	for idx, question := range s.quiz.Questions {
		if s.selections[idx] == question.Answer {
			score++
		}
	}
	s.score = score
	s.state = StateSubmitted
	return nil
}

// Reset clears the selections and returns to InProgress with the same quiz
// loaded. Calling it repeatedly is equivalent to calling it once.
func (s *Session) Reset() error {
	if s.state == StateIdle {
		return ErrNoAttempt
	}
	s.selections = make(map[int]string)
	s.state = StateInProgress
	s.score = 0
	return nil
}

// Close discards the attempt from any state. It is idempotent.
func (s *Session) Close() {
	s.quiz = nil
	s.selections = nil
	s.state = StateIdle
	s.score = 0
}

// Selection returns the recorded option for a question, if any.
func (s *Session) Selection(questionIndex int) (string, bool) {
	option, ok := s.selections[questionIndex]
	return option, ok
}

// Selections returns a copy of the recorded selections.
func (s *Session) Selections() map[int]string {
	out := make(map[int]string, len(s.selections))
	for idx, option := range s.selections {
		out[idx] = option
	}
	return out
}

func (s *Session) AnsweredCount() int {
	return len(s.selections)
}

func (s *Session) Submitted() bool {
	return s.state == StateSubmitted
}

// Score returns the fixed score and the question total. The score is only
// meaningful after Submit.
func (s *Session) Score() (score, total int) {
	if s.quiz == nil {
		return 0, 0
	}
	return s.score, len(s.quiz.Questions)
}

// RequireAllAnswered reports whether the strict submit gate is enabled.
func (s *Session) RequireAllAnswered() bool {
	return s.requireAll
}
