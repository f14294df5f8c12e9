// Package game implements a single Wordle play-through: guess legality,
// per-letter feedback, cumulative letter classification and win/loss state.
package game

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/palemoky/wordle/internal/apperrors"
	"github.com/palemoky/wordle/internal/words"
)

// Evaluation is the outcome of one accepted guess.
type Evaluation struct {
	Guess             string
	Marks             [WordLength]Mark
	AttemptsUsed      int
	AttemptsRemaining int
	Status            Status
}

// Won reports whether every mark is Correct.
func (e *Evaluation) Won() bool {
	for _, m := range e.Marks {
		if m != MarkCorrect {
			return false
		}
	}
	return true
}

// Option configures a Session.
type Option func(*Session)

// WithMaxAttempts overrides DefaultMaxAttempts. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(s *Session) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithChecker injects the dictionary check run before a guess is applied.
// It may do network I/O; Evaluate calls it without holding the session lock.
func WithChecker(c words.Checker) Option {
	return func(s *Session) { s.checker = c }
}

// WithScoring selects the repeated-letter rule.
func WithScoring(mode Scoring) Option {
	return func(s *Session) { s.scoring = mode }
}

// WithID sets the session id instead of generating one.
func WithID(id string) Option {
	return func(s *Session) { s.id = id }
}

// Session is one play-through against a fixed secret.
type Session struct {
	id          string
	secret      string
	maxAttempts int
	scoring     Scoring
	checker     words.Checker

	mu        sync.Mutex
	history   []Evaluation
	status    Status
	used      LetterSet
	correct   LetterSet
	misplaced LetterSet
}

// NewSession starts a session for secret, which is case-folded and must be
// WordLength letters a-z.
func NewSession(secret string, opts ...Option) (*Session, error) {
	secret = strings.ToLower(strings.TrimSpace(secret))
	if !isWord(secret) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidSecret, secret)
	}

	s := &Session{
		secret:      secret,
		maxAttempts: DefaultMaxAttempts,
		status:      StatusInProgress,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.id == "" {
		s.id = uuid.NewString()
	}
	return s, nil
}

// Evaluate checks and applies one guess.
//
// Checks run in order and the first failure wins: length, letters,
// duplicate, terminated, then the injected checker. A failed check
// leaves the session untouched.
func (s *Session) Evaluate(ctx context.Context, guess string) (*Evaluation, error) {
	// case is folded; surrounding whitespace counts toward the length
	guess = strings.ToLower(guess)
	if utf8.RuneCountInString(guess) != WordLength {
		return nil, apperrors.ErrInvalidLength
	}
	if !isAlpha(guess) {
		return nil, apperrors.ErrInvalidLetters
	}

	s.mu.Lock()
	err := s.checkLocked(guess)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if s.checker != nil {
		ok, err := s.checker.Check(ctx, guess)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", apperrors.ErrValidationUnavailable, err)
		}
		if !ok {
			return nil, apperrors.ErrWordNotValid
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// state may have moved while the checker ran
	if err := s.checkLocked(guess); err != nil {
		return nil, err
	}
	ev := s.applyLocked(guess)
	return &ev, nil
}

func (s *Session) checkLocked(guess string) error {
	for _, prev := range s.history {
		if prev.Guess == guess {
			return apperrors.ErrDuplicateGuess
		}
	}
	if s.status.IsTerminal() {
		return apperrors.ErrSessionTerminated
	}
	return nil
}

func (s *Session) applyLocked(guess string) Evaluation {
	marks := score(s.secret, guess, s.scoring)

	for i, m := range marks {
		r := rune(guess[i])
		s.used = s.used.Add(r)
		switch m {
		case MarkCorrect:
			s.correct = s.correct.Add(r)
		case MarkPresent:
			s.misplaced = s.misplaced.Add(r)
		}
	}

	attempts := len(s.history) + 1
	switch {
	case guess == s.secret:
		s.status = StatusWon
	case attempts >= s.maxAttempts:
		s.status = StatusLost
	}

	ev := Evaluation{
		Guess:             guess,
		Marks:             marks,
		AttemptsUsed:      attempts,
		AttemptsRemaining: s.maxAttempts - attempts,
		Status:            s.status,
	}
	s.history = append(s.history, ev)
	return ev
}

// ID returns the session id.
func (s *Session) ID() string { return s.id }

// Secret returns the secret word.
func (s *Session) Secret() string { return s.secret }

// MaxAttempts returns the attempt limit.
func (s *Session) MaxAttempts() int { return s.maxAttempts }

// Scoring returns the repeated-letter rule in use.
func (s *Session) Scoring() Scoring { return s.scoring }

// Status returns the current state.
func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// AttemptsUsed returns the number of accepted guesses.
func (s *Session) AttemptsUsed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// AttemptsRemaining returns how many guesses are left.
func (s *Session) AttemptsRemaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxAttempts - len(s.history)
}

// History returns a copy of the accepted evaluations, oldest first.
func (s *Session) History() []Evaluation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Evaluation, len(s.history))
	copy(out, s.history)
	return out
}

// Letters returns snapshots of the used, correct and misplaced sets.
func (s *Session) Letters() (used, correct, misplaced LetterSet) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.used, s.correct, s.misplaced
}

// Board projects the current letter sets onto the alphabet.
func (s *Session) Board() Board {
	return ProjectBoard(s.Letters())
}
