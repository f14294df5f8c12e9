// Package model defines the phases and tea messages shared by the UI.
package model

import (
	"github.com/palemoky/wordle/internal/game"
)

// GamePhase represents the current UI phase.
type GamePhase int

const (
	PhaseLoading  GamePhase = iota // fetching the secret
	PhasePlaying                   // waiting for a guess
	PhaseChecking                  // a guess is being validated
	PhaseGameOver                  // won or lost
)

func (p GamePhase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhaseChecking:
		return "checking"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// --- Tea Messages ---

// SecretMsg carries a freshly fetched secret word.
type SecretMsg struct {
	Secret string
}

// SecretErrorMsg reports that no secret could be obtained.
type SecretErrorMsg struct {
	Err error
}

// EvaluatedMsg is the result of submitting a guess to a session.
type EvaluatedMsg struct {
	SessionID  string
	Guess      string
	Evaluation *game.Evaluation
	Err        error
}

// ClearNoticeMsg clears the notice with the given sequence number, unless
// a newer one replaced it.
type ClearNoticeMsg struct {
	Seq int
}
