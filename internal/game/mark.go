package game

import "fmt"

// WordLength is the number of letters in every secret and guess.
const WordLength = 5

// DefaultMaxAttempts is the number of guesses a session allows.
const DefaultMaxAttempts = 6

// Mark is the feedback for one letter of a guess.
type Mark int

const (
	MarkAbsent  Mark = iota // not in the secret
	MarkPresent             // in the secret, different position
	MarkCorrect             // same letter, same position
)

func (m Mark) String() string {
	switch m {
	case MarkCorrect:
		return "correct"
	case MarkPresent:
		return "present"
	default:
		return "absent"
	}
}

// Status is the lifecycle state of a session. Won and Lost are absorbing.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "in_progress"
	}
}

// IsTerminal reports whether no further guesses are accepted.
func (s Status) IsTerminal() bool {
	return s == StatusWon || s == StatusLost
}

// Scoring selects how repeated letters are marked.
type Scoring int

const (
	// ScoringStandard marks exact matches first and then hands out Present
	// marks from the unmatched secret letters, left to right.
	ScoringStandard Scoring = iota
	// ScoringNaive marks a letter Present whenever it occurs anywhere in the
	// secret, regardless of how often.
	ScoringNaive
)

func (s Scoring) String() string {
	if s == ScoringNaive {
		return "naive"
	}
	return "standard"
}

// ParseScoring maps a config value to a Scoring. Empty means standard.
func ParseScoring(v string) (Scoring, error) {
	switch v {
	case "", "standard":
		return ScoringStandard, nil
	case "naive":
		return ScoringNaive, nil
	default:
		return ScoringStandard, fmt.Errorf("unknown scoring %q", v)
	}
}
