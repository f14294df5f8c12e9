package game

import "strings"

// LetterSet is a set over the letters a-z.
type LetterSet uint32

// Add returns the set with r added. Runes outside a-z are ignored.
func (s LetterSet) Add(r rune) LetterSet {
	if r < 'a' || r > 'z' {
		return s
	}
	return s | 1<<(r-'a')
}

// Has reports whether r is in the set.
func (s LetterSet) Has(r rune) bool {
	if r < 'a' || r > 'z' {
		return false
	}
	return s&(1<<(r-'a')) != 0
}

// Contains reports whether every letter of o is also in s.
func (s LetterSet) Contains(o LetterSet) bool {
	return s&o == o
}

// Len returns the number of letters in the set.
func (s LetterSet) Len() int {
	n := 0
	for r := 'a'; r <= 'z'; r++ {
		if s.Has(r) {
			n++
		}
	}
	return n
}

// String lists the letters in alphabetical order.
func (s LetterSet) String() string {
	var sb strings.Builder
	for r := 'a'; r <= 'z'; r++ {
		if s.Has(r) {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// LetterClass is the display class of a used letter.
type LetterClass int

const (
	ClassUsedOnly  LetterClass = iota // guessed, never matched
	ClassMisplaced                    // in the secret, not yet found in place
	ClassCorrect                      // found in its position at least once
)

// LetterState pairs a used letter with its display class.
type LetterState struct {
	Letter rune
	Class  LetterClass
}

// Board is the alphabet split into used and never-used letters.
type Board struct {
	Used   []LetterState
	Unused []rune
}

// ProjectBoard builds the alphabet board from the cumulative letter sets.
// A letter in correct is shown as correct even if it was also misplaced
// later; correct and misplaced letters always count as used.
func ProjectBoard(used, correct, misplaced LetterSet) Board {
	used |= correct | misplaced

	b := Board{
		Used:   make([]LetterState, 0, used.Len()),
		Unused: make([]rune, 0, 26-used.Len()),
	}
	for r := 'a'; r <= 'z'; r++ {
		switch {
		case correct.Has(r):
			b.Used = append(b.Used, LetterState{Letter: r, Class: ClassCorrect})
		case misplaced.Has(r):
			b.Used = append(b.Used, LetterState{Letter: r, Class: ClassMisplaced})
		case used.Has(r):
			b.Used = append(b.Used, LetterState{Letter: r, Class: ClassUsedOnly})
		default:
			b.Unused = append(b.Unused, r)
		}
	}
	return b
}
