// Package words provides the two collaborators a game needs: a Source of
// secret words and a Checker that decides whether a guess is a real word.
package words

import (
	"context"
	_ "embed"
	"math/rand/v2"
	"strings"

	"github.com/palemoky/wordle/internal/apperrors"
	"github.com/palemoky/wordle/internal/logger"
)

// Length is the word length both services are asked for.
const Length = 5

//go:embed fallback.txt
var embeddedFallback string

// Source returns a random secret word.
type Source interface {
	RandomWord(ctx context.Context) (string, error)
}

// Checker reports whether word is a real word. An error means the check
// could not be made, not that the word was rejected.
type Checker interface {
	Check(ctx context.Context, word string) (bool, error)
}

// DefaultList returns the embedded fallback words.
func DefaultList() []string {
	return ParseList(embeddedFallback)
}

// ParseList splits text into lowercase words of Length letters a-z, one
// per line. Anything else is skipped.
func ParseList(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		w := strings.TrimSpace(strings.ToLower(line))
		if IsWord(w) {
			out = append(out, w)
		}
	}
	return out
}

// IsWord reports whether w is exactly Length lowercase ASCII letters.
func IsWord(w string) bool {
	if len(w) != Length {
		return false
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// ListSource picks uniformly from a fixed list.
type ListSource struct {
	words []string
}

// NewListSource returns a source over list. An empty list falls back to
// DefaultList.
func NewListSource(list []string) *ListSource {
	if len(list) == 0 {
		list = DefaultList()
	}
	return &ListSource{words: list}
}

// RandomWord returns one word from the list.
func (s *ListSource) RandomWord(_ context.Context) (string, error) {
	return s.words[rand.IntN(len(s.words))], nil
}

// Words returns the list the source picks from.
func (s *ListSource) Words() []string {
	return s.words
}

// FallbackSource asks Primary first and, on any failure, quietly answers
// from Fallback. The failure is logged, never returned.
type FallbackSource struct {
	Primary  Source
	Fallback Source
}

// RandomWord returns a word from Primary or Fallback.
func (s *FallbackSource) RandomWord(ctx context.Context) (string, error) {
	w, err := s.Primary.RandomWord(ctx)
	if err == nil {
		return w, nil
	}

	logger.Logger().Warn().Err(err).Msg("word source unavailable, using fallback list")
	w, ferr := s.Fallback.RandomWord(ctx)
	if ferr != nil {
		return "", apperrors.ErrWordSourceUnavailable
	}
	return w, nil
}
