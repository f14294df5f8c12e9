//go:build !production

package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockChecker is a testify mock for the dictionary check.
type MockChecker struct {
	mock.Mock
}

func (m *MockChecker) Check(ctx context.Context, word string) (bool, error) {
	args := m.Called(ctx, word)
	return args.Bool(0), args.Error(1)
}

// MockSource is a testify mock for the secret word source.
type MockSource struct {
	mock.Mock
}

func (m *MockSource) RandomWord(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// StaticChecker accepts exactly the words in its set.
type StaticChecker map[string]bool

func (c StaticChecker) Check(_ context.Context, word string) (bool, error) {
	return c[word], nil
}

// NewStaticChecker builds a StaticChecker from a word list.
func NewStaticChecker(words ...string) StaticChecker {
	c := make(StaticChecker, len(words))
	for _, w := range words {
		c[w] = true
	}
	return c
}
