package words

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/wordle/internal/apperrors"
	"github.com/palemoky/wordle/internal/testutil"
)

func TestParseList(t *testing.T) {
	t.Parallel()

	got := ParseList("Apple\n  grape \nbananas\nab1de\n\nPEACH\r\n")
	assert.Equal(t, []string{"apple", "grape", "peach"}, got)
}

func TestDefaultList(t *testing.T) {
	t.Parallel()

	list := DefaultList()
	require.NotEmpty(t, list)
	for _, w := range []string{"apple", "grape", "peach", "berry", "melon"} {
		assert.Contains(t, list, w)
	}
	for _, w := range list {
		assert.True(t, IsWord(w), w)
	}
}

func TestIsWord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		word string
		want bool
	}{
		{"apple", true},
		{"Apple", false},
		{"appl", false},
		{"apples", false},
		{"ap-le", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsWord(tt.word), tt.word)
	}
}

func TestListSource(t *testing.T) {
	t.Parallel()

	src := NewListSource([]string{"crane", "slate"})
	seen := map[string]bool{}
	for range 200 {
		w, err := src.RandomWord(context.Background())
		require.NoError(t, err)
		seen[w] = true
	}
	assert.Equal(t, map[string]bool{"crane": true, "slate": true}, seen)

	assert.Equal(t, DefaultList(), NewListSource(nil).Words())
}

func TestFallbackSource(t *testing.T) {
	t.Parallel()

	t.Run("primary ok", func(t *testing.T) {
		t.Parallel()
		primary := new(testutil.MockSource)
		primary.On("RandomWord", mock.Anything).Return("crane", nil).Once()
		fallback := new(testutil.MockSource)

		src := &FallbackSource{Primary: primary, Fallback: fallback}
		w, err := src.RandomWord(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "crane", w)
		fallback.AssertNotCalled(t, "RandomWord", mock.Anything)
	})

	t.Run("primary down", func(t *testing.T) {
		t.Parallel()
		primary := new(testutil.MockSource)
		primary.On("RandomWord", mock.Anything).Return("", apperrors.ErrWordSourceUnavailable).Once()

		src := &FallbackSource{Primary: primary, Fallback: NewListSource([]string{"melon"})}
		w, err := src.RandomWord(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "melon", w)
		primary.AssertExpectations(t)
	})

	t.Run("both down", func(t *testing.T) {
		t.Parallel()
		primary := new(testutil.MockSource)
		primary.On("RandomWord", mock.Anything).Return("", errors.New("down"))
		fallback := new(testutil.MockSource)
		fallback.On("RandomWord", mock.Anything).Return("", errors.New("also down"))

		src := &FallbackSource{Primary: primary, Fallback: fallback}
		_, err := src.RandomWord(context.Background())
		assert.ErrorIs(t, err, apperrors.ErrWordSourceUnavailable)
	})
}
