package words

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/wordle/internal/storage"
	"github.com/palemoky/wordle/internal/testutil"
)

func newCachedChecker(t *testing.T, inner Checker) (*CachedChecker, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCachedChecker(inner, storage.NewRedisStore(client), time.Hour), mr
}

func TestCachedChecker_CachesVerdicts(t *testing.T) {
	t.Parallel()

	inner := new(testutil.MockChecker)
	inner.On("Check", mock.Anything, "crane").Return(true, nil).Once()
	inner.On("Check", mock.Anything, "xqzvk").Return(false, nil).Once()

	c, _ := newCachedChecker(t, inner)
	ctx := context.Background()

	for range 3 {
		ok, err := c.Check(ctx, "crane")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = c.Check(ctx, "xqzvk")
		require.NoError(t, err)
		assert.False(t, ok)
	}
	inner.AssertExpectations(t)
}

func TestCachedChecker_DoesNotCacheFailures(t *testing.T) {
	t.Parallel()

	inner := new(testutil.MockChecker)
	inner.On("Check", mock.Anything, "crane").Return(false, errors.New("timeout")).Once()
	inner.On("Check", mock.Anything, "crane").Return(true, nil).Once()

	c, _ := newCachedChecker(t, inner)
	ctx := context.Background()

	_, err := c.Check(ctx, "crane")
	assert.Error(t, err)

	ok, err := c.Check(ctx, "crane")
	require.NoError(t, err)
	assert.True(t, ok)
	inner.AssertExpectations(t)
}

func TestCachedChecker_StoreDownFallsThrough(t *testing.T) {
	t.Parallel()

	inner := new(testutil.MockChecker)
	inner.On("Check", mock.Anything, "crane").Return(true, nil).Twice()

	c, mr := newCachedChecker(t, inner)
	mr.Close()

	for range 2 {
		ok, err := c.Check(context.Background(), "crane")
		require.NoError(t, err)
		assert.True(t, ok)
	}
	inner.AssertExpectations(t)
}
