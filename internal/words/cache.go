package words

import (
	"context"
	"time"

	"github.com/palemoky/wordle/internal/logger"
)

// VerdictStore persists checker verdicts.
type VerdictStore interface {
	SaveVerdict(ctx context.Context, word string, valid bool, ttl time.Duration) error
	LoadVerdict(ctx context.Context, word string) (valid, found bool, err error)
}

// CachedChecker remembers verdicts from an inner Checker. Store problems
// never fail a check; the inner checker is asked instead.
type CachedChecker struct {
	inner Checker
	store VerdictStore
	ttl   time.Duration
}

// NewCachedChecker wraps inner with store. The store applies its own
// default when ttl is zero.
func NewCachedChecker(inner Checker, store VerdictStore, ttl time.Duration) *CachedChecker {
	return &CachedChecker{inner: inner, store: store, ttl: ttl}
}

// Check returns the stored verdict for word or asks the inner checker and
// stores its answer. Failed checks are not stored.
func (c *CachedChecker) Check(ctx context.Context, word string) (bool, error) {
	valid, found, err := c.store.LoadVerdict(ctx, word)
	if err != nil {
		logger.Logger().Warn().Err(err).Str("word", word).Msg("verdict cache read failed")
	} else if found {
		return valid, nil
	}

	ok, err := c.inner.Check(ctx, word)
	if err != nil {
		return false, err
	}

	if err := c.store.SaveVerdict(ctx, word, ok, c.ttl); err != nil {
		logger.Logger().Warn().Err(err).Str("word", word).Msg("verdict cache write failed")
	}
	return ok, nil
}
