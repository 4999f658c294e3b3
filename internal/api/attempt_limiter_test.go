package api

import (
	"testing"
	"time"
)

func TestAttemptLimiterWindowAndReset(t *testing.T) {
	t.Parallel()

	limiter := newAttemptLimiter()
	key := "203.0.113.7"
	window := 15 * time.Minute
	now := time.Now().UTC()

	limiter.addFailure(key, now.Add(-time.Hour), window)
	if limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected old attempt pruned from active window")
	}

	for attempt := 0; attempt < resetAttemptLimit; attempt++ {
		limiter.addFailure(key, now.Add(-time.Minute), window)
	}
	if !limiter.tooManyRecent(key, now, resetAttemptLimit, window) {
		t.Fatal("expected recent attempts to hit the limit")
	}

	limiter.reset(key)
	if limiter.tooManyRecent(key, now, 1, window) {
		t.Fatal("expected no attempts after reset")
	}
}
