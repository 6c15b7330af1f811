package pipeline

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dgallion1/clauseparse/internal/llm"
)

func TestIsRetryable(t *testing.T) {
	retryable := &llm.RetryableError{StatusCode: 429, Message: "slow down"}
	if !IsRetryable(retryable) {
		t.Error("expected retryable error to be retryable")
	}
	wrapped := fmt.Errorf("call failed: %w", retryable)
	if !IsRetryable(wrapped) {
		t.Error("expected wrapped retryable error to be retryable")
	}
	if IsRetryable(errors.New("plain failure")) {
		t.Error("expected plain error to not be retryable")
	}
	if IsRetryable(nil) {
		t.Error("expected nil to not be retryable")
	}
}

func TestBackoff_GrowsAndCaps(t *testing.T) {
	for attempt := 0; attempt < 10; attempt++ {
		d := Backoff(attempt)
		if d < time.Second {
			t.Errorf("attempt %d: backoff %v below base", attempt, d)
		}
		// Base caps at 30s; jitter adds at most half of that.
		if d > 45*time.Second {
			t.Errorf("attempt %d: backoff %v above cap", attempt, d)
		}
	}
}

func TestBackoff_EarlyAttemptsShorter(t *testing.T) {
	// Attempt 0 spans [1s, 1.5s); attempt 4 spans [16s, 24s).
	if Backoff(0) >= Backoff(4) {
		t.Error("expected attempt 0 backoff to be shorter than attempt 4")
	}
}
