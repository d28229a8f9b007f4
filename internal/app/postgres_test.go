package app

import (
	"errors"
	"testing"
)

func TestRetry_StopsOnSuccess(t *testing.T) {
	calls := 0
	err := retry(15, 0, func(attempt int) error {
		calls++
		if attempt < 3 {
			return errors.New("database is starting up")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("retry: %v", err)
	}
	if calls != 3 {
		t.Fatalf("expected 3 calls, got %d", calls)
	}
}

func TestRetry_GivesUpAfterMaxAttempts(t *testing.T) {
	errRefused := errors.New("connection refused")
	calls := 0
	err := retry(15, 0, func(int) error {
		calls++
		return errRefused
	})
	if !errors.Is(err, errRefused) {
		t.Fatalf("expected last error to be wrapped, got %v", err)
	}
	if calls != 15 {
		t.Fatalf("expected 15 calls, got %d", calls)
	}
}

func TestRetry_RunsAtLeastOnce(t *testing.T) {
	calls := 0
	_ = retry(0, 0, func(int) error {
		calls++
		return nil
	})
	if calls != 1 {
		t.Fatalf("expected 1 call, got %d", calls)
	}
}
