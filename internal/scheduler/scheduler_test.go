package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestNewRejectsInvalidSpec(t *testing.T) {
	_, err := New("not a schedule", func(ctx context.Context) error { return nil })
	if err == nil {
		t.Error("Expected error for invalid cron spec")
	}
}

func TestSchedulerTriggersRuns(t *testing.T) {
	var runs atomic.Int32

	s, err := New("@every 10ms", func(ctx context.Context) error {
		runs.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}

	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.Stop()

	if runs.Load() == 0 {
		t.Error("Expected at least one scheduled run")
	}
}
