package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerStartStop(t *testing.T) {
	s := newSpinner("building diagram...")
	s.Start()
	time.Sleep(100 * time.Millisecond)
	s.Stop()
	// Stop tears down the internal context, so Cancelled is not a
	// reliable "was interrupted" signal after an explicit Stop.
}

func TestSpinnerContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinnerWithContext(ctx, "building diagram...")
	s.Start()
	cancel()

	// Let the animation goroutine observe the cancellation.
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Cancelled() = false after context cancellation")
	}
}

func TestSpinnerContextTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := newSpinnerWithContext(ctx, "rendering artifacts...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Cancelled() = false after context timeout")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner("stopping twice...")
	s.Start()

	// Repeated stops must not panic or deadlock.
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerStopWithOutcome(t *testing.T) {
	s := newSpinner("succeeding...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithSuccess("built diagram")

	s = newSpinner("failing...")
	s.Start()
	time.Sleep(50 * time.Millisecond)
	s.StopWithError("build failed")
}
