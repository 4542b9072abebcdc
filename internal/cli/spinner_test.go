package cli

import (
	"context"
	"testing"
	"time"
)

func TestSpinnerBasic(t *testing.T) {
	s := newSpinner(context.Background(), "working")
	s.start()
	time.Sleep(100 * time.Millisecond)
	s.stop()
}

func TestSpinnerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s := newSpinner(ctx, "working")
	s.start()
	cancel()

	// stop must return even though the animation goroutine already exited
	// due to the cancelled context.
	done := make(chan struct{})
	go func() {
		s.stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("stop() did not return after context cancellation")
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s := newSpinner(context.Background(), "working")
	s.start()

	// Multiple stops must not panic
	s.stop()
	s.stop()
	s.stop()
}
