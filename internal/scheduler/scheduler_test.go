package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestStartRunsOnTicks(t *testing.T) {
	ran := make(chan struct{}, 1)
	s := New(RunnerFunc(func(ctx context.Context) error {
		select {
		case ran <- struct{}{}:
		default:
		}
		return nil
	}), 5*time.Millisecond, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("runner never triggered")
	}
	cancel()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Start returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not stop after cancel")
	}
}

func TestTriggerSkipsWhileRunning(t *testing.T) {
	var count int32
	started := make(chan struct{})
	release := make(chan struct{})
	s := New(RunnerFunc(func(ctx context.Context) error {
		if atomic.AddInt32(&count, 1) == 1 {
			close(started)
			<-release
		}
		return nil
	}), time.Hour, nil)

	done := make(chan struct{})
	go func() {
		s.trigger(context.Background())
		close(done)
	}()
	<-started

	// Overlapping trigger must return without running the job again.
	s.trigger(context.Background())
	if got := atomic.LoadInt32(&count); got != 1 {
		t.Errorf("runner ran %d times, want 1 while a run is in flight", got)
	}

	close(release)
	<-done

	s.trigger(context.Background())
	if got := atomic.LoadInt32(&count); got != 2 {
		t.Errorf("runner ran %d times, want 2 after the first run finished", got)
	}
}

func TestStartReturnsOnImmediateCancel(t *testing.T) {
	s := New(RunnerFunc(func(ctx context.Context) error { return nil }), time.Hour, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- s.Start(ctx) }()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Start returned %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Start did not return for a cancelled context")
	}
}
