package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestTickerLoop_RunsUntilCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var ticks atomic.Int32

	done := make(chan error, 1)

	go func() {
		done <- TickerLoop(ctx, TickerConfig{
			Name:       "test",
			Interval:   5 * time.Millisecond,
			RunOnStart: true,
			OnTick: func(context.Context) {
				if ticks.Add(1) >= 3 {
					cancel()
				}
			},
		})
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("TickerLoop() error = %v, want context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("TickerLoop did not stop after cancel")
	}

	if ticks.Load() < 3 {
		t.Errorf("ticks = %d, want at least 3", ticks.Load())
	}
}

func TestTickerLoop_RunOnStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var ticks atomic.Int32

	go func() {
		_ = TickerLoop(ctx, TickerConfig{
			Interval:   time.Hour,
			RunOnStart: true,
			OnTick:     func(context.Context) { ticks.Add(1) },
		})
	}()

	deadline := time.Now().Add(time.Second)
	for ticks.Load() == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}

	cancel()

	if ticks.Load() != 1 {
		t.Errorf("ticks = %d, want 1", ticks.Load())
	}
}

func TestTickerLoop_InvalidInterval(t *testing.T) {
	if err := TickerLoop(context.Background(), TickerConfig{Name: "bad"}); !errors.Is(err, errIntervalRequired) {
		t.Errorf("TickerLoop() error = %v, want errIntervalRequired", err)
	}
}
