// Package worker runs periodic background tasks.
package worker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

const logFieldWorker = "worker"

var errIntervalRequired = errors.New("ticker interval must be positive")

// TickerConfig configures a ticker loop.
type TickerConfig struct {
	// Name identifies the worker for logging.
	Name string

	// Interval between ticks.
	Interval time.Duration

	// RunOnStart runs OnTick once before the first tick.
	RunOnStart bool

	// OnTick is called on every tick.
	OnTick func(ctx context.Context)

	// Logger for the worker.
	Logger *zerolog.Logger
}

// TickerLoop calls cfg.OnTick every cfg.Interval until ctx is cancelled.
// It returns the wrapped context error.
func TickerLoop(ctx context.Context, cfg TickerConfig) error {
	if cfg.Interval <= 0 {
		return fmt.Errorf("ticker loop %s: %w", cfg.Name, errIntervalRequired)
	}

	logger := cfg.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	logger.Debug().Str(logFieldWorker, cfg.Name).Dur("interval", cfg.Interval).Msg("starting ticker loop")
	defer logger.Debug().Str(logFieldWorker, cfg.Name).Msg("ticker loop stopped")

	if cfg.RunOnStart && cfg.OnTick != nil {
		cfg.OnTick(ctx)
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("ticker loop %s: %w", cfg.Name, ctx.Err())
		case <-ticker.C:
			if cfg.OnTick != nil {
				cfg.OnTick(ctx)
			}
		}
	}
}
