package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"
)

type WatchConfig struct {
	IntervalSec int
	RefreshFunc func() error
	ClearScreen func()
	OnError     func(error)
}

// RunWatch re-runs the refresh function on an interval until
// interrupted. Refresh errors are reported through OnError (or stderr)
// without stopping the loop.
func RunWatch(cfg WatchConfig) error {
	interval := time.Duration(cfg.IntervalSec) * time.Second
	if interval <= 0 {
		interval = 2 * time.Second
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if cfg.ClearScreen != nil {
			cfg.ClearScreen()
		}

		if cfg.RefreshFunc != nil {
			if err := cfg.RefreshFunc(); err != nil {
				if cfg.OnError != nil {
					cfg.OnError(err)
				} else {
					fmt.Fprintln(os.Stderr, err)
				}
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func ClearScreen() {
	fmt.Print("\033[H\033[2J")
}
