package database

import (
	"context"
	"fmt"
	"log"
	"time"
)

// DefaultReadyInterval is how often WaitReady polls the backend.
const DefaultReadyInterval = 100 * time.Millisecond

// Pinger is a backend that can report whether it accepts requests.
type Pinger interface {
	Ping(ctx context.Context) error
}

// WaitReady polls p until it answers, the timeout elapses or ctx is done.
func WaitReady(ctx context.Context, p Pinger, timeout, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultReadyInterval
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	attempts := 0
	for {
		attempts++
		err := p.Ping(ctx)
		if err == nil {
			log.Printf("[database] backend ready attempts=%d", attempts)
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("backend not ready after %s (%d attempts): %w", timeout, attempts, err)
		case <-ticker.C:
		}
	}
}
