package cache

import (
	"context"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/davidbz/tenancheck/internal/observability"
)

// sweepBatchSize bounds how many removals happen per lock acquisition.
const sweepBatchSize = 256

// Sweep removes every expired entry and returns how many were removed.
// Expired entries are already invisible to Get, so a cancelled sweep leaves
// the cache consistent.
func (c *Cache[T]) Sweep(ctx context.Context) int {
	logger := observability.FromContext(ctx)
	started := time.Now()

	expired := c.expiredKeys()

	removed := 0
	var freed int64
	for start := 0; start < len(expired); start += sweepBatchSize {
		if ctx.Err() != nil {
			logger.Info("cache sweep interrupted",
				observability.Int("removed", removed),
				observability.Int("pending", len(expired)-start))
			break
		}

		end := min(start+sweepBatchSize, len(expired))

		c.mu.Lock()
		now := c.now()
		for _, key := range expired[start:end] {
			// The key may have been rewritten since the scan.
			e, ok := c.entries.Peek(key)
			if !ok || !e.expired(now) {
				continue
			}
			freed += e.size()
			c.entries.Remove(key)
			c.counters.expirations++
			removed++
		}
		c.mu.Unlock()
	}

	if removed > 0 {
		logger.Info("cache sweep removed expired entries",
			observability.Int("removed", removed),
			observability.String("freed", humanize.Bytes(uint64(freed))),
			observability.Int64("freed_bytes", freed),
			observability.Duration("elapsed", time.Since(started)))

		c.publish(ctx, EventSwept, map[string]interface{}{
			"removed":     removed,
			"freed_bytes": freed,
		})
	}

	return removed
}

func (c *Cache[T]) expiredKeys() []Key {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	var expired []Key
	for _, key := range c.entries.Keys() {
		if e, ok := c.entries.Peek(key); ok && e.expired(now) {
			expired = append(expired, key)
		}
	}
	return expired
}

// Start runs Sweep every SweepInterval until ctx is cancelled or Close is called.
// Calling Start on a running cache is a no-op.
func (c *Cache[T]) Start(ctx context.Context) {
	c.sweepMu.Lock()
	defer c.sweepMu.Unlock()

	if c.stopSweep != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.stopSweep = cancel
	c.sweepDone = done

	observability.FromContext(ctx).Info("cache sweeper started",
		observability.Duration("interval", c.cfg.SweepInterval))

	go func() {
		defer close(done)

		ticker := time.NewTicker(c.cfg.SweepInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.Sweep(ctx)
			}
		}
	}()
}

// Close stops the sweeper and waits for it to exit.
func (c *Cache[T]) Close() error {
	c.sweepMu.Lock()
	stop, done := c.stopSweep, c.sweepDone
	c.stopSweep, c.sweepDone = nil, nil
	c.sweepMu.Unlock()

	if stop == nil {
		return nil
	}

	stop()
	<-done

	return nil
}
