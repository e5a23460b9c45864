package client

import (
	"context"
	"time"
)

// startPolling launches the 15-second auto-refresh loop. At most one loop
// runs per session; it dies on logout. A tick whose fetch outlasts the
// interval is not guarded against, so two fetches can briefly overlap.
func (d *Dashboard) startPolling() {
	d.mu.Lock()
	if d.cancelPoll != nil {
		d.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancelPoll = cancel
	interval := d.pollInterval
	d.mu.Unlock()

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				go d.Refresh(ctx)
			}
		}
	}()
}

func (d *Dashboard) stopPolling() {
	d.mu.Lock()
	cancel := d.cancelPoll
	d.cancelPoll = nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}

// startStream subscribes to the push feed and prepends every insert event
// into the activity feed. Best effort: a dropped stream logs and stays
// closed, the polled snapshot keeps the feed usable.
func (d *Dashboard) startStream() {
	d.mu.Lock()
	if d.cancelStream != nil {
		d.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	d.cancelStream = cancel
	d.mu.Unlock()

	go func() {
		if err := d.api.SubscribeActivity(ctx, d.feed.Prepend); err != nil && ctx.Err() == nil {
			d.log.Warn("Activity stream ended", "error", err)
		}
	}()
}

func (d *Dashboard) stopStream() {
	d.mu.Lock()
	cancel := d.cancelStream
	d.cancelStream = nil
	d.mu.Unlock()

	if cancel != nil {
		cancel()
	}
}
