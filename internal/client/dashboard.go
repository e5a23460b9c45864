package client

import (
	"context"
	"sync"
	"time"

	"github.com/skillforge/dashboard-backend/internal/logger"
	"github.com/skillforge/dashboard-backend/internal/types"
)

const (
	defaultPollInterval = 15 * time.Second
	activityFeedSize    = 3
)

// Dashboard drives the client-side session: login swaps demo data for live
// data and starts the polling loop; any failure reverts to demo data. The
// activity feed is updated from two independent sources, the polled
// /recent-activity snapshot and push events from /activity/stream.
type Dashboard struct {
	mu           sync.Mutex
	log          *logger.Logger
	api          *APIClient
	session      Session
	feed         *Feed
	pollInterval time.Duration
	cancelPoll   context.CancelFunc
	cancelStream context.CancelFunc
	now          func() time.Time
}

func NewDashboard(api *APIClient, log *logger.Logger) *Dashboard {
	return &Dashboard{
		log:          log.With("component", "Dashboard"),
		api:          api,
		session:      NewSession(),
		feed:         NewFeed(activityFeedSize),
		pollInterval: defaultPollInterval,
		now:          time.Now,
	}
}

// Session returns the current immutable session value.
func (d *Dashboard) Session() Session {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.session
}

// ActivityFeed returns the current feed entries, newest first.
func (d *Dashboard) ActivityFeed() []types.ActivityEntry {
	return d.feed.Entries()
}

// Login authenticates as name and, on success, starts auto-refresh. On any
// failure the session reverts to demo data with the error recorded; the
// error kinds are deliberately not distinguished.
func (d *Dashboard) Login(ctx context.Context, name string) error {
	d.mu.Lock()
	d.session = d.session.BeginLogin(name)
	d.mu.Unlock()

	data, err := d.api.FetchUserData(ctx, name, name)
	if err != nil {
		d.log.Warn("Login fetch failed, reverting to demo data", "user", name, "error", err)
		d.mu.Lock()
		d.session = d.session.FailLogin(err.Error())
		d.mu.Unlock()
		return err
	}

	d.mu.Lock()
	d.session = d.session.CompleteLogin(data, d.now())
	d.mu.Unlock()

	// Feed snapshot is best effort; the push stream keeps it live after.
	if entries, err := d.api.FetchRecentActivity(ctx); err != nil {
		d.log.Warn("Recent activity fetch failed, keeping current feed", "error", err)
	} else {
		d.feed.Replace(entries)
	}

	d.startPolling()
	d.startStream()
	return nil
}

// Refresh re-fetches the authenticated user's data. A failed refresh drops
// the session back to demo data, same as a failed login.
func (d *Dashboard) Refresh(ctx context.Context) {
	d.mu.Lock()
	if d.session.State != StateAuthenticated {
		d.mu.Unlock()
		return
	}
	name := d.session.CurrentUser
	d.mu.Unlock()

	data, err := d.api.FetchUserData(ctx, name, name)

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.session.State != StateAuthenticated || d.session.CurrentUser != name {
		// Logged out while the fetch was in flight.
		return
	}
	if err != nil {
		d.log.Warn("Refresh failed, reverting to demo data", "user", name, "error", err)
		d.session = d.session.FailLogin(err.Error())
		return
	}
	d.session = d.session.WithRefreshed(data, d.now())
}

// Logout cancels polling and the push stream, then returns to the demo
// session with the demo feed.
func (d *Dashboard) Logout() {
	d.stopPolling()
	d.stopStream()

	d.mu.Lock()
	d.session = d.session.Logout()
	d.mu.Unlock()
	d.feed.Replace(DemoFeed())

	d.log.Debug("Logged out, showing demo data")
}
