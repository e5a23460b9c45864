package client

import (
	"time"

	"github.com/skillforge/dashboard-backend/internal/types"
)

type State string

const (
	StateLoggedOut      State = "loggedOut"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
	StateAuthError      State = "authError"
)

// Session is the dashboard's entire client-side state as one immutable
// value. Transitions return a new Session; nothing mutates in place, which
// replaces the ad hoc flag juggling the UI used to do.
//
//	loggedOut -> authenticating -> authenticated | authError
type Session struct {
	State       State
	CurrentUser string
	IsAdmin     bool
	Demo        bool
	AutoRefresh bool
	Data        types.DashboardData
	Err         string
	LastUpdated time.Time
}

// NewSession starts logged out on demo data.
func NewSession() Session {
	return Session{
		State: StateLoggedOut,
		Demo:  true,
		Data:  DemoData(),
	}
}

// BeginLogin records the attempted identity and clears any prior error.
// Demo data stays on screen while authentication is in flight.
func (s Session) BeginLogin(name string) Session {
	s.State = StateAuthenticating
	s.CurrentUser = name
	s.Err = ""
	return s
}

// CompleteLogin swaps in live data and enables polling.
func (s Session) CompleteLogin(data types.DashboardData, at time.Time) Session {
	s.State = StateAuthenticated
	s.IsAdmin = data.IsAdmin
	s.Demo = false
	s.AutoRefresh = true
	s.Data = data
	s.Err = ""
	s.LastUpdated = at
	return s
}

// FailLogin reverts to demo data with an error banner. Every failure kind
// is treated the same; the client does not distinguish the server's error
// taxonomy.
func (s Session) FailLogin(errMsg string) Session {
	s.State = StateAuthError
	s.IsAdmin = false
	s.Demo = true
	s.AutoRefresh = false
	s.Data = DemoData()
	s.Err = errMsg
	return s
}

// WithRefreshed applies a successful poll without changing authentication
// state.
func (s Session) WithRefreshed(data types.DashboardData, at time.Time) Session {
	s.Data = data
	s.IsAdmin = data.IsAdmin
	s.Err = ""
	s.LastUpdated = at
	return s
}

// Logout returns to the initial demo state.
func (s Session) Logout() Session {
	return NewSession()
}
