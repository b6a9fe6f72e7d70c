package tui

import (
	"github.com/otterbagel/cardiolog/internal/client/cardio"
	"github.com/otterbagel/cardiolog/internal/session"
	"github.com/otterbagel/cardiolog/internal/xsync"
)

// SessionMsg reports the outcome of a bootstrap, login, or logout.
type SessionMsg struct {
	State session.State
	User  *cardio.User
	Err   error
}

// ConnectionMsg is pushed by the scheduler after each cycle's
// connection check.
type ConnectionMsg struct {
	Connected bool
}

// TotalsMsg is pushed by the scheduler when a full cycle succeeds.
type TotalsMsg struct {
	Totals xsync.Snapshot
}

// ConnectDoneMsg reports the outcome of a connect request.
type ConnectDoneMsg struct {
	Err error
}
