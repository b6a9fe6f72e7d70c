// Package session owns the credential lifecycle: silent re-login on
// start, explicit login and logout, and the epoch token that lets
// in-flight refresh cycles detect they have gone stale.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/otterbagel/cardiolog/internal/client/cardio"
	"github.com/otterbagel/cardiolog/internal/credstore"
	"github.com/otterbagel/cardiolog/internal/xslog"
	"github.com/otterbagel/cardiolog/internal/xsync"
)

var (
	ErrMalformedUser = errors.New("user response missing id")
	ErrNotLoggedIn   = errors.New("no active session")
)

// CredentialStore is the durable slot store behind the controller.
type CredentialStore interface {
	Get(ctx context.Context) (credstore.Credentials, error)
	Save(ctx context.Context, apiKey, userID string) error
	Clear(ctx context.Context) error
}

// Scheduler is the refresh loop the controller starts and stops with
// the session.
type Scheduler interface {
	Start()
	Stop()
	Trigger()
}

type Controller struct {
	store     CredentialStore
	users     cardio.UserService
	conn      cardio.ConnectionService
	scheduler Scheduler
	logger    *slog.Logger

	mu    sync.Mutex
	state State
	user  *cardio.User
	epoch uint64
}

var _ xsync.Session = (*Controller)(nil)

func New(store CredentialStore, users cardio.UserService, conn cardio.ConnectionService, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		store:  store,
		users:  users,
		conn:   conn,
		logger: logger,
	}
}

// SetScheduler wires the refresh loop. The scheduler observes the
// controller and the controller drives the scheduler, so one side is
// attached after construction.
func (c *Controller) SetScheduler(s Scheduler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.scheduler = s
}

// Bootstrap attempts a silent login from stored credentials. Any
// failure - missing credentials, transport error, rejected key, or a
// malformed user - collapses to LoggedOut with the store cleared and
// the refresh loop stopped. The returned error reports why a complete
// credential pair did not produce a session; an empty store is a
// normal outcome and returns nil.
func (c *Controller) Bootstrap(ctx context.Context) error {
	creds, err := c.store.Get(ctx)
	if err != nil {
		c.logout(ctx)
		return fmt.Errorf("reading credentials: %w", err)
	}
	if !creds.Complete() {
		c.logout(ctx)
		return nil
	}

	c.transition(StateAuthenticating, nil)

	user, err := c.users.Get(ctx, *creds.UserID)
	if err != nil {
		c.logout(ctx)
		return fmt.Errorf("fetching user: %w", err)
	}
	if user.ID == "" {
		c.logout(ctx)
		return ErrMalformedUser
	}

	c.transition(StateLoggedIn, user)
	c.logger.InfoContext(ctx, "session established", xslog.UserID(user.ID))

	if s := c.currentScheduler(); s != nil {
		s.Start()
	}
	return nil
}

// Login persists the pair, then re-validates it through Bootstrap.
// Fresh credentials only take effect by round-tripping the store; the
// submitted values are never trusted directly.
func (c *Controller) Login(ctx context.Context, apiKey, userID string) error {
	if err := c.store.Save(ctx, apiKey, userID); err != nil {
		return fmt.Errorf("saving credentials: %w", err)
	}
	return c.Bootstrap(ctx)
}

// Logout clears everything: store, user, refresh loop. Unconditional
// and idempotent; logging out without a session is a no-op that still
// succeeds.
func (c *Controller) Logout(ctx context.Context) {
	c.logout(ctx)
}

func (c *Controller) logout(ctx context.Context) {
	if err := c.store.Clear(ctx); err != nil {
		c.logger.ErrorContext(ctx, "failed to clear credentials", xslog.Error(err))
	}
	c.transition(StateLoggedOut, nil)
	if s := c.currentScheduler(); s != nil {
		s.Stop()
	}
}

// Connect asks the service to connect the current user, then triggers
// an immediate refresh cycle so the UI reflects the new connection
// state without waiting for the next tick.
func (c *Controller) Connect(ctx context.Context) error {
	c.mu.Lock()
	user := c.user
	c.mu.Unlock()

	if user == nil {
		return ErrNotLoggedIn
	}

	if err := c.conn.Connect(ctx, user.ID); err != nil {
		return fmt.Errorf("requesting connect: %w", err)
	}

	if s := c.currentScheduler(); s != nil {
		s.Trigger()
	}
	return nil
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// User returns a copy of the current user, or nil while logged out.
func (c *Controller) User() *cardio.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.user == nil {
		return nil
	}
	u := *c.user
	return &u
}

func (c *Controller) LoggedIn() bool {
	return c.State() == StateLoggedIn
}

// Snapshot implements xsync.Session.
func (c *Controller) Snapshot() xsync.SessionSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := xsync.SessionSnapshot{
		Epoch:    c.epoch,
		LoggedIn: c.state == StateLoggedIn,
	}
	if c.user != nil {
		snap.UserID = c.user.ID
		snap.Timezone = c.user.Timezone
	}
	return snap
}

// Current implements xsync.Session: a cycle's results only apply while
// the epoch it started under is still the live LoggedIn epoch.
func (c *Controller) Current(epoch uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == StateLoggedIn && c.epoch == epoch
}

// transition moves to the given state and bumps the epoch, staling any
// in-flight cycle started under the previous state.
func (c *Controller) transition(state State, user *cardio.User) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = state
	c.user = user
	c.epoch++
}

func (c *Controller) currentScheduler() Scheduler {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.scheduler
}
