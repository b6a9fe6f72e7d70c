// Package xsync drives the periodic refresh loop: one cycle fetches
// connection status and the day/week cardio totals, reconciles them
// into a presentation snapshot, and pushes it to the renderer.
package xsync

import (
	"context"
	"log/slog"
	"math"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/otterbagel/cardiolog/internal/client/cardio"
	"github.com/otterbagel/cardiolog/internal/clock"
	"github.com/otterbagel/cardiolog/internal/xslog"
)

const DefaultInterval = 5 * time.Second

// Session is the scheduler's view of the session controller. Snapshot
// captures identity and epoch before a cycle; Current rechecks the
// epoch before results are applied, so a cycle that raced a logout or
// re-login discards its work instead of rendering stale state.
type Session interface {
	Snapshot() SessionSnapshot
	Current(epoch uint64) bool
}

type SessionSnapshot struct {
	UserID   string
	Timezone string
	Epoch    uint64
	LoggedIn bool
}

// Metrics is the presentation model: floored points and whole active
// minutes, as displayed.
type Metrics struct {
	Points        int
	ActiveMinutes int
}

// Snapshot carries both scopes of one successful cycle. It is applied
// atomically: a cycle either produces a full snapshot or nothing.
type Snapshot struct {
	Day  Metrics
	Week Metrics
}

type Renderer interface {
	RenderConnection(connected bool)
	RenderTotals(totals Snapshot)
}

type Scheduler struct {
	conn       cardio.ConnectionService
	totals     cardio.TotalsService
	clk        clock.Clock
	renderer   Renderer
	session    Session
	interval   time.Duration
	fallbackTZ string
	logger     *slog.Logger

	group singleflight.Group

	mu     sync.Mutex
	cancel context.CancelFunc
}

func New(
	conn cardio.ConnectionService,
	totals cardio.TotalsService,
	clk clock.Clock,
	renderer Renderer,
	session Session,
	opts ...Option,
) *Scheduler {
	s := &Scheduler{
		conn:       conn,
		totals:     totals,
		clk:        clk,
		renderer:   renderer,
		session:    session,
		interval:   DefaultInterval,
		fallbackTZ: "UTC",
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

type Option func(*Scheduler)

func WithInterval(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.interval = d
		}
	}
}

func WithFallbackTimezone(tz string) Option {
	return func(s *Scheduler) { s.fallbackTZ = tz }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) { s.logger = logger }
}

// Start begins the periodic loop, replacing any loop already running so
// a session has exactly one. The first cycle runs immediately.
func (s *Scheduler) Start() {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	go s.loop(ctx)
}

// Stop ends the loop. Idempotent. An in-flight cycle is neither waited
// for nor aborted; its results fail the epoch check and are discarded.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Trigger runs one cycle now, without waiting for the next tick.
func (s *Scheduler) Trigger() {
	go s.RunCycle(context.Background())
}

func (s *Scheduler) loop(ctx context.Context) {
	// cancellation ends the loop but never aborts a cycle already in
	// flight; its results are discarded by the epoch check instead
	cycleCtx := context.WithoutCancel(ctx)

	s.RunCycle(cycleCtx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunCycle(cycleCtx)
		}
	}
}

// RunCycle executes one refresh cycle. Overlapping callers collapse
// onto the in-flight cycle, so at most one runs at a time.
func (s *Scheduler) RunCycle(ctx context.Context) {
	started := s.clk.Now()
	_, err, _ := s.group.Do("cycle", func() (any, error) {
		return nil, s.cycle(ctx)
	})
	if err != nil {
		s.logger.WarnContext(ctx, "refresh cycle failed",
			xslog.Error(err),
			xslog.Duration(s.clk.Now().Sub(started)))
	}
}

func (s *Scheduler) cycle(ctx context.Context) error {
	sess := s.session.Snapshot()
	if !sess.LoggedIn {
		return nil
	}

	connected, err := s.conn.Status(ctx, sess.UserID)
	if err != nil {
		return err
	}
	if !s.session.Current(sess.Epoch) {
		return nil
	}
	s.renderer.RenderConnection(connected)

	stamp := clock.Resolve(s.clk.Now(), sess.Timezone, s.fallbackTZ)

	day, err := s.totals.Day(ctx, sess.UserID, cardio.DayParams{
		Year: stamp.Year,
		Week: stamp.Week,
		Day:  stamp.Day,
	})
	if err != nil {
		return err
	}

	week, err := s.totals.Week(ctx, sess.UserID, cardio.WeekParams{
		Year: stamp.Year,
		Week: stamp.Week,
	})
	if err != nil {
		return err
	}

	if !s.session.Current(sess.Epoch) {
		return nil
	}
	s.renderer.RenderTotals(Snapshot{
		Day:  toMetrics(*day),
		Week: toMetrics(*week),
	})

	s.logger.DebugContext(ctx, "cycle complete",
		xslog.Connected(connected),
		xslog.Epoch(sess.Epoch))
	return nil
}

func toMetrics(t cardio.Totals) Metrics {
	return Metrics{
		Points:        int(math.Floor(t.Points)),
		ActiveMinutes: int(math.Floor(t.ActiveSeconds / 60.0)),
	}
}
