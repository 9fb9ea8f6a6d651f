// Package app owns the application state and serializes every user action and tick.
package app

import (
	"context"
	"sync"
	"time"

	"github.com/matt-steen/focus-board/pkg/board"
	"github.com/matt-steen/focus-board/pkg/db"
	"github.com/matt-steen/focus-board/pkg/pomodoro"
	"github.com/rs/zerolog/log"
)

// Options configures New.
type Options struct {
	// Location decides calendar days for daily seeding. Defaults to time.Local.
	Location *time.Location
	// Settings are used until the user has saved their own.
	Settings pomodoro.Settings
	// IDGenerator overrides uuid ids, for tests.
	IDGenerator func() string
}

// App is the single controller over the board, the focus timer and persistence.
// All methods are safe for concurrent use.
type App struct {
	mu         sync.Mutex
	ctx        context.Context
	store      db.Store
	clock      Clock
	board      *board.Board
	timer      *pomodoro.Timer
	dragging   string
	persistErr error
	listeners  []func()
}

// New loads persisted state from store and seeds today's daily tasks if needed.
func New(ctx context.Context, store db.Store, clock Clock, opts Options) *App {
	if opts.Location == nil {
		opts.Location = time.Local
	}

	if opts.Settings == (pomodoro.Settings{}) {
		opts.Settings = pomodoro.DefaultSettings()
	}

	st, unreadable := load(ctx, store, opts.Settings)

	boardOpts := []board.Option{board.WithLocation(opts.Location)}
	if opts.IDGenerator != nil {
		boardOpts = append(boardOpts, board.WithIDGenerator(opts.IDGenerator))
	}

	a := &App{
		ctx:   ctx,
		store: store,
		clock: clock,
		board: board.New(st.tasks, st.templates, st.seedMarker, boardOpts...),
	}
	a.timer = pomodoro.New(st.settings, a.board)

	now := a.now()
	a.board.Enforce(now)
	a.board.SeedIfNeeded(now)
	a.persistSkipping(unreadable)

	log.Info().
		Int("tasks", len(st.tasks)).
		Int("templates", len(st.templates)).
		Str("seedMarker", a.board.SeedMarker()).
		Msg("loaded board")

	return a
}

func (a *App) now() int64 {
	return board.Millis(a.clock.Now())
}

// persist saves the current state. Failures are logged and kept for LastPersistError.
func (a *App) persist() {
	a.persistSkipping(nil)
}

func (a *App) persistSkipping(skip map[db.Key]bool) {
	a.persistErr = save(a.ctx, a.store, state{
		tasks:      a.board.Tasks(),
		templates:  a.board.Templates(),
		seedMarker: a.board.SeedMarker(),
		settings:   a.timer.Settings(),
	}, skip)
}

// update runs fn under the lock, persists when it reports a change and notifies listeners.
func (a *App) update(fn func(now int64) bool) bool {
	a.mu.Lock()

	changed := fn(a.now())
	if changed {
		a.persist()
	}

	listeners := append([]func(){}, a.listeners...)
	a.mu.Unlock()

	if changed {
		for _, listener := range listeners {
			listener()
		}
	}

	return changed
}

// OnChange registers fn to be called after every state change, outside the lock.
func (a *App) OnChange(fn func()) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.listeners = append(a.listeners, fn)
}

// LastPersistError returns the error of the most recent save, nil if it succeeded.
func (a *App) LastPersistError() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.persistErr
}

// Tick advances the focus timer and reseeds daily tasks when the day changes.
// Listeners are always notified so elapsed times can be redrawn.
func (a *App) Tick() {
	a.mu.Lock()

	now := a.now()
	finished := a.timer.Tick(now)
	seeded := a.board.SeedIfNeeded(now)

	if finished || seeded > 0 {
		a.persist()
	}

	listeners := append([]func(){}, a.listeners...)
	a.mu.Unlock()

	for _, listener := range listeners {
		listener()
	}
}

// Run ticks every interval until ctx is done.
func (a *App) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("tick loop stopped")

			return
		case <-ticker.C:
			a.Tick()
		}
	}
}
