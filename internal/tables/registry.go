// Package tables keeps the in-memory games played in browsers. Each table runs one game at a time and serialises
// the inputs sent to it.
package tables

import (
	"context"
	"github.com/google/uuid"
	"github.com/jamesungureanu/LifeTune/internal/catalog"
	"github.com/jamesungureanu/LifeTune/internal/errors"
	"github.com/jamesungureanu/LifeTune/internal/game"
	"github.com/jamesungureanu/LifeTune/internal/logging"
	"github.com/jamesungureanu/LifeTune/internal/metrics"
	"github.com/jamesungureanu/LifeTune/internal/models"
	"github.com/jamesungureanu/LifeTune/internal/random"
	"log/slog"
	"sync"
	"time"
)

var ErrNotFound = errors.NewSentinel("table not found")

// Store persists finished games.
type Store interface {
	Create(ctx context.Context, session models.NewGameSession) (*models.GameSession, error)
}

// NewGameFunc creates the game a fresh table starts with.
type NewGameFunc func() (*game.Game, error)

// StandardGame deals a game with the standard catalog and rules and its own random source.
func StandardGame() (*game.Game, error) {
	rng, err := random.NewRand()
	if err != nil {
		return nil, errors.Wrap(err, "seed game")
	}
	return game.New(catalog.Standard(), game.DefaultRules(), rng)
}

type Config struct {
	// RevealDelay holds back the final standings after liquidation.
	RevealDelay time.Duration
	// PersistTimeout bounds the single attempt to store a finished game.
	PersistTimeout time.Duration
}

type table struct {
	mu         sync.Mutex
	game       *game.Game
	lastActive time.Time
	endedAt    time.Time
	persisted  bool
}

type Registry struct {
	mu      sync.Mutex
	tables  map[string]*table
	newGame NewGameFunc
	store   Store
	logger  *slog.Logger
	metrics *metrics.Metrics
	cfg     Config
	now     func() time.Time
	wg      sync.WaitGroup
}

func New(logger *slog.Logger, store Store, m *metrics.Metrics, newGame NewGameFunc, cfg Config) *Registry {
	return &Registry{
		mu:      sync.Mutex{},
		tables:  make(map[string]*table),
		newGame: newGame,
		store:   store,
		logger:  logger.With(slog.String("source", "tables")),
		metrics: m,
		cfg:     cfg,
		now:     time.Now,
		wg:      sync.WaitGroup{},
	}
}

// Create opens a table with a game waiting for its player count.
func (r *Registry) Create() (string, error) {
	var (
		g   *game.Game
		err error
	)
	if g, err = r.newGame(); err != nil {
		return "", errors.Wrap(err, "new game")
	}
	id := uuid.NewString()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tables[id] = &table{
		mu:         sync.Mutex{},
		game:       g,
		lastActive: r.now(),
		endedAt:    time.Time{},
		persisted:  false,
	}
	r.metrics.ActiveTables.Set(float64(len(r.tables)))
	return id, nil
}

func (r *Registry) lookup(id string) (*table, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tables[id]
	return t, ok
}

func (r *Registry) Exists(id string) bool {
	_, ok := r.lookup(id)
	return ok
}

// View snapshots the game on the table.
func (r *Registry) View(id string) (game.View, bool) {
	t, ok := r.lookup(id)
	if !ok {
		return game.View{}, false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return r.view(t), true
}

// view must be called with t.mu held.
func (r *Registry) view(t *table) game.View {
	v := t.game.View()
	if v.State == game.StateEnded && r.now().Before(t.endedAt.Add(r.cfg.RevealDelay)) {
		v.HoldResults()
	}
	return v
}

// Apply runs one input against the table's game. Errors from the game are returned together with the resulting
// view. The first time the game ends its summary is stored in the background.
func (r *Registry) Apply(ctx context.Context, id string, a game.Action) (game.View, error) {
	t, ok := r.lookup(id)
	if !ok {
		return game.View{}, ErrNotFound
	}
	ctx = logging.WithAttrs(ctx, slog.String("action", string(a.Kind)))

	t.mu.Lock()
	defer t.mu.Unlock()
	t.lastActive = r.now()

	err := t.game.Apply(a)
	switch {
	case err == nil:
		r.metrics.Action(string(a.Kind), metrics.OutcomeOK)
		r.logger.LogAttrs(ctx, slog.LevelDebug, "applied action")
	case errors.Is(err, game.ErrRejected):
		r.metrics.Action(string(a.Kind), metrics.OutcomeRejected)
		r.logger.LogAttrs(ctx, slog.LevelInfo, "action rejected", errors.SlogError(err))
	default:
		r.metrics.Action(string(a.Kind), metrics.OutcomeInvalid)
		r.logger.LogAttrs(ctx, slog.LevelDebug, "action declined", errors.SlogError(err))
	}

	if t.game.State() == game.StateEnded && !t.persisted {
		t.persisted = true
		t.endedAt = r.now()
		r.metrics.GamesFinished.Inc()
		summary, summaryErr := t.game.Summary(t.endedAt)
		if summaryErr != nil {
			r.logger.LogAttrs(ctx, slog.LevelError, "summarise game", errors.SlogError(summaryErr))
		} else {
			r.wg.Add(1)
			go r.persist(context.WithoutCancel(ctx), summary)
		}
	}
	return r.view(t), err
}

// persist makes a single attempt to store the summary. Failures are logged, the players still see their standings.
func (r *Registry) persist(ctx context.Context, summary models.NewGameSession) {
	defer r.wg.Done()
	ctx, cancel := context.WithTimeout(ctx, r.cfg.PersistTimeout)
	defer cancel()

	start := r.now()
	session, err := r.store.Create(ctx, summary)
	r.metrics.Stored(err == nil, r.now().Sub(start))
	if err != nil {
		r.logger.LogAttrs(ctx, slog.LevelError, "store game session", errors.SlogError(err))
		return
	}
	r.logger.LogAttrs(ctx, slog.LevelInfo, "stored game session",
		slog.Int64("session_id", session.ID), slog.String("winner", session.Winner))
}

// Reset replaces the table's game with a new one.
func (r *Registry) Reset(id string) error {
	t, ok := r.lookup(id)
	if !ok {
		return ErrNotFound
	}
	g, err := r.newGame()
	if err != nil {
		return errors.Wrap(err, "new game")
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.game = g
	t.lastActive = r.now()
	t.endedAt = time.Time{}
	t.persisted = false
	return nil
}

// Prune drops tables without input for longer than maxIdle and returns how many were dropped.
func (r *Registry) Prune(maxIdle time.Duration) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	cutoff := r.now().Add(-maxIdle)
	pruned := 0
	for id, t := range r.tables {
		t.mu.Lock()
		idle := t.lastActive.Before(cutoff)
		t.mu.Unlock()
		if idle {
			delete(r.tables, id)
			pruned++
		}
	}
	r.metrics.ActiveTables.Set(float64(len(r.tables)))
	r.metrics.TablesPruned.Add(float64(pruned))
	return pruned
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tables)
}

// Wait blocks until background persistence has finished.
func (r *Registry) Wait() {
	r.wg.Wait()
}
