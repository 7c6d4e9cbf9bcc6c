package stressbuster

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stressbuster/internal/config"
	"github.com/vovakirdan/stressbuster/internal/core"
)

// BestScore is the persisted record a game reports to. *storage.Record
// satisfies it. Set must not block: the write happens elsewhere, off the
// tick path.
type BestScore interface {
	Value() int
	Set(v int) bool
}

// Options configures a Game.
type Options struct {
	Config config.GameConfig
	Rand   Rand        // Optional; nil seeds from the clock
	Record BestScore   // Optional; nil keeps the best score in memory only
	Logger *log.Logger // Optional; nil discards
}

// Game couples a Session to queued input, a random source and the persisted
// best score. Update and Render are meant for a single driver goroutine;
// Push and Snapshot may be called from anywhere.
type Game struct {
	cfg    config.GameConfig
	rng    Rand
	record BestScore
	logger *log.Logger
	input  *InputController

	mu      sync.Mutex
	session *Session
	last    Events
	events  []core.Event
}

// New creates a game in the Waiting phase. The high score starts from the
// record's current value.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	high := 0
	if opts.Record != nil {
		high = opts.Record.Value()
	}
	g := &Game{
		cfg:    opts.Config,
		rng:    rng,
		record: opts.Record,
		logger: logger.WithPrefix("stressbuster"),
		input:  NewInputController(),
		events: make([]core.Event, 0, 8),
	}
	g.session = NewSession(&g.cfg, high)
	return g
}

// Config returns the configuration the game runs with.
func (g *Game) Config() config.GameConfig {
	return g.cfg
}

// Push queues an input event for the next tick.
func (g *Game) Push(ev core.Event) {
	g.input.Push(ev)
}

// Update advances the game by one tick.
func (g *Game) Update() {
	g.events = g.input.Drain(g.events[:0])

	g.mu.Lock()
	ev := Update(g.session, &g.cfg, g.rng, g.events)
	g.last = ev
	score, high, tick := g.session.Score, g.session.HighScore, g.session.Tick
	g.mu.Unlock()

	if ev.Started {
		g.logger.Debug("run started", "best", high)
	}
	if ev.NewBest && g.record != nil {
		g.record.Set(high)
	}
	if ev.Collided {
		g.logger.Info("game over", "score", score, "best", high)
	}
	if ev.Spawned {
		g.logger.Debug("obstacle spawned", "kind", ev.Kind, "tick", tick)
	}
}

// Render draws the current state onto dst.
func (g *Game) Render(dst core.Surface) {
	g.mu.Lock()
	snap := g.session.Snapshot()
	g.mu.Unlock()
	Render(snap, &g.cfg, dst)
}

// Snapshot returns a copy of the current session state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.session.Snapshot()
}

// LastEvents returns what happened during the most recent tick.
func (g *Game) LastEvents() Events {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.last
}
