package engine

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/stressbuster/internal/core"
)

// ErrExhausted is returned by sources that have no ticks left.
var ErrExhausted = errors.New("engine: tick source exhausted")

// Simulation is what a Driver advances. Update performs one tick; Render
// draws the resulting state.
type Simulation interface {
	Update()
	Render(dst core.Surface)
}

// Driver runs update-then-render cycles. A cycle is atomic with respect to
// other Driver calls: no render observes a half-applied update.
type Driver struct {
	sim    Simulation
	logger *log.Logger

	mu      sync.Mutex
	surface core.Surface
	stopped bool
	ticks   uint64
}

// NewDriver creates a driver for sim. A nil logger discards.
func NewDriver(sim Simulation, logger *log.Logger) *Driver {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Driver{sim: sim, logger: logger.WithPrefix("engine")}
}

// SetSurface changes where frames are drawn. A nil surface means the
// output is unavailable: updates continue and rendering is skipped.
func (d *Driver) SetSurface(s core.Surface) {
	d.mu.Lock()
	d.surface = s
	d.mu.Unlock()
}

// Step runs one cycle. It returns false once the driver is stopped.
func (d *Driver) Step() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return false
	}
	d.sim.Update()
	d.ticks++
	if d.surface != nil {
		d.sim.Render(d.surface)
	}
	return true
}

// Exclusive runs fn while no cycle is in progress. Hosts use it to read or
// resize the buffer a surface draws into.
func (d *Driver) Exclusive(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	fn()
}

// Ticks returns how many cycles have run.
func (d *Driver) Ticks() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ticks
}

// Stop makes every later Step a no-op. It is idempotent and waits for an
// in-flight cycle to finish.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.stopped {
		d.stopped = true
		d.logger.Debug("driver stopped", "ticks", d.ticks)
	}
}

// Stopped reports whether Stop has been called.
func (d *Driver) Stopped() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.stopped
}

// Run steps once per tick of src until ctx is cancelled, the source is
// exhausted or the driver is stopped. Cancellation and exhaustion are
// normal endings and return nil.
func (d *Driver) Run(ctx context.Context, src TickSource) error {
	d.logger.Debug("driver running")
	for {
		if err := src.Next(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrExhausted) {
				return nil
			}
			return err
		}
		if !d.Step() {
			return nil
		}
	}
}
