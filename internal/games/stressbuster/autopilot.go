package stressbuster

import (
	"github.com/vovakirdan/stressbuster/internal/config"
	"github.com/vovakirdan/stressbuster/internal/core"
)

// Lead times, in ticks of travel at the current speed, before an obstacle
// reaches the player.
const (
	jumpLeadTicks = 10
	duckLeadTicks = 4
)

// Autopilot plays headless runs. It watches the nearest obstacle that has
// not yet passed the player and jumps cacti or ducks low flyers.
type Autopilot struct {
	cfg     config.GameConfig
	ducking bool
}

// NewAutopilot creates an autopilot for the given configuration.
func NewAutopilot(cfg config.GameConfig) *Autopilot {
	return &Autopilot{cfg: cfg}
}

// Decide returns the events to send before the next tick.
func (a *Autopilot) Decide(snap Snapshot) []core.Event {
	switch snap.Phase {
	case PhaseWaiting:
		a.ducking = false
		return []core.Event{core.EventPrimary}
	case PhaseGameOver:
		a.ducking = false
		return nil
	}

	p := snap.Player
	standing := Player{X: p.X, Y: p.Y}.Hitbox(a.cfg.Player)
	inset := a.cfg.Obstacles.InsetX

	var next *Obstacle
	for i := range snap.Obstacles {
		o := &snap.Obstacles[i]
		if o.Hitbox(inset).Right() > standing.X {
			next = o
			break
		}
	}

	var out []core.Event
	wantDuck := false
	if next != nil {
		hb := next.Hitbox(inset)
		gap := hb.X - standing.Right()
		switch {
		case next.Kind == KindGround && !p.Jumping && gap > 0 && gap <= snap.Speed*jumpLeadTicks:
			if a.ducking {
				a.ducking = false
				out = append(out, core.EventDuckUp)
			}
			return append(out, core.EventPrimary)
		case next.Kind == KindAirborne && hb.Bottom() > standing.Y && gap <= snap.Speed*duckLeadTicks:
			wantDuck = true
		}
	}

	if wantDuck != a.ducking {
		a.ducking = wantDuck
		if wantDuck {
			out = append(out, core.EventDuckDown)
		} else {
			out = append(out, core.EventDuckUp)
		}
	}
	return out
}
