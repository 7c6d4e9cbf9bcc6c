package stressbuster

import (
	"github.com/vovakirdan/stressbuster/internal/config"
	"github.com/vovakirdan/stressbuster/internal/core"
)

// Events reports what happened during one tick.
type Events struct {
	Started  bool
	Jumped   bool
	Spawned  bool
	Kind     ObstacleKind // Valid when Spawned
	Scored   bool
	NewBest  bool
	Collided bool
}

// Apply performs one resolved action against the session.
func Apply(s *Session, cfg *config.GameConfig, a core.Action, ev *Events) {
	switch a {
	case core.ActionStart:
		if s.Phase != PhasePlaying {
			s.start(cfg)
			ev.Started = true
		}
	case core.ActionJump:
		if s.Phase == PhasePlaying && s.Player.Jump(cfg.Physics.JumpImpulse) {
			ev.Jumped = true
		}
	case core.ActionDuckOn:
		if s.Phase == PhasePlaying {
			s.Player.SetDucking(true)
		}
	case core.ActionDuckOff:
		if s.Phase == PhasePlaying {
			s.Player.SetDucking(false)
		}
	}
}

// Update advances the session by one tick. Input is applied first, each
// event resolved against the phase current at that point, so a start
// followed by a jump in the same tick does both. When the session is
// Playing afterward, the simulation runs in fixed order: physics, scrolling,
// spawning, collision, then scoring. Waiting and GameOver are frozen.
func Update(s *Session, cfg *config.GameConfig, rng Rand, input []core.Event) Events {
	var ev Events
	for _, e := range input {
		Apply(s, cfg, Resolve(s.Phase, e), &ev)
	}

	if s.Phase != PhasePlaying {
		return ev
	}

	s.Tick++
	s.Player.Update(cfg.Physics, cfg.Player.GroundY)
	s.moveEntities(cfg)

	if o, ok := s.spawn(cfg, rng); ok {
		ev.Spawned = true
		ev.Kind = o.Kind
	}

	if Collide(s.Player, s.Obstacles, cfg) >= 0 {
		s.Phase = PhaseGameOver
		ev.Collided = true
		return ev
	}

	ev.Scored, ev.NewBest = s.advanceScore(cfg.Scoring)
	return ev
}
