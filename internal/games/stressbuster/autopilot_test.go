package stressbuster

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/stressbuster/internal/config"
	"github.com/vovakirdan/stressbuster/internal/core"
)

func TestAutopilotStartsRun(t *testing.T) {
	a := NewAutopilot(config.DefaultGameConfig())
	got := a.Decide(Snapshot{Phase: PhaseWaiting})
	if len(got) != 1 || got[0] != core.EventPrimary {
		t.Errorf("waiting decision = %v, expected primary", got)
	}
	if got := a.Decide(Snapshot{Phase: PhaseGameOver}); len(got) != 0 {
		t.Errorf("game over decision = %v, expected nothing", got)
	}
}

func TestAutopilotJumpsCactus(t *testing.T) {
	cfg := testConfig()
	s := playing(cfg)
	a := NewAutopilot(*cfg)

	s.Obstacles = append(s.Obstacles, Obstacle{Kind: KindGround, X: 400, Y: 165, W: 17, H: 35})
	if got := a.Decide(s.Snapshot()); len(got) != 0 {
		t.Errorf("far cactus should be ignored, got %v", got)
	}

	s.Obstacles[0].X = 130
	got := a.Decide(s.Snapshot())
	if len(got) != 1 || got[0] != core.EventPrimary {
		t.Errorf("near cactus decision = %v, expected primary", got)
	}
}

func TestAutopilotDucksLowFlyer(t *testing.T) {
	cfg := testConfig()
	s := playing(cfg)
	a := NewAutopilot(*cfg)

	s.Obstacles = append(s.Obstacles, Obstacle{Kind: KindAirborne, X: 110, Y: 145, W: 46, H: 20})
	got := a.Decide(s.Snapshot())
	if len(got) != 1 || got[0] != core.EventDuckDown {
		t.Fatalf("low flyer decision = %v, expected duck-down", got)
	}
	if got := a.Decide(s.Snapshot()); len(got) != 0 {
		t.Errorf("held duck should not repeat, got %v", got)
	}

	s.Obstacles = s.Obstacles[:0]
	got = a.Decide(s.Snapshot())
	if len(got) != 1 || got[0] != core.EventDuckUp {
		t.Errorf("cleared path decision = %v, expected duck-up", got)
	}
}

func TestAutopilotIgnoresHighFlyer(t *testing.T) {
	cfg := testConfig()
	s := playing(cfg)
	a := NewAutopilot(*cfg)

	s.Obstacles = append(s.Obstacles, Obstacle{Kind: KindAirborne, X: 100, Y: 120, W: 46, H: 20})
	if got := a.Decide(s.Snapshot()); len(got) != 0 {
		t.Errorf("high flyer passes overhead, got %v", got)
	}
}

func TestAutopilotOutlastsIdle(t *testing.T) {
	cfg := testConfig()
	run := func(pilot bool) int {
		s := NewSession(cfg, 0)
		rng := rand.New(rand.NewSource(3))
		a := NewAutopilot(*cfg)
		Update(s, cfg, rng, []core.Event{core.EventPrimary})
		for i := 0; i < 5000 && s.Phase == PhasePlaying; i++ {
			var in []core.Event
			if pilot {
				in = a.Decide(s.Snapshot())
			}
			Update(s, cfg, rng, in)
		}
		return s.Score
	}

	idle, piloted := run(false), run(true)
	if piloted < idle {
		t.Errorf("autopilot scored %d, idle run scored %d", piloted, idle)
	}
}
