// Package stressbuster implements the StressBuster endless runner: a player
// that jumps over ground hazards and ducks under airborne ones while the
// world scrolls ever faster.
//
// All mutable state lives in a Session that the update, collision and render
// functions receive explicitly. Game wires a Session to input, randomness and
// the persisted best score.
package stressbuster

import (
	"github.com/vovakirdan/stressbuster/internal/config"
)

// Phase is the session state machine's current state.
type Phase int

const (
	PhaseWaiting  Phase = iota // Frozen, showing the idle pose and a prompt
	PhasePlaying               // Simulation running
	PhaseGameOver              // Frozen at the moment of collision
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseWaiting:
		return "waiting"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Session owns everything a run mutates. Player, obstacles and clouds exist
// only for the active or most recent run and are rebuilt on every start.
type Session struct {
	Phase     Phase
	Score     int
	HighScore int
	Speed     float64 // World units per tick moved by obstacles
	Tick      int     // Ticks simulated since the last start
	GroundX   float64 // Scroll offset of the ground pattern, in (-tile, 0]

	Player    Player
	Obstacles []Obstacle
	Clouds    []Cloud

	spawnPending bool // Obstacle cadence fired while the minimum gap was violated
}

// NewSession creates a session in the Waiting phase with the player standing
// on the ground.
func NewSession(cfg *config.GameConfig, highScore int) *Session {
	s := &Session{
		Phase:     PhaseWaiting,
		HighScore: highScore,
		Obstacles: make([]Obstacle, 0, 8),
		Clouds:    make([]Cloud, 0, 8),
	}
	s.reset(cfg)
	return s
}

// reset restores the per-run state. HighScore is process-wide and survives.
func (s *Session) reset(cfg *config.GameConfig) {
	s.Score = 0
	s.Speed = cfg.Scoring.BaseSpeed
	s.Tick = 0
	s.GroundX = 0
	s.Player = newPlayer(cfg.Player)
	s.Obstacles = s.Obstacles[:0]
	s.Clouds = s.Clouds[:0]
	s.spawnPending = false
}

// start performs the Waiting/GameOver -> Playing transition.
func (s *Session) start(cfg *config.GameConfig) {
	s.reset(cfg)
	s.Phase = PhasePlaying
}

// Snapshot is an immutable copy of a session, safe to hand to renderers and
// other goroutines.
type Snapshot struct {
	Phase     Phase
	Score     int
	HighScore int
	Speed     float64
	Tick      int
	GroundX   float64
	Player    Player
	Obstacles []Obstacle
	Clouds    []Cloud
}

// Snapshot copies the session's current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:     s.Phase,
		Score:     s.Score,
		HighScore: s.HighScore,
		Speed:     s.Speed,
		Tick:      s.Tick,
		GroundX:   s.GroundX,
		Player:    s.Player,
		Obstacles: append([]Obstacle(nil), s.Obstacles...),
		Clouds:    append([]Cloud(nil), s.Clouds...),
	}
}
