package stressbuster

import (
	"github.com/vovakirdan/stressbuster/internal/config"
	"github.com/vovakirdan/stressbuster/internal/core"
)

// Player is the runner. X never changes; Y is the top of the sprite and
// grows downward, so "above the ground" means Y < ground-y.
type Player struct {
	X, Y      float64
	VelocityY float64
	Jumping   bool // True iff airborne
	Ducking   bool // Held level from the duck input
}

func newPlayer(cfg config.Player) Player {
	return Player{X: cfg.X, Y: cfg.GroundY}
}

// Jump starts a jump. It is a no-op while a jump is already in flight and
// reports whether the jump happened.
func (p *Player) Jump(impulse float64) bool {
	if p.Jumping {
		return false
	}
	p.VelocityY = impulse
	p.Jumping = true
	return true
}

// SetDucking changes posture. Ducking changes the hitbox and sprite only,
// never vertical motion.
func (p *Player) SetDucking(on bool) {
	p.Ducking = on
}

// Update applies one tick of gravity and lands the player on the ground.
func (p *Player) Update(ph config.Physics, groundY float64) {
	if !p.Jumping {
		return
	}
	p.VelocityY += ph.Gravity
	p.Y += p.VelocityY

	if p.Y >= groundY {
		p.Y = groundY
		p.VelocityY = 0
		p.Jumping = false
	}
}

// Hitbox returns the posture-dependent collision box in world units.
func (p Player) Hitbox(cfg config.Player) core.Box {
	hb := cfg.Standing
	if p.Ducking {
		hb = cfg.Ducking
	}
	return core.NewBox(p.X+hb.OffsetX, p.Y+hb.OffsetY, hb.Width, hb.Height)
}
