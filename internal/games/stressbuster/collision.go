package stressbuster

import (
	"github.com/vovakirdan/stressbuster/internal/config"
)

// Collide returns the index of the first obstacle whose hitbox strictly
// overlaps the player's posture-dependent hitbox, or -1. Touching edges do
// not count.
func Collide(p Player, obstacles []Obstacle, cfg *config.GameConfig) int {
	pb := p.Hitbox(cfg.Player)
	for i, o := range obstacles {
		if pb.Intersects(o.Hitbox(cfg.Obstacles.InsetX)) {
			return i
		}
	}
	return -1
}
