package stressbuster

import (
	"github.com/vovakirdan/stressbuster/internal/config"
	"github.com/vovakirdan/stressbuster/internal/core"
)

// Rand is the randomness the spawner draws from. *math/rand.Rand satisfies
// it; tests script it.
type Rand interface {
	Float64() float64
}

// ObstacleKind distinguishes hazards that must be jumped from hazards that
// must be ducked.
type ObstacleKind int

const (
	KindGround   ObstacleKind = iota // Cactus; jump over it
	KindAirborne                     // Pterodactyl; duck under it
)

// String returns the kind name.
func (k ObstacleKind) String() string {
	switch k {
	case KindGround:
		return "cactus"
	case KindAirborne:
		return "pterodactyl"
	default:
		return "unknown"
	}
}

// Obstacle is a hazard scrolling toward the player. Y never changes after
// spawn.
type Obstacle struct {
	Kind ObstacleKind
	X, Y float64
	W, H float64
}

// Box returns the obstacle's drawn bounds.
func (o Obstacle) Box() core.Box {
	return core.NewBox(o.X, o.Y, o.W, o.H)
}

// Hitbox returns the collision box, narrowed by inset on each side.
func (o Obstacle) Hitbox(inset float64) core.Box {
	return o.Box().Inset(inset, 0)
}

// Cloud is background decoration. It never collides.
type Cloud struct {
	X, Y float64
	W, H float64
}

// drawBetween returns a uniform value in [lo, hi].
func drawBetween(rng Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return core.ClampF(lo+rng.Float64()*(hi-lo), lo, hi)
}

// newObstacle draws a kind uniformly and places it at the right edge.
// Ground obstacles always sit at their fixed Y; only airborne ones draw a
// height, so a fixed-height kind consumes exactly one random value.
func newObstacle(cfg *config.GameConfig, rng Rand) Obstacle {
	kind := KindGround
	shape := cfg.Obstacles.Ground
	if rng.Float64() >= 0.5 {
		kind = KindAirborne
		shape = cfg.Obstacles.Airborne
	}
	return Obstacle{
		Kind: kind,
		X:    cfg.Viewport.Width,
		Y:    drawBetween(rng, shape.MinY, shape.MaxY),
		W:    shape.Width,
		H:    shape.Height,
	}
}

func newCloud(cfg *config.GameConfig, rng Rand) Cloud {
	c := cfg.Clouds
	return Cloud{
		X: cfg.Viewport.Width,
		Y: drawBetween(rng, c.MinY, c.MaxY),
		W: c.Width,
		H: c.Height,
	}
}

// MinGap is the smallest horizontal distance allowed between the newest
// obstacle's trailing edge and a freshly spawned one at the given speed.
func MinGap(cfg *config.GameConfig, speed float64) float64 {
	return cfg.Spawner.MinGapFactor * speed
}

// gapSatisfied reports whether a new obstacle placed at the right edge keeps
// the minimum gap to the newest obstacle.
func (s *Session) gapSatisfied(cfg *config.GameConfig) bool {
	if len(s.Obstacles) == 0 {
		return true
	}
	last := s.Obstacles[len(s.Obstacles)-1]
	return cfg.Viewport.Width-last.Box().Right() >= MinGap(cfg, s.Speed)
}

// moveEntities scrolls obstacles, clouds and the ground, then drops anything
// fully off the left edge.
func (s *Session) moveEntities(cfg *config.GameConfig) {
	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		o.X -= s.Speed
		if o.X+o.W > 0 {
			kept = append(kept, o)
		}
	}
	s.Obstacles = kept

	cloudSpeed := s.Speed * cfg.Clouds.SpeedFactor
	keptClouds := s.Clouds[:0]
	for _, c := range s.Clouds {
		c.X -= cloudSpeed
		if c.X+c.W > 0 {
			keptClouds = append(keptClouds, c)
		}
	}
	s.Clouds = keptClouds

	if tile := cfg.Viewport.GroundTile; tile > 0 {
		s.GroundX -= s.Speed
		for s.GroundX <= -tile {
			s.GroundX += tile
		}
	}
}

// spawn runs the obstacle and cloud cadences for the current tick. An
// obstacle due while the gap rule is violated stays pending and appears on
// the first tick the gap allows. It returns the spawned obstacle, if any.
func (s *Session) spawn(cfg *config.GameConfig, rng Rand) (Obstacle, bool) {
	if every := cfg.Spawner.EveryTicks; every > 0 && s.Tick%every == 0 {
		s.spawnPending = true
	}

	var spawned Obstacle
	ok := false
	if s.spawnPending && s.gapSatisfied(cfg) {
		spawned = newObstacle(cfg, rng)
		s.Obstacles = append(s.Obstacles, spawned)
		s.spawnPending = false
		ok = true
	}

	if every := cfg.Clouds.EveryTicks; every > 0 && s.Tick%every == 0 {
		s.Clouds = append(s.Clouds, newCloud(cfg, rng))
	}
	return spawned, ok
}
