package config

import (
	"errors"
	"fmt"
)

// Validate reports every setting that would make the game unplayable or the
// simulation ill-defined. Airborne obstacles must pass above the ducking
// hitbox and ground obstacles must sit below the standing hitbox at the top
// of a jump.
func (c GameConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		add("viewport must have positive size, got %gx%g", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Viewport.GroundTile <= 0 {
		add("viewport.ground_tile must be positive")
	}
	if c.Physics.Gravity <= 0 {
		add("physics.gravity must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.JumpImpulse >= 0 {
		add("physics.jump_impulse must be negative (upward), got %g", c.Physics.JumpImpulse)
	}
	if c.Spawner.EveryTicks <= 0 {
		add("spawner.every_ticks must be positive")
	}
	if c.Spawner.MinGapFactor <= 0 {
		add("spawner.min_gap_factor must be positive")
	}
	if c.Clouds.EveryTicks <= 0 {
		add("clouds.every_ticks must be positive")
	}
	if c.Clouds.MaxY < c.Clouds.MinY {
		add("clouds.max_y must not be below clouds.min_y")
	}
	if c.Scoring.EveryTicks <= 0 {
		add("scoring.every_ticks must be positive")
	}
	if c.Scoring.SpeedStepScore <= 0 {
		add("scoring.speed_step_score must be positive")
	}
	if c.Scoring.BaseSpeed <= 0 {
		add("scoring.base_speed must be positive")
	}
	if c.Scoring.SpeedIncrement < 0 {
		add("scoring.speed_increment must not be negative")
	}
	if c.Scoring.MaxSpeed < c.Scoring.BaseSpeed {
		add("scoring.max_speed (%g) must be at least base_speed (%g)", c.Scoring.MaxSpeed, c.Scoring.BaseSpeed)
	}
	if c.Storage.RecordKey == "" {
		add("storage.record_key must not be empty")
	}

	for name, shape := range map[string]ObstacleShape{"ground": c.Obstacles.Ground, "airborne": c.Obstacles.Airborne} {
		if shape.Width <= 2*c.Obstacles.InsetX || shape.Height <= 0 {
			add("obstacles.%s must be larger than its hitbox inset", name)
		}
		if shape.MaxY < shape.MinY {
			add("obstacles.%s.max_y must not be below min_y", name)
		}
	}

	duckTop := c.Player.GroundY + c.Player.Ducking.OffsetY
	if lowest := c.Obstacles.Airborne.MaxY + c.Obstacles.Airborne.Height; lowest > duckTop {
		add("airborne obstacles reach y=%g, below the ducking hitbox top y=%g: cannot be ducked", lowest, duckTop)
	}

	if c.Physics.Gravity > 0 && c.Physics.JumpImpulse < 0 {
		apexBottom := JumpApex(c.Physics, c.Player.GroundY) + c.Player.Standing.OffsetY + c.Player.Standing.Height
		if apexBottom > c.Obstacles.Ground.MinY {
			add("jump apex leaves the player at y=%g, below the ground obstacle top y=%g: cannot be jumped", apexBottom, c.Obstacles.Ground.MinY)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// JumpApex returns the smallest y reached by a jump starting at groundY,
// stepping velocity and position once per tick the way the simulation does.
func JumpApex(p Physics, groundY float64) float64 {
	y, v := groundY, p.JumpImpulse
	apex := y
	for v < 0 {
		v += p.Gravity
		y += v
		if y < apex {
			apex = y
		}
	}
	return apex
}
