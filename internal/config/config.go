// Package config provides YAML-based game configuration loading,
// difficulty presets and environment overrides for StressBuster.
package config

// GameConfig contains all tunables of the runner simulation. Every length is
// in world units on a Viewport-sized logical surface; every rate is per tick.
type GameConfig struct {
	Viewport  Viewport  `yaml:"viewport"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Spawner   Spawner   `yaml:"spawner"`
	Clouds    Clouds    `yaml:"clouds"`
	Scoring   Scoring   `yaml:"scoring"`
	Storage   Storage   `yaml:"storage"`
}

// Viewport defines the logical drawing surface.
type Viewport struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	GroundLine float64 `yaml:"ground_line"` // Y of the drawn ground stroke
	GroundTile float64 `yaml:"ground_tile"` // Period of the scrolling ground pattern
}

// Physics defines jump kinematics.
type Physics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity-y every airborne tick
	JumpImpulse float64 `yaml:"jump_impulse"` // Velocity-y set by a jump (negative = up)
}

// Hitbox is a collision box relative to the player's top-left corner.
type Hitbox struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

// Player defines the runner's placement and posture boxes.
type Player struct {
	X        float64 `yaml:"x"`
	GroundY  float64 `yaml:"ground_y"` // Top of the sprite when standing on the ground
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Standing Hitbox  `yaml:"standing"`
	Ducking  Hitbox  `yaml:"ducking"`
}

// ObstacleShape defines the size and vertical placement of one obstacle kind.
type ObstacleShape struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	MinY   float64 `yaml:"min_y"`
	MaxY   float64 `yaml:"max_y"` // Equal to MinY for a fixed height
}

// Obstacles defines both obstacle kinds.
type Obstacles struct {
	Ground   ObstacleShape `yaml:"ground"`
	Airborne ObstacleShape `yaml:"airborne"`
	InsetX   float64       `yaml:"hitbox_inset_x"` // Trimmed from each side of obstacle hitboxes
}

// Spawner defines obstacle cadence.
type Spawner struct {
	EveryTicks   int     `yaml:"every_ticks"`
	MinGapFactor float64 `yaml:"min_gap_factor"` // Minimum gap = factor * game speed
}

// Clouds defines the decorative parallax layer.
type Clouds struct {
	EveryTicks  int     `yaml:"every_ticks"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	MinY        float64 `yaml:"min_y"`
	MaxY        float64 `yaml:"max_y"`
	SpeedFactor float64 `yaml:"speed_factor"` // Fraction of game speed
}

// Scoring defines score cadence and the speed curve.
type Scoring struct {
	EveryTicks     int     `yaml:"every_ticks"`
	BaseSpeed      float64 `yaml:"base_speed"`
	SpeedStepScore int     `yaml:"speed_step_score"` // Score between speed increments
	SpeedIncrement float64 `yaml:"speed_increment"`
	MaxSpeed       float64 `yaml:"max_speed"`
}

// Storage defines the persisted best-score record.
type Storage struct {
	RecordKey string `yaml:"record_key"`
}
