// Package config provides YAML-based game configuration loading for flaptty.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable parameters for the game.
// Spawn interval thresholds are deliberately not here: the difficulty
// bands are fixed and live in the game package.
type Config struct {
	Physics   Physics   `yaml:"physics"`
	Obstacles Obstacles `yaml:"obstacles"`
	Player    Player    `yaml:"player"`
	Field     Field     `yaml:"field"`
}

// Physics defines the vertical physics and horizontal scroll parameters.
type Physics struct {
	Gravity       float64 `yaml:"gravity"`        // Downward acceleration per tick
	JumpImpulse   float64 `yaml:"jump_impulse"`   // Velocity set by a jump (negative = up)
	BaseSpeed     float64 `yaml:"base_speed"`     // Obstacle scroll speed at score 0, cells per tick
	SpeedIncrease float64 `yaml:"speed_increase"` // Extra speed per point of score
}

// Obstacles defines the shape of spawned obstacle pairs.
type Obstacles struct {
	Width     int `yaml:"width"`       // Obstacle width in cells
	GapHeight int `yaml:"gap_height"`  // Fixed height of the passable gap
	MinGapY   int `yaml:"min_gap_top"` // Minimum distance of the gap from either field edge
}

// Player defines the entity hitbox. X is fixed for the whole session.
type Player struct {
	X      int `yaml:"x"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Field defines the terminal bands at the top and bottom of the play
// field. Touching either band ends the session.
type Field struct {
	TopMargin    int `yaml:"top_margin"`
	BottomMargin int `yaml:"bottom_margin"`
}

// Validate rejects degenerate parameter combinations before a session is
// created, so a misconfiguration fails at load time rather than mid-game.
func (c Config) Validate() error {
	var errs []error

	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %g", c.Physics.Gravity))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_impulse must be negative (upward), got %g", c.Physics.JumpImpulse))
	}
	if c.Physics.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("physics.base_speed must be positive, got %g", c.Physics.BaseSpeed))
	}
	if c.Physics.SpeedIncrease < 0 {
		errs = append(errs, fmt.Errorf("physics.speed_increase must not be negative, got %g", c.Physics.SpeedIncrease))
	}
	if c.Obstacles.Width < 1 {
		errs = append(errs, fmt.Errorf("obstacles.width must be at least 1, got %d", c.Obstacles.Width))
	}
	if c.Obstacles.GapHeight < 1 {
		errs = append(errs, fmt.Errorf("obstacles.gap_height must be at least 1, got %d", c.Obstacles.GapHeight))
	}
	if c.Obstacles.MinGapY < 0 {
		errs = append(errs, fmt.Errorf("obstacles.min_gap_top must not be negative, got %d", c.Obstacles.MinGapY))
	}
	if c.Player.Width < 1 || c.Player.Height < 1 {
		errs = append(errs, fmt.Errorf("player hitbox must be at least 1x1, got %dx%d", c.Player.Width, c.Player.Height))
	}
	if c.Player.X < 0 {
		errs = append(errs, fmt.Errorf("player.x must not be negative, got %d", c.Player.X))
	}
	if c.Field.TopMargin < 0 || c.Field.BottomMargin < 0 {
		errs = append(errs, fmt.Errorf("field margins must not be negative, got top=%d bottom=%d", c.Field.TopMargin, c.Field.BottomMargin))
	}

	return errors.Join(errs...)
}
