// Package config provides YAML-based game configuration loading for the
// jumper platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// JumperConfig contains all configuration for the platform jumper game.
type JumperConfig struct {
	World     WorldConfig     `yaml:"world"`
	Actor     ActorConfig     `yaml:"actor"`
	Obstacles ObstacleConfig  `yaml:"obstacles"`
	Platforms PlatformsConfig `yaml:"platforms"`
	Input     InputConfig     `yaml:"input"`
}

// WorldConfig defines the simulated world in world units (not screen cells).
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundOffset float64 `yaml:"ground_offset"` // Distance between ground line and bottom edge
}

// ActorConfig defines the player-controlled entity.
type ActorConfig struct {
	StartX    float64 `yaml:"start_x"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	JumpForce float64 `yaml:"jump_force"` // Negative = upward
	Gravity   float64 `yaml:"gravity"`
}

// ObstacleConfig defines obstacle size, speed and spawn probability.
type ObstacleConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	Speed       float64 `yaml:"speed"`
	SpawnChance float64 `yaml:"spawn_chance"` // Per-tick Bernoulli probability
}

// PlatformsConfig defines the static platform layout.
type PlatformsConfig struct {
	Height float64        `yaml:"height"`
	Layout []PlatformSpec `yaml:"layout"` // Iterated in this order for landing checks
}

// PlatformSpec is the position and width of one platform.
type PlatformSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Width float64 `yaml:"width"`
}

// InputConfig tunes the terminal input adapter.
type InputConfig struct {
	// HoldTicks is how many ticks a horizontal key press keeps the actor moving.
	// Terminals report key repeats but no key releases.
	HoldTicks int `yaml:"hold_ticks"`
}

// Validate checks the configuration for values the simulation cannot work with.
// All problems are reported together.
func (c JumperConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %vx%v", c.World.Width, c.World.Height))
	}
	if c.World.GroundOffset < 0 {
		errs = append(errs, fmt.Errorf("ground_offset must be non-negative, got %v", c.World.GroundOffset))
	}
	if c.Actor.Width <= 0 || c.Actor.Height <= 0 {
		errs = append(errs, fmt.Errorf("actor size must be positive, got %vx%v", c.Actor.Width, c.Actor.Height))
	}
	if c.Actor.Width > c.World.Width || c.Actor.Height+c.World.GroundOffset > c.World.Height {
		errs = append(errs, fmt.Errorf("actor does not fit in the world"))
	}
	if c.Obstacles.Width < 0 || c.Obstacles.Height < 0 {
		errs = append(errs, fmt.Errorf("obstacle size must be non-negative"))
	}
	if c.Obstacles.SpawnChance < 0 || c.Obstacles.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("spawn_chance must be within [0, 1], got %v", c.Obstacles.SpawnChance))
	}
	if c.Platforms.Height < 0 {
		errs = append(errs, fmt.Errorf("platform height must be non-negative, got %v", c.Platforms.Height))
	}
	for i, p := range c.Platforms.Layout {
		if p.Width < 0 {
			errs = append(errs, fmt.Errorf("platform %d: width must be non-negative, got %v", i, p.Width))
		}
	}
	if c.Input.HoldTicks < 0 {
		errs = append(errs, fmt.Errorf("hold_ticks must be non-negative, got %d", c.Input.HoldTicks))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
