package config

import (
	_ "embed"
)

//go:embed defaults/jumper.yaml
var defaultJumperYAML []byte

// DefaultJumperConfig returns the default jumper configuration.
func DefaultJumperConfig() JumperConfig {
	return JumperConfig{
		World: WorldConfig{
			Width:        800,
			Height:       400,
			GroundOffset: 10,
		},
		Actor: ActorConfig{
			StartX:    100,
			Width:     32,
			Height:    32,
			Speed:     3,
			JumpForce: -12,
			Gravity:   0.85,
		},
		Obstacles: ObstacleConfig{
			Width:       32,
			Height:      32,
			Speed:       2,
			SpawnChance: 0.02,
		},
		Platforms: PlatformsConfig{
			Height: 10,
			Layout: []PlatformSpec{
				{X: 200, Y: 300, Width: 200},
				{X: 400, Y: 200, Width: 150},
				{X: 600, Y: 100, Width: 100},
			},
		},
		Input: InputConfig{
			HoldTicks: 12,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultJumperYAML
}
