package core

// RuntimeConfig is what the terminal layer knows about a session when it
// starts a game: the drawable area, the frame rate and the world seed.
// World tuning (gravity, speeds, platform layout) lives in config.JumperConfig.
type RuntimeConfig struct {
	ScreenW  int // Playfield width in cells, without the info panel
	ScreenH  int // Playfield height in cells, including the HUD row
	TickRate int // Frames per second; the simulation advances once per frame

	// Seed feeds the obstacle spawner. Equal seeds replay the same session
	// for the same inputs. The terminal layer replaces 0 with the clock.
	Seed int64
}

// DefaultTickRate is the frame rate the world constants are tuned for.
const DefaultTickRate = 60

// DefaultConfig returns an 80x24 playfield at DefaultTickRate with a clock seed.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// GameState is the part of a game the terminal layer reacts to.
type GameState struct {
	Score    int  // Ticks survived so far
	GameOver bool // An obstacle hit the actor; only restart or back remain
	Paused   bool // The world is frozen until pause is pressed again
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State GameState
}
