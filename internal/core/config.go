package core

// RuntimeConfig is what the platform hands a game when it starts one.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driving animations
	Seed     int64 // RNG seed; 0 lets the platform pick one from the clock
}

// DefaultConfig returns an 80x24 terminal at 30 frames per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the summary the platform needs after every step.
type GameState struct {
	Score    int
	Level    int
	Blocks   int // Blocks placed this game
	Lines    int // Lines cleared this game
	GameOver bool
	Paused   bool // An overlay is blocking play
}

// StepResult is returned by Game.Step.
type StepResult struct {
	State GameState
}
