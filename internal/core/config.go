package core

// RuntimeConfig contains configuration passed to a simulation at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Dt returns the fixed simulation step in seconds.
func (c RuntimeConfig) Dt() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(c.TickRate)
}

// Outcome describes how a session ended.
type Outcome string

const (
	OutcomeNone    Outcome = ""
	OutcomeWon     Outcome = "won"
	OutcomeDead    Outcome = "dead"
	OutcomeTimeout Outcome = "timeout"
	OutcomeQuit    Outcome = "quit"
)

// GameState summarizes a session for the platform layer.
type GameState struct {
	Tick           int
	Kills          int     // Enemies killed
	NestsDestroyed int     // Nests destroyed so far
	NestsActive    int     // Nests still standing
	PlayerHealth   float64 // Remaining player health
	Weapon         string  // Name of the equipped weapon
	GameOver       bool    // Whether the session has ended
	Outcome        Outcome // Set once GameOver is true
	Paused         bool    // Whether the simulation is paused
}

// StepResult is returned by Step() after each simulation tick.
type StepResult struct {
	State GameState
}
