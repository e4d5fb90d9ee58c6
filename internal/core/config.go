package core

// RuntimeConfig contains the host settings passed to the game at construction.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState summarizes the game for the platform layer.
type GameState struct {
	Score        int
	Lives        int
	Level        int
	GameOver     bool
	Paused       bool
	Running      bool
	AwaitingName bool
}
