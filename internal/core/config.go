package core

// RuntimeConfig is handed to the game when a screen is attached.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Redraws per second
	Seed     int64 // Shuffle seed, 0 for time-based
}

// DefaultConfig returns an 80x24 screen redrawn 10 times a second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
	}
}
