package core

// RuntimeConfig contains configuration passed to the platform at startup.
// The simulation rate is fixed by the tuning file; FrameRate only controls how
// often the platform renders and feeds elapsed time into the accumulator.
type RuntimeConfig struct {
	ScreenW    int // Screen width in characters
	ScreenH    int // Screen height in characters
	FrameRate  int // Render frames per second (default 60)
	StartLevel int // Index of the first level to play
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		FrameRate:  60,
		StartLevel: 0,
	}
}
