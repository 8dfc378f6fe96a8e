package core

import "time"

// RuntimeConfig contains configuration passed to the platform at startup.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Host refresh cadence in ticks per second (default 60)

	// Terminals report no key-up events. A key counts as held for
	// HoldDelay after its first press, long enough for the keyboard's
	// auto-repeat to start, and for HoldWindow after each repeat.
	HoldDelay  time.Duration
	HoldWindow time.Duration
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		HoldDelay:  600 * time.Millisecond,
		HoldWindow: 200 * time.Millisecond,
	}
}
