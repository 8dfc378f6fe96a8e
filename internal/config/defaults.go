package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Arena: PongArena{
			Dim:           500,
			WallThickness: 10,
		},
		Paddles: PongPaddles{
			Width:  10,
			Height: 100,
			Speed:  500,
			Inset:  10,
		},
		Ball: PongBall{
			Size:     50,
			LaunchVX: 500,
			LaunchVY: 50,
		},
		Physics: PongPhysics{
			MaxDelta:      0.2,
			ReflectBias:   5,
			DeflectFactor: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPongYAML
}
