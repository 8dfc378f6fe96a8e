// Package config provides YAML-based configuration loading for the Pong
// simulation.
package config

import (
	"errors"
	"fmt"
)

// PongConfig contains all tunables of the Pong simulation.
type PongConfig struct {
	Arena   PongArena   `yaml:"arena"`
	Paddles PongPaddles `yaml:"paddles"`
	Ball    PongBall    `yaml:"ball"`
	Physics PongPhysics `yaml:"physics"`
}

// PongArena defines the court. Goals sit at x = ±Dim, walls at y = ±Dim/2.
type PongArena struct {
	Dim           float64 `yaml:"dim"`
	WallThickness float64 `yaml:"wall_thickness"`
}

// PongPaddles defines both paddles.
type PongPaddles struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Inset  float64 `yaml:"inset"`
}

// PongBall defines the ball and its launch vector after a goal.
type PongBall struct {
	Size     float64 `yaml:"size"`
	LaunchVX float64 `yaml:"launch_vx"`
	LaunchVY float64 `yaml:"launch_vy"`
}

// PongPhysics defines collision response constants.
type PongPhysics struct {
	MaxDelta      float64 `yaml:"max_delta"`
	ReflectBias   float64 `yaml:"reflect_bias"`
	DeflectFactor float64 `yaml:"deflect_factor"`
}

// Bound returns the largest distance a paddle center may travel from y = 0.
func (c PongConfig) Bound() float64 {
	return 2*c.Paddles.Height - 0.5*c.Arena.WallThickness
}

// Validate checks that the configuration describes a playable court.
func (c PongConfig) Validate() error {
	var errs []error

	if c.Arena.Dim <= 0 {
		errs = append(errs, fmt.Errorf("arena.dim must be positive, got %v", c.Arena.Dim))
	}
	if c.Arena.WallThickness <= 0 {
		errs = append(errs, fmt.Errorf("arena.wall_thickness must be positive, got %v", c.Arena.WallThickness))
	}
	if c.Paddles.Width <= 0 || c.Paddles.Height <= 0 {
		errs = append(errs, fmt.Errorf("paddles must have positive size, got %vx%v", c.Paddles.Width, c.Paddles.Height))
	}
	if c.Paddles.Speed < 0 {
		errs = append(errs, fmt.Errorf("paddles.speed must not be negative, got %v", c.Paddles.Speed))
	}
	if c.Paddles.Inset <= 0 || c.Paddles.Inset >= c.Arena.Dim {
		errs = append(errs, fmt.Errorf("paddles.inset must be in (0, arena.dim), got %v", c.Paddles.Inset))
	}
	if c.Bound() < 0 {
		errs = append(errs, fmt.Errorf("paddle travel bound is negative (%v)", c.Bound()))
	}
	if c.Ball.Size <= 0 {
		errs = append(errs, fmt.Errorf("ball.size must be positive, got %v", c.Ball.Size))
	}
	if c.Ball.LaunchVX <= 0 {
		errs = append(errs, fmt.Errorf("ball.launch_vx must be positive, got %v", c.Ball.LaunchVX))
	}
	if c.Physics.MaxDelta <= 0 {
		errs = append(errs, fmt.Errorf("physics.max_delta must be positive, got %v", c.Physics.MaxDelta))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid pong config: %w", errors.Join(errs...))
	}
	return nil
}
