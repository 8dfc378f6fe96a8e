// Package pong implements the two-player Pong simulation: paddle and ball
// movement, AABB collision response against walls, paddles and goals, and
// scoring with ball reset. It has no knowledge of terminals or clocks; the
// platform feeds it a time delta and input each tick and reads the result
// back through a Display.
package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Settings are the constants the stages read every tick.
type Settings struct {
	Bound         float64 // paddle center travel limit on y
	MaxDelta      float64 // seconds
	ReflectBias   float64
	DeflectFactor float64
	Launch        core.Vec2 // ball velocity after a left-goal reset; x is mirrored for the right goal
}

// Input is the per-tick input of both paddles.
type Input struct {
	Dir   [2]float64 // indexed by Team; -1 down, 0 still, +1 up
	Pause bool       // edge: the pause action fired this tick
}

// InputFromFrame maps platform actions onto paddle directions.
// Pause fires on the release edge of the pause action.
func InputFromFrame(f core.InputFrame) Input {
	return Input{
		Dir: [2]float64{
			TeamLeft:  f.Axis(core.ActionLeftUp, core.ActionLeftDown),
			TeamRight: f.Axis(core.ActionRightUp, core.ActionRightDown),
		},
		Pause: f.JustReleased(core.ActionPause),
	}
}

// TickResult is returned by Tick.
type TickResult struct {
	Events []ScoreEvent // goals processed this tick, in emission order
	Score  ScoreBoard
	Paused bool
}

// World is the whole simulation state. It is owned by a single goroutine.
type World struct {
	Ball      Ball
	Paddles   [2]Paddle // indexed by Team
	Colliders []Collider
	Score     ScoreBoard
	Paused    bool

	settings Settings
	display  Display
	events   []ScoreEvent
	ticks    uint64
}

// NewWorld builds the court described by cfg with the ball at the center.
// A nil display is a programming error and panics.
func NewWorld(cfg config.PongConfig, display Display) (*World, error) {
	if display == nil {
		panic("pong: NewWorld called with nil display")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dim := cfg.Arena.Dim
	wall := cfg.Arena.WallThickness
	paddleSize := core.V(cfg.Paddles.Width, cfg.Paddles.Height)
	paddleX := dim - cfg.Paddles.Inset

	w := &World{
		Ball: Ball{
			Vel:  core.V(cfg.Ball.LaunchVX, cfg.Ball.LaunchVY),
			Size: core.V(cfg.Ball.Size, cfg.Ball.Size),
		},
		Paddles: [2]Paddle{
			{Team: TeamLeft, Speed: cfg.Paddles.Speed, Pos: core.V(-paddleX, 0), Size: paddleSize},
			{Team: TeamRight, Speed: cfg.Paddles.Speed, Pos: core.V(paddleX, 0), Size: paddleSize},
		},
		Colliders: []Collider{
			{Kind: ColliderGoalLeft, Pos: core.V(-dim, 0), Size: core.V(wall, dim+wall)},
			{Kind: ColliderGoalRight, Pos: core.V(dim, 0), Size: core.V(wall, dim+wall)},
			{Kind: ColliderWall, Pos: core.V(0, -dim/2), Size: core.V(2*dim, wall)},
			{Kind: ColliderWall, Pos: core.V(0, dim/2), Size: core.V(2*dim, wall)},
		},
		settings: Settings{
			Bound:         cfg.Bound(),
			MaxDelta:      cfg.Physics.MaxDelta,
			ReflectBias:   cfg.Physics.ReflectBias,
			DeflectFactor: cfg.Physics.DeflectFactor,
			Launch:        core.V(cfg.Ball.LaunchVX, cfg.Ball.LaunchVY),
		},
		display: display,
	}

	w.display.SetScoreText(w.Score.String())
	w.publish()
	return w, nil
}

// Settings returns the constants the world was built with.
func (w *World) Settings() Settings {
	return w.settings
}

// Ticks returns how many ticks have run, paused ones included.
func (w *World) Ticks() uint64 {
	return w.ticks
}

// Tick advances the simulation by one frame: pause edge, movement,
// collision resolution, scoring, then the display projection.
func (w *World) Tick(dt float64, in Input) TickResult {
	w.ticks++

	if in.Pause {
		w.TogglePause()
	}

	w.Move(dt, in)
	w.ResolveCollisions()
	events := w.ApplyScores()
	w.publish()

	return TickResult{
		Events: events,
		Score:  w.Score,
		Paused: w.Paused,
	}
}

// publish pushes every entity's transform to the display.
func (w *World) publish() {
	w.display.SetTransform(EntityBall, KindBall, w.Ball.Box())
	w.display.SetTransform(EntityLeftPaddle, KindPaddle, w.Paddles[TeamLeft].Box())
	w.display.SetTransform(EntityRightPaddle, KindPaddle, w.Paddles[TeamRight].Box())

	for i, c := range w.Colliders {
		kind := KindWall
		if c.Kind != ColliderWall {
			kind = KindGoal
		}
		w.display.SetTransform(firstColliderID+EntityID(i), kind, c.Box())
	}
}
