package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Team identifies a side of the court.
type Team int

const (
	TeamLeft  Team = 0
	TeamRight Team = 1
)

// String returns a human-readable name for the team.
func (t Team) String() string {
	switch t {
	case TeamLeft:
		return "left"
	case TeamRight:
		return "right"
	default:
		return "unknown"
	}
}

// Paddle is a vertically moving bat. Only the movement stage writes Pos.
type Paddle struct {
	Team  Team
	Speed float64 // units per second
	Pos   core.Vec2
	Size  core.Vec2
}

// Box returns the paddle's bounding box.
func (p Paddle) Box() core.Box {
	return core.NewBox(p.Pos, p.Size)
}

// Ball is the single ball in play. Vel is written by collision and scoring only.
type Ball struct {
	Pos  core.Vec2
	Vel  core.Vec2
	Size core.Vec2
}

// Box returns the ball's bounding box.
func (b Ball) Box() core.Box {
	return core.NewBox(b.Pos, b.Size)
}

// ColliderKind is the role of a static collider.
type ColliderKind int

const (
	ColliderWall ColliderKind = iota
	ColliderGoalLeft
	ColliderGoalRight
)

// String returns a human-readable name for the collider kind.
func (k ColliderKind) String() string {
	switch k {
	case ColliderWall:
		return "wall"
	case ColliderGoalLeft:
		return "goal-left"
	case ColliderGoalRight:
		return "goal-right"
	default:
		return "unknown"
	}
}

// Collider is a static rectangle, fixed for the lifetime of the world.
type Collider struct {
	Kind ColliderKind
	Pos  core.Vec2
	Size core.Vec2
}

// Box returns the collider's bounding box.
func (c Collider) Box() core.Box {
	return core.NewBox(c.Pos, c.Size)
}

// ScoreBoard holds both counters. They never decrease.
type ScoreBoard struct {
	Left  int
	Right int
}

// String renders the score as "{left}:{right}".
func (s ScoreBoard) String() string {
	return fmt.Sprintf("%d:%d", s.Left, s.Right)
}

// ScoreEvent names the goal the ball entered, i.e. the side that conceded.
type ScoreEvent int

const (
	ScoreLeft  ScoreEvent = iota // ball entered the left goal, right side scores
	ScoreRight                   // ball entered the right goal, left side scores
)

// String returns a human-readable name for the event.
func (e ScoreEvent) String() string {
	if e == ScoreLeft {
		return "left goal"
	}
	return "right goal"
}
