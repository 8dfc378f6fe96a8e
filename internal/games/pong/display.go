package pong

//go:generate mockgen -source=display.go -destination=display_mock_test.go -package=pong

import "github.com/vovakirdan/tui-pong/internal/core"

// EntityKind tells a display how to draw an entity.
type EntityKind int

const (
	KindBall EntityKind = iota
	KindPaddle
	KindWall
	KindGoal
)

// EntityID identifies an entity across ticks.
// The ball is 0, paddles are 1 and 2, static colliders follow in order.
type EntityID int

const (
	EntityBall        EntityID = 0
	EntityLeftPaddle  EntityID = 1
	EntityRightPaddle EntityID = 2
	firstColliderID   EntityID = 3
)

// Display receives the projection of the world at the end of every tick.
// It holds no game logic.
type Display interface {
	// SetScoreText replaces the score line, formatted "{left}:{right}".
	SetScoreText(text string)

	// SetTransform places an entity's box in world coordinates.
	SetTransform(id EntityID, kind EntityKind, box core.Box)
}
