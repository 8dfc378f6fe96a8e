package pong

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestWallReflection(t *testing.T) {
	tests := []struct {
		name   string
		pos    core.Vec2
		vy     float64
		wantVY float64
	}{
		// Resting on the bottom wall strikes its top face, the one a ball
		// moving down reaches first: -(-20) + 5 = 25, the bias is added.
		{"bottom wall moving down", core.V(0, -225), -20, 25},
		{"bottom wall already leaving", core.V(0, -225), 15, 15},
		// Touching the top wall from below strikes its bottom face.
		{"top wall moving up", core.V(0, 225), 30, -25},
		{"top wall already leaving", core.V(0, 225), -30, -30},
		{"no contact", core.V(0, 100), -20, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			w.Ball.Pos = tt.pos
			w.Ball.Vel = core.V(0, tt.vy)

			w.ResolveCollisions()

			if w.Ball.Vel.Y != tt.wantVY {
				t.Errorf("vy = %v, want %v", w.Ball.Vel.Y, tt.wantVY)
			}
			if w.Ball.Vel.X != 0 {
				t.Errorf("wall changed vx to %v", w.Ball.Vel.X)
			}
		})
	}
}

func TestWallReflectionOncePerContact(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Ball.Pos = core.V(0, -225)
	w.Ball.Vel = core.V(0, -20)

	w.ResolveCollisions()
	first := w.Ball.Vel.Y

	// Still overlapping on the next frame, but now moving away.
	w.ResolveCollisions()
	w.ResolveCollisions()

	if w.Ball.Vel.Y != first {
		t.Errorf("vy changed from %v to %v on repeated overlap", first, w.Ball.Vel.Y)
	}
}

func TestFastBallPassesThroughWall(t *testing.T) {
	w, _ := newTestWorld(t)
	// Steepest paddle deflection: 75 units off center times 10.
	w.Ball.Pos = core.V(0, 218)
	w.Ball.Vel = core.V(0, 750)

	// 12.5 units per tick jump the 10 unit window in which the ball
	// straddles only the wall's bottom edge; a full straddle is Inside.
	for i := 0; i < 120; i++ {
		w.Tick(1.0/60, Input{})
	}

	if w.Ball.Vel != core.V(0, 750) {
		t.Errorf("vel = %v, want it untouched", w.Ball.Vel)
	}
	if !approx(w.Ball.Pos.Y, 1718) {
		t.Errorf("y = %v, want 1718", w.Ball.Pos.Y)
	}
	if w.Score != (ScoreBoard{}) {
		t.Errorf("score = %v, want no goals", w.Score)
	}
}

func TestPaddleDeflection(t *testing.T) {
	tests := []struct {
		name   string
		offset float64
	}{
		{"center", 0},
		{"above center", 30},
		{"below center", -30},
		{"edge", 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := newTestWorld(t)
			// Right paddle spans x [485,495]; the ball's right edge sits at 490.
			w.Ball.Pos = core.V(465, tt.offset)
			w.Ball.Vel = core.V(500, 123)

			w.ResolveCollisions()

			if w.Ball.Vel.X != -495 {
				t.Errorf("vx = %v, want -495", w.Ball.Vel.X)
			}
			if want := tt.offset * 10; w.Ball.Vel.Y != want {
				t.Errorf("vy = %v, want %v", w.Ball.Vel.Y, want)
			}
		})
	}
}

func TestPaddleDeflectionFollowsPaddle(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Paddles[TeamLeft].Pos.Y = 100
	// Left paddle spans x [-495,-485]; the ball's left edge sits at -490.
	w.Ball.Pos = core.V(-465, 80)
	w.Ball.Vel = core.V(-500, 0)

	w.ResolveCollisions()

	if w.Ball.Vel.X != 505 {
		t.Errorf("vx = %v, want 505", w.Ball.Vel.X)
	}
	if w.Ball.Vel.Y != -200 {
		t.Errorf("vy = %v, want -200", w.Ball.Vel.Y)
	}
}

func TestPaddleDeflectionSetsVYWhenLeaving(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Ball.Pos = core.V(465, 20)
	w.Ball.Vel = core.V(-495, 999)

	w.ResolveCollisions()

	if w.Ball.Vel.X != -495 {
		t.Errorf("vx = %v, want unchanged -495", w.Ball.Vel.X)
	}
	if w.Ball.Vel.Y != 200 {
		t.Errorf("vy = %v, want 200", w.Ball.Vel.Y)
	}
}

func TestPaddleTopFaceKeepsVX(t *testing.T) {
	w, _ := newTestWorld(t)
	// Move the paddle to the middle so no goal is involved.
	w.Paddles[TeamRight].Pos = core.V(0, 0)
	w.Ball.Pos = core.V(0, 70)
	w.Ball.Vel = core.V(123, -40)

	w.ResolveCollisions()

	if w.Ball.Vel.X != 123 {
		t.Errorf("vx = %v, want 123", w.Ball.Vel.X)
	}
	if w.Ball.Vel.Y != 700 {
		t.Errorf("vy = %v, want 700", w.Ball.Vel.Y)
	}
}

func TestGoalQueuesEventOnly(t *testing.T) {
	w, _ := newTestWorld(t)
	w.Paddles[TeamLeft].Pos.Y = -195
	w.Ball.Pos = core.V(-500, 0)
	w.Ball.Vel = core.V(-500, 50)

	w.ResolveCollisions()

	if w.Ball.Vel != core.V(-500, 50) {
		t.Errorf("goal changed velocity to %v", w.Ball.Vel)
	}
	if len(w.events) != 1 || w.events[0] != ScoreLeft {
		t.Errorf("events = %v, want [left goal]", w.events)
	}
	if w.Score != (ScoreBoard{}) {
		t.Errorf("score changed before scoring stage: %v", w.Score)
	}
}
