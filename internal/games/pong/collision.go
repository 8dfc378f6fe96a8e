package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// ResolveCollisions tests the ball against every static collider and then both
// paddles, in that order. Walls and paddles change the ball's velocity; goals
// queue a ScoreEvent for ApplyScores. Every overlap is handled, not just the
// first. The ball's box is taken once, before any response.
func (w *World) ResolveCollisions() {
	ball := w.Ball.Box()

	for _, c := range w.Colliders {
		hit := core.Collide(ball, c.Box())
		if hit == core.CollisionNone {
			continue
		}

		switch c.Kind {
		case ColliderWall:
			w.bounceOffWall(hit)
		case ColliderGoalLeft:
			w.events = append(w.events, ScoreLeft)
		case ColliderGoalRight:
			w.events = append(w.events, ScoreRight)
		}
	}

	for i := range w.Paddles {
		p := w.Paddles[i]
		hit := core.Collide(ball, p.Box())
		if hit == core.CollisionNone {
			continue
		}
		w.bounceOffPaddle(hit, p)
	}
}

// bounceOffWall reflects vy only while the ball still moves into the wall,
// so a ball that overlaps for several frames is reflected once.
func (w *World) bounceOffWall(hit core.Collision) {
	vel := &w.Ball.Vel

	var reflect bool
	switch hit {
	case core.CollisionTop:
		reflect = vel.Y < 0
	case core.CollisionBottom:
		reflect = vel.Y > 0
	}

	if reflect {
		vel.Y = -vel.Y + w.settings.ReflectBias
	}
}

// bounceOffPaddle reflects vx while the ball moves into the struck face, then
// always sets vy from the strike offset to the paddle center.
func (w *World) bounceOffPaddle(hit core.Collision, p Paddle) {
	vel := &w.Ball.Vel

	var reflect bool
	switch hit {
	case core.CollisionLeft:
		reflect = vel.X > 0
	case core.CollisionRight:
		reflect = vel.X < 0
	}

	if reflect {
		vel.X = -vel.X + w.settings.ReflectBias
	}

	vel.Y = (w.Ball.Pos.Y - p.Pos.Y) * w.settings.DeflectFactor
}
