package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// ClampDelta bounds a frame delta to [0, MaxDelta] so a long hitch cannot
// carry the ball through a collider in one step.
func (w *World) ClampDelta(dt float64) float64 {
	return core.ClampF(dt, 0, w.settings.MaxDelta)
}

// Move advances paddles from input and the ball from its velocity.
// It does nothing while paused.
func (w *World) Move(dt float64, in Input) {
	if w.Paused {
		return
	}
	dt = w.ClampDelta(dt)

	for i := range w.Paddles {
		p := &w.Paddles[i]
		dir := core.ClampF(in.Dir[p.Team], -1, 1)
		p.Pos.Y += dt * p.Speed * dir
		p.Pos.Y = core.ClampF(p.Pos.Y, -w.settings.Bound, w.settings.Bound)
	}

	w.Ball.Pos = w.Ball.Pos.Add(w.Ball.Vel.Scale(dt))
}
