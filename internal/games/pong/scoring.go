package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// ApplyScores drains the events queued by ResolveCollisions in emission order.
// A left-goal event scores for the right side and relaunches the ball toward
// the right; a right-goal event is the mirror. The last reset wins when several
// events arrive in one tick. The score text is pushed afterwards, every tick.
func (w *World) ApplyScores() []ScoreEvent {
	events := w.events
	w.events = nil

	for _, ev := range events {
		switch ev {
		case ScoreLeft:
			w.Score.Right++
			w.resetBall(1)
		case ScoreRight:
			w.Score.Left++
			w.resetBall(-1)
		}
	}

	w.display.SetScoreText(w.Score.String())
	return events
}

// resetBall centers the ball and launches it; dir is the sign of vx.
func (w *World) resetBall(dir float64) {
	w.Ball.Pos = core.Vec2{}
	w.Ball.Vel = core.V(dir*w.settings.Launch.X, w.settings.Launch.Y)
}
