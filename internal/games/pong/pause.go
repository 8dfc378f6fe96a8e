package pong

// TogglePause flips between running and paused. Callers pass edges only;
// holding the pause key must not call this repeatedly.
func (w *World) TogglePause() {
	w.Paused = !w.Paused
}
