package tui

import (
	"time"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// HoldTracker turns a stream of key presses into held and released states.
// A terminal only sends the initial press and auto-repeats, so an action
// stays held until its events stop; that moment is reported once as its
// release. Between the press and the first repeat the terminal waits its
// repeat delay, so that gap gets the longer delay instead of the window.
type HoldTracker struct {
	delay  time.Duration
	window time.Duration
	keys   map[core.Action]heldKey
}

type heldKey struct {
	last      time.Time
	repeating bool
}

// NewHoldTracker creates a tracker. delay covers the wait for the first
// auto-repeat, window the gap between repeats. Non-positive values use
// the runtime defaults.
func NewHoldTracker(delay, window time.Duration) *HoldTracker {
	def := core.DefaultConfig()
	if delay <= 0 {
		delay = def.HoldDelay
	}
	if window <= 0 {
		window = def.HoldWindow
	}
	return &HoldTracker{
		delay:  delay,
		window: window,
		keys:   make(map[core.Action]heldKey),
	}
}

// Press records a press or auto-repeat of an action.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	if a == core.ActionNone {
		return
	}
	_, held := h.keys[a]
	h.keys[a] = heldKey{last: now, repeating: held}
}

// Fill writes the state at now into frame: actions whose last event is
// recent enough are held, actions that just timed out are released.
func (h *HoldTracker) Fill(now time.Time, frame *core.InputFrame) {
	for a, k := range h.keys {
		limit := h.delay
		if k.repeating {
			limit = h.window
		}
		if now.Sub(k.last) < limit {
			frame.Set(a)
			continue
		}
		frame.SetReleased(a)
		delete(h.keys, a)
	}
}

// Held reports whether an action is currently held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.keys[a]
	return ok
}

// Reset forgets every held action without reporting releases.
func (h *HoldTracker) Reset() {
	clear(h.keys)
}
