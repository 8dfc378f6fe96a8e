package tui

import (
	"math"
	"slices"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
)

// Viewport is the region of the world mapped onto the terminal.
type Viewport struct {
	MinX, MaxX float64
	MinY, MaxY float64
}

// CourtViewport frames the default court, walls included.
var CourtViewport = Viewport{MinX: -500, MaxX: 500, MinY: -255, MaxY: 255}

type sceneEntity struct {
	kind pong.EntityKind
	box  core.Box
}

// Scene is the terminal display of a match. The world pushes the score
// line and entity boxes into it; Draw projects them onto a Screen.
type Scene struct {
	view     Viewport
	score    string
	entities map[pong.EntityID]sceneEntity
}

var _ pong.Display = (*Scene)(nil)

// NewScene creates an empty scene over the given viewport.
func NewScene(view Viewport) *Scene {
	return &Scene{
		view:     view,
		entities: make(map[pong.EntityID]sceneEntity),
	}
}

// SetScoreText implements pong.Display.
func (s *Scene) SetScoreText(text string) {
	s.score = text
}

// SetTransform implements pong.Display.
func (s *Scene) SetTransform(id pong.EntityID, kind pong.EntityKind, box core.Box) {
	s.entities[id] = sceneEntity{kind: kind, box: box}
}

// ScoreText returns the last score line pushed by the world.
func (s *Scene) ScoreText() string {
	return s.score
}

// Draw renders the scene. Row 0 is the status line; the court fills the rest.
func (s *Scene) Draw(scr *core.Screen, paused bool) {
	scr.Clear()
	if scr.Height() < 2 || scr.Width() < 1 {
		return
	}

	field := core.NewRect(0, 1, scr.Width(), scr.Height()-1)

	// Net
	netX := s.projectX(0, field)
	for y := field.Y; y < field.Bottom(); y += 2 {
		scr.SetColored(netX, y, '┆', core.ColorCourt)
	}

	ids := make([]pong.EntityID, 0, len(s.entities))
	for id := range s.entities {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	for _, id := range ids {
		e := s.entities[id]
		switch e.kind {
		case pong.KindWall:
			scr.DrawRect(s.project(e.box, field), '▀', core.ColorCourt)
		case pong.KindPaddle:
			c := core.ColorLeftPaddle
			if id == pong.EntityRightPaddle {
				c = core.ColorRightPaddle
			}
			scr.DrawRect(s.project(e.box, field), '█', c)
		}
	}

	// Ball last so it is never hidden.
	if ball, ok := s.entities[pong.EntityBall]; ok {
		scr.DrawRect(s.project(ball.box, field), '█', core.ColorBall)
	}

	scr.DrawTextCentered(0, s.score)
	if paused {
		scr.DrawTextColored(1, 0, "PAUSED", core.ColorStatus)
	}
}

func (s *Scene) projectX(x float64, field core.Rect) int {
	sx := float64(field.W) / (s.view.MaxX - s.view.MinX)
	return field.X + core.Clamp(int((x-s.view.MinX)*sx), 0, field.W-1)
}

// project maps a world box to cells inside field. Any visible box covers at
// least one cell.
func (s *Scene) project(b core.Box, field core.Rect) core.Rect {
	sx := float64(field.W) / (s.view.MaxX - s.view.MinX)
	sy := float64(field.H) / (s.view.MaxY - s.view.MinY)
	lo, hi := b.Min(), b.Max()

	x0 := int(math.Floor((lo.X - s.view.MinX) * sx))
	x1 := int(math.Ceil((hi.X - s.view.MinX) * sx))
	y0 := int(math.Floor((s.view.MaxY - hi.Y) * sy)) // world is y-up, rows go down
	y1 := int(math.Ceil((s.view.MaxY - lo.Y) * sy))

	x0 = core.Clamp(x0, 0, field.W)
	x1 = core.Clamp(x1, 0, field.W)
	y0 = core.Clamp(y0, 0, field.H)
	y1 = core.Clamp(y1, 0, field.H)

	w, h := x1-x0, y1-y0
	if w == 0 && x0 < field.W {
		w = 1
	}
	if h == 0 && y0 < field.H {
		h = 1
	}

	return core.NewRect(field.X+x0, field.Y+y0, w, h)
}
