package tui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-pong/internal/core"
)

func TestPainterPlainOutput(t *testing.T) {
	// A renderer without color support emits the runes untouched.
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	p := NewPainter(r)

	scr := core.NewScreen(6, 2)
	scr.DrawText(0, 0, "ab")
	scr.SetColored(2, 0, '█', core.ColorBrightCyan)
	scr.DrawTextColored(0, 1, "1:0", core.ColorYellow)

	got := p.Render(scr)
	want := "ab█   \n1:0   "
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestPainterColoredRuns(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)
	p := NewPainter(r)

	scr := core.NewScreen(4, 1)
	scr.SetColored(0, 0, '█', core.ColorBrightMagenta)
	scr.SetColored(1, 0, '█', core.ColorBrightMagenta)

	got := p.Render(scr)
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected ANSI sequences in %q", got)
	}
	if strings.Count(got, "█") != 2 {
		t.Errorf("expected both cells in output, got %q", got)
	}
	if !strings.HasSuffix(got, "  ") {
		t.Errorf("uncolored cells should stay plain, got %q", got)
	}
}

func TestPainterDefaultRenderer(t *testing.T) {
	scr := core.NewScreen(10, 3)
	lines := strings.Split(NewPainter(nil).Render(scr), "\n")
	if len(lines) != 3 {
		t.Errorf("got %d lines, want 3", len(lines))
	}
}
