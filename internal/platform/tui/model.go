package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// WindowTitle is set on the terminal when a match starts.
const WindowTitle = "Pong!"

// Options configures a match model.
type Options struct {
	Pong    config.PongConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables match history
	Logger  *log.Logger    // nil discards log output
	Player  string

	// Renderer styles output; SSH sessions pass their own. nil uses the default.
	Renderer *lipgloss.Renderer

	// ScreenshotDir overrides ~/.pong/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model for a local two-player match.
type Model struct {
	world      *pong.World
	scene      *Scene
	screen     *core.Screen
	painter    *Painter
	dimStyle   lipgloss.Style
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	holds      *HoldTracker
	inputFrame core.InputFrame

	player   string
	matchID  string
	started  time.Time
	lastTick time.Time
	shotDir  string

	quitting bool
	finished *bool // shared by copies so a match is stored once
}

// NewModel creates a new Bubble Tea model with a fresh court.
func NewModel(opts Options) (Model, error) {
	cfg := opts.Runtime
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	scene := NewScene(CourtViewport)
	world, err := pong.NewWorld(opts.Pong, scene)
	if err != nil {
		return Model{}, fmt.Errorf("tui: cannot build court: %w", err)
	}

	player := opts.Player
	if player == "" {
		player = "local"
	}

	shotDir := opts.ScreenshotDir
	if shotDir == "" {
		shotDir = filepath.Join(os.Getenv("HOME"), ".pong", "screenshots")
	}

	h := help.New()
	h.ShowAll = false

	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	matchID := uuid.NewString()

	return Model{
		world:      world,
		scene:      scene,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		painter:    NewPainter(renderer),
		dimStyle:   renderer.NewStyle().Foreground(lipgloss.Color("241")),
		store:      opts.Store,
		logger:     logger.With("match", matchID[:8], "player", player),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       h,
		holds:      NewHoldTracker(cfg.HoldDelay, cfg.HoldWindow),
		inputFrame: core.NewInputFrame(),
		player:     player,
		matchID:    matchID,
		started:    time.Now(),
		shotDir:    shotDir,
		finished:   new(bool),
	}, nil
}

// Init sets the window title and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("match started")
	return tea.Batch(
		tea.SetWindowTitle(WindowTitle),
		tickCmd(m.config.TickRate),
	)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.Finish(storage.EndQuit)
		m.quitting = true
		return m, tea.Quit
	}

	m.holds.Press(action, time.Now())
	return m, nil
}

// handleResize rescales the court. The simulation is not reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the world by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := 1.0 / float64(m.config.TickRate)
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.holds.Fill(now, &m.inputFrame)
	wasPaused := m.world.Paused

	res := m.world.Tick(dt, pong.InputFromFrame(m.inputFrame))

	for _, ev := range res.Events {
		m.logger.Info("goal", "event", ev, "score", res.Score)
	}
	if res.Paused != wasPaused {
		m.logger.Debug("pause toggled", "paused", res.Paused, "tick", m.world.Ticks())
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// Finish stores the match once, if anything was scored. Later calls,
// from any copy of the model, do nothing.
func (m Model) Finish(reason string) {
	if *m.finished {
		return
	}
	*m.finished = true

	score := m.world.Score
	m.logger.Info("match finished", "score", score, "ticks", m.world.Ticks(), "reason", reason)

	if m.store == nil || score.Left+score.Right == 0 {
		return
	}

	_, err := m.store.SaveMatch(storage.Match{
		MatchID:    m.matchID,
		Player:     m.player,
		ScoreLeft:  score.Left,
		ScoreRight: score.Right,
		Ticks:      int64(m.world.Ticks()), //nolint:gosec // tick counts stay far below MaxInt64
		Duration:   time.Since(m.started),
		EndReason:  reason,
	})
	if err != nil {
		m.logger.Warn("cannot save match", "err", err)
	}
}

// saveScreenshot saves the current court to a text file.
func (m *Model) saveScreenshot() {
	m.scene.Draw(m.screen, m.world.Paused)

	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(m.shotDir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("pong_%s.txt", timestamp))

	snap := m.world.Snapshot()
	header := fmt.Sprintf("# match %s tick %d score %d:%d hash %016x\n",
		m.matchID, snap.Tick, snap.ScoreLeft, snap.ScoreRight, snap.Hash())

	if err := os.WriteFile(path, []byte(header+m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the court and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.scene.Draw(m.screen, m.world.Paused)

	var b strings.Builder
	b.WriteString(m.painter.Render(m.screen))
	b.WriteString("\n")
	b.WriteString(m.dimStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// World exposes the simulation, mainly for tests.
func (m Model) World() *pong.World {
	return m.world
}

// Finished reports whether the match has been finished.
func (m Model) Finished() bool {
	return *m.finished
}

// Run starts the Bubble Tea program for a local match.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if m, ok := final.(Model); ok {
		// Interrupted programs skip the quit key path.
		m.Finish(storage.EndQuit)
	}
	return err
}
