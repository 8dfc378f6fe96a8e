package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagPlayer string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local match",
	Long: `Start a two-player match on this terminal.

Controls:
  W/S        - Left paddle up/down
  Up/Down    - Right paddle up/down
  P          - Pause/resume (on release)
  Ctrl+S     - Save screenshot to ~/.pong/screenshots
  ?          - Toggle help
  Q/Ctrl+C   - Quit

The match is saved to the history on quit once a point has been scored.

Examples:
  pong play
  pong play --player alice
  pong play --config ./my-court.yaml --fps 30`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name stored with the match (default: $USER)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	pongCfg, err := config.LoadPong(viper.GetString("config"))
	if err != nil {
		return err
	}

	logger, logFile, err := newLogger("pong", false)
	if err != nil {
		return err
	}
	defer logFile.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:    width,
		ScreenH:    height,
		TickRate:   viper.GetInt("fps"),
		HoldDelay:  viper.GetDuration("hold-delay"),
		HoldWindow: viper.GetDuration("hold"),
	}

	// Open match storage
	store, err := storage.Open(viper.GetString("db"))
	if err != nil {
		logger.Warn("could not open match database", "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open match database: %v\n", err)
		// Continue without storage - the match still works
		store = nil
	}

	player := flagPlayer
	if player == "" {
		player = defaultPlayer()
	}

	runErr := tui.Run(tui.Options{
		Pong:    pongCfg,
		Runtime: rt,
		Store:   store,
		Logger:  logger,
		Player:  player,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("match aborted", "error", runErr)
		return fmt.Errorf("running match: %w", runErr)
	}
	return nil
}
