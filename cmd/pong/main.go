// pong is a two-player Pong for the terminal.
//
// Usage:
//
//	pong                     - Play a local match (same as pong play)
//	pong play                - Play a local match
//	pong scores              - Browse match history
//	pong serve               - Start SSH server, one match per session
//	pong config              - Print the effective court configuration
//
// Global flags (also read from PONG_* environment variables):
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--hold-delay <dur>  - How long a first press counts as held (default: 600ms)
//	--hold <duration>   - How long a key counts as held after a repeat (default: 200ms)
//	--db <path>         - Set database path (default: ~/.pong/pong.db)
//	--config <path>     - Custom court config YAML
//	--log-file <path>   - Log file, rotated (default: ~/.pong/pong.log)
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two players, one keyboard, one terminal",
	Long: `Pong is the classic two-paddle game for the terminal.

The left player uses W/S, the right player the arrow keys.
P pauses, Ctrl+S saves a screenshot, Q quits.

Available commands:
  play     - Play a local match (default)
  scores   - Browse match history
  serve    - Start SSH server for remote play
  config   - Print the effective court configuration

Every flag can also be set through the environment, e.g. PONG_FPS=30.

Examples:
  pong
  pong play --config ./fast.yaml
  pong scores --plain
  pong serve --ssh :2222`,
	RunE: runPlay,

	// main prints the error.
	SilenceErrors: true,
	SilenceUsage:  true,
}

func init() {
	// Global persistent flags
	flags := rootCmd.PersistentFlags()
	flags.Int("fps", 60, "Tick rate (frames per second)")
	flags.Duration("hold-delay", 600*time.Millisecond, "How long a key stays held after its first press, until auto-repeat starts")
	flags.Duration("hold", 200*time.Millisecond, "How long a key stays held after each auto-repeat")
	flags.String("db", "~/.pong/pong.db", "Path to match history database")
	flags.String("config", "", "Path to custom court config YAML")
	flags.String("log-file", "~/.pong/pong.log", "Path to log file")
	flags.String("log-level", "info", "Log level: debug, info, warn, error")
	flags.Int("log-max-size", 10, "Rotate the log file after this many megabytes")

	if err := viper.BindPFlags(flags); err != nil {
		panic(err)
	}
	viper.SetEnvPrefix("PONG")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// defaultPlayer names the local player after the OS user.
func defaultPlayer() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if u := os.Getenv(env); u != "" {
			return u
		}
	}
	return "local"
}
