package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var (
	flagPlain        bool
	flagLimit        int
	flagScoresPlayer string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse match history",
	Long: `Show recently finished matches.

Without --plain an interactive table opens; Tab switches between all
matches and those of --player.

Examples:
  pong scores
  pong scores --player alice
  pong scores --plain --limit 5`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain text list instead of the interactive table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of matches in plain mode")
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Player for stats and filtering (default: $USER)")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(viper.GetString("db"))
	if err != nil {
		return fmt.Errorf("opening match database: %w", err)
	}
	defer store.Close()

	player := flagScoresPlayer
	if player == "" {
		player = defaultPlayer()
	}

	if !flagPlain {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, player, width, height)
	}

	if err := printHistory(store, player, flagLimit); err != nil {
		return fmt.Errorf("retrieving matches: %w", err)
	}
	return nil
}

// printHistory writes recent matches and the player's totals to stdout.
func printHistory(store *storage.Store, player string, limit int) error {
	matches, err := store.RecentMatches(limit)
	if err != nil {
		return err
	}

	fmt.Println("Match History")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'pong play' and score a point to record the first one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-16s  %-12s  %-7s  %-6s  %s\n", "Date", "Player", "Score", "Winner", "Time")
	fmt.Printf("  %-16s  %-12s  %-7s  %-6s  %s\n", "----", "------", "-----", "------", "----")

	for _, m := range matches {
		row := tui.MatchRow(m)
		fmt.Printf("  %-16s  %-12s  %-7s  %-6s  %s\n",
			m.CreatedAt.Format("2006-01-02 15:04"), row[1], row[2], row[3], row[4])
	}

	stats, err := store.PlayerStats(player)
	if err != nil {
		return err
	}
	if stats.Matches > 0 {
		fmt.Println()
		fmt.Printf("%s: %d matches, points %d:%d, last played %s\n",
			stats.Player, stats.Matches, stats.LeftPoints, stats.RightPoints,
			stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
