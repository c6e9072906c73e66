package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mzheleznov/tui-tunnel/internal/platform/tui"
	"github.com/mzheleznov/tui-tunnel/internal/registry"
	"github.com/mzheleznov/tui-tunnel/internal/storage"
)

var flagPlainScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the score history as an interactive table.

Examples:
  tunnel scores
  tunnel scores --plain`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlainScores, "plain", false, "Print scores to stdout instead of the interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	const gameID = "tunnel"

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlainScores || !term.IsTerminal(int(os.Stdout.Fd())) {
		printScores(store, gameID, title)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	if err := tui.RunScoreboard(store, gameID, title, width, height); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}

// printScores writes the top 10 scores as plain text.
func printScores(store *storage.Store, gameID, title string) {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Run 'tunnel play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Ticks", "Date")
	fmt.Printf("  %-4s  %-10s  %-8s  %s\n", "----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-8d  %s\n", i+1, entry.Score, entry.Ticks, dateStr)
	}

	if high, err := store.HighScore(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d\n", high)
	}
}
