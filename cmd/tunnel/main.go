// tunnel is a terminal arcade game: steer a glyph down a randomly
// narrowing and widening tunnel, dodge the enemies scrolling toward you,
// and shoot them down.
//
// Usage:
//
//	tunnel play              - Play in the current terminal
//	tunnel serve             - Start SSH server for remote play
//	tunnel scores            - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 10)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.tunnel/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/mzheleznov/tui-tunnel/internal/game/tunnel"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tunnel",
	Short: "Tunnel Rush - dive a scrolling tunnel in your terminal",
	Long: `Tunnel Rush is a terminal arcade game. The tunnel scrolls down,
its walls drift at random, enemies fall toward you. Stay off the walls,
shoot or dodge what comes.

Controls:
  W/A/S/D, arrows - steer
  Space           - fire (one shot in flight at a time)
  R               - restart after game over
  Q/Ctrl+C        - quit

Examples:
  tunnel play
  tunnel play --difficulty hard
  tunnel serve --ssh :2222
  tunnel scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 10, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tunnel/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
