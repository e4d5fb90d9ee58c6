// asteroids is a vector arcade shooter that runs in the terminal or in a window.
//
// Usage:
//
//	asteroids play            - Play in the terminal
//	asteroids play -f window  - Play in a desktop window
//	asteroids menu            - Pick a difficulty from a menu
//	asteroids list            - List available frontends
//	asteroids scores          - Show the best scores
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--scores <path>     - Set best scores path
//	--store <kind>      - Best scores store: text or sqlite
//	--config <path>     - Custom game config YAML
//	--difficulty <name> - Difficulty preset: easy, normal, hard, fixed
//	--assets <dir>      - Directory with WAV sound effects
//	--mute              - Disable sound output
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-asteroids/internal/platform/gui"
	_ "github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagScores     string
	flagStore      string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
	flagAssets     string
	flagMute       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - a vector arcade shooter",
	Long: `Asteroids is a vector arcade shooter. Steer the ship, break up the
asteroids and keep away from the flying saucers.

Available commands:
  list     - Show all available frontends
  play     - Start a game
  menu     - Pick a difficulty interactively
  scores   - View the best scores

Examples:
  asteroids play
  asteroids play --frontend window --difficulty hard
  asteroids scores --store sqlite`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagScores, "scores", "", "Path to the best scores file (default depends on --store)")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "text", "Best scores store: text, sqlite")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagAssets, "assets", "assets/sounds", "Directory with WAV sound effects")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound output")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.asteroids/asteroids.log", "Log file path (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
}
