package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagClear bool
	flagPlain bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best scores",
	Long: `Display the best scores table.

On a terminal the table opens in a scrollable view; use --plain to print it.
With the sqlite store each entry also shows when it was recorded.

Examples:
  asteroids scores
  asteroids scores --store sqlite --plain
  asteroids scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every stored score")
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print the table instead of opening the viewer")
}

// bestScores loads the visible part of the table, best first.
func bestScores(store storage.Store, shown int) ([]core.ScoreRecord, error) {
	records, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load scores: %w", err)
	}
	return asteroids.NewBestScores(shown, records).Top(), nil
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}

	store, err := openStore(flagStore, flagScores)
	if err != nil {
		return fmt.Errorf("cannot open scores store: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.Clear(); err != nil {
			return err
		}
		fmt.Println("Best scores cleared.")
		return nil
	}

	top, err := bestScores(store, cfg.Game.BestScores)
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd()) //#nosec G115 -- file descriptors fit in int
	if !flagPlain && term.IsTerminal(fd) {
		w, h, err := term.GetSize(fd)
		if err != nil {
			w, h = 80, 24
		}
		return tui.RunScores(top, w, h)
	}

	fmt.Println("Best Scores")
	fmt.Println()

	if len(top) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'asteroids play' to set the first best score!")
		return nil
	}

	if sq, ok := store.(*storage.SQLiteStore); ok {
		entries, err := sq.TopScores(cfg.Game.BestScores)
		if err != nil {
			return fmt.Errorf("cannot load scores: %w", err)
		}
		fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "Rank", "Name", "Score", "Date")
		fmt.Printf("  %-4s  %-16s  %-10s  %s\n", "----", "----", "-----", "----")
		for i, e := range entries {
			fmt.Printf("  %-4d  %-16s  %-10d  %s\n", i+1, e.Name, e.Score, e.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	}

	fmt.Printf("  %-4s  %-16s  %s\n", "Rank", "Name", "Score")
	fmt.Printf("  %-4s  %-16s  %s\n", "----", "----", "-----")
	for i, r := range top {
		fmt.Printf("  %-4d  %-16s  %d\n", i+1, r.Name, r.Score)
	}
	return nil
}
