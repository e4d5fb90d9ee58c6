package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a difficulty picker menu",
	Long: `Start in interactive menu mode.

Pick a difficulty to play in the terminal. When the game is closed you
return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play
  Tab          - Best scores
  Q            - Quit

Examples:
  asteroids menu
  asteroids menu --fps 30 --mute`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	fd := int(os.Stdout.Fd()) //#nosec G115 -- file descriptors fit in int
	if !term.IsTerminal(fd) {
		return errors.New("menu needs a terminal")
	}
	width, height := 80, 24
	if w, h, err := term.GetSize(fd); err == nil {
		width, height = w, h
	}

	for {
		res, err := tui.RunMenu(width, height)
		if err != nil {
			return err
		}
		width, height = res.Width, res.Height

		switch {
		case res.Quit:
			return nil

		case res.WantsScoreboard:
			if err := showScores(width, height); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}

		default:
			if err := playGame("tui", string(res.Preset)); err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
			}
		}
	}
}

func showScores(width, height int) error {
	cfg, err := loadConfig(flagConfig, flagDifficulty)
	if err != nil {
		return err
	}
	store, err := openStore(flagStore, flagScores)
	if err != nil {
		return fmt.Errorf("cannot open scores store: %w", err)
	}
	defer store.Close()

	top, err := bestScores(store, cfg.Game.BestScores)
	if err != nil {
		return err
	}
	return tui.RunScores(top, width, height)
}
