package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/audio"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the chosen frontend.

Controls:
  Left/Right  - Rotate
  Up          - Thrust
  Space       - Fire
  S/Down      - Shield
  P           - Pause
  N           - New game
  +/-         - Volume
  Q/Esc       - Quit

Difficulty options:
  easy   - Five lives, longer shield, gentle progression
  normal - Default rules
  hard   - Two lives, saucers fire faster
  fixed  - No progression, stays at config's initial level

Examples:
  asteroids play
  asteroids play --frontend window
  asteroids play --difficulty hard --seed 42
  asteroids play --assets ./sounds --store sqlite`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVarP(&flagFrontend, "frontend", "f", "tui", "Frontend: tui, window")
}

func runPlay(cmd *cobra.Command, args []string) error {
	return playGame(flagFrontend, flagDifficulty)
}

// playGame runs one game in the named frontend until the player quits.
func playGame(frontendID, difficulty string) error {
	frontend, err := registry.Create(frontendID)
	if err != nil {
		return fmt.Errorf("%w (run 'asteroids list' to see available frontends)", err)
	}

	cfg, err := loadConfig(flagConfig, difficulty)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := openStore(flagStore, flagScores)
	if err != nil {
		// The game still runs without persistence.
		logger.Warn("best scores store unavailable", "err", err)
	} else {
		defer store.Close()
	}

	var snd core.SoundDevice = core.NopSound{}
	if !flagMute {
		snd = audio.NewDevice(flagAssets, logger)
	}

	runtime := runtimeConfig(flagFPS, flagSeed)
	logger.Info("starting game",
		"frontend", frontend.ID(),
		"difficulty", difficulty,
		"seed", runtime.Seed,
		"tick_rate", runtime.TickRate,
		"store", flagStore,
	)

	session := registry.Session{
		NewGame: func(r core.Renderer) (*asteroids.Game, error) {
			opts := []asteroids.Option{asteroids.WithLogger(logger)}
			if store != nil {
				opts = append(opts, asteroids.WithScoreStore(store))
			}
			return asteroids.New(cfg, runtime, r, snd, opts...)
		},
		Runtime: runtime,
		ArenaW:  cfg.Arena.Width,
		ArenaH:  cfg.Arena.Height,
		Log:     logger,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := frontend.Run(ctx, session); err != nil {
		logger.Error("game ended with error", "err", err)
		return err
	}
	logger.Info("game closed")
	return nil
}
