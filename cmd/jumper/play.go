package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/core"
	"github.com/vovakirdan/tui-jumper/internal/platform/tui"
	"github.com/vovakirdan/tui-jumper/internal/profile"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	flagNickname string
	flagAge      string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a local session. You are asked for a nickname and age first
unless --nickname or --age is given.

Controls:
  A/Left, D/Right  - Run
  S/Down           - Stop
  Space/W/Up       - Jump
  P                - Pause
  R                - Restart (after game over)
  B/Esc            - Back to the profile screen (paused or game over)
  Q/Ctrl+C         - Quit

Examples:
  jumper play
  jumper play --nickname neo
  jumper play --seed 42 --fps 30
  jumper play --config ./my-jumper.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagNickname, "nickname", "", "Nickname to play as (skips the profile form)")
	playCmd.Flags().StringVar(&flagAge, "age", "", "Age to show in the info panel (skips the profile form)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	width, height, err := tui.CheckSurface(os.Stdout)
	if err != nil {
		logger.Error("cannot start the game", "error", err)
		os.Exit(1)
	}

	// Fail before entering the alternate screen on a broken config.
	if _, err := loadGameConfig(); err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}

	opts := tui.SessionOptions{
		Store: store,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Logger: logger,
	}
	if cmd.Flags().Changed("nickname") || cmd.Flags().Changed("age") {
		opts.Preset = &profile.Profile{Nickname: flagNickname, Age: flagAge}
	}

	runErr := tui.Run(opts)
	closeStore(store)

	if runErr != nil {
		return fmt.Errorf("run game: %w", runErr)
	}
	return nil
}
