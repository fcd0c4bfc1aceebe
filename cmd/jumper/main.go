// jumper is a side-scrolling platform jumper for the terminal.
//
// Usage:
//
//	jumper play              - Play locally
//	jumper serve             - Start SSH server for remote play
//	jumper scores            - Show high scores
//	jumper simulate          - Run the simulation headless and print a summary
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--db <path>      - Set database path (default: ~/.arcade/jumper.db)
//	--config <path>  - Use a custom game config YAML
//	--verbose        - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jumper/internal/config"
	"github.com/vovakirdan/tui-jumper/internal/games/jumper"
	"github.com/vovakirdan/tui-jumper/internal/storage"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagVerbose bool
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "jumper",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jumper",
	Short: "Platform Jumper - jump between platforms and dodge obstacles",
	Long: `Platform Jumper is a small side-scroller for the terminal. Run left and
right, jump onto platforms and stay clear of the blocks sliding in from the
right. The score counts every frame you survive.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Run the simulation without a terminal

Examples:
  jumper play
  jumper play --nickname neo --age 33
  jumper serve --ssh :2222
  jumper scores --limit 20
  jumper simulate --ticks 5000 --seed 7 --autopilot`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
		jumper.SetConfigPath(flagConfig)
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}

// loadGameConfig loads the config named by --config, or the default search order without it.
func loadGameConfig() (config.JumperConfig, error) {
	cfg, err := config.LoadJumper(flagConfig)
	if err != nil {
		return config.JumperConfig{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// closeStore closes the scores database if one was opened.
func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}
