// snake is the classic Snake game for the terminal or a desktop window.
//
// Usage:
//
//	snake play [game]   - Play (default: snake)
//	snake list          - List available games
//	snake config        - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>     - Config file (default: ~/.snake/configs/snake.yaml, ./configs/snake.yaml, embedded)
//	--fps <rate>        - Override the frame rate
//	--tick <duration>   - Override the time between moves (e.g. 100ms)
//	--seed <value>      - Set RNG seed for reproducible apple placement
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/tui-snake/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagTick     time.Duration
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - steer the snake, eat apples, avoid walls",
	Long: `Snake is the classic arcade game. The snake moves one cell per tick,
grows by one segment for every apple it eats and dies when it hits a wall
or its own body.

Available commands:
  play     - Play in the terminal or a window
  list     - Show all available games
  config   - Print the effective configuration

Examples:
  snake play
  snake play --backend window
  snake play --tick 100ms --seed 42
  snake config --config ./my-snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = from config)")
	rootCmd.PersistentFlags().DurationVar(&flagTick, "tick", 0, "Time between moves (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the stderr logger used by every command.
func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
		Level:           level,
	})
	return logger, nil
}

// loadConfig loads the configuration and applies the global flag overrides.
func loadConfig() (config.SnakeConfig, string, error) {
	cfg, source, err := config.LoadSnake(flagConfig)
	if err != nil {
		return config.SnakeConfig{}, "", err
	}
	if flagFPS > 0 {
		cfg.Timing.FrameRate = flagFPS
	}
	if flagTick > 0 {
		cfg.Timing.TickInterval = flagTick
	}
	if err := cfg.Validate(); err != nil {
		return config.SnakeConfig{}, "", err
	}
	return cfg, source, nil
}
