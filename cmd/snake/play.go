package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/platform/window"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Front ends selectable with --backend.
const (
	backendTUI    = "tui"
	backendWindow = "window"
)

var (
	flagBackend        string
	flagExitOnGameOver bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to snake.

Controls:
  W/Up, S/Down, A/Left, D/Right - Steer
  P                             - Pause
  R                             - Restart (after game over)
  Q/Ctrl+C                      - Quit (closing the window also quits)

Examples:
  snake play
  snake play --backend window
  snake play --exit-on-game-over
  snake play --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagBackend, "backend", backendTUI, "Front end: tui or window")
	playCmd.Flags().BoolVar(&flagExitOnGameOver, "exit-on-game-over", false, "Exit as soon as the game ends")
}

// outcomeReporter is implemented by games that can explain how they ended.
type outcomeReporter interface {
	Outcome() snake.Outcome
	Snapshot() snake.Snapshot
	DebugState() string
}

// playResult is the front-end independent end of a run.
type playResult struct {
	quit  bool
	state core.GameState
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := snake.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	logger, err := newLogger()
	if err != nil {
		return err
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'snake list' to see available games", gameID)
	}

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}
	if flagExitOnGameOver {
		cfg.ExitOnGameOver = true
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rt := cfg.Runtime(seed)

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	logger.Debug("starting",
		"game", gameID,
		"backend", flagBackend,
		"config", source,
		"grid", fmt.Sprintf("%dx%d", rt.GridW, rt.GridH),
		"tick", rt.TickInterval,
		"fps", rt.FrameRate,
		"seed", seed,
	)

	var res playResult
	switch flagBackend {
	case backendTUI:
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}

		r, runErr := tui.Run(game, rt, tui.Options{
			Width:          width,
			Height:         height,
			ExitOnGameOver: cfg.ExitOnGameOver,
		})
		if runErr != nil {
			return fmt.Errorf("running game: %w", runErr)
		}
		res = playResult{quit: r.Quit, state: r.State}

	case backendWindow:
		wg, ok := game.(window.Game)
		if !ok {
			return fmt.Errorf("game %q has no window front end", gameID)
		}
		opts, optErr := window.OptionsFromConfig(cfg, logger)
		if optErr != nil {
			return optErr
		}

		r, runErr := window.Run(wg, rt, opts)
		if runErr != nil {
			return fmt.Errorf("running game: %w", runErr)
		}
		res = playResult{quit: r.Quit, state: r.State}

	default:
		return fmt.Errorf("unknown backend %q, expected %q or %q", flagBackend, backendTUI, backendWindow)
	}

	reportEnd(logger, game, res)
	return nil
}

// reportEnd logs how the run finished.
func reportEnd(logger *log.Logger, game registry.Game, res playResult) {
	if !res.state.GameOver {
		logger.Info("quit", "score", res.state.Score)
		return
	}

	fields := []any{"score", res.state.Score}
	if r, ok := game.(outcomeReporter); ok {
		snap := r.Snapshot()
		reason := "arena full"
		if o := r.Outcome(); o.GameOver {
			reason = o.Reason.String()
		}
		fields = append(fields, "reason", reason, "length", snap.Length+1, "ticks", snap.Tick)
		logger.Debug("final state", "state", r.DebugState())
	}
	logger.Info("game over", fields...)
}
