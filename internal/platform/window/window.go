// Package window runs the Snake game in a desktop window with Ebitengine.
// It polls discrete key presses once per frame, steps the game and draws
// sprites for the snake and apple, falling back to solid colors.
package window

import (
	"errors"
	"fmt"
	"image/color"
	_ "image/png" // register the PNG decoder for sprites
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Game is what the window needs from a game: frame stepping plus a
// snapshot in grid coordinates to draw from.
type Game interface {
	Reset(cfg core.RuntimeConfig)
	Step(in core.InputFrame) core.StepResult
	Snapshot() snake.Snapshot
}

// Palette holds the solid colors used when sprites are missing.
type Palette struct {
	Head       color.RGBA
	Body       color.RGBA
	Apple      color.RGBA
	Background color.RGBA
}

// Options controls the window front end.
type Options struct {
	CellPx         int
	Title          string
	Assets         config.AssetsConfig
	Palette        Palette
	ExitOnGameOver bool
	Logger         *log.Logger
}

// OptionsFromConfig builds window options from the loaded configuration.
func OptionsFromConfig(cfg config.SnakeConfig, logger *log.Logger) (Options, error) {
	var p Palette
	for _, c := range []struct {
		hex string
		dst *color.RGBA
	}{
		{cfg.Window.Colors.Head, &p.Head},
		{cfg.Window.Colors.Body, &p.Body},
		{cfg.Window.Colors.Apple, &p.Apple},
		{cfg.Window.Colors.Background, &p.Background},
	} {
		rgba, err := config.ParseHexColor(c.hex)
		if err != nil {
			return Options{}, fmt.Errorf("window: %w", err)
		}
		*c.dst = rgba
	}

	return Options{
		CellPx:         cfg.Arena.CellPx,
		Title:          cfg.Window.Title,
		Assets:         cfg.Window.Assets,
		Palette:        p,
		ExitOnGameOver: cfg.ExitOnGameOver,
		Logger:         logger,
	}, nil
}

// Result reports how a run ended.
type Result struct {
	Quit  bool           // The player quit or closed the window
	State core.GameState // Game state when the window closed
}

// runner adapts a Game to ebiten.Game.
type runner struct {
	game  Game
	cfg   core.RuntimeConfig
	opts  Options
	frame core.InputFrame
	state core.GameState

	head, body, apple *ebiten.Image

	quit  bool
	ended bool // Stopped by ExitOnGameOver
}

func newRunner(game Game, cfg core.RuntimeConfig, opts Options) *runner {
	return &runner{
		game:  game,
		cfg:   cfg,
		opts:  opts,
		frame: core.NewInputFrame(),
	}
}

// loadSprites loads the configured PNGs, replacing any that fail with a
// solid square of the palette color.
func (r *runner) loadSprites() {
	r.head = loadSprite(r.opts.Assets.Head, r.opts.Palette.Head, r.opts.CellPx, r.opts.Logger)
	r.body = loadSprite(r.opts.Assets.Body, r.opts.Palette.Body, r.opts.CellPx, r.opts.Logger)
	r.apple = loadSprite(r.opts.Assets.Apple, r.opts.Palette.Apple, r.opts.CellPx, r.opts.Logger)
}

func loadSprite(path string, fallback color.RGBA, cellPx int, logger *log.Logger) *ebiten.Image {
	if path != "" {
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err == nil {
			return img
		}
		logger.Warn("sprite unavailable, using solid color", "path", path, "error", err)
	}
	img := ebiten.NewImage(cellPx, cellPx)
	img.Fill(fallback)
	return img
}

// Update polls input and steps the game once per Ebitengine tick.
func (r *runner) Update() error {
	for _, b := range bindings {
		for _, k := range b.keys {
			if inpututil.IsKeyJustPressed(k) {
				r.frame.Set(b.action)
				break
			}
		}
	}
	return r.step()
}

// step feeds the buffered input to the game. TPS equals the frame rate,
// so the game's nominal frame duration is the elapsed time.
func (r *runner) step() error {
	if r.frame.Has(core.ActionQuit) {
		r.quit = true
		return ebiten.Termination
	}

	result := r.game.Step(r.frame)
	r.state = result.State
	r.frame.Clear()

	if r.state.GameOver && r.opts.ExitOnGameOver {
		r.ended = true
		return ebiten.Termination
	}
	return nil
}

// Draw renders the arena from the game snapshot.
func (r *runner) Draw(screen *ebiten.Image) {
	screen.Fill(r.opts.Palette.Background)

	snap := r.game.Snapshot()
	if snap.HasApple {
		r.drawCell(screen, r.apple, snap.Apple)
	}
	for _, p := range snap.Body {
		r.drawCell(screen, r.body, p)
	}
	r.drawCell(screen, r.head, snap.Head)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Score: %d", snap.Length), 4, 2)

	w, h := WindowSize(snap.Width, snap.Height, r.opts.CellPx)
	switch snap.Phase {
	case snake.PhasePaused:
		r.drawMessage(screen, w, h, "Paused", "P: resume")
	case snake.PhaseGameOver:
		r.drawMessage(screen, w, h, "Game Over: "+snap.Reason.String(), "R: restart  Q: quit")
	case snake.PhaseWin:
		r.drawMessage(screen, w, h, "You Win!", "R: restart  Q: quit")
	}
}

func (r *runner) drawCell(screen, img *ebiten.Image, p core.GridPos) {
	b := img.Bounds()
	sx, sy := spriteScale(b.Dx(), b.Dy(), r.opts.CellPx)
	x, y := cellToPixel(p, r.opts.CellPx)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(x, y)
	screen.DrawImage(img, op)
}

func (r *runner) drawMessage(screen *ebiten.Image, w, h int, line1, line2 string) {
	ebitenutil.DebugPrintAt(screen, line1, textX(line1, w), h/2-16)
	ebitenutil.DebugPrintAt(screen, line2, textX(line2, w), h/2)
}

// Layout keeps the logical screen at the arena size.
func (r *runner) Layout(_, _ int) (int, int) {
	return WindowSize(r.cfg.GridW, r.cfg.GridH, r.opts.CellPx)
}

// Run opens the window and blocks until the player quits, closes the
// window or, with ExitOnGameOver, the game ends.
func Run(game Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	if opts.CellPx <= 0 {
		return Result{}, errors.New("window: cell size must be positive")
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	r := newRunner(game, cfg, opts)
	r.loadSprites()
	game.Reset(cfg)

	w, h := WindowSize(cfg.GridW, cfg.GridH, opts.CellPx)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(cfg.FrameRate)

	if err := ebiten.RunGame(r); err != nil && !errors.Is(err, ebiten.Termination) {
		return Result{}, fmt.Errorf("window: %w", err)
	}
	// Closing the window counts as quitting.
	return Result{Quit: !r.ended, State: r.state}, nil
}
