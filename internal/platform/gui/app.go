// Package gui hosts the bubble shooter in a desktop window with ebiten.
// The field is drawn in its own pixel coordinates, so the pointer maps to
// engine positions without scaling.
package gui

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/config"
	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/games/bubbles"
	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/games/bubbles/engine"
)

// Input is the player input gathered for one tick.
type Input struct {
	Cursor  engine.Vec
	Click   bool
	Confirm bool
	Guide   bool
	Pause   bool
	Restart bool
	Quit    bool
}

// App implements ebiten.Game around a bubble shooter session.
type App struct {
	session *bubbles.Session
	display config.DisplayConfig
	seed    uint64

	aim       engine.Vec
	showGuide bool
	paused    bool
	restarts  uint64
	failures  int

	log *log.Logger
}

// New creates an app for the given configuration and seed.
func New(cfg config.BubblesConfig, seed uint64, logger *log.Logger) (*App, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	eng, err := engine.NewEngine(bubbles.EngineConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	s := bubbles.NewSession(eng, seed, cfg.Display.PopupTicks)
	s.SetLogger(logger)

	return &App{
		session:   s,
		display:   cfg.Display,
		seed:      seed,
		aim:       eng.Launcher().Add(engine.V(0, -100)),
		showGuide: cfg.Display.ShowTrajectory,
		log:       logger,
	}, nil
}

// Session returns the running session.
func (a *App) Session() *bubbles.Session {
	return a.session
}

// Update reads ebiten input and advances the game by one tick.
func (a *App) Update() error {
	return a.Apply(readInput())
}

// Apply advances the game by one tick with the given input.
// It returns ebiten.Termination when the player quits.
func (a *App) Apply(in Input) error {
	if in.Quit {
		a.log.Info("window closed", "score", a.session.State().Score, "level", a.session.State().Level)
		return ebiten.Termination
	}
	if in.Pause {
		a.paused = !a.paused
	}
	if in.Guide {
		a.showGuide = !a.showGuide
	}
	if in.Restart {
		a.restarts++
		a.session.Restart(a.seed + a.restarts)
		a.paused = false
	}
	if a.paused {
		return nil
	}

	a.aim = in.Cursor
	if a.session.State().Terminal() {
		if in.Click || in.Confirm {
			a.session.Acknowledge()
		}
	} else if in.Click {
		a.session.Fire(a.aim)
	}

	if _, err := a.session.Tick(); err != nil {
		a.failures++
		// The session already logged the details; keep playing.
		if errors.Is(err, engine.ErrGridMismatch) {
			return nil
		}
		return err
	}
	return nil
}

// Layout keeps the logical screen at the field size.
func (a *App) Layout(_, _ int) (int, int) {
	cfg := a.session.Engine().Config()
	return int(cfg.Width), int(cfg.Height)
}

func readInput() Input {
	mx, my := ebiten.CursorPosition()
	return Input{
		Cursor:  engine.V(float64(mx), float64(my)),
		Click:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Confirm: inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Guide:   inpututil.IsKeyJustPressed(ebiten.KeyG),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyP),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ),
	}
}

// Run opens the window and blocks until it is closed.
func Run(cfg config.BubblesConfig, seed uint64, tps int, logger *log.Logger) error {
	app, err := New(cfg, seed, logger)
	if err != nil {
		return err
	}

	w, h := app.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Bubble Shooter")
	ebiten.SetTPS(tps)

	err = ebiten.RunGame(app)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}

// bubbleColors are the fill colors of the palette.
var bubbleColors = [engine.PaletteSize]color.RGBA{
	{255, 87, 90, 255},  // red
	{87, 165, 255, 255}, // blue
	{87, 255, 87, 255},  // green
	{255, 215, 87, 255}, // yellow
	{255, 140, 87, 255}, // orange
	{255, 87, 245, 255}, // pink
	{87, 255, 255, 255}, // cyan
	{200, 87, 255, 255}, // purple
}

// BubbleColor returns the fill color of an engine color.
func BubbleColor(c engine.Color) color.RGBA {
	if !c.Valid() {
		return color.RGBA{255, 255, 255, 255}
	}
	return bubbleColors[c]
}
