// Package bubbles implements the bubble shooter game for the arcade platform.
// Rules live in the engine subpackage; this package adapts them to the
// platform's tick, input and screen contracts.
package bubbles

import (
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/config"
	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/core"
	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/games/bubbles/engine"
	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/registry"
)

// Aim limits in degrees, measured counterclockwise from the positive X axis.
const (
	aimMinDeg = 8.0
	aimMaxDeg = 172.0
	aimReach  = 200.0 // Distance of the keyboard aim point from the launcher
)

// aimSource tells which input device steers the launcher.
type aimSource int

const (
	aimKeyboard aimSource = iota
	aimPointer
)

// Game implements registry.Game for the bubble shooter.
type Game struct {
	runtime  core.RuntimeConfig
	cfg      config.BubblesConfig
	session  *Session
	restarts uint64

	aimDeg    float64
	pointer   engine.Vec
	source    aimSource
	showGuide bool
	paused    bool

	view     core.Viewport // Layout of the last render, used to map the pointer
	tooSmall bool

	logger *log.Logger
}

// New creates a new bubble shooter instance.
func New() *Game {
	return &Game{logger: log.New(io.Discard)}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "bubbles"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Bubble Shooter"
}

// SetLogger sets the logger for game and session events.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
	if g.session != nil {
		g.session.SetLogger(l)
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := LoadSettings()
	if err != nil {
		g.logger.Warn("using default config", "path", configPath, "err", err)
	}
	g.cfg = cfg

	eng, err := engine.NewEngine(EngineConfig(cfg))
	if err != nil {
		g.logger.Warn("config rejected by engine, using defaults", "err", err)
		g.cfg = config.DefaultBubblesConfig()
		eng, _ = engine.NewEngine(engine.DefaultConfig())
	}

	g.restarts = 0
	g.session = NewSession(eng, g.seed(), g.cfg.Display.PopupTicks)
	g.session.SetLogger(g.logger)

	g.aimDeg = 90
	g.source = aimKeyboard
	g.showGuide = g.cfg.Display.ShowTrajectory
	g.paused = false
}

// seed derives the RNG seed for the current game.
func (g *Game) seed() uint64 {
	return uint64(g.runtime.Seed) + g.restarts //#nosec G115 -- seed bits are reinterpreted, not measured
}

// Step advances the simulation by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionGuide) {
		g.showGuide = !g.showGuide
	}
	if in.Has(core.ActionRestart) {
		g.restarts++
		g.session.Restart(g.seed())
		g.paused = false
	}
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.steer(in)

	trigger := in.Has(core.ActionFire) || in.Pointer.Clicked
	if g.session.State().Terminal() {
		if trigger || in.Has(core.ActionConfirm) {
			g.session.Acknowledge()
		}
	} else if trigger {
		g.session.Fire(g.Aim())
	}

	_, err := g.session.Tick()
	return core.StepResult{State: g.State(), Err: err}
}

// steer updates the aim from keyboard rotation and pointer movement.
func (g *Game) steer(in core.InputFrame) {
	step := g.cfg.Display.AimStep
	if in.Has(core.ActionLeft) {
		g.aimDeg = core.ClampF(g.aimDeg+step, aimMinDeg, aimMaxDeg)
		g.source = aimKeyboard
	}
	if in.Has(core.ActionRight) {
		g.aimDeg = core.ClampF(g.aimDeg-step, aimMinDeg, aimMaxDeg)
		g.source = aimKeyboard
	}

	if !in.Pointer.Valid || g.view.Area.W == 0 {
		return
	}
	x, y := g.view.ToField(in.Pointer.X, in.Pointer.Y)
	p := engine.V(x, y)
	if p != g.pointer || in.Pointer.Clicked {
		g.pointer = p
		g.source = aimPointer
	}
}

// Aim returns the field point the launcher currently aims at.
func (g *Game) Aim() engine.Vec {
	if g.source == aimPointer {
		return g.pointer
	}
	rad := g.aimDeg * math.Pi / 180
	dir := engine.V(math.Cos(rad), -math.Sin(rad))
	return g.session.Engine().Launcher().Add(dir.Scale(aimReach))
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := g.session.State()
	return core.GameState{
		Score:    s.Score,
		Level:    s.Level,
		GameOver: s.Overflowed,
		Won:      s.Cleared,
		Paused:   g.paused,
	}
}

// Session exposes the running session to frontends that draw the field themselves.
func (g *Game) Session() *Session {
	return g.session
}

// Settings returns the configuration the game was reset with.
func (g *Game) Settings() config.BubblesConfig {
	return g.cfg
}

// ShowGuide reports whether the aim guide is visible.
func (g *Game) ShowGuide() bool {
	return g.showGuide
}

// Paused reports whether the game is paused.
func (g *Game) Paused() bool {
	return g.paused
}

func init() {
	registry.Register("bubbles", func() registry.Game {
		return New()
	})
}
