package engine_test

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/games/bubbles/engine"
)

// engineAt returns a default engine whose launcher sits at x.
// A shot aimed straight up then travels along x exactly.
func engineAt(t *testing.T, x float64) *engine.Engine {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.Launcher.X = x
	e, err := engine.NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return e
}

func mustEngine(t *testing.T, cfg engine.Config) *engine.Engine {
	t.Helper()
	e, err := engine.NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return e
}

func place(t *testing.T, e *engine.Engine, s engine.State, color engine.Color, cells ...engine.Cell) engine.State {
	t.Helper()
	for _, c := range cells {
		var err error
		s, err = e.Place(s, c, color)
		if err != nil {
			t.Fatalf("Place(%v) failed: %v", c, err)
		}
	}
	return s
}

func fireUp(t *testing.T, e *engine.Engine, s engine.State) engine.State {
	t.Helper()
	s, ok := e.Fire(s, e.Launcher().Add(engine.V(0, -100)))
	if !ok {
		t.Fatal("Fire rejected a straight-up shot")
	}
	return s
}

// settle ticks until the projectile is gone and returns the final tick result.
func settle(t *testing.T, e *engine.Engine, s engine.State) (engine.State, engine.TickResult) {
	t.Helper()
	for i := 0; i < 1000; i++ {
		var res engine.TickResult
		var err error
		s, res, err = e.Tick(s)
		if err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
		if !s.InFlight {
			return s, res
		}
	}
	t.Fatal("projectile never settled")
	return s, engine.TickResult{}
}

func TestMatchThreshold(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		existing  []engine.Cell
		wantPop   int
		wantScore int
		wantLeft  int
	}{
		{"three pop at level 1", 1, []engine.Cell{engine.C(0, 0), engine.C(1, 0)}, 3, 30, 0},
		{"three pop at level 3", 3, []engine.Cell{engine.C(0, 0), engine.C(1, 0)}, 3, 90, 0},
		{"two stay", 1, []engine.Cell{engine.C(1, 0)}, 0, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := engine.DefaultConfig().Geometry()
			e := engineAt(t, g.ToPosition(engine.C(2, 0)).X)

			s := e.Blank(tt.level, 1).WithQueue(engine.ColorRed, engine.ColorBlue)
			s = place(t, e, s, engine.ColorRed, tt.existing...)
			s = fireUp(t, e, s)
			s, res := settle(t, e, s)

			if !res.Attached || res.Placed.Cell != engine.C(2, 0) {
				t.Fatalf("expected attach at (2,0), got attached=%v cell=%v", res.Attached, res.Placed.Cell)
			}
			if len(res.Popped) != tt.wantPop {
				t.Errorf("popped %d, want %d", len(res.Popped), tt.wantPop)
			}
			if s.Score != tt.wantScore || res.ScoreDelta != tt.wantScore {
				t.Errorf("score = %d (delta %d), want %d", s.Score, res.ScoreDelta, tt.wantScore)
			}
			if s.Remaining != tt.wantLeft || s.Board.Len() != tt.wantLeft {
				t.Errorf("remaining = %d, board = %d, want %d", s.Remaining, s.Board.Len(), tt.wantLeft)
			}
			if tt.wantPop > 0 {
				if len(res.Events) != 1 || res.Events[0].Kind != engine.EventMatch || res.Events[0].Points != tt.wantScore {
					t.Errorf("unexpected events %+v", res.Events)
				}
			}
		})
	}
}

func TestQueueAdvancesOnAttach(t *testing.T) {
	e := engineAt(t, 450)
	s := e.Blank(1, 9).WithQueue(engine.ColorGreen, engine.ColorCyan)
	s = fireUp(t, e, s)

	if s.Projectile.Color != engine.ColorGreen {
		t.Errorf("projectile color = %v, want green", s.Projectile.Color)
	}
	s, res := settle(t, e, s)
	if !res.Attached {
		t.Fatal("expected attachment at the ceiling")
	}
	if s.Current.Color != engine.ColorCyan {
		t.Errorf("current = %v, want cyan (the old preview)", s.Current.Color)
	}
	if !s.Next.Color.Valid() {
		t.Errorf("next color %v outside palette", s.Next.Color)
	}
}

func TestFloatingSweepSameTick(t *testing.T) {
	g := engine.DefaultConfig().Geometry()
	e := engineAt(t, g.ToPosition(engine.C(3, 1)).X)

	s := e.Blank(1, 1).WithQueue(engine.ColorRed, engine.ColorRed)
	s = place(t, e, s, engine.ColorBlue, engine.C(3, 0), engine.C(4, 0))
	s = place(t, e, s, engine.ColorRed, engine.C(1, 1), engine.C(2, 1))
	s = place(t, e, s, engine.ColorGreen, engine.C(1, 2), engine.C(2, 2))
	s = place(t, e, s, engine.ColorYellow, engine.C(1, 3))

	s = fireUp(t, e, s)
	s, res := settle(t, e, s)

	if res.Placed.Cell != engine.C(3, 1) {
		t.Fatalf("placed at %v, want (3,1)", res.Placed.Cell)
	}
	if len(res.Popped) != 3 {
		t.Errorf("popped %d, want 3", len(res.Popped))
	}
	if len(res.Dropped) != 3 {
		t.Errorf("dropped %d, want 3", len(res.Dropped))
	}
	if want := 3*10 + 3*5; s.Score != want {
		t.Errorf("score = %d, want %d", s.Score, want)
	}
	if s.Remaining != 2 || s.Board.Len() != 2 {
		t.Errorf("remaining = %d, board = %d, want 2", s.Remaining, s.Board.Len())
	}
	for _, c := range []engine.Cell{engine.C(3, 0), engine.C(4, 0)} {
		if !s.Board.Occupied(c) {
			t.Errorf("anchored bubble at %v was removed", c)
		}
	}

	drops := 0
	for _, ev := range res.Events {
		if ev.Kind == engine.EventDrop {
			drops++
			if ev.Points != 5 {
				t.Errorf("drop event points = %d, want 5", ev.Points)
			}
		}
	}
	if drops != 3 {
		t.Errorf("drop events = %d, want 3", drops)
	}
}

func TestNoSweepWithoutMatch(t *testing.T) {
	e := engineAt(t, 450)

	s := e.Blank(1, 1).WithQueue(engine.ColorRed, engine.ColorRed)
	// Unsupported from the start; it only falls once a match happens.
	s = place(t, e, s, engine.ColorBlue, engine.C(2, 6))
	s = fireUp(t, e, s)
	s, res := settle(t, e, s)

	if len(res.Dropped) != 0 || !s.Board.Occupied(engine.C(2, 6)) {
		t.Error("floating bubble removed without a match")
	}
}

func TestSingleFlight(t *testing.T) {
	e := engineAt(t, 450)
	s := e.Blank(1, 3)

	s = fireUp(t, e, s)
	before := s.Projectile

	s2, ok := e.Fire(s, engine.V(100, 100))
	if ok {
		t.Error("second Fire should be rejected while in flight")
	}
	if s2.Projectile != before {
		t.Error("rejected Fire changed the projectile")
	}

	s, res, err := e.Tick(s)
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if !res.Moved {
		t.Error("projectile should move on tick")
	}
	want := before.Pos.Add(before.Vel)
	if s.Projectile.Pos != want {
		t.Errorf("after one tick projectile at %v, want %v", s.Projectile.Pos, want)
	}
}

func TestFireRejectsBadAim(t *testing.T) {
	e := engineAt(t, 450)
	s := e.Blank(1, 3)
	l := e.Launcher()

	for _, aim := range []engine.Vec{l, l.Add(engine.V(50, 0)), l.Add(engine.V(-10, 40))} {
		if _, ok := e.Fire(s, aim); ok {
			t.Errorf("Fire(%v) should be rejected", aim)
		}
	}
}

func TestReflectionConservesSpeed(t *testing.T) {
	e := engineAt(t, 450)
	s := e.Blank(1, 5)

	s, ok := e.Fire(s, e.Launcher().Add(engine.V(-300, -60)))
	if !ok {
		t.Fatal("Fire rejected")
	}
	vy := s.Projectile.Vel.Y
	speed := s.Projectile.Vel.Len()
	g := e.Geometry()

	bounced := false
	for s.InFlight {
		var res engine.TickResult
		var err error
		s, res, err = e.Tick(s)
		if err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
		if !s.InFlight {
			break
		}
		p := s.Projectile
		if p.Pos.X < g.MinX || p.Pos.X > g.MaxX {
			t.Fatalf("projectile escaped walls at %v", p.Pos)
		}
		if math.Abs(p.Vel.Len()-speed) > 1e-9 || p.Vel.Y != vy {
			t.Fatalf("velocity changed to %v (speed %v, want %v)", p.Vel, p.Vel.Len(), speed)
		}
		if res.Bounced {
			bounced = true
			if p.Pos.X == g.MinX && p.Vel.X <= 0 {
				t.Errorf("after left-wall bounce vx = %v, want positive", p.Vel.X)
			}
			if p.Pos.X == g.MaxX && p.Vel.X >= 0 {
				t.Errorf("after right-wall bounce vx = %v, want negative", p.Vel.X)
			}
		}
	}
	if !bounced {
		t.Error("expected at least one wall bounce")
	}
}

func TestOverflowAndRestart(t *testing.T) {
	e := engineAt(t, 450)
	s := e.Blank(2, 4)
	s.Score = 120
	s = place(t, e, s, engine.ColorRed, engine.C(5, 11))

	s, res, err := e.Tick(s)
	if err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if !s.Overflowed || !res.Overflowed {
		t.Fatal("expected overflow")
	}
	if s.Cleared {
		t.Error("cleared and overflowed at once")
	}

	if _, ok := e.Fire(s, e.Launcher().Add(engine.V(0, -50))); ok {
		t.Error("Fire should be rejected after game over")
	}
	tick := s.Tick
	s, _, _ = e.Tick(s)
	if s.Tick != tick {
		t.Error("terminal state should not advance")
	}

	s = e.Acknowledge(s)
	if s.Terminal() || s.Level != 1 || s.Score != 0 {
		t.Errorf("after restart: terminal=%v level=%d score=%d", s.Terminal(), s.Level, s.Score)
	}
	if s.Remaining != s.Board.Len() || s.LevelTotal != s.Remaining {
		t.Errorf("remaining %d, total %d, board %d", s.Remaining, s.LevelTotal, s.Board.Len())
	}
}

func TestClearAdvancesLevel(t *testing.T) {
	g := engine.DefaultConfig().Geometry()
	e := engineAt(t, g.ToPosition(engine.C(2, 0)).X)

	s := e.Blank(1, 1).WithQueue(engine.ColorRed, engine.ColorRed)
	s = place(t, e, s, engine.ColorRed, engine.C(0, 0), engine.C(1, 0))
	s = fireUp(t, e, s)
	s, res := settle(t, e, s)

	if !s.Cleared || !res.Cleared || s.Overflowed {
		t.Fatalf("cleared=%v overflowed=%v", s.Cleared, s.Overflowed)
	}
	if s.Progress() != 1 {
		t.Errorf("progress = %v, want 1", s.Progress())
	}

	s = e.Acknowledge(s)
	if s.Level != 2 || s.Score != 30 || s.Terminal() {
		t.Errorf("after clear: level=%d score=%d terminal=%v", s.Level, s.Score, s.Terminal())
	}
	if s.Board.Len() == 0 {
		t.Error("new level should have a filled board")
	}
}

func TestAcknowledgeIgnoresRunningGame(t *testing.T) {
	e := engineAt(t, 450)
	s := e.NewGame(11)
	if got := e.Acknowledge(s); !reflect.DeepEqual(got.Snapshot(), s.Snapshot()) {
		t.Error("Acknowledge changed a running game")
	}
}

func TestNewGameFill(t *testing.T) {
	cfg := engine.DefaultConfig()
	e := mustEngine(t, cfg)
	s := e.NewGame(2024)

	if s.Level != 1 || s.Score != 0 {
		t.Errorf("level=%d score=%d", s.Level, s.Score)
	}
	if s.Board.Len() == 0 || s.Board.Len() > cfg.FillRows*cfg.FillCols {
		t.Errorf("board has %d bubbles", s.Board.Len())
	}
	if s.Remaining != s.Board.Len() || s.LevelTotal != s.Remaining {
		t.Errorf("remaining=%d total=%d board=%d", s.Remaining, s.LevelTotal, s.Board.Len())
	}

	palette := cfg.ColorsForLevel(1)
	g := e.Geometry()
	for _, b := range s.Board.Bubbles() {
		if int(b.Color) >= palette {
			t.Errorf("bubble %d color %v outside level palette of %d", b.ID, b.Color, palette)
		}
		if b.Cell.Row >= cfg.FillRows {
			t.Errorf("bubble %d in row %d", b.ID, b.Cell.Row)
		}
		if g.ToGrid(b.Pos) != b.Cell {
			t.Errorf("bubble %d at %v does not match cell %v", b.ID, b.Pos, b.Cell)
		}
	}
}

func TestPlaceErrors(t *testing.T) {
	e := engineAt(t, 450)
	s := e.Blank(1, 1)
	s = place(t, e, s, engine.ColorRed, engine.C(0, 0))

	if _, err := e.Place(s, engine.C(0, 0), engine.ColorBlue); !errors.Is(err, engine.ErrCellOccupied) {
		t.Errorf("expected ErrCellOccupied, got %v", err)
	}
	if _, err := e.Place(s, engine.C(0, -1), engine.ColorBlue); !errors.Is(err, engine.ErrCellOutOfBounds) {
		t.Errorf("expected ErrCellOutOfBounds, got %v", err)
	}
}

func TestSnapshotIdempotent(t *testing.T) {
	e := engineAt(t, 450)
	s := e.NewGame(77)

	a := s.Snapshot()
	b := s.Snapshot()
	if !reflect.DeepEqual(a, b) {
		t.Fatal("consecutive snapshots differ")
	}

	a.Bubbles[0].Color = engine.ColorPurple
	a.Bubbles = a.Bubbles[:0]
	if c := s.Snapshot(); !reflect.DeepEqual(b, c) {
		t.Error("mutating a snapshot changed the state")
	}
}

func TestTickLeavesPreviousStateIntact(t *testing.T) {
	g := engine.DefaultConfig().Geometry()
	e := engineAt(t, g.ToPosition(engine.C(2, 0)).X)

	s := e.Blank(1, 1).WithQueue(engine.ColorRed, engine.ColorRed)
	s = place(t, e, s, engine.ColorRed, engine.C(0, 0), engine.C(1, 0))
	s = fireUp(t, e, s)
	before := s.Snapshot()

	after, _ := settle(t, e, s)
	if after.Board.Len() != 0 {
		t.Fatalf("expected cleared board, got %d", after.Board.Len())
	}
	if !reflect.DeepEqual(before, s.Snapshot()) {
		t.Error("ticking mutated the earlier state")
	}
}

func TestDeterminism(t *testing.T) {
	e := mustEngine(t, engine.DefaultConfig())
	aims := []engine.Vec{
		engine.V(300, 100), engine.V(600, 50), engine.V(100, 400), engine.V(820, 300), engine.V(450, 0),
	}

	run := func() engine.Snapshot {
		s := e.NewGame(99)
		for i := 0; i < 3000; i++ {
			if s.Terminal() {
				s = e.Acknowledge(s)
			}
			if !s.InFlight {
				s, _ = e.Fire(s, aims[i%len(aims)])
			}
			var err error
			s, _, err = e.Tick(s)
			if err != nil {
				t.Fatalf("Tick failed: %v", err)
			}
			if s.Cleared && s.Overflowed {
				t.Fatal("cleared and overflowed at once")
			}
		}
		return s.Snapshot()
	}

	if a, b := run(), run(); !reflect.DeepEqual(a, b) {
		t.Errorf("runs diverged: score %d vs %d, tick %d vs %d", a.Score, b.Score, a.Tick, b.Tick)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*engine.Config)
	}{
		{"zero diameter", func(c *engine.Config) { c.Diameter = 0 }},
		{"negative pitch", func(c *engine.Config) { c.RowPitch = -1 }},
		{"slack too large", func(c *engine.Config) { c.CollisionSlack = c.Diameter }},
		{"zero speed", func(c *engine.Config) { c.ShotSpeed = 0 }},
		{"no colors", func(c *engine.Config) { c.BaseColors = 0 }},
		{"tiny cluster", func(c *engine.Config) { c.MinCluster = 1 }},
		{"bad probability", func(c *engine.Config) { c.FillProbability = 1.5 }},
		{"no anchor rows", func(c *engine.Config) { c.AnchorRows = 0 }},
		{"launcher above ceiling", func(c *engine.Config) { c.Launcher.Y = 10 }},
	}

	if err := engine.DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := engine.DefaultConfig()
			tt.mutate(&cfg)
			if _, err := engine.NewEngine(cfg); !errors.Is(err, engine.ErrInvalidConfig) {
				t.Errorf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLevelCurve(t *testing.T) {
	cfg := engine.DefaultConfig()
	tests := []struct {
		level int
		want  int
	}{
		{1, 5}, {2, 6}, {4, 8}, {9, 8},
	}
	for _, tt := range tests {
		if got := cfg.ColorsForLevel(tt.level); got != tt.want {
			t.Errorf("ColorsForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}

	cfg.FillStep = 0.1
	cfg.FillMax = 0.9
	if got := cfg.FillForLevel(1); got != cfg.FillProbability {
		t.Errorf("FillForLevel(1) = %v", got)
	}
	if got := cfg.FillForLevel(10); got != 0.9 {
		t.Errorf("FillForLevel(10) = %v, want 0.9", got)
	}
}
