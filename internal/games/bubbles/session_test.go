package bubbles

import (
	"testing"

	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/games/bubbles/engine"
)

// matchSession returns a session on an empty board where a straight-up red
// shot completes a row of three red bubbles.
func matchSession(t *testing.T) *Session {
	t.Helper()
	cfg := engine.DefaultConfig()
	cfg.Launcher.X = cfg.Geometry().ToPosition(engine.C(2, 0)).X
	eng, err := engine.NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	s := NewSession(eng, 1, 60)
	st := eng.Blank(1, 1).WithQueue(engine.ColorRed, engine.ColorBlue)
	for _, c := range []engine.Cell{engine.C(0, 0), engine.C(1, 0)} {
		st, err = eng.Place(st, c, engine.ColorRed)
		if err != nil {
			t.Fatalf("Place(%v) failed: %v", c, err)
		}
	}
	s.state = st
	s.startRound()
	return s
}

func fireAndSettle(t *testing.T, s *Session) engine.TickResult {
	t.Helper()
	if !s.Fire(s.Engine().Launcher().Add(engine.V(0, -100))) {
		t.Fatal("Fire rejected a straight-up shot")
	}
	for i := 0; i < 1000; i++ {
		res, err := s.Tick()
		if err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
		if !s.State().InFlight {
			return res
		}
	}
	t.Fatal("projectile never settled")
	return engine.TickResult{}
}

func TestSessionMatchCreatesPopup(t *testing.T) {
	s := matchSession(t)
	fireAndSettle(t, s)

	popups := s.Popups()
	if len(popups) != 1 {
		t.Fatalf("expected 1 popup, got %d", len(popups))
	}
	if popups[0].Kind != engine.EventMatch || popups[0].Points != 30 || popups[0].Age != 0 {
		t.Errorf("unexpected popup %+v", popups[0])
	}

	r := s.Round()
	if r.Shots != 1 || r.Popped != 3 || r.Points != 30 {
		t.Errorf("round stats = %+v", r)
	}
	if r.Result != "cleared" {
		t.Errorf("round result = %q, expected cleared", r.Result)
	}
}

func TestSessionSingleFlight(t *testing.T) {
	s := matchSession(t)
	aim := s.Engine().Launcher().Add(engine.V(0, -100))

	if !s.Fire(aim) {
		t.Fatal("first shot rejected")
	}
	if s.Fire(aim) {
		t.Error("second shot accepted while the first is in flight")
	}
	if s.Round().Shots != 1 {
		t.Errorf("shots = %d, expected 1", s.Round().Shots)
	}
}

func TestSessionPopupsExpire(t *testing.T) {
	s := matchSession(t)
	s.popupTicks = 5
	fireAndSettle(t, s)

	for i := 0; i < 4; i++ {
		if _, err := s.Tick(); err != nil {
			t.Fatalf("Tick failed: %v", err)
		}
	}
	if p := s.Popups(); len(p) != 1 || p[0].Age != 4 {
		t.Fatalf("popup should still be visible at age 4, got %+v", p)
	}
	if _, err := s.Tick(); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if p := s.Popups(); len(p) != 0 {
		t.Errorf("popup should expire after 5 ticks, got %+v", p)
	}
}

func TestSessionAcknowledge(t *testing.T) {
	s := matchSession(t)

	if s.Acknowledge() {
		t.Error("Acknowledge should do nothing while the round runs")
	}

	fireAndSettle(t, s)
	if !s.State().Cleared {
		t.Fatal("board should be cleared")
	}
	if !s.Acknowledge() {
		t.Fatal("Acknowledge after a clear should advance")
	}

	if s.State().Level != 2 {
		t.Errorf("level = %d, expected 2", s.State().Level)
	}
	if s.State().Score != 30 {
		t.Errorf("score should carry over, got %d", s.State().Score)
	}
	if len(s.Popups()) != 0 {
		t.Error("popups should be dropped between rounds")
	}

	h := s.History()
	if len(h) != 1 || h[0].Level != 1 || h[0].Result != "cleared" {
		t.Errorf("history = %+v", h)
	}
	if r := s.Round(); r.Level != 2 || r.Result != "playing" || r.Shots != 0 {
		t.Errorf("new round = %+v", r)
	}
}

func TestSessionRestart(t *testing.T) {
	s := matchSession(t)
	if !s.Fire(s.Engine().Launcher().Add(engine.V(0, -100))) {
		t.Fatal("Fire rejected a straight-up shot")
	}

	s.Restart(7)
	if s.State().Level != 1 || s.State().Score != 0 {
		t.Errorf("restart should start over, got level %d score %d", s.State().Level, s.State().Score)
	}
	if s.State().Remaining == 0 {
		t.Error("restart should fill a fresh board")
	}
	h := s.History()
	if len(h) != 1 || h[0].Result != "abandoned" {
		t.Errorf("history = %+v", h)
	}

	// Restarting again without a shot records nothing
	s.Restart(8)
	if len(s.History()) != 1 {
		t.Errorf("history grew to %d on an untouched round", len(s.History()))
	}
}

func TestSessionHistoryIsCopy(t *testing.T) {
	s := matchSession(t)
	fireAndSettle(t, s)
	s.Acknowledge()

	h := s.History()
	h[0].Points = -1
	if s.History()[0].Points != 30 {
		t.Error("History should return a copy")
	}
}

func TestSessionLandingMatchesShot(t *testing.T) {
	s := matchSession(t)
	aim := s.Engine().Launcher().Add(engine.V(0, -100))

	cell, ok := s.Landing(aim)
	if !ok {
		t.Fatal("expected a landing cell")
	}
	if len(s.Trajectory(aim)) == 0 {
		t.Error("expected a trajectory")
	}

	res := fireAndSettle(t, s)
	if res.Placed.Cell != cell {
		t.Errorf("shot landed at %v, prediction said %v", res.Placed.Cell, cell)
	}
}

func TestSessionSetLoggerNil(t *testing.T) {
	s := matchSession(t)
	s.SetLogger(nil)
	fireAndSettle(t, s)
}
