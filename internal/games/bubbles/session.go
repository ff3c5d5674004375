package bubbles

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/games/bubbles/engine"
)

// Popup is a floating score label rising from where points were earned.
type Popup struct {
	At     engine.Vec
	Points int
	Kind   engine.EventKind
	Age    int // Ticks since creation
}

// Round summarizes one level played in a session.
type Round struct {
	Level   int
	Shots   int
	Popped  int
	Dropped int
	Points  int
	Result  string // "playing", "cleared" or "overflow"
}

// Session owns a running game: the engine state plus the presentation
// bookkeeping shared by every frontend.
type Session struct {
	eng   *engine.Engine
	state engine.State

	popups     []Popup
	popupTicks int

	round   Round
	history []Round

	log *log.Logger
}

// NewSession starts a new game at level 1.
func NewSession(eng *engine.Engine, seed uint64, popupTicks int) *Session {
	s := &Session{
		eng:        eng,
		popupTicks: popupTicks,
		log:        log.New(io.Discard),
	}
	s.state = eng.NewGame(seed)
	s.startRound()
	return s
}

// SetLogger sets the logger for session events. nil disables logging.
func (s *Session) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	s.log = l
}

// Engine returns the rules engine.
func (s *Session) Engine() *engine.Engine {
	return s.eng
}

// State returns the current engine state.
func (s *Session) State() engine.State {
	return s.state
}

// Snapshot returns a read-only view of the current state.
func (s *Session) Snapshot() engine.Snapshot {
	return s.state.Snapshot()
}

// Fire launches the loaded bubble toward aim.
func (s *Session) Fire(aim engine.Vec) bool {
	next, ok := s.eng.Fire(s.state, aim)
	if !ok {
		return false
	}
	s.state = next
	s.round.Shots++
	s.log.Debug("shot fired", "aim", aim, "color", next.Projectile.Color)
	return true
}

// Tick advances the game by one step and ages the popups.
func (s *Session) Tick() (engine.TickResult, error) {
	s.agePopups()

	next, res, err := s.eng.Tick(s.state)
	s.state = next
	if err != nil {
		s.log.Error("board consistency check failed", "tick", res.Tick, "err", err)
	}

	for _, ev := range res.Events {
		s.popups = append(s.popups, Popup{At: ev.At, Points: ev.Points, Kind: ev.Kind})
	}
	s.round.Popped += len(res.Popped)
	s.round.Dropped += len(res.Dropped)
	s.round.Points += res.ScoreDelta

	if len(res.Popped) > 0 {
		s.log.Debug("cluster popped",
			"size", len(res.Popped), "dropped", len(res.Dropped), "points", res.ScoreDelta)
	}
	if s.round.Result == "playing" {
		switch {
		case res.Cleared:
			s.round.Result = "cleared"
			s.log.Info("level cleared", "level", s.state.Level, "score", s.state.Score, "shots", s.round.Shots)
		case res.Overflowed:
			s.round.Result = "overflow"
			s.log.Info("game over", "level", s.state.Level, "score", s.state.Score)
		}
	}
	return res, err
}

// Acknowledge moves past a finished round. It reports whether anything changed.
func (s *Session) Acknowledge() bool {
	if !s.state.Terminal() {
		return false
	}
	s.history = append(s.history, s.round)
	s.state = s.eng.Acknowledge(s.state)
	s.popups = s.popups[:0]
	s.startRound()
	return true
}

// Restart abandons the current game and starts over at level 1.
func (s *Session) Restart(seed uint64) {
	if s.round.Shots > 0 {
		if s.round.Result == "playing" {
			s.round.Result = "abandoned"
		}
		s.history = append(s.history, s.round)
	}
	s.state = s.eng.NewGame(seed)
	s.popups = s.popups[:0]
	s.startRound()
}

// Trajectory predicts the path of a shot at aim.
func (s *Session) Trajectory(aim engine.Vec) []engine.Vec {
	return s.eng.PredictTrajectory(s.state, aim)
}

// Landing predicts the cell a shot at aim would occupy.
func (s *Session) Landing(aim engine.Vec) (engine.Cell, bool) {
	return s.eng.PredictLanding(s.state, aim)
}

// Popups returns the live score labels, oldest first.
func (s *Session) Popups() []Popup {
	out := make([]Popup, len(s.popups))
	copy(out, s.popups)
	return out
}

// PopupTicks returns how long a popup stays visible.
func (s *Session) PopupTicks() int {
	return s.popupTicks
}

// Round returns the statistics of the level in progress.
func (s *Session) Round() Round {
	return s.round
}

// History returns the finished rounds, oldest first.
func (s *Session) History() []Round {
	out := make([]Round, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) startRound() {
	s.round = Round{Level: s.state.Level, Result: "playing"}
	s.log.Info("level started",
		"level", s.state.Level, "bubbles", s.state.Remaining, "score", s.state.Score)
}

func (s *Session) agePopups() {
	kept := s.popups[:0]
	for _, p := range s.popups {
		p.Age++
		if p.Age < s.popupTicks {
			kept = append(kept, p)
		}
	}
	s.popups = kept
}
