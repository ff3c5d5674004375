package engine

import (
	"fmt"
	"math"
)

// Engine applies the game rules to State values.
// An Engine is immutable after construction and safe for concurrent use.
type Engine struct {
	cfg Config
	geo Geometry
}

// NewEngine validates cfg and returns an engine for it.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, geo: cfg.Geometry()}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Geometry returns the grid geometry.
func (e *Engine) Geometry() Geometry {
	return e.geo
}

// Launcher returns the projectile spawn point.
func (e *Engine) Launcher() Vec {
	return e.cfg.Launcher
}

// Preview returns where the "next" bubble is shown.
func (e *Engine) Preview() Vec {
	return e.cfg.Launcher.Add(e.cfg.PreviewOff)
}

// NewGame starts level 1 with score 0.
func (e *Engine) NewGame(seed uint64) State {
	s := State{
		Level:  1,
		nextID: 1,
		rng:    newRNG(seed),
	}
	return e.Reset(s, 1)
}

// Reset fills a fresh board for level and reloads the queue.
// Score, tick counter and random stream carry over from s.
func (e *Engine) Reset(s State, level int) State {
	if level < 1 {
		level = 1
	}
	if s.nextID == 0 {
		s.nextID = 1
	}
	s.Level = level
	s.Board = e.fill(&s)
	s.Remaining = s.Board.Len()
	s.LevelTotal = s.Remaining
	s.Projectile = Bubble{}
	s.InFlight = false
	s.Cleared = false
	s.Overflowed = false
	s.Current = QueueBubble{Color: e.nextColor(&s)}
	s.Next = QueueBubble{Color: e.nextColor(&s)}
	return s
}

// Blank returns a state with an empty board, for hand-built layouts.
func (e *Engine) Blank(level int, seed uint64) State {
	if level < 1 {
		level = 1
	}
	s := State{
		Board:  NewBoard(),
		Level:  level,
		nextID: 1,
		rng:    newRNG(seed),
	}
	s.Current = QueueBubble{Color: e.nextColor(&s)}
	s.Next = QueueBubble{Color: e.nextColor(&s)}
	return s
}

// Place puts a static bubble on a cell without running the match rules.
func (e *Engine) Place(s State, c Cell, color Color) (State, error) {
	if !e.geo.Valid(c) {
		return s, fmt.Errorf("%w: %v", ErrCellOutOfBounds, c)
	}
	if s.Board.Occupied(c) {
		return s, fmt.Errorf("%w: %v", ErrCellOccupied, c)
	}
	board := s.Board.Clone()
	if err := board.insert(e.newStatic(&s, c, color)); err != nil {
		return s, err
	}
	s.Board = board
	s.Remaining++
	s.LevelTotal++
	return s, nil
}

// Fire launches the loaded bubble toward aim.
// It reports false and leaves s unchanged if a projectile is already in
// flight, the round is over, or aim does not point upward from the launcher.
func (e *Engine) Fire(s State, aim Vec) (State, bool) {
	if s.InFlight || s.Terminal() {
		return s, false
	}
	dir, ok := e.direction(aim)
	if !ok {
		return s, false
	}
	s.Projectile = Bubble{
		ID:    s.nextID,
		Pos:   e.cfg.Launcher,
		Vel:   dir.Scale(e.cfg.ShotSpeed),
		Color: s.Current.Color,
	}
	s.nextID++
	s.InFlight = true
	return s, true
}

// Acknowledge finishes a terminal round: a cleared board advances the level,
// an overflow restarts from level 1 with score 0. Non-terminal states are
// returned unchanged.
func (e *Engine) Acknowledge(s State) State {
	switch {
	case s.Cleared:
		return e.Reset(s, s.Level+1)
	case s.Overflowed:
		s.Score = 0
		return e.Reset(s, 1)
	}
	return s
}

// Tick advances the game by one step.
// A non-nil error reports an internal-consistency failure; the returned state
// keeps the attachment and match but skips the unsupported-bubble sweep.
func (e *Engine) Tick(s State) (State, TickResult, error) {
	var res TickResult
	if s.Terminal() {
		res.Tick = s.Tick
		res.Cleared, res.Overflowed = s.Cleared, s.Overflowed
		return s, res, nil
	}
	s.Tick++
	res.Tick = s.Tick

	var err error
	if s.InFlight {
		err = e.step(&s, &res)
	}

	// The round is judged once the shot has resolved.
	if !s.InFlight {
		e.evaluate(&s)
	}
	res.Cleared, res.Overflowed = s.Cleared, s.Overflowed
	return s, res, err
}

// evaluate sets the terminal flags. A cleared board cannot overflow.
func (e *Engine) evaluate(s *State) {
	if s.Board.IsEmpty() {
		s.Cleared = true
		return
	}
	s.Board.each(func(b Bubble) bool {
		if b.Pos.Y > e.cfg.OverflowY {
			s.Overflowed = true
			return false
		}
		return true
	})
}

// direction returns the unit vector from the launcher toward aim.
func (e *Engine) direction(aim Vec) (Vec, bool) {
	d := aim.Sub(e.cfg.Launcher)
	n := d.Len()
	if n == 0 || d.Y >= 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return Vec{}, false
	}
	return d.Scale(1 / n), true
}

// fill generates the opening board for s.Level.
func (e *Engine) fill(s *State) *Board {
	board := NewBoard()
	p := e.cfg.FillForLevel(s.Level)
	for row := 0; row < e.cfg.FillRows; row++ {
		lo, hi := e.geo.ColRange(row)
		for col := 0; col < e.cfg.FillCols; col++ {
			c := Cell{Col: lo + col, Row: row}
			if c.Col > hi {
				break
			}
			if s.rng.float() >= p {
				continue
			}
			// Fresh board, cells visited once.
			_ = board.insert(e.newStatic(s, c, e.nextColor(s)))
		}
	}
	return board
}

func (e *Engine) newStatic(s *State, c Cell, color Color) Bubble {
	b := Bubble{ID: s.nextID, Pos: e.geo.ToPosition(c), Cell: c, Color: color}
	s.nextID++
	return b
}

func (e *Engine) nextColor(s *State) Color {
	return s.rng.color(e.cfg.ColorsForLevel(s.Level))
}
