package engine

// State is the complete game state. It is a plain value: Tick, Fire, Reset and
// friends take a State and return the next one. The Board inside is shared
// between successive States until a tick changes it, at which point the
// engine works on a clone.
type State struct {
	Board      *Board
	Projectile Bubble
	InFlight   bool

	Current QueueBubble // Loaded in the launcher
	Next    QueueBubble // Preview

	Score      int
	Level      int
	Remaining  int // Static bubbles on the board
	LevelTotal int // Static bubbles when the level started

	Cleared    bool
	Overflowed bool

	Tick uint64

	nextID BubbleID
	rng    rng
}

// Terminal reports whether the round is over and waiting for acknowledgement.
func (s State) Terminal() bool {
	return s.Cleared || s.Overflowed
}

// Progress returns the cleared fraction of the level in [0, 1].
func (s State) Progress() float64 {
	if s.LevelTotal <= 0 {
		return 0
	}
	p := 1 - float64(s.Remaining)/float64(s.LevelTotal)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

// WithQueue returns a copy of the state with both queue slots replaced.
func (s State) WithQueue(current, next Color) State {
	s.Current = QueueBubble{Color: current}
	s.Next = QueueBubble{Color: next}
	return s
}

// Snapshot is a read-only view of a State for presentation.
type Snapshot struct {
	Bubbles    []Bubble
	Projectile Bubble
	InFlight   bool
	Current    Color
	Next       Color
	Score      int
	Level      int
	Remaining  int
	Progress   float64
	Cleared    bool
	Overflowed bool
	Tick       uint64
}

// Snapshot copies out everything a renderer needs.
// The returned slices are owned by the caller.
func (s State) Snapshot() Snapshot {
	return Snapshot{
		Bubbles:    s.Board.Bubbles(),
		Projectile: s.Projectile,
		InFlight:   s.InFlight,
		Current:    s.Current.Color,
		Next:       s.Next.Color,
		Score:      s.Score,
		Level:      s.Level,
		Remaining:  s.Remaining,
		Progress:   s.Progress(),
		Cleared:    s.Cleared,
		Overflowed: s.Overflowed,
		Tick:       s.Tick,
	}
}
