package engine

// EventKind tells what produced a score event.
type EventKind uint8

const (
	EventMatch EventKind = iota // A same-color cluster popped
	EventDrop                   // A bubble fell after losing support
)

// String returns the event kind name.
func (k EventKind) String() string {
	switch k {
	case EventMatch:
		return "match"
	case EventDrop:
		return "drop"
	default:
		return "unknown"
	}
}

// ScoreEvent is a point award anchored at a field position.
// Hosts use it to draw floating score labels.
type ScoreEvent struct {
	At     Vec
	Points int
	Kind   EventKind
}

// TickResult describes what happened during one tick.
type TickResult struct {
	Tick       uint64
	Moved      bool // The projectile advanced this tick
	Bounced    bool // The projectile reflected off a side wall
	Attached   bool // The projectile became a static bubble
	Placed     Bubble
	Discarded  bool     // The projectile left the field
	Popped     []Bubble // Cluster removed by the match, in traversal order
	Dropped    []Bubble // Unsupported bubbles removed after the match
	ScoreDelta int
	Events     []ScoreEvent
	Cleared    bool
	Overflowed bool
}
