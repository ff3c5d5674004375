package engine

import "fmt"

// Board is the static bubble set.
// Bubbles are kept in ascending ID order with a cell index for occupancy checks.
//
// A Board reachable from a published State is never mutated; the engine clones
// it before inserting or removing, so readers may hold any State concurrently
// with tick processing.
type Board struct {
	bubbles []Bubble
	index   map[Cell]int // cell -> position in bubbles
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{
		bubbles: make([]Bubble, 0, 64),
		index:   make(map[Cell]int),
	}
}

// Len returns the number of bubbles on the board.
func (b *Board) Len() int {
	if b == nil {
		return 0
	}
	return len(b.bubbles)
}

// IsEmpty returns true if no bubbles remain.
func (b *Board) IsEmpty() bool {
	return b.Len() == 0
}

// At returns the bubble occupying a cell.
func (b *Board) At(c Cell) (Bubble, bool) {
	if b == nil {
		return Bubble{}, false
	}
	i, ok := b.index[c]
	if !ok {
		return Bubble{}, false
	}
	return b.bubbles[i], true
}

// Occupied reports whether a cell holds a bubble.
func (b *Board) Occupied(c Cell) bool {
	_, ok := b.At(c)
	return ok
}

// Bubbles returns a copy of all bubbles in ascending ID order.
func (b *Board) Bubbles() []Bubble {
	if b == nil {
		return nil
	}
	out := make([]Bubble, len(b.bubbles))
	copy(out, b.bubbles)
	return out
}

// each calls fn for every bubble in ID order until fn returns false.
func (b *Board) each(fn func(Bubble) bool) {
	if b == nil {
		return
	}
	for _, x := range b.bubbles {
		if !fn(x) {
			return
		}
	}
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	if b == nil {
		return NewBoard()
	}
	bubbles := make([]Bubble, len(b.bubbles), len(b.bubbles)+1)
	copy(bubbles, b.bubbles)
	index := make(map[Cell]int, len(b.index)+1)
	for c, i := range b.index {
		index[c] = i
	}
	return &Board{bubbles: bubbles, index: index}
}

// insert adds a bubble at its recorded cell.
// IDs are handed out monotonically, so appending keeps ID order.
func (b *Board) insert(x Bubble) error {
	if _, taken := b.index[x.Cell]; taken {
		return fmt.Errorf("%w: %v", ErrCellOccupied, x.Cell)
	}
	x.Vel = Vec{}
	b.index[x.Cell] = len(b.bubbles)
	b.bubbles = append(b.bubbles, x)
	return nil
}

// remove deletes every bubble whose ID is in ids and returns how many were removed.
func (b *Board) remove(ids map[BubbleID]struct{}) int {
	if len(ids) == 0 {
		return 0
	}
	kept := b.bubbles[:0]
	removed := 0
	for _, x := range b.bubbles {
		if _, gone := ids[x.ID]; gone {
			removed++
			continue
		}
		kept = append(kept, x)
	}
	b.bubbles = kept
	b.reindex()
	return removed
}

// reindex rebuilds the cell index after bulk removal.
func (b *Board) reindex() {
	clear(b.index)
	for i, x := range b.bubbles {
		b.index[x.Cell] = i
	}
}
