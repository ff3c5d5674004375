package engine

// resolveCell picks the cell a bubble centered at pos snaps to.
// The nearest cell is used when free; otherwise the search widens ring by
// ring through hex neighbors and takes the free cell closest to pos.
func (e *Engine) resolveCell(b *Board, pos Vec) (Cell, bool) {
	start := e.geo.Clamp(e.geo.ToGrid(pos))
	if !b.Occupied(start) {
		return start, true
	}

	seen := map[Cell]struct{}{start: {}}
	ring := []Cell{start}
	// An occupied region holds at most b.Len() cells, so a free one
	// turns up within that many rings.
	for depth := 0; depth <= b.Len() && len(ring) > 0; depth++ {
		var next []Cell
		for _, c := range ring {
			for _, n := range e.geo.Neighbors(c) {
				if _, ok := seen[n]; ok || !e.geo.Valid(n) {
					continue
				}
				seen[n] = struct{}{}
				next = append(next, n)
			}
		}

		var best Cell
		bestDist := 0.0
		found := false
		for _, c := range next {
			if b.Occupied(c) {
				continue
			}
			d := pos.Dist(e.geo.ToPosition(c))
			if !found || d < bestDist || (d == bestDist && cellLess(c, best)) {
				best, bestDist, found = c, d, true
			}
		}
		if found {
			return best, true
		}
		ring = next
	}
	return Cell{}, false
}

// cellLess orders cells top to bottom, then left to right.
func cellLess(a, b Cell) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// attach turns the projectile into a static bubble and runs the match rules.
func (e *Engine) attach(s *State, res *TickResult) error {
	proj := s.Projectile
	s.Projectile = Bubble{}
	s.InFlight = false
	e.advanceQueue(s)

	cell, ok := e.resolveCell(s.Board, proj.Pos)
	if !ok {
		res.Discarded = true
		return nil
	}
	placed := Bubble{
		ID:    proj.ID,
		Pos:   e.geo.ToPosition(cell),
		Cell:  cell,
		Color: proj.Color,
	}

	board := s.Board.Clone()
	if err := board.insert(placed); err != nil {
		return err
	}
	s.Board = board
	s.Remaining++
	res.Attached = true
	res.Placed = placed

	return e.match(s, placed, res)
}
