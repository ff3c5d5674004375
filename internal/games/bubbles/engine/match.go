package engine

import "fmt"

// neighbors returns the static bubbles adjacent to x.
// Static bubbles sit on their cell centers, so only the cells within
// adjacency reach of x need to be looked at.
func (e *Engine) neighbors(b *Board, x Bubble) []Bubble {
	rows, cols := e.geo.reach(e.geo.AdjacentDist())
	center := e.geo.ToGrid(x.Pos)

	out := make([]Bubble, 0, 6)
	for dr := -rows; dr <= rows; dr++ {
		for dc := -cols; dc <= cols; dc++ {
			other, ok := b.At(Cell{Col: center.Col + dc, Row: center.Row + dr})
			if !ok || other.ID == x.ID {
				continue
			}
			if e.geo.Adjacent(x.Pos, other.Pos) {
				out = append(out, other)
			}
		}
	}
	return out
}

// cluster collects the same-color component containing seed, breadth first.
func (e *Engine) cluster(b *Board, seed Bubble) []Bubble {
	visited := map[BubbleID]struct{}{seed.ID: {}}
	queue := []Bubble{seed}
	var out []Bubble

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		out = append(out, cur)

		for _, n := range e.neighbors(b, cur) {
			if n.Color != seed.Color {
				continue
			}
			if _, ok := visited[n.ID]; ok {
				continue
			}
			visited[n.ID] = struct{}{}
			queue = append(queue, n)
		}
	}
	return out
}

// unsupported returns the bubbles that no longer connect to the anchor rows,
// in ID order. It fails if any bubble has drifted from its recorded cell.
func (e *Engine) unsupported(b *Board) ([]Bubble, error) {
	visited := make(map[BubbleID]struct{}, b.Len())
	var queue []Bubble

	for _, x := range b.bubbles {
		if got := e.geo.ToGrid(x.Pos); got != x.Cell {
			return nil, fmt.Errorf("%w: bubble %d at %v maps to %v, recorded %v",
				ErrGridMismatch, x.ID, x.Pos, got, x.Cell)
		}
		if x.Cell.Row < e.cfg.AnchorRows {
			visited[x.ID] = struct{}{}
			queue = append(queue, x)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range e.neighbors(b, cur) {
			if _, ok := visited[n.ID]; ok {
				continue
			}
			visited[n.ID] = struct{}{}
			queue = append(queue, n)
		}
	}

	var out []Bubble
	for _, x := range b.bubbles {
		if _, ok := visited[x.ID]; !ok {
			out = append(out, x)
		}
	}
	return out, nil
}

// match pops the cluster around seed if it is large enough, then drops
// whatever lost its support. s.Board must already be owned by this tick.
func (e *Engine) match(s *State, seed Bubble, res *TickResult) error {
	popped := e.cluster(s.Board, seed)
	if len(popped) < e.cfg.MinCluster {
		return nil
	}

	s.Board.remove(idSet(popped))
	s.Remaining -= len(popped)
	points := len(popped) * e.cfg.PointsPerBubble * s.Level
	s.Score += points
	res.ScoreDelta += points
	res.Popped = popped
	res.Events = append(res.Events, ScoreEvent{At: seed.Pos, Points: points, Kind: EventMatch})

	dropped, err := e.unsupported(s.Board)
	if err != nil {
		return err
	}
	if len(dropped) == 0 {
		return nil
	}

	s.Board.remove(idSet(dropped))
	s.Remaining -= len(dropped)
	bonus := e.cfg.FloatingBonus * s.Level
	for _, x := range dropped {
		s.Score += bonus
		res.ScoreDelta += bonus
		res.Events = append(res.Events, ScoreEvent{At: x.Pos, Points: bonus, Kind: EventDrop})
	}
	res.Dropped = dropped
	return nil
}

func idSet(bs []Bubble) map[BubbleID]struct{} {
	ids := make(map[BubbleID]struct{}, len(bs))
	for _, x := range bs {
		ids[x.ID] = struct{}{}
	}
	return ids
}
