package bubbles

import (
	"math"

	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/games/bubbles/engine"
)

// Snapshot contains the game state in primitive types for determinism checks.
type Snapshot struct {
	Tick       uint64
	Score      int
	Level      int
	Remaining  int
	InFlight   bool
	Cleared    bool
	Overflowed bool
	Current    int
	Next       int

	// Static bubbles, 4 ints each: ID, Col, Row, Color
	BubbleData []int

	// Projectile as float bits: X, Y, VX, VY
	Projectile [4]uint64

	Popups int
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.session.Snapshot()

	data := make([]int, 0, len(s.Bubbles)*4)
	for _, b := range s.Bubbles {
		data = append(data, int(b.ID), b.Cell.Col, b.Cell.Row, int(b.Color))
	}

	snap := Snapshot{
		Tick:       s.Tick,
		Score:      s.Score,
		Level:      s.Level,
		Remaining:  s.Remaining,
		InFlight:   s.InFlight,
		Cleared:    s.Cleared,
		Overflowed: s.Overflowed,
		Current:    int(s.Current),
		Next:       int(s.Next),
		BubbleData: data,
		Popups:     len(g.session.Popups()),
	}
	if s.InFlight {
		snap.Projectile = vecBits(s.Projectile.Pos, s.Projectile.Vel)
	}
	return snap
}

func vecBits(p, v engine.Vec) [4]uint64 {
	return [4]uint64{
		math.Float64bits(p.X), math.Float64bits(p.Y),
		math.Float64bits(v.X), math.Float64bits(v.Y),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Remaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Current)   //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Next)      //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Popups)    //#nosec G115 -- hash computation

	for _, flag := range []bool{snap.InFlight, snap.Cleared, snap.Overflowed} {
		h *= 31
		if flag {
			h++
		}
	}

	for _, v := range snap.BubbleData {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, v := range snap.Projectile {
		h = h*31 + v
	}

	return h
}
