package engine_test

import (
	"testing"

	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/games/bubbles/engine"
)

func defaultGeometry() engine.Geometry {
	return engine.DefaultConfig().Geometry()
}

func TestGridRoundTrip(t *testing.T) {
	g := defaultGeometry()

	for row := -4; row <= 12; row++ {
		for col := -3; col <= 25; col++ {
			c := engine.C(col, row)
			if got := g.ToGrid(g.ToPosition(c)); got != c {
				t.Errorf("ToGrid(ToPosition(%v)) = %v", c, got)
			}
		}
	}
}

func TestGridRoundTripWithJitter(t *testing.T) {
	g := defaultGeometry()
	jitter := []engine.Vec{
		engine.V(10, 10), engine.V(-10, -10), engine.V(-17, 0), engine.V(17, 0), engine.V(0, -17),
	}

	for row := -2; row <= 8; row++ {
		for col := 0; col <= 20; col++ {
			c := engine.C(col, row)
			for _, j := range jitter {
				if got := g.ToGrid(g.ToPosition(c).Add(j)); got != c {
					t.Errorf("ToGrid(ToPosition(%v)+%v) = %v", c, j, got)
				}
			}
		}
	}
}

func TestToGridRoundsToNearest(t *testing.T) {
	g := defaultGeometry()
	origin := g.ToPosition(engine.C(0, 0))

	tests := []struct {
		name string
		pos  engine.Vec
		want engine.Cell
	}{
		{"just left of half", origin.Add(engine.V(17, 0)), engine.C(0, 0)},
		{"just right of half", origin.Add(engine.V(18, 0)), engine.C(1, 0)},
		{"negative column", origin.Add(engine.V(-18, 0)), engine.C(-1, 0)},
		{"negative row", origin.Add(engine.V(0, -18)), engine.C(-1, -1)},
		{"row above half", origin.Add(engine.V(0, 17)), engine.C(0, 0)},
		{"row below half", origin.Add(engine.V(17.5, 18)), engine.C(0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.ToGrid(tt.pos); got != tt.want {
				t.Errorf("ToGrid(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestOddRowsShifted(t *testing.T) {
	g := defaultGeometry()
	even := g.ToPosition(engine.C(3, 2))
	odd := g.ToPosition(engine.C(3, 3))
	if d := odd.X - even.X; d != g.Diameter/2 {
		t.Errorf("odd row shift = %v, want %v", d, g.Diameter/2)
	}
	negOdd := g.ToPosition(engine.C(3, -1))
	if d := negOdd.X - even.X; d != g.Diameter/2 {
		t.Errorf("row -1 shift = %v, want %v", d, g.Diameter/2)
	}
}

func TestAdjacencySymmetric(t *testing.T) {
	g := defaultGeometry()

	var points []engine.Vec
	for row := 0; row < 5; row++ {
		for col := 0; col < 6; col++ {
			points = append(points, g.ToPosition(engine.C(col, row)))
		}
	}
	points = append(points, engine.V(100.3, 140.1), engine.V(61.7, 171.9))

	for _, a := range points {
		for _, b := range points {
			if g.Adjacent(a, b) != g.Adjacent(b, a) {
				t.Errorf("Adjacent(%v, %v) is not symmetric", a, b)
			}
			if g.Collide(a, b) != g.Collide(b, a) {
				t.Errorf("Collide(%v, %v) is not symmetric", a, b)
			}
		}
	}
}

func TestHexNeighborsAreAdjacent(t *testing.T) {
	g := defaultGeometry()

	for _, c := range []engine.Cell{engine.C(4, 2), engine.C(4, 3), engine.C(0, 1), engine.C(7, -1)} {
		ns := g.Neighbors(c)
		if len(ns) != 6 {
			t.Fatalf("Neighbors(%v) returned %d cells", c, len(ns))
		}
		p := g.ToPosition(c)
		for _, n := range ns {
			if !g.Adjacent(p, g.ToPosition(n)) {
				t.Errorf("neighbor %v of %v is not adjacent", n, c)
			}
		}
	}

	far := g.ToPosition(engine.C(2, 0))
	if g.Adjacent(g.ToPosition(engine.C(0, 0)), far) {
		t.Error("cells two columns apart should not be adjacent")
	}
}

func TestZeroDistance(t *testing.T) {
	g := defaultGeometry()
	p := engine.V(200, 200)
	if g.Adjacent(p, p) {
		t.Error("coincident centers should not be adjacent")
	}
	if g.Collide(p, p) {
		t.Error("coincident centers should not collide")
	}
}

func TestCollideThreshold(t *testing.T) {
	g := defaultGeometry()
	a := engine.V(100, 100)
	limit := g.CollideDist()

	if !g.Collide(a, a.Add(engine.V(limit-0.01, 0))) {
		t.Error("centers just inside the collision distance should collide")
	}
	if g.Collide(a, a.Add(engine.V(limit, 0))) {
		t.Error("centers exactly at the collision distance should not collide")
	}
	if !g.Adjacent(a, a.Add(engine.V(g.AdjacentDist(), 0))) {
		t.Error("centers exactly at the adjacency distance should be adjacent")
	}
}

func TestClampAndValid(t *testing.T) {
	g := defaultGeometry()
	lo, hi := g.ColRange(0)

	if !g.Valid(engine.C(lo, 0)) || !g.Valid(engine.C(hi, 0)) {
		t.Errorf("edge columns %d..%d should be valid", lo, hi)
	}
	if g.Valid(engine.C(hi+1, 0)) || g.Valid(engine.C(0, -1)) {
		t.Error("cells past the walls or above row 0 should be invalid")
	}
	if got := g.Clamp(engine.C(hi+5, -2)); got != engine.C(hi, 0) {
		t.Errorf("Clamp = %v, want %v", got, engine.C(hi, 0))
	}

	for row := 0; row < 4; row++ {
		lo, hi := g.ColRange(row)
		for _, col := range []int{lo, hi} {
			p := g.ToPosition(engine.C(col, row))
			if p.X < g.MinX || p.X > g.MaxX {
				t.Errorf("cell (%d,%d) center %v outside walls", col, row, p)
			}
		}
	}
}
