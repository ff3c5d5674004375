package engine

import (
	"fmt"
	"math"
)

// Config holds every tunable of the engine.
// All distances are in field pixels and refer to bubble centers.
type Config struct {
	// Field
	Width      float64 // Field width
	Height     float64 // Field height; projectiles below it are discarded
	WallMargin float64 // Distance from each side edge to the wall surface
	Ceiling    float64 // Y of the ceiling surface
	Launcher   Vec     // Launcher bubble center
	PreviewOff Vec     // Offset of the "next" bubble from the launcher
	OverflowY  float64 // A static bubble center below this line ends the game

	// Grid
	Origin         Vec // Center of cell (0,0)
	Diameter       float64
	RowPitch       float64
	AdjacencySlack float64
	CollisionSlack float64
	AnchorRows     int // Rows counted as attached to the ceiling

	// Physics
	ShotSpeed       float64 // Pixels per tick
	TrajectoryStep  float64 // Predictor sample spacing
	TrajectoryLimit int     // Maximum predictor samples

	// Scoring
	MinCluster      int
	PointsPerBubble int
	FloatingBonus   int

	// Board generation
	FillRows        int
	FillCols        int
	FillProbability float64
	FillStep        float64 // Added per level above 1
	FillMax         float64
	BaseColors      int
	ColorsPerLevel  int
}

// DefaultConfig returns the classic layout: a 900x700 field with 35px bubbles.
func DefaultConfig() Config {
	const d = 35.0
	return Config{
		Width:      900,
		Height:     700,
		WallMargin: 20,
		Ceiling:    100,
		Launcher:   Vec{X: 450, Y: 580 + d/2},
		PreviewOff: Vec{X: 97.5, Y: 10},
		OverflowY:  580 + d/2 - 85,

		Origin:         Vec{X: d + d/2, Y: 80 + d + d/2},
		Diameter:       d,
		RowPitch:       d,
		AdjacencySlack: 8,
		CollisionSlack: 3,
		AnchorRows:     2,

		ShotSpeed:       10,
		TrajectoryStep:  5,
		TrajectoryLimit: 400,

		MinCluster:      3,
		PointsPerBubble: 10,
		FloatingBonus:   5,

		FillRows:        4,
		FillCols:        15,
		FillProbability: 0.75,
		FillStep:        0,
		FillMax:         0.75,
		BaseColors:      4,
		ColorsPerLevel:  1,
	}
}

// Validate checks the configuration for values the engine cannot work with.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: field size must be positive, got %.0fx%.0f", ErrInvalidConfig, c.Width, c.Height)
	case c.Diameter <= 0:
		return fmt.Errorf("%w: diameter must be positive, got %g", ErrInvalidConfig, c.Diameter)
	case c.RowPitch <= 0:
		return fmt.Errorf("%w: row pitch must be positive, got %g", ErrInvalidConfig, c.RowPitch)
	case c.CollisionSlack < 0 || c.CollisionSlack >= c.Diameter:
		return fmt.Errorf("%w: collision slack must be in [0, diameter), got %g", ErrInvalidConfig, c.CollisionSlack)
	case c.AdjacencySlack < 0:
		return fmt.Errorf("%w: adjacency slack must not be negative, got %g", ErrInvalidConfig, c.AdjacencySlack)
	case c.Width-2*c.WallMargin < c.Diameter:
		return fmt.Errorf("%w: field too narrow for a single bubble", ErrInvalidConfig)
	case c.ShotSpeed <= 0:
		return fmt.Errorf("%w: shot speed must be positive, got %g", ErrInvalidConfig, c.ShotSpeed)
	case c.TrajectoryStep <= 0:
		return fmt.Errorf("%w: trajectory step must be positive, got %g", ErrInvalidConfig, c.TrajectoryStep)
	case c.TrajectoryLimit < 1:
		return fmt.Errorf("%w: trajectory limit must be at least 1, got %d", ErrInvalidConfig, c.TrajectoryLimit)
	case c.AnchorRows < 1:
		return fmt.Errorf("%w: anchor rows must be at least 1, got %d", ErrInvalidConfig, c.AnchorRows)
	case c.MinCluster < 2:
		return fmt.Errorf("%w: min cluster must be at least 2, got %d", ErrInvalidConfig, c.MinCluster)
	case c.BaseColors < 1:
		return fmt.Errorf("%w: base colors must be at least 1, got %d", ErrInvalidConfig, c.BaseColors)
	case c.ColorsPerLevel < 0:
		return fmt.Errorf("%w: colors per level must not be negative, got %d", ErrInvalidConfig, c.ColorsPerLevel)
	case c.FillProbability < 0 || c.FillProbability > 1 || c.FillMax < 0 || c.FillMax > 1:
		return fmt.Errorf("%w: fill probabilities must be in [0, 1]", ErrInvalidConfig)
	case c.FillRows < 0 || c.FillCols < 0:
		return fmt.Errorf("%w: fill dimensions must not be negative", ErrInvalidConfig)
	case c.Origin.Y < c.Ceiling:
		return fmt.Errorf("%w: grid origin must not sit above the ceiling", ErrInvalidConfig)
	case c.Launcher.Y <= c.Ceiling:
		return fmt.Errorf("%w: launcher must sit below the ceiling", ErrInvalidConfig)
	}
	return nil
}

// Geometry derives the grid geometry from the field layout.
func (c Config) Geometry() Geometry {
	r := c.Diameter / 2
	return Geometry{
		Origin:         c.Origin,
		Diameter:       c.Diameter,
		RowPitch:       c.RowPitch,
		AdjacencySlack: c.AdjacencySlack,
		CollisionSlack: c.CollisionSlack,
		MinX:           c.WallMargin + r,
		MaxX:           c.Width - c.WallMargin - r,
	}
}

// ColorsForLevel returns the palette size in play on a level.
func (c Config) ColorsForLevel(level int) int {
	n := c.BaseColors + c.ColorsPerLevel*level
	if n > PaletteSize {
		n = PaletteSize
	}
	if n < 1 {
		n = 1
	}
	return n
}

// FillForLevel returns the probability that a generated cell holds a bubble.
func (c Config) FillForLevel(level int) float64 {
	if level < 1 {
		level = 1
	}
	p := c.FillProbability + c.FillStep*float64(level-1)
	return math.Min(p, math.Max(c.FillMax, c.FillProbability))
}

// ceilingY is the smallest center Y a bubble can have.
func (c Config) ceilingY() float64 {
	return c.Ceiling + c.Diameter/2
}
