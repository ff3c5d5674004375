package config

import "math"

// DifficultyManager calculates board generation parameters based on the game level.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// MaxAt returns the number of levels after the first until max difficulty.
func (d *DifficultyManager) MaxAt() int {
	if d.cfg.Progression.MaxAt <= 0 {
		return 1 // Prevent division by zero
	}
	return d.cfg.Progression.MaxAt
}

// Level returns the difficulty level (0.0 to 1.0) for a game level starting at 1.
func (d *DifficultyManager) Level(gameLevel int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	progress := float64(gameLevel-1) / float64(d.MaxAt())

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// FillProbability returns the board fill probability for a game level.
func (d *DifficultyManager) FillProbability(base float64, gameLevel int) float64 {
	if !d.cfg.Enabled {
		return base
	}
	return clampF(base+d.Level(gameLevel)*d.cfg.Scaling.FillIncrease, 0.0, 1.0)
}

// BaseColors returns the starting palette size raised by the initial difficulty.
func (d *DifficultyManager) BaseColors(base int) int {
	if !d.cfg.Enabled {
		return base
	}
	n := base + int(math.Round(d.initialLevel*float64(d.cfg.Scaling.ExtraColors)))
	if n > 8 {
		n = 8
	}
	return n
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
