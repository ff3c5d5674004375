package bubbles

import (
	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/config"
	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/games/bubbles/engine"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadSettings loads the YAML configuration and applies the active preset.
// A broken custom file falls back to the defaults and returns the error
// so the caller can report it.
func LoadSettings() (config.BubblesConfig, error) {
	cfg, err := config.LoadBubbles(configPath)
	if err != nil {
		cfg = config.DefaultBubblesConfig()
	}
	config.ApplyBubblesPreset(&cfg, difficultyPreset)
	return cfg, err
}

// EngineConfig converts file configuration to engine parameters.
// The difficulty curve interpolates linearly over the levels, which maps
// onto the engine's per-level fill step and cap.
func EngineConfig(cfg config.BubblesConfig) engine.Config {
	dm := config.NewDifficultyManager(cfg.Difficulty)

	fill := dm.FillProbability(cfg.Board.FillProbability, 1)
	fillMax := dm.FillProbability(cfg.Board.FillProbability, 1+dm.MaxAt())
	fillStep := 0.0
	if dm.IsEnabled() {
		fillStep = (fillMax - fill) / float64(dm.MaxAt())
	}

	return engine.Config{
		Width:      cfg.Field.Width,
		Height:     cfg.Field.Height,
		WallMargin: cfg.Field.WallMargin,
		Ceiling:    cfg.Field.Ceiling,
		Launcher:   engine.V(cfg.Field.LauncherX, cfg.Field.LauncherY),
		PreviewOff: engine.V(cfg.Field.PreviewDX, cfg.Field.PreviewDY),
		OverflowY:  cfg.Field.OverflowY,

		Origin:         engine.V(cfg.Grid.OriginX, cfg.Grid.OriginY),
		Diameter:       cfg.Grid.Diameter,
		RowPitch:       cfg.Grid.RowPitch,
		AdjacencySlack: cfg.Grid.AdjacencySlack,
		CollisionSlack: cfg.Grid.CollisionSlack,
		AnchorRows:     cfg.Grid.AnchorRows,

		ShotSpeed:       cfg.Physics.ShotSpeed,
		TrajectoryStep:  cfg.Physics.TrajectoryStep,
		TrajectoryLimit: cfg.Physics.TrajectoryLimit,

		MinCluster:      cfg.Scoring.MinCluster,
		PointsPerBubble: cfg.Scoring.PointsPerBubble,
		FloatingBonus:   cfg.Scoring.FloatingBonus,

		FillRows:        cfg.Board.FillRows,
		FillCols:        cfg.Board.FillCols,
		FillProbability: fill,
		FillStep:        fillStep,
		FillMax:         fillMax,
		BaseColors:      dm.BaseColors(cfg.Board.BaseColors),
		ColorsPerLevel:  cfg.Board.ColorsPerLevel,
	}
}
