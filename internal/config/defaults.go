package config

import (
	_ "embed"
)

//go:embed defaults/bubbles.yaml
var defaultBubblesYAML []byte

// DefaultBubblesConfig returns the default bubble shooter configuration.
func DefaultBubblesConfig() BubblesConfig {
	return BubblesConfig{
		Field: FieldConfig{
			Width:      900,
			Height:     700,
			WallMargin: 20,
			Ceiling:    100,
			LauncherX:  450,
			LauncherY:  597.5,
			PreviewDX:  97.5,
			PreviewDY:  10,
			OverflowY:  512.5,
		},
		Grid: GridConfig{
			Diameter:       35,
			RowPitch:       35,
			OriginX:        52.5,
			OriginY:        132.5,
			AdjacencySlack: 8,
			CollisionSlack: 3,
			AnchorRows:     2,
		},
		Physics: PhysicsConfig{
			ShotSpeed:       10,
			TrajectoryStep:  5,
			TrajectoryLimit: 400,
		},
		Scoring: ScoringConfig{
			MinCluster:      3,
			PointsPerBubble: 10,
			FloatingBonus:   5,
		},
		Board: BoardConfig{
			FillRows:        4,
			FillCols:        15,
			FillProbability: 0.75,
			BaseColors:      4,
			ColorsPerLevel:  1,
		},
		Display: DisplayConfig{
			PopupTicks:     60,
			PopupRise:      1,
			AimStep:        2,
			ShowTrajectory: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 10,
			},
			Scaling: ScalingConfig{
				FillIncrease: 0.2,
				ExtraColors:  1,
			},
		},
	}
}
