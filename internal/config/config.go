// Package config provides YAML-based game configuration loading and
// difficulty management for the bubble shooter.
package config

// BubblesConfig contains all configuration for the bubble shooter.
type BubblesConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Grid       GridConfig       `yaml:"grid"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Board      BoardConfig      `yaml:"board"`
	Display    DisplayConfig    `yaml:"display"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the playfield layout in field pixels.
type FieldConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	WallMargin float64 `yaml:"wall_margin"`
	Ceiling    float64 `yaml:"ceiling"`
	LauncherX  float64 `yaml:"launcher_x"`
	LauncherY  float64 `yaml:"launcher_y"`
	PreviewDX  float64 `yaml:"preview_dx"`
	PreviewDY  float64 `yaml:"preview_dy"`
	OverflowY  float64 `yaml:"overflow_y"`
}

// GridConfig defines the hex grid.
type GridConfig struct {
	Diameter       float64 `yaml:"diameter"`
	RowPitch       float64 `yaml:"row_pitch"`
	OriginX        float64 `yaml:"origin_x"`
	OriginY        float64 `yaml:"origin_y"`
	AdjacencySlack float64 `yaml:"adjacency_slack"`
	CollisionSlack float64 `yaml:"collision_slack"`
	AnchorRows     int     `yaml:"anchor_rows"`
}

// PhysicsConfig defines projectile motion and aim prediction.
type PhysicsConfig struct {
	ShotSpeed       float64 `yaml:"shot_speed"`
	TrajectoryStep  float64 `yaml:"trajectory_step"`
	TrajectoryLimit int     `yaml:"trajectory_limit"`
}

// ScoringConfig defines match rules and point values.
type ScoringConfig struct {
	MinCluster      int `yaml:"min_cluster"`
	PointsPerBubble int `yaml:"points_per_bubble"`
	FloatingBonus   int `yaml:"floating_bonus"`
}

// BoardConfig defines procedural board generation.
type BoardConfig struct {
	FillRows        int     `yaml:"fill_rows"`
	FillCols        int     `yaml:"fill_cols"`
	FillProbability float64 `yaml:"fill_probability"`
	BaseColors      int     `yaml:"base_colors"`
	ColorsPerLevel  int     `yaml:"colors_per_level"`
}

// DisplayConfig defines presentation settings shared by the frontends.
type DisplayConfig struct {
	PopupTicks     int     `yaml:"popup_ticks"` // Lifetime of a floating score label
	PopupRise      float64 `yaml:"popup_rise"`  // Pixels a label rises per tick
	AimStep        float64 `yaml:"aim_step"`    // Degrees per keyboard aim step
	ShowTrajectory bool    `yaml:"show_trajectory"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over the game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "level" or "none"
	MaxAt int    `yaml:"max_at"` // Levels after the first at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	FillIncrease float64 `yaml:"fill_increase"` // Fill probability added at max difficulty
	ExtraColors  int     `yaml:"extra_colors"`  // Base colors added at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
