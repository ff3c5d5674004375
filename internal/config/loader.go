package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure reported by Validate.
var ErrInvalid = errors.New("invalid config")

// LoadBubbles loads bubble shooter configuration.
// Search order: customPath -> ~/.arcade/configs/bubbles.yaml -> ./configs/bubbles.yaml -> embedded default.
// Files are applied on top of the defaults, so they only need the keys they change.
func LoadBubbles(customPath string) (BubblesConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBubblesConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseBubbles(data)
		if err != nil {
			return DefaultBubblesConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bubbles.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseBubbles(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "bubbles.yaml")); err == nil {
		if cfg, err := ParseBubbles(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseBubbles(defaultBubblesYAML)
	if err != nil {
		return DefaultBubblesConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseBubbles decodes YAML over the defaults and validates the result.
func ParseBubbles(data []byte) (BubblesConfig, error) {
	cfg := DefaultBubblesConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c BubblesConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBubblesPreset modifies the config based on a difficulty preset.
func ApplyBubblesPreset(cfg *BubblesConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust board generation based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Board.BaseColors = 3
		cfg.Board.FillRows = 3
	case DifficultyHard:
		cfg.Board.BaseColors = 5
		cfg.Board.FillRows = 5
	}
}

// Validate checks the configuration for values the game cannot run with.
func (c BubblesConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field size must be positive", ErrInvalid)
	case c.Grid.Diameter <= 0 || c.Grid.RowPitch <= 0:
		return fmt.Errorf("%w: grid diameter and row pitch must be positive", ErrInvalid)
	case c.Grid.CollisionSlack < 0 || c.Grid.CollisionSlack >= c.Grid.Diameter:
		return fmt.Errorf("%w: collision slack must be in [0, diameter)", ErrInvalid)
	case c.Grid.AdjacencySlack < 0:
		return fmt.Errorf("%w: adjacency slack must not be negative", ErrInvalid)
	case c.Grid.AnchorRows < 1:
		return fmt.Errorf("%w: anchor_rows must be at least 1", ErrInvalid)
	case c.Physics.ShotSpeed <= 0 || c.Physics.TrajectoryStep <= 0:
		return fmt.Errorf("%w: shot speed and trajectory step must be positive", ErrInvalid)
	case c.Physics.TrajectoryLimit < 1:
		return fmt.Errorf("%w: trajectory_limit must be at least 1", ErrInvalid)
	case c.Scoring.MinCluster < 2:
		return fmt.Errorf("%w: min_cluster must be at least 2", ErrInvalid)
	case c.Board.BaseColors < 1 || c.Board.BaseColors > 8:
		return fmt.Errorf("%w: base_colors must be in [1, 8]", ErrInvalid)
	case c.Board.FillProbability < 0 || c.Board.FillProbability > 1:
		return fmt.Errorf("%w: fill_probability must be in [0, 1]", ErrInvalid)
	case c.Display.PopupTicks < 0:
		return fmt.Errorf("%w: popup_ticks must not be negative", ErrInvalid)
	}
	switch c.Difficulty.Progression.Type {
	case "level", "none", "":
	default:
		return fmt.Errorf("%w: unknown progression type %q", ErrInvalid, c.Difficulty.Progression.Type)
	}
	return nil
}
