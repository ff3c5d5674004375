package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/config"
	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/games/bubbles"
	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/games/bubbles/engine"
)

var flagValidate bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Load the configuration the same way 'play' does and print it as YAML.
The output is a complete file that can be edited and passed back with --config.

Examples:
  bubbles config > ~/.arcade/configs/bubbles.yaml
  bubbles config --difficulty hard
  bubbles config --config ./my-bubbles.yaml --validate`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagValidate, "validate", false, "Only check the configuration")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fail("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}
	bubbles.SetConfigPath(flagConfig)
	bubbles.SetDifficultyPreset(flagDifficulty)

	cfg, err := bubbles.LoadSettings()
	if err != nil {
		fail("%v", err)
	}
	if _, err := engine.NewEngine(bubbles.EngineConfig(cfg)); err != nil {
		fail("%v", err)
	}

	if flagValidate {
		fmt.Println("config OK")
		return
	}

	out, err := cfg.Marshal()
	if err != nil {
		fail("%v", err)
	}
	fmt.Print(string(out))
}
