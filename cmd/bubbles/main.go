// bubbles is a bubble shooter for the terminal and the desktop.
//
// Usage:
//
//	bubbles play             - Play in the terminal
//	bubbles gui              - Play in a desktop window
//	bubbles predict          - Print the predicted path of a shot
//	bubbles config           - Print the effective configuration
//	bubbles list             - List available games
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible boards
//	--config <path>         - Load a custom YAML config
//	--difficulty <preset>   - easy, normal, hard or fixed
//	--log-file <path>       - Write logs to a file
//	--log-level <level>     - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/Dwarkadhish2005/bubble-shooter-game/internal/games/bubbles"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bubbles",
	Short: "Bubble Shooter - pop colored bubbles in your terminal",
	Long: `Bubble Shooter launches colored bubbles into a hexagonal grid.
Three or more of one color pop, and anything left hanging falls.

Available commands:
  play     - Play in the terminal
  gui      - Play in a desktop window
  predict  - Print the path a shot would take
  config   - Print the effective configuration
  list     - Show all available games

Examples:
  bubbles play
  bubbles play --difficulty hard --seed 42
  bubbles gui --config ./my-bubbles.yaml
  bubbles predict --aim-x 200 --aim-y 300`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(guiCmd)
	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
