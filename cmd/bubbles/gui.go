package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/config"
	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/games/bubbles"
	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/platform/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	Long: `Open a 900x700 window and play with the mouse.

Controls:
  Mouse     - Aim, click to fire or continue
  G         - Toggle the aim guide
  P         - Pause
  R         - Restart at level 1
  Esc/Q     - Quit`,
	Args: cobra.NoArgs,
	Run:  runGUI,
}

func runGUI(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fail("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}
	bubbles.SetConfigPath(flagConfig)
	bubbles.SetDifficultyPreset(flagDifficulty)

	cfg, loadErr := bubbles.LoadSettings()
	if loadErr != nil {
		logger.Warn("config not loaded, using defaults", "path", flagConfig, "err", loadErr)
	}

	s := seed()
	logger.Info("opening window", "difficulty", flagDifficulty, "seed", s, "fps", flagFPS)
	if err := gui.Run(cfg, uint64(s), flagFPS, logger); err != nil { //#nosec G115 -- seed bits are reinterpreted
		fail("running window: %v", err)
	}
}
