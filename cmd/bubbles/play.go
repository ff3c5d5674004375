package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/config"
	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/core"
	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/games/bubbles"
	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/platform/tui"
	"github.com/Dwarkadhish2005/bubble-shooter-game/internal/registry"
)

var flagNoSummary bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Left/Right, A/D  - Rotate the launcher
  Mouse            - Aim at the pointer, click to fire
  Space/Up         - Fire
  Enter            - Continue after a cleared or lost round
  G                - Toggle the aim guide
  P/Esc            - Pause
  R                - Restart at level 1
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Without --difficulty a preset picker is shown first.

Examples:
  bubbles play
  bubbles play --difficulty easy
  bubbles play --config ./my-bubbles.yaml --log-file bubbles.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagNoSummary, "no-summary", false, "Skip the round summary on exit")
}

func runPlay(cmd *cobra.Command, args []string) {
	// The alt screen owns stdout, so logs only go to --log-file
	logger, closeLog, err := newLogger(nil)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	preset := flagDifficulty
	if preset == "" {
		res, menuErr := tui.RunMenu(width, height)
		if menuErr != nil {
			fail("%v", menuErr)
		}
		if res.Quit {
			return
		}
		preset = string(res.Preset)
	} else if config.ParsePreset(preset) == "" {
		fail("unknown difficulty %q (use easy, normal, hard or fixed)", preset)
	}

	bubbles.SetConfigPath(flagConfig)
	bubbles.SetDifficultyPreset(preset)
	if _, loadErr := bubbles.LoadSettings(); loadErr != nil {
		logger.Warn("config not loaded, using defaults", "path", flagConfig, "err", loadErr)
	}

	game, err := registry.Create("bubbles", logger)
	if err != nil {
		fail("%v", err)
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed(),
	}
	logger.Info("starting terminal game", "difficulty", preset, "seed", cfg.Seed, "fps", cfg.TickRate)

	state, err := tui.Run(game, cfg, logger)
	if err != nil {
		fail("running game: %v", err)
	}

	bg, ok := game.(*bubbles.Game)
	if !ok || flagNoSummary {
		return
	}
	rounds := bg.Session().History()
	if r := bg.Session().Round(); r.Shots > 0 {
		rounds = append(rounds, r)
	}
	if len(rounds) == 0 {
		return
	}
	if err := tui.RunScoreboard(rounds, state.Score, width, height); err != nil {
		fail("%v", err)
	}
}
