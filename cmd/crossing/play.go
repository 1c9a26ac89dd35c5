package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
	"github.com/vovakirdan/tui-crossing/internal/registry"
)

var flagSprites string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: crossing).

Controls:
  Arrows/WASD/hjkl - Move one tile
  Enter/Space      - Next level (after clearing one)
  R                - Restart (after game over)
  B                - Back to the mode menu
  P/Esc            - Pause
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Fewer, slower bugs; difficulty ramps over more levels
  normal - Configured values
  hard   - More, faster bugs and a shorter grace period
  fixed  - No per-level progression

Examples:
  crossing play
  crossing play crossing_endless
  crossing play --difficulty hard --seed 7
  crossing play --config ./my-crossing.yaml --sprites ./my-sheet.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite sheet YAML")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "crossing"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown mode %q, run 'crossing list' to see available modes", gameID)
	}

	cfg := runtimeConfig(terminalSize())
	res, err := play(gameID, cfg)
	if err != nil {
		return err
	}
	if res.BackToMenu {
		return menuLoop(cfg)
	}
	return nil
}

// play runs one session of the given mode.
func play(gameID string, cfg core.RuntimeConfig) (tui.SessionResult, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return tui.SessionResult{}, fmt.Errorf("creating game: %w", err)
	}

	logger.Info("starting", "mode", gameID, "fps", cfg.TickRate, "seed", cfg.Seed)
	res, err := tui.Run(game, cfg, tui.Options{SpritePath: flagSprites, Logger: logger})
	if err != nil {
		return res, fmt.Errorf("running game: %w", err)
	}
	return res, nil
}

// terminalSize returns the size of stdout, or 80x24 when it is not a terminal.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
