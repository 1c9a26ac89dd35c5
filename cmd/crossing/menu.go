package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode from an interactive menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode.
Press B during a session to come back to the menu; Q quits.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select mode
  Q/Esc        - Quit

Examples:
  crossing menu
  crossing menu --fps 30 --difficulty easy`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagSprites, "sprites", "", "Path to custom sprite sheet YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	return menuLoop(runtimeConfig(terminalSize()))
}

// menuLoop shows the menu until the player quits, either from the menu or
// from inside a session. Leaving a session with the back key returns here.
func menuLoop(cfg core.RuntimeConfig) error {
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return fmt.Errorf("running menu: %w", err)
		}

		// Pick up size changes made while the menu was open
		cfg = result.Config

		if result.Quit || result.GameID == "" {
			return nil
		}

		// Fresh seed per session unless one was pinned
		session := cfg
		if flagSeed == 0 {
			session.Seed = time.Now().UnixNano()
		}

		res, err := play(result.GameID, session)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if !res.BackToMenu {
			return nil
		}
	}
}
