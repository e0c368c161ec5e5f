package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromapulse/internal/leaderboard"
	"github.com/vovakirdan/chromapulse/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a difficulty, then play",
	Long: `Start ChromaPulse with a difficulty picker.

Use arrow keys or j/k to navigate, Enter to play.
After you quit a game, you return to the picker.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play the selected difficulty
  Tab/L        - Scores
  Q/Esc        - Quit

Examples:
  chromapulse menu
  chromapulse menu --fps 60
  chromapulse menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	backend := openBackend(flagDBPath)
	defer backend.Close()

	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = menuResult.Config

		if menuResult.Quit {
			return
		}

		if menuResult.WantsScoreboard {
			board := leaderboard.NewStore(backend, nil)
			goBack, sbErr := tui.RunScoreboard(board, backend, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		game, err := loadGameConfig(menuResult.Preset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		if err := playSession(game, backend, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}
}
