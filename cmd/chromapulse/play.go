package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/chromapulse/internal/config"
	"github.com/vovakirdan/chromapulse/internal/core"
	"github.com/vovakirdan/chromapulse/internal/engine"
	"github.com/vovakirdan/chromapulse/internal/leaderboard"
	"github.com/vovakirdan/chromapulse/internal/platform/tui"
	"github.com/vovakirdan/chromapulse/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of ChromaPulse.

Controls:
  R B G Y P     - Answer red, blue, green, yellow, purple
  Space/Enter   - Start / play again
  L             - Leaderboard (menu and game over)
  Esc           - Back to the title screen
  Ctrl+R        - Restart the current game
  Q/Ctrl+C      - Quit

Difficulty options:
  easy   - Rounds start at 3600ms
  normal - Rounds start at 3000ms
  hard   - Rounds start at 2200ms
  fixed  - The interval never speeds up or slows down

Examples:
  chromapulse play
  chromapulse play --difficulty easy
  chromapulse play --seed 42
  chromapulse play --config ./my-chromapulse.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	game, err := loadGameConfig("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	backend := openBackend(flagDBPath)
	runErr := playSession(game, backend, runtimeConfig())
	backend.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// playSession runs one interactive session until the player quits.
func playSession(game config.GameConfig, backend storage.Backend, cfg core.RuntimeConfig) error {
	// Engine and leaderboard warnings would corrupt the alt screen.
	logger := log.New(os.Stderr)
	logger.SetLevel(log.FatalLevel)

	board := leaderboard.NewStore(backend, logger)
	eng := engine.NewEngine(engine.Config{
		Game:   game,
		Seed:   cfg.Seed,
		Logger: logger,
	}, board)
	eng.SetRunRecorder(backend)

	return tui.Run(eng, backend, cfg)
}
