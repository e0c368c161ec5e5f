// chromapulse is a terminal color-reaction game: press the key of the lit
// color before the round runs out.
//
// Usage:
//
//	chromapulse play          - Play a game
//	chromapulse menu          - Pick a difficulty interactively, then play
//	chromapulse list          - Show color keys and difficulty presets
//	chromapulse scores        - Show the leaderboard and recent runs
//	chromapulse serve         - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set snapshot poll rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible round sequences
//	--db <path>           - Set database path (default: ~/.chromapulse/scores.db)
//	--config <path>       - Use a custom tuning YAML
//	--difficulty <preset> - easy, normal, hard or fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chromapulse",
	Short: "ChromaPulse - a color reaction game for your terminal",
	Long: `ChromaPulse lights one of ten circles or one of the two edge bars in a
color. Press that color's key before time runs out. Hits build your combo
and speed the game up; misses cost one of three lives.

Available commands:
  play     - Play a game directly
  menu     - Pick a difficulty, then play
  list     - Show color keys and difficulty presets
  scores   - View the leaderboard and recent runs
  serve    - Start SSH server for remote play

Examples:
  chromapulse play
  chromapulse play --difficulty hard
  chromapulse menu
  chromapulse serve --ssh :2222
  chromapulse scores`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Snapshot poll rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.chromapulse/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
