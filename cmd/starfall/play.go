package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfall/internal/platform/tui"
)

var flagNewGame bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Starfall",
	Long: `Start playing. The saved run is continued when it still has lives
left; otherwise (or with --new) a new run starts and the high score is kept.

Controls:
  WASD/Arrows  - Move
  Space/Click  - Fire
  Mouse        - Aim
  P/Esc        - Pause menu (resume, options, main menu, quit)
  M            - Toggle music
  Q/Ctrl+C     - Save and quit

Difficulty options:
  easy   - Five lives, difficulty rises at half speed
  normal - Three lives, default progression
  hard   - Two lives, starts at 1.5x difficulty
  fixed  - No progression

Examples:
  starfall play
  starfall play --new
  starfall play --difficulty hard
  starfall play --config ./my-starfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagNewGame, "new", false, "Start a new run instead of continuing the save")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	start := tui.StartContinue
	if flagNewGame {
		start = tui.StartNewGame
	}
	return runLocal(cmd.Context(), start)
}
