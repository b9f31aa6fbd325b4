package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/retrowave-arcade/internal/config"
	"github.com/vovakirdan/retrowave-arcade/internal/games/invaders"
	"github.com/vovakirdan/retrowave-arcade/internal/games/neonrider"
	"github.com/vovakirdan/retrowave-arcade/internal/platform/tui"
	"github.com/vovakirdan/retrowave-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

// gameSetup passes the config path and difficulty preset to a game
// package before its instances are created.
var gameSetup = map[string]func(path, preset string){
	"neonrider": func(path, preset string) {
		neonrider.SetConfigPath(path)
		neonrider.SetDifficultyPreset(preset)
	},
	"invaders": func(path, preset string) {
		invaders.SetConfigPath(path)
		invaders.SetDifficultyPreset(preset)
	},
}

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Enter      - Start
  Arrows     - Steer / move (WASD also works)
  Space      - Boost (Neon Rider) / Fire (Space Invaders)
  P/Esc      - Pause
  R          - Restart (after game over)
  T          - Cycle color theme
  M, N, +/-  - Music on/off, next track, volume
  B          - Back (when not playing)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play neonrider
  arcade play invaders --difficulty easy
  arcade play neonrider --difficulty hard
  arcade play neonrider --config ./my-neonrider.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// checkDifficulty rejects a preset name nobody knows.
func checkDifficulty() {
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		fmt.Fprintf(os.Stderr, "Error: unknown difficulty %q (want easy, normal, hard or fixed)\n", flagDifficulty)
		os.Exit(1)
	}
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}
	checkDifficulty()

	if setup, ok := gameSetup[gameID]; ok {
		setup(flagConfig, flagDifficulty)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	svc, cleanup := localServices()
	svc.Logger.Info("playing", "game", gameID, "difficulty", flagDifficulty)

	runErr := tui.RunGame(game, svc)
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
