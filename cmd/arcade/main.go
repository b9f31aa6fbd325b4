// arcade is a retrowave arcade for the terminal: a pseudo-3D tunnel racer
// and a Space Invaders clone sharing one game loop, themes and soundtrack.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error
//	--theme <name>       - cyberpunk, brownish, green, dark or vaporwave
//	--sound              - Enable music and sound effects
//
// A .env file in the working directory may set ARCADE_DB, ARCADE_THEME,
// ARCADE_LOG_LEVEL and ARCADE_SOUND. Flags given on the command line win.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/retrowave-arcade/internal/games/invaders"
	_ "github.com/vovakirdan/retrowave-arcade/internal/games/neonrider"
	"github.com/vovakirdan/retrowave-arcade/internal/logging"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagTheme    string
	flagSound    bool

	logLevel log.Level
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Retrowave Arcade - neon racing and space invaders in your terminal",
	Long: `Retrowave Arcade is a terminal arcade with two games, Neon Rider and
Space Invaders, five color themes and a synthesized synthwave soundtrack.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play neonrider
  arcade play invaders --difficulty hard
  arcade menu --theme vaporwave --sound
  arcade serve --ssh :2222
  arcade scores invaders`,
	SilenceUsage:      true,
	PersistentPreRunE: loadEnvironment,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "Color theme (default: saved choice or terminal background)")
	rootCmd.PersistentFlags().BoolVar(&flagSound, "sound", false, "Enable music and sound effects")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadEnvironment reads .env and fills every flag not set on the command
// line from its ARCADE_* variable.
func loadEnvironment(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("read .env: %w", err)
	}

	fromEnv := func(flag, env string, apply func(string) error) error {
		v, ok := os.LookupEnv(env)
		if !ok || cmd.Flags().Changed(flag) {
			return nil
		}
		if err := apply(v); err != nil {
			return fmt.Errorf("%s: %w", env, err)
		}
		return nil
	}

	set := func(dst *string) func(string) error {
		return func(v string) error { *dst = v; return nil }
	}
	if err := fromEnv("db", "ARCADE_DB", set(&flagDBPath)); err != nil {
		return err
	}
	if err := fromEnv("theme", "ARCADE_THEME", set(&flagTheme)); err != nil {
		return err
	}
	if err := fromEnv("log-level", "ARCADE_LOG_LEVEL", set(&flagLogLevel)); err != nil {
		return err
	}
	err := fromEnv("sound", "ARCADE_SOUND", func(v string) error {
		b, perr := strconv.ParseBool(v)
		flagSound = b
		return perr
	})
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logLevel = level
	return nil
}
