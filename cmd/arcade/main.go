// arcade is a terminal typing-combat game: type words before their deadline
// to defeat a roster of enemies and, finally, the boss.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show run history for a game
//	arcade check             - Validate config, roster and word list
//	arcade simulate          - Let a bot play a session in real time
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - Set log level (debug, info, warn, error)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/typing-arcade/internal/games/typing"
	"github.com/vovakirdan/typing-arcade/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Shared by play, menu and check
	flagConfig     string
	flagDifficulty string
	flagRoster     string
	flagWords      string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "arcade",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Typing Arcade - Type fast, fight bugs, beat the boss",
	Long: `Typing Arcade is a terminal typing-combat game.

Each word you finish damages the current enemy. Typos and missed
deadlines cost you health. Clear the levels and defeat the boss to win.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View run history
  check    - Validate config and data files
  simulate - Let a bot play a session without the UI

Examples:
  arcade list
  arcade play typing
  arcade play typing_endless --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores typing`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		typing.SetLogger(logger)
		tui.SetLogger(logger)
		return nil
	},
	SilenceUsage: true,
}

// addDataFlags registers the typing data flags on a command.
func addDataFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom typing config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&flagRoster, "roster", "", "Path to enemy roster (.txt or .yaml)")
	cmd.Flags().StringVar(&flagWords, "words", "", "Path to word list")
}

// applyDataFlags hands the data flags to the typing game package.
func applyDataFlags() {
	typing.SetConfigPath(flagConfig)
	typing.SetDifficultyPreset(flagDifficulty)
	typing.SetDataPaths(flagRoster, flagWords)
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(simulateCmd)
}
