package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/typing-arcade/internal/core"
	"github.com/vovakirdan/typing-arcade/internal/games/typing"
	"github.com/vovakirdan/typing-arcade/internal/platform/tui"
	"github.com/vovakirdan/typing-arcade/internal/registry"
	"github.com/vovakirdan/typing-arcade/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Letters    - Type the falling word
  Tab        - Pause
  Enter      - Play again (after game over)
  Esc        - Leave the game
  Ctrl+C     - Quit

Difficulty options:
  easy   - More health and more time per letter
  normal - Config as loaded
  hard   - Less health, less time, tougher enemies
  fixed  - No progression: deadlines and enemy health stay put

Examples:
  arcade play typing
  arcade play typing --difficulty easy
  arcade play typing_endless --difficulty hard
  arcade play typing --roster ./bugs.yaml --words ./words.txt
  arcade play typing --config ./my-typing.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	addDataFlags(playCmd)
}

// terminalConfig builds the runtime config from the terminal size and the
// global flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// preflight loads the typing data once so bad files fail before the
// terminal switches to the alternate screen.
func preflight() error {
	applyDataFlags()
	if _, err := typing.Load(); err != nil {
		if typing.IsDataError(err) {
			return fmt.Errorf("cannot start: %w (check --roster and --words)", err)
		}
		return fmt.Errorf("cannot start: %w", err)
	}
	return nil
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	if err := preflight(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, terminalConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
