package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typing-arcade/internal/games/typing"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the typing config, roster and word list",
	Long: `Load the typing config and data files exactly as a game would, and
report what was found. Exits non-zero if anything would stop a game from
starting.

Examples:
  arcade check
  arcade check --roster ./bugs.yaml --words ./words.txt
  arcade check --config ./my-typing.yaml --log-level info`,
	Args: cobra.NoArgs,
	Run:  runCheck,
}

func init() {
	addDataFlags(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) {
	applyDataFlags()

	bundle, err := typing.Load()
	if err != nil {
		kind := "config"
		if typing.IsDataError(err) {
			kind = "data"
		}
		fmt.Fprintf(os.Stderr, "FAIL (%s): %v\n", kind, err)
		os.Exit(1)
	}

	s := bundle.Settings
	fmt.Println("OK")
	fmt.Println()
	fmt.Printf("  Roster:     %s (%d enemies)\n", bundle.Roster, len(bundle.Records))
	fmt.Printf("  Words:      %s (%d words)\n", bundle.WordList, len(bundle.Words))
	fmt.Printf("  Player:     %d health, %d damage per word\n", s.PlayerHealth, s.PlayerDamage)
	fmt.Printf("  Deadline:   %s per letter, down to %s\n", s.Deadline.BaseTimePerLetter, s.Deadline.MinTimePerLetter)
	if s.Boss.Enabled() {
		fmt.Printf("  Boss:       %s at level %d\n", s.Boss.Name, s.Boss.Level)
	} else {
		fmt.Println("  Boss:       disabled")
	}
}
