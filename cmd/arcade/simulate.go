package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/typing-arcade/internal/games/typing"
)

var (
	flagSimCPS      float64
	flagSimAccuracy float64
	flagSimLimit    time.Duration
	flagSimEndless  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Let a bot play a typing session in real time",
	Long: `Run a typing session without a terminal UI. A bot types the current
word at a fixed speed and makes occasional typos, which is handy for
checking how a config or difficulty preset plays out.

Examples:
  arcade simulate
  arcade simulate --cps 8 --accuracy 0.9
  arcade simulate --difficulty hard --limit 2m
  arcade simulate --endless --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	addDataFlags(simulateCmd)
	simulateCmd.Flags().Float64Var(&flagSimCPS, "cps", 6, "Bot typing speed in characters per second")
	simulateCmd.Flags().Float64Var(&flagSimAccuracy, "accuracy", 0.95, "Chance that a keystroke is correct (0-1)")
	simulateCmd.Flags().DurationVar(&flagSimLimit, "limit", 5*time.Minute, "Stop the simulation after this long")
	simulateCmd.Flags().BoolVar(&flagSimEndless, "endless", false, "Disable the boss")
}

// botKey identifies the state the bot last typed into, so it never types
// twice against the same stale snapshot.
type botKey struct {
	word    string
	cursor  int
	attempt int
}

func snapshotKey(s typing.Snapshot) botKey {
	return botKey{
		word:    s.Word,
		cursor:  s.Cursor,
		attempt: s.Stats.Words + s.Stats.Mistakes + s.Stats.Timeouts,
	}
}

func runSimulate(_ *cobra.Command, _ []string) {
	if flagSimCPS <= 0 {
		fmt.Fprintln(os.Stderr, "Error: --cps must be positive")
		os.Exit(1)
	}

	applyDataFlags()
	bundle, err := typing.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot start: %v\n", err)
		os.Exit(1)
	}
	if flagSimEndless {
		bundle.Settings.Boss.Level = 0
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	session, err := typing.NewSession(bundle.Settings, bundle.Enemies(), bundle.Words,
		typing.WithLogger(logger.With("game", "simulate")),
		typing.WithRand(rand.New(rand.NewSource(seed))),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot start: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), flagSimLimit)
	defer cancel()

	runner := typing.NewRunner(session, flagFPS)
	outcomes := make(chan typing.Outcome, 1)
	go runner.Run(ctx, func(o typing.Outcome) { outcomes <- o })

	go typeBot(runner, rng)

	// The outcome, if any, is sent before Done closes.
	<-runner.Done()
	select {
	case o := <-outcomes:
		printOutcome(o)
	default:
		snap := runner.Snapshot()
		fmt.Printf("Stopped after %s on level %d against %s (%d points)\n",
			flagSimLimit, snap.Level, snap.EnemyName, snap.Stats.Score)
	}
}

// typeBot feeds keystrokes to the runner until it stops.
func typeBot(r *typing.Runner, rng *rand.Rand) {
	interval := time.Duration(float64(time.Second) / flagSimCPS)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var last botKey
	for {
		select {
		case <-r.Done():
			return
		case <-ticker.C:
		}

		snap := r.Snapshot()
		if snap.Phase != typing.PhaseAwaitingInput {
			continue
		}
		key := snapshotKey(snap)
		if key == last {
			continue
		}
		word := []rune(snap.Word)
		if snap.Cursor >= len(word) {
			continue
		}

		ch := word[snap.Cursor]
		if rng.Float64() >= flagSimAccuracy {
			ch = '#'
		}
		last = key
		r.Type(ch)
	}
}

func printOutcome(o typing.Outcome) {
	fmt.Println(o.Message())
	fmt.Println()
	fmt.Printf("  Result:    %s\n", o.Result)
	fmt.Printf("  Level:     %d\n", o.Level)
	fmt.Printf("  Words:     %d\n", o.Stats.Words)
	fmt.Printf("  Mistakes:  %d\n", o.Stats.Mistakes)
	fmt.Printf("  Timeouts:  %d\n", o.Stats.Timeouts)
	fmt.Printf("  Defeated:  %d\n", o.Stats.Defeated)
	fmt.Printf("  Score:     %d\n", o.Stats.Score)
	fmt.Printf("  Time:      %s\n", o.Stats.Elapsed.Round(time.Second))
}
