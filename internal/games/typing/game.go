// Package typing implements a typing combat game: type the word on screen
// before its deadline to damage the current enemy, and climb the levels
// until the boss falls or you do.
package typing

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/typing-arcade/internal/config"
	"github.com/vovakirdan/typing-arcade/internal/core"
	"github.com/vovakirdan/typing-arcade/internal/registry"
)

// Game IDs.
const (
	CampaignID = "typing"
	EndlessID  = "typing_endless"
)

// flashTicks is how long an event message stays on screen.
const flashTicks = 45

// Package-level options set from the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	rosterPath       string
	wordsPath        string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown values fall back
// to the config as loaded.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetDataPaths overrides the roster and word list files. Empty values keep
// the config file's choice.
func SetDataPaths(roster, words string) {
	rosterPath = roster
	wordsPath = words
}

// SetLogger sets the logger used by new sessions. nil disables logging.
func SetLogger(l *log.Logger) {
	logger = orDiscard(l)
}

// Bundle is everything a session needs, loaded and validated once.
type Bundle struct {
	Settings Settings
	Records  []EnemyRecord
	Words    []string
	Roster   string // source descriptions for diagnostics
	WordList string
}

// Enemies builds a fresh enemy set. Each session needs its own because
// enemies grow with the level.
func (b Bundle) Enemies() []*Enemy {
	return BuildEnemies(b.Records, DefaultEnemyDamage, b.Settings.Scaling)
}

// Load reads config, roster and words using the package options.
func Load() (Bundle, error) {
	return load(difficultyPreset)
}

func load(preset config.DifficultyPreset) (Bundle, error) {
	cfg, err := config.LoadTyping(configPath)
	if err != nil {
		return Bundle{}, err
	}
	if preset != "" {
		config.ApplyTypingPreset(&cfg, preset)
	}
	if rosterPath != "" {
		cfg.Data.Roster = rosterPath
	}
	if wordsPath != "" {
		cfg.Data.Words = wordsPath
	}
	return LoadBundle(cfg, logger)
}

// LoadBundle loads the data sources named in cfg.
func LoadBundle(cfg config.TypingConfig, l *log.Logger) (Bundle, error) {
	records, err := LoadRoster(cfg.Data.Roster, l)
	if err != nil {
		return Bundle{}, err
	}
	words, err := LoadWords(cfg.Data.Words)
	if err != nil {
		return Bundle{}, err
	}

	settings := SettingsFromConfig(cfg)
	records = withDefaultDamage(records, cfg.Enemies.Damage)

	b := Bundle{
		Settings: settings,
		Records:  records,
		Words:    words,
		Roster:   describeSource(cfg.Data.Roster, "embedded roster"),
		WordList: describeSource(cfg.Data.Words, "embedded words"),
	}
	return b, nil
}

func withDefaultDamage(records []EnemyRecord, damage int) []EnemyRecord {
	if damage <= 0 {
		return records
	}
	out := make([]EnemyRecord, len(records))
	for i, rec := range records {
		if rec.Damage <= 0 {
			rec.Damage = damage
		}
		out[i] = rec
	}
	return out
}

func describeSource(path, fallback string) string {
	if path == "" {
		return fallback
	}
	return path
}

// SettingsFromConfig converts file configuration into engine settings.
func SettingsFromConfig(cfg config.TypingConfig) Settings {
	return Settings{
		PlayerHealth: cfg.Player.Health,
		PlayerDamage: cfg.Player.Damage,
		StartLevel:   cfg.StartLevel,
		GraceDelay:   cfg.GraceDelay,
		Deadline: DeadlinePolicy{
			BaseTimePerLetter: cfg.Deadline.BasePerLetter,
			MinTimePerLetter:  cfg.Deadline.MinPerLetter,
			ScalingFactor:     cfg.Deadline.ScalingPerLevel,
			Floor:             cfg.Deadline.Floor,
		},
		Scaling: ScalingPolicy{Modifier: cfg.Enemies.HealthModifier},
		Boss: BossConfig{
			Level:    cfg.Boss.Level,
			Name:     cfg.Boss.Name,
			ImageRef: cfg.Boss.Image,
			HPScale:  cfg.Boss.HPScale,
			Damage:   cfg.Boss.Damage,
		},
		Themes:        DefaultThemes,
		WordPoints:    cfg.Scoring.Word,
		EnemyPoints:   cfg.Scoring.Enemy,
		VictoryPoints: cfg.Scoring.Victory,
	}
}

// Game adapts a Session to the arcade platform.
type Game struct {
	id      string
	title   string
	endless bool

	runtime    core.RuntimeConfig
	difficulty config.DifficultyPreset
	session    *Session
	loadErr    error
	paused     bool
	tick       uint64

	flash      string
	flashColor core.Color
	flashLeft  int
}

// New creates the campaign game, which ends with the boss fight.
func New() *Game {
	return &Game{id: CampaignID, title: "Typing Combat"}
}

// NewEndless creates the endless variant: no boss, play until defeated.
func NewEndless() *Game {
	return &Game{id: EndlessID, title: "Typing Combat: Endless", endless: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Description returns the menu blurb.
func (g *Game) Description() string {
	if g.endless {
		return "No boss, no mercy. How many levels can you last?"
	}
	return "Type fast to beat ten levels of bugs and the final boss."
}

// SetDifficulty picks a preset for this game only, overriding the package
// default on the next Reset.
func (g *Game) SetDifficulty(preset string) error {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		return err
	}
	g.difficulty = p
	return nil
}

// Reset loads data and starts a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false
	g.tick = 0
	g.flash = ""
	g.flashLeft = 0
	if g.session != nil {
		g.session.Close()
	}
	g.session = nil
	g.loadErr = nil

	preset := g.difficulty
	if preset == "" {
		preset = difficultyPreset
	}
	bundle, err := load(preset)
	if err != nil {
		g.loadErr = err
		logger.Error("cannot start typing session", "game", g.id, "error", err)
		return
	}
	if g.endless {
		bundle.Settings.Boss.Level = 0
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s, err := NewSession(bundle.Settings, bundle.Enemies(), bundle.Words,
		WithLogger(logger.With("game", g.id)),
		WithRand(rand.New(rand.NewSource(seed))),
	)
	if err != nil {
		g.loadErr = err
		logger.Error("cannot start typing session", "game", g.id, "error", err)
		return
	}
	g.session = s
	g.session.Start()
	g.drainEvents()
}

// Step feeds typed characters to the session and advances its clock by one
// tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.session.IsOver() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	for _, r := range in.Runes {
		g.session.TypeRune(r)
	}
	g.session.Tick(g.runtime.TickDuration())
	g.drainEvents()

	if g.flashLeft > 0 {
		g.flashLeft--
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) drainEvents() {
	for _, e := range g.session.DrainEvents() {
		switch ev := e.(type) {
		case PenaltyEvent:
			if ev.Cause == CauseTimeout {
				g.setFlash(fmt.Sprintf("Too slow! -%d HP", ev.Damage), core.ColorOrange)
			} else {
				g.setFlash(fmt.Sprintf("Typo! -%d HP", ev.Damage), core.ColorBrightRed)
			}
		case HitEvent:
			g.setFlash(fmt.Sprintf("Hit %s for %d", ev.Enemy, ev.Damage), core.ColorBrightGreen)
		case EnemyDefeatedEvent:
			g.setFlash(fmt.Sprintf("%s defeated!", ev.Enemy), core.ColorBrightYellow)
		case BossAppearedEvent:
			g.setFlash(fmt.Sprintf("%s appears!", ev.Name), core.ColorBrightMagenta)
		}
	}
}

func (g *Game) setFlash(msg string, c core.Color) {
	g.flash = msg
	g.flashColor = c
	g.flashLeft = flashTicks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused}
	if g.loadErr != nil {
		st.GameOver = true
		return st
	}
	if g.session != nil {
		st.Score = g.session.Stats().Score
		st.GameOver = g.session.IsOver()
	}
	return st
}

// Report returns the finished run, if any.
func (g *Game) Report() (registry.RunReport, bool) {
	if g.session == nil {
		return registry.RunReport{}, false
	}
	o, ok := g.session.Outcome()
	if !ok {
		return registry.RunReport{}, false
	}
	return registry.RunReport{
		Result:   o.Result.String(),
		Level:    o.Level,
		Enemy:    o.Enemy,
		Words:    o.Stats.Words,
		Mistakes: o.Stats.Mistakes + o.Stats.Timeouts,
		Score:    o.Stats.Score,
		Duration: o.Stats.Elapsed,
	}, true
}

// Snapshot returns the session state, or false if no session is running.
func (g *Game) Snapshot() (Snapshot, bool) {
	if g.session == nil {
		return Snapshot{}, false
	}
	snap := g.session.Snapshot()
	snap.Tick = g.tick
	return snap, true
}

// Err returns the data error that prevented the session from starting.
func (g *Game) Err() error {
	return g.loadErr
}

// IsDataError reports whether err is a roster or word list problem.
func IsDataError(err error) bool {
	var de *DataError
	return errors.As(err, &de)
}

func init() {
	registry.Register(CampaignID, func() registry.Game {
		return New()
	})
	registry.Register(EndlessID, func() registry.Game {
		return NewEndless()
	})
}
