package typing

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Phase is where the session is in the word cycle.
type Phase int

const (
	PhaseIdle          Phase = iota // constructed, not started
	PhaseAwaitingInput              // a word is on screen and its timer runs
	PhaseGrace                      // input frozen until the next word
	PhaseOver                       // terminal outcome reached or session closed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAwaitingInput:
		return "awaiting-input"
	case PhaseGrace:
		return "grace"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// VerdictKind classifies how one keystroke was handled.
type VerdictKind int

const (
	VerdictIgnored      VerdictKind = iota // input frozen, session over, or wrong slot
	VerdictCorrect                         // matching character, focus advanced
	VerdictMismatch                        // wrong character, player penalized
	VerdictWordComplete                    // last character completed the word
)

func (k VerdictKind) String() string {
	switch k {
	case VerdictIgnored:
		return "ignored"
	case VerdictCorrect:
		return "correct"
	case VerdictMismatch:
		return "mismatch"
	case VerdictWordComplete:
		return "word-complete"
	default:
		return "unknown"
	}
}

// Verdict is the result of one keystroke.
type Verdict struct {
	Kind       VerdictKind
	Transition Transition
}

// Session drives one playthrough: it issues words, judges keystrokes, runs
// the challenge timer and the grace delay, and hands penalties and strikes
// to the Resolver.
//
// A Session is not safe for concurrent use. Time only moves through Tick, so
// every timer expiry runs on the caller's goroutine.
type Session struct {
	settings Settings
	words    []string
	rng      *rand.Rand
	log      *log.Logger

	resolver *Resolver
	backdrop *Backdrop
	timer    *ChallengeTimer
	grace    *ChallengeTimer

	phase   Phase
	word    string
	judge   Judge
	entered []rune
	cursor  int
	lastBad int // slot of the last mismatch, -1 if none
	events  []Event
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. A nil logger discards output.
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.log = orDiscard(logger)
	}
}

// WithRand sets the random source used to pick words.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// NewSession validates the inputs and builds an idle session. Empty rosters
// or word lists return a *DataError and no session.
func NewSession(settings Settings, enemies []*Enemy, words []string, opts ...Option) (*Session, error) {
	settings = settings.normalize()
	if len(words) == 0 {
		return nil, &DataError{Source: "words", Err: ErrEmptyWordList}
	}

	s := &Session{
		settings: settings,
		words:    append([]string(nil), words...),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		log:      orDiscard(nil),
		lastBad:  -1,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.backdrop = NewBackdrop(settings.Themes)
	resolver, err := NewResolver(settings, enemies, s.log, s.backdrop)
	if err != nil {
		return nil, err
	}
	s.resolver = resolver
	s.backdrop.OnLevelChanged(resolver.Levels().Level())

	s.timer = NewChallengeTimer(s.onTimeout)
	s.grace = NewChallengeTimer(s.onGraceOver)
	return s, nil
}

// Start issues the first word. Calling Start twice has no effect.
func (s *Session) Start() {
	if s.phase != PhaseIdle {
		return
	}
	s.log.Info("session started",
		"enemies", s.resolver.Roster().Len(),
		"words", len(s.words),
		"level", s.resolver.Levels().Level(),
	)
	s.issueWord()
}

// Type handles a character typed into slot index. Only the focused slot
// accepts input.
func (s *Session) Type(index int, r rune) Verdict {
	if s.phase != PhaseAwaitingInput || index != s.cursor {
		return Verdict{Kind: VerdictIgnored}
	}

	s.entered[index] = r
	if !s.judge.MatchesChar(index, r) {
		s.lastBad = index
		s.freeze()
		t := s.resolver.Penalize(CauseMismatch)
		s.collect()
		if t.Terminal() {
			s.end()
		} else {
			s.grace.Start(s.settings.GraceDelay)
		}
		return Verdict{Kind: VerdictMismatch, Transition: t}
	}

	if index < s.judge.Len()-1 {
		s.cursor++
		return Verdict{Kind: VerdictCorrect}
	}

	if !s.judge.IsWordComplete(s.entered) {
		return Verdict{Kind: VerdictCorrect}
	}

	s.freeze()
	t := s.resolver.Strike()
	s.collect()
	if t.Terminal() {
		s.end()
	} else {
		s.grace.Start(s.settings.GraceDelay)
	}
	return Verdict{Kind: VerdictWordComplete, Transition: t}
}

// TypeRune types r into the focused slot.
func (s *Session) TypeRune(r rune) Verdict {
	return s.Type(s.cursor, r)
}

// Tick advances session time by dt, firing at most one grace or challenge
// expiry.
func (s *Session) Tick(dt time.Duration) {
	if s.phase == PhaseIdle || s.phase == PhaseOver || dt <= 0 {
		return
	}
	s.resolver.stats.Elapsed += dt
	switch s.phase {
	case PhaseGrace:
		s.grace.Advance(dt)
	case PhaseAwaitingInput:
		s.timer.Advance(dt)
	}
}

// Close cancels pending timers, detaches level observers and freezes the
// session. Safe to call twice.
func (s *Session) Close() {
	s.timer.Cancel()
	s.grace.Cancel()
	if s.phase != PhaseOver {
		s.log.Debug("session closed", "phase", s.phase)
	}
	s.phase = PhaseOver
	s.resolver.detach(s.backdrop)
}

func (s *Session) onTimeout() {
	if s.phase != PhaseAwaitingInput {
		return
	}
	t := s.resolver.Penalize(CauseTimeout)
	s.collect()
	if t.Terminal() {
		s.end()
		return
	}
	s.issueWord()
}

func (s *Session) onGraceOver() {
	if s.phase != PhaseGrace {
		return
	}
	s.issueWord()
}

// freeze cancels the challenge timer before any state changes so a late
// expiry cannot double-penalize.
func (s *Session) freeze() {
	s.timer.Cancel()
	s.phase = PhaseGrace
}

func (s *Session) end() {
	s.timer.Cancel()
	s.grace.Cancel()
	s.phase = PhaseOver
}

func (s *Session) issueWord() {
	s.word = s.words[s.rng.Intn(len(s.words))]
	s.judge = NewJudge(s.word)
	s.entered = make([]rune, s.judge.Len())
	s.cursor = 0
	s.lastBad = -1

	deadline := s.settings.Deadline.For(s.judge.Len(), s.resolver.Levels().Level())
	s.phase = PhaseAwaitingInput
	s.timer.Start(deadline)
	s.events = append(s.events, WordIssuedEvent{Word: s.word, Deadline: deadline})
	s.log.Debug("word issued", "word", s.word, "deadline", deadline)
}

func (s *Session) collect() {
	s.events = append(s.events, s.resolver.drainEvents()...)
}

// DrainEvents returns events emitted since the last call.
func (s *Session) DrainEvents() []Event {
	if len(s.events) == 0 {
		return nil
	}
	out := s.events
	s.events = nil
	return out
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// CurrentWord returns the active challenge word.
func (s *Session) CurrentWord() string {
	return s.word
}

// Entered returns a copy of the typed characters; unfilled slots are zero.
func (s *Session) Entered() []rune {
	return append([]rune(nil), s.entered...)
}

// Cursor returns the focused slot.
func (s *Session) Cursor() int {
	return s.cursor
}

// MismatchSlot returns the slot of the last wrong character, or -1.
func (s *Session) MismatchSlot() int {
	return s.lastBad
}

// CurrentEnemy returns the enemy being fought.
func (s *Session) CurrentEnemy() *Enemy {
	return s.resolver.CurrentEnemy()
}

// Player returns the player.
func (s *Session) Player() *Player {
	return s.resolver.Player()
}

// Level returns the current level.
func (s *Session) Level() int {
	return s.resolver.Levels().Level()
}

// BossMode reports whether the boss has joined the roster.
func (s *Session) BossMode() bool {
	return s.resolver.Roster().BossMode()
}

// Theme returns the backdrop theme for the current level.
func (s *Session) Theme() Theme {
	return s.backdrop.Current()
}

// PlayerHealthFraction returns the player's health in [0, 1].
func (s *Session) PlayerHealthFraction() float64 {
	return s.resolver.Player().HealthFraction()
}

// EnemyHealthFraction returns the current enemy's health in [0, 1].
func (s *Session) EnemyHealthFraction() float64 {
	return s.resolver.CurrentEnemy().HealthFraction()
}

// TimeRemaining returns what is left of the challenge deadline.
func (s *Session) TimeRemaining() time.Duration {
	return s.timer.Remaining()
}

// TimerProgress returns how much of the challenge deadline has elapsed, in
// [0, 1].
func (s *Session) TimerProgress() float64 {
	return s.timer.Progress()
}

// Stats returns the running counters.
func (s *Session) Stats() Stats {
	return s.resolver.Stats()
}

// Outcome returns the terminal outcome, if the game has been won or lost.
func (s *Session) Outcome() (Outcome, bool) {
	return s.resolver.Outcome()
}

// IsOver reports whether the game has been won or lost.
func (s *Session) IsOver() bool {
	return s.resolver.Over()
}
