// Package shell drives the screen flow around a glide run and keeps the
// player's persisted progress in step with it.
package shell

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"umbrella-glide/internal/audio"
	"umbrella-glide/internal/sims/glide"
	"umbrella-glide/internal/store"
	pcore "umbrella-glide/pkg/core"
)

// ErrNegativeAmount rejects coin awards below zero.
var ErrNegativeAmount = errors.New("shell: negative coin amount")

// Screen is the active screen.
type Screen int

const (
	// ScreenStart is the title screen shown before the first run and after Home.
	ScreenStart Screen = iota
	// ScreenPlaying covers a run in progress, paused or not.
	ScreenPlaying
	// ScreenGameOver shows the final depth until the next Start or Home.
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenStart:
		return "start"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Loop is the part of the physics loop the shell drives.
type Loop interface {
	Reset(seed int64)
	Start() bool
	Halt()
	SetListener(l glide.Listener)
}

// Progress is the persisted player record.
type Progress struct {
	HighScore  int
	Coins      int
	PlayerName string
}

// View is what a renderer needs to draw the shell.
type View struct {
	Screen     Screen
	Paused     bool
	Score      int
	HighScore  int
	Coins      int
	PlayerName string
	NewBest    bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger routes persistence failures to logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Shell) {
		if logger != nil {
			s.log = logger
		}
	}
}

// WithSink plays coin and game-over cues on sink.
func WithSink(sink audio.Sink) Option {
	return func(s *Shell) {
		if sink != nil {
			s.sink = sink
		}
	}
}

// WithSeed makes generated names and run seeds reproducible.
func WithSeed(seed int64) Option {
	return func(s *Shell) { s.rng = pcore.NewRNG(seed) }
}

// Shell owns the Start, Playing and GameOver screens.
type Shell struct {
	kv   store.KV
	loop Loop
	log  *log.Logger
	sink audio.Sink
	rng  *pcore.RNG

	screen   Screen
	paused   bool
	score    int
	newBest  bool
	lastSeed int64
	progress Progress
}

var _ glide.Listener = (*Shell)(nil)

// New loads progress from kv, registers itself as the loop's listener and
// returns a shell on the start screen.
func New(kv store.KV, loop Loop, opts ...Option) *Shell {
	s := &Shell{
		kv:   kv,
		loop: loop,
		log:  log.Default(),
		sink: audio.Silent{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = pcore.NewRNG(time.Now().UnixNano())
	}
	s.load()
	loop.SetListener(s)
	return s
}

func (s *Shell) load() {
	s.progress = ReadProgress(s.kv, s.log)
	if s.progress.PlayerName == "" {
		s.progress.PlayerName = GenerateName(s.rng)
		s.write(store.KeyPlayerName, s.progress.PlayerName)
	}
}

// ReadProgress reads the persisted record from kv. Read failures and
// malformed or negative numbers are logged and read as zero; a missing
// name is left empty.
func ReadProgress(kv store.KV, logger *log.Logger) Progress {
	if logger == nil {
		logger = log.Default()
	}
	name, _, err := kv.Get(store.KeyPlayerName)
	if err != nil {
		logger.Printf("shell: read %s: %v", store.KeyPlayerName, err)
		name = ""
	}
	return Progress{
		HighScore:  readInt(kv, logger, store.KeyHighScore),
		Coins:      readInt(kv, logger, store.KeyCoins),
		PlayerName: name,
	}
}

func readInt(kv store.KV, logger *log.Logger, key string) int {
	raw, ok, err := kv.Get(key)
	if err != nil {
		logger.Printf("shell: read %s: %v", key, err)
		return 0
	}
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		logger.Printf("shell: stored %s=%q is not a number, using 0", key, raw)
		return 0
	}
	if n < 0 {
		logger.Printf("shell: stored %s=%d is negative, using 0", key, n)
		return 0
	}
	return n
}

func (s *Shell) write(key, value string) {
	if err := s.kv.Set(key, value); err != nil {
		s.log.Printf("shell: write %s: %v", key, err)
	}
}

// Start begins a fresh run from the start or game-over screen. It reports
// whether a run was started.
func (s *Shell) Start() bool {
	if s.screen != ScreenStart && s.screen != ScreenGameOver {
		return false
	}
	s.score = 0
	s.newBest = false
	s.paused = false
	s.lastSeed = s.rng.Source().Int64()
	s.loop.Reset(s.lastSeed)
	s.screen = ScreenPlaying
	s.loop.Start()
	return true
}

// Pause suspends a run in progress.
func (s *Shell) Pause() {
	if s.screen != ScreenPlaying || s.paused {
		return
	}
	s.paused = true
	s.loop.Halt()
}

// Resume continues a paused run.
func (s *Shell) Resume() {
	if s.screen != ScreenPlaying || !s.paused {
		return
	}
	s.paused = false
	s.loop.Start()
}

// TogglePause pauses a running run or resumes a paused one.
func (s *Shell) TogglePause() {
	if s.paused {
		s.Resume()
	} else {
		s.Pause()
	}
}

// Home returns to the start screen, abandoning any run in progress.
func (s *Shell) Home() {
	if s.screen == ScreenStart {
		return
	}
	s.loop.Halt()
	s.screen = ScreenStart
	s.paused = false
}

// Close stops any scheduled ticks.
func (s *Shell) Close() {
	s.loop.Halt()
}

// OnScoreUpdate records the live depth of the current run.
func (s *Shell) OnScoreUpdate(score int) {
	if s.screen != ScreenPlaying {
		return
	}
	s.score = score
}

// OnGameOver ends the current run. Calls outside a run are ignored.
func (s *Shell) OnGameOver(finalScore int) {
	if s.screen != ScreenPlaying {
		return
	}
	s.screen = ScreenGameOver
	s.paused = false
	s.score = finalScore
	if finalScore > s.progress.HighScore {
		s.progress.HighScore = finalScore
		s.newBest = true
		s.write(store.KeyHighScore, strconv.Itoa(finalScore))
		s.sink.Play(audio.CueHighScore)
		return
	}
	s.sink.Play(audio.CueGameOver)
}

// OnCoinCollect adds a collected coin to the balance.
func (s *Shell) OnCoinCollect(amount int) {
	if err := s.CollectCoins(amount); err != nil {
		s.log.Printf("shell: %v", err)
	}
}

// CollectCoins adds amount to the persisted coin balance.
func (s *Shell) CollectCoins(amount int) error {
	if amount < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeAmount, amount)
	}
	if amount == 0 {
		return nil
	}
	s.progress.Coins += amount
	s.write(store.KeyCoins, strconv.Itoa(s.progress.Coins))
	s.sink.Play(audio.CueCoin)
	return nil
}

// Screen returns the active screen.
func (s *Shell) Screen() Screen { return s.screen }

// Paused reports whether the current run is suspended.
func (s *Shell) Paused() bool { return s.paused }

// Progress returns the persisted record as last loaded or written.
func (s *Shell) Progress() Progress { return s.progress }

// RunSeed returns the seed handed to the loop by the latest Start.
func (s *Shell) RunSeed() int64 { return s.lastSeed }

// View snapshots the shell for rendering.
func (s *Shell) View() View {
	return View{
		Screen:     s.screen,
		Paused:     s.paused,
		Score:      s.score,
		HighScore:  s.progress.HighScore,
		Coins:      s.progress.Coins,
		PlayerName: s.progress.PlayerName,
		NewBest:    s.newBest,
	}
}
