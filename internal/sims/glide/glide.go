package glide

import (
	"math"
	"time"

	"umbrella-glide/internal/core"
	pcore "umbrella-glide/pkg/core"
)

// MaxFrameScale caps how many nominal ticks a single normalized frame may
// cover, so a long stall cannot teleport the body.
const MaxFrameScale = 3.0

// State is the loop's run state.
type State int

const (
	// StateIdle means the loop is not ticking.
	StateIdle State = iota
	// StateRunning means a tick is scheduled for every frame.
	StateRunning
	// StateStopped means the boundary was crossed and game over fired.
	// Only Reset leaves this state.
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Player is the falling body.
type Player struct {
	X        float64
	Y        float64
	VY       float64
	Umbrella bool
}

// Listener receives run events from the loop.
type Listener interface {
	OnScoreUpdate(score int)
	OnGameOver(finalScore int)
	OnCoinCollect(amount int)
}

// Loop advances the falling body once per frame while running.
type Loop struct {
	cfg      Config
	sched    *core.Scheduler
	clock    *core.FrameClock
	listener Listener
	rng      *pcore.RNG

	seed    int64
	player  Player
	accrued float64
	score   int
	ticks   int
	coins   []Coin
	state   State
	handle  core.FrameHandle
}

var _ core.Sim = (*Loop)(nil)

// New returns a Loop in the idle state, reset with cfg.Seed. A nil
// scheduler gets a private one, which callers can drive through
// Scheduler().RunFrame.
func New(cfg Config, sched *core.Scheduler) *Loop {
	if cfg.Width <= 0 {
		cfg.Width = DefaultConfig().Width
	}
	if cfg.Height <= 0 {
		cfg.Height = DefaultConfig().Height
	}
	if sched == nil {
		sched = core.NewScheduler()
	}
	l := &Loop{
		cfg:   cfg,
		sched: sched,
		clock: core.NewFrameClock(cfg.TPS),
	}
	l.Reset(cfg.Seed)
	return l
}

// Name returns the simulation identifier.
func (l *Loop) Name() string { return "glide" }

// Size returns the logical screen dimensions.
func (l *Loop) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Config returns the active configuration, including tuned parameters.
func (l *Loop) Config() Config { return l.cfg }

// Scheduler returns the frame scheduler ticks are requested from.
func (l *Loop) Scheduler() *core.Scheduler { return l.sched }

// SetListener installs the receiver for score, coin and game-over events.
func (l *Loop) SetListener(li Listener) { l.listener = li }

// Reset cancels any pending tick and restores the initial run state. A
// zero seed reuses the configured one.
func (l *Loop) Reset(seed int64) {
	l.cancel()
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.seed = seed
	l.rng = pcore.NewRNG(seed)
	l.player = Player{
		X: float64(l.cfg.Width) / 2,
		Y: float64(l.cfg.Height) / 3,
	}
	l.accrued = 0
	l.score = 0
	l.ticks = 0
	l.coins = l.coins[:0]
	l.state = StateIdle
	l.clock.Reset()
}

// Start begins ticking from the current state. It reports false when the
// loop is already running or has stopped.
func (l *Loop) Start() bool {
	if l.state != StateIdle {
		return false
	}
	l.state = StateRunning
	l.clock.Reset()
	l.handle = l.sched.Request(l.tick)
	return true
}

// Halt suspends ticking. The body keeps its position and velocity.
func (l *Loop) Halt() {
	l.cancel()
	if l.state == StateRunning {
		l.state = StateIdle
	}
}

// State returns the current run state.
func (l *Loop) State() State { return l.state }

// Player returns a copy of the body state.
func (l *Loop) Player() Player { return l.player }

// Score returns the depth reached in whole metres.
func (l *Loop) Score() int { return l.score }

// Ticks returns the number of steps taken since Reset.
func (l *Loop) Ticks() int { return l.ticks }

// Seed returns the seed of the current run.
func (l *Loop) Seed() int64 { return l.seed }

// SetUmbrella switches between slow-fall and fast-fall.
func (l *Loop) SetUmbrella(open bool) { l.player.Umbrella = open }

// SetPointerX moves the body to the pointer's x, clamped to the margins.
func (l *Loop) SetPointerX(x float64) {
	lo := l.cfg.Params.EdgeMargin
	hi := float64(l.cfg.Width) - l.cfg.Params.EdgeMargin
	if hi < lo {
		l.player.X = float64(l.cfg.Width) / 2
		return
	}
	l.player.X = math.Max(lo, math.Min(hi, x))
}

// Step advances the body by one frame of duration dt. dt only matters when
// the config normalizes by frame time. Step is a no-op once stopped.
func (l *Loop) Step(dt time.Duration) {
	if l.state == StateStopped {
		return
	}
	p := l.cfg.Params
	scale := l.frameScale(dt)

	gravity, ceiling := p.GravityClosed, p.TerminalClosed
	if l.player.Umbrella {
		gravity, ceiling = p.GravityOpen, p.TerminalOpen
	}
	l.player.VY += gravity * scale
	if l.player.VY > ceiling {
		l.player.VY = ceiling
	}
	if l.player.VY < 0 {
		l.player.VY = 0
	}
	l.ticks++

	prevY := l.player.Y
	nextY := prevY + l.player.VY*scale
	if nextY > float64(l.cfg.Height) {
		l.stop()
		return
	}
	l.player.Y = nextY

	l.collectCoins(prevY)
	l.spawnCoin()

	l.accrued += l.player.VY * p.ScoreRate * scale
	l.score = int(math.Floor(l.accrued))
	if l.listener != nil {
		l.listener.OnScoreUpdate(l.score)
	}
}

func (l *Loop) tick(now time.Time) {
	l.handle = 0
	if l.state != StateRunning {
		return
	}
	l.Step(l.clock.Delta(now))
	if l.state == StateRunning {
		l.handle = l.sched.Request(l.tick)
	}
}

func (l *Loop) stop() {
	l.cancel()
	l.state = StateStopped
	if l.listener != nil {
		l.listener.OnGameOver(l.score)
	}
}

func (l *Loop) cancel() {
	if l.handle != 0 {
		l.sched.Cancel(l.handle)
		l.handle = 0
	}
}

func (l *Loop) frameScale(dt time.Duration) float64 {
	if !l.cfg.Normalize {
		return 1
	}
	step := l.clock.Step()
	if step <= 0 {
		return 1
	}
	scale := float64(dt) / float64(step)
	if scale < 0 {
		return 0
	}
	if scale > MaxFrameScale {
		return MaxFrameScale
	}
	return scale
}
