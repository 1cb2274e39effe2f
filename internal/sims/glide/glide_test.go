package glide

import (
	"math"
	"testing"
	"time"
)

type recorder struct {
	scores   []int
	gameOver []int
	coins    []int
}

func (r *recorder) OnScoreUpdate(score int)   { r.scores = append(r.scores, score) }
func (r *recorder) OnGameOver(finalScore int) { r.gameOver = append(r.gameOver, finalScore) }
func (r *recorder) OnCoinCollect(amount int)  { r.coins = append(r.coins, amount) }

func testConfig(h int) Config {
	cfg := DefaultConfig()
	cfg.Width = 400
	cfg.Height = h
	cfg.Params.CoinChance = 0
	return cfg
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-6 }

func TestResetPlacesBodyAtThirdHeight(t *testing.T) {
	loop := New(testConfig(900), nil)
	p := loop.Player()
	if !approx(p.Y, 300) || !approx(p.X, 200) || p.VY != 0 || p.Umbrella {
		t.Fatalf("unexpected initial player %+v", p)
	}

	loop.SetUmbrella(true)
	loop.Step(0)
	loop.Step(0)
	loop.Reset(0)
	p = loop.Player()
	if !approx(p.Y, 300) || p.VY != 0 || p.Umbrella {
		t.Fatalf("Reset did not restore player: %+v", p)
	}
	if loop.Score() != 0 || loop.Ticks() != 0 || loop.State() != StateIdle {
		t.Fatalf("Reset left score=%d ticks=%d state=%v", loop.Score(), loop.Ticks(), loop.State())
	}
}

func TestGravityAndCeilingPerMode(t *testing.T) {
	loop := New(testConfig(100000), nil)

	loop.SetUmbrella(true)
	loop.Step(0)
	if p := loop.Player(); !approx(p.VY, 0.15) {
		t.Fatalf("open umbrella first tick VY=%f, want 0.15", p.VY)
	}
	for i := 0; i < 100; i++ {
		loop.Step(0)
		if vy := loop.Player().VY; vy > 3+1e-9 {
			t.Fatalf("open umbrella exceeded ceiling: %f", vy)
		}
	}
	if vy := loop.Player().VY; !approx(vy, 3) {
		t.Fatalf("open umbrella should settle at 3, got %f", vy)
	}

	loop.Reset(0)
	loop.Step(0)
	if vy := loop.Player().VY; !approx(vy, 0.5) {
		t.Fatalf("closed umbrella first tick VY=%f, want 0.5", vy)
	}
	for i := 0; i < 100; i++ {
		loop.Step(0)
		if vy := loop.Player().VY; vy > 15 {
			t.Fatalf("closed umbrella exceeded ceiling: %f", vy)
		}
	}
	if vy := loop.Player().VY; vy != 15 {
		t.Fatalf("closed umbrella should settle at 15, got %f", vy)
	}

	// Opening at full speed drops straight to the open ceiling.
	loop.SetUmbrella(true)
	loop.Step(0)
	if vy := loop.Player().VY; vy != 3 {
		t.Fatalf("switching to open should clamp to 3, got %f", vy)
	}
}

func TestTenClosedTicks(t *testing.T) {
	loop := New(testConfig(800), nil)
	start := loop.Player().Y
	prev := 0.0
	for i := 0; i < 10; i++ {
		loop.Step(0)
		vy := loop.Player().VY
		if vy < prev {
			t.Fatalf("velocity decreased at tick %d: %f -> %f", i+1, prev, vy)
		}
		prev = vy
	}
	p := loop.Player()
	if p.VY != 5 {
		t.Fatalf("VY after 10 ticks = %f, want 5", p.VY)
	}
	if !approx(p.Y, start+27.5) {
		t.Fatalf("Y after 10 ticks = %f, want %f", p.Y, start+27.5)
	}
}

func TestGameOverAtBoundaryFromTerminalVelocity(t *testing.T) {
	rec := &recorder{}
	loop := New(testConfig(800), nil)
	loop.SetListener(rec)
	loop.player.VY = 15

	for i := 0; i < 100 && loop.State() != StateStopped; i++ {
		loop.Step(0)
	}
	if loop.State() != StateStopped {
		t.Fatal("loop never reached the boundary")
	}
	if loop.Ticks() != 36 {
		t.Fatalf("game over at tick %d, want 36", loop.Ticks())
	}
	if len(rec.gameOver) != 1 {
		t.Fatalf("game over fired %d times, want 1", len(rec.gameOver))
	}
	// 35 ticks at 15/tick accrue 52.5 metres before the breach.
	if rec.gameOver[0] != 52 {
		t.Fatalf("final score %d, want 52", rec.gameOver[0])
	}
	frozenY := loop.Player().Y
	if frozenY > 800 {
		t.Fatalf("position advanced past the boundary: %f", frozenY)
	}

	for i := 0; i < 5; i++ {
		loop.Step(0)
	}
	if len(rec.gameOver) != 1 {
		t.Fatalf("game over fired again after stop: %d", len(rec.gameOver))
	}
	if loop.Player().Y != frozenY || loop.Score() != 52 {
		t.Fatal("state changed after stop")
	}
}

func TestScoreMonotonic(t *testing.T) {
	rec := &recorder{}
	loop := New(testConfig(5000), nil)
	loop.SetListener(rec)
	for i := 0; i < 200 && loop.State() != StateStopped; i++ {
		loop.SetUmbrella(i%7 < 3)
		loop.Step(0)
	}
	for i := 1; i < len(rec.scores); i++ {
		if rec.scores[i] < rec.scores[i-1] {
			t.Fatalf("score decreased at update %d: %d -> %d", i, rec.scores[i-1], rec.scores[i])
		}
	}
}

func TestScheduledTicksStopAtGameOver(t *testing.T) {
	rec := &recorder{}
	loop := New(testConfig(300), nil)
	loop.SetListener(rec)
	if !loop.Start() {
		t.Fatal("Start from idle should succeed")
	}
	if loop.Start() {
		t.Fatal("second Start should report false")
	}

	sched := loop.Scheduler()
	now := time.Unix(0, 0)
	for i := 0; i < 500; i++ {
		now = now.Add(16 * time.Millisecond)
		sched.RunFrame(now)
	}
	if loop.State() != StateStopped {
		t.Fatalf("state=%v, want stopped", loop.State())
	}
	if sched.Pending() != 0 {
		t.Fatalf("%d ticks still scheduled after game over", sched.Pending())
	}
	if len(rec.gameOver) != 1 {
		t.Fatalf("game over fired %d times", len(rec.gameOver))
	}
	if loop.Start() {
		t.Fatal("Start after stop must require Reset")
	}
}

func TestHaltCancelsPendingTick(t *testing.T) {
	loop := New(testConfig(800), nil)
	loop.Start()
	sched := loop.Scheduler()
	sched.RunFrame(time.Unix(0, 0))
	loop.Halt()
	if sched.Pending() != 0 {
		t.Fatalf("halt left %d pending ticks", sched.Pending())
	}
	ticks := loop.Ticks()
	sched.RunFrame(time.Unix(1, 0))
	if loop.Ticks() != ticks {
		t.Fatal("loop ticked while halted")
	}
	if loop.State() != StateIdle {
		t.Fatalf("state=%v, want idle", loop.State())
	}
}

func TestResumeDoesNotApplyPausedTime(t *testing.T) {
	for _, normalize := range []bool{false, true} {
		cfg := testConfig(100000)
		cfg.Normalize = normalize
		loop := New(cfg, nil)
		sched := loop.Scheduler()

		now := time.Unix(0, 0)
		loop.Start()
		for i := 0; i < 4; i++ {
			now = now.Add(time.Second / 60)
			sched.RunFrame(now)
		}
		loop.Halt()
		before := loop.Player().VY

		now = now.Add(10 * time.Minute)
		sched.RunFrame(now)
		if got := loop.Player().VY; got != before {
			t.Fatalf("normalize=%v: velocity changed while paused: %f -> %f", normalize, before, got)
		}

		loop.Start()
		now = now.Add(time.Second)
		sched.RunFrame(now)
		want := before + cfg.Params.GravityClosed
		if got := loop.Player().VY; !approx(got, want) {
			t.Fatalf("normalize=%v: first tick after resume VY=%f, want %f", normalize, got, want)
		}
	}
}

func TestNormalizeScalesByFrameTime(t *testing.T) {
	cfg := testConfig(100000)
	cfg.Normalize = true
	loop := New(cfg, nil)
	loop.Step(time.Second / 30)
	if vy := loop.Player().VY; !approx(vy, 1.0) {
		t.Fatalf("two nominal frames of gravity expected VY=1, got %f", vy)
	}
	loop.Step(time.Hour)
	if vy := loop.Player().VY; !approx(vy, 1.0+0.5*MaxFrameScale) {
		t.Fatalf("frame scale should clamp at %v, VY=%f", MaxFrameScale, vy)
	}
}

func TestPointerClamp(t *testing.T) {
	loop := New(testConfig(800), nil)
	loop.SetPointerX(-50)
	if x := loop.Player().X; x != 30 {
		t.Fatalf("left clamp x=%f, want 30", x)
	}
	loop.SetPointerX(1000)
	if x := loop.Player().X; x != 370 {
		t.Fatalf("right clamp x=%f, want 370", x)
	}
	loop.SetPointerX(123)
	if x := loop.Player().X; x != 123 {
		t.Fatalf("x=%f, want 123", x)
	}
}

func TestSnapshotHint(t *testing.T) {
	loop := New(testConfig(800), nil)
	snap := loop.Snapshot()
	if !snap.ShowHint || snap.Terminal != 15 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	loop.SetUmbrella(true)
	if snap := loop.Snapshot(); snap.Terminal != 3 {
		t.Fatalf("open terminal=%f", snap.Terminal)
	}
	loop.score = 50
	if loop.Snapshot().ShowHint {
		t.Fatal("hint should hide at 50m")
	}
}

func TestFromMapAndParameters(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":              "200",
		"h":              "bad",
		"gravity_open":   "0.3",
		"terminal_open":  "1000",
		"normalize":      "true",
		"coin_chance":    "-1",
		"unknown_thing":  "1",
		"terminal_close": "2",
	})
	if cfg.Width != 200 || cfg.Height != DefaultConfig().Height {
		t.Fatalf("dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Params.GravityOpen != 0.3 {
		t.Fatalf("gravity_open=%f", cfg.Params.GravityOpen)
	}
	if cfg.Params.TerminalOpen != 30 {
		t.Fatalf("terminal_open should clamp to 30, got %f", cfg.Params.TerminalOpen)
	}
	if cfg.Params.CoinChance != 0 {
		t.Fatalf("coin_chance should clamp to 0, got %f", cfg.Params.CoinChance)
	}
	if !cfg.Normalize {
		t.Fatal("normalize not parsed")
	}

	loop := New(cfg, nil)
	round := FromMap(loop.Parameters().Map())
	if round.Params != cfg.Params || round.Width != cfg.Width || round.Normalize != cfg.Normalize {
		t.Fatalf("snapshot did not round-trip: %+v vs %+v", round, cfg)
	}
}

func TestSetFloatParameter(t *testing.T) {
	loop := New(testConfig(800), nil)
	if !loop.SetFloatParameter("gravity_closed", 1.25) {
		t.Fatal("gravity_closed should be adjustable")
	}
	if got := loop.Config().Params.GravityClosed; got != 1.25 {
		t.Fatalf("gravity_closed=%f", got)
	}
	if !loop.SetFloatParameter("coin_chance", 5) {
		t.Fatal("coin_chance should be adjustable")
	}
	if got := loop.Config().Params.CoinChance; got != 1 {
		t.Fatalf("coin_chance should clamp to 1, got %f", got)
	}
	if loop.SetFloatParameter("nope", 1) {
		t.Fatal("unknown key accepted")
	}
	if len(loop.ParameterControls()) == 0 {
		t.Fatal("expected HUD controls")
	}
}
