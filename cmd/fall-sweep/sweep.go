package main

import (
	"fmt"
	"math"
	"time"

	"umbrella-glide/internal/core"
	"umbrella-glide/internal/sims/glide"
)

// pattern holds the umbrella open for Open ticks, then closed for Closed
// ticks, repeating. Steer chases the nearest coin below the body.
type pattern struct {
	Open   int
	Closed int
	Steer  bool
}

func (p pattern) String() string {
	steer := "straight"
	if p.Steer {
		steer = "steer"
	}
	return fmt.Sprintf("open=%d closed=%d %s", p.Open, p.Closed, steer)
}

func (p pattern) umbrellaAt(tick int) bool {
	period := p.Open + p.Closed
	if period <= 0 || p.Open <= 0 {
		return false
	}
	return tick%period < p.Open
}

type scenarioResult struct {
	pattern pattern
	seed    int64
	ticks   int
	score   int
	coins   int
	stopped bool
}

type tally struct {
	coins    int
	gameOver int
}

func (t *tally) OnScoreUpdate(int)        {}
func (t *tally) OnGameOver(int)           { t.gameOver++ }
func (t *tally) OnCoinCollect(amount int) { t.coins += amount }

func runScenario(cfg glide.Config, p pattern, seed int64, maxTicks int) scenarioResult {
	loop := glide.New(cfg, nil)
	loop.Reset(seed)
	var t tally
	loop.SetListener(&t)

	frame := nominalFrame(cfg)
	tick := 0
	for ; tick < maxTicks && loop.State() != glide.StateStopped; tick++ {
		loop.SetUmbrella(p.umbrellaAt(tick))
		if p.Steer {
			if x, ok := nearestCoinX(loop); ok {
				loop.SetPointerX(x)
			}
		}
		loop.Step(frame)
	}
	return scenarioResult{
		pattern: p,
		seed:    seed,
		ticks:   loop.Ticks(),
		score:   loop.Score(),
		coins:   t.coins,
		stopped: loop.State() == glide.StateStopped,
	}
}

// nominalFrame is the frame time a normalized loop treats as one tick.
func nominalFrame(cfg glide.Config) time.Duration {
	tps := cfg.TPS
	if tps <= 0 {
		tps = core.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

func checkCounts(seeds, workers int) error {
	if seeds < 1 {
		return fmt.Errorf("-seeds must be positive, got %d", seeds)
	}
	if workers < 1 {
		return fmt.Errorf("-workers must be positive, got %d", workers)
	}
	return nil
}

func nearestCoinX(loop *glide.Loop) (float64, bool) {
	y := loop.Player().Y
	best, found := math.Inf(1), false
	var x float64
	for _, c := range loop.Coins() {
		if d := c.Y - y; d >= 0 && d < best {
			best, x, found = d, c.X, true
		}
	}
	return x, found
}

// aggregate is the mean outcome of one pattern across seeds.
type aggregate struct {
	pattern   pattern
	runs      int
	meanTicks float64
	meanScore float64
	meanCoins float64
	survived  int
}

func summarize(results []scenarioResult) []aggregate {
	index := map[pattern]int{}
	var out []aggregate
	for _, r := range results {
		i, ok := index[r.pattern]
		if !ok {
			i = len(out)
			index[r.pattern] = i
			out = append(out, aggregate{pattern: r.pattern})
		}
		a := &out[i]
		a.runs++
		a.meanTicks += float64(r.ticks)
		a.meanScore += float64(r.score)
		a.meanCoins += float64(r.coins)
		if !r.stopped {
			a.survived++
		}
	}
	for i := range out {
		n := float64(out[i].runs)
		out[i].meanTicks /= n
		out[i].meanScore /= n
		out[i].meanCoins /= n
	}
	return out
}
