package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"sort"
	"sync"
	"time"

	"umbrella-glide/internal/app"
)

type job struct {
	pattern pattern
	seed    int64
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	maxTicks := flag.Int("ticks", 20000, "tick limit per run")
	seeds := flag.Int("seeds", 8, "runs per pattern")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 10, "patterns to print")
	flag.Parse()

	glideCfg := cfg.GlideConfig()
	if err := checkCounts(*seeds, *workers); err != nil {
		log.Fatal(err)
	}

	var patterns []pattern
	for _, open := range []int{0, 5, 10, 20, 40} {
		for _, closed := range []int{0, 5, 10, 20, 40} {
			if open == 0 && closed == 0 {
				continue
			}
			for _, steer := range []bool{false, true} {
				patterns = append(patterns, pattern{Open: open, Closed: closed, Steer: steer})
			}
		}
	}

	fmt.Printf("Sweeping %d patterns x %d seeds (%d workers, %dx%d, coin chance %.3f)\n",
		len(patterns), *seeds, *workers, glideCfg.Width, glideCfg.Height, glideCfg.Params.CoinChance)

	jobs := make(chan job)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				results <- runScenario(glideCfg, j.pattern, j.seed, *maxTicks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, p := range patterns {
			for s := 1; s <= *seeds; s++ {
				jobs <- job{pattern: p, seed: glideCfg.Seed + int64(s)}
			}
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}
	elapsed := time.Since(start)

	aggs := summarize(all)
	sort.Slice(aggs, func(i, j int) bool {
		if aggs[i].meanCoins != aggs[j].meanCoins {
			return aggs[i].meanCoins > aggs[j].meanCoins
		}
		return aggs[i].meanTicks > aggs[j].meanTicks
	})

	fmt.Printf("\nTop %d patterns by coins (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(aggs) && i < *top; i++ {
		a := aggs[i]
		fmt.Printf("%2d) coins=%.2f ticks=%.1f depth=%.1fm survived=%d/%d %s\n",
			i+1, a.meanCoins, a.meanTicks, a.meanScore, a.survived, a.runs, a.pattern)
	}
}
