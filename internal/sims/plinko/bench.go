package plinko

import (
	"sync"

	prng "plinkotone/pkg/core"
)

// BenchFrameDT is the frame time used by headless runs.
const BenchFrameDT = 1.0 / 60

// BenchResult summarizes one headless run.
type BenchResult struct {
	Seed         int64
	Frames       int
	Drops        int
	FinalMarbles int
	Stats        Stats
}

// BenchRun plays frames of a session, dropping a marble at a random x near
// the top every dropEvery frames. Identical inputs give identical results.
func BenchRun(cfg Config, frames, dropEvery int) BenchResult {
	if frames <= 0 {
		frames = 600
	}
	if dropEvery <= 0 {
		dropEvery = 10
	}
	w, err := NewWithConfig(cfg)
	if err != nil && w == nil {
		return BenchResult{Seed: cfg.Seed}
	}
	dropper := prng.NewRNG(cfg.Seed ^ 0x5f3759df)
	res := BenchResult{Seed: cfg.Seed, Frames: frames}
	for f := 0; f < frames; f++ {
		if f%dropEvery == 0 {
			x := dropper.Range(0.1, 0.9) * float64(w.cfg.Width)
			if w.Drop(x, w.Radii().Marble) {
				res.Drops++
			}
		}
		w.Step(BenchFrameDT)
	}
	res.FinalMarbles = len(w.Marbles())
	res.Stats = w.Stats()
	return res
}

// BenchSweep runs one BenchRun per seed on up to workers goroutines. Results
// keep the order of seeds.
func BenchSweep(base Config, seeds []int64, frames, dropEvery, workers int) []BenchResult {
	if workers <= 0 {
		workers = 1
	}
	results := make([]BenchResult, len(seeds))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)

	for idx, seed := range seeds {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, s int64) {
			defer wg.Done()
			cfg := base
			cfg.Seed = s
			results[i] = BenchRun(cfg, frames, dropEvery)
			<-sem
		}(idx, seed)
	}

	wg.Wait()
	return results
}
