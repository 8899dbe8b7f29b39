package main

import (
	"fmt"
	"sort"
	"sync"

	"ising/internal/telemetry"
	"ising/pkg/core"
	"ising/pkg/ising"
)

type sweepParams struct {
	size    int
	warmup  int
	samples int
	field   float64
	lattice ising.LatticeType
	initial ising.InitialState
	seed    int64
}

// temperatures returns n evenly spaced points in [tmin, tmax].
func temperatures(tmin, tmax float64, n int) []float64 {
	if n <= 1 {
		return []float64{tmin}
	}
	out := make([]float64, n)
	step := (tmax - tmin) / float64(n-1)
	for i := range out {
		out[i] = tmin + float64(i)*step
	}
	return out
}

// runPoint equilibrates one lattice at temperature t and summarises the
// sampled epochs. Each point derives its own seed so results do not depend on
// worker scheduling.
func runPoint(p sweepParams, index int, t float64) (telemetry.Summary, error) {
	src := core.NewRNG(p.seed + int64(index))
	l, err := ising.New(p.size, float32(t), float32(p.field), p.initial, p.lattice, src)
	if err != nil {
		return telemetry.Summary{}, fmt.Errorf("temperature %.3f: %w", t, err)
	}
	for i := 0; i < p.warmup; i++ {
		l.Epoch()
	}
	records := make([]telemetry.Record, p.samples)
	for i := range records {
		l.Epoch()
		records[i] = telemetry.FromObservables(p.warmup+i+1, l.Measure(), l.LastEpoch())
	}
	return telemetry.Summarize(records, p.size*p.size), nil
}

type pointResult struct {
	index   int
	summary telemetry.Summary
	err     error
}

// sweep runs every temperature on a pool of workers and returns summaries in
// temperature order. progress is called once per finished point.
func sweep(p sweepParams, temps []float64, workers int, progress func(telemetry.Summary)) ([]telemetry.Summary, error) {
	if workers < 1 {
		workers = 1
	}
	jobs := make(chan int)
	results := make(chan pointResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				s, err := runPoint(p, idx, temps[idx])
				results <- pointResult{index: idx, summary: s, err: err}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for idx := range temps {
			jobs <- idx
		}
		close(jobs)
	}()

	var all []pointResult
	var firstErr error
	for res := range results {
		if res.err != nil {
			if firstErr == nil {
				firstErr = res.err
			}
			continue
		}
		if progress != nil {
			progress(res.summary)
		}
		all = append(all, res)
	}
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(all, func(i, j int) bool { return all[i].index < all[j].index })
	out := make([]telemetry.Summary, len(all))
	for i, res := range all {
		out[i] = res.summary
	}
	return out, nil
}
