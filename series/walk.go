// SPDX-License-Identifier: MIT
// Package: coursework/series
//
// walk.go — deterministic price path via discrete-time GBM.
//
// Contract:
//   - Walk(n, opts...) → n prices, prices[0] == start (rounded to tick).
//   - n < 1 ⇒ ErrBadSize; never panics.
//   - O(n) time and memory.
//
// Model, one step per year:
//
//	S_{t+1} = S_t * exp((μ - 0.5σ²) + σ * Z),  Z ~ N(0,1)

package series

import "math"

// Walk returns n prices following a geometric random walk.
func Walk(n int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, seriesErrorf(MethodWalk, "n=%d: %w", n, ErrBadSize)
	}

	cfg := newSeriesConfig(opts...)
	rng := cfg.random()

	driftTerm := cfg.drift - 0.5*cfg.volatility*cfg.volatility

	out := make([]float64, n)
	s := cfg.start
	for t := 0; t < n; t++ {
		out[t] = roundTick(s, cfg.tick)
		s *= math.Exp(driftTerm + cfg.volatility*rng.NormFloat64())
	}

	return out, nil
}

// roundTick snaps x to the nearest positive multiple of tick; tick 0 is a no-op.
func roundTick(x, tick float64) float64 {
	if tick == 0 {
		return x
	}
	k := math.Round(x / tick)
	if k < 1 {
		k = 1
	}

	return k * tick
}
