// SPDX-License-Identifier: MIT
// Package: coursework/series
//
// config.go — resolved generator knobs and their deterministic defaults.

package series

import "math/rand"

// Generator names used as error prefixes.
const (
	MethodWalk        = "Walk"
	MethodPermutation = "Permutation"
)

// Deterministic defaults (named, no magic numbers).
const (
	defaultSeed       = 1      // stream used when no seed/rng is given or seed==0
	defaultStart      = 100.0  // initial price S0 (>0)
	defaultDrift      = 0.0005 // per-step drift μ
	defaultVolatility = 0.02   // per-step volatility σ (≥0)
	defaultTick       = 0.0    // 0 → no rounding
)

// seriesConfig aggregates every knob. It is passed by value.
type seriesConfig struct {
	rng        *rand.Rand
	seed       int64
	start      float64
	drift      float64
	volatility float64
	tick       float64
}

// newSeriesConfig applies opts in order over the defaults.
// Complexity: O(len(opts)).
func newSeriesConfig(opts ...Option) seriesConfig {
	cfg := seriesConfig{
		seed:       defaultSeed,
		start:      defaultStart,
		drift:      defaultDrift,
		volatility: defaultVolatility,
		tick:       defaultTick,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// random returns cfg.rng when set, else a fresh stream from cfg.seed.
// seed==0 maps to defaultSeed so the zero value stays reproducible.
func (c seriesConfig) random() *rand.Rand {
	if c.rng != nil {
		return c.rng
	}
	s := c.seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}
