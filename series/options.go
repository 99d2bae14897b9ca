// SPDX-License-Identifier: MIT
// Package: coursework/series
//
// options.go — functional options. Constructors validate and panic on
// meaningless input; generators themselves never panic.

package series

import (
	"fmt"
	"math"
	"math/rand"
)

// Option customizes a generator.
type Option func(*seriesConfig)

// WithSeed fixes the random stream. 0 selects the package default seed.
func WithSeed(seed int64) Option {
	return func(c *seriesConfig) {
		c.seed = seed
	}
}

// WithRand supplies an explicit RNG; it takes precedence over WithSeed.
// Panics on nil. A *rand.Rand must not be shared across goroutines.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("series: WithRand(nil)")
	}

	return func(c *seriesConfig) {
		c.rng = r
	}
}

// WithStart sets the first price of a Walk. Panics unless s0 > 0 and finite.
func WithStart(s0 float64) Option {
	if !(s0 > 0) || math.IsInf(s0, 0) {
		panic(fmt.Sprintf("series: WithStart(%v)", s0))
	}

	return func(c *seriesConfig) {
		c.start = s0
	}
}

// WithDrift sets the per-step drift μ of a Walk. Panics on NaN/Inf.
func WithDrift(mu float64) Option {
	if math.IsNaN(mu) || math.IsInf(mu, 0) {
		panic(fmt.Sprintf("series: WithDrift(%v)", mu))
	}

	return func(c *seriesConfig) {
		c.drift = mu
	}
}

// WithVolatility sets the per-step volatility σ of a Walk. Panics unless
// σ >= 0 and finite.
func WithVolatility(sigma float64) Option {
	if !(sigma >= 0) || math.IsInf(sigma, 0) {
		panic(fmt.Sprintf("series: WithVolatility(%v)", sigma))
	}

	return func(c *seriesConfig) {
		c.volatility = sigma
	}
}

// WithTick rounds every Walk price to the nearest multiple of tick (never
// below one tick). Coarse ticks produce repeated prices. Panics unless
// tick > 0 and finite.
func WithTick(tick float64) Option {
	if !(tick > 0) || math.IsInf(tick, 0) {
		panic(fmt.Sprintf("series: WithTick(%v)", tick))
	}

	return func(c *seriesConfig) {
		c.tick = tick
	}
}
