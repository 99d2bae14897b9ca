// SPDX-License-Identifier: MIT

package intervals

import "fmt"

// DefaultThreshold is the overlap ratio that must be exceeded for two
// records to merge ("more than half").
const DefaultThreshold = 0.5

// Option customizes Merge.
type Option func(*mergeConfig)

// mergeConfig is resolved once per Merge call.
type mergeConfig struct {
	threshold float64
	inclusive bool
}

// newMergeConfig applies opts in order over the defaults.
func newMergeConfig(opts ...Option) mergeConfig {
	cfg := mergeConfig{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithThreshold sets the overlap ratio that must be strictly exceeded for a
// merge. Panics unless 0 < t <= 1.
func WithThreshold(t float64) Option {
	if !(t > 0 && t <= 1) {
		panic(fmt.Sprintf("intervals: WithThreshold(%v)", t))
	}

	return func(c *mergeConfig) {
		c.threshold = t
	}
}

// WithInclusive makes a ratio equal to the threshold count as a merge
// (ratio >= threshold instead of ratio > threshold).
func WithInclusive() Option {
	return func(c *mergeConfig) {
		c.inclusive = true
	}
}

// exceeds applies the configured comparison.
func (c mergeConfig) exceeds(ratio float64) bool {
	if c.inclusive {
		return ratio > 0 && ratio >= c.threshold
	}

	return ratio > c.threshold
}
