// SPDX-License-Identifier: MIT
// Package: coursework/series
//
// permutation.go — distinct integer prices 1..n in seeded random order.

package series

// Permutation returns the values 1..n in a seeded random order, matching the
// "distinct projected prices" setting of the minimum-loss exercise.
//
// Complexity: O(n).
func Permutation(n int, opts ...Option) ([]float64, error) {
	if n < 1 {
		return nil, seriesErrorf(MethodPermutation, "n=%d: %w", n, ErrBadSize)
	}

	rng := newSeriesConfig(opts...).random()

	out := make([]float64, n)
	for i, v := range rng.Perm(n) {
		out[i] = float64(v + 1)
	}

	return out, nil
}
