// SPDX-License-Identifier: MIT

package loss

import (
	"cmp"
	"fmt"
	"slices"
)

// Solve validates prices and routes to the strategy chosen in opts.
//
// Errors: ErrUnknownStrategy, plus those of BruteForce / Optimized.
func Solve(prices []float64, opts Options) (Result, error) {
	switch opts.Strategy {
	case OptimizedStrategy:
		return Optimized(prices)
	case BruteForceStrategy:
		return BruteForce(prices)
	default:
		return noSolution(), fmt.Errorf("%v: %w", opts.Strategy, ErrUnknownStrategy)
	}
}

// AllLosses lists every loss-making (buy, sell) pair sorted by ascending
// loss. Equal losses order by buy year, then by the higher sell price, then
// by sell year. A series that never drops yields an empty slice and no
// error; the first element, when present, equals BruteForce's answer.
//
// Complexity: O(n² log n) time, O(n²) memory. Meant for reports, not speed.
//
// Errors:
//   - ErrNonFinite — a price is NaN or ±Inf.
func AllLosses(prices []float64) ([]Result, error) {
	if err := validatePrices(prices); err != nil {
		return nil, err
	}

	var out []Result
	for i := 0; i < len(prices); i++ {
		for j := i + 1; j < len(prices); j++ {
			if prices[i] > prices[j] {
				out = append(out, Result{Buy: i + 1, Sell: j + 1, Loss: prices[i] - prices[j]})
			}
		}
	}

	slices.SortFunc(out, func(a, b Result) int {
		return comparePairs(prices, a, b)
	})

	return out, nil
}

// comparePairs is the ranking every strategy agrees on: loss ascending, buy
// year ascending, sell price descending, sell year ascending.
func comparePairs(prices []float64, a, b Result) int {
	if c := cmp.Compare(a.Loss, b.Loss); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Buy, b.Buy); c != 0 {
		return c
	}
	if c := cmp.Compare(prices[b.Sell-1], prices[a.Sell-1]); c != 0 {
		return c
	}

	return cmp.Compare(a.Sell, b.Sell)
}
