// SPDX-License-Identifier: MIT

package loss

import (
	"math"
	"sort"
)

// seen is a future price together with its 0-based year.
type seen struct {
	price float64
	year  int
}

// Optimized — minimum loss by a right-to-left sweep
//
// Algorithm Outline:
//  1. future = [] kept sorted by (price asc, year asc).
//  2. For i = n-1 .. 0:
//     p = first index in future with price >= prices[i]    (binary search)
//     if p > 0:
//     cand = future[p-1].price     (largest future price below prices[i])
//     q = first index with price >= cand (earliest year at that price)
//     loss = prices[i] - cand; keep it if loss <= best
//     ("<=" because i only decreases: an equal loss now has a smaller buy year)
//     insert (prices[i], i) at p   (before equal prices: i is the smallest year)
//
// For a fixed buy year the cheapest loss is always the largest later price
// below it, so only that candidate needs checking. Rounded subtraction can
// give a lower later price the same loss; the higher price still wins, which
// is the order BruteForce and AllLosses apply too.
//
// Complexity:
//
//	Time   = O(n log n) comparisons + O(n²) worst-case element moves on insert
//	Memory = O(n)
//
// Errors:
//   - ErrNonFinite  — a price is NaN or ±Inf.
//   - ErrNoSolution — no pair loses money.
func Optimized(prices []float64) (Result, error) {
	if err := validatePrices(prices); err != nil {
		return noSolution(), err
	}

	best := noSolution()
	future := make([]seen, 0, len(prices))

	for i := len(prices) - 1; i >= 0; i-- {
		cur := prices[i]
		p := sort.Search(len(future), func(k int) bool { return future[k].price >= cur })

		if p > 0 {
			cand := future[p-1].price
			q := sort.Search(p, func(k int) bool { return future[k].price >= cand })
			// An overflowing difference is not a usable loss; BruteForce skips it too.
			if d := cur - cand; !math.IsInf(d, 1) && d <= best.Loss {
				best = Result{Buy: i + 1, Sell: future[q].year + 1, Loss: d}
			}
		}

		future = append(future, seen{})
		copy(future[p+1:], future[p:])
		future[p] = seen{price: cur, year: i}
	}
	if !best.Found() {
		return best, ErrNoSolution
	}

	return best, nil
}
