// SPDX-License-Identifier: MIT

// Package loss finds the cheapest forced loss in a price series.
//
// 🚀 The problem
//
//	A buyer must purchase in one year and sell in a LATER year, and must do
//	so at a loss. Which pair (buy, sell) loses the least?
//
//	  price = [20, 15, 7, 2, 13]
//	  years =   1   2  3  4   5
//
//	  buy year 2 at 15, sell year 5 at 13 → loss 2   (the minimum)
//
// ✨ Strategies (identical results, see Solve):
//   - BruteForce — every pair, O(n²) time, O(1) memory
//   - Optimized  — one right-to-left pass over a sorted slice of future
//     prices with binary search, O(n log n) comparisons
//
// Ties on the minimal loss resolve to the smallest buy year, then the higher
// sell price (distinct prices tie only when the subtraction rounds), then
// the smallest sell year, in both strategies.
//
// When no year is followed by a strictly lower price (non-decreasing series,
// or fewer than two prices) there is no answer: the Result carries
// Loss = +Inf and the error is ErrNoSolution. Years are 1-indexed.
//
// ⚙️ Usage:
//
//	res, err := loss.Solve(prices, loss.DefaultOptions())
//	if errors.Is(err, loss.ErrNoSolution) {
//	  // prices never drop
//	}
//	fmt.Println(res.Buy, res.Sell, res.Loss)
package loss
