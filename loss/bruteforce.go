// SPDX-License-Identifier: MIT

package loss

// BruteForce examines every pair i < j with prices[i] > prices[j] and keeps
// the smallest difference. Equal differences rank by the pair order shared
// with Optimized and AllLosses: smallest buy year, then the higher sell
// price, then the smallest sell year. Two different sell prices can only
// give the same difference when the subtraction rounds, e.g.
// 1e17-1 == 1e17-2.
//
// Complexity: O(n²) time, O(1) memory.
//
// Errors:
//   - ErrNonFinite  — a price is NaN or ±Inf.
//   - ErrNoSolution — no pair loses money.
func BruteForce(prices []float64) (Result, error) {
	if err := validatePrices(prices); err != nil {
		return noSolution(), err
	}

	best := noSolution()
	n := len(prices)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if prices[i] <= prices[j] {
				continue
			}
			d := prices[i] - prices[j]
			// Within one buy year, a rounded tie goes to the higher sell price.
			if d < best.Loss || (d == best.Loss && best.Buy == i+1 && prices[j] > prices[best.Sell-1]) {
				best = Result{Buy: i + 1, Sell: j + 1, Loss: d}
			}
		}
	}
	if !best.Found() {
		return best, ErrNoSolution
	}

	return best, nil
}
