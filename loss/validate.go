// SPDX-License-Identifier: MIT

package loss

import (
	"fmt"
	"math"
)

// validatePrices rejects NaN and ±Inf, naming the 1-indexed year.
//
// Complexity: O(n).
func validatePrices(prices []float64) error {
	for i, p := range prices {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return fmt.Errorf("year %d (%v): %w", i+1, p, ErrNonFinite)
		}
	}

	return nil
}
