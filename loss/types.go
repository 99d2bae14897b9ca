// SPDX-License-Identifier: MIT

package loss

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	// ErrNoSolution indicates that no year is followed by a lower price.
	ErrNoSolution = errors.New("loss: no loss-making pair exists")

	// ErrNonFinite indicates a NaN or infinite price.
	ErrNonFinite = errors.New("loss: prices must be finite")

	// ErrUnknownStrategy indicates an unsupported Options.Strategy.
	ErrUnknownStrategy = errors.New("loss: unknown strategy")
)

// Result is one (buy, sell, loss) triple. Buy and Sell are 1-indexed years.
//
// The zero-pair Result{Loss: +Inf} means "no solution"; check Found (or the
// returned error) before reading Buy and Sell.
type Result struct {
	Buy  int
	Sell int
	Loss float64
}

// noSolution is returned together with ErrNoSolution.
func noSolution() Result {
	return Result{Loss: math.Inf(1)}
}

// Found reports whether r names a real pair.
func (r Result) Found() bool {
	return r.Buy > 0 && r.Sell > r.Buy && !math.IsInf(r.Loss, 1)
}

// String renders "buy 2 sell 5 loss 2" or "no solution".
func (r Result) String() string {
	if !r.Found() {
		return "no solution"
	}

	return fmt.Sprintf("buy %d sell %d loss %v", r.Buy, r.Sell, r.Loss)
}

// Strategy selects the search algorithm used by Solve.
type Strategy int

const (
	// OptimizedStrategy: right-to-left sweep with binary search (default).
	OptimizedStrategy Strategy = iota

	// BruteForceStrategy: exhaustive pair scan.
	BruteForceStrategy
)

// String returns the name accepted by ParseStrategy.
func (s Strategy) String() string {
	switch s {
	case OptimizedStrategy:
		return "optimized"
	case BruteForceStrategy:
		return "bruteforce"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "optimized" / "bruteforce" (case-insensitive) to a
// Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "optimized", "optimised", "fast":
		return OptimizedStrategy, nil
	case "bruteforce", "brute-force", "brute":
		return BruteForceStrategy, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnknownStrategy)
	}
}

// Options configures Solve.
//
// Fields:
//   - Strategy — BruteForceStrategy or OptimizedStrategy.
type Options struct {
	Strategy Strategy
}

// DefaultOptions selects the optimized sweep.
func DefaultOptions() Options {
	return Options{Strategy: OptimizedStrategy}
}
