// SPDX-License-Identifier: MIT

package intervals

import (
	"fmt"
	"math"
	"slices"
)

// Merge — combine two interval collections by overlap ratio
//
// Description:
//
//	Merge concatenates a and b, orders the records by Left and folds every
//	record into the first earlier record it overlaps by more than the
//	threshold (default 0.5). The surviving record keeps its own bounds and
//	gains the absorbed labels after its own.
//
//	"More than" is strict: an overlap of exactly half does not merge, so
//	[1,5] and [3,8] (2 of 4 units of [1,5]) stay apart by default.
//	WithInclusive turns the boundary into a merge and folds them together.
//
// Algorithm Outline:
//  1. Validate every record of a, then of b.
//  2. w = clone(a) ++ clone(b); stable-sort w by Left.
//     Equal Left keeps input order: a-records first, then b-records.
//  3. For i = 0..len(w)-1:
//     cur = w[i]; j = i+1
//     while j < len(w):
//     if ratio(cur, w[j]) exceeds threshold:
//     cur.Values += w[j].Values; delete w[j]   (j stays: slice shrank)
//     else j++
//     emit cur
//
// Because cur never changes bounds, after step 3 finishes for i no later
// record overlaps it, and it did not overlap any earlier record when those
// were emitted. The result is therefore a fixpoint over ALL pairs.
//
// Complexity:
//
//	Time   = O(n²) worst case, n = len(a)+len(b)
//	Memory = O(n + total values)
//
// Errors:
//   - ErrNonFinite, ErrInvalidBounds — wrapped with "a[i]" / "b[i]".
func Merge(a, b []Interval, opts ...Option) ([]Interval, error) {
	cfg := newMergeConfig(opts...)

	if err := validateAll("a", a); err != nil {
		return nil, err
	}
	if err := validateAll("b", b); err != nil {
		return nil, err
	}

	w := make([]Interval, 0, len(a)+len(b))
	for _, iv := range a {
		w = append(w, iv.Clone())
	}
	for _, iv := range b {
		w = append(w, iv.Clone())
	}

	slices.SortStableFunc(w, byLeft)

	out := make([]Interval, 0, len(w))
	for i := 0; i < len(w); i++ {
		cur := w[i]
		for j := i + 1; j < len(w); {
			if cfg.exceeds(OverlapRatio(cur, w[j])) {
				cur.Values = append(cur.Values, w[j].Values...)
				w = slices.Delete(w, j, j+1)

				continue
			}
			j++
		}
		out = append(out, cur)
	}

	return out, nil
}

// OverlapRatio returns the share of the SMALLER-covered record that lies in
// the intersection of x and y: max(|x∩y|/|x|, |x∩y|/|y|). Disjoint or
// touching records yield 0.
func OverlapRatio(x, y Interval) float64 {
	inter := math.Min(x.Right, y.Right) - math.Max(x.Left, y.Left)
	if inter <= 0 {
		return 0
	}

	return math.Max(inter/x.Len(), inter/y.Len())
}

// FindOverlap returns the first pair (i < j) of records in xs whose overlap
// ratio is strictly greater than threshold. ok is false when none exists,
// which is the guarantee Merge gives for its own threshold.
//
// Complexity: O(n²).
func FindOverlap(xs []Interval, threshold float64) (i, j int, ok bool) {
	for i = 0; i < len(xs); i++ {
		for j = i + 1; j < len(xs); j++ {
			if OverlapRatio(xs[i], xs[j]) > threshold {
				return i, j, true
			}
		}
	}

	return -1, -1, false
}

// Sorted reports whether xs is in non-decreasing Left order.
func Sorted(xs []Interval) bool {
	return slices.IsSortedFunc(xs, byLeft)
}

// validateAll checks each record and tags the first failure with its slot.
func validateAll(name string, xs []Interval) error {
	for i, iv := range xs {
		if err := iv.Validate(); err != nil {
			return fmt.Errorf("%s[%d] %w", name, i, err)
		}
	}

	return nil
}

// byLeft orders records by Left only, so stable sorts keep input order on ties.
func byLeft(x, y Interval) int {
	switch {
	case x.Left < y.Left:
		return -1
	case x.Left > y.Left:
		return 1
	default:
		return 0
	}
}
