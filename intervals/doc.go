// SPDX-License-Identifier: MIT

// Package intervals merges two collections of positioned, labelled intervals
// by overlap ratio.
//
// 🚀 What does it do?
//
//	Every record is a half-open span [Left, Right) carrying an ordered list of
//	labels. Two records are merged when their intersection covers more than
//	half of EITHER record:
//
//	  A: [1 ─────── 5)            values: A, B
//	  D:     [3 ─────── 8)        values: D, E
//	  ∩:     [3 ─── 5)  → 2/4 = 0.5 of A, 2/5 = 0.4 of D → no merge at 0.5
//
//	  A: [1 ─────── 5)
//	  X:   [2 ───── 5)            2..5 covers 3/3 of X → merged into A
//
//	The merged record keeps the bounds of the record that comes first in
//	left-bound order and appends the absorbed labels after its own.
//
// ✨ Key properties:
//   - output is sorted by Left (stable; a-records before b-records on ties)
//   - no two output records overlap by more than the threshold (any pair)
//   - labels keep their cumulative left-to-right absorption order
//   - inputs are never mutated
//
// ⚙️ Usage:
//
//	a := []intervals.Interval{{Left: 1, Right: 5, Values: []string{"A", "B"}}}
//	b := []intervals.Interval{{Left: 3, Right: 8, Values: []string{"D", "E"}}}
//	merged, err := intervals.Merge(a, b)
//
// Performance:
//
//   - Time:   O(n²) worst case (every record rescans the tail)
//   - Memory: O(n)
package intervals
