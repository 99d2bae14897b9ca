// SPDX-License-Identifier: MIT

package intervals

import (
	"fmt"
	"math"
	"strings"
)

// Interval is a positioned span [Left, Right) with an ordered list of labels.
//
// Invariants (checked by New and Validate):
//   - Left and Right are finite.
//   - Left < Right.
//
// Values order is meaningful and is preserved by Merge.
type Interval struct {
	Left   float64
	Right  float64
	Values []string
}

// New builds a validated Interval. The values are copied into a fresh,
// never-nil slice, so New(l, r) carries an empty label list.
//
// Errors:
//   - ErrNonFinite     — left or right is NaN or ±Inf.
//   - ErrInvalidBounds — left >= right.
func New(left, right float64, values ...string) (Interval, error) {
	iv := Interval{Left: left, Right: right, Values: append(make([]string, 0, len(values)), values...)}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}

	return iv, nil
}

// Validate reports whether the record satisfies the Interval invariants.
func (iv Interval) Validate() error {
	if math.IsNaN(iv.Left) || math.IsInf(iv.Left, 0) ||
		math.IsNaN(iv.Right) || math.IsInf(iv.Right, 0) {
		return fmt.Errorf("[%v, %v]: %w", iv.Left, iv.Right, ErrNonFinite)
	}
	if iv.Left >= iv.Right {
		return fmt.Errorf("[%v, %v]: %w", iv.Left, iv.Right, ErrInvalidBounds)
	}

	return nil
}

// Len returns Right - Left.
func (iv Interval) Len() float64 {
	return iv.Right - iv.Left
}

// Clone returns a copy that shares no memory with iv.
func (iv Interval) Clone() Interval {
	out := iv
	if iv.Values != nil {
		out.Values = append(make([]string, 0, len(iv.Values)), iv.Values...)
	}

	return out
}

// String renders the record as "[left, right] values".
func (iv Interval) String() string {
	return fmt.Sprintf("[%v, %v] [%s]", iv.Left, iv.Right, strings.Join(iv.Values, " "))
}
