// SPDX-License-Identifier: MIT

package intervals

import "errors"

// Every message is prefixed with "intervals: ". Merge wraps these with the
// offending record position ("a[2] [l, r]: ..."); match them with errors.Is.
var (
	// ErrNonFinite indicates a NaN or infinite bound.
	ErrNonFinite = errors.New("intervals: bounds must be finite")

	// ErrInvalidBounds indicates left >= right.
	ErrInvalidBounds = errors.New("intervals: left bound must be < right bound")
)
