// SPDX-License-Identifier: MIT

package indian

import "errors"

var (
	// ErrNotFinite indicates a NaN or infinite float input.
	ErrNotFinite = errors.New("indian: number must be finite")

	// ErrNotNumeric indicates text that does not parse as a decimal number.
	ErrNotNumeric = errors.New("indian: not a numeric value")
)
