// SPDX-License-Identifier: MIT
// Package: coursework/series
//
// errors.go — sentinel errors for the series package.
// Callers branch with errors.Is; context is attached with %w.

package series

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates a requested length below 1.
// Usage: if errors.Is(err, ErrBadSize) { /* fix n */ }.
var ErrBadSize = errors.New("series: invalid size/length")

// seriesErrorf prefixes a wrapped error with the generator name, e.g.
// "Walk: n=0: series: invalid size/length".
func seriesErrorf(method, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", method, fmt.Errorf(format, args...))
}
