// SPDX-License-Identifier: MIT

package indian

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders x with Indian grouping.
//
//	Format(123456.7891) → "1,23,456.7891"
//	Format(-123456.78)  → "-1,23,456.78"
//	Format(123)         → "123"
//
// Errors:
//   - ErrNotFinite — x is NaN or ±Inf.
func Format(x float64, opts ...Option) (string, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return "", fmt.Errorf("%v: %w", x, ErrNotFinite)
	}

	return FormatDecimal(decimal.NewFromFloat(x), opts...), nil
}

// FormatDecimal renders d with Indian grouping. Without WithPlaces the
// fraction is printed with trailing zeros trimmed, exactly as d.String().
func FormatDecimal(d decimal.Decimal, opts ...Option) string {
	cfg := newFormatConfig(opts...)

	abs := d.Abs()
	var text string
	if cfg.places >= 0 {
		abs = abs.Round(int32(cfg.places))
		text = abs.StringFixed(int32(cfg.places))
	} else {
		text = abs.String()
	}

	// Rounding may have collapsed a tiny negative to zero: no "-0.00".
	neg := d.Sign() < 0 && !abs.IsZero()

	intPart, frac, _ := strings.Cut(text, ".")

	return assemble(neg, cfg.symbol, intPart, frac)
}

// FormatString parses s as a decimal number and renders it with Indian
// grouping. Plain literals ("-1234.5000") keep their fractional digits as
// written, trailing zeros included; other accepted forms such as "1.5e6" are
// normalized first.
//
// Errors:
//   - ErrNotNumeric — s is not a decimal number.
func FormatString(s string, opts ...Option) (string, error) {
	trimmed := strings.TrimSpace(s)
	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return "", fmt.Errorf("%q: %w", s, ErrNotNumeric)
	}

	cfg := newFormatConfig(opts...)
	if cfg.places >= 0 || !isPlainLiteral(trimmed) {
		return FormatDecimal(d, opts...), nil
	}

	body := strings.TrimLeft(trimmed, "+-")
	intPart, frac, _ := strings.Cut(body, ".")
	intPart = strings.TrimLeft(intPart, "0")
	if intPart == "" {
		intPart = "0"
	}

	return assemble(d.Sign() < 0, cfg.symbol, intPart, frac), nil
}

// Group inserts Indian grouping commas into an unsigned digit string.
//
//	Group("123")        → "123"
//	Group("123456")     → "1,23,456"
//	Group("1234567890") → "1,23,45,67,890"
//
// Complexity: O(len(digits)).
func Group(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	head := digits[:n-3] // everything left of the 3-digit group
	var sb strings.Builder
	sb.Grow(n + n/2)

	// A leading group of one digit when the head has odd length.
	lead := len(head) % 2
	if lead == 1 {
		sb.WriteString(head[:1])
	}
	for i := lead; i < len(head); i += 2 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(head[i : i+2])
	}
	sb.WriteByte(',')
	sb.WriteString(digits[n-3:])

	return sb.String()
}

// assemble joins sign, symbol, grouped integer digits and the fraction.
func assemble(neg bool, symbol, intPart, frac string) string {
	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}
	sb.WriteString(symbol)
	sb.WriteString(Group(intPart))
	if frac != "" {
		sb.WriteByte('.')
		sb.WriteString(frac)
	}

	return sb.String()
}

// isPlainLiteral matches [+-]digits[.digits].
func isPlainLiteral(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	intPart, frac, hasDot := strings.Cut(s, ".")
	if intPart == "" || !allDigits(intPart) {
		return false
	}
	if hasDot && (frac == "" || !allDigits(frac)) {
		return false
	}

	return true
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
