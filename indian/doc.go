// SPDX-License-Identifier: MIT

// Package indian formats numbers with Indian digit grouping (lakh/crore).
//
// The rightmost group of the integer part has three digits; every group to
// its left has two:
//
//	Western: 1,234,567,890.123
//	Indian:  1,23,45,67,890.123
//	         ^  ^  ^  ^   ^
//	         |  |  |  |   +-- first group: 3 digits
//	         +--+--+--+------ then 2 digits each
//
// Fractions are never rounded unless WithPlaces asks for it: a float64 is
// rendered with the shortest decimal text that round-trips it, a string keeps
// the digits it was given. Exact integers print without a decimal point.
//
// Decimal arithmetic comes from github.com/shopspring/decimal, so money
// values already held as decimal.Decimal format without a float detour.
package indian
