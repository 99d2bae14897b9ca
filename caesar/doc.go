// SPDX-License-Identifier: MIT

// Package caesar implements the Caesar rotation cipher over ASCII letters.
//
// Each letter is replaced by the letter a fixed number of positions further
// along its own alphabet, wrapping from Z back to A:
//
//	shift 3:  A B C … X Y Z
//	          ↓ ↓ ↓   ↓ ↓ ↓
//	          D E F … A B C
//
// Case is kept. Anything that is not an ASCII letter (digits, punctuation,
// whitespace, non-ASCII text, even invalid UTF-8) passes through untouched,
// byte for byte.
//
// Shifts are plain ints. Any value is accepted and reduced with a Euclidean
// modulo into [0,26), so -1 and 25 encode identically and
// Decode(Encode(s, k), k) == s holds for every k, math.MinInt included.
package caesar
