// SPDX-License-Identifier: MIT

package caesar

// alphabet is the number of letters each case rotates within.
const alphabet = 26

// Normalize reduces any shift into [0,26) using a Euclidean modulo.
//
//	Normalize(3)  == 3
//	Normalize(29) == 3
//	Normalize(-1) == 25
func Normalize(shift int) int {
	// shift%alphabet lies in (-26,26), so adding alphabet never overflows.
	return (shift%alphabet + alphabet) % alphabet
}

// Encode rotates every ASCII letter of text forward by shift positions.
//
// Complexity: O(len(text)) time, one allocation.
func Encode(text string, shift int) string {
	return rotateString(text, Normalize(shift))
}

// Decode reverses Encode for the same shift.
func Decode(text string, shift int) string {
	// Inverse taken after normalization: -math.MinInt would overflow.
	return rotateString(text, (alphabet-Normalize(shift))%alphabet)
}

// Rotate applies the cipher to a single rune. Non-letters are returned as is.
func Rotate(r rune, shift int) rune {
	if r < 0 || r >= 0x80 {
		return r
	}

	return rune(rotateByte(byte(r), Normalize(shift)))
}

// Candidates returns every possible decoding of text; element k is
// Decode(text, k). Useful when the shift is unknown.
func Candidates(text string) [alphabet]string {
	var out [alphabet]string
	for k := range out {
		out[k] = Decode(text, k)
	}

	return out
}

// rotateString works on bytes: ASCII letters are single bytes and every byte
// of a multi-byte UTF-8 sequence is >= 0x80, so non-letters stay intact.
func rotateString(text string, n int) string {
	if n == 0 {
		return text
	}
	buf := []byte(text)
	for i, c := range buf {
		buf[i] = rotateByte(c, n)
	}

	return string(buf)
}

// rotateByte rotates c by n (already in [0,26)) inside its case.
func rotateByte(c byte, n int) byte {
	switch {
	case c >= 'A' && c <= 'Z':
		return 'A' + byte((int(c-'A')+n)%alphabet)
	case c >= 'a' && c <= 'z':
		return 'a' + byte((int(c-'a')+n)%alphabet)
	default:
		return c
	}
}
