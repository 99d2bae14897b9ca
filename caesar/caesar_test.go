package caesar_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/coursework/caesar"
)

func TestEncode_KnownVectors(t *testing.T) {
	cases := []struct {
		plain string
		shift int
		want  string
	}{
		{"Hello World!", 3, "Khoor Zruog!"},
		{"ABCDEFGHIJKLMNOPQRSTUVWXYZ", 1, "BCDEFGHIJKLMNOPQRSTUVWXYZA"},
		{"The quick brown fox jumps over the lazy dog", 13, "Gur dhvpx oebja sbk whzcf bire gur ynml qbt"},
		{"Programming is fun!", 5, "Uwtlwfrrnsl nx kzs!"},
		{"xyz", -3, "uvw"},
		{"abc", 29, "def"},
		{"", 7, ""},
	}
	for _, tc := range cases {
		t.Run(tc.plain, func(t *testing.T) {
			got := caesar.Encode(tc.plain, tc.shift)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.plain, caesar.Decode(got, tc.shift))
		})
	}
}

func TestNormalize(t *testing.T) {
	cases := map[int]int{
		0: 0, 3: 3, 25: 25, 26: 0, 29: 3, -1: 25, -26: 0, -27: 25,
		math.MaxInt: math.MaxInt % 26,
	}
	for in, want := range cases {
		assert.Equal(t, want, caesar.Normalize(in), "Normalize(%d)", in)
	}

	got := caesar.Normalize(math.MinInt)
	assert.GreaterOrEqual(t, got, 0)
	assert.Less(t, got, 26)
}

// TestEncode_NonLettersUnchanged covers digits, punctuation, non-ASCII runes
// and bytes that are not valid UTF-8.
func TestEncode_NonLettersUnchanged(t *testing.T) {
	in := "0123456789 !?.,;:-_\t\n€ üñí 日本語 \xff\xfe"
	for shift := -30; shift <= 30; shift++ {
		assert.Equal(t, in, caesar.Encode(in, shift), "shift %d", shift)
	}

	mixed := caesar.Encode("Zürich 2024", 1)
	assert.Equal(t, "Aüsjdi 2024", mixed)
}

// TestRoundTrip_Random checks Decode(Encode(s,k),k) == s on seeded input,
// including the extreme int shifts.
func TestRoundTrip_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	pool := []rune("abcxyzABCXYZ 019!é語ÿ")
	shifts := []int{math.MinInt, math.MinInt + 1, math.MaxInt, -26, 0, 26}

	for i := 0; i < 500; i++ {
		n := rng.Intn(40)
		rs := make([]rune, n)
		for j := range rs {
			rs[j] = pool[rng.Intn(len(pool))]
		}
		s := string(rs)
		k := rng.Int() - rng.Int()
		if i < len(shifts) {
			k = shifts[i]
		}

		enc := caesar.Encode(s, k)
		require.Equal(t, s, caesar.Decode(enc, k), "shift %d text %q", k, s)
		require.Equal(t, len(s), len(enc))
	}
}

func TestRotate(t *testing.T) {
	assert.Equal(t, 'D', caesar.Rotate('A', 3))
	assert.Equal(t, 'a', caesar.Rotate('z', 1))
	assert.Equal(t, '7', caesar.Rotate('7', 5))
	assert.Equal(t, 'é', caesar.Rotate('é', 5))
	assert.Equal(t, rune(-1), caesar.Rotate(-1, 5))
}

func TestCandidates(t *testing.T) {
	all := caesar.Candidates("Khoor Zruog!")
	assert.Equal(t, "Khoor Zruog!", all[0])
	assert.Equal(t, "Hello World!", all[3])
	for k, s := range all {
		assert.Equal(t, "Khoor Zruog!", caesar.Encode(s, k))
	}
}
