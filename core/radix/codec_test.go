package radix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIndexZeroIsAllZeroDigit(t *testing.T) {
	a := MustNew("xyz")
	assert.Equal(t, "xxxx", Decode(0, 4, a))
}

// Alphabet {a,b}, width 2, full range.
func TestDecodeBinaryWidthTwo(t *testing.T) {
	a := MustNew("ab")
	want := []string{"aa", "ab", "ba", "bb"}
	for i, w := range want {
		assert.Equal(t, w, Decode(uint64(i), 2, a))
	}
}

// After growth from width 1, index 26 over a 26-ary alphabet is the
// two-symbol numeral "10": second symbol then first.
func TestDecodeFirstIndexAfterGrowth(t *testing.T) {
	a := MustNew("abcdefghijklmnopqrstuvwxyz")
	for i := uint64(0); i < 26; i++ {
		assert.Equal(t, string(a.Symbol(int(i))), Decode(i, 1, a))
	}
	assert.Equal(t, "ba", Decode(26, 2, a))
	assert.Equal(t, "bd", Decode(29, 2, a))
}

func TestRoundTrip(t *testing.T) {
	alphabets := []string{"ab", "abc", "0123456789", "abcdefghijklmnopqrstuvwxyz"}
	for _, s := range alphabets {
		a := MustNew(s)
		for width := 1; width <= 6; width++ {
			count, over := Capacity(a.Size(), width)
			require.False(t, over)
			// Full sweep for small spaces, strided otherwise.
			step := uint64(1)
			if count > 20000 {
				step = count/20000 + 1
			}
			for i := uint64(0); i < count; i += step {
				got, err := Encode(Decode(i, width, a), a)
				require.NoError(t, err)
				require.Equal(t, i, got, "alphabet %q width %d", s, width)
			}
		}
	}
}

// decode(i) must precede decode(i+1) in the alphabet's symbol order.
func TestLexicographicMonotonicity(t *testing.T) {
	for _, s := range []string{"ab", "0123456789"} {
		a := MustNew(s)
		for width := 1; width <= 3; width++ {
			count, _ := Capacity(a.Size(), width)
			prev := Decode(0, width, a)
			for i := uint64(1); i < count; i++ {
				cur := Decode(i, width, a)
				require.Negative(t, strings.Compare(prev, cur), "width %d index %d", width, i)
				prev = cur
			}
		}
	}
}

func TestEncodeRejectsForeignSymbols(t *testing.T) {
	a := MustNew("ab")
	_, err := Encode("aXb", a)
	assert.Error(t, err)
}

func TestEncodeRejectsOverflowingValue(t *testing.T) {
	a := MustNew("ab")
	// 65 binary digits of the highest symbol cannot fit in a uint64.
	_, err := Encode(strings.Repeat("b", 65), a)
	assert.Error(t, err)
}

// Indices past capacity mean the growth policy was skipped; that is a
// programmer error, not a recoverable condition.
func TestDecodePanicsPastCapacity(t *testing.T) {
	a := MustNew("ab")
	assert.Panics(t, func() { Decode(4, 2, a) })
}

func TestAlphabetValidation(t *testing.T) {
	_, err := New("a")
	assert.Error(t, err)

	_, err = New("abca")
	assert.Error(t, err)

	a, err := New("ab")
	require.NoError(t, err)
	assert.Equal(t, uint64(2), a.Size())
	assert.Equal(t, byte('b'), a.Symbol(1))
}
