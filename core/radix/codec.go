// core/radix/codec.go
package radix

import (
	"fmt"

	"github.com/pkg/errors"
)

// AppendDecode appends the width-symbol rendering of index to dst and
// returns the extended slice. Digits are extracted least-significant first
// and placed right to left, so the leftmost position carries the highest
// place value and index 0 renders as width copies of the zero digit.
//
// index must be below Capacity(a.Size(), width); the caller is expected to
// have run the growth policy first. A violation is a programmer error and
// panics rather than producing a truncated string.
func AppendDecode(dst []byte, index uint64, width int, a Alphabet) []byte {
	if c, over := Capacity(a.Size(), width); !over && index >= c {
		panic(fmt.Sprintf("radix: index %d exceeds capacity %d at width %d", index, c, width))
	}
	start := len(dst)
	for i := 0; i < width; i++ {
		dst = append(dst, 0)
	}
	base := a.Size()
	for pos := start + width - 1; pos >= start; pos-- {
		dst[pos] = a.symbols[index%base]
		index /= base
	}
	return dst
}

// Decode is AppendDecode into a fresh string.
func Decode(index uint64, width int, a Alphabet) string {
	return string(AppendDecode(make([]byte, 0, width), index, width, a))
}

// Encode is the inverse of Decode: it reads s as a base-Size numeral and
// returns its index. Symbols outside the alphabet and values past the
// uint64 range are rejected.
func Encode(s string, a Alphabet) (uint64, error) {
	var index uint64
	base := a.Size()
	for i := 0; i < len(s); i++ {
		d, ok := a.Index(s[i])
		if !ok {
			return 0, errors.Errorf("symbol %q at position %d is not in the alphabet", s[i], i)
		}
		hi, over := mulAdd(index, base, uint64(d))
		if over {
			return 0, errors.Errorf("value of %q exceeds the uint64 range", s)
		}
		index = hi
	}
	return index, nil
}

// mulAdd computes x*base+d with overflow detection.
func mulAdd(x, base, d uint64) (uint64, bool) {
	if x > (^uint64(0)-d)/base {
		return 0, true
	}
	return x*base + d, false
}
