// core/radix/capacity.go
package radix

import "math"

// Capacity returns base**width, the number of distinct width-symbol strings
// over a base-symbol alphabet. The multiply chain is checked before each
// step; on overflow the result saturates at MaxUint64 and overflowed is
// true. It never wraps. width 0 yields 1.
func Capacity(base uint64, width int) (value uint64, overflowed bool) {
	value = 1
	for i := 0; i < width; i++ {
		if value > math.MaxUint64/base {
			return math.MaxUint64, true
		}
		value *= base
	}
	return value, false
}
