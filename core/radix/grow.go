// core/radix/grow.go
package radix

import "github.com/pkg/errors"

// WidthCeiling is the hard cap on how far the growth policy will widen a
// representation. Hitting it means the requested index is absurd for any
// practical corpus.
const WidthCeiling = 1024

var (
	// ErrCapacityExceeded reports an index outside the representable range
	// at the current width while growth is disabled.
	ErrCapacityExceeded = errors.New("sequence capacity exceeded at current width")

	// ErrWidthCeiling reports that growth would push the width past
	// WidthCeiling.
	ErrWidthCeiling = errors.New("required width exceeds the growth ceiling")
)

// Grow returns the smallest width >= width whose capacity covers index.
// When index already fits, width comes back unchanged. When it does not
// and allowGrowth is false, Grow fails with ErrCapacityExceeded; the width
// only ever moves upward. Capacity is recomputed with saturation at every
// step, matching the promote-only-when-needed contract.
func Grow(index uint64, width int, base uint64, allowGrowth bool) (int, error) {
	c, _ := Capacity(base, width)
	if index < c {
		return width, nil
	}
	if !allowGrowth {
		return width, ErrCapacityExceeded
	}
	for index >= c {
		if width >= WidthCeiling {
			return width, ErrWidthCeiling
		}
		width++
		c, _ = Capacity(base, width)
	}
	return width, nil
}
