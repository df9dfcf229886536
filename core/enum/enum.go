// core/enum/enum.go
package enum

import (
	"io"

	"github.com/pkg/errors"

	"seqgen-core/radix"
)

// Sink receives the enumerated strings. Both *bufio.Writer and
// *bytes.Buffer satisfy it; the enumerator never assumes a filesystem.
type Sink interface {
	io.Writer
	io.ByteWriter
}

// ErrArithmeticOverflow reports an enumeration whose total line count does
// not fit in a uint64. It is detected before anything is written.
var ErrArithmeticOverflow = errors.New("enumeration count exceeds the uint64 range")

// Enumerate writes every width-symbol string over a, one per line in
// increasing index order, and returns the number of lines written. A write
// failure aborts immediately; lines already emitted stay emitted.
func Enumerate(a radix.Alphabet, width int, sink Sink) (uint64, error) {
	count, overflowed := radix.Capacity(a.Size(), width)
	if overflowed {
		return 0, ErrArithmeticOverflow
	}
	buf := make([]byte, 0, width)
	for i := uint64(0); i < count; i++ {
		buf = radix.AppendDecode(buf[:0], i, width, a)
		if _, err := sink.Write(buf); err != nil {
			return i, errors.Wrap(err, "write line")
		}
		if err := sink.WriteByte('\n'); err != nil {
			return i, errors.Wrap(err, "write line terminator")
		}
	}
	return count, nil
}
