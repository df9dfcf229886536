// core/bankfile/driver.go
package bankfile

import (
	"io"

	"github.com/pkg/errors"

	"seqgen-core/radix"
	"seqgen-core/sequence"
)

// Plan fixes the shape of one bank's output.
type Plan struct {
	Registers         uint64
	ValuesPerRegister uint64
	// RowBudget is the maximum number of rows per output unit, >= 1.
	// Clamping to an operational range is the caller's concern; the driver
	// honors whatever it is handed so partitioning stays testable at any
	// scale.
	RowBudget uint64
}

// TotalRows returns Registers × ValuesPerRegister, failing instead of
// wrapping when the product does not fit.
func (p Plan) TotalRows() (uint64, error) {
	if p.Registers == 0 || p.ValuesPerRegister == 0 {
		return 0, nil
	}
	total := p.Registers * p.ValuesPerRegister
	if total/p.ValuesPerRegister != p.Registers {
		return 0, errors.Errorf("bank row count overflows: %d registers x %d values", p.Registers, p.ValuesPerRegister)
	}
	return total, nil
}

// UnitCount returns how many output units the plan needs: ceil(rows/budget).
func (p Plan) UnitCount() (uint64, error) {
	total, err := p.TotalRows()
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 1, nil
	}
	return (total + p.RowBudget - 1) / p.RowBudget, nil
}

// UnitOpener supplies the writer for each output unit of a bank. part is
// zero-based; multipart reports whether the bank spans more than one unit,
// which backings may use for naming. The driver keeps at most one unit
// open at a time and closes each on the success path; after a write
// failure the open handle is abandoned as-is.
type UnitOpener interface {
	OpenUnit(part uint64, multipart bool) (io.WriteCloser, error)
}

// Generator maps counter positions to strings and drives the partitioned
// emission of banks. It holds no per-bank state of its own; everything
// that advances lives in Counters.
type Generator struct {
	Alphabet    radix.Alphabet
	Counters    *sequence.CounterSet
	AllowGrowth bool
}

// GenerateBank walks one bank of the plan and streams its rows into
// size-bounded units obtained from open. It returns the number of units
// written. Any failure, whether codec capacity, width ceiling, or sink
// write, is fatal and propagates immediately without retry or rollback.
func (g *Generator) GenerateBank(bank uint64, plan Plan, open UnitOpener) (uint64, error) {
	if plan.RowBudget == 0 {
		return 0, errors.New("row budget must be at least 1")
	}
	total, err := plan.TotalRows()
	if err != nil {
		return 0, err
	}
	multipart := total > plan.RowBudget

	part := uint64(0)
	unit, err := open.OpenUnit(part, multipart)
	if err != nil {
		return 0, err
	}
	if err := WriteHeader(unit, bank); err != nil {
		return 0, errors.Wrap(err, "write bank header")
	}

	g.Counters.StartBank()
	remaining := total
	rowsInUnit := uint64(0)
	buf := make([]byte, 0, 64)

	for r := uint64(0); r < plan.Registers; r++ {
		g.Counters.StartRegister()
		if err := WriteRegisterLabel(unit, r); err != nil {
			return 0, errors.Wrap(err, "write register label")
		}

		for k := uint64(0); k < plan.ValuesPerRegister; k++ {
			index, width := g.Counters.Current()
			width, err := radix.Grow(index, width, g.Alphabet.Size(), g.AllowGrowth)
			if err != nil {
				return 0, err
			}
			g.Counters.Widen(width)

			buf = radix.AppendDecode(buf[:0], index, width, g.Alphabet)
			if err := WriteRow(unit, k, buf); err != nil {
				return 0, errors.Wrap(err, "write row")
			}
			g.Counters.Advance()

			rowsInUnit++
			remaining--

			// Unit is full but the bank is not done: close it and continue
			// in the next part, repeating the current register's label.
			if rowsInUnit >= plan.RowBudget && remaining > 0 {
				if err := WriteFooter(unit); err != nil {
					return 0, errors.Wrap(err, "write unit footer")
				}
				if err := unit.Close(); err != nil {
					return 0, errors.Wrapf(err, "close unit %d", part)
				}
				part++
				unit, err = open.OpenUnit(part, multipart)
				if err != nil {
					return 0, err
				}
				if err := WriteHeader(unit, bank); err != nil {
					return 0, errors.Wrap(err, "write bank header")
				}
				if err := WriteRegisterLabel(unit, r); err != nil {
					return 0, errors.Wrap(err, "write register label")
				}
				rowsInUnit = 0
			}
		}
	}

	if err := WriteFooter(unit); err != nil {
		return 0, errors.Wrap(err, "write unit footer")
	}
	if err := unit.Close(); err != nil {
		return 0, errors.Wrapf(err, "close unit %d", part)
	}
	return part + 1, nil
}
