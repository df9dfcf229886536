// core/bankfile/format.go
package bankfile

import (
	"fmt"
	"io"
)

// RowTagBase is the modulus of the short per-row tag. The tag wraps and is
// purely a visual grouping aid; nothing may treat it as a key.
const RowTagBase = 10000

// WriteHeader opens a unit's envelope: the bank id twice, brace open.
func WriteHeader(w io.Writer, bank uint64) error {
	_, err := fmt.Fprintf(w, "x%05d\t(x%05d){\n", bank, bank)
	return err
}

// WriteFooter closes a unit's envelope.
func WriteFooter(w io.Writer) error {
	_, err := io.WriteString(w, "}\n")
	return err
}

// WriteRegisterLabel emits the label line that precedes a register's rows.
// It is repeated when a unit boundary lands mid-register so every unit
// stays self-describing.
func WriteRegisterLabel(w io.Writer, register uint64) error {
	_, err := fmt.Fprintf(w, "%02d\n", register)
	return err
}

// WriteRow emits one value row: wrapping tag, tab, generated string.
func WriteRow(w io.Writer, k uint64, text []byte) error {
	_, err := fmt.Fprintf(w, "\t%04d\t%s\n", k%RowTagBase, text)
	return err
}
