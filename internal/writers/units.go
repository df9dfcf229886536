// internal/writers/units.go
package writers

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// EnsureDir creates dir if needed. An already existing directory is
// success, matching the generator's contract.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create output directory %s", dir)
	}
	return nil
}

// UnitFileName returns the file name for one output unit of a bank.
// Banks that fit in a single unit drop the part suffix.
func UnitFileName(bank, part uint64, multipart bool) string {
	if multipart {
		return fmt.Sprintf("x%05d.part%02d.txt", bank, part)
	}
	return fmt.Sprintf("x%05d.txt", bank)
}

// BankUnits opens buffered part files for one bank under Dir. It satisfies
// bankfile.UnitOpener.
type BankUnits struct {
	Dir  string
	Bank uint64
}

func (u BankUnits) OpenUnit(part uint64, multipart bool) (io.WriteCloser, error) {
	path := filepath.Join(u.Dir, UnitFileName(u.Bank, part, multipart))
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open output unit %s", path)
	}
	return &bufferedUnit{w: bufio.NewWriter(f), f: f}, nil
}

// bufferedUnit flushes its buffer before releasing the file handle.
type bufferedUnit struct {
	w *bufio.Writer
	f *os.File
}

func (b *bufferedUnit) Write(p []byte) (int, error) { return b.w.Write(p) }

func (b *bufferedUnit) Close() error {
	if err := b.w.Flush(); err != nil {
		_ = b.f.Close()
		return err
	}
	return b.f.Close()
}
