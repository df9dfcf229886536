// core/radix/alphabet.go
package radix

import "github.com/pkg/errors"

// MinSize is the smallest usable alphabet. A one-symbol alphabet cannot
// distinguish indices at a fixed width.
const MinSize = 2

// Alphabet is an ordered set of distinct byte symbols used as the digits of
// a positional representation. The symbol at position 0 is the zero digit.
// Alphabets are immutable once built.
type Alphabet struct {
	symbols []byte
	pos     map[byte]int
}

// New validates symbols and builds an Alphabet. Symbols must be distinct
// and there must be at least MinSize of them.
func New(symbols string) (Alphabet, error) {
	if len(symbols) < MinSize {
		return Alphabet{}, errors.Errorf("alphabet needs at least %d symbols, got %d", MinSize, len(symbols))
	}
	a := Alphabet{symbols: []byte(symbols), pos: make(map[byte]int, len(symbols))}
	for i, c := range a.symbols {
		if _, dup := a.pos[c]; dup {
			return Alphabet{}, errors.Errorf("duplicate symbol %q in alphabet", c)
		}
		a.pos[c] = i
	}
	return a, nil
}

// MustNew is New for compile-time-constant alphabets; it panics on error.
func MustNew(symbols string) Alphabet {
	a, err := New(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

// Size returns the radix base.
func (a Alphabet) Size() uint64 { return uint64(len(a.symbols)) }

// Symbol returns the digit symbol for value i (0 <= i < Size).
func (a Alphabet) Symbol(i int) byte { return a.symbols[i] }

// Index returns the digit value of symbol c, or false when c is not part
// of the alphabet.
func (a Alphabet) Index(c byte) (int, bool) {
	i, ok := a.pos[c]
	return i, ok
}

func (a Alphabet) String() string { return string(a.symbols) }
