package enum

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqgen-core/radix"
)

func TestEnumerateBinaryWidthTwo(t *testing.T) {
	var buf bytes.Buffer
	n, err := Enumerate(radix.MustNew("ab"), 2, &buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), n)
	assert.Equal(t, "aa\nab\nba\nbb\n", buf.String())
}

func TestEnumerateLineCountMatchesCapacity(t *testing.T) {
	var buf bytes.Buffer
	n, err := Enumerate(radix.MustNew("0123456789"), 3, &buf)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), n)
	assert.Equal(t, 1000, bytes.Count(buf.Bytes(), []byte{'\n'}))
}

// Overflowing totals are rejected up front with nothing written.
func TestEnumerateOverflowDetectedBeforeOutput(t *testing.T) {
	var buf bytes.Buffer
	a := radix.MustNew("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	_, err := Enumerate(a, 20, &buf)
	assert.ErrorIs(t, err, ErrArithmeticOverflow)
	assert.Zero(t, buf.Len())
}

type failingSink struct{ writes int }

func (f *failingSink) Write(p []byte) (int, error) {
	if f.writes == 0 {
		return 0, assert.AnError
	}
	f.writes--
	return len(p), nil
}

func (f *failingSink) WriteByte(byte) error { return nil }

func TestEnumerateStopsOnSinkError(t *testing.T) {
	n, err := Enumerate(radix.MustNew("ab"), 2, &failingSink{writes: 2})
	require.Error(t, err)
	assert.Equal(t, uint64(2), n)
}
