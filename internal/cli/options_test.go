package cli

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqgen-core/sequence"
	"seqgen/internal/clibase"
)

func parse(t *testing.T, argv ...string) (Options, error) {
	t.Helper()
	return ParseArgs(clibase.NewFlagSet("seqgen"), argv)
}

func TestParseDefaults(t *testing.T) {
	opt, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, uint64(4), opt.Banks)
	assert.Equal(t, uint64(8), opt.Registers)
	assert.Equal(t, uint64(65536), opt.Values)
	assert.Equal(t, uint64(1_500_000), opt.RowBudget)
	assert.Equal(t, "./db", opt.OutDir)
	assert.Equal(t, 6, opt.InitWidth)
	assert.Equal(t, "bank", opt.Scope)
	assert.False(t, opt.NoGrow)
}

func TestParseOverrides(t *testing.T) {
	opt, err := parse(t,
		"--banks", "10", "--regs", "64", "--vals", "20000",
		"--alphabet", "ab", "--strlen", "3", "--scope", "global", "--no-grow")
	require.NoError(t, err)
	assert.Equal(t, uint64(10), opt.Banks)
	assert.Equal(t, uint64(64), opt.Registers)
	assert.Equal(t, uint64(20000), opt.Values)
	assert.Equal(t, "ab", opt.Alphabet)
	assert.Equal(t, 3, opt.InitWidth)
	assert.Equal(t, "global", opt.Scope)
	assert.True(t, opt.NoGrow)
}

func TestParseHelp(t *testing.T) {
	_, err := parse(t, "-h")
	assert.ErrorIs(t, err, pflag.ErrHelp)
}

func TestParseUnknownFlag(t *testing.T) {
	_, err := parse(t, "--bogus")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	opt := Defaults()
	rt, err := Validate(opt)
	require.NoError(t, err)
	assert.Equal(t, uint64(26), rt.Alphabet.Size())
	assert.Equal(t, sequence.ScopeBank, rt.Scope)

	bad := opt
	bad.Banks = 0
	_, err = Validate(bad)
	assert.Error(t, err)

	bad = opt
	bad.InitWidth = 0
	_, err = Validate(bad)
	assert.Error(t, err)

	bad = opt
	bad.InitWidth = MaxInitWidth + 1
	_, err = Validate(bad)
	assert.Error(t, err)

	bad = opt
	bad.Alphabet = "a"
	_, err = Validate(bad)
	assert.Error(t, err)

	bad = opt
	bad.Alphabet = "aba"
	_, err = Validate(bad)
	assert.Error(t, err)

	bad = opt
	bad.Scope = "file"
	_, err = Validate(bad)
	assert.Error(t, err)
}
