// internal/cli/options.go
package cli

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"seqgen-core/radix"
	"seqgen-core/sequence"
	"seqgen/internal/clibase"
)

// Tagline is the one-line description shown at the top of --help.
const Tagline = "deterministic sequential test-corpus generator"

// Options holds all CLI flags of the bank-file generator.
type Options struct {
	clibase.Process

	// Corpus shape
	Banks     uint64
	Registers uint64
	Values    uint64
	RowBudget uint64
	OutDir    string

	// Sequence engine
	Alphabet  string
	InitWidth int
	Scope     string
	NoGrow    bool

	ConfigFile string
}

// Runtime is the validated, typed form of Options.
type Runtime struct {
	Alphabet radix.Alphabet
	Scope    sequence.Scope
}

// Defaults mirrors a zero-flag run: 4 banks x 8 registers x 65536 values
// into ./db, lowercase alphabet at width 6, bank scope, growth enabled.
func Defaults() Options {
	return Options{
		Banks:     4,
		Registers: 8,
		Values:    65536,
		RowBudget: 1_500_000,
		OutDir:    "./db",
		Alphabet:  "abcdefghijklmnopqrstuvwxyz",
		InitWidth: 6,
		Scope:     "bank",
	}
}

// ParseArgs registers and parses all flags, returning an Options struct.
// Scalar validation happens later in Validate so config-file values get
// the same checks as flags.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	opt := Defaults()

	fs.Uint64Var(&opt.Banks, "banks", opt.Banks, "number of banks [4]")
	fs.Uint64Var(&opt.Registers, "regs", opt.Registers, "registers per bank [8]")
	fs.Uint64Var(&opt.Values, "vals", opt.Values, "values (rows) per register [65536]")
	fs.Uint64Var(&opt.RowBudget, "bank-max", opt.RowBudget, "max rows per output file, clamped to [1000000..2000000]")
	fs.StringVar(&opt.OutDir, "out", opt.OutDir, "output directory [./db]")
	fs.StringVar(&opt.Alphabet, "alphabet", opt.Alphabet, "alphabet for generated strings, at least 2 distinct symbols [a-z]")
	fs.IntVar(&opt.InitWidth, "strlen", opt.InitWidth, "starting string width; grows on exhaustion unless --no-grow [6]")
	fs.StringVar(&opt.Scope, "scope", opt.Scope, "sequence scope: bank | register | global [bank]")
	fs.BoolVar(&opt.NoGrow, "no-grow", false, "disable width growth; fail when capacity is exceeded [false]")
	fs.StringVar(&opt.ConfigFile, "config", "", "optional YAML config file providing flag defaults")
	clibase.Register(fs, &opt.Process)

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Help {
		return opt, pflag.ErrHelp
	}
	return opt, nil
}

// MaxInitWidth is a sanity ceiling on --strlen; the growth policy has its
// own, much higher ceiling for widths reached at run time.
const MaxInitWidth = 256

// Validate checks the merged option set and resolves the typed pieces.
// Everything it rejects is a configuration error: no output has been
// produced yet.
func Validate(opt Options) (Runtime, error) {
	var rt Runtime
	switch {
	case opt.Banks == 0:
		return rt, errors.New("--banks must be >= 1")
	case opt.Registers == 0:
		return rt, errors.New("--regs must be >= 1")
	case opt.Values == 0:
		return rt, errors.New("--vals must be >= 1")
	case opt.InitWidth < 1 || opt.InitWidth > MaxInitWidth:
		return rt, errors.Errorf("--strlen must be 1..%d", MaxInitWidth)
	case opt.OutDir == "":
		return rt, errors.New("--out must not be empty")
	}

	alphabet, err := radix.New(opt.Alphabet)
	if err != nil {
		return rt, err
	}
	scope, err := sequence.ParseScope(opt.Scope)
	if err != nil {
		return rt, err
	}
	rt.Alphabet = alphabet
	rt.Scope = scope
	return rt, nil
}
