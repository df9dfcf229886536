// internal/enumcli/options.go
package enumcli

import (
	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"seqgen-core/radix"
	"seqgen/internal/clibase"
)

// Tagline is the one-line description shown at the top of --help.
const Tagline = "exhaustive fixed-width string enumerator"

// Options holds all CLI flags of the exhaustive enumerator.
type Options struct {
	clibase.Process

	Alphabet string
	Width    int
	Output   string // "-" streams to stdout
}

// Runtime is the validated, typed form of Options.
type Runtime struct {
	Alphabet radix.Alphabet
}

func Defaults() Options {
	return Options{
		Alphabet: "abcdefghijklmnopqrstuvwxyz",
		Width:    4,
		Output:   "-",
	}
}

// ParseArgs registers and parses all flags, returning an Options struct.
func ParseArgs(fs *pflag.FlagSet, argv []string) (Options, error) {
	opt := Defaults()

	fs.StringVar(&opt.Alphabet, "alphabet", opt.Alphabet, "alphabet for enumerated strings, at least 2 distinct symbols [a-z]")
	fs.IntVarP(&opt.Width, "width", "w", opt.Width, "fixed string width [4]")
	fs.StringVarP(&opt.Output, "output", "o", opt.Output, "output file ('-' = stdout) [-]")
	clibase.Register(fs, &opt.Process)

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if opt.Help {
		return opt, pflag.ErrHelp
	}
	return opt, nil
}

// Validate checks the option set and resolves the alphabet.
func Validate(opt Options) (Runtime, error) {
	var rt Runtime
	if opt.Width < 1 || opt.Width > 256 {
		return rt, errors.New("--width must be 1..256")
	}
	if opt.Output == "" {
		return rt, errors.New("--output must not be empty")
	}
	alphabet, err := radix.New(opt.Alphabet)
	if err != nil {
		return rt, err
	}
	rt.Alphabet = alphabet
	return rt, nil
}
