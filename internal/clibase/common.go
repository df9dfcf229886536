// internal/clibase/common.go
package clibase

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"seqgen/internal/version"
)

// Process holds the CLI fields shared by seqgen and seqgen-enum.
type Process struct {
	LogLevel string
	Quiet    bool
	Version  bool
	Help     bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.Usage = func() {}
	return fs
}

// Register wires the shared process flags onto fs.
func Register(fs *pflag.FlagSet, p *Process) {
	fs.StringVar(&p.LogLevel, "log-level", "info", "log level: debug | info | warn | error [info]")
	fs.BoolVarP(&p.Quiet, "quiet", "q", false, "only log warnings and errors [false]")
	fs.BoolVarP(&p.Version, "version", "v", false, "print version and exit [false]")
	fs.BoolVarP(&p.Help, "help", "h", false, "show this help message [false]")
}

// Usage writes the tool banner plus the flag table to w.
func Usage(w io.Writer, fs *pflag.FlagSet, name, tagline string) {
	fmt.Fprintf(w, `%s: %s

Version: %s

Usage of %s:
`, name, tagline, version.Version, name)
	fmt.Fprint(w, fs.FlagUsages())
}
