// internal/enumapp/app.go
package enumapp

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"seqgen-core/enum"
	"seqgen/internal/clibase"
	"seqgen/internal/enumcli"
	"seqgen/internal/logging"
	"seqgen/internal/version"
	"seqgen/internal/writers"
)

// Run drives the exhaustive enumerator.
// Exit codes: 0 success, 2 configuration error, 3 runtime failure.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := clibase.NewFlagSet("seqgen-enum")
	fs.SetOutput(io.Discard)

	opts, err := enumcli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			clibase.Usage(stdout, fs, "seqgen-enum", enumcli.Tagline)
			return 0
		}
		fmt.Fprintln(stderr, err)
		clibase.Usage(stderr, fs, "seqgen-enum", enumcli.Tagline)
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "seqgen-enum version %s\n", version.Version)
		return 0
	}

	rt, err := enumcli.Validate(opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if err := logging.Configure(stderr, opts.LogLevel, opts.Quiet); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	out := stdout
	var file *os.File
	if opts.Output != "-" {
		file, err = os.Create(opts.Output)
		if err != nil {
			log.Error(err)
			return 3
		}
		out = file
	}
	sink := bufio.NewWriter(out)

	n, err := enum.Enumerate(rt.Alphabet, opts.Width, sink)
	if err != nil {
		if errors.Is(err, enum.ErrArithmeticOverflow) {
			fmt.Fprintln(stderr, err)
			return 2
		}
		if writers.IsBrokenPipe(err) {
			return 0
		}
		log.Error(err)
		return 3
	}
	if err := sink.Flush(); err != nil {
		if writers.IsBrokenPipe(err) {
			return 0
		}
		log.Error(err)
		return 3
	}
	if file != nil {
		if err := file.Close(); err != nil {
			log.Error(err)
			return 3
		}
	}

	log.Infof("enumerated %d strings of width %d over %d symbols", n, opts.Width, rt.Alphabet.Size())
	return 0
}
