// internal/app/app.go
package app

import (
	"errors"
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"seqgen-core/bankfile"
	"seqgen-core/sequence"
	"seqgen/internal/cli"
	"seqgen/internal/clibase"
	"seqgen/internal/config"
	"seqgen/internal/logging"
	"seqgen/internal/runutil"
	"seqgen/internal/version"
	"seqgen/internal/writers"
)

// Run wires flags, config, and the partitioned generator together.
// Exit codes: 0 success, 2 configuration error, 3 runtime failure.
func Run(argv []string, stdout, stderr io.Writer) int {
	fs := clibase.NewFlagSet("seqgen")
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			clibase.Usage(stdout, fs, "seqgen", cli.Tagline)
			return 0
		}
		fmt.Fprintln(stderr, err)
		clibase.Usage(stderr, fs, "seqgen", cli.Tagline)
		return 2
	}
	if opts.Version {
		fmt.Fprintf(stdout, "seqgen version %s\n", version.Version)
		return 0
	}

	if err := config.Load(opts.ConfigFile, fs, &opts); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	rt, err := cli.Validate(opts)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if err := logging.Configure(stderr, opts.LogLevel, opts.Quiet); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	budget, warns := runutil.ClampRowBudget(opts.RowBudget)
	for _, w := range warns {
		log.Warn(w)
	}

	plan := bankfile.Plan{
		Registers:         opts.Registers,
		ValuesPerRegister: opts.Values,
		RowBudget:         budget,
	}
	rowsPerBank, err := plan.TotalRows()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if err := writers.EnsureDir(opts.OutDir); err != nil {
		log.Error(err)
		return 3
	}

	gen := &bankfile.Generator{
		Alphabet:    rt.Alphabet,
		Counters:    sequence.NewCounterSet(rt.Scope, opts.InitWidth),
		AllowGrowth: !opts.NoGrow,
	}

	var totalUnits uint64
	for b := uint64(0); b < opts.Banks; b++ {
		units, err := gen.GenerateBank(b, plan, writers.BankUnits{Dir: opts.OutDir, Bank: b})
		if err != nil {
			log.Errorf("bank x%05d: %v", b, err)
			return 3
		}
		totalUnits += units
		log.Debugf("bank x%05d: %d rows in %d unit(s)", b, rowsPerBank, units)
	}

	log.Infof("text sequence generation complete: %d banks, %d rows per bank, %d files in %s",
		opts.Banks, rowsPerBank, totalUnits, opts.OutDir)
	return 0
}
