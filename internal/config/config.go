// internal/config/config.go
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"seqgen/internal/cli"
)

// Load fills opt from an optional YAML file and SEQGEN_* environment
// variables. Explicit command-line flags win: only values the user left at
// their default are overridden. Keys match the long flag names.
func Load(path string, fs *pflag.FlagSet, opt *cli.Options) error {
	v := viper.New()
	v.SetEnvPrefix("SEQGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return errors.Wrap(err, "read config file")
		}
	}

	merge := func(name string, assign func()) {
		if !fs.Changed(name) && v.IsSet(name) {
			assign()
		}
	}
	merge("banks", func() { opt.Banks = v.GetUint64("banks") })
	merge("regs", func() { opt.Registers = v.GetUint64("regs") })
	merge("vals", func() { opt.Values = v.GetUint64("vals") })
	merge("bank-max", func() { opt.RowBudget = v.GetUint64("bank-max") })
	merge("out", func() { opt.OutDir = v.GetString("out") })
	merge("alphabet", func() { opt.Alphabet = v.GetString("alphabet") })
	merge("strlen", func() { opt.InitWidth = v.GetInt("strlen") })
	merge("scope", func() { opt.Scope = v.GetString("scope") })
	merge("no-grow", func() { opt.NoGrow = v.GetBool("no-grow") })
	merge("log-level", func() { opt.LogLevel = v.GetString("log-level") })
	return nil
}
