// internal/logging/logging.go
package logging

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// Configure sets up the process-wide logger. All log output goes to out
// (normally stderr) so generated data on stdout stays clean. quiet wins
// over level.
func Configure(out io.Writer, level string, quiet bool) error {
	log.SetOutput(out)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if quiet {
		log.SetLevel(log.WarnLevel)
		return nil
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}
