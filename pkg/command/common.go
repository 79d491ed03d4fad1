// Package command implements the otik subcommands. Every command honors the
// go-flags.Commander interface.
package command

import (
	"fmt"
	"os"

	"github.com/DedMokus/OTIK/pkg/core"

	"github.com/sirupsen/logrus"
)

// Logging holds the options shared by every subcommand.
type Logging struct {
	Verbose  bool   `short:"v" long:"verbose" description:"Activates the verbose mode"`
	LogLevel string `long:"log-level" env:"OTIK_LOG_LEVEL" choice:"debug" choice:"info" choice:"warning" choice:"error" default:"info" description:"logging level"`
}

func (l *Logging) setup() error {
	logrus.SetOutput(os.Stderr)
	level := logrus.InfoLevel
	if l.LogLevel != "" {
		var err error
		if level, err = logrus.ParseLevel(l.LogLevel); err != nil {
			return core.ErrInvalidInput.New(fmt.Sprintf("cannot parse log level %q", l.LogLevel))
		}
	}
	if l.Verbose {
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
	return nil
}

// noExtraArgs rejects arguments left over after the positional ones.
func noExtraArgs(args []string) error {
	if len(args) > 0 {
		return core.ErrInvalidInput.New(fmt.Sprintf("unexpected arguments %q", args))
	}
	return nil
}
