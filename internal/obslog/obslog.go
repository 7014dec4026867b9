// Package obslog adapts the automaton package's observer sink convention
// to github.com/projectdiscovery/gologger, grounded on
// projectdiscovery-alterx's actual gologger call sites
// (internal/runner/runner.go, examples/main.go: gologger.Info().Msgf(...),
// gologger.DefaultLogger.SetMaxLevel(...)). The teacher's
// fsm.LoggingObserver (fsm/observers.go) took a bare func(string) sink;
// automaton.LoggingObserver keeps that same shape, and Sink below is the
// adapter that feeds it a real logging backend instead of a closure over
// fmt.Println.
package obslog

import (
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
)

// SetVerbose raises or lowers gologger's max level, mirroring the
// opts.Verbose/opts.Silent switch in projectdiscovery-alterx's ParseFlags.
func SetVerbose(verbose bool) {
	if verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	} else {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelInfo)
	}
}

// Sink returns a logFunc for automaton.NewLoggingObserver that reports
// through gologger at Info level, so famctl's LoggingObserver messages go
// through the same logging backend as the rest of the CLI rather than
// straight to stdout.
func Sink() func(string) {
	return func(msg string) {
		gologger.Info().Msg(msg)
	}
}
