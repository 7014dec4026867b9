// Command famctl is a thin CLI wrapper around the automaton and regexsyntax
// packages: read an automaton (from the textual format or from a regex),
// run one of the core conversions over it, and write the result back out
// (as automaton text or as a GraphViz DOT file), optionally checking a list
// of words for acceptance. It has no algorithmic substance of its own —
// every conversion it calls lives in package automaton.
//
// Grounded on projectdiscovery-alterx's internal/runner/runner.go
// (goflags.NewFlagSet, flagSet.CreateGroup, StringVarP/BoolVarP, gologger
// for level switching and fatal errors).
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"

	"github.com/dsonic0912/automaton-fsm/automaton"
	"github.com/dsonic0912/automaton-fsm/dot"
	"github.com/dsonic0912/automaton-fsm/internal/obslog"
	"github.com/dsonic0912/automaton-fsm/ioformat"
	"github.com/dsonic0912/automaton-fsm/regexsyntax"
)

type options struct {
	Alphabet       string
	AutomatonFile  string
	RegexExpr      string
	Conversion     string
	DotFile        string
	AcceptWordsCSV string
	Verbose        bool
	Silent         bool
}

func parseFlags() *options {
	opts := &options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Finite automaton and regular expression conversion tool.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Alphabet, "alphabet", "a", "", "alphabet, as one string of distinct characters (required)"),
		flagSet.StringVarP(&opts.AutomatonFile, "automaton", "f", "", "path to a file in the textual automaton format"),
		flagSet.StringVarP(&opts.RegexExpr, "regex", "r", "", "a regex string in the parenthesized surface grammar, read instead of -automaton"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.StringVarP(&opts.Conversion, "convert", "c", "minimal_complete_deterministic_form",
			"conversion to run: single_symbol_form, deterministic_form, complete_deterministic_form, minimal_complete_deterministic_form"),
		flagSet.StringVarP(&opts.DotFile, "dot", "d", "", "path to write a GraphViz DOT rendering of the result"),
		flagSet.StringVarP(&opts.AcceptWordsCSV, "accept", "w", "", "comma-separated words to test for acceptance against the result"),
	)

	flagSet.CreateGroup("verbosity", "Verbosity",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}
	return opts
}

func main() {
	opts := parseFlags()
	obslog.SetVerbose(opts.Verbose)

	if opts.Alphabet == "" {
		gologger.Fatal().Msg("-alphabet is required")
	}
	alphabet := []automaton.Symbol(opts.Alphabet)

	a, err := loadAutomaton(alphabet, opts)
	if err != nil {
		gologger.Fatal().Msgf("failed to load automaton: %s", err)
	}

	registry := automaton.NewConversionRegistry()
	conv, ok := registry.Get(opts.Conversion)
	if !ok {
		gologger.Fatal().Msgf("unknown conversion %q; known: %s", opts.Conversion, strings.Join(registry.Names(), ", "))
	}

	metrics := automaton.NewMetricsObserver()
	observer := automaton.NewCompositeObserver(automaton.NewLoggingObserver(obslog.Sink()), metrics)
	result := automaton.NewObservableConverter(a, observer).Apply(opts.Conversion, conv)

	if !opts.Silent {
		fmt.Print(ioformat.Emit(result))
		gologger.Info().Msgf("%s ran %d time(s), averaging %s",
			opts.Conversion, metrics.Count(opts.Conversion), metrics.AverageDuration(opts.Conversion))
	}

	if opts.DotFile != "" {
		if err := writeDOT(opts.DotFile, result); err != nil {
			gologger.Fatal().Msgf("failed to write DOT file: %s", err)
		}
	}

	if opts.AcceptWordsCSV != "" {
		checkWords(result, opts.AcceptWordsCSV)
	}
}

func loadAutomaton(alphabet []automaton.Symbol, opts *options) (*automaton.Automaton, error) {
	switch {
	case opts.RegexExpr != "":
		r, err := regexsyntax.Parse(alphabet, opts.RegexExpr)
		if err != nil {
			return nil, err
		}
		return automaton.FromRegex(alphabet, r), nil
	case opts.AutomatonFile != "":
		data, err := os.ReadFile(opts.AutomatonFile)
		if err != nil {
			return nil, err
		}
		return ioformat.Parse(alphabet, string(data))
	default:
		return nil, fmt.Errorf("one of -automaton or -regex is required")
	}
}

func writeDOT(path string, a *automaton.Automaton) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return dot.Write(f, a)
}

func checkWords(a *automaton.Automaton, csv string) {
	acceptor := automaton.NewBatchAcceptor(a, 4)
	var words [][]automaton.Symbol
	for _, w := range strings.Split(csv, ",") {
		words = append(words, []automaton.Symbol(w))
	}
	for _, result := range acceptor.AcceptBatch(words) {
		gologger.Info().Msgf("%q: accepted=%t", string(result.Word), result.Accepted)
	}
}
