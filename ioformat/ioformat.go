// Package ioformat is the textual automaton serialization named in the
// core spec's external interfaces (§6): a line-oriented format an author
// can type by hand, and its inverse emitter. It is a thin builder around
// automaton.Skeleton plus the mutation API, the way the
// spec says the parser must be — no automaton invariant is re-implemented
// here, only line-level syntax.
package ioformat

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dsonic0912/automaton-fsm/automaton"
)

type rawTransition struct {
	from, to int
	symbol   *automaton.Symbol
}

// Parse reads the line-oriented automaton format:
//
//	<initial_state_index>
//	<accepting_state_index>*           // whitespace-separated, possibly empty
//	<from> <to> [<symbol_char>]        // one per line; missing 3rd token => ε
//
// The automaton grows implicitly to include every mentioned state index.
// Malformed accepting-state tokens and transition lines are all collected
// before Parse fails, rather than stopping at the first one, mirroring the
// automaton package's own ErrorCollector-based reporting
// (automaton/errors.go). A non-integer initial-state line, and a symbol
// outside the alphabet, fail at the first occurrence.
func Parse(alphabet []automaton.Symbol, text string) (*automaton.Automaton, error) {
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	if len(lines) < 2 {
		return nil, automaton.NewMalformedInputError("automaton text must have at least an initial-state line and an accepting-states line")
	}

	var collector automaton.ErrorCollector

	initial, err := strconv.Atoi(strings.TrimSpace(lines[0]))
	if err != nil {
		return nil, automaton.NewMalformedInputError("initial state line is not an integer").WithContext("line", 1)
	}
	maxState := initial

	var accepting []int
	for _, field := range strings.Fields(lines[1]) {
		q, err := strconv.Atoi(field)
		if err != nil {
			collector.Add(automaton.NewMalformedInputError("accepting state token is not an integer").
				WithContext("line", 2).WithContext("token", field))
			continue
		}
		accepting = append(accepting, q)
		if q > maxState {
			maxState = q
		}
	}

	var transitions []rawTransition
	for i := 2; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 || len(fields) > 3 {
			collector.Add(automaton.NewMalformedInputError("transition line must have 2 or 3 fields").
				WithContext("line", i+1))
			continue
		}
		from, errFrom := strconv.Atoi(fields[0])
		to, errTo := strconv.Atoi(fields[1])
		if errFrom != nil || errTo != nil {
			collector.Add(automaton.NewMalformedInputError("transition endpoints must be integers").
				WithContext("line", i+1))
			continue
		}
		rt := rawTransition{from: from, to: to}
		if len(fields) == 3 {
			tok := []rune(fields[2])
			if len(tok) != 1 {
				collector.Add(automaton.NewMalformedInputError("transition symbol token must be a single character").
					WithContext("line", i+1).WithContext("token", fields[2]))
				continue
			}
			s := tok[0]
			rt.symbol = &s
		}
		if from > maxState {
			maxState = from
		}
		if to > maxState {
			maxState = to
		}
		transitions = append(transitions, rt)
	}

	if collector.HasErrors() {
		return nil, collector.ToError()
	}

	a, err := automaton.Skeleton(alphabet, maxState+1)
	if err != nil {
		return nil, err
	}
	if err := a.SetInitial(initial); err != nil {
		return nil, err
	}
	for _, q := range accepting {
		if err := a.SetAccepting(q, true); err != nil {
			return nil, err
		}
	}
	for _, t := range transitions {
		if t.symbol == nil {
			if err := a.AddEmptyTransition(t.from, t.to); err != nil {
				return nil, err
			}
			continue
		}
		if !a.HasSymbol(*t.symbol) {
			return nil, automaton.NewMalformedInputError("transition symbol outside alphabet").
				WithContext("symbol", string(*t.symbol))
		}
		if err := a.AddSymbolTransition(t.from, t.to, *t.symbol); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Emit renders a in the format Parse reads: initial state, then accepting
// states, then one line per outgoing transition. Parallel edges are
// emitted separately; epsilon edges omit the symbol token.
func Emit(a *automaton.Automaton) string {
	var b strings.Builder
	fmt.Fprintln(&b, a.Initial())

	var acc []string
	for q := 0; q < a.Size(); q++ {
		if a.Accepting(q) {
			acc = append(acc, strconv.Itoa(q))
		}
	}
	fmt.Fprintln(&b, strings.Join(acc, " "))

	for q := 0; q < a.Size(); q++ {
		for _, e := range a.AllTransitions(q) {
			if e.Symbol == nil {
				fmt.Fprintf(&b, "%d %d\n", q, e.To)
			} else {
				fmt.Fprintf(&b, "%d %d %c\n", q, e.To, *e.Symbol)
			}
		}
	}
	return b.String()
}
