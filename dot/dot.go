// Package dot is the GraphViz DOT emitter named in the core spec's
// external interfaces (§6): a digraph with a phantom node pointing at the
// initial state, doublecircle shape for accepting states, and one edge
// per transition labeled with its symbol (ε for an epsilon edge).
//
// Grounded on Toasa-regexp's nfa.DumpDOT (_examples/Toasa-regexp/nfa/nfa.go),
// adapted from that function's print-straight-to-stdout shape to writing
// into an io.Writer so callers (the CLI, tests) can redirect the output.
package dot

import (
	"fmt"
	"io"

	"github.com/dsonic0912/automaton-fsm/automaton"
)

// Write renders a as a GraphViz DOT digraph into w.
func Write(w io.Writer, a *automaton.Automaton) error {
	if _, err := fmt.Fprintln(w, "digraph automaton {"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  rankdir=LR;"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, "  __phantom__ [shape=point];"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  __phantom__ -> q%d;\n", a.Initial()); err != nil {
		return err
	}

	for q := 0; q < a.Size(); q++ {
		shape := "circle"
		if a.Accepting(q) {
			shape = "doublecircle"
		}
		if _, err := fmt.Fprintf(w, "  q%d [shape=%s];\n", q, shape); err != nil {
			return err
		}
	}

	for q := 0; q < a.Size(); q++ {
		for _, e := range a.AllTransitions(q) {
			label := "ε"
			if e.Symbol != nil {
				label = string(*e.Symbol)
			}
			if _, err := fmt.Fprintf(w, "  q%d -> q%d [label=%q];\n", q, e.To, label); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
