package automaton

// FromRegex builds an automaton recognizing L(r) over alphabet by the
// inductive Thompson-style construction of spec §4.8. The result may use
// epsilon transitions freely and need not be single-symbol.
//
// Grounded on Toasa-regexp's nfa.Generator (genSymbolNFA/genUnionNFA/
// genConcateNFA/genStarNFA), translated from that package's pointer-linked
// *State fragments to this package's dense-index Automaton: each case
// below shifts a sub-automaton's state indices by an offset and splices
// its transitions into a freshly allocated skeleton instead of linking
// *State pointers directly.
func FromRegex(alphabet []Symbol, r *Regex) *Automaton {
	switch r.Kind {
	case RegexLiteral:
		return literalAutomaton(alphabet, r.Word)
	case RegexConcat:
		l := FromRegex(alphabet, r.Left)
		right := FromRegex(alphabet, r.Right)
		return concatAutomata(alphabet, l, right)
	case RegexUnion:
		l := FromRegex(alphabet, r.Left)
		right := FromRegex(alphabet, r.Right)
		return unionAutomata(alphabet, l, right)
	case RegexStar:
		e := FromRegex(alphabet, r.Left)
		return starAutomaton(alphabet, e)
	default:
		panic(NewInternalError("from_regex: unknown Regex kind", nil))
	}
}

func literalAutomaton(alphabet []Symbol, w []Symbol) *Automaton {
	n := len(w) + 1
	out, err := Skeleton(alphabet, n)
	if err != nil {
		panic(NewInternalError("from_regex: literal skeleton failed", err))
	}
	for i, s := range w {
		_ = out.AddSymbolTransition(i, i+1, s)
	}
	_ = out.SetAccepting(len(w), true)
	return out
}

func copyTransitionsInto(out, src *Automaton, offset int) {
	for q := 0; q < src.Size(); q++ {
		for _, e := range src.AllTransitions(q) {
			if e.Symbol == nil {
				_ = out.AddEmptyTransition(q+offset, e.To+offset)
			} else {
				_ = out.AddSymbolTransition(q+offset, e.To+offset, *e.Symbol)
			}
		}
	}
}

func concatAutomata(alphabet []Symbol, l, r *Automaton) *Automaton {
	nl, nr := l.Size(), r.Size()
	out, err := Skeleton(alphabet, nl+nr)
	if err != nil {
		panic(NewInternalError("from_regex: concat skeleton failed", err))
	}
	_ = out.SetInitial(l.Initial())
	copyTransitionsInto(out, l, 0)
	copyTransitionsInto(out, r, nl)
	for q := 0; q < nl; q++ {
		if l.Accepting(q) {
			_ = out.AddEmptyTransition(q, r.Initial()+nl)
		}
	}
	for q := 0; q < nr; q++ {
		if r.Accepting(q) {
			_ = out.SetAccepting(q+nl, true)
		}
	}
	return out
}

func unionAutomata(alphabet []Symbol, l, r *Automaton) *Automaton {
	nl, nr := l.Size(), r.Size()
	out, err := Skeleton(alphabet, 1+nl+nr)
	if err != nil {
		panic(NewInternalError("from_regex: union skeleton failed", err))
	}
	_ = out.SetInitial(0)
	copyTransitionsInto(out, l, 1)
	copyTransitionsInto(out, r, 1+nl)
	_ = out.AddEmptyTransition(0, l.Initial()+1)
	_ = out.AddEmptyTransition(0, r.Initial()+1+nl)
	for q := 0; q < nl; q++ {
		if l.Accepting(q) {
			_ = out.SetAccepting(q+1, true)
		}
	}
	for q := 0; q < nr; q++ {
		if r.Accepting(q) {
			_ = out.SetAccepting(q+1+nl, true)
		}
	}
	return out
}

func starAutomaton(alphabet []Symbol, e *Automaton) *Automaton {
	n := e.Size()
	out, err := Skeleton(alphabet, n)
	if err != nil {
		panic(NewInternalError("from_regex: star skeleton failed", err))
	}
	_ = out.SetInitial(e.Initial())
	copyTransitionsInto(out, e, 0)
	for q := 0; q < n; q++ {
		if e.Accepting(q) {
			_ = out.SetAccepting(q, true)
		}
	}
	_ = out.SetAccepting(e.Initial(), true)
	for q := 0; q < n; q++ {
		if out.Accepting(q) {
			_ = out.AddEmptyTransition(q, e.Initial())
		}
	}
	return out
}
