package automaton

// CompleteDeterministicForm returns a complete deterministic automaton
// recognizing the same language as a (spec §4.6). If a is already
// complete it returns an independent copy. Otherwise a is first brought
// to deterministic form, then a single halting state is appended and
// wired with a self-loop on every symbol and with every missing
// (state, symbol) transition of the rest of the automaton.
func (a *Automaton) CompleteDeterministicForm() *Automaton {
	if a.IsCompleteDFA() {
		return a.Clone()
	}
	d := a.DeterministicForm()
	if d.IsCompleteDFA() {
		return d
	}

	halting := d.size
	if err := d.Grow(d.size + 1); err != nil {
		panic(NewInternalError("complete_deterministic_form: grow failed", err))
	}
	for q := 0; q < d.size; q++ {
		for _, s := range d.alphabet {
			if len(d.delta[q][symbolKey(s)]) == 0 {
				_ = d.AddSymbolTransition(q, halting, s)
			}
		}
	}
	return d
}
