package automaton

// epsilonClosure computes the reflexive-transitive closure of q under
// epsilon-keyed transitions, by breadth-first traversal with a
// visited-set keyed by state index so cyclic epsilon graphs terminate.
// Grounded on the teacher's ε-elimination description (spec §4.4) and on
// the EpsilonClosure traversal in the dekarrin-tunaq NFA-to-DFA converter
// (other_examples), adapted from that file's stack-based DFS to a BFS
// worklist per the spec's explicit wording.
func (a *Automaton) epsilonClosure(q int) map[int]bool {
	visited := map[int]bool{q: true}
	queue := []int{q}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range a.delta[cur][epsilonKey()] {
			if !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return visited
}

// epsilonClosureOfSet is the epsilon closure of a whole state set.
func (a *Automaton) epsilonClosureOfSet(states map[int]bool) map[int]bool {
	closure := make(map[int]bool, len(states))
	queue := make([]int, 0, len(states))
	for q := range states {
		if !closure[q] {
			closure[q] = true
			queue = append(queue, q)
		}
	}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, next := range a.delta[cur][epsilonKey()] {
			if !closure[next] {
				closure[next] = true
				queue = append(queue, next)
			}
		}
	}
	return closure
}

// step advances a frontier of states by one symbol, per the spec's
// step(Q, s) = union over the epsilon-closure of Q of delta(q, s).
func (a *Automaton) step(frontier map[int]bool, s Symbol) map[int]bool {
	closed := a.epsilonClosureOfSet(frontier)
	next := make(map[int]bool)
	for q := range closed {
		for _, to := range a.delta[q][symbolKey(s)] {
			next[to] = true
		}
	}
	return next
}

func (a *Automaton) anyAccepting(states map[int]bool) bool {
	for q := range states {
		if a.accepting[q] {
			return true
		}
	}
	return false
}

// Accepted reports whether word is in the language recognized from the
// initial state: epsilon-close the frontier before reading the word and
// once more afterward, per spec §4.2.
func (a *Automaton) Accepted(word []Symbol) bool {
	frontier := map[int]bool{a.initial: true}
	for _, s := range word {
		frontier = a.step(frontier, s)
	}
	closed := a.epsilonClosureOfSet(frontier)
	return a.anyAccepting(closed)
}

// SingleSymbolForm returns an automaton over the same alphabet, state
// count, and initial state, recognizing the same language, with no
// epsilon-keyed transitions (spec §4.4). If a is already single-symbol it
// returns an independent copy, never a.
func (a *Automaton) SingleSymbolForm() *Automaton {
	if a.IsSingleSymbol() {
		return a.Clone()
	}
	out, err := Skeleton(a.alphabet, a.size)
	if err != nil {
		// size is already validated to be >= 1 by the receiver's own
		// invariants, so this path is unreachable for any value produced
		// by this package's own constructors.
		panic(NewInternalError("single_symbol_form: skeleton construction failed", err))
	}
	_ = out.SetInitial(a.initial)
	for q := 0; q < a.size; q++ {
		closure := a.epsilonClosure(q)
		accept := false
		for r := range closure {
			if a.accepting[r] {
				accept = true
				break
			}
		}
		_ = out.SetAccepting(q, accept)
		for _, s := range a.alphabet {
			seen := make(map[int]bool)
			for r := range closure {
				for _, to := range a.delta[r][symbolKey(s)] {
					if !seen[to] {
						seen[to] = true
						_ = out.AddSymbolTransition(q, to, s)
					}
				}
			}
		}
	}
	return out
}
