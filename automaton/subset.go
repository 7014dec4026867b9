package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// canonicalSubsetKey turns a state set into a string unique to its
// membership, so identical subsets collapse onto identical new-state
// indices during the BFS worklist below. Grounded on the canonical
// StringOrdered subset keys used by the dekarrin-tunaq NFA-to-DFA
// converter's worklist (other_examples), adapted from that file's
// util.SVSet to a plain sorted-index-list encoding since this package's
// states are already dense ints.
func canonicalSubsetKey(states map[int]bool) string {
	indices := make([]int, 0, len(states))
	for q := range states {
		indices = append(indices, q)
	}
	sort.Ints(indices)
	parts := make([]string, len(indices))
	for i, q := range indices {
		parts[i] = strconv.Itoa(q)
	}
	return strings.Join(parts, ",")
}

// DeterministicForm returns a deterministic (not necessarily complete)
// automaton recognizing the same language as a, via subset construction
// over a's single-symbol form (spec §4.5). If a is already deterministic
// it returns an independent copy.
func (a *Automaton) DeterministicForm() *Automaton {
	if a.IsDFA() {
		return a.Clone()
	}
	b := a.SingleSymbolForm()

	type subset struct {
		states map[int]bool
		id     int
	}
	seen := make(map[string]int)
	var order []map[int]bool

	start := b.epsilonClosureOfSet(map[int]bool{b.initial: true})
	startKey := canonicalSubsetKey(start)
	seen[startKey] = 0
	order = append(order, start)

	type pendingEdge struct {
		from int
		to   int
		sym  Symbol
	}
	var edges []pendingEdge

	queue := []subset{{states: start, id: 0}}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, s := range b.alphabet {
			dest := make(map[int]bool)
			for q := range cur.states {
				for _, to := range b.delta[q][symbolKey(s)] {
					dest[to] = true
				}
			}
			if len(dest) == 0 {
				continue
			}
			key := canonicalSubsetKey(dest)
			id, ok := seen[key]
			if !ok {
				id = len(order)
				seen[key] = id
				order = append(order, dest)
				queue = append(queue, subset{states: dest, id: id})
			}
			edges = append(edges, pendingEdge{from: cur.id, to: id, sym: s})
		}
	}

	out, err := Skeleton(b.alphabet, len(order))
	if err != nil {
		panic(NewInternalError("deterministic_form: skeleton construction failed", err))
	}
	_ = out.SetInitial(0)
	for id, states := range order {
		if b.anyAccepting(states) {
			_ = out.SetAccepting(id, true)
		}
	}
	for _, e := range edges {
		_ = out.AddSymbolTransition(e.from, e.to, e.sym)
	}
	return out
}
