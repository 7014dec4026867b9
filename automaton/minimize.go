package automaton

import "sort"

// MinimalCompleteDeterministicForm returns a complete deterministic
// automaton recognizing the same language as a, with a minimum state
// count over its equivalence class, via Moore-style partition refinement
// (spec §4.7).
func (a *Automaton) MinimalCompleteDeterministicForm() *Automaton {
	c := a.CompleteDeterministicForm()

	reachable := c.reachableStates()
	var r []int
	for q := range reachable {
		r = append(r, q)
	}
	sort.Ints(r)

	class := make(map[int]int, len(r))
	var classes [][]int
	acceptClass, nonAcceptClass := []int{}, []int{}
	for _, q := range r {
		if c.accepting[q] {
			acceptClass = append(acceptClass, q)
		} else {
			nonAcceptClass = append(nonAcceptClass, q)
		}
	}
	classes = [][]int{acceptClass, nonAcceptClass}
	for idx, cl := range classes {
		for _, q := range cl {
			class[q] = idx
		}
	}

	rounds := len(r) - 1
	if rounds < 0 {
		rounds = 0
	}
	for round := 0; round < rounds; round++ {
		changed := false
		for _, s := range c.alphabet {
			var newClasses [][]int
			newClass := make(map[int]int, len(r))
			for _, cl := range classes {
				if len(cl) == 0 {
					newClasses = append(newClasses, cl)
					continue
				}
				groups := make(map[int][]int)
				var order []int
				for _, q := range cl {
					dests := c.delta[q][symbolKey(s)]
					target := -1
					if len(dests) > 0 {
						target = class[dests[0]]
					}
					if _, ok := groups[target]; !ok {
						order = append(order, target)
					}
					groups[target] = append(groups[target], q)
				}
				if len(groups) > 1 {
					changed = true
				}
				for _, t := range order {
					newClasses = append(newClasses, groups[t])
				}
			}
			classes = newClasses
			for idx, cl := range classes {
				for _, q := range cl {
					newClass[q] = idx
				}
			}
			class = newClass
		}
		if !changed {
			break
		}
	}

	// Empty classes (permitted by §9: an empty initial accepting or
	// non-accepting class must not crash the algorithm) are retained
	// through refinement for uniformity but have no effect on the
	// result: they contribute no state to the quotient automaton.
	nonEmpty := classes[:0:0]
	for _, cl := range classes {
		if len(cl) > 0 {
			nonEmpty = append(nonEmpty, cl)
		}
	}
	classes = nonEmpty

	sort.Slice(classes, func(i, j int) bool {
		mi, mj := minOrMax(classes[i]), minOrMax(classes[j])
		return mi < mj
	})
	finalClass := make(map[int]int, len(r))
	for idx, cl := range classes {
		for _, q := range cl {
			finalClass[q] = idx
		}
	}

	out, err := Skeleton(c.alphabet, len(classes))
	if err != nil {
		panic(NewInternalError("minimal_complete_deterministic_form: skeleton construction failed", err))
	}
	_ = out.SetInitial(finalClass[c.initial])
	for idx, cl := range classes {
		for _, q := range cl {
			if c.accepting[q] {
				_ = out.SetAccepting(idx, true)
				break
			}
		}
	}
	for idx, cl := range classes {
		if len(cl) == 0 {
			continue
		}
		rep := cl[0]
		for _, s := range c.alphabet {
			dests := c.delta[rep][symbolKey(s)]
			if len(dests) > 0 {
				_ = out.AddSymbolTransition(idx, finalClass[dests[0]], s)
			}
		}
	}
	return out
}

func minOrMax(cl []int) int {
	if len(cl) == 0 {
		return 1 << 30
	}
	m := cl[0]
	for _, q := range cl[1:] {
		if q < m {
			m = q
		}
	}
	return m
}

func (a *Automaton) reachableStates() map[int]bool {
	visited := map[int]bool{a.initial: true}
	queue := []int{a.initial}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, dests := range a.delta[cur] {
			for _, to := range dests {
				if !visited[to] {
					visited[to] = true
					queue = append(queue, to)
				}
			}
		}
	}
	return visited
}
