package automaton

// RegexOf returns a Regex denoting L(a), via state elimination (spec
// §4.9). It fails with ErrorTypeLanguageEmpty if a recognizes no words.
// The result is not canonical: a different elimination order yields a
// different, language-equivalent regex.
func RegexOf(a *Automaton) (*Regex, error) {
	n := a.Size()
	sink := n
	width := n + 1

	table := make([][]*Regex, width)
	for i := range table {
		table[i] = make([]*Regex, width)
	}

	merge := func(cur, add *Regex) *Regex {
		if cur == nil {
			return add
		}
		return Union(cur, add)
	}

	for q := 0; q < n; q++ {
		for _, e := range a.AllTransitions(q) {
			var step *Regex
			if e.Symbol == nil {
				step = EmptyLiteral()
			} else {
				step = Lit([]Symbol{*e.Symbol})
			}
			table[q][e.To] = merge(table[q][e.To], step)
		}
	}
	for q := 0; q < n; q++ {
		if a.Accepting(q) {
			table[q][sink] = merge(table[q][sink], EmptyLiteral())
		}
	}

	initial := a.Initial()
	for k := 0; k < n; k++ {
		if k == initial {
			continue
		}
		var froms []int
		for from := 0; from < width; from++ {
			if from != k && table[from][k] != nil {
				froms = append(froms, from)
			}
		}
		for _, from := range froms {
			for to := 0; to < width; to++ {
				if to == k || table[k][to] == nil {
					continue
				}
				var loop *Regex
				if table[k][k] != nil {
					loop = Star(table[k][k])
				}
				var middle *Regex
				if loop != nil {
					middle = Concat(table[from][k], Concat(loop, table[k][to]))
				} else {
					middle = Concat(table[from][k], table[k][to])
				}
				table[from][to] = merge(table[from][to], middle)
			}
		}
		for from := 0; from < width; from++ {
			table[from][k] = nil
		}
	}

	if table[initial][sink] == nil {
		return nil, NewLanguageEmptyError()
	}
	result := table[initial][sink]
	if table[initial][initial] != nil {
		result = Concat(Star(table[initial][initial]), result)
	}
	return result, nil
}
