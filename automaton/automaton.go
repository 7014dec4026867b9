package automaton

import "strconv"

// Symbol is the alphabet element type. The core is generic over any
// comparable symbol type in principle, but this package fixes it to rune:
// the regex surface grammar in package regexsyntax and the textual I/O
// format in package ioformat both need single-character symbols, and
// carrying a type parameter through every conversion here buys nothing a
// rune alphabet doesn't already give for free.
type Symbol = rune

// transitionKey distinguishes a symbol-step from an epsilon-step, modeling
// the spec's Optional(symbol) transition key as a small struct instead of
// a pointer or an extra sentinel symbol value, so the zero value can never
// be confused with a real symbol.
type transitionKey struct {
	isSymbol bool
	symbol   Symbol
}

func epsilonKey() transitionKey        { return transitionKey{} }
func symbolKey(s Symbol) transitionKey { return transitionKey{isSymbol: true, symbol: s} }

// Automaton is the single representation for deterministic, nondeterministic,
// and epsilon-nondeterministic automata. Which one a given value behaves as
// is a question answered by the predicates in classify.go, never by a type
// distinction. Values are immutable from the caller's point of view once
// built by the conversions in this package; the mutation methods below are
// the only way to grow one in place, and every conversion returns a fresh,
// independent value.
type Automaton struct {
	alphabet    []Symbol
	alphabetSet map[Symbol]bool
	size        int
	initial     int
	accepting   []bool
	delta       []map[transitionKey][]int
}

// Skeleton builds an automaton with size states, initial state 0, no
// accepting states, and no transitions.
func Skeleton(alphabet []Symbol, size int) (*Automaton, error) {
	if size < 1 {
		return nil, NewShapeInvalidError("size must be at least 1")
	}
	a := &Automaton{
		alphabet:    append([]Symbol(nil), alphabet...),
		alphabetSet: toSet(alphabet),
		size:        size,
		initial:     0,
		accepting:   make([]bool, size),
		delta:       make([]map[transitionKey][]int, size),
	}
	for i := range a.delta {
		a.delta[i] = make(map[transitionKey][]int)
	}
	return a, nil
}

// TransitionSpec is one (optional symbol, destination) pair in the
// per-state transition lists passed to Assemble. A nil Symbol pointer
// denotes an epsilon-step.
type TransitionSpec struct {
	Symbol *Symbol
	To     int
}

// Assemble builds an automaton from explicit parts: an initial state, a
// per-state accepting flag, and a per-state list of transitions. It fails
// with ErrorTypeShapeInvalid when any of the invariants in the data model
// are violated.
func Assemble(alphabet []Symbol, initial int, accepting []bool, deltaLists [][]TransitionSpec) (*Automaton, error) {
	n := len(accepting)
	if n == 0 {
		return nil, NewShapeInvalidError("size must be at least 1")
	}
	if len(deltaLists) != n {
		return nil, NewShapeInvalidError("transition table entry count must equal state count")
	}
	if initial < 0 || initial >= n {
		return nil, NewShapeInvalidError("initial state out of range").WithContext("initial", initial).WithContext("size", n)
	}
	alphaSet := toSet(alphabet)
	delta := make([]map[transitionKey][]int, n)
	for q := 0; q < n; q++ {
		delta[q] = make(map[transitionKey][]int)
		for _, t := range deltaLists[q] {
			if t.To < 0 || t.To >= n {
				return nil, NewShapeInvalidError("transition destination out of range").
					WithContext("from", q).WithContext("to", t.To).WithContext("size", n)
			}
			var key transitionKey
			if t.Symbol != nil {
				if !alphaSet[*t.Symbol] {
					return nil, NewShapeInvalidError("transition symbol outside alphabet").
						WithContext("from", q).WithContext("symbol", *t.Symbol)
				}
				key = symbolKey(*t.Symbol)
			} else {
				key = epsilonKey()
			}
			delta[q][key] = append(delta[q][key], t.To)
		}
	}
	return &Automaton{
		alphabet:    append([]Symbol(nil), alphabet...),
		alphabetSet: alphaSet,
		size:        n,
		initial:     initial,
		accepting:   append([]bool(nil), accepting...),
		delta:       delta,
	}, nil
}

func toSet(alphabet []Symbol) map[Symbol]bool {
	set := make(map[Symbol]bool, len(alphabet))
	for _, s := range alphabet {
		set[s] = true
	}
	return set
}

// Alphabet returns the automaton's symbol alphabet, in its original order.
func (a *Automaton) Alphabet() []Symbol {
	return append([]Symbol(nil), a.alphabet...)
}

// HasSymbol reports whether s is a member of the alphabet.
func (a *Automaton) HasSymbol(s Symbol) bool {
	return a.alphabetSet[s]
}

// Size returns the number of states.
func (a *Automaton) Size() int {
	return a.size
}

// Initial returns the initial state index.
func (a *Automaton) Initial() int {
	return a.initial
}

// Accepting reports whether state q is an accepting state.
func (a *Automaton) Accepting(q int) bool {
	return a.accepting[q]
}

// SymbolTransitions returns the destinations reachable from q on symbol s,
// duplicates included. The returned slice is only valid until the next
// mutating call on this automaton.
func (a *Automaton) SymbolTransitions(q int, s Symbol) []int {
	return a.delta[q][symbolKey(s)]
}

// EmptyTransitions returns the destinations reachable from q via an
// epsilon-step, duplicates included.
func (a *Automaton) EmptyTransitions(q int) []int {
	return a.delta[q][epsilonKey()]
}

// TransitionEntry is one enumerated (optional symbol, destination) pair
// returned by AllTransitions; Symbol is nil for an epsilon-step.
type TransitionEntry struct {
	Symbol *Symbol
	To     int
}

// AllTransitions enumerates every outgoing transition of q, one entry per
// destination even when duplicated in the underlying multimap.
func (a *Automaton) AllTransitions(q int) []TransitionEntry {
	var out []TransitionEntry
	for key, dests := range a.delta[q] {
		for _, to := range dests {
			entry := TransitionEntry{To: to}
			if key.isSymbol {
				s := key.symbol
				entry.Symbol = &s
			}
			out = append(out, entry)
		}
	}
	return out
}

// Grow extends the automaton to newSize states. New states are
// non-accepting with no outgoing transitions. It fails with
// ErrorTypeShrinkForbidden if newSize is smaller than the current size.
func (a *Automaton) Grow(newSize int) error {
	if newSize < a.size {
		return NewShrinkForbiddenError(a.size, newSize)
	}
	for a.size < newSize {
		a.accepting = append(a.accepting, false)
		a.delta = append(a.delta, make(map[transitionKey][]int))
		a.size++
	}
	return nil
}

// SetInitial sets the initial state. It fails with ErrorTypeOutOfRange if
// q is outside [0, Size()).
func (a *Automaton) SetInitial(q int) error {
	if q < 0 || q >= a.size {
		return NewOutOfRangeError(q, a.size)
	}
	a.initial = q
	return nil
}

// SetAccepting sets whether q is an accepting state. It fails with
// ErrorTypeOutOfRange if q is outside [0, Size()).
func (a *Automaton) SetAccepting(q int, accept bool) error {
	if q < 0 || q >= a.size {
		return NewOutOfRangeError(q, a.size)
	}
	a.accepting[q] = accept
	return nil
}

// AddSymbolTransition adds a transition from q to qp on symbol s. It fails
// with ErrorTypeOutOfRange if either state index is outside [0, Size()).
func (a *Automaton) AddSymbolTransition(q, qp int, s Symbol) error {
	if q < 0 || q >= a.size {
		return NewOutOfRangeError(q, a.size)
	}
	if qp < 0 || qp >= a.size {
		return NewOutOfRangeError(qp, a.size)
	}
	key := symbolKey(s)
	a.delta[q][key] = append(a.delta[q][key], qp)
	return nil
}

// AddEmptyTransition adds an epsilon transition from q to qp. It fails
// with ErrorTypeOutOfRange if either state index is outside [0, Size()).
func (a *Automaton) AddEmptyTransition(q, qp int) error {
	if q < 0 || q >= a.size {
		return NewOutOfRangeError(q, a.size)
	}
	if qp < 0 || qp >= a.size {
		return NewOutOfRangeError(qp, a.size)
	}
	key := epsilonKey()
	a.delta[q][key] = append(a.delta[q][key], qp)
	return nil
}

// Clone returns an independent copy of a. Every conversion in this package
// that can return "the input unchanged" returns Clone() instead, so
// mutating the result never disturbs the input.
func (a *Automaton) Clone() *Automaton {
	delta := make([]map[transitionKey][]int, a.size)
	for i, m := range a.delta {
		nm := make(map[transitionKey][]int, len(m))
		for k, v := range m {
			nm[k] = append([]int(nil), v...)
		}
		delta[i] = nm
	}
	return &Automaton{
		alphabet:    append([]Symbol(nil), a.alphabet...),
		alphabetSet: toSet(a.alphabet),
		size:        a.size,
		initial:     a.initial,
		accepting:   append([]bool(nil), a.accepting...),
		delta:       delta,
	}
}

// String renders a human-readable dump of the automaton, in the teacher's
// style of printing each part of the FiniteAutomaton on its own line.
func (a *Automaton) String() string {
	s := "Automaton{\n"
	s += "  size: " + strconv.Itoa(a.size) + "\n"
	s += "  initial: " + strconv.Itoa(a.initial) + "\n"
	s += "  accepting:"
	for q := 0; q < a.size; q++ {
		if a.accepting[q] {
			s += " " + strconv.Itoa(q)
		}
	}
	s += "\n  transitions:\n"
	for q := 0; q < a.size; q++ {
		for _, e := range a.AllTransitions(q) {
			if e.Symbol == nil {
				s += "    " + strconv.Itoa(q) + " -> " + strconv.Itoa(e.To) + " (ε)\n"
			} else {
				s += "    " + strconv.Itoa(q) + " -" + string(*e.Symbol) + "-> " + strconv.Itoa(e.To) + "\n"
			}
		}
	}
	s += "}"
	return s
}
