package automaton

// Builder assembles an Automaton through a fluent, chainable API, mirroring
// the teacher's fsm.AutomatonBuilder (fsm/builder.go) but built around
// dense int states instead of a generic Q type: every With* method that
// used to take a state value now takes a state index, and the size
// argument of NewBuilder takes the place of the teacher's implicit
// state-set collection.
type Builder struct {
	alphabet    []Symbol
	size        int
	initial     int
	accepting   map[int]bool
	transitions []builderTransition
	validator   *InputValidator
	err         error
}

type builderTransition struct {
	from   int
	to     int
	symbol *Symbol
}

// NewBuilder starts a Builder for an automaton of the given size over
// alphabet, with initial state 0.
func NewBuilder(alphabet []Symbol, size int) *Builder {
	return &Builder{
		alphabet:  alphabet,
		size:      size,
		initial:   0,
		accepting: make(map[int]bool),
	}
}

// NewBuilderWithValidation is NewBuilder plus a validator run during Build,
// mirroring the teacher's NewBuilderWithValidation.
func NewBuilderWithValidation(alphabet []Symbol, size int, validator *InputValidator) *Builder {
	b := NewBuilder(alphabet, size)
	b.validator = validator
	return b
}

// WithInitial sets the initial state.
func (b *Builder) WithInitial(q int) *Builder {
	b.initial = q
	return b
}

// WithAccepting marks the given states accepting.
func (b *Builder) WithAccepting(states ...int) *Builder {
	for _, q := range states {
		b.accepting[q] = true
	}
	return b
}

// Transition is one transition spec for WithTransitions; a nil Symbol
// denotes an epsilon-step. T and Eps build them, mirroring the teacher's
// fsm.T helper.
type Transition struct {
	From   int
	To     int
	Symbol *Symbol
}

// T builds a symbol transition spec for WithTransitions.
func T(from int, s Symbol, to int) Transition {
	return Transition{From: from, To: to, Symbol: &s}
}

// Eps builds an epsilon transition spec for WithTransitions.
func Eps(from, to int) Transition {
	return Transition{From: from, To: to}
}

// WithTransitions adds one or more transitions.
func (b *Builder) WithTransitions(ts ...Transition) *Builder {
	for _, t := range ts {
		b.transitions = append(b.transitions, builderTransition{from: t.From, to: t.To, symbol: t.Symbol})
	}
	return b
}

// WithTransition adds a single symbol transition.
func (b *Builder) WithTransition(from int, s Symbol, to int) *Builder {
	return b.WithTransitions(T(from, s, to))
}

// Build assembles the automaton, running the validator (if any) first,
// then the core's own Assemble invariant checks.
func (b *Builder) Build() (*Automaton, error) {
	if b.err != nil {
		return nil, b.err
	}
	deltaLists := make([][]TransitionSpec, b.size)
	for _, t := range b.transitions {
		if t.from < 0 || t.from >= b.size {
			return nil, NewOutOfRangeError(t.from, b.size)
		}
		var spec TransitionSpec
		spec.To = t.to
		if t.symbol != nil {
			s := *t.symbol
			spec.Symbol = &s
		}
		deltaLists[t.from] = append(deltaLists[t.from], spec)
	}
	accepting := make([]bool, b.size)
	for q := range b.accepting {
		if q >= 0 && q < b.size {
			accepting[q] = true
		}
	}
	if b.validator != nil {
		if err := b.validator.ValidateShape(b.size, len(b.alphabet)); err != nil {
			return nil, err
		}
	}
	return Assemble(b.alphabet, b.initial, accepting, deltaLists)
}

// MustBuild is Build but panics on error, mirroring the teacher's
// MustBuild, for use in example/demo code where a bad literal automaton
// is a programming error.
func (b *Builder) MustBuild() *Automaton {
	a, err := b.Build()
	if err != nil {
		panic(err)
	}
	return a
}
