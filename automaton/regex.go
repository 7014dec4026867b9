package automaton

// RegexKind distinguishes the four Regex variants.
type RegexKind int

const (
	// RegexLiteral denotes exactly the word Word.
	RegexLiteral RegexKind = iota
	// RegexConcat denotes L(Left) . L(Right).
	RegexConcat
	// RegexUnion denotes L(Left) ∪ L(Right).
	RegexUnion
	// RegexStar denotes L(Left)*.
	RegexStar
)

// Regex is an algebraic expression tree over a symbol alphabet. The zero
// value is the empty literal, matching the spec's "default Regex is the
// empty literal." Values are built exclusively through the Lit/
// Concat/Union/Star smart constructors below, never through struct
// literals, so the normalization laws always hold.
type Regex struct {
	Kind  RegexKind
	Word  []Symbol
	Left  *Regex
	Right *Regex
}

// Lit builds a Literal regex denoting exactly the word w.
func Lit(w []Symbol) *Regex {
	return &Regex{Kind: RegexLiteral, Word: append([]Symbol(nil), w...)}
}

// EmptyLiteral is the empty-word literal, the Regex zero value.
func EmptyLiteral() *Regex {
	return &Regex{Kind: RegexLiteral}
}

func (r *Regex) isEmptyLiteral() bool {
	return r.Kind == RegexLiteral && len(r.Word) == 0
}

// Concat is the smart constructor for concatenation: an empty-literal
// operand on either side is elided, and two literals merge into one
// (spec §3).
func Concat(l, r *Regex) *Regex {
	if l.isEmptyLiteral() {
		return r
	}
	if r.isEmptyLiteral() {
		return l
	}
	if l.Kind == RegexLiteral && r.Kind == RegexLiteral {
		return Lit(append(append([]Symbol(nil), l.Word...), r.Word...))
	}
	return &Regex{Kind: RegexConcat, Left: l, Right: r}
}

// Union is the smart constructor for alternation. It performs no
// normalization; operand order is preserved.
func Union(l, r *Regex) *Regex {
	return &Regex{Kind: RegexUnion, Left: l, Right: r}
}

// Star is the smart constructor for Kleene star: Star of the empty
// literal returns the empty literal (spec §3).
func Star(e *Regex) *Regex {
	if e.isEmptyLiteral() {
		return e
	}
	return &Regex{Kind: RegexStar, Left: e}
}
