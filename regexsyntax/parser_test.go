package regexsyntax

import (
	"testing"

	"github.com/dsonic0912/automaton-fsm/automaton"
	"github.com/stretchr/testify/assert"
)

func alphaAB() []automaton.Symbol { return []automaton.Symbol{'a', 'b'} }

func TestParseSymbol(t *testing.T) {
	r, err := Parse(alphaAB(), "a")
	assert.NoError(t, err)
	assert.Equal(t, automaton.RegexLiteral, r.Kind)
	assert.Equal(t, []automaton.Symbol{'a'}, r.Word)
}

func TestParseConcatenation(t *testing.T) {
	r, err := Parse(alphaAB(), "ab")
	assert.NoError(t, err)
	// the smart constructor merges two literals into one
	assert.Equal(t, automaton.RegexLiteral, r.Kind)
	assert.Equal(t, []automaton.Symbol{'a', 'b'}, r.Word)
}

func TestParseUnion(t *testing.T) {
	r, err := Parse(alphaAB(), "a|b")
	assert.NoError(t, err)
	assert.Equal(t, automaton.RegexUnion, r.Kind)
}

func TestParseStarBindsTighterThanConcat(t *testing.T) {
	r, err := Parse(alphaAB(), "a*b")
	assert.NoError(t, err)
	assert.Equal(t, automaton.RegexConcat, r.Kind)
	assert.Equal(t, automaton.RegexStar, r.Left.Kind)
}

func TestParseConcatBindsTighterThanUnion(t *testing.T) {
	r, err := Parse(alphaAB(), "ab|a")
	assert.NoError(t, err)
	assert.Equal(t, automaton.RegexUnion, r.Kind)
	assert.Equal(t, []automaton.Symbol{'a', 'b'}, r.Left.Word)
}

func TestParseParentheses(t *testing.T) {
	r, err := Parse(alphaAB(), "(a|b)*")
	assert.NoError(t, err)
	assert.Equal(t, automaton.RegexStar, r.Kind)
	assert.Equal(t, automaton.RegexUnion, r.Left.Kind)
}

func TestParseRejectsSymbolOutsideAlphabet(t *testing.T) {
	_, err := Parse(alphaAB(), "c")
	assert.Error(t, err)
	aerr, ok := err.(*automaton.Error)
	if assert.True(t, ok) {
		assert.Equal(t, automaton.ErrorTypeMalformedInput, aerr.Type)
	}
}

func TestParseRejectsUnmatchedParen(t *testing.T) {
	_, err := Parse(alphaAB(), "(a")
	assert.Error(t, err)
}

func TestParseRejectsTrailingInput(t *testing.T) {
	_, err := Parse(alphaAB(), "a)")
	assert.Error(t, err)
}

func TestParseRejectsEmptyConcat(t *testing.T) {
	_, err := Parse(alphaAB(), "|a")
	assert.Error(t, err)
}

func TestEmitIsFullyParenthesized(t *testing.T) {
	r, err := Parse(alphaAB(), "a*b|a")
	assert.NoError(t, err)
	out := Emit(r)
	assert.Equal(t, "((((a)*)(b))|(a))", out)
	reparsed, err := Parse(alphaAB(), out)
	assert.NoError(t, err)
	// round-tripping through Emit must preserve the language: same
	// acceptance on every word up to a small bound.
	alphabet := alphaAB()
	wordsUpTo(alphabet, 4, func(w []automaton.Symbol) {
		want := automaton.FromRegex(alphabet, r).Accepted(w)
		got := automaton.FromRegex(alphabet, reparsed).Accepted(w)
		assert.Equal(t, want, got, "word %v", w)
	})
}

func wordsUpTo(alphabet []automaton.Symbol, maxLen int, f func([]automaton.Symbol)) {
	var rec func(prefix []automaton.Symbol, depth int)
	rec = func(prefix []automaton.Symbol, depth int) {
		f(append([]automaton.Symbol(nil), prefix...))
		if depth == maxLen {
			return
		}
		for _, s := range alphabet {
			next := append(append([]automaton.Symbol(nil), prefix...), s)
			rec(next, depth+1)
		}
	}
	rec(nil, 0)
}
