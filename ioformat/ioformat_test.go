package ioformat

import (
	"testing"

	"github.com/dsonic0912/automaton-fsm/automaton"
	"github.com/stretchr/testify/assert"
)

func alphaAB() []automaton.Symbol { return []automaton.Symbol{'a', 'b'} }

// S6: parse → emit → parse round-trips and matches S2's language.
func TestParseEmitRoundTrip(t *testing.T) {
	text := "0\n1\n0 0 a\n0 1\n1 1 b\n"
	a, err := Parse(alphaAB(), text)
	assert.NoError(t, err)
	assert.Equal(t, 0, a.Initial())
	assert.True(t, a.Accepting(1))

	emitted := Emit(a)
	b, err := Parse(alphaAB(), emitted)
	assert.NoError(t, err)

	wordsUpTo(alphaAB(), 6, func(w []automaton.Symbol) {
		assert.Equal(t, a.Accepted(w), b.Accepted(w), "word %v", w)
	})

	// S2's language: accept "", "b", "aa", "abbb"; reject "aba", "bba".
	assert.True(t, a.Accepted(nil))
	assert.True(t, a.Accepted([]automaton.Symbol("b")))
	assert.True(t, a.Accepted([]automaton.Symbol("aa")))
	assert.True(t, a.Accepted([]automaton.Symbol("abbb")))
	assert.False(t, a.Accepted([]automaton.Symbol("aba")))
	assert.False(t, a.Accepted([]automaton.Symbol("bba")))
}

func TestParseGrowsToMentionedStates(t *testing.T) {
	a, err := Parse(alphaAB(), "0\n\n0 3 a\n")
	assert.NoError(t, err)
	assert.Equal(t, 4, a.Size())
}

func TestParseRejectsMultiCharSymbolToken(t *testing.T) {
	_, err := Parse(alphaAB(), "0\n\n0 1 ab\n")
	assert.Error(t, err)
	aerr, ok := err.(*automaton.Error)
	if assert.True(t, ok) {
		assert.Equal(t, automaton.ErrorTypeMalformedInput, aerr.Type)
	}
}

func TestParseRejectsSymbolOutsideAlphabet(t *testing.T) {
	_, err := Parse(alphaAB(), "0\n\n0 1 z\n")
	assert.Error(t, err)
}

func TestParseRejectsNonIntegerInitial(t *testing.T) {
	_, err := Parse(alphaAB(), "x\n\n")
	assert.Error(t, err)
}

func TestParseCollectsMultipleErrors(t *testing.T) {
	_, err := Parse(alphaAB(), "0\nx y\n0 1 ab\n0 2 cd\n")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "4 errors occurred")
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
