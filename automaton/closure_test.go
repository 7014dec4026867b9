package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildS1 is the §8 scenario S1: alphabet {a,b,c}, DFA q0-a->q0, q0-b->q1,
// q1-c->q1, accepting={q1}.
func buildS1(t *testing.T) *Automaton {
	t.Helper()
	a := NewBuilder([]Symbol{'a', 'b', 'c'}, 2).
		WithAccepting(1).
		WithTransitions(
			T(0, 'a', 0),
			T(0, 'b', 1),
			T(1, 'c', 1),
		).MustBuild()
	return a
}

func TestScenarioS1(t *testing.T) {
	a := buildS1(t)
	for _, w := range []string{"abc", "b", "aaab", "bc"} {
		assert.Truef(t, a.Accepted([]Symbol(w)), "expected %q to be accepted", w)
	}
	for _, w := range []string{"ac", "a", "bb", "cba"} {
		assert.Falsef(t, a.Accepted([]Symbol(w)), "expected %q to be rejected", w)
	}
}

// buildS2 is the §8 scenario S2: alphabet {a,b}, NFA q0-a->q0, q0-ε->q1,
// q1-b->q1, accepting={q1}.
func buildS2(t *testing.T) *Automaton {
	t.Helper()
	a := NewBuilder([]Symbol{'a', 'b'}, 2).
		WithAccepting(1).
		WithTransitions(
			T(0, 'a', 0),
			Eps(0, 1),
			T(1, 'b', 1),
		).MustBuild()
	return a
}

func TestScenarioS2(t *testing.T) {
	a := buildS2(t)
	for _, w := range []string{"", "b", "aa", "abbb"} {
		assert.Truef(t, a.Accepted([]Symbol(w)), "expected %q to be accepted", w)
	}
	for _, w := range []string{"aba", "bba", "c"} {
		assert.Falsef(t, a.Accepted([]Symbol(w)), "expected %q to be rejected", w)
	}
}

func TestAcceptedEmptyWordMatchesEpsilonClosure(t *testing.T) {
	a := buildS2(t)
	closed := a.epsilonClosure(a.Initial())
	expect := a.anyAccepting(closed)
	assert.Equal(t, expect, a.Accepted(nil))
}

func TestSingleSymbolFormPreservesLanguage(t *testing.T) {
	a := buildS2(t)
	b := a.SingleSymbolForm()
	assert.True(t, b.IsSingleSymbol())
	words := []string{"", "b", "aa", "abbb", "aba", "bba"}
	for _, w := range words {
		assert.Equalf(t, a.Accepted([]Symbol(w)), b.Accepted([]Symbol(w)), "language mismatch on %q", w)
	}
}

func TestSingleSymbolFormOfAlreadySingleSymbolIsIndependentCopy(t *testing.T) {
	a := buildS1(t)
	b := a.SingleSymbolForm()
	_ = b.AddSymbolTransition(0, 1, 'c')
	assert.NotEqual(t, len(a.SymbolTransitions(0, 'c')), len(b.SymbolTransitions(0, 'c')))
}
