package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// buildS5Regex is the §8 scenario S5 regex: "a*b|ababa" over {a,b}.
func buildS5Regex() *Regex {
	aStarB := Concat(Star(Lit([]Symbol{'a'})), Lit([]Symbol{'b'}))
	ababa := Lit([]Symbol{'a', 'b', 'a', 'b', 'a'})
	return Union(aStarB, ababa)
}

func TestScenarioS5(t *testing.T) {
	alphabet := []Symbol{'a', 'b'}
	r := buildS5Regex()
	nfa := FromRegex(alphabet, r)
	min := nfa.MinimalCompleteDeterministicForm()

	for _, w := range []string{"ababa", "aaaab", "b"} {
		assert.Truef(t, min.Accepted([]Symbol(w)), "expected %q to be accepted", w)
	}
	for _, w := range []string{"baba", "baaa", "aabb"} {
		assert.Falsef(t, min.Accepted([]Symbol(w)), "expected %q to be rejected", w)
	}
}

func TestRegexRoundTripPreservesLanguage(t *testing.T) {
	alphabet := []Symbol{'0', '1'}
	a := buildS3(t)
	r, err := RegexOf(a)
	assert.NoError(t, err)
	roundTripped := FromRegex(alphabet, r)
	for _, w := range allWordsUpTo(alphabet, 8) {
		assert.Equalf(t, a.Accepted(w), roundTripped.Accepted(w), "round trip mismatch on %q", string(w))
	}
}

func TestRegexOfEmptyLanguageFails(t *testing.T) {
	a, _ := Skeleton([]Symbol{'a'}, 2)
	_, err := RegexOf(a)
	assert.Error(t, err)
	aerr, ok := err.(*Error)
	assert.True(t, ok)
	assert.Equal(t, ErrorTypeLanguageEmpty, aerr.Type)
}

func TestRegexOfAcceptsEmptyWordWhenInitialAccepting(t *testing.T) {
	a, _ := Skeleton([]Symbol{'a'}, 1)
	_ = a.SetAccepting(0, true)
	r, err := RegexOf(a)
	assert.NoError(t, err)
	rebuilt := FromRegex([]Symbol{'a'}, r)
	assert.True(t, rebuilt.Accepted(nil))
	assert.False(t, rebuilt.Accepted([]Symbol{'a'}))
}
