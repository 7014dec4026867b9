package automaton

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmartConstructorLaws(t *testing.T) {
	x := Lit([]Symbol{'x', 'y'})

	if got := Concat(EmptyLiteral(), x); !reflect.DeepEqual(got, x) {
		t.Fatalf("Concat(empty, x) should equal x, got %+v", got)
	}
	if got := Concat(x, EmptyLiteral()); !reflect.DeepEqual(got, x) {
		t.Fatalf("Concat(x, empty) should equal x, got %+v", got)
	}
	if got := Star(EmptyLiteral()); !got.isEmptyLiteral() {
		t.Fatalf("Star(empty) should be the empty literal, got %+v", got)
	}
}

func TestConcatMergesTwoLiterals(t *testing.T) {
	got := Concat(Lit([]Symbol{'a'}), Lit([]Symbol{'b', 'c'}))
	assert.Equal(t, RegexLiteral, got.Kind)
	assert.Equal(t, []Symbol{'a', 'b', 'c'}, got.Word)
}

func TestUnionPreservesOperandOrderWithoutNormalizing(t *testing.T) {
	l, r := Lit([]Symbol{'a'}), Lit([]Symbol{'a'})
	got := Union(l, r)
	assert.Equal(t, RegexUnion, got.Kind)
	assert.Same(t, l, got.Left)
	assert.Same(t, r, got.Right)
}

func TestDefaultRegexIsEmptyLiteral(t *testing.T) {
	var r Regex
	assert.Equal(t, RegexLiteral, r.Kind)
	assert.Empty(t, r.Word)
}
