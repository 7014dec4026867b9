package automaton

import "testing"

func TestSkeletonShape(t *testing.T) {
	a, err := Skeleton([]Symbol{'a', 'b'}, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.Size() != 3 {
		t.Fatalf("expected size 3, got %d", a.Size())
	}
	if a.Initial() != 0 {
		t.Fatalf("expected initial 0, got %d", a.Initial())
	}
	for q := 0; q < 3; q++ {
		if a.Accepting(q) {
			t.Fatalf("state %d should not be accepting in a fresh skeleton", q)
		}
	}
}

func TestSkeletonRejectsZeroSize(t *testing.T) {
	if _, err := Skeleton([]Symbol{'a'}, 0); err == nil {
		t.Fatal("expected ShapeInvalid error for size 0")
	}
}

func TestGrowRejectsShrink(t *testing.T) {
	a, _ := Skeleton([]Symbol{'a'}, 3)
	err := a.Grow(2)
	if err == nil {
		t.Fatal("expected ShrinkForbidden error")
	}
	aerr, ok := err.(*Error)
	if !ok || aerr.Type != ErrorTypeShrinkForbidden {
		t.Fatalf("expected ShrinkForbidden, got %v", err)
	}
}

func TestMutationOutOfRange(t *testing.T) {
	a, _ := Skeleton([]Symbol{'a'}, 2)
	if err := a.SetInitial(5); err == nil {
		t.Fatal("expected OutOfRange error for SetInitial")
	}
	if err := a.SetAccepting(-1, true); err == nil {
		t.Fatal("expected OutOfRange error for SetAccepting")
	}
	if err := a.AddSymbolTransition(0, 9, 'a'); err == nil {
		t.Fatal("expected OutOfRange error for AddSymbolTransition")
	}
	if err := a.AddEmptyTransition(9, 0); err == nil {
		t.Fatal("expected OutOfRange error for AddEmptyTransition")
	}
}

func TestAssembleRejectsBadShape(t *testing.T) {
	_, err := Assemble([]Symbol{'a'}, 5, []bool{false, false}, [][]TransitionSpec{{}, {}})
	if err == nil {
		t.Fatal("expected ShapeInvalid for out-of-range initial state")
	}
	sym := Symbol('z')
	_, err = Assemble([]Symbol{'a'}, 0, []bool{false, false}, [][]TransitionSpec{{{Symbol: &sym, To: 1}}, {}})
	if err == nil {
		t.Fatal("expected ShapeInvalid for a symbol outside the alphabet")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	a, _ := Skeleton([]Symbol{'a'}, 2)
	_ = a.AddSymbolTransition(0, 1, 'a')
	b := a.Clone()
	_ = b.AddSymbolTransition(0, 0, 'a')
	if len(a.SymbolTransitions(0, 'a')) != 1 {
		t.Fatalf("mutating the clone must not affect the original")
	}
	if len(b.SymbolTransitions(0, 'a')) != 2 {
		t.Fatalf("expected 2 transitions on the clone, got %d", len(b.SymbolTransitions(0, 'a')))
	}
}

func TestAllTransitionsEnumeratesDuplicates(t *testing.T) {
	a, _ := Skeleton([]Symbol{'a'}, 2)
	_ = a.AddSymbolTransition(0, 1, 'a')
	_ = a.AddSymbolTransition(0, 1, 'a')
	entries := a.AllTransitions(0)
	if len(entries) != 2 {
		t.Fatalf("expected 2 enumerated entries for a duplicated edge, got %d", len(entries))
	}
}
