package tracking

import (
	"errors"
	"math"
	"testing"
)

func TestLeafGetHasNoSideEffect(t *testing.T) {
	l := NewLeaf(1)
	_ = l.Get()
	if l.Dirty() {
		t.Error("Get should not mark the leaf dirty")
	}
	if l.origin != nil {
		t.Error("Get should not snapshot the origin")
	}
}

func TestLeafMutSnapshotsOnce(t *testing.T) {
	l := NewLeaf(1)
	*l.Mut() = 2
	*l.Mut() = 3

	if l.origin == nil || *l.origin != 1 {
		t.Fatalf("origin = %v, want 1", l.origin)
	}
	if l.Get() != 3 {
		t.Errorf("Get() = %d, want 3", l.Get())
	}
}

func TestLeafDirty(t *testing.T) {
	l := NewLeaf("a")
	if l.Dirty() {
		t.Error("new leaf should not be dirty")
	}

	_ = l.Mut()
	if l.Dirty() {
		t.Error("leaf accessed but unchanged should not be dirty")
	}

	l.Set("b")
	if !l.Dirty() {
		t.Error("leaf should be dirty after Set")
	}

	l.Set("a")
	if l.Dirty() {
		t.Error("leaf set back to its origin should not be dirty")
	}
	if op := l.ChangeOp(); op != nil {
		t.Errorf("ChangeOp() = %v, want nil", op)
	}
}

func TestLeafChangeOp(t *testing.T) {
	l := NewLeaf(1)
	l.Set(4)

	op, ok := l.ChangeOp().(*LeafOp[int])
	if !ok {
		t.Fatalf("ChangeOp() type = %T", l.ChangeOp())
	}
	if op.Prev != 1 || op.Curr != 4 {
		t.Errorf("op = %v, want 1 -> 4", op)
	}

	l.Reset()
	if l.Dirty() {
		t.Error("Reset should clear the pending change")
	}
	if l.ChangeOp() != nil {
		t.Error("ChangeOp after Reset should be nil")
	}
}

func TestLeafBackForward(t *testing.T) {
	l := NewLeaf(1.5)
	l.Set(2.5)
	op := l.ChangeOp()
	l.Reset()

	if err := l.Back(op); err != nil {
		t.Fatalf("Back failed: %v", err)
	}
	if l.Get() != 1.5 {
		t.Errorf("after Back got %v, want 1.5", l.Get())
	}

	if err := l.Forward(op); err != nil {
		t.Fatalf("Forward failed: %v", err)
	}
	if l.Get() != 2.5 {
		t.Errorf("after Forward got %v, want 2.5", l.Get())
	}
	if l.Dirty() {
		t.Error("Forward should leave the leaf clean")
	}
}

func TestLeafCorruption(t *testing.T) {
	l := NewLeaf(10)
	op := &LeafOp[int]{Prev: 1, Curr: 2}

	err := l.Back(op)
	if !errors.Is(err, ErrStateCorruption) {
		t.Fatalf("Back error = %v, want ErrStateCorruption", err)
	}
	var ce *CorruptionError
	if !errors.As(err, &ce) {
		t.Fatalf("Back error %T is not a *CorruptionError", err)
	}
	if ce.Node != "leaf" {
		t.Errorf("Node = %q, want leaf", ce.Node)
	}
	if l.Get() != 10 {
		t.Errorf("failed Back changed the value to %d", l.Get())
	}

	if err := l.Forward(op); !errors.Is(err, ErrStateCorruption) {
		t.Errorf("Forward error = %v, want ErrStateCorruption", err)
	}
}

func TestLeafOpMismatch(t *testing.T) {
	l := NewLeaf(1)

	tests := []struct {
		name string
		op   Op
	}{
		{"nil", nil},
		{"wrong type param", &LeafOp[string]{Prev: "a", Curr: "b"}},
		{"text op", TextOp{NewInsertChange(0, "x")}},
		{"typed nil", (*LeafOp[int])(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := l.Back(tt.op); !errors.Is(err, ErrOpMismatch) {
				t.Errorf("Back error = %v, want ErrOpMismatch", err)
			}
		})
	}
}

func TestLeafOpInvert(t *testing.T) {
	op := &LeafOp[int]{Prev: 1, Curr: 2}
	inv := op.Invert()
	if inv.Prev != 2 || inv.Curr != 1 {
		t.Errorf("Invert() = %v", inv)
	}
	if op.String() != "1 -> 2" {
		t.Errorf("String() = %q", op.String())
	}
}

func TestLeafNaNNeverMatches(t *testing.T) {
	l := NewLeaf(math.NaN())
	l.Set(math.NaN())
	if !l.Dirty() {
		t.Error("NaN leaf should report dirty")
	}

	op := l.ChangeOp()
	l.Reset()
	if err := l.Back(op); !errors.Is(err, ErrStateCorruption) {
		t.Errorf("Back error = %v, want ErrStateCorruption", err)
	}
}
