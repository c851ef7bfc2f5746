package tracking

import "fmt"

// LeafOp records a scalar change.
type LeafOp[T comparable] struct {
	Prev T
	Curr T
}

// Invert returns the op that undoes this one.
func (op *LeafOp[T]) Invert() *LeafOp[T] {
	return &LeafOp[T]{Prev: op.Curr, Curr: op.Prev}
}

// String returns a human-readable representation of the op.
func (op *LeafOp[T]) String() string {
	return fmt.Sprintf("%v -> %v", op.Prev, op.Curr)
}

// Leaf tracks a single comparable value.
//
// The value is read with Get and written with Mut or Set. The first write
// since the last reset remembers the previous value so the change can be
// described and reverted.
//
// Change detection and the integrity checks of Back and Forward compare
// values with ==, which must be reflexive for T. A float NaN is never equal
// to itself, so a leaf holding NaN always reports Dirty and fails Back and
// Forward with a corruption error.
type Leaf[T comparable] struct {
	value  T
	origin *T
}

// NewLeaf creates a leaf holding v with no pending change.
func NewLeaf[T comparable](v T) *Leaf[T] {
	return &Leaf[T]{value: v}
}

// Get returns the current value.
func (l *Leaf[T]) Get() T {
	return l.value
}

// Mut returns a pointer to the value for in-place modification.
func (l *Leaf[T]) Mut() *T {
	if l.origin == nil {
		origin := l.value
		l.origin = &origin
	}
	return &l.value
}

// Set replaces the value.
func (l *Leaf[T]) Set(v T) {
	*l.Mut() = v
}

// Dirty reports whether the value differs from the value at the last reset.
func (l *Leaf[T]) Dirty() bool {
	return l.origin != nil && *l.origin != l.value
}

// ChangeOp returns a *LeafOp[T] describing the change, or nil.
func (l *Leaf[T]) ChangeOp() Op {
	if !l.Dirty() {
		return nil
	}
	return &LeafOp[T]{Prev: *l.origin, Curr: l.value}
}

// Reset forgets the remembered value.
func (l *Leaf[T]) Reset() {
	l.origin = nil
}

// Back restores op.Prev. The current value must equal op.Curr.
func (l *Leaf[T]) Back(op Op) error {
	lop, err := l.leafOp(op)
	if err != nil {
		return err
	}
	if l.value != lop.Curr {
		return corruption("leaf", "back expects %v, found %v", lop.Curr, l.value)
	}
	l.value = lop.Prev
	l.Reset()
	return nil
}

// Forward applies op.Curr. The current value must equal op.Prev.
func (l *Leaf[T]) Forward(op Op) error {
	lop, err := l.leafOp(op)
	if err != nil {
		return err
	}
	if l.value != lop.Prev {
		return corruption("leaf", "forward expects %v, found %v", lop.Prev, l.value)
	}
	l.value = lop.Curr
	l.Reset()
	return nil
}

// String returns the current value formatted with %v.
func (l *Leaf[T]) String() string {
	return fmt.Sprint(l.value)
}

func (l *Leaf[T]) leafOp(op Op) (*LeafOp[T], error) {
	lop, ok := op.(*LeafOp[T])
	if !ok || lop == nil {
		return nil, opMismatch(fmt.Sprintf("%T", lop), op)
	}
	return lop, nil
}
