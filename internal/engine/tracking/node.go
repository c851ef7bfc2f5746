package tracking

// Op is the change record produced by a Node. Its concrete type belongs to
// the node that produced it: *LeafOp[T] for leaves, TextOp for text and
// CompositeOp for composites. A nil Op means nothing changed.
type Op any

// Node is implemented by every trackable value, leaf or composite.
type Node interface {
	// Dirty reports whether the value changed since the last reset.
	Dirty() bool

	// ChangeOp describes the change since the last reset, or returns nil.
	ChangeOp() Op

	// Reset makes the current value the baseline for change detection.
	Reset()

	// Back reverts an op previously returned by ChangeOp and resets. On
	// error the value is left unchanged.
	Back(op Op) error

	// Forward re-applies an op previously returned by ChangeOp and resets.
	// On error the value is left unchanged.
	Forward(op Op) error
}
