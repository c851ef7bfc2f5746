package tracking

import (
	"errors"
	"fmt"
)

// Errors returned by node operations.
var (
	// ErrStateCorruption indicates the live value does not match the op
	// being applied, which means it was mutated without being tracked.
	ErrStateCorruption = errors.New("state corruption")

	// ErrOpMismatch indicates an op of the wrong type was given to a node.
	ErrOpMismatch = errors.New("op type mismatch")

	// ErrUnknownField indicates a composite op names a field the composite
	// does not track.
	ErrUnknownField = errors.New("unknown field")
)

// CorruptionError describes a failed integrity check in Back or Forward.
type CorruptionError struct {
	// Node is the kind of node that failed ("leaf", "text").
	Node string
	// Reason describes the mismatch.
	Reason string
}

// Error implements the error interface.
func (e *CorruptionError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Node, ErrStateCorruption, e.Reason)
}

// Unwrap returns ErrStateCorruption.
func (e *CorruptionError) Unwrap() error {
	return ErrStateCorruption
}

func corruption(node, format string, args ...any) error {
	return &CorruptionError{Node: node, Reason: fmt.Sprintf(format, args...)}
}

func opMismatch(want string, got Op) error {
	return fmt.Errorf("%w: want %s, got %T", ErrOpMismatch, want, got)
}
