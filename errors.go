package undotree

import (
	"github.com/dshills/undotree/internal/engine/history"
	"github.com/dshills/undotree/internal/engine/tracking"
)

// Errors returned by undotree operations.
var (
	// ErrStateCorruption indicates a node did not hold the value an op
	// expected, because it was changed without being tracked.
	ErrStateCorruption = tracking.ErrStateCorruption

	// ErrOpMismatch indicates an op of the wrong type was given to a node.
	ErrOpMismatch = tracking.ErrOpMismatch

	// ErrUnknownField indicates a composite op names an untracked field.
	ErrUnknownField = tracking.ErrUnknownField

	// ErrUnbalancedBatch is the panic value of EndOp without BeginOp.
	ErrUnbalancedBatch = history.ErrUnbalancedBatch

	// ErrNoBatch indicates Rollback was called while idle.
	ErrNoBatch = history.ErrNoBatch

	// ErrBatchOpen indicates undo, redo, external ops or Clear were called
	// while a batch is open.
	ErrBatchOpen = history.ErrBatchOpen
)

// CorruptionError describes a failed integrity check.
type CorruptionError = tracking.CorruptionError
