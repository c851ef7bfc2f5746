package history

import (
	"errors"
	"fmt"

	"github.com/dshills/undotree/internal/engine/tracking"
)

// Errors returned by workspace operations.
var (
	// ErrUnbalancedBatch indicates EndOp was called without a matching
	// BeginOp. It is raised as a panic value.
	ErrUnbalancedBatch = errors.New("unbalanced batch: EndOp without BeginOp")

	// ErrNoBatch indicates an operation that requires an open batch was
	// called while idle.
	ErrNoBatch = errors.New("no batch is open")

	// ErrBatchOpen indicates an operation that requires an idle workspace
	// was called while a batch is open.
	ErrBatchOpen = errors.New("batch is open")
)

// fail logs a failed back or forward step of version and wraps its error.
func (w *Workspace[T]) fail(action string, version VersionID, err error, keyvals ...any) error {
	if errors.Is(err, tracking.ErrStateCorruption) {
		w.metrics.corruption()
	}
	keyvals = append(keyvals, "version", version, "cursor", w.cursor, "err", err)
	w.logger.Error(action+" failed", keyvals...)
	return fmt.Errorf("%s %s: %w", action, version, err)
}
