package history

import (
	"errors"

	"github.com/dshills/undotree/internal/engine/tracking"
)

// Guard holds a batch open until Close. Use it with defer:
//
//	g := ws.Capture()
//	defer g.Close()
//	g.Data().Name.Set("draft")
type Guard[T tracking.Node] struct {
	ws     *Workspace[T]
	active bool
}

// Capture opens a batch and returns a guard that closes it.
func (w *Workspace[T]) Capture() *Guard[T] {
	w.BeginOp()
	return &Guard[T]{ws: w, active: true}
}

// Data returns the tracked tree.
func (g *Guard[T]) Data() T {
	return g.ws.data
}

// Close closes the batch.
// Safe to call multiple times; only the first call has effect.
func (g *Guard[T]) Close() {
	if g.active {
		g.active = false
		g.ws.EndOp()
	}
}

// Rollback reverts the changes made in the open batch.
func (g *Guard[T]) Rollback() error {
	if !g.active {
		return ErrNoBatch
	}
	return g.ws.Rollback()
}

// Mutate runs fn inside a batch. The batch is closed on every return path,
// including a panic, and whatever fn changed is committed even when it
// returns an error.
func (w *Workspace[T]) Mutate(fn func(T) error) error {
	g := w.Capture()
	defer g.Close()
	return fn(g.Data())
}

// Transaction runs fn inside a batch.
// If fn returns an error, the batch is rolled back before it is closed.
// Inside an enclosing batch the rollback reverts everything that batch
// changed so far.
func (w *Workspace[T]) Transaction(fn func(T) error) error {
	g := w.Capture()
	defer g.Close()

	if err := fn(g.Data()); err != nil {
		if rerr := g.Rollback(); rerr != nil {
			return errors.Join(err, rerr)
		}
		return err
	}
	return nil
}
