// Package tracking provides change detection for in-memory state trees.
//
// Every trackable value implements [Node]. A node remembers its value as of
// the last reset, can describe what changed since then as an [Op], and can
// replay an op in either direction:
//   - Dirty reports whether the value differs from the last reset
//   - ChangeOp describes the difference, or returns nil
//   - Reset makes the current value the new baseline
//   - Back and Forward undo or redo a previously recorded op
//
// # Core Components
//
//   - [Leaf]: a scalar value recorded as a {Prev, Curr} pair
//   - [Text]: a string recorded as positional insert/delete/replace changes
//   - [Composite]: a named set of child nodes that aggregates their ops
//
// # Usage
//
// Reads go through Get, which has no side effects. Writes go through Mut or
// Set, which snapshot the baseline on first use:
//
//	x := tracking.NewLeaf(1)
//	x.Set(4)
//	op := x.ChangeOp() // &LeafOp[int]{Prev: 1, Curr: 4}
//	x.Reset()
//	_ = x.Back(op)     // x.Get() == 1
//
// Structures are built from named fields. Embedding a Composite gives the
// structure the Node methods:
//
//	type Point struct {
//	    *tracking.Composite
//	    X *tracking.Leaf[float64]
//	    Y *tracking.Leaf[float64]
//	}
//
//	func NewPoint(x, y float64) *Point {
//	    p := &Point{X: tracking.NewLeaf(x), Y: tracking.NewLeaf(y)}
//	    p.Composite = tracking.NewComposite(
//	        tracking.Field("x", p.X),
//	        tracking.Field("y", p.Y),
//	    )
//	    return p
//	}
//
// # Diffing
//
// Text ops are computed with a character level longest common subsequence
// diff. See [Diff] and [DiffOptions].
//
// # Integrity
//
// Back and Forward verify that the live value matches the op being applied.
// A mismatch means something changed the value without going through Mut,
// and is reported as a [*CorruptionError] wrapping [ErrStateCorruption].
//
// # Thread Safety
//
// Nodes are not safe for concurrent use. The owner serializes access.
package tracking
