// Package history records committed changes of a tracked tree and moves
// the tree back and forth through them.
//
// A Workspace owns one root tracking.Node and an ordered list of entries.
// Each entry carries the op of one closed batch and the version allocated
// when the batch was opened.
//
// # Batches
//
// Mutations are grouped into batches. BeginOp and EndOp nest; only the
// outermost EndOp commits, and it commits only if the tree changed:
//
//	ws := history.New(root)
//
//	ws.BeginOp()
//	root.X.Set(4)
//	ws.EndOp()
//
// Mutate and Capture wrap the pair so it stays balanced on every return
// path:
//
//	err := ws.Mutate(func(p *Point) error {
//	    p.X.Set(4)
//	    return nil
//	})
//
//	g := ws.Capture()
//	defer g.Close()
//	g.Data().X.Set(4)
//
// Rollback reverts the open batch to the last committed state without
// closing it. Transaction rolls back automatically when its function fails.
//
// # Undo and Redo
//
// The cursor separates applied entries from the redo tail. Undo reverts
// back to and including the most recent user entry, Redo re-applies up to
// and including the next one. Committing a new batch after an undo discards
// the redo tail.
//
//	idx, ok, err := ws.Undo()
//	idx, ok, err = ws.Redo()
//
// UndoTo, RedoTo and SkipTo address entries by version.
//
// # External Ops
//
// ApplyExternal applies an op produced elsewhere (for example by a remote
// peer) and records it as a robot entry. Robot entries are undone and
// redone together with the user entry they follow.
//
// # Changes Outside Batches
//
// A change made to the tree while no batch is open is not recorded. The
// next BeginOp keeps the changed value as the new baseline and logs a
// warning. Undoing past such a change reports tracking.ErrStateCorruption.
//
// # Thread Safety
//
// A Workspace is not safe for concurrent use. Callers that share one across
// goroutines must serialize access themselves.
package history
