package history

import (
	"regexp"
	"time"

	"github.com/charmbracelet/log"
	"github.com/sanity-io/litter"

	"github.com/dshills/undotree/internal/engine/tracking"
)

// Workspace owns a tracked tree and the history of its committed changes.
type Workspace[T tracking.Node] struct {
	data T

	// entries[:cursor] are applied, entries[cursor:] is the redo tail.
	entries []Entry
	cursor  int

	depth      int
	pending    VersionID
	hasPending bool

	// userOps counts the applied user entries.
	userOps int

	maxEntries int
	versions   VersionSource
	logger     *log.Logger
	metrics    *metrics
}

// New creates a workspace around data. Any change pending on data is
// accepted as the starting state.
func New[T tracking.Node](data T, opts ...Option) *Workspace[T] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	capacity := o.initialCapacity
	if o.maxEntries > 0 && o.maxEntries < capacity {
		capacity = o.maxEntries
	}

	data.Reset()
	w := &Workspace[T]{
		data:       data,
		entries:    make([]Entry, 0, capacity),
		maxEntries: o.maxEntries,
		versions:   o.versions,
		logger:     o.logger,
		metrics:    newMetrics(o.registerer, o.namespace, o.labels),
	}
	w.metrics.setEntries(0)
	return w
}

// Data returns the tracked tree. Changes must be made inside a batch to be
// recorded.
func (w *Workspace[T]) Data() T {
	return w.data
}

// BeginOp opens a batch, or nests inside the open one.
func (w *Workspace[T]) BeginOp() {
	if w.depth == 0 {
		w.dropUntracked()
		w.pending = w.versions.Next()
		w.hasPending = true
	}
	w.depth++
}

// EndOp closes the innermost batch. Closing the outermost batch commits the
// net change of the tree as a user entry, if there is one.
//
// EndOp panics with ErrUnbalancedBatch when no batch is open.
func (w *Workspace[T]) EndOp() {
	w.depth--
	if w.depth < 0 {
		w.depth = 0
		w.logger.Error("EndOp without BeginOp")
		panic(ErrUnbalancedBatch)
	}
	if w.depth > 0 {
		return
	}

	version := w.pending
	w.pending, w.hasPending = "", false

	op := w.data.ChangeOp()
	if op == nil {
		w.logger.Debug("batch closed without changes", "version", version)
		return
	}
	w.data.Reset()

	w.push(Entry{Kind: UserOp, Version: version, Op: op, Time: time.Now()})
	w.metrics.commit()
	w.logger.Debug("committed", "version", version, "entries", len(w.entries))
}

// Depth returns the number of nested open batches.
func (w *Workspace[T]) Depth() int {
	return w.depth
}

// Rollback reverts the tree to its state when the batch was opened. The
// batch stays open.
func (w *Workspace[T]) Rollback() error {
	if w.depth == 0 {
		return ErrNoBatch
	}
	op := w.data.ChangeOp()
	if op == nil {
		return nil
	}
	if err := w.data.Back(op); err != nil {
		return w.fail("rollback", w.pending, err, "depth", w.depth)
	}
	w.metrics.rollback()
	w.logger.Debug("rolled back", "version", w.pending)
	return nil
}

// Undo reverts the applied entries back to and including the most recent
// user entry and returns that entry's index. It reports false when there is
// nothing to undo.
//
// If an entry fails to revert, the cursor stays after it and the error
// wraps the cause.
func (w *Workspace[T]) Undo() (int, bool, error) {
	if w.depth > 0 {
		return 0, false, ErrBatchOpen
	}
	i := w.lastUserOp()
	if i < 0 {
		return 0, false, nil
	}
	if err := w.unwind(i); err != nil {
		return 0, false, err
	}
	w.metrics.undo()
	w.logger.Debug("undo", "version", w.entries[i].Version, "cursor", w.cursor)
	return i, true, nil
}

// Redo re-applies the redo tail up to and including the next user entry,
// followed by the robot entries recorded after it, and returns that user
// entry's index. It reports false when there is nothing to redo.
func (w *Workspace[T]) Redo() (int, bool, error) {
	if w.depth > 0 {
		return 0, false, ErrBatchOpen
	}
	i := w.nextUserOp()
	if i < 0 {
		return 0, false, nil
	}
	stop := i + 1
	for stop < len(w.entries) && w.entries[stop].Kind == RobotOp {
		stop++
	}
	if err := w.replay(stop); err != nil {
		return 0, false, err
	}
	w.metrics.redo()
	w.logger.Debug("redo", "version", w.entries[i].Version, "cursor", w.cursor)
	return i, true, nil
}

// UndoTo reverts the applied entries recorded after version v. The entry of
// v itself stays applied. It reports false when v is not applied.
func (w *Workspace[T]) UndoTo(v VersionID) (int, bool, error) {
	if w.depth > 0 {
		return 0, false, ErrBatchOpen
	}
	i := w.find(v, 0, w.cursor)
	if i < 0 {
		return 0, false, nil
	}
	if err := w.unwind(i + 1); err != nil {
		return 0, false, err
	}
	w.logger.Debug("undo to", "version", v, "cursor", w.cursor)
	return i, true, nil
}

// RedoTo re-applies the redo tail up to and including the entry of version
// v. It reports false when v is not in the redo tail.
func (w *Workspace[T]) RedoTo(v VersionID) (int, bool, error) {
	if w.depth > 0 {
		return 0, false, ErrBatchOpen
	}
	i := w.find(v, w.cursor, len(w.entries))
	if i < 0 {
		return 0, false, nil
	}
	if err := w.replay(i + 1); err != nil {
		return 0, false, err
	}
	w.logger.Debug("redo to", "version", v, "cursor", w.cursor)
	return i, true, nil
}

// SkipTo moves to the state right after version v, in whichever direction
// it lies.
func (w *Workspace[T]) SkipTo(v VersionID) (bool, error) {
	if _, ok, err := w.UndoTo(v); ok || err != nil {
		return ok, err
	}
	_, ok, err := w.RedoTo(v)
	return ok, err
}

// ApplyExternal applies an op produced outside this workspace and records
// it as a robot entry. Like a commit, it discards the redo tail.
func (w *Workspace[T]) ApplyExternal(op tracking.Op) (VersionID, error) {
	if w.depth > 0 {
		return "", ErrBatchOpen
	}
	w.dropUntracked()

	e := Entry{Kind: RobotOp, Version: w.versions.Next(), Op: op, Time: time.Now()}
	if err := w.data.Forward(op); err != nil {
		return "", w.fail("apply external", e.Version, err, "kind", e.Kind)
	}

	w.push(e)
	w.metrics.externalOp()
	w.logger.Debug("external op recorded", "version", e.Version, "entries", len(w.entries))
	return e.Version, nil
}

// Clear discards all history. The tree keeps its current state.
func (w *Workspace[T]) Clear() error {
	if w.depth > 0 {
		return ErrBatchOpen
	}
	clear(w.entries)
	w.entries = w.entries[:0]
	w.cursor = 0
	w.userOps = 0
	w.metrics.setEntries(0)
	w.logger.Debug("history cleared")
	return nil
}

// OpsLen returns the number of applied user entries.
func (w *Workspace[T]) OpsLen() int {
	return w.userOps
}

// RobotOpsLen returns the number of applied robot entries.
func (w *Workspace[T]) RobotOpsLen() int {
	return w.cursor - w.userOps
}

// NextVersion returns the version allocated for the open batch.
func (w *Workspace[T]) NextVersion() (VersionID, bool) {
	return w.pending, w.hasPending
}

// TopVersion returns the version of the most recently applied entry.
func (w *Workspace[T]) TopVersion() (VersionID, bool) {
	if w.cursor == 0 {
		return "", false
	}
	return w.entries[w.cursor-1].Version, true
}

// Len returns the number of entries, including the redo tail.
func (w *Workspace[T]) Len() int {
	return len(w.entries)
}

// Cursor returns the number of applied entries.
func (w *Workspace[T]) Cursor() int {
	return w.cursor
}

// CanUndo reports whether an applied user entry exists.
func (w *Workspace[T]) CanUndo() bool {
	return w.lastUserOp() >= 0
}

// CanRedo reports whether the redo tail holds a user entry.
func (w *Workspace[T]) CanRedo() bool {
	return w.nextUserOp() >= 0
}

// Entries returns a copy of all entries.
func (w *Workspace[T]) Entries() []Entry {
	out := make([]Entry, len(w.entries))
	copy(out, w.entries)
	return out
}

var dumpOptions = litter.Options{
	StripPackageNames: true,
	FieldExclusions:   regexp.MustCompile(`^Time$`),
}

// Dump renders the history state for debugging.
func (w *Workspace[T]) Dump() string {
	return dumpOptions.Sdump(struct {
		Cursor  int
		Depth   int
		UserOps int
		Pending VersionID
		Entries []Entry
	}{w.cursor, w.depth, w.userOps, w.pending, w.entries})
}

// dropUntracked forgets a change made while no batch was open.
func (w *Workspace[T]) dropUntracked() {
	if w.data.Dirty() {
		w.logger.Warn("dropping change made outside a batch", "op", w.data.ChangeOp())
		w.metrics.drop()
	}
	w.data.Reset()
}

// push discards the redo tail, appends e and enforces the entry limit.
func (w *Workspace[T]) push(e Entry) {
	if w.cursor < len(w.entries) {
		w.logger.Debug("discarding redo tail", "entries", len(w.entries)-w.cursor)
		clear(w.entries[w.cursor:])
		w.entries = w.entries[:w.cursor]
	}

	w.entries = append(w.entries, e)
	w.cursor++
	if e.Kind == UserOp {
		w.userOps++
	}

	w.evict()
	w.metrics.setEntries(len(w.entries))
}

// evict drops the oldest entries beyond the limit. Robot entries following
// an evicted user entry go with it.
func (w *Workspace[T]) evict() {
	if w.maxEntries <= 0 || len(w.entries) <= w.maxEntries {
		return
	}
	excess := len(w.entries) - w.maxEntries
	for excess < len(w.entries) && w.entries[excess].Kind == RobotOp {
		excess++
	}

	for _, e := range w.entries[:excess] {
		if e.Kind == UserOp {
			w.userOps--
		}
	}
	n := copy(w.entries, w.entries[excess:])
	clear(w.entries[n:])
	w.entries = w.entries[:n]
	w.cursor -= excess

	w.logger.Debug("evicted entries", "count", excess)
}

// unwind reverts applied entries until the cursor reaches stop.
func (w *Workspace[T]) unwind(stop int) error {
	for w.cursor > stop {
		e := w.entries[w.cursor-1]
		if err := w.data.Back(e.Op); err != nil {
			return w.fail("undo", e.Version, err, "kind", e.Kind)
		}
		w.cursor--
		if e.Kind == UserOp {
			w.userOps--
		}
	}
	return nil
}

// replay re-applies redo entries until the cursor reaches stop.
func (w *Workspace[T]) replay(stop int) error {
	for w.cursor < stop {
		e := w.entries[w.cursor]
		if err := w.data.Forward(e.Op); err != nil {
			return w.fail("redo", e.Version, err, "kind", e.Kind)
		}
		w.cursor++
		if e.Kind == UserOp {
			w.userOps++
		}
	}
	return nil
}

func (w *Workspace[T]) lastUserOp() int {
	for i := w.cursor - 1; i >= 0; i-- {
		if w.entries[i].Kind == UserOp {
			return i
		}
	}
	return -1
}

func (w *Workspace[T]) nextUserOp() int {
	for i := w.cursor; i < len(w.entries); i++ {
		if w.entries[i].Kind == UserOp {
			return i
		}
	}
	return -1
}

// find returns the index of version v within entries[from:to], searching
// from the end.
func (w *Workspace[T]) find(v VersionID, from, to int) int {
	for i := to - 1; i >= from; i-- {
		if w.entries[i].Version == v {
			return i
		}
	}
	return -1
}
