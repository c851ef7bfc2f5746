package undotree

import (
	"github.com/dshills/undotree/internal/engine/history"
	"github.com/dshills/undotree/internal/engine/tracking"
)

// Re-export commonly used types for convenience.
type (
	// Node is the contract every trackable value implements.
	Node = tracking.Node

	// Op describes one change of a node. A nil Op means no change.
	Op = tracking.Op

	// Leaf tracks a single comparable value.
	Leaf[T comparable] = tracking.Leaf[T]

	// LeafOp records a scalar change.
	LeafOp[T comparable] = tracking.LeafOp[T]

	// Text tracks a string as positional edits.
	Text = tracking.Text

	// TextOp is an ordered list of text changes.
	TextOp = tracking.TextOp

	// Change is a single text edit.
	Change = tracking.Change

	// ChangeType categorizes text changes.
	ChangeType = tracking.ChangeType

	// Span is a run of a character diff.
	Span = tracking.Span

	// SpanKind is the status of a diff span.
	SpanKind = tracking.SpanKind

	// DiffOptions configures text diffing.
	DiffOptions = tracking.DiffOptions

	// Composite aggregates named child nodes.
	Composite = tracking.Composite

	// CompositeOp maps changed field names to their ops.
	CompositeOp = tracking.CompositeOp

	// FieldSpec declares one child of a Composite.
	FieldSpec = tracking.FieldSpec

	// Workspace owns a tracked tree and its history.
	Workspace[T Node] = history.Workspace[T]

	// Guard holds a batch open until closed.
	Guard[T Node] = history.Guard[T]

	// Entry is one recorded change.
	Entry = history.Entry

	// EntryKind distinguishes user and robot entries.
	EntryKind = history.EntryKind

	// VersionID identifies a history entry.
	VersionID = history.VersionID

	// VersionSource allocates version IDs.
	VersionSource = history.VersionSource
)

// Re-export constants.
const (
	ChangeInsert  = tracking.ChangeInsert
	ChangeDelete  = tracking.ChangeDelete
	ChangeReplace = tracking.ChangeReplace

	SpanSame    = tracking.SpanSame
	SpanRemoved = tracking.SpanRemoved
	SpanAdded   = tracking.SpanAdded

	UserOp  = history.UserOp
	RobotOp = history.RobotOp
)

// New creates a workspace around data.
func New[T Node](data T, opts ...Option) *Workspace[T] {
	return history.New(data, opts...)
}

// NewLeaf creates a leaf holding v.
func NewLeaf[T comparable](v T) *Leaf[T] {
	return tracking.NewLeaf(v)
}

// NewText creates a text value with default diff options.
func NewText(s string) *Text {
	return tracking.NewText(s)
}

// NewTextWithOptions creates a text value with the given diff options.
func NewTextWithOptions(s string, opts DiffOptions) *Text {
	return tracking.NewTextWithOptions(s, opts)
}

// NewComposite creates a composite over fields.
func NewComposite(fields ...FieldSpec) *Composite {
	return tracking.NewComposite(fields...)
}

// Field declares a tracked composite field.
func Field(name string, node Node) FieldSpec {
	return tracking.Field(name, node)
}

// SkipField declares a composite field excluded from tracking.
func SkipField(name string, node Node) FieldSpec {
	return tracking.SkipField(name, node)
}

// Diff computes a character level diff between two strings.
func Diff(oldText, newText string) []Span {
	return tracking.Diff(oldText, newText)
}

// NewCounterVersions creates a monotonic counter version source.
func NewCounterVersions(prefix string) VersionSource {
	return history.NewCounterVersions(prefix)
}
