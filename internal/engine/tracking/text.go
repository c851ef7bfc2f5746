package tracking

import "unicode/utf8"

// Text tracks a string value and records changes as positional edits
// instead of whole-value snapshots. Positions count characters; a byte of
// invalid UTF-8 counts as one and is preserved as is.
type Text struct {
	value  string
	origin *string
	opts   DiffOptions
}

// NewText creates a text value with default diff options.
func NewText(s string) *Text {
	return NewTextWithOptions(s, DefaultDiffOptions())
}

// NewTextWithOptions creates a text value with the given diff options.
func NewTextWithOptions(s string, opts DiffOptions) *Text {
	return &Text{value: s, opts: opts}
}

// Get returns the current text.
func (t *Text) Get() string {
	return t.value
}

// Mut returns a pointer to the text for in-place modification.
func (t *Text) Mut() *string {
	if t.origin == nil {
		origin := t.value
		t.origin = &origin
	}
	return &t.value
}

// Set replaces the text.
func (t *Text) Set(s string) {
	*t.Mut() = s
}

// Len returns the length of the text in characters.
func (t *Text) Len() int {
	return utf8.RuneCountInString(t.value)
}

// Dirty reports whether the text differs from the text at the last reset.
func (t *Text) Dirty() bool {
	return t.origin != nil && *t.origin != t.value
}

// ChangeOp returns a TextOp transforming the text at the last reset into
// the current text, or nil.
func (t *Text) ChangeOp() Op {
	if !t.Dirty() {
		return nil
	}
	ops := ChangesFromSpans(DiffWithOptions(*t.origin, t.value, t.opts))
	if len(ops) == 0 {
		return nil
	}
	return ops
}

// Reset forgets the remembered text.
func (t *Text) Reset() {
	t.origin = nil
}

// Back reverts op, which must have been produced for the current text.
func (t *Text) Back(op Op) error {
	ops, err := t.textOp(op)
	if err != nil {
		return err
	}
	return t.apply(ops.Invert())
}

// Forward applies op to the current text.
func (t *Text) Forward(op Op) error {
	ops, err := t.textOp(op)
	if err != nil {
		return err
	}
	return t.apply(ops)
}

// String returns the current text.
func (t *Text) String() string {
	return t.value
}

func (t *Text) apply(ops TextOp) error {
	out, err := applyChanges(toRunes(t.value), ops)
	if err != nil {
		return err
	}
	t.value = fromRunes(out)
	t.Reset()
	return nil
}

func (t *Text) textOp(op Op) (TextOp, error) {
	ops, ok := op.(TextOp)
	if !ok {
		return nil, opMismatch("tracking.TextOp", op)
	}
	return ops, nil
}
