package tracking

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ChangeType categorizes the type of a text change.
type ChangeType uint8

const (
	// ChangeInsert indicates text was inserted (OldText is empty).
	ChangeInsert ChangeType = iota

	// ChangeDelete indicates text was deleted (NewText is empty).
	ChangeDelete

	// ChangeReplace indicates text was replaced (both OldText and NewText present).
	ChangeReplace
)

// String returns a human-readable representation of the change type.
func (ct ChangeType) String() string {
	switch ct {
	case ChangeInsert:
		return "insert"
	case ChangeDelete:
		return "delete"
	case ChangeReplace:
		return "replace"
	default:
		return "unknown"
	}
}

// Change is a single positional edit of a text value.
type Change struct {
	// Type indicates whether this is an insert, delete, or replace.
	Type ChangeType

	// Index is the character (rune) offset in the text the change applies to.
	Index int

	// OldText is the text that was removed (empty for inserts).
	OldText string

	// NewText is the text that was added (empty for deletes).
	NewText string
}

// NewInsertChange creates a change representing an insertion.
func NewInsertChange(index int, text string) Change {
	return Change{Type: ChangeInsert, Index: index, NewText: text}
}

// NewDeleteChange creates a change representing a deletion.
func NewDeleteChange(index int, text string) Change {
	return Change{Type: ChangeDelete, Index: index, OldText: text}
}

// NewReplaceChange creates a change representing a replacement.
func NewReplaceChange(index int, oldText, newText string) Change {
	return Change{Type: ChangeReplace, Index: index, OldText: oldText, NewText: newText}
}

// String returns a human-readable representation of the change.
func (c Change) String() string {
	switch c.Type {
	case ChangeInsert:
		return fmt.Sprintf("Insert %q at %d", truncate(c.NewText, 20), c.Index)
	case ChangeDelete:
		return fmt.Sprintf("Delete %q at %d", truncate(c.OldText, 20), c.Index)
	case ChangeReplace:
		return fmt.Sprintf("Replace %q with %q at %d", truncate(c.OldText, 10), truncate(c.NewText, 10), c.Index)
	default:
		return "Unknown change"
	}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return fromRunes(toRunes(s)[:max-3]) + "..."
}

// Delta returns the change in length, in runes.
// Positive means the text grew, negative means it shrank.
func (c Change) Delta() int {
	return utf8.RuneCountInString(c.NewText) - utf8.RuneCountInString(c.OldText)
}

// IsInsert returns true if this is a pure insertion.
func (c Change) IsInsert() bool {
	return c.Type == ChangeInsert
}

// IsDelete returns true if this is a pure deletion.
func (c Change) IsDelete() bool {
	return c.Type == ChangeDelete
}

// IsReplace returns true if this is a replacement.
func (c Change) IsReplace() bool {
	return c.Type == ChangeReplace
}

// Invert returns a change that undoes this change. The index is left as is;
// TextOp.Invert rebases it.
func (c Change) Invert() Change {
	inv := Change{
		Index:   c.Index,
		OldText: c.NewText,
		NewText: c.OldText,
	}
	switch c.Type {
	case ChangeInsert:
		inv.Type = ChangeDelete
	case ChangeDelete:
		inv.Type = ChangeInsert
	default:
		inv.Type = ChangeReplace
	}
	return inv
}

// TextOp is an ordered list of changes, ascending by Index, where every
// index refers to the text before any of the changes were applied.
type TextOp []Change

// Delta returns the total change in length, in runes.
func (ops TextOp) Delta() int {
	delta := 0
	for _, c := range ops {
		delta += c.Delta()
	}
	return delta
}

// Invert returns the op that undoes ops. Each change is inverted and its
// index moved into the coordinate space of the text after ops.
func (ops TextOp) Invert() TextOp {
	inv := make(TextOp, len(ops))
	offset := 0
	for i, c := range ops {
		r := c.Invert()
		r.Index = c.Index + offset
		offset += c.Delta()
		inv[i] = r
	}
	return inv
}

// Apply returns s with ops applied.
func (ops TextOp) Apply(s string) (string, error) {
	out, err := applyChanges(toRunes(s), ops)
	if err != nil {
		return "", err
	}
	return fromRunes(out), nil
}

// Summary returns a human-readable summary of the changes.
func (ops TextOp) Summary() string {
	if len(ops) == 0 {
		return "no changes"
	}

	var inserts, deletes, replaces int
	var inserted, deleted int

	for _, c := range ops {
		switch c.Type {
		case ChangeInsert:
			inserts++
			inserted += utf8.RuneCountInString(c.NewText)
		case ChangeDelete:
			deletes++
			deleted += utf8.RuneCountInString(c.OldText)
		case ChangeReplace:
			replaces++
			inserted += utf8.RuneCountInString(c.NewText)
			deleted += utf8.RuneCountInString(c.OldText)
		}
	}

	var parts []string
	if inserts > 0 {
		parts = append(parts, fmt.Sprintf("%d inserts", inserts))
	}
	if deletes > 0 {
		parts = append(parts, fmt.Sprintf("%d deletes", deletes))
	}
	if replaces > 0 {
		parts = append(parts, fmt.Sprintf("%d replaces", replaces))
	}
	parts = append(parts, fmt.Sprintf("+%d/-%d chars", inserted, deleted))

	return strings.Join(parts, ", ")
}

// applyChanges walks src left to right, copying untouched runs and applying
// each change in turn. Every change must start at or after the end of the
// previous one, and the text it removes must be present at its index.
func applyChanges(src []rune, ops TextOp) ([]rune, error) {
	size := len(src) + ops.Delta()
	if size < 0 {
		return nil, corruption("text", "changes remove more text than the %d characters present", len(src))
	}
	out := make([]rune, 0, size)

	cursor := 0
	for i, c := range ops {
		if c.Index < cursor || c.Index > len(src) {
			return nil, corruption("text", "change %d at index %d outside [%d, %d]", i, c.Index, cursor, len(src))
		}
		out = append(out, src[cursor:c.Index]...)

		end := c.Index + utf8.RuneCountInString(c.OldText)
		if end > len(src) {
			return nil, corruption("text", "change %d removes %q past end of text", i, c.OldText)
		}
		if found := fromRunes(src[c.Index:end]); found != c.OldText {
			return nil, corruption("text", "change %d expects %q at %d, found %q", i, c.OldText, c.Index, found)
		}

		out = append(out, toRunes(c.NewText)...)
		cursor = end
	}
	out = append(out, src[cursor:]...)

	return out, nil
}

// rawByteBase offsets the bytes of invalid UTF-8 sequences past
// utf8.MaxRune so they can sit in a rune slice without colliding with a
// real character.
const rawByteBase = utf8.MaxRune + 1

// toRunes splits s into characters the way []rune(s) does, except that
// each byte of an invalid encoding keeps its value instead of becoming
// utf8.RuneError. fromRunes reverses it byte for byte.
func toRunes(s string) []rune {
	out := make([]rune, 0, utf8.RuneCountInString(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = rawByteBase + rune(s[i])
		}
		out = append(out, r)
		i += size
	}
	return out
}

func fromRunes(rs []rune) string {
	var sb strings.Builder
	sb.Grow(len(rs))
	for _, r := range rs {
		if r >= rawByteBase {
			sb.WriteByte(byte(r - rawByteBase))
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
