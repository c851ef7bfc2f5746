package tracking

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// CompositeOp maps field names to the ops of the fields that changed.
// Unchanged and skipped fields are absent.
type CompositeOp map[string]Op

// Names returns the changed field names in sorted order.
func (op CompositeOp) Names() []string {
	names := make([]string, 0, len(op))
	for name := range op {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String returns a human-readable representation of the op.
func (op CompositeOp) String() string {
	var sb strings.Builder
	sb.WriteString("{")
	for i, name := range op.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s: %v", name, op[name])
	}
	sb.WriteString("}")
	return sb.String()
}

// FieldSpec declares one named child of a Composite.
type FieldSpec struct {
	Name string
	Node Node
	Skip bool
}

// Field declares a tracked field.
func Field(name string, node Node) FieldSpec {
	return FieldSpec{Name: name, Node: node}
}

// SkipField declares a field that is held by the composite but excluded
// from change tracking. It never appears in a CompositeOp.
func SkipField(name string, node Node) FieldSpec {
	return FieldSpec{Name: name, Node: node, Skip: true}
}

// Composite aggregates named child nodes into a single node.
//
// It is dirty when any tracked field is dirty, and its op maps each changed
// field to that field's own op. Fields may themselves be composites.
type Composite struct {
	fields []FieldSpec
	index  map[string]int
	skip   mapset.Set[string]
}

// NewComposite creates a composite over the given fields. Field order is
// kept for iteration. Duplicate names panic.
func NewComposite(fields ...FieldSpec) *Composite {
	c := &Composite{
		index: make(map[string]int, len(fields)),
		skip:  mapset.NewThreadUnsafeSet[string](),
	}
	for _, f := range fields {
		c.Add(f)
	}
	return c
}

// Add appends a field. Adding a name twice panics.
func (c *Composite) Add(f FieldSpec) {
	if _, dup := c.index[f.Name]; dup {
		panic(fmt.Sprintf("tracking: duplicate field %q", f.Name))
	}
	if f.Node == nil {
		panic(fmt.Sprintf("tracking: field %q has no node", f.Name))
	}
	c.index[f.Name] = len(c.fields)
	c.fields = append(c.fields, f)
	if f.Skip {
		c.skip.Add(f.Name)
	}
}

// Field returns the node registered under name.
func (c *Composite) Field(name string) (Node, bool) {
	i, ok := c.index[name]
	if !ok {
		return nil, false
	}
	return c.fields[i].Node, true
}

// Names returns the tracked field names in declaration order.
func (c *Composite) Names() []string {
	names := make([]string, 0, len(c.fields))
	for _, f := range c.fields {
		if !c.skip.Contains(f.Name) {
			names = append(names, f.Name)
		}
	}
	return names
}

// Skipped reports whether name is registered as an untracked field.
func (c *Composite) Skipped(name string) bool {
	return c.skip.Contains(name)
}

// Dirty reports whether any tracked field is dirty.
func (c *Composite) Dirty() bool {
	for _, f := range c.fields {
		if !c.skip.Contains(f.Name) && f.Node.Dirty() {
			return true
		}
	}
	return false
}

// ChangeOp returns a CompositeOp holding the op of every changed field,
// or nil if no field changed.
func (c *Composite) ChangeOp() Op {
	if !c.Dirty() {
		return nil
	}
	op := make(CompositeOp)
	for _, f := range c.fields {
		if c.skip.Contains(f.Name) {
			continue
		}
		if sub := f.Node.ChangeOp(); sub != nil {
			op[f.Name] = sub
		}
	}
	if len(op) == 0 {
		return nil
	}
	return op
}

// Reset resets every tracked field.
func (c *Composite) Reset() {
	for _, f := range c.fields {
		if !c.skip.Contains(f.Name) {
			f.Node.Reset()
		}
	}
}

// Back reverts every field named in op, then resets the composite. If a
// field fails, the fields already reverted are re-applied and the composite
// is left as it was.
func (c *Composite) Back(op Op) error {
	return c.apply(op, Node.Back, Node.Forward)
}

// Forward re-applies every field named in op, then resets the composite. If
// a field fails, the fields already applied are reverted again.
func (c *Composite) Forward(op Op) error {
	return c.apply(op, Node.Forward, Node.Back)
}

func (c *Composite) apply(op Op, step, restore func(Node, Op) error) error {
	cop, ok := op.(CompositeOp)
	if !ok {
		return opMismatch("tracking.CompositeOp", op)
	}
	for name := range cop {
		if _, known := c.index[name]; !known || c.skip.Contains(name) {
			return fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
	}

	done := make([]FieldSpec, 0, len(cop))
	for _, f := range c.fields {
		sub, ok := cop[f.Name]
		if !ok || sub == nil {
			continue
		}
		if err := step(f.Node, sub); err != nil {
			err = fmt.Errorf("%s: %w", f.Name, err)
			for i := len(done) - 1; i >= 0; i-- {
				if rerr := restore(done[i].Node, cop[done[i].Name]); rerr != nil {
					return errors.Join(err, fmt.Errorf("%s: restore: %w", done[i].Name, rerr))
				}
			}
			return err
		}
		done = append(done, f)
	}

	c.Reset()
	return nil
}
