package tracking

import (
	"math"
	"unicode/utf8"
)

// DiffOptions configures diff computation.
type DiffOptions struct {
	// MaxMemoryMB limits the memory used to align the two texts. When the
	// exact algorithms would exceed it, the differing middle of the texts is
	// reported as a single replacement. Default is 64MB. A negative value
	// disables the limit.
	MaxMemoryMB int
}

// DefaultMaxDiffMemoryMB is the default memory limit in megabytes.
const DefaultMaxDiffMemoryMB = 64

// DefaultDiffOptions returns default diff options.
func DefaultDiffOptions() DiffOptions {
	return DiffOptions{MaxMemoryMB: DefaultMaxDiffMemoryMB}
}

func (o DiffOptions) budget() int64 {
	switch {
	case o.MaxMemoryMB < 0:
		return math.MaxInt64
	case o.MaxMemoryMB == 0:
		return DefaultMaxDiffMemoryMB << 20
	default:
		return int64(o.MaxMemoryMB) << 20
	}
}

// SpanKind indicates the type of a diff span.
type SpanKind uint8

const (
	// SpanSame indicates text present in both versions.
	SpanSame SpanKind = iota

	// SpanRemoved indicates text only present in the old version.
	SpanRemoved

	// SpanAdded indicates text only present in the new version.
	SpanAdded
)

// String returns a human-readable representation of the span kind.
func (k SpanKind) String() string {
	switch k {
	case SpanSame:
		return "same"
	case SpanRemoved:
		return "removed"
	case SpanAdded:
		return "added"
	default:
		return "unknown"
	}
}

// Span is a run of characters sharing the same diff status.
type Span struct {
	Kind SpanKind
	Text string
}

// Diff computes a character level diff between two strings using default
// options.
func Diff(oldText, newText string) []Span {
	return DiffWithOptions(oldText, newText, DefaultDiffOptions())
}

// DiffWithOptions computes a character level diff between two strings.
//
// The spans alternate between unchanged runs and hunks. Inside a hunk the
// removed run always comes before the added run. Each byte of an invalid
// UTF-8 sequence counts as one character and is reported unchanged.
func DiffWithOptions(oldText, newText string, opts DiffOptions) []Span {
	a, b := toRunes(oldText), toRunes(newText)
	return mergeSpans(a, b, commonSubsequence(a, b, opts.budget()))
}

// ChangesFromSpans converts diff spans into positional changes. A removed
// run directly followed by an added run becomes one replacement.
func ChangesFromSpans(spans []Span) TextOp {
	var ops TextOp
	index := 0
	for i := 0; i < len(spans); i++ {
		s := spans[i]
		switch s.Kind {
		case SpanSame:
			index += utf8.RuneCountInString(s.Text)
		case SpanRemoved:
			if i+1 < len(spans) && spans[i+1].Kind == SpanAdded {
				ops = append(ops, NewReplaceChange(index, s.Text, spans[i+1].Text))
				i++
			} else {
				ops = append(ops, NewDeleteChange(index, s.Text))
			}
			index += utf8.RuneCountInString(s.Text)
		case SpanAdded:
			ops = append(ops, NewInsertChange(index, s.Text))
		}
	}
	return ops
}

// commonSubsequence returns a longest common subsequence of a and b.
//
// The shared prefix and suffix are matched directly. The middle is aligned
// with an LCS length table when it fits the budget, otherwise with Myers'
// algorithm, which needs memory proportional to the edit distance rather
// than to the input sizes. If neither fits, the middle has nothing in
// common.
func commonSubsequence(a, b []rune, budget int64) []rune {
	p := 0
	for p < len(a) && p < len(b) && a[p] == b[p] {
		p++
	}
	s := 0
	for s < len(a)-p && s < len(b)-p && a[len(a)-1-s] == b[len(b)-1-s] {
		s++
	}

	common := make([]rune, 0, min(len(a), len(b)))
	common = append(common, a[:p]...)

	ta, tb := a[p:len(a)-s], b[p:len(b)-s]
	if len(ta) > 0 && len(tb) > 0 {
		if lcsTableBytes(len(ta), len(tb)) <= budget {
			common = append(common, lcsTable(ta, tb)...)
		} else if mid, ok := myersCommon(ta, tb, budget); ok {
			common = append(common, mid...)
		}
	}
	return append(common, a[len(a)-s:]...)
}

func lcsTableBytes(n, m int) int64 {
	return int64(n+1) * int64(m+1) * 4
}

// lcsTable computes the LCS with a suffix length table and walks it from
// the front. On ties the walk advances through b first, which keeps
// removals ahead of additions when the spans are merged.
func lcsTable[E comparable](a, b []E) []E {
	n, m := len(a), len(b)
	w := m + 1
	lens := make([]int32, (n+1)*w)

	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lens[i*w+j] = lens[(i+1)*w+j+1] + 1
			} else {
				lens[i*w+j] = max(lens[(i+1)*w+j], lens[i*w+j+1])
			}
		}
	}

	common := make([]E, 0, lens[0])
	i, j := 0, 0
	for i < n && j < m {
		switch {
		case a[i] == b[j]:
			common = append(common, a[i])
			i++
			j++
		case lens[(i+1)*w+j] > lens[i*w+j+1]:
			i++
		default:
			j++
		}
	}
	return common
}

// editKind indicates the type of a single edit step.
type editKind uint8

const (
	editEqual editKind = iota
	editInsert
	editDelete
)

// editOp represents a single edit operation in the diff.
type editOp struct {
	op       editKind
	oldIndex int
	newIndex int
}

func myersCommon[E comparable](a, b []E, budget int64) ([]E, bool) {
	script, ok := myersDiff(a, b, budget)
	if !ok {
		return nil, false
	}
	var common []E
	for _, op := range script {
		if op.op == editEqual {
			common = append(common, a[op.oldIndex])
		}
	}
	return common, true
}

// myersDiff implements the Myers diff algorithm.
// Returns a sequence of edit operations, or false when the trace would
// exceed budget bytes.
func myersDiff[E comparable](a, b []E, budget int64) ([]editOp, bool) {
	n := len(a)
	m := len(b)

	// Handle trivial cases
	if n == 0 && m == 0 {
		return nil, true
	}
	if n == 0 {
		ops := make([]editOp, m)
		for i := 0; i < m; i++ {
			ops[i] = editOp{op: editInsert, newIndex: i}
		}
		return ops, true
	}
	if m == 0 {
		ops := make([]editOp, n)
		for i := 0; i < n; i++ {
			ops[i] = editOp{op: editDelete, oldIndex: i}
		}
		return ops, true
	}

	// V[-max..max] maps to slice[0..2*max]
	maxD := n + m
	offset := maxD
	v := make([]int, 2*maxD+1)
	rowBytes := int64(len(v)) * 8
	var used int64

	v[offset+1] = 0

	var trace [][]int

outer:
	for d := 0; d <= maxD; d++ {
		used += rowBytes
		if used > budget {
			return nil, false
		}

		// Save trace before processing this d
		vCopy := make([]int, len(v))
		copy(vCopy, v)
		trace = append(trace, vCopy)

		for k := -d; k <= d; k += 2 {
			var x int
			if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
				x = v[offset+k+1]
			} else {
				x = v[offset+k-1] + 1
			}

			y := x - k

			// Extend diagonal (equal elements)
			for x < n && y < m && a[x] == b[y] {
				x++
				y++
			}

			v[offset+k] = x

			if x >= n && y >= m {
				vFinal := make([]int, len(v))
				copy(vFinal, v)
				trace = append(trace, vFinal)
				break outer
			}
		}
	}

	return backtrack(trace, n, m, offset), true
}

// backtrack reconstructs the edit script from the trace.
func backtrack(trace [][]int, n, m, offset int) []editOp {
	if len(trace) == 0 {
		return nil
	}

	x := n
	y := m
	var ops []editOp

	// trace has d+2 entries for edit distance d; walk back from the last step
	for d := len(trace) - 2; d >= 0; d-- {
		v := trace[d]
		k := x - y

		var prevK int
		if k == -d || (k != d && v[offset+k-1] < v[offset+k+1]) {
			prevK = k + 1
		} else {
			prevK = k - 1
		}

		prevX := v[offset+prevK]
		prevY := prevX - prevK

		for x > prevX && y > prevY {
			x--
			y--
			ops = append(ops, editOp{op: editEqual, oldIndex: x, newIndex: y})
		}

		if d > 0 {
			if x > prevX {
				x--
				ops = append(ops, editOp{op: editDelete, oldIndex: x})
			} else if y > prevY {
				y--
				ops = append(ops, editOp{op: editInsert, newIndex: y})
			}
		}
	}

	for i, j := 0, len(ops)-1; i < j; i, j = i+1, j-1 {
		ops[i], ops[j] = ops[j], ops[i]
	}

	return ops
}

// mergeSpans aligns a and b against their common subsequence, matching
// each common character at its first remaining occurrence in both inputs.
func mergeSpans(a, b, common []rune) []Span {
	var sb spanBuilder
	i, j := 0, 0
	for _, c := range common {
		si := i
		for a[i] != c {
			i++
		}
		sj := j
		for b[j] != c {
			j++
		}
		sb.add(SpanRemoved, a[si:i])
		sb.add(SpanAdded, b[sj:j])
		sb.add(SpanSame, a[i:i+1])
		i++
		j++
	}
	sb.add(SpanRemoved, a[i:])
	sb.add(SpanAdded, b[j:])
	return sb.finish()
}

type spanBuilder struct {
	spans []Span
	kind  SpanKind
	buf   []rune
}

func (sb *spanBuilder) add(kind SpanKind, r []rune) {
	if len(r) == 0 {
		return
	}
	if kind != sb.kind {
		sb.flush()
		sb.kind = kind
	}
	sb.buf = append(sb.buf, r...)
}

func (sb *spanBuilder) flush() {
	if len(sb.buf) == 0 {
		return
	}
	sb.spans = append(sb.spans, Span{Kind: sb.kind, Text: fromRunes(sb.buf)})
	sb.buf = sb.buf[:0]
}

func (sb *spanBuilder) finish() []Span {
	sb.flush()
	return sb.spans
}
