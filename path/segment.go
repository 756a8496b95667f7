// Package path implements a small expression language for navigating
// and transforming ir.Node trees: dotted field access, bracketed
// indices, wildcards, and slices.
//
// An Expr is parsed once and reused; evaluation produces concrete
// matches lazily and transformation rebuilds only the spine of
// touched ancestors, sharing everything else with the original root.
package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a path expression. The concrete types are
// Field, Index, Wildcard, and Slice; nothing else implements it.
type Segment interface {
	fmt.Stringer
	segment()
}

// Field selects a named member of an object.
type Field string

// Index selects the i'th element of an array. Negative values count
// from the end.
type Index int

// Wildcard selects every element of an array or every value of an
// object.
type Wildcard struct{}

// Slice selects a sub-range of an array with python range semantics.
// Unset bounds take their defaults from the sign of the step.
type Slice struct {
	Start, Stop, Step          int
	HasStart, HasStop, HasStep bool
}

func (Field) segment()    {}
func (Index) segment()    {}
func (Wildcard) segment() {}
func (Slice) segment()    {}

func (f Field) String() string {
	if fieldNeedsQuote(string(f)) {
		q := strings.ReplaceAll(string(f), "\\", "\\\\")
		return "'" + strings.ReplaceAll(q, "'", "\\'") + "'"
	}
	return string(f)
}

func (i Index) String() string {
	return "[" + strconv.Itoa(int(i)) + "]"
}

func (Wildcard) String() string {
	return "[*]"
}

func (s Slice) String() string {
	buf := strings.Builder{}
	buf.WriteByte('[')
	if s.HasStart {
		buf.WriteString(strconv.Itoa(s.Start))
	}
	buf.WriteByte(':')
	if s.HasStop {
		buf.WriteString(strconv.Itoa(s.Stop))
	}
	if s.HasStep {
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(s.Step))
	}
	buf.WriteByte(']')
	return buf.String()
}

func fieldNeedsQuote(f string) bool {
	if f == "" {
		return true
	}
	for i, r := range f {
		if r == '_' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			continue
		}
		if r >= '0' && r <= '9' && i > 0 {
			continue
		}
		return true
	}
	return false
}

// resolve maps the slice onto a concrete array length, returning the
// first index, the stop sentinel, and the step. Iteration runs from
// start toward stop in increments of step and is empty when start has
// already passed stop.
func (s Slice) resolve(n int) (start, stop, step int) {
	step = 1
	if s.HasStep {
		step = s.Step
	}
	clamp := func(i, lo, hi int) int {
		if i < 0 {
			i += n
		}
		return min(max(i, lo), hi)
	}
	if step > 0 {
		start, stop = 0, n
		if s.HasStart {
			start = clamp(s.Start, 0, n)
		}
		if s.HasStop {
			stop = clamp(s.Stop, 0, n)
		}
		return start, stop, step
	}
	start, stop = n-1, -1
	if s.HasStart {
		start = clamp(s.Start, -1, n-1)
	}
	if s.HasStop {
		stop = clamp(s.Stop, -1, n-1)
	}
	return start, stop, step
}

// Expr is an immutable, reusable parsed path expression, obtained via
// Parse or MustParse. The zero value has no segments and resolves to
// the root itself: Evaluate yields the root as its one match, and
// Transform applies the mapper to the whole root.
type Expr struct {
	segs []Segment
}

// Segments returns the expression's segments. The returned slice must
// not be modified.
func (e Expr) Segments() []Segment {
	return e.segs
}

func (e Expr) Len() int {
	return len(e.segs)
}

// Equal reports whether two expressions have equal segment sequences.
func (e Expr) Equal(o Expr) bool {
	if len(e.segs) != len(o.segs) {
		return false
	}
	for i := range e.segs {
		if e.segs[i] != o.segs[i] {
			return false
		}
	}
	return true
}

// String renders the canonical text of the expression. Parsing the
// result yields an expression equal to e.
func (e Expr) String() string {
	buf := strings.Builder{}
	for i, seg := range e.segs {
		if f, ok := seg.(Field); ok {
			if i > 0 {
				buf.WriteByte('.')
			}
			buf.WriteString(f.String())
			continue
		}
		buf.WriteString(seg.String())
	}
	return buf.String()
}
