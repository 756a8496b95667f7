package path

import (
	"iter"
	"slices"
	"strings"

	"github.com/pdum/plumb/ir"
)

// Match is one concrete location produced by evaluating an expression
// against a root: the resolved path (only Field and Index steps, with
// wildcards and slices expanded) and the value found there.
type Match struct {
	Path  []Segment
	Value *ir.Node
}

// PathString renders the concrete path in canonical expression syntax.
func (m Match) PathString() string {
	buf := strings.Builder{}
	for i, seg := range m.Path {
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

// Evaluate walks expr against root and yields every match in
// depth-first, left-to-right order. The sequence is lazy, finite, and
// restartable; root is never modified. Shape mismatches (a Field
// segment meeting a non-object, an out-of-range index, a slice over a
// scalar) drop the frontier entry silently rather than failing.
func Evaluate(root *ir.Node, expr Expr) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		walk(root, expr.segs, nil, yield)
	}
}

// First returns the first match of expr against root in evaluation
// order, or false when there is none.
func First(root *ir.Node, expr Expr) (Match, bool) {
	for m := range Evaluate(root, expr) {
		return m, true
	}
	return Match{}, false
}

func walk(y *ir.Node, segs, prefix []Segment, yield func(Match) bool) bool {
	if len(segs) == 0 {
		return yield(Match{Path: slices.Clone(prefix), Value: y})
	}
	rest := segs[1:]
	switch s := segs[0].(type) {
	case Field:
		v := ir.Get(y, string(s))
		if v == nil {
			return true
		}
		return walk(v, rest, append(prefix, s), yield)
	case Index:
		v, ok := ir.At(y, int(s))
		if !ok {
			return true
		}
		i := int(s)
		if i < 0 {
			i += len(y.Values)
		}
		return walk(v, rest, append(prefix, Index(i)), yield)
	case Wildcard:
		switch y.Type {
		case ir.ArrayType:
			for i, v := range y.Values {
				if !walk(v, rest, append(prefix, Index(i)), yield) {
					return false
				}
			}
		case ir.ObjectType:
			for i := range y.Keys {
				if !walk(y.Values[i], rest, append(prefix, Field(y.Keys[i])), yield) {
					return false
				}
			}
		}
		return true
	case Slice:
		if y.Type != ir.ArrayType {
			return true
		}
		start, stop, step := s.resolve(len(y.Values))
		for i := start; inRange(i, stop, step); i += step {
			if !walk(y.Values[i], rest, append(prefix, Index(i)), yield) {
				return false
			}
		}
		return true
	default:
		panic("segment")
	}
}

func inRange(i, stop, step int) bool {
	if step > 0 {
		return i < stop
	}
	return i > stop
}
