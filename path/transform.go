package path

import (
	"slices"

	"github.com/pdum/plumb/ir"
)

// MapFunc rewrites one matched value. Returning the argument
// unchanged leaves that location untouched; errors abort the
// transform and propagate to the caller unwrapped.
type MapFunc func(*ir.Node) (*ir.Node, error)

// Transform returns a new root in which every location matched by
// expr carries f's result. Only the ancestors of matched locations
// are reallocated; every untouched subtree is the same *ir.Node as in
// root. With zero matches (or f returning its argument everywhere)
// the result is root itself.
func Transform(root *ir.Node, expr Expr, f MapFunc) (*ir.Node, error) {
	out, _, err := rebuild(root, expr.segs, f)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func rebuild(y *ir.Node, segs []Segment, f MapFunc) (*ir.Node, bool, error) {
	if len(segs) == 0 {
		out, err := f(y)
		if err != nil {
			return nil, false, err
		}
		if out == y {
			return y, false, nil
		}
		return out, true, nil
	}
	rest := segs[1:]
	switch s := segs[0].(type) {
	case Field:
		if y.Type != ir.ObjectType {
			return y, false, nil
		}
		i := slices.Index(y.Keys, string(s))
		if i == -1 {
			return y, false, nil
		}
		nv, changed, err := rebuild(y.Values[i], rest, f)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return y, false, nil
		}
		return withValue(y, i, nv), true, nil
	case Index:
		i := int(s)
		if y.Type != ir.ArrayType {
			return y, false, nil
		}
		if i < 0 {
			i += len(y.Values)
		}
		if i < 0 || i >= len(y.Values) {
			return y, false, nil
		}
		nv, changed, err := rebuild(y.Values[i], rest, f)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			return y, false, nil
		}
		return withValue(y, i, nv), true, nil
	case Wildcard:
		if y.Type != ir.ObjectType && y.Type != ir.ArrayType {
			return y, false, nil
		}
		return rebuildRange(y, rest, f, 0, len(y.Values), 1)
	case Slice:
		if y.Type != ir.ArrayType {
			return y, false, nil
		}
		start, stop, step := s.resolve(len(y.Values))
		return rebuildRange(y, rest, f, start, stop, step)
	default:
		panic("segment")
	}
}

func rebuildRange(y *ir.Node, rest []Segment, f MapFunc, start, stop, step int) (*ir.Node, bool, error) {
	var vals []*ir.Node
	for i := start; inRange(i, stop, step); i += step {
		nv, changed, err := rebuild(y.Values[i], rest, f)
		if err != nil {
			return nil, false, err
		}
		if !changed {
			continue
		}
		if vals == nil {
			vals = slices.Clone(y.Values)
		}
		vals[i] = nv
	}
	if vals == nil {
		return y, false, nil
	}
	return shallow(y, vals), true, nil
}

func withValue(y *ir.Node, i int, v *ir.Node) *ir.Node {
	vals := slices.Clone(y.Values)
	vals[i] = v
	return shallow(y, vals)
}

// shallow remakes the container around replaced values. Keys are
// shared with the original: the slice is never mutated afterwards.
func shallow(y *ir.Node, vals []*ir.Node) *ir.Node {
	return &ir.Node{
		Type:   y.Type,
		Keys:   y.Keys,
		Values: vals,
	}
}
