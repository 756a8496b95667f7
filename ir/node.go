// Package ir holds the in-memory value tree that path expressions
// navigate: objects with insertion-ordered fields, arrays, and scalar
// leaves.
//
// Nodes carry no parent pointers. A transform shares untouched
// subtrees between the original root and the new one, so a node can be
// reachable from several roots and cannot name a unique parent. Nodes
// reachable from more than one root must be treated as immutable.
package ir

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

type Node struct {
	Type Type

	// Keys and Values are parallel for objects, insertion order
	// preserved. Arrays use Values only.
	Keys   []string
	Values []*Node

	String  string
	Bool    bool
	Float64 *float64
	Int64   *int64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

// FromMap builds an object node with keys in sorted order. Use
// FromKeyVals when the input order matters.
func FromMap(m map[string]*Node) *Node {
	res := &Node{Type: ObjectType}
	res.Keys = slices.Sorted(maps.Keys(m))
	res.Values = make([]*Node, len(res.Keys))
	for i, key := range res.Keys {
		res.Values[i] = m[key]
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Keys:   make([]string, len(kvs)),
		Values: make([]*Node, len(kvs)),
	}
	for i := range kvs {
		res.Keys[i] = kvs[i].Key
		res.Values[i] = kvs[i].Val
	}
	return res
}

func FromSlice(vals []*Node) *Node {
	return &Node{
		Type:   ArrayType,
		Values: vals,
	}
}

// Get returns the value of the named field, or nil if y is not an
// object or has no such field.
func Get(y *Node, field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for i := range y.Keys {
		if y.Keys[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// At returns the i'th element of an array, resolving negative i from
// the end. The second result is false when y is not an array or i is
// out of range.
func At(y *Node, i int) (*Node, bool) {
	if y.Type != ArrayType {
		return nil, false
	}
	if i < 0 {
		i += len(y.Values)
	}
	if i < 0 || i >= len(y.Values) {
		return nil, false
	}
	return y.Values[i], true
}

func ToMap(y *Node) map[string]*Node {
	if y.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(y.Keys))
	for i := range y.Keys {
		res[y.Keys[i]] = y.Values[i]
	}
	return res
}

func (y *Node) Clone() *Node {
	res := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
	}
	if y.Float64 != nil {
		f := *y.Float64
		res.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		res.Int64 = &i
	}
	if y.Keys != nil {
		res.Keys = slices.Clone(y.Keys)
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			res.Values[i] = yv.Clone()
		}
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Key renders y as a deterministic string suitable for use as a
// grouping key. Scalars render canonically, containers render in a
// compact recursive form.
func (y *Node) Key() string {
	switch y.Type {
	case NullType:
		return "null"
	case BoolType:
		if y.Bool {
			return "true"
		}
		return "false"
	case NumberType:
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
		}
		return "0"
	case StringType:
		return y.String
	case ArrayType:
		parts := make([]string, len(y.Values))
		for i, yv := range y.Values {
			parts[i] = yv.Key()
		}
		return "[" + strings.Join(parts, ",") + "]"
	case ObjectType:
		parts := make([]string, len(y.Keys))
		for i := range y.Keys {
			parts[i] = y.Keys[i] + ":" + y.Values[i].Key()
		}
		return "{" + strings.Join(parts, ",") + "}"
	default:
		panic("type")
	}
}
