// Package gomap converts between ordinary Go values and ir.Node
// trees. The path engine itself never touches text; documents enter
// and leave through this package.
package gomap

import (
	"fmt"
	"math"

	"github.com/goccy/go-yaml"

	"github.com/pdum/plumb/ir"
)

// FromAny builds a node tree from a decoded Go value. Maps of kind
// map[string]any get sorted keys; use yaml.MapSlice (as produced by
// Load) when insertion order matters.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return x, nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return ir.FromInt(int64(x)), nil
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		if x > math.MaxInt64 {
			return ir.FromFloat(float64(x)), nil
		}
		return ir.FromInt(int64(x)), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, len(x))
		for i, item := range x {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			val, err := FromAny(item.Value)
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: key, Val: val}
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		m := make(map[string]*ir.Node, len(x))
		for k, v := range x {
			node, err := FromAny(v)
			if err != nil {
				return nil, err
			}
			m[k] = node
		}
		return ir.FromMap(m), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, v := range x {
			node, err := FromAny(v)
			if err != nil {
				return nil, err
			}
			vals[i] = node
		}
		return ir.FromSlice(vals), nil
	default:
		return nil, fmt.Errorf("cannot map %T to a node", v)
	}
}

// ToAny converts a node tree to plain Go values: nil, bool, string,
// int64/float64, []any, and map[string]any. Object key order is lost;
// use ToOrdered when it matters.
func ToAny(y *ir.Node) any {
	switch y.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return y.Bool
	case ir.StringType:
		return y.String
	case ir.NumberType:
		if y.Int64 != nil {
			return *y.Int64
		}
		if y.Float64 != nil {
			return *y.Float64
		}
		return int64(0)
	case ir.ArrayType:
		res := make([]any, len(y.Values))
		for i, yv := range y.Values {
			res[i] = ToAny(yv)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(y.Keys))
		for i := range y.Keys {
			res[y.Keys[i]] = ToAny(y.Values[i])
		}
		return res
	default:
		panic("type")
	}
}

// ToOrdered is ToAny with objects rendered as yaml.MapSlice so field
// order survives a round trip.
func ToOrdered(y *ir.Node) any {
	switch y.Type {
	case ir.ArrayType:
		res := make([]any, len(y.Values))
		for i, yv := range y.Values {
			res[i] = ToOrdered(yv)
		}
		return res
	case ir.ObjectType:
		res := make(yaml.MapSlice, len(y.Keys))
		for i := range y.Keys {
			res[i] = yaml.MapItem{
				Key:   y.Keys[i],
				Value: ToOrdered(y.Values[i]),
			}
		}
		return res
	default:
		return ToAny(y)
	}
}
