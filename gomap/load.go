package gomap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/pdum/plumb/ir"
)

// Load parses a YAML or JSON document (YAML being a superset) into a
// node tree, preserving object field order.
func Load(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}
	return FromAny(v)
}

// DumpYAML renders a node tree as YAML, field order intact.
func DumpYAML(y *ir.Node) ([]byte, error) {
	return yaml.Marshal(ToOrdered(y))
}

// DumpJSON renders a node tree as compact JSON. Encoding is done by
// walking the tree so object field order is preserved, which
// map[string]any marshalling would not do.
func DumpJSON(y *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, y); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, y *ir.Node) error {
	switch y.Type {
	case ir.NullType:
		buf.WriteString("null")
	case ir.BoolType:
		buf.WriteString(strconv.FormatBool(y.Bool))
	case ir.NumberType:
		if y.Int64 != nil {
			buf.WriteString(strconv.FormatInt(*y.Int64, 10))
			return nil
		}
		f := 0.0
		if y.Float64 != nil {
			f = *y.Float64
		}
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("cannot encode %v as json", f)
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case ir.StringType:
		d, err := json.Marshal(y.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ir.ArrayType:
		buf.WriteByte('[')
		for i, yv := range y.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, yv); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ir.ObjectType:
		buf.WriteByte('{')
		for i := range y.Keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(y.Keys[i])
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := writeJSON(buf, y.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		panic("type")
	}
	return nil
}
