package stream

import (
	"errors"
	"fmt"

	"github.com/pdum/plumb/ir"
	"github.com/pdum/plumb/path"
)

var ErrAmbiguous = errors.New("ambiguous match")

// Proj extracts one value per record. A nil result means the path had
// no match in that record; absence is not an error.
type Proj func(*ir.Node) *ir.Node

// Field builds a reusable single-value projector from path text. When
// the expression matches more than once (wildcards, slices), the
// first match in evaluation order is taken; use FieldOne to reject
// ambiguity instead.
func Field(pathText string) (Proj, error) {
	expr, err := path.Parse(pathText)
	if err != nil {
		return nil, err
	}
	return FieldExpr(expr), nil
}

// FieldExpr is Field over an already-parsed expression.
func FieldExpr(expr path.Expr) Proj {
	return func(rec *ir.Node) *ir.Node {
		m, ok := path.First(rec, expr)
		if !ok {
			return nil
		}
		return m.Value
	}
}

// Map builds a reusable per-record transform from path text: the
// expression is parsed once and the returned function applies
// path.Transform to each record it is given.
func Map(pathText string, f path.MapFunc) (func(*ir.Node) (*ir.Node, error), error) {
	expr, err := path.Parse(pathText)
	if err != nil {
		return nil, err
	}
	return func(rec *ir.Node) (*ir.Node, error) {
		return path.Transform(rec, expr, f)
	}, nil
}

// FieldOne is the strict variant of Field: extracting from a record
// with more than one match fails with ErrAmbiguous. A record with no
// match still yields nil, nil.
func FieldOne(pathText string) (func(*ir.Node) (*ir.Node, error), error) {
	expr, err := path.Parse(pathText)
	if err != nil {
		return nil, err
	}
	return func(rec *ir.Node) (*ir.Node, error) {
		var res *ir.Node
		n := 0
		for m := range path.Evaluate(rec, expr) {
			n++
			if n > 1 {
				return nil, fmt.Errorf("%w: %s", ErrAmbiguous, expr)
			}
			res = m.Value
		}
		return res, nil
	}, nil
}
