// Package exprmap compiles expr-lang expressions into value mappers
// and record predicates. The matched value is bound to `value` in the
// expression environment.
package exprmap

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/pdum/plumb/debug"
	"github.com/pdum/plumb/gomap"
	"github.com/pdum/plumb/ir"
	"github.com/pdum/plumb/path"
)

func opts() []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			node, err := gomap.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			p, err := path.Parse(params[1].(string))
			if err != nil {
				return nil, err
			}
			m, ok := path.First(node, p)
			if !ok {
				return nil, nil
			}
			return gomap.ToAny(m.Value), nil
		},
			new(func(any, string) any)),
		expr.Function("listpath", func(params ...any) (any, error) {
			node, err := gomap.FromAny(params[0])
			if err != nil {
				return nil, err
			}
			p, err := path.Parse(params[1].(string))
			if err != nil {
				return nil, err
			}
			var res []any
			for m := range path.Evaluate(node, p) {
				res = append(res, gomap.ToAny(m.Value))
			}
			return res, nil
		},
			new(func(any, string) []any)),
	}
}

func compile(code string) (*vm.Program, error) {
	prog, err := expr.Compile(code, opts()...)
	if err != nil {
		return nil, fmt.Errorf("compiling %q: %w", code, err)
	}
	return prog, nil
}

// Mapper compiles an expression into a path.MapFunc. The expression
// sees the matched value as `value` in plain Go form and its result is
// mapped back into a node.
func Mapper(code string) (path.MapFunc, error) {
	prog, err := compile(code)
	if err != nil {
		return nil, err
	}
	return func(y *ir.Node) (*ir.Node, error) {
		out, err := expr.Run(prog, map[string]any{"value": gomap.ToAny(y)})
		if err != nil {
			return nil, err
		}
		if debug.Eval() {
			debug.Logf("mapper %q: %v\n", code, out)
		}
		return gomap.FromAny(out)
	}, nil
}

// Predicate compiles an expression into a record predicate for
// stream.Where. Non-bool results are coerced by truthiness; an
// evaluation error counts as false.
func Predicate(code string) (func(*ir.Node) bool, error) {
	prog, err := compile(code)
	if err != nil {
		return nil, err
	}
	return func(y *ir.Node) bool {
		out, err := expr.Run(prog, map[string]any{"value": gomap.ToAny(y)})
		if err != nil {
			if debug.Eval() {
				debug.Logf("predicate %q: %v\n", code, err)
			}
			return false
		}
		if b, ok := out.(bool); ok {
			return b
		}
		node, err := gomap.FromAny(out)
		if err != nil {
			return false
		}
		return ir.Truth(node)
	}, nil
}
