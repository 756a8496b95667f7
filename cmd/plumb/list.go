package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/pdum/plumb/ir"
	"github.com/pdum/plumb/path"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires one argument, a path expression", cli.ErrUsage)
	}
	expr, err := path.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	pathColor := color.New(color.FgCyan)
	if !cfg.useColor(cc.Out) {
		pathColor.DisableColor()
	}
	for _, arg := range inputArgs(args[1:]) {
		doc, err := getObjFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if !cfg.WithPaths {
			var vals []*ir.Node
			for m := range path.Evaluate(doc, expr) {
				vals = append(vals, m.Value)
			}
			if err := cfg.encode(cc.Out, ir.FromSlice(vals)); err != nil {
				return err
			}
			continue
		}
		for m := range path.Evaluate(doc, expr) {
			if _, err := pathColor.Fprintf(cc.Out, "%s:\n", m.PathString()); err != nil {
				return err
			}
			if err := cfg.encode(cc.Out, m.Value); err != nil {
				return err
			}
		}
	}
	return nil
}
