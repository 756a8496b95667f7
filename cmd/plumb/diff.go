package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/pdum/plumb/exprmap"
	"github.com/pdum/plumb/gomap"
	"github.com/pdum/plumb/path"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: diff requires a path expression and a mapper expression", cli.ErrUsage)
	}
	expr, err := path.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	mapper, err := exprmap.Mapper(args[1])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	for _, arg := range inputArgs(args[2:]) {
		doc, err := getObjFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		out, err := path.Transform(doc, expr, mapper)
		if err != nil {
			return fmt.Errorf("error mapping %s with %s: %w", arg, expr, err)
		}
		if out == doc {
			// nothing matched, nothing to show
			continue
		}
		before, err := gomap.DumpYAML(doc)
		if err != nil {
			return err
		}
		after, err := gomap.DumpYAML(out)
		if err != nil {
			return err
		}
		if err := writeDiff(cfg, cc, string(before), string(after)); err != nil {
			return err
		}
	}
	return nil
}

func writeDiff(cfg *DiffConfig, cc *cli.Context, before, after string) error {
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(before, after, true)
	diffs = dmp.DiffCleanupSemantic(diffs)

	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed, color.CrossedOut)
	if !cfg.useColor(cc.Out) {
		ins.DisableColor()
		del.DisableColor()
	}
	for _, d := range diffs {
		var err error
		switch d.Type {
		case diffpatch.DiffInsert:
			_, err = ins.Fprint(cc.Out, d.Text)
		case diffpatch.DiffDelete:
			_, err = del.Fprint(cc.Out, d.Text)
		case diffpatch.DiffEqual:
			_, err = fmt.Fprint(cc.Out, d.Text)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
