package main

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/scott-cotton/cli"

	"github.com/pdum/plumb/debug"
	"github.com/pdum/plumb/exprmap"
	"github.com/pdum/plumb/gomap"
	"github.com/pdum/plumb/path"
)

func mapRun(cfg *MapConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Map.Parse(cc, args)
	if err != nil {
		cfg.Map.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 2 {
		return fmt.Errorf("%w: map requires a path expression and a mapper expression", cli.ErrUsage)
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
		if debug.Transform() {
			debug.Logf("map %s %s: changed=%v\n", arg, expr, out != doc)
		}
		if !cfg.Patch {
			if err := cfg.encode(cc.Out, out); err != nil {
				return err
			}
			continue
		}
		before, err := gomap.DumpJSON(doc)
		if err != nil {
			return err
		}
		after, err := gomap.DumpJSON(out)
		if err != nil {
			return err
		}
		patch, err := jsonpatch.CreateMergePatch(before, after)
		if err != nil {
			return fmt.Errorf("error creating patch for %s: %w", arg, err)
		}
		if _, err := fmt.Fprintf(cc.Out, "%s\n", patch); err != nil {
			return err
		}
	}
	return nil
}
