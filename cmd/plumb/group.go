package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/pdum/plumb/ir"
	"github.com/pdum/plumb/stream"
)

func group(cfg *GroupConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Group.Parse(cc, args)
	if err != nil {
		cfg.Group.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: group requires one argument, a path expression", cli.ErrUsage)
	}
	groupBy, err := stream.GroupBy(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	recs, err := records(cc, args[1:])
	if err != nil {
		return err
	}
	g := groupBy(stream.Of(recs...))

	keyColor := color.New(color.FgGreen, color.Bold)
	if !cfg.useColor(cc.Out) {
		keyColor.DisableColor()
	}
	for i, k := range g.Keys() {
		if i > 0 {
			if _, err := cc.Out.Write([]byte("\n")); err != nil {
				return err
			}
		}
		if _, err := keyColor.Fprintf(cc.Out, "%s:\n", k); err != nil {
			return err
		}
		if err := cfg.encode(cc.Out, ir.FromSlice(g.Bucket(k))); err != nil {
			return err
		}
	}
	return nil
}
