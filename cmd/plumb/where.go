package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/pdum/plumb/exprmap"
	"github.com/pdum/plumb/ir"
	"github.com/pdum/plumb/stream"
)

func where(cfg *WhereConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Where.Parse(cc, args)
	if err != nil {
		cfg.Where.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: where requires one argument, a predicate expression", cli.ErrUsage)
	}
	pred, err := exprmap.Predicate(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	recs, err := records(cc, args[1:])
	if err != nil {
		return err
	}
	var kept []*ir.Node
	for rec := range stream.Where(stream.Of(recs...), pred) {
		kept = append(kept, rec)
	}
	return cfg.encode(cc.Out, ir.FromSlice(kept))
}
