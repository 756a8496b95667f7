package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/pdum/plumb/path"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path expression", cli.ErrUsage)
	}
	expr, err := path.Parse(args[0])
	if err != nil {
		return fmt.Errorf("%w: %v", cli.ErrUsage, err)
	}
	for _, arg := range inputArgs(args[1:]) {
		doc, err := getObjFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		m, ok := path.First(doc, expr)
		if !ok {
			// no match, no output, no fuss
			continue
		}
		if err := cfg.encode(cc.Out, m.Value); err != nil {
			return fmt.Errorf("error querying %s with %s: %w", arg, expr, err)
		}
	}
	return nil
}
