package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	})

	return cli.NewCommandAt(&cfg.Main, "plumb").
		WithSynopsis("plumb [opts] command [opts]").
		WithDescription("plumb navigates and transforms nested data with path expressions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return plumbMain(cfg, cc, args)
		}).
		WithSubs(
			GetCommand(cfg),
			ListCommand(cfg),
			MapCommand(cfg),
			GroupCommand(cfg),
			WhereCommand(cfg),
			DiffCommand(cfg))
}

func plumbMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [files]").
		WithDescription("get the first value matching a path expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l").
		WithSynopsis("list [-p] <path> [files]").
		WithDescription("list all values matching a path expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func MapCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MapConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Map, "map").
		WithAliases("m").
		WithSynopsis("map [-patch] <path> <mapper-expr> [files]").
		WithDescription("rewrite every value matching a path expression").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return mapRun(cfg, cc, args)
		})
}

func GroupCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GroupConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Group, "group").
		WithSynopsis("group <path> [files]").
		WithDescription("group records by the value at a path expression").
		WithRun(func(cc *cli.Context, args []string) error {
			return group(cfg, cc, args)
		})
}

func WhereCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &WhereConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Where, "where").
		WithAliases("w").
		WithSynopsis("where <predicate-expr> [files]").
		WithDescription("keep records for which a predicate expression holds").
		WithRun(func(cc *cli.Context, args []string) error {
			return where(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithSynopsis("diff <path> <mapper-expr> [files]").
		WithDescription("show what a map command would change").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}
