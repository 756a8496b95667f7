package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/pdum/plumb/gomap"
	"github.com/pdum/plumb/ir"
)

type MainConfig struct {
	J     bool `cli:"name=j aliases=json desc='output json'"`
	Y     bool `cli:"name=y aliases=yaml desc='output yaml (default)'"`
	Color bool `cli:"name=color desc='force colored output'"`

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) encode(w io.Writer, y *ir.Node) error {
	var (
		d   []byte
		err error
	)
	if cfg.J {
		d, err = gomap.DumpJSON(y)
		d = append(d, '\n')
	} else {
		d, err = gomap.DumpYAML(y)
	}
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = w.Write(d)
	return err
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig

	WithPaths bool `cli:"name=p aliases=paths desc='prefix each match with its concrete path'"`

	List *cli.Command
}

type MapConfig struct {
	*MainConfig

	Patch bool `cli:"name=patch desc='emit a json merge patch instead of the result'"`

	Map *cli.Command
}

type GroupConfig struct {
	*MainConfig

	Group *cli.Command
}

type WhereConfig struct {
	*MainConfig

	Where *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
