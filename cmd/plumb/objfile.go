package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/pdum/plumb/gomap"
	"github.com/pdum/plumb/ir"
)

func getObjFile(cc *cli.Context, path string) (*ir.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}

	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return gomap.Load(d)
}

// inputArgs defaults to stdin when no files are given.
func inputArgs(args []string) []string {
	if len(args) == 0 {
		return []string{"-"}
	}
	return args
}

// records flattens each input document into records: a top-level
// array contributes its elements, anything else is one record.
func records(cc *cli.Context, args []string) ([]*ir.Node, error) {
	var res []*ir.Node
	for _, arg := range inputArgs(args) {
		doc, err := getObjFile(cc, arg)
		if err != nil {
			return nil, fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if doc.Type == ir.ArrayType {
			res = append(res, doc.Values...)
			continue
		}
		res = append(res, doc)
	}
	return res, nil
}
