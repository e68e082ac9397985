package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/midbel/cli"
	"github.com/midbel/exprtree/expr"
)

var debugCmd = cli.Command{
	Name:    "debug",
	Summary: "show the structure of the tree built for an expression",
	Handler: &DebugCmd{},
}

type DebugCmd struct {
	Trace   bool
	Json    bool
	Compact bool
}

func (c *DebugCmd) Run(args []string) error {
	set := cli.NewFlagSet("debug")
	set.BoolVar(&c.Trace, "trace", false, "trace conversion and build steps on stderr")
	set.BoolVar(&c.Json, "json", false, "write the tree as json")
	set.BoolVar(&c.Compact, "compact", false, "compact json output")
	if err := set.Parse(args); err != nil {
		return err
	}
	var options []expr.Option
	if c.Trace {
		options = append(options, expr.WithTracer(expr.TraceStderr()))
	}
	return c.print(os.Stdout, strings.Join(set.Args(), " "), options...)
}

func (c *DebugCmd) print(w io.Writer, str string, options ...expr.Option) error {
	builder := expr.NewBuilder(options...)
	tree, err := builder.Build(expr.Tokenize(str))
	if err != nil {
		return err
	}
	if c.Json {
		ws := expr.NewWriter(w)
		ws.Compact = c.Compact
		return ws.Write(tree)
	}
	fmt.Fprintln(w, expr.Debug(tree.Root()))
	fmt.Fprintf(w, "size: %d", tree.Size())
	fmt.Fprintln(w)
	return nil
}
