package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/midbel/cli"
	"github.com/midbel/exprtree/expr"
)

var evalCmd = cli.Command{
	Name:    "eval",
	Summary: "evaluate arithmetic expressions",
	Handler: &EvalCmd{},
}

var tokensCmd = cli.Command{
	Name:    "tokens",
	Summary: "print the tokens of an expression",
	Handler: &TokensCmd{},
}

var postfixCmd = cli.Command{
	Name:    "postfix",
	Summary: "print the tokens of an expression in postfix order",
	Handler: &PostfixCmd{},
}

var printCmd = cli.Command{
	Name:    "print",
	Summary: "print the tree of an expression in prefix, infix or postfix notation",
	Handler: &PrintCmd{},
}

type EvalCmd struct {
	Quiet bool
}

func (c *EvalCmd) Run(args []string) error {
	set := cli.NewFlagSet("eval")
	set.BoolVar(&c.Quiet, "q", false, "print only the results")
	if err := set.Parse(args); err != nil {
		return err
	}
	var failed bool
	for _, str := range set.Args() {
		res, err := evaluate(str)
		if err != nil {
			failed = true
			fmt.Fprintf(os.Stderr, "%s: %s", str, err)
			fmt.Fprintln(os.Stderr)
			continue
		}
		if c.Quiet {
			fmt.Fprintln(os.Stdout, res)
		} else {
			fmt.Fprintf(os.Stdout, "%s = %d", str, res)
			fmt.Fprintln(os.Stdout)
		}
	}
	if failed {
		return errFail
	}
	return nil
}

func evaluate(str string) (int, error) {
	tree, err := expr.BuildString(str)
	if err != nil {
		return 0, err
	}
	return tree.Eval()
}

type TokensCmd struct{}

func (c *TokensCmd) Run(args []string) error {
	set := cli.NewFlagSet("tokens")
	if err := set.Parse(args); err != nil {
		return err
	}
	printTokens(os.Stdout, strings.Join(set.Args(), " "))
	return nil
}

func printTokens(w io.Writer, str string) {
	for _, tok := range expr.Tokenize(str) {
		fmt.Fprintf(w, "%-12s %s", expr.KindString(expr.Kind(tok)), tok)
		fmt.Fprintln(w)
	}
}

type PostfixCmd struct{}

func (c *PostfixCmd) Run(args []string) error {
	set := cli.NewFlagSet("postfix")
	if err := set.Parse(args); err != nil {
		return err
	}
	return printPostfix(os.Stdout, strings.Join(set.Args(), " "))
}

func printPostfix(w io.Writer, str string) error {
	list, err := expr.ToPostfix(expr.Tokenize(str))
	if err != nil {
		return err
	}
	fmt.Fprintln(w, strings.Join(list, " "))
	return nil
}

const (
	orderPrefix  = "prefix"
	orderInfix   = "infix"
	orderPostfix = "postfix"
	orderExpr    = "expr"
)

type PrintCmd struct {
	Order string
}

func (c *PrintCmd) Run(args []string) error {
	set := cli.NewFlagSet("print")
	set.StringVar(&c.Order, "order", orderInfix, "notation used to print the tree (prefix, infix, postfix, expr)")
	if err := set.Parse(args); err != nil {
		return err
	}
	tree, err := expr.BuildString(strings.Join(set.Args(), " "))
	if err != nil {
		return err
	}
	str, err := render(tree, c.Order)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, str)
	return nil
}

func render(tree *expr.Tree, order string) (string, error) {
	switch order {
	case orderPrefix:
		return tree.Prefix()
	case orderInfix, "":
		return tree.Infix()
	case orderPostfix:
		return tree.Postfix()
	case orderExpr:
		return tree.Expr()
	default:
		return "", fmt.Errorf("%s: unknown notation", order)
	}
}
