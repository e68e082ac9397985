package expr

import (
	"fmt"
	"io"
	"strings"
)

const (
	orderPrefix = iota
	orderInfix
	orderPostfix
)

func Prefix(n *Node) (string, error) {
	return renderOrder(n, orderPrefix)
}

func Infix(n *Node) (string, error) {
	return renderOrder(n, orderInfix)
}

func Postfix(n *Node) (string, error) {
	return renderOrder(n, orderPostfix)
}

func renderOrder(n *Node, order int) (string, error) {
	var str strings.Builder
	if err := writeOrder(&str, n, order); err != nil {
		return "", err
	}
	return str.String(), nil
}

func writeOrder(w io.StringWriter, n *Node, order int) error {
	if n == nil {
		return ErrEmpty
	}
	if n.Op == Value {
		w.WriteString(n.String())
		return nil
	}
	if !n.Op.IsOperator() {
		return fmt.Errorf("%w: %s", ErrOperator, n.Op)
	}
	if n.Left == nil || n.Right == nil {
		return fmt.Errorf("%w: %s expects two operands", ErrOperands, n.Op)
	}
	var (
		first  = n.Left
		second = n.Right
	)
	if order == orderPrefix {
		w.WriteString(n.String())
		w.WriteString(" ")
	}
	if err := writeOrder(w, first, order); err != nil {
		return err
	}
	w.WriteString(" ")
	if order == orderInfix {
		w.WriteString(n.String())
		w.WriteString(" ")
	}
	if err := writeOrder(w, second, order); err != nil {
		return err
	}
	if order == orderPostfix {
		w.WriteString(" ")
		w.WriteString(n.String())
	}
	return nil
}

// Format renders n in infix notation. A child is put between parentheses
// when it binds less than its parent, or as much when it is the right operand
// since operators group from the left.
func Format(n *Node) (string, error) {
	var str strings.Builder
	if err := formatNode(&str, n); err != nil {
		return "", err
	}
	return str.String(), nil
}

func formatNode(w io.StringWriter, n *Node) error {
	if n == nil {
		return ErrEmpty
	}
	if n.Op == Value {
		w.WriteString(n.String())
		return nil
	}
	if !n.Op.IsOperator() {
		return fmt.Errorf("%w: %s", ErrOperator, n.Op)
	}
	if n.Left == nil || n.Right == nil {
		return fmt.Errorf("%w: %s expects two operands", ErrOperands, n.Op)
	}
	prec := n.Op.precedence()
	if err := formatChild(w, n.Left, n.Left.Op.precedence() < prec); err != nil {
		return err
	}
	w.WriteString(" ")
	w.WriteString(n.String())
	w.WriteString(" ")
	return formatChild(w, n.Right, n.Right.Op.precedence() <= prec)
}

func formatChild(w io.StringWriter, n *Node, group bool) error {
	if !group {
		return formatNode(w, n)
	}
	w.WriteString(begGrp)
	if err := formatNode(w, n); err != nil {
		return err
	}
	w.WriteString(endGrp)
	return nil
}
