package expr

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrUnbalanced = errors.New("unbalanced parentheses")
	ErrOperands   = errors.New("insufficient operands")
	ErrZero       = errors.New("division by zero")
	ErrEmpty      = errors.New("empty tree")
	ErrOperator   = errors.New("unknown operator")
	ErrNumber     = errors.New("invalid number")
)

type Op int8

const (
	Value Op = iota
	Plus
	Minus
	Times
	Divide
)

func (o Op) String() string {
	switch o {
	case Value:
		return "value"
	case Plus:
		return opAdd
	case Minus:
		return opSub
	case Times:
		return opMul
	case Divide:
		return opDiv
	default:
		return fmt.Sprintf("op(%d)", int(o))
	}
}

func (o Op) IsOperator() bool {
	switch o {
	case Plus, Minus, Times, Divide:
		return true
	default:
		return false
	}
}

func (o Op) precedence() int {
	switch o {
	case Plus, Minus:
		return PrecAdd
	case Times, Divide:
		return PrecMul
	default:
		return PrecHighest
	}
}

// Node is a value or a binary operation. Operator nodes own their two
// children.
type Node struct {
	Op    Op
	Value int
	Left  *Node
	Right *Node
}

func NewValue(v int) *Node {
	return &Node{
		Op:    Value,
		Value: v,
	}
}

// NewNumber parses a number token into a value node.
func NewNumber(tok string) (*Node, error) {
	if !IsNumber(tok) {
		return nil, fmt.Errorf("%w: %q", ErrNumber, tok)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return nil, fmt.Errorf("%w: %s out of range", ErrNumber, tok)
	}
	return NewValue(v), nil
}

// NewOperator creates an operator node without children for one of the four
// arithmetic operators.
func NewOperator(tok string) (*Node, error) {
	var op Op
	switch tok {
	case opAdd:
		op = Plus
	case opSub:
		op = Minus
	case opMul:
		op = Times
	case opDiv:
		op = Divide
	default:
		return nil, fmt.Errorf("%w: %q", ErrOperator, tok)
	}
	n := Node{
		Op: op,
	}
	return &n, nil
}

func NewBinary(op Op, left, right *Node) *Node {
	return &Node{
		Op:    op,
		Left:  left,
		Right: right,
	}
}

func (n *Node) IsLeaf() bool {
	return n.Op == Value
}

// String gives the operator symbol of n or its value when n is a leaf.
func (n *Node) String() string {
	if n.Op == Value {
		return strconv.Itoa(n.Value)
	}
	return n.Op.String()
}

func countSize(n *Node) int {
	if n == nil {
		return 0
	}
	return countSize(n.Left) + countSize(n.Right) + 1
}
