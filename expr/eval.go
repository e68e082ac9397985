package expr

import (
	"fmt"
)

type BinaryFunc func(int, int) (int, error)

var binaryOp = map[Op]BinaryFunc{
	Plus:   doAdd,
	Minus:  doSub,
	Times:  doMul,
	Divide: doDiv,
}

// Evaluate reduces the tree rooted at n to a single integer. Division
// truncates toward zero.
func Evaluate(n *Node) (int, error) {
	if n == nil {
		return 0, ErrEmpty
	}
	if n.Op == Value {
		return n.Value, nil
	}
	fn, ok := binaryOp[n.Op]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrOperator, n.Op)
	}
	if n.Left == nil || n.Right == nil {
		return 0, fmt.Errorf("%w: %s expects two operands", ErrOperands, n.Op)
	}
	left, err := Evaluate(n.Left)
	if err != nil {
		return 0, err
	}
	right, err := Evaluate(n.Right)
	if err != nil {
		return 0, err
	}
	return fn(left, right)
}

func doAdd(left, right int) (int, error) {
	return left + right, nil
}

func doSub(left, right int) (int, error) {
	return left - right, nil
}

func doMul(left, right int) (int, error) {
	return left * right, nil
}

func doDiv(left, right int) (int, error) {
	if right == 0 {
		return 0, ErrZero
	}
	return left / right, nil
}
