package expr

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Writer encodes trees as JSON. Leaves are written as numbers and operators
// as objects with op, left and right keys.
type Writer struct {
	ws *bufio.Writer

	Indent  string
	Compact bool

	level int
}

func NewWriter(w io.Writer) *Writer {
	ws := Writer{
		ws:     bufio.NewWriter(w),
		Indent: "  ",
	}
	return &ws
}

func (w *Writer) Write(t *Tree) error {
	if t != nil {
		if err := checkNode(t.Root()); err != nil {
			return err
		}
	}
	defer func() {
		w.reset()
		w.ws.Flush()
	}()
	if t == nil || t.IsEmpty() {
		w.ws.WriteString("null")
		w.writeNL()
		return nil
	}
	if err := w.writeNode(t.Root()); err != nil {
		return err
	}
	w.writeNL()
	return nil
}

func (w *Writer) writeNode(n *Node) error {
	if n == nil {
		return fmt.Errorf("%w: missing child", ErrOperands)
	}
	if n.Op == Value {
		w.ws.WriteString(strconv.Itoa(n.Value))
		return nil
	}
	if !n.Op.IsOperator() {
		return fmt.Errorf("%w: %s", ErrOperator, n.Op)
	}
	return w.writeObject(n)
}

// checkNode walks the tree so that nothing is written for an invalid one.
func checkNode(n *Node) error {
	if n == nil || n.Op == Value {
		return nil
	}
	if !n.Op.IsOperator() {
		return fmt.Errorf("%w: %s", ErrOperator, n.Op)
	}
	if n.Left == nil || n.Right == nil {
		return fmt.Errorf("%w: %s expects two operands", ErrOperands, n.Op)
	}
	if err := checkNode(n.Left); err != nil {
		return err
	}
	return checkNode(n.Right)
}

func (w *Writer) writeObject(n *Node) error {
	w.enter()

	w.ws.WriteRune('{')
	w.writeNL()

	w.writePrefix()
	w.writeKey("op")
	w.writeString(n.String())
	w.ws.WriteRune(',')
	w.writeNL()

	w.writePrefix()
	w.writeKey("left")
	if err := w.writeNode(n.Left); err != nil {
		return err
	}
	w.ws.WriteRune(',')
	w.writeNL()

	w.writePrefix()
	w.writeKey("right")
	if err := w.writeNode(n.Right); err != nil {
		return err
	}

	w.leave()
	w.writeNL()
	w.writePrefix()
	w.ws.WriteRune('}')
	return nil
}

func (w *Writer) writeKey(key string) {
	w.writeString(key)
	w.ws.WriteRune(':')
	if !w.Compact {
		w.ws.WriteRune(' ')
	}
}

func (w *Writer) writeString(value string) {
	w.ws.WriteRune('"')
	w.ws.WriteString(value)
	w.ws.WriteRune('"')
}

func (w *Writer) writePrefix() {
	if w.Compact || w.level == 0 {
		return
	}
	space := strings.Repeat(w.Indent, w.level)
	w.ws.WriteString(space)
}

func (w *Writer) writeNL() {
	if w.Compact {
		return
	}
	w.ws.WriteRune('\n')
}

func (w *Writer) enter() {
	w.level++
}

func (w *Writer) leave() {
	w.level--
}

func (w *Writer) reset() {
	w.level = 0
}
