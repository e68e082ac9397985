package expr

import (
	"io"
	"strconv"
	"strings"
)

func Debug(n *Node) string {
	var str strings.Builder
	debugNode(&str, n)
	return str.String()
}

func debugNode(w io.Writer, n *Node) {
	if n == nil {
		io.WriteString(w, "nil")
		return
	}
	switch n.Op {
	case Value:
		io.WriteString(w, "value")
		io.WriteString(w, "(")
		io.WriteString(w, strconv.Itoa(n.Value))
		io.WriteString(w, ")")
		return
	case Plus:
		io.WriteString(w, "add")
	case Minus:
		io.WriteString(w, "subtract")
	case Times:
		io.WriteString(w, "multiply")
	case Divide:
		io.WriteString(w, "divide")
	default:
		io.WriteString(w, n.Op.String())
	}
	io.WriteString(w, "(")
	debugNode(w, n.Left)
	io.WriteString(w, ", ")
	debugNode(w, n.Right)
	io.WriteString(w, ")")
}
