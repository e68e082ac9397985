package expr

import (
	"fmt"
	"unicode"
)

const (
	EOF rune = -(1 + iota)
	Number
	Add
	Sub
	Mul
	Div
	BegGrp
	EndGrp
	Invalid
)

const (
	opAdd  = "+"
	opSub  = "-"
	opMul  = "*"
	opDiv  = "/"
	begGrp = "("
	endGrp = ")"
)

// Tokenize splits expr into numbers, operators and parentheses. Consecutive
// digits are merged into a single number and whitespaces are dropped. No
// validation is done at this stage.
func Tokenize(expr string) []string {
	var list []string
	for _, r := range expr {
		if unicode.IsSpace(r) {
			continue
		}
		n := len(list)
		if n > 0 && isDigit(r) && IsNumber(list[n-1]) {
			list[n-1] += string(r)
			continue
		}
		list = append(list, string(r))
	}
	return list
}

// IsNumber reports whether tok is a non empty sequence of decimal digits.
func IsNumber(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if !isDigit(rune(tok[i])) {
			return false
		}
	}
	return true
}

func Kind(tok string) rune {
	switch tok {
	case "":
		return EOF
	case opAdd:
		return Add
	case opSub:
		return Sub
	case opMul:
		return Mul
	case opDiv:
		return Div
	case begGrp:
		return BegGrp
	case endGrp:
		return EndGrp
	default:
		if IsNumber(tok) {
			return Number
		}
		return Invalid
	}
}

func KindString(kind rune) string {
	switch kind {
	case EOF:
		return "<eof>"
	case Number:
		return "number"
	case Add:
		return "<add>"
	case Sub:
		return "<subtract>"
	case Mul:
		return "<multiply>"
	case Div:
		return "<divide>"
	case BegGrp:
		return "<beg-grp>"
	case EndGrp:
		return "<end-grp>"
	case Invalid:
		return "invalid"
	default:
		return fmt.Sprintf("<unknown(%d)>", kind)
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
