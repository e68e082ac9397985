package expr

const (
	PrecGroup = iota
	PrecAdd
	PrecMul
	PrecHighest
)

var bindings = map[string]int{
	begGrp: PrecGroup,
	opAdd:  PrecAdd,
	opSub:  PrecAdd,
	opMul:  PrecMul,
	opDiv:  PrecMul,
}

// Precedence gives the binding power of tok. Tokens that are not operators
// nor an opening parenthesis get PrecHighest.
func Precedence(tok string) int {
	p, ok := bindings[tok]
	if !ok {
		return PrecHighest
	}
	return p
}

// LeftAssoc makes operators of equal precedence group from the left: an
// operator already on the stack is emitted before an incoming operator with
// the same precedence.
const LeftAssoc = true

// evicts reports whether top has to be moved from the operator stack to the
// output before curr can be pushed.
func evicts(top, curr string) bool {
	pt, pc := Precedence(top), Precedence(curr)
	if LeftAssoc {
		return pt >= pc
	}
	return pt > pc
}
