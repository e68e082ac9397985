package expr

// Tree wraps the root of an expression. Its size is computed once when the
// tree is created since a tree is never modified afterwards.
type Tree struct {
	root *Node
	size int
}

func New() *Tree {
	return FromNode(nil)
}

func FromNode(root *Node) *Tree {
	t := Tree{
		root: root,
		size: countSize(root),
	}
	return &t
}

// BuildString tokenizes expr and builds its tree.
func BuildString(expr string) (*Tree, error) {
	return Build(Tokenize(expr))
}

func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) Size() int {
	return t.size
}

func (t *Tree) IsEmpty() bool {
	return t.size == 0
}

func (t *Tree) Eval() (int, error) {
	if t.root == nil {
		return 0, ErrEmpty
	}
	return Evaluate(t.root)
}

func (t *Tree) Prefix() (string, error) {
	return t.render(Prefix)
}

func (t *Tree) Infix() (string, error) {
	return t.render(Infix)
}

func (t *Tree) Postfix() (string, error) {
	return t.render(Postfix)
}

// Expr renders the tree in infix notation with only the parentheses required
// to keep its shape.
func (t *Tree) Expr() (string, error) {
	return t.render(Format)
}

func (t *Tree) render(fn func(*Node) (string, error)) (string, error) {
	if t.root == nil {
		return "", ErrEmpty
	}
	return fn(t.root)
}

func PrefixOrder(t *Tree) (string, error) {
	return t.Prefix()
}

func InfixOrder(t *Tree) (string, error) {
	return t.Infix()
}

func PostfixOrder(t *Tree) (string, error) {
	return t.Postfix()
}
