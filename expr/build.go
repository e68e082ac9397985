package expr

import (
	"fmt"
)

type Option func(*Builder)

func WithTracer(tracer Tracer) Option {
	return func(b *Builder) {
		if tracer == nil {
			tracer = discardTracer{}
		}
		b.tracer = tracer
	}
}

// Builder converts infix tokens to postfix and postfix tokens to trees,
// reporting each step to its tracer.
type Builder struct {
	tracer Tracer
}

func NewBuilder(options ...Option) *Builder {
	b := Builder{
		tracer: discardTracer{},
	}
	for _, o := range options {
		o(&b)
	}
	return &b
}

var defaultBuilder = NewBuilder()

// ToPostfix reorders infix tokens in postfix order using the shunting-yard
// algorithm.
func ToPostfix(tokens []string) ([]string, error) {
	return defaultBuilder.Postfix(tokens)
}

// Build creates the tree of the given infix tokens. Only an empty list of
// tokens gives an empty tree.
func Build(tokens []string) (*Tree, error) {
	return defaultBuilder.Build(tokens)
}

func BuildPostfix(postfix []string) (*Tree, error) {
	return defaultBuilder.BuildPostfix(postfix)
}

func (b *Builder) Postfix(tokens []string) ([]string, error) {
	var (
		stack []string
		list  = make([]string, 0, len(tokens))
	)
	for _, tok := range tokens {
		switch {
		case tok == begGrp:
			stack = append(stack, tok)
			b.tracer.Shift("push", tok, len(stack))
		case tok == endGrp:
			for len(stack) > 0 && stack[len(stack)-1] != begGrp {
				list = append(list, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
				b.tracer.Shift("pop", list[len(list)-1], len(stack))
			}
			if len(stack) == 0 {
				err := fmt.Errorf("%w: missing '(' before ')'", ErrUnbalanced)
				b.tracer.Error("postfix", err)
				return nil, err
			}
			stack = stack[:len(stack)-1]
			b.tracer.Shift("discard", begGrp, len(stack))
		case IsNumber(tok):
			list = append(list, tok)
			b.tracer.Shift("output", tok, len(stack))
		default:
			for len(stack) > 0 && evicts(stack[len(stack)-1], tok) {
				list = append(list, stack[len(stack)-1])
				stack = stack[:len(stack)-1]
				b.tracer.Shift("pop", list[len(list)-1], len(stack))
			}
			stack = append(stack, tok)
			b.tracer.Shift("push", tok, len(stack))
		}
	}
	for len(stack) > 0 {
		tok := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if tok == begGrp {
			err := fmt.Errorf("%w: missing ')' at end of expression", ErrUnbalanced)
			b.tracer.Error("postfix", err)
			return nil, err
		}
		list = append(list, tok)
		b.tracer.Shift("pop", tok, len(stack))
	}
	return list, nil
}

func (b *Builder) Build(tokens []string) (*Tree, error) {
	postfix, err := b.Postfix(tokens)
	if err != nil {
		return nil, err
	}
	if len(postfix) == 0 && len(tokens) > 0 {
		err := fmt.Errorf("%w: empty group", ErrOperands)
		b.tracer.Error("build", err)
		return nil, err
	}
	return b.BuildPostfix(postfix)
}

// BuildPostfix creates a tree from tokens already in postfix order. The first
// node popped for an operator is its right operand, the second its left one.
func (b *Builder) BuildPostfix(postfix []string) (*Tree, error) {
	var stack []*Node
	for _, tok := range postfix {
		if IsNumber(tok) {
			n, err := NewNumber(tok)
			if err != nil {
				b.tracer.Error("build", err)
				return nil, err
			}
			stack = append(stack, n)
			b.tracer.Shift("value", tok, len(stack))
			continue
		}
		op, err := NewOperator(tok)
		if err != nil {
			b.tracer.Error("build", err)
			return nil, err
		}
		if len(stack) < 2 {
			err := fmt.Errorf("%w: %s expects two operands, got %d", ErrOperands, tok, len(stack))
			b.tracer.Error("build", err)
			return nil, err
		}
		op.Right = stack[len(stack)-1]
		op.Left = stack[len(stack)-2]
		stack = stack[:len(stack)-2]
		stack = append(stack, op)
		b.tracer.Reduce(tok, len(stack))
	}
	switch len(stack) {
	case 0:
		return New(), nil
	case 1:
		return FromNode(stack[0]), nil
	default:
		err := fmt.Errorf("%w: %d operands left without operator", ErrOperands, len(stack)-1)
		b.tracer.Error("build", err)
		return nil, err
	}
}
