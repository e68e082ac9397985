package expr

import (
	"errors"
	"strings"
	"testing"
)

func TestWriter(t *testing.T) {
	tests := []struct {
		Expr     string
		Compact  bool
		Expected string
	}{
		{
			Expr:     "3+4*2",
			Compact:  true,
			Expected: `{"op":"+","left":3,"right":{"op":"*","left":4,"right":2}}`,
		},
		{
			Expr:     "1-2",
			Expected: "{\n  \"op\": \"-\",\n  \"left\": 1,\n  \"right\": 2\n}\n",
		},
		{
			Expr:     "5",
			Compact:  true,
			Expected: "5",
		},
		{
			Expr:     "",
			Compact:  true,
			Expected: "null",
		},
	}
	for _, tt := range tests {
		tree, err := BuildString(tt.Expr)
		if err != nil {
			t.Errorf("%s: fail to build tree: %s", tt.Expr, err)
			continue
		}
		var (
			str strings.Builder
			ws  = NewWriter(&str)
		)
		ws.Compact = tt.Compact
		if err := ws.Write(tree); err != nil {
			t.Errorf("%s: fail to write tree: %s", tt.Expr, err)
			continue
		}
		if got := str.String(); got != tt.Expected {
			t.Errorf("%s: json mismatched! want %q, got %q", tt.Expr, tt.Expected, got)
		}
	}
}

func TestWriterInvalidTree(t *testing.T) {
	tests := []struct {
		Name string
		Tree *Tree
		Err  error
	}{
		{
			Name: "missing-child",
			Tree: FromNode(NewBinary(Plus, NewValue(1), nil)),
			Err:  ErrOperands,
		},
		{
			Name: "nested-missing-child",
			Tree: FromNode(NewBinary(Times, NewValue(2), NewBinary(Minus, nil, NewValue(1)))),
			Err:  ErrOperands,
		},
		{
			Name: "unknown-op",
			Tree: FromNode(NewBinary(Plus, NewValue(1), NewBinary(Op(42), NewValue(1), NewValue(2)))),
			Err:  ErrOperator,
		},
	}
	for _, tt := range tests {
		var (
			str strings.Builder
			ws  = NewWriter(&str)
		)
		ws.Compact = true
		if err := ws.Write(tt.Tree); !errors.Is(err, tt.Err) {
			t.Errorf("%s: expected %s, got %v", tt.Name, tt.Err, err)
		}
		if str.Len() != 0 {
			t.Errorf("%s: nothing should be written, got %q", tt.Name, str.String())
		}
	}
}
