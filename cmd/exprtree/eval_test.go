package main

import (
	"testing"

	"github.com/midbel/exprtree/expr"
)

func TestRender(t *testing.T) {
	tree, err := expr.BuildString("(1 + 2) * 3")
	if err != nil {
		t.Fatalf("fail to build tree: %s", err)
	}
	tests := map[string]string{
		orderPrefix:  "* + 1 2 3",
		orderInfix:   "1 + 2 * 3",
		orderPostfix: "1 2 + 3 *",
		orderExpr:    "(1 + 2) * 3",
		"":           "1 + 2 * 3",
	}
	for order, want := range tests {
		got, err := render(tree, order)
		if err != nil {
			t.Errorf("%s: fail to render tree: %s", order, err)
			continue
		}
		if got != want {
			t.Errorf("%s: output mismatched! want %q, got %q", order, want, got)
		}
	}
	if _, err := render(tree, "lisp"); err == nil {
		t.Errorf("unknown notation should be rejected")
	}
}

func TestEvaluate(t *testing.T) {
	res, err := evaluate("8 - 3 - 2")
	if err != nil {
		t.Fatalf("fail to evaluate expression: %s", err)
	}
	if res != 3 {
		t.Errorf("result mismatched! want 3, got %d", res)
	}
	if _, err := evaluate("1 / 0"); err == nil {
		t.Errorf("division by zero should fail")
	}
}
