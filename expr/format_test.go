package expr

import (
	"errors"
	"testing"
)

func TestOrders(t *testing.T) {
	tests := []struct {
		Expr    string
		Prefix  string
		Infix   string
		Postfix string
	}{
		{
			Expr:    "3+4*2",
			Prefix:  "+ 3 * 4 2",
			Infix:   "3 + 4 * 2",
			Postfix: "3 4 2 * +",
		},
		{
			Expr:    "(3+4)*2",
			Prefix:  "* + 3 4 2",
			Infix:   "3 + 4 * 2",
			Postfix: "3 4 + 2 *",
		},
		{
			Expr:    "17",
			Prefix:  "17",
			Infix:   "17",
			Postfix: "17",
		},
		{
			Expr:    "8-3-2",
			Prefix:  "- - 8 3 2",
			Infix:   "8 - 3 - 2",
			Postfix: "8 3 - 2 -",
		},
	}
	for _, tt := range tests {
		tree, err := BuildString(tt.Expr)
		if err != nil {
			t.Errorf("%s: fail to build tree: %s", tt.Expr, err)
			continue
		}
		if got, _ := PrefixOrder(tree); got != tt.Prefix {
			t.Errorf("%s: prefix mismatched! want %q, got %q", tt.Expr, tt.Prefix, got)
		}
		if got, _ := InfixOrder(tree); got != tt.Infix {
			t.Errorf("%s: infix mismatched! want %q, got %q", tt.Expr, tt.Infix, got)
		}
		if got, _ := PostfixOrder(tree); got != tt.Postfix {
			t.Errorf("%s: postfix mismatched! want %q, got %q", tt.Expr, tt.Postfix, got)
		}
	}
}

func TestOrdersEmpty(t *testing.T) {
	tree := New()
	for name, fn := range map[string]func() (string, error){
		"prefix":  tree.Prefix,
		"infix":   tree.Infix,
		"postfix": tree.Postfix,
		"expr":    tree.Expr,
	} {
		if _, err := fn(); !errors.Is(err, ErrEmpty) {
			t.Errorf("%s: expected %s, got %v", name, ErrEmpty, err)
		}
	}
}

func TestInfixRoundTrip(t *testing.T) {
	tests := []string{
		"3+4*2",
		"1*2+3*4",
		"8-3*2",
		"6/3+2",
	}
	for _, str := range tests {
		tree, err := BuildString(str)
		if err != nil {
			t.Errorf("%s: fail to build tree: %s", str, err)
			continue
		}
		infix, _ := tree.Infix()
		other, err := BuildString(infix)
		if err != nil {
			t.Errorf("%s: fail to rebuild tree from %q: %s", str, infix, err)
			continue
		}
		want, _ := tree.Eval()
		got, _ := other.Eval()
		if want != got {
			t.Errorf("%s: result mismatched after round trip! want %d, got %d", str, want, got)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		Expr     string
		Expected string
	}{
		{Expr: "3+4*2", Expected: "3 + 4 * 2"},
		{Expr: "(3+4)*2", Expected: "(3 + 4) * 2"},
		{Expr: "8-(3-2)", Expected: "8 - (3 - 2)"},
		{Expr: "(8-3)-2", Expected: "8 - 3 - 2"},
		{Expr: "2*(3*4)", Expected: "2 * (3 * 4)"},
		{Expr: "100/(10/5)", Expected: "100 / (10 / 5)"},
		{Expr: "((7))", Expected: "7"},
		{Expr: "(1+2)*(3-4)/5", Expected: "(1 + 2) * (3 - 4) / 5"},
	}
	for _, tt := range tests {
		tree, err := BuildString(tt.Expr)
		if err != nil {
			t.Errorf("%s: fail to build tree: %s", tt.Expr, err)
			continue
		}
		got, err := tree.Expr()
		if err != nil {
			t.Errorf("%s: fail to format tree: %s", tt.Expr, err)
			continue
		}
		if got != tt.Expected {
			t.Errorf("%s: expr mismatched! want %q, got %q", tt.Expr, tt.Expected, got)
			continue
		}
		other, err := BuildString(got)
		if err != nil {
			t.Errorf("%s: fail to rebuild tree: %s", tt.Expr, err)
			continue
		}
		if Debug(other.Root()) != Debug(tree.Root()) {
			t.Errorf("%s: tree changed after round trip: %s", tt.Expr, Debug(other.Root()))
		}
	}
}
