package notation

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestPostfixToInfix(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notation")
	defer teardown()
	//
	cases := []struct {
		postfix, infix string
	}{
		{"A", "A"},
		{"A B +", "A + B"},
		{"A B C + * D E / -", "A * (B + C) - D / E"},
		{"3 4 2 * 1 5 - 2 3 ^ ^ / +", "3 + 4 * 2 / (1 - 5) ^ 2 ^ 3"},
		{"A ~ B +", "-A + B"},
		{"A B + ~ C *", "-(A + B) * C"},
		{"A B ~ * C +", "A * -B + C"},
		{"A B - C -", "A - B - C"},
		{"A B C - -", "A - (B - C)"},
		{"A B C / /", "A / (B / C)"},
		{"A B C + +", "A + B + C"},
		{"A B C * *", "A * B * C"},
		{"A B ^ C ^", "(A ^ B) ^ C"},
		{"A B C ^ ^", "A ^ B ^ C"},
		{"A ~ ~", "--A"},
		{"A B ^ ~", "-(A ^ B)"},
		{"2 ~ 2 ^", "-2 ^ 2"},
		{"  A \t B   * ", "A * B"},
	}
	for _, c := range cases {
		got, err := PostfixToInfix(c.postfix)
		if err != nil {
			t.Errorf("converting %q: unexpected error %v", c.postfix, err)
			continue
		}
		if got != c.infix {
			t.Errorf("converting %q: want %q, got %q", c.postfix, c.infix, got)
		}
	}
}

func TestPostfixInsufficientOperands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notation")
	defer teardown()
	//
	cases := []struct {
		src   string
		op    string
		index int
		have  int
	}{
		{"+", "+", 1, 0},
		{"A +", "+", 2, 1},
		{"A B +  +", "+", 4, 1},
		{"~", "~", 1, 0},
		{"A B C + * -", "-", 6, 1},
	}
	for _, c := range cases {
		_, err := PostfixToInfix(c.src)
		var operr *InsufficientOperandsError
		if !errors.As(err, &operr) {
			t.Errorf("converting %q: expected insufficient operands, got %v", c.src, err)
			continue
		}
		if operr.Operator != c.op || operr.Pos() != c.index || operr.Have != c.have {
			t.Errorf("converting %q: want %s@%d with %d operands, got %s@%d with %d",
				c.src, c.op, c.index, c.have, operr.Operator, operr.Pos(), operr.Have)
		}
		t.Logf("error = %v", err)
	}
}

func TestPostfixInvalidExpression(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "notation")
	defer teardown()
	//
	cases := []struct {
		src       string
		remaining int
	}{
		{"", 0},
		{"   ", 0},
		{"A B", 2},
		{"A B C +", 2},
		{"A B + C D", 3},
	}
	for _, c := range cases {
		_, err := PostfixToInfix(c.src)
		var exprerr *InvalidExpressionError
		if !errors.As(err, &exprerr) {
			t.Errorf("converting %q: expected invalid expression, got %v", c.src, err)
			continue
		}
		if exprerr.Remaining != c.remaining {
			t.Errorf("converting %q: want %d remaining terms, got %d", c.src, c.remaining, exprerr.Remaining)
		}
	}
}
