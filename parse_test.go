package decexpr

import (
	"reflect"
	"strings"
	"testing"
)

// rpn joins the text of tokens with spaces.
func rpn(toks []lexToken) string {
	s := make([]string, len(toks))
	for i, tok := range toks {
		s[i] = tok.text
	}
	return strings.Join(s, " ")
}

func TestPostfix(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"num", "1", "1"},
		{"add", "1+2", "1 2 +"},
		{"prec", "2+3*4", "2 3 4 * +"},
		{"prec-rev", "2*3+4", "2 3 * 4 +"},
		{"paren", "(2+3)*4", "2 3 + 4 *"},
		{"pow-right", "2^3^2", "2 3 2 ^ ^"},
		{"sub-left", "8-3-2", "8 3 - 2 -"},
		{"div-left", "8/4/2", "8 4 / 2 /"},
		{"mixed-left", "1-2+3", "1 2 - 3 +"},
		{"mul-pow", "2*3^2", "2 3 2 ^ *"},
		{"pow-mul", "2^3*2", "2 3 ^ 2 *"},
		{"nested", "2 + 3 * (4 - 2)", "2 3 4 2 - * +"},
		{"redundant", "((1))", "1"},
		{"empty-parens", "()", ""},
		{"leading-minus", "-5+3", "5 - 3 +"},
		{"double-minus", "5--3", "5 - 3 -"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := postfix(tokenize(c.src))
			if err != nil {
				t.Fatalf("converting %q: %v", c.src, err)
			}
			if got := rpn(toks); got != c.want {
				t.Errorf("converting %q: want %q, got %q", c.src, c.want, got)
			}
		})
	}
}

func TestPostfixErrors(t *testing.T) {
	cases := []struct {
		name string
		toks []lexToken
		err  error
	}{
		{
			"close",
			[]lexToken{{text: ")", kind: tokenClose, pos: 1}},
			&BracketError{Col: 1, Right: ")"},
		},
		{
			"close-after-num",
			[]lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: ")", kind: tokenClose, pos: 2}},
			&BracketError{Col: 2, Right: ")"},
		},
		{
			"open",
			[]lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "1", kind: tokenNum, pos: 2}},
			&BracketError{Col: 1, Left: "("},
		},
		{
			"operator",
			[]lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "%", kind: tokenOp, pos: 2}},
			&OperatorError{Col: 2, Operator: "%"},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := postfix(c.toks)
			if toks != nil {
				t.Errorf("got tokens %v with error", toks)
			}
			if !reflect.DeepEqual(err, c.err) {
				t.Errorf("want %#v, got %#v", c.err, err)
			}
		})
	}
}

func TestParseValidates(t *testing.T) {
	// The converter never sees input that fails validation.
	for _, src := range []string{"", "2 & 3", "(1", "1)"} {
		toks, err := parse(src)
		if err == nil {
			t.Errorf("parsing %q gave no error; tokens %v", src, toks)
		}
		if !reflect.DeepEqual(err, validate(src)) {
			t.Errorf("parsing %q: want validation error %v, got %v", src, validate(src), err)
		}
	}
}
