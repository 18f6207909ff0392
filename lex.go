package decexpr

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/coregex"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is a run of digits and decimal points.
	tokenNum
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open parenthesis.
	tokenOpen
	// tokenClose is a close parenthesis.
	tokenClose
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

var (
	// allowed matches any single character that may appear in an expression.
	// Its whitespace is exactly what unicode.IsSpace reports.
	allowed = mustCompile(`[0-9.\t\n\v\f\r\x{85}\p{Z}+*/^()-]`)
	// tokens matches single tokens in an expression with no whitespace.
	tokens = mustCompile(`[0-9.]+|[-+*/^()]`)
)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic("decexpr: bad pattern " + strconv.Quote(pattern) + ": " + err.Error())
	}
	return re
}

// validate rejects expressions that are empty, contain characters other than
// numbers, operators, parentheses, and whitespace, or have unbalanced
// parentheses.
func validate(expr string) error {
	if strings.TrimSpace(expr) == "" {
		return &EmptyExpressionError{}
	}
	if bad := allowed.ReplaceAllString(expr, ""); bad != "" {
		return &CharacterError{Chars: bad}
	}
	// The balance check looks only at raw characters, not tokens. open holds
	// the columns of unclosed parens; its length is the depth.
	var open []int
	col := 0
	for _, r := range expr {
		col++
		switch r {
		case '(':
			open = append(open, col)
		case ')':
			if len(open) == 0 {
				return &BracketError{Col: col, Right: ")"}
			}
			open = open[:len(open)-1]
		}
	}
	if len(open) != 0 {
		return &BracketError{Col: open[len(open)-1], Left: "("}
	}
	return nil
}

// tokenize splits an expression into numbers, operators, and parentheses.
// All whitespace is removed first, so "1 2" is the single number 12. Token
// positions refer to the original expression.
func tokenize(expr string) []lexToken {
	var b strings.Builder
	b.Grow(len(expr))
	// cols maps each byte of the stripped expression to its rune column in
	// the original.
	cols := make([]int, 0, len(expr))
	col := 0
	for _, r := range expr {
		col++
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(r)
		for n := utf8.RuneLen(r); n > 0; n-- {
			cols = append(cols, col)
		}
	}
	s := b.String()
	idx := tokens.FindAllStringIndex(s, -1)
	r := make([]lexToken, 0, len(idx))
	for _, m := range idx {
		tok := lexToken{text: s[m[0]:m[1]], pos: cols[m[0]]}
		switch c := tok.text[0]; {
		case c == '(':
			tok.kind = tokenOpen
		case c == ')':
			tok.kind = tokenClose
		case '0' <= c && c <= '9', c == '.':
			tok.kind = tokenNum
		default:
			tok.kind = tokenOp
		}
		r = append(r, tok)
	}
	return r
}
