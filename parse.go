package decexpr

import "strings"

// postfix converts a token sequence in infix order to postfix order using the
// shunting-yard algorithm. Parentheses do not appear in the result.
func postfix(toks []lexToken) ([]lexToken, error) {
	out := make([]lexToken, 0, len(toks))
	var stack []lexToken
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			out = append(out, tok)
		case tokenOp:
			op, ok := operators[tok.text]
			if !ok {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
			}
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind != tokenOp || !op.pops(operators[top.text]) {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		case tokenOpen:
			stack = append(stack, tok)
		case tokenClose:
			for {
				if len(stack) == 0 {
					return nil, &BracketError{Col: tok.pos, Right: tok.text}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == tokenOpen {
					break
				}
				out = append(out, top)
			}
		default:
			panic("decexpr: unknown token: " + tok.String())
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch top.kind {
		case tokenOpen:
			return nil, &BracketError{Col: top.pos, Left: top.text}
		case tokenClose:
			return nil, &BracketError{Col: top.pos, Right: top.text}
		}
		out = append(out, top)
	}
	return out, nil
}

// parse validates, tokenizes, and converts an expression to postfix order.
func parse(expr string) ([]lexToken, error) {
	if err := validate(expr); err != nil {
		return nil, err
	}
	return postfix(tokenize(expr))
}

// Postfix returns the postfix form of an expression with tokens separated by
// spaces, e.g. "2 3 4 * +" for "2 + 3 * 4". Failures are reported the same way
// as by Evaluate with the Return reporter.
func Postfix(expr string) (string, error) {
	toks, err := parse(expr)
	if err != nil {
		return "", coded(err)
	}
	s := make([]string, len(toks))
	for i, tok := range toks {
		s[i] = tok.text
	}
	return strings.Join(s, " "), nil
}
