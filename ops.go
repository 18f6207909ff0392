package decexpr

import (
	"errors"

	"github.com/shopspring/decimal"
)

// operator describes a binary operator.
type operator struct {
	// prec is the operator's precedence. Higher binds more tightly.
	prec int
	// right is whether the operator groups from the right.
	right bool
	// apply computes x op y, keeping scale fractional digits. It returns
	// errZeroDivision when y is a zero divisor and a domainError when the
	// operation is otherwise undefined.
	apply func(x, y decimal.Decimal, scale int32) (decimal.Decimal, error)
}

// pops reports whether top must be moved to the output before pushing op.
func (op operator) pops(top operator) bool {
	if op.right {
		return op.prec < top.prec
	}
	return op.prec <= top.prec
}

// operators is the operator table. It is never modified.
var operators = map[string]operator{
	"+": {prec: 1, apply: add},
	"-": {prec: 1, apply: sub},
	"*": {prec: 2, apply: mul},
	"/": {prec: 2, apply: quo},
	"^": {prec: 3, right: true, apply: pow},
}

// errZeroDivision is returned by operators that would divide by zero.
var errZeroDivision = errors.New("division by zero")

// domainError is returned by operators whose operands are outside their
// domain.
type domainError string

func (err domainError) Error() string {
	return string(err)
}

func add(x, y decimal.Decimal, scale int32) (decimal.Decimal, error) {
	return x.Add(y).Truncate(scale), nil
}

func sub(x, y decimal.Decimal, scale int32) (decimal.Decimal, error) {
	return x.Sub(y).Truncate(scale), nil
}

func mul(x, y decimal.Decimal, scale int32) (decimal.Decimal, error) {
	return x.Mul(y).Truncate(scale), nil
}

func quo(x, y decimal.Decimal, scale int32) (decimal.Decimal, error) {
	if y.IsZero() {
		return decimal.Decimal{}, errZeroDivision
	}
	// QuoRem truncates the quotient toward zero at the given precision.
	q, _ := x.QuoRem(y, scale)
	return q, nil
}
