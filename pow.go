package decexpr

import (
	"math"
	"math/big"

	"github.com/shopspring/decimal"
	"github.com/zephyrtronium/bigfloat"
)

var (
	one    = decimal.NewFromInt(1)
	maxExp = decimal.NewFromInt32(math.MaxInt32)
	minExp = decimal.NewFromInt32(-math.MaxInt32)
)

// maxPowBits bounds the size of the coefficient an exponentiation may produce.
const maxPowBits = 1 << 22

// pow raises x to the power y. Integer exponents are computed exactly before
// truncating to the scale. Other exponents require a non-negative base and
// are computed in binary floating-point with enough precision to give scale
// correct digits in most cases.
func pow(x, y decimal.Decimal, scale int32) (decimal.Decimal, error) {
	if y.IsInteger() {
		return powint(x, y, scale)
	}
	return powfrac(x, y, scale)
}

func powint(x, y decimal.Decimal, scale int32) (decimal.Decimal, error) {
	if y.IsZero() {
		// Including 0^0.
		return one, nil
	}
	if y.GreaterThan(maxExp) || y.LessThan(minExp) {
		return decimal.Decimal{}, domainError("exponent out of range")
	}
	n := int32(y.IntPart())
	if x.IsZero() {
		if n < 0 {
			return decimal.Decimal{}, errZeroDivision
		}
		return decimal.Zero, nil
	}
	neg := n < 0
	if neg {
		n = -n
	}
	if x.Abs().Equal(one) {
		if n%2 == 1 {
			return x.Truncate(0), nil
		}
		return one, nil
	}
	if int64(n)*int64(coefBits(x)) > maxPowBits {
		return decimal.Decimal{}, domainError("result too large")
	}
	r, err := x.PowInt32(n)
	if err != nil {
		return decimal.Decimal{}, domainError(err.Error())
	}
	if neg {
		q, _ := one.QuoRem(r, scale)
		return q, nil
	}
	return r.Truncate(scale), nil
}

func powfrac(x, y decimal.Decimal, scale int32) (decimal.Decimal, error) {
	switch x.Sign() {
	case 0:
		if y.Sign() < 0 {
			return decimal.Decimal{}, errZeroDivision
		}
		return decimal.Zero, nil
	case -1:
		return decimal.Decimal{}, domainError("negative base with fractional exponent")
	}
	// Estimate the number of integer digits in the result so that the
	// working precision covers them as well as the fractional digits.
	mag := math.Abs(float64(len(x.Coefficient().Text(10))+int(x.Exponent()))) + 1
	digits := math.Abs(y.InexactFloat64())*mag + float64(scale) + 10
	if digits*math.Log2(10) > maxPowBits {
		return decimal.Decimal{}, domainError("result too large")
	}
	prec := uint(digits*math.Log2(10)) + 64
	bx, ok := new(big.Float).SetPrec(prec).SetString(x.String())
	if !ok {
		panic("decexpr: unparseable decimal " + x.String())
	}
	by, ok := new(big.Float).SetPrec(prec).SetString(y.String())
	if !ok {
		panic("decexpr: unparseable decimal " + y.String())
	}
	z := new(big.Float).SetPrec(prec)
	bigfloat.Pow(z, bx, by)
	if z.IsInf() {
		return decimal.Decimal{}, domainError("result too large")
	}
	// A finite float is an exact binary fraction. Converting through the
	// rational keeps every digit so the division truncates rather than rounds.
	q, _ := z.Rat(nil)
	num := decimal.NewFromBigInt(q.Num(), 0)
	den := decimal.NewFromBigInt(q.Denom(), 0)
	r, _ := num.QuoRem(den, scale)
	return r, nil
}

// coefBits returns the size of the coefficient of d in bits.
func coefBits(d decimal.Decimal) int {
	return d.Coefficient().BitLen()
}
