package decexpr

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Value is the result of an evaluation. A value with no fractional digits at
// the scale it was computed with is an integer; otherwise it is a decimal
// string with trailing zeros removed.
type Value struct {
	d    decimal.Decimal
	text string
	// i is the integer value, or nil if the value has fractional digits.
	i *big.Int
}

// format truncates d to scale fractional digits and removes trailing zeros.
func format(d decimal.Decimal, scale int32) Value {
	d = d.Truncate(scale)
	s := d.StringFixed(scale)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	v := Value{d: d, text: s}
	if strings.IndexByte(s, '.') < 0 {
		v.i, _ = new(big.Int).SetString(s, 10)
	}
	return v
}

// IsInt reports whether the value is an integer.
func (v Value) IsInt() bool {
	return v.i != nil
}

// Int returns the value as an integer. The result is nil if the value has
// fractional digits.
func (v Value) Int() *big.Int {
	if v.i == nil {
		return nil
	}
	return new(big.Int).Set(v.i)
}

// Decimal returns the value as a decimal.
func (v Value) Decimal() decimal.Decimal {
	return v.d
}

// String returns the formatted value, e.g. "8" or "3.3333".
func (v Value) String() string {
	if v.text == "" {
		return "0"
	}
	return v.text
}

// MarshalJSON encodes integers as JSON numbers and other values as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsInt() || v.text == "" {
		return []byte(v.String()), nil
	}
	return []byte(`"` + v.text + `"`), nil
}
