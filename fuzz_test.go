package decexpr_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/decexpr"
)

func FuzzEvaluate(f *testing.F) {
	f.Add("2 + 3 * (4 - 2)")
	f.Add("2 ^ 3 ^ 2")
	f.Add("10 / 0")
	f.Add("-5 + 3")
	f.Add("1.2.3")
	f.Fuzz(func(t *testing.T, s string) {
		_, err := decexpr.New().Evaluate(s)
		if err == nil {
			return
		}
		var e *decexpr.Error
		if !errors.As(err, &e) || e.Code == "" {
			t.Errorf("%q gave uncoded error %#v", s, err)
		}
	})
}

func FuzzPostfix(f *testing.F) {
	f.Add("1+2")
	f.Add("((1)")
	f.Add("2 & 3")
	f.Fuzz(func(t *testing.T, s string) {
		decexpr.Postfix(s)
	})
}
