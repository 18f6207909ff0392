package decexpr_test

import (
	"fmt"

	"github.com/zephyrtronium/decexpr"
)

func ExampleParser_Evaluate() {
	p := decexpr.New()
	for _, expr := range []string{"2 + 3 * (4 - 2)", "2 ^ 3 ^ 2", "10 / 3", "10 / 0"} {
		r, err := p.Evaluate(expr)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r)
	}

	// Output:
	// 8
	// 512
	// 3.3333
	// division_by_zero: 4: division by zero
}

func ExampleScale() {
	r, _ := decexpr.EvalString("10 / 3", decexpr.Scale(2))
	fmt.Println(r, r.IsInt())
	r, _ = decexpr.EvalString("10 / 3", decexpr.Scale(0))
	fmt.Println(r, r.IsInt())

	// Output:
	// 3.33 false
	// 3 true
}

func ExamplePostfix() {
	s, _ := decexpr.Postfix("2 + 3 * 4")
	fmt.Println(s)

	// Output:
	// 2 3 4 * +
}
