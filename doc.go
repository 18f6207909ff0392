// Package decexpr implements a fixed-scale decimal calculator.
//
// Expressions are written in ordinary infix notation using numbers, the
// binary operators + - * / ^, and parentheses. "2 ^ 3 ^ 2" is "2 ^ (3 ^ 2)";
// every other operator groups from the left. Evaluation converts the
// expression to postfix order with the shunting-yard algorithm and runs it on
// a stack of base-10 decimals, so "0.1 + 0.2" is exactly 0.3.
//
// Every operation keeps a fixed number of fractional digits, the scale of the
// Parser, truncating the rest. Results whose fractional part is zero at that
// scale are integers.
//
// There is no unary minus. "-1 + 2" is rejected because the subtraction has
// no left operand.
//
package decexpr
