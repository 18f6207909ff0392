package decexpr

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Code is a stable, machine-checkable name for a kind of failure.
type Code string

const (
	CodeEmptyExpression       Code = "empty_expression"
	CodeInvalidCharacters     Code = "invalid_characters"
	CodeMismatchedParentheses Code = "mismatched_parentheses"
	CodeUnknownOperator       Code = "unknown_operator"
	CodeInsufficientOperands  Code = "insufficient_operands"
	CodeDivisionByZero        Code = "division_by_zero"
	CodeInvalidExpression     Code = "invalid_expression"
	CodeInvalidScale          Code = "invalid_scale"
	// CodeEvaluationError covers failures that have no more specific code,
	// including malformed numbers and powers outside their domain.
	CodeEvaluationError Code = "evaluation_error"
)

// CodedError is an error which knows its failure code. Every error produced
// while validating, converting, or evaluating an expression implements it.
type CodedError interface {
	error
	Code() Code
}

// InputError is an error with position information.
type InputError interface {
	CodedError
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

// EmptyExpressionError indicates an input with nothing but whitespace.
type EmptyExpressionError struct{}

func (err *EmptyExpressionError) Error() string {
	return "empty expression"
}

func (err *EmptyExpressionError) Code() Code {
	return CodeEmptyExpression
}

// CharacterError indicates characters which cannot appear in an expression.
type CharacterError struct {
	// Chars is every disallowed character in the input, in order.
	Chars string
}

func (err *CharacterError) Error() string {
	return "invalid characters in expression: " + err.Chars
}

func (err *CharacterError) Code() Code {
	return CodeInvalidCharacters
}

// BracketError indicates unbalanced parentheses. It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the unmatched open parenthesis, if any.
	Left string
	// Right is the unmatched close parenthesis, if any.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close parenthesis "+err.Right+" with no open parenthesis")
	}
	return errpos(err.Col, "open parenthesis "+err.Left+" with no close parenthesis")
}

func (err *BracketError) Code() Code {
	return CodeMismatchedParentheses
}

func (err *BracketError) Pos() int {
	return err.Col
}

// OperatorError indicates an operator token that is not understood by the
// evaluator. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
}

func (err *OperatorError) Error() string {
	return errpos(err.Col, "unknown operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Code() Code {
	return CodeUnknownOperator
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// OperandError indicates an operator applied to too few values. It implements
// InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that was applied.
	Operator string
	// Have is the number of values that were available.
	Have int
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "insufficient operands for "+strconv.Quote(err.Operator)+
		": need 2, have "+strconv.Itoa(err.Have))
}

func (err *OperandError) Code() Code {
	return CodeInsufficientOperands
}

func (err *OperandError) Pos() int {
	return err.Col
}

// DivisionError indicates a division or negative power of zero. It implements
// InputError.
type DivisionError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that divided.
	Operator string
}

func (err *DivisionError) Error() string {
	if err.Operator == "^" {
		return errpos(err.Col, "division by zero: negative power of zero")
	}
	return errpos(err.Col, "division by zero")
}

func (err *DivisionError) Code() Code {
	return CodeDivisionByZero
}

func (err *DivisionError) Pos() int {
	return err.Col
}

// ExpressionError indicates that an evaluation did not end with exactly one
// value.
type ExpressionError struct {
	// Values is the number of values left when the input ran out.
	Values int
}

func (err *ExpressionError) Error() string {
	if err.Values == 0 {
		return "invalid expression: no value"
	}
	return "invalid expression: too many operands (" + strconv.Itoa(err.Values) + " values left)"
}

func (err *ExpressionError) Code() Code {
	return CodeInvalidExpression
}

// NumberError indicates a run of digits and points that is not a number, e.g.
// "1.2.3". It implements InputError.
type NumberError struct {
	// Col is the position of the number.
	Col int
	// Text is the malformed number.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Code() Code {
	return CodeEvaluationError
}

func (err *NumberError) Pos() int {
	return err.Col
}

// DomainError indicates an operation outside the domain of its operator, e.g.
// a negative number raised to a fractional power. It implements InputError.
type DomainError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the operator that failed.
	Operator string
	// X and Y are the left and right operands.
	X, Y decimal.Decimal
	// Reason describes the failure.
	Reason string
}

func (err *DomainError) Error() string {
	return errpos(err.Col, binexpr(err.X, err.Operator, err.Y)+": "+err.Reason)
}

func (err *DomainError) Code() Code {
	return CodeEvaluationError
}

func (err *DomainError) Pos() int {
	return err.Col
}

// binexpr formats a binary operation for error messages.
func binexpr(x decimal.Decimal, op string, y decimal.Decimal) string {
	return x.String() + " " + op + " " + y.String()
}

// ScaleError indicates a negative scale or one greater than MaxScale.
type ScaleError struct {
	Scale int
}

func (err *ScaleError) Error() string {
	if err.Scale >= 0 {
		return "invalid scale " + strconv.Itoa(err.Scale) + ": more than " + strconv.Itoa(MaxScale)
	}
	return "invalid scale " + strconv.Itoa(err.Scale) + ": must not be negative"
}

func (err *ScaleError) Code() Code {
	return CodeInvalidScale
}

// PanicError wraps an unexpected panic recovered during evaluation.
type PanicError struct {
	Value interface{}
}

func (err *PanicError) Error() string {
	if e, ok := err.Value.(error); ok {
		return "evaluation failed: " + e.Error()
	}
	if s, ok := err.Value.(string); ok {
		return "evaluation failed: " + s
	}
	return "evaluation failed"
}

func (err *PanicError) Code() Code {
	return CodeEvaluationError
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

var (
	_ CodedError = (*EmptyExpressionError)(nil)
	_ CodedError = (*CharacterError)(nil)
	_ CodedError = (*ExpressionError)(nil)
	_ CodedError = (*ScaleError)(nil)
	_ CodedError = (*PanicError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*DivisionError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*DomainError)(nil)
)
