package decexpr

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DefaultScale is the scale of a Parser created without the Scale option.
const DefaultScale = 4

// Parser evaluates expressions at a fixed scale. It is not safe to use a
// Parser concurrently.
type Parser struct {
	scale  int32
	report Reporter
	last   *Error
}

// Option is an option used when creating a parser.
type Option interface {
	parserOption(*Parser)
}

type (
	scaleopt  uint
	reportopt struct{ r Reporter }
)

func (o scaleopt) parserOption(p *Parser) {
	p.scale = int32(o)
}

func (o reportopt) parserOption(p *Parser) {
	p.report = o.r
}

// Scale sets the number of fractional digits kept by every operation.
// It panics if scale exceeds MaxScale.
func Scale(scale uint) Option {
	if scale > MaxScale {
		panic("decexpr: scale too large")
	}
	return scaleopt(scale)
}

// ReportWith sets the reporter through which the parser delivers failures.
// A nil reporter selects Return.
func ReportWith(r Reporter) Option {
	return reportopt{r}
}

// MaxScale is the largest scale a parser accepts. Every result is formatted
// with up to this many fractional digits, so the limit also bounds the size
// of each result string.
const MaxScale = 1 << 16

// New creates a parser. The options are applied in order. Without options,
// the scale is DefaultScale and failures are returned as *Error values.
func New(opts ...Option) *Parser {
	p := Parser{scale: DefaultScale, report: Return}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.parserOption(&p)
	}
	if p.report == nil {
		p.report = Return
	}
	return &p
}

// Scale returns the number of fractional digits kept by every operation.
func (p *Parser) Scale() int {
	return int(p.scale)
}

// SetScale sets the number of fractional digits kept by every operation. If
// scale is negative or greater than MaxScale, the scale is unchanged and the
// failure is reported with CodeInvalidScale.
func (p *Parser) SetScale(scale int) error {
	if scale < 0 || scale > MaxScale {
		return p.fail(&ScaleError{Scale: scale})
	}
	p.scale = int32(scale)
	return nil
}

// LastError returns the most recent failure reported by the parser, or nil if
// there has not been one. Successful calls do not clear it.
func (p *Parser) LastError() *Error {
	return p.last
}

// Evaluate evaluates an expression and returns its value at the parser's
// scale. If the expression is invalid or cannot be evaluated, the failure is
// passed to the parser's reporter and Evaluate returns the reporter's error.
func (p *Parser) Evaluate(expr string) (Value, error) {
	d, err := p.eval(expr)
	if err != nil {
		return Value{}, p.fail(err)
	}
	return format(d, p.scale), nil
}

// eval runs the full pipeline. Unexpected panics become errors so that they
// are reported like any other failure.
func (p *Parser) eval(expr string) (d decimal.Decimal, err error) {
	defer func() {
		if r := recover(); r != nil {
			d, err = decimal.Decimal{}, &PanicError{Value: r}
		}
	}()
	toks, err := parse(expr)
	if err != nil {
		return decimal.Decimal{}, err
	}
	m := machine{scale: p.scale, stack: make([]decimal.Decimal, 0, len(toks)/2+1)}
	return m.run(toks)
}

// fail records err as the last error and passes it to the reporter.
func (p *Parser) fail(err error) error {
	rec := record(err)
	p.last = rec
	return p.report.Report(rec.Code, rec.Message)
}

// record converts an error from any stage into the record handed to callers.
func record(err error) *Error {
	var e CodedError
	if errors.As(err, &e) {
		return &Error{Code: e.Code(), Message: e.Error()}
	}
	return &Error{Code: CodeEvaluationError, Message: err.Error()}
}

// coded converts an error from any stage into the error Return would give.
func coded(err error) error {
	rec := record(err)
	return Return.Report(rec.Code, rec.Message)
}

// machine evaluates postfix token sequences.
type machine struct {
	stack []decimal.Decimal
	scale int32
}

// push pushes a value onto the stack.
func (m *machine) push(d decimal.Decimal) {
	m.stack = append(m.stack, d)
}

// pop removes the top from the stack and returns it.
func (m *machine) pop() decimal.Decimal {
	r := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return r
}

// run evaluates a postfix token sequence and returns its single result.
func (m *machine) run(toks []lexToken) (decimal.Decimal, error) {
	for _, tok := range toks {
		switch tok.kind {
		case tokenNum:
			d, err := decimal.NewFromString(tok.text)
			if err != nil {
				return decimal.Decimal{}, &NumberError{Col: tok.pos, Text: tok.text}
			}
			m.push(d)
		case tokenOp:
			op, ok := operators[tok.text]
			if !ok {
				return decimal.Decimal{}, &OperatorError{Col: tok.pos, Operator: tok.text}
			}
			if len(m.stack) < 2 {
				return decimal.Decimal{}, &OperandError{Col: tok.pos, Operator: tok.text, Have: len(m.stack)}
			}
			// The value pushed last is the right operand.
			y := m.pop()
			x := m.pop()
			r, err := op.apply(x, y, m.scale)
			if err != nil {
				var de domainError
				switch {
				case errors.Is(err, errZeroDivision):
					return decimal.Decimal{}, &DivisionError{Col: tok.pos, Operator: tok.text}
				case errors.As(err, &de):
					return decimal.Decimal{}, &DomainError{Col: tok.pos, Operator: tok.text, X: x, Y: y, Reason: string(de)}
				default:
					return decimal.Decimal{}, err
				}
			}
			m.push(r)
		default:
			panic("decexpr: token in postfix sequence: " + tok.String())
		}
	}
	if len(m.stack) != 1 {
		return decimal.Decimal{}, &ExpressionError{Values: len(m.stack)}
	}
	return m.stack[0], nil
}

// EvalString is a shortcut to evaluate an expression with a new parser.
func EvalString(expr string, opts ...Option) (Value, error) {
	return New(opts...).Evaluate(expr)
}
