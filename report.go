package decexpr

// Error is the record of a failure as it is delivered to callers.
type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (err *Error) Error() string {
	return string(err.Code) + ": " + err.Message
}

// Is reports whether target is an *Error with the same code, so that
// errors.Is(err, &Error{Code: CodeDivisionByZero}) matches any division by
// zero.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == err.Code
}

// Reporter decides how failures reach the caller. A Parser calls Report
// exactly once per failure with the failure's code and message, and the
// operation that failed returns whatever error Report returns. A Reporter may
// instead panic to abort the caller.
type Reporter interface {
	Report(code Code, message string) error
}

// ReporterFunc adapts a function to a Reporter.
type ReporterFunc func(code Code, message string) error

// Report calls f.
func (f ReporterFunc) Report(code Code, message string) error {
	return f(code, message)
}

var (
	// Return reports failures by returning an *Error. It is the default.
	Return Reporter = ReporterFunc(returnError)
	// Raise reports failures by panicking with an *Error.
	Raise Reporter = ReporterFunc(raiseError)
)

func returnError(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

func raiseError(code Code, message string) error {
	panic(&Error{Code: code, Message: message})
}
