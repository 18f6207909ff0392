package decexpr_test

import (
	"errors"
	"testing"

	"github.com/zephyrtronium/decexpr"
)

func TestReporterCalledOnce(t *testing.T) {
	type call struct {
		code decexpr.Code
		msg  string
	}
	var calls []call
	sentinel := errors.New("reported")
	rep := decexpr.ReporterFunc(func(code decexpr.Code, msg string) error {
		calls = append(calls, call{code, msg})
		return sentinel
	})
	p := decexpr.New(decexpr.ReportWith(rep))
	if _, err := p.Evaluate("2 + 2"); err != nil {
		t.Fatal(err)
	}
	if len(calls) != 0 {
		t.Errorf("success reported %v", calls)
	}
	_, err := p.Evaluate("2 & 3")
	if err != sentinel {
		t.Errorf("Evaluate returned %v instead of the reporter's error", err)
	}
	if len(calls) != 1 {
		t.Fatalf("want 1 report, got %v", calls)
	}
	if calls[0].code != decexpr.CodeInvalidCharacters || calls[0].msg != "invalid characters in expression: &" {
		t.Errorf("wrong report %+v", calls[0])
	}
	// The last error is recorded no matter what the reporter does.
	if last := p.LastError(); last == nil || last.Code != calls[0].code || last.Message != calls[0].msg {
		t.Errorf("last error %v doesn't match report %+v", last, calls[0])
	}
	if err := p.SetScale(-3); err != sentinel {
		t.Errorf("SetScale returned %v instead of the reporter's error", err)
	}
	if len(calls) != 2 || calls[1].code != decexpr.CodeInvalidScale {
		t.Errorf("wrong reports %+v", calls)
	}
}

func TestRaise(t *testing.T) {
	p := decexpr.New(decexpr.ReportWith(decexpr.Raise))
	r, err := p.Evaluate("6 / 4")
	if err != nil {
		t.Fatal(err)
	}
	if r.String() != "1.5" {
		t.Errorf("want 1.5, got %v", r)
	}
	defer func() {
		v := recover()
		e, ok := v.(*decexpr.Error)
		if !ok {
			t.Fatalf("want panic with *decexpr.Error, got %#v", v)
		}
		if e.Code != decexpr.CodeDivisionByZero {
			t.Errorf("want %q, got %q", decexpr.CodeDivisionByZero, e.Code)
		}
		if last := p.LastError(); last == nil || *last != *e {
			t.Errorf("last error %v doesn't match raised %v", last, e)
		}
	}()
	p.Evaluate("6 / 0")
	t.Error("Evaluate with Raise didn't panic")
}

func TestNilReporter(t *testing.T) {
	p := decexpr.New(decexpr.ReportWith(nil))
	_, err := p.Evaluate("(")
	var e *decexpr.Error
	if !errors.As(err, &e) || e.Code != decexpr.CodeMismatchedParentheses {
		t.Errorf("want returned *decexpr.Error, got %#v", err)
	}
}

func TestErrorString(t *testing.T) {
	e := &decexpr.Error{Code: decexpr.CodeDivisionByZero, Message: "4: division by zero"}
	if got, want := e.Error(), "division_by_zero: 4: division by zero"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
	if errors.Is(e, &decexpr.Error{Code: decexpr.CodeInvalidExpression}) {
		t.Error("errors.Is matched a different code")
	}
}
