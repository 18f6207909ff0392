package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	json "github.com/goccy/go-json"

	"github.com/zephyrtronium/decexpr"
)

// printer writes evaluation results.
type printer struct {
	w    io.Writer
	enc  *json.Encoder
	echo bool
	code *color.Color
	msg  *color.Color
}

func newPrinter(w io.Writer, cfg config) *printer {
	pr := printer{
		w:    w,
		echo: cfg.Echo,
		code: color.New(color.FgRed, color.Bold),
		msg:  color.New(color.FgRed),
	}
	if cfg.JSON {
		pr.enc = json.NewEncoder(w)
	}
	return &pr
}

// record is the JSON form of one evaluation.
type record struct {
	Expr    string         `json:"expr"`
	Postfix string         `json:"postfix,omitempty"`
	Result  *decexpr.Value `json:"result,omitempty"`
	Error   *decexpr.Error `json:"error,omitempty"`
}

// eval evaluates expr with p and prints the outcome. It returns false if the
// evaluation failed.
func (pr *printer) eval(p *decexpr.Parser, expr string) bool {
	rec := record{Expr: strings.TrimSpace(expr)}
	if pr.echo {
		// Postfix fails exactly when Evaluate would fail to parse, and the
		// evaluation reports that.
		rec.Postfix, _ = decexpr.Postfix(expr)
	}
	r, err := p.Evaluate(expr)
	if err != nil {
		rec.Error = asRecord(err)
	} else {
		rec.Result = &r
	}
	if pr.enc != nil {
		if err := pr.enc.Encode(rec); err != nil {
			// Writing to stdout failed; nothing more to say.
			return false
		}
		return rec.Error == nil
	}
	if rec.Postfix != "" {
		fmt.Fprintf(pr.w, "%s : ", rec.Postfix)
	}
	if rec.Error != nil {
		fmt.Fprintln(pr.w, pr.code.Sprint(rec.Error.Code)+" "+pr.msg.Sprint(rec.Error.Message))
		return false
	}
	fmt.Fprintln(pr.w, r)
	return true
}

// asRecord extracts the failure record from an evaluation error.
func asRecord(err error) *decexpr.Error {
	var e *decexpr.Error
	if errors.As(err, &e) {
		return e
	}
	return &decexpr.Error{Code: decexpr.CodeEvaluationError, Message: err.Error()}
}
