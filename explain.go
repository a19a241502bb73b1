package stepcalc

import (
	"io"
	"strconv"
	"strings"
)

// Explanation is a printable account of how an expression was computed.
type Explanation struct {
	// Source is the expression as entered.
	Source string
	// Steps are the evaluation steps.
	Steps []string
	// Value is the result. It is meaningless if Err is not nil.
	Value Number
	// Err is the parse or evaluation error, if any.
	Err error
}

// Explain parses and evaluates src and collects the result into an
// Explanation. Errors are recorded in the explanation rather than returned.
func Explain(src string) *Explanation {
	r, err := EvalString(src)
	return &Explanation{
		Source: src,
		Steps:  r.Steps,
		Value:  r.Value,
		Err:    err,
	}
}

// String renders the explanation as it is written by WriteTo.
func (e *Explanation) String() string {
	var b strings.Builder
	b.WriteString("How we solve your expression\n")
	b.WriteString("Expression: " + e.Source + "\n")
	switch {
	case e.Err != nil:
		b.WriteString("  Could not compute this expression\n")
		return b.String()
	case len(e.Steps) == 0:
		b.WriteString("  No steps to show\n")
	default:
		for i, s := range e.Steps {
			b.WriteString("  " + strconv.Itoa(i+1) + ". " + s + "\n")
		}
	}
	b.WriteString("Result: " + e.Value.String() + "\n")
	return b.String()
}

// WriteTo writes the explanation to w: a title, the expression, the numbered
// steps, and the result. If the expression has no operators, a placeholder
// takes the place of the steps. If computing the expression failed, the steps
// are replaced by a notice and there is no result line.
func (e *Explanation) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, e.String())
	return int64(n), err
}
