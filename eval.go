package stepcalc

import (
	"io"
	"strings"
)

// Result is the outcome of evaluating an expression.
type Result struct {
	// Value is the value of the expression.
	Value Number
	// Steps has one line for each operator applied, in the order the
	// operators were applied. It is empty for a bare number.
	Steps []string
}

// Evaluate computes the value of a syntax tree and records each operation.
// Operands are evaluated left to right before their operator is applied, so
// the steps are in post-order. Evaluation does not modify the tree, and it
// holds no state between calls, so it is safe to evaluate the same tree
// concurrently.
//
// If an operation fails, e.g. a division by zero, the result is the zero
// Result and the error is an *ArithmeticError. Trees containing nil nodes or
// misplaced operator kinds give a *NodeError. Both unwrap to ErrEvaluation.
func Evaluate(n Node) (Result, error) {
	ev := evaluator{steps: make([]string, 0, countOps(n))}
	v, err := ev.eval(n)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v, Steps: ev.steps}, nil
}

// evaluator holds the steps recorded during a single evaluation.
type evaluator struct {
	steps []string
}

// eval computes the value of a node, appending the steps for its operators.
func (ev *evaluator) eval(n Node) (Number, error) {
	switch n := n.(type) {
	case *Literal:
		if n == nil {
			return Number{}, &NodeError{}
		}
		return n.Value, nil
	case *Unary:
		if n == nil {
			return Number{}, &NodeError{}
		}
		spec, ok := LookupOperator(n.Op)
		if !ok || spec.Unary == nil || n.X == nil {
			return Number{}, &NodeError{Node: n, Op: n.Op}
		}
		x, err := ev.eval(n.X)
		if err != nil {
			return Number{}, err
		}
		r, err := spec.Unary(x)
		if err != nil {
			return Number{}, &ArithmeticError{Op: n.Op, X: x, Err: err}
		}
		ev.step(spec.Symbol+x.String(), r)
		return r, nil
	case *Binary:
		if n == nil {
			return Number{}, &NodeError{}
		}
		spec, ok := LookupOperator(n.Op)
		if !ok || spec.Binary == nil || n.Left == nil || n.Right == nil {
			return Number{}, &NodeError{Node: n, Op: n.Op}
		}
		x, err := ev.eval(n.Left)
		if err != nil {
			return Number{}, err
		}
		y, err := ev.eval(n.Right)
		if err != nil {
			return Number{}, err
		}
		r, err := spec.Binary(x, y)
		if err != nil {
			return Number{}, &ArithmeticError{Op: n.Op, X: x, Y: y, Err: err}
		}
		ev.step(x.String()+" "+spec.Symbol+" "+y.String(), r)
		return r, nil
	default:
		return Number{}, &NodeError{Node: n}
	}
}

// step records an operation and its result.
func (ev *evaluator) step(op string, r Number) {
	ev.steps = append(ev.steps, op+" = "+r.String())
}

// Eval evaluates the expression.
func (e *Expr) Eval() (Result, error) {
	return Evaluate(e.n)
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner) (Result, error) {
	a, err := Parse(src)
	if err != nil {
		return Result{}, err
	}
	return a.Eval()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string) (Result, error) {
	return Eval(strings.NewReader(src))
}
