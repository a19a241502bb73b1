package stepcalc

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is the error that every parse error unwraps to.
	ErrSyntax = errors.New("syntax error")
	// ErrEvaluation is the error that every evaluation error unwraps to.
	ErrEvaluation = errors.New("evaluation error")
)

// evalErr is an evaluation error kind. Each unwraps to ErrEvaluation.
type evalErr string

func (err evalErr) Error() string {
	return string(err)
}

func (err evalErr) Unwrap() error {
	return ErrEvaluation
}

var (
	// ErrDivisionByZero is the cause of an ArithmeticError for division or
	// modulo by zero, or for raising zero to a negative power.
	ErrDivisionByZero error = evalErr("division by zero")
	// ErrOverflow is the cause of an ArithmeticError for an integer result
	// out of range or a real power too large to represent.
	ErrOverflow error = evalErr("result out of range")
	// ErrDomain is the cause of a DomainError.
	ErrDomain error = evalErr("argument outside domain")
)

// ArithmeticError is an error from applying an operator during evaluation.
// It unwraps to its cause, which is ErrDivisionByZero, ErrOverflow, or a
// *DomainError.
type ArithmeticError struct {
	// Op is the operator that failed.
	Op OperatorKind
	// X and Y are the operands. Y is unused for unary operators.
	X, Y Number
	// Err is the cause.
	Err error
}

func (err *ArithmeticError) Error() string {
	if err.Op.IsUnary() {
		return fmt.Sprintf("%s%v: %v", err.Op.Symbol(), err.X, err.Err)
	}
	return fmt.Sprintf("%v %s %v: %v", err.X, err.Op.Symbol(), err.Y, err.Err)
}

func (err *ArithmeticError) Unwrap() error {
	return err.Err
}

// DomainError is an error returned when an operator is applied to an operand
// outside its domain, e.g. a fractional power of a negative number. It unwraps
// to ErrDomain.
type DomainError struct {
	// X is the out-of-domain argument.
	X Number
	// Func is a name identifying the operation.
	Func string
}

func (err *DomainError) Error() string {
	r := err.X.String() + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

func (err *DomainError) Unwrap() error {
	return ErrDomain
}

// NodeError is an error indicating a syntax tree that cannot be evaluated,
// e.g. a nil operand or a Binary node holding a unary operator. Trees from
// Parse never produce it. NodeError unwraps to ErrEvaluation.
type NodeError struct {
	// Node is the offending node. It may be nil.
	Node Node
	// Op is the operator kind of the node, if it has one.
	Op OperatorKind
}

func (err *NodeError) Error() string {
	switch err.Node.(type) {
	case nil:
		return "cannot evaluate missing node"
	case *Unary:
		return "cannot evaluate unary node with operator " + err.Op.String()
	case *Binary:
		return "cannot evaluate binary node with operator " + err.Op.String()
	default:
		return fmt.Sprintf("cannot evaluate node %T", err.Node)
	}
}

func (err *NodeError) Unwrap() error {
	return ErrEvaluation
}
