package stepcalc

import "strconv"

// OperatorError is an error indicating an operator in a position where it
// cannot be used, e.g. the * in 2+*3. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

func (err *OperatorError) Unwrap() error {
	return ErrSyntax
}

// BracketError is an error indicating mismatched brackets in the
// input. It implements InputError.
type BracketError struct {
	// Col is the position of the bracket or end of input.
	Col int
	// Left is the opening bracket.
	Left string
	// Right is the mismatched closing bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

func (err *BracketError) Unwrap() error {
	return ErrSyntax
}

// EmptyExpressionError is an error indicating an empty subexpression,
// including an empty input. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

func (err *EmptyExpressionError) Unwrap() error {
	return ErrSyntax
}

// IdentError is an error indicating a name in the input. Expressions contain
// only numbers and operators, so any variable or function name is an error.
// It implements InputError.
type IdentError struct {
	// Col is the position of the name.
	Col int
	// Name is the name.
	Name string
}

func (err *IdentError) Error() string {
	return errpos(err.Col, "names are not allowed: "+strconv.Quote(err.Name))
}

func (err *IdentError) Pos() int {
	return err.Col
}

func (err *IdentError) Unwrap() error {
	return ErrSyntax
}

// TokenError is an error indicating a term directly following another term
// with no operator between them, as in 2 3 or 2(3). It implements InputError.
type TokenError struct {
	// Col is the position of the second term.
	Col int
	// Text is the token starting the second term.
	Text string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "missing operator before "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

func (err *TokenError) Unwrap() error {
	return ErrSyntax
}

// LiteralError is an error indicating an integer literal too large to
// represent. It implements InputError.
type LiteralError struct {
	// Col is the position of the literal.
	Col int
	// Text is the literal.
	Text string
}

func (err *LiteralError) Error() string {
	return errpos(err.Col, "integer out of range: "+err.Text)
}

func (err *LiteralError) Pos() int {
	return err.Col
}

func (err *LiteralError) Unwrap() error {
	return ErrSyntax
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*IdentError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*LiteralError)(nil)
	_ InputError = (*LexError)(nil)
)
