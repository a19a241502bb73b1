package stepcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
)

// Expr = num | Neg | Plus | Add | Sub | Mul | Div | Mod | Pow | '(' Expr ')'
// Neg = '-' Expr
// Plus = '+' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr | Expr '×' Expr
// Div = Expr '/' Expr | Expr '÷' Expr
// Mod = Expr '%' Expr | Expr 'mod' Expr
// Pow = Expr '^' Expr | Expr '**' Expr

// Expr is a parsed expression.
type Expr struct {
	// n is the root node of the expression.
	n Node
}

// Parse parses an expression from src, reading until EOF. The error, if any,
// implements InputError and unwraps to ErrSyntax, unless it is an error from
// reading src.
func Parse(src io.RuneScanner) (*Expr, error) {
	scan := lex(src)
	n, err := parseterm(scan, exprprec)
	if err != nil {
		return nil, err
	}
	if tok := scan.must(); tok.kind != tokenEOF {
		return nil, itShouldNotHaveEndedThisWay(tok, false)
	}
	return &Expr{n: n}, nil
}

// ParseString parses an expression from a string.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression, the result is nil with no error; callers must create an error
// in contexts where empty subexpressions are illegal.
func parseterm(scan *lexer, until operator) (Node, error) {
	n, err := parselhs(scan, until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenNum, tokenOpen:
			// 2 3 and 2 (3) are implicit multiplications, which we don't do.
			return nil, &TokenError{Col: tok.pos, Text: tok.text}
		case tokenIdent:
			return nil, &IdentError{Col: tok.pos, Name: tok.text}
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == OpNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: false}
			}
			if !prec.moreBinding(until) {
				scan.push(tok)
				return n, nil
			}
			rhs, err := parseterm(scan, prec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				return nil, emptyexpr(scan)
			}
			n = &Binary{Op: prec.op, Left: n, Right: rhs}
		case tokenClose, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("stepcalc: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary,
// and any encountered token must be valid as the start of a subexpression.
func parselhs(scan *lexer, until operator) (Node, error) {
	tok, err := scan.next()
	if err != nil {
		return nil, err
	}
	switch tok.kind {
	case tokenNum:
		return literal(tok)
	case tokenIdent:
		return nil, &IdentError{Col: tok.pos, Name: tok.text}
	case tokenOp:
		prec := unop(tok.text)
		if prec.op == OpNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			return nil, emptyexpr(scan)
		}
		return &Unary{Op: prec.op, X: rhs}, nil
	case tokenOpen:
		rhs, err := parseterm(scan, exprprec)
		if err != nil {
			return nil, err
		}
		end := scan.must()
		if end.kind != tokenClose {
			return nil, itShouldNotHaveEndedThisWay(end, true)
		}
		if rhs == nil {
			return nil, &EmptyExpressionError{Col: end.pos, End: end.text}
		}
		return rhs, nil
	case tokenClose:
		// Let the caller decide what to do.
		scan.push(tok)
		return nil, nil
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos, End: ""}
	default:
		panic("stepcalc: unknown token: " + tok.String())
	}
}

// literal converts a number token to a leaf node. Reals that overflow become
// infinite, but integers must fit in an int64.
func literal(tok lexToken) (Node, error) {
	if strings.ContainsAny(tok.text, ".eE") {
		f, err := strconv.ParseFloat(tok.text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			panic("stepcalc: invalid number: " + tok.text + " (" + err.Error() + ")")
		}
		return &Literal{Value: Float(f), Text: tok.text}, nil
	}
	i, err := strconv.ParseInt(tok.text, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return nil, &LiteralError{Col: tok.pos, Text: tok.text}
		}
		panic("stepcalc: invalid number: " + tok.text + " (" + err.Error() + ")")
	}
	return &Literal{Value: Int(i), Text: tok.text}, nil
}

// emptyexpr returns an error for a missing operand, given that the token which
// ended the operand is pushed.
func emptyexpr(scan *lexer) error {
	end := scan.must()
	return &EmptyExpressionError{Col: end.pos, End: end.text}
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression. open is whether the subexpression was
// started by an open bracket.
func itShouldNotHaveEndedThisWay(tok lexToken, open bool) error {
	left := ""
	if open {
		left = "("
	}
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open bracket that was not closed.
		return &BracketError{Col: tok.pos, Left: left, Right: ""}
	case tokenClose:
		// A close bracket at the top level has no match.
		return &BracketError{Col: tok.pos, Left: left, Right: tok.text}
	default:
		panic("stepcalc: it really should not have ended this way: " + tok.String())
	}
}

// Root returns the root node of the parsed expression.
func (e *Expr) Root() Node {
	return e.n
}

// Ops returns the number of operators in the expression. Evaluating the
// expression records exactly this many steps.
func (e *Expr) Ops() int {
	return countOps(e.n)
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Lower is less binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the operator kind to use when this operator is selected.
	op OperatorKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of OpNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, OpAdd}
	case "-":
		return operator{1, false, OpSub}
	case "*", "×":
		return operator{5, false, OpMul}
	case "/", "÷":
		return operator{5, false, OpDiv}
	case "%", ModWord:
		return operator{5, false, OpMod}
	case "^", "**":
		return operator{15, true, OpPow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of OpNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, OpUnaryPlus}
	case "-":
		return operator{10, true, OpUnaryMinus}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, OpNone}
