package stepcalc

// OperatorKind identifies an operator.
type OperatorKind int8

const (
	OpNone OperatorKind = iota

	OpAdd // x + y
	OpSub // x - y
	OpMul // x × y
	OpDiv // x ÷ y, always real
	OpPow // x ^ y
	OpMod // x mod y, floored

	OpUnaryPlus  // +x
	OpUnaryMinus // -x
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=OperatorKind -trimprefix=Op

// IsBinary returns whether op is one of the binary operator kinds.
func (op OperatorKind) IsBinary() bool {
	return OpAdd <= op && op <= OpMod
}

// IsUnary returns whether op is one of the unary operator kinds.
func (op OperatorKind) IsUnary() bool {
	return op == OpUnaryPlus || op == OpUnaryMinus
}

// OperatorSpec describes how an operator is displayed in traces and how it is
// applied. Exactly one of Binary and Unary is non-nil.
type OperatorSpec struct {
	// Symbol is the operator as written in trace lines.
	Symbol string
	// Binary applies a binary operator.
	Binary func(x, y Number) (Number, error)
	// Unary applies a unary operator.
	Unary func(x Number) (Number, error)
}

var optable = [...]OperatorSpec{
	OpAdd:        {Symbol: "+", Binary: add},
	OpSub:        {Symbol: "-", Binary: sub},
	OpMul:        {Symbol: "×", Binary: mul},
	OpDiv:        {Symbol: "÷", Binary: div},
	OpPow:        {Symbol: "^", Binary: pow},
	OpMod:        {Symbol: "mod", Binary: mod},
	OpUnaryPlus:  {Symbol: "+", Unary: pos},
	OpUnaryMinus: {Symbol: "-", Unary: neg},
}

// LookupOperator returns the spec for an operator kind. The second result is
// false if op is not one of the eight operator kinds.
func LookupOperator(op OperatorKind) (OperatorSpec, bool) {
	if op <= OpNone || int(op) >= len(optable) {
		return OperatorSpec{}, false
	}
	return optable[op], true
}

// Symbol returns the trace symbol for op, or the empty string if op is not an
// operator.
func (op OperatorKind) Symbol() string {
	s, _ := LookupOperator(op)
	return s.Symbol
}
