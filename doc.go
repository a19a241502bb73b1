// Package stepcalc implements an arithmetic calculator that explains itself.
//
// Expressions are restricted to numbers, parentheses, unary + and -, and the
// binary operators +, -, × (or *), ÷ (or /), ^ (or **), and mod (or %).
// Nothing else is accepted: there are no variables, no function calls, and
// no implicit multiplication, so "2(3)" is an error rather than 6.
//
// Evaluating a parsed expression produces the value and a trace with one line
// per operator applied, in the order the operators are resolved:
//
//	(2+3)*4
//	2 + 3 = 5
//	5 × 4 = 20
//
// Numbers are either 64-bit integers or float64s. Division always produces a
// float, so "4/2" is 2.0. Integer overflow, division by zero, and modulo by
// zero are errors rather than infinities.
//
package stepcalc
