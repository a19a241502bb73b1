package stepcalc

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

// diff finds the first pre-order node of n that differs from m, or nil, nil if
// the two trees are equal.
func diff(n, m Node) (Node, Node) {
	switch n := n.(type) {
	case *Literal:
		o, ok := m.(*Literal)
		if !ok || n.Value != o.Value {
			return n, m
		}
	case *Unary:
		o, ok := m.(*Unary)
		if !ok || n.Op != o.Op {
			return n, m
		}
		return diff(n.X, o.X)
	case *Binary:
		o, ok := m.(*Binary)
		if !ok || n.Op != o.Op {
			return n, m
		}
		if d, e := diff(n.Left, o.Left); d != nil || e != nil {
			return d, e
		}
		return diff(n.Right, o.Right)
	case nil:
		if m != nil {
			return n, m
		}
	default:
		panic(fmt.Errorf("invalid node: n=%+v m=%+v", n, m))
	}
	return nil, nil
}

var posInf = math.Inf(1)

func TestOpPrecsExist(t *testing.T) {
	for _, r := range Operators {
		b := binop(string(r))
		u := unop(string(r))
		if b.op == OpNone && u.op == OpNone {
			t.Errorf("no operator for %c", r)
		}
	}
	for _, s := range []string{"**", ModWord} {
		if binop(s).op == OpNone {
			t.Errorf("no operator for %s", s)
		}
	}
}

func TestOpPrecsAlternates(t *testing.T) {
	pairs := [][2]string{{"*", "×"}, {"/", "÷"}, {"%", ModWord}, {"^", "**"}}
	for _, p := range pairs {
		if a, b := binop(p[0]), binop(p[1]); a != b {
			t.Errorf("%s is %+v but %s is %+v", p[0], a, p[1], b)
		}
	}
	if m, d := binop("*").prec, binop(ModWord).prec; m != d {
		t.Errorf("* has prec %d but mod has prec %d", m, d)
	}
}

func TestParseTrees(t *testing.T) {
	cases := []struct {
		name string
		a, b string
	}{
		{"paren", "(1)", "1"},
		{"multi", "((((1))))", "1"},
		{"spaces", " 1 +\t2\n", "1+2"},

		{"plus", "+1", "(+(1))"},
		{"neg", "-1", "(-(1))"},
		{"add", "1+2", "((1)+(2))"},
		{"sub", "1-2", "((1)-(2))"},
		{"mul", "1*2", "((1)*(2))"},
		{"div", "1/2", "((1)/(2))"},
		{"pow", "1^2", "((1)^(2))"},
		{"mod", "1%2", "((1)%(2))"},
		{"altmul", "1×2", "1*2"},
		{"altdiv", "1÷2", "1/2"},
		{"altpow", "1**2", "1^2"},
		{"altmod", "1 mod 2", "1%2"},

		{"add4", "1+2+3+4", "((1+2)+3)+4"},
		{"sub4", "1-2-3-4", "((1-2)-3)-4"},
		{"mul4", "1*2*3*4", "((1*2)*3)*4"},
		{"div4", "1/2/3/4", "((1/2)/3)/4"},
		{"mod4", "1%2%3%4", "((1%2)%3)%4"},
		{"pow4", "1^2^3^4", "1^(2^(3^4))"},
		{"muldivmod", "1*2/3%4", "((1*2)/3)%4"},

		{"negpow", "-1^2", "-(1^2)"},
		{"desc", "1^2*3+4", "((1^2)*3)+4"},
		{"asc", "1+2*3^4", "1+(2*(3^4))"},
		{"descasc", "1^2*3+4+5*6^7", "(((1^2)*3)+4)+5*(6^7)"},
		{"ascdesc", "1+2*3^4^5*6+7", "1+((2*(3^(4^5)))*6)+7"},
		{"negneg", "--1", "-(-1)"},
		{"plusplus", "2++3", "2+(+3)"},
		{"negsub", "-1-1", "(-1)-1"},
		{"negadd", "-5+2", "(-5)+2"},
		{"negmod", "-7 mod 3", "(-7)%3"},
		{"modneg", "7 mod -3", "7%(-3)"},
		{"mulneg", "2*-3+1", "(2*(-3))+1"},
		{"powneg", "2^-1", "2^(-1)"},
		{"pownegpow", "2^-3^-4", "2^(-(3^(-4)))"},
		{"pownegneg", "2^--3", "2^(-(-3))"},
		{"parens", "(2+3)*4", "((2+3))*4"},
		{"parenspow", "(2^3)^4", "(2^3)^4"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.a)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.a, err)
			}
			b, err := ParseString(c.b)
			if err != nil {
				t.Fatalf("failed to parse %q: %v", c.b, err)
			}
			d, e := diff(a.n, b.n)
			if d != nil || e != nil {
				t.Errorf("mismatched AST:\n\t%q parses %v has %v\n\t%q parses %v has %v", c.a, a.n, d, c.b, b.n, e)
			}
		})
	}
}

func TestParseExact(t *testing.T) {
	cases := []struct {
		name string
		src  string
		n    Node
	}{
		{
			name: "int",
			src:  "42",
			n:    &Literal{Value: Int(42)},
		},
		{
			name: "real",
			src:  "4.5",
			n:    &Literal{Value: Float(4.5)},
		},
		{
			name: "real-int",
			src:  "4.0",
			n:    &Literal{Value: Float(4)},
		},
		{
			name: "exponent",
			src:  "1e3",
			n:    &Literal{Value: Float(1000)},
		},
		{
			name: "huge-real",
			src:  "1e999",
			n:    &Literal{Value: Float(posInf)},
		},
		{
			name: "add-neg",
			src:  "-5+2",
			n: &Binary{
				Op: OpAdd,
				Left: &Unary{
					Op: OpUnaryMinus,
					X:  &Literal{Value: Int(5)},
				},
				Right: &Literal{Value: Int(2)},
			},
		},
		{
			name: "paren-mul",
			src:  "(2+3)*4",
			n: &Binary{
				Op: OpMul,
				Left: &Binary{
					Op:    OpAdd,
					Left:  &Literal{Value: Int(2)},
					Right: &Literal{Value: Int(3)},
				},
				Right: &Literal{Value: Int(4)},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if err != nil {
				t.Fatalf("%q failed to parse: %v", c.src, err)
			}
			d, e := diff(a.n, c.n)
			if d != nil || e != nil {
				t.Errorf("mismatched AST:\n\twant %v which has %v\n\tgot  %v which has %v from %q", c.n, e, a.n, d, c.src)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  interface{}
		pos  int
	}{
		{"empty", "", new(*EmptyExpressionError), 1},
		{"spaces", "   ", new(*EmptyExpressionError), 4},
		{"empty-parens", "()", new(*EmptyExpressionError), 2},
		{"trailing-op", "1+", new(*EmptyExpressionError), 3},
		{"op-close", "(1+)", new(*EmptyExpressionError), 4},
		{"neg-close", "(-)", new(*EmptyExpressionError), 3},
		{"plusplusmul", "2++*3", new(*OperatorError), 4},
		{"leading-mul", "*2", new(*OperatorError), 1},
		{"leading-mod", "mod 2", new(*OperatorError), 1},
		{"open", "(1", new(*BracketError), 3},
		{"close", "1)", new(*BracketError), 2},
		{"only-close", ")", new(*BracketError), 1},
		{"ident", "x", new(*IdentError), 1},
		{"ident-after", "1+x", new(*IdentError), 3},
		{"call", "__import__('os')", new(*IdentError), 1},
		{"func", "sqrt(4)", new(*IdentError), 1},
		{"term-term", "2 3", new(*TokenError), 3},
		{"implicit-mul", "2(3)", new(*TokenError), 2},
		{"paren-term", "(2)3", new(*TokenError), 4},
		{"big-int", "9223372036854775808", new(*LiteralError), 1},
		{"list", "[1]", new(*LexError), 2},
		{"string", "'a'", new(*LexError), 2},
		{"compare", "1<2", new(*LexError), 3},
		{"assign", "1=2", new(*LexError), 3},
		{"bitand", "1&2", new(*LexError), 3},
		{"tuple", "1,2", new(*LexError), 3},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a, err := ParseString(c.src)
			if err == nil {
				t.Fatalf("%q parsed to %v", c.src, a)
			}
			if a != nil {
				t.Errorf("%q gave non-nil expression %v with error", c.src, a)
			}
			if !errors.Is(err, ErrSyntax) {
				t.Errorf("%v does not unwrap to ErrSyntax", err)
			}
			if errors.Is(err, ErrEvaluation) {
				t.Errorf("%v unwraps to ErrEvaluation", err)
			}
			if !errors.As(err, c.err) {
				t.Errorf("%#v is not %T", err, c.err)
			}
			var ie InputError
			if !errors.As(err, &ie) {
				t.Fatalf("%#v is not an InputError", err)
			}
			if ie.Pos() != c.pos {
				t.Errorf("%q: wrong error position: want %d, got %d (%v)", c.src, c.pos, ie.Pos(), err)
			}
		})
	}
}

func TestExprString(t *testing.T) {
	cases := []struct {
		src, want string
	}{
		{"1", "(1)"},
		{"1.50", "(1.50)"},
		{"-1", "(-[1])"},
		{"1+2", "([1] + [2])"},
		{"(2+3)*4", "([(2) + (3)] × [4])"},
		{"7 mod 3", "([7] mod [3])"},
		{"2^-1", "([2] ^ [-(1)])"},
	}
	for _, c := range cases {
		a, err := ParseString(c.src)
		if err != nil {
			t.Errorf("%q failed to parse: %v", c.src, err)
			continue
		}
		if got := a.String(); got != c.want {
			t.Errorf("%q formats as %q, want %q", c.src, got, c.want)
		}
		if got := a.Root().String(); got != c.want {
			t.Errorf("%q root formats as %q, want %q", c.src, got, c.want)
		}
	}
}

func TestExprOps(t *testing.T) {
	cases := []struct {
		src string
		ops int
	}{
		{"1", 0},
		{"(1)", 0},
		{"-1", 1},
		{"1+2", 1},
		{"(2+3)*4", 2},
		{"-(-(1+2)^3) mod 4", 5},
	}
	for _, c := range cases {
		a, err := ParseString(c.src)
		if err != nil {
			t.Errorf("%q failed to parse: %v", c.src, err)
			continue
		}
		if got := a.Ops(); got != c.ops {
			t.Errorf("%q has %d ops, want %d", c.src, got, c.ops)
		}
	}
}

func TestParseReader(t *testing.T) {
	a, err := Parse(strings.NewReader("1 +\n2"))
	if err != nil {
		t.Fatal(err)
	}
	if a.Ops() != 1 {
		t.Errorf("wrong tree %v", a)
	}
}
