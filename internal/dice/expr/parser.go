package expr

import (
	"errors"
	"fmt"
)

// ErrParse indicates the input is not a valid roll expression. It covers
// malformed syntax, unconsumed trailing input, integer literals outside the
// int64 range and dice without sides.
var ErrParse = errors.New("could not parse roll expression")

// maxNesting caps parenthesis depth so hostile input cannot grow the stack
// without bound.
const maxNesting = 128

// Parse turns text into an Expression. The whole input must be consumed.
//
// Grammar, lowest precedence first:
//
//	expr    := factor (("+"|"-") factor)*
//	factor  := primary (("*"|"/") primary)*
//	primary := dice | number | group
//	group   := "(" expr ")"
//	dice    := [INT] ("d"|"D") INT
//	number  := ["-"] INT
//
// Whitespace may surround any primary and operator but never appears inside
// a dice or number token.
func Parse(text string) (Expression, error) {
	g := &grammar{}
	e, rest, ok := g.expr(text)
	if !ok {
		return nil, ErrParse
	}
	if rest != "" {
		return nil, fmt.Errorf("%w: unexpected trailing input", ErrParse)
	}
	if err := checkSides(e); err != nil {
		return nil, err
	}
	return e, nil
}

// MustParse is like Parse but panics on error. It is meant for tests and
// fixed expressions known at compile time.
func MustParse(text string) Expression {
	e, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("expr: Parse(%q): %v", text, err))
	}
	return e
}

// checkSides rejects dice with no faces; sampling [1, 0] is undefined.
func checkSides(e Expression) error {
	var err error
	Walk(e, func(node Expression) {
		if d, ok := node.(Dice); ok && d.Sides < 1 && err == nil {
			err = fmt.Errorf("%w: dice must have at least one side", ErrParse)
		}
	})
	return err
}

type grammar struct {
	depth int
}

func (g *grammar) expr(in string) (Expression, string, bool) {
	return foldLeft(g.factor, "+-")(in)
}

func (g *grammar) factor(in string) (Expression, string, bool) {
	return foldLeft(g.primary, "*/")(in)
}

func (g *grammar) primary(in string) (Expression, string, bool) {
	return ws(alt[Expression](dice, number, g.group))(in)
}

func (g *grammar) group(in string) (Expression, string, bool) {
	if g.depth >= maxNesting {
		return nil, in, false
	}
	g.depth++
	defer func() { g.depth-- }()

	inner, rest, ok := delimited[byte, Expression, byte](char('('), g.expr, char(')'))(in)
	if !ok {
		return nil, in, false
	}
	return Group{Inner: inner}, rest, true
}

func dice(in string) (Expression, string, bool) {
	times, rest, ok := integer(in)
	if !ok {
		times, rest = 1, in
	}
	if _, rest, ok = oneOf("dD")(rest); !ok {
		return nil, in, false
	}
	sides, rest, ok := integer(rest)
	if !ok {
		return nil, in, false
	}
	return Dice{Times: times, Sides: sides}, rest, true
}

func number(in string) (Expression, string, bool) {
	_, rest, negative := char('-')(in)
	if !negative {
		rest = in
	}
	n, rest, ok := integer(rest)
	if !ok {
		return nil, in, false
	}
	if negative {
		n = -n
	}
	return Num{Value: n}, rest, true
}

// ws surrounds p with optional whitespace.
func ws[T any](p parser[T]) parser[T] {
	return func(in string) (T, string, bool) {
		v, rest, ok := p(skipSpace(in))
		if !ok {
			var zero T
			return zero, in, false
		}
		return v, skipSpace(rest), true
	}
}

// alt returns the result of the first parser that succeeds.
func alt[T any](ps ...parser[T]) parser[T] {
	return func(in string) (T, string, bool) {
		for _, p := range ps {
			if v, rest, ok := p(in); ok {
				return v, rest, true
			}
		}
		var zero T
		return zero, in, false
	}
}

// delimited runs open, p, close in sequence and keeps p's value.
func delimited[O, T, C any](open parser[O], p parser[T], closing parser[C]) parser[T] {
	return func(in string) (T, string, bool) {
		var zero T
		_, rest, ok := open(in)
		if !ok {
			return zero, in, false
		}
		v, rest, ok := p(rest)
		if !ok {
			return zero, in, false
		}
		if _, rest, ok = closing(rest); !ok {
			return zero, in, false
		}
		return v, rest, true
	}
}

// foldLeft parses operand (op operand)* and folds the repetitions into a
// left-leaning Binary tree. An operator not followed by an operand is left
// unconsumed.
func foldLeft(operand parser[Expression], ops string) parser[Expression] {
	op := oneOf(ops)
	return func(in string) (Expression, string, bool) {
		out, rest, ok := operand(in)
		if !ok {
			return nil, in, false
		}
		for {
			sym, after, ok := op(rest)
			if !ok {
				return out, rest, true
			}
			rhs, after, ok := operand(after)
			if !ok {
				return out, rest, true
			}
			out = Binary{Op: operatorFor(sym), Left: out, Right: rhs}
			rest = after
		}
	}
}

func operatorFor(sym byte) Operator {
	switch sym {
	case '+':
		return OpAdd
	case '-':
		return OpSub
	case '*':
		return OpMul
	default:
		return OpDiv
	}
}
