// Package expr defines the roll expression tree and its parser.
//
// An Expression is produced once by Parse and never mutated afterwards, so a
// single tree may be evaluated any number of times from any goroutine.
package expr

import "strconv"

// Operator identifies a binary arithmetic operator.
type Operator int

const (
	OpAdd Operator = iota
	OpSub
	OpMul
	OpDiv
)

// String returns the operator symbol used both in input and in traces.
func (o Operator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// Expression is a node of a parsed roll.
type Expression interface {
	// String renders the node back to canonical surface syntax.
	String() string
	expression()
}

// Num is an integer literal.
type Num struct {
	Value int64
}

// Dice rolls Times dice with Sides faces each.
type Dice struct {
	Times int64
	Sides int64
}

// Group is a parenthesized sub-expression.
type Group struct {
	Inner Expression
}

// Binary applies Op to Left and Right.
type Binary struct {
	Op    Operator
	Left  Expression
	Right Expression
}

func (Num) expression()    {}
func (Dice) expression()   {}
func (Group) expression()  {}
func (Binary) expression() {}

func (n Num) String() string { return strconv.FormatInt(n.Value, 10) }

func (d Dice) String() string {
	return strconv.FormatInt(d.Times, 10) + "d" + strconv.FormatInt(d.Sides, 10)
}

func (g Group) String() string { return "(" + g.Inner.String() + ")" }

func (b Binary) String() string {
	return b.Left.String() + " " + b.Op.String() + " " + b.Right.String()
}

// Add returns lhs + rhs.
func Add(lhs, rhs Expression) Expression { return Binary{Op: OpAdd, Left: lhs, Right: rhs} }

// Sub returns lhs - rhs.
func Sub(lhs, rhs Expression) Expression { return Binary{Op: OpSub, Left: lhs, Right: rhs} }

// Mul returns lhs * rhs.
func Mul(lhs, rhs Expression) Expression { return Binary{Op: OpMul, Left: lhs, Right: rhs} }

// Div returns lhs / rhs.
func Div(lhs, rhs Expression) Expression { return Binary{Op: OpDiv, Left: lhs, Right: rhs} }

// Grp wraps inner in a Group.
func Grp(inner Expression) Expression { return Group{Inner: inner} }

// Walk calls fn for e and every descendant in pre-order.
func Walk(e Expression, fn func(Expression)) {
	if e == nil {
		return
	}
	fn(e)
	switch node := e.(type) {
	case Group:
		Walk(node.Inner, fn)
	case Binary:
		Walk(node.Left, fn)
		Walk(node.Right, fn)
	}
}
