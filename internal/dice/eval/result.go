// Package eval rolls parsed expressions and renders the outcome.
//
// Evaluate mirrors an expr.Expression into a Result tree of the same shape,
// replacing every dice term with its realized outcome. Totals and traces are
// computed from the Result alone, so they are pure and repeatable.
package eval

import "github.com/louisbranch/dicegoblin/internal/dice/expr"

// Result is a node of an evaluated roll.
type Result interface {
	// Total folds the node and its children into a single value.
	Total() int64
	result()
}

// Num is a literal carried over from the expression.
type Num struct {
	Value int64
}

// Rolls lists every face rolled, in roll order.
type Rolls struct {
	Faces []int64
}

// FaceCount is one entry of a Histogram.
type FaceCount struct {
	Face  int64
	Count int64
}

// Histogram counts how often each face came up, ordered by ascending face.
// Faces that never came up are omitted.
type Histogram struct {
	Counts []FaceCount
}

// Aggregate keeps only the sum of the faces rolled.
type Aggregate struct {
	Sum int64
}

// Group is a parenthesized result.
type Group struct {
	Inner Result
}

// Binary combines two results with an operator.
type Binary struct {
	Op    expr.Operator
	Left  Result
	Right Result
}

func (Num) result()       {}
func (Rolls) result()     {}
func (Histogram) result() {}
func (Aggregate) result() {}
func (Group) result()     {}
func (Binary) result()    {}

func (n Num) Total() int64 { return n.Value }

func (r Rolls) Total() int64 {
	var sum int64
	for _, face := range r.Faces {
		sum += face
	}
	return sum
}

func (h Histogram) Total() int64 {
	var sum int64
	for _, fc := range h.Counts {
		sum += fc.Face * fc.Count
	}
	return sum
}

func (a Aggregate) Total() int64 { return a.Sum }

func (g Group) Total() int64 { return g.Inner.Total() }

// Total applies the operator to both totals. Division truncates toward zero
// and dividing by zero yields zero.
func (b Binary) Total() int64 {
	lhs, rhs := b.Left.Total(), b.Right.Total()
	switch b.Op {
	case expr.OpAdd:
		return lhs + rhs
	case expr.OpSub:
		return lhs - rhs
	case expr.OpMul:
		return lhs * rhs
	default:
		if rhs == 0 {
			return 0
		}
		return lhs / rhs
	}
}

// Total returns r's value, or zero for a nil result.
func Total(r Result) int64 {
	if r == nil {
		return 0
	}
	return r.Total()
}
