package eval

import (
	"github.com/louisbranch/dicegoblin/internal/dice/expr"
	"github.com/louisbranch/dicegoblin/internal/random"
)

// ListThreshold is the largest roll count kept as an ordered list. Larger
// rolls keep a histogram when the die has at most ListThreshold sides, and
// only the sum otherwise. It bounds both memory and trace length.
const ListThreshold = 20

// Evaluate rolls every dice term of e using src.
//
// Evaluate never fails. Sampling is O(times) for each dice term regardless of
// representation, so callers bound the work with expr.Limits first. A dice
// term without sides or with a negative count rolls nothing.
func Evaluate(e expr.Expression, src random.Source) Result {
	switch node := e.(type) {
	case expr.Num:
		return Num{Value: node.Value}
	case expr.Dice:
		return roll(node.Times, node.Sides, src)
	case expr.Group:
		return Group{Inner: Evaluate(node.Inner, src)}
	case expr.Binary:
		return Binary{
			Op:    node.Op,
			Left:  Evaluate(node.Left, src),
			Right: Evaluate(node.Right, src),
		}
	default:
		return Num{}
	}
}

func roll(times, sides int64, src random.Source) Result {
	if times <= 0 || sides < 1 {
		return Rolls{Faces: []int64{}}
	}
	switch {
	case times <= ListThreshold:
		return rollList(times, sides, src)
	case sides <= ListThreshold:
		return rollHistogram(times, sides, src)
	default:
		return rollAggregate(times, sides, src)
	}
}

func rollDie(src random.Source, sides int64) int64 {
	return src.Int63n(sides) + 1
}

func rollList(times, sides int64, src random.Source) Rolls {
	faces := make([]int64, times)
	for i := range faces {
		faces[i] = rollDie(src, sides)
	}
	return Rolls{Faces: faces}
}

func rollHistogram(times, sides int64, src random.Source) Histogram {
	counts := make([]int64, sides+1)
	for i := int64(0); i < times; i++ {
		counts[rollDie(src, sides)]++
	}

	out := make([]FaceCount, 0, sides)
	for face := int64(1); face <= sides; face++ {
		if counts[face] > 0 {
			out = append(out, FaceCount{Face: face, Count: counts[face]})
		}
	}
	return Histogram{Counts: out}
}

func rollAggregate(times, sides int64, src random.Source) Aggregate {
	var sum int64
	for i := int64(0); i < times; i++ {
		sum += rollDie(src, sides)
	}
	return Aggregate{Sum: sum}
}
