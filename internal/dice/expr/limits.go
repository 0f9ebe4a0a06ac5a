package expr

import (
	"errors"
	"fmt"
	"math"
)

// ErrTooLarge indicates an expression would need too much work to evaluate
// or could produce a total outside the int64 range.
var ErrTooLarge = errors.New("roll expression is too large")

const (
	// DefaultMaxDice caps the number of dice sampled by one expression.
	DefaultMaxDice = 1_000_000
	// DefaultMaxLength caps the input size in bytes.
	DefaultMaxLength = 1024
)

// Limits bounds the work a single roll may request. Zero fields fall back to
// the defaults.
type Limits struct {
	// MaxDice is the ceiling on the sum of Times across all dice terms.
	MaxDice int64
	// MaxLength is the ceiling on the raw input length in bytes.
	MaxLength int
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{MaxDice: DefaultMaxDice, MaxLength: DefaultMaxLength}
}

func (l Limits) withDefaults() Limits {
	if l.MaxDice <= 0 {
		l.MaxDice = DefaultMaxDice
	}
	if l.MaxLength <= 0 {
		l.MaxLength = DefaultMaxLength
	}
	return l
}

// CheckText rejects input longer than MaxLength before it reaches the parser.
func (l Limits) CheckText(text string) error {
	l = l.withDefaults()
	if len(text) > l.MaxLength {
		return fmt.Errorf("%w: input exceeds %d bytes", ErrTooLarge, l.MaxLength)
	}
	return nil
}

// Check rejects expressions that sample more than MaxDice dice or whose
// worst-case total does not fit in an int64.
func (l Limits) Check(e Expression) error {
	l = l.withDefaults()
	if count := DiceCount(e); count > l.MaxDice {
		return fmt.Errorf("%w: %d dice exceeds limit of %d", ErrTooLarge, count, l.MaxDice)
	}
	if _, ok := magnitude(e); !ok {
		return fmt.Errorf("%w: total may overflow", ErrTooLarge)
	}
	return nil
}

// DiceCount returns the number of dice e samples, saturating at MaxInt64.
func DiceCount(e Expression) int64 {
	var count int64
	Walk(e, func(node Expression) {
		d, ok := node.(Dice)
		if !ok || d.Times <= 0 {
			return
		}
		if count > math.MaxInt64-d.Times {
			count = math.MaxInt64
			return
		}
		count += d.Times
	})
	return count
}

// magnitude returns an upper bound on the absolute value of any total e can
// produce, and false when that bound does not fit in an int64.
func magnitude(e Expression) (int64, bool) {
	switch node := e.(type) {
	case Num:
		if node.Value == math.MinInt64 {
			return 0, false
		}
		if node.Value < 0 {
			return -node.Value, true
		}
		return node.Value, true
	case Dice:
		if node.Times <= 0 || node.Sides <= 0 {
			return 0, true
		}
		return mulBound(node.Times, node.Sides)
	case Group:
		return magnitude(node.Inner)
	case Binary:
		lhs, ok := magnitude(node.Left)
		if !ok {
			return 0, false
		}
		rhs, ok := magnitude(node.Right)
		if !ok {
			return 0, false
		}
		switch node.Op {
		case OpAdd, OpSub:
			if lhs > math.MaxInt64-rhs {
				return 0, false
			}
			return lhs + rhs, true
		case OpMul:
			return mulBound(lhs, rhs)
		default:
			// |a / b| <= |a| for b != 0, and x / 0 is 0.
			return lhs, true
		}
	default:
		return 0, true
	}
}

func mulBound(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}
