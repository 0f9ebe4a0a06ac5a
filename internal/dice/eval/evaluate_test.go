package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/louisbranch/dicegoblin/internal/dice/expr"
	"github.com/louisbranch/dicegoblin/internal/random"
)

// sequenceSource replays values in order, wrapping around, reduced mod n.
type sequenceSource struct {
	values []int64
	next   int
}

func (s *sequenceSource) Int63n(n int64) int64 {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func fixed(values ...int64) *sequenceSource {
	return &sequenceSource{values: values}
}

func TestEvaluateDiceTotalsStayInRange(t *testing.T) {
	rng := random.New(7)
	check := func(times, sides int64) {
		e := expr.Dice{Times: times, Sides: sides}
		total := Total(Evaluate(e, rng))
		if total < times || total > times*sides {
			t.Fatalf("%v total = %d, want [%d, %d]", e, total, times, times*sides)
		}
	}

	for _, times := range []int64{1, 2, 20, 21, 1000} {
		for _, sides := range []int64{1, 2, 20, 21, 1000} {
			check(times, sides)
		}
	}
	for i := 0; i < 200; i++ {
		check(rng.Int63n(1000)+1, rng.Int63n(1000)+1)
	}
}

func TestEvaluateArithmetic(t *testing.T) {
	tcs := map[string]int64{
		"5/0":          0,
		"7/2":          3,
		"-7/2":         -3,
		"7/-2":         -3,
		"3 + 4 * 2":    11,
		"(3 + 4) * 2":  14,
		"10 - 2 - 3":   5,
		"100 / 10 / 5": 2,
		"1 / 0 + 4":    4,
		"0d6":          0,
		"0d6 * 10 + 1": 1,
		"-3 * -3":      9,
		"2 - (10 / 0)": 2,
		"((((-1))))":   -1,
	}
	for input, want := range tcs {
		got := Total(Evaluate(expr.MustParse(input), fixed(0)))
		if got != want {
			t.Errorf("total(%q) = %d, want %d", input, got, want)
		}
	}
}

func rollsOf(n int) func(Result) bool {
	return func(r Result) bool {
		rolls, ok := r.(Rolls)
		return ok && len(rolls.Faces) == n
	}
}

func isHistogram(r Result) bool {
	_, ok := r.(Histogram)
	return ok
}

func isAggregate(r Result) bool {
	_, ok := r.(Aggregate)
	return ok
}

func TestEvaluateSelectsRepresentation(t *testing.T) {
	tcs := []struct {
		input string
		check func(Result) bool
	}{
		{"20d6", rollsOf(20)},
		{"20d1000", rollsOf(20)},
		{"21d6", isHistogram},
		{"21d20", isHistogram},
		{"21d21", isAggregate},
		{"0d6", rollsOf(0)},
	}
	for _, tc := range tcs {
		got := Evaluate(expr.MustParse(tc.input), random.New(1))
		if !tc.check(got) {
			t.Errorf("Evaluate(%q) = %#v, unexpected representation", tc.input, got)
		}
	}
}

func TestEvaluateHistogramCountsFaces(t *testing.T) {
	got := Evaluate(expr.Dice{Times: 21, Sides: 6}, fixed(3, 5))
	want := Histogram{Counts: []FaceCount{{Face: 4, Count: 11}, {Face: 6, Count: 10}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("histogram mismatch (-want +got):\n%s", diff)
	}
	if got.Total() != 4*11+6*10 {
		t.Fatalf("histogram total = %d, want %d", got.Total(), 4*11+6*10)
	}
}

func TestEvaluateKeepsShape(t *testing.T) {
	e := expr.MustParse("123 * (3d20 * 456) - 30d4 / (25d100 + d8)")
	r := Evaluate(e, random.New(3))

	var walk func(expr.Expression, Result)
	walk = func(e expr.Expression, r Result) {
		switch node := e.(type) {
		case expr.Num:
			if got, ok := r.(Num); !ok || got.Value != node.Value {
				t.Fatalf("expected Num(%d), got %#v", node.Value, r)
			}
		case expr.Dice:
			switch r.(type) {
			case Rolls, Histogram, Aggregate:
			default:
				t.Fatalf("expected dice outcome for %v, got %#v", node, r)
			}
		case expr.Group:
			got, ok := r.(Group)
			if !ok {
				t.Fatalf("expected Group, got %#v", r)
			}
			walk(node.Inner, got.Inner)
		case expr.Binary:
			got, ok := r.(Binary)
			if !ok || got.Op != node.Op {
				t.Fatalf("expected Binary %v, got %#v", node.Op, r)
			}
			walk(node.Left, got.Left)
			walk(node.Right, got.Right)
		}
	}
	walk(e, r)
}

func TestEvaluateDiceIsNondeterministic(t *testing.T) {
	dice := expr.MustParse("10d20")
	literal := expr.MustParse("3 + 4 * 5")

	totals := map[int64]bool{}
	for seed := int64(0); seed < 50; seed++ {
		totals[Total(Evaluate(dice, random.New(seed)))] = true
		if got := Total(Evaluate(literal, random.New(seed))); got != 23 {
			t.Fatalf("literal total = %d, want 23", got)
		}
	}
	if len(totals) < 2 {
		t.Fatalf("expected dice totals to vary across seeds, got %v", totals)
	}
}

func TestEvaluateHandBuiltDegenerateDice(t *testing.T) {
	for _, e := range []expr.Dice{{Times: 3, Sides: 0}, {Times: -2, Sides: 6}} {
		r := Evaluate(e, fixed(0))
		if r.Total() != 0 {
			t.Fatalf("Evaluate(%v) total = %d, want 0", e, r.Total())
		}
		if got := Trace(r); got != "[]" {
			t.Fatalf("Evaluate(%v) trace = %q, want []", e, got)
		}
	}
}

func TestTotalOfNilResult(t *testing.T) {
	if got := Total(nil); got != 0 {
		t.Fatalf("Total(nil) = %d, want 0", got)
	}
}
