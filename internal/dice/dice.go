// Package dice runs the roll pipeline: parse, check limits, evaluate and
// format.
//
// # Randomness
//
// Every call to Roll builds its own generator from a seed, so rolls running
// concurrently never share generator state. The seed is returned on the
// Outcome; passing it back through Request.Seed replays the same dice.
//
// # Errors
//
// Roll fails only before any dice are sampled: ErrParse for input that is not
// a roll expression and ErrTooLarge for input that exceeds the configured
// Limits. Once an expression is accepted, evaluation always succeeds.
package dice

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/louisbranch/dicegoblin/internal/dice/eval"
	"github.com/louisbranch/dicegoblin/internal/dice/expr"
	"github.com/louisbranch/dicegoblin/internal/random"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/louisbranch/dicegoblin/internal/dice"

var (
	// ErrParse indicates the input is not a valid roll expression.
	ErrParse = expr.ErrParse
	// ErrTooLarge indicates the roll exceeds the configured limits.
	ErrTooLarge = expr.ErrTooLarge
	// ErrSeedUnavailable indicates no seed could be generated for the roll.
	ErrSeedUnavailable = errors.New("seed generator is not available")
)

// Status classifies a roll for observers.
type Status string

const (
	StatusOK         Status = "ok"
	StatusParseError Status = "parse_error"
	StatusTooLarge   Status = "too_large"
	StatusError      Status = "error"
)

// StatusOf maps a Roll error to its Status.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrParse):
		return StatusParseError
	case errors.Is(err, ErrTooLarge):
		return StatusTooLarge
	default:
		return StatusError
	}
}

// Observer receives one call per Roll. status is one of the Status values.
type Observer interface {
	ObserveRoll(status string, dice int64, elapsed time.Duration)
}

// Request describes a roll.
type Request struct {
	Expression string
	// Seed replays a previous roll when set.
	Seed *int64
}

// Outcome is a completed roll.
type Outcome struct {
	ID         string
	Expression expr.Expression
	Result     eval.Result
	Total      int64
	Trace      string
	Seed       int64
}

// String renders the outcome as "<total> = <trace>".
func (o Outcome) String() string {
	return strconv.FormatInt(o.Total, 10) + " = " + o.Trace
}

// Roller rolls expressions under a fixed set of limits.
//
// A Roller is safe for concurrent use.
type Roller struct {
	limits   expr.Limits
	seedFunc random.SeedFunc // Generates per-roll seeds.
	observer Observer
	tracer   trace.Tracer
	newID    func() string
	now      func() time.Time
}

// Option configures a Roller.
type Option func(*Roller)

// WithLimits sets the limits applied before evaluation.
func WithLimits(limits expr.Limits) Option {
	return func(r *Roller) { r.limits = limits }
}

// WithSeedFunc replaces the crypto/rand seed source.
func WithSeedFunc(fn random.SeedFunc) Option {
	return func(r *Roller) { r.seedFunc = fn }
}

// WithObserver reports every roll to o.
func WithObserver(o Observer) Option {
	return func(r *Roller) { r.observer = o }
}

// WithTracerProvider records spans on tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(r *Roller) { r.tracer = tp.Tracer(instrumentationName) }
}

// New creates a Roller with default limits and crypto/rand seeds.
func New(opts ...Option) *Roller {
	r := &Roller{
		limits:   expr.DefaultLimits(),
		seedFunc: random.NewSeed,
		tracer:   otel.Tracer(instrumentationName),
		newID:    uuid.NewString,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Limits returns the limits applied by r.
func (r *Roller) Limits() expr.Limits {
	return r.limits
}

// Roll parses, checks and evaluates req.Expression.
func (r *Roller) Roll(ctx context.Context, req Request) (outcome Outcome, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	_, span := r.tracer.Start(ctx, "dice.roll", trace.WithAttributes(
		attribute.Int("dice.expression.length", len(req.Expression)),
		attribute.Bool("dice.replay", req.Seed != nil),
	))
	defer span.End()

	start := r.now()
	var count int64
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		if r.observer != nil {
			r.observer.ObserveRoll(string(StatusOf(err)), count, r.now().Sub(start))
		}
	}()

	parsed, err := r.Parse(req.Expression)
	if err != nil {
		return Outcome{}, err
	}
	count = expr.DiceCount(parsed)
	span.SetAttributes(attribute.Int64("dice.count", count))

	seed, err := r.seed(req.Seed)
	if err != nil {
		return Outcome{}, err
	}

	result := eval.Evaluate(parsed, random.New(seed))
	outcome = Outcome{
		ID:         r.newID(),
		Expression: parsed,
		Result:     result,
		Total:      eval.Total(result),
		Trace:      eval.Trace(result),
		Seed:       seed,
	}
	span.SetAttributes(
		attribute.String("dice.roll_id", outcome.ID),
		attribute.Int64("dice.total", outcome.Total),
	)
	return outcome, nil
}

// Parse parses text and applies r's limits without rolling.
func (r *Roller) Parse(text string) (expr.Expression, error) {
	if err := r.limits.CheckText(text); err != nil {
		return nil, err
	}
	parsed, err := expr.Parse(text)
	if err != nil {
		return nil, err
	}
	if err := r.limits.Check(parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}

func (r *Roller) seed(requested *int64) (int64, error) {
	if requested != nil {
		return *requested, nil
	}
	if r.seedFunc == nil {
		return 0, ErrSeedUnavailable
	}
	seed, err := r.seedFunc()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSeedUnavailable, err)
	}
	return seed, nil
}
