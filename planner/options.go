package planner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/katalvlaran/gridpath/field"
)

const (
	// DefaultBound is the arrival tolerance in field-cost units.
	DefaultBound = 4.0

	// DefaultIterationLimit caps the number of steps a path walk may take.
	DefaultIterationLimit = 100_000
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("planner: invalid option supplied")

// Option configures a Session via functional arguments.
// If an Option is invalid (e.g. a negative bound), it is recorded internally
// and surfaced as ErrOptionViolation by NewSession.
type Option func(*Options)

// Options holds the tunables of a Session.
type Options struct {
	// Strategy selects the distance field builder.
	Strategy field.Strategy

	// Bound is the arrival tolerance: AtDestination is true once the pose's
	// field value is set and strictly below Bound.
	Bound float64

	// IterationLimit caps path walks; exceeding it yields ErrPathNotFound.
	IterationLimit int

	// Logger receives structured records. Defaults to a discarding logger.
	Logger *slog.Logger

	// Tracer opens spans around the heavy operations. Defaults to noop.
	Tracer trace.Tracer

	// Meter receives plan, fallback and path length metrics. Defaults to noop.
	Meter metric.Meter

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - Strategy:       field.Wavefront
//   - Bound:          DefaultBound (4)
//   - IterationLimit: DefaultIterationLimit (10^5)
//   - Logger:         discards everything
//   - Tracer:         noop
//   - Meter:          noop
func DefaultOptions() Options {
	return Options{
		Strategy:       field.Wavefront,
		Bound:          DefaultBound,
		IterationLimit: DefaultIterationLimit,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		Tracer:         noop.NewTracerProvider().Tracer("gridpath/planner"),
		Meter:          metricnoop.NewMeterProvider().Meter("gridpath/planner"),
	}
}

// WithStrategy selects the distance field builder.
// Unknown or unimplemented strategies are reported by ComputeField.
func WithStrategy(s field.Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithBound sets the arrival tolerance.
//
//	b > 0:        use b
//	b <= 0, NaN:  invalid option → ErrOptionViolation
func WithBound(b float64) Option {
	return func(o *Options) {
		if !(b > 0) || math.IsInf(b, 0) {
			o.err = fmt.Errorf("%w: bound must be positive and finite (%v)", ErrOptionViolation, b)
			return
		}
		o.Bound = b
	}
}

// WithIterationLimit caps path walks at n steps; n must be positive.
func WithIterationLimit(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: iteration limit must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.IterationLimit = n
	}
}

// WithLogger sets the structured logger; nil keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithTracer sets the OpenTelemetry tracer; nil keeps the default.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithMeter sets the OpenTelemetry meter; nil keeps the default.
func WithMeter(m metric.Meter) Option {
	return func(o *Options) {
		if m != nil {
			o.Meter = m
		}
	}
}
