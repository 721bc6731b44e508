package planner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/gridpath/field"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/steer"
)

// Sentinel errors for session operations.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to NewSession.
	ErrNilGrid = errors.New("planner: grid is nil")

	// ErrFieldNotComputed is returned by queries that need a distance field
	// before ComputeField has run.
	ErrFieldNotComputed = errors.New("planner: distance field not computed")

	// ErrNoPath is returned by ReducePath before BuildPath has run.
	ErrNoPath = errors.New("planner: no path built")

	// ErrPathNotFound is returned when a path walk exceeds the iteration limit
	// without reaching the destination.
	ErrPathNotFound = errors.New("planner: path not found within iteration limit")
)

// Session is the state of one planning request.
type Session struct {
	id    uuid.UUID
	grid  *gridmap.Grid
	pose  gridmap.Cell
	dest  gridmap.Cell
	opts  Options
	log   *slog.Logger
	field *field.Field
	path  []gridmap.Cell

	metrics instruments
}

// NewSession validates its inputs and returns a Session with no field yet.
// Returns ErrNilGrid, ErrOptionViolation, gridmap.ErrOutOfBounds for a
// start or destination outside the grid, or the meter's instrument error.
func NewSession(g *gridmap.Grid, start, dest gridmap.Cell, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := g.Check(start); err != nil {
		return nil, fmt.Errorf("planner: start: %w", err)
	}
	if err := g.Check(dest); err != nil {
		return nil, fmt.Errorf("planner: destination: %w", err)
	}

	ins, err := newInstruments(o.Meter)
	if err != nil {
		return nil, fmt.Errorf("planner: metrics: %w", err)
	}

	id := uuid.New()
	s := &Session{
		id:      id,
		grid:    g,
		pose:    start,
		dest:    dest,
		opts:    o,
		log:     o.Logger.With(slog.String("session", id.String())),
		metrics: ins,
	}
	if !g.Connected(start, dest) {
		s.log.Warn("start and destination are not in the same free region",
			slog.String("start", start.String()), slog.String("destination", dest.String()))
	}

	return s, nil
}

// ID returns the session identifier attached to logs and spans.
func (s *Session) ID() uuid.UUID { return s.id }

// Grid returns the occupancy grid.
func (s *Session) Grid() *gridmap.Grid { return s.grid }

// Pose returns the agent's current cell.
func (s *Session) Pose() gridmap.Cell { return s.pose }

// Destination returns the target cell.
func (s *Session) Destination() gridmap.Cell { return s.dest }

// Strategy returns the configured field strategy.
func (s *Session) Strategy() field.Strategy { return s.opts.Strategy }

// Bound returns the arrival tolerance.
func (s *Session) Bound() float64 { return s.opts.Bound }

// Field returns the current distance field, or nil before ComputeField.
func (s *Session) Field() *field.Field { return s.field }

// Path returns a copy of the last built or reduced path.
func (s *Session) Path() []gridmap.Cell {
	return append([]gridmap.Cell(nil), s.path...)
}

// UpdatePose moves the agent. The field is kept; the path is not replanned.
func (s *Session) UpdatePose(c gridmap.Cell) error {
	if err := s.grid.Check(c); err != nil {
		return err
	}
	s.pose = c
	return nil
}

// SetDestination retargets the session and drops the field and the path.
func (s *Session) SetDestination(c gridmap.Cell) error {
	if err := s.grid.Check(c); err != nil {
		return err
	}
	s.dest = c
	s.field = nil
	s.path = nil
	s.log.Debug("destination changed", slog.String("destination", c.String()))
	return nil
}

// ComputeField (re)builds the distance field towards the destination,
// fully replacing any previous field and dropping the path.
func (s *Session) ComputeField(ctx context.Context) error {
	_, span := s.startSpan(ctx, "planner.ComputeField",
		attribute.String("strategy", s.opts.Strategy.String()),
		attribute.Int("rows", s.grid.Rows),
		attribute.Int("cols", s.grid.Cols),
	)
	defer span.End()

	f, err := field.Build(s.grid, s.dest, s.opts.Strategy)
	if err != nil {
		return fail(span, err)
	}
	s.field = f
	s.path = nil

	span.SetAttributes(attribute.Int("reached", f.Reached()))
	s.log.Debug("distance field built",
		slog.String("strategy", s.opts.Strategy.String()),
		slog.Int("reached", f.Reached()),
		slog.Bool("pose_reachable", f.IsSet(s.pose)),
	)
	return nil
}

// NextStep returns the cell the agent should move to from its pose.
func (s *Session) NextStep() (gridmap.Cell, error) {
	return s.NextFrom(s.pose)
}

// NextFrom returns the greedy descent step from an arbitrary cell.
func (s *Session) NextFrom(node gridmap.Cell) (gridmap.Cell, error) {
	if s.field == nil {
		return gridmap.Cell{}, ErrFieldNotComputed
	}
	return steer.Next(s.grid, s.field, node)
}

// Translation returns the unit steering vector from the pose. A nil node
// targets NextStep(); when both pose and target are unreachable the nearest
// reachable cell is used instead.
func (s *Session) Translation(node *gridmap.Cell) (steer.Step, error) {
	if s.field == nil {
		return steer.Step{}, ErrFieldNotComputed
	}
	var target gridmap.Cell
	if node != nil {
		target = *node
	} else {
		next, err := s.NextStep()
		if err != nil {
			return steer.Step{}, err
		}
		target = next
	}

	step, err := steer.Translate(s.grid, s.field, s.pose, target)
	if err != nil {
		return steer.Step{}, err
	}
	if step.Fallback {
		s.metrics.fallbacks.Add(context.Background(), 1)
		s.log.Warn("pose outside reachable region, steering to nearest reachable cell",
			slog.String("pose", s.pose.String()),
			slog.String("target", step.Target.String()),
		)
	}
	return step, nil
}

// AtDestination reports whether the pose's field value is set and strictly
// below the bound. It is a proximity test, not cell equality.
func (s *Session) AtDestination() (bool, error) {
	if s.field == nil {
		return false, ErrFieldNotComputed
	}
	return s.field.IsSet(s.pose) && s.field.At(s.pose) < s.opts.Bound, nil
}

// startSpan opens a span tagged with the session id.
func (s *Session) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}
	attrs = append(attrs, attribute.String("session", s.id.String()))
	return s.opts.Tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// fail records err on span and returns it unchanged.
func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
