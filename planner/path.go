package planner

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/simplify"
	"github.com/katalvlaran/gridpath/steer"
)

// BuildPath walks NextStep from the pose until the destination, returning
// every visited cell, destination included. The walk fails with
// ErrPathNotFound after IterationLimit steps; nothing partial is returned.
// ctx is checked between steps.
func (s *Session) BuildPath(ctx context.Context) ([]gridmap.Cell, error) {
	ctx, span := s.startSpan(ctx, "planner.BuildPath",
		attribute.String("start", s.pose.String()),
		attribute.String("destination", s.dest.String()),
	)
	defer span.End()

	if s.field == nil {
		return nil, fail(span, ErrFieldNotComputed)
	}

	path := make([]gridmap.Cell, 0, 64)
	cur := s.pose
	for i := 0; cur != s.dest; i++ {
		if i >= s.opts.IterationLimit {
			err := fmt.Errorf("%w: %d steps from %v", ErrPathNotFound, i, s.pose)
			s.log.Warn("path walk hit iteration limit", slog.Int("limit", s.opts.IterationLimit))
			return nil, fail(span, err)
		}
		if err := ctx.Err(); err != nil {
			return nil, fail(span, err)
		}
		path = append(path, cur)
		next, err := steer.Next(s.grid, s.field, cur)
		if err != nil {
			return nil, fail(span, err)
		}
		cur = next
	}
	path = append(path, s.dest)
	s.path = path
	s.metrics.pathCells.Record(ctx, int64(len(path)))

	span.SetAttributes(attribute.Int("cells", len(path)))
	s.log.Debug("dense path built", slog.Int("cells", len(path)))
	return s.Path(), nil
}

// ReducePath simplifies the last built path at tolerance epsilon and stores
// the result as the session path.
func (s *Session) ReducePath(ctx context.Context, epsilon float64) ([]gridmap.Cell, error) {
	_, span := s.startSpan(ctx, "planner.ReducePath", attribute.Float64("epsilon", epsilon))
	defer span.End()

	if s.path == nil {
		return nil, fail(span, ErrNoPath)
	}
	reduced, err := simplify.Cells(s.path, epsilon)
	if err != nil {
		return nil, fail(span, err)
	}

	span.SetAttributes(attribute.Int("before", len(s.path)), attribute.Int("after", len(reduced)))
	s.log.Debug("path reduced", slog.Int("before", len(s.path)), slog.Int("after", len(reduced)))
	s.path = reduced
	return s.Path(), nil
}

// Plan runs the whole pipeline: ComputeField (if no field yet), BuildPath and
// ReducePath. A path of one cell (pose already on the destination) is returned
// as is, since there is nothing to reduce.
func (s *Session) Plan(ctx context.Context, epsilon float64) (_ []gridmap.Cell, err error) {
	ctx, span := s.startSpan(ctx, "planner.Plan", attribute.Float64("epsilon", epsilon))
	defer span.End()
	defer func() { s.recordPlan(ctx, err) }()

	if !(epsilon > 0) {
		return nil, fail(span, fmt.Errorf("%w: got %v", simplify.ErrBadEpsilon, epsilon))
	}
	if s.field == nil {
		if err := s.ComputeField(ctx); err != nil {
			return nil, fail(span, err)
		}
	}
	dense, err := s.BuildPath(ctx)
	if err != nil {
		return nil, fail(span, err)
	}
	if len(dense) < 2 {
		return dense, nil
	}
	out, err := s.ReducePath(ctx, epsilon)
	if err != nil {
		return nil, fail(span, err)
	}

	s.log.Info("plan ready",
		slog.String("start", s.pose.String()),
		slog.String("destination", s.dest.String()),
		slog.Int("dense", len(dense)),
		slog.Int("waypoints", len(out)),
	)
	return out, nil
}
