package planner

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metric names reported through the configured meter.
const (
	MetricPlans     = "gridpath.plans"
	MetricFallbacks = "gridpath.fallbacks"
	MetricPathCells = "gridpath.path.cells"
)

// instruments are created once per session from Options.Meter.
type instruments struct {
	plans     metric.Int64Counter
	fallbacks metric.Int64Counter
	pathCells metric.Int64Histogram
}

func newInstruments(m metric.Meter) (instruments, error) {
	var (
		ins instruments
		err error
	)
	if ins.plans, err = m.Int64Counter(MetricPlans,
		metric.WithDescription("Plan calls by outcome")); err != nil {
		return ins, err
	}
	if ins.fallbacks, err = m.Int64Counter(MetricFallbacks,
		metric.WithDescription("Translations redirected to the nearest reachable cell")); err != nil {
		return ins, err
	}
	if ins.pathCells, err = m.Int64Histogram(MetricPathCells,
		metric.WithDescription("Cells in each dense path"),
		metric.WithUnit("{cell}")); err != nil {
		return ins, err
	}
	return ins, nil
}

func (s *Session) recordPlan(ctx context.Context, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	s.metrics.plans.Add(ctx, 1, metric.WithAttributes(
		attribute.String("strategy", s.opts.Strategy.String()),
		attribute.String("outcome", outcome),
	))
}
