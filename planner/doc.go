// Package planner orchestrates one planning session: it owns the grid, the
// agent's pose and destination, the distance field and the last planned path.
//
// A Session is the single entry point a motion-control loop talks to:
//
//	s, err := planner.NewSession(grid, start, dest, planner.WithBound(2))
//	if err != nil { ... }
//	waypoints, err := s.Plan(ctx, 0.5)     // field → dense path → waypoints
//	step, err := s.Translation(nil)        // or steer one cell at a time
//	done, err := s.AtDestination()
//
// Lifecycle:
//
//   - ComputeField must run (directly or via Plan) before NextStep, BuildPath,
//     Translation, FollowNaive or AtDestination; otherwise ErrFieldNotComputed.
//   - UpdatePose moves the agent and keeps the field.
//   - SetDestination drops the field and the path.
//   - A field made stale by editing the map outside the session is the
//     caller's problem; the session cannot detect it.
//
// Observability:
//
//   - WithLogger attaches a *slog.Logger; every record carries the session id.
//   - WithTracer attaches an OpenTelemetry tracer; ComputeField, BuildPath,
//     ReducePath and Plan each open a span.
//   - WithMeter attaches an OpenTelemetry meter for plan outcomes, fallback
//     use and dense path length.
//
// A Session is not safe for concurrent use.
package planner
