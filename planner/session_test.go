package planner_test

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/field"
	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/planner"
	"github.com/katalvlaran/gridpath/steer"
)

// corridor is an L-shaped free strip: along row 0, then down column 5.
var corridor = []string{
	"......",
	"#####.",
	"#####.",
	"#####.",
}

// pocket seals the destination (0,0) away from everything else.
var pocket = []string{
	".##",
	"###",
	"...",
}

func mustGrid(t *testing.T, rows ...string) *gridmap.Grid {
	t.Helper()
	g, err := gridmap.Parse(rows)
	require.NoError(t, err)
	return g
}

func open(n int) []string {
	rows := make([]string, n)
	for i := range rows {
		b := make([]byte, n)
		for j := range b {
			b[j] = '.'
		}
		rows[i] = string(b)
	}
	return rows
}

// newSession builds a session and its field.
func newSession(t *testing.T, rows []string, start, dest gridmap.Cell, opts ...planner.Option) *planner.Session {
	t.Helper()
	s, err := planner.NewSession(mustGrid(t, rows...), start, dest, opts...)
	require.NoError(t, err)
	require.NoError(t, s.ComputeField(context.Background()))
	return s
}

//----------------------------------------------------------------------------//
// Construction and options
//----------------------------------------------------------------------------//

func TestNewSession_Errors(t *testing.T) {
	g := mustGrid(t, open(3)...)

	_, err := planner.NewSession(nil, gridmap.Cell{}, gridmap.Cell{})
	assert.ErrorIs(t, err, planner.ErrNilGrid)

	_, err = planner.NewSession(g, gridmap.Cell{Row: 3}, gridmap.Cell{})
	assert.ErrorIs(t, err, gridmap.ErrOutOfBounds)

	_, err = planner.NewSession(g, gridmap.Cell{}, gridmap.Cell{Col: -1})
	assert.ErrorIs(t, err, gridmap.ErrOutOfBounds)

	for name, opt := range map[string]planner.Option{
		"ZeroBound":     planner.WithBound(0),
		"NaNBound":      planner.WithBound(math.NaN()),
		"InfBound":      planner.WithBound(math.Inf(1)),
		"ZeroIteration": planner.WithIterationLimit(0),
	} {
		_, err = planner.NewSession(g, gridmap.Cell{}, gridmap.Cell{}, opt)
		assert.ErrorIs(t, err, planner.ErrOptionViolation, name)
	}
}

func TestNewSession_Defaults(t *testing.T) {
	s, err := planner.NewSession(mustGrid(t, open(3)...), gridmap.Cell{}, gridmap.Cell{Row: 2, Col: 2})
	require.NoError(t, err)

	assert.Equal(t, field.Wavefront, s.Strategy())
	assert.Equal(t, planner.DefaultBound, s.Bound())
	assert.Nil(t, s.Field())
	assert.Empty(t, s.Path())
	assert.NotEqual(t, [16]byte{}, [16]byte(s.ID()))
}

// TestSession_RequiresField: every query needs ComputeField first.
func TestSession_RequiresField(t *testing.T) {
	s, err := planner.NewSession(mustGrid(t, open(3)...), gridmap.Cell{}, gridmap.Cell{Row: 2, Col: 2})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = s.NextStep()
	assert.ErrorIs(t, err, planner.ErrFieldNotComputed)
	_, err = s.BuildPath(ctx)
	assert.ErrorIs(t, err, planner.ErrFieldNotComputed)
	_, err = s.Translation(nil)
	assert.ErrorIs(t, err, planner.ErrFieldNotComputed)
	_, err = s.AtDestination()
	assert.ErrorIs(t, err, planner.ErrFieldNotComputed)
	_, err = s.FollowNaive(1)
	assert.ErrorIs(t, err, planner.ErrFieldNotComputed)
	_, err = s.ReducePath(ctx, 1)
	assert.ErrorIs(t, err, planner.ErrNoPath)
}

func TestComputeField_Errors(t *testing.T) {
	g := mustGrid(t, ".#", "..")

	s, err := planner.NewSession(g, gridmap.Cell{}, gridmap.Cell{Row: 0, Col: 1})
	require.NoError(t, err)
	assert.ErrorIs(t, s.ComputeField(context.Background()), field.ErrBlockedDestination)

	s, err = planner.NewSession(g, gridmap.Cell{}, gridmap.Cell{Row: 1, Col: 1}, planner.WithStrategy(field.AStar))
	require.NoError(t, err)
	assert.ErrorIs(t, s.ComputeField(context.Background()), field.ErrStrategyNotImplemented)
	assert.Nil(t, s.Field())
}

//----------------------------------------------------------------------------//
// Pose and destination updates
//----------------------------------------------------------------------------//

func TestUpdatePose(t *testing.T) {
	s := newSession(t, open(5), gridmap.Cell{}, gridmap.Cell{Row: 4, Col: 4})

	require.NoError(t, s.UpdatePose(gridmap.Cell{Row: 3, Col: 3}))
	assert.Equal(t, gridmap.Cell{Row: 3, Col: 3}, s.Pose())
	assert.NotNil(t, s.Field(), "pose updates keep the field")

	assert.ErrorIs(t, s.UpdatePose(gridmap.Cell{Row: 5}), gridmap.ErrOutOfBounds)
	assert.Equal(t, gridmap.Cell{Row: 3, Col: 3}, s.Pose())
}

func TestSetDestination_DropsFieldAndPath(t *testing.T) {
	s := newSession(t, open(5), gridmap.Cell{}, gridmap.Cell{Row: 4, Col: 4})
	_, err := s.BuildPath(context.Background())
	require.NoError(t, err)

	require.NoError(t, s.SetDestination(gridmap.Cell{Row: 0, Col: 4}))
	assert.Equal(t, gridmap.Cell{Row: 0, Col: 4}, s.Destination())
	assert.Nil(t, s.Field())
	assert.Empty(t, s.Path())

	assert.ErrorIs(t, s.SetDestination(gridmap.Cell{Col: 9}), gridmap.ErrOutOfBounds)
}

//----------------------------------------------------------------------------//
// Arrival
//----------------------------------------------------------------------------//

// TestAtDestination uses a straight strip whose field equals the column index.
func TestAtDestination(t *testing.T) {
	s := newSession(t, []string{"......#."}, gridmap.Cell{Row: 0, Col: 3}, gridmap.Cell{})

	ok, err := s.AtDestination()
	require.NoError(t, err)
	assert.True(t, ok, "value 3 < bound 4")

	require.NoError(t, s.UpdatePose(gridmap.Cell{Row: 0, Col: 5}))
	ok, err = s.AtDestination()
	require.NoError(t, err)
	assert.False(t, ok, "value 5 >= bound 4")

	require.NoError(t, s.UpdatePose(gridmap.Cell{Row: 0, Col: 7}))
	ok, err = s.AtDestination()
	require.NoError(t, err)
	assert.False(t, ok, "unset pose is never arrived")

	require.NoError(t, s.UpdatePose(gridmap.Cell{Row: 0, Col: 4}))
	ok, err = s.AtDestination()
	require.NoError(t, err)
	assert.False(t, ok, "bound is strict")
}

//----------------------------------------------------------------------------//
// Steering
//----------------------------------------------------------------------------//

func TestNextStep(t *testing.T) {
	s := newSession(t, open(5), gridmap.Cell{}, gridmap.Cell{Row: 4, Col: 4}, planner.WithStrategy(field.Exact))
	assert.InDelta(t, 4*math.Sqrt2, s.Field().At(gridmap.Cell{}), 1e-9)

	next, err := s.NextStep()
	require.NoError(t, err)
	assert.Equal(t, gridmap.Cell{Row: 1, Col: 1}, next)
}

func TestTranslation(t *testing.T) {
	s := newSession(t, corridor, gridmap.Cell{}, gridmap.Cell{Row: 3, Col: 5})

	step, err := s.Translation(nil)
	require.NoError(t, err)
	assert.Equal(t, gridmap.Cell{Row: 0, Col: 1}, step.Target)
	assert.Equal(t, steer.Vec2{Row: 0, Col: 1}, step.Vector)

	target := gridmap.Cell{Row: 3, Col: 0}
	step, err = s.Translation(&target)
	require.NoError(t, err)
	assert.Equal(t, steer.Vec2{Row: 1, Col: 0}, step.Vector)

	self := s.Pose()
	step, err = s.Translation(&self)
	require.NoError(t, err)
	assert.Equal(t, steer.Vec2{}, step.Vector)
}

// TestTranslation_FallbackLogs checks the fallback substitution and its warning.
func TestTranslation_FallbackLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := newSession(t, pocket, gridmap.Cell{Row: 2, Col: 2}, gridmap.Cell{}, planner.WithLogger(logger))

	step, err := s.Translation(nil)
	require.NoError(t, err)
	assert.True(t, step.Fallback)
	assert.Equal(t, gridmap.Cell{}, step.Target)

	out := buf.String()
	assert.Contains(t, out, "not in the same free region")
	assert.Contains(t, out, "steering to nearest reachable cell")
	assert.Contains(t, out, "session="+s.ID().String())
}
