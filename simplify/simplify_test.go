package simplify_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridmap"
	"github.com/katalvlaran/gridpath/simplify"
)

// uPath walks down the right side of a 5×5 square and back along the bottom:
// (0,0)→(0,4)→(4,4)→(4,0), one cell per step.
func uPath() []gridmap.Cell {
	var p []gridmap.Cell
	for c := 0; c <= 4; c++ {
		p = append(p, gridmap.Cell{Row: 0, Col: c})
	}
	for r := 1; r <= 4; r++ {
		p = append(p, gridmap.Cell{Row: r, Col: 4})
	}
	for c := 3; c >= 0; c-- {
		p = append(p, gridmap.Cell{Row: 4, Col: c})
	}
	return p
}

// lPath is the corner example: down the first column, then right.
var lPath = []gridmap.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 1}, {Row: 2, Col: 2}}

//----------------------------------------------------------------------------//
// SegmentDistance
//----------------------------------------------------------------------------//

func TestSegmentDistance(t *testing.T) {
	a, b := simplify.Point{X: 0, Y: 0}, simplify.Point{X: 4, Y: 0}
	cases := []struct {
		name string
		p    simplify.Point
		want float64
	}{
		{"Perpendicular", simplify.Point{X: 2, Y: 3}, 3},
		{"OnSegment", simplify.Point{X: 1, Y: 0}, 0},
		{"PastB", simplify.Point{X: 7, Y: 4}, 5},
		{"BeforeA", simplify.Point{X: -3, Y: -4}, 5},
		{"Endpoint", b, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, simplify.SegmentDistance(tc.p, a, b), 1e-12)
		})
	}
}

// TestSegmentDistance_Degenerate: a == b falls back to point distance.
func TestSegmentDistance_Degenerate(t *testing.T) {
	a := simplify.Point{X: 1, Y: 1}
	assert.Equal(t, 5.0, simplify.SegmentDistance(simplify.Point{X: 4, Y: 5}, a, a))
	assert.Equal(t, 0.0, simplify.SegmentDistance(a, a, a))
}

//----------------------------------------------------------------------------//
// Mask / Cells
//----------------------------------------------------------------------------//

func TestMask_Errors(t *testing.T) {
	two := []simplify.Point{{X: 0}, {X: 1}}
	for _, eps := range []float64{0, -1, math.NaN()} {
		_, err := simplify.Mask(two, eps)
		assert.ErrorIs(t, err, simplify.ErrBadEpsilon, "eps=%v", eps)
	}
	_, err := simplify.Mask(two[:1], 1)
	assert.ErrorIs(t, err, simplify.ErrShortPath)
	_, err = simplify.Cells(nil, 1)
	assert.ErrorIs(t, err, simplify.ErrShortPath)
}

func TestCells_Corner(t *testing.T) {
	got, err := simplify.Cells(lPath, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []gridmap.Cell{{Row: 0, Col: 0}, {Row: 2, Col: 0}, {Row: 2, Col: 2}}, got)
}

func TestCells_U(t *testing.T) {
	got, err := simplify.Cells(uPath(), 0.5)
	require.NoError(t, err)
	assert.Equal(t, []gridmap.Cell{{Row: 0, Col: 0}, {Row: 0, Col: 4}, {Row: 4, Col: 4}, {Row: 4, Col: 0}}, got)
}

// TestCells_TwoPoints returns the input untouched.
func TestCells_TwoPoints(t *testing.T) {
	in := []gridmap.Cell{{Row: 0, Col: 0}, {Row: 5, Col: 5}}
	got, err := simplify.Cells(in, 0.1)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

// TestCells_LargeEpsilon collapses to the endpoints once epsilon exceeds the
// largest deviation (4 for the U path).
func TestCells_LargeEpsilon(t *testing.T) {
	got, err := simplify.Cells(uPath(), 4.5)
	require.NoError(t, err)
	assert.Equal(t, []gridmap.Cell{{Row: 0, Col: 0}, {Row: 4, Col: 0}}, got)
}

func TestCells_KeepsEndpointsAndOrder(t *testing.T) {
	for _, eps := range []float64{0.1, 0.5, 1, 2, 3.9, 100} {
		in := uPath()
		got, err := simplify.Cells(in, eps)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(got), 2)
		assert.Equal(t, in[0], got[0], "eps=%v", eps)
		assert.Equal(t, in[len(in)-1], got[len(got)-1], "eps=%v", eps)

		// result is a subsequence of the input
		j := 0
		for _, c := range in {
			if j < len(got) && c == got[j] {
				j++
			}
		}
		assert.Equal(t, len(got), j, "eps=%v: not an ordered subset", eps)
	}
}

func TestCells_Idempotent(t *testing.T) {
	for _, in := range [][]gridmap.Cell{lPath, uPath()} {
		for _, eps := range []float64{0.5, 1, 3} {
			once, err := simplify.Cells(in, eps)
			require.NoError(t, err)
			twice, err := simplify.Cells(once, eps)
			require.NoError(t, err)
			assert.Equal(t, once, twice, "eps=%v", eps)
		}
	}
}

// TestMask_ClosedLoop exercises the zero-length reference segment: first and
// last points coincide, so distances are measured to that single point.
func TestMask_ClosedLoop(t *testing.T) {
	loop := []simplify.Point{{X: 0, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 2}, {X: 0, Y: 0}}

	keep, err := simplify.Mask(loop, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true, true, true}, keep)

	got, err := simplify.Points(loop, 3)
	require.NoError(t, err)
	assert.Equal(t, []simplify.Point{{X: 0, Y: 0}, {X: 0, Y: 0}}, got)
}
