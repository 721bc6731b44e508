package steer

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/field"
	"github.com/katalvlaran/gridpath/gridmap"
)

// Sentinel errors for steering queries.
var (
	// ErrNoNeighbors indicates a node with no in-bounds neighbour.
	ErrNoNeighbors = errors.New("steer: node has no neighbours")

	// ErrNoReachableCell indicates that no cell of the grid has a set field value.
	ErrNoReachableCell = errors.New("steer: no reachable cell found")

	// ErrShapeMismatch indicates a field and grid of different dimensions.
	ErrShapeMismatch = errors.New("steer: field does not match grid")
)

// Vec2 is a displacement in grid units, Row first like gridmap.Cell.
type Vec2 struct {
	Row, Col float64
}

// Norm returns the Euclidean length of v.
func (v Vec2) Norm() float64 {
	return math.Hypot(v.Row, v.Col)
}

// String renders v with four decimals.
func (v Vec2) String() string {
	return fmt.Sprintf("(%.4f,%.4f)", v.Row, v.Col)
}

// Step is a steering decision: the target cell, the unit vector towards it
// and whether the target came from the fallback search.
type Step struct {
	Target   gridmap.Cell
	Vector   Vec2
	Fallback bool
}

// checkShape guards against a field built for another grid.
func checkShape(g *gridmap.Grid, f *field.Field) error {
	if g.Rows != f.Rows || g.Cols != f.Cols {
		return fmt.Errorf("%w: field %dx%d, grid %dx%d", ErrShapeMismatch, f.Rows, f.Cols, g.Rows, g.Cols)
	}
	return nil
}
