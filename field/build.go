package field

import (
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridmap"
)

// Build computes the distance field of g towards dest using strategy s.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. dest must lie inside g (gridmap.ErrOutOfBounds).
//  3. dest must be traversable (ErrBlockedDestination).
//  4. s must be a known, implemented Strategy
//     (ErrUnknownStrategy, ErrStrategyNotImplemented).
//
// The returned Field is complete; nothing in this module updates it in place.
func Build(g *gridmap.Grid, dest gridmap.Cell, s Strategy) (*Field, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.Check(dest); err != nil {
		return nil, err
	}
	if !g.Traversable(dest) {
		return nil, fmt.Errorf("%w: %v", ErrBlockedDestination, dest)
	}

	switch s {
	case Wavefront:
		return buildWavefront(g, dest), nil
	case Exact:
		return buildExact(g, dest), nil
	case AStar:
		return nil, fmt.Errorf("%w: %v", ErrStrategyNotImplemented, s)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownStrategy, s)
	}
}

// stepCost is the Euclidean length of a move between 8-neighbours.
func stepCost(a, b gridmap.Cell) float64 {
	dr, dc := a.Row-b.Row, a.Col-b.Col
	if dr != 0 && dc != 0 {
		return math.Sqrt2
	}
	return 1
}
