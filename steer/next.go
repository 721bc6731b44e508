package steer

import (
	"fmt"

	"github.com/katalvlaran/gridpath/field"
	"github.com/katalvlaran/gridpath/gridmap"
)

// Next returns the neighbour of node with the smallest field value.
// See the package documentation for the exact tie and Unset rules.
func Next(g *gridmap.Grid, f *field.Field, node gridmap.Cell) (gridmap.Cell, error) {
	if err := checkShape(g, f); err != nil {
		return gridmap.Cell{}, err
	}
	if err := g.Check(node); err != nil {
		return gridmap.Cell{}, err
	}

	adj := g.Neighbors(node)
	if len(adj) == 0 {
		return gridmap.Cell{}, fmt.Errorf("%w: %v", ErrNoNeighbors, node)
	}
	best := adj[0]
	for _, c := range adj {
		if !f.IsSet(best) || f.Less(c, best) {
			best = c
		}
	}

	return best, nil
}
