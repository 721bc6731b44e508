// Package gridmap defines core types and sentinel errors
// for the occupancy grid used by the planners.
package gridmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrBadSymbol indicates an unknown character in a textual grid.
	ErrBadSymbol = errors.New("gridmap: unknown grid symbol")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridmap: cell out of bounds")
)

// Cell is a discrete grid coordinate. Row grows downwards, Col to the right.
type Cell struct {
	Row, Col int
}

// String renders the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns c shifted by the offset d = {dRow, dCol}.
func (c Cell) Add(d [2]int) Cell {
	return Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
}

// neighborOffsets is the fixed 8-connected enumeration order.
// Orthogonal steps come first, then diagonals.
var neighborOffsets = [8][2]int{
	{-1, 0}, {0, 1}, {1, 0}, {0, -1},
	{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
}

// Grid is an immutable H×W traversability table.
// Rows and Cols define dimensions; open[r*Cols+c] reports whether (r,c) is free.
type Grid struct {
	Rows, Cols int
	open       []bool
}
