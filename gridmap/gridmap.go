package gridmap

import "fmt"

// New constructs a Grid from a non-empty, rectangular 2D slice of flags.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(cells [][]bool) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	open := make([]bool, 0, h*w)
	for _, row := range cells {
		open = append(open, row...)
	}

	return &Grid{Rows: h, Cols: w, open: open}, nil
}

// FromInts builds a Grid from a 0/1 matrix: non-zero cells are traversable.
func FromInts(values [][]int) (*Grid, error) {
	cells := make([][]bool, len(values))
	for r, row := range values {
		cells[r] = make([]bool, len(row))
		for c, v := range row {
			cells[r][c] = v != 0
		}
	}

	return New(cells)
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Rows && c.Col >= 0 && c.Col < g.Cols
}

// Traversable reports whether c is inside the grid and free.
func (g *Grid) Traversable(c Cell) bool {
	return g.InBounds(c) && g.open[g.Index(c)]
}

// Check returns a wrapped ErrOutOfBounds when c lies outside the grid.
func (g *Grid) Check(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v not in %dx%d", ErrOutOfBounds, c, g.Rows, g.Cols)
	}
	return nil
}

// Neighbors returns the in-bounds 8-neighbours of c in the fixed order
// (-1,0),(0,1),(1,0),(0,-1),(-1,-1),(-1,1),(1,-1),(1,1).
// Obstacles are included; callers decide what a blocked neighbour means.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) []Cell {
	out := make([]Cell, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		n := c.Add(d)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// Index maps c to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) Index(c Cell) int {
	return c.Row*g.Cols + c.Col
}

// Coordinate converts a row-major index back to a Cell.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Cell {
	return Cell{Row: idx / g.Cols, Col: idx % g.Cols}
}

// Len returns the number of cells, Rows*Cols.
func (g *Grid) Len() int {
	return len(g.open)
}
