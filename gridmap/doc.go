// Package gridmap treats a 2D occupancy grid as an 8-connected graph of cells,
// the input every planner in this module works on.
//
// What:
//
//   - Grid wraps a rectangular table of traversability flags (true = free).
//   - Neighbors enumerates the in-bounds 8-neighbours of a cell in a fixed order.
//   - Components labels connected regions of traversable cells.
//   - Parse and FromInts build a Grid from text rows or 0/1 matrices.
//
// Neighbour order:
//
//	(-1,0) (0,1) (1,0) (0,-1) (-1,-1) (-1,1) (1,-1) (1,1)
//
// The order is part of the contract: planners break ties by it.
//
// Complexity:
//
//   - New, Parse, FromInts: O(W×H) time and memory (inputs are deep-copied).
//   - Neighbors:            O(1).
//   - Components:           O(W×H×8), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadSymbol: Parse met a character that is neither free nor blocked.
//   - ErrOutOfBounds: a cell lies outside the grid.
package gridmap
