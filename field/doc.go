// Package field computes distance fields over a gridmap.Grid: for every
// traversable cell, the accumulated step cost of a path to one destination.
//
// Overview:
//
//   - A Field stores one float64 per cell. Unset (-1) marks cells that were
//     never reached: obstacles and regions disconnected from the destination.
//   - The destination holds 0. Step cost between 8-neighbours is the Euclidean
//     distance of the move: 1 orthogonally, √2 diagonally.
//   - The Field is written once by Build and is read-only afterwards.
//
// Strategies:
//
//   - Wavefront (default): layer-by-layer frontier expansion. Each cell is
//     assigned the first time any frontier cell touches it, and the destination's
//     ring is seeded with cost 1 even on diagonals. This is an approximation of
//     Dijkstra that planners built on this package rely on; it is not a bug.
//   - Exact: priority-queue Dijkstra with the same step costs and no seeding
//     approximation. Values are true shortest costs.
//   - AStar: reserved. Build returns ErrStrategyNotImplemented.
//
// Complexity:
//
//   - Wavefront: O(W×H×8) time, O(W×H) memory.
//   - Exact:     O(W×H×8 · log(W×H)) time, O(W×H) memory (lazy decrease-key heap).
//
// Errors (sentinel):
//
//   - ErrNilGrid                 if the grid pointer is nil.
//   - ErrBlockedDestination      if the destination is an obstacle.
//   - ErrUnknownStrategy         if the Strategy value is not one of the constants.
//   - ErrStrategyNotImplemented  for AStar.
//   - gridmap.ErrOutOfBounds     if the destination lies outside the grid.
//
// Example usage:
//
//	f, err := field.Build(grid, gridmap.Cell{Row: 4, Col: 4}, field.Wavefront)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(f.At(gridmap.Cell{}))
package field
