// Package steer turns a distance field into motion decisions: which cell to
// step to next, where to go when the agent has left the reachable region, and
// the unit direction vector a motion controller should follow.
//
// All functions are read-only over a *field.Field and its *gridmap.Grid.
//
// Selection rule (Next):
//
//	Neighbours are scanned in gridmap order. A candidate replaces the current
//	best when the best is Unset, or when the candidate is set and strictly
//	cheaper. Any set value beats Unset; equal values keep the first seen. If
//	every neighbour is Unset the last one scanned is returned.
//
// Errors:
//
//   - ErrNoNeighbors      the node has no in-bounds neighbour (1×1 grid).
//   - ErrNoReachableCell  the fallback search exhausted the grid.
//   - ErrShapeMismatch    the field was not built from the given grid.
package steer
