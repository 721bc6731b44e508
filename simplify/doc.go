// Package simplify reduces dense polylines to sparse waypoints with a
// Douglas–Peucker style recursion.
//
// Algorithm Outline:
//  1. Keep both endpoints of the current range [lo, hi].
//  2. Measure every point of the range against the segment lo–hi with
//     SegmentDistance (clamped to the segment, not the infinite line).
//  3. If the farthest point lies more than epsilon away, keep it and process
//     [lo, far] and [far, hi] independently; otherwise drop every interior point.
//
// The recursion runs over index ranges with an explicit stack and writes into a
// single keep mask, so no sub-path is ever copied.
//
// Complexity:
//
//	Time   = O(n log n) typical, O(n²) worst case
//	Memory = O(n) for the mask and stack
//
// Errors:
//   - ErrBadEpsilon epsilon is not a positive number.
//   - ErrShortPath  fewer than two points.
package simplify
