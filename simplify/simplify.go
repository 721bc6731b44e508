package simplify

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gridpath/gridmap"
)

var (
	// ErrBadEpsilon indicates a tolerance that is zero, negative or NaN.
	ErrBadEpsilon = errors.New("simplify: epsilon must be positive")

	// ErrShortPath indicates a path with fewer than two points.
	ErrShortPath = errors.New("simplify: path needs at least two points")
)

// span is an inclusive index range still to be examined.
type span struct{ lo, hi int }

// Mask marks which points of pts survive simplification at tolerance epsilon.
// The first and last points are always kept. Among equally distant points the
// lowest index is chosen as the split.
func Mask(pts []Point, epsilon float64) ([]bool, error) {
	if !(epsilon > 0) {
		return nil, fmt.Errorf("%w: got %v", ErrBadEpsilon, epsilon)
	}
	n := len(pts)
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrShortPath, n)
	}

	keep := make([]bool, n)
	for i := range keep {
		keep[i] = true
	}

	stack := []span{{0, n - 1}}
	for len(stack) > 0 {
		sp := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if sp.hi-sp.lo < 2 {
			continue // two points cannot be reduced
		}

		a, b := pts[sp.lo], pts[sp.hi]
		far, farD := sp.lo, math.Inf(-1)
		for i := sp.lo; i <= sp.hi; i++ {
			if d := SegmentDistance(pts[i], a, b); d > farD {
				far, farD = i, d
			}
		}

		if farD > epsilon {
			// right half pushed first so the left half is processed first
			stack = append(stack, span{far, sp.hi}, span{sp.lo, far})
			continue
		}
		for i := sp.lo + 1; i < sp.hi; i++ {
			keep[i] = false
		}
	}

	return keep, nil
}

// Points returns the simplified copy of pts.
func Points(pts []Point, epsilon float64) ([]Point, error) {
	keep, err := Mask(pts, epsilon)
	if err != nil {
		return nil, err
	}
	return filter(pts, keep), nil
}

// Cells simplifies a grid path, treating each cell as the point (Row, Col).
func Cells(path []gridmap.Cell, epsilon float64) ([]gridmap.Cell, error) {
	pts := make([]Point, len(path))
	for i, c := range path {
		pts[i] = Point{X: float64(c.Row), Y: float64(c.Col)}
	}
	keep, err := Mask(pts, epsilon)
	if err != nil {
		return nil, err
	}
	return filter(path, keep), nil
}

func filter[T any](in []T, keep []bool) []T {
	out := make([]T, 0, len(in))
	for i, v := range in {
		if keep[i] {
			out = append(out, v)
		}
	}
	return out
}
