package simplify

import "math"

// Point is a location in the plane. Grid cells map to X=Row, Y=Col.
type Point struct {
	X, Y float64
}

// SegmentDistance returns the Euclidean distance from p to the segment a–b.
//
// When a == b the segment is a point and the result is ‖p−a‖. Otherwise, with
// the unit tangent d = (b−a)/‖b−a‖:
//
//	s = (a−p)·d        overshoot before a
//	t = (p−b)·d        overshoot past b
//	h = max(s, t, 0)   clamped parallel component
//	c = (p−a)×d        perpendicular component
//
// and the distance is hypot(h, c).
func SegmentDistance(p, a, b Point) float64 {
	if a == b {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	l := math.Hypot(b.X-a.X, b.Y-a.Y)
	dx, dy := (b.X-a.X)/l, (b.Y-a.Y)/l

	s := (a.X-p.X)*dx + (a.Y-p.Y)*dy
	t := (p.X-b.X)*dx + (p.Y-b.Y)*dy
	h := max(s, t, 0)
	c := (p.X-a.X)*dy - (p.Y-a.Y)*dx

	return math.Hypot(h, c)
}
