package svgpath

import "math"

// Point is a position in user space.
type Point struct{ X, Y float64 }

func (p Point) add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

func (p Point) sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

func (p Point) scale(f float64) Point { return Point{p.X * f, p.Y * f} }

// rotate returns p rotated by angle (in radians) around the origin.
func (p Point) rotate(angle float64) Point {
	sin, cos := math.Sincos(angle)
	return Point{p.X*cos - p.Y*sin, p.X*sin + p.Y*cos}
}

// pointAngle returns the angle of the vector going from p1 to p2,
// in ]-π, π].
func pointAngle(p1, p2 Point) float64 {
	return math.Atan2(p2.Y-p1.Y, p2.X-p1.X)
}

// quadraticPoints elevates the quadratic Bézier curve (p1, c, p3) to
// the two control points of the equivalent cubic curve.
func quadraticPoints(p1, c, p3 Point) (Point, Point) {
	q1 := p1.scale(1. / 3).add(c.scale(2. / 3))
	q2 := c.scale(2. / 3).add(p3.scale(1. / 3))
	return q1, q2
}
