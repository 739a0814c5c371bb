package svgdraw

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// exact bounding box of a path, used for clipping
// and to measure marker content

type point struct{ X, Y float64 }

func pointOf(a fixed.Point26_6) point {
	x, y := fixedTof(a)
	return point{x, y}
}

// segment is a Bézier curve of degree 1, 2 or 3
type segment []point

// polynomial coefficients of one coordinate of the derivative,
// as a*t^2 + b*t + c
func (s segment) derivative(coord func(point) float64) (a, b, c float64) {
	switch len(s) {
	case 3:
		p0, p1, p2 := coord(s[0]), coord(s[1]), coord(s[2])
		return 0, 2 * (p2 - 2*p1 + p0), 2 * (p1 - p0)
	case 4:
		p0, p1, p2, p3 := coord(s[0]), coord(s[1]), coord(s[2]), coord(s[3])
		return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
	}
	return 0, 0, 0
}

// criticalPoints returns the times where one of the
// coordinates reaches a local extremum
func (s segment) criticalPoints() []float64 {
	tX := quadraticRoots(s.derivative(func(p point) float64 { return p.X }))
	tY := quadraticRoots(s.derivative(func(p point) float64 { return p.Y }))
	return append(tX, tY...)
}

// evaluate returns the point at time t, using De Casteljau's algorithm
func (s segment) evaluate(t float64) point {
	var tmp [4]point
	n := copy(tmp[:], s)
	for ; n > 1; n-- {
		for i := 0; i < n-1; i++ {
			tmp[i] = point{
				X: (1-t)*tmp[i].X + t*tmp[i+1].X,
				Y: (1-t)*tmp[i].Y + t*tmp[i+1].Y,
			}
		}
	}
	return tmp[0]
}

// roots of at^2 + bt + c, handling the degenerate cases
func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	if d < 0 {
		return nil
	}
	sq := math.Sqrt(d)
	if d == 0 {
		return []float64{-b / (2 * a)}
	}
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

type box struct{ minX, minY, maxX, maxY float64 }

func emptyBox() box {
	return box{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
}

func (b *box) add(p point) {
	b.minX = math.Min(b.minX, p.X)
	b.minY = math.Min(b.minY, p.Y)
	b.maxX = math.Max(b.maxX, p.X)
	b.maxY = math.Max(b.maxY, p.Y)
}

func (b *box) addSegment(s segment) {
	b.add(s[0])
	b.add(s[len(s)-1])
	for _, t := range s.criticalPoints() {
		if 0 < t && t < 1 {
			b.add(s.evaluate(t))
		}
	}
}

func (b box) toFixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: fToFixed(b.minX, b.minY), Max: fToFixed(b.maxX, b.maxY)}
}

// Bounds returns the bounding box of the path,
// or false if the path has no points.
// The box is exact: control points of curves are only
// taken into account through the extrema of the curves.
func (p Path) Bounds() (fixed.Rectangle26_6, bool) {
	if len(p) == 0 {
		return fixed.Rectangle26_6{}, false
	}
	bb := emptyBox()
	var current, start point
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current = pointOf(fixed.Point26_6(op))
			start = current
			bb.add(current)
		case LineTo:
			next := pointOf(fixed.Point26_6(op))
			bb.addSegment(segment{current, next})
			current = next
		case QuadTo:
			next := pointOf(op[1])
			bb.addSegment(segment{current, pointOf(op[0]), next})
			current = next
		case CubicTo:
			next := pointOf(op[2])
			bb.addSegment(segment{current, pointOf(op[0]), pointOf(op[1]), next})
			current = next
		case Close:
			current = start
		}
	}
	return bb.toFixed(), true
}
