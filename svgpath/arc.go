package svgpath

import "math"

// CenterArc is an elliptical arc in center parameterization.
//
// Its coordinates are expressed in a local frame whose origin is the
// start point of the arc, rotated by Rotation, and whose y axis is
// scaled by Ratio. In this frame, the arc is a circular one, going from
// Angle1 to Angle2, in the direction of increasing angles if Sweep is true.
type CenterArc struct {
	Center   Point
	Radius   float64
	Ratio    float64 // ry / rx
	Rotation float64 // in radians

	Angle1, Angle2 float64
	Sweep          bool
}

// ArcToCenter converts the endpoint parameterization of an elliptical arc,
// as found in path data, to a center one.
// `end` is the end point, relative to the start point, `rotation` is in
// radians, and the radii must be strictly positive.
// Radii too small to join the two points are scaled up.
func ArcToCenter(end Point, rx, ry, rotation float64, large, sweep bool) CenterArc {
	ratio := ry / rx

	// go to the frame where the ellipse is a circle
	p := end.rotate(-rotation)
	p.Y /= ratio
	angle := pointAngle(Point{}, p)
	xe := math.Hypot(p.X, p.Y)

	// in the frame where the end point is on the x axis,
	// the center is on the bisector
	rx = math.Max(rx, xe/2)
	xc := xe / 2
	yc := math.Sqrt(math.Max(0, rx*rx-xc*xc))
	if large == sweep {
		yc = -yc
	}

	e := Point{xe, 0}.rotate(angle)
	c := Point{xc, yc}.rotate(angle)
	return CenterArc{
		Center:   c,
		Radius:   rx,
		Ratio:    ratio,
		Rotation: rotation,
		Angle1:   pointAngle(c, Point{}),
		Angle2:   pointAngle(c, e),
		Sweep:    sweep,
	}
}
