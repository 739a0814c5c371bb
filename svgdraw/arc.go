package svgdraw

import "math"

const maxArcSegments = 1024

// Arc adds a circular arc of center (xc, yc), going from angle1 to
// angle2 in the direction of increasing angles.
// If there is a current point, a line is added from it to
// the start of the arc.
func (c *Context) Arc(xc, yc, radius, angle1, angle2 float64) {
	for angle2 < angle1 {
		angle2 += 2 * math.Pi
	}
	c.arc(xc, yc, radius, angle1, angle2)
}

// ArcNegative adds a circular arc of center (xc, yc), going from angle1 to
// angle2 in the direction of decreasing angles.
func (c *Context) ArcNegative(xc, yc, radius, angle1, angle2 float64) {
	for angle2 > angle1 {
		angle2 -= 2 * math.Pi
	}
	c.arc(xc, yc, radius, angle1, angle2)
}

func (c *Context) arc(xc, yc, radius, angle1, angle2 float64) {
	sin, cos := math.Sincos(angle1)
	x, y := xc+radius*cos, yc+radius*sin
	if c.hasCurrent {
		c.LineTo(x, y)
	} else {
		c.MoveTo(x, y)
	}
	if radius <= 0 || angle1 == angle2 {
		return
	}

	n := c.arcSegments(radius, math.Abs(angle2-angle1))
	step := (angle2 - angle1) / float64(n)
	for i := 0; i < n; i++ {
		cps := approxUnitArc(angle1+float64(i)*step, step)
		c.CurveTo(
			xc+radius*cps[0].X, yc+radius*cps[0].Y,
			xc+radius*cps[1].X, yc+radius*cps[1].Y,
			xc+radius*cps[2].X, yc+radius*cps[2].Y,
		)
	}
}

// arcError returns the maximum radial distance between a unit
// circular arc of the given angle and its cubic approximation.
func arcError(angle float64) float64 {
	s, c := math.Sin(angle/4), math.Cos(angle/4)
	return 4. / 27 * math.Pow(s, 6) / (c * c)
}

// arcSegments returns the number of cubic curves needed to approximate
// the arc while respecting the tolerance, in device space.
func (c *Context) arcSegments(radius, angle float64) int {
	r := radius * c.matrixScale()
	n := int(math.Ceil(angle / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	for n < maxArcSegments && r*arcError(angle/float64(n)) > c.tolerance {
		n *= 2
	}
	return n
}

// approxUnitArc returns the control points and the end point
// of the cubic curve approximating the unit arc starting at angle θ1
// and spanning dθ.
func approxUnitArc(θ1, dθ float64) [3]point {
	a := 4. / 3 * math.Tan(dθ/4)

	sin1, cos1 := math.Sincos(θ1)
	sin2, cos2 := math.Sincos(θ1 + dθ)
	return [3]point{
		{cos1 - sin1*a, sin1 + cos1*a},
		{cos2 + sin2*a, sin2 - cos2*a},
		{cos2, sin2},
	}
}
