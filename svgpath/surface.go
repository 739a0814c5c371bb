package svgpath

// Surface is a vector drawing context, with a current point
// and a transformation stack, on which path data is drawn.
// Coordinates are expressed in the current user space.
// See svgdraw.Context for an implementation.
type Surface interface {
	HasCurrentPoint() bool
	CurrentPoint() (x, y float64)

	MoveTo(x, y float64)
	RelMoveTo(dx, dy float64)
	LineTo(x, y float64)
	RelLineTo(dx, dy float64)
	CurveTo(x1, y1, x2, y2, x3, y3 float64)
	RelCurveTo(dx1, dy1, dx2, dy2, dx3, dy3 float64)

	// Arc adds a circular arc of center (xc, yc) going in the direction
	// of increasing angles from angle1 to angle2.
	Arc(xc, yc, radius, angle1, angle2 float64)
	// ArcNegative is the same as Arc, but going in the direction
	// of decreasing angles.
	ArcNegative(xc, yc, radius, angle1, angle2 float64)

	ClosePath()

	Save()
	Restore()
	Translate(tx, ty float64)
	Rotate(angle float64)
	Scale(sx, sy float64)

	// SetTolerance sets the maximum error allowed when
	// approximating curves.
	SetTolerance(tolerance float64)
}
