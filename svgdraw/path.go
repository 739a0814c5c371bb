package svgdraw

import (
	"fmt"
	"strings"

	"golang.org/x/image/math/fixed"
)

// This file defines the basic path structure, recorded
// by a Context in device space.

// Operation groups the different path commands
type Operation interface {
	// add itself on the drawer `d`
	drawTo(d Drawer)
	// endPoint returns the current point after the operation,
	// which is meaningless for Close
	endPoint() fixed.Point26_6
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type QuadTo [2]fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

// starts a new path at the given point.
func (op MoveTo) drawTo(d Drawer) {
	d.Stop(false) // implicit close if currently in path.
	d.Start(fixed.Point26_6(op))
}

// draw a line
func (op LineTo) drawTo(d Drawer) { d.Line(fixed.Point26_6(op)) }

// draw a quadratic bezier curve
func (op QuadTo) drawTo(d Drawer) { d.QuadBezier(op[0], op[1]) }

// draw a cubic bezier curve
func (op CubicTo) drawTo(d Drawer) { d.CubeBezier(op[0], op[1], op[2]) }

func (op Close) drawTo(d Drawer) { d.Stop(true) }

func (op MoveTo) endPoint() fixed.Point26_6  { return fixed.Point26_6(op) }
func (op LineTo) endPoint() fixed.Point26_6  { return fixed.Point26_6(op) }
func (op QuadTo) endPoint() fixed.Point26_6  { return op[1] }
func (op CubicTo) endPoint() fixed.Point26_6 { return op[2] }
func (op Close) endPoint() fixed.Point26_6   { return fixed.Point26_6{} }

// Path describes a sequence of basic path operations, which should not be nil.
type Path []Operation

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func fToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = fmt.Sprintf("M%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case LineTo:
			chunks[i] = fmt.Sprintf("L%4.3f,%4.3f", float32(op.X)/64, float32(op.Y)/64)
		case QuadTo:
			chunks[i] = fmt.Sprintf("Q%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%4.3f,%4.3f,%4.3f,%4.3f,%4.3f,%4.3f", float32(op[0].X)/64, float32(op[0].Y)/64,
				float32(op[1].X)/64, float32(op[1].Y)/64, float32(op[2].X)/64, float32(op[2].Y)/64)
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo(b))
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c fixed.Point26_6) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// replay sends the path to the drawer.
func (p Path) replay(d Drawer) {
	for _, op := range p {
		op.drawTo(d)
	}
	d.Stop(false)
}

// lastPoint returns the current point at the end of the path,
// and the start of the last subpath.
// `closed` is true if the last subpath is closed.
func (p Path) lastPoint() (current, start fixed.Point26_6, closed, ok bool) {
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			start, current, closed = fixed.Point26_6(op), fixed.Point26_6(op), false
		case Close:
			current, closed = start, true
		default:
			current, closed = op.endPoint(), false
		}
	}
	return current, start, closed, len(p) != 0
}
