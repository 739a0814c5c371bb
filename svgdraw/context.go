package svgdraw

import (
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// DefaultTolerance is the initial tolerance of a Context,
// in device units.
const DefaultTolerance = 0.1

// graphic state, saved and restored by Save and Restore
type gstate struct {
	matrix    rasterx.Matrix2D
	tolerance float64

	clip    fixed.Rectangle26_6 // in device space
	clipped bool
}

// Context is a vector drawing context, modeled after Cairo.
// It tracks a current transformation matrix and records
// paths in device space, which are then painted on a Driver.
//
// A Context is not safe for concurrent use.
type Context struct {
	gstate
	stack []gstate

	path Path

	// device space
	current, start point
	hasCurrent     bool
	needsMove      bool // the last subpath has been closed
}

// NewContext returns an empty context, with the identity transform.
func NewContext() *Context {
	return &Context{gstate: gstate{matrix: rasterx.Identity, tolerance: DefaultTolerance}}
}

// Matrix returns the current transformation matrix.
func (c *Context) Matrix() rasterx.Matrix2D { return c.matrix }

// Transform modifies the current transformation matrix by applying
// `m` before it.
func (c *Context) Transform(m rasterx.Matrix2D) { c.matrix = c.matrix.Mult(m) }

func (c *Context) Translate(tx, ty float64) { c.matrix = c.matrix.Translate(tx, ty) }

func (c *Context) Rotate(angle float64) { c.matrix = c.matrix.Rotate(angle) }

func (c *Context) Scale(sx, sy float64) { c.matrix = c.matrix.Scale(sx, sy) }

func (c *Context) SetTolerance(tolerance float64) { c.tolerance = tolerance }

// Save pushes the graphic state (transform, clip and tolerance)
// on a stack.
func (c *Context) Save() {
	c.stack = append(c.stack, c.gstate)
}

// Restore pops the last saved graphic state. Unbalanced calls
// are ignored.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.gstate = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *Context) toDevice(x, y float64) point {
	x, y = c.matrix.Transform(x, y)
	return point{x, y}
}

func (c *Context) HasCurrentPoint() bool { return c.hasCurrent }

// CurrentPoint returns the current point in user space,
// or (0, 0) if there is none.
func (c *Context) CurrentPoint() (x, y float64) {
	if !c.hasCurrent {
		return 0, 0
	}
	return c.matrix.Invert().Transform(c.current.X, c.current.Y)
}

// ensureStart begins a new subpath at the current point,
// after a ClosePath
func (c *Context) ensureStart() {
	if c.needsMove {
		c.path.Start(fToFixed(c.current.X, c.current.Y))
		c.needsMove = false
	}
}

// MoveTo begins a new subpath. A subpath with no segment
// is replaced.
func (c *Context) MoveTo(x, y float64) {
	p := c.toDevice(x, y)
	if n := len(c.path); n != 0 {
		if _, isMove := c.path[n-1].(MoveTo); isMove {
			c.path = c.path[:n-1]
		}
	}
	c.path.Start(fToFixed(p.X, p.Y))
	c.current, c.start = p, p
	c.hasCurrent, c.needsMove = true, false
}

func (c *Context) RelMoveTo(dx, dy float64) {
	x, y := c.CurrentPoint()
	c.MoveTo(x+dx, y+dy)
}

// LineTo adds a line to (x, y), or behaves as MoveTo
// when there is no current point.
func (c *Context) LineTo(x, y float64) {
	if !c.hasCurrent {
		c.MoveTo(x, y)
		return
	}
	c.ensureStart()
	p := c.toDevice(x, y)
	c.path.Line(fToFixed(p.X, p.Y))
	c.current = p
}

func (c *Context) RelLineTo(dx, dy float64) {
	x, y := c.CurrentPoint()
	c.LineTo(x+dx, y+dy)
}

// CurveTo adds a cubic Bézier curve. If there is no current
// point, (x1, y1) is used as start.
func (c *Context) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	if !c.hasCurrent {
		c.MoveTo(x1, y1)
	}
	c.ensureStart()
	p1, p2, p3 := c.toDevice(x1, y1), c.toDevice(x2, y2), c.toDevice(x3, y3)
	c.path.CubeBezier(fToFixed(p1.X, p1.Y), fToFixed(p2.X, p2.Y), fToFixed(p3.X, p3.Y))
	c.current = p3
}

func (c *Context) RelCurveTo(dx1, dy1, dx2, dy2, dx3, dy3 float64) {
	x, y := c.CurrentPoint()
	c.CurveTo(x+dx1, y+dy1, x+dx2, y+dy2, x+dx3, y+dy3)
}

// ClosePath closes the current subpath. The current point
// goes back to the start of the subpath.
func (c *Context) ClosePath() {
	if !c.hasCurrent {
		return
	}
	c.ensureStart()
	c.path.Stop(true)
	c.current = c.start
	c.needsMove = true
}

// Rectangle adds a closed rectangle subpath.
func (c *Context) Rectangle(x, y, width, height float64) {
	c.MoveTo(x, y)
	c.RelLineTo(width, 0)
	c.RelLineTo(0, height)
	c.RelLineTo(-width, 0)
	c.ClosePath()
}

// NewPath clears the current path and the current point.
func (c *Context) NewPath() {
	c.path = nil
	c.hasCurrent, c.needsMove = false, false
}

// CopyPath returns a copy of the current path, in device space.
func (c *Context) CopyPath() Path {
	return append(Path(nil), c.path...)
}

// AppendPath adds the operations of `p` to the current path,
// and updates the current point accordingly.
func (c *Context) AppendPath(p Path) {
	c.path = append(c.path, p...)
	current, start, closed, ok := c.path.lastPoint()
	if !ok {
		return
	}
	c.current, c.start = pointOf(current), pointOf(start)
	c.hasCurrent, c.needsMove = true, closed
}

// PathExtents returns the bounding box of the current path,
// in device space.
func (c *Context) PathExtents() (fixed.Rectangle26_6, bool) {
	return c.path.Bounds()
}

// Clip intersects the current clip region with the bounding box
// of the current path, then clears the path.
func (c *Context) Clip() {
	rect, _ := c.path.Bounds()
	if c.clipped {
		rect = rect.Intersect(c.clip)
	}
	c.clip, c.clipped = rect, true
	c.NewPath()
}

// matrixScale returns the largest factor by which the current
// matrix may expand a length.
func (c *Context) matrixScale() float64 {
	m := c.matrix
	return math.Max(math.Hypot(m.A, m.B), math.Hypot(m.C, m.D))
}
