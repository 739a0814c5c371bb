package svgpath

import "math"

type argKind uint8

const (
	argNumber argKind = iota
	argFlag
)

// command is a command letter with its arguments.
// Flags are stored as 0 or 1.
type command struct {
	letter byte
	args   []float64
}

func (cmd command) relative() bool { return 'a' <= cmd.letter && cmd.letter <= 'z' }

// point returns the i-th pair of arguments.
func (cmd command) point(i int) Point { return Point{cmd.args[2*i], cmd.args[2*i+1]} }

// absolute returns the i-th pair of arguments in absolute coordinates
func (cmd command) absolute(i int, current Point) Point {
	if cmd.relative() {
		return current.add(cmd.point(i))
	}
	return cmd.point(i)
}

// handler draws one command and returns the updated state
type handler func(st state, s Surface, cmd command) state

var (
	argsPoint  = []argKind{argNumber, argNumber}
	argsCoord  = []argKind{argNumber}
	argsQuad   = []argKind{argNumber, argNumber, argNumber, argNumber}
	argsCubic  = []argKind{argNumber, argNumber, argNumber, argNumber, argNumber, argNumber}
	argsArc    = []argKind{argNumber, argNumber, argNumber, argFlag, argFlag, argNumber, argNumber}
	argsSmooth = argsQuad
)

// commands is indexed by upper case letter
var commands = map[byte]struct {
	args   []argKind
	handle handler
}{
	'M': {argsPoint, moveTo},
	'L': {argsPoint, lineTo},
	'H': {argsCoord, horizontalTo},
	'V': {argsCoord, verticalTo},
	'C': {argsCubic, cubicTo},
	'S': {argsSmooth, smoothCubicTo},
	'Q': {argsQuad, quadTo},
	'T': {argsPoint, smoothQuadTo},
	'A': {argsArc, arcTo},
	'Z': {nil, closePath},
}

func moveTo(st state, s Surface, cmd command) state {
	if st.last != opNone && st.last != opClose {
		st.vertices.breakSubpath()
	}
	p := cmd.point(0)
	if cmd.relative() {
		s.RelMoveTo(p.X, p.Y)
		p = st.current.add(p)
	} else {
		s.MoveTo(p.X, p.Y)
	}
	st.current = p
	st.hasStart = false
	st.last = opMove
	st.vertices.anchor(p)
	return st
}

// line draws a straight segment to `end`, given as the offset `delta`
// from the current point when `relative` is true.
func line(st state, s Surface, delta, end Point, relative bool) state {
	st.startSegment()
	if relative {
		s.RelLineTo(delta.X, delta.Y)
	} else {
		s.LineTo(end.X, end.Y)
	}
	angle := pointAngle(st.current, end)
	st.vertices.tangent(math.Pi-angle, angle)
	st.vertices.anchor(end)
	st.current = end
	st.last = opLine
	return st
}

func lineTo(st state, s Surface, cmd command) state {
	return line(st, s, cmd.point(0), cmd.absolute(0, st.current), cmd.relative())
}

func horizontalTo(st state, s Surface, cmd command) state {
	if cmd.relative() {
		delta := Point{cmd.args[0], 0}
		return line(st, s, delta, st.current.add(delta), true)
	}
	return line(st, s, Point{}, Point{cmd.args[0], st.current.Y}, false)
}

func verticalTo(st state, s Surface, cmd command) state {
	if cmd.relative() {
		delta := Point{0, cmd.args[0]}
		return line(st, s, delta, st.current.add(delta), true)
	}
	return line(st, s, Point{}, Point{st.current.X, cmd.args[0]}, false)
}

// curve draws the cubic curve with absolute points c1, c2, end
func curve(st state, s Surface, c1, c2, end Point, relative bool) state {
	st.startSegment()
	if relative {
		d1, d2, d3 := c1.sub(st.current), c2.sub(st.current), end.sub(st.current)
		s.RelCurveTo(d1.X, d1.Y, d2.X, d2.Y, d3.X, d3.Y)
	} else {
		s.CurveTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	}
	st.vertices.tangent(pointAngle(c2, c1), pointAngle(c2, end))
	st.vertices.anchor(end)
	st.current = end
	st.control = c2
	st.last = opCubic
	return st
}

func cubicTo(st state, s Surface, cmd command) state {
	c1 := cmd.absolute(0, st.current)
	c2 := cmd.absolute(1, st.current)
	end := cmd.absolute(2, st.current)
	return curve(st, s, c1, c2, end, cmd.relative())
}

// reflectControl returns the reflection of the last control point
// through the current point, if the last command was of kind `op`,
// or the current point.
func (st state) reflectControl(op operation) Point {
	if st.last != op {
		return st.current
	}
	return st.current.scale(2).sub(st.control)
}

func smoothCubicTo(st state, s Surface, cmd command) state {
	c1 := st.reflectControl(opCubic)
	c2 := cmd.absolute(0, st.current)
	end := cmd.absolute(1, st.current)
	return curve(st, s, c1, c2, end, cmd.relative())
}

// quadratic draws the quadratic curve with absolute points c, end,
// elevated to a cubic one
func quadratic(st state, s Surface, c, end Point, relative bool) state {
	st.startSegment()
	if relative {
		q1, q2 := quadraticPoints(Point{}, c.sub(st.current), end.sub(st.current))
		d := end.sub(st.current)
		s.RelCurveTo(q1.X, q1.Y, q2.X, q2.Y, d.X, d.Y)
	} else {
		q1, q2 := quadraticPoints(st.current, c, end)
		s.CurveTo(q1.X, q1.Y, q2.X, q2.Y, end.X, end.Y)
	}
	st.vertices.tangent(0, 0)
	st.vertices.anchor(end)
	st.current = end
	st.control = c
	st.last = opQuad
	return st
}

func quadTo(st state, s Surface, cmd command) state {
	c := cmd.absolute(0, st.current)
	end := cmd.absolute(1, st.current)
	return quadratic(st, s, c, end, cmd.relative())
}

func smoothQuadTo(st state, s Surface, cmd command) state {
	c := st.reflectControl(opQuad)
	end := cmd.absolute(0, st.current)
	return quadratic(st, s, c, end, cmd.relative())
}

// arcTolerance is the surface tolerance used when drawing arcs.
const arcTolerance = 1e-5

func arcTo(st state, s Surface, cmd command) state {
	rx, ry := math.Abs(cmd.args[0]), math.Abs(cmd.args[1])
	rotation := cmd.args[2] * math.Pi / 180
	large, sweep := cmd.args[3] == 1, cmd.args[4] == 1
	end := cmd.absolute(2, st.current)
	delta := end.sub(st.current)
	if cmd.relative() {
		delta = cmd.point(2)
	}

	if delta == (Point{}) { // the arc is omitted
		return st
	}
	if rx == 0 || ry == 0 { // straight line
		return line(st, s, delta, end, true)
	}

	st.startSegment()
	arc := ArcToCenter(delta, rx, ry, rotation, large, sweep)
	s.SetTolerance(arcTolerance)
	s.Save()
	s.Translate(st.current.X, st.current.Y)
	s.Rotate(arc.Rotation)
	s.Scale(1, arc.Ratio)
	if arc.Sweep {
		s.Arc(arc.Center.X, arc.Center.Y, arc.Radius, arc.Angle1, arc.Angle2)
	} else {
		s.ArcNegative(arc.Center.X, arc.Center.Y, arc.Radius, arc.Angle1, arc.Angle2)
	}
	s.Restore()

	st.vertices.tangent(-arc.Angle1, -arc.Angle2)
	st.vertices.anchor(end)
	st.current = end
	st.last = opArc
	return st
}

func closePath(st state, s Surface, _ command) state {
	if !st.hasStart {
		return st
	}
	st.vertices.breakSubpath()
	s.ClosePath()
	st.current = st.start
	st.hasStart = false
	st.last = opClose
	return st
}
