// Package svgpath interprets SVG path data against a drawing surface.
//
// Drawing a path emits move, line, cubic, arc and close primitives on a
// Surface, and returns the vertex stream describing the points the path
// goes through, along with the directions of the path around them.
// This stream is what markers are placed on (see package svgmarker).
package svgpath

// operation is the kind of the last command executed.
type operation uint8

const (
	opNone operation = iota
	opMove
	opLine
	opCubic
	opQuad
	opArc
	opClose
)

// state is the drawing state, threaded through the command handlers.
type state struct {
	current Point // current point, tracked independently of the surface

	start    Point // start of the current subpath
	hasStart bool

	// absolute control point of the last curve, reflected
	// by the smooth commands
	control Point
	last    operation

	vertices Vertices
}

// newState starts from the current point of the surface, if any,
// or moves to the origin.
func newState(s Surface) state {
	var st state
	if s.HasCurrentPoint() {
		x, y := s.CurrentPoint()
		st.current = Point{x, y}
	} else {
		s.MoveTo(0, 0)
	}
	return st
}

// startSegment must be called before drawing a segment from the current point.
// It records the current point as the first vertex of a new subpath,
// when needed.
func (st *state) startSegment() {
	if st.last == opNone || st.last == opClose {
		st.vertices.anchor(st.current)
	}
	if !st.hasStart {
		st.start = st.current
		st.hasStart = true
	}
}

// Draw interprets the path data `d` on the surface `s`
// and returns the vertex stream of the path.
//
// Malformed data is handled the best possible way: the path
// is drawn up to the first incomplete or garbled command, and
// arcs with invalid flags are skipped.
func Draw(s Surface, d string) Vertices {
	st := newState(s)
	sc := newScanner(d)

	var letter byte
	for !sc.done() {
		explicit := false
		if c, ok := sc.command(); ok {
			letter, explicit = c, true
		}
		desc := commands[upper(letter)]
		if !explicit && len(desc.args) == 0 {
			break // numbers after a closepath
		}

		cmd, valid, ok := readArguments(sc, letter, desc.args)
		if !ok {
			break
		}
		if valid {
			st = desc.handle(st, s, cmd)
		}

		// extra coordinate pairs after a moveto are linetos
		switch letter {
		case 'M':
			letter = 'L'
		case 'm':
			letter = 'l'
		}
	}
	return st.vertices
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func readArguments(sc *scanner, letter byte, kinds []argKind) (cmd command, valid, ok bool) {
	cmd = command{letter: letter, args: make([]float64, len(kinds))}
	valid = true
	for i, kind := range kinds {
		switch kind {
		case argNumber:
			cmd.args[i], ok = sc.number()
		case argFlag:
			var value, isFlag bool
			value, isFlag, ok = sc.flag()
			valid = valid && isFlag
			if value {
				cmd.args[i] = 1
			}
		}
		if !ok {
			return cmd, false, false
		}
	}
	return cmd, valid, true
}
