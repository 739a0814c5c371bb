package svgpath

import (
	"fmt"
	"strings"
)

// Vertex is an entry of the vertex stream built while drawing a path.
// It is one of Anchor, Tangent or Break.
type Vertex interface {
	isVertex()
}

// Anchor is a point the path goes through, where a marker may be placed.
type Anchor Point

// Tangent stores the direction of the path around the next Anchor:
// In is the direction of the incoming segment (reversed, for lines)
// and Out the direction of the outgoing one, both in radians.
type Tangent struct{ In, Out float64 }

// Break separates two subpaths.
type Break struct{}

func (Anchor) isVertex()  {}
func (Tangent) isVertex() {}
func (Break) isVertex()   {}

// Vertices is the vertex stream of a path.
// Each subpath starts with an Anchor, and every Tangent
// is followed by the Anchor it describes.
type Vertices []Vertex

func (vs *Vertices) anchor(p Point) { *vs = append(*vs, Anchor(p)) }

func (vs *Vertices) tangent(in, out float64) { *vs = append(*vs, Tangent{In: in, Out: out}) }

func (vs *Vertices) breakSubpath() { *vs = append(*vs, Break{}) }

// Anchors returns the points of the stream, in order.
func (vs Vertices) Anchors() []Point {
	var out []Point
	for _, v := range vs {
		if a, ok := v.(Anchor); ok {
			out = append(out, Point(a))
		}
	}
	return out
}

// String returns a compact, readable representation of the stream,
// such as "(0,0) <3.142,0> (10,0) |".
func (vs Vertices) String() string {
	chunks := make([]string, len(vs))
	for i, v := range vs {
		switch v := v.(type) {
		case Anchor:
			chunks[i] = fmt.Sprintf("(%g,%g)", v.X, v.Y)
		case Tangent:
			chunks[i] = fmt.Sprintf("<%.3f,%.3f>", v.In, v.Out)
		case Break:
			chunks[i] = "|"
		}
	}
	return strings.Join(chunks, " ")
}
