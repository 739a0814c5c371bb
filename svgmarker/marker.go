// Package svgmarker places SVG markers on the vertices of a drawn path.
//
// The vertex stream returned by svgpath.Draw gives the position of
// each vertex and the direction of the path around it. For each vertex,
// the start, mid or end marker is oriented, scaled, fitted to its
// viewport and drawn, its content being rendered by a Document.
package svgmarker

import (
	"math"

	"github.com/benoitkugler/svgmark/svgdraw"
	"github.com/benoitkugler/svgmark/svgpath"
)

// Surface is the drawing context markers are rendered on.
type Surface interface {
	svgpath.Surface

	CopyPath() svgdraw.Path
	NewPath()
	AppendPath(p svgdraw.Path)

	Rectangle(x, y, width, height float64)
	Clip()
}

// Node is a child of a marker definition, opaque to this package.
type Node interface{}

// Document provides the marker definitions and renders their content.
type Document interface {
	// Marker returns the marker definition with the given id.
	Marker(id string) (*Marker, bool)

	// BoundingBox returns the bounding box of the content of `m`,
	// in its own coordinates.
	BoundingBox(m *Marker) (Box, bool)

	// DrawNode renders the marker child `n` on `s`,
	// using the current transform and clip.
	DrawNode(s Surface, n Node)
}

// Box is a rectangle, such as a viewBox.
type Box struct{ X, Y, W, H float64 }

// Units are the coordinate system of the marker contents.
type Units uint8

const (
	StrokeWidth    Units = iota // scaled by the stroke width of the path (default)
	UserSpaceOnUse              // in the user space of the path
)

// Overflow tells whether marker content outside of its
// viewport is drawn.
type Overflow uint8

const (
	OverflowHidden Overflow = iota // default
	OverflowVisible
	OverflowScroll
	OverflowAuto
)

// Marker is a resolved marker definition.
// Lengths are expressed in user units.
type Marker struct {
	RefX, RefY    float64
	Width, Height float64 // markerWidth, markerHeight
	Units         Units
	Orient        Orient
	Overflow      Overflow

	ViewBox     *Box // optional
	AspectRatio AspectRatio

	Children []Node
}

// NewMarker returns a marker definition with the default
// values of the attributes.
func NewMarker() *Marker {
	return &Marker{Width: 3, Height: 3, AspectRatio: DefaultAspectRatio}
}

// clips returns true if the content is clipped to the viewport.
func (m *Marker) clips() bool {
	return m.Overflow == OverflowHidden || m.Overflow == OverflowScroll
}

// Position is the position of a vertex in its subpath.
type Position uint8

const (
	Start Position = iota
	Mid
	End
)

func (p Position) String() string {
	switch p {
	case Start:
		return "start"
	case Mid:
		return "mid"
	case End:
		return "end"
	default:
		return "<unknown Position>"
	}
}

// Placement is a vertex on which a marker is drawn.
type Placement struct {
	Point    svgpath.Point
	Angle    float64 // direction of the path, in radians
	Position Position
}

// Placements walks the vertex stream and returns the position and
// direction of each vertex.
//
// At the start of a subpath, the direction is the one of the outgoing segment.
// At a mid vertex, it is the bisector of the incoming and outgoing directions,
// and at the end of a subpath, it is the one of the incoming segment.
func Placements(vertices svgpath.Vertices) []Placement {
	var (
		out            []Placement
		angle1, angle2 float64 // tangent of the last vertex
		position       = Start
	)
	for i := 0; i < len(vertices); {
		anchor, ok := vertices[i].(svgpath.Anchor)
		i++
		if !ok { // malformed stream
			continue
		}

		var (
			tangent    svgpath.Tangent
			hasTangent bool
		)
		if i < len(vertices) {
			switch v := vertices[i].(type) {
			case svgpath.Tangent:
				tangent, hasTangent = v, true
				i++
			case svgpath.Break:
				i++
			}
		}

		var angle float64
		if hasTangent {
			if position == Start {
				angle = math.Pi - tangent.In
			} else {
				angle = (angle2 + math.Pi - tangent.In) / 2
			}
			angle1, angle2 = tangent.In, tangent.Out
		} else {
			angle = angle1
			position = End
		}

		out = append(out, Placement{Point: svgpath.Point(anchor), Angle: angle, Position: position})

		if hasTangent {
			position = Mid
		} else {
			position = Start
		}
	}
	return out
}

// Refs are the ids of the markers referenced by a path.
// An empty string means no marker.
type Refs struct{ Start, Mid, End string }

func (r Refs) forPosition(p Position) string {
	switch p {
	case Start:
		return r.Start
	case Mid:
		return r.Mid
	default:
		return r.End
	}
}

// IsEmpty returns true if no marker is referenced.
func (r Refs) IsEmpty() bool { return r == Refs{} }

// Draw draws the markers referenced by `refs` on the vertices of a path.
// `strokeWidth` is the stroke width of the path, in user units.
// The current path of `s` is preserved.
func Draw(s Surface, doc Document, vertices svgpath.Vertices, refs Refs, strokeWidth float64) {
	if refs.IsEmpty() || len(vertices) == 0 {
		return
	}
	for _, pl := range Placements(vertices) {
		id := refs.forPosition(pl.Position)
		if id == "" {
			continue
		}
		m, ok := doc.Marker(id)
		if !ok {
			continue
		}
		inst := newInstance(doc, m, pl, strokeWidth)

		temp := s.CopyPath()
		s.NewPath()
		for _, child := range m.Children {
			inst.drawChild(s, doc, m, child)
		}
		s.AppendPath(temp)
	}
}

// Instance is a marker placed on a vertex.
type Instance struct {
	Point  svgpath.Point
	Angle  float64 // final rotation, in radians
	Scale  float64 // unit scale: 1 or the stroke width
	ScaleX float64 // fit of the content in the marker viewport
	ScaleY float64
	TX, TY float64 // reference point translation
	Clip   *Box    // in marker content coordinates
}

func newInstance(doc Document, m *Marker, pl Placement, strokeWidth float64) Instance {
	inst := Instance{Point: pl.Point, Scale: 1}
	if m.Units == StrokeWidth {
		inst.Scale = strokeWidth
	}

	if m.ViewBox != nil {
		inst.ScaleX, inst.ScaleY, inst.TX, inst.TY = preserveRatio(m)
		clip := clipBox(m, inst.ScaleX, inst.ScaleY)
		inst.Clip = &clip
	} else {
		inst.TX, inst.TY = -m.RefX, -m.RefY
		inst.ScaleX, inst.ScaleY = 1, 1
		if bbox, ok := doc.BoundingBox(m); ok && bbox.W > 0 && bbox.H > 0 {
			scale := math.Min(m.Width/bbox.W, m.Height/bbox.H)
			inst.ScaleX, inst.ScaleY = scale, scale
		}
	}

	inst.Angle = m.Orient.resolve(pl.Angle, pl.Position)
	return inst
}

func (inst Instance) drawChild(s Surface, doc Document, m *Marker, child Node) {
	s.Save()
	defer s.Restore()

	s.Translate(inst.Point.X, inst.Point.Y)
	s.Rotate(inst.Angle)
	s.Scale(inst.Scale, inst.Scale)
	s.Scale(inst.ScaleX, inst.ScaleY)
	s.Translate(inst.TX, inst.TY)
	if inst.Clip != nil && m.clips() {
		s.Rectangle(inst.Clip.X, inst.Clip.Y, inst.Clip.W, inst.Clip.H)
		s.Clip()
	}
	doc.DrawNode(s, child)
}
