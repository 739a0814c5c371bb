package svgicon

import (
	"fmt"

	"github.com/benoitkugler/svgmark/svgdraw"
	"github.com/benoitkugler/svgmark/svgmarker"
)

var _ svgmarker.Document = (*renderer)(nil)

// markerCache stores the resolved marker definitions
type markerCache struct {
	byElement map[*element]*svgmarker.Marker
	elements  map[*svgmarker.Marker]*element
}

func newMarkerCache() *markerCache {
	return &markerCache{
		byElement: make(map[*element]*svgmarker.Marker),
		elements:  make(map[*svgmarker.Marker]*element),
	}
}

// Marker resolves the marker element with the given id.
func (r *renderer) Marker(id string) (*svgmarker.Marker, bool) {
	el, ok := r.icon.ids[id]
	if !ok {
		r.fail(fmt.Errorf("marker %s not found", id))
		return nil, false
	}
	if el.tag != "marker" {
		r.fail(fmt.Errorf("element %s referenced as marker is a %s", id, el.tag))
		return nil, false
	}
	if m, ok := r.markers.byElement[el]; ok {
		return m, true
	}
	m := r.newMarker(el)
	r.markers.byElement[el] = m
	r.markers.elements[m] = el
	return m, true
}

// newMarker reads the attributes of a marker element.
// Invalid attributes are reported and replaced by their default.
func (r *renderer) newMarker(el *element) *svgmarker.Marker {
	s := r.icon
	m := svgmarker.NewMarker()
	lengths := [...]struct {
		name string
		ax   axis
		dst  *float64
	}{
		{"refX", widthPercentage, &m.RefX},
		{"refY", heightPercentage, &m.RefY},
		{"markerWidth", widthPercentage, &m.Width},
		{"markerHeight", heightPercentage, &m.Height},
	}
	for _, l := range lengths {
		v, ok := el.attrs[l.name]
		if !ok {
			continue
		}
		f, err := s.parseLength(v, l.ax)
		if err != nil {
			r.fail(fmt.Errorf("marker attribute %s: %w", l.name, err))
			continue
		}
		*l.dst = f
	}

	m.Units = svgmarker.ParseUnits(el.attrs["markerUnits"])
	if v, ok := el.attrs["orient"]; ok {
		orient, err := svgmarker.ParseOrient(v)
		if err != nil {
			r.fail(err)
		}
		m.Orient = orient
	}
	overflow := el.attrs["overflow"]
	for _, decl := range el.decls {
		if decl[0] == "overflow" {
			overflow = decl[1]
		}
	}
	m.Overflow = svgmarker.ParseOverflow(overflow)

	if v, ok := el.attrs["viewBox"]; ok {
		points, err := readNumbers(v)
		if err == nil && len(points) != 4 {
			err = errParamMismatch
		}
		if err != nil {
			r.fail(fmt.Errorf("marker viewBox: %w", err))
		} else {
			m.ViewBox = &svgmarker.Box{X: points[0], Y: points[1], W: points[2], H: points[3]}
		}
	}
	if v, ok := el.attrs["preserveAspectRatio"]; ok {
		m.AspectRatio = svgmarker.ParseAspectRatio(v)
	}

	for _, child := range el.children {
		m.Children = append(m.Children, child)
	}
	return m
}

// BoundingBox measures the content of `m`, without any transform.
func (r *renderer) BoundingBox(m *svgmarker.Marker) (svgmarker.Box, bool) {
	el, ok := r.markers.elements[m]
	if !ok {
		return svgmarker.Box{}, false
	}
	measure := r.icon.newRenderer(svgdraw.NewContext(), nil, 1)
	measure.measuring = true
	measure.markers = r.markers
	measure.nesting = r.nesting
	measure.styles = []style{r.icon.cascade(el)}
	for _, child := range el.children {
		if err := measure.drawElement(child); err != nil {
			r.fail(err)
			return svgmarker.Box{}, false
		}
	}
	if measure.err != nil {
		r.fail(measure.err)
	}
	if !measure.hasBounds {
		return svgmarker.Box{}, false
	}
	b := measure.bounds
	return svgmarker.Box{
		X: float64(b.Min.X) / 64,
		Y: float64(b.Min.Y) / 64,
		W: float64(b.Max.X-b.Min.X) / 64,
		H: float64(b.Max.Y-b.Min.Y) / 64,
	}, true
}

// DrawNode draws a child of a marker element, with the style
// inherited from the marker definition.
func (r *renderer) DrawNode(s svgmarker.Surface, n svgmarker.Node) {
	el, ok := n.(*element)
	if !ok {
		return
	}
	savedStyles, savedCtx := r.styles, r.ctx
	if ctx, ok := s.(*svgdraw.Context); ok {
		r.ctx = ctx
	}
	r.styles = []style{r.icon.cascade(el.parent)}
	defer func() { r.styles, r.ctx = savedStyles, savedCtx }()

	if err := r.drawElement(el); err != nil && r.err == nil {
		r.err = err // already reported
	}
}
