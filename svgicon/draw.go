package svgicon

import (
	"errors"
	"fmt"

	"github.com/benoitkugler/svgmark/svgdraw"
	"github.com/benoitkugler/svgmark/svgmarker"
	"github.com/benoitkugler/svgmark/svgpath"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// maxNesting bounds the depth of use and marker references,
// which may be cyclic.
const maxNesting = 16

var errNesting = errors.New("too many nested references")

// SetTarget sets the Transform matrix to draw within the bounds of the rectangle arguments
func (s *SvgIcon) SetTarget(x, y, w, h float64) {
	scaleW := w / s.ViewBox.W
	scaleH := h / s.ViewBox.H
	s.Transform = rasterx.Identity.Translate(x, y).Scale(scaleW, scaleH).Translate(-s.ViewBox.X, -s.ViewBox.Y)
}

// Draw the SVG icon into the driver `d`, using its Transform.
// All elements should be contained by the Bounds rectangle of the SvgIcon.
// Errors are reported according to the error mode of the icon:
// only StrictErrorMode stops the drawing.
func (s *SvgIcon) Draw(d svgdraw.Driver, opacity float64) error {
	r := s.newRenderer(svgdraw.NewContext(), d, opacity)
	r.ctx.Transform(s.Transform)
	if err := r.drawElement(s.root); err != nil {
		return err
	}
	return r.err
}

// renderer walks the element tree, drawing on a context
type renderer struct {
	icon    *SvgIcon
	ctx     *svgdraw.Context
	driver  svgdraw.Driver // nil when measuring
	opacity float64

	styles []style // inherited styles, the last one being the current

	// measuring mode accumulates the extents of the shapes
	// instead of painting them
	measuring bool
	bounds    fixed.Rectangle26_6
	hasBounds bool

	nesting int
	markers *markerCache

	// first error raised while drawing markers, in StrictErrorMode
	err error
}

func (s *SvgIcon) newRenderer(ctx *svgdraw.Context, d svgdraw.Driver, opacity float64) *renderer {
	return &renderer{
		icon:    s,
		ctx:     ctx,
		driver:  d,
		opacity: opacity,
		styles:  []style{defaultStyle},
		markers: newMarkerCache(),
	}
}

func (r *renderer) currentStyle() *style { return &r.styles[len(r.styles)-1] }

// fail reports an error which can't be returned to the caller
func (r *renderer) fail(err error) {
	if err = r.icon.report(err); err != nil && r.err == nil {
		r.err = err
	}
}

// drawElement applies the transform and style of `el`, then
// draws it.
func (r *renderer) drawElement(el *element) error {
	fn := drawFuncs[el.tag]
	if fn == nil { // not rendered, or not supported
		return nil
	}

	if r.nesting >= maxNesting {
		return r.icon.report(fmt.Errorf("element %s: %w", el.tag, errNesting))
	}
	r.nesting++
	defer func() { r.nesting-- }()

	r.ctx.Save()
	defer r.ctx.Restore()
	if v, ok := el.attrs["transform"]; ok {
		m, err := r.icon.parseTransform(v)
		if err != nil {
			if err = r.icon.report(fmt.Errorf("element %s: %w", el.tag, err)); err != nil {
				return err
			}
		} else {
			r.ctx.Transform(m)
		}
	}

	r.styles = append(r.styles, r.currentStyle().apply(r.icon, el))
	defer func() { r.styles = r.styles[:len(r.styles)-1] }()

	if err := fn(r, el); err != nil {
		return r.icon.report(fmt.Errorf("element %s: %w", el.tag, err))
	}
	return nil
}

// drawShape interprets the path data `d`, paints the resulting path
// and draws its markers.
func (r *renderer) drawShape(el *element, d string) {
	st := r.currentStyle()
	vertices := svgpath.Draw(r.ctx, d)

	if r.measuring {
		if rect, ok := r.ctx.PathExtents(); ok {
			if r.hasBounds {
				rect = rect.Union(r.bounds)
			}
			r.bounds, r.hasBounds = rect, true
		}
		r.ctx.NewPath()
		return
	}

	// markers are painted on top of the path
	r.ctx.Paint(r.driver, st.PathStyle, r.opacity)
	if markable[el.tag] {
		svgmarker.Draw(r.ctx, r, vertices, st.refs(), st.LineWidth)
	}
}
