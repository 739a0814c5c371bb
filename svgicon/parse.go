package svgicon

import (
	"math"
	"strings"

	"github.com/benoitkugler/svgmark/svgdraw"
	"github.com/benoitkugler/svgmark/svgmarker"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// style is the state of the SVG style, inherited
// down the element tree
type style struct {
	svgdraw.PathStyle

	// marker, marker-start, marker-mid, marker-end
	markers   [4]string
	hasMarker [4]bool
}

var markerProperties = [4]string{"marker", "marker-start", "marker-mid", "marker-end"}

var defaultStyle = style{PathStyle: svgdraw.DefaultStyle}

// refs returns the markers referenced by the style
func (st *style) refs() svgmarker.Refs {
	return svgmarker.ParseRefs(func(name string) (string, bool) {
		for i, prop := range markerProperties {
			if prop == name {
				return st.markers[i], st.hasMarker[i]
			}
		}
		return "", false
	})
}

func isStyleProperty(key string) bool {
	switch key {
	case "fill", "stroke", "stroke-linegap", "stroke-leadlinecap", "stroke-linecap",
		"stroke-linejoin", "stroke-miterlimit", "stroke-width", "stroke-dashoffset",
		"stroke-dasharray", "opacity", "stroke-opacity", "fill-opacity", "fill-rule",
		"marker", "marker-start", "marker-mid", "marker-end", "overflow":
		return true
	}
	return false
}

func (st *style) readStyleAttr(icon *SvgIcon, k, v string) error {
	switch k {
	case "fill":
		col, err := parseSVGColor(v)
		if err != nil {
			return err
		}
		st.FillerColor = col
	case "stroke":
		col, err := parseSVGColor(v)
		if err != nil {
			return err
		}
		st.LinerColor = col
	case "fill-rule":
		st.UseNonZeroWinding = v != "evenodd"
	case "stroke-linegap":
		switch v {
		case "flat":
			st.Join.LineGap = svgdraw.FlatGap
		case "round":
			st.Join.LineGap = svgdraw.RoundGap
		case "cubic":
			st.Join.LineGap = svgdraw.CubicGap
		case "quadratic":
			st.Join.LineGap = svgdraw.QuadraticGap
		}
	case "stroke-leadlinecap":
		st.Join.LeadLineCap = parseCap(v)
	case "stroke-linecap":
		st.Join.TrailLineCap = parseCap(v)
	case "stroke-linejoin":
		switch v {
		case "miter":
			st.Join.LineJoin = svgdraw.Miter
		case "miter-clip":
			st.Join.LineJoin = svgdraw.MiterClip
		case "arc-clip":
			st.Join.LineJoin = svgdraw.ArcClip
		case "round":
			st.Join.LineJoin = svgdraw.Round
		case "arc":
			st.Join.LineJoin = svgdraw.Arc
		case "bevel":
			st.Join.LineJoin = svgdraw.Bevel
		}
	case "stroke-miterlimit":
		mLimit, err := parseFloat(v)
		if err != nil {
			return err
		}
		st.Join.MiterLimit = fixed.Int26_6(mLimit * 64)
	case "stroke-width":
		width, err := icon.parseLength(v, diagPercentage)
		if err != nil {
			return err
		}
		st.LineWidth = width
	case "stroke-dashoffset":
		dashOffset, err := icon.parseLength(v, diagPercentage)
		if err != nil {
			return err
		}
		st.Dash.DashOffset = dashOffset
	case "stroke-dasharray":
		if v == "none" {
			st.Dash.Dash = nil
			break
		}
		dashes := splitOnCommaOrSpace(v)
		dList := make([]float64, len(dashes))
		for i, dstr := range dashes {
			d, err := icon.parseLength(dstr, diagPercentage)
			if err != nil {
				return err
			}
			dList[i] = d
		}
		st.Dash.Dash = dList
	case "opacity", "stroke-opacity", "fill-opacity":
		op, err := readFraction(v)
		if err != nil {
			return err
		}
		if k != "stroke-opacity" {
			st.FillOpacity *= op
		}
		if k != "fill-opacity" {
			st.LineOpacity *= op
		}
	case "marker", "marker-start", "marker-mid", "marker-end":
		for i, prop := range markerProperties {
			if prop == k {
				st.markers[i], st.hasMarker[i] = v, true
			}
		}
	}
	return nil
}

func parseCap(v string) svgdraw.CapMode {
	switch v {
	case "butt":
		return svgdraw.ButtCap
	case "round":
		return svgdraw.RoundCap
	case "square":
		return svgdraw.SquareCap
	case "cubic":
		return svgdraw.CubicCap
	case "quadratic":
		return svgdraw.QuadraticCap
	}
	return svgdraw.NilCap
}

// apply returns a copy of `st` updated with the declarations of `el`.
// Invalid declarations have been reported when parsing, and are ignored.
func (st style) apply(icon *SvgIcon, el *element) style {
	if len(st.Dash.Dash) != 0 { // avoid sharing the slice
		st.Dash.Dash = append([]float64(nil), st.Dash.Dash...)
	}
	for _, decl := range el.decls {
		_ = st.readStyleAttr(icon, decl[0], decl[1])
	}
	return st
}

// cascade returns the style of `el`, inherited from its ancestors.
func (s *SvgIcon) cascade(el *element) style {
	var chain []*element
	for ; el != nil; el = el.parent {
		chain = append(chain, el)
	}
	st := defaultStyle
	for i := len(chain) - 1; i >= 0; i-- {
		st = st.apply(s, chain[i])
	}
	return st
}

func (s *SvgIcon) readTransformAttr(m1 rasterx.Matrix2D, k string, points []float64) (rasterx.Matrix2D, error) {
	ln := len(points)
	switch k {
	case "rotate":
		if ln == 1 {
			m1 = m1.Rotate(points[0] * math.Pi / 180)
		} else if ln == 3 {
			m1 = m1.Translate(points[1], points[2]).
				Rotate(points[0]*math.Pi/180).
				Translate(-points[1], -points[2])
		} else {
			return m1, errParamMismatch
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(points[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "skewx":
		if ln == 1 {
			m1 = m1.SkewX(points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "skewy":
		if ln == 1 {
			m1 = m1.SkewY(points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(points[0], points[0])
		} else if ln == 2 {
			m1 = m1.Scale(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(rasterx.Matrix2D{
				A: points[0],
				B: points[1],
				C: points[2],
				D: points[3],
				E: points[4],
				F: points[5]})
		} else {
			return m1, errParamMismatch
		}
	default:
		return m1, errParamMismatch
	}
	return m1, nil
}

// parseTransform parses a transform attribute, such as
// "translate(10 20) rotate(45)".
func (s *SvgIcon) parseTransform(v string) (rasterx.Matrix2D, error) {
	ts := strings.Split(v, ")")
	m1 := rasterx.Identity
	for _, t := range ts {
		t = strings.TrimSpace(t)
		t = strings.TrimLeft(t, ", ")
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return m1, errParamMismatch // badly formed transformation
		}
		points, err := readNumbers(d[1])
		if err != nil {
			return m1, err
		}
		m1, err = s.readTransformAttr(m1, strings.ToLower(strings.TrimSpace(d[0])), points)
		if err != nil {
			return m1, err
		}
	}
	return m1, nil
}
