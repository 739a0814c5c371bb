package svgicon

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"github.com/benoitkugler/svgmark/svgdraw"
	"github.com/tdewolff/test"
	"golang.org/x/image/math/fixed"
)

func parseIcon(t *testing.T, iconPath string) *SvgIcon {
	icon, errSvg := ReadIcon(iconPath, StrictErrorMode)
	if errSvg != nil {
		t.Fatal(errSvg)
	}
	return icon
}

// painted is a path painted on a driver
type painted struct {
	stroke  bool
	color   color.Color
	opacity float64
	width   fixed.Int26_6
	points  []fixed.Point26_6
}

// bounds returns the extent of the points of the path, in pixels
func (p painted) bounds() (minX, minY, maxX, maxY float64) {
	minX, minY, maxX, maxY = math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, pt := range p.points {
		x, y := float64(pt.X)/64, float64(pt.Y)/64
		minX, minY = math.Min(minX, x), math.Min(minY, y)
		maxX, maxY = math.Max(maxX, x), math.Max(maxY, y)
	}
	return
}

type driver struct {
	paints []painted
}

type drawer struct {
	d       *driver
	current painted
}

func (d *driver) SetupDrawers(willFill, willStroke bool) (svgdraw.Filler, svgdraw.Stroker) {
	var (
		f svgdraw.Filler
		s svgdraw.Stroker
	)
	if willFill {
		f = &drawer{d: d}
	}
	if willStroke {
		s = &drawer{d: d, current: painted{stroke: true}}
	}
	return f, s
}

func (dr *drawer) Clear() { dr.current.points = nil }

func (dr *drawer) Start(a fixed.Point26_6) { dr.current.points = append(dr.current.points, a) }

func (dr *drawer) Line(b fixed.Point26_6) { dr.current.points = append(dr.current.points, b) }

func (dr *drawer) QuadBezier(b, c fixed.Point26_6) {
	dr.current.points = append(dr.current.points, b, c)
}

func (dr *drawer) CubeBezier(b, c, d fixed.Point26_6) {
	dr.current.points = append(dr.current.points, b, c, d)
}

func (dr *drawer) Stop(bool) {}

func (dr *drawer) SetColor(c color.Color, opacity float64) {
	dr.current.color, dr.current.opacity = c, opacity
}

func (dr *drawer) SetClip(fixed.Rectangle26_6) {}

func (dr *drawer) Draw() { dr.d.paints = append(dr.d.paints, dr.current) }

func (dr *drawer) SetWinding(bool) {}

func (dr *drawer) SetStrokeOptions(options svgdraw.StrokeOptions) {
	dr.current.width = options.LineWidth
}

func drawInline(t *testing.T, content string) []painted {
	icon, err := ReadIconStream(strings.NewReader(content), StrictErrorMode)
	if err != nil {
		t.Fatal(err)
	}
	icon.SetTarget(0, 0, icon.ViewBox.W, icon.ViewBox.H)
	d := &driver{}
	if err = icon.Draw(d, 1); err != nil {
		t.Fatal(err)
	}
	return d.paints
}

func TestTestIcons(t *testing.T) {
	icon := parseIcon(t, "testdata/markers.svg")
	test.T(t, icon.ViewBox, Bounds{0, 0, 200, 120})
	test.T(t, icon.Titles, []string{"Markers"})
	test.T(t, icon.Descriptions, []string{"Start, mid and end markers on paths and basic shapes"})

	icon = parseIcon(t, "testdata/shapes.svg")
	test.T(t, icon.ViewBox, Bounds{0, 0, 400, 300})
	test.T(t, icon.Width, "4in")
}

func TestReadViewBox(t *testing.T) {
	icon, err := ReadIconStream(strings.NewReader(`<svg width="2in" height="50"></svg>`), StrictErrorMode)
	test.Error(t, err)
	test.T(t, icon.ViewBox, Bounds{W: 192, H: 50})

	_, err = ReadIconStream(strings.NewReader(`<svg viewBox="0 0 10"></svg>`), StrictErrorMode)
	test.That(t, err != nil)

	_, err = ReadIconStream(strings.NewReader(``), StrictErrorMode)
	test.That(t, err != nil)

	_, err = ReadIconStream(strings.NewReader(`<g></g>`), StrictErrorMode)
	test.That(t, err != nil)
}

func TestErrorMode(t *testing.T) {
	for _, content := range []string{
		`<svg><foreignObject/></svg>`,
		`<svg><rect fill="notacolor"/></svg>`,
		`<svg><rect style="stroke-width: 3furlongs"/></svg>`,
		`<svg><rect id=""/></svg>`,
	} {
		_, err := ReadIconStream(strings.NewReader(content), StrictErrorMode)
		test.That(t, err != nil, content)

		_, err = ReadIconStream(strings.NewReader(content), IgnoreErrorMode)
		test.Error(t, err, content)
	}
}

func TestParseLength(t *testing.T) {
	icon := &SvgIcon{ViewBox: Bounds{W: 300, H: 400}}
	var tts = []struct {
		v    string
		ax   axis
		want float64
	}{
		{"12", widthPercentage, 12},
		{"12px", widthPercentage, 12},
		{"1in", widthPercentage, 96},
		{"72pt", widthPercentage, 96},
		{"2.54cm", widthPercentage, 96},
		{"1em", widthPercentage, 16},
		{"10%", widthPercentage, 30},
		{"10%", heightPercentage, 40},
		{"10%", diagPercentage, 50 / math.Sqrt2},
		{" -1.5e1 ", widthPercentage, -15},
	}
	for _, tt := range tts {
		got, err := icon.parseLength(tt.v, tt.ax)
		test.Error(t, err, tt.v)
		test.Float(t, got, tt.want, tt.v)
	}

	for _, v := range []string{"", "px", "12 px", "3furlongs"} {
		_, err := icon.parseLength(v, widthPercentage)
		test.That(t, err != nil, v)
	}
}

func TestParseColor(t *testing.T) {
	red := color.NRGBA{R: 0xff, A: 0xff}
	var tts = []struct {
		v    string
		want color.Color
	}{
		{"none", nil},
		{"transparent", nil},
		{"#f00", red},
		{"#FF0000", red},
		{"rgb(255, 0, 0)", red},
		{"rgb(100%,0%,0%)", red},
		{"rgba(255 0 0 50%)", color.NRGBA{R: 0xff, A: 0x80}},
		{"red", color.RGBA{R: 0xff, A: 0xff}},
	}
	for _, tt := range tts {
		got, err := parseSVGColor(tt.v)
		test.Error(t, err, tt.v)
		test.T(t, got, tt.want, tt.v)
	}

	for _, v := range []string{"#ff", "#ggg", "rgb(1,2)", "blurple"} {
		_, err := parseSVGColor(v)
		test.That(t, err != nil, v)
	}
}

func TestParseTransform(t *testing.T) {
	icon := &SvgIcon{}
	m, err := icon.parseTransform("translate(10 20) scale(2)")
	test.Error(t, err)
	x, y := m.Transform(1, 1)
	test.Float(t, x, 12)
	test.Float(t, y, 22)

	m, err = icon.parseTransform("rotate(90, 10, 10)")
	test.Error(t, err)
	x, y = m.Transform(10, 10)
	test.That(t, math.Abs(x-10) < 1e-9 && math.Abs(y-10) < 1e-9, x, y)
	x, y = m.Transform(11, 10)
	test.That(t, math.Abs(x-10) < 1e-9 && math.Abs(y-11) < 1e-9, x, y)

	m, err = icon.parseTransform("matrix(1 0 0 1 5 6)")
	test.Error(t, err)
	x, y = m.Transform(0, 0)
	test.Float(t, x, 5)
	test.Float(t, y, 6)

	for _, v := range []string{"translate(1 2 3)", "shear(2)", "scale", "matrix(1 2)"} {
		_, err := icon.parseTransform(v)
		test.That(t, err != nil, v)
	}
}

func TestStyleCascade(t *testing.T) {
	paints := drawInline(t, `<svg viewBox="0 0 10 10">
		<g fill="red" style="opacity: 0.5">
			<rect x="1" y="2" width="3" height="4"/>
			<rect width="1" height="1" fill="blue" stroke="#000" stroke-width="2"/>
		</g>
	</svg>`)
	test.T(t, len(paints), 3)

	test.T(t, paints[0].color, color.Color(color.RGBA{R: 0xff, A: 0xff}))
	test.Float(t, paints[0].opacity, 0.5)
	minX, minY, maxX, maxY := paints[0].bounds()
	test.T(t, []float64{minX, minY, maxX, maxY}, []float64{1, 2, 4, 6})

	test.T(t, paints[1].color, color.Color(color.RGBA{B: 0xff, A: 0xff}))
	test.That(t, paints[2].stroke)
	test.T(t, paints[2].width, fixed.Int26_6(2*64))
}

func TestSetTarget(t *testing.T) {
	icon, err := ReadIconStream(strings.NewReader(`<svg viewBox="10 10 10 10"><rect x="10" y="10" width="10" height="10"/></svg>`), StrictErrorMode)
	test.Error(t, err)
	icon.SetTarget(5, 5, 20, 40)
	d := &driver{}
	test.Error(t, icon.Draw(d, 1))
	test.T(t, len(d.paints), 1)
	minX, minY, maxX, maxY := d.paints[0].bounds()
	test.T(t, []float64{minX, minY, maxX, maxY}, []float64{5, 5, 25, 45})
}

func TestShapes(t *testing.T) {
	var tts = []struct {
		shape  string
		paints int
		bounds []float64
	}{
		{`<line x1="1" y1="1" x2="5" y2="3" fill="none" stroke="black"/>`, 1, []float64{1, 1, 5, 3}},
		{`<polyline points="1 1 5 3 2 6" fill="none" stroke="black"/>`, 1, []float64{1, 1, 5, 6}},
		{`<polygon points="1,1,5,3,2,6"/>`, 1, []float64{1, 1, 5, 6}},
		{`<rect width="0" height="10"/>`, 0, nil},
		{`<circle cx="5" cy="5" r="0"/>`, 0, nil},
		{`<use href="#r" x="2" y="3"/><defs><rect id="r" width="1" height="1"/></defs>`, 1, []float64{2, 3, 3, 4}},
	}
	for _, tt := range tts {
		paints := drawInline(t, `<svg viewBox="0 0 10 10">`+tt.shape+`</svg>`)
		test.T(t, len(paints), tt.paints, tt.shape)
		if len(paints) != 0 {
			minX, minY, maxX, maxY := paints[0].bounds()
			test.T(t, []float64{minX, minY, maxX, maxY}, tt.bounds, tt.shape)
		}
	}
}

func TestRoundShapes(t *testing.T) {
	for _, shape := range []string{
		`<circle cx="5" cy="5" r="4"/>`,
		`<ellipse cx="5" cy="5" rx="4" ry="4"/>`,
		`<rect x="1" y="1" width="8" height="8" rx="4"/>`,
	} {
		paints := drawInline(t, `<svg viewBox="0 0 10 10">`+shape+`</svg>`)
		test.T(t, len(paints), 1, shape)
		// control points stay close to the circle
		minX, minY, maxX, maxY := paints[0].bounds()
		for _, v := range []float64{minX, minY} {
			test.That(t, math.Abs(v-1) < 0.05, shape, v)
		}
		for _, v := range []float64{maxX, maxY} {
			test.That(t, math.Abs(v-9) < 0.05, shape, v)
		}
	}
}

func TestMarkers(t *testing.T) {
	paints := drawInline(t, `<svg viewBox="0 0 20 20">
		<defs>
			<marker id="m" markerWidth="4" markerHeight="4" markerUnits="userSpaceOnUse" overflow="visible">
				<rect width="2" height="2" fill="red"/>
			</marker>
		</defs>
		<path d="M0 10 L10 10" fill="none" stroke="black" marker-end="url(#m)"/>
		<rect width="1" height="1" marker-end="url(#m)"/>
	</svg>`)
	// the path stroke, the marker, and the rect which can't have markers
	test.T(t, len(paints), 3)
	test.That(t, paints[0].stroke)
	test.T(t, paints[1].color, color.Color(color.RGBA{R: 0xff, A: 0xff}))

	// the content is scaled by 2 to fit the marker, and rotated
	// around the end of the path
	minX, minY, maxX, maxY := paints[1].bounds()
	for _, tt := range [][2]float64{{minX, 6}, {minY, 6}, {maxX, 10}, {maxY, 10}} {
		test.That(t, math.Abs(tt[0]-tt[1]) <= 2./64, tt)
	}
}

func TestMarkerReferences(t *testing.T) {
	// missing markers and markers referencing themselves
	// are skipped
	content := `<svg viewBox="0 0 20 20">
		<marker id="loop"><path d="M0 0 L1 1" stroke="black" marker-start="url(#loop)"/></marker>
		<path d="M0 10 L10 10" stroke="black" marker-start="url(#missing)" marker-end="url(#loop)"/>
	</svg>`
	icon, err := ReadIconStream(strings.NewReader(content), IgnoreErrorMode)
	test.Error(t, err)
	d := &driver{}
	test.Error(t, icon.Draw(d, 1))
	test.That(t, len(d.paints) > 1)

	icon, err = ReadIconStream(strings.NewReader(content), StrictErrorMode)
	test.Error(t, err)
	test.That(t, icon.Draw(&driver{}, 1) != nil)
}
