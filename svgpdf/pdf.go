// Implements a PDF backend to render SVG images,
// by wrapping codeberg.org/go-pdf/fpdf.
package svgpdf

import (
	"fmt"
	"image/color"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"github.com/benoitkugler/svgmark/svgdraw"
	"github.com/benoitkugler/svgmark/svgicon"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgdraw.Driver  = Renderer{}
	_ svgdraw.Filler  = (*filler)(nil)
	_ svgdraw.Stroker = (*stroker)(nil)
)

// Renderer writes paths to a PDF page.
type Renderer struct {
	pdf *fpdf.Fpdf
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	pdf     *fpdf.Fpdf
	clipped bool // a clip rectangle must be ended after drawing
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
}

// implements the stroking operation
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the given `pdf`, on the current page.
func NewRenderer(pdf *fpdf.Fpdf) Renderer {
	return Renderer{pdf: pdf}
}

// RenderSVGIconToPDF renders the icon in a one page PDF document,
// whose size is the one of the icon, and writes it to `w`.
func RenderSVGIconToPDF(icon io.Reader, w io.Writer) error {
	parsedIcon, err := svgicon.ReadIconStream(icon, svgicon.IgnoreErrorMode)
	if err != nil {
		return err
	}
	return RenderIcon(parsedIcon, w)
}

// RenderIcon writes an already parsed icon as a one page
// PDF document, using points as unit.
func RenderIcon(icon *svgicon.SvgIcon, w io.Writer) error {
	width, height := icon.ViewBox.W, icon.ViewBox.H
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid icon size %gx%g", width, height)
	}
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           fpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	icon.SetTarget(0, 0, width, height)
	if err := icon.Draw(NewRenderer(pdf), 1.); err != nil {
		return err
	}
	return pdf.Output(w)
}

func (r Renderer) SetupDrawers(willFill, willStroke bool) (svgdraw.Filler, svgdraw.Stroker) {
	var (
		f svgdraw.Filler
		s svgdraw.Stroker
	)
	if willFill {
		f = &filler{pather: pather{pdf: r.pdf}, useNonZeroWinding: true}
	}
	if willStroke {
		s = &stroker{pather: pather{pdf: r.pdf}}
	}
	return f, s
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func (p *pather) Clear() {}

func (p *pather) Start(a fixed.Point26_6) {
	p.pdf.MoveTo(fixedTof(a))
}

func (p *pather) Line(b fixed.Point26_6) {
	p.pdf.LineTo(fixedTof(b))
}

func (p *pather) QuadBezier(b fixed.Point26_6, c fixed.Point26_6) {
	cx, cy := fixedTof(b)
	x, y := fixedTof(c)
	p.pdf.CurveTo(cx, cy, x, y)
}

func (p *pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.pdf.ClosePath()
	}
}

// SetClip must be called before the path is started.
func (p *pather) SetClip(clip fixed.Rectangle26_6) {
	if clip.Empty() {
		return
	}
	x0, y0 := fixedTof(clip.Min)
	x1, y1 := fixedTof(clip.Max)
	p.pdf.ClipRect(x0, y0, x1-x0, y1-y0, false)
	p.clipped = true
}

// draw paints the path and ends the clipping, if any
func (p *pather) draw(styleStr string) {
	p.pdf.DrawPath(styleStr)
	if p.clipped {
		p.pdf.ClipEnd()
		p.clipped = false
	}
}

func toRGB(c color.Color) (r, g, b int, alpha float64) {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(nc.R), int(nc.G), int(nc.B), float64(nc.A) / 0xff
}

func (f *filler) SetColor(c color.Color, opacity float64) {
	r, g, b, a := toRGB(c)
	f.pdf.SetFillColor(r, g, b)
	f.pdf.SetAlpha(opacity*a, "")
}

func (f *filler) Draw() {
	styleStr := "F*"
	if f.useNonZeroWinding {
		styleStr = "F"
	}
	f.draw(styleStr)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (s *stroker) SetColor(c color.Color, opacity float64) {
	r, g, b, a := toRGB(c)
	s.pdf.SetDrawColor(r, g, b)
	s.pdf.SetAlpha(opacity*a, "")
}

var (
	capStyles  = [...]string{svgdraw.ButtCap: "butt", svgdraw.SquareCap: "square", svgdraw.RoundCap: "round"}
	joinStyles = [...]string{svgdraw.Round: "round", svgdraw.Bevel: "bevel", svgdraw.Miter: "miter"}
)

func (s *stroker) SetStrokeOptions(options svgdraw.StrokeOptions) {
	s.pdf.SetLineWidth(float64(options.LineWidth) / 64)

	capStyle := "butt"
	if int(options.Join.TrailLineCap) < len(capStyles) && capStyles[options.Join.TrailLineCap] != "" {
		capStyle = capStyles[options.Join.TrailLineCap]
	}
	s.pdf.SetLineCapStyle(capStyle)

	joinStyle := "miter" // arcs and clipped miters are not supported by PDF
	if int(options.Join.LineJoin) < len(joinStyles) && joinStyles[options.Join.LineJoin] != "" {
		joinStyle = joinStyles[options.Join.LineJoin]
	}
	s.pdf.SetLineJoinStyle(joinStyle)

	dash := options.Dash.Dash
	if dash == nil {
		dash = []float64{}
	}
	s.pdf.SetDashPattern(dash, options.Dash.DashOffset)
}

func (s *stroker) Draw() {
	s.draw("D")
}
