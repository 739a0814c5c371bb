// Implements a raster backend to render SVG images,
// by wrapping rasterx.
package svgraster

import (
	"image"
	"image/color"
	"io"
	"math"

	"github.com/benoitkugler/svgmark/svgdraw"
	"github.com/benoitkugler/svgmark/svgicon"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgdraw.Driver  = (*Renderer)(nil)
	_ svgdraw.Filler  = filler{}
	_ svgdraw.Stroker = stroker{}
)

// Renderer rasterizes paths on an image, using a rasterx.ScannerGV.
type Renderer struct {
	scanner *rasterx.ScannerGV
	filler  filler  // we use separated instances
	stroker stroker // to avoid shared state
}

type filler struct {
	*rasterx.Filler
	scanner *rasterx.ScannerGV
}

type stroker struct {
	*rasterx.Dasher
	scanner *rasterx.ScannerGV
}

// NewRenderer returns a renderer drawing on `img`, whose
// bounds should start at (0, 0).
func NewRenderer(img *image.RGBA) *Renderer {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Renderer{
		scanner: scanner,
		filler:  filler{Filler: rasterx.NewFiller(w, h, scanner), scanner: scanner},
		stroker: stroker{Dasher: rasterx.NewDasher(w, h, scanner), scanner: scanner},
	}
}

// Options controls the size of the output image.
// A zero dimension is deduced from the other one and the
// aspect ratio of the icon, or from the icon view box.
type Options struct {
	Width, Height int
}

func (opts *Options) size(viewBox svgicon.Bounds) (w, h int) {
	if opts != nil {
		w, h = opts.Width, opts.Height
	}
	switch {
	case w == 0 && h == 0:
		return int(math.Ceil(viewBox.W)), int(math.Ceil(viewBox.H))
	case h == 0 && viewBox.W > 0:
		h = int(math.Ceil(float64(w) * viewBox.H / viewBox.W))
	case w == 0 && viewBox.H > 0:
		w = int(math.Ceil(float64(h) * viewBox.W / viewBox.H))
	}
	return w, h
}

// RasterSVGIconToImage uses a ScannerGV instance to renderer the
// icon into an image and returns it.
// `opts` may be nil to use the size of the icon.
func RasterSVGIconToImage(icon io.Reader, opts *Options) (*image.RGBA, error) {
	parsedIcon, err := svgicon.ReadIconStream(icon, svgicon.IgnoreErrorMode)
	if err != nil {
		return nil, err
	}
	return RasterIcon(parsedIcon, opts)
}

// RasterIcon renders an already parsed icon, scaled to
// fill the returned image.
func RasterIcon(icon *svgicon.SvgIcon, opts *Options) (*image.RGBA, error) {
	w, h := opts.size(icon.ViewBox)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	icon.SetTarget(0, 0, float64(w), float64(h))
	if err := icon.Draw(NewRenderer(img), 1.0); err != nil {
		return nil, err
	}
	return img, nil
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (svgdraw.Filler, svgdraw.Stroker) {
	var (
		f svgdraw.Filler
		s svgdraw.Stroker
	)
	if willFill {
		f = rd.filler
	}
	if willStroke {
		s = rd.stroker
	}
	return f, s
}

func setClip(scanner *rasterx.ScannerGV, clip fixed.Rectangle26_6) {
	if clip.Empty() {
		scanner.SetClip(image.Rectangle{})
		return
	}
	scanner.SetClip(image.Rect(clip.Min.X.Floor(), clip.Min.Y.Floor(), clip.Max.X.Ceil(), clip.Max.Y.Ceil()))
}

func (f filler) SetColor(c color.Color, opacity float64) {
	f.Filler.SetColor(rasterx.ApplyOpacity(c, opacity))
}

func (f filler) SetClip(clip fixed.Rectangle26_6) { setClip(f.scanner, clip) }

func (s stroker) SetColor(c color.Color, opacity float64) {
	s.Dasher.SetColor(rasterx.ApplyOpacity(c, opacity))
}

func (s stroker) SetClip(clip fixed.Rectangle26_6) { setClip(s.scanner, clip) }

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgdraw.Round:     rasterx.Round,
		svgdraw.Bevel:     rasterx.Bevel,
		svgdraw.Miter:     rasterx.Miter,
		svgdraw.MiterClip: rasterx.MiterClip,
		svgdraw.Arc:       rasterx.Arc,
		svgdraw.ArcClip:   rasterx.ArcClip,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgdraw.ButtCap:      rasterx.ButtCap,
		svgdraw.SquareCap:    rasterx.SquareCap,
		svgdraw.RoundCap:     rasterx.RoundCap,
		svgdraw.CubicCap:     rasterx.CubicCap,
		svgdraw.QuadraticCap: rasterx.QuadraticCap,
	}

	gapToFunc = [...]rasterx.GapFunc{
		svgdraw.FlatGap:      rasterx.FlatGap,
		svgdraw.RoundGap:     rasterx.RoundGap,
		svgdraw.CubicGap:     rasterx.CubicGap,
		svgdraw.QuadraticGap: rasterx.QuadraticGap,
	}
)

func (s stroker) SetStrokeOptions(options svgdraw.StrokeOptions) {
	s.SetStroke(
		options.LineWidth, options.Join.MiterLimit, capToFunc[options.Join.LeadLineCap],
		capToFunc[options.Join.TrailLineCap], gapToFunc[options.Join.LineGap],
		joinToJoin[options.Join.LineJoin], options.Dash.Dash, options.Dash.DashOffset,
	)
}
