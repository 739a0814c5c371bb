package svgdraw

import (
	"image/color"

	"golang.org/x/image/math/fixed"
)

// PathStyle holds the painting options of a path.
// Lengths are in user space.
type PathStyle struct {
	FillOpacity, LineOpacity float64
	LineWidth                float64
	UseNonZeroWinding        bool

	Join                    JoinOptions
	Dash                    DashOptions
	FillerColor, LinerColor color.Color // nil disables filling or stroking
}

// DefaultStyle sets the default PathStyle to fill black, winding rule,
// full opacity, no stroke, ButtCap line end and Bevel line connect.
var DefaultStyle = PathStyle{
	FillOpacity:       1.0,
	LineOpacity:       1.0,
	LineWidth:         1.0,
	UseNonZeroWinding: true,
	Join: JoinOptions{
		MiterLimit:   4 * 64,
		LineJoin:     Bevel,
		TrailLineCap: ButtCap,
	},
	FillerColor: color.NRGBA{A: 0xff},
}

// Paint fills, then strokes, the current path with the given style,
// and clears the path. `opacity` is applied on top of the style opacities.
// Nothing is painted when the clip region is empty.
func (c *Context) Paint(d Driver, style PathStyle, opacity float64) {
	defer c.NewPath()

	var clip fixed.Rectangle26_6
	if c.clipped {
		if c.clip.Empty() {
			return
		}
		clip = c.clip
	}

	filler, stroker := d.SetupDrawers(style.FillerColor != nil, style.LinerColor != nil)
	if filler != nil { // nil color disable filling
		filler.Clear()
		filler.SetWinding(style.UseNonZeroWinding)
		filler.SetClip(clip)

		c.path.replay(filler)

		filler.SetColor(style.FillerColor, style.FillOpacity*opacity)
		filler.Draw()
		filler.SetWinding(true) // default is true
	}

	if stroker != nil { // nil color disable lining
		stroker.Clear()
		stroker.SetClip(clip)

		scale := c.matrixScale()
		lineGap := style.Join.LineGap
		if lineGap == NilGap {
			lineGap = DefaultStyle.Join.LineGap
		}
		lineCap := style.Join.TrailLineCap
		if lineCap == NilCap {
			lineCap = DefaultStyle.Join.TrailLineCap
		}
		leadLineCap := lineCap
		if style.Join.LeadLineCap != NilCap {
			leadLineCap = style.Join.LeadLineCap
		}
		var dash DashOptions
		if len(style.Dash.Dash) != 0 {
			dash.Dash = make([]float64, len(style.Dash.Dash))
			for i, v := range style.Dash.Dash {
				dash.Dash[i] = v * scale
			}
			dash.DashOffset = style.Dash.DashOffset * scale
		}
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth: fixed.Int26_6(style.LineWidth * scale * 64),
			Join: JoinOptions{
				MiterLimit:   style.Join.MiterLimit,
				LineJoin:     style.Join.LineJoin,
				LeadLineCap:  leadLineCap,
				TrailLineCap: lineCap,
				LineGap:      lineGap,
			},
			Dash: dash,
		})

		c.path.replay(stroker)

		stroker.SetColor(style.LinerColor, style.LineOpacity*opacity)
		stroker.Draw()
	}
}
