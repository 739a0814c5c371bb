package svgmarker

import (
	"math"
	"strings"
)

// Alignment is the alignment of a viewBox in its viewport, along one axis.
type Alignment uint8

const (
	AlignMin Alignment = iota
	AlignMid
	AlignMax
)

// AspectRatio is the value of a preserveAspectRatio attribute.
type AspectRatio struct {
	None  bool // no uniform scaling
	X, Y  Alignment
	Slice bool // the viewBox covers the viewport, instead of fitting in it (meet)
}

// DefaultAspectRatio is "xMidYMid meet".
var DefaultAspectRatio = AspectRatio{X: AlignMid, Y: AlignMid}

func parseAlignment(s string) (Alignment, bool) {
	switch s {
	case "min":
		return AlignMin, true
	case "mid":
		return AlignMid, true
	case "max":
		return AlignMax, true
	}
	return 0, false
}

// ParseAspectRatio parses a preserveAspectRatio attribute, such as
// "xMaxYMid slice". Invalid values return DefaultAspectRatio.
func ParseAspectRatio(v string) AspectRatio {
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return DefaultAspectRatio
	}
	if fields[0] == "defer" { // only meaningful for images
		fields = fields[1:]
		if len(fields) == 0 {
			return DefaultAspectRatio
		}
	}
	var out AspectRatio
	if fields[0] == "none" {
		out.None = true
	} else {
		align := strings.ToLower(fields[0])
		if len(align) != 8 || align[0] != 'x' || align[4] != 'y' {
			return DefaultAspectRatio
		}
		x, okX := parseAlignment(align[1:4])
		y, okY := parseAlignment(align[5:])
		if !okX || !okY {
			return DefaultAspectRatio
		}
		out.X, out.Y = x, y
	}
	if len(fields) > 1 && fields[1] == "slice" {
		out.Slice = true
	}
	return out
}

// preserveRatio returns the scale mapping the viewBox of `m` to its
// viewport, and the translation to its reference point.
func preserveRatio(m *Marker) (scaleX, scaleY, translateX, translateY float64) {
	scaleX, scaleY = 1, 1
	if m.ViewBox.W > 0 {
		scaleX = m.Width / m.ViewBox.W
	}
	if m.ViewBox.H > 0 {
		scaleY = m.Height / m.ViewBox.H
	}
	if !m.AspectRatio.None {
		scale := math.Min(scaleX, scaleY)
		if m.AspectRatio.Slice {
			scale = math.Max(scaleX, scaleY)
		}
		scaleX, scaleY = scale, scale
	}
	return scaleX, scaleY, -m.RefX, -m.RefY
}

// clipBox returns the viewport of `m`, in viewBox coordinates.
func clipBox(m *Marker, scaleX, scaleY float64) Box {
	width, height := m.Width/scaleX, m.Height/scaleY
	alignX, alignY := m.AspectRatio.X, m.AspectRatio.Y
	if m.AspectRatio.None {
		alignX, alignY = AlignMin, AlignMin
	}
	return Box{
		X: align(m.ViewBox.X, m.ViewBox.W, width, alignX),
		Y: align(m.ViewBox.Y, m.ViewBox.H, height, alignY),
		W: width,
		H: height,
	}
}

func align(start, viewBoxLength, length float64, a Alignment) float64 {
	switch a {
	case AlignMid:
		return start + (viewBoxLength-length)/2
	case AlignMax:
		return start + viewBoxLength - length
	}
	return start
}
