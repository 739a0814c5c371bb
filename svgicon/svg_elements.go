package svgicon

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

func init() {
	// avoids cyclical static declaration
	// called on package initialization
	drawFuncs["use"] = useF
	drawFuncs["svg"] = svgF
	drawFuncs["g"] = gF
}

// drawFunc draws an element, whose transform and style
// have already been applied
type drawFunc func(r *renderer, el *element) error

// drawFuncs lists the supported elements.
// Elements mapped to nil are not drawn directly.
var drawFuncs = map[string]drawFunc{
	"line":     shapeF(lineData),
	"rect":     shapeF(rectData),
	"circle":   shapeF(circleData),
	"ellipse":  shapeF(circleData), // circleData handles ellipse also
	"polyline": shapeF(polylineData),
	"polygon":  shapeF(polygonData),
	"path":     shapeF(pathData),
	"desc":     nil,
	"title":    nil,
	"defs":     nil,
	"marker":   nil,
}

// markable elements may have markers on their vertices
var markable = map[string]bool{
	"path":     true,
	"line":     true,
	"polyline": true,
	"polygon":  true,
}

func gF(r *renderer, el *element) error {
	for _, child := range el.children {
		if err := r.drawElement(child); err != nil {
			return err
		}
	}
	return nil
}

// svgF draws a nested svg element, the root one being
// positionned by SetTarget
func svgF(r *renderer, el *element) error {
	if el.parent != nil {
		x, y, err := r.icon.position(el)
		if err != nil {
			return err
		}
		r.ctx.Translate(x, y)
	}
	return gF(r, el)
}

func useF(r *renderer, el *element) error {
	href := el.attrs["href"]
	if href == "" {
		return errors.New("only use tags with href is supported")
	}
	if !strings.HasPrefix(href, "#") {
		return errors.New("only the ID CSS selector is supported")
	}
	target, ok := r.icon.ids[href[1:]]
	if !ok {
		return fmt.Errorf("href ID %s in use statement was not found", href)
	}
	x, y, err := r.icon.position(el)
	if err != nil {
		return err
	}
	r.ctx.Translate(x, y)
	return r.drawElement(target)
}

// shapeF returns the drawing function of a basic shape,
// which is converted to path data
func shapeF(data func(s *SvgIcon, el *element) (string, error)) drawFunc {
	return func(r *renderer, el *element) error {
		d, err := data(r.icon, el)
		if err != nil { // the valid part of the shape is still drawn
			if err = r.icon.report(err); err != nil {
				return err
			}
		}
		if d == "" { // not drawn, but not an error
			return nil
		}
		r.drawShape(el, d)
		return nil
	}
}

// lengths reads the given attributes, defaulting to 0
func (s *SvgIcon) lengths(el *element, names []string, axes []axis) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		v, ok := el.attrs[name]
		if !ok {
			continue
		}
		f, err := s.parseLength(v, axes[i])
		if err != nil {
			return nil, fmt.Errorf("element %s, attribute %s: %w", el.tag, name, err)
		}
		out[i] = f
	}
	return out, nil
}

func (s *SvgIcon) position(el *element) (x, y float64, err error) {
	l, err := s.lengths(el, []string{"x", "y"}, []axis{widthPercentage, heightPercentage})
	if err != nil {
		return 0, 0, err
	}
	return l[0], l[1], nil
}

func pathData(_ *SvgIcon, el *element) (string, error) {
	return el.attrs["d"], nil
}

func lineData(s *SvgIcon, el *element) (string, error) {
	l, err := s.lengths(el, []string{"x1", "y1", "x2", "y2"},
		[]axis{widthPercentage, heightPercentage, widthPercentage, heightPercentage})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("M %g %g L %g %g", l[0], l[1], l[2], l[3]), nil
}

func rectData(s *SvgIcon, el *element) (string, error) {
	l, err := s.lengths(el, []string{"x", "y", "width", "height", "rx", "ry"},
		[]axis{widthPercentage, heightPercentage, widthPercentage, heightPercentage, widthPercentage, heightPercentage})
	if err != nil {
		return "", err
	}
	x, y, w, h := l[0], l[1], l[2], l[3]
	if w <= 0 || h <= 0 {
		return "", nil
	}
	_, hasRx := el.attrs["rx"]
	_, hasRy := el.attrs["ry"]
	rx, ry := l[4], l[5]
	if hasRx && !hasRy {
		ry = rx
	} else if hasRy && !hasRx {
		rx = ry
	}
	rx, ry = math.Min(math.Abs(rx), w/2), math.Min(math.Abs(ry), h/2)
	if rx == 0 || ry == 0 {
		return fmt.Sprintf("M %g %g H %g V %g H %g Z", x, y, x+w, y+h, x), nil
	}
	return fmt.Sprintf("M %g %g H %g A %g %g 0 0 1 %g %g V %g A %g %g 0 0 1 %g %g "+
		"H %g A %g %g 0 0 1 %g %g V %g A %g %g 0 0 1 %g %g Z",
		x+rx, y, x+w-rx, rx, ry, x+w, y+ry,
		y+h-ry, rx, ry, x+w-rx, y+h,
		x+rx, rx, ry, x, y+h-ry,
		y+ry, rx, ry, x+rx, y), nil
}

func circleData(s *SvgIcon, el *element) (string, error) {
	l, err := s.lengths(el, []string{"cx", "cy", "r", "rx", "ry"},
		[]axis{widthPercentage, heightPercentage, diagPercentage, widthPercentage, heightPercentage})
	if err != nil {
		return "", err
	}
	cx, cy, rx, ry := l[0], l[1], l[3], l[4]
	if el.tag == "circle" {
		rx, ry = l[2], l[2]
	}
	if rx <= 0 || ry <= 0 { // not drawn, but not an error
		return "", nil
	}
	return fmt.Sprintf("M %g %g A %g %g 0 0 1 %g %g A %g %g 0 0 1 %g %g Z",
		cx+rx, cy, rx, ry, cx-rx, cy, rx, ry, cx+rx, cy), nil
}

func polylineData(_ *SvgIcon, el *element) (string, error) {
	points, err := readNumbers(el.attrs["points"])
	if len(points)%2 != 0 {
		points = points[:len(points)-1]
		if err == nil {
			err = errors.New("polygon has odd number of points")
		}
	}
	if len(points) < 4 {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M %g %g", points[0], points[1])
	for i := 2; i < len(points); i += 2 {
		fmt.Fprintf(&b, " L %g %g", points[i], points[i+1])
	}
	return b.String(), err
}

func polygonData(s *SvgIcon, el *element) (string, error) {
	d, err := polylineData(s, el)
	if d != "" {
		d += " Z"
	}
	return d, err
}
