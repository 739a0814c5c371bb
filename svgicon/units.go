package svgicon

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/image/colornames"
)

const (
	dpi      = 96.
	fontSize = 16. // default font size, in pixels
)

// percentage reference of a length
type axis uint8

const (
	widthPercentage axis = iota
	heightPercentage
	diagPercentage
)

// parseFloat parses a whole number, such as "1.5e3".
func parseFloat(v string) (float64, error) {
	v = strings.TrimSpace(v)
	f, n := strconv.ParseFloat([]byte(v))
	if n == 0 || n != len(v) {
		return 0, fmt.Errorf("invalid number %q", v)
	}
	return f, nil
}

// parseLength parses a length with an optional unit, resolving
// percentages against the view box.
func (s *SvgIcon) parseLength(v string, ax axis) (float64, error) {
	v = strings.TrimSpace(v)
	b := []byte(v)
	num, dim := parse.Dimension(b)
	if num == 0 || num+dim != len(b) {
		return 0, fmt.Errorf("invalid length %q", v)
	}
	f, _ := strconv.ParseFloat(b[:num])
	switch unit := strings.ToLower(v[num:]); unit {
	case "", "px":
		return f, nil
	case "pt":
		return f * dpi / 72, nil
	case "pc":
		return f * dpi / 6, nil
	case "mm":
		return f * dpi / 25.4, nil
	case "cm":
		return f * dpi / 2.54, nil
	case "q":
		return f * dpi / (4 * 25.4), nil
	case "in":
		return f * dpi, nil
	case "em":
		return f * fontSize, nil
	case "ex":
		return f * fontSize / 2, nil
	case "%":
		var ref float64
		switch ax {
		case widthPercentage:
			ref = s.ViewBox.W
		case heightPercentage:
			ref = s.ViewBox.H
		case diagPercentage:
			ref = math.Hypot(s.ViewBox.W, s.ViewBox.H) / math.Sqrt2
		}
		return f * ref / 100, nil
	default:
		return 0, fmt.Errorf("unsupported unit in length %q", v)
	}
}

// readNumbers parses a list of numbers separated by spaces or commas,
// such as the value of a points or viewBox attribute.
func readNumbers(v string) ([]float64, error) {
	b := []byte(v)
	var out []float64
	for i := 0; i < len(b); {
		switch b[i] {
		case ' ', ',', '\n', '\r', '\t':
			i++
			continue
		}
		f, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			return out, fmt.Errorf("invalid number list %q", v)
		}
		out = append(out, f)
		i += n
	}
	return out, nil
}

// parseSVGColor returns nil for "none"
func parseSVGColor(v string) (color.Color, error) {
	v = strings.TrimSpace(v)
	lower := strings.ToLower(v)
	switch lower {
	case "none", "transparent", "":
		return nil, nil
	case "currentcolor":
		return color.NRGBA{A: 0xff}, nil
	}
	if c, ok := colornames.Map[lower]; ok {
		return c, nil
	}

	if strings.HasPrefix(v, "#") {
		hex := v[1:]
		var r, g, b uint8
		switch len(hex) {
		case 3:
			n, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
			if err != nil || n != 3 {
				return nil, fmt.Errorf("invalid color %q", v)
			}
			r, g, b = r*17, g*17, b*17
		case 6:
			n, err := fmt.Sscanf(hex, "%2x%2x%2x", &r, &g, &b)
			if err != nil || n != 3 {
				return nil, fmt.Errorf("invalid color %q", v)
			}
		default:
			return nil, fmt.Errorf("invalid color %q", v)
		}
		return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
	}

	var args string
	switch {
	case strings.HasPrefix(lower, "rgb(") && strings.HasSuffix(lower, ")"):
		args = lower[4 : len(lower)-1]
	case strings.HasPrefix(lower, "rgba(") && strings.HasSuffix(lower, ")"):
		args = lower[5 : len(lower)-1]
	default:
		return nil, fmt.Errorf("invalid color %q", v)
	}
	fields := splitOnCommaOrSpace(args)
	if len(fields) != 3 && len(fields) != 4 {
		return nil, fmt.Errorf("invalid color %q", v)
	}
	var comps [4]uint8
	comps[3] = 0xff
	for i, field := range fields {
		f, err := readFraction(field)
		if err != nil {
			return nil, fmt.Errorf("invalid color %q: %w", v, err)
		}
		if i < 3 && !strings.HasSuffix(field, "%") { // 0-255 range
			f /= 255
		}
		comps[i] = uint8(math.Round(math.Max(0, math.Min(1, f)) * 0xff))
	}
	return color.NRGBA{R: comps[0], G: comps[1], B: comps[2], A: comps[3]}, nil
}

// readFraction parses a number or a percentage, returned as a fraction.
func readFraction(v string) (f float64, err error) {
	v = strings.TrimSpace(v)
	d := 1.0
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, err = parseFloat(v)
	f /= d
	return
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' '
		})
}
