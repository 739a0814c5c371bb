package svgmarker

import (
	"fmt"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
)

// Orient is the orientation of a marker.
type Orient struct {
	Auto         bool    // follow the direction of the path
	StartReverse bool    // with Auto, reverse the start marker
	Angle        float64 // fixed angle in radians, used when Auto is false
}

// resolve returns the rotation of a marker placed at a vertex with direction `angle`.
func (o Orient) resolve(angle float64, p Position) float64 {
	if !o.Auto {
		angle = o.Angle
	} else if o.StartReverse && p == Start {
		angle += math.Pi
	}
	// the tangents stored in the vertex stream point backward
	return angle + math.Pi
}

// ParseOrient parses an orient attribute: "auto", "auto-start-reverse"
// or an angle, in degrees by default. Units deg, rad, grad and turn are supported.
func ParseOrient(v string) (Orient, error) {
	v = strings.TrimSpace(v)
	switch v {
	case "auto":
		return Orient{Auto: true}, nil
	case "auto-start-reverse":
		return Orient{Auto: true, StartReverse: true}, nil
	}

	b := []byte(v)
	num, dim := parse.Dimension(b)
	if num == 0 {
		return Orient{}, fmt.Errorf("invalid orient %q", v)
	}
	f, n := strconv.ParseFloat(b[:num])
	if n != num {
		return Orient{}, fmt.Errorf("invalid orient %q", v)
	}
	switch unit := string(b[num : num+dim]); strings.ToLower(unit) {
	case "", "deg":
		f *= math.Pi / 180
	case "rad":
	case "grad":
		f *= math.Pi / 200
	case "turn":
		f *= 2 * math.Pi
	default:
		return Orient{}, fmt.Errorf("invalid orient unit %q", unit)
	}
	return Orient{Angle: f}, nil
}

// ParseUnits parses a markerUnits attribute.
func ParseUnits(v string) Units {
	if strings.TrimSpace(v) == "userSpaceOnUse" {
		return UserSpaceOnUse
	}
	return StrokeWidth
}

// ParseOverflow parses an overflow property, defaulting to hidden.
func ParseOverflow(v string) Overflow {
	switch strings.TrimSpace(v) {
	case "visible":
		return OverflowVisible
	case "scroll":
		return OverflowScroll
	case "auto":
		return OverflowAuto
	}
	return OverflowHidden
}

// ParseURL returns the fragment of a reference such as
// "url(#arrow)" or "#arrow". It returns an empty string
// for "none" or invalid references.
func ParseURL(v string) string {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "url(") && strings.HasSuffix(v, ")") {
		v = strings.TrimSpace(v[4 : len(v)-1])
		v = strings.Trim(v, `'"`)
	}
	if i := strings.IndexByte(v, '#'); i != -1 {
		return v[i+1:]
	}
	return ""
}

// ParseRefs resolves the markers of a path from its attributes:
// marker-start, marker-mid and marker-end, each defaulting to the
// marker shorthand.
func ParseRefs(attr func(name string) (string, bool)) Refs {
	shorthand, _ := attr("marker")
	get := func(name string) string {
		v, ok := attr(name)
		if !ok {
			v = shorthand
		}
		return ParseURL(v)
	}
	return Refs{Start: get("marker-start"), Mid: get("marker-mid"), End: get("marker-end")}
}
