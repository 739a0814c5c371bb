package svgpath

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/tdewolff/test"
)

// recorder is a Surface logging the primitives it receives,
// without any transformation support.
type recorder struct {
	ops     []string
	x, y    float64
	sx, sy  float64 // subpath start
	current bool
}

func (r *recorder) log(format string, args ...interface{}) {
	r.ops = append(r.ops, fmt.Sprintf(format, args...))
}

func (r *recorder) HasCurrentPoint() bool        { return r.current }
func (r *recorder) CurrentPoint() (x, y float64) { return r.x, r.y }

func (r *recorder) MoveTo(x, y float64) {
	r.log("M %g %g", x, y)
	r.x, r.y, r.sx, r.sy, r.current = x, y, x, y, true
}

func (r *recorder) RelMoveTo(dx, dy float64) {
	r.log("m %g %g", dx, dy)
	r.x, r.y = r.x+dx, r.y+dy
	r.sx, r.sy = r.x, r.y
}

func (r *recorder) LineTo(x, y float64) {
	r.log("L %g %g", x, y)
	r.x, r.y = x, y
}

func (r *recorder) RelLineTo(dx, dy float64) {
	r.log("l %g %g", dx, dy)
	r.x, r.y = r.x+dx, r.y+dy
}

func (r *recorder) CurveTo(x1, y1, x2, y2, x3, y3 float64) {
	r.log("C %g %g %g %g %g %g", x1, y1, x2, y2, x3, y3)
	r.x, r.y = x3, y3
}

func (r *recorder) RelCurveTo(dx1, dy1, dx2, dy2, dx3, dy3 float64) {
	r.log("c %g %g %g %g %g %g", dx1, dy1, dx2, dy2, dx3, dy3)
	r.x, r.y = r.x+dx3, r.y+dy3
}

func (r *recorder) Arc(xc, yc, radius, angle1, angle2 float64) { r.log("arc") }

func (r *recorder) ArcNegative(xc, yc, radius, angle1, angle2 float64) { r.log("arc-") }

func (r *recorder) ClosePath() {
	r.log("Z")
	r.x, r.y = r.sx, r.sy
}

func (r *recorder) Save()                          { r.log("save") }
func (r *recorder) Restore()                       { r.log("restore") }
func (r *recorder) Translate(tx, ty float64)       { r.log("translate") }
func (r *recorder) Rotate(angle float64)           { r.log("rotate") }
func (r *recorder) Scale(sx, sy float64)           { r.log("scale") }
func (r *recorder) SetTolerance(tolerance float64) { r.log("tolerance") }

func (r *recorder) String() string { return strings.Join(r.ops, "; ") }

func TestLines(t *testing.T) {
	var tts = []struct {
		d        string
		vertices string
	}{
		{"M0 0 L10 0 L10 10", "(0,0) <3.142,0.000> (10,0) <1.571,1.571> (10,10)"},
		{"M0 0 10 0 10 10", "(0,0) <3.142,0.000> (10,0) <1.571,1.571> (10,10)"},
		{"M0,0H10V10", "(0,0) <3.142,0.000> (10,0) <1.571,1.571> (10,10)"},
		{"m0 0 h10 v10", "(0,0) <3.142,0.000> (10,0) <1.571,1.571> (10,10)"},
		{"M0 0 L10 0 Z L5 5", "(0,0) <3.142,0.000> (10,0) | (0,0) <2.356,0.785> (5,5)"},
		{"Z M10 10 L20 20", "(10,10) <2.356,0.785> (20,20)"},
		{"M0 0 L10 0 M20 20 L30 20", "(0,0) <3.142,0.000> (10,0) | (20,20) <3.142,0.000> (30,20)"},
		{"M0 0 L10 0 Z M20 20", "(0,0) <3.142,0.000> (10,0) | (20,20)"},
	}
	for _, tt := range tts {
		t.Run(tt.d, func(t *testing.T) {
			test.T(t, Draw(&recorder{}, tt.d).String(), tt.vertices)
		})
	}
}

func TestSurfaceOperations(t *testing.T) {
	var tts = []struct {
		d   string
		ops string
	}{
		{"M0 0 L10 0 Z L5 5", "M 0 0; M 0 0; L 10 0; Z; L 5 5"},
		{"Z M10 10 L20 20", "M 0 0; M 10 10; L 20 20"},
		{"m1 1 2 2", "M 0 0; m 1 1; l 2 2"},
		{"M0 0 C10 10 20 10 30 0 S50 -10 60 0", "M 0 0; M 0 0; C 10 10 20 10 30 0; C 40 -10 50 -10 60 0"},
		{"M0 0 L5 5 S10 10 20 0", "M 0 0; M 0 0; L 5 5; C 5 5 10 10 20 0"},
		{"M0 0 Q30 30 60 0 T120 0", "M 0 0; M 0 0; C 20 20 40 20 60 0; C 80 -20 100 -20 120 0"},
		{"M0 0 q30 30 60 0", "M 0 0; M 0 0; c 20 20 40 20 60 0"},
		{"M0 0 A0 5 0 0 1 10 0", "M 0 0; M 0 0; l 10 0"},
		{"M5 5 A5 5 0 0 1 5 5", "M 0 0; M 5 5"},
		{"M0 0 A5 5 0 0 1 10 0", "M 0 0; M 0 0; tolerance; save; translate; rotate; scale; arc; restore"},
		{"M0 0 A5 5 0 0 0 10 0", "M 0 0; M 0 0; tolerance; save; translate; rotate; scale; arc-; restore"},
	}
	for _, tt := range tts {
		t.Run(tt.d, func(t *testing.T) {
			r := &recorder{}
			Draw(r, tt.d)
			test.T(t, r.String(), tt.ops)
		})
	}
}

func TestCurrentPointOfSurface(t *testing.T) {
	r := &recorder{}
	r.MoveTo(5, 5)
	vs := Draw(r, "l10 0")
	test.T(t, vs.String(), "(5,5) <3.142,0.000> (15,5)")
	test.T(t, r.String(), "M 5 5; l 10 0")
}

func TestMalformedData(t *testing.T) {
	var tts = []struct {
		d       string
		anchors []Point
	}{
		{"", nil},
		{"###", nil},
		{"  foo M1 1", []Point{{1, 1}}},
		{"M0 0 L10 0 L5 x L20 20", []Point{{0, 0}, {10, 0}}},
		{"M0 0 L10", []Point{{0, 0}}},
		{"M0 0 L1 1 Z 5 5", []Point{{0, 0}, {1, 1}}},
		{"M0 0 A5 5 0 2 1 10 0 L20 0", []Point{{0, 0}, {20, 0}}},
		{"M0 0 A5 5 0 1", []Point{{0, 0}}},
		{"M0 0 C1 2 3", []Point{{0, 0}}},
		{"M10-5.5.5", []Point{{10, -5.5}}},
	}
	for _, tt := range tts {
		t.Run(tt.d, func(t *testing.T) {
			test.T(t, Draw(&recorder{}, tt.d).Anchors(), tt.anchors)
		})
	}
}

func TestArcTangents(t *testing.T) {
	vs := Draw(&recorder{}, "M0 0 A5 5 0 0 1 10 0")
	test.T(t, len(vs), 3)
	tangent, ok := vs[1].(Tangent)
	test.That(t, ok, "expected a tangent")
	test.Float(t, math.Abs(tangent.In), math.Pi)
	test.Float(t, tangent.Out, 0)
	test.T(t, vs[2], Vertex(Anchor{10, 0}))
}

func TestLineTangentsAreOpposite(t *testing.T) {
	for _, d := range []string{"M0 0 L3 4", "M1 1 L-2 7", "M0 0 l0 -3", "M0 0 h-4"} {
		vs := Draw(&recorder{}, d)
		tangent := vs[1].(Tangent)
		test.Float(t, tangent.In+tangent.Out, math.Pi, d)
	}
}
