package svgpath

import (
	"math"
	"testing"

	"github.com/benoitkugler/svgmark/svgdraw"
	"github.com/tdewolff/test"
)

// at returns the point of the arc at `angle`, relative to the start point
func (arc CenterArc) at(angle float64) Point {
	sin, cos := math.Sincos(angle)
	local := Point{arc.Center.X + arc.Radius*cos, (arc.Center.Y + arc.Radius*sin) * arc.Ratio}
	return local.rotate(arc.Rotation)
}

func near(p, q Point, eps float64) bool {
	return math.Abs(p.X-q.X) <= eps && math.Abs(p.Y-q.Y) <= eps
}

func TestArcToCenterEndpoints(t *testing.T) {
	var tts = []struct {
		end          Point
		rx, ry, rot  float64
		large, sweep bool
	}{
		{Point{10, 0}, 5, 5, 0, false, true},
		{Point{10, 0}, 5, 5, 0, false, false},
		{Point{10, 5}, 20, 10, 0, true, true},
		{Point{10, 5}, 20, 10, 0, false, true},
		{Point{-4, 7}, 6, 3, math.Pi / 6, true, false},
		{Point{10, 5}, 2, 1, math.Pi / 6, false, true}, // radii scaled up
		{Point{0, 30}, 1, 1, 0, true, true},
	}
	for _, tt := range tts {
		arc := ArcToCenter(tt.end, tt.rx, tt.ry, tt.rot, tt.large, tt.sweep)
		test.That(t, near(arc.at(arc.Angle1), Point{}, 1e-9), "start", tt, arc.at(arc.Angle1))
		test.That(t, near(arc.at(arc.Angle2), tt.end, 1e-9), "end", tt, arc.at(arc.Angle2))
		test.Float(t, arc.Ratio, tt.ry/tt.rx)
		test.T(t, arc.Sweep, tt.sweep)
	}
}

func TestArcToCenterLargeFlag(t *testing.T) {
	// the large arc goes the long way around the center
	small := ArcToCenter(Point{10, 0}, 10, 10, 0, false, true)
	large := ArcToCenter(Point{10, 0}, 10, 10, 0, true, true)
	test.That(t, small.Center.Y > 0, small.Center)
	test.That(t, large.Center.Y < 0, large.Center)
}

func TestArcOnContext(t *testing.T) {
	ctx := svgdraw.NewContext()
	Draw(ctx, "M0 0 A5 5 0 0 1 10 0")

	x, y := ctx.CurrentPoint()
	test.That(t, near(Point{x, y}, Point{10, 0}, 1./64), x, y)

	// sweep 1 goes through the top half, in a y-down space
	extents, ok := ctx.PathExtents()
	test.That(t, ok)
	test.That(t, math.Abs(float64(extents.Min.Y)/64+5) <= 2./64, extents)
	test.That(t, math.Abs(float64(extents.Max.Y)/64) <= 1./64, extents)
}

func TestDegenerateArcIsLine(t *testing.T) {
	for _, d := range []string{"M1 1 A0 5 0 0 1 11 1", "M1 1 a5 0 0 1 1 10 0"} {
		ctx := svgdraw.NewContext()
		Draw(ctx, d)
		test.T(t, ctx.CopyPath().String(), "M1.000,1.000 L11.000,1.000", d)
	}
}
