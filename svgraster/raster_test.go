package svgraster

import (
	"bytes"
	"image/png"
	"os"
	"strings"
	"testing"

	"github.com/benoitkugler/svgmark/svgicon"
	"github.com/tdewolff/test"
)

func TestRasterFill(t *testing.T) {
	img, err := RasterSVGIconToImage(strings.NewReader(`<svg viewBox="0 0 10 10">
		<rect width="5" height="10" fill="red"/>
		<rect x="5" width="5" height="10" fill="none" stroke="blue"/>
	</svg>`), &Options{Width: 20})
	test.Error(t, err)
	test.T(t, img.Bounds().Dx(), 20)
	test.T(t, img.Bounds().Dy(), 20)

	r, g, b, a := img.At(4, 10).RGBA()
	test.That(t, r > 0xf000 && g < 0x1000 && b < 0x1000 && a > 0xf000, r, g, b, a)

	// inside the stroked rectangle, nothing is painted
	_, _, _, a = img.At(15, 10).RGBA()
	test.T(t, a, uint32(0))

	// on its border, the stroke is blue
	r, _, b, _ = img.At(19, 10).RGBA()
	test.That(t, b > r, r, b)
}

func TestRasterSize(t *testing.T) {
	vb := svgicon.Bounds{W: 40, H: 10}
	for _, tt := range []struct {
		opts *Options
		w, h int
	}{
		{nil, 40, 10},
		{&Options{}, 40, 10},
		{&Options{Width: 80}, 80, 20},
		{&Options{Height: 5}, 20, 5},
		{&Options{Width: 3, Height: 3}, 3, 3},
	} {
		w, h := tt.opts.size(vb)
		test.T(t, w, tt.w)
		test.T(t, h, tt.h)
	}
}

func TestRasterMarkers(t *testing.T) {
	f, err := os.Open("../svgicon/testdata/markers.svg")
	test.Error(t, err)
	defer f.Close()

	img, err := RasterSVGIconToImage(f, nil)
	test.Error(t, err)
	test.T(t, img.Bounds().Dx(), 200)

	// the start arrow, drawn in dark red, covers the start of the path
	r, g, _, a := img.At(10, 10).RGBA()
	test.That(t, a > 0 && r > g, r, g, a)

	var buf bytes.Buffer
	test.Error(t, png.Encode(&buf, img))
	test.That(t, buf.Len() > 0)
}

func TestRasterStrict(t *testing.T) {
	icon, err := svgicon.ReadIconStream(strings.NewReader(`<svg viewBox="0 0 10 10">
		<path d="M0 0 L5 5" stroke="black" marker-end="url(#missing)"/>
	</svg>`), svgicon.StrictErrorMode)
	test.Error(t, err)
	_, err = RasterIcon(icon, nil)
	test.That(t, err != nil)
}
