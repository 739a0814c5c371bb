package svgpdf

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/benoitkugler/svgmark/svgicon"
	"github.com/tdewolff/test"
)

func TestRenderPDF(t *testing.T) {
	for _, file := range []string{"markers.svg", "shapes.svg"} {
		f, err := os.Open("../svgicon/testdata/" + file)
		test.Error(t, err)

		var buf bytes.Buffer
		err = RenderSVGIconToPDF(f, &buf)
		f.Close()
		test.Error(t, err, file)
		test.That(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), file)
	}
}

func TestRenderInvalidSize(t *testing.T) {
	var buf bytes.Buffer
	err := RenderSVGIconToPDF(strings.NewReader(`<svg width="0" height="10"></svg>`), &buf)
	test.That(t, err != nil)
	test.T(t, buf.Len(), 0)
}

func TestRenderStrict(t *testing.T) {
	icon, err := svgicon.ReadIconStream(strings.NewReader(`<svg viewBox="0 0 10 10">
		<path d="M0 0 L5 5" stroke="black" marker-start="url(#missing)"/>
	</svg>`), svgicon.StrictErrorMode)
	test.Error(t, err)
	test.That(t, RenderIcon(icon, &bytes.Buffer{}) != nil)
}
