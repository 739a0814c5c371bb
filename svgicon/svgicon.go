// Provides parsing and rendering of SVG images,
// with support for markers.
// SVG files are parsed into a tree of elements,
// which is then drawn on a svgdraw.Context and painted by drivers.
// See for example svgmark/svgraster or svgmark/svgpdf .
package svgicon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/net/html/charset"
)

// ErrorMode is the for setting how the parser reacts to unparsed elements
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unparsed SVG elements
	IgnoreErrorMode ErrorMode = iota

	// WarnErrorMode outputs a warning when an unparsed SVG element is found
	WarnErrorMode

	// StrictErrorMode causes a error when an unparsed SVG element is found
	StrictErrorMode
)

var (
	errParamMismatch = errors.New("param mismatch")
	errZeroLengthID  = errors.New("zero length id")
)

// Bounds defines a bounding box, such as a viewport
// or a path extent.
type Bounds struct{ X, Y, W, H float64 }

// element is a node of the SVG tree
type element struct {
	tag    string
	attrs  map[string]string // raw attributes
	decls  [][2]string       // style declarations: presentation attributes, then the style attribute
	parent *element

	children []*element
}

// SvgIcon holds data from parsed SVGs.
// See the `Draw` methods to use it.
type SvgIcon struct {
	ViewBox      Bounds
	Titles       []string // Title elements collect here
	Descriptions []string // Description elements collect here
	Transform    rasterx.Matrix2D

	Width, Height string // top level width and height attributes

	root      *element
	ids       map[string]*element
	errorMode ErrorMode
}

// report handles a non fatal error according to the error mode
func (s *SvgIcon) report(err error) error {
	switch s.errorMode {
	case StrictErrorMode:
		return err
	case WarnErrorMode:
		log.Println(err)
	}
	return nil
}

// ReadIconStream reads the Icon from the given io.Reader
// This only supports a sub-set of SVG, but
// is enough to draw many icons. errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file.
func ReadIconStream(stream io.Reader, errMode ErrorMode) (*SvgIcon, error) {
	icon := &SvgIcon{ids: make(map[string]*element), Transform: rasterx.Identity, errorMode: errMode}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel

	var (
		stack                   []*element
		inTitleText, inDescText bool
	)
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if icon.root == nil {
					return nil, errors.New("invalid svg xml icon")
				}
				break
			}
			return icon, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			el, err := icon.newElement(se)
			if err != nil {
				return icon, err
			}
			if len(stack) == 0 {
				if icon.root != nil {
					return icon, errors.New("invalid svg xml icon: multiple root elements")
				}
				icon.root = el
			} else {
				parent := stack[len(stack)-1]
				el.parent = parent
				parent.children = append(parent.children, el)
			}
			stack = append(stack, el)

			switch el.tag {
			case "title":
				icon.Titles = append(icon.Titles, "")
				inTitleText = true
			case "desc":
				icon.Descriptions = append(icon.Descriptions, "")
				inDescText = true
			}
		case xml.EndElement:
			if len(stack) != 0 {
				stack = stack[:len(stack)-1]
			}
			switch se.Name.Local {
			case "title":
				inTitleText = false
			case "desc":
				inDescText = false
			}
		case xml.CharData:
			if inTitleText {
				icon.Titles[len(icon.Titles)-1] += string(se)
			}
			if inDescText {
				icon.Descriptions[len(icon.Descriptions)-1] += string(se)
			}
		}
	}

	if icon.root.tag != "svg" {
		return icon, fmt.Errorf("invalid svg xml icon: unexpected root element %s", icon.root.tag)
	}
	if err := icon.readViewBox(); err != nil {
		return icon, err
	}
	return icon, nil
}

// newElement stores the attributes of `se`, validating the
// style declarations and checking the element is supported
func (s *SvgIcon) newElement(se xml.StartElement) (*element, error) {
	el := &element{tag: se.Name.Local, attrs: make(map[string]string, len(se.Attr))}
	var styleAttr string
	for _, attr := range se.Attr {
		key := attr.Name.Local
		el.attrs[key] = attr.Value
		switch key {
		case "style":
			styleAttr = attr.Value
		case "id":
			if attr.Value == "" {
				if err := s.report(errZeroLengthID); err != nil {
					return nil, err
				}
				continue
			}
			s.ids[attr.Value] = el
		default:
			if isStyleProperty(key) {
				el.decls = append(el.decls, [2]string{key, strings.TrimSpace(attr.Value)})
			}
		}
	}
	for _, pair := range strings.Split(styleAttr, ";") {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) == 2 {
			k := strings.ToLower(strings.TrimSpace(kv[0]))
			el.decls = append(el.decls, [2]string{k, strings.TrimSpace(kv[1])})
		}
	}

	// validate the declarations
	var scratch style
	for _, decl := range el.decls {
		if err := scratch.readStyleAttr(s, decl[0], decl[1]); err != nil {
			if err = s.report(fmt.Errorf("element %s: %w", el.tag, err)); err != nil {
				return nil, err
			}
		}
	}

	if _, ok := drawFuncs[el.tag]; !ok {
		if err := s.report(errors.New("Cannot process svg element " + el.tag)); err != nil {
			return nil, err
		}
	}
	return el, nil
}

// readViewBox reads the attributes of the root element
func (s *SvgIcon) readViewBox() error {
	attrs := s.root.attrs
	s.Width, s.Height = attrs["width"], attrs["height"]
	if v, ok := attrs["viewBox"]; ok {
		points, err := readNumbers(v)
		if err != nil {
			return err
		}
		if len(points) != 4 {
			return errParamMismatch
		}
		s.ViewBox = Bounds{X: points[0], Y: points[1], W: points[2], H: points[3]}
	}
	var err error
	if s.ViewBox.W == 0 && s.Width != "" {
		s.ViewBox.W, err = s.parseLength(s.Width, widthPercentage)
		if err != nil {
			return err
		}
	}
	if s.ViewBox.H == 0 && s.Height != "" {
		s.ViewBox.H, err = s.parseLength(s.Height, heightPercentage)
		if err != nil {
			return err
		}
	}
	return nil
}

// ReadIcon reads the Icon from the named file
// This only supports a sub-set of SVG, but
// is enough to draw many icons. errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file.
func ReadIcon(iconFile string, errMode ErrorMode) (*SvgIcon, error) {
	fin, errf := os.Open(iconFile)
	if errf != nil {
		return nil, errf
	}
	defer fin.Close()
	return ReadIconStream(fin, errMode)
}
