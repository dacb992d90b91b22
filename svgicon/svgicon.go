// Provides parsing of the path elements of SVG documents.
// SVG files are parsed into a list of styled path data,
// which can then be consumed by painting drivers.
// See for example pathd/svgraster or pathd/svgpdf .
package svgicon

import (
	"encoding/xml"
	"errors"
	"io"
	"os"

	"github.com/kpango/glg"
	mt "github.com/rustyoz/Mtransform"
	"golang.org/x/net/html/charset"

	"github.com/benoitkugler/pathd/svgdraw"
	"github.com/benoitkugler/pathd/svgpath"
)

// PathElement binds a style to the path data of a <path> element.
// Instructions always reflect the current value of D:
// use SetD to change it.
type PathElement struct {
	ID           string
	D            string
	Instructions svgpath.Instructions // nil when D is invalid
	Style        svgdraw.Style
}

// SetD changes the path data, decoding it from scratch.
// When `d` is invalid, the element is kept but draws nothing,
// and the *svgpath.SyntaxError is returned.
func (p *PathElement) SetD(d string) error {
	p.D = d
	instructions, err := svgpath.Parse(d)
	p.Instructions = instructions
	return err
}

// Path resolves the instructions to a drawable path.
func (p *PathElement) Path() (svgdraw.Path, error) {
	return svgdraw.Build(p.Instructions)
}

// SvgIcon holds data from parsed SVGs.
// See the `Draw` methods to use it.
type SvgIcon struct {
	ViewBox      svgdraw.Bounds
	Titles       []string // Title elements collect here
	Descriptions []string // Description elements collect here
	Paths        []*PathElement
	Transform    mt.Transform

	Width, Height string // top level width and height attributes

	errorMode ErrorMode
}

// ReadIconStream reads the Icon from the given io.Reader
// This only supports a sub-set of SVG, but
// is enough to draw many icons. errMode determines if the icon ignores, errors out, or logs a warning
// if it does not handle an element found in the icon file, or if a path data is invalid.
func ReadIconStream(stream io.Reader, errMode ErrorMode) (*SvgIcon, error) {
	icon := &SvgIcon{Transform: mt.Identity(), errorMode: errMode}
	cursor := &iconCursor{styleStack: []iconStyle{defaultStyle}, icon: icon}
	decoder := xml.NewDecoder(stream)
	decoder.CharsetReader = charset.NewReaderLabel
	seenTag := false
	for {
		t, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				if !seenTag {
					return nil, errors.New("invalid svg xml icon")
				}
				break
			}
			return icon, err
		}
		// Inspect the type of the XML token
		switch se := t.(type) {
		case xml.StartElement:
			seenTag = true
			// Reads all recognized style attributes from the start element
			// and places it on top of the styleStack
			err = cursor.pushStyle(se.Attr)
			if err != nil {
				return icon, err
			}
			err = cursor.readStartElement(se)
			if err != nil {
				return icon, err
			}
		case xml.EndElement:
			// pop style
			cursor.styleStack = cursor.styleStack[:len(cursor.styleStack)-1]
			switch se.Name.Local {
			case "title":
				cursor.inTitleText = false
			case "desc":
				cursor.inDescText = false
			}
		case xml.CharData:
			if cursor.inTitleText {
				icon.Titles[len(icon.Titles)-1] += string(se)
			}
			if cursor.inDescText {
				icon.Descriptions[len(icon.Descriptions)-1] += string(se)
			}
		}
	}
	return icon, nil
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

// SetTarget sets the Transform matrix to draw within the bounds of the rectangle arguments
func (s *SvgIcon) SetTarget(x, y, w, h float64) {
	s.Transform = svgdraw.Fit(s.ViewBox, x, y, w, h)
}

// Draw the compiled SVG icon into the driver `d`.
// All elements should be contained by the Bounds rectangle of the SvgIcon.
// A path which can't be built is skipped, unless the icon
// was read with StrictErrorMode.
func (s *SvgIcon) Draw(d svgdraw.Driver, opacity float64) error {
	for _, elem := range s.Paths {
		path, err := elem.Path()
		if err != nil {
			switch s.errorMode {
			case StrictErrorMode:
				return &PathError{ID: elem.ID, Err: err}
			case WarnErrorMode:
				glg.Warnf("skipping path %q: %s", elem.ID, err)
			}
			continue
		}
		style := elem.Style
		style.Opacity *= opacity
		path.Paint(d, style, s.Transform)
	}
	return nil
}
