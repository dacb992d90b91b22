package svgicon

import (
	"encoding/xml"
)

type svgFunc func(c *iconCursor, attrs []xml.Attr) error

var drawFuncs = map[string]svgFunc{
	"svg":   svgF,
	"g":     gF,
	"path":  pathF,
	"desc":  descF,
	"title": titleF,
}

func svgF(c *iconCursor, attrs []xml.Attr) error {
	c.icon.ViewBox.X = 0
	c.icon.ViewBox.Y = 0
	c.icon.ViewBox.W = 0
	c.icon.ViewBox.H = 0
	var width, height float64
	var err error
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "viewBox":
			var points []float64
			points, err = readPoints(attr.Value)
			if err == nil && len(points) != 4 {
				return errParamMismatch
			}
			if err == nil {
				c.icon.ViewBox.X = points[0]
				c.icon.ViewBox.Y = points[1]
				c.icon.ViewBox.W = points[2]
				c.icon.ViewBox.H = points[3]
			}
		case "width":
			c.icon.Width = attr.Value
			width, err = parseBasicFloat(attr.Value)
		case "height":
			c.icon.Height = attr.Value
			height, err = parseBasicFloat(attr.Value)
		}
		if err != nil {
			return err
		}
	}
	if c.icon.ViewBox.W == 0 {
		c.icon.ViewBox.W = width
	}
	if c.icon.ViewBox.H == 0 {
		c.icon.ViewBox.H = height
	}
	return nil
}

func gF(*iconCursor, []xml.Attr) error { return nil } // g does nothing but push the style

func pathF(c *iconCursor, attrs []xml.Attr) error {
	elem := &PathElement{Style: c.styleStack[len(c.styleStack)-1].resolve()}
	var d string
	for _, attr := range attrs {
		switch attr.Name.Local {
		case "d":
			d = attr.Value
		case "id":
			elem.ID = attr.Value
		}
	}
	c.icon.Paths = append(c.icon.Paths, elem)

	err := elem.SetD(d)
	if err == nil {
		// a leading relative moveto is only detected when building
		_, err = elem.Path()
	}
	if err != nil {
		elem.Instructions = nil
		return c.report(&PathError{ID: elem.ID, Err: err})
	}
	return nil
}

func descF(c *iconCursor, attrs []xml.Attr) error {
	c.inDescText = true
	c.icon.Descriptions = append(c.icon.Descriptions, "")
	return nil
}

func titleF(c *iconCursor, attrs []xml.Attr) error {
	c.inTitleText = true
	c.icon.Titles = append(c.icon.Titles, "")
	return nil
}
