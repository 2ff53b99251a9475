// Package svg2path converts SVG markup into drawing paths.
//
// Only geometry is read: the path, rect, circle, ellipse, line, polyline and
// polygon elements of the <svg> root, nested <g> groups and the transform
// attributes of both. Styles, text, gradients, definitions and everything
// else are ignored. Every shape becomes a Path of move, line, cubic curve
// and close segments in document coordinates, ready to be replayed into a
// drawing backend or formatted as source code.
package svg2path

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/go-logr/logr"
	"golang.org/x/net/html/charset"
)

type ErrorMode uint8

const (
	// IgnoreErrorMode drops unusable elements, path commands and
	// transforms silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs everything that is dropped.
	WarnErrorMode
)

var (
	ErrNoSVGRoot        = errors.New("no svg element")
	ErrBadViewBox       = errors.New("viewBox needs 4 numbers")
	ErrUnbalancedGroups = errors.New("unbalanced groups")
)

// DefaultPrecision is the number of fraction digits used by String and by
// the command line tool.
const DefaultPrecision = 4

type ViewBox struct {
	X, Y, W, H float64
}

// Drop records an element that produced no path.
type Drop struct {
	Index   int    // position among the tags of the body
	Element string // element name
	Outcome Outcome
}

// Document is the result of a conversion.
type Document struct {
	// ViewBox is the viewBox of the root element. Paths are not shifted by
	// its origin.
	ViewBox ViewBox
	Paths   []Path
	Dropped []Drop
}

// Size returns the width and height of the view box.
func (d *Document) Size() (w, h float64) {
	return d.ViewBox.W, d.ViewBox.H
}

// Converter turns SVG text into a Document. The zero value is ready to use
// and a Converter may be shared by concurrent conversions.
type Converter struct {
	Logger    logr.Logger
	ErrorMode ErrorMode
}

// Convert converts text with a default Converter.
func Convert(text string) (*Document, error) {
	var c Converter
	return c.Convert(text)
}

// ConvertReader converts a document read from r with a default Converter.
func ConvertReader(r io.Reader) (*Document, error) {
	var c Converter
	return c.ConvertReader(r)
}

func (c *Converter) logger() logr.Logger {
	if c.Logger.GetSink() == nil {
		return logr.Discard()
	}
	return c.Logger
}

func (c *Converter) warn(msg string, keysAndValues ...interface{}) {
	if c.ErrorMode == WarnErrorMode {
		c.logger().Info(msg, keysAndValues...)
	}
}

// transform returns the combined transform attribute of an element. ok is
// false when the element has none or none of its functions is understood.
func (c *Converter) transform(a attrs) (m Matrix2D, ok bool) {
	v, ok := a["transform"]
	if !ok {
		return Identity, false
	}
	ts, rest := parseTransforms(v)
	if rest != "" {
		c.warn("Ignoring transform", "transform", rest)
	}
	if len(ts) == 0 {
		return Identity, false
	}
	return composeTransforms(ts), true
}

// Convert extracts the geometry of the svg element in text. It fails when
// there is no svg element, when its viewBox does not hold exactly four
// numbers, or when the groups of its body do not nest. Shapes that cannot be
// built are left out of the result and listed in Document.Dropped.
func (c *Converter) Convert(text string) (*Document, error) {
	root, err := extractSVG(text)
	if err != nil {
		return nil, err
	}
	if !balanced(root.tags) {
		return nil, ErrUnbalancedGroups
	}
	doc := &Document{ViewBox: root.viewBox}
	for i := range root.tags {
		t := &root.tags[i]
		if t.kind != shapeTag {
			continue
		}
		p, o := c.buildShape(t.name, parseAttrs(t.raw))
		if o != Built {
			doc.Dropped = append(doc.Dropped, Drop{Index: i, Element: t.name, Outcome: o})
			c.warn("Dropping element", "element", t.name, "index", i, "reason", o.String())
			continue
		}
		t.path = p
	}
	if doc.Paths, err = c.flatten(root.tags); err != nil {
		return nil, err
	}
	c.logger().V(1).Info("Converted svg", "paths", len(doc.Paths), "dropped", len(doc.Dropped))
	return doc, nil
}

// ConvertReader reads a whole document from r and converts it. Input in an
// encoding other than UTF-8 is decoded according to its XML declaration.
func (c *Converter) ConvertReader(r io.Reader) (*Document, error) {
	br := bufio.NewReader(r)
	head, _ := br.Peek(512)
	var src io.Reader = br
	if label := xmlEncoding(string(head)); label != "" {
		var err error
		if src, err = charset.NewReaderLabel(label, br); err != nil {
			return nil, fmt.Errorf("svg2path: %w", err)
		}
	}
	b, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("svg2path: reading input: %w", err)
	}
	return c.Convert(string(b))
}

// xmlEncoding returns the encoding named by an XML declaration at the start
// of head, if any.
func xmlEncoding(head string) string {
	head = strings.TrimPrefix(head, "\ufeff")
	head = strings.TrimLeft(head, " \t\r\n")
	if !strings.HasPrefix(head, "<?xml") {
		return ""
	}
	end := strings.Index(head, "?>")
	if end < 0 {
		return ""
	}
	enc := parseAttrs(head[:end] + ">")["encoding"]
	if strings.EqualFold(enc, "utf-8") {
		return ""
	}
	return enc
}

// Code formats every path with FormatCode, separated by blank lines.
func (d *Document) Code(precision int) string {
	s := make([]string, len(d.Paths))
	for i, p := range d.Paths {
		s[i] = FormatCode(p, precision)
	}
	return strings.Join(s, "\n\n")
}

// SVG rebuilds a minimal SVG document holding one path element per path.
func (d *Document) SVG(precision int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`,
		formatNum(d.ViewBox.X, precision), formatNum(d.ViewBox.Y, precision),
		formatNum(d.ViewBox.W, precision), formatNum(d.ViewBox.H, precision))
	b.WriteByte('\n')
	for _, p := range d.Paths {
		fmt.Fprintf(&b, "<path d=\"%s\"/>\n", FormatSVG(p, precision))
	}
	b.WriteString("</svg>\n")
	return b.String()
}
