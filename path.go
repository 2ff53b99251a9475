// Copyright 2017 The oksvg Authors. All rights reserved.
// created: 2/12/2017 by S.R.Wiley

package svg2path

import (
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Point is a location in document coordinates.
type Point struct {
	X, Y float64
}

// reflect returns the mirror image of r through p.
func reflect(p, r Point) Point {
	return Point{p.X*2 - r.X, p.Y*2 - r.Y}
}

func (p Point) fixed() fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(p.X * 64), Y: fixed.Int26_6(p.Y * 64)}
}

type pathCommand uint8

const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathCubicTo
	pathClose
)

// Segment is one of MoveTo, LineTo, CubicTo or Close.
type Segment interface {
	command() pathCommand
}

type MoveTo Point

type LineTo Point

// CubicTo draws a cubic Bézier curve from the current point to End.
type CubicTo struct {
	End, Control1, Control2 Point
}

type Close struct{}

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (CubicTo) command() pathCommand { return pathCubicTo }
func (Close) command() pathCommand   { return pathClose }

// Path is an ordered sequence of segments describing one or more subpaths.
// The zero value is an empty path ready to use.
type Path []Segment

// Start starts a new subpath at a.
func (p *Path) Start(a Point) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current subpath.
func (p *Path) Line(b Point) {
	*p = append(*p, LineTo(b))
}

// CubeBezier adds a cubic segment ending at d with control points b and c.
func (p *Path) CubeBezier(b, c, d Point) {
	*p = append(*p, CubicTo{End: d, Control1: b, Control2: c})
}

// Stop joins the ends of the subpath when closeLoop is set.
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Append returns p followed by the segments of q. Neither input is modified.
func (p Path) Append(q Path) Path {
	r := make(Path, 0, len(p)+len(q))
	r = append(r, p...)
	return append(r, q...)
}

// Transform returns a copy of p with every point mapped through m.
func (p Path) Transform(m Matrix2D) Path {
	r := make(Path, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			r[i] = MoveTo(m.TransformPoint(Point(op)))
		case LineTo:
			r[i] = LineTo(m.TransformPoint(Point(op)))
		case CubicTo:
			r[i] = CubicTo{
				End:      m.TransformPoint(op.End),
				Control1: m.TransformPoint(op.Control1),
				Control2: m.TransformPoint(op.Control2),
			}
		default:
			r[i] = op
		}
	}
	return r
}

// Bounds returns the smallest rectangle containing every end and control
// point of p. ok is false for a path without points.
func (p Path) Bounds() (min, max Point, ok bool) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	add := func(q Point) {
		min.X, min.Y = math.Min(min.X, q.X), math.Min(min.Y, q.Y)
		max.X, max.Y = math.Max(max.X, q.X), math.Max(max.Y, q.Y)
		ok = true
	}
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			add(Point(op))
		case LineTo:
			add(Point(op))
		case CubicTo:
			add(op.Control1)
			add(op.Control2)
			add(op.End)
		}
	}
	if !ok {
		return Point{}, Point{}, false
	}
	return min, max, true
}

// String returns the path as SVG path data.
func (p Path) String() string {
	return FormatSVG(p, DefaultPrecision)
}

// AddTo replays p into a rasterx adder, such as a Filler, a Dasher or a
// MatrixAdder.
func (p Path) AddTo(q rasterx.Adder) {
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			q.Stop(false) // implicit close of an open subpath
			q.Start(Point(op).fixed())
		case LineTo:
			q.Line(Point(op).fixed())
		case CubicTo:
			q.CubeBezier(op.Control1.fixed(), op.Control2.fixed(), op.End.fixed())
		case Close:
			q.Stop(true)
		}
	}
	q.Stop(false)
}
