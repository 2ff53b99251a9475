package svg2path

import "math"

// kappa places the control points of a cubic quarter arc so that it stays
// within 0.03% of a true circle.
var kappa = 4 * (math.Sqrt2 - 1) / 3

// Outcome tells whether an element produced geometry, and if not, why.
type Outcome uint8

const (
	Built Outcome = iota
	// MissingAttribute is reported for a path without d or with an empty
	// one, and for a polyline or polygon without points.
	MissingAttribute
	// ZeroDimension is reported for a rect with zero width or height, and
	// for circles and ellipses with a zero radius.
	ZeroDimension
	// DegenerateLine is reported for a line whose four coordinates are all
	// zero, which cannot be told apart from a line without attributes.
	DegenerateLine
	// TooFewPoints is reported for a polyline or polygon with fewer than
	// two points.
	TooFewPoints
)

var outcomeNames = [...]string{
	Built:            "built",
	MissingAttribute: "missing attribute",
	ZeroDimension:    "zero dimension",
	DegenerateLine:   "degenerate line",
	TooFewPoints:     "too few points",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown outcome"
}

// buildShape makes the path of a shape element in document coordinates,
// with the element's own transform applied.
func (c *Converter) buildShape(name string, a attrs) (p Path, o Outcome) {
	if name == "circle" || name == "ellipse" {
		return c.ellipseShape(name, a)
	}
	switch name {
	case "path":
		p, o = c.pathShape(a)
	case "rect":
		p, o = rectShape(a)
	case "line":
		p, o = lineShape(a)
	case "polyline":
		p, o = polyShape(a, false)
	case "polygon":
		p, o = polyShape(a, true)
	}
	if o != Built {
		return nil, o
	}
	if p == nil {
		p = Path{} // path data of unknown commands only
	}
	if m, ok := c.transform(a); ok {
		p = p.Transform(m)
	}
	return p, Built
}

func (c *Converter) pathShape(a attrs) (Path, Outcome) {
	d := a["d"]
	if d == "" {
		return nil, MissingAttribute
	}
	var cursor PathCursor
	p := cursor.CompilePath(d)
	for _, k := range cursor.Skipped {
		c.warn("Ignoring svg command", "command", string(k))
	}
	return p, Built
}

func rectShape(a attrs) (Path, Outcome) {
	x, y := a.float("x"), a.float("y")
	w, h := a.float("width"), a.float("height")
	if w == 0 || h == 0 {
		return nil, ZeroDimension
	}
	rx, ry := a.float("rx"), a.float("ry")
	if rx == 0 && ry == 0 {
		var p Path
		p.Start(Point{x, y})
		p.Line(Point{x + w, y})
		p.Line(Point{x + w, y + h})
		p.Line(Point{x, y + h})
		p.Stop(true)
		return p, Built
	}
	return roundRect(x, y, w, h, rx, ry), Built
}

// roundRect traces a rectangle with elliptical corners clockwise from the
// end of the top left corner. A missing radius takes the value of the other
// one and both are limited to half the side they run along.
func roundRect(x, y, w, h, rx, ry float64) Path {
	if rx == 0 {
		rx = ry
	} else if ry == 0 {
		ry = rx
	}
	rx = math.Min(math.Abs(rx), math.Abs(w)/2)
	ry = math.Min(math.Abs(ry), math.Abs(h)/2)
	kx, ky := rx*kappa, ry*kappa
	r, b := x+w, y+h

	var p Path
	p.Start(Point{x + rx, y})
	p.Line(Point{r - rx, y})
	p.CubeBezier(Point{r - rx + kx, y}, Point{r, y + ry - ky}, Point{r, y + ry})
	p.Line(Point{r, b - ry})
	p.CubeBezier(Point{r, b - ry + ky}, Point{r - rx + kx, b}, Point{r - rx, b})
	p.Line(Point{x + rx, b})
	p.CubeBezier(Point{x + rx - kx, b}, Point{x, b - ry + ky}, Point{x, b - ry})
	p.Line(Point{x, y + ry})
	p.CubeBezier(Point{x, y + ry - ky}, Point{x + rx - kx, y}, Point{x + rx, y})
	p.Stop(true)
	return p
}

// ellipseShape builds a circle or an ellipse. The element transform is
// joined with the placement of the unit circle so every point is mapped
// once.
func (c *Converter) ellipseShape(name string, a attrs) (Path, Outcome) {
	rx, ry := a.float("r"), a.float("r")
	if name == "ellipse" {
		rx, ry = a.float("rx"), a.float("ry")
	}
	if rx == 0 || ry == 0 {
		return nil, ZeroDimension
	}
	m, _ := c.transform(a)
	return unitCircle.Transform(m.Mult(ellipsePlacement(a.float("cx"), a.float("cy"), rx, ry))), Built
}

// unitCircle is the circle of radius one around the origin as four cubic
// quarter arcs, starting at (1, 0) and moving towards positive y.
var unitCircle = func() Path {
	var p Path
	p.Start(Point{1, 0})
	p.CubeBezier(Point{1, kappa}, Point{kappa, 1}, Point{0, 1})
	p.CubeBezier(Point{-kappa, 1}, Point{-1, kappa}, Point{-1, 0})
	p.CubeBezier(Point{-1, -kappa}, Point{-kappa, -1}, Point{0, -1})
	p.CubeBezier(Point{kappa, -1}, Point{1, -kappa}, Point{1, 0})
	p.Stop(true)
	return p
}()

// ellipsePlacement scales the unit circle to the radii and then moves it to
// the center.
func ellipsePlacement(cx, cy, rx, ry float64) Matrix2D {
	return Matrix2D{A: rx, D: ry, E: cx, F: cy}
}

// ellipseAt approximates an axis aligned ellipse with four cubic quarter
// arcs, starting at its rightmost point and moving towards positive y.
func ellipseAt(cx, cy, rx, ry float64) Path {
	return unitCircle.Transform(ellipsePlacement(cx, cy, rx, ry))
}

func lineShape(a attrs) (Path, Outcome) {
	x1, y1 := a.float("x1"), a.float("y1")
	x2, y2 := a.float("x2"), a.float("y2")
	if x1 == 0 && y1 == 0 && x2 == 0 && y2 == 0 {
		return nil, DegenerateLine
	}
	var p Path
	p.Start(Point{x1, y1})
	p.Line(Point{x2, y2})
	return p, Built
}

// polyShape connects the points of a polyline, closing the result for a
// polygon.
func polyShape(a attrs, closed bool) (Path, Outcome) {
	v, ok := a["points"]
	if !ok {
		return nil, MissingAttribute
	}
	pts := parsePoints(v)
	if len(pts) < 2 {
		return nil, TooFewPoints
	}
	var p Path
	p.Start(pts[0])
	for _, q := range pts[1:] {
		p.Line(q)
	}
	p.Stop(closed)
	return p, Built
}
