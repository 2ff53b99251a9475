// Copyright 2018 The oksvg Authors. All rights reserved.
//
// created: 2018 by S.R.Wiley
//_
// Implements SVG style matrix transformations.
// https://developer.mozilla.org/en-US/docs/Web/SVG/Attribute/transform
package svg2path

import (
	"math"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// Matrix2D is the affine map (x, y) -> (A*x + C*y + E, B*x + D*y + F).
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Mult returns a*b, the map that applies b first and then a. Products are
// rounded before they are summed, here and in Transform, so results do not
// depend on whether the target fuses multiply-add.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: float64(a.A*b.A) + float64(a.C*b.B),
		B: float64(a.B*b.A) + float64(a.D*b.B),
		C: float64(a.A*b.C) + float64(a.C*b.D),
		D: float64(a.B*b.C) + float64(a.D*b.D),
		E: float64(a.A*b.E) + float64(a.C*b.F) + a.E,
		F: float64(a.B*b.E) + float64(a.D*b.F) + a.F}
}

var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// TFixed transforms a fixed.Point26_6 by the matrix
func (m Matrix2D) TFixed(a fixed.Point26_6) (b fixed.Point26_6) {
	b.X = fixed.Int26_6((float64(a.X)*m.A + float64(a.Y)*m.C) + m.E*64)
	b.Y = fixed.Int26_6((float64(a.X)*m.B + float64(a.Y)*m.D) + m.F*64)
	return
}

func (m Matrix2D) Transform(x1, y1 float64) (x2, y2 float64) {
	x2 = float64(x1*m.A) + float64(y1*m.C) + m.E
	y2 = float64(x1*m.B) + float64(y1*m.D) + m.F
	return
}

func (m Matrix2D) TransformPoint(p Point) Point {
	x, y := m.Transform(p.X, p.Y)
	return Point{x, y}
}

// Invert returns the inverse of m, or Identity when m is singular.
func (m Matrix2D) Invert() Matrix2D {
	det := m.A*m.D - m.B*m.C
	if det == 0 {
		return Identity
	}
	return Matrix2D{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
		E: (m.C*m.F - m.D*m.E) / det,
		F: (m.B*m.E - m.A*m.F) / det,
	}
}

func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{A: x, D: y})
}

// Translate applies a translation by (x, y) before a.
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{A: 1, D: 1, E: x, F: y})
}

// Rotate applies a rotation by theta radians before a. Positive angles turn
// the x axis towards the y axis.
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	sin, cos := math.Sincos(theta)
	return a.Mult(Matrix2D{A: cos, B: sin, C: -sin, D: cos})
}

// transformFuncs maps a transform function name to its matrix, given the
// numeric arguments found between the parentheses. ok is false when the
// argument count does not fit the function.
var transformFuncs = map[string]func(args []float64) (m Matrix2D, ok bool){
	"matrix": func(args []float64) (Matrix2D, bool) {
		if len(args) != 6 {
			return Identity, false
		}
		return Matrix2D{args[0], args[1], args[2], args[3], args[4], args[5]}, true
	},
	"translate": func(args []float64) (Matrix2D, bool) {
		switch len(args) {
		case 1:
			return Identity.Translate(args[0], 0), true
		case 2:
			return Identity.Translate(args[0], args[1]), true
		}
		return Identity, false
	},
	"scale": func(args []float64) (Matrix2D, bool) {
		switch len(args) {
		case 1:
			return Identity.Scale(args[0], args[0]), true
		case 2:
			return Identity.Scale(args[0], args[1]), true
		}
		return Identity, false
	},
	"rotate": func(args []float64) (Matrix2D, bool) {
		switch len(args) {
		case 1:
			return Identity.Rotate(args[0] * math.Pi / 180), true
		case 3:
			cx, cy := args[1], args[2]
			return Identity.Translate(cx, cy).Rotate(args[0]*math.Pi/180).Translate(-cx, -cy), true
		}
		return Identity, false
	},
}

// parseTransforms splits a transform attribute value into its primitive
// matrices in textual order. A known function with the wrong number of
// arguments is skipped. Scanning stops at the first text that is not a
// known function call; rest holds the unscanned remainder, empty when the
// whole value was consumed.
func parseTransforms(v string) (ts []Matrix2D, rest string) {
	s := skipSeparators(v)
	for s != "" {
		open := strings.IndexByte(s, '(')
		if open < 0 {
			return ts, s
		}
		end := strings.IndexByte(s[open:], ')')
		if end < 0 {
			return ts, s
		}
		f, ok := transformFuncs[strings.TrimSpace(s[:open])]
		if !ok {
			return ts, s
		}
		if m, ok := f(parseFloats(s[open+1 : open+end])); ok {
			ts = append(ts, m)
		}
		s = skipSeparators(s[open+end+1:])
	}
	return ts, ""
}

// composeTransforms returns the single matrix equal to applying ts from the
// last element to the first, which is the order an SVG transform list acts
// on a point.
func composeTransforms(ts []Matrix2D) Matrix2D {
	m := Identity
	for _, t := range ts {
		m = m.Mult(t)
	}
	return m
}

// MatrixAdder maps every point through M before passing it on to Adder.
type MatrixAdder struct {
	rasterx.Adder
	M Matrix2D
}

func (t *MatrixAdder) Start(a fixed.Point26_6) {
	t.Adder.Start(t.M.TFixed(a))
}

// Line adds a linear segment to the current curve.
func (t *MatrixAdder) Line(b fixed.Point26_6) {
	t.Adder.Line(t.M.TFixed(b))
}

// QuadBezier adds a quadratic segment to the current curve.
func (t *MatrixAdder) QuadBezier(b, c fixed.Point26_6) {
	t.Adder.QuadBezier(t.M.TFixed(b), t.M.TFixed(c))
}

// CubeBezier adds a cubic segment to the current curve.
func (t *MatrixAdder) CubeBezier(b, c, d fixed.Point26_6) {
	t.Adder.CubeBezier(t.M.TFixed(b), t.M.TFixed(c), t.M.TFixed(d))
}
