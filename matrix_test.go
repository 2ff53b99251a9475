package svg2path

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/image/math/fixed"
)

func TestParseTransforms(t *testing.T) {
	var tests = []struct {
		v    string
		want []Matrix2D
		rest string
	}{
		{"", nil, ""},
		{"translate(10 20)", []Matrix2D{{1, 0, 0, 1, 10, 20}}, ""},
		{"translate(10)", []Matrix2D{{1, 0, 0, 1, 10, 0}}, ""},
		{"scale(2)", []Matrix2D{{2, 0, 0, 2, 0, 0}}, ""},
		{"scale(2,3)", []Matrix2D{{2, 0, 0, 3, 0, 0}}, ""},
		{"matrix(1 2 3 4 5 6)", []Matrix2D{{1, 2, 3, 4, 5, 6}}, ""},
		{" translate(1,2) , scale(2) ", []Matrix2D{{1, 0, 0, 1, 1, 2}, {2, 0, 0, 2, 0, 0}}, ""},
		{"matrix(1 2 3) scale(2)", []Matrix2D{{2, 0, 0, 2, 0, 0}}, ""},
		{"rotate(1 2) translate(4)", []Matrix2D{{1, 0, 0, 1, 4, 0}}, ""},
		{"translate(1,2) skewX(30) scale(2)", []Matrix2D{{1, 0, 0, 1, 1, 2}}, "skewX(30) scale(2)"},
		{"translate(1 2", nil, "translate(1 2"},
		{"none", nil, "none"},
	}
	for _, tt := range tests {
		t.Run(tt.v, func(t *testing.T) {
			ts, rest := parseTransforms(tt.v)
			test.T(t, ts, tt.want)
			test.String(t, rest, tt.rest)
		})
	}
}

func TestRotate(t *testing.T) {
	var tests = []struct {
		v    string
		p    Point
		want Point
	}{
		{"rotate(90)", Point{1, 0}, Point{0, 1}},
		{"rotate(-90)", Point{1, 0}, Point{0, -1}},
		{"rotate(180)", Point{2, 3}, Point{-2, -3}},
		{"rotate(90 10 10)", Point{20, 10}, Point{10, 20}},
		{"rotate(90 10 10)", Point{10, 10}, Point{10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.v, func(t *testing.T) {
			ts, rest := parseTransforms(tt.v)
			test.String(t, rest, "")
			test.T(t, len(ts), 1)
			q := ts[0].TransformPoint(tt.p)
			test.FloatDiff(t, q.X, tt.want.X, 1e-9)
			test.FloatDiff(t, q.Y, tt.want.Y, 1e-9)
		})
	}
}

func TestComposeTransforms(t *testing.T) {
	var tests = []struct {
		v    string
		want Point
	}{
		{"translate(10,0) scale(2)", Point{12, 2}},
		{"scale(2) translate(10,0)", Point{22, 2}},
		{"translate(0 -20) scale(1 2)", Point{1, -18}},
		{"scale(1 2) translate(0 -20)", Point{1, -38}},
	}
	for _, tt := range tests {
		t.Run(tt.v, func(t *testing.T) {
			ts, _ := parseTransforms(tt.v)
			test.T(t, composeTransforms(ts).TransformPoint(Point{1, 1}), tt.want)
		})
	}
	test.T(t, composeTransforms(nil), Identity)
}

func TestComposeScaleRotate(t *testing.T) {
	ts, rest := parseTransforms("scale(2) rotate(30)")
	test.String(t, rest, "")
	got := composeTransforms(ts)
	want := Identity.Scale(2, 2).Mult(Identity.Rotate(math.Pi / 6))
	test.Floats(t, []float64{got.A, got.B, got.C, got.D, got.E, got.F},
		[]float64{want.A, want.B, want.C, want.D, want.E, want.F})
	test.Float(t, got.A, math.Sqrt(3))
	test.Float(t, got.B, 1)
	test.Float(t, got.C, -1)
	test.Float(t, got.D, math.Sqrt(3))

	// the rotation acts first
	q := got.TransformPoint(Point{1, 0})
	test.Float(t, q.X, math.Sqrt(3))
	test.Float(t, q.Y, 1)
}

func TestMatrixMult(t *testing.T) {
	a := Identity.Translate(5, 0)
	b := Identity.Scale(2, 2)
	// b acts first
	test.T(t, a.Mult(b).TransformPoint(Point{1, 1}), Point{7, 2})
	test.T(t, b.Mult(a).TransformPoint(Point{1, 1}), Point{12, 2})
	test.T(t, a.Mult(Identity), a)
}

func TestTFixed(t *testing.T) {
	m := Identity.Translate(1, 2)
	test.T(t, m.TFixed(fixed.Point26_6{X: 64, Y: 64}), fixed.Point26_6{X: 128, Y: 192})
	m = Identity.Scale(2, 3)
	test.T(t, m.TFixed(fixed.Point26_6{X: 64, Y: 64}), fixed.Point26_6{X: 128, Y: 192})
}

// recorder is a rasterx.Adder that logs the calls it gets.
type recorder struct {
	calls []string
	pts   []fixed.Point26_6
}

func (r *recorder) Start(a fixed.Point26_6) {
	r.calls = append(r.calls, "start")
	r.pts = append(r.pts, a)
}

func (r *recorder) Line(b fixed.Point26_6) {
	r.calls = append(r.calls, "line")
	r.pts = append(r.pts, b)
}

func (r *recorder) QuadBezier(b, c fixed.Point26_6) {
	r.calls = append(r.calls, "quad")
	r.pts = append(r.pts, b, c)
}

func (r *recorder) CubeBezier(b, c, d fixed.Point26_6) {
	r.calls = append(r.calls, "cube")
	r.pts = append(r.pts, b, c, d)
}

func (r *recorder) Stop(closeLoop bool) {
	if closeLoop {
		r.calls = append(r.calls, "close")
	} else {
		r.calls = append(r.calls, "stop")
	}
}

func TestMatrixAdder(t *testing.T) {
	rec := &recorder{}
	ma := &MatrixAdder{Adder: rec, M: Identity.Translate(1, 0)}
	ma.Start(fixed.Point26_6{})
	ma.Line(fixed.Point26_6{X: 64})
	ma.QuadBezier(fixed.Point26_6{}, fixed.Point26_6{Y: 64})
	ma.Stop(true)
	test.T(t, rec.calls, []string{"start", "line", "quad", "close"})
	test.T(t, rec.pts, []fixed.Point26_6{{X: 64}, {X: 128}, {X: 64}, {X: 64, Y: 64}})
}
