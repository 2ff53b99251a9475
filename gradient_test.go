package svg2path

import (
	"image/color"
	"testing"

	"github.com/srwiley/rasterx"
	"github.com/tdewolff/test"
)

var (
	red  = color.NRGBA{0xff, 0, 0, 0xff}
	blue = color.NRGBA{0, 0, 0xff, 0xff}
)

func redBlue(spread SpreadMethod) *Gradient {
	g := NewGradient(GradStop{red, 0, 1}, GradStop{blue, 1, 1})
	g.Spread = spread
	return g
}

func TestTColor(t *testing.T) {
	var tests = []struct {
		name   string
		spread SpreadMethod
		t      float64
		want   color.Color
	}{
		{"pad before", PadSpread, -1, red},
		{"pad after", PadSpread, 2, blue},
		{"pad middle", PadSpread, 0.5, color.NRGBA{127, 0, 127, 0xff}},
		{"repeat", RepeatSpread, 1.25, color.NRGBA{191, 0, 63, 0xff}},
		{"repeat negative", RepeatSpread, -0.75, color.NRGBA{191, 0, 63, 0xff}},
		{"reflect", ReflectSpread, 1.25, color.NRGBA{63, 0, 191, 0xff}},
		{"reflect start", ReflectSpread, 0, red},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := redBlue(tt.spread)
			test.T(t, g.tColor(g.Stops, tt.t, 1), tt.want)
		})
	}
}

func TestColorFunction(t *testing.T) {
	min, max := Point{0, 0}, Point{10, 10}

	g := NewGradient()
	test.T(t, g.ColorFunction(min, max, Identity, 1), color.NRGBA{0xff, 0, 0xff, 0xff})

	g = NewGradient(GradStop{red, 0.3, 0.5})
	test.T(t, g.ColorFunction(min, max, Identity, 1), color.NRGBA{0xff, 0, 0, 0x7f})

	g = redBlue(PadSpread)
	test.T(t, g.ColorFunction(min, min, Identity, 1), blue)

	f, ok := g.ColorFunction(min, max, Identity, 1).(rasterx.ColorFunc)
	test.That(t, ok, "linear gradient paints with a function")
	left := f(0, 5).(color.NRGBA)
	right := f(9, 5).(color.NRGBA)
	test.That(t, left.R > 200 && left.B < 50, "left", left)
	test.That(t, right.B > 200 && right.R < 50, "right", right)

	// pixels are mapped back into document coordinates
	f = g.ColorFunction(min, max, Identity.Scale(2, 2), 1).(rasterx.ColorFunc)
	near := f(0, 0).(color.NRGBA)
	test.That(t, near.R > left.R, "near", near)
	far := f(19, 0).(color.NRGBA)
	test.That(t, far.B > right.B, "far", far)

	g.Units = UserSpaceOnUse
	g.X2 = 100
	f = g.ColorFunction(min, max, Identity, 1).(rasterx.ColorFunc)
	mid := f(50, 0).(color.NRGBA)
	test.That(t, mid.R > 120 && mid.R < 130, "middle", mid)

	// stops are used in offset order without reordering the gradient
	g = NewGradient(GradStop{blue, 1, 1}, GradStop{red, 0, 1})
	f = g.ColorFunction(min, max, Identity, 1).(rasterx.ColorFunc)
	test.T(t, f(0, 5), left)
	test.T(t, g.Stops[0].StopColor, color.Color(blue))
}

func TestInvert(t *testing.T) {
	m := Identity.Translate(3, 4).Scale(2, 5).Rotate(0.3)
	p := m.Invert().TransformPoint(m.TransformPoint(Point{7, -2}))
	test.FloatDiff(t, p.X, 7, 1e-9)
	test.FloatDiff(t, p.Y, -2, 1e-9)
	test.T(t, Identity.Scale(0, 1).Invert(), Identity)
}

func TestParseStop(t *testing.T) {
	tests := []struct {
		name      string
		v         string
		want      GradStop
		hasOffset bool
	}{
		{name: "color", v: "red", want: GradStop{red, 0, 1}},
		{name: "offset", v: "#00f 50%", want: GradStop{blue, 0.5, 1}, hasOffset: true},
		{name: "opacity", v: "rgb(0, 0, 255) 1 0.5", want: GradStop{blue, 1, 0.5}, hasOffset: true},
		{name: "clamped", v: "red 150%", want: GradStop{red, 1, 1}, hasOffset: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stop, hasOffset, err := ParseStop(tt.v)
			test.Error(t, err)
			test.T(t, stop, tt.want)
			test.T(t, hasOffset, tt.hasOffset)
		})
	}
	for _, v := range []string{"", "none", "nocolor 1", "1"} {
		_, _, err := ParseStop(v)
		test.That(t, err != nil, v)
	}
}

func TestParseGradient(t *testing.T) {
	tests := []struct {
		v       string
		offsets []float64
	}{
		{"red", []float64{0}},
		{"red; blue", []float64{0, 1}},
		{"red;green;blue;", []float64{0, 0.5, 1}},
		{"red 20%; blue", []float64{0.2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.v, func(t *testing.T) {
			g, err := ParseGradient(tt.v)
			test.Error(t, err)
			offsets := make([]float64, len(g.Stops))
			for i, s := range g.Stops {
				offsets[i] = s.Offset
			}
			test.Floats(t, offsets, tt.offsets)
			test.T(t, g.X2, 1.0)
		})
	}
	for _, v := range []string{"", " ; ", "red; bogus"} {
		_, err := ParseGradient(v)
		test.That(t, err != nil, v)
	}
}

func TestRasterizeGradient(t *testing.T) {
	doc, err := Convert(squareSVG)
	test.Error(t, err)
	style := DefaultStyle
	style.FillGradient = redBlue(PadSpread)
	img, err := Rasterize(doc, RenderOptions{Style: style})
	test.Error(t, err)
	left, right := img.RGBAAt(2, 5), img.RGBAAt(7, 5)
	test.That(t, left.R > left.B, "left", left)
	test.That(t, right.B > right.R, "right", right)
	test.T(t, img.RGBAAt(0, 0), color.RGBA{})
}
