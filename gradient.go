// Copyright 2018 The oksvg Authors. All rights reserved.
//
// created: 5/12/2018 by S.R.Wiley

package svg2path

import (
	"image/color"
	"math"
	"sort"

	"github.com/srwiley/rasterx"
)

const (
	ObjectBoundingBox GradientUnits = iota
	UserSpaceOnUse
)

const (
	PadSpread SpreadMethod = iota
	ReflectSpread
	RepeatSpread
)

type (
	SpreadMethod  byte
	GradientUnits byte

	GradStop struct {
		StopColor color.Color
		Offset    float64
		Opacity   float64
	}

	// Gradient is a linear color ramp that can replace the flat fill of a
	// preview. The ramp runs from (X1, Y1) to (X2, Y2), given as fractions
	// of each path's bounding box for ObjectBoundingBox units or in
	// document coordinates for UserSpaceOnUse.
	Gradient struct {
		X1, Y1, X2, Y2 float64
		Stops          []GradStop
		Spread         SpreadMethod
		Units          GradientUnits
	}
)

// NewGradient returns a left to right ramp over the bounding box with the
// given stops.
func NewGradient(stops ...GradStop) *Gradient {
	return &Gradient{X2: 1, Stops: stops}
}

// tColor takes the paramaterized value along the gradient's stops and
// returns a color depending on the spreadMethod value of the gradient and
// the gradient's slice of stop values. stops must be sorted by offset.
func (g *Gradient) tColor(stops []GradStop, t, opacity float64) color.Color {
	d := len(stops)
	// These cases can be taken care of early on
	if t >= 1.0 && g.Spread == PadSpread {
		s := stops[d-1]
		return ApplyOpacity(s.StopColor, s.Opacity*opacity)
	}
	if t <= 0.0 && g.Spread == PadSpread {
		return ApplyOpacity(stops[0].StopColor, stops[0].Opacity*opacity)
	}
	var modRange = 1.0
	if g.Spread == ReflectSpread {
		modRange = 2.0
	}
	mod := math.Mod(t, modRange)
	if mod < 0 {
		mod += modRange
	}

	place := 0 // Advance to place where mod is greater than the indicated stop
	for place != d && mod > stops[place].Offset {
		place++
	}
	switch g.Spread {
	case RepeatSpread:
		var s1, s2 GradStop
		switch place {
		case 0, d:
			s1, s2 = stops[d-1], stops[0]
		default:
			s1, s2 = stops[place-1], stops[place]
		}
		return blendStops(mod, opacity, s1, s2, false)
	case ReflectSpread:
		switch place {
		case 0:
			return ApplyOpacity(stops[0].StopColor, stops[0].Opacity*opacity)
		case d:
			// The interval is two: the stops are walked backwards before the
			// sequence repeats.
			for place != d*2 && mod-1 > (1-stops[d*2-place-1].Offset) {
				place++
			}
			switch place {
			case d:
				s := stops[d-1]
				return ApplyOpacity(s.StopColor, s.Opacity*opacity)
			case d * 2:
				return ApplyOpacity(stops[0].StopColor, stops[0].Opacity*opacity)
			default:
				return blendStops(mod-1, opacity, stops[d*2-place], stops[d*2-place-1], true)
			}
		default:
			return blendStops(mod, opacity, stops[place-1], stops[place], false)
		}
	default: // PadSpread
		switch place {
		case 0:
			return ApplyOpacity(stops[0].StopColor, stops[0].Opacity*opacity)
		case d:
			s := stops[d-1]
			return ApplyOpacity(s.StopColor, s.Opacity*opacity)
		default:
			return blendStops(mod, opacity, stops[place-1], stops[place], false)
		}
	}
}

func blendStops(t, opacity float64, s1, s2 GradStop, flip bool) color.Color {
	s1off := s1.Offset
	if s1.Offset > s2.Offset && !flip { // happens in repeat spread mode
		s1off--
		if t > 1 {
			t--
		}
	}
	if s2.Offset == s1off {
		return ApplyOpacity(s2.StopColor, s2.Opacity*opacity)
	}
	if flip {
		t = 1 - t
	}
	tp := (t - s1off) / (s2.Offset - s1off)
	r1, g1, b1, _ := s1.StopColor.RGBA()
	r2, g2, b2, _ := s2.StopColor.RGBA()

	return ApplyOpacity(color.RGBA{
		uint8((float64(r1)*(1-tp) + float64(r2)*tp) / 256),
		uint8((float64(g1)*(1-tp) + float64(g2)*tp) / 256),
		uint8((float64(b1)*(1-tp) + float64(b2)*tp) / 256),
		0xFF}, (s1.Opacity*(1-tp)+s2.Opacity*tp)*opacity)
}

// ColorFunction returns the paint of the gradient for a path whose bounding
// box runs from min to max, drawn through m. The result is a color.Color or
// a rasterx.ColorFunc, both accepted by rasterx SetColor.
func (g *Gradient) ColorFunction(min, max Point, m Matrix2D, opacity float64) interface{} {
	switch len(g.Stops) {
	case 0:
		return ApplyOpacity(color.RGBA{255, 0, 255, 255}, opacity) // default color for gradient w/o stops.
	case 1:
		return ApplyOpacity(g.Stops[0].StopColor, g.Stops[0].Opacity*opacity)
	}

	stops := append([]GradStop(nil), g.Stops...)
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Offset < stops[j].Offset
	})

	p1, p2 := Point{g.X1, g.Y1}, Point{g.X2, g.Y2}
	if g.Units == ObjectBoundingBox {
		w, h := max.X-min.X, max.Y-min.Y
		p1 = Point{min.X + w*g.X1, min.Y + h*g.Y1}
		p2 = Point{min.X + w*g.X2, min.Y + h*g.Y2}
	}
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	d := (dx*dx + dy*dy) // self inner prod
	if d == 0 {
		s := stops[len(stops)-1]
		return ApplyOpacity(s.StopColor, s.Opacity*opacity)
	}

	inv := m.Invert()
	return rasterx.ColorFunc(func(xi, yi int) color.Color {
		x, y := inv.Transform(float64(xi)+0.5, float64(yi)+0.5)
		dfx := x - p1.X
		dfy := y - p1.Y
		return g.tColor(stops, (dx*dfx+dy*dfy)/d, opacity)
	})
}
