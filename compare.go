package svg2path

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// coverageThreshold is the alpha above which a pixel counts as painted.
const coverageThreshold = 0x7f

// Compare renders text with oksvg and the converted document d, both at
// w by h pixels, and returns the fraction of pixels painted by exactly one
// of the two. Colors are ignored: shapes are compared by coverage only, so
// converted paths are filled with the nonzero rule like oksvg does by
// default.
//
// A score of zero is not expected for every document. Q and T curves are
// converted to cubics that use the quadratic control point twice, which
// bulges further than the true quadratic oksvg draws.
func Compare(text string, d *Document, w, h int) (float64, error) {
	if w <= 0 || h <= 0 {
		return 0, fmt.Errorf("compare: bad size %dx%d", w, h)
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(text), oksvg.IgnoreErrorMode)
	if err != nil {
		return 0, fmt.Errorf("compare: oksvg: %w", err)
	}
	icon.SetTarget(0, 0, float64(w), float64(h))
	ref := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, ref, ref.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	style := DefaultStyle
	style.FillerColor = color.Black
	got, err := Rasterize(d, RenderOptions{Width: w, Height: h, Style: style})
	if err != nil {
		return 0, fmt.Errorf("compare: %w", err)
	}
	return coverageDiff(ref, got), nil
}

// coverageDiff returns the fraction of pixels whose painted state differs
// between a and b, which must have the same bounds.
func coverageDiff(a, b *image.RGBA) float64 {
	r := a.Bounds()
	if r.Empty() {
		return 0
	}
	n := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			pa := a.RGBAAt(x, y).A > coverageThreshold
			pb := b.RGBAAt(x, y).A > coverageThreshold
			if pa != pb {
				n++
			}
		}
	}
	return float64(n) / float64(r.Dx()*r.Dy())
}
