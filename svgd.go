// Copyright 2017 The oksvg Authors. All rights reserved.
//
// created: 2/12/2017 by S.R.Wiley

// svgd.go draws converted documents with rasterx.

package svg2path

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/colornames"
	"golang.org/x/image/math/fixed"
)

var ErrBadColor = errors.New("bad color")

// PathStyle selects how a path is filled and stroked. A nil color turns the
// corresponding operation off.
type PathStyle struct {
	FillOpacity, LineOpacity float64
	LineWidth, MiterLimit    float64
	UseNonZeroWinding        bool
	FillerColor, LinerColor  color.Color
	LineCap                  rasterx.CapFunc
	LineJoin                 rasterx.JoinMode
	// FillGradient replaces FillerColor when set.
	FillGradient *Gradient
}

// DefaultStyle sets the default PathStyle to fill black, winding rule,
// full opacity, no stroke, ButtCap line end and Bevel line connect.
var DefaultStyle = PathStyle{1.0, 1.0, 2.0, 4.0, true,
	color.NRGBA{0x00, 0x00, 0x00, 0xff}, nil,
	rasterx.ButtCap, rasterx.Bevel, nil}

// RenderOptions configures Rasterize.
type RenderOptions struct {
	// Width and Height of the image. Zero takes the view box size.
	Width, Height int
	Style         PathStyle
	// Background fills the image before drawing when set.
	Background color.Color
	Caption    string
	CaptionStyle
}

func ApplyOpacity(c color.Color, opacity float64) color.NRGBA {
	r, g, b, _ := c.RGBA()
	return color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(opacity * 0xFF)}
}

// Target returns the matrix that maps the view box onto the rectangle at
// (x, y) with size w by h.
func (d *Document) Target(x, y, w, h float64) Matrix2D {
	vb := d.ViewBox
	if vb.W == 0 || vb.H == 0 {
		return Identity.Translate(x, y)
	}
	return Identity.Translate(x, y).Scale(w/vb.W, h/vb.H).Translate(-vb.X, -vb.Y)
}

// Draw fills and strokes every path of the document through m.
func (d *Document) Draw(r *rasterx.Dasher, style PathStyle, m Matrix2D, opacity float64) {
	for _, p := range d.Paths {
		p.Draw(r, style, m, opacity)
	}
}

// Draw fills and strokes p through m.
func (p Path) Draw(r *rasterx.Dasher, style PathStyle, m Matrix2D, opacity float64) {
	mAdder := MatrixAdder{M: m}
	if style.FillerColor != nil || style.FillGradient != nil {
		r.Clear()
		rf := &r.Filler
		rf.SetWinding(style.UseNonZeroWinding)
		mAdder.Adder = rf
		p.AddTo(&mAdder)
		if g := style.FillGradient; g != nil {
			min, max, _ := p.Bounds()
			rf.SetColor(g.ColorFunction(min, max, m, style.FillOpacity*opacity))
		} else {
			rf.SetColor(ApplyOpacity(style.FillerColor, style.FillOpacity*opacity))
		}
		rf.Draw()
		// default is true
		rf.SetWinding(true)
	}
	if style.LinerColor != nil {
		r.Clear()
		mAdder.Adder = r
		lineCap := style.LineCap
		if lineCap == nil {
			lineCap = DefaultStyle.LineCap
		}
		r.SetStroke(fixed.Int26_6(style.LineWidth*64),
			fixed.Int26_6(style.MiterLimit*64), lineCap, lineCap,
			rasterx.RoundGap, style.LineJoin, nil, 0)
		p.AddTo(&mAdder)
		r.SetColor(ApplyOpacity(style.LinerColor, style.LineOpacity*opacity))
		r.Draw()
	}
}

// maxRasterSize bounds each side of a preview image.
const maxRasterSize = 1 << 14

// ErrBadSize is returned by Rasterize for an image side that is not in
// 1..maxRasterSize pixels.
var ErrBadSize = errors.New("bad image size")

// Rasterize draws the document into a new image, scaling the view box to
// the image size. A zero width or height is taken from the view box.
func Rasterize(d *Document, opts RenderOptions) (*image.RGBA, error) {
	w, h := opts.Width, opts.Height
	if w == 0 {
		w = int(math.Ceil(math.Min(d.ViewBox.W, maxRasterSize+1)))
	}
	if h == 0 {
		h = int(math.Ceil(math.Min(d.ViewBox.H, maxRasterSize+1)))
	}
	if w < 1 || h < 1 || w > maxRasterSize || h > maxRasterSize {
		return nil, fmt.Errorf("rasterize %dx%d: %w", w, h, ErrBadSize)
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if opts.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	raster := rasterx.NewDasher(w, h, scanner)
	d.Draw(raster, opts.Style, d.Target(0, 0, float64(w), float64(h)), 1)
	if opts.Caption != "" {
		if err := DrawCaption(img, opts.Caption, opts.CaptionStyle); err != nil {
			return img, fmt.Errorf("caption: %w", err)
		}
	}
	return img, nil
}

// ParseSVGColorNum reads the SFG color string e.g. #FBD9BD
func ParseSVGColorNum(colorStr string) (r, g, b uint8, err error) {
	colorStr = strings.TrimPrefix(colorStr, "#")
	var t uint64
	switch len(colorStr) {
	case 6:
	case 3:
		// SVG specs say duplicate characters in case of 3 digit hex number
		colorStr = string([]byte{colorStr[0], colorStr[0],
			colorStr[1], colorStr[1], colorStr[2], colorStr[2]})
	default:
		return 0, 0, 0, ErrBadColor
	}
	for _, v := range []struct {
		c *uint8
		s string
	}{
		{&r, colorStr[0:2]},
		{&g, colorStr[2:4]},
		{&b, colorStr[4:6]}} {
		t, err = strconv.ParseUint(v.s, 16, 8)
		if err != nil {
			return
		}
		*v.c = uint8(t)
	}
	return
}

// ParseSVGColor parses an SVG color string in all forms
// including all SVG1.1 names, obtained from the colornames package.
// "none" yields a nil color.
func ParseSVGColor(colorStr string) (color.Color, error) {
	colorStr = strings.TrimSpace(colorStr)
	v := strings.ToLower(colorStr)
	if v == "none" {
		return nil, nil
	}
	if cn, ok := colornames.Map[v]; ok {
		r, g, b, a := cn.RGBA()
		return color.NRGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}, nil
	}
	if cStr := strings.TrimPrefix(v, "rgb("); cStr != v {
		cStr = strings.TrimSuffix(cStr, ")")
		vals := strings.Split(cStr, ",")
		if len(vals) != 3 {
			return nil, ErrBadColor
		}
		var cvals [3]uint8
		var err error
		for i := range cvals {
			cvals[i], err = parseColorValue(vals[i])
			if err != nil {
				return nil, err
			}
		}
		return color.NRGBA{cvals[0], cvals[1], cvals[2], 0xFF}, nil
	}
	if strings.HasPrefix(colorStr, "#") {
		r, g, b, err := ParseSVGColorNum(colorStr)
		if err != nil {
			return nil, err
		}
		return color.NRGBA{r, g, b, 0xFF}, nil
	}
	return nil, ErrBadColor
}

func parseColorValue(v string) (uint8, error) {
	v = strings.TrimSpace(v)
	if strings.HasSuffix(v, "%") {
		n, err := strconv.Atoi(strings.TrimSpace(v[:len(v)-1]))
		if err != nil {
			return 0, err
		}
		if n > 100 {
			n = 100
		}
		return uint8(n * 0xFF / 100), nil
	}
	n, err := strconv.Atoi(v)
	if n > 255 {
		n = 255
	}
	return uint8(n), err
}
