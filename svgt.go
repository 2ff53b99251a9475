// Copyright 2017 The oksvg Authors. All rights reserved.
//
// (c) 02/10/2021 by Andrii Raikov

package svg2path

import (
	"image"
	"image/color"
	"image/draw"
	"regexp"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
	"golang.org/x/image/math/fixed"

	cfp "github.com/raykov/css-font-parser"
)

var fontSizeRegexp = regexp.MustCompile(`[^0-9.]+`)

// CaptionStyle places a line of text on a preview image.
type CaptionStyle struct {
	// Font is a CSS font shorthand such as "italic bold 12px sans-serif".
	// Only the size, style, weight and variant are used; the face is always
	// one of the Go fonts.
	Font  string
	Color color.Color // black when nil
	// X and Y locate the baseline in image pixels. A zero Y puts the
	// caption at the bottom of the image.
	X, Y float64
	// Anchor is "start", "middle" or "end".
	Anchor string
}

const defaultFontSize = 10.0

// captionFace picks the Go font matching a CSS font shorthand.
func captionFace(shorthand string) (font.Face, float64, error) {
	fontSize := defaultFontSize
	var fontStyle, fontWeight, fontVariant string
	if shorthand != "" {
		eFont := cfp.Parse(shorthand)
		if s := parseFloat(fontSizeRegexp.ReplaceAllString(eFont.Size, "")); s > 0 {
			fontSize = s
		}
		fontStyle, fontWeight, fontVariant = eFont.Style, eFont.Weight, eFont.Variant
	}

	var rawTTF []byte
	switch {
	case fontVariant == "small-caps" && fontStyle == "italic":
		rawTTF = gosmallcapsitalic.TTF
	case fontVariant == "small-caps":
		rawTTF = gosmallcaps.TTF
	case fontStyle == "italic" && (fontWeight == "bold" || fontWeight == "700"):
		rawTTF = gobolditalic.TTF
	case fontStyle == "italic":
		rawTTF = goitalic.TTF
	case fontWeight == "bold" || fontWeight == "700":
		rawTTF = gobold.TTF
	default:
		rawTTF = goregular.TTF
	}

	ff, err := truetype.Parse(rawTTF)
	if err != nil {
		return nil, 0, err
	}
	return truetype.NewFace(ff, &truetype.Options{Size: fontSize}), fontSize, nil
}

// DrawCaption writes text onto img.
func DrawCaption(img draw.Image, text string, cs CaptionStyle) error {
	face, fontSize, err := captionFace(cs.Font)
	if err != nil {
		return err
	}
	defer face.Close()

	var col color.Color = color.Black
	if cs.Color != nil {
		col = cs.Color
	}
	x, y := cs.X, cs.Y
	if y == 0 {
		y = float64(img.Bounds().Max.Y) - fontSize/3
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)},
	}
	switch cs.Anchor {
	case "middle":
		d.Dot.X -= d.MeasureString(text) / 2
	case "end":
		d.Dot.X -= d.MeasureString(text)
	}
	d.DrawString(text)
	return nil
}
