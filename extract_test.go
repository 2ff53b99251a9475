package svg2path

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestFilterMarkup(t *testing.T) {
	var tests = []struct {
		text string
		want string
	}{
		{"<svg viewBox=\"0 0 1 1\">\n  <title>x</title>\r\n<rect width=\"1\"/></svg>",
			`<svg viewBox="0 0 1 1"><rect width="1"/></svg>`},
		{`<?xml version="1.0"?><!DOCTYPE svg><svg><!-- <rect/> --><circle r="1"></circle></svg>`,
			`<svg><circle r="1"></svg>`},
		{`<svg><defs><path d="M0,0"/></defs><text>hi</text></svg>`,
			`<svg><path d="M0,0"/></svg>`},
		{`<svg>  <g >  <line x2="1"/>  </g>  </svg>`,
			`<svg><g ><line x2="1"/></g></svg>`},
		{"no markup", ""},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			test.String(t, filterMarkup(tt.text), tt.want)
		})
	}
}

func TestKeepTag(t *testing.T) {
	for _, frag := range []string{"<svg>", "</svg>", "<g>", "</g>", "<g/>", "<rect/>", "<polygon points=''>"} {
		test.That(t, keepTag(frag), frag)
	}
	for _, frag := range []string{"</path>", "<defs>", "<title>", "text</title>", "<!-- x -->", "<?xml?>", ""} {
		test.That(t, !keepTag(frag), frag)
	}
}

func TestExtractSVG(t *testing.T) {
	root, err := extractSVG(`<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="-10,-5 20 10">
  <g transform="scale(2)"><rect width="1" height="1"/></g>
  <g/>
  <circle r="1"/>
</svg>`)
	test.Error(t, err)
	test.T(t, root.viewBox, ViewBox{-10, -5, 20, 10})

	kinds := make([]tagKind, len(root.tags))
	names := make([]string, len(root.tags))
	for i, tg := range root.tags {
		kinds[i], names[i] = tg.kind, tg.name
	}
	test.T(t, kinds, []tagKind{groupOpen, shapeTag, groupClose, groupOpen, groupClose, shapeTag})
	test.T(t, names, []string{"g", "rect", "g", "g", "g", "circle"})
	test.String(t, root.tags[0].raw, `<g transform="scale(2)">`)
}

func TestExtractSVGErrors(t *testing.T) {
	var tests = []struct {
		name string
		text string
		err  error
	}{
		{"empty", "", ErrNoSVGRoot},
		{"not svg", `<html><body/></html>`, ErrNoSVGRoot},
		{"unclosed", `<svg viewBox="0 0 1 1"><rect/>`, ErrNoSVGRoot},
		{"no viewBox", `<svg width="10"></svg>`, ErrBadViewBox},
		{"short viewBox", `<svg viewBox="0 0 10"></svg>`, ErrBadViewBox},
		{"long viewBox", `<svg viewBox="0 0 10 10 10"></svg>`, ErrBadViewBox},
		{"empty viewBox", `<svg viewBox=""></svg>`, ErrBadViewBox},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := extractSVG(tt.text)
			test.That(t, errors.Is(err, tt.err), err)
		})
	}
}

func TestSplitTags(t *testing.T) {
	var tests = []struct {
		body  string
		names []string
	}{
		{"", nil},
		{`<rect/><circle r="1"/>`, []string{"rect", "circle"}},
		{`<rect/><svg><circle/></svg>`, []string{"rect"}},
		{`<rect/></circle><line/>`, []string{"rect"}},
		{`<g/><g></g>`, []string{"g", "g", "g", "g"}},
	}
	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var names []string
			for _, tg := range splitTags(tt.body) {
				names = append(names, tg.name)
			}
			test.T(t, names, tt.names)
		})
	}
}
