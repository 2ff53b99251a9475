package svg2path

import (
	"fmt"
	"strings"
)

// shapeNames lists the elements that become paths.
var shapeNames = map[string]bool{
	"path":     true,
	"rect":     true,
	"circle":   true,
	"ellipse":  true,
	"line":     true,
	"polyline": true,
	"polygon":  true,
}

type tagKind uint8

const (
	shapeTag tagKind = iota
	groupOpen
	groupClose
	groupedPath // result of flattening a group
)

// tag is one entry of the flat element list of a document body.
type tag struct {
	kind tagKind
	name string
	raw  string
	path Path
}

// svgRoot is the whitelisted content of an <svg> element.
type svgRoot struct {
	viewBox ViewBox
	tags    []tag
}

// keepTag reports whether a markup fragment survives filtering.
func keepTag(frag string) bool {
	if !strings.HasPrefix(frag, "<") {
		return false
	}
	name, closing := tagName(frag)
	if closing {
		return name == "svg" || name == "g"
	}
	return name == "svg" || name == "g" || shapeNames[name]
}

// filterMarkup reduces a document to the tags that can contribute geometry.
// Line breaks are removed, white space between tags is dropped, and every
// fragment ending in '>' whose trimmed start is not a wanted tag is
// discarded together with any text, comment or unknown element it holds.
func filterMarkup(text string) string {
	text = strings.NewReplacer("\r", "", "\n", "").Replace(text)
	var b strings.Builder
	for _, frag := range splitAfterTags(text) {
		frag = strings.TrimSpace(frag)
		if keepTag(frag) {
			b.WriteString(frag)
		}
	}
	return b.String()
}

// splitAfterTags cuts s after every '>'.
func splitAfterTags(s string) []string {
	var frags []string
	for s != "" {
		i := strings.IndexByte(s, '>')
		if i < 0 {
			frags = append(frags, s)
			break
		}
		frags = append(frags, s[:i+1])
		s = s[i+1:]
	}
	return frags
}

// extractSVG isolates the <svg> element of a document, reads its viewBox and
// splits its body into tags.
func extractSVG(text string) (*svgRoot, error) {
	s := filterMarkup(text)
	start := strings.Index(s, "<svg")
	if start < 0 {
		return nil, ErrNoSVGRoot
	}
	s = s[start:]
	headEnd := strings.IndexByte(s, '>')
	end := strings.LastIndex(s, "</svg>")
	if headEnd < 0 || end <= headEnd {
		return nil, ErrNoSVGRoot
	}
	head, body := s[:headEnd+1], s[headEnd+1:end]

	v, ok := parseAttrs(head)["viewBox"]
	if !ok {
		return nil, fmt.Errorf("%w: missing", ErrBadViewBox)
	}
	nums := parseFloats(v)
	if len(nums) != 4 {
		return nil, fmt.Errorf("%w: %q has %d numbers", ErrBadViewBox, v, len(nums))
	}
	return &svgRoot{
		viewBox: ViewBox{X: nums[0], Y: nums[1], W: nums[2], H: nums[3]},
		tags:    splitTags(body),
	}, nil
}

// splitTags walks the body of an svg element and lists its shapes and group
// markers in document order. Extraction stops at the first fragment that is
// none of these, leaving a partial list whose group balance is checked by
// the caller.
func splitTags(body string) []tag {
	var tags []tag
	for strings.HasPrefix(body, "<") {
		i := strings.IndexByte(body, '>')
		if i < 0 {
			break
		}
		raw := body[:i+1]
		body = body[i+1:]
		name, closing := tagName(raw)
		switch {
		case name == "g" && closing:
			tags = append(tags, tag{kind: groupClose, name: name, raw: raw})
		case name == "g":
			tags = append(tags, tag{kind: groupOpen, name: name, raw: raw})
			if selfClosing(raw) {
				tags = append(tags, tag{kind: groupClose, name: name})
			}
		case !closing && shapeNames[name]:
			tags = append(tags, tag{kind: shapeTag, name: name, raw: raw})
		default:
			return tags
		}
	}
	return tags
}
