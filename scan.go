package svg2path

import (
	"strconv"
	"strings"
)

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// skipSeparators drops leading white space with at most one comma in it.
func skipSeparators(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i < len(s) && s[i] == ',' {
		i++
	}
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	return s[i:]
}

// numberLen returns the length of the longest prefix of s of the form
// -?[0-9]*\.?[0-9]*. A zero length means s does not start with a number.
func numberLen(s string) int {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i < len(s) && s[i] == '.' {
		i++
	}
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

// parseFloat converts a numeric token. Tokens that match the number shape
// but carry no digits, such as "-" or ".", are zero.
func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// parseFloats extracts every number from s in order. Numbers may be split by
// commas, white space, or nothing at all where a sign or a second decimal
// point begins a new number, as in "1-2" or "0.5.5". The first character
// that cannot start a number ends the scan.
func parseFloats(s string) []float64 {
	var fs []float64
	for {
		s = skipSeparators(s)
		n := numberLen(s)
		if n == 0 {
			return fs
		}
		fs = append(fs, parseFloat(s[:n]))
		s = s[n:]
	}
}

// parsePoints pairs up the numbers of s. A trailing odd value is dropped.
func parsePoints(s string) []Point {
	fs := parseFloats(s)
	pts := make([]Point, 0, len(fs)/2)
	for i := 0; i+1 < len(fs); i += 2 {
		pts = append(pts, Point{fs[i], fs[i+1]})
	}
	return pts
}

// attrs holds the attributes of a single tag by name.
type attrs map[string]string

// parseAttrs reads the name="value" pairs of a tag such as
// `<rect x="1" y='2'/>`. Both quote styles are accepted and white space may
// surround the equals sign. The first occurrence of a name wins.
func parseAttrs(tag string) attrs {
	a := attrs{}
	s := strings.TrimPrefix(tag, "<")
	s = strings.TrimPrefix(s, "?")
	s = strings.TrimPrefix(s, "/")
	// skip the element name
	i := 0
	for i < len(s) && !isSpace(s[i]) && s[i] != '/' && s[i] != '>' {
		i++
	}
	s = s[i:]
	for {
		s = strings.TrimLeft(s, " \t\n\r\f")
		i = 0
		for i < len(s) && s[i] != '=' && !isSpace(s[i]) && s[i] != '/' && s[i] != '>' {
			i++
		}
		if i == 0 {
			if s == "" || s[0] == '>' {
				return a
			}
			s = s[1:] // stray '/' or '?'
			continue
		}
		name := s[:i]
		s = strings.TrimLeft(s[i:], " \t\n\r\f")
		if s == "" || s[0] != '=' {
			continue // valueless attribute
		}
		s = strings.TrimLeft(s[1:], " \t\n\r\f")
		if s == "" || (s[0] != '"' && s[0] != '\'') {
			continue
		}
		end := strings.IndexByte(s[1:], s[0])
		if end < 0 {
			return a
		}
		if _, ok := a[name]; !ok {
			a[name] = s[1 : 1+end]
		}
		s = s[end+2:]
	}
}

// float returns the named attribute as a number. A "px" suffix is ignored.
// Absent or unparseable values are zero.
func (a attrs) float(name string) float64 {
	v, ok := a[name]
	if !ok {
		return 0
	}
	v = strings.TrimSpace(v)
	v = strings.TrimSuffix(v, "px")
	return parseFloat(strings.TrimSpace(v))
}

func (a attrs) has(name string) bool {
	_, ok := a[name]
	return ok
}

// tagName returns the element name of a tag and whether it is a closing tag.
func tagName(tag string) (name string, closing bool) {
	s := strings.TrimPrefix(tag, "<")
	if strings.HasPrefix(s, "/") {
		closing = true
		s = s[1:]
	}
	i := 0
	for i < len(s) && !isSpace(s[i]) && s[i] != '/' && s[i] != '>' {
		i++
	}
	return s[:i], closing
}

// selfClosing reports whether tag ends in "/>".
func selfClosing(tag string) bool {
	return strings.HasSuffix(strings.TrimRight(tag, " \t\n\r\f"), "/>")
}
