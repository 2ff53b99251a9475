package svg2path

import (
	"fmt"
	"strconv"
	"strings"
)

const curveCall = "path.addCurve("

// FormatCode writes p as SwiftUI Path builder calls, one call per segment
// and one line per call, except for curves whose control points continue
// on two more lines aligned under the first argument. Every coordinate has
// exactly precision fraction digits.
func FormatCode(p Path, precision int) string {
	pt := func(q Point) string {
		return fmt.Sprintf("CGPoint(x: %.*f, y: %.*f)", precision, q.X, precision, q.Y)
	}
	indent := strings.Repeat(" ", len(curveCall))
	lines := make([]string, 0, len(p))
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			lines = append(lines, "path.move(to: "+pt(Point(op))+")")
		case LineTo:
			lines = append(lines, "path.addLine(to: "+pt(Point(op))+")")
		case CubicTo:
			lines = append(lines, curveCall+"to: "+pt(op.End)+",\n"+
				indent+"control1: "+pt(op.Control1)+",\n"+
				indent+"control2: "+pt(op.Control2)+")")
		case Close:
			lines = append(lines, "path.closeSubpath()")
		}
	}
	return strings.Join(lines, "\n")
}

// FormatSVG writes p as SVG path data using absolute M, L, C and Z
// commands. Numbers are rounded to precision fraction digits and written
// without trailing zeros.
func FormatSVG(p Path, precision int) string {
	var b strings.Builder
	pt := func(q Point) {
		b.WriteString(formatNum(q.X, precision))
		b.WriteByte(',')
		b.WriteString(formatNum(q.Y, precision))
	}
	for i, op := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch op := op.(type) {
		case MoveTo:
			b.WriteByte('M')
			pt(Point(op))
		case LineTo:
			b.WriteByte('L')
			pt(Point(op))
		case CubicTo:
			b.WriteByte('C')
			pt(op.Control1)
			b.WriteByte(' ')
			pt(op.Control2)
			b.WriteByte(' ')
			pt(op.End)
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func formatNum(f float64, precision int) string {
	s := strconv.FormatFloat(f, 'f', precision, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}
