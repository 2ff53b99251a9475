package svg2path

import (
	"fmt"
	"strings"
)

// ParseGradient reads a list of gradient stops separated by semicolons, each
// a color optionally followed by an offset and an opacity, as in
// "red; #00f 50%; rgb(0,255,0) 1 0.5". Stops without an offset are spread
// evenly. The result runs left to right over each path.
func ParseGradient(v string) (*Gradient, error) {
	var parts []string
	for _, p := range strings.Split(v, ";") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("gradient %q has no stops", v)
	}
	stops := make([]GradStop, len(parts))
	for i, p := range parts {
		stop, hasOffset, err := ParseStop(p)
		if err != nil {
			return nil, err
		}
		if !hasOffset && len(parts) > 1 {
			stop.Offset = float64(i) / float64(len(parts)-1)
		}
		stops[i] = stop
	}
	return NewGradient(stops...), nil
}

// ParseStop reads one gradient stop: a color, then an optional offset and
// an optional opacity. Both may be percentages and are clamped to [0, 1].
func ParseStop(v string) (stop GradStop, hasOffset bool, err error) {
	stop.Opacity = 1
	fields := strings.Fields(v)
	// numbers at the end are the offset and opacity
	var nums []float64
	for len(fields) > 1 && len(nums) < 2 {
		f, ferr := readFraction(fields[len(fields)-1])
		if ferr != nil {
			break
		}
		nums = append([]float64{f}, nums...)
		fields = fields[:len(fields)-1]
	}
	if stop.StopColor, err = ParseSVGColor(strings.Join(fields, " ")); err != nil {
		return stop, false, fmt.Errorf("stop %q: %w", v, err)
	}
	if stop.StopColor == nil {
		return stop, false, fmt.Errorf("stop %q: %w", v, ErrBadColor)
	}
	switch len(nums) {
	case 2:
		stop.Opacity = nums[1]
		fallthrough
	case 1:
		stop.Offset, hasOffset = nums[0], true
	}
	return stop, hasOffset, nil
}

func readFraction(v string) (f float64, err error) {
	v = strings.TrimSpace(v)
	d := 1.0
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	if n := numberLen(v); n == 0 || n != len(v) {
		return 0, fmt.Errorf("bad fraction %q", v)
	}
	f = parseFloat(v) / d
	if f > 1 {
		f = 1
	} else if f < 0 {
		f = 0
	}
	return
}
