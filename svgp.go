// Copyright 2017 The oksvg Authors. All rights reserved.
// created: 2/12/2017 by S.R.Wiley

// svgp.go implements translation of SVG path data into a Path.

package svg2path

// argCount is the number of numeric arguments each path command takes per
// repetition. Letters missing from the table are not understood and are
// skipped together with their arguments.
var argCount = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'Z': 0,
}

// Command is a single path command with exactly the arguments it consumes.
type Command struct {
	Key      byte // upper case command letter
	Relative bool
	Args     []float64
}

func toUpper(k byte) byte {
	if 'a' <= k && k <= 'z' {
		return k - 'a' + 'A'
	}
	return k
}

// isPathArg reports whether c may appear in the argument run of a command.
func isPathArg(c byte) bool {
	return isDigit(c) || c == '.' || c == ',' || c == '-' || isSpace(c)
}

// ParseCommands splits SVG path data into commands. A letter together with
// the run of digits, dots, commas, minus signs and white space that follows
// it forms one token. The numbers of a token are cut into chunks of the
// command's arity, each chunk making one Command; an incomplete trailing
// chunk is dropped. Every chunk keeps the letter of its token, so extra
// coordinate pairs after M stay moves. Z yields a single Command whatever
// follows it. Unknown letters are returned in skipped.
func ParseCommands(d string) (cmds []Command, skipped []byte) {
	i := 0
	for i < len(d) {
		if !isLetter(d[i]) {
			i++
			continue
		}
		k := d[i]
		j := i + 1
		for j < len(d) && isPathArg(d[j]) {
			j++
		}
		run := d[i+1 : j]
		i = j

		key, rel := toUpper(k), k >= 'a'
		n, ok := argCount[key]
		if !ok {
			skipped = append(skipped, k)
			continue
		}
		if n == 0 {
			cmds = append(cmds, Command{Key: key, Relative: rel})
			continue
		}
		nums := parseFloats(run)
		for c := 0; c+n <= len(nums); c += n {
			cmds = append(cmds, Command{Key: key, Relative: rel, Args: nums[c : c+n : c+n]})
		}
	}
	return
}

// PathCursor interprets path commands into a Path. The current point and
// the reflection point persist from one command to the next.
type PathCursor struct {
	Path    Path
	place   Point // current point
	cntlPt  Point // reflection point for S and T
	hasCntl bool
	// Skipped collects the unknown command letters met by CompilePath.
	Skipped []byte
}

func (c *PathCursor) init() {
	c.Path = nil
	c.place = Point{}
	c.hasCntl = false
	c.Skipped = nil
}

// CompilePath translates SVG path data into the cursor's Path, replacing any
// previous contents.
func (c *PathCursor) CompilePath(d string) Path {
	c.init()
	cmds, skipped := ParseCommands(d)
	c.Skipped = skipped
	for _, cmd := range cmds {
		c.AddCommand(cmd)
	}
	return c.Path
}

// pt resolves the coordinate pair at args[i] against the current point.
func (c *PathCursor) pt(cmd Command, i int) Point {
	p := Point{cmd.Args[i], cmd.Args[i+1]}
	if cmd.Relative {
		p.X += c.place.X
		p.Y += c.place.Y
	}
	return p
}

// reflectedCntl is the first control point of a smooth curve: the previous
// control point mirrored through the current point, or the current point
// itself when the previous command left no control point.
func (c *PathCursor) reflectedCntl() Point {
	if !c.hasCntl {
		return c.place
	}
	return reflect(c.place, c.cntlPt)
}

// AddCommand applies one command. The argument count must match argCount.
func (c *PathCursor) AddCommand(cmd Command) {
	if len(cmd.Args) != argCount[cmd.Key] {
		return
	}
	switch cmd.Key {
	case 'Z':
		// the drawing pen returns to the subpath start but coordinates
		// that follow resolve against the origin
		c.Path.Stop(true)
		c.place = Point{}
		c.hasCntl = false
	case 'M':
		p := c.pt(cmd, 0)
		c.Path.Start(p)
		c.place = p
		c.hasCntl = false
	case 'L', 'H', 'V':
		var p Point
		switch cmd.Key {
		case 'L':
			p = c.pt(cmd, 0)
		case 'H':
			p = Point{cmd.Args[0], c.place.Y}
			if cmd.Relative {
				p.X += c.place.X
			}
		case 'V':
			p = Point{c.place.X, cmd.Args[0]}
			if cmd.Relative {
				p.Y += c.place.Y
			}
		}
		c.Path.Line(p)
		c.place = p
		c.hasCntl = false
	case 'C':
		c1, c2, p := c.pt(cmd, 0), c.pt(cmd, 2), c.pt(cmd, 4)
		c.cubic(c1, c2, p)
		c.cntlPt, c.hasCntl = c2, true
	case 'S':
		c1, c2, p := c.reflectedCntl(), c.pt(cmd, 0), c.pt(cmd, 2)
		c.cubic(c1, c2, p)
		c.cntlPt, c.hasCntl = c2, true
	case 'Q':
		// quadratics are promoted to cubics that use their control point twice
		q, p := c.pt(cmd, 0), c.pt(cmd, 2)
		c.cubic(q, q, p)
		c.cntlPt, c.hasCntl = q, true
	case 'T':
		q, p := c.reflectedCntl(), c.pt(cmd, 0)
		c.cubic(q, q, p)
		c.cntlPt, c.hasCntl = q, true
	}
}

func (c *PathCursor) cubic(c1, c2, p Point) {
	c.Path.CubeBezier(c1, c2, p)
	c.place = p
}
