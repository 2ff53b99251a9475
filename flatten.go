package svg2path

// balanced reports whether group open and close markers cancel out.
func balanced(tags []tag) bool {
	depth := 0
	for _, t := range tags {
		switch t.kind {
		case groupOpen:
			depth++
		case groupClose:
			depth--
		}
	}
	return depth == 0
}

// flatten collapses groups until only paths remain. Each round takes the
// first close marker and the last open marker before it, so the innermost
// group is merged first. The children's paths are appended in order, the
// group's transform is applied to the result, and the merged path replaces
// the whole group.
//
// A close marker without an open marker before it, or the reverse, fails
// even when the totals match.
func (c *Converter) flatten(tags []tag) ([]Path, error) {
	tags = append([]tag(nil), tags...)
	for {
		e := -1
		for i, t := range tags {
			if t.kind == groupClose {
				e = i
				break
			}
		}
		s := -1
		limit := e
		if limit < 0 {
			limit = len(tags)
		}
		for i := limit - 1; i >= 0; i-- {
			if tags[i].kind == groupOpen {
				s = i
				break
			}
		}
		switch {
		case e < 0 && s < 0:
			return collectPaths(tags), nil
		case e < 0 || s < 0:
			return nil, ErrUnbalancedGroups
		}

		var merged Path
		for _, t := range tags[s+1 : e] {
			merged = merged.Append(t.path)
		}
		if m, ok := c.transform(parseAttrs(tags[s].raw)); ok {
			merged = merged.Transform(m)
		}
		group := tag{kind: groupedPath, name: "g", path: merged}
		tags = append(tags[:s], append([]tag{group}, tags[e+1:]...)...)
	}
}

// collectPaths returns the paths of the remaining tags in order. Shapes
// that were dropped carry no path and are skipped; a group always yields
// one, even when empty.
func collectPaths(tags []tag) []Path {
	paths := []Path{}
	for _, t := range tags {
		switch {
		case t.kind == groupedPath && t.path == nil:
			paths = append(paths, Path{})
		case t.path != nil:
			paths = append(paths, t.path)
		}
	}
	return paths
}
