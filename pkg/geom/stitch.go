package geom

// StitchTolerance is the largest endpoint gap that still counts as touching.
const StitchTolerance = 0.001

// Stitch merges consecutive open polylines that share an endpoint into
// continuous paths, using StitchTolerance.
func Stitch(paths []PolyLine) []PolyLine {
	return StitchWithin(paths, StitchTolerance)
}

// StitchWithin merges consecutive open polylines whose endpoints lie closer
// than tolerance. A segment that starts where the current path ends is
// appended; one that ends there is appended reversed. The shared vertex is
// kept once. Anything else starts a new path. Closed polylines and empty
// ones are never merged, and the input order of groups is preserved.
func StitchWithin(paths []PolyLine, tolerance float64) []PolyLine {
	var out []PolyLine
	var current PolyLine
	started := false

	for _, next := range paths {
		if next.Len() == 0 {
			continue
		}
		if !started {
			current = next.Clone()
			started = true
			continue
		}

		if !current.Closed && !next.Closed {
			end := current.Last()
			if next.First().Distance(end) < tolerance {
				current = current.joined(next)
				continue
			}
			if next.Last().Distance(end) < tolerance {
				current = current.joined(next.Reversed())
				continue
			}
		}

		out = append(out, current)
		current = next.Clone()
	}

	if started {
		out = append(out, current)
	}
	return out
}

// joined drops p's last vertex and appends next. p must own its vertices.
func (p PolyLine) joined(next PolyLine) PolyLine {
	vertices := append(p.Vertices[:len(p.Vertices)-1], next.Vertices...)
	return PolyLine{Vertices: vertices}
}
