// Package geom tessellates drawing primitives into polylines and stitches
// polylines into continuous cutter paths.
package geom

import (
	"github.com/Faultbox/dxfcut/pkg/math"
)

// PolyLine is an ordered vertex sequence. A closed polyline returns to its
// first vertex after the last one.
type PolyLine struct {
	Vertices []math.Vec2
	Closed   bool
}

// Len returns the number of vertices.
func (p PolyLine) Len() int {
	return len(p.Vertices)
}

// First returns the first vertex. The polyline must not be empty.
func (p PolyLine) First() math.Vec2 {
	return p.Vertices[0]
}

// Last returns the last vertex. The polyline must not be empty.
func (p PolyLine) Last() math.Vec2 {
	return p.Vertices[len(p.Vertices)-1]
}

// Clone returns a copy that shares no storage with p.
func (p PolyLine) Clone() PolyLine {
	return PolyLine{
		Vertices: append([]math.Vec2(nil), p.Vertices...),
		Closed:   p.Closed,
	}
}

// Reversed returns an open copy of p with the vertex order reversed.
func (p PolyLine) Reversed() PolyLine {
	n := len(p.Vertices)
	vertices := make([]math.Vec2, n)
	for i, v := range p.Vertices {
		vertices[n-1-i] = v
	}
	return PolyLine{Vertices: vertices}
}

// Transform returns a copy of p with every vertex mapped through m.
func (p PolyLine) Transform(m math.Affine) PolyLine {
	vertices := make([]math.Vec2, len(p.Vertices))
	for i, v := range p.Vertices {
		vertices[i] = m.Apply(v)
	}
	return PolyLine{Vertices: vertices, Closed: p.Closed}
}
