package geom

import (
	gomath "math"

	"github.com/Faultbox/dxfcut/pkg/math"
)

// VertexWithBulge is a polyline vertex carrying the curvature of the segment
// that leaves it. Bulge is tan(included angle / 4); zero means a straight
// segment, positive sweeps counter-clockwise, negative clockwise.
type VertexWithBulge struct {
	Point math.Vec2
	Bulge float64
}

// BulgeArc reconstructs the arc from a to b described by bulge.
// It returns false when the chord has zero length or bulge is zero.
func BulgeArc(a, b math.Vec2, bulge float64) (Arc, bool) {
	chord := a.Distance(b)
	if chord == 0 || bulge == 0 || gomath.IsNaN(bulge) {
		return Arc{}, false
	}

	sign := gomath.Copysign(1, bulge)
	sagitta := gomath.Abs(chord / 2 * bulge)
	radius := gomath.Abs(sagitta/2 + (chord*chord)/(8*sagitta))
	apothem := radius - sagitta

	offset := a.To(b).Normal().WithLength(apothem * -sign)
	centre := a.Midpoint(b).Add(offset)

	start := centre.To(a).Angle()
	end := centre.To(b).Angle()
	if sign > 0 && end < start {
		end += 2 * gomath.Pi
	}
	if sign < 0 && end > start {
		end -= 2 * gomath.Pi
	}

	return Arc{
		Centre:     centre,
		Radius:     radius,
		StartAngle: start,
		EndAngle:   end,
	}, true
}

// ResolveBulges expands curved segments into tessellated arc vertices.
// Each vertex with nonzero bulge gets the interior samples of its arc spliced
// in before the next vertex. When closed is set, a bulge on the last vertex
// curves the closing segment back to the first one.
func ResolveBulges(vertices []VertexWithBulge, closed bool) []math.Vec2 {
	out := make([]math.Vec2, 0, len(vertices))
	for i, v := range vertices {
		out = append(out, v.Point)

		var next math.Vec2
		switch {
		case i+1 < len(vertices):
			next = vertices[i+1].Point
		case closed && len(vertices) > 1:
			next = vertices[0].Point
		default:
			continue
		}

		if arc, ok := BulgeArc(v.Point, next, v.Bulge); ok {
			out = append(out, arc.Interior()...)
		}
	}
	return out
}
