package geom

import (
	gomath "math"

	"github.com/Faultbox/dxfcut/pkg/math"
)

// SplineControlPoints is the only control point count accepted for a spline.
const SplineControlPoints = 4

// Spline is a cubic Bézier segment given by its four control points.
type Spline struct {
	ControlPoints [SplineControlPoints]math.Vec2
}

// Steps returns the number of vertices the spline is tessellated into.
func (s Spline) Steps() int {
	p0, p3 := s.ControlPoints[0], s.ControlPoints[3]
	return clampSteps(gomath.Round(p0.Distance(p3) * 4))
}

// At evaluates the curve at parameter t in [0, 1].
func (s Spline) At(t float64) math.Vec2 {
	p := s.ControlPoints
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return math.Vec2{
		X: a*p[0].X + b*p[1].X + c*p[2].X + d*p[3].X,
		Y: a*p[0].Y + b*p[1].Y + c*p[2].Y + d*p[3].Y,
	}
}

// PolyLine tessellates the spline. The first and last control points are
// emitted exactly.
func (s Spline) PolyLine() PolyLine {
	n := s.Steps()
	points := make([]math.Vec2, 0, n)
	points = append(points, s.ControlPoints[0])
	for k := 1; k <= n-2; k++ {
		t := float64(k) / float64(n-1)
		points = append(points, s.At(t))
	}
	points = append(points, s.ControlPoints[3])
	return PolyLine{Vertices: points}
}
