package geom

import (
	gomath "math"

	"github.com/Faultbox/dxfcut/pkg/math"
)

// Resolution limits shared by the curve tessellators.
const (
	minCurveSteps = 6
	maxCurveSteps = 25
)

// CircleEntity is a parsed circle-family entity: a full Circle or a partial Arc.
type CircleEntity interface {
	PolyLine() PolyLine
	Degenerate() bool
	circleEntity()
}

// Arc is a circular arc. Angles are in radians; the sweep runs from
// StartAngle to EndAngle, counter-clockwise when EndAngle > StartAngle.
type Arc struct {
	Centre     math.Vec2
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

func (Arc) circleEntity() {}

// Sweep returns the signed angle spanned by the arc.
func (a Arc) Sweep() float64 {
	return a.EndAngle - a.StartAngle
}

// Length returns the arc length.
func (a Arc) Length() float64 {
	return (2 * gomath.Pi * a.Radius) * (gomath.Abs(a.Sweep()) / (2 * gomath.Pi))
}

// StartPoint returns the point at StartAngle.
func (a Arc) StartPoint() math.Vec2 {
	return a.pointAt(a.StartAngle)
}

// EndPoint returns the point at EndAngle.
func (a Arc) EndPoint() math.Vec2 {
	return a.pointAt(a.EndAngle)
}

// Degenerate reports whether the arc has no usable radius or sweep.
func (a Arc) Degenerate() bool {
	return !(a.Radius > 0) || a.Sweep() == 0 || gomath.IsNaN(a.Sweep()) || !a.Centre.IsFinite()
}

// Steps returns the number of segments the arc is divided into.
func (a Arc) Steps() int {
	return clampSteps(gomath.Round(a.Length() * 1.5))
}

// PolyLine tessellates the arc into Steps()+1 vertices including both ends.
func (a Arc) PolyLine() PolyLine {
	return PolyLine{Vertices: a.samples(0, a.Steps())}
}

// Interior returns the tessellated vertices strictly between the arc's
// start and end points.
func (a Arc) Interior() []math.Vec2 {
	n := a.Steps()
	return a.samples(1, n-1)
}

func (a Arc) samples(from, to int) []math.Vec2 {
	n := a.Steps()
	sweep := a.Sweep()
	points := make([]math.Vec2, 0, to-from+1)
	for k := from; k <= to; k++ {
		angle := a.StartAngle + (float64(k)/float64(n))*sweep
		points = append(points, a.pointAt(angle))
	}
	return points
}

func (a Arc) pointAt(angle float64) math.Vec2 {
	return a.Centre.Add(math.FromPolar(a.Radius, angle))
}

// clampSteps bounds a step count to the tessellation limits.
func clampSteps(n float64) int {
	if gomath.IsNaN(n) || n < minCurveSteps {
		return minCurveSteps
	}
	if n > maxCurveSteps {
		return maxCurveSteps
	}
	return int(n)
}
