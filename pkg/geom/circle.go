package geom

import (
	gomath "math"

	"github.com/Faultbox/dxfcut/pkg/math"
)

// Circumference bounds used to pick the angular step of a full circle.
const (
	minCircleCircumference = 6.0
	maxCircleCircumference = 180.0
)

// Circle is a full circle.
type Circle struct {
	Centre math.Vec2
	Radius float64
}

func (Circle) circleEntity() {}

// Degenerate reports whether the circle has no usable radius.
func (c Circle) Degenerate() bool {
	return !(c.Radius > 0) || !c.Centre.IsFinite()
}

// DegreesPerStep returns the whole-degree angular step between vertices.
func (c Circle) DegreesPerStep() int {
	circumference := 2 * gomath.Pi * c.Radius
	circumference = gomath.Max(minCircleCircumference, gomath.Min(maxCircleCircumference, circumference))
	return int(360 / circumference)
}

// PolyLine tessellates the circle into a closed polyline starting at angle 0.
// Vertices sit every DegreesPerStep degrees below 360; the closing segment
// covers whatever remains of the turn.
func (c Circle) PolyLine() PolyLine {
	step := c.DegreesPerStep()
	points := make([]math.Vec2, 0, (360+step-1)/step)
	for deg := 0; deg < 360; deg += step {
		rad := float64(deg) * (gomath.Pi / 180)
		points = append(points, c.Centre.Add(math.FromPolar(c.Radius, rad)))
	}
	return PolyLine{Vertices: points, Closed: true}
}
