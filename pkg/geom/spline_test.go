package geom

import (
	"testing"

	"github.com/Faultbox/dxfcut/pkg/math"
)

func TestSpline_Steps(t *testing.T) {
	tests := []struct {
		end   math.Vec2
		steps int
	}{
		{math.Vec2{X: 1}, 6},   // 4 clamps up
		{math.Vec2{X: 2}, 8},   // 8
		{math.Vec2{X: 1.9}, 8}, // 7.6 rounds to 8
		{math.Vec2{X: 10}, 25}, // 40 clamps down
	}

	for _, tc := range tests {
		s := Spline{ControlPoints: [4]math.Vec2{{}, {X: 0, Y: 1}, {X: tc.end.X, Y: 1}, tc.end}}
		if got := s.Steps(); got != tc.steps {
			t.Errorf("end=%v: Steps() = %d, want %d", tc.end, got, tc.steps)
		}
		if got := s.PolyLine().Len(); got != tc.steps {
			t.Errorf("end=%v: got %d vertices, want %d", tc.end, got, tc.steps)
		}
	}
}

func TestSpline_EndpointsExact(t *testing.T) {
	s := Spline{ControlPoints: [4]math.Vec2{
		{X: 0.1, Y: 0.2}, {X: 3, Y: 9}, {X: 7, Y: -4}, {X: 10.3, Y: 0.7},
	}}
	line := s.PolyLine()

	if line.First() != s.ControlPoints[0] {
		t.Errorf("first vertex %v, want %v", line.First(), s.ControlPoints[0])
	}
	if line.Last() != s.ControlPoints[3] {
		t.Errorf("last vertex %v, want %v", line.Last(), s.ControlPoints[3])
	}
	if line.Closed {
		t.Error("spline polyline should be open")
	}
}

func TestSpline_StraightLineSamples(t *testing.T) {
	// Evenly spaced collinear control points give uniform samples.
	s := Spline{ControlPoints: [4]math.Vec2{{X: 0}, {X: 0.5}, {X: 1}, {X: 1.5}}}
	line := s.PolyLine()

	want := pts(0, 0, 0.3, 0, 0.6, 0, 0.9, 0, 1.2, 0, 1.5, 0)
	diff(t, want, line.Vertices, approx)
}
