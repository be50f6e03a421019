package geom

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/dxfcut/pkg/math"
)

func TestCircle_VertexCount(t *testing.T) {
	tests := []struct {
		radius float64
		step   int
		count  int
	}{
		{0.5, 60, 6},   // circumference clamped up to 6
		{1, 57, 7},     // 360 / 6.283 = 57.29
		{5, 11, 33},    // 360 / 31.42 = 11.46, last vertex at 352 degrees
		{100, 2, 180},  // circumference clamped down to 180
		{1000, 2, 180}, // same clamp
	}

	for _, tc := range tests {
		c := Circle{Centre: math.Vec2{X: 3, Y: -2}, Radius: tc.radius}
		if got := c.DegreesPerStep(); got != tc.step {
			t.Errorf("r=%v: DegreesPerStep() = %d, want %d", tc.radius, got, tc.step)
		}
		line := c.PolyLine()
		if line.Len() != tc.count {
			t.Errorf("r=%v: got %d vertices, want %d", tc.radius, line.Len(), tc.count)
		}
		if !line.Closed {
			t.Errorf("r=%v: circle polyline should be closed", tc.radius)
		}
	}
}

func TestCircle_VerticesOnRadius(t *testing.T) {
	for _, r := range []float64{0.25, 1, 2.5, 5, 17.3, 80, 400} {
		c := Circle{Centre: math.Vec2{X: 12.5, Y: 7}, Radius: r}
		for i, v := range c.PolyLine().Vertices {
			if d := v.Distance(c.Centre); gomath.Abs(d-r) > 1e-9 {
				t.Fatalf("r=%v vertex %d: distance %v from centre", r, i, d)
			}
		}
	}
}

func TestCircle_NoWrapVertex(t *testing.T) {
	line := Circle{Radius: 5}.PolyLine()
	if line.First().Distance(line.Last()) < 1e-6 {
		t.Error("last vertex should not duplicate the first")
	}
}

func TestCircle_FirstVertexAtZeroDegrees(t *testing.T) {
	line := Circle{Radius: 5}.PolyLine()
	diff(t, math.Vec2{X: 5, Y: 0}, line.First(), approx)
}

func TestCircle_Degenerate(t *testing.T) {
	if !(Circle{Radius: 0}).Degenerate() {
		t.Error("zero radius should be degenerate")
	}
	if !(Circle{Radius: -1}).Degenerate() {
		t.Error("negative radius should be degenerate")
	}
	if !(Circle{Radius: gomath.NaN()}).Degenerate() {
		t.Error("NaN radius should be degenerate")
	}
	if (Circle{Radius: 1}).Degenerate() {
		t.Error("unit circle should not be degenerate")
	}
}
