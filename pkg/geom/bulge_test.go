package geom

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/dxfcut/pkg/math"
)

func TestBulgeArc_Semicircle(t *testing.T) {
	a := math.Vec2{X: 0, Y: 0}
	b := math.Vec2{X: 2, Y: 0}

	tests := []struct {
		name   string
		bulge  float64
		sweep  float64
		middle math.Vec2
	}{
		// Counter-clockwise from a to b passes below the chord.
		{"positive", 1, gomath.Pi, math.Vec2{X: 1, Y: -1}},
		// Clockwise passes above.
		{"negative", -1, -gomath.Pi, math.Vec2{X: 1, Y: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			arc, ok := BulgeArc(a, b, tc.bulge)
			if !ok {
				t.Fatal("expected an arc")
			}
			diff(t, math.Vec2{X: 1, Y: 0}, arc.Centre, approx)
			if gomath.Abs(arc.Radius-1) > 1e-12 {
				t.Errorf("radius = %v, want 1", arc.Radius)
			}
			if gomath.Abs(arc.Sweep()-tc.sweep) > 1e-12 {
				t.Errorf("sweep = %v, want %v", arc.Sweep(), tc.sweep)
			}

			// Six steps, so the middle interior sample is the arc midpoint.
			interior := arc.Interior()
			if len(interior) != 5 {
				t.Fatalf("got %d interior samples, want 5", len(interior))
			}
			diff(t, tc.middle, interior[2], approx)
		})
	}
}

func TestBulgeArc_MinorArc(t *testing.T) {
	a := math.Vec2{X: 0, Y: 0}
	b := math.Vec2{X: 2, Y: 0}

	arc, ok := BulgeArc(a, b, 0.5)
	if !ok {
		t.Fatal("expected an arc")
	}
	diff(t, math.Vec2{X: 1, Y: 0.75}, arc.Centre, approx)
	if gomath.Abs(arc.Radius-1.25) > 1e-12 {
		t.Errorf("radius = %v, want 1.25", arc.Radius)
	}
	// Included angle is 4*atan(bulge).
	if want := 4 * gomath.Atan(0.5); gomath.Abs(arc.Sweep()-want) > 1e-12 {
		t.Errorf("sweep = %v, want %v", arc.Sweep(), want)
	}
	diff(t, a, arc.StartPoint(), approx)
	diff(t, b, arc.EndPoint(), approx)
}

func TestBulgeArc_MajorArc(t *testing.T) {
	arc, ok := BulgeArc(math.Vec2{}, math.Vec2{X: 2}, -2)
	if !ok {
		t.Fatal("expected an arc")
	}
	if want := -4 * gomath.Atan(2); gomath.Abs(arc.Sweep()-want) > 1e-12 {
		t.Errorf("sweep = %v, want %v", arc.Sweep(), want)
	}
	// Sagitta of 2 above the chord.
	diff(t, math.Vec2{X: 1, Y: 2}, arc.pointAt(arc.StartAngle+arc.Sweep()/2), approx)
}

func TestBulgeArc_ZeroChord(t *testing.T) {
	p := math.Vec2{X: 3, Y: 3}
	if _, ok := BulgeArc(p, p, 1); ok {
		t.Error("zero-length chord should not produce an arc")
	}
}

func TestResolveBulges_StraightPassThrough(t *testing.T) {
	in := []VertexWithBulge{
		{Point: math.Vec2{X: 0, Y: 0}},
		{Point: math.Vec2{X: 1, Y: 0}},
		{Point: math.Vec2{X: 1, Y: 1}},
	}
	diff(t, pts(0, 0, 1, 0, 1, 1), ResolveBulges(in, true))
}

func TestResolveBulges_SplicesInterior(t *testing.T) {
	in := []VertexWithBulge{
		{Point: math.Vec2{X: 0, Y: 0}, Bulge: 1},
		{Point: math.Vec2{X: 2, Y: 0}},
		{Point: math.Vec2{X: 2, Y: 2}},
	}
	out := ResolveBulges(in, false)

	if len(out) != 8 {
		t.Fatalf("got %d vertices, want 8", len(out))
	}
	diff(t, in[0].Point, out[0])
	diff(t, in[1].Point, out[6])
	diff(t, in[2].Point, out[7])
	for i, v := range out[1:6] {
		if v.Y > 1e-9 {
			t.Errorf("interior vertex %d = %v should lie below the chord", i, v)
		}
	}
}

func TestResolveBulges_ClosingSegment(t *testing.T) {
	in := []VertexWithBulge{
		{Point: math.Vec2{X: 0, Y: 0}},
		{Point: math.Vec2{X: 2, Y: 0}, Bulge: 1},
	}

	closed := ResolveBulges(in, true)
	if len(closed) != 7 {
		t.Fatalf("closed: got %d vertices, want 7", len(closed))
	}
	// Counter-clockwise from (2,0) back to (0,0) passes above.
	diff(t, math.Vec2{X: 1, Y: 1}, closed[4], approx)

	open := ResolveBulges(in, false)
	diff(t, pts(0, 0, 2, 0), open)
}
