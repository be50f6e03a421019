package formats

import (
	"testing"

	"github.com/Faultbox/dxfcut/pkg/math"
)

// feedAll feeds pairs built from alternating codes and values, returning the
// status after the last one.
func feedAll(t *testing.T, p entityParser, fields ...string) Status {
	t.Helper()
	status := StatusContinue
	for i := 0; i+1 < len(fields); i += 2 {
		var err error
		status, err = p.Feed(Pair{Code: fields[i], Value: fields[i+1], Line: i + 1})
		if err != nil {
			t.Fatalf("Feed(%s, %s) failed: %v", fields[i], fields[i+1], err)
		}
		if status != StatusContinue && i+2 < len(fields) {
			t.Fatalf("parser finished early at pair %d with status %d", i/2, status)
		}
	}
	return status
}

func TestLineParser_FieldOrder(t *testing.T) {
	lp := &lineParser{}
	// End point fields before the start point is complete are ignored.
	status := feedAll(t, lp, "11", "9", "10", "1", "21", "9", "20", "2", "11", "3", "21", "4")
	if status != StatusComplete {
		t.Fatalf("expected StatusComplete, got %d", status)
	}

	got := lp.Result().Vertices
	want := []math.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLineParser_AbandonedAtEntityStart(t *testing.T) {
	lp := &lineParser{}
	if status := feedAll(t, lp, "10", "1", "20", "2", "0", "LINE"); status != StatusAbandoned {
		t.Errorf("expected StatusAbandoned, got %d", status)
	}
}

func TestPolylineParser_ClosedFlagBits(t *testing.T) {
	tests := []struct {
		flags  string
		closed bool
	}{
		{"0", false},
		{"1", true},
		{"128", false},
		{"129", true},
	}

	for _, tc := range tests {
		pl := &polylineParser{}
		status := feedAll(t, pl, "70", tc.flags, "10", "0", "20", "0", "10", "1", "20", "0", "0", "ENDSEC")
		if status != StatusComplete {
			t.Fatalf("flags %s: expected StatusComplete, got %d", tc.flags, status)
		}
		if pl.Result().Closed != tc.closed {
			t.Errorf("flags %s: expected closed=%v", tc.flags, tc.closed)
		}
	}
}

func TestPolylineParser_VerticesBeforeFlagIgnored(t *testing.T) {
	pl := &polylineParser{}
	status := feedAll(t, pl,
		"10", "99", "20", "99",
		"70", "0",
		"10", "0", "20", "0", "10", "1", "20", "1",
		"0", "LINE")
	if status != StatusComplete {
		t.Fatalf("expected StatusComplete, got %d", status)
	}
	if n := pl.Result().Len(); n != 2 {
		t.Errorf("expected 2 vertices, got %d", n)
	}
}

func TestPolylineParser_BulgeWithoutVertexIgnored(t *testing.T) {
	pl := &polylineParser{}
	status := feedAll(t, pl,
		"70", "0", "42", "1.0",
		"10", "0", "20", "0", "10", "4", "20", "0",
		"0", "EOF")
	if status != StatusComplete {
		t.Fatalf("expected StatusComplete, got %d", status)
	}
	if n := pl.Result().Len(); n != 2 {
		t.Errorf("expected straight 2-vertex polyline, got %d vertices", n)
	}
}

func TestSplineParser_RejectsCountImmediately(t *testing.T) {
	sp := &splineParser{}
	if status := feedAll(t, sp, "73", "7"); status != StatusAbandoned {
		t.Errorf("expected StatusAbandoned, got %d", status)
	}
}

func TestSplineParser_ControlPointsBeforeCountIgnored(t *testing.T) {
	sp := &splineParser{}
	status := feedAll(t, sp,
		"10", "50", "20", "50",
		"73", "4",
		"10", "0", "20", "0", "10", "0", "20", "1", "10", "1", "20", "1", "10", "1", "20", "0")
	if status != StatusComplete {
		t.Fatalf("expected StatusComplete, got %d", status)
	}
	if first := sp.Result().First(); first != (math.Vec2{}) {
		t.Errorf("expected first vertex at origin, got %v", first)
	}
}

func TestCircleParser_Entity(t *testing.T) {
	cp := &circleParser{}
	feedAll(t, cp, "10", "1", "20", "2", "40", "3")

	entity, ok := cp.Entity()
	if !ok {
		t.Fatal("expected a resolved entity after the radius")
	}
	if !entity.PolyLine().Closed {
		t.Error("expected full circle without angles")
	}

	feedAll(t, cp, "50", "90", "51", "180")
	entity, ok = cp.Entity()
	if !ok {
		t.Fatal("expected a resolved arc")
	}
	if entity.PolyLine().Closed {
		t.Error("expected an open arc with both angles")
	}
}

func TestCircleParser_IncompleteAtEntityStart(t *testing.T) {
	cp := &circleParser{}
	if status := feedAll(t, cp, "10", "1", "20", "2", "0", "CIRCLE"); status != StatusAbandoned {
		t.Errorf("expected StatusAbandoned without radius, got %d", status)
	}
}
