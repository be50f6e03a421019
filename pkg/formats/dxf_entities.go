package formats

import (
	gomath "math"

	"github.com/Faultbox/dxfcut/pkg/geom"
	"github.com/Faultbox/dxfcut/pkg/math"
)

// Status is the outcome of feeding one pair to an entity sub-parser.
type Status uint8

// Sub-parser states as seen from the dispatcher.
const (
	StatusContinue  Status = iota // needs more pairs
	StatusComplete                // Result is ready
	StatusAbandoned               // entity dropped
)

// entityParser is a per-entity state machine. After Feed returns
// StatusComplete, Result returns the entity's polyline.
type entityParser interface {
	Feed(p Pair) (Status, error)
	Result() geom.PolyLine
}

// newEntityParser returns a fresh sub-parser, or nil for EntitySkip.
func newEntityParser(kind EntityKind) entityParser {
	switch kind {
	case EntityLine:
		return &lineParser{}
	case EntityPolyline:
		return &polylineParser{}
	case EntitySpline:
		return &splineParser{}
	case EntityCircle:
		return &circleParser{}
	default:
		return nil
	}
}

// partialPoint accumulates the x and y fields of a coordinate.
type partialPoint struct {
	x, y       float64
	hasX, hasY bool
}

// feed stores p if it carries the xCode or yCode field.
func (pp *partialPoint) feed(p Pair, xCode, yCode string) error {
	switch p.Code {
	case xCode:
		v, err := parseFloat(p)
		if err != nil {
			return err
		}
		pp.x, pp.hasX = v, true
	case yCode:
		v, err := parseFloat(p)
		if err != nil {
			return err
		}
		pp.y, pp.hasY = v, true
	}
	return nil
}

// take returns the completed point and resets the accumulator.
func (pp *partialPoint) take() (math.Vec2, bool) {
	if !pp.hasX || !pp.hasY {
		return math.Vec2{}, false
	}
	v := math.Vec2{X: pp.x, Y: pp.y}
	*pp = partialPoint{}
	return v, true
}

// empty reports whether no coordinate field has arrived yet.
func (pp *partialPoint) empty() bool {
	return !pp.hasX && !pp.hasY
}

// LINE

type lineState uint8

const (
	lineStartPoint lineState = iota
	lineEndPoint
)

// lineParser reads the start point (10, 20) and then the end point (11, 21).
type lineParser struct {
	state  lineState
	cur    partialPoint
	start  math.Vec2
	result geom.PolyLine
}

func (lp *lineParser) Feed(p Pair) (Status, error) {
	if p.Code == codeEntityStart {
		return StatusAbandoned, nil
	}

	switch lp.state {
	case lineStartPoint:
		if err := lp.cur.feed(p, "10", "20"); err != nil {
			return StatusAbandoned, err
		}
		if v, ok := lp.cur.take(); ok {
			lp.start = v
			lp.state = lineEndPoint
		}
	case lineEndPoint:
		if err := lp.cur.feed(p, "11", "21"); err != nil {
			return StatusAbandoned, err
		}
		if v, ok := lp.cur.take(); ok {
			lp.result = geom.PolyLine{Vertices: []math.Vec2{lp.start, v}}
			return StatusComplete, nil
		}
	}
	return StatusContinue, nil
}

func (lp *lineParser) Result() geom.PolyLine {
	return lp.result
}

// LWPOLYLINE

type polylineState uint8

const (
	polylineClosedFlag polylineState = iota
	polylineVertices
)

// polylineClosedBit is the "closed" bit of the polyline flags (group 70).
const polylineClosedBit = 1

// polylineParser waits for the flags field, then collects vertices with
// optional bulges until the next entity starts.
type polylineParser struct {
	state    polylineState
	closed   bool
	cur      partialPoint
	vertices []geom.VertexWithBulge
	result   geom.PolyLine
}

func (pl *polylineParser) Feed(p Pair) (Status, error) {
	if p.Code == codeEntityStart {
		return pl.finish(), nil
	}

	switch pl.state {
	case polylineClosedFlag:
		if p.Code != "70" {
			return StatusContinue, nil
		}
		flags, err := parseInt(p)
		if err != nil {
			return StatusAbandoned, err
		}
		pl.closed = flags&polylineClosedBit != 0
		pl.state = polylineVertices

	case polylineVertices:
		if p.Code == "42" {
			// Bulge belongs to the vertex that was just completed.
			if len(pl.vertices) == 0 || !pl.cur.empty() {
				return StatusContinue, nil
			}
			bulge, err := parseFloat(p)
			if err != nil {
				return StatusAbandoned, err
			}
			pl.vertices[len(pl.vertices)-1].Bulge = bulge
			return StatusContinue, nil
		}

		if err := pl.cur.feed(p, "10", "20"); err != nil {
			return StatusAbandoned, err
		}
		if v, ok := pl.cur.take(); ok {
			pl.vertices = append(pl.vertices, geom.VertexWithBulge{Point: v})
		}
	}
	return StatusContinue, nil
}

func (pl *polylineParser) finish() Status {
	if pl.state != polylineVertices || len(pl.vertices) < 2 {
		return StatusAbandoned
	}
	pl.result = geom.PolyLine{
		Vertices: geom.ResolveBulges(pl.vertices, pl.closed),
		Closed:   pl.closed,
	}
	return StatusComplete
}

func (pl *polylineParser) Result() geom.PolyLine {
	return pl.result
}

// SPLINE

type splineState uint8

const (
	splineCount splineState = iota
	splineControlPoints
)

// splineParser reads the control point count (73) and then that many
// control points (10, 20). Only four-point splines are kept.
type splineParser struct {
	state  splineState
	cur    partialPoint
	points []math.Vec2
	result geom.PolyLine
}

func (sp *splineParser) Feed(p Pair) (Status, error) {
	if p.Code == codeEntityStart {
		return StatusAbandoned, nil
	}

	switch sp.state {
	case splineCount:
		if p.Code != "73" {
			return StatusContinue, nil
		}
		n, err := parseInt(p)
		if err != nil {
			return StatusAbandoned, err
		}
		if n != geom.SplineControlPoints {
			return StatusAbandoned, nil
		}
		sp.state = splineControlPoints

	case splineControlPoints:
		if err := sp.cur.feed(p, "10", "20"); err != nil {
			return StatusAbandoned, err
		}
		v, ok := sp.cur.take()
		if !ok {
			return StatusContinue, nil
		}
		sp.points = append(sp.points, v)
		if len(sp.points) == geom.SplineControlPoints {
			var s geom.Spline
			copy(s.ControlPoints[:], sp.points)
			sp.result = s.PolyLine()
			return StatusComplete, nil
		}
	}
	return StatusContinue, nil
}

func (sp *splineParser) Result() geom.PolyLine {
	return sp.result
}

// CIRCLE / ARC

type circleState uint8

const (
	circleCentre circleState = iota
	circleRadius
	circleAngles
)

// circleParser reads the centre (10, 20) and radius (40). After the radius
// it accepts start (50) and end (51) angles in degrees until the entity
// ends. Both angles make an arc, neither makes a full circle, and a lone
// angle drops the entity. Angles seen before the radius are ignored.
type circleParser struct {
	state      circleState
	cur        partialPoint
	centre     math.Vec2
	radius     float64
	start, end float64
	hasStart   bool
	hasEnd     bool
	result     geom.PolyLine
}

func (cp *circleParser) Feed(p Pair) (Status, error) {
	if p.Code == codeEntityStart {
		return cp.finish(), nil
	}

	switch cp.state {
	case circleCentre:
		if err := cp.cur.feed(p, "10", "20"); err != nil {
			return StatusAbandoned, err
		}
		if v, ok := cp.cur.take(); ok {
			cp.centre = v
			cp.state = circleRadius
		}

	case circleRadius:
		if p.Code != "40" {
			return StatusContinue, nil
		}
		r, err := parseFloat(p)
		if err != nil {
			return StatusAbandoned, err
		}
		cp.radius = r
		cp.state = circleAngles

	case circleAngles:
		switch p.Code {
		case "50":
			v, err := parseFloat(p)
			if err != nil {
				return StatusAbandoned, err
			}
			cp.start, cp.hasStart = v, true
		case "51":
			v, err := parseFloat(p)
			if err != nil {
				return StatusAbandoned, err
			}
			cp.end, cp.hasEnd = v, true
		}
	}
	return StatusContinue, nil
}

// Entity resolves the parsed fields into a full circle or an arc.
// It returns false while the entity is incomplete or ambiguous.
func (cp *circleParser) Entity() (geom.CircleEntity, bool) {
	if cp.state != circleAngles {
		return nil, false
	}

	switch {
	case cp.hasStart && cp.hasEnd:
		start := radians(cp.start)
		end := radians(cp.end)
		if end < start {
			end += 2 * gomath.Pi
		}
		return geom.Arc{Centre: cp.centre, Radius: cp.radius, StartAngle: start, EndAngle: end}, true
	case !cp.hasStart && !cp.hasEnd:
		return geom.Circle{Centre: cp.centre, Radius: cp.radius}, true
	default:
		return nil, false
	}
}

func (cp *circleParser) finish() Status {
	entity, ok := cp.Entity()
	if !ok || entity.Degenerate() {
		return StatusAbandoned
	}
	cp.result = entity.PolyLine()
	return StatusComplete
}

func (cp *circleParser) Result() geom.PolyLine {
	return cp.result
}

func radians(deg float64) float64 {
	return deg * (gomath.Pi / 180)
}
