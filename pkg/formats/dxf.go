package formats

import (
	"errors"
	"fmt"
	gomath "math"
	"os"
	"strconv"
	"strings"

	"github.com/Faultbox/dxfcut/pkg/encoding"
	"github.com/Faultbox/dxfcut/pkg/geom"
)

// DXF format errors.
var (
	ErrInvalidNumber = errors.New("invalid numeric value")
)

// Group codes with a meaning outside a single entity.
const (
	codeEntityStart = "0"
	codeSubclass    = "100"
)

// Pair is one DXF record: a group code line followed by its value line.
type Pair struct {
	Code  string
	Value string
	Line  int // 1-based line of the group code
}

// Tokenize splits DXF text into consecutive (code, value) pairs.
// Both lines are trimmed. A trailing unpaired line is dropped.
func Tokenize(text string) []Pair {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	pairs := make([]Pair, 0, len(lines)/2)
	for i := 0; i+1 < len(lines); i += 2 {
		pairs = append(pairs, Pair{
			Code:  strings.TrimSpace(lines[i]),
			Value: strings.TrimSpace(lines[i+1]),
			Line:  i + 1,
		})
	}
	return pairs
}

// EntityKind identifies which sub-parser handles an entity.
type EntityKind uint8

// Entity kinds. Unrecognised subclass markers map to EntitySkip.
const (
	EntitySkip EntityKind = iota
	EntityLine
	EntityPolyline
	EntitySpline
	EntityCircle
)

// String returns a human-readable entity kind name.
func (k EntityKind) String() string {
	switch k {
	case EntitySkip:
		return "Skip"
	case EntityLine:
		return "Line"
	case EntityPolyline:
		return "Polyline"
	case EntitySpline:
		return "Spline"
	case EntityCircle:
		return "Circle"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// EntityKindFor resolves a subclass marker (group code 100 value).
// ARC entities carry AcDbCircle before AcDbArc, so both resolve through
// the circle parser.
func EntityKindFor(marker string) EntityKind {
	switch marker {
	case "AcDbLine":
		return EntityLine
	case "AcDbPolyline":
		return EntityPolyline
	case "AcDbSpline":
		return EntitySpline
	case "AcDbCircle":
		return EntityCircle
	default:
		return EntitySkip
	}
}

// DXF is the result of parsing a drawing.
type DXF struct {
	// Paths holds one polyline per supported entity, in source order.
	Paths []geom.PolyLine

	// Parsed and Dropped count entities per kind.
	Parsed  map[EntityKind]int
	Dropped map[EntityKind]int
}

// EntityCount returns the number of entities that produced a path.
func (d *DXF) EntityCount() int {
	return len(d.Paths)
}

// DroppedCount returns the number of supported entities that were discarded.
func (d *DXF) DroppedCount() int {
	total := 0
	for _, n := range d.Dropped {
		total += n
	}
	return total
}

// ParseDXF parses DXF text into polylines.
// Unsupported and malformed entities are dropped; a malformed number in a
// recognised field fails the whole parse.
func ParseDXF(text string) (*DXF, error) {
	dxf := &DXF{
		Parsed:  make(map[EntityKind]int),
		Dropped: make(map[EntityKind]int),
	}

	var active entityParser
	var kind EntityKind

	for _, pair := range Tokenize(text) {
		if active == nil {
			if pair.Code == codeSubclass {
				kind = EntityKindFor(pair.Value)
				active = newEntityParser(kind)
			}
			continue
		}

		status, err := active.Feed(pair)
		if err != nil {
			return nil, fmt.Errorf("parsing %s entity: %w", kind, err)
		}

		switch status {
		case StatusComplete:
			dxf.Paths = append(dxf.Paths, active.Result())
			dxf.Parsed[kind]++
			active = nil
		case StatusAbandoned:
			dxf.Dropped[kind]++
			active = nil
		}
	}

	// Input ended mid-entity.
	if active != nil {
		dxf.Dropped[kind]++
	}

	return dxf, nil
}

// ParseDXFFile parses a DXF file from disk, decoding it to UTF-8 first.
func ParseDXFFile(path string) (*DXF, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading DXF file: %w", err)
	}
	text, err := encoding.DecodeDocument(data)
	if err != nil {
		return nil, fmt.Errorf("decoding DXF file: %w", err)
	}
	return ParseDXF(text)
}

// parseFloat parses a real-valued field. Non-finite values are rejected.
func parseFloat(p Pair) (float64, error) {
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil || gomath.IsNaN(v) || gomath.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: line %d, group code %s: %q", ErrInvalidNumber, p.Line, p.Code, p.Value)
	}
	return v, nil
}

// parseInt parses an integer-valued field.
func parseInt(p Pair) (int, error) {
	v, err := strconv.Atoi(p.Value)
	if err != nil {
		return 0, fmt.Errorf("%w: line %d, group code %s: %q", ErrInvalidNumber, p.Line, p.Code, p.Value)
	}
	return v, nil
}
