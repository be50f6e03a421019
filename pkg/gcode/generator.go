package gcode

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/Faultbox/dxfcut/pkg/geom"
	"github.com/Faultbox/dxfcut/pkg/math"
)

// Generator errors.
var (
	ErrInvalidFeed = errors.New("feed rate must be positive")
)

// Default machine settings.
const (
	DefaultTravelFeed = 2000
	DefaultCutFeed    = 1000
	DefaultPower      = 255
)

// DefaultPreamble selects millimetre units and absolute positioning.
var DefaultPreamble = []string{"G21", "G90"}

// Settings controls the generated program.
type Settings struct {
	TravelFeed int
	CutFeed    int
	Power      uint8

	// Preamble lines are written before the first move.
	Preamble []string

	// ReturnHome ends the program with a travel move to the origin.
	ReturnHome bool
}

// DefaultSettings returns the settings used by Generate.
func DefaultSettings() Settings {
	return Settings{
		TravelFeed: DefaultTravelFeed,
		CutFeed:    DefaultCutFeed,
		Power:      DefaultPower,
		Preamble:   append([]string(nil), DefaultPreamble...),
		ReturnHome: true,
	}
}

// Validate checks that the feed rates are usable.
func (s Settings) Validate() error {
	if s.TravelFeed <= 0 || s.CutFeed <= 0 {
		return ErrInvalidFeed
	}
	return nil
}

// Generator turns polylines and rasters into G-code programs.
type Generator struct {
	settings Settings
}

// NewGenerator creates a generator with the given settings.
func NewGenerator(s Settings) (*Generator, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Generator{settings: s}, nil
}

// Settings returns the generator configuration.
func (g *Generator) Settings() Settings {
	return g.settings
}

// Generate renders paths with the default settings.
func Generate(paths []geom.PolyLine) string {
	g := &Generator{settings: DefaultSettings()}
	return g.Generate(paths)
}

// Generate renders paths as a complete program.
func (g *Generator) Generate(paths []geom.PolyLine) string {
	var sb strings.Builder
	// strings.Builder never fails.
	_ = g.Write(&sb, paths)
	return sb.String()
}

// Write renders paths as a complete program to w.
func (g *Generator) Write(w io.Writer, paths []geom.PolyLine) error {
	return g.writeProgram(w, g.PathMoves(paths))
}

// PathMoves returns the moves that trace paths in order: a travel to each
// path's first vertex, a cut through every following vertex and, for closed
// paths, a cut back to the first vertex.
func (g *Generator) PathMoves(paths []geom.PolyLine) []Move {
	var moves []Move
	for _, p := range paths {
		if p.Len() == 0 {
			continue
		}
		moves = append(moves, g.travel(p.First()))
		for _, v := range p.Vertices[1:] {
			moves = append(moves, g.cut(v, g.settings.Power))
		}
		if p.Closed {
			moves = append(moves, g.cut(p.First(), g.settings.Power))
		}
	}
	return moves
}

func (g *Generator) travel(to math.Vec2) Move {
	return Move{To: to, Feed: g.settings.TravelFeed}
}

func (g *Generator) cut(to math.Vec2, power uint8) Move {
	return Move{Cut: true, To: to, Feed: g.settings.CutFeed, Power: power}
}

// writeProgram frames moves with the preamble and the return home.
func (g *Generator) writeProgram(w io.Writer, moves []Move) error {
	bw := bufio.NewWriter(w)

	for _, line := range g.settings.Preamble {
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	for _, m := range moves {
		if _, err := bw.WriteString(m.String() + "\n"); err != nil {
			return err
		}
	}
	if g.settings.ReturnHome {
		if _, err := bw.WriteString(g.travel(math.Vec2{}).String() + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}
