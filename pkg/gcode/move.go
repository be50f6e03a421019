// Package gcode renders toolpaths as laser cutter G-code.
//
// The output vocabulary is small: M05 (laser off) and M03 (laser on) moves
// carrying feed, coordinates in millimetres and, for cuts, spindle power.
package gcode

import (
	"fmt"

	"github.com/Faultbox/dxfcut/pkg/math"
)

// Laser control words.
const (
	laserOff = "M05"
	laserOn  = "M03"
)

// Move is a single straight motion command.
type Move struct {
	Cut   bool // laser on while moving
	To    math.Vec2
	Feed  int
	Power uint8 // only emitted for cuts
}

// String formats the move as one G-code line without the trailing newline.
func (m Move) String() string {
	if !m.Cut {
		return fmt.Sprintf("%s F%d X%.2f Y%.2f", laserOff, m.Feed, m.To.X, m.To.Y)
	}
	return fmt.Sprintf("%s F%d X%.2f Y%.2f S%d", laserOn, m.Feed, m.To.X, m.To.Y, m.Power)
}
