package gcode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Faultbox/dxfcut/pkg/math"
)

// ErrInvalidDPI is returned for a non-positive raster resolution.
var ErrInvalidDPI = errors.New("dpi must be positive")

const mmPerInch = 25.4

// PowerImage is a raster of laser power levels with row 0 at the top.
type PowerImage interface {
	Bounds() (width, height int)
	Power(x, y int) uint8
}

// RasterMoves scans img in a serpentine: even rows left to right, odd rows
// right to left. A move is emitted wherever the power changes, and at the
// row edges while the laser is on. Each move runs at the power of the pixels
// it crossed.
func (g *Generator) RasterMoves(img PowerImage, dpi float64) ([]Move, error) {
	if !(dpi > 0) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDPI, dpi)
	}

	width, height := img.Bounds()
	mmPerPixel := mmPerInch / dpi

	var moves []Move
	var last uint8
	for y := 0; y < height; y++ {
		for i := 0; i < width; i++ {
			x := i
			if y&1 == 1 {
				x = width - 1 - i
			}

			power := img.Power(x, y)
			if power == last && ((x != 0 && x != width-1) || last == 0) {
				continue
			}

			to := math.Vec2{
				X: float64(x) * mmPerPixel,
				Y: float64(height-1-y) * mmPerPixel,
			}
			if last == 0 {
				moves = append(moves, g.travel(to))
			} else {
				moves = append(moves, g.cut(to, last))
			}
			last = power
		}
	}
	return moves, nil
}

// WriteRaster renders img as a complete program to w.
func (g *Generator) WriteRaster(w io.Writer, img PowerImage, dpi float64) error {
	moves, err := g.RasterMoves(img, dpi)
	if err != nil {
		return err
	}
	return g.writeProgram(w, moves)
}

// GenerateRaster renders img as a complete program.
func (g *Generator) GenerateRaster(img PowerImage, dpi float64) (string, error) {
	var sb strings.Builder
	if err := g.WriteRaster(&sb, img, dpi); err != nil {
		return "", err
	}
	return sb.String(), nil
}
