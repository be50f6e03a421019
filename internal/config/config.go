// Package config handles dxfcut configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/dxfcut/pkg/gcode"
	"github.com/Faultbox/dxfcut/pkg/geom"
	"github.com/Faultbox/dxfcut/pkg/math"
)

// Validation errors.
var (
	ErrInvalidPower     = errors.New("power must be between 0 and 255")
	ErrInvalidFeed      = errors.New("feed rates must be positive")
	ErrInvalidDPI       = errors.New("dpi must be positive")
	ErrInvalidTolerance = errors.New("stitch tolerance must not be negative")
	ErrInvalidScale     = errors.New("transform scale must be positive")
)

// Config holds all converter settings.
type Config struct {
	GCode     GCodeConfig     `yaml:"gcode"`
	Raster    RasterConfig    `yaml:"raster"`
	Stitch    StitchConfig    `yaml:"stitch"`
	Transform TransformConfig `yaml:"transform"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GCodeConfig holds machine output settings.
type GCodeConfig struct {
	TravelFeed int      `yaml:"travel_feed"`
	CutFeed    int      `yaml:"cut_feed"`
	Power      int      `yaml:"power"` // spindle S word, 0-255
	Preamble   []string `yaml:"preamble"`
	ReturnHome bool     `yaml:"return_home"`
}

// RasterConfig holds bitmap engraving settings.
type RasterConfig struct {
	DPI float64 `yaml:"dpi"`
}

// StitchConfig controls joining of touching paths.
type StitchConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Tolerance float64 `yaml:"tolerance"` // mm
}

// TransformConfig places the drawing on the machine bed.
// Vertices are scaled, optionally mirrored in Y, then offset.
type TransformConfig struct {
	Scale   float64 `yaml:"scale"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	FlipY   bool    `yaml:"flip_y"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		GCode: GCodeConfig{
			TravelFeed: gcode.DefaultTravelFeed,
			CutFeed:    gcode.DefaultCutFeed,
			Power:      gcode.DefaultPower,
			Preamble:   append([]string(nil), gcode.DefaultPreamble...),
			ReturnHome: true,
		},
		Raster: RasterConfig{
			DPI: 200,
		},
		Stitch: StitchConfig{
			Enabled:   true,
			Tolerance: geom.StitchTolerance,
		},
		Transform: TransformConfig{
			Scale: 1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.GCode.Power < 0 || c.GCode.Power > 255 {
		return fmt.Errorf("%w: %d", ErrInvalidPower, c.GCode.Power)
	}
	if c.GCode.TravelFeed <= 0 || c.GCode.CutFeed <= 0 {
		return fmt.Errorf("%w: travel %d, cut %d", ErrInvalidFeed, c.GCode.TravelFeed, c.GCode.CutFeed)
	}
	if !(c.Raster.DPI > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDPI, c.Raster.DPI)
	}
	if c.Stitch.Tolerance < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTolerance, c.Stitch.Tolerance)
	}
	if !(c.Transform.Scale > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidScale, c.Transform.Scale)
	}
	return nil
}

// Settings converts the G-code section for the generator.
// Call Validate first; out-of-range power is clamped.
func (g GCodeConfig) Settings() gcode.Settings {
	power := g.Power
	if power < 0 {
		power = 0
	} else if power > 255 {
		power = 255
	}
	return gcode.Settings{
		TravelFeed: g.TravelFeed,
		CutFeed:    g.CutFeed,
		Power:      uint8(power),
		Preamble:   append([]string(nil), g.Preamble...),
		ReturnHome: g.ReturnHome,
	}
}

// Matrix returns the affine transform described by t.
func (t TransformConfig) Matrix() math.Affine {
	sy := t.Scale
	if t.FlipY {
		sy = -sy
	}
	return math.Translate(t.OffsetX, t.OffsetY).Mul(math.Scale(t.Scale, sy))
}
