// Package convert wires the readers, geometry and G-code generator into the
// drawing and bitmap conversion pipelines.
package convert

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/dxfcut/internal/config"
	"github.com/Faultbox/dxfcut/pkg/encoding"
	"github.com/Faultbox/dxfcut/pkg/formats"
	"github.com/Faultbox/dxfcut/pkg/gcode"
	"github.com/Faultbox/dxfcut/pkg/geom"
)

// Converter turns DXF drawings and BMP images into G-code programs.
// It holds no per-conversion state and may be shared between goroutines.
type Converter struct {
	cfg *config.Config
	gen *gcode.Generator
	log *zap.Logger
}

// New creates a converter. A nil logger discards log output.
func New(cfg *config.Config, log *zap.Logger) (*Converter, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	gen, err := gcode.NewGenerator(cfg.GCode.Settings())
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Converter{cfg: cfg, gen: gen, log: log}, nil
}

// Drawing decodes and parses DXF bytes.
func (c *Converter) Drawing(data []byte) (*formats.DXF, error) {
	text, err := encoding.DecodeDocument(data)
	if err != nil {
		return nil, err
	}

	dxf, err := formats.ParseDXF(text)
	if err != nil {
		return nil, err
	}

	c.log.Debug("parsed drawing",
		zap.Int("bytes", len(data)),
		zap.Int("entities", dxf.EntityCount()),
		zap.Int("dropped", dxf.DroppedCount()))
	for kind, n := range dxf.Dropped {
		c.log.Debug("dropped entities", zap.Stringer("kind", kind), zap.Int("count", n))
	}
	return dxf, nil
}

// Toolpaths applies the configured transform and stitching to the parsed
// entity paths.
func (c *Converter) Toolpaths(dxf *formats.DXF) []geom.PolyLine {
	paths := dxf.Paths

	if m := c.cfg.Transform.Matrix(); !m.IsIdentity() {
		moved := make([]geom.PolyLine, len(paths))
		for i, p := range paths {
			moved[i] = p.Transform(m)
		}
		paths = moved
	}

	if c.cfg.Stitch.Enabled {
		before := len(paths)
		paths = geom.StitchWithin(paths, c.cfg.Stitch.Tolerance)
		c.log.Debug("stitched paths",
			zap.Int("before", before),
			zap.Int("after", len(paths)),
			zap.Float64("tolerance", c.cfg.Stitch.Tolerance))
	}
	return paths
}

// DXF converts a DXF document to G-code.
func (c *Converter) DXF(data []byte) (string, error) {
	dxf, err := c.Drawing(data)
	if err != nil {
		return "", err
	}

	paths := c.Toolpaths(dxf)
	c.log.Info("converted drawing",
		zap.Int("entities", dxf.EntityCount()),
		zap.Int("dropped", dxf.DroppedCount()),
		zap.Int("paths", len(paths)))

	return c.gen.Generate(paths), nil
}

// BMP converts a bitmap to a raster engraving program.
func (c *Converter) BMP(data []byte) (string, error) {
	raster, err := formats.ParseBMP(data)
	if err != nil {
		return "", err
	}

	out, err := c.gen.GenerateRaster(raster, c.cfg.Raster.DPI)
	if err != nil {
		return "", err
	}

	c.log.Info("converted bitmap",
		zap.Int("width", raster.Width),
		zap.Int("height", raster.Height),
		zap.Float64("dpi", c.cfg.Raster.DPI))
	return out, nil
}

// File converts the file at path, choosing the pipeline with conv, and
// writes the program to w.
func (c *Converter) File(path string, conv func([]byte) (string, error), w io.Writer) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	out, err := conv(data)
	if err != nil {
		return fmt.Errorf("converting %s: %w", path, err)
	}

	_, err = io.WriteString(w, out)
	return err
}
