// dxfcut converts DXF drawings and BMP images to laser cutter G-code.
package main

import (
	"flag"
	"fmt"
	"io"
	gomath "math"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/dxfcut/internal/config"
	"github.com/Faultbox/dxfcut/internal/convert"
	"github.com/Faultbox/dxfcut/internal/logger"
	"github.com/Faultbox/dxfcut/pkg/encoding"
	"github.com/Faultbox/dxfcut/pkg/formats"
)

func main() {
	flag.Usage = printUsage
	config.ParseFlags()

	if flag.NArg() < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	command := flag.Arg(0)
	args := flag.Args()[1:]

	var code int
	switch command {
	case "dxf":
		code = cmdDXF(cfg, args)
	case "bmp":
		code = cmdBMP(cfg, args)
	case "info":
		code = cmdInfo(cfg, args)
	case "config":
		code = cmdConfig(cfg, args)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		code = 1
	}

	logger.Sync()
	os.Exit(code)
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `dxfcut - DXF and BMP to laser G-code converter

Usage:
  dxfcut [global options] <command> [options]

Commands:
  dxf <file.dxf> [-o out.nc]             Convert a drawing to cutting moves
  bmp <file.bmp> [-dpi N] [-o out.nc]    Convert an image to raster engraving moves
  info <file.dxf>                        Show entity and path statistics
  config [path]                          Write the effective config (stdout by default)

Global options:
  -config <path>     Config file (default ./dxfcut.yaml, then user config dir)
  -debug             Enable debug logging
  -power N           Laser power for cuts (0-255)
  -cut-feed N        Feed rate while cutting
  -travel-feed N     Feed rate while travelling
  -dpi N             Raster resolution

Examples:
  dxfcut dxf part.dxf -o part.nc
  dxfcut -power 180 bmp logo.bmp -dpi 300 > logo.nc
  dxfcut info part.dxf`)
}

// output opens path for writing, or stdout when path is empty.
func output(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// convertFile runs one pipeline over input and writes the program to outPath.
func convertFile(cfg *config.Config, input, outPath string, pick func(*convert.Converter) func([]byte) (string, error)) int {
	conv, err := convert.New(cfg, logger.Log)
	if err != nil {
		logger.Error("failed to create converter", zap.Error(err))
		return 1
	}

	w, err := output(outPath)
	if err != nil {
		logger.Error("failed to open output", zap.String("path", outPath), zap.Error(err))
		return 1
	}

	err = conv.File(input, pick(conv), w)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		logger.Error("conversion failed", zap.String("input", input), zap.Error(err))
		return 1
	}

	if outPath != "" {
		logger.Info("wrote program", zap.String("path", outPath))
	}
	return 0
}

func cmdDXF(cfg *config.Config, args []string) int {
	fs := flag.NewFlagSet("dxf", flag.ExitOnError)
	out := fs.String("o", "", "Output file (default stdout)")
	fs.Parse(reorder(fs, args))

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: dxfcut dxf <file.dxf> [-o out.nc]")
		return 1
	}

	return convertFile(cfg, fs.Arg(0), *out, func(c *convert.Converter) func([]byte) (string, error) {
		return c.DXF
	})
}

func cmdBMP(cfg *config.Config, args []string) int {
	fs := flag.NewFlagSet("bmp", flag.ExitOnError)
	out := fs.String("o", "", "Output file (default stdout)")
	dpi := fs.Float64("dpi", cfg.Raster.DPI, "Raster resolution in dots per inch")
	fs.Parse(reorder(fs, args))

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: dxfcut bmp <file.bmp> [-dpi N] [-o out.nc]")
		return 1
	}

	cfg.Raster.DPI = *dpi
	return convertFile(cfg, fs.Arg(0), *out, func(c *convert.Converter) func([]byte) (string, error) {
		return c.BMP
	})
}

func cmdInfo(cfg *config.Config, args []string) int {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: dxfcut info <file.dxf>")
		return 1
	}

	conv, err := convert.New(cfg, logger.Log)
	if err != nil {
		logger.Error("failed to create converter", zap.Error(err))
		return 1
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	dxf, err := conv.Drawing(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	paths := conv.Toolpaths(dxf)

	page := encoding.CodePage(data)
	if page == "" {
		page = "(not declared)"
	}

	fmt.Printf("Drawing:  %s\n", args[0])
	fmt.Printf("Codepage: %s\n", page)
	fmt.Printf("Entities: %d\n", dxf.EntityCount())
	fmt.Printf("Dropped:  %d\n", dxf.DroppedCount())
	fmt.Printf("Paths:    %d\n", len(paths))

	kinds := []formats.EntityKind{formats.EntityLine, formats.EntityPolyline, formats.EntitySpline, formats.EntityCircle}
	fmt.Println()
	fmt.Println("Entities by kind:")
	for _, k := range kinds {
		fmt.Printf("  %-10s %5d parsed %5d dropped\n", k, dxf.Parsed[k], dxf.Dropped[k])
	}

	vertices := 0
	minX, minY := gomath.Inf(1), gomath.Inf(1)
	maxX, maxY := gomath.Inf(-1), gomath.Inf(-1)
	for _, p := range paths {
		vertices += p.Len()
		for _, v := range p.Vertices {
			minX, maxX = gomath.Min(minX, v.X), gomath.Max(maxX, v.X)
			minY, maxY = gomath.Min(minY, v.Y), gomath.Max(maxY, v.Y)
		}
	}
	fmt.Println()
	fmt.Printf("Vertices: %d\n", vertices)
	if vertices > 0 {
		fmt.Printf("Bounds:   X %.2f..%.2f  Y %.2f..%.2f mm\n", minX, maxX, minY, maxY)
	}
	return 0
}

func cmdConfig(cfg *config.Config, args []string) int {
	if len(args) > 0 {
		if err := cfg.SaveTo(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		fmt.Printf("Wrote %s\n", args[0])
		return 0
	}

	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	os.Stdout.Write(data)
	return 0
}

// reorder moves flags after positional arguments to the front so that
// "dxf part.dxf -o part.nc" parses like "dxf -o part.nc part.dxf".
func reorder(fs *flag.FlagSet, args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		if len(a) < 2 || a[0] != '-' {
			positional = append(positional, a)
			continue
		}
		flags = append(flags, a)

		name := a[1:]
		if name[0] == '-' {
			name = name[1:]
		}
		if f := fs.Lookup(name); f != nil && !isBool(f) && i+1 < len(args) {
			flags = append(flags, args[i+1])
			i++
		}
	}
	return append(flags, positional...)
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
