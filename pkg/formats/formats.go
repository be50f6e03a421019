// Package formats provides readers for the drawing and image formats that
// are converted to toolpaths.
package formats

// Note: DXF (Drawing Exchange Format) text is parsed in dxf.go and dxf_entities.go
// Note: BMP raster input is read in bmp.go
