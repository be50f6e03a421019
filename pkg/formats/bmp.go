package formats

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/bmp"
)

// BMP format errors.
var (
	ErrInvalidBMP = errors.New("invalid BMP image")
)

// Raster is a greyscale image with row 0 at the top.
type Raster struct {
	Width  int
	Height int
	Grey   []uint8 // row-major, Width*Height
}

// Bounds returns the raster size in pixels.
func (r *Raster) Bounds() (width, height int) {
	return r.Width, r.Height
}

// GreyAt returns the grey level at (x, y), 0 = black.
func (r *Raster) GreyAt(x, y int) uint8 {
	return r.Grey[y*r.Width+x]
}

// Power returns the laser power for (x, y): black burns at full power.
func (r *Raster) Power(x, y int) uint8 {
	return 255 - r.GreyAt(x, y)
}

// ParseBMP decodes a BMP image into a greyscale raster.
func ParseBMP(data []byte) (*Raster, error) {
	img, err := bmp.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBMP, err)
	}
	return NewRaster(img), nil
}

// ParseBMPFile decodes a BMP file from disk.
func ParseBMPFile(path string) (*Raster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading BMP file: %w", err)
	}
	return ParseBMP(data)
}

// NewRaster converts any image to a greyscale raster. Each pixel's grey
// level is the integer mean of its 8-bit red, green and blue channels.
func NewRaster(img image.Image) *Raster {
	b := img.Bounds()
	r := &Raster{
		Width:  b.Dx(),
		Height: b.Dy(),
		Grey:   make([]uint8, b.Dx()*b.Dy()),
	}

	for y := 0; y < r.Height; y++ {
		for x := 0; x < r.Width; x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			r.Grey[y*r.Width+x] = uint8((uint16(c.R) + uint16(c.G) + uint16(c.B)) / 3)
		}
	}
	return r
}
