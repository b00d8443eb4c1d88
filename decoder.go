package pnm

import (
	"image"
	"io"
)

// DecodeConfig returns the image configuration without retaining the
// pixel payload.
func DecodeConfig(r io.Reader) (image.Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return image.Config{}, err
	}
	img, err := Parse(data)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: img.ColorModel(),
		Width:      img.Width(),
		Height:     img.Height(),
	}, nil
}

// Decode reads a binary PPM image from r.
func Decode(r io.Reader) (image.Image, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Register format with image package
func init() {
	image.RegisterFormat("ppm", "P6\n", Decode, DecodeConfig)
}
