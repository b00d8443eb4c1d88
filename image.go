package pnm

import (
	"image"
	"image/color"
)

// Format identifies the PNM variant held by an Image.
//
// Only the binary PPM variant exists today; the tag leaves room for the
// grayscale and ASCII-encoded variants to join later without changing
// the accessor surface.
type Format byte

const (
	// PPMBinary is binary-encoded RGB, magic number "P6".
	PPMBinary Format = iota
)

func (f Format) String() string {
	switch f {
	case PPMBinary:
		return "P6"
	}
	return "unknown"
}

// Image is a parsed PNM image backed by the buffer it was parsed from.
//
// The pixel slice aliases the input of Parse and stays valid only as
// long as that buffer is neither mutated nor freed. An Image owns no
// resources and is safe for concurrent readers.
type Image struct {
	format  Format
	width   int
	height  int
	maxVal  int
	comment string
	pixels  []byte
}

// Format reports the PNM variant.
func (m *Image) Format() Format { return m.format }

// Width reports the declared image width in pixels.
func (m *Image) Width() int { return m.width }

// Height reports the declared image height in pixels.
func (m *Image) Height() int { return m.height }

// MaxVal reports the declared maximum sample value (typically 255).
// It is not enforced against the pixel payload.
func (m *Image) MaxVal() int { return m.maxVal }

// Comment reports the comment region of the header: the text from the
// first '#' up to, but not including, the final line terminator. The
// '#' markers and any newlines between adjacent comment lines are kept.
// Empty if the header has no comment.
func (m *Image) Comment() string { return m.comment }

// PixelRGB returns the RGB triple at (x, y), row-major from the top-left
// corner. ok is false when the coordinate lies outside the declared
// dimensions or the payload is too short to hold the triple.
func (m *Image) PixelRGB(x, y int) (r, g, b uint8, ok bool) {
	if x < 0 || y < 0 || x >= m.width || y >= m.height {
		return 0, 0, 0, false
	}
	idx := (x + y*m.width) * 3
	if idx < 0 || idx+3 > len(m.pixels) {
		return 0, 0, 0, false
	}
	return m.pixels[idx], m.pixels[idx+1], m.pixels[idx+2], true
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At implements image.Image. Coordinates whose triple falls outside the
// payload read as transparent black.
func (m *Image) At(x, y int) color.Color {
	r, g, b, ok := m.PixelRGB(x, y)
	if !ok {
		return color.RGBA{}
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
