// Package pnm implements a zero-copy decoder for binary PPM (P6) images.
//
// This package decodes the binary RGB variant of the netpbm family. The
// other PNM magic numbers (P1-P5) are recognized and rejected with
// ErrUnsupportedFormat. Encoding is out of scope.
//
// Parsing an in-memory buffer:
//
//	img, err := pnm.Parse(data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	r, g, b, ok := img.PixelRGB(10, 4)
//
// The returned Image references the pixel bytes of the input buffer
// rather than copying them, so it stays valid only as long as the
// buffer does.
//
// The package registers itself with the image package for automatic
// format detection:
//
//	import _ "github.com/ajroetker/go-pnm"
//	img, _, err := image.Decode(reader)
package pnm
