package pnm

import (
	"errors"
	"fmt"
)

var (
	ErrNotPNM            = errors.New("pnm: not a PNM file")
	ErrUnsupportedFormat = errors.New("pnm: unsupported PNM format")
	ErrInvalidUTF8       = errors.New("pnm: comment is not valid UTF-8")
)

// ParseError reports a structural violation at a specific byte offset
// of the input buffer.
type ParseError struct {
	Pos int    // offset of the offending byte
	Got byte   // the byte encountered
	Ctx string // what the parser expected instead
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pnm: %s at offset %d (got 0x%02x)", e.Ctx, e.Pos, e.Got)
}
