package pnm

import (
	"math"
	"unicode/utf8"
)

// Parse decodes a binary PPM (P6) image from data.
//
// Only the header is examined. Everything after the maxval terminator
// is taken verbatim as the pixel payload, as a sub-slice of data rather
// than a copy, and is not validated against width*height*3. A truncated
// or malformed header fails with one of the sentinel errors or a
// *ParseError; Parse never panics.
func Parse(data []byte) (*Image, error) {
	s := scanner{data: data}

	// Magic "P6\n". Second bytes '1'..'5' name variants this package
	// recognizes but does not decode.
	b0, err := s.next()
	if err != nil {
		return nil, err
	}
	if b0 != 'P' {
		return nil, ErrNotPNM
	}
	b1, err := s.next()
	if err != nil {
		return nil, err
	}
	switch {
	case b1 >= '1' && b1 <= '5':
		return nil, ErrUnsupportedFormat
	case b1 == '6':
	default:
		return nil, ErrNotPNM
	}
	b2, err := s.next()
	if err != nil {
		return nil, err
	}
	if b2 != '\n' {
		return nil, &ParseError{Pos: 2, Got: b2, Ctx: "expected newline"}
	}

	// Comment region: contiguous '#' lines form one region running from
	// the first '#' to the newline of the last line. The reported text
	// stops before that final newline but keeps the '#' markers and any
	// interior newlines.
	start := s.pos
	end := start
	for {
		b, ok := s.peek()
		if !ok || b != '#' {
			break
		}
		for {
			c, err := s.next()
			if err != nil {
				return nil, err
			}
			if c == '\n' {
				break
			}
		}
		end = s.pos - 1
	}
	var comment string
	if end > start {
		raw := data[start:end]
		if !utf8.Valid(raw) {
			return nil, ErrInvalidUTF8
		}
		comment = string(raw)
	}

	// <width>SPC<height>LF<maxval>LF
	width, err := s.decimal(' ')
	if err != nil {
		return nil, err
	}
	height, err := s.decimal('\n')
	if err != nil {
		return nil, err
	}
	maxVal, err := s.decimal('\n')
	if err != nil {
		return nil, err
	}

	return &Image{
		format:  PPMBinary,
		width:   width,
		height:  height,
		maxVal:  maxVal,
		comment: comment,
		pixels:  data[s.pos:],
	}, nil
}

// scanner is a bounds-checked cursor over the input buffer. Every
// advance that would run past the end reports a ParseError, so
// truncated headers and unterminated comments fail cleanly instead of
// panicking.
type scanner struct {
	data []byte
	pos  int
}

func (s *scanner) eof() *ParseError {
	return &ParseError{Pos: len(s.data), Ctx: "unexpected end of input"}
}

// next consumes and returns the current byte.
func (s *scanner) next() (byte, error) {
	if s.pos >= len(s.data) {
		return 0, s.eof()
	}
	b := s.data[s.pos]
	s.pos++
	return b, nil
}

// peek returns the current byte without consuming it. ok is false at
// end of input.
func (s *scanner) peek() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	return s.data[s.pos], true
}

// decimal accumulates ASCII digits until the terminator byte, consuming
// the terminator. A non-digit before the terminator, a value exceeding
// the platform int, or end of input fail with a ParseError.
func (s *scanner) decimal(stop byte) (int, error) {
	acc := 0
	for {
		b, err := s.next()
		if err != nil {
			return 0, err
		}
		if b == stop {
			return acc, nil
		}
		if b < '0' || b > '9' {
			return 0, &ParseError{Pos: s.pos - 1, Got: b, Ctx: "expected digit"}
		}
		d := int(b - '0')
		if acc > (math.MaxInt-d)/10 {
			return 0, &ParseError{Pos: s.pos - 1, Got: b, Ctx: "value out of range"}
		}
		acc = acc*10 + d
	}
}
