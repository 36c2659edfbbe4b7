package cdr

import (
	"math"
	"unicode/utf8"
)

// Decoder reads scalar values from a bounded byte window, skipping alignment
// padding before each read. The cursor only moves forward. Decoders are not
// safe for concurrent use, but distinct decoders share no state.
type Decoder struct {
	buf    []byte
	offset int
	order  ByteOrder
}

// NewDecoder returns a decoder over buf positioned at offset zero.
func NewDecoder(buf []byte, opts ...Option) *Decoder {
	c := newConfig(opts)
	return &Decoder{buf: buf, order: c.order}
}

// Set repoints the decoder at a new buffer and resets the cursor.
func (d *Decoder) Set(buf []byte) {
	d.buf = buf
	d.offset = 0
}

// Reset rewinds the cursor to the start of the buffer.
func (d *Decoder) Reset() {
	d.offset = 0
}

// Offset returns the absolute cursor position.
func (d *Decoder) Offset() int {
	return d.offset
}

// Remaining returns the count of unconsumed bytes.
func (d *Decoder) Remaining() int {
	return len(d.buf) - d.offset
}

// take aligns the cursor and consumes width bytes, returning them. Padding
// bytes and value bytes are only consumed together: on failure the cursor is
// left where it was.
func (d *Decoder) take(width int, typeName string) ([]byte, error) {
	start := d.offset + padding(d.offset, width)
	if start+width > len(d.buf) {
		return nil, ShortReadError{typeName}
	}
	d.offset = start + width
	return d.buf[start : start+width], nil
}

func (d *Decoder) Bool() (bool, error) {
	b, err := d.take(1, "bool")
	if err != nil {
		return false, err
	}
	switch b[0] {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, InvalidEncodingError{"boolean byte not 0 or 1"}
	}
}

func (d *Decoder) Int8() (int8, error) {
	b, err := d.take(1, "int8")
	if err != nil {
		return 0, err
	}
	return int8(b[0]), nil
}

func (d *Decoder) Uint8() (uint8, error) {
	b, err := d.take(1, "uint8")
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (d *Decoder) Int16() (int16, error) {
	b, err := d.take(2, "int16")
	if err != nil {
		return 0, err
	}
	return int16(d.order.Uint16(b)), nil
}

func (d *Decoder) Uint16() (uint16, error) {
	b, err := d.take(2, "uint16")
	if err != nil {
		return 0, err
	}
	return d.order.Uint16(b), nil
}

func (d *Decoder) Int32() (int32, error) {
	b, err := d.take(4, "int32")
	if err != nil {
		return 0, err
	}
	return int32(d.order.Uint32(b)), nil
}

func (d *Decoder) Uint32() (uint32, error) {
	b, err := d.take(4, "uint32")
	if err != nil {
		return 0, err
	}
	return d.order.Uint32(b), nil
}

func (d *Decoder) Int64() (int64, error) {
	b, err := d.take(8, "int64")
	if err != nil {
		return 0, err
	}
	return int64(d.order.Uint64(b)), nil
}

func (d *Decoder) Uint64() (uint64, error) {
	b, err := d.take(8, "uint64")
	if err != nil {
		return 0, err
	}
	return d.order.Uint64(b), nil
}

func (d *Decoder) Float32() (float32, error) {
	b, err := d.take(4, "float32")
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(d.order.Uint32(b)), nil
}

func (d *Decoder) Float64() (float64, error) {
	b, err := d.take(8, "float64")
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(d.order.Uint64(b)), nil
}

// String reads a 4-byte length prefix covering the UTF-8 bytes plus a NUL
// terminator, then the bytes themselves. The terminator is required and
// excluded from the result.
func (d *Decoder) String() (string, error) {
	b, err := d.take(4, "string length")
	if err != nil {
		return "", err
	}
	length := int(d.order.Uint32(b))
	if length < 1 {
		return "", InvalidEncodingError{"string length prefix is zero"}
	}
	if length > d.Remaining() {
		return "", LengthOverflowError{length, d.Remaining()}
	}
	data := d.buf[d.offset : d.offset+length]
	if data[length-1] != 0 {
		return "", InvalidEncodingError{"string missing NUL terminator"}
	}
	if !utf8.Valid(data[:length-1]) {
		return "", InvalidEncodingError{"string is not valid UTF-8"}
	}
	d.offset += length
	return string(data[:length-1]), nil
}

// ArrayLength reads the 4-byte element count of a variable-length sequence.
// Elements are at least one byte wide, so a count exceeding the remaining
// buffer can never be satisfied.
func (d *Decoder) ArrayLength() (int, error) {
	b, err := d.take(4, "array length")
	if err != nil {
		return 0, err
	}
	count := int(d.order.Uint32(b))
	if count > d.Remaining() {
		return 0, LengthOverflowError{count, d.Remaining()}
	}
	return count, nil
}

// Bytes consumes n bytes with no alignment. The result aliases the input
// buffer; callers that outlive the buffer must copy.
func (d *Decoder) Bytes(n int) ([]byte, error) {
	if n > d.Remaining() {
		return nil, ShortReadError{"bytes"}
	}
	b := d.buf[d.offset : d.offset+n]
	d.offset += n
	return b, nil
}
