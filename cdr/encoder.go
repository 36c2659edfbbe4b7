package cdr

import (
	"math"
)

// Encoder appends scalar values to a growable buffer, inserting zero-valued
// padding to satisfy each value's natural alignment. Encoding cannot fail:
// the write methods return nothing and Bytes yields the accumulated buffer.
type Encoder struct {
	buf   []byte
	order ByteOrder
}

// NewEncoder returns an empty encoder.
func NewEncoder(opts ...Option) *Encoder {
	c := newConfig(opts)
	return &Encoder{buf: []byte{}, order: c.order}
}

// Bytes returns the encoded buffer.
func (e *Encoder) Bytes() []byte {
	return e.buf
}

// Len returns the count of bytes written, padding included.
func (e *Encoder) Len() int {
	return len(e.buf)
}

// Reset truncates the buffer for reuse.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
}

// align pads the buffer out to a multiple of n with zero bytes. Padding is
// emitted before a value, never after the final one, so a top-level structure
// ends at its last field's last byte.
func (e *Encoder) align(n int) {
	for i := padding(len(e.buf), n); i > 0; i-- {
		e.buf = append(e.buf, 0)
	}
}

func (e *Encoder) Bool(v bool) {
	if v {
		e.buf = append(e.buf, 1)
		return
	}
	e.buf = append(e.buf, 0)
}

func (e *Encoder) Int8(v int8) {
	e.buf = append(e.buf, byte(v))
}

func (e *Encoder) Uint8(v uint8) {
	e.buf = append(e.buf, v)
}

func (e *Encoder) Int16(v int16) {
	e.Uint16(uint16(v))
}

func (e *Encoder) Uint16(v uint16) {
	e.align(2)
	e.buf = e.order.AppendUint16(e.buf, v)
}

func (e *Encoder) Int32(v int32) {
	e.Uint32(uint32(v))
}

func (e *Encoder) Uint32(v uint32) {
	e.align(4)
	e.buf = e.order.AppendUint32(e.buf, v)
}

func (e *Encoder) Int64(v int64) {
	e.Uint64(uint64(v))
}

func (e *Encoder) Uint64(v uint64) {
	e.align(8)
	e.buf = e.order.AppendUint64(e.buf, v)
}

func (e *Encoder) Float32(v float32) {
	e.Uint32(math.Float32bits(v))
}

func (e *Encoder) Float64(v float64) {
	e.Uint64(math.Float64bits(v))
}

// String writes a 4-byte length prefix covering the UTF-8 bytes plus a NUL
// terminator, then the bytes and the terminator.
func (e *Encoder) String(s string) {
	e.Uint32(uint32(len(s) + 1))
	e.buf = append(e.buf, s...)
	e.buf = append(e.buf, 0)
}

// ArrayLength writes the 4-byte element count of a variable-length sequence.
func (e *Encoder) ArrayLength(n int) {
	e.Uint32(uint32(n))
}

// Raw appends bytes with no alignment or framing.
func (e *Encoder) Raw(b []byte) {
	e.buf = append(e.buf, b...)
}
