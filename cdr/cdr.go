package cdr

import "encoding/binary"

/*
Package cdr implements the scalar layer of a CDR-style binary encoding:
fixed-width primitives written at their natural alignment, with zero-valued
padding bytes inserted as needed. Alignment is always computed against the
absolute offset from the start of the buffer, including across nested
structure boundaries, so the Encoder and Decoder both track a single offset
for the lifetime of a message.

Byte order is a property of the envelope, chosen when the Encoder or Decoder
is constructed. It is unrelated to any endianness flag a message may carry as
ordinary payload data (e.g. PointCloud2.is_bigendian, which governs the bytes
inside the cloud's data blob, not the encoding of the message itself).
*/

////////////////////////////////////////////////////////////////////////////////

// ByteOrder is the envelope byte order. Both binary.LittleEndian and
// binary.BigEndian satisfy it.
type ByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

type config struct {
	order ByteOrder
}

// Option configures an Encoder or Decoder.
type Option func(*config)

// WithByteOrder sets the envelope byte order. The default is little-endian.
func WithByteOrder(order ByteOrder) Option {
	return func(c *config) {
		c.order = order
	}
}

func newConfig(opts []Option) config {
	c := config{order: binary.LittleEndian}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// padding returns the count of padding bytes required to advance offset to a
// multiple of align. Alignments are powers of two.
func padding(offset, align int) int {
	return -offset & (align - 1)
}
