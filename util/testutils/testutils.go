package testutils

import (
	"encoding/binary"
	"math"
)

/*
Byte-level helpers for building expected wire images in tests.
*/

////////////////////////////////////////////////////////////////////////////////

// Flatten concatenates slices of the same type.
func Flatten[T any](slices ...[]T) []T {
	result := []T{}
	for _, s := range slices {
		result = append(result, s...)
	}
	return result
}

// Padding returns n zero bytes.
func Padding(n int) []byte {
	return make([]byte, n)
}

// U8b returns a byte slice containing a single uint8 value.
func U8b(v uint8) []byte {
	return []byte{v}
}

// U16b returns a byte slice containing a single little-endian uint16 value.
func U16b(v uint16) []byte {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, v)
	return buf
}

// U32b returns a byte slice containing a single little-endian uint32 value.
func U32b(v uint32) []byte {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return buf
}

// U64b returns a byte slice containing a single little-endian uint64 value.
func U64b(v uint64) []byte {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return buf
}

func Boolb(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

func I8b(v int8) []byte {
	return U8b(uint8(v))
}

func I16b(v int16) []byte {
	return U16b(uint16(v))
}

func I32b(v int32) []byte {
	return U32b(uint32(v))
}

func I64b(v int64) []byte {
	return U64b(uint64(v))
}

func F32b(v float32) []byte {
	return U32b(math.Float32bits(v))
}

func F64b(v float64) []byte {
	return U64b(math.Float64bits(v))
}

// Big-endian variants, for payloads whose internal byte order is declared by
// the message rather than the envelope.

func U16bBE(v uint16) []byte {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, v)
	return buf
}

func U32bBE(v uint32) []byte {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return buf
}

func U64bBE(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

func F32bBE(v float32) []byte {
	return U32bBE(math.Float32bits(v))
}

func F64bBE(v float64) []byte {
	return U64bBE(math.Float64bits(v))
}

// PrefixedString returns the wire image of a string: little-endian length
// prefix covering the bytes plus NUL terminator, then the bytes and the
// terminator. Alignment of the prefix is the caller's concern.
func PrefixedString(s string) []byte {
	return Flatten(U32b(uint32(len(s)+1)), []byte(s), []byte{0})
}
