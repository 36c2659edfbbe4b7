package cdr_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wkalt/cdrcat/cdr"
	"github.com/wkalt/cdrcat/util/testutils"
)

func TestDecoderScalars(t *testing.T) {
	buf := testutils.Flatten(
		testutils.U8b(1),              // bool
		testutils.U8b(0xff),           // uint8
		testutils.Padding(2),          // align 4
		testutils.I32b(1234567890),    // int32
		testutils.U32b(123456789),     // uint32
		testutils.Padding(4),          // align 8
		testutils.F64b(3.14159),       // float64
		testutils.PrefixedString("a"), // string
	)
	d := cdr.NewDecoder(buf)

	b, err := d.Bool()
	require.NoError(t, err)
	require.True(t, b)

	u8, err := d.Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(0xff), u8)

	i32, err := d.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(1234567890), i32)

	u32, err := d.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(123456789), u32)

	f64, err := d.Float64()
	require.NoError(t, err)
	require.Equal(t, 3.14159, f64)

	s, err := d.String()
	require.NoError(t, err)
	require.Equal(t, "a", s)
	require.Equal(t, 0, d.Remaining())
}

func TestDecoderAlignmentIsAbsolute(t *testing.T) {
	// alignment is measured from the start of the buffer, not from the
	// start of any enclosing record.
	buf := testutils.Flatten(
		testutils.U8b(5),
		testutils.Padding(3),
		testutils.U32b(7),
		testutils.U32b(9),
	)
	d := cdr.NewDecoder(buf)
	u8, err := d.Uint8()
	require.NoError(t, err)
	require.Equal(t, uint8(5), u8)
	a, err := d.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(7), a)
	b, err := d.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(9), b)
}

func TestDecoderErrors(t *testing.T) {
	cases := []struct {
		assertion string
		input     []byte
		read      func(d *cdr.Decoder) error
		target    error
	}{
		{
			"truncated uint32",
			testutils.U16b(1),
			func(d *cdr.Decoder) error { _, err := d.Uint32(); return err },
			cdr.NewShortReadError("uint32"),
		},
		{
			"truncated by alignment padding",
			testutils.Flatten(testutils.U8b(1), testutils.U8b(2)),
			func(d *cdr.Decoder) error {
				if _, err := d.Uint8(); err != nil {
					return err
				}
				_, err := d.Uint64()
				return err
			},
			cdr.NewShortReadError("uint64"),
		},
		{
			"empty buffer bool",
			nil,
			func(d *cdr.Decoder) error { _, err := d.Bool(); return err },
			cdr.NewShortReadError("bool"),
		},
		{
			"bool byte out of range",
			testutils.U8b(2),
			func(d *cdr.Decoder) error { _, err := d.Bool(); return err },
			cdr.NewInvalidEncodingError(""),
		},
		{
			"string missing terminator",
			testutils.Flatten(testutils.U32b(2), []byte{'a', 'b'}),
			func(d *cdr.Decoder) error { _, err := d.String(); return err },
			cdr.NewInvalidEncodingError(""),
		},
		{
			"string zero length prefix",
			testutils.U32b(0),
			func(d *cdr.Decoder) error { _, err := d.String(); return err },
			cdr.NewInvalidEncodingError(""),
		},
		{
			"string invalid utf8",
			testutils.Flatten(testutils.U32b(2), []byte{0xff, 0}),
			func(d *cdr.Decoder) error { _, err := d.String(); return err },
			cdr.NewInvalidEncodingError(""),
		},
		{
			"string length exceeds buffer",
			testutils.Flatten(testutils.U32b(100), []byte{'a', 0}),
			func(d *cdr.Decoder) error { _, err := d.String(); return err },
			cdr.NewLengthOverflowError(0, 0),
		},
		{
			"array length exceeds buffer",
			testutils.U32b(1 << 30),
			func(d *cdr.Decoder) error { _, err := d.ArrayLength(); return err },
			cdr.NewLengthOverflowError(0, 0),
		},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			d := cdr.NewDecoder(c.input)
			err := c.read(d)
			require.Error(t, err)
			if c.target != nil {
				require.ErrorIs(t, err, c.target)
			}
		})
	}
}

func TestDecoderBigEndian(t *testing.T) {
	d := cdr.NewDecoder([]byte{1, 2, 0, 0, 3, 4, 5, 6}, cdr.WithByteOrder(binary.BigEndian))
	u16, err := d.Uint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0x0102), u16)
	u32, err := d.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(0x03040506), u32)
}

func TestDecoderBytes(t *testing.T) {
	d := cdr.NewDecoder([]byte{1, 2, 3, 4})
	b, err := d.Bytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, b)
	_, err = d.Bytes(2)
	require.ErrorIs(t, err, cdr.NewShortReadError("bytes"))
}

func TestDecoderSetReset(t *testing.T) {
	d := cdr.NewDecoder(testutils.U32b(10))
	v, err := d.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(10), v)
	d.Set(testutils.U32b(20))
	v, err = d.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(20), v)
	d.Reset()
	v, err = d.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(20), v)
}

func TestRoundTripScalars(t *testing.T) {
	e := cdr.NewEncoder()
	e.Int32(1234567890)
	e.Uint32(123456789)
	buf := e.Bytes()
	require.Len(t, buf, 8)

	d := cdr.NewDecoder(buf)
	sec, err := d.Int32()
	require.NoError(t, err)
	nanosec, err := d.Uint32()
	require.NoError(t, err)
	require.Equal(t, int32(1234567890), sec)
	require.Equal(t, uint32(123456789), nanosec)
}
