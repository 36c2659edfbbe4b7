package testutils_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wkalt/cdrcat/util/testutils"
)

func TestFlatten(t *testing.T) {
	cases := []struct {
		assertion string
		in        [][]byte
		expected  []byte
	}{
		{
			"empty",
			[][]byte{},
			[]byte{},
		},
		{
			"single",
			[][]byte{{1}},
			[]byte{1},
		},
		{
			"multiple",
			[][]byte{{1}, {2, 3}},
			[]byte{1, 2, 3},
		},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			require.Equal(t, c.expected, testutils.Flatten(c.in...))
		})
	}
}

func TestPadding(t *testing.T) {
	require.Equal(t, []byte{}, testutils.Padding(0))
	require.Equal(t, []byte{0, 0, 0}, testutils.Padding(3))
}

func TestScalarBuilders(t *testing.T) {
	cases := []struct {
		assertion string
		actual    []byte
		expected  []byte
	}{
		{"u8", testutils.U8b(255), []byte{255}},
		{"u16", testutils.U16b(1), []byte{1, 0}},
		{"u32", testutils.U32b(1), []byte{1, 0, 0, 0}},
		{"u64", testutils.U64b(1), []byte{1, 0, 0, 0, 0, 0, 0, 0}},
		{"bool true", testutils.Boolb(true), []byte{1}},
		{"bool false", testutils.Boolb(false), []byte{0}},
		{"i8 negative", testutils.I8b(-1), []byte{255}},
		{"i16 negative", testutils.I16b(-1), []byte{255, 255}},
		{"i32 negative", testutils.I32b(-1), []byte{255, 255, 255, 255}},
		{"i64 negative", testutils.I64b(-1), []byte{255, 255, 255, 255, 255, 255, 255, 255}},
		{"f32 one", testutils.F32b(1), []byte{0, 0, 128, 63}},
		{"f32 max", testutils.F32b(math.MaxFloat32), []byte{0xff, 0xff, 0x7f, 0x7f}},
		{"f64 one", testutils.F64b(1), []byte{0, 0, 0, 0, 0, 0, 240, 63}},
		{"f64 max", testutils.F64b(math.MaxFloat64), []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xef, 0x7f}},
		{"u16 big endian", testutils.U16bBE(1), []byte{0, 1}},
		{"u32 big endian", testutils.U32bBE(1), []byte{0, 0, 0, 1}},
		{"u64 big endian", testutils.U64bBE(1), []byte{0, 0, 0, 0, 0, 0, 0, 1}},
		{"f32 big endian", testutils.F32bBE(1), []byte{63, 128, 0, 0}},
		{"f64 big endian", testutils.F64bBE(1), []byte{63, 240, 0, 0, 0, 0, 0, 0}},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			require.Equal(t, c.expected, c.actual)
		})
	}
}

func TestPrefixedString(t *testing.T) {
	cases := []struct {
		assertion string
		in        string
		expected  []byte
	}{
		{
			"empty string is a single NUL",
			"",
			[]byte{1, 0, 0, 0, 0},
		},
		{
			"one character",
			"1",
			[]byte{2, 0, 0, 0, 49, 0},
		},
		{
			"prefix counts the terminator",
			"max",
			[]byte{4, 0, 0, 0, 109, 97, 120, 0},
		},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			require.Equal(t, c.expected, testutils.PrefixedString(c.in))
		})
	}
}
