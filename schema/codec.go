package schema

import (
	"fmt"

	"github.com/wkalt/cdrcat/cdr"
)

/*
Decode and Encode walk a schema against a CDR buffer. Decoded records are
represented as map[string]any keyed by field name, with nested records as
nested maps and arrays as []any. Arrays of uint8 or byte decode to []byte.

Field order on encode always comes from the schema, never from the map, so a
decoded record re-encodes to the exact input bytes.
*/

////////////////////////////////////////////////////////////////////////////////

// Decode reads one record laid out per the schema from the decoder.
func Decode(s *Schema, d *cdr.Decoder) (map[string]any, error) {
	record := make(map[string]any, len(s.Fields))
	for _, field := range s.Fields {
		value, err := decodeType(field.Type, d)
		if err != nil {
			return nil, fmt.Errorf("failed to decode field %s: %w", field.Name, err)
		}
		record[field.Name] = value
	}
	return record, nil
}

func decodeType(t Type, d *cdr.Decoder) (any, error) {
	switch {
	case t.Array:
		return decodeArray(t, d)
	case t.Record:
		record := make(map[string]any, len(t.Fields))
		for _, field := range t.Fields {
			value, err := decodeType(field.Type, d)
			if err != nil {
				return nil, fmt.Errorf("failed to decode field %s: %w", field.Name, err)
			}
			record[field.Name] = value
		}
		return record, nil
	default:
		return decodePrimitive(t.Primitive, d)
	}
}

func decodeArray(t Type, d *cdr.Decoder) (any, error) {
	count := t.FixedSize
	if count == 0 {
		n, err := d.ArrayLength()
		if err != nil {
			return nil, err
		}
		if t.Items.IsPrimitive() && n*minimumWidth(t.Items.Primitive) > d.Remaining() {
			return nil, cdr.NewLengthOverflowError(n, d.Remaining())
		}
		count = n
	}
	if t.Items.IsPrimitive() && byteSized(t.Items.Primitive) {
		data, err := d.Bytes(count)
		if err != nil {
			return nil, err
		}
		out := make([]byte, count)
		copy(out, data)
		return out, nil
	}
	values := make([]any, count)
	for i := range values {
		value, err := decodeType(*t.Items, d)
		if err != nil {
			return nil, fmt.Errorf("failed to decode element %d: %w", i, err)
		}
		values[i] = value
	}
	return values, nil
}

func decodePrimitive(p PrimitiveType, d *cdr.Decoder) (any, error) {
	switch p {
	case BOOL:
		return d.Bool()
	case INT8:
		return d.Int8()
	case INT16:
		return d.Int16()
	case INT32:
		return d.Int32()
	case INT64:
		return d.Int64()
	case UINT8, CHAR, BYTE:
		return d.Uint8()
	case UINT16:
		return d.Uint16()
	case UINT32:
		return d.Uint32()
	case UINT64:
		return d.Uint64()
	case FLOAT32:
		return d.Float32()
	case FLOAT64:
		return d.Float64()
	case STRING:
		return d.String()
	default:
		return nil, fmt.Errorf("unrecognized primitive: %s", p)
	}
}

func byteSized(p PrimitiveType) bool {
	return p == UINT8 || p == BYTE || p == CHAR
}

// minimumWidth is the fewest bytes one encoded element can occupy, ignoring
// alignment. A sequence count that cannot fit this many bytes per element in
// the remaining buffer is rejected before any elements are read. A string is
// at least its length prefix plus a NUL terminator.
func minimumWidth(p PrimitiveType) int {
	switch p {
	case INT16, UINT16:
		return 2
	case INT32, UINT32, FLOAT32:
		return 4
	case INT64, UINT64, FLOAT64:
		return 8
	case STRING:
		return 5
	default:
		return 1
	}
}

////////////////////////////////////////////////////////////////////////////////

// Encode writes one record laid out per the schema to the encoder. Every
// schema field must be present in the value map with a type matching the
// field.
func Encode(s *Schema, e *cdr.Encoder, value map[string]any) error {
	for _, field := range s.Fields {
		v, ok := value[field.Name]
		if !ok {
			return fmt.Errorf("missing field %s", field.Name)
		}
		if err := encodeType(field.Type, e, v); err != nil {
			return fmt.Errorf("failed to encode field %s: %w", field.Name, err)
		}
	}
	return nil
}

func encodeType(t Type, e *cdr.Encoder, value any) error {
	switch {
	case t.Array:
		return encodeArray(t, e, value)
	case t.Record:
		record, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("expected record, got %T", value)
		}
		for _, field := range t.Fields {
			v, ok := record[field.Name]
			if !ok {
				return fmt.Errorf("missing field %s", field.Name)
			}
			if err := encodeType(field.Type, e, v); err != nil {
				return fmt.Errorf("failed to encode field %s: %w", field.Name, err)
			}
		}
		return nil
	default:
		return encodePrimitive(t.Primitive, e, value)
	}
}

func encodeArray(t Type, e *cdr.Encoder, value any) error {
	if t.Items.IsPrimitive() && byteSized(t.Items.Primitive) {
		data, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("expected []byte, got %T", value)
		}
		if t.FixedSize > 0 {
			if len(data) != t.FixedSize {
				return fmt.Errorf("expected %d bytes, got %d", t.FixedSize, len(data))
			}
		} else {
			e.ArrayLength(len(data))
		}
		e.Raw(data)
		return nil
	}
	values, ok := value.([]any)
	if !ok {
		return fmt.Errorf("expected array, got %T", value)
	}
	if t.FixedSize > 0 {
		if len(values) != t.FixedSize {
			return fmt.Errorf("expected %d elements, got %d", t.FixedSize, len(values))
		}
	} else {
		e.ArrayLength(len(values))
	}
	for i, v := range values {
		if err := encodeType(*t.Items, e, v); err != nil {
			return fmt.Errorf("failed to encode element %d: %w", i, err)
		}
	}
	return nil
}

func encodePrimitive(p PrimitiveType, e *cdr.Encoder, value any) error {
	switch p {
	case BOOL:
		v, ok := value.(bool)
		if !ok {
			return typeError("bool", value)
		}
		e.Bool(v)
	case INT8:
		v, ok := value.(int8)
		if !ok {
			return typeError("int8", value)
		}
		e.Int8(v)
	case INT16:
		v, ok := value.(int16)
		if !ok {
			return typeError("int16", value)
		}
		e.Int16(v)
	case INT32:
		v, ok := value.(int32)
		if !ok {
			return typeError("int32", value)
		}
		e.Int32(v)
	case INT64:
		v, ok := value.(int64)
		if !ok {
			return typeError("int64", value)
		}
		e.Int64(v)
	case UINT8, CHAR, BYTE:
		v, ok := value.(uint8)
		if !ok {
			return typeError("uint8", value)
		}
		e.Uint8(v)
	case UINT16:
		v, ok := value.(uint16)
		if !ok {
			return typeError("uint16", value)
		}
		e.Uint16(v)
	case UINT32:
		v, ok := value.(uint32)
		if !ok {
			return typeError("uint32", value)
		}
		e.Uint32(v)
	case UINT64:
		v, ok := value.(uint64)
		if !ok {
			return typeError("uint64", value)
		}
		e.Uint64(v)
	case FLOAT32:
		v, ok := value.(float32)
		if !ok {
			return typeError("float32", value)
		}
		e.Float32(v)
	case FLOAT64:
		v, ok := value.(float64)
		if !ok {
			return typeError("float64", value)
		}
		e.Float64(v)
	case STRING:
		v, ok := value.(string)
		if !ok {
			return typeError("string", value)
		}
		e.String(v)
	default:
		return fmt.Errorf("unrecognized primitive: %s", p)
	}
	return nil
}

func typeError(expected string, value any) error {
	return fmt.Errorf("expected %s, got %T", expected, value)
}
