package schema

import (
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
)

/*
JSONTranscoder renders decoded records as JSON, keyed and ordered by the
schema. Byte arrays render as base64 strings. The internal buffer is reused
across calls, so a transcoder amortizes allocation over a stream of records.
*/

////////////////////////////////////////////////////////////////////////////////

type JSONTranscoder struct {
	schema *Schema

	buf []byte
}

// NewJSONTranscoder constructs a transcoder for one schema.
func NewJSONTranscoder(schema *Schema) *JSONTranscoder {
	return &JSONTranscoder{schema: schema, buf: []byte{}}
}

// Transcode writes the record as a single JSON object to w.
func (t *JSONTranscoder) Transcode(w io.Writer, record map[string]any) error {
	t.buf = t.buf[:0]
	if err := t.record(t.schema.Fields, record); err != nil {
		return err
	}
	if _, err := w.Write(t.buf); err != nil {
		return fmt.Errorf("failed to write transcoded record: %w", err)
	}
	return nil
}

func (t *JSONTranscoder) record(fields []Field, record map[string]any) error {
	t.buf = append(t.buf, '{')
	for i, field := range fields {
		if i > 0 {
			t.buf = append(t.buf, ',')
		}
		t.buf = append(t.buf, '"')
		t.buf = append(t.buf, field.Name...)
		t.buf = append(t.buf, `":`...)
		value, ok := record[field.Name]
		if !ok {
			return fmt.Errorf("missing field %s", field.Name)
		}
		if err := t.value(field.Type, value); err != nil {
			return fmt.Errorf("failed to transcode field %s: %w", field.Name, err)
		}
	}
	t.buf = append(t.buf, '}')
	return nil
}

func (t *JSONTranscoder) value(typ Type, value any) error {
	switch {
	case typ.Array:
		return t.array(typ, value)
	case typ.Record:
		record, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("expected record, got %T", value)
		}
		return t.record(typ.Fields, record)
	default:
		return t.primitive(typ.Primitive, value)
	}
}

func (t *JSONTranscoder) array(typ Type, value any) error {
	if data, ok := value.([]byte); ok {
		t.buf = append(t.buf, '"')
		t.buf = base64.StdEncoding.AppendEncode(t.buf, data)
		t.buf = append(t.buf, '"')
		return nil
	}
	values, ok := value.([]any)
	if !ok {
		return fmt.Errorf("expected array, got %T", value)
	}
	t.buf = append(t.buf, '[')
	for i, v := range values {
		if i > 0 {
			t.buf = append(t.buf, ',')
		}
		if err := t.value(*typ.Items, v); err != nil {
			return fmt.Errorf("failed to transcode element %d: %w", i, err)
		}
	}
	t.buf = append(t.buf, ']')
	return nil
}

func (t *JSONTranscoder) primitive(typ PrimitiveType, value any) error {
	switch typ {
	case FLOAT64:
		v, ok := value.(float64)
		if !ok {
			return typeError("float64", value)
		}
		t.buf = strconv.AppendFloat(t.buf, v, 'f', -1, 64)
	case FLOAT32:
		v, ok := value.(float32)
		if !ok {
			return typeError("float32", value)
		}
		t.buf = strconv.AppendFloat(t.buf, float64(v), 'f', -1, 32)
	case BOOL:
		v, ok := value.(bool)
		if !ok {
			return typeError("bool", value)
		}
		t.buf = strconv.AppendBool(t.buf, v)
	case INT8:
		v, ok := value.(int8)
		if !ok {
			return typeError("int8", value)
		}
		t.buf = strconv.AppendInt(t.buf, int64(v), 10)
	case INT16:
		v, ok := value.(int16)
		if !ok {
			return typeError("int16", value)
		}
		t.buf = strconv.AppendInt(t.buf, int64(v), 10)
	case INT32:
		v, ok := value.(int32)
		if !ok {
			return typeError("int32", value)
		}
		t.buf = strconv.AppendInt(t.buf, int64(v), 10)
	case INT64:
		v, ok := value.(int64)
		if !ok {
			return typeError("int64", value)
		}
		t.buf = strconv.AppendInt(t.buf, v, 10)
	case UINT8, CHAR, BYTE:
		v, ok := value.(uint8)
		if !ok {
			return typeError("uint8", value)
		}
		t.buf = strconv.AppendUint(t.buf, uint64(v), 10)
	case UINT16:
		v, ok := value.(uint16)
		if !ok {
			return typeError("uint16", value)
		}
		t.buf = strconv.AppendUint(t.buf, uint64(v), 10)
	case UINT32:
		v, ok := value.(uint32)
		if !ok {
			return typeError("uint32", value)
		}
		t.buf = strconv.AppendUint(t.buf, uint64(v), 10)
	case UINT64:
		v, ok := value.(uint64)
		if !ok {
			return typeError("uint64", value)
		}
		t.buf = strconv.AppendUint(t.buf, v, 10)
	case STRING:
		v, ok := value.(string)
		if !ok {
			return typeError("string", value)
		}
		t.buf = strconv.AppendQuote(t.buf, v)
	default:
		return fmt.Errorf("unrecognized primitive: %s", typ)
	}
	return nil
}
