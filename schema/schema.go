package schema

import "fmt"

/*
Package schema describes message layouts independently of any particular wire
encoding. A Schema is a named, ordered list of fields, each of which is a
primitive, an array, or a nested record. The codec in this package maps
schemas onto CDR-encoded buffers.
*/

////////////////////////////////////////////////////////////////////////////////

// PrimitiveType enumerates the scalar types a field may hold.
type PrimitiveType int

const (
	BOOL PrimitiveType = iota + 1
	INT8
	INT16
	INT32
	INT64
	UINT8
	UINT16
	UINT32
	UINT64
	FLOAT32
	FLOAT64
	STRING
	CHAR
	BYTE
)

func (p PrimitiveType) String() string {
	switch p {
	case BOOL:
		return "bool"
	case INT8:
		return "int8"
	case INT16:
		return "int16"
	case INT32:
		return "int32"
	case INT64:
		return "int64"
	case UINT8:
		return "uint8"
	case UINT16:
		return "uint16"
	case UINT32:
		return "uint32"
	case UINT64:
		return "uint64"
	case FLOAT32:
		return "float32"
	case FLOAT64:
		return "float64"
	case STRING:
		return "string"
	case CHAR:
		return "char"
	case BYTE:
		return "byte"
	default:
		return fmt.Sprintf("unknown primitive %d", int(p))
	}
}

// Type is the type of a field: exactly one of Primitive, Array, or Record is
// set. Array element types live in Items; FixedSize of zero means a
// length-prefixed sequence.
type Type struct {
	Primitive PrimitiveType

	// If it's an array...
	Array     bool
	FixedSize int
	Items     *Type

	// If it's a record...
	Record bool
	Fields []Field
}

// IsPrimitive returns true if the type is a bare primitive.
func (t Type) IsPrimitive() bool {
	return !t.Array && !t.Record && t.Primitive > 0
}

type Field struct {
	Name string
	Type Type
}

// Schema is a named record layout. Field order is the wire order.
type Schema struct {
	Name   string
	Fields []Field
}

////////////////////////////////////////////////////////////////////////////////

// NewSchema constructs a schema from a name and fields.
func NewSchema(name string, fields ...Field) *Schema {
	return &Schema{Name: name, Fields: fields}
}

// FromRecord names a record type as a top-level schema.
func FromRecord(name string, t Type) *Schema {
	return &Schema{Name: name, Fields: t.Fields}
}

// NewField constructs a named field.
func NewField(name string, typ Type) Field {
	return Field{Name: name, Type: typ}
}

// Primitive constructs a primitive type.
func Primitive(p PrimitiveType) Type {
	return Type{Primitive: p}
}

// Array constructs an array type. A fixedSize of zero denotes a
// length-prefixed sequence.
func Array(fixedSize int, items Type) Type {
	return Type{Array: true, FixedSize: fixedSize, Items: &items}
}

// Record constructs an inline record type.
func Record(fields ...Field) Type {
	return Type{Record: true, Fields: fields}
}
