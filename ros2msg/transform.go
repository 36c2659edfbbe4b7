package ros2msg

import (
	"fmt"
	"strings"

	"github.com/wkalt/cdrcat/schema"
)

/*
This file contains the ParseMessageDefinition function, which accepts a
[]byte-valued ROS2 message definition with name and package, and returns a
*schema.Schema.

It does this by calling the participle parser on the message definition to
create a participle AST, and then transforming that AST into a schema.Schema,
which will be friendlier to work with. The participle AST does not leave the
ros2msg package.

Constants and field defaults parse but do not contribute to the schema: they
have no representation on the wire.
*/

////////////////////////////////////////////////////////////////////////////////

var (
	primitiveTypes = map[string]schema.PrimitiveType{ // nolint:gochecknoglobals
		"bool":    schema.BOOL,
		"int8":    schema.INT8,
		"int16":   schema.INT16,
		"int32":   schema.INT32,
		"int64":   schema.INT64,
		"uint8":   schema.UINT8,
		"uint16":  schema.UINT16,
		"uint32":  schema.UINT32,
		"uint64":  schema.UINT64,
		"float32": schema.FLOAT32,
		"float64": schema.FLOAT64,
		"string":  schema.STRING,
		"char":    schema.CHAR,
		"byte":    schema.BYTE,
	}
)

// ParseMessageDefinition parses a ROS2 message definition and returns a
// schema.Schema representation of it.
func ParseMessageDefinition(pkg string, name string, msgdef []byte) (*schema.Schema, error) {
	ast, err := MessageDefinitionParser.ParseBytes("", msgdef)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ros2 message definition: %w", err)
	}
	return transformAST(pkg, name, *ast)
}

// lookupSubdef resolves a type reference against the parsed subdefinitions.
// References may be package-qualified or bare; bare references resolve first
// against the referencing package, then against std_msgs, which covers the
// conventional bare Header.
func lookupSubdef(pkg string, subdefs map[string]Definition, name string) (Definition, bool) {
	name = strings.Replace(name, "/msg/", "/", 1)
	if def, ok := subdefs[name]; ok {
		return def, true
	}
	if !strings.Contains(name, "/") {
		if def, ok := subdefs[pkg+"/"+name]; ok {
			return def, true
		}
		if def, ok := subdefs["std_msgs/"+name]; ok {
			return def, true
		}
	}
	return Definition{}, false
}

func resolveType(pkg string, subdefs map[string]Definition, t *ROSType) (*schema.Type, error) {
	primitive, isPrimitive := primitiveTypes[t.Name]

	if isPrimitive && !t.Array {
		return &schema.Type{
			Primitive: primitive,
		}, nil
	}

	if isPrimitive && t.Array {
		return &schema.Type{
			Array:     true,
			FixedSize: t.FixedSize,
			Items:     &schema.Type{Primitive: primitive},
		}, nil
	}

	subdef, ok := lookupSubdef(pkg, subdefs, t.Name)
	if !ok {
		return nil, fmt.Errorf("failed to resolve type %s", t.Name)
	}
	items, err := resolveSubdef(pkg, subdefs, subdef)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve type %s: %w", t.Name, err)
	}
	if t.Array {
		return &schema.Type{
			Array:     true,
			FixedSize: t.FixedSize,
			Items:     items,
		}, nil
	}
	return items, nil
}

func resolveSubdef(pkg string, subdefs map[string]Definition, def Definition) (*schema.Type, error) {
	defpkg := pkg
	if base, _, ok := strings.Cut(def.Header.Type, "/"); ok {
		defpkg = base
	}
	t := &schema.Type{
		Record: true,
		Fields: []schema.Field{},
	}
	for _, element := range def.Elements {
		switch item := element.(type) {
		case ROSField:
			resolvedType, err := resolveType(defpkg, subdefs, item.Type)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve type: %w", err)
			}
			t.Fields = append(t.Fields, schema.Field{
				Name: item.Name,
				Type: *resolvedType,
			})
		default:
			continue // Skip constants.
		}
	}
	return t, nil
}

func transformAST(pkg string, name string, ast MessageDefinition) (*schema.Schema, error) {
	subdefinitions := make(map[string]Definition)
	for _, definition := range ast.Definitions {
		key := strings.Replace(definition.Header.Type, "/msg/", "/", 1)
		subdefinitions[key] = definition
	}
	s := schema.Schema{Name: pkg + "/msg/" + name}
	for _, element := range ast.Elements {
		switch item := element.(type) {
		case ROSField:
			resolvedType, err := resolveType(pkg, subdefinitions, item.Type)
			if err != nil {
				return nil, err
			}
			s.Fields = append(s.Fields, schema.Field{
				Name: item.Name,
				Type: *resolvedType,
			})
		default:
			continue // skip constants
		}
	}
	return &s, nil
}
