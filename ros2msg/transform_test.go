package ros2msg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wkalt/cdrcat/ros2msg"
	"github.com/wkalt/cdrcat/schema"
)

func primitiveType(t schema.PrimitiveType) *schema.Type {
	return &schema.Type{
		Primitive: t,
	}
}

func TestTransform(t *testing.T) {
	cases := []struct {
		assertion string
		msgdef    string
		output    *schema.Schema
	}{
		{
			"primitive",
			"string foo",
			&schema.Schema{
				Name: "test/msg/Test",
				Fields: []schema.Field{
					{
						Name: "foo",
						Type: *primitiveType(schema.STRING),
					},
				},
			},
		},
		{
			"primitive with default value",
			`string foo "bar"`,
			&schema.Schema{
				Name: "test/msg/Test",
				Fields: []schema.Field{
					{
						Name: "foo",
						Type: *primitiveType(schema.STRING),
					},
				},
			},
		},
		{
			"constants do not contribute fields",
			strings.TrimSpace(`
uint8 DEBUG=10
uint8 level
			`),
			&schema.Schema{
				Name: "test/msg/Test",
				Fields: []schema.Field{
					{
						Name: "level",
						Type: *primitiveType(schema.UINT8),
					},
				},
			},
		},
		{
			"variable length array",
			"int32[] foo",
			&schema.Schema{
				Name: "test/msg/Test",
				Fields: []schema.Field{
					{
						Name: "foo",
						Type: schema.Array(0, *primitiveType(schema.INT32)),
					},
				},
			},
		},
		{
			"fixed length array",
			"float64[9] covariance",
			&schema.Schema{
				Name: "test/msg/Test",
				Fields: []schema.Field{
					{
						Name: "covariance",
						Type: schema.Array(9, *primitiveType(schema.FLOAT64)),
					},
				},
			},
		},
		{
			"bounded string treated as string",
			"string<=10 name",
			&schema.Schema{
				Name: "test/msg/Test",
				Fields: []schema.Field{
					{
						Name: "name",
						Type: *primitiveType(schema.STRING),
					},
				},
			},
		},
		{
			"subdefinition resolution",
			strings.TrimSpace(`
std_msgs/Header header
uint32 count
================================================================================
MSG: std_msgs/Header
builtin_interfaces/Time stamp
string frame_id
================================================================================
MSG: builtin_interfaces/Time
int32 sec
uint32 nanosec
			`),
			&schema.Schema{
				Name: "test/msg/Test",
				Fields: []schema.Field{
					{
						Name: "header",
						Type: schema.Record(
							schema.NewField("stamp", schema.Record(
								schema.NewField("sec", *primitiveType(schema.INT32)),
								schema.NewField("nanosec", *primitiveType(schema.UINT32)),
							)),
							schema.NewField("frame_id", *primitiveType(schema.STRING)),
						),
					},
					{
						Name: "count",
						Type: *primitiveType(schema.UINT32),
					},
				},
			},
		},
		{
			"bare header resolves to std_msgs",
			strings.TrimSpace(`
Header header
================================================================================
MSG: std_msgs/Header
string frame_id
			`),
			&schema.Schema{
				Name: "test/msg/Test",
				Fields: []schema.Field{
					{
						Name: "header",
						Type: schema.Record(
							schema.NewField("frame_id", *primitiveType(schema.STRING)),
						),
					},
				},
			},
		},
		{
			"array of subdefinitions",
			strings.TrimSpace(`
test/Point[] points
================================================================================
MSG: test/Point
float64 x
			`),
			&schema.Schema{
				Name: "test/msg/Test",
				Fields: []schema.Field{
					{
						Name: "points",
						Type: schema.Array(0, schema.Record(
							schema.NewField("x", *primitiveType(schema.FLOAT64)),
						)),
					},
				},
			},
		},
		{
			"comments are ignored",
			strings.TrimSpace(`
# leading comment
uint8 value # trailing comment
			`),
			&schema.Schema{
				Name: "test/msg/Test",
				Fields: []schema.Field{
					{
						Name: "value",
						Type: *primitiveType(schema.UINT8),
					},
				},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			s, err := ros2msg.ParseMessageDefinition("test", "Test", []byte(c.msgdef))
			require.NoError(t, err)
			require.Equal(t, c.output, s)
		})
	}
}

func TestTransformErrors(t *testing.T) {
	_, err := ros2msg.ParseMessageDefinition("test", "Test", []byte("some_pkg/Missing field"))
	require.Error(t, err)
}
