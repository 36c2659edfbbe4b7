package std_msgs

import (
	"github.com/wkalt/cdrcat/msgs/builtin_interfaces"
	"github.com/wkalt/cdrcat/schema"
)

// Schema descriptors for the std_msgs ROS package.

////////////////////////////////////////////////////////////////////////////////

// Header is the standard metadata record carried by stamped messages.
func Header() schema.Type {
	return schema.Record(
		schema.NewField("stamp", builtin_interfaces.Time()),
		schema.NewField("frame_id", schema.Primitive(schema.STRING)),
	)
}

func ColorRGBA() schema.Type {
	return schema.Record(
		schema.NewField("r", schema.Primitive(schema.FLOAT32)),
		schema.NewField("g", schema.Primitive(schema.FLOAT32)),
		schema.NewField("b", schema.Primitive(schema.FLOAT32)),
		schema.NewField("a", schema.Primitive(schema.FLOAT32)),
	)
}

func String() schema.Type {
	return data(schema.STRING)
}

func Bool() schema.Type {
	return data(schema.BOOL)
}

func Float32() schema.Type {
	return data(schema.FLOAT32)
}

func Float64() schema.Type {
	return data(schema.FLOAT64)
}

func Int32() schema.Type {
	return data(schema.INT32)
}

func Int64() schema.Type {
	return data(schema.INT64)
}

func data(p schema.PrimitiveType) schema.Type {
	return schema.Record(schema.NewField("data", schema.Primitive(p)))
}

// Schemas returns the named schemas this package contributes.
func Schemas() []*schema.Schema {
	return []*schema.Schema{
		schema.FromRecord("std_msgs/msg/Header", Header()),
		schema.FromRecord("std_msgs/msg/ColorRGBA", ColorRGBA()),
		schema.FromRecord("std_msgs/msg/String", String()),
		schema.FromRecord("std_msgs/msg/Bool", Bool()),
		schema.FromRecord("std_msgs/msg/Float32", Float32()),
		schema.FromRecord("std_msgs/msg/Float64", Float64()),
		schema.FromRecord("std_msgs/msg/Int32", Int32()),
		schema.FromRecord("std_msgs/msg/Int64", Int64()),
	}
}
