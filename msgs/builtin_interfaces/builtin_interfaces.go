package builtin_interfaces

import "github.com/wkalt/cdrcat/schema"

/*
Schema descriptors for the builtin_interfaces ROS package. These are the
timestamp primitives every stamped message embeds. A Time is eight bytes on
the wire: an int32 of seconds followed by a uint32 of nanoseconds.
*/

////////////////////////////////////////////////////////////////////////////////

func Time() schema.Type {
	return schema.Record(
		schema.NewField("sec", schema.Primitive(schema.INT32)),
		schema.NewField("nanosec", schema.Primitive(schema.UINT32)),
	)
}

func Duration() schema.Type {
	return schema.Record(
		schema.NewField("sec", schema.Primitive(schema.INT32)),
		schema.NewField("nanosec", schema.Primitive(schema.UINT32)),
	)
}

// Schemas returns the named schemas this package contributes.
func Schemas() []*schema.Schema {
	return []*schema.Schema{
		schema.FromRecord("builtin_interfaces/msg/Time", Time()),
		schema.FromRecord("builtin_interfaces/msg/Duration", Duration()),
	}
}
