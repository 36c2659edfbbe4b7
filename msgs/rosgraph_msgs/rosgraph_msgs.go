package rosgraph_msgs

import (
	"github.com/wkalt/cdrcat/msgs/builtin_interfaces"
	"github.com/wkalt/cdrcat/schema"
)

// Schema descriptors for the rosgraph_msgs ROS package.

func Clock() schema.Type {
	return schema.Record(
		schema.NewField("clock", builtin_interfaces.Time()),
	)
}

// Schemas returns the named schemas this package contributes.
func Schemas() []*schema.Schema {
	return []*schema.Schema{
		schema.FromRecord("rosgraph_msgs/msg/Clock", Clock()),
	}
}
