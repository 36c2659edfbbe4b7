package edgefirst_msgs

import (
	"github.com/wkalt/cdrcat/msgs/builtin_interfaces"
	"github.com/wkalt/cdrcat/msgs/std_msgs"
	"github.com/wkalt/cdrcat/schema"
)

// Schema descriptors for the edgefirst_msgs ROS package.

////////////////////////////////////////////////////////////////////////////////

// DmaBuf describes a camera frame shared between processes as a dma-buf file
// descriptor rather than inline pixel data.
func DmaBuf() schema.Type {
	return schema.Record(
		schema.NewField("header", std_msgs.Header()),
		schema.NewField("pid", schema.Primitive(schema.UINT32)),
		schema.NewField("fd", schema.Primitive(schema.INT32)),
		schema.NewField("width", schema.Primitive(schema.UINT32)),
		schema.NewField("height", schema.Primitive(schema.UINT32)),
		schema.NewField("stride", schema.Primitive(schema.UINT32)),
		schema.NewField("fourcc", schema.Primitive(schema.UINT32)),
		schema.NewField("length", schema.Primitive(schema.UINT32)),
	)
}

func DetectTrack() schema.Type {
	return schema.Record(
		schema.NewField("id", schema.Primitive(schema.STRING)),
		schema.NewField("lifetime", schema.Primitive(schema.INT32)),
		schema.NewField("created", builtin_interfaces.Time()),
	)
}

func DetectBox2D() schema.Type {
	return schema.Record(
		schema.NewField("center_x", schema.Primitive(schema.FLOAT32)),
		schema.NewField("center_y", schema.Primitive(schema.FLOAT32)),
		schema.NewField("width", schema.Primitive(schema.FLOAT32)),
		schema.NewField("height", schema.Primitive(schema.FLOAT32)),
		schema.NewField("label", schema.Primitive(schema.STRING)),
		schema.NewField("score", schema.Primitive(schema.FLOAT32)),
		schema.NewField("distance", schema.Primitive(schema.FLOAT32)),
		schema.NewField("speed", schema.Primitive(schema.FLOAT32)),
		schema.NewField("track", DetectTrack()),
	)
}

func Detect() schema.Type {
	return schema.Record(
		schema.NewField("header", std_msgs.Header()),
		schema.NewField("input_timestamp", builtin_interfaces.Time()),
		schema.NewField("model_time", builtin_interfaces.Time()),
		schema.NewField("output_time", builtin_interfaces.Time()),
		schema.NewField("boxes", schema.Array(0, DetectBox2D())),
	)
}

func Mask() schema.Type {
	return schema.Record(
		schema.NewField("height", schema.Primitive(schema.UINT32)),
		schema.NewField("width", schema.Primitive(schema.UINT32)),
		schema.NewField("length", schema.Primitive(schema.UINT32)),
		schema.NewField("encoding", schema.Primitive(schema.STRING)),
		schema.NewField("mask", schema.Array(0, schema.Primitive(schema.UINT8))),
		schema.NewField("boxed", schema.Primitive(schema.BOOL)),
	)
}

// RadarCube carries a dense radar tensor. The layout bytes name the axis
// ordering of shape, and cube values scale per axis by scales.
func RadarCube() schema.Type {
	return schema.Record(
		schema.NewField("header", std_msgs.Header()),
		schema.NewField("timestamp", schema.Primitive(schema.UINT64)),
		schema.NewField("layout", schema.Array(0, schema.Primitive(schema.UINT8))),
		schema.NewField("shape", schema.Array(0, schema.Primitive(schema.UINT16))),
		schema.NewField("scales", schema.Array(0, schema.Primitive(schema.FLOAT32))),
		schema.NewField("cube", schema.Array(0, schema.Primitive(schema.INT16))),
		schema.NewField("is_complex", schema.Primitive(schema.BOOL)),
	)
}

// Schemas returns the named schemas this package contributes.
func Schemas() []*schema.Schema {
	return []*schema.Schema{
		schema.FromRecord("edgefirst_msgs/msg/DmaBuf", DmaBuf()),
		schema.FromRecord("edgefirst_msgs/msg/DetectTrack", DetectTrack()),
		schema.FromRecord("edgefirst_msgs/msg/DetectBox2D", DetectBox2D()),
		schema.FromRecord("edgefirst_msgs/msg/Detect", Detect()),
		schema.FromRecord("edgefirst_msgs/msg/Mask", Mask()),
		schema.FromRecord("edgefirst_msgs/msg/RadarCube", RadarCube()),
	}
}
