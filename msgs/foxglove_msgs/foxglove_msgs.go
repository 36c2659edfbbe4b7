package foxglove_msgs

import (
	"github.com/wkalt/cdrcat/msgs/builtin_interfaces"
	"github.com/wkalt/cdrcat/msgs/std_msgs"
	"github.com/wkalt/cdrcat/schema"
)

// Schema descriptors for the foxglove_msgs ROS package.

////////////////////////////////////////////////////////////////////////////////

func CompressedVideo() schema.Type {
	return schema.Record(
		schema.NewField("header", std_msgs.Header()),
		schema.NewField("data", schema.Array(0, schema.Primitive(schema.UINT8))),
		schema.NewField("format", schema.Primitive(schema.STRING)),
	)
}

// Point annotation styles.
const (
	PointsAnnotationUnknown   uint8 = 0
	PointsAnnotationPoints    uint8 = 1
	PointsAnnotationLineLoop  uint8 = 2
	PointsAnnotationLineStrip uint8 = 3
	PointsAnnotationLineList  uint8 = 4
)

func Point2() schema.Type {
	return schema.Record(
		schema.NewField("x", schema.Primitive(schema.FLOAT64)),
		schema.NewField("y", schema.Primitive(schema.FLOAT64)),
	)
}

func Color() schema.Type {
	return schema.Record(
		schema.NewField("r", schema.Primitive(schema.FLOAT64)),
		schema.NewField("g", schema.Primitive(schema.FLOAT64)),
		schema.NewField("b", schema.Primitive(schema.FLOAT64)),
		schema.NewField("a", schema.Primitive(schema.FLOAT64)),
	)
}

func CircleAnnotation() schema.Type {
	return schema.Record(
		schema.NewField("timestamp", builtin_interfaces.Time()),
		schema.NewField("position", Point2()),
		schema.NewField("diameter", schema.Primitive(schema.FLOAT64)),
		schema.NewField("thickness", schema.Primitive(schema.FLOAT64)),
		schema.NewField("fill_color", Color()),
		schema.NewField("outline_color", Color()),
	)
}

func PointsAnnotation() schema.Type {
	return schema.Record(
		schema.NewField("timestamp", builtin_interfaces.Time()),
		schema.NewField("type", schema.Primitive(schema.UINT8)),
		schema.NewField("points", schema.Array(0, Point2())),
		schema.NewField("outline_color", Color()),
		schema.NewField("outline_colors", schema.Array(0, Color())),
		schema.NewField("fill_color", Color()),
		schema.NewField("thickness", schema.Primitive(schema.FLOAT64)),
	)
}

func TextAnnotation() schema.Type {
	return schema.Record(
		schema.NewField("timestamp", builtin_interfaces.Time()),
		schema.NewField("position", Point2()),
		schema.NewField("text", schema.Primitive(schema.STRING)),
		schema.NewField("font_size", schema.Primitive(schema.FLOAT64)),
		schema.NewField("text_color", Color()),
		schema.NewField("background_color", Color()),
	)
}

func ImageAnnotations() schema.Type {
	return schema.Record(
		schema.NewField("circles", schema.Array(0, CircleAnnotation())),
		schema.NewField("points", schema.Array(0, PointsAnnotation())),
		schema.NewField("texts", schema.Array(0, TextAnnotation())),
	)
}

// Schemas returns the named schemas this package contributes.
func Schemas() []*schema.Schema {
	return []*schema.Schema{
		schema.FromRecord("foxglove_msgs/msg/CompressedVideo", CompressedVideo()),
		schema.FromRecord("foxglove_msgs/msg/ImageAnnotations", ImageAnnotations()),
	}
}
