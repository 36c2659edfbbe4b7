package sensor_msgs

import (
	"github.com/wkalt/cdrcat/msgs/geometry_msgs"
	"github.com/wkalt/cdrcat/msgs/std_msgs"
	"github.com/wkalt/cdrcat/schema"
)

// Schema descriptors for the sensor_msgs ROS package.

////////////////////////////////////////////////////////////////////////////////

func Image() schema.Type {
	return schema.Record(
		schema.NewField("header", std_msgs.Header()),
		schema.NewField("height", schema.Primitive(schema.UINT32)),
		schema.NewField("width", schema.Primitive(schema.UINT32)),
		schema.NewField("encoding", schema.Primitive(schema.STRING)),
		schema.NewField("is_bigendian", schema.Primitive(schema.UINT8)),
		schema.NewField("step", schema.Primitive(schema.UINT32)),
		schema.NewField("data", schema.Array(0, schema.Primitive(schema.UINT8))),
	)
}

func CompressedImage() schema.Type {
	return schema.Record(
		schema.NewField("header", std_msgs.Header()),
		schema.NewField("format", schema.Primitive(schema.STRING)),
		schema.NewField("data", schema.Array(0, schema.Primitive(schema.UINT8))),
	)
}

func RegionOfInterest() schema.Type {
	return schema.Record(
		schema.NewField("x_offset", schema.Primitive(schema.UINT32)),
		schema.NewField("y_offset", schema.Primitive(schema.UINT32)),
		schema.NewField("height", schema.Primitive(schema.UINT32)),
		schema.NewField("width", schema.Primitive(schema.UINT32)),
		schema.NewField("do_rectify", schema.Primitive(schema.BOOL)),
	)
}

func CameraInfo() schema.Type {
	return schema.Record(
		schema.NewField("header", std_msgs.Header()),
		schema.NewField("height", schema.Primitive(schema.UINT32)),
		schema.NewField("width", schema.Primitive(schema.UINT32)),
		schema.NewField("distortion_model", schema.Primitive(schema.STRING)),
		schema.NewField("d", schema.Array(0, schema.Primitive(schema.FLOAT64))),
		schema.NewField("k", schema.Array(9, schema.Primitive(schema.FLOAT64))),
		schema.NewField("r", schema.Array(9, schema.Primitive(schema.FLOAT64))),
		schema.NewField("p", schema.Array(12, schema.Primitive(schema.FLOAT64))),
		schema.NewField("binning_x", schema.Primitive(schema.UINT32)),
		schema.NewField("binning_y", schema.Primitive(schema.UINT32)),
		schema.NewField("roi", RegionOfInterest()),
	)
}

func Imu() schema.Type {
	return schema.Record(
		schema.NewField("header", std_msgs.Header()),
		schema.NewField("orientation", geometry_msgs.Quaternion()),
		schema.NewField("orientation_covariance", schema.Array(9, schema.Primitive(schema.FLOAT64))),
		schema.NewField("angular_velocity", geometry_msgs.Vector3()),
		schema.NewField("angular_velocity_covariance", schema.Array(9, schema.Primitive(schema.FLOAT64))),
		schema.NewField("linear_acceleration", geometry_msgs.Vector3()),
		schema.NewField("linear_acceleration_covariance", schema.Array(9, schema.Primitive(schema.FLOAT64))),
	)
}

func NavSatStatus() schema.Type {
	return schema.Record(
		schema.NewField("status", schema.Primitive(schema.INT8)),
		schema.NewField("service", schema.Primitive(schema.UINT16)),
	)
}

func NavSatFix() schema.Type {
	return schema.Record(
		schema.NewField("header", std_msgs.Header()),
		schema.NewField("status", NavSatStatus()),
		schema.NewField("latitude", schema.Primitive(schema.FLOAT64)),
		schema.NewField("longitude", schema.Primitive(schema.FLOAT64)),
		schema.NewField("altitude", schema.Primitive(schema.FLOAT64)),
		schema.NewField("position_covariance", schema.Array(9, schema.Primitive(schema.FLOAT64))),
		schema.NewField("position_covariance_type", schema.Primitive(schema.UINT8)),
	)
}

// PointField describes one channel of a point cloud: where it sits within a
// point record and how to interpret its bytes.
func PointField() schema.Type {
	return schema.Record(
		schema.NewField("name", schema.Primitive(schema.STRING)),
		schema.NewField("offset", schema.Primitive(schema.UINT32)),
		schema.NewField("datatype", schema.Primitive(schema.UINT8)),
		schema.NewField("count", schema.Primitive(schema.UINT32)),
	)
}

func PointCloud2() schema.Type {
	return schema.Record(
		schema.NewField("header", std_msgs.Header()),
		schema.NewField("height", schema.Primitive(schema.UINT32)),
		schema.NewField("width", schema.Primitive(schema.UINT32)),
		schema.NewField("fields", schema.Array(0, PointField())),
		schema.NewField("is_bigendian", schema.Primitive(schema.BOOL)),
		schema.NewField("point_step", schema.Primitive(schema.UINT32)),
		schema.NewField("row_step", schema.Primitive(schema.UINT32)),
		schema.NewField("data", schema.Array(0, schema.Primitive(schema.UINT8))),
		schema.NewField("is_dense", schema.Primitive(schema.BOOL)),
	)
}

// Schemas returns the named schemas this package contributes.
func Schemas() []*schema.Schema {
	return []*schema.Schema{
		schema.FromRecord("sensor_msgs/msg/Image", Image()),
		schema.FromRecord("sensor_msgs/msg/CompressedImage", CompressedImage()),
		schema.FromRecord("sensor_msgs/msg/RegionOfInterest", RegionOfInterest()),
		schema.FromRecord("sensor_msgs/msg/CameraInfo", CameraInfo()),
		schema.FromRecord("sensor_msgs/msg/Imu", Imu()),
		schema.FromRecord("sensor_msgs/msg/NavSatStatus", NavSatStatus()),
		schema.FromRecord("sensor_msgs/msg/NavSatFix", NavSatFix()),
		schema.FromRecord("sensor_msgs/msg/PointField", PointField()),
		schema.FromRecord("sensor_msgs/msg/PointCloud2", PointCloud2()),
	}
}
