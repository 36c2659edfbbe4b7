package geometry_msgs

import (
	"github.com/wkalt/cdrcat/msgs/std_msgs"
	"github.com/wkalt/cdrcat/schema"
)

// Schema descriptors for the geometry_msgs ROS package.

////////////////////////////////////////////////////////////////////////////////

func Point() schema.Type {
	return xyz(schema.FLOAT64)
}

func Point32() schema.Type {
	return xyz(schema.FLOAT32)
}

func Vector3() schema.Type {
	return xyz(schema.FLOAT64)
}

func xyz(p schema.PrimitiveType) schema.Type {
	return schema.Record(
		schema.NewField("x", schema.Primitive(p)),
		schema.NewField("y", schema.Primitive(p)),
		schema.NewField("z", schema.Primitive(p)),
	)
}

func PointStamped() schema.Type {
	return schema.Record(
		schema.NewField("header", std_msgs.Header()),
		schema.NewField("point", Point()),
	)
}

func Quaternion() schema.Type {
	return schema.Record(
		schema.NewField("x", schema.Primitive(schema.FLOAT64)),
		schema.NewField("y", schema.Primitive(schema.FLOAT64)),
		schema.NewField("z", schema.Primitive(schema.FLOAT64)),
		schema.NewField("w", schema.Primitive(schema.FLOAT64)),
	)
}

func Pose() schema.Type {
	return schema.Record(
		schema.NewField("position", Point()),
		schema.NewField("orientation", Quaternion()),
	)
}

func PoseStamped() schema.Type {
	return schema.Record(
		schema.NewField("header", std_msgs.Header()),
		schema.NewField("pose", Pose()),
	)
}

func Pose2D() schema.Type {
	return schema.Record(
		schema.NewField("x", schema.Primitive(schema.FLOAT64)),
		schema.NewField("y", schema.Primitive(schema.FLOAT64)),
		schema.NewField("theta", schema.Primitive(schema.FLOAT64)),
	)
}

// PoseWithCovariance carries a 6x6 covariance in row-major order.
func PoseWithCovariance() schema.Type {
	return schema.Record(
		schema.NewField("pose", Pose()),
		schema.NewField("covariance", schema.Array(36, schema.Primitive(schema.FLOAT64))),
	)
}

func Transform() schema.Type {
	return schema.Record(
		schema.NewField("translation", Vector3()),
		schema.NewField("rotation", Quaternion()),
	)
}

func TransformStamped() schema.Type {
	return schema.Record(
		schema.NewField("header", std_msgs.Header()),
		schema.NewField("child_frame_id", schema.Primitive(schema.STRING)),
		schema.NewField("transform", Transform()),
	)
}

func Twist() schema.Type {
	return schema.Record(
		schema.NewField("linear", Vector3()),
		schema.NewField("angular", Vector3()),
	)
}

func TwistStamped() schema.Type {
	return schema.Record(
		schema.NewField("header", std_msgs.Header()),
		schema.NewField("twist", Twist()),
	)
}

func TwistWithCovariance() schema.Type {
	return schema.Record(
		schema.NewField("twist", Twist()),
		schema.NewField("covariance", schema.Array(36, schema.Primitive(schema.FLOAT64))),
	)
}

func Accel() schema.Type {
	return schema.Record(
		schema.NewField("linear", Vector3()),
		schema.NewField("angular", Vector3()),
	)
}

func AccelStamped() schema.Type {
	return schema.Record(
		schema.NewField("header", std_msgs.Header()),
		schema.NewField("accel", Accel()),
	)
}

func Inertia() schema.Type {
	return schema.Record(
		schema.NewField("m", schema.Primitive(schema.FLOAT64)),
		schema.NewField("com", Vector3()),
		schema.NewField("ixx", schema.Primitive(schema.FLOAT64)),
		schema.NewField("ixy", schema.Primitive(schema.FLOAT64)),
		schema.NewField("ixz", schema.Primitive(schema.FLOAT64)),
		schema.NewField("iyy", schema.Primitive(schema.FLOAT64)),
		schema.NewField("iyz", schema.Primitive(schema.FLOAT64)),
		schema.NewField("izz", schema.Primitive(schema.FLOAT64)),
	)
}

// InertiaStamped pairs an inertia with the frame it is expressed in.
func InertiaStamped() schema.Type {
	return schema.Record(
		schema.NewField("header", std_msgs.Header()),
		schema.NewField("inertia", Inertia()),
	)
}

// Schemas returns the named schemas this package contributes.
func Schemas() []*schema.Schema {
	return []*schema.Schema{
		schema.FromRecord("geometry_msgs/msg/Point", Point()),
		schema.FromRecord("geometry_msgs/msg/Point32", Point32()),
		schema.FromRecord("geometry_msgs/msg/PointStamped", PointStamped()),
		schema.FromRecord("geometry_msgs/msg/Vector3", Vector3()),
		schema.FromRecord("geometry_msgs/msg/Quaternion", Quaternion()),
		schema.FromRecord("geometry_msgs/msg/Pose", Pose()),
		schema.FromRecord("geometry_msgs/msg/Pose2D", Pose2D()),
		schema.FromRecord("geometry_msgs/msg/PoseStamped", PoseStamped()),
		schema.FromRecord("geometry_msgs/msg/PoseWithCovariance", PoseWithCovariance()),
		schema.FromRecord("geometry_msgs/msg/Transform", Transform()),
		schema.FromRecord("geometry_msgs/msg/TransformStamped", TransformStamped()),
		schema.FromRecord("geometry_msgs/msg/Twist", Twist()),
		schema.FromRecord("geometry_msgs/msg/TwistStamped", TwistStamped()),
		schema.FromRecord("geometry_msgs/msg/TwistWithCovariance", TwistWithCovariance()),
		schema.FromRecord("geometry_msgs/msg/Accel", Accel()),
		schema.FromRecord("geometry_msgs/msg/AccelStamped", AccelStamped()),
		schema.FromRecord("geometry_msgs/msg/Inertia", Inertia()),
		schema.FromRecord("geometry_msgs/msg/InertiaStamped", InertiaStamped()),
	}
}
