package geometry_msgs_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wkalt/cdrcat/cdr"
	"github.com/wkalt/cdrcat/registry"
	"github.com/wkalt/cdrcat/schema"
)

func header(frameID string) map[string]any {
	return map[string]any{
		"stamp":    map[string]any{"sec": int32(100), "nanosec": uint32(200)},
		"frame_id": frameID,
	}
}

func vector3(x, y, z float64) map[string]any {
	return map[string]any{"x": x, "y": y, "z": z}
}

func TestStampedRoundTrips(t *testing.T) {
	cases := []struct {
		assertion string
		schema    string
		message   map[string]any
	}{
		{
			"point stamped",
			"geometry_msgs/msg/PointStamped",
			map[string]any{
				"header": header("map"),
				"point":  vector3(1.5, -2.5, 3),
			},
		},
		{
			"pose 2d",
			"geometry_msgs/msg/Pose2D",
			map[string]any{"x": 1.0, "y": 2.0, "theta": 0.5},
		},
		{
			"twist stamped",
			"geometry_msgs/msg/TwistStamped",
			map[string]any{
				"header": header("base_link"),
				"twist": map[string]any{
					"linear":  vector3(0.1, 0, 0),
					"angular": vector3(0, 0, 0.2),
				},
			},
		},
		{
			"accel stamped",
			"geometry_msgs/msg/AccelStamped",
			map[string]any{
				"header": header("imu"),
				"accel": map[string]any{
					"linear":  vector3(0, 0, -9.8),
					"angular": vector3(0, 0, 0),
				},
			},
		},
		{
			"inertia stamped",
			"geometry_msgs/msg/InertiaStamped",
			map[string]any{
				"header": header("body"),
				"inertia": map[string]any{
					"m":   12.5,
					"com": vector3(0.1, 0.2, 0.3),
					"ixx": 1.0, "ixy": 0.0, "ixz": 0.0,
					"iyy": 2.0, "iyz": 0.0, "izz": 3.0,
				},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			s, err := registry.Lookup(c.schema)
			require.NoError(t, err)

			e := cdr.NewEncoder()
			require.NoError(t, schema.Encode(s, e, c.message))
			buf := e.Bytes()

			d := cdr.NewDecoder(buf)
			decoded, err := schema.Decode(s, d)
			require.NoError(t, err)
			require.Equal(t, c.message, decoded)
			require.Equal(t, 0, d.Remaining())

			e.Reset()
			require.NoError(t, schema.Encode(s, e, decoded))
			require.Equal(t, buf, e.Bytes())
		})
	}
}
