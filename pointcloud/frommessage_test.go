package pointcloud_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wkalt/cdrcat/cdr"
	"github.com/wkalt/cdrcat/pointcloud"
	"github.com/wkalt/cdrcat/registry"
	"github.com/wkalt/cdrcat/schema"
	"github.com/wkalt/cdrcat/util/testutils"
)

// encodes a full sensor_msgs/msg/PointCloud2 message, decodes it with the
// catalogued schema, and feeds the result through the point decoder.
func TestFromMessage(t *testing.T) {
	s, err := registry.Lookup("sensor_msgs/msg/PointCloud2")
	require.NoError(t, err)

	data := testutils.Flatten(
		testutils.F32b(1), testutils.F32b(2), testutils.F32b(3),
		testutils.F32b(4), testutils.F32b(5), testutils.F32b(6),
	)
	field := func(name string, offset uint32) map[string]any {
		return map[string]any{
			"name":     name,
			"offset":   offset,
			"datatype": pointcloud.FLOAT32,
			"count":    uint32(1),
		}
	}
	message := map[string]any{
		"header": map[string]any{
			"stamp":    map[string]any{"sec": int32(10), "nanosec": uint32(20)},
			"frame_id": "lidar",
		},
		"height":       uint32(1),
		"width":        uint32(2),
		"fields":       []any{field("x", 0), field("y", 4), field("z", 8)},
		"is_bigendian": false,
		"point_step":   uint32(12),
		"row_step":     uint32(24),
		"data":         data,
		"is_dense":     true,
	}

	e := cdr.NewEncoder()
	require.NoError(t, schema.Encode(s, e, message))

	decoded, err := schema.Decode(s, cdr.NewDecoder(e.Bytes()))
	require.NoError(t, err)

	cloud, err := pointcloud.FromMessage(decoded)
	require.NoError(t, err)
	require.Equal(t, uint32(2), cloud.Width)
	require.False(t, cloud.BigEndian)

	points, err := cloud.Points()
	require.NoError(t, err)
	require.Equal(t, []pointcloud.Point{
		{"x": 1, "y": 2, "z": 3},
		{"x": 4, "y": 5, "z": 6},
	}, points)
}

func TestFromMessageMalformed(t *testing.T) {
	cases := []struct {
		assertion string
		record    map[string]any
	}{
		{"empty record", map[string]any{}},
		{
			"wrong height type",
			map[string]any{
				"height": int32(1), "width": uint32(1), "is_bigendian": false,
				"point_step": uint32(4), "row_step": uint32(4),
				"data": []byte{}, "fields": []any{},
			},
		},
		{
			"malformed field entry",
			map[string]any{
				"height": uint32(1), "width": uint32(1), "is_bigendian": false,
				"point_step": uint32(4), "row_step": uint32(4),
				"data": []byte{}, "fields": []any{"not a field"},
			},
		},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			_, err := pointcloud.FromMessage(c.record)
			require.Error(t, err)
		})
	}
}
