package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wkalt/cdrcat/registry"
)

func TestCanonical(t *testing.T) {
	cases := []struct {
		assertion string
		input     string
		output    string
		err       error
	}{
		{"canonical name passes through", "sensor_msgs/msg/Image", "sensor_msgs/msg/Image", nil},
		{"abbreviated name expands", "sensor_msgs/Image", "sensor_msgs/msg/Image", nil},
		{"bare name rejected", "Image", "", registry.NewInvalidNameError("")},
		{"wrong middle segment rejected", "sensor_msgs/srv/Image", "", registry.NewInvalidNameError("")},
		{"too many segments rejected", "a/msg/b/c", "", registry.NewInvalidNameError("")},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			canonical, err := registry.Canonical(c.input)
			if c.err != nil {
				require.ErrorIs(t, err, c.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, c.output, canonical)
		})
	}
}

func TestLookup(t *testing.T) {
	cases := []struct {
		assertion string
		input     string
		err       error
	}{
		{"known canonical name", "sensor_msgs/msg/PointCloud2", nil},
		{"known abbreviated name", "geometry_msgs/Pose", nil},
		{"unknown package", "unknown_msgs/msg/Thing", registry.NewUnknownPackageError("")},
		{"unknown type in known package", "sensor_msgs/msg/Thing", registry.NewUnknownTypeError("", "")},
		{"malformed name", "not-a-schema", registry.NewInvalidNameError("")},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			s, err := registry.Lookup(c.input)
			if c.err != nil {
				require.ErrorIs(t, err, c.err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, s)
		})
	}
}

func TestLookupReturnsCanonicalName(t *testing.T) {
	s, err := registry.Lookup("std_msgs/Header")
	require.NoError(t, err)
	require.Equal(t, "std_msgs/msg/Header", s.Name)
}

func TestIsSupported(t *testing.T) {
	require.True(t, registry.IsSupported("edgefirst_msgs/msg/Detect"))
	require.False(t, registry.IsSupported("edgefirst_msgs/msg/Nope"))
}

func TestList(t *testing.T) {
	names := registry.List()
	require.NotEmpty(t, names)
	require.IsIncreasing(t, names)
	require.Contains(t, names, "builtin_interfaces/msg/Time")
	require.Contains(t, names, "foxglove_msgs/msg/CompressedVideo")
	for _, name := range names {
		require.True(t, registry.IsSupported(name))
	}
}
