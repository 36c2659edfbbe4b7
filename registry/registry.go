package registry

import (
	"strings"

	"github.com/wkalt/cdrcat/msgs/builtin_interfaces"
	"github.com/wkalt/cdrcat/msgs/edgefirst_msgs"
	"github.com/wkalt/cdrcat/msgs/foxglove_msgs"
	"github.com/wkalt/cdrcat/msgs/geometry_msgs"
	"github.com/wkalt/cdrcat/msgs/rosgraph_msgs"
	"github.com/wkalt/cdrcat/msgs/sensor_msgs"
	"github.com/wkalt/cdrcat/msgs/std_msgs"
	"github.com/wkalt/cdrcat/schema"
	"github.com/wkalt/cdrcat/util"
)

/*
Package registry maps ROS2-style schema names to schema descriptors from the
msgs packages. Names follow the package/msg/TypeName convention; the
abbreviated package/TypeName form is accepted on input. The table is built
once at init and never mutated, so lookups are safe for concurrent use.
*/

////////////////////////////////////////////////////////////////////////////////

var (
	schemas  = map[string]*schema.Schema{} // nolint:gochecknoglobals
	packages = map[string]bool{}           // nolint:gochecknoglobals
)

// nolint:gochecknoinits
func init() {
	contributions := [][]*schema.Schema{
		builtin_interfaces.Schemas(),
		std_msgs.Schemas(),
		rosgraph_msgs.Schemas(),
		geometry_msgs.Schemas(),
		sensor_msgs.Schemas(),
		foxglove_msgs.Schemas(),
		edgefirst_msgs.Schemas(),
	}
	for _, contribution := range contributions {
		for _, s := range contribution {
			schemas[s.Name] = s
			pkg, _, _ := strings.Cut(s.Name, "/")
			packages[pkg] = true
		}
	}
}

// Canonical normalizes a schema name to the package/msg/TypeName form. It
// returns an InvalidNameError if the name fits neither accepted shape.
func Canonical(name string) (string, error) {
	parts := strings.Split(name, "/")
	switch len(parts) {
	case 3:
		if parts[1] != "msg" {
			return "", NewInvalidNameError(name)
		}
		return name, nil
	case 2:
		return parts[0] + "/msg/" + parts[1], nil
	default:
		return "", NewInvalidNameError(name)
	}
}

// Lookup returns the schema descriptor for a name in either accepted form.
// Unknown packages and unknown types within a known package fail with
// distinguishable errors.
func Lookup(name string) (*schema.Schema, error) {
	canonical, err := Canonical(name)
	if err != nil {
		return nil, err
	}
	if s, ok := schemas[canonical]; ok {
		return s, nil
	}
	parts := strings.SplitN(canonical, "/", 3)
	if !packages[parts[0]] {
		return nil, NewUnknownPackageError(parts[0])
	}
	return nil, NewUnknownTypeError(parts[0], parts[2])
}

// IsSupported reports whether the name resolves to a catalogued schema.
func IsSupported(name string) bool {
	_, err := Lookup(name)
	return err == nil
}

// List returns all canonical schema names in sorted order.
func List() []string {
	return util.Okeys(schemas)
}
