package pointcloud

import "fmt"

// FieldOutOfBoundsError indicates a field descriptor or grid layout whose
// declared region does not fit within the point step or the data buffer.
// Grid-level failures carry no field name.
type FieldOutOfBoundsError struct {
	name   string
	reason string
}

func NewFieldOutOfBoundsError(name string, reason string) FieldOutOfBoundsError {
	return FieldOutOfBoundsError{name, reason}
}

func (e FieldOutOfBoundsError) Error() string {
	if e.name == "" {
		return fmt.Sprintf("point data out of bounds: %s", e.reason)
	}
	return fmt.Sprintf("field %s out of bounds: %s", e.name, e.reason)
}

func (e FieldOutOfBoundsError) Is(err error) bool {
	_, ok := err.(FieldOutOfBoundsError)
	return ok
}
