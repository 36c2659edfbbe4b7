package registry

import "fmt"

// InvalidNameError indicates a schema name that is neither
// package/msg/TypeName nor package/TypeName.
type InvalidNameError struct {
	name string
}

func NewInvalidNameError(name string) InvalidNameError {
	return InvalidNameError{name}
}

func (e InvalidNameError) Error() string {
	return fmt.Sprintf("invalid schema name %q: expected package/msg/TypeName or package/TypeName", e.name)
}

func (e InvalidNameError) Is(err error) bool {
	_, ok := err.(InvalidNameError)
	return ok
}

// UnknownPackageError indicates a schema name whose package is not in the
// catalogue.
type UnknownPackageError struct {
	pkg string
}

func NewUnknownPackageError(pkg string) UnknownPackageError {
	return UnknownPackageError{pkg}
}

func (e UnknownPackageError) Error() string {
	return fmt.Sprintf("unknown package %q", e.pkg)
}

func (e UnknownPackageError) Is(err error) bool {
	_, ok := err.(UnknownPackageError)
	return ok
}

// UnknownTypeError indicates a known package that does not contain the named
// type.
type UnknownTypeError struct {
	pkg      string
	typeName string
}

func NewUnknownTypeError(pkg string, typeName string) UnknownTypeError {
	return UnknownTypeError{pkg, typeName}
}

func (e UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown type %q in package %q", e.typeName, e.pkg)
}

func (e UnknownTypeError) Is(err error) bool {
	_, ok := err.(UnknownTypeError)
	return ok
}
