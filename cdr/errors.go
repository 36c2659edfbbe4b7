package cdr

import "fmt"

// ShortReadError indicates the buffer ended before a value of the named type
// could be read, after accounting for alignment padding.
type ShortReadError struct {
	typeName string
}

func NewShortReadError(typeName string) ShortReadError {
	return ShortReadError{typeName}
}

func (e ShortReadError) Error() string {
	return "short read on " + e.typeName
}

func (e ShortReadError) Is(err error) bool {
	_, ok := err.(ShortReadError)
	return ok
}

// InvalidEncodingError indicates bytes that no conforming encoder produces,
// such as a boolean byte other than 0 or 1, a string without its NUL
// terminator, or invalid UTF-8.
type InvalidEncodingError struct {
	reason string
}

func NewInvalidEncodingError(reason string) InvalidEncodingError {
	return InvalidEncodingError{reason}
}

func (e InvalidEncodingError) Error() string {
	return "invalid encoding: " + e.reason
}

func (e InvalidEncodingError) Is(err error) bool {
	_, ok := err.(InvalidEncodingError)
	return ok
}

// LengthOverflowError indicates a declared string or sequence length that
// cannot fit in the remaining bytes of the buffer.
type LengthOverflowError struct {
	declared  int
	remaining int
}

func NewLengthOverflowError(declared, remaining int) LengthOverflowError {
	return LengthOverflowError{declared, remaining}
}

func (e LengthOverflowError) Error() string {
	return fmt.Sprintf("declared length %d exceeds %d remaining bytes", e.declared, e.remaining)
}

func (e LengthOverflowError) Is(err error) bool {
	_, ok := err.(LengthOverflowError)
	return ok
}
