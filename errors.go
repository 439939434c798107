package atlastool

import (
	"errors"
	"fmt"
)

// Wrap wraps an error by prepending additional text.
// The text can contain formatting parameters.
func Wrap(err error, msg string, v ...interface{}) error {
	msg = fmt.Sprintf(msg, v...)
	return fmt.Errorf("%v: %w", msg, err)
}

type validationError struct {
	message string
}

func (v validationError) Error() string {
	return v.message
}

// NewValidationError creates a validation error from the given format string.
func NewValidationError(msg string, v ...interface{}) error {
	return validationError{fmt.Sprintf(msg, v...)}
}

// IsValidationError checks if the given error is caused by invalid input.
func IsValidationError(err error) bool {
	var v validationError
	return errors.As(err, &v)
}

type ioError struct {
	Path string
	Err  error
}

func (e ioError) Error() string {
	return fmt.Sprintf("%v: %v", e.Path, e.Err)
}

func (e ioError) Unwrap() error {
	return e.Err
}

// NewIOError creates an error for a failed file system operation on path.
func NewIOError(path string, err error) error {
	return ioError{Path: path, Err: err}
}

// IsIOError checks if the given error was caused by a file system operation.
func IsIOError(err error) bool {
	var e ioError
	return errors.As(err, &e)
}

// OutOfBounds is returned when an image would be copied outside the bounds
// of a Canvas.
//
// The Packer never produces such a placement, so this always indicates a
// defect in the packing code.
type OutOfBounds struct {
	X, Y          int
	Width, Height int
	CanvasWidth   int
	CanvasHeight  int
}

func (o OutOfBounds) Error() string {
	return fmt.Sprintf("out of bounds: %vx%v at %v,%v exceeds canvas %vx%v",
		o.Width, o.Height, o.X, o.Y, o.CanvasWidth, o.CanvasHeight)
}

// IsOutOfBounds checks if the given error is an OutOfBounds error.
func IsOutOfBounds(err error) bool {
	var o OutOfBounds
	return errors.As(err, &o)
}
