package render

import "errors"

var (
	// ErrUnknownFormat is returned when an output extension has no encoder.
	ErrUnknownFormat = errors.New("render: unknown image format")

	// ErrOddColumns indicates a point matrix that cannot be read as segments.
	ErrOddColumns = errors.New("render: odd number of columns")

	// ErrBadSize indicates an image dimension that is not positive or
	// exceeds MaxSide / MaxPixels.
	ErrBadSize = errors.New("render: image size out of range")

	// ErrBadColor is returned by ParseColor for malformed input.
	ErrBadColor = errors.New("render: invalid color")
)
