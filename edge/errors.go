package edge

import "errors"

var (
	// ErrTooFewPoints is returned by AddPolygon when fewer than two points are given.
	ErrTooFewPoints = errors.New("edge: polygon needs at least two points")

	// ErrSegmentRange indicates a segment index outside [0, Len()).
	ErrSegmentRange = errors.New("edge: segment index out of range")

	// ErrNilList indicates use of a nil *List.
	ErrNilList = errors.New("edge: nil list")
)
