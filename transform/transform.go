package transform

import (
	"fmt"
	"math"

	"github.com/katalvlaran/wireframe/matrix"
)

// Size is the dimension of every transform matrix (homogeneous 3D).
const Size = 4

// Radians converts an angle from degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Identity returns a fresh 4×4 identity matrix.
func Identity() *matrix.Dense {
	m := matrix.MustNew(Size, Size)
	_ = matrix.SetIdentity(m) // square by construction
	return m
}

// Translation returns the identity with (dx, dy, dz) in the last column:
//
//	1 0 0 dx
//	0 1 0 dy
//	0 0 1 dz
//	0 0 0 1
func Translation(dx, dy, dz float64) *matrix.Dense {
	m := Identity()
	set(m, 0, 3, dx)
	set(m, 1, 3, dy)
	set(m, 2, 3, dz)
	return m
}

// Scaling returns diag(sx, sy, sz, 1).
func Scaling(sx, sy, sz float64) *matrix.Dense {
	m := matrix.MustNew(Size, Size)
	set(m, 0, 0, sx)
	set(m, 1, 1, sy)
	set(m, 2, 2, sz)
	set(m, 3, 3, 1)
	return m
}

// RotationX returns the rotation by theta degrees about the X axis:
//
//	1  0     0     0
//	0  cos  -sin   0
//	0  sin   cos   0
//	0  0     0     1
func RotationX(theta float64) *matrix.Dense {
	sin, cos := math.Sincos(Radians(theta))
	m := matrix.MustNew(Size, Size)
	set(m, 0, 0, 1)
	set(m, 1, 1, cos)
	set(m, 1, 2, -sin)
	set(m, 2, 1, sin)
	set(m, 2, 2, cos)
	set(m, 3, 3, 1)
	return m
}

// RotationY returns the rotation by theta degrees about the Y axis:
//
//	cos  0  -sin  0
//	0    1   0    0
//	sin  0   cos  0
//	0    0   0    1
func RotationY(theta float64) *matrix.Dense {
	sin, cos := math.Sincos(Radians(theta))
	m := matrix.MustNew(Size, Size)
	set(m, 0, 0, cos)
	set(m, 0, 2, -sin)
	set(m, 1, 1, 1)
	set(m, 2, 0, sin)
	set(m, 2, 2, cos)
	set(m, 3, 3, 1)
	return m
}

// RotationZ returns the rotation by theta degrees about the Z axis:
//
//	cos  -sin  0  0
//	sin   cos  0  0
//	0     0    1  0
//	0     0    0  1
func RotationZ(theta float64) *matrix.Dense {
	sin, cos := math.Sincos(Radians(theta))
	m := matrix.MustNew(Size, Size)
	set(m, 0, 0, cos)
	set(m, 0, 1, -sin)
	set(m, 1, 0, sin)
	set(m, 1, 1, cos)
	set(m, 2, 2, 1)
	set(m, 3, 3, 1)
	return m
}

// Compose folds ts into a single transform equal to ts[n-1] × … × ts[0],
// so ts[0] is applied first. The inputs are not modified.
func Compose(ts ...*matrix.Dense) (*matrix.Dense, error) {
	if len(ts) == 0 {
		return nil, ErrEmptyCompose
	}
	if err := matrix.ValidateNotNil(ts[0]); err != nil {
		return nil, fmt.Errorf("transform: Compose[0]: %w", err)
	}
	acc := ts[0].Clone()
	for i, t := range ts[1:] {
		if err := matrix.Multiply(t, acc); err != nil {
			return nil, fmt.Errorf("transform: Compose[%d]: %w", i+1, err)
		}
	}
	return acc, nil
}

// set writes a cell of a matrix built in this package; indices are constant
// and within the 4×4 shape.
func set(m *matrix.Dense, i, j int, v float64) {
	_ = m.Set(i, j, v)
}
