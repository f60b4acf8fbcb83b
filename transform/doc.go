// Package transform builds the 4×4 affine matrices of the wireframe pipeline
// in homogeneous coordinates: identity, translation, non-uniform scale and
// rotation about the X, Y and Z axes.
//
// Every factory is pure. It allocates a fresh 4×4 *matrix.Dense and shares no
// state, so transforms can be combined with matrix.Multiply (or Compose)
// before being applied once to an edge list:
//
//	t, _ := transform.Compose(transform.Scaling(2, 2, 2), transform.RotationZ(30))
//	_ = edges.Apply(t)
//
// Angles are given in degrees.
package transform
