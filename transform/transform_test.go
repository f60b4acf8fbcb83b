package transform_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wireframe/matrix"
	"github.com/katalvlaran/wireframe/transform"
)

const eps = 1e-9

// point returns the homogeneous column (x, y, z, 1) as a 4×1 matrix.
func point(t *testing.T, x, y, z float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.New(4, 1)
	require.NoError(t, err)
	for i, v := range []float64{x, y, z, 1} {
		require.NoError(t, m.Set(i, 0, v))
	}
	return m
}

// requirePoint asserts the 4×1 column equals want within eps.
func requirePoint(t *testing.T, m *matrix.Dense, want ...float64) {
	t.Helper()
	col, err := m.Col(0)
	require.NoError(t, err)
	require.Len(t, col, len(want))
	for i := range want {
		require.InDelta(t, want[i], col[i], eps, "component %d", i)
	}
}

func TestIdentity(t *testing.T) {
	id := transform.Identity()
	require.Equal(t, 4, id.Rows())
	require.Equal(t, 4, id.Cols())

	p := point(t, 3, -4, 5)
	require.NoError(t, matrix.Multiply(id, p))
	requirePoint(t, p, 3, -4, 5, 1)
}

func TestTranslation(t *testing.T) {
	p := point(t, 0, 0, 0)
	require.NoError(t, matrix.Multiply(transform.Translation(1, 2, 3), p))
	requirePoint(t, p, 1, 2, 3, 1)

	m := transform.Translation(7, 8, 9)
	for i, want := range []float64{7, 8, 9, 1} {
		v, err := m.At(i, 3)
		require.NoError(t, err)
		require.Equal(t, want, v)
	}
}

func TestScaling(t *testing.T) {
	p := point(t, 1, 1, 1)
	require.NoError(t, matrix.Multiply(transform.Scaling(2, 3, 4), p))
	requirePoint(t, p, 2, 3, 4, 1)
}

func TestRotationAxes(t *testing.T) {
	tests := []struct {
		name    string
		rot     *matrix.Dense
		in, out [3]float64
	}{
		{"Z maps x to y", transform.RotationZ(90), [3]float64{1, 0, 0}, [3]float64{0, 1, 0}},
		{"X maps y to z", transform.RotationX(90), [3]float64{0, 1, 0}, [3]float64{0, 0, 1}},
		{"Y maps x to z", transform.RotationY(90), [3]float64{1, 0, 0}, [3]float64{0, 0, 1}},
		{"Z keeps z", transform.RotationZ(37), [3]float64{0, 0, 2}, [3]float64{0, 0, 2}},
		{"X keeps x", transform.RotationX(37), [3]float64{2, 0, 0}, [3]float64{2, 0, 0}},
		{"Y keeps y", transform.RotationY(37), [3]float64{0, 2, 0}, [3]float64{0, 2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := point(t, tt.in[0], tt.in[1], tt.in[2])
			require.NoError(t, matrix.Multiply(tt.rot, p))
			requirePoint(t, p, tt.out[0], tt.out[1], tt.out[2], 1)
		})
	}
}

// TestRotationRoundTrip rotates by θ then by -θ about each axis.
func TestRotationRoundTrip(t *testing.T) {
	axes := map[string]func(float64) *matrix.Dense{
		"X": transform.RotationX,
		"Y": transform.RotationY,
		"Z": transform.RotationZ,
	}
	for name, rot := range axes {
		for _, theta := range []float64{0, 30, 90, 180, 359} {
			t.Run(fmt.Sprintf("%s/%g", name, theta), func(t *testing.T) {
				p := point(t, 80, -120, 7.5)
				require.NoError(t, matrix.Multiply(rot(theta), p))
				require.NoError(t, matrix.Multiply(rot(-theta), p))
				requirePoint(t, p, 80, -120, 7.5, 1)
			})
		}
	}
}

// TestFactoriesArePure returns independent matrices on every call.
func TestFactoriesArePure(t *testing.T) {
	a := transform.Translation(1, 1, 1)
	b := transform.Translation(1, 1, 1)
	require.NotSame(t, a, b)

	require.NoError(t, matrix.ScalarMultiply(0, a))
	ok, err := matrix.AllClose(b, transform.Translation(1, 1, 1), 0)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestComposeOrder applies the first argument first.
func TestComposeOrder(t *testing.T) {
	tr := transform.Translation(10, 0, 0)
	sc := transform.Scaling(2, 2, 2)

	translateThenScale, err := transform.Compose(tr, sc)
	require.NoError(t, err)
	p := point(t, 1, 0, 0)
	require.NoError(t, matrix.Multiply(translateThenScale, p))
	requirePoint(t, p, 22, 0, 0, 1)

	scaleThenTranslate, err := transform.Compose(sc, tr)
	require.NoError(t, err)
	p = point(t, 1, 0, 0)
	require.NoError(t, matrix.Multiply(scaleThenTranslate, p))
	requirePoint(t, p, 12, 0, 0, 1)

	// inputs untouched
	ok, err := matrix.AllClose(tr, transform.Translation(10, 0, 0), 0)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestComposeMatchesSequential: one composed apply equals sequential applies.
func TestComposeMatchesSequential(t *testing.T) {
	steps := []*matrix.Dense{
		transform.RotationX(15),
		transform.Scaling(1.5, 0.5, 2),
		transform.RotationZ(-40),
		transform.Translation(3, -2, 1),
	}
	composed, err := transform.Compose(steps...)
	require.NoError(t, err)

	once := point(t, 4, 5, 6)
	require.NoError(t, matrix.Multiply(composed, once))

	seq := point(t, 4, 5, 6)
	for _, s := range steps {
		require.NoError(t, matrix.Multiply(s, seq))
	}

	ok, err := matrix.AllClose(once, seq, eps)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestComposeErrors(t *testing.T) {
	_, err := transform.Compose()
	require.ErrorIs(t, err, transform.ErrEmptyCompose)

	_, err = transform.Compose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = transform.Compose(transform.Identity(), matrix.MustNew(3, 3))
	require.ErrorIs(t, err, matrix.ErrShape)
}

func TestRadians(t *testing.T) {
	require.InDelta(t, 3.141592653589793, transform.Radians(180), eps)
	require.InDelta(t, -1.5707963267948966, transform.Radians(-90), eps)
}
