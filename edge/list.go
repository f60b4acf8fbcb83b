package edge

import (
	"fmt"

	"github.com/katalvlaran/wireframe/matrix"
)

// Rows is the height of an edge-list matrix: x, y, z and the homogeneous w.
const Rows = 4

// Point is a 3D point; it is stored in the list as (X, Y, Z, 1).
type Point struct {
	X, Y, Z float64
}

// List is a 4×N edge list. The zero value is not usable; call New.
type List struct {
	m *matrix.Dense
}

// New returns an empty 4×0 edge list. Options are forwarded to matrix.New,
// e.g. matrix.WithCapacity(2*expectedSegments).
func New(opts ...matrix.Option) (*List, error) {
	m, err := matrix.New(Rows, 0, opts...)
	if err != nil {
		return nil, fmt.Errorf("edge: New: %w", err)
	}
	return &List{m: m}, nil
}

func (l *List) live() error {
	if l == nil || l.m == nil {
		return ErrNilList
	}
	if l.m.Released() {
		return matrix.ErrReleased
	}
	return nil
}

// AddEdge appends the segment (x0,y0,z0)-(x1,y1,z1) as two homogeneous
// columns. The list grows by exactly two columns.
func (l *List) AddEdge(x0, y0, z0, x1, y1, z1 float64) error {
	if err := l.live(); err != nil {
		return fmt.Errorf("edge: AddEdge: %w", err)
	}
	first, err := l.m.AppendCols(2)
	if err != nil {
		return fmt.Errorf("edge: AddEdge: %w", err)
	}
	l.setPoint(first, x0, y0, z0)
	l.setPoint(first+1, x1, y1, z1)
	return nil
}

// setPoint writes (x, y, z, 1) into column j, which AppendCols just created.
func (l *List) setPoint(j int, x, y, z float64) {
	_ = l.m.Set(0, j, x)
	_ = l.m.Set(1, j, y)
	_ = l.m.Set(2, j, z)
	_ = l.m.Set(3, j, 1)
}

// AddSegment appends the segment p0-p1.
func (l *List) AddSegment(p0, p1 Point) error {
	return l.AddEdge(p0.X, p0.Y, p0.Z, p1.X, p1.Y, p1.Z)
}

// AddPolygon appends the closed outline pts[0]-pts[1]-…-pts[n-1]-pts[0].
// Two points yield the segment twice (there and back).
func (l *List) AddPolygon(pts ...Point) error {
	if len(pts) < 2 {
		return ErrTooFewPoints
	}
	if err := l.live(); err != nil {
		return fmt.Errorf("edge: AddPolygon: %w", err)
	}
	if err := l.m.Reserve(l.m.Cols() + 2*len(pts)); err != nil {
		return fmt.Errorf("edge: AddPolygon: %w", err)
	}
	for i := range pts {
		if err := l.AddSegment(pts[i], pts[(i+1)%len(pts)]); err != nil {
			return err
		}
	}
	return nil
}

// AddBox appends the 12 edges of an axis-aligned cube of the given size
// centered at c.
func (l *List) AddBox(c Point, size float64) error {
	h := size / 2
	v := [8]Point{
		{c.X - h, c.Y - h, c.Z - h}, // 0: bottom-left-back
		{c.X + h, c.Y - h, c.Z - h}, // 1: bottom-right-back
		{c.X + h, c.Y + h, c.Z - h}, // 2: top-right-back
		{c.X - h, c.Y + h, c.Z - h}, // 3: top-left-back
		{c.X - h, c.Y - h, c.Z + h}, // 4: bottom-left-front
		{c.X + h, c.Y - h, c.Z + h}, // 5: bottom-right-front
		{c.X + h, c.Y + h, c.Z + h}, // 6: top-right-front
		{c.X - h, c.Y + h, c.Z + h}, // 7: top-left-front
	}
	edges := [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back face
		{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front face
		{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connecting edges
	}
	if err := l.live(); err != nil {
		return fmt.Errorf("edge: AddBox: %w", err)
	}
	if err := l.m.Reserve(l.m.Cols() + 2*len(edges)); err != nil {
		return fmt.Errorf("edge: AddBox: %w", err)
	}
	for _, e := range edges {
		if err := l.AddSegment(v[e[0]], v[e[1]]); err != nil {
			return err
		}
	}
	return nil
}

// Apply multiplies t into the list in place (t × list → list). The list keeps
// its shape and storage. t must be 4×4.
func (l *List) Apply(t *matrix.Dense) error {
	if err := l.live(); err != nil {
		return fmt.Errorf("edge: Apply: %w", err)
	}
	if err := matrix.Multiply(t, l.m); err != nil {
		return fmt.Errorf("edge: Apply: %w", err)
	}
	return nil
}

// Scale multiplies every cell of the list by x, w included. Renderers read
// only x and y, so on screen this is a uniform scale about the origin.
func (l *List) Scale(x float64) error {
	if err := l.live(); err != nil {
		return fmt.Errorf("edge: Scale: %w", err)
	}
	if err := matrix.ScalarMultiply(x, l.m); err != nil {
		return fmt.Errorf("edge: Scale: %w", err)
	}
	return nil
}

// Len returns the number of segments.
func (l *List) Len() int {
	if l.live() != nil {
		return 0
	}
	return l.m.Cols() / 2
}

// Points returns the number of columns (two per segment).
func (l *List) Points() int {
	if l.live() != nil {
		return 0
	}
	return l.m.Cols()
}

// Matrix exposes the underlying 4×N matrix. Callers must not change its
// width; use the List methods for that.
func (l *List) Matrix() *matrix.Dense {
	if l == nil {
		return nil
	}
	return l.m
}

// point reads column j, which the caller has bounds-checked.
func (l *List) point(j int) Point {
	x, _ := l.m.At(0, j)
	y, _ := l.m.At(1, j)
	z, _ := l.m.At(2, j)
	return Point{X: x, Y: y, Z: z}
}

// Segment returns the endpoints of segment k.
func (l *List) Segment(k int) (Point, Point, error) {
	if err := l.live(); err != nil {
		return Point{}, Point{}, err
	}
	if k < 0 || k >= l.Len() {
		return Point{}, Point{}, fmt.Errorf("edge: Segment(%d): %w", k, ErrSegmentRange)
	}
	return l.point(2 * k), l.point(2*k + 1), nil
}

// Each calls f for every segment in order until f returns false.
func (l *List) Each(f func(k int, p0, p1 Point) bool) {
	n := l.Len()
	for k := 0; k < n; k++ {
		if !f(k, l.point(2*k), l.point(2*k+1)) {
			return
		}
	}
}

// Release drops the list's storage. Later operations fail with
// matrix.ErrReleased.
func (l *List) Release() {
	if l == nil || l.m == nil {
		return
	}
	l.m.Release()
}
