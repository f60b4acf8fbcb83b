package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"math"

	xdraw "golang.org/x/image/draw"

	"github.com/katalvlaran/wireframe/edge"
	"github.com/katalvlaran/wireframe/matrix"
)

// Default screen size.
const (
	DefaultWidth  = 500
	DefaultHeight = 500
)

// Size limits for any image this package allocates, screens and scaled
// copies alike.
const (
	MaxSide   = 1 << 14
	MaxPixels = 1 << 26
)

// CheckSize reports ErrBadSize unless 0 < w, h <= MaxSide and w*h <= MaxPixels.
func CheckSize(w, h int) error {
	if w <= 0 || h <= 0 || w > MaxSide || h > MaxSide || w*h > MaxPixels {
		return fmt.Errorf("render: size %dx%d: %w", w, h, ErrBadSize)
	}
	return nil
}

// Screen is a raster target with a bottom-left origin.
type Screen struct {
	img *image.RGBA
	w   int
	h   int
}

// NewScreen returns a w×h screen cleared to opaque black.
func NewScreen(w, h int) (*Screen, error) {
	if err := CheckSize(w, h); err != nil {
		return nil, fmt.Errorf("render: NewScreen: %w", err)
	}
	s := &Screen{img: image.NewRGBA(image.Rect(0, 0, w, h)), w: w, h: h}
	s.Clear(color.Black)
	return s, nil
}

// Width returns the screen width in pixels.
func (s *Screen) Width() int { return s.w }

// Height returns the screen height in pixels.
func (s *Screen) Height() int { return s.h }

// Image returns the backing image. Row 0 is the top of the picture, which is
// screen y = Height()-1.
func (s *Screen) Image() *image.RGBA { return s.img }

// Clear fills the whole screen with c.
func (s *Screen) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// At returns the color at screen coordinates (x, y).
func (s *Screen) At(x, y int) color.RGBA {
	return s.img.RGBAAt(x, s.h-1-y)
}

// Plot sets one pixel; out-of-range coordinates are ignored.
func (s *Screen) Plot(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	s.img.SetRGBA(x, s.h-1-y, c)
}

// DrawLine draws the segment (x0,y0)-(x1,y1) after clipping it to the
// screen. It reports whether anything was drawn.
func (s *Screen) DrawLine(x0, y0, x1, y1 float64, c color.RGBA) bool {
	cx0, cy0, cx1, cy1, ok := clipLineToRect(x0, y0, x1, y1, 0, 0, float64(s.w-1), float64(s.h-1))
	if !ok {
		Logger().Debug("segment clipped away",
			slog.Float64("x0", x0), slog.Float64("y0", y0),
			slog.Float64("x1", x1), slog.Float64("y1", y1))
		return false
	}
	s.bresenham(round(cx0), round(cy0), round(cx1), round(cy1), c)
	return true
}

// DrawLines draws every segment of l and returns how many were visible.
func (s *Screen) DrawLines(l *edge.List, c color.RGBA) int {
	n := 0
	l.Each(func(_ int, p0, p1 edge.Point) bool {
		if s.DrawLine(p0.X, p0.Y, p1.X, p1.Y, c) {
			n++
		}
		return true
	})
	return n
}

// DrawMatrix draws a raw point matrix whose consecutive column pairs are
// segments, reading rows 0 and 1 as x and y.
func (s *Screen) DrawMatrix(m *matrix.Dense, c color.RGBA) (int, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return 0, fmt.Errorf("render: DrawMatrix: %w", err)
	}
	if m.Rows() < 2 {
		return 0, fmt.Errorf("render: DrawMatrix: %d rows: %w", m.Rows(), matrix.ErrShape)
	}
	if m.Cols()%2 != 0 {
		return 0, fmt.Errorf("render: DrawMatrix: %d columns: %w", m.Cols(), ErrOddColumns)
	}
	n := 0
	for j := 0; j < m.Cols(); j += 2 {
		x0, _ := m.At(0, j)
		y0, _ := m.At(1, j)
		x1, _ := m.At(0, j+1)
		y1, _ := m.At(1, j+1)
		if s.DrawLine(x0, y0, x1, y1, c) {
			n++
		}
	}
	return n, nil
}

// Scaled returns a copy of the picture enlarged by an integer factor with
// nearest-neighbor sampling. A factor of 1 returns the image itself.
// The result must stay within CheckSize.
func (s *Screen) Scaled(factor int) (image.Image, error) {
	if factor < 1 || factor > MaxSide {
		return nil, fmt.Errorf("render: Scaled(%d): %w", factor, ErrBadSize)
	}
	if factor == 1 {
		return s.img, nil
	}
	if err := CheckSize(s.w*factor, s.h*factor); err != nil {
		return nil, fmt.Errorf("render: Scaled(%d): %w", factor, err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, s.w*factor, s.h*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), s.img, s.img.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// bresenham plots an integer line, both endpoints included.
func (s *Screen) bresenham(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	e := dx + dy
	for {
		s.Plot(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// clipLineToRect is Liang–Barsky clipping against [xmin,xmax]×[ymin,ymax].
// ok is false when the segment lies entirely outside or is not finite.
func clipLineToRect(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (cx0, cy0, cx1, cy1 float64, ok bool) {
	if !finite(x0) || !finite(y0) || !finite(x1) || !finite(y1) {
		return 0, 0, 0, 0, false
	}
	dx := x1 - x0
	dy := y1 - y0
	u1, u2 := 0.0, 1.0

	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > u2 {
				return 0, 0, 0, 0, false
			}
			if t > u1 {
				u1 = t
			}
		} else {
			if t < u1 {
				return 0, 0, 0, 0, false
			}
			if t < u2 {
				u2 = t
			}
		}
	}

	cx0 = clamp(x0+u1*dx, xmin, xmax)
	cy0 = clamp(y0+u1*dy, ymin, ymax)
	cx1 = clamp(x0+u2*dx, xmin, xmax)
	cy1 = clamp(y0+u2*dy, ymin, ymax)
	return cx0, cy0, cx1, cy1, true
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// round maps a clipped coordinate to the nearest pixel.
func round(v float64) int {
	return int(math.Round(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
