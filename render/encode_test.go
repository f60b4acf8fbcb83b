package render_test

import (
	"bytes"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/katalvlaran/wireframe/render"
)

func TestFormatOf(t *testing.T) {
	cases := map[string]string{
		"matrix.png":  render.FormatPNG,
		"a/b/OUT.PNG": render.FormatPNG,
		"x.jpg":       render.FormatJPEG,
		"x.jpeg":      render.FormatJPEG,
		"x.gif":       render.FormatGIF,
		"x.bmp":       render.FormatBMP,
		"x.tif":       render.FormatTIFF,
		"x.tiff":      render.FormatTIFF,
	}
	for path, want := range cases {
		got, err := render.FormatOf(path)
		require.NoError(t, err, path)
		require.Equal(t, want, got, path)
	}

	for _, path := range []string{"x.ppm", "noext", "x.png.bak"} {
		_, err := render.FormatOf(path)
		require.ErrorIs(t, err, render.ErrUnknownFormat, path)
	}
}

// TestSaveDecodes saves one small frame per format and checks that the
// standard decoders recognize the result.
func TestSaveDecodes(t *testing.T) {
	s := newScreen(t, 16, 16)
	s.DrawLine(0, 0, 15, 15, green)
	dir := t.TempDir()

	for _, ext := range []string{"png", "jpg", "gif", "bmp", "tiff"} {
		path := filepath.Join(dir, "frame."+ext)
		require.NoError(t, s.Save(path))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
		require.NoError(t, err, ext)
		want, _ := render.FormatOf(path)
		require.Equal(t, want, format)
		require.Equal(t, 16, cfg.Width)
		require.Equal(t, 16, cfg.Height)
	}
}

func TestSaveUnknownFormatCreatesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.ppm")
	s := newScreen(t, 4, 4)
	require.ErrorIs(t, s.Save(path), render.ErrUnknownFormat)
	_, err := os.Stat(path)
	require.True(t, os.IsNotExist(err))
}

func TestEncodeUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := render.Encode(&buf, "webp", image.NewRGBA(image.Rect(0, 0, 1, 1)))
	require.ErrorIs(t, err, render.ErrUnknownFormat)
	require.Zero(t, buf.Len())
}
