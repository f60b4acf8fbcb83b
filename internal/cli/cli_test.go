package cli

import (
	"bytes"
	"context"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wireframe/internal/scene"
	"github.com/katalvlaran/wireframe/render"
)

// execute runs the command tree with args and returns stdout and the log.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, logs bytes.Buffer
	root := NewRootCommand(&logs)
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), logs.String(), err
}

func TestRenderDefaultScene(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matrix.png")
	_, logs, err := execute(t, "render", "--output", path)
	require.NoError(t, err)
	require.Contains(t, logs, "image saved")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, "png", format)
	require.Equal(t, render.DefaultWidth, cfg.Width)
	require.Equal(t, render.DefaultHeight, cfg.Height)
}

func TestRenderSceneFileScaled(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "box.toml")
	out := filepath.Join(dir, "box.bmp")
	require.NoError(t, os.WriteFile(scenePath, []byte(`
[screen]
width = 64
height = 48

[[boxes]]
center = [32, 24, 0]
size = 20

[[steps]]
op = "rotate-x"
args = [30]
draw = true

[animation]
repeat = 2
`), 0o600))

	t.Cleanup(func() { render.SetLogger(nil) })
	_, logs, err := execute(t, "-v", "render", "-s", scenePath, "-o", out, "--scale", "2")
	require.NoError(t, err)
	require.Contains(t, logs, "scene ready") // debug level

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	require.NoError(t, err)
	require.Equal(t, 128, cfg.Width)
	require.Equal(t, 96, cfg.Height)
}

func TestRenderErrors(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, "render", "-o", filepath.Join(dir, "x.ppm"))
	require.ErrorIs(t, err, scene.ErrInvalidScene)

	_, _, err = execute(t, "render", "-s", filepath.Join(dir, "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, _, err = execute(t, "render", "--scale", "-3", "-o", filepath.Join(dir, "x.png"))
	require.ErrorIs(t, err, scene.ErrInvalidScene)

	_, _, err = execute(t, "render", "extra")
	require.Error(t, err)

	// an oversized upscale is rejected before anything is allocated
	require.NotPanics(t, func() {
		_, _, err = execute(t, "render", "--scale", "1099511627776", "-o", filepath.Join(dir, "x.png"))
	})
	require.ErrorIs(t, err, scene.ErrInvalidScene)
	_, _, err = execute(t, "render", "--scale", "33", "-o", filepath.Join(dir, "x.png"))
	require.ErrorIs(t, err, render.ErrBadSize)
}

func TestPrint(t *testing.T) {
	out, _, err := execute(t, "print")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)
	require.Contains(t, lines[0], "edge matrix")
	require.Contains(t, lines[0], "4×8, 4 segments")
	require.Len(t, strings.Fields(lines[1]), 8)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, io.ErrClosedPipe }

func TestPrintWriteError(t *testing.T) {
	root := NewRootCommand(&bytes.Buffer{})
	root.SetOut(failingWriter{})
	root.SetArgs([]string{"print"})
	require.ErrorIs(t, root.ExecuteContext(context.Background()), io.ErrClosedPipe)
}

// TestVerboseLoggerReset: a verbose run installs the render logger and the
// next quiet run in the same process removes it again.
func TestVerboseLoggerReset(t *testing.T) {
	t.Cleanup(func() { render.SetLogger(nil) })
	debugOn := func() bool {
		return render.Logger().Enabled(context.Background(), slog.LevelDebug)
	}

	_, _, err := execute(t, "-v", "version")
	require.NoError(t, err)
	require.True(t, debugOn())

	_, _, err = execute(t, "version")
	require.NoError(t, err)
	require.False(t, debugOn())
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(out, "wireframe "), out)
	require.Contains(t, out, "commit ")

	flagOut, _, err := execute(t, "--version")
	require.NoError(t, err)
	require.Equal(t, out, flagOut)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	root := NewRootCommand(&bytes.Buffer{})
	root.SetArgs([]string{"print"})
	root.SetOut(&bytes.Buffer{})
	require.ErrorIs(t, root.ExecuteContext(ctx), context.Canceled)
}
