// Package scene describes a wireframe animation in TOML and runs it onto a
// render.Screen.
package scene

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/wireframe/render"
)

// ErrInvalidScene is wrapped by every parse and validation failure.
var ErrInvalidScene = errors.New("scene: invalid scene")

// Step operations.
const (
	OpScale     = "scale"
	OpScalar    = "scalar"
	OpTranslate = "translate"
	OpRotateX   = "rotate-x"
	OpRotateY   = "rotate-y"
	OpRotateZ   = "rotate-z"
)

// DefaultOutput is used when a scene names no output file.
const DefaultOutput = "matrix.png"

// argCount is the number of arguments each op takes.
var argCount = map[string]int{
	OpScale:     3,
	OpScalar:    1,
	OpTranslate: 3,
	OpRotateX:   1,
	OpRotateY:   1,
	OpRotateZ:   1,
}

//go:embed default.toml
var defaultScene []byte

// Scene is the decoded form of a scene file.
type Scene struct {
	Screen    Screen    `toml:"screen"`
	Edges     []Edge    `toml:"edges"`
	Boxes     []Box     `toml:"boxes"`
	Steps     []Step    `toml:"steps"`
	Animation Animation `toml:"animation"`
}

// Screen configures the raster target.
type Screen struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
	Color      string `toml:"color"`
	Output     string `toml:"output"`
	Scale      int    `toml:"scale"`
}

// Edge is one segment; From and To hold x, y, z.
type Edge struct {
	From []float64 `toml:"from"`
	To   []float64 `toml:"to"`
}

// Box is an axis-aligned cube.
type Box struct {
	Center []float64 `toml:"center"`
	Size   float64   `toml:"size"`
}

// Step is one transform applied to the whole edge list. Rotation angles are
// in degrees.
type Step struct {
	Op   string    `toml:"op"`
	Args []float64 `toml:"args"`
	Draw bool      `toml:"draw"`
}

// Animation controls repetition of the step list.
type Animation struct {
	Repeat      int     `toml:"repeat"`
	HueStep     float64 `toml:"hue_step"`
	SkipInitial bool    `toml:"skip_initial"`
}

// Default returns the built-in scene.
func Default() *Scene {
	s, err := Parse(defaultScene)
	if err != nil {
		panic("scene: embedded default is invalid: " + err.Error())
	}
	return s
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: load %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a TOML scene, fills defaults and validates it. Unknown keys
// are rejected.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidScene, strings.Join(keys, ", "))
	}
	s.setDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) setDefaults() {
	if s.Screen.Width == 0 {
		s.Screen.Width = render.DefaultWidth
	}
	if s.Screen.Height == 0 {
		s.Screen.Height = render.DefaultHeight
	}
	if s.Screen.Background == "" {
		s.Screen.Background = "#000000"
	}
	if s.Screen.Color == "" {
		s.Screen.Color = render.Hex(render.DefaultColor)
	}
	if s.Screen.Output == "" {
		s.Screen.Output = DefaultOutput
	}
	if s.Screen.Scale == 0 {
		s.Screen.Scale = 1
	}
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidScene, field, fmt.Sprintf(format, args...))
}

// Validate checks the scene after defaults have been applied.
func (s *Scene) Validate() error {
	if err := render.CheckSize(s.Screen.Width, s.Screen.Height); err != nil {
		return fmt.Errorf("%w: screen: %w", ErrInvalidScene, err)
	}
	if s.Screen.Scale < 1 || s.Screen.Scale > render.MaxSide {
		return invalid("screen.scale", "%d out of range [1, %d]", s.Screen.Scale, render.MaxSide)
	}
	// width and height are bounded by MaxSide here, so the products cannot overflow
	if err := render.CheckSize(s.Screen.Width*s.Screen.Scale, s.Screen.Height*s.Screen.Scale); err != nil {
		return fmt.Errorf("%w: screen.scale: scaled output: %w", ErrInvalidScene, err)
	}
	if _, err := render.ParseColor(s.Screen.Background); err != nil {
		return invalid("screen.background", "%v", err)
	}
	if _, err := render.ParseColor(s.Screen.Color); err != nil {
		return invalid("screen.color", "%v", err)
	}
	if _, err := render.FormatOf(s.Screen.Output); err != nil {
		return invalid("screen.output", "%v", err)
	}
	for i, e := range s.Edges {
		if len(e.From) != 3 || len(e.To) != 3 {
			return invalid(fmt.Sprintf("edges[%d]", i), "from and to need 3 coordinates")
		}
	}
	for i, b := range s.Boxes {
		if len(b.Center) != 3 {
			return invalid(fmt.Sprintf("boxes[%d]", i), "center needs 3 coordinates")
		}
		if b.Size <= 0 {
			return invalid(fmt.Sprintf("boxes[%d]", i), "size %g must be positive", b.Size)
		}
	}
	for i, st := range s.Steps {
		n, ok := argCount[st.Op]
		if !ok {
			return invalid(fmt.Sprintf("steps[%d]", i), "unknown op %q", st.Op)
		}
		if len(st.Args) != n {
			return invalid(fmt.Sprintf("steps[%d]", i), "%s takes %d args, got %d", st.Op, n, len(st.Args))
		}
	}
	if s.Animation.Repeat < 0 {
		return invalid("animation.repeat", "%d must not be negative", s.Animation.Repeat)
	}
	return nil
}
