package scene

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/wireframe/edge"
	"github.com/katalvlaran/wireframe/matrix"
	"github.com/katalvlaran/wireframe/render"
	"github.com/katalvlaran/wireframe/transform"
)

// action is one compiled unit of the step list: either a transform applied
// with edge.List.Apply or a scalar applied with edge.List.Scale.
type action struct {
	t      *matrix.Dense
	scalar float64
	draw   bool
	label  string
}

// Runner executes a scene. It is not safe for concurrent use.
type Runner struct {
	scene  *Scene
	logger *log.Logger
	edges  *edge.List
	frames int
}

// NewRunner returns a runner for s. A nil logger falls back to log.Default().
func NewRunner(s *Scene, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{scene: s, logger: logger}
}

// Edges returns the edge list after Run, or nil before.
func (r *Runner) Edges() *edge.List { return r.edges }

// Frames returns how many times the edge list was drawn by the last Run.
func (r *Runner) Frames() int { return r.frames }

// Release frees the edge list.
func (r *Runner) Release() {
	r.edges.Release()
	r.edges = nil
}

// Run builds the edge list, draws it, then plays the step list
// Animation.Repeat times. It stops with ctx.Err() when ctx is cancelled
// between repetitions.
func (r *Runner) Run(ctx context.Context) (*render.Screen, error) {
	s := r.scene
	if s == nil {
		return nil, fmt.Errorf("%w: nil scene", ErrInvalidScene)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	bg, _ := render.ParseColor(s.Screen.Background) // validated
	fg, _ := render.ParseColor(s.Screen.Color)

	screen, err := render.NewScreen(s.Screen.Width, s.Screen.Height)
	if err != nil {
		return nil, err
	}
	screen.Clear(bg)

	if r.edges != nil {
		r.edges.Release()
	}
	r.edges, err = r.buildEdges()
	if err != nil {
		return nil, err
	}
	r.frames = 0

	actions, err := compile(s.Steps)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	r.logger.Debug("scene ready",
		"segments", r.edges.Len(),
		"actions", len(actions),
		"repeat", s.Animation.Repeat)

	if !s.Animation.SkipInitial {
		r.draw(screen, fg)
	}
	for rep := 0; rep < s.Animation.Repeat; rep++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for _, a := range actions {
			if err := r.apply(a); err != nil {
				return nil, fmt.Errorf("scene: repetition %d: %s: %w", rep, a.label, err)
			}
			if a.draw {
				r.draw(screen, fg)
			}
		}
		fg = render.HueShift(fg, s.Animation.HueStep)
		r.logger.Debug("repetition done", "n", rep+1, "frames", r.frames)
	}

	r.logger.Info("scene rendered",
		"segments", r.edges.Len(),
		"frames", r.frames,
		"duration", time.Since(start).Round(time.Millisecond))
	return screen, nil
}

func (r *Runner) buildEdges() (*edge.List, error) {
	s := r.scene
	l, err := edge.New(matrix.WithCapacity(2 * (len(s.Edges) + 12*len(s.Boxes))))
	if err != nil {
		return nil, err
	}
	for _, e := range s.Edges {
		if err := l.AddEdge(e.From[0], e.From[1], e.From[2], e.To[0], e.To[1], e.To[2]); err != nil {
			l.Release()
			return nil, err
		}
	}
	for _, b := range s.Boxes {
		c := edge.Point{X: b.Center[0], Y: b.Center[1], Z: b.Center[2]}
		if err := l.AddBox(c, b.Size); err != nil {
			l.Release()
			return nil, err
		}
	}
	return l, nil
}

func (r *Runner) apply(a action) error {
	if a.t == nil {
		return r.edges.Scale(a.scalar)
	}
	return r.edges.Apply(a.t)
}

func (r *Runner) draw(screen *render.Screen, c color.RGBA) {
	visible := screen.DrawLines(r.edges, c)
	r.frames++
	if visible < r.edges.Len() {
		r.logger.Debug("segments off screen", "frame", r.frames, "hidden", r.edges.Len()-visible)
	}
}

// stepMatrix builds the 4×4 transform of a validated matrix step.
func stepMatrix(st Step) *matrix.Dense {
	a := st.Args
	switch st.Op {
	case OpScale:
		return transform.Scaling(a[0], a[1], a[2])
	case OpTranslate:
		return transform.Translation(a[0], a[1], a[2])
	case OpRotateX:
		return transform.RotationX(a[0])
	case OpRotateY:
		return transform.RotationY(a[0])
	default:
		return transform.RotationZ(a[0])
	}
}

// compile turns the step list into actions. Runs of matrix steps that are not
// drawn in between are folded into one transform with transform.Compose.
func compile(steps []Step) ([]action, error) {
	var (
		out     []action
		pending []*matrix.Dense
		labels  []string
	)
	flush := func(draw bool) error {
		if len(pending) == 0 {
			return nil
		}
		t, err := transform.Compose(pending...)
		if err != nil {
			return err
		}
		label := labels[0]
		if len(labels) > 1 {
			label = fmt.Sprintf("%s..%s", labels[0], labels[len(labels)-1])
		}
		out = append(out, action{t: t, draw: draw, label: label})
		pending, labels = nil, nil
		return nil
	}

	for i, st := range steps {
		label := fmt.Sprintf("steps[%d] %s", i, st.Op)
		if st.Op == OpScalar {
			if err := flush(false); err != nil {
				return nil, err
			}
			out = append(out, action{scalar: st.Args[0], draw: st.Draw, label: label})
			continue
		}
		pending = append(pending, stepMatrix(st))
		labels = append(labels, label)
		if st.Draw {
			if err := flush(true); err != nil {
				return nil, err
			}
		}
	}
	if err := flush(false); err != nil {
		return nil, err
	}
	return out, nil
}
