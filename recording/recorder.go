package recording

import (
	"math"

	"github.com/gogpu/outlined"
)

// Recorder is an outlined.Surface that records drawing calls instead of
// rasterizing them. Use FinishRecording to obtain an immutable Recording.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	transform  outlined.Matrix
	stateStack []outlined.Matrix
}

var _ outlined.Surface = (*Recorder)(nil)

// NewRecorder creates a Recorder for a canvas of the given size with the
// identity transform.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 16),
		resources: NewResourcePool(),
		transform: outlined.Identity(),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int { return r.height }

// Save saves the current transform.
func (r *Recorder) Save() {
	r.stateStack = append(r.stateStack, r.transform)
	r.commands = append(r.commands, SaveCommand{})
}

// Restore restores the transform saved by the matching Save.
// Without a matching Save it does nothing.
func (r *Recorder) Restore() {
	if len(r.stateStack) == 0 {
		return
	}
	r.transform = r.stateStack[len(r.stateStack)-1]
	r.stateStack = r.stateStack[:len(r.stateStack)-1]
	r.commands = append(r.commands, RestoreCommand{})
}

// SetTransform replaces the current transform.
func (r *Recorder) SetTransform(m outlined.Matrix) {
	r.transform = m
	r.commands = append(r.commands, SetTransformCommand{Matrix: m})
}

// Translate prepends a translation to the current transform.
func (r *Recorder) Translate(x, y float64) {
	r.SetTransform(r.transform.Multiply(outlined.Translate(x, y)))
}

// Transform returns the current transform.
func (r *Recorder) Transform() outlined.Matrix { return r.transform }

// DrawGeometry implements outlined.Surface.
func (r *Recorder) DrawGeometry(fill outlined.Brush, pen outlined.Pen, geometry *outlined.Path) error {
	r.commands = append(r.commands, DrawGeometryCommand{
		Path: r.resources.AddPath(geometry),
		Fill: r.resources.AddBrush(fill),
		Pen: PenStyle{
			Brush:      r.resources.AddBrush(pen.Brush),
			Width:      pen.Width,
			Cap:        pen.Cap,
			Join:       pen.Join,
			MiterLimit: pen.MiterLimit,
		},
	})
	return nil
}

// FinishRecording returns the Recording of every call so far.
// The Recorder must not be used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Recording is an immutable sequence of recorded drawing commands.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recording canvas.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Resources returns the resource pool.
func (r *Recording) Resources() *ResourcePool { return r.resources }

// Pen returns the outlined.Pen recorded in ps.
func (r *Recording) Pen(ps PenStyle) outlined.Pen {
	return outlined.Pen{
		Brush:      r.resources.GetBrush(ps.Brush),
		Width:      ps.Width,
		Cap:        ps.Cap,
		Join:       ps.Join,
		MiterLimit: ps.MiterLimit,
	}
}

// Bounds returns the device space box covering every drawn geometry,
// including half the pen width on each side.
func (r *Recording) Bounds() outlined.Rect {
	var (
		out   outlined.Rect
		found bool
	)
	m := outlined.Identity()
	var stack []outlined.Matrix

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			stack = append(stack, m)
		case RestoreCommand:
			if len(stack) > 0 {
				m = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
			}
		case SetTransformCommand:
			m = c.Matrix
		case DrawGeometryCommand:
			path := r.resources.GetPath(c.Path)
			if path.IsEmpty() {
				continue
			}
			b := path.Transform(m).Bounds()
			if pen := r.Pen(c.Pen); pen.Visible() {
				b = b.Expand(pen.Width * m.ScaleFactor() / 2)
			}
			if !found {
				out, found = b, true
				continue
			}
			out.Min.X = math.Min(out.Min.X, b.Min.X)
			out.Min.Y = math.Min(out.Min.Y, b.Min.Y)
			out.Max.X = math.Max(out.Max.X, b.Max.X)
			out.Max.Y = math.Max(out.Max.Y, b.Max.Y)
		}
	}
	return out
}

// Playback replays the recording to backend between Begin and End.
func (r *Recording) Playback(backend Backend) error {
	if err := backend.Begin(r.width, r.height); err != nil {
		return err
	}
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case SaveCommand:
			backend.Save()
		case RestoreCommand:
			backend.Restore()
		case SetTransformCommand:
			backend.SetTransform(c.Matrix)
		case DrawGeometryCommand:
			path := r.resources.GetPath(c.Path)
			fill := r.resources.GetBrush(c.Fill)
			if err := backend.DrawGeometry(fill, r.Pen(c.Pen), path); err != nil {
				return err
			}
		}
	}
	return backend.End()
}
