package recording

import (
	"io"

	"github.com/gogpu/outlined"
)

// Backend receives replayed commands and translates them to an output
// format. A Backend manages its own transform stack for Save and Restore.
//
// Backends are created via NewBackend(name) and registered via Register
// in their init functions:
//
//	func init() {
//	    recording.Register("svg", func() recording.Backend {
//	        return NewBackend()
//	    })
//	}
type Backend interface {
	// Begin initializes the backend for a canvas of the given size.
	Begin(width, height int) error

	// End finalizes the output. Output methods are valid afterwards.
	End() error

	// Save pushes the current transform.
	Save()

	// Restore pops the transform pushed by the matching Save.
	// With an empty stack it does nothing.
	Restore()

	// SetTransform replaces the current transform.
	SetTransform(m outlined.Matrix)

	// DrawGeometry fills and strokes a path under the current transform.
	DrawGeometry(fill outlined.Brush, pen outlined.Pen, geometry *outlined.Path) error
}

// WriterBackend is a Backend whose output can be written to an io.Writer
// after End.
type WriterBackend interface {
	Backend
	WriteTo(w io.Writer) (int64, error)
}

// FileBackend is a Backend whose output can be saved to a file after End.
type FileBackend interface {
	Backend
	SaveToFile(path string) error
}

// SurfaceBackend replays into any outlined.Surface by transforming the
// geometry itself. Pen widths are scaled with the transform.
type SurfaceBackend struct {
	surface   outlined.Surface
	transform outlined.Matrix
	stack     []outlined.Matrix
}

var _ Backend = (*SurfaceBackend)(nil)

// NewSurfaceBackend creates a backend drawing on s.
func NewSurfaceBackend(s outlined.Surface) *SurfaceBackend {
	return &SurfaceBackend{surface: s, transform: outlined.Identity()}
}

// Begin implements Backend.
func (b *SurfaceBackend) Begin(_, _ int) error {
	b.transform = outlined.Identity()
	b.stack = b.stack[:0]
	return nil
}

// End implements Backend.
func (b *SurfaceBackend) End() error { return nil }

// Save implements Backend.
func (b *SurfaceBackend) Save() { b.stack = append(b.stack, b.transform) }

// Restore implements Backend.
func (b *SurfaceBackend) Restore() {
	if n := len(b.stack); n > 0 {
		b.transform = b.stack[n-1]
		b.stack = b.stack[:n-1]
	}
}

// SetTransform implements Backend.
func (b *SurfaceBackend) SetTransform(m outlined.Matrix) { b.transform = m }

// DrawGeometry implements Backend.
func (b *SurfaceBackend) DrawGeometry(fill outlined.Brush, pen outlined.Pen, geometry *outlined.Path) error {
	if !b.transform.IsIdentity() {
		geometry = geometry.Transform(b.transform)
		pen.Width *= b.transform.ScaleFactor()
	}
	return b.surface.DrawGeometry(fill, pen, geometry)
}
