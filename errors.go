package outlined

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrInvalidStyleValue is returned when a style field is set to a value
	// outside its domain. The element is left unchanged.
	ErrInvalidStyleValue = errors.New("outlined: invalid style value")

	// ErrLayoutFailure is returned when the layout service cannot shape the
	// text with the requested font.
	ErrLayoutFailure = errors.New("outlined: layout failed")

	// ErrNilSurface is returned by Paint when no surface is given.
	ErrNilSurface = errors.New("outlined: nil surface")

	// ErrUnsupportedChild is returned by AddChild for content that is not text.
	ErrUnsupportedChild = errors.New("outlined: unsupported child content")
)

// InvalidStyleError describes a rejected style value.
type InvalidStyleError struct {
	Field  Field
	Value  any
	Reason string
}

func (e *InvalidStyleError) Error() string {
	return fmt.Sprintf("outlined: invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

// Is reports whether target is ErrInvalidStyleValue.
func (e *InvalidStyleError) Is(target error) bool {
	return target == ErrInvalidStyleValue
}

// LayoutError wraps a layout service failure together with the style
// that could not be laid out.
type LayoutError struct {
	Style Style
	Err   error
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("outlined: layout of %q in %q failed: %v", e.Style.Text, e.Style.FontFamily, e.Err)
}

// Is reports whether target is ErrLayoutFailure.
func (e *LayoutError) Is(target error) bool {
	return target == ErrLayoutFailure
}

func (e *LayoutError) Unwrap() error {
	return e.Err
}
