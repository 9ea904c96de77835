package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrFontNotFound is returned when no registered face matches a family.
	ErrFontNotFound = errors.New("text: font not found")

	// ErrInvalidLocale is returned when a locale is not a BCP 47 tag.
	ErrInvalidLocale = errors.New("text: invalid locale")

	// ErrInvalidSize is returned for non-positive or non-finite font sizes.
	ErrInvalidSize = errors.New("text: invalid font size")

	// ErrInvalidLineSpacing is returned for non-positive line spacing.
	ErrInvalidLineSpacing = errors.New("text: invalid line spacing")
)

// FontNotFoundError reports the family that could not be resolved.
type FontNotFoundError struct {
	Family string
	Weight Weight
	Style  Style
}

func (e *FontNotFoundError) Error() string {
	return fmt.Sprintf("text: font not found: %q (%s %s)", e.Family, e.Weight, e.Style)
}

// Is reports whether target is ErrFontNotFound.
func (e *FontNotFoundError) Is(target error) bool {
	return target == ErrFontNotFound
}

// FontError wraps a failure to parse or read a font.
type FontError struct {
	Path string
	Err  error
}

func (e *FontError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("text: font %s: %v", e.Path, e.Err)
	}
	return "text: " + e.Err.Error()
}

func (e *FontError) Unwrap() error {
	return e.Err
}
