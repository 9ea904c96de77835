package outlined

import "fmt"

// Option configures an OutlinedText during creation.
//
// Example:
//
//	el := outlined.New(
//	    outlined.WithHost(window),
//	    outlined.WithEquality(outlined.EqualityString),
//	)
type Option func(*options)

type options struct {
	host     Host
	layouter Layouter
	equality Equality
	style    *Style
}

func defaultOptions() options {
	return options{
		host:     NopHost{},
		equality: EqualityValue,
	}
}

// WithHost sets the host notified of measurements and redraw requests.
// The default host ignores both.
func WithHost(h Host) Option {
	return func(o *options) {
		if h != nil {
			o.host = h
		}
	}
}

// WithLayouter sets the text layout service.
// The default is a TextLayouter over text.DefaultEngine().
func WithLayouter(l Layouter) Option {
	return func(o *options) {
		o.layouter = l
	}
}

// WithEquality sets how Set decides that a value is unchanged.
func WithEquality(e Equality) Option {
	return func(o *options) {
		o.equality = e
	}
}

// WithStyle sets the initial style. Fields that fail validation keep
// their default value. No layout happens until the first change or paint.
func WithStyle(s Style) Option {
	return func(o *options) {
		o.style = &s
	}
}

// Equality is the policy Set uses to compare the old and new value of a
// field. Only a change under the policy regenerates the outline.
type Equality int

const (
	// EqualityValue compares typed values with ==.
	EqualityValue Equality = iota

	// EqualityString compares the fmt.Sprint forms of both values, so
	// FontSize 48 and 48.0 are equal, as are two brushes of the same
	// #AARRGGBB color.
	EqualityString
)

// String returns the policy name.
func (e Equality) String() string {
	switch e {
	case EqualityValue:
		return "Value"
	case EqualityString:
		return "String"
	default:
		return "Unknown"
	}
}

func (e Equality) equal(a, b any) bool {
	if e == EqualityString {
		return fmt.Sprint(a) == fmt.Sprint(b)
	}
	return a == b
}
