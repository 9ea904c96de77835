package outlined

// Host is the UI framework hosting an element.
// The element calls it synchronously from Set, Regenerate and Paint.
type Host interface {
	// RequestRedraw asks the host to schedule a Paint.
	RequestRedraw()

	// ReportMeasurement reports the minimum size of the element, which is
	// the measured size of its text layout.
	ReportMeasurement(width, height float64)
}

// NopHost is a Host that ignores every call.
type NopHost struct{}

// RequestRedraw implements Host.
func (NopHost) RequestRedraw() {}

// ReportMeasurement implements Host.
func (NopHost) ReportMeasurement(_, _ float64) {}

// Surface is a drawing target for Paint.
type Surface interface {
	// DrawGeometry fills geometry with fill and strokes its border with pen.
	// A nil fill skips the interior; an invisible pen skips the border.
	DrawGeometry(fill Brush, pen Pen, geometry *Path) error
}
