package text

import "fmt"

// Face is a FontSource at a specific size in pixels per em.
// Face is a lightweight value; create one per layout as needed.
type Face struct {
	source    *FontSource
	size      float64
	synthetic bool
}

// Source returns the FontSource this face was created from.
func (f *Face) Source() *FontSource {
	return f.source
}

// Size returns the size of this face in pixels per em.
func (f *Face) Size() float64 {
	return f.size
}

// SyntheticItalic reports whether the face is slanted by the outline
// extractor because the family has no italic face.
func (f *Face) SyntheticItalic() bool {
	return f.synthetic
}

// Metrics returns the font metrics at this face's size.
func (f *Face) Metrics() (Metrics, error) {
	return f.source.metrics(f.size)
}

// String describes the face for log output.
func (f *Face) String() string {
	if f.synthetic {
		return fmt.Sprintf("%s %gpx (synthetic italic)", f.source, f.size)
	}
	return fmt.Sprintf("%s %gpx", f.source, f.size)
}
