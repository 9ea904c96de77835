// Package recording captures the drawing calls an element issues against a
// Surface so they can be inspected, replayed or exported.
//
// A Recorder is an outlined.Surface. Every DrawGeometry call becomes a
// command whose path and brushes are stored in a ResourcePool; the current
// transform is recorded as SetTransform commands. FinishRecording returns an
// immutable Recording that replays to any Backend.
//
// Export backends register themselves by name, following the database/sql
// driver pattern:
//
//	import (
//	    _ "github.com/gogpu/outlined/recording/backends/raster" // "png"
//	    _ "github.com/gogpu/outlined/recording/backends/svg"    // "svg"
//	)
//
//	rec := recording.NewRecorder(640, 120)
//	if err := el.Paint(rec); err != nil {
//	    return err
//	}
//	backend, err := recording.NewBackend("svg")
//	if err != nil {
//	    return err
//	}
//	if err := rec.FinishRecording().Playback(backend); err != nil {
//	    return err
//	}
//	return backend.(recording.FileBackend).SaveToFile("hello.svg")
package recording
