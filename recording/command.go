package recording

import "github.com/gogpu/outlined"

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdSave         CommandType = iota // Save current state
	CmdRestore                         // Restore previous state
	CmdSetTransform                    // Set transformation matrix
	CmdDrawGeometry                    // Fill and stroke a path
)

var commandTypeNames = [...]string{
	CmdSave:         "Save",
	CmdRestore:      "Restore",
	CmdSetTransform: "SetTransform",
	CmdDrawGeometry: "DrawGeometry",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// PathRef is a reference to a path in the resource pool.
type PathRef uint32

// BrushRef is a reference to a brush in the resource pool.
type BrushRef uint32

// InvalidRef marks an absent resource, such as a nil fill brush.
const InvalidRef = ^uint32(0)

// IsValid reports whether the reference points to a path.
func (r PathRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// IsValid reports whether the reference points to a brush.
func (r BrushRef) IsValid() bool {
	return uint32(r) != InvalidRef
}

// SaveCommand saves the current transform.
type SaveCommand struct{}

// Type implements Command.
func (SaveCommand) Type() CommandType { return CmdSave }

// RestoreCommand restores the previously saved transform.
type RestoreCommand struct{}

// Type implements Command.
func (RestoreCommand) Type() CommandType { return CmdRestore }

// SetTransformCommand sets the current transformation matrix.
type SetTransformCommand struct {
	Matrix outlined.Matrix
}

// Type implements Command.
func (SetTransformCommand) Type() CommandType { return CmdSetTransform }

// PenStyle is a recorded outlined.Pen with its brush pooled.
type PenStyle struct {
	Brush      BrushRef
	Width      float64
	Cap        outlined.LineCap
	Join       outlined.LineJoin
	MiterLimit float64
}

// DrawGeometryCommand fills and strokes a path.
type DrawGeometryCommand struct {
	Path PathRef

	// Fill is InvalidRef when the interior is not painted.
	Fill BrushRef

	Pen PenStyle
}

// Type implements Command.
func (DrawGeometryCommand) Type() CommandType { return CmdDrawGeometry }
