package recording

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/imdraw/gpucore"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdClear    CommandType = iota // Clear the target
	CmdDraw                        // Draw positions with a topology
	CmdDrawText                    // Draw a string
	CmdDrawMesh                    // Draw a mesh
	CmdResize                      // Resize the viewport
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClear:    "Clear",
	CmdDraw:     "Draw",
	CmdDrawText: "DrawText",
	CmdDrawMesh: "DrawMesh",
	CmdResize:   "Resize",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ClearCommand clears the target to a color.
type ClearCommand struct {
	Color mgl32.Vec4
}

// Type implements Command.
func (ClearCommand) Type() CommandType { return CmdClear }

// DrawCommand is a recorded geometry submission.
// Positions is a private copy.
type DrawCommand struct {
	gpucore.DrawCall
}

// Type implements Command.
func (DrawCommand) Type() CommandType { return CmdDraw }

// DrawTextCommand is a recorded string submission.
type DrawTextCommand struct {
	gpucore.TextCall
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

// DrawMeshCommand is a recorded mesh submission.
type DrawMeshCommand struct {
	gpucore.MeshCall
}

// Type implements Command.
func (DrawMeshCommand) Type() CommandType { return CmdDrawMesh }

// ResizeCommand records a viewport size change.
type ResizeCommand struct {
	Width, Height int
}

// Type implements Command.
func (ResizeCommand) Type() CommandType { return CmdResize }
