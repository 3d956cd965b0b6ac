package recording

import (
	"errors"
	"slices"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/imdraw/gpucore"
)

// ErrNilDevice is returned by Playback when the target device is nil.
var ErrNilDevice = errors.New("recording: nil device")

func init() {
	gpucore.Register("recording", func() gpucore.Device {
		return NewRecorder()
	})
}

// Recorder is a gpucore.Device that records every submission.
//
// Example:
//
//	rec := recording.NewRecorder()
//	rec.Draw(call)
//	r := rec.Finish()
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

// Ensure Recorder implements the device interfaces.
var (
	_ gpucore.Device  = (*Recorder)(nil)
	_ gpucore.Resizer = (*Recorder)(nil)
)

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		commands: make([]Command, 0, 64),
	}
}

// Clear implements gpucore.Device.
func (r *Recorder) Clear(color mgl32.Vec4) {
	r.commands = append(r.commands, ClearCommand{Color: color})
}

// Draw implements gpucore.Device. Positions are copied.
func (r *Recorder) Draw(call gpucore.DrawCall) {
	call.Positions = slices.Clone(call.Positions)
	r.commands = append(r.commands, DrawCommand{DrawCall: call})
}

// DrawText implements gpucore.Device.
func (r *Recorder) DrawText(call gpucore.TextCall) {
	r.commands = append(r.commands, DrawTextCommand{TextCall: call})
}

// DrawMesh implements gpucore.Device.
func (r *Recorder) DrawMesh(call gpucore.MeshCall) {
	r.commands = append(r.commands, DrawMeshCommand{MeshCall: call})
}

// Resize implements gpucore.Resizer.
func (r *Recorder) Resize(width, height int) {
	r.width, r.height = width, height
	r.commands = append(r.commands, ResizeCommand{Width: width, Height: height})
}

// Width returns the last viewport width seen.
func (r *Recorder) Width() int { return r.width }

// Height returns the last viewport height seen.
func (r *Recorder) Height() int { return r.height }

// Len returns the number of recorded commands.
func (r *Recorder) Len() int { return len(r.commands) }

// Commands returns the recorded commands in submission order.
func (r *Recorder) Commands() []Command { return r.commands }

// Draws returns the recorded geometry submissions.
func (r *Recorder) Draws() []gpucore.DrawCall {
	var out []gpucore.DrawCall
	for _, cmd := range r.commands {
		if c, ok := cmd.(DrawCommand); ok {
			out = append(out, c.DrawCall)
		}
	}
	return out
}

// Texts returns the recorded string submissions.
func (r *Recorder) Texts() []gpucore.TextCall {
	var out []gpucore.TextCall
	for _, cmd := range r.commands {
		if c, ok := cmd.(DrawTextCommand); ok {
			out = append(out, c.TextCall)
		}
	}
	return out
}

// Meshes returns the recorded mesh submissions.
func (r *Recorder) Meshes() []gpucore.MeshCall {
	var out []gpucore.MeshCall
	for _, cmd := range r.commands {
		if c, ok := cmd.(DrawMeshCommand); ok {
			out = append(out, c.MeshCall)
		}
	}
	return out
}

// Reset discards all recorded commands. The viewport size is kept.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// Finish returns an immutable Recording of the commands so far and
// resets the Recorder.
func (r *Recorder) Finish() *Recording {
	rec := &Recording{
		width:    r.width,
		height:   r.height,
		commands: slices.Clone(r.commands),
	}
	r.Reset()
	return rec
}

// Recording is an immutable list of recorded commands.
// It can be replayed to any gpucore.Device.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the viewport width at the end of recording.
func (r *Recording) Width() int { return r.width }

// Height returns the viewport height at the end of recording.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Playback replays the recording to dev in order.
// Resize commands are delivered only if dev implements gpucore.Resizer.
func (r *Recording) Playback(dev gpucore.Device) error {
	if dev == nil {
		return ErrNilDevice
	}
	resizer, _ := dev.(gpucore.Resizer)

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			dev.Clear(c.Color)
		case DrawCommand:
			dev.Draw(c.DrawCall)
		case DrawTextCommand:
			dev.DrawText(c.TextCall)
		case DrawMeshCommand:
			dev.DrawMesh(c.MeshCall)
		case ResizeCommand:
			if resizer != nil {
				resizer.Resize(c.Width, c.Height)
			}
		}
	}
	return nil
}
