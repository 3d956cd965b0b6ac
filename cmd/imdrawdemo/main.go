// Command imdrawdemo drives the imdraw drawing layer headlessly and
// prints what it submitted.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/imdraw"
	"github.com/gogpu/imdraw/geom"
	"github.com/gogpu/imdraw/gpucore"
	"github.com/gogpu/imdraw/label"
	"github.com/gogpu/imdraw/recording"
	"github.com/gogpu/imdraw/shader"
)

func main() {
	var (
		width   = flag.Int("width", 800, "viewport width")
		height  = flag.Int("height", 600, "viewport height")
		device  = flag.String("device", "recording", "device name ("+strings.Join(gpucore.Devices(), ", ")+")")
		frames  = flag.Int("frames", 3, "number of frames to draw")
		verbose = flag.Bool("v", false, "log resource lifecycle to stderr")
	)
	flag.Parse()

	if *verbose {
		imdraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	dev, err := gpucore.NewDevice(*device)
	if err != nil {
		log.Fatalf("Failed to create device: %v", err)
	}

	ctx := imdraw.NewContext(*width, *height, imdraw.WithDevice(dev), imdraw.WithOutput(os.Stdout))
	defer ctx.Close()

	cam, err := ctx.CreateCamera("orbit")
	if err != nil {
		log.Fatalf("Failed to create camera: %v", err)
	}
	if err := ctx.SetCameraNamed("orbit"); err != nil {
		log.Fatalf("Failed to select camera: %v", err)
	}

	origin := mgl32.Vec3{}
	ctx.NewLabel(label.Static("origin"), label.At(&origin), label.Up, 6)
	frame := 0
	ctx.NewLabel(label.Dynamic(func() string {
		return fmt.Sprintf("frame %d", frame)
	}), label.Screen(10, 10), label.Right, 0)

	for frame = range *frames {
		angle := float32(frame) * math.Pi / 8
		cam.LookAt(mgl32.Vec3{10 * sin(angle), 4, 10 * cos(angle)}, origin, mgl32.Vec3{0, 1, 0})
		drawFrame(ctx)
	}

	if rec, ok := dev.(*recording.Recorder); ok {
		summarize(ctx, rec)
	}
	log.Printf("Drew %d frames on %q (%dx%d)\n", *frames, *device, *width, *height)
}

func drawFrame(ctx *imdraw.Context) {
	ctx.Clear(imdraw.Gray(0.1))

	// Rotated squares
	for i := range 8 {
		ctx.Push()
		ctx.RotateY(float32(i) * math.Pi / 4)
		ctx.Translate(3, 0, 0)
		ctx.Fill(imdraw.HSL(float32(i)*45, 0.8, 0.6))
		ctx.Rect(-0.5, -0.5, 1, 1)
		_ = ctx.Pop()
	}

	// One point per shape along the X axis
	ctx.NoStroke()
	_ = ctx.PointSize(12)
	for i, shape := range []shader.PointShape{shader.Square, shader.SquareOutline, shader.Dot, shader.DotOutline, shader.Cross, shader.X} {
		ctx.PointShape(shape)
		ctx.Points([]mgl32.Vec3{{float32(i) - 2.5, 2, 0}})
	}
	ctx.Stroke(imdraw.White)

	// Bounding box around the ring
	_ = ctx.StrokeWeight(2)
	ctx.LineBoundingBox(geom.NewBoundingBox(mgl32.Vec3{-3.5, -0.5, -3.5}, mgl32.Vec3{3.5, 0.5, 3.5}))

	ctx.Labels()
}

func summarize(ctx *imdraw.Context, rec *recording.Recorder) {
	counts := make(map[recording.CommandType]int)
	for _, cmd := range rec.Commands() {
		counts[cmd.Type()]++
	}
	for _, t := range []recording.CommandType{
		recording.CmdResize, recording.CmdClear, recording.CmdDraw, recording.CmdDrawText, recording.CmdDrawMesh,
	} {
		ctx.Print(fmt.Sprintf("%-9s %d", t, counts[t]))
	}
}

func sin(a float32) float32 { return float32(math.Sin(float64(a))) }
func cos(a float32) float32 { return float32(math.Cos(float64(a))) }
