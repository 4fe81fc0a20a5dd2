package renderer

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spaghettifunk/linmath/engine/core"
	"github.com/spaghettifunk/linmath/engine/math"
	"github.com/spaghettifunk/linmath/engine/renderer/metadata"
)

type recordingBackend struct {
	calls    []string
	beginErr error
	drawErr  error
}

func (b *recordingBackend) Initialize(string, uint32, uint32) error {
	b.calls = append(b.calls, "init")
	return nil
}

func (b *recordingBackend) Shutdown() error {
	b.calls = append(b.calls, "shutdown")
	return nil
}

func (b *recordingBackend) Resized(uint32, uint32) error {
	b.calls = append(b.calls, "resize")
	return nil
}

func (b *recordingBackend) BeginFrame(*metadata.RenderPacket) error {
	b.calls = append(b.calls, "begin")
	return b.beginErr
}

func (b *recordingBackend) DrawGeometry(data metadata.GeometryRenderData) error {
	b.calls = append(b.calls, "draw "+data.Geometry.Name)
	return b.drawErr
}

func (b *recordingBackend) EndFrame(float64) error {
	b.calls = append(b.calls, "end")
	return nil
}

func packetWith(names ...string) *metadata.RenderPacket {
	p := &metadata.RenderPacket{}
	for _, n := range names {
		p.Geometries = append(p.Geometries, metadata.GeometryRenderData{
			Model:    math.NewMat4Identity[float32](),
			Geometry: metadata.NewCubeGeometry(n, 1, 1, 1, math.NewVec4One[float32]()),
		})
	}
	return p
}

func TestDrawFrameOrder(t *testing.T) {
	b := &recordingBackend{}
	r := New(b)
	if err := r.Initialize("test", 4, 4); err != nil {
		t.Fatal(err)
	}
	if err := r.OnResize(8, 8); err != nil {
		t.Fatal(err)
	}
	if err := r.DrawFrame(packetWith("a", "b")); err != nil {
		t.Fatal(err)
	}
	if err := r.Shutdown(); err != nil {
		t.Fatal(err)
	}

	want := []string{"init", "resize", "begin", "draw a", "draw b", "end", "shutdown"}
	if len(b.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", b.calls, want)
	}
	for i := range want {
		if b.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", b.calls, want)
		}
	}
}

func TestDrawFrameStopsOnError(t *testing.T) {
	errDraw := errors.New("draw failed")
	b := &recordingBackend{drawErr: errDraw}
	err := New(b).DrawFrame(packetWith("a", "b"))
	if !errors.Is(err, errDraw) {
		t.Fatalf("DrawFrame error = %v", err)
	}
	if last := b.calls[len(b.calls)-1]; last != "draw a" {
		t.Fatalf("calls = %v, expected to stop after the first draw", b.calls)
	}
}

func TestDrawFrameLogsBeginError(t *testing.T) {
	var buf bytes.Buffer
	core.SetLogOutput(&buf)
	defer core.SetLogOutput(os.Stderr)

	errBegin := errors.New("swapchain 100% busy")
	b := &recordingBackend{beginErr: errBegin}
	if err := New(b).DrawFrame(packetWith("a")); !errors.Is(err, errBegin) {
		t.Fatalf("DrawFrame error = %v", err)
	}
	if len(b.calls) != 1 {
		t.Fatalf("calls = %v, expected to stop at begin", b.calls)
	}
	if !strings.Contains(buf.String(), "swapchain 100% busy") {
		t.Fatalf("log output %q does not carry the error verbatim", buf.String())
	}
}
