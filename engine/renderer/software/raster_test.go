package software

import (
	"image/color"
	"testing"

	"github.com/spaghettifunk/linmath/engine/math"
	"github.com/spaghettifunk/linmath/engine/renderer/metadata"
)

var background = color.NRGBA{A: 255}

func cubePacket(width, height uint32, model math.Mat4f) *metadata.RenderPacket {
	packet := &metadata.RenderPacket{
		LightDirection: math.NewVec3[float32](-0.4, -1, -0.6),
		Geometries: []metadata.GeometryRenderData{{
			Model:    model,
			Geometry: metadata.NewCubeGeometry("cube", 1, 1, 1, math.NewVec4[float32](1, 1, 1, 1)),
		}},
	}
	packet.View.SetLookAt(math.NewVec3[float32](4, 3, 6), math.NewVec3Zero[float32](), math.NewVec3Up[float32]())
	packet.Projection.SetPerspective(math.DegToRad[float32](60), float32(width)/float32(height), 0.1, 100)
	return packet
}

func renderOnce(t *testing.T, r *Rasterizer, packet *metadata.RenderPacket) {
	t.Helper()
	if err := r.BeginFrame(packet); err != nil {
		t.Fatal(err)
	}
	for _, g := range packet.Geometries {
		if err := r.DrawGeometry(g); err != nil {
			t.Fatal(err)
		}
	}
	if err := r.EndFrame(packet.DeltaTime); err != nil {
		t.Fatal(err)
	}
}

func TestRasterizerDrawsVisibleFaces(t *testing.T) {
	for _, supersample := range []int{1, 2} {
		r := NewRasterizer(supersample, background)
		if err := r.Initialize("raster test", 64, 48); err != nil {
			t.Fatal(err)
		}
		renderOnce(t, r, cubePacket(64, 48, math.NewMat4Identity[float32]()))

		// Seen from a positive octant, exactly three faces face the camera.
		if got := r.TriangleCount(); got != 6 {
			t.Fatalf("supersample %d: %d triangles survived culling, want 6", supersample, got)
		}
		frame := r.Frame()
		if frame.Bounds().Dx() != 64 || frame.Bounds().Dy() != 48 {
			t.Fatalf("frame bounds %v", frame.Bounds())
		}
		if c := frame.NRGBAAt(32, 24); c == background {
			t.Fatalf("supersample %d: centre pixel is background", supersample)
		}
		if c := frame.NRGBAAt(0, 0); c != background {
			t.Fatalf("supersample %d: corner pixel %v is not background", supersample, c)
		}
		if r.FrameCount() != 1 {
			t.Fatalf("FrameCount = %d", r.FrameCount())
		}
	}
}

func TestRasterizerUniforms(t *testing.T) {
	r := NewRasterizer(1, background)
	if err := r.Initialize("raster test", 32, 32); err != nil {
		t.Fatal(err)
	}
	var model math.Mat4f
	model.Translation(0.5, 0, 0).RotateY(0.3)
	packet := cubePacket(32, 32, model)
	if err := r.BeginFrame(packet); err != nil {
		t.Fatal(err)
	}
	if err := r.DrawGeometry(packet.Geometries[0]); err != nil {
		t.Fatal(err)
	}

	var want math.Mat4f
	packet.Projection.MulTo(packet.View, &want).Mul(model)
	var got math.Mat4f
	if err := got.Set(r.uniforms[:], uniformMVP); err != nil {
		t.Fatal(err)
	}
	for col := 0; col < 4; col++ {
		a, _ := want.Column(col)
		b, _ := got.Column(col)
		if !a.Compare(b, 1e-5) {
			t.Fatalf("column %d: want %v, got %v", col, a, b)
		}
	}

	var normal math.Mat3f
	if err := normal.Set(r.uniforms[:], uniformNormal); err != nil {
		t.Fatal(err)
	}
	if !normal.Equals(model.NormalMat3()) {
		t.Fatalf("normal matrix %v, want %v", normal, model.NormalMat3())
	}
}

func TestRasterizerCullsBehindCamera(t *testing.T) {
	r := NewRasterizer(1, background)
	if err := r.Initialize("raster test", 32, 32); err != nil {
		t.Fatal(err)
	}
	var model math.Mat4f
	model.Translation(8, 6, 12)
	renderOnce(t, r, cubePacket(32, 32, model))
	if got := r.TriangleCount(); got != 0 {
		t.Fatalf("%d triangles behind the camera were kept", got)
	}
	if c := r.Frame().NRGBAAt(16, 16); c != background {
		t.Fatalf("centre pixel %v, want background", c)
	}
}

func TestShade(t *testing.T) {
	white := math.NewVec4[float32](1, 1, 1, 1)
	if c := shade(white, 1); c != (color.NRGBA{255, 255, 255, 255}) {
		t.Fatalf("fully lit: %v", c)
	}
	if c := shade(white, -1); c.R != 64 || c.A != 255 {
		t.Fatalf("unlit faces keep the ambient term: %v", c)
	}
}
