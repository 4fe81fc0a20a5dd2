package software

import (
	"cmp"
	"image"
	"image/color"
	"image/draw"
	"slices"

	"github.com/spaghettifunk/linmath/engine/math"
	"github.com/spaghettifunk/linmath/engine/renderer/metadata"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// Uniform buffer layout, in float32 elements. Every matrix is stored
// column-major, as a GPU would receive it.
const (
	uniformMVP    = 0
	uniformNormal = 16
	uniformSize   = uniformMVP + 16 + 9
)

const ambient = float32(0.25)

type triangle struct {
	points [3]math.Vec2f
	depth  float32
	colour color.NRGBA
}

/**
 * @brief A flat shaded triangle rasterizer. Geometry is culled, shaded
 * per face and painted far to near, so only closed convex meshes are
 * guaranteed to resolve correctly without a depth buffer.
 */
type Rasterizer struct {
	width       int
	height      int
	supersample int
	background  color.NRGBA

	viewProj math.Mat4f
	viewport math.Mat3x2f
	light    math.Vec3f
	uniforms [uniformSize]float32

	triangles []triangle
	vec       *vector.Rasterizer
	canvas    *image.NRGBA
	frame     *image.NRGBA
	frames    uint64
}

func NewRasterizer(supersample int, background color.NRGBA) *Rasterizer {
	if supersample < 1 {
		supersample = 1
	}
	return &Rasterizer{
		supersample: supersample,
		background:  background,
		viewProj:    math.NewMat4Identity[float32](),
	}
}

func (r *Rasterizer) Initialize(appName string, appWidth, appHeight uint32) error {
	return r.Resized(appWidth, appHeight)
}

func (r *Rasterizer) Shutdown() error {
	r.triangles = nil
	return nil
}

func (r *Rasterizer) Resized(width, height uint32) error {
	r.width, r.height = int(width), int(height)
	w, h := r.width*r.supersample, r.height*r.supersample
	r.canvas = image.NewNRGBA(image.Rect(0, 0, w, h))
	r.frame = image.NewNRGBA(image.Rect(0, 0, r.width, r.height))
	r.vec = vector.NewRasterizer(w, h)
	// normalized device coordinates to canvas pixels, y pointing down
	r.viewport.Translation(float32(w)/2, float32(h)/2).Scale(float32(w)/2, -float32(h)/2)
	return nil
}

func (r *Rasterizer) BeginFrame(packet *metadata.RenderPacket) error {
	r.triangles = r.triangles[:0]
	packet.Projection.MulTo(packet.View, &r.viewProj)
	// shading wants the direction towards the light
	r.light = packet.LightDirection.Negate().Normalize()
	return nil
}

/**
 * @brief Uploads the model uniforms and queues the visible triangles of
 * data.Geometry.
 */
func (r *Rasterizer) DrawGeometry(data metadata.GeometryRenderData) error {
	var mvp math.Mat4f
	r.viewProj.MulTo(data.Model, &mvp)
	if err := mvp.GetFloat32(r.uniforms[:], uniformMVP); err != nil {
		return err
	}
	if err := data.Model.NormalMat3().GetFloat32(r.uniforms[:], uniformNormal); err != nil {
		return err
	}

	g := data.Geometry
	for i := 0; i+2 < len(g.Indices); i += 3 {
		var tri triangle
		var ndc [3]math.Vec3f
		var normal math.Vec3f
		visible := true
		for k := 0; k < 3; k++ {
			v := g.Vertices[g.Indices[i+k]]
			clip := mulPosition(r.uniforms[uniformMVP:uniformMVP+16], v.Position)
			if clip.W <= 0 {
				visible = false
				break
			}
			ndc[k] = clip.ToVec3().MulScalar(1 / clip.W)
			normal = normal.Add(mulNormal(r.uniforms[uniformNormal:uniformNormal+9], v.Normal))
		}
		if !visible {
			continue
		}
		// counter-clockwise in normalized device coordinates faces the camera
		e1 := ndc[1].Sub(ndc[0])
		e2 := ndc[2].Sub(ndc[0])
		if e1.X*e2.Y-e1.Y*e2.X <= 0 {
			continue
		}
		for k := range ndc {
			tri.points[k] = r.viewport.TransformPosition(math.NewVec2(ndc[k].X, ndc[k].Y))
		}
		tri.depth = (ndc[0].Z + ndc[1].Z + ndc[2].Z) / 3
		tri.colour = shade(g.Colour, normal.Normalize().Dot(r.light))
		r.triangles = append(r.triangles, tri)
	}
	return nil
}

func (r *Rasterizer) EndFrame(deltaTime float64) error {
	draw.Draw(r.canvas, r.canvas.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)

	slices.SortStableFunc(r.triangles, func(a, b triangle) int {
		return cmp.Compare(b.depth, a.depth)
	})
	w, h := r.canvas.Bounds().Dx(), r.canvas.Bounds().Dy()
	for _, tri := range r.triangles {
		r.vec.Reset(w, h)
		r.vec.MoveTo(tri.points[0].X, tri.points[0].Y)
		r.vec.LineTo(tri.points[1].X, tri.points[1].Y)
		r.vec.LineTo(tri.points[2].X, tri.points[2].Y)
		r.vec.ClosePath()
		r.vec.Draw(r.canvas, r.canvas.Bounds(), image.NewUniform(tri.colour), image.Point{})
	}

	if r.supersample == 1 {
		copy(r.frame.Pix, r.canvas.Pix)
	} else {
		var s2d math.Mat3x2f
		s := 1 / float32(r.supersample)
		s2d.Scaling(s, s)
		xdraw.CatmullRom.Transform(r.frame, s2d.F64(), r.canvas, r.canvas.Bounds(), xdraw.Src, nil)
	}
	r.frames++
	return nil
}

// Frame returns the last completed frame. The image is reused by the
// next EndFrame.
func (r *Rasterizer) Frame() *image.NRGBA {
	return r.frame
}

func (r *Rasterizer) FrameCount() uint64 {
	return r.frames
}

// TriangleCount reports how many triangles survived culling this frame.
func (r *Rasterizer) TriangleCount() int {
	return len(r.triangles)
}

// mulPosition multiplies the column-major 4x4 matrix m by (p, 1).
func mulPosition(m []float32, p math.Vec3f) math.Vec4f {
	return math.Vec4f{
		X: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		Y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		Z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
		W: m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15],
	}
}

// mulNormal multiplies the column-major 3x3 matrix m by n.
func mulNormal(m []float32, n math.Vec3f) math.Vec3f {
	return math.Vec3f{
		X: m[0]*n.X + m[3]*n.Y + m[6]*n.Z,
		Y: m[1]*n.X + m[4]*n.Y + m[7]*n.Z,
		Z: m[2]*n.X + m[5]*n.Y + m[8]*n.Z,
	}
}

func shade(base math.Vec4f, lambert float32) color.NRGBA {
	intensity := ambient + (1-ambient)*max(lambert, 0)
	channel := func(c float32) uint8 {
		return uint8(math.Clamp(c*intensity, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{
		R: channel(base.X),
		G: channel(base.Y),
		B: channel(base.Z),
		A: uint8(math.Clamp(base.W, 0, 1)*255 + 0.5),
	}
}
