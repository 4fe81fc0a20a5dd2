package testbed

import (
	"fmt"
	"image/color"
	"sync"

	"github.com/google/uuid"
	"github.com/spaghettifunk/linmath/engine"
	"github.com/spaghettifunk/linmath/engine/core"
	"github.com/spaghettifunk/linmath/engine/math"
	"github.com/spaghettifunk/linmath/engine/renderer"
	"github.com/spaghettifunk/linmath/engine/renderer/components"
	"github.com/spaghettifunk/linmath/engine/renderer/metadata"
	"github.com/spaghettifunk/linmath/engine/renderer/software"
)

type TestGame struct {
	*engine.Game
}

type sceneObject struct {
	ID        uuid.UUID
	Geometry  *metadata.Geometry
	Transform *math.Transform[float32]
	// Spin is applied to the transform every frame.
	Spin math.Quatf
}

type gameState struct {
	mutex sync.Mutex

	runID       uuid.UUID
	scene       engine.SceneConfig
	format      software.Format
	outputDir   string
	WorldCamera *components.Camera
	projection  math.Mat4f

	rasterizer *software.Rasterizer
	renderer   *renderer.Renderer
	objects    []*sceneObject

	width  uint32
	height uint32
}

func NewTestGame(cfg *engine.Config) (*TestGame, error) {
	format, err := software.ParseFormat(cfg.Application.Format)
	if err != nil {
		return nil, err
	}
	raster := software.NewRasterizer(cfg.Application.Supersample, color.NRGBA{R: 24, G: 26, B: 33, A: 255})
	state := &gameState{
		runID:       uuid.New(),
		scene:       cfg.Scene,
		format:      format,
		outputDir:   cfg.Application.OutputDir,
		WorldCamera: components.NewCamera(),
		rasterizer:  raster,
		renderer:    renderer.New(raster),
	}
	tg := &TestGame{
		Game: &engine.Game{
			Config: cfg,
			State:  state,
		},
	}

	tg.FnInitialize = tg.Initialize
	tg.FnUpdate = tg.Update
	tg.FnRender = tg.Render
	tg.FnOnResize = tg.OnResize
	tg.FnShutdown = tg.Shutdown

	return tg, nil
}

func (g *TestGame) state() *gameState {
	return g.State.(*gameState)
}

func (g *TestGame) Initialize() error {
	state := g.state()
	core.LogInfo("testbed run %s: %s", state.runID, g.Config.Application.Name)

	if err := state.renderer.Initialize(g.Config.Application.Name, g.Config.Application.Width, g.Config.Application.Height); err != nil {
		return err
	}

	// A spinning cube with a smaller cube orbiting it as a child, and a
	// third cube parented to the second.
	parent := &sceneObject{
		ID:        uuid.New(),
		Geometry:  metadata.NewCubeGeometry("test_cube", 2, 2, 2, math.NewVec4[float32](0.85, 0.45, 0.2, 1)),
		Transform: math.TransformCreate[float32](),
	}
	child := &sceneObject{
		ID:        uuid.New(),
		Geometry:  metadata.NewCubeGeometry("test_cube_2", 1, 1, 1, math.NewVec4[float32](0.2, 0.6, 0.85, 1)),
		Transform: math.TransformFromPosition(math.NewVec3[float32](2.5, 0, 0)),
	}
	child.Transform.Parent = parent.Transform
	grandchild := &sceneObject{
		ID:        uuid.New(),
		Geometry:  metadata.NewCubeGeometry("test_cube_3", 0.5, 0.5, 0.5, math.NewVec4[float32](0.4, 0.85, 0.3, 1)),
		Transform: math.TransformFromPositionRotationScale(math.NewVec3[float32](1.25, 0, 0), math.NewQuatIdentity[float32](), math.NewVec3[float32](0.8, 0.8, 0.8)),
	}
	grandchild.Transform.Parent = child.Transform

	state.mutex.Lock()
	defer state.mutex.Unlock()
	state.objects = []*sceneObject{parent, child, grandchild}
	state.applyScene()
	return nil
}

// ApplyScene swaps in a new scene configuration. It may be called from
// any goroutine; the change is picked up by the next frame.
func (g *TestGame) ApplyScene(scene engine.SceneConfig) {
	state := g.state()
	state.mutex.Lock()
	defer state.mutex.Unlock()
	state.scene = scene
	state.applyScene()
	core.LogInfo("scene reloaded")
}

// applyScene must be called with the mutex held.
func (s *gameState) applyScene() {
	s.WorldCamera.SetPosition(vec3(s.scene.Eye))
	s.WorldCamera.LookAt(vec3(s.scene.Target), vec3(s.scene.Up))

	speed := math.DegToRad(s.scene.RotationSpeed)
	for i, obj := range s.objects {
		obj.Spin = math.NewQuatRotationY(speed * float32(i+1))
	}
	if len(s.objects) > 0 {
		scale := s.scene.Scale
		s.objects[0].Transform.SetScale(math.NewVec3(scale, scale, scale))
	}
	s.updateProjection()
}

func (s *gameState) updateProjection() {
	if s.height == 0 {
		return
	}
	aspect := float32(s.width) / float32(s.height)
	s.projection.SetPerspective(math.DegToRad(s.scene.FovY), aspect, s.scene.Near, s.scene.Far)
}

func (g *TestGame) Update(deltaTime float64) error {
	state := g.state()
	state.mutex.Lock()
	defer state.mutex.Unlock()
	for _, obj := range state.objects {
		obj.Transform.Rotate(obj.Spin)
	}
	return nil
}

func (g *TestGame) Render(frame int, deltaTime float64) error {
	state := g.state()
	state.mutex.Lock()
	packet := &metadata.RenderPacket{
		DeltaTime:      deltaTime,
		View:           state.WorldCamera.GetView(),
		Projection:     state.projection,
		LightDirection: vec3(state.scene.LightDirection),
		Geometries:     make([]metadata.GeometryRenderData, 0, len(state.objects)),
	}
	for _, obj := range state.objects {
		packet.Geometries = append(packet.Geometries, metadata.GeometryRenderData{
			Model:    obj.Transform.GetWorld(),
			Geometry: obj.Geometry,
		})
	}
	state.mutex.Unlock()

	if err := state.renderer.DrawFrame(packet); err != nil {
		return err
	}
	path, err := software.WriteFrame(state.outputDir, frame, state.rasterizer.Frame(), state.format)
	if err != nil {
		return fmt.Errorf("write frame %d: %w", frame, err)
	}
	core.LogDebug("frame %d: %d triangles -> %s", frame, state.rasterizer.TriangleCount(), path)
	return nil
}

func (g *TestGame) OnResize(width uint32, height uint32) error {
	state := g.state()
	state.mutex.Lock()
	defer state.mutex.Unlock()
	state.width, state.height = width, height
	state.updateProjection()
	return state.renderer.OnResize(width, height)
}

func (g *TestGame) Shutdown() error {
	core.LogInfo("testbed run %s finished", g.state().runID)
	return g.state().renderer.Shutdown()
}

func vec3(a [3]float32) math.Vec3f {
	return math.NewVec3(a[0], a[1], a[2])
}
