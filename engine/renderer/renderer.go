package renderer

import (
	"fmt"

	"github.com/spaghettifunk/linmath/engine/core"
	"github.com/spaghettifunk/linmath/engine/renderer/metadata"
)

type Renderer struct {
	backend RendererBackend
}

func New(backend RendererBackend) *Renderer {
	return &Renderer{backend: backend}
}

func (r *Renderer) Initialize(appName string, appWidth, appHeight uint32) error {
	return r.backend.Initialize(appName, appWidth, appHeight)
}

func (r *Renderer) Shutdown() error {
	return r.backend.Shutdown()
}

func (r *Renderer) OnResize(width, height uint32) error {
	return r.backend.Resized(width, height)
}

func (r *Renderer) DrawFrame(renderPacket *metadata.RenderPacket) error {
	if err := r.backend.BeginFrame(renderPacket); err != nil {
		core.LogError("%v", err)
		return err
	}
	for _, g := range renderPacket.Geometries {
		if err := r.backend.DrawGeometry(g); err != nil {
			return fmt.Errorf("draw geometry %s: %w", g.Geometry.Name, err)
		}
	}
	if err := r.backend.EndFrame(renderPacket.DeltaTime); err != nil {
		core.LogError("RendererEndFrame failed. Application shutting down...")
		return err
	}
	return nil
}
