package renderer

import "github.com/spaghettifunk/linmath/engine/renderer/metadata"

type RendererBackend interface {
	Initialize(appName string, appWidth, appHeight uint32) error
	Shutdown() error
	Resized(width, height uint32) error
	BeginFrame(packet *metadata.RenderPacket) error
	DrawGeometry(data metadata.GeometryRenderData) error
	EndFrame(deltaTime float64) error
}
