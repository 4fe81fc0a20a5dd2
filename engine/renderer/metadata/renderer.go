package metadata

import (
	"github.com/spaghettifunk/linmath/engine/math"
)

/**
 * @brief Everything needed to draw one frame.
 */
type RenderPacket struct {
	DeltaTime float64
	/** @brief The world to camera transform. */
	View math.Mat4f
	/** @brief The camera to clip space transform. */
	Projection math.Mat4f
	/** @brief Direction the light travels, in world space. */
	LightDirection math.Vec3f
	/** @brief The Geometries to be drawn. */
	Geometries []GeometryRenderData
}

type GeometryRenderData struct {
	Model    math.Mat4f
	Geometry *Geometry
}
