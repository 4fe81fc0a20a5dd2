package metadata

import (
	"github.com/google/uuid"
	"github.com/spaghettifunk/linmath/engine/math"
)

/** @brief The name of the default geometry. */
const DefaultGeometryName string = "default"

/**
 * @brief Represents actual geometry in the world: indexed triangles in
 * local coordinates.
 */
type Geometry struct {
	/** @brief The geometry identifier. */
	ID uuid.UUID
	/** @brief The geometry generation. Incremented every time the geometry changes. */
	Generation uint16
	/** @brief The center of the geometry in local coordinates. */
	Center math.Vec3f
	/** @brief The extents of the geometry in local coordinates. */
	Extents math.Extents3D
	/** @brief The geometry name. */
	Name string
	/** @brief Base colour, modulated by lighting. */
	Colour math.Vec4f

	Vertices []math.Vertex3D
	Indices  []uint32
}

// NewCubeGeometry builds a named box; see math.GeometryGenerateCube.
func NewCubeGeometry(name string, width, height, depth float32, colour math.Vec4f) *Geometry {
	if name == "" {
		name = DefaultGeometryName
	}
	vertices, indices, extents := math.GeometryGenerateCube(width, height, depth, 1.0, 1.0)
	return &Geometry{
		ID:       uuid.New(),
		Name:     name,
		Extents:  extents,
		Center:   extents.Min.Add(extents.Max).MulScalar(0.5),
		Colour:   colour,
		Vertices: vertices,
		Indices:  indices,
	}
}
