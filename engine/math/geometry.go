package math

import "github.com/spaghettifunk/linmath/engine/core"

// GeometryGenerateNormals assigns each triangle's face normal to its three
// vertices. Shared vertices end up with the normal of the last triangle
// that references them.
func GeometryGenerateNormals(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)
		normal := edge1.Cross(edge2).Normalize()

		// NOTE: face normals only; smoothing is a separate pass.
		vertices[i0].Normal = normal
		vertices[i1].Normal = normal
		vertices[i2].Normal = normal
	}
}

// GeometryGenerateTangents derives per-triangle tangents from positions
// and texture coordinates, flipped by the handedness of the UV mapping.
func GeometryGenerateTangents(vertices []Vertex3D, indices []uint32) {
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]

		edge1 := vertices[i1].Position.Sub(vertices[i0].Position)
		edge2 := vertices[i2].Position.Sub(vertices[i0].Position)

		deltaU1 := vertices[i1].Texcoord.X - vertices[i0].Texcoord.X
		deltaV1 := vertices[i1].Texcoord.Y - vertices[i0].Texcoord.Y
		deltaU2 := vertices[i2].Texcoord.X - vertices[i0].Texcoord.X
		deltaV2 := vertices[i2].Texcoord.Y - vertices[i0].Texcoord.Y

		fc := 1.0 / (deltaU1*deltaV2 - deltaU2*deltaV1)
		tangent := Vec3f{
			X: fc * (deltaV2*edge1.X - deltaV1*edge2.X),
			Y: fc * (deltaV2*edge1.Y - deltaV1*edge2.Y),
			Z: fc * (deltaV2*edge1.Z - deltaV1*edge2.Z),
		}.Normalize()

		handedness := float32(1.0)
		if deltaV1*deltaU2-deltaV2*deltaU1 < 0.0 {
			handedness = -1.0
		}

		t := tangent.MulScalar(handedness)
		vertices[i0].Tangent = t
		vertices[i1].Tangent = t
		vertices[i2].Tangent = t
	}
}

func Vertex3DEqual(vert0, vert1 Vertex3D) bool {
	return vert0.Position.Compare(vert1.Position, K_FLOAT_EPSILON) &&
		vert0.Normal.Compare(vert1.Normal, K_FLOAT_EPSILON) &&
		vert0.Texcoord.Compare(vert1.Texcoord, K_FLOAT_EPSILON) &&
		vert0.Colour.Compare(vert1.Colour, K_FLOAT_EPSILON) &&
		vert0.Tangent.Compare(vert1.Tangent, K_FLOAT_EPSILON)
}

func reassignIndex(indices []uint32, from, to uint32) {
	for i, index := range indices {
		if index == from {
			indices[i] = to
		} else if index > from {
			// Pull in all indices higher than 'from' by 1.
			indices[i]--
		}
	}
}

/**
 * @brief Removes vertices that compare equal within K_FLOAT_EPSILON,
 * rewriting indices in place to point at the surviving copy.
 *
 * @return The unique vertices, in first-seen order.
 */
func GeometryDeduplicateVertices(vertices []Vertex3D, indices []uint32) []Vertex3D {
	unique := make([]Vertex3D, 0, len(vertices))
	removed := uint32(0)

	for v := range vertices {
		found := false
		for u := range unique {
			if Vertex3DEqual(vertices[v], unique[u]) {
				// indices above v were already shifted down once per removal
				reassignIndex(indices, uint32(v)-removed, uint32(u))
				found = true
				removed++
				break
			}
		}
		if !found {
			unique = append(unique, vertices[v])
		}
	}

	core.LogDebug("geometry_deduplicate_vertices: removed %d vertices, orig/now %d/%d.", removed, len(vertices), len(unique))
	return unique
}

// cubeFaces lists, per face, the outward normal and the four corners as
// signs of the half extents, wound counter-clockwise seen from outside
// when drawn as (0,1,2) and (0,3,1).
var cubeFaces = [6]struct {
	normal  Vec3f
	corners [4]Vec3f
}{
	{Vec3f{0, 0, 1}, [4]Vec3f{{-1, -1, 1}, {1, 1, 1}, {-1, 1, 1}, {1, -1, 1}}},
	{Vec3f{0, 0, -1}, [4]Vec3f{{1, -1, -1}, {-1, 1, -1}, {1, 1, -1}, {-1, -1, -1}}},
	{Vec3f{-1, 0, 0}, [4]Vec3f{{-1, -1, -1}, {-1, 1, 1}, {-1, 1, -1}, {-1, -1, 1}}},
	{Vec3f{1, 0, 0}, [4]Vec3f{{1, -1, 1}, {1, 1, -1}, {1, 1, 1}, {1, -1, -1}}},
	{Vec3f{0, -1, 0}, [4]Vec3f{{1, -1, 1}, {-1, -1, -1}, {1, -1, -1}, {-1, -1, 1}}},
	{Vec3f{0, 1, 0}, [4]Vec3f{{-1, 1, 1}, {1, 1, -1}, {-1, 1, -1}, {1, 1, 1}}},
}

/**
 * @brief Generates an axis aligned box centred on the origin with 4
 * vertices and 2 triangles per face. Zero dimensions or tiling default to
 * one with a warning.
 *
 * @return The vertices (with tangents), the indices and the extents.
 */
func GeometryGenerateCube(width, height, depth, tileX, tileY float32) ([]Vertex3D, []uint32, Extents3D) {
	dims := []*float32{&width, &height, &depth, &tileX, &tileY}
	names := []string{"width", "height", "depth", "tileX", "tileY"}
	for i, d := range dims {
		if *d == 0 {
			core.LogWarn("%s must be nonzero. Defaulting to one.", names[i])
			*d = 1
		}
	}

	half := Vec3f{X: width * 0.5, Y: height * 0.5, Z: depth * 0.5}
	uvs := [4]Vec2f{{0, 0}, {tileX, tileY}, {0, tileY}, {tileX, 0}}

	vertices := make([]Vertex3D, 0, 4*6)
	indices := make([]uint32, 0, 6*6)
	for _, face := range cubeFaces {
		base := uint32(len(vertices))
		for c, corner := range face.corners {
			vertices = append(vertices, Vertex3D{
				Position: corner.Mul(half),
				Normal:   face.normal,
				Texcoord: uvs[c],
				Colour:   NewVec4One[float32](),
			})
		}
		indices = append(indices, base, base+1, base+2, base, base+3, base+1)
	}
	GeometryGenerateTangents(vertices, indices)

	return vertices, indices, Extents3D{Min: half.Negate(), Max: half}
}
