package math

import "testing"

func TestGeometryGenerateCube(t *testing.T) {
	vertices, indices, extents := GeometryGenerateCube(2, 3, 4, 1, 1)
	if len(vertices) != 24 || len(indices) != 36 {
		t.Fatalf("got %d vertices and %d indices", len(vertices), len(indices))
	}
	assertVec3Equal(t, NewVec3[float32](-1, -1.5, -2), extents.Min, 0)
	assertVec3Equal(t, NewVec3[float32](1, 1.5, 2), extents.Max, 0)

	for i, v := range vertices {
		if v.Position.X < extents.Min.X || v.Position.Y < extents.Min.Y || v.Position.Z < extents.Min.Z ||
			v.Position.X > extents.Max.X || v.Position.Y > extents.Max.Y || v.Position.Z > extents.Max.Z {
			t.Fatalf("vertex %d at %v lies outside the extents", i, v.Position)
		}
		assertFloatEqual(t, "tangent length", 1, v.Tangent.Length(), eps32)
		assertFloatEqual(t, "tangent.normal", 0, v.Tangent.Dot(v.Normal), eps32)
		// Every vertex sits on the face its normal points out of.
		assertFloatEqual(t, "face offset", extents.Max.Dot(v.Normal.Mul(v.Normal)), v.Position.Dot(v.Normal), 0)
	}

	// Recomputing normals from the winding reproduces the outward normals.
	generated := append([]Vertex3D(nil), vertices...)
	GeometryGenerateNormals(generated, indices)
	for i := range vertices {
		assertVec3Equal(t, vertices[i].Normal, generated[i].Normal, eps32)
	}
}

func TestGeometryGenerateCubeDefaultsZero(t *testing.T) {
	vertices, _, extents := GeometryGenerateCube(0, 2, 0, 0, 3)
	assertVec3Equal(t, NewVec3[float32](-0.5, -1, -0.5), extents.Min, 0)
	assertVec3Equal(t, NewVec3[float32](0.5, 1, 0.5), extents.Max, 0)

	var maxU, maxV float32
	for _, v := range vertices {
		maxU = max(maxU, v.Texcoord.X)
		maxV = max(maxV, v.Texcoord.Y)
	}
	if maxU != 1 || maxV != 3 {
		t.Fatalf("texture tiling: max uv = (%v, %v)", maxU, maxV)
	}
}

func TestGeometryDeduplicateVertices(t *testing.T) {
	a := Vertex3D{Position: NewVec3[float32](0, 0, 0)}
	b := Vertex3D{Position: NewVec3[float32](1, 0, 0)}
	c := Vertex3D{Position: NewVec3[float32](1, 1, 0)}
	d := Vertex3D{Position: NewVec3[float32](0, 1, 0)}

	// Two triangles of a quad, each carrying its own copies.
	vertices := []Vertex3D{a, b, c, a, c, d}
	indices := []uint32{0, 1, 2, 3, 4, 5}

	unique := GeometryDeduplicateVertices(vertices, indices)
	if len(unique) != 4 {
		t.Fatalf("got %d unique vertices", len(unique))
	}
	want := []uint32{0, 1, 2, 0, 2, 3}
	for i := range want {
		if indices[i] != want[i] {
			t.Fatalf("indices = %v, want %v", indices, want)
		}
	}
	for i, v := range []Vertex3D{a, b, c, d} {
		if !Vertex3DEqual(v, unique[i]) {
			t.Fatalf("unique[%d] = %+v", i, unique[i])
		}
	}

	nudged := a
	nudged.Position.X += K_FLOAT_EPSILON / 2
	if !Vertex3DEqual(a, nudged) {
		t.Fatal("vertices within K_FLOAT_EPSILON should be equal")
	}
	nudged.Texcoord.Y = 0.5
	if Vertex3DEqual(a, nudged) {
		t.Fatal("differing texcoords should not be equal")
	}
}
