package math

import "golang.org/x/exp/constraints"

// Vec2 represents a 2D vector
type Vec2[T constraints.Float] struct {
	X, Y T
}

// Vec3 represents a 3D vector
type Vec3[T constraints.Float] struct {
	X, Y, Z T
}

// Vec4 represents a 4D vector
type Vec4[T constraints.Float] struct {
	X, Y, Z, W T
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quat[T constraints.Float] struct {
	X, Y, Z, W T
}

/**
 * @brief A rotation of Angle radians around the axis (X, Y, Z).
 * The axis is expected to be normalized.
 */
type AxisAngle[T constraints.Float] struct {
	X, Y, Z T
	Angle   T
}

/**
 * @brief A 3x3 matrix, stored column-major. MCR is column C, row R:
 *
 *   M00 M10 M20
 *   M01 M11 M21
 *   M02 M12 M22
 */
type Mat3[T constraints.Float] struct {
	M00, M01, M02 T
	M10, M11, M12 T
	M20, M21, M22 T
}

/**
 * @brief A 3x2 matrix representing a 2D affine transformation:
 *
 *   M00 M10 M20
 *   M01 M11 M21
 *   0   0   1
 */
type Mat3x2[T constraints.Float] struct {
	M00, M01 T
	M10, M11 T
	M20, M21 T
}

/**
 * @brief A 4x3 matrix representing a 3D affine transformation. The
 * last row is implicitly (0, 0, 0, 1):
 *
 *   M00 M10 M20 M30
 *   M01 M11 M21 M31
 *   M02 M12 M22 M32
 */
type Mat4x3[T constraints.Float] struct {
	M00, M01, M02 T
	M10, M11, M12 T
	M20, M21, M22 T
	M30, M31, M32 T
}

/**
 * @brief a 4x4 matrix, typically used to represent object transformations.
 * Column-major, the same layout consumed by GPU uniform uploads.
 */
type Mat4[T constraints.Float] struct {
	M00, M01, M02, M03 T
	M10, M11, M12, M13 T
	M20, M21, M22, M23 T
	M30, M31, M32, M33 T
}

// Single precision aliases.
type (
	Vec2f      = Vec2[float32]
	Vec3f      = Vec3[float32]
	Vec4f      = Vec4[float32]
	Quatf      = Quat[float32]
	AxisAnglef = AxisAngle[float32]
	Mat3f      = Mat3[float32]
	Mat3x2f    = Mat3x2[float32]
	Mat4x3f    = Mat4x3[float32]
	Mat4f      = Mat4[float32]
)

// Double precision aliases.
type (
	Vec2d      = Vec2[float64]
	Vec3d      = Vec3[float64]
	Vec4d      = Vec4[float64]
	Quatd      = Quat[float64]
	AxisAngled = AxisAngle[float64]
	Mat3d      = Mat3[float64]
	Mat3x2d    = Mat3x2[float64]
	Mat4x3d    = Mat4x3[float64]
	Mat4d      = Mat4[float64]
)

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3f
	/** @brief The maximum extents of the object. */
	Max Vec3f
}

/**
 * @brief Represents a single vertex in 3D space.
 */
type Vertex3D struct {
	/** @brief The position of the vertex */
	Position Vec3f
	/** @brief The normal of the vertex. */
	Normal Vec3f
	/** @brief The texture coordinate of the vertex. */
	Texcoord Vec2f
	/** @brief The colour of the vertex. */
	Colour Vec4f
	/** @brief The tangent of the vertex. */
	Tangent Vec3f
}

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. NOTE: The properties of this should not
 * be edited directly, but done via the setters in transform.go
 * to ensure proper matrix generation.
 */
type Transform[T constraints.Float] struct {
	/** @brief The position in the world. */
	Position Vec3[T]
	/** @brief The rotation in the world. */
	Rotation Quat[T]
	/** @brief The scale in the world. */
	Scale Vec3[T]
	/**
	 * @brief Indicates if the position, rotation or scale have changed,
	 * indicating that the local matrix needs to be recalculated.
	 */
	IsDirty bool
	/**
	 * @brief The local transformation matrix, updated whenever
	 * the position, rotation or scale have changed.
	 */
	Local Mat4[T]
	/** @brief A pointer to a parent transform if one is assigned. Can also be nil. */
	Parent *Transform[T]
}
