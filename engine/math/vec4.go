package math

import "golang.org/x/exp/constraints"

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVec4[T constraints.Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of v,
 * essentially dropping the w component.
 */
func (v Vec4[T]) ToVec3() Vec3[T] {
	return Vec3[T]{v.X, v.Y, v.Z}
}

/**
 * @brief Returns a new vec4 using v as the x, y and z components and w for w.
 */
func NewVec4FromVec3[T constraints.Float](v Vec3[T], w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 0.0.
 */
func NewVec4Zero[T constraints.Float]() Vec4[T] {
	return Vec4[T]{0.0, 0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 4-component vector with all components set to 1.0.
 */
func NewVec4One[T constraints.Float]() Vec4[T] {
	return Vec4[T]{1.0, 1.0, 1.0, 1.0}
}

func (v Vec4[T]) Add(other Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
		W: v.W + other.W,
	}
}

func (v Vec4[T]) Sub(other Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
		W: v.W - other.W,
	}
}

func (v Vec4[T]) Mul(other Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: v.X * other.X,
		Y: v.Y * other.Y,
		Z: v.Z * other.Z,
		W: v.W * other.W,
	}
}

func (v Vec4[T]) MulScalar(scalar T) Vec4[T] {
	return Vec4[T]{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

func (v Vec4[T]) Div(other Vec4[T]) Vec4[T] {
	return Vec4[T]{
		X: v.X / other.X,
		Y: v.Y / other.Y,
		Z: v.Z / other.Z,
		W: v.W / other.W,
	}
}

func (v Vec4[T]) Negate() Vec4[T] {
	return Vec4[T]{-v.X, -v.Y, -v.Z, -v.W}
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec4[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec4[T]) Length() T {
	return Sqrt(v.LengthSquared())
}

/**
 * @brief Returns v scaled to unit length. NaN for a zero vector.
 */
func (v Vec4[T]) Normalize() Vec4[T] {
	invLength := InvSqrt(v.LengthSquared())
	return Vec4[T]{
		v.X * invLength,
		v.Y * invLength,
		v.Z * invLength,
		v.W * invLength}
}

func (v Vec4[T]) Dot(other Vec4[T]) T {
	return Vec4Dot(v.X, v.Y, v.Z, v.W, other.X, other.Y, other.Z, other.W)
}

/**
 * @brief Calculates the dot product using the elements of vec4s provided in split-out format.
 */
func Vec4Dot[T constraints.Float](a0, a1, a2, a3, b0, b1, b2, b3 T) T {
	p := a0*b0 + a1*b1 + a2*b2 + a3*b3
	return p
}

// Lerp returns v + (other-v)*t.
func (v Vec4[T]) Lerp(other Vec4[T], t T) Vec4[T] {
	return Vec4[T]{
		v.X + (other.X-v.X)*t,
		v.Y + (other.Y-v.Y)*t,
		v.Z + (other.Z-v.Z)*t,
		v.W + (other.W-v.W)*t,
	}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 */
func (v Vec4[T]) Compare(other Vec4[T], tolerance T) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}

	if Abs(v.Y-other.Y) > tolerance {
		return false
	}

	if Abs(v.Z-other.Z) > tolerance {
		return false
	}

	if Abs(v.W-other.W) > tolerance {
		return false
	}

	return true
}

func (v Vec4[T]) Equals(other Vec4[T]) bool {
	return bitsEqual(v.X, other.X) && bitsEqual(v.Y, other.Y) &&
		bitsEqual(v.Z, other.Z) && bitsEqual(v.W, other.W)
}

func (v Vec4[T]) Hash() uint64 {
	return hashFloats(v.X, v.Y, v.Z, v.W)
}
