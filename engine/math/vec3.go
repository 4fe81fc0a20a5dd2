package math

import "golang.org/x/exp/constraints"

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVec3[T constraints.Float](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

/**
 * @brief Returns a new vec3 containing the x, y and z components of the
 * supplied vec4, essentially dropping the w component.
 *
 * @param vector The 4-component vector to extract from.
 * @return A new vec3
 */
func NewVec3FromVec4[T constraints.Float](vector Vec4[T]) Vec3[T] {
	return Vec3[T]{vector.X, vector.Y, vector.Z}
}

/**
 * @brief Returns a new vec4 using v as the x, y and z components and w for w.
 *
 * @param w The w component.
 * @return A new vec4
 */
func (v Vec3[T]) ToVec4(w T) Vec4[T] {
	return Vec4[T]{v.X, v.Y, v.Z, w}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0.
 */
func NewVec3Zero[T constraints.Float]() Vec3[T] {
	return Vec3[T]{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0.
 */
func NewVec3One[T constraints.Float]() Vec3[T] {
	return Vec3[T]{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVec3Up[T constraints.Float]() Vec3[T] {
	return Vec3[T]{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVec3Down[T constraints.Float]() Vec3[T] {
	return Vec3[T]{0.0, -1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing left (-1, 0, 0).
 */
func NewVec3Left[T constraints.Float]() Vec3[T] {
	return Vec3[T]{-1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing right (1, 0, 0).
 */
func NewVec3Right[T constraints.Float]() Vec3[T] {
	return Vec3[T]{1.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVec3Forward[T constraints.Float]() Vec3[T] {
	return Vec3[T]{0.0, 0.0, -1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing backward (0, 0, 1).
 */
func NewVec3Back[T constraints.Float]() Vec3[T] {
	return Vec3[T]{0.0, 0.0, 1.0}
}

/**
 * @brief Adds other to v and returns a copy of the result.
 */
func (v Vec3[T]) Add(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.X + other.X,
		v.Y + other.Y,
		v.Z + other.Z}
}

/**
 * @brief Subtracts other from v and returns a copy of the result.
 */
func (v Vec3[T]) Sub(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
}

/**
 * @brief Multiplies v by other component-wise and returns a copy of the result.
 */
func (v Vec3[T]) Mul(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.X * other.X,
		v.Y * other.Y,
		v.Z * other.Z}
}

/**
 * @brief Multiplies all elements of v by scalar and returns a copy of the result.
 *
 * @param scalar The scalar value.
 * @return A copy of the resulting vector.
 */
func (v Vec3[T]) MulScalar(scalar T) Vec3[T] {
	return Vec3[T]{
		v.X * scalar,
		v.Y * scalar,
		v.Z * scalar}
}

/**
 * @brief Divides v by other component-wise and returns a copy of the result.
 */
func (v Vec3[T]) Div(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.X / other.X,
		v.Y / other.Y,
		v.Z / other.Z}
}

func (v Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{-v.X, -v.Y, -v.Z}
}

/**
 * @brief Returns the squared length of the provided vector.
 */
func (v Vec3[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec3[T]) Length() T {
	return Sqrt(v.LengthSquared())
}

/**
 * @brief Returns v scaled to unit length. A zero-length vector produces
 * NaN components; no error is reported.
 */
func (v Vec3[T]) Normalize() Vec3[T] {
	invLength := InvSqrt(v.LengthSquared())
	return Vec3[T]{
		v.X * invLength,
		v.Y * invLength,
		v.Z * invLength}
}

/**
 * @brief Returns the dot product between the provided vectors. Typically used
 * to calculate the difference in direction.
 */
func (v Vec3[T]) Dot(other Vec3[T]) T {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * @brief Calculates and returns the right-handed cross product v x other.
 * The cross product is a new vector which is orthogonal to both provided vectors.
 */
func (v Vec3[T]) Cross(other Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

// Lerp returns v + (other-v)*t.
func (v Vec3[T]) Lerp(other Vec3[T], t T) Vec3[T] {
	return Vec3[T]{
		v.X + (other.X-v.X)*t,
		v.Y + (other.Y-v.Y)*t,
		v.Z + (other.Z-v.Z)*t,
	}
}

// AngleCos returns the cosine of the angle between v and other.
func (v Vec3[T]) AngleCos(other Vec3[T]) T {
	return v.Dot(other) * InvSqrt(v.LengthSquared()*other.LengthSquared())
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec3[T]) Compare(other Vec3[T], tolerance T) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}

	if Abs(v.Y-other.Y) > tolerance {
		return false
	}

	if Abs(v.Z-other.Z) > tolerance {
		return false
	}

	return true
}

// Equals reports whether both vectors have bit-identical components.
func (v Vec3[T]) Equals(other Vec3[T]) bool {
	return bitsEqual(v.X, other.X) && bitsEqual(v.Y, other.Y) && bitsEqual(v.Z, other.Z)
}

func (v Vec3[T]) Hash() uint64 {
	return hashFloats(v.X, v.Y, v.Z)
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec3[T]) Distance(other Vec3[T]) T {
	d := Vec3[T]{
		v.X - other.X,
		v.Y - other.Y,
		v.Z - other.Z}
	return d.Length()
}
