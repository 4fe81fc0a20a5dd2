package math

import "golang.org/x/exp/constraints"

/**
 * @brief Creates and returns a new 2-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @return A new 2-element vector.
 */
func NewVec2[T constraints.Float](x, y T) Vec2[T] {
	return Vec2[T]{
		X: x,
		Y: y,
	}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 0.0.
 */
func NewVec2Zero[T constraints.Float]() Vec2[T] {
	return Vec2[T]{X: 0.0, Y: 0.0}
}

/**
 * @brief Creates and returns a 2-component vector with all components set to 1.0.
 */
func NewVec2One[T constraints.Float]() Vec2[T] {
	return Vec2[T]{1.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing up (0, 1).
 */
func NewVec2Up[T constraints.Float]() Vec2[T] {
	return Vec2[T]{0.0, 1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing down (0, -1).
 */
func NewVec2Down[T constraints.Float]() Vec2[T] {
	return Vec2[T]{0.0, -1.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing left (-1, 0).
 */
func NewVec2Left[T constraints.Float]() Vec2[T] {
	return Vec2[T]{-1.0, 0.0}
}

/**
 * @brief Creates and returns a 2-component vector pointing right (1, 0).
 */
func NewVec2Right[T constraints.Float]() Vec2[T] {
	return Vec2[T]{1.0, 0.0}
}

/**
 *  Adds other to v and returns a copy of the result.
 */
func (v Vec2[T]) Add(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X + other.X, v.Y + other.Y}
}

/**
 * Subtracts other from v and returns a copy of the result.
 */
func (v Vec2[T]) Sub(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X - other.X, v.Y - other.Y}
}

/**
 *  Multiplies v by other and returns a copy of the result.
 */
func (v Vec2[T]) Mul(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X * other.X, v.Y * other.Y}
}

func (v Vec2[T]) MulScalar(scalar T) Vec2[T] {
	return Vec2[T]{v.X * scalar, v.Y * scalar}
}

/**
 * Divides v by other and returns a copy of the result.
 */
func (v Vec2[T]) Div(other Vec2[T]) Vec2[T] {
	return Vec2[T]{v.X / other.X, v.Y / other.Y}
}

func (v Vec2[T]) Negate() Vec2[T] {
	return Vec2[T]{-v.X, -v.Y}
}

func (v Vec2[T]) Dot(other Vec2[T]) T {
	return v.X*other.X + v.Y*other.Y
}

/**
 * Returns the squared length of the provided vector.
 */
func (v Vec2[T]) LengthSquared() T {
	return v.X*v.X + v.Y*v.Y
}

/**
 * @brief Returns the length of the provided vector.
 */
func (v Vec2[T]) Length() T {
	return Sqrt(v.LengthSquared())
}

/**
 * Returns v scaled to unit length. A zero vector yields NaN components.
 */
func (v Vec2[T]) Normalize() Vec2[T] {
	invLength := InvSqrt(v.LengthSquared())
	return Vec2[T]{v.X * invLength, v.Y * invLength}
}

// Lerp returns v + (other-v)*t.
func (v Vec2[T]) Lerp(other Vec2[T], t T) Vec2[T] {
	return Vec2[T]{
		v.X + (other.X-v.X)*t,
		v.Y + (other.Y-v.Y)*t,
	}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is less than tolerance.
 *
 * @param other The second vector.
 * @param tolerance The difference tolerance. Typically K_FLOAT_EPSILON or similar.
 * @return True if within tolerance; otherwise false.
 */
func (v Vec2[T]) Compare(other Vec2[T], tolerance T) bool {
	if Abs(v.X-other.X) > tolerance {
		return false
	}
	if Abs(v.Y-other.Y) > tolerance {
		return false
	}
	return true
}

// Equals reports whether both vectors have bit-identical components.
func (v Vec2[T]) Equals(other Vec2[T]) bool {
	return bitsEqual(v.X, other.X) && bitsEqual(v.Y, other.Y)
}

func (v Vec2[T]) Hash() uint64 {
	return hashFloats(v.X, v.Y)
}

/**
 * @brief Returns the distance between v and other.
 */
func (v Vec2[T]) Distance(other Vec2[T]) T {
	d := Vec2[T]{
		v.X - other.X,
		v.Y - other.Y}
	return d.Length()
}
