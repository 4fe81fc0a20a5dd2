package math

import (
	m "math"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI = 0.5 * K_PI
	/** @brief An approximate representation of PI divided by 4. */
	K_QUARTER_PI = 0.25 * K_PI
	/** @brief One divided by an approximate representation of PI. */
	K_ONE_OVER_PI = 1.0 / K_PI
	/** @brief One divided by half of an approximate representation of PI. */
	K_ONE_OVER_TWO_PI = 1.0 / K_PI_2
	/** @brief An approximation of the square root of 2. */
	K_SQRT_TWO = 1.41421356237309504880
	/** @brief An approximation of the square root of 3. */
	K_SQRT_THREE = 1.73205080756887729352
	/** @brief One divided by an approximation of the square root of 2. */
	K_SQRT_ONE_OVER_TWO = 0.70710678118654752440
	/** @brief One divided by an approximation of the square root of 3. */
	K_SQRT_ONE_OVER_THREE = 0.57735026918962576450
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER = 180.0 / K_PI
	/** @brief A huge number that should be larger than any valid number used. */
	K_INFINITY = 1e30
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 0 */
	K_FLOAT_EPSILON = 1.192092896e-07
	/** @brief Smallest positive number where 1.0 + DOUBLE_EPSILON != 0 */
	K_DOUBLE_EPSILON = 2.220446049250313e-16
)

/**
 * Generic wrappers around the float64 functions of the standard library.
 * The float32 instantiations round the float64 result exactly once.
 */
func Sin[T constraints.Float](x T) T {
	return T(m.Sin(float64(x)))
}

func Cos[T constraints.Float](x T) T {
	return T(m.Cos(float64(x)))
}

func Tan[T constraints.Float](x T) T {
	return T(m.Tan(float64(x)))
}

func Acos[T constraints.Float](x T) T {
	return T(m.Acos(float64(x)))
}

func Asin[T constraints.Float](x T) T {
	return T(m.Asin(float64(x)))
}

func Atan2[T constraints.Float](y, x T) T {
	return T(m.Atan2(float64(y), float64(x)))
}

func Sqrt[T constraints.Float](x T) T {
	return T(m.Sqrt(float64(x)))
}

// InvSqrt returns 1/sqrt(x). Infinite for x == 0.
func InvSqrt[T constraints.Float](x T) T {
	return T(1.0 / m.Sqrt(float64(x)))
}

func Abs[T constraints.Float](x T) T {
	return T(m.Abs(float64(x)))
}

/**
 * @brief Computes the cosine of angle from its already known sine.
 * sqrt(1 - sin^2) only yields the magnitude, the sign is taken from
 * the quadrant angle falls into.
 *
 * @param sin The sine of angle.
 * @param angle The angle in radians.
 * @return The cosine of angle.
 */
func CosFromSin[T constraints.Float](sin, angle T) T {
	cos := Sqrt(1.0 - sin*sin)
	a := float64(angle) + K_HALF_PI
	b := a - float64(int64(a/K_PI_2))*K_PI_2
	if b < 0.0 {
		b = K_PI_2 + b
	}
	if b >= K_PI {
		return -cos
	}
	return cos
}

/**
 * @brief Indicates if a and b differ by no more than tolerance.
 */
func CompareFloat[T constraints.Float](a, b, tolerance T) bool {
	return Abs(a-b) <= tolerance
}

// Lerp returns a + (b-a)*t.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

/**
 * @brief Converts provided degrees to radians.
 *
 * @param degrees The degrees to be converted.
 * @return The amount in radians.
 */
func DegToRad[T constraints.Float](degrees T) T {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 *
 * @param radians The radians to be converted.
 * @return The amount in degrees.
 */
func RadToDeg[T constraints.Float](radians T) T {
	return radians * K_RAD2DEG_MULTIPLIER
}

// RandomInRange returns a uniformly distributed value in [min, max).
func RandomInRange[T constraints.Float](r *rand.Rand, min, max T) T {
	return min + T(r.Float64())*(max-min)
}

// RandomIntInRange returns a uniformly distributed integer in [min, max].
func RandomIntInRange(r *rand.Rand, min, max int32) int32 {
	return r.Int31n(max-min+1) + min
}
