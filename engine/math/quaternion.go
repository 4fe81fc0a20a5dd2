package math

import "golang.org/x/exp/constraints"

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuatIdentity[T constraints.Float]() Quat[T] {
	return Quat[T]{0, 0, 0, 1.0}
}

func NewQuat[T constraints.Float](x, y, z, w T) Quat[T] {
	return Quat[T]{x, y, z, w}
}

/**
 * @brief Creates a quaternion rotating angle radians about axis. The axis
 * is normalized first.
 *
 * @param axis The axis of rotation.
 * @param angle The angle of rotation.
 * @return A new quaternion.
 */
func NewQuatFromAxisAngle[T constraints.Float](axis Vec3[T], angle T) Quat[T] {
	n := axis.Normalize()
	halfAngle := 0.5 * angle
	s := Sin(halfAngle)
	c := CosFromSin(s, halfAngle)
	return Quat[T]{s * n.X, s * n.Y, s * n.Z, c}
}

func NewQuatRotationX[T constraints.Float](angle T) Quat[T] {
	s := Sin(angle * 0.5)
	return Quat[T]{s, 0, 0, CosFromSin(s, angle*0.5)}
}

func NewQuatRotationY[T constraints.Float](angle T) Quat[T] {
	s := Sin(angle * 0.5)
	return Quat[T]{0, s, 0, CosFromSin(s, angle*0.5)}
}

func NewQuatRotationZ[T constraints.Float](angle T) Quat[T] {
	s := Sin(angle * 0.5)
	return Quat[T]{0, 0, s, CosFromSin(s, angle*0.5)}
}

// NewQuatRotationXYZ matches Mat3.RotationXYZ: X first, then the local Y,
// then the local Z.
func NewQuatRotationXYZ[T constraints.Float](angleX, angleY, angleZ T) Quat[T] {
	return NewQuatRotationX(angleX).Mul(NewQuatRotationY(angleY)).Mul(NewQuatRotationZ(angleZ))
}

// NewQuatRotationZYX matches Mat3.RotationZYX.
func NewQuatRotationZYX[T constraints.Float](angleZ, angleY, angleX T) Quat[T] {
	return NewQuatRotationZ(angleZ).Mul(NewQuatRotationY(angleY)).Mul(NewQuatRotationX(angleX))
}

// NewQuatRotationYXZ matches Mat3.RotationYXZ.
func NewQuatRotationYXZ[T constraints.Float](angleY, angleX, angleZ T) Quat[T] {
	return NewQuatRotationY(angleY).Mul(NewQuatRotationX(angleX)).Mul(NewQuatRotationZ(angleZ))
}

/**
 * @brief Extracts the rotation of a matrix whose columns have unit length.
 */
func QuatFromMat3[T constraints.Float](m Mat3[T]) Quat[T] {
	return quatFromRotation(m.M00, m.M01, m.M02, m.M10, m.M11, m.M12, m.M20, m.M21, m.M22)
}

// QuatFromMat3Unnormalized extracts the rotation of m, ignoring any scale.
func QuatFromMat3Unnormalized[T constraints.Float](m Mat3[T]) Quat[T] {
	return quatFromScaledRotation(m.M00, m.M01, m.M02, m.M10, m.M11, m.M12, m.M20, m.M21, m.M22)
}

func QuatFromMat4[T constraints.Float](m Mat4[T]) Quat[T] {
	return quatFromRotation(m.M00, m.M01, m.M02, m.M10, m.M11, m.M12, m.M20, m.M21, m.M22)
}

func QuatFromMat4Unnormalized[T constraints.Float](m Mat4[T]) Quat[T] {
	return quatFromScaledRotation(m.M00, m.M01, m.M02, m.M10, m.M11, m.M12, m.M20, m.M21, m.M22)
}

func QuatFromMat4x3[T constraints.Float](m Mat4x3[T]) Quat[T] {
	return quatFromRotation(m.M00, m.M01, m.M02, m.M10, m.M11, m.M12, m.M20, m.M21, m.M22)
}

func QuatFromMat4x3Unnormalized[T constraints.Float](m Mat4x3[T]) Quat[T] {
	return quatFromScaledRotation(m.M00, m.M01, m.M02, m.M10, m.M11, m.M12, m.M20, m.M21, m.M22)
}

func quatFromScaledRotation[T constraints.Float](m00, m01, m02, m10, m11, m12, m20, m21, m22 T) Quat[T] {
	lenX := InvSqrt(m00*m00 + m01*m01 + m02*m02)
	lenY := InvSqrt(m10*m10 + m11*m11 + m12*m12)
	lenZ := InvSqrt(m20*m20 + m21*m21 + m22*m22)
	return quatFromRotation(
		m00*lenX, m01*lenX, m02*lenX,
		m10*lenY, m11*lenY, m12*lenY,
		m20*lenZ, m21*lenZ, m22*lenZ)
}

// quatFromRotation branches on the trace, falling back to the largest
// diagonal element to keep the square root argument away from zero.
func quatFromRotation[T constraints.Float](m00, m01, m02, m10, m11, m12, m20, m21, m22 T) Quat[T] {
	var q Quat[T]
	tr := m00 + m11 + m22
	if tr >= 0 {
		t := Sqrt(tr + 1.0)
		q.W = t * 0.5
		t = 0.5 / t
		q.X = (m12 - m21) * t
		q.Y = (m20 - m02) * t
		q.Z = (m01 - m10) * t
	} else if m00 >= m11 && m00 >= m22 {
		t := Sqrt(m00 - (m11 + m22) + 1.0)
		q.X = t * 0.5
		t = 0.5 / t
		q.Y = (m10 + m01) * t
		q.Z = (m02 + m20) * t
		q.W = (m12 - m21) * t
	} else if m11 > m22 {
		t := Sqrt(m11 - (m22 + m00) + 1.0)
		q.Y = t * 0.5
		t = 0.5 / t
		q.Z = (m21 + m12) * t
		q.X = (m10 + m01) * t
		q.W = (m20 - m02) * t
	} else {
		t := Sqrt(m22 - (m00 + m11) + 1.0)
		q.Z = t * 0.5
		t = 0.5 / t
		q.X = (m20 + m02) * t
		q.Y = (m21 + m12) * t
		q.W = (m01 - m10) * t
	}
	return q
}

// ConvertQuat changes the precision of a quaternion.
func ConvertQuat[U, T constraints.Float](q Quat[T]) Quat[U] {
	return Quat[U]{U(q.X), U(q.Y), U(q.Z), U(q.W)}
}

func (q Quat[T]) LengthSquared() T {
	return q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W
}

/**
 * @brief Returns the length (norm) of the quaternion.
 */
func (q Quat[T]) Length() T {
	return Sqrt(q.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 *
 * @param q The quaternion to normalize.
 * @return A normalized copy of the provided quaternion.
 */
func (q Quat[T]) Normalize() Quat[T] {
	invNorm := InvSqrt(q.LengthSquared())
	return Quat[T]{
		q.X * invNorm,
		q.Y * invNorm,
		q.Z * invNorm,
		q.W * invNorm}
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 *
 * @param q The quaternion to obtain a conjugate of.
 * @return The conjugate quaternion.
 */
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{-q.X, -q.Y, -q.Z, q.W}
}

/**
 * @brief Returns the inverse of the quaternion, its conjugate divided by
 * the squared norm. Works for non-unit quaternions.
 */
func (q Quat[T]) Invert() Quat[T] {
	invNorm := 1.0 / q.LengthSquared()
	return Quat[T]{-q.X * invNorm, -q.Y * invNorm, -q.Z * invNorm, q.W * invNorm}
}

/**
 * @brief Multiplies the provided quaternions. The rotation of other is
 * applied first, then q.
 *
 * @param other The right operand.
 * @return The multiplied quaternion.
 */
func (q Quat[T]) Mul(other Quat[T]) Quat[T] {
	return Quat[T]{
		X: q.W*other.X + q.X*other.W + q.Y*other.Z - q.Z*other.Y,
		Y: q.W*other.Y - q.X*other.Z + q.Y*other.W + q.Z*other.X,
		Z: q.W*other.Z + q.X*other.Y - q.Y*other.X + q.Z*other.W,
		W: q.W*other.W - q.X*other.X - q.Y*other.Y - q.Z*other.Z,
	}
}

// PreMul returns other * q: q is applied first, then other.
func (q Quat[T]) PreMul(other Quat[T]) Quat[T] {
	return other.Mul(q)
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 */
func (q Quat[T]) Dot(other Quat[T]) T {
	return q.X*other.X +
		q.Y*other.Y +
		q.Z*other.Z +
		q.W*other.W
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions.
 *
 * @param other The target quaternion.
 * @param percentage The percentage of interpolation, typically a value from 0.0f-1.0f.
 * @return An interpolated quaternion.
 */
func (q Quat[T]) Slerp(other Quat[T], percentage T) Quat[T] {
	// Only unit quaternions are valid rotations.
	v0 := q.Normalize()
	v1 := other.Normalize()

	dot := v0.Dot(v1)

	// v1 and -v1 are the same rotation; negate to take the shorter arc.
	if dot < 0.0 {
		v1 = Quat[T]{-v1.X, -v1.Y, -v1.Z, -v1.W}
		dot = -dot
	}

	const dotThreshold = 0.9995
	if dot > dotThreshold {
		// Nearly parallel: lerp and renormalize.
		return v0.lerp(v1, percentage).Normalize()
	}

	// dot is in [0, dotThreshold], acos is safe
	theta0 := Acos(dot)
	theta := theta0 * percentage
	sinTheta := Sin(theta)
	sinTheta0 := Sin(theta0)

	s0 := Cos(theta) - dot*sinTheta/sinTheta0 // == sin(theta0 - theta) / sin(theta0)
	s1 := sinTheta / sinTheta0

	return Quat[T]{
		(v0.X * s0) + (v1.X * s1),
		(v0.Y * s0) + (v1.Y * s1),
		(v0.Z * s0) + (v1.Z * s1),
		(v0.W * s0) + (v1.W * s1)}
}

// Nlerp interpolates linearly along the shorter arc and normalizes the result.
func (q Quat[T]) Nlerp(other Quat[T], t T) Quat[T] {
	s0 := 1.0 - t
	s1 := t
	if q.Dot(other) < 0 {
		s1 = -t
	}
	return Quat[T]{
		s0*q.X + s1*other.X,
		s0*q.Y + s1*other.Y,
		s0*q.Z + s1*other.Z,
		s0*q.W + s1*other.W,
	}.Normalize()
}

func (q Quat[T]) lerp(other Quat[T], t T) Quat[T] {
	return Quat[T]{
		q.X + (other.X-q.X)*t,
		q.Y + (other.Y-q.Y)*t,
		q.Z + (other.Z-q.Z)*t,
		q.W + (other.W-q.W)*t}
}

/**
 * @brief Rotates v by q. q does not need to be normalized; the result is
 * divided by its squared norm.
 */
func (q Quat[T]) Transform(v Vec3[T]) Vec3[T] {
	xx, yy, zz, ww := q.X*q.X, q.Y*q.Y, q.Z*q.Z, q.W*q.W
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	xw, zw, yw := q.X*q.W, q.Z*q.W, q.Y*q.W
	k := 1.0 / (xx + yy + zz + ww)
	return Vec3[T]{
		(xx-yy-zz+ww)*k*v.X + 2*(xy-zw)*k*v.Y + 2*(xz+yw)*k*v.Z,
		2*(xy+zw)*k*v.X + (yy-xx-zz+ww)*k*v.Y + 2*(yz-xw)*k*v.Z,
		2*(xz-yw)*k*v.X + 2*(yz+xw)*k*v.Y + (zz-xx-yy+ww)*k*v.Z,
	}
}

// TransformInverse rotates v by the inverse of q.
func (q Quat[T]) TransformInverse(v Vec3[T]) Vec3[T] {
	return q.Conjugate().Transform(v)
}

// Mat3 returns the rotation matrix of the unit quaternion q.
func (q Quat[T]) Mat3() Mat3[T] {
	var m Mat3[T]
	m.RotationQuat(q)
	return m
}

// Mat4 returns the rotation matrix of the unit quaternion q.
func (q Quat[T]) Mat4() Mat4[T] {
	var m Mat4[T]
	m.RotationQuat(q)
	return m
}

func (q Quat[T]) AxisAngle() AxisAngle[T] {
	return AxisAngleFromQuat(q)
}

/**
 * @brief Returns the Euler angles (x, y, z) such that
 * NewQuatRotationXYZ(x, y, z) yields q. q must be normalized.
 */
func (q Quat[T]) EulerAnglesXYZ() Vec3[T] {
	sy := 2.0 * (q.X*q.Z + q.Y*q.W)
	if sy > 1 {
		sy = 1
	} else if sy < -1 {
		sy = -1
	}
	return Vec3[T]{
		Atan2(q.X*q.W-q.Y*q.Z, 0.5-q.X*q.X-q.Y*q.Y),
		Asin(sy),
		Atan2(q.Z*q.W-q.X*q.Y, 0.5-q.Y*q.Y-q.Z*q.Z),
	}
}

// Difference returns the rotation d such that q.Mul(d) equals other.
func (q Quat[T]) Difference(other Quat[T]) Quat[T] {
	return q.Invert().Mul(other)
}

func (q Quat[T]) Equals(other Quat[T]) bool {
	return bitsEqual(q.X, other.X) && bitsEqual(q.Y, other.Y) &&
		bitsEqual(q.Z, other.Z) && bitsEqual(q.W, other.W)
}

func (q Quat[T]) Hash() uint64 {
	return hashFloats(q.X, q.Y, q.Z, q.W)
}

// Compare reports whether every component lies within tolerance.
func (q Quat[T]) Compare(other Quat[T], tolerance T) bool {
	return CompareFloat(q.X, other.X, tolerance) && CompareFloat(q.Y, other.Y, tolerance) &&
		CompareFloat(q.Z, other.Z, tolerance) && CompareFloat(q.W, other.W, tolerance)
}
