package math

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/linmath/engine/core"
	"golang.org/x/exp/constraints"
)

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMat4Identity[T constraints.Float]() Mat4[T] {
	return Mat4[T]{M00: 1, M11: 1, M22: 1, M33: 1}
}

// NewMat4 creates a matrix from its elements given in column-major order.
func NewMat4[T constraints.Float](
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 T) Mat4[T] {
	return Mat4[T]{
		M00: m00, M01: m01, M02: m02, M03: m03,
		M10: m10, M11: m11, M12: m12, M13: m13,
		M20: m20, M21: m21, M22: m22, M23: m23,
		M30: m30, M31: m31, M32: m32, M33: m33,
	}
}

// NewMat4FromMat3 embeds mat as the upper left 3x3 of an identity matrix.
func NewMat4FromMat3[T constraints.Float](mat Mat3[T]) Mat4[T] {
	var r Mat4[T]
	r.SetMat3(mat)
	return r
}

func NewMat4FromMat4x3[T constraints.Float](mat Mat4x3[T]) Mat4[T] {
	var r Mat4[T]
	r.SetMat4x3(mat)
	return r
}

// ConvertMat4 changes the precision of a matrix.
func ConvertMat4[U, T constraints.Float](mat Mat4[T]) Mat4[U] {
	return Mat4[U]{
		M00: U(mat.M00), M01: U(mat.M01), M02: U(mat.M02), M03: U(mat.M03),
		M10: U(mat.M10), M11: U(mat.M11), M12: U(mat.M12), M13: U(mat.M13),
		M20: U(mat.M20), M21: U(mat.M21), M22: U(mat.M22), M23: U(mat.M23),
		M30: U(mat.M30), M31: U(mat.M31), M32: U(mat.M32), M33: U(mat.M33),
	}
}

func (m *Mat4[T]) Identity() *Mat4[T] {
	*m = Mat4[T]{M00: 1, M11: 1, M22: 1, M33: 1}
	return m
}

func (m *Mat4[T]) Zero() *Mat4[T] {
	*m = Mat4[T]{}
	return m
}

func (m *Mat4[T]) SetFrom(other Mat4[T]) *Mat4[T] {
	*m = other
	return m
}

// SetMat3 stores mat in the upper left 3x3 and resets the rest to identity.
func (m *Mat4[T]) SetMat3(mat Mat3[T]) *Mat4[T] {
	*m = Mat4[T]{
		M00: mat.M00, M01: mat.M01, M02: mat.M02,
		M10: mat.M10, M11: mat.M11, M12: mat.M12,
		M20: mat.M20, M21: mat.M21, M22: mat.M22,
		M33: 1,
	}
	return m
}

// SetMat4x3 stores mat and sets the last row to (0, 0, 0, 1).
func (m *Mat4[T]) SetMat4x3(mat Mat4x3[T]) *Mat4[T] {
	*m = Mat4[T]{
		M00: mat.M00, M01: mat.M01, M02: mat.M02,
		M10: mat.M10, M11: mat.M11, M12: mat.M12,
		M20: mat.M20, M21: mat.M21, M22: mat.M22,
		M30: mat.M30, M31: mat.M31, M32: mat.M32,
		M33: 1,
	}
	return m
}

/**
 * @brief Returns the result of multiplying m and right into dest. The
 * transformation of right is applied first, then m.
 *
 * @param right The right operand.
 * @param dest Receives the result. May be the receiver.
 * @return dest
 */
func (m Mat4[T]) MulTo(right Mat4[T], dest *Mat4[T]) *Mat4[T] {
	nm00 := m.M00*right.M00 + m.M10*right.M01 + m.M20*right.M02 + m.M30*right.M03
	nm01 := m.M01*right.M00 + m.M11*right.M01 + m.M21*right.M02 + m.M31*right.M03
	nm02 := m.M02*right.M00 + m.M12*right.M01 + m.M22*right.M02 + m.M32*right.M03
	nm03 := m.M03*right.M00 + m.M13*right.M01 + m.M23*right.M02 + m.M33*right.M03
	nm10 := m.M00*right.M10 + m.M10*right.M11 + m.M20*right.M12 + m.M30*right.M13
	nm11 := m.M01*right.M10 + m.M11*right.M11 + m.M21*right.M12 + m.M31*right.M13
	nm12 := m.M02*right.M10 + m.M12*right.M11 + m.M22*right.M12 + m.M32*right.M13
	nm13 := m.M03*right.M10 + m.M13*right.M11 + m.M23*right.M12 + m.M33*right.M13
	nm20 := m.M00*right.M20 + m.M10*right.M21 + m.M20*right.M22 + m.M30*right.M23
	nm21 := m.M01*right.M20 + m.M11*right.M21 + m.M21*right.M22 + m.M31*right.M23
	nm22 := m.M02*right.M20 + m.M12*right.M21 + m.M22*right.M22 + m.M32*right.M23
	nm23 := m.M03*right.M20 + m.M13*right.M21 + m.M23*right.M22 + m.M33*right.M23
	nm30 := m.M00*right.M30 + m.M10*right.M31 + m.M20*right.M32 + m.M30*right.M33
	nm31 := m.M01*right.M30 + m.M11*right.M31 + m.M21*right.M32 + m.M31*right.M33
	nm32 := m.M02*right.M30 + m.M12*right.M31 + m.M22*right.M32 + m.M32*right.M33
	nm33 := m.M03*right.M30 + m.M13*right.M31 + m.M23*right.M32 + m.M33*right.M33
	dest.M00, dest.M01, dest.M02, dest.M03 = nm00, nm01, nm02, nm03
	dest.M10, dest.M11, dest.M12, dest.M13 = nm10, nm11, nm12, nm13
	dest.M20, dest.M21, dest.M22, dest.M23 = nm20, nm21, nm22, nm23
	dest.M30, dest.M31, dest.M32, dest.M33 = nm30, nm31, nm32, nm33
	return dest
}

func (m *Mat4[T]) Mul(right Mat4[T]) *Mat4[T] {
	return m.MulTo(right, m)
}

// MulLocalTo computes left * m: m is applied first, then left.
func (m Mat4[T]) MulLocalTo(left Mat4[T], dest *Mat4[T]) *Mat4[T] {
	return left.MulTo(m, dest)
}

func (m *Mat4[T]) MulLocal(left Mat4[T]) *Mat4[T] {
	return m.MulLocalTo(left, m)
}

func (m Mat4[T]) MulComponentWiseTo(other Mat4[T], dest *Mat4[T]) *Mat4[T] {
	dest.M00, dest.M01, dest.M02, dest.M03 = m.M00*other.M00, m.M01*other.M01, m.M02*other.M02, m.M03*other.M03
	dest.M10, dest.M11, dest.M12, dest.M13 = m.M10*other.M10, m.M11*other.M11, m.M12*other.M12, m.M13*other.M13
	dest.M20, dest.M21, dest.M22, dest.M23 = m.M20*other.M20, m.M21*other.M21, m.M22*other.M22, m.M23*other.M23
	dest.M30, dest.M31, dest.M32, dest.M33 = m.M30*other.M30, m.M31*other.M31, m.M32*other.M32, m.M33*other.M33
	return dest
}

func (m *Mat4[T]) MulComponentWise(other Mat4[T]) *Mat4[T] {
	return m.MulComponentWiseTo(other, m)
}

func (m Mat4[T]) AddTo(other Mat4[T], dest *Mat4[T]) *Mat4[T] {
	dest.M00, dest.M01, dest.M02, dest.M03 = m.M00+other.M00, m.M01+other.M01, m.M02+other.M02, m.M03+other.M03
	dest.M10, dest.M11, dest.M12, dest.M13 = m.M10+other.M10, m.M11+other.M11, m.M12+other.M12, m.M13+other.M13
	dest.M20, dest.M21, dest.M22, dest.M23 = m.M20+other.M20, m.M21+other.M21, m.M22+other.M22, m.M23+other.M23
	dest.M30, dest.M31, dest.M32, dest.M33 = m.M30+other.M30, m.M31+other.M31, m.M32+other.M32, m.M33+other.M33
	return dest
}

func (m *Mat4[T]) Add(other Mat4[T]) *Mat4[T] {
	return m.AddTo(other, m)
}

func (m Mat4[T]) SubTo(subtrahend Mat4[T], dest *Mat4[T]) *Mat4[T] {
	dest.M00, dest.M01, dest.M02, dest.M03 = m.M00-subtrahend.M00, m.M01-subtrahend.M01, m.M02-subtrahend.M02, m.M03-subtrahend.M03
	dest.M10, dest.M11, dest.M12, dest.M13 = m.M10-subtrahend.M10, m.M11-subtrahend.M11, m.M12-subtrahend.M12, m.M13-subtrahend.M13
	dest.M20, dest.M21, dest.M22, dest.M23 = m.M20-subtrahend.M20, m.M21-subtrahend.M21, m.M22-subtrahend.M22, m.M23-subtrahend.M23
	dest.M30, dest.M31, dest.M32, dest.M33 = m.M30-subtrahend.M30, m.M31-subtrahend.M31, m.M32-subtrahend.M32, m.M33-subtrahend.M33
	return dest
}

func (m *Mat4[T]) Sub(subtrahend Mat4[T]) *Mat4[T] {
	return m.SubTo(subtrahend, m)
}

func (m Mat4[T]) LerpTo(other Mat4[T], t T, dest *Mat4[T]) *Mat4[T] {
	dest.M00, dest.M01, dest.M02, dest.M03 = m.M00+(other.M00-m.M00)*t, m.M01+(other.M01-m.M01)*t, m.M02+(other.M02-m.M02)*t, m.M03+(other.M03-m.M03)*t
	dest.M10, dest.M11, dest.M12, dest.M13 = m.M10+(other.M10-m.M10)*t, m.M11+(other.M11-m.M11)*t, m.M12+(other.M12-m.M12)*t, m.M13+(other.M13-m.M13)*t
	dest.M20, dest.M21, dest.M22, dest.M23 = m.M20+(other.M20-m.M20)*t, m.M21+(other.M21-m.M21)*t, m.M22+(other.M22-m.M22)*t, m.M23+(other.M23-m.M23)*t
	dest.M30, dest.M31, dest.M32, dest.M33 = m.M30+(other.M30-m.M30)*t, m.M31+(other.M31-m.M31)*t, m.M32+(other.M32-m.M32)*t, m.M33+(other.M33-m.M33)*t
	return dest
}

func (m *Mat4[T]) Lerp(other Mat4[T], t T) *Mat4[T] {
	return m.LerpTo(other, t, m)
}

/**
 * @brief Computes the determinant by expanding over 2x2 minors of the
 * first two and last two columns.
 */
func (m Mat4[T]) Determinant() T {
	return (m.M00*m.M11-m.M01*m.M10)*(m.M22*m.M33-m.M23*m.M32) +
		(m.M02*m.M10-m.M00*m.M12)*(m.M21*m.M33-m.M23*m.M31) +
		(m.M00*m.M13-m.M03*m.M10)*(m.M21*m.M32-m.M22*m.M31) +
		(m.M01*m.M12-m.M02*m.M11)*(m.M20*m.M33-m.M23*m.M30) +
		(m.M03*m.M11-m.M01*m.M13)*(m.M20*m.M32-m.M22*m.M30) +
		(m.M02*m.M13-m.M03*m.M12)*(m.M20*m.M31-m.M21*m.M30)
}

/**
 * @brief Inverts m into dest. A singular matrix yields Inf/NaN elements.
 *
 * @param dest Receives the inverse. May be the receiver.
 * @return dest
 */
func (m Mat4[T]) InvertTo(dest *Mat4[T]) *Mat4[T] {
	a := m.M00*m.M11 - m.M01*m.M10
	b := m.M00*m.M12 - m.M02*m.M10
	c := m.M00*m.M13 - m.M03*m.M10
	d := m.M01*m.M12 - m.M02*m.M11
	e := m.M01*m.M13 - m.M03*m.M11
	f := m.M02*m.M13 - m.M03*m.M12
	g := m.M20*m.M31 - m.M21*m.M30
	h := m.M20*m.M32 - m.M22*m.M30
	i := m.M20*m.M33 - m.M23*m.M30
	j := m.M21*m.M32 - m.M22*m.M31
	k := m.M21*m.M33 - m.M23*m.M31
	l := m.M22*m.M33 - m.M23*m.M32
	det := a*l - b*k + c*j + d*i - e*h + f*g
	det = 1.0 / det
	nm00 := (m.M11*l - m.M12*k + m.M13*j) * det
	nm01 := (-m.M01*l + m.M02*k - m.M03*j) * det
	nm02 := (m.M31*f - m.M32*e + m.M33*d) * det
	nm03 := (-m.M21*f + m.M22*e - m.M23*d) * det
	nm10 := (-m.M10*l + m.M12*i - m.M13*h) * det
	nm11 := (m.M00*l - m.M02*i + m.M03*h) * det
	nm12 := (-m.M30*f + m.M32*c - m.M33*b) * det
	nm13 := (m.M20*f - m.M22*c + m.M23*b) * det
	nm20 := (m.M10*k - m.M11*i + m.M13*g) * det
	nm21 := (-m.M00*k + m.M01*i - m.M03*g) * det
	nm22 := (m.M30*e - m.M31*c + m.M33*a) * det
	nm23 := (-m.M20*e + m.M21*c - m.M23*a) * det
	nm30 := (-m.M10*j + m.M11*h - m.M12*g) * det
	nm31 := (m.M00*j - m.M01*h + m.M02*g) * det
	nm32 := (-m.M30*d + m.M31*b - m.M32*a) * det
	nm33 := (m.M20*d - m.M21*b + m.M22*a) * det
	dest.M00, dest.M01, dest.M02, dest.M03 = nm00, nm01, nm02, nm03
	dest.M10, dest.M11, dest.M12, dest.M13 = nm10, nm11, nm12, nm13
	dest.M20, dest.M21, dest.M22, dest.M23 = nm20, nm21, nm22, nm23
	dest.M30, dest.M31, dest.M32, dest.M33 = nm30, nm31, nm32, nm33
	return dest
}

func (m *Mat4[T]) Invert() *Mat4[T] {
	return m.InvertTo(m)
}

func (m Mat4[T]) TransposeTo(dest *Mat4[T]) *Mat4[T] {
	*dest = Mat4[T]{
		M00: m.M00, M01: m.M10, M02: m.M20, M03: m.M30,
		M10: m.M01, M11: m.M11, M12: m.M21, M13: m.M31,
		M20: m.M02, M21: m.M12, M22: m.M22, M23: m.M32,
		M30: m.M03, M31: m.M13, M32: m.M23, M33: m.M33,
	}
	return dest
}

func (m *Mat4[T]) Transpose() *Mat4[T] {
	return m.TransposeTo(m)
}

/**
 * @brief Stores the normal matrix of the upper left 3x3 of m in dest and
 * resets the remaining elements of dest to identity.
 */
func (m Mat4[T]) NormalTo(dest *Mat4[T]) *Mat4[T] {
	var n Mat3[T]
	NewMat3FromMat4(m).NormalTo(&n)
	return dest.SetMat3(n)
}

func (m *Mat4[T]) Normal() *Mat4[T] {
	return m.NormalTo(m)
}

// NormalMat3 returns the normal matrix of the upper left 3x3 of m.
func (m Mat4[T]) NormalMat3() Mat3[T] {
	var n Mat3[T]
	NewMat3FromMat4(m).NormalTo(&n)
	return n
}

func (m *Mat4[T]) Scaling(x, y, z T) *Mat4[T] {
	*m = Mat4[T]{M00: x, M11: y, M22: z, M33: 1}
	return m
}

/**
 * @brief Sets m to a translation matrix.
 */
func (m *Mat4[T]) Translation(x, y, z T) *Mat4[T] {
	*m = Mat4[T]{M00: 1, M11: 1, M22: 1, M30: x, M31: y, M32: z, M33: 1}
	return m
}

/**
 * @brief Sets m to T * R * S: scale first, then rotate by the unit
 * quaternion, then translate.
 */
func (m *Mat4[T]) TranslationRotateScale(translation Vec3[T], rotation Quat[T], scale Vec3[T]) *Mat4[T] {
	var r Mat3[T]
	r.RotationQuat(rotation)
	*m = Mat4[T]{
		M00: r.M00 * scale.X, M01: r.M01 * scale.X, M02: r.M02 * scale.X,
		M10: r.M10 * scale.Y, M11: r.M11 * scale.Y, M12: r.M12 * scale.Y,
		M20: r.M20 * scale.Z, M21: r.M21 * scale.Z, M22: r.M22 * scale.Z,
		M30: translation.X, M31: translation.Y, M32: translation.Z, M33: 1,
	}
	return m
}

// ScaleTo applies a scaling before m.
func (m Mat4[T]) ScaleTo(x, y, z T, dest *Mat4[T]) *Mat4[T] {
	dest.M00, dest.M01, dest.M02, dest.M03 = m.M00*x, m.M01*x, m.M02*x, m.M03*x
	dest.M10, dest.M11, dest.M12, dest.M13 = m.M10*y, m.M11*y, m.M12*y, m.M13*y
	dest.M20, dest.M21, dest.M22, dest.M23 = m.M20*z, m.M21*z, m.M22*z, m.M23*z
	dest.M30, dest.M31, dest.M32, dest.M33 = m.M30, m.M31, m.M32, m.M33
	return dest
}

func (m *Mat4[T]) Scale(x, y, z T) *Mat4[T] {
	return m.ScaleTo(x, y, z, m)
}

// ScaleLocalTo applies a scaling after m.
func (m Mat4[T]) ScaleLocalTo(x, y, z T, dest *Mat4[T]) *Mat4[T] {
	dest.M00, dest.M01, dest.M02, dest.M03 = x*m.M00, y*m.M01, z*m.M02, m.M03
	dest.M10, dest.M11, dest.M12, dest.M13 = x*m.M10, y*m.M11, z*m.M12, m.M13
	dest.M20, dest.M21, dest.M22, dest.M23 = x*m.M20, y*m.M21, z*m.M22, m.M23
	dest.M30, dest.M31, dest.M32, dest.M33 = x*m.M30, y*m.M31, z*m.M32, m.M33
	return dest
}

func (m *Mat4[T]) ScaleLocal(x, y, z T) *Mat4[T] {
	return m.ScaleLocalTo(x, y, z, m)
}

/**
 * @brief Applies a translation before m: points are translated, then
 * transformed by m.
 */
func (m Mat4[T]) TranslateTo(x, y, z T, dest *Mat4[T]) *Mat4[T] {
	nm30 := m.M00*x + m.M10*y + m.M20*z + m.M30
	nm31 := m.M01*x + m.M11*y + m.M21*z + m.M31
	nm32 := m.M02*x + m.M12*y + m.M22*z + m.M32
	nm33 := m.M03*x + m.M13*y + m.M23*z + m.M33
	*dest = m
	dest.M30, dest.M31, dest.M32, dest.M33 = nm30, nm31, nm32, nm33
	return dest
}

func (m *Mat4[T]) Translate(x, y, z T) *Mat4[T] {
	return m.TranslateTo(x, y, z, m)
}

// TranslateLocalTo applies a translation after m.
func (m Mat4[T]) TranslateLocalTo(x, y, z T, dest *Mat4[T]) *Mat4[T] {
	nm00 := m.M00 + x*m.M03
	nm01 := m.M01 + y*m.M03
	nm02 := m.M02 + z*m.M03
	nm10 := m.M10 + x*m.M13
	nm11 := m.M11 + y*m.M13
	nm12 := m.M12 + z*m.M13
	nm20 := m.M20 + x*m.M23
	nm21 := m.M21 + y*m.M23
	nm22 := m.M22 + z*m.M23
	nm30 := m.M30 + x*m.M33
	nm31 := m.M31 + y*m.M33
	nm32 := m.M32 + z*m.M33
	*dest = m
	dest.M00, dest.M01, dest.M02 = nm00, nm01, nm02
	dest.M10, dest.M11, dest.M12 = nm10, nm11, nm12
	dest.M20, dest.M21, dest.M22 = nm20, nm21, nm22
	dest.M30, dest.M31, dest.M32 = nm30, nm31, nm32
	return dest
}

func (m *Mat4[T]) TranslateLocal(x, y, z T) *Mat4[T] {
	return m.TranslateLocalTo(x, y, z, m)
}

/**
 * @brief Sets m to a rotation of angle radians about axis. The axis is normalized first.
 */
func (m *Mat4[T]) Rotation(angle T, axis Vec3[T]) *Mat4[T] {
	var r Mat3[T]
	r.Rotation(angle, axis)
	return m.SetMat3(r)
}

// RotationAxisAngle normalizes the axis of a and sets m to its rotation.
func (m *Mat4[T]) RotationAxisAngle(a AxisAngle[T]) *Mat4[T] {
	var r Mat3[T]
	r.RotationAxisAngle(a)
	return m.SetMat3(r)
}

func (m *Mat4[T]) RotationX(ang T) *Mat4[T] {
	var r Mat3[T]
	r.RotationX(ang)
	return m.SetMat3(r)
}

func (m *Mat4[T]) RotationY(ang T) *Mat4[T] {
	var r Mat3[T]
	r.RotationY(ang)
	return m.SetMat3(r)
}

func (m *Mat4[T]) RotationZ(ang T) *Mat4[T] {
	var r Mat3[T]
	r.RotationZ(ang)
	return m.SetMat3(r)
}

// RotationXYZ is equivalent to RotationX(angleX).RotateY(angleY).RotateZ(angleZ).
func (m *Mat4[T]) RotationXYZ(angleX, angleY, angleZ T) *Mat4[T] {
	var r Mat3[T]
	r.RotationXYZ(angleX, angleY, angleZ)
	return m.SetMat3(r)
}

// RotationZYX is equivalent to RotationZ(angleZ).RotateY(angleY).RotateX(angleX).
func (m *Mat4[T]) RotationZYX(angleZ, angleY, angleX T) *Mat4[T] {
	var r Mat3[T]
	r.RotationZYX(angleZ, angleY, angleX)
	return m.SetMat3(r)
}

// RotationYXZ is equivalent to RotationY(angleY).RotateX(angleX).RotateZ(angleZ).
func (m *Mat4[T]) RotationYXZ(angleY, angleX, angleZ T) *Mat4[T] {
	var r Mat3[T]
	r.RotationYXZ(angleY, angleX, angleZ)
	return m.SetMat3(r)
}

func (m *Mat4[T]) RotationQuat(q Quat[T]) *Mat4[T] {
	var r Mat3[T]
	r.RotationQuat(q)
	return m.SetMat3(r)
}

// mulRotationTo computes m * R where R is the rotation whose upper left
// 3x3 is given by rm (column-major) and whose last row and column are
// those of the identity.
func (m Mat4[T]) mulRotationTo(
	rm00, rm01, rm02,
	rm10, rm11, rm12,
	rm20, rm21, rm22 T, dest *Mat4[T]) *Mat4[T] {
	nm00 := m.M00*rm00 + m.M10*rm01 + m.M20*rm02
	nm01 := m.M01*rm00 + m.M11*rm01 + m.M21*rm02
	nm02 := m.M02*rm00 + m.M12*rm01 + m.M22*rm02
	nm03 := m.M03*rm00 + m.M13*rm01 + m.M23*rm02
	nm10 := m.M00*rm10 + m.M10*rm11 + m.M20*rm12
	nm11 := m.M01*rm10 + m.M11*rm11 + m.M21*rm12
	nm12 := m.M02*rm10 + m.M12*rm11 + m.M22*rm12
	nm13 := m.M03*rm10 + m.M13*rm11 + m.M23*rm12
	nm20 := m.M00*rm20 + m.M10*rm21 + m.M20*rm22
	nm21 := m.M01*rm20 + m.M11*rm21 + m.M21*rm22
	nm22 := m.M02*rm20 + m.M12*rm21 + m.M22*rm22
	nm23 := m.M03*rm20 + m.M13*rm21 + m.M23*rm22
	dest.M30, dest.M31, dest.M32, dest.M33 = m.M30, m.M31, m.M32, m.M33
	dest.M00, dest.M01, dest.M02, dest.M03 = nm00, nm01, nm02, nm03
	dest.M10, dest.M11, dest.M12, dest.M13 = nm10, nm11, nm12, nm13
	dest.M20, dest.M21, dest.M22, dest.M23 = nm20, nm21, nm22, nm23
	return dest
}

// mulLocalRotationTo computes L * m for a rotation L given by lm.
func (m Mat4[T]) mulLocalRotationTo(
	lm00, lm01, lm02,
	lm10, lm11, lm12,
	lm20, lm21, lm22 T, dest *Mat4[T]) *Mat4[T] {
	nm00 := lm00*m.M00 + lm10*m.M01 + lm20*m.M02
	nm01 := lm01*m.M00 + lm11*m.M01 + lm21*m.M02
	nm02 := lm02*m.M00 + lm12*m.M01 + lm22*m.M02
	nm10 := lm00*m.M10 + lm10*m.M11 + lm20*m.M12
	nm11 := lm01*m.M10 + lm11*m.M11 + lm21*m.M12
	nm12 := lm02*m.M10 + lm12*m.M11 + lm22*m.M12
	nm20 := lm00*m.M20 + lm10*m.M21 + lm20*m.M22
	nm21 := lm01*m.M20 + lm11*m.M21 + lm21*m.M22
	nm22 := lm02*m.M20 + lm12*m.M21 + lm22*m.M22
	nm30 := lm00*m.M30 + lm10*m.M31 + lm20*m.M32
	nm31 := lm01*m.M30 + lm11*m.M31 + lm21*m.M32
	nm32 := lm02*m.M30 + lm12*m.M31 + lm22*m.M32
	dest.M03, dest.M13, dest.M23, dest.M33 = m.M03, m.M13, m.M23, m.M33
	dest.M00, dest.M01, dest.M02 = nm00, nm01, nm02
	dest.M10, dest.M11, dest.M12 = nm10, nm11, nm12
	dest.M20, dest.M21, dest.M22 = nm20, nm21, nm22
	dest.M30, dest.M31, dest.M32 = nm30, nm31, nm32
	return dest
}

func (m Mat4[T]) RotateXTo(ang T, dest *Mat4[T]) *Mat4[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	nm10 := m.M10*cos + m.M20*sin
	nm11 := m.M11*cos + m.M21*sin
	nm12 := m.M12*cos + m.M22*sin
	nm13 := m.M13*cos + m.M23*sin
	nm20 := -m.M10*sin + m.M20*cos
	nm21 := -m.M11*sin + m.M21*cos
	nm22 := -m.M12*sin + m.M22*cos
	nm23 := -m.M13*sin + m.M23*cos
	dest.M00, dest.M01, dest.M02, dest.M03 = m.M00, m.M01, m.M02, m.M03
	dest.M30, dest.M31, dest.M32, dest.M33 = m.M30, m.M31, m.M32, m.M33
	dest.M10, dest.M11, dest.M12, dest.M13 = nm10, nm11, nm12, nm13
	dest.M20, dest.M21, dest.M22, dest.M23 = nm20, nm21, nm22, nm23
	return dest
}

func (m *Mat4[T]) RotateX(ang T) *Mat4[T] {
	return m.RotateXTo(ang, m)
}

func (m Mat4[T]) RotateYTo(ang T, dest *Mat4[T]) *Mat4[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	nm00 := m.M00*cos - m.M20*sin
	nm01 := m.M01*cos - m.M21*sin
	nm02 := m.M02*cos - m.M22*sin
	nm03 := m.M03*cos - m.M23*sin
	nm20 := m.M00*sin + m.M20*cos
	nm21 := m.M01*sin + m.M21*cos
	nm22 := m.M02*sin + m.M22*cos
	nm23 := m.M03*sin + m.M23*cos
	dest.M10, dest.M11, dest.M12, dest.M13 = m.M10, m.M11, m.M12, m.M13
	dest.M30, dest.M31, dest.M32, dest.M33 = m.M30, m.M31, m.M32, m.M33
	dest.M00, dest.M01, dest.M02, dest.M03 = nm00, nm01, nm02, nm03
	dest.M20, dest.M21, dest.M22, dest.M23 = nm20, nm21, nm22, nm23
	return dest
}

func (m *Mat4[T]) RotateY(ang T) *Mat4[T] {
	return m.RotateYTo(ang, m)
}

func (m Mat4[T]) RotateZTo(ang T, dest *Mat4[T]) *Mat4[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	nm00 := m.M00*cos + m.M10*sin
	nm01 := m.M01*cos + m.M11*sin
	nm02 := m.M02*cos + m.M12*sin
	nm03 := m.M03*cos + m.M13*sin
	nm10 := -m.M00*sin + m.M10*cos
	nm11 := -m.M01*sin + m.M11*cos
	nm12 := -m.M02*sin + m.M12*cos
	nm13 := -m.M03*sin + m.M13*cos
	dest.M20, dest.M21, dest.M22, dest.M23 = m.M20, m.M21, m.M22, m.M23
	dest.M30, dest.M31, dest.M32, dest.M33 = m.M30, m.M31, m.M32, m.M33
	dest.M00, dest.M01, dest.M02, dest.M03 = nm00, nm01, nm02, nm03
	dest.M10, dest.M11, dest.M12, dest.M13 = nm10, nm11, nm12, nm13
	return dest
}

func (m *Mat4[T]) RotateZ(ang T) *Mat4[T] {
	return m.RotateZTo(ang, m)
}

func (m Mat4[T]) RotateXYZTo(angleX, angleY, angleZ T, dest *Mat4[T]) *Mat4[T] {
	return m.RotateXTo(angleX, dest).RotateY(angleY).RotateZ(angleZ)
}

func (m *Mat4[T]) RotateXYZ(angleX, angleY, angleZ T) *Mat4[T] {
	return m.RotateXYZTo(angleX, angleY, angleZ, m)
}

func (m Mat4[T]) RotateZYXTo(angleZ, angleY, angleX T, dest *Mat4[T]) *Mat4[T] {
	return m.RotateZTo(angleZ, dest).RotateY(angleY).RotateX(angleX)
}

func (m *Mat4[T]) RotateZYX(angleZ, angleY, angleX T) *Mat4[T] {
	return m.RotateZYXTo(angleZ, angleY, angleX, m)
}

func (m Mat4[T]) RotateYXZTo(angleY, angleX, angleZ T, dest *Mat4[T]) *Mat4[T] {
	return m.RotateYTo(angleY, dest).RotateX(angleX).RotateZ(angleZ)
}

func (m *Mat4[T]) RotateYXZ(angleY, angleX, angleZ T) *Mat4[T] {
	return m.RotateYXZTo(angleY, angleX, angleZ, m)
}

/**
 * @brief Applies a rotation of angle radians about axis, normalized first,
 * before m.
 */
func (m Mat4[T]) RotateTo(angle T, axis Vec3[T], dest *Mat4[T]) *Mat4[T] {
	n := axis.Normalize()
	x, y, z := n.X, n.Y, n.Z
	s := Sin(angle)
	c := CosFromSin(s, angle)
	C := 1.0 - c
	xx, xy, xz := x*x, x*y, x*z
	yy, yz := y*y, y*z
	zz := z * z
	return m.mulRotationTo(
		xx*C+c, xy*C+z*s, xz*C-y*s,
		xy*C-z*s, yy*C+c, yz*C+x*s,
		xz*C+y*s, yz*C-x*s, zz*C+c,
		dest)
}

func (m *Mat4[T]) Rotate(angle T, axis Vec3[T]) *Mat4[T] {
	return m.RotateTo(angle, axis, m)
}

func (m Mat4[T]) RotateAxisAngleTo(a AxisAngle[T], dest *Mat4[T]) *Mat4[T] {
	return m.RotateTo(a.Angle, a.Axis(), dest)
}

func (m *Mat4[T]) RotateAxisAngle(a AxisAngle[T]) *Mat4[T] {
	return m.RotateAxisAngleTo(a, m)
}

// RotateQuatTo applies the rotation of the unit quaternion q before m.
func (m Mat4[T]) RotateQuatTo(q Quat[T], dest *Mat4[T]) *Mat4[T] {
	var r Mat3[T]
	r.RotationQuat(q)
	return m.mulRotationTo(
		r.M00, r.M01, r.M02,
		r.M10, r.M11, r.M12,
		r.M20, r.M21, r.M22,
		dest)
}

func (m *Mat4[T]) RotateQuat(q Quat[T]) *Mat4[T] {
	return m.RotateQuatTo(q, m)
}

/**
 * @brief Applies a rotation of angle radians about axis, normalized first,
 * after m.
 */
func (m Mat4[T]) RotateLocalTo(angle T, axis Vec3[T], dest *Mat4[T]) *Mat4[T] {
	n := axis.Normalize()
	x, y, z := n.X, n.Y, n.Z
	s := Sin(angle)
	c := CosFromSin(s, angle)
	C := 1.0 - c
	xx, xy, xz := x*x, x*y, x*z
	yy, yz := y*y, y*z
	zz := z * z
	return m.mulLocalRotationTo(
		xx*C+c, xy*C+z*s, xz*C-y*s,
		xy*C-z*s, yy*C+c, yz*C+x*s,
		xz*C+y*s, yz*C-x*s, zz*C+c,
		dest)
}

func (m *Mat4[T]) RotateLocal(angle T, axis Vec3[T]) *Mat4[T] {
	return m.RotateLocalTo(angle, axis, m)
}

func (m Mat4[T]) RotateLocalXTo(ang T, dest *Mat4[T]) *Mat4[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	return m.mulLocalRotationTo(
		1, 0, 0,
		0, cos, sin,
		0, -sin, cos,
		dest)
}

func (m *Mat4[T]) RotateLocalX(ang T) *Mat4[T] {
	return m.RotateLocalXTo(ang, m)
}

func (m Mat4[T]) RotateLocalYTo(ang T, dest *Mat4[T]) *Mat4[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	return m.mulLocalRotationTo(
		cos, 0, -sin,
		0, 1, 0,
		sin, 0, cos,
		dest)
}

func (m *Mat4[T]) RotateLocalY(ang T) *Mat4[T] {
	return m.RotateLocalYTo(ang, m)
}

func (m Mat4[T]) RotateLocalZTo(ang T, dest *Mat4[T]) *Mat4[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	return m.mulLocalRotationTo(
		cos, sin, 0,
		-sin, cos, 0,
		0, 0, 1,
		dest)
}

func (m *Mat4[T]) RotateLocalZ(ang T) *Mat4[T] {
	return m.RotateLocalZTo(ang, m)
}

func (m Mat4[T]) RotateLocalQuatTo(q Quat[T], dest *Mat4[T]) *Mat4[T] {
	var r Mat3[T]
	r.RotationQuat(q)
	return m.mulLocalRotationTo(
		r.M00, r.M01, r.M02,
		r.M10, r.M11, r.M12,
		r.M20, r.M21, r.M22,
		dest)
}

func (m *Mat4[T]) RotateLocalQuat(q Quat[T]) *Mat4[T] {
	return m.RotateLocalQuatTo(q, m)
}

// SetLookAlong sets m to a rotation that maps dir onto -Z.
func (m *Mat4[T]) SetLookAlong(dir, up Vec3[T]) *Mat4[T] {
	var r Mat3[T]
	r.SetLookAlong(dir, up)
	return m.SetMat3(r)
}

func (m Mat4[T]) LookAlongTo(dir, up Vec3[T], dest *Mat4[T]) *Mat4[T] {
	var r Mat3[T]
	r.SetLookAlong(dir, up)
	return m.mulRotationTo(
		r.M00, r.M01, r.M02,
		r.M10, r.M11, r.M12,
		r.M20, r.M21, r.M22,
		dest)
}

func (m *Mat4[T]) LookAlong(dir, up Vec3[T]) *Mat4[T] {
	return m.LookAlongTo(dir, up, m)
}

// RotationTowards sets m to a rotation that maps +Z onto dir.
func (m *Mat4[T]) RotationTowards(dir, up Vec3[T]) *Mat4[T] {
	var r Mat3[T]
	r.RotationTowards(dir, up)
	return m.SetMat3(r)
}

func (m Mat4[T]) RotateTowardsTo(dir, up Vec3[T], dest *Mat4[T]) *Mat4[T] {
	var r Mat3[T]
	r.RotationTowards(dir, up)
	return m.mulRotationTo(
		r.M00, r.M01, r.M02,
		r.M10, r.M11, r.M12,
		r.M20, r.M21, r.M22,
		dest)
}

func (m *Mat4[T]) RotateTowards(dir, up Vec3[T]) *Mat4[T] {
	return m.RotateTowardsTo(dir, up, m)
}

/**
 * @brief Sets m to a right-handed view matrix looking from eye towards
 * center.
 *
 * @param eye The position of the viewer.
 * @param center The point being looked at.
 * @param up The up reference; must not be parallel to center - eye.
 */
func (m *Mat4[T]) SetLookAt(eye, center, up Vec3[T]) *Mat4[T] {
	dir := eye.Sub(center).Normalize()
	left := up.Cross(dir).Normalize()
	upn := dir.Cross(left)
	*m = Mat4[T]{
		M00: left.X, M01: upn.X, M02: dir.X,
		M10: left.Y, M11: upn.Y, M12: dir.Y,
		M20: left.Z, M21: upn.Z, M22: dir.Z,
		M30: -left.Dot(eye), M31: -upn.Dot(eye), M32: -dir.Dot(eye), M33: 1,
	}
	return m
}

func (m Mat4[T]) LookAtTo(eye, center, up Vec3[T], dest *Mat4[T]) *Mat4[T] {
	var l Mat4[T]
	l.SetLookAt(eye, center, up)
	return m.MulTo(l, dest)
}

func (m *Mat4[T]) LookAt(eye, center, up Vec3[T]) *Mat4[T] {
	return m.LookAtTo(eye, center, up, m)
}

/**
 * @brief Sets m to a right-handed perspective projection mapping depth to
 * the OpenGL clip range [-1, 1].
 *
 * @param fovY The vertical field of view in radians.
 * @param aspect Width divided by height.
 * @param near The near clipping plane distance.
 * @param far The far clipping plane distance.
 */
func (m *Mat4[T]) SetPerspective(fovY, aspect, near, far T) *Mat4[T] {
	h := Tan(fovY * 0.5)
	*m = Mat4[T]{
		M00: 1.0 / (h * aspect),
		M11: 1.0 / h,
		M22: (far + near) / (near - far),
		M23: -1,
		M32: (far + far) * near / (near - far),
	}
	return m
}

func (m Mat4[T]) PerspectiveTo(fovY, aspect, near, far T, dest *Mat4[T]) *Mat4[T] {
	var p Mat4[T]
	p.SetPerspective(fovY, aspect, near, far)
	return m.MulTo(p, dest)
}

func (m *Mat4[T]) Perspective(fovY, aspect, near, far T) *Mat4[T] {
	return m.PerspectiveTo(fovY, aspect, near, far, m)
}

/**
 * @brief Sets m to an orthographic projection of the given box onto the
 * OpenGL clip cube.
 */
func (m *Mat4[T]) SetOrtho(left, right, bottom, top, near, far T) *Mat4[T] {
	*m = Mat4[T]{
		M00: 2.0 / (right - left),
		M11: 2.0 / (top - bottom),
		M22: 2.0 / (near - far),
		M30: (right + left) / (left - right),
		M31: (top + bottom) / (bottom - top),
		M32: (far + near) / (near - far),
		M33: 1,
	}
	return m
}

func (m Mat4[T]) OrthoTo(left, right, bottom, top, near, far T, dest *Mat4[T]) *Mat4[T] {
	var o Mat4[T]
	o.SetOrtho(left, right, bottom, top, near, far)
	return m.MulTo(o, dest)
}

func (m *Mat4[T]) Ortho(left, right, bottom, top, near, far T) *Mat4[T] {
	return m.OrthoTo(left, right, bottom, top, near, far, m)
}

// SetFrustum sets m to a perspective projection of the given view frustum.
func (m *Mat4[T]) SetFrustum(left, right, bottom, top, near, far T) *Mat4[T] {
	*m = Mat4[T]{
		M00: (near + near) / (right - left),
		M11: (near + near) / (top - bottom),
		M20: (right + left) / (right - left),
		M21: (top + bottom) / (top - bottom),
		M22: (far + near) / (near - far),
		M23: -1,
		M32: (far + far) * near / (near - far),
	}
	return m
}

func (m Mat4[T]) FrustumTo(left, right, bottom, top, near, far T, dest *Mat4[T]) *Mat4[T] {
	var f Mat4[T]
	f.SetFrustum(left, right, bottom, top, near, far)
	return m.MulTo(f, dest)
}

func (m *Mat4[T]) Frustum(left, right, bottom, top, near, far T) *Mat4[T] {
	return m.FrustumTo(left, right, bottom, top, near, far, m)
}

// Transform returns m * v.
func (m Mat4[T]) Transform(v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		m.M00*v.X + m.M10*v.Y + m.M20*v.Z + m.M30*v.W,
		m.M01*v.X + m.M11*v.Y + m.M21*v.Z + m.M31*v.W,
		m.M02*v.X + m.M12*v.Y + m.M22*v.Z + m.M32*v.W,
		m.M03*v.X + m.M13*v.Y + m.M23*v.Z + m.M33*v.W,
	}
}

/**
 * @brief Transforms v as a point (w = 1). The resulting w is discarded,
 * so this is only meaningful for affine matrices.
 */
func (m Mat4[T]) TransformPosition(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m.M00*v.X + m.M10*v.Y + m.M20*v.Z + m.M30,
		m.M01*v.X + m.M11*v.Y + m.M21*v.Z + m.M31,
		m.M02*v.X + m.M12*v.Y + m.M22*v.Z + m.M32,
	}
}

// TransformDirection transforms v as a direction (w = 0).
func (m Mat4[T]) TransformDirection(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m.M00*v.X + m.M10*v.Y + m.M20*v.Z,
		m.M01*v.X + m.M11*v.Y + m.M21*v.Z,
		m.M02*v.X + m.M12*v.Y + m.M22*v.Z,
	}
}

/**
 * @brief Transforms the point v and divides by the resulting w, as done
 * for projected coordinates.
 */
func (m Mat4[T]) TransformProject(v Vec3[T]) Vec3[T] {
	invW := 1.0 / (m.M03*v.X + m.M13*v.Y + m.M23*v.Z + m.M33)
	return Vec3[T]{
		(m.M00*v.X + m.M10*v.Y + m.M20*v.Z + m.M30) * invW,
		(m.M01*v.X + m.M11*v.Y + m.M21*v.Z + m.M31) * invW,
		(m.M02*v.X + m.M12*v.Y + m.M22*v.Z + m.M32) * invW,
	}
}

func (m Mat4[T]) Row(row int) (Vec4[T], error) {
	switch row {
	case 0:
		return Vec4[T]{m.M00, m.M10, m.M20, m.M30}, nil
	case 1:
		return Vec4[T]{m.M01, m.M11, m.M21, m.M31}, nil
	case 2:
		return Vec4[T]{m.M02, m.M12, m.M22, m.M32}, nil
	case 3:
		return Vec4[T]{m.M03, m.M13, m.M23, m.M33}, nil
	}
	return Vec4[T]{}, fmt.Errorf("mat4 row %d: %w", row, core.ErrIndexOutOfRange)
}

func (m *Mat4[T]) SetRow(row int, v Vec4[T]) error {
	switch row {
	case 0:
		m.M00, m.M10, m.M20, m.M30 = v.X, v.Y, v.Z, v.W
	case 1:
		m.M01, m.M11, m.M21, m.M31 = v.X, v.Y, v.Z, v.W
	case 2:
		m.M02, m.M12, m.M22, m.M32 = v.X, v.Y, v.Z, v.W
	case 3:
		m.M03, m.M13, m.M23, m.M33 = v.X, v.Y, v.Z, v.W
	default:
		return fmt.Errorf("mat4 row %d: %w", row, core.ErrIndexOutOfRange)
	}
	return nil
}

func (m Mat4[T]) Column(column int) (Vec4[T], error) {
	switch column {
	case 0:
		return Vec4[T]{m.M00, m.M01, m.M02, m.M03}, nil
	case 1:
		return Vec4[T]{m.M10, m.M11, m.M12, m.M13}, nil
	case 2:
		return Vec4[T]{m.M20, m.M21, m.M22, m.M23}, nil
	case 3:
		return Vec4[T]{m.M30, m.M31, m.M32, m.M33}, nil
	}
	return Vec4[T]{}, fmt.Errorf("mat4 column %d: %w", column, core.ErrIndexOutOfRange)
}

func (m *Mat4[T]) SetColumn(column int, v Vec4[T]) error {
	switch column {
	case 0:
		m.M00, m.M01, m.M02, m.M03 = v.X, v.Y, v.Z, v.W
	case 1:
		m.M10, m.M11, m.M12, m.M13 = v.X, v.Y, v.Z, v.W
	case 2:
		m.M20, m.M21, m.M22, m.M23 = v.X, v.Y, v.Z, v.W
	case 3:
		m.M30, m.M31, m.M32, m.M33 = v.X, v.Y, v.Z, v.W
	default:
		return fmt.Errorf("mat4 column %d: %w", column, core.ErrIndexOutOfRange)
	}
	return nil
}

// Element returns the value at the given column and row.
func (m Mat4[T]) Element(column, row int) (T, error) {
	c, err := m.Column(column)
	if err != nil {
		return 0, err
	}
	switch row {
	case 0:
		return c.X, nil
	case 1:
		return c.Y, nil
	case 2:
		return c.Z, nil
	case 3:
		return c.W, nil
	}
	return 0, fmt.Errorf("mat4 row %d: %w", row, core.ErrIndexOutOfRange)
}

func (m *Mat4[T]) SetElement(column, row int, value T) error {
	c, err := m.Column(column)
	if err != nil {
		return err
	}
	switch row {
	case 0:
		c.X = value
	case 1:
		c.Y = value
	case 2:
		c.Z = value
	case 3:
		c.W = value
	default:
		return fmt.Errorf("mat4 row %d: %w", row, core.ErrIndexOutOfRange)
	}
	return m.SetColumn(column, c)
}

func (m Mat4[T]) GetTranslation() Vec3[T] {
	return Vec3[T]{m.M30, m.M31, m.M32}
}

// GetScale returns the length of the first three columns.
func (m Mat4[T]) GetScale() Vec3[T] {
	return NewMat3FromMat4(m).GetScale()
}

func (m Mat4[T]) GetRotation() AxisAngle[T] {
	return AxisAngleFromMat4(m)
}

func (m Mat4[T]) GetNormalizedRotation() Quat[T] {
	return QuatFromMat4(m)
}

func (m Mat4[T]) GetUnnormalizedRotation() Quat[T] {
	return QuatFromMat4Unnormalized(m)
}

// GetEulerAnglesZYX extracts (x, y, z) such that the upper left 3x3 of m
// equals RotationZYX(z, y, x).
func (m Mat4[T]) GetEulerAnglesZYX() Vec3[T] {
	return NewMat3FromMat4(m).GetEulerAnglesZYX()
}

func (m Mat4[T]) PositiveX() Vec3[T] {
	return NewMat3FromMat4(m).PositiveX()
}

func (m Mat4[T]) PositiveY() Vec3[T] {
	return NewMat3FromMat4(m).PositiveY()
}

func (m Mat4[T]) PositiveZ() Vec3[T] {
	return NewMat3FromMat4(m).PositiveZ()
}

func (m Mat4[T]) NormalizedPositiveX() Vec3[T] {
	return Vec3[T]{m.M00, m.M10, m.M20}
}

func (m Mat4[T]) NormalizedPositiveY() Vec3[T] {
	return Vec3[T]{m.M01, m.M11, m.M21}
}

func (m Mat4[T]) NormalizedPositiveZ() Vec3[T] {
	return Vec3[T]{m.M02, m.M12, m.M22}
}

func (m *Mat4[T]) Swap(other *Mat4[T]) *Mat4[T] {
	*m, *other = *other, *m
	return m
}

// Equals reports whether all elements are bit-identical.
func (m Mat4[T]) Equals(other Mat4[T]) bool {
	return bitsEqual(m.M00, other.M00) && bitsEqual(m.M01, other.M01) && bitsEqual(m.M02, other.M02) && bitsEqual(m.M03, other.M03) &&
		bitsEqual(m.M10, other.M10) && bitsEqual(m.M11, other.M11) && bitsEqual(m.M12, other.M12) && bitsEqual(m.M13, other.M13) &&
		bitsEqual(m.M20, other.M20) && bitsEqual(m.M21, other.M21) && bitsEqual(m.M22, other.M22) && bitsEqual(m.M23, other.M23) &&
		bitsEqual(m.M30, other.M30) && bitsEqual(m.M31, other.M31) && bitsEqual(m.M32, other.M32) && bitsEqual(m.M33, other.M33)
}

func (m Mat4[T]) Hash() uint64 {
	return hashFloats(
		m.M00, m.M01, m.M02, m.M03,
		m.M10, m.M11, m.M12, m.M13,
		m.M20, m.M21, m.M22, m.M23,
		m.M30, m.M31, m.M32, m.M33)
}

func (m Mat4[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%10.3e %10.3e %10.3e %10.3e\n", m.M00, m.M10, m.M20, m.M30)
	fmt.Fprintf(&sb, "%10.3e %10.3e %10.3e %10.3e\n", m.M01, m.M11, m.M21, m.M31)
	fmt.Fprintf(&sb, "%10.3e %10.3e %10.3e %10.3e\n", m.M02, m.M12, m.M22, m.M32)
	fmt.Fprintf(&sb, "%10.3e %10.3e %10.3e %10.3e\n", m.M03, m.M13, m.M23, m.M33)
	return sb.String()
}
