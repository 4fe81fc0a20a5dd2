package math

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/linmath/engine/core"
	"golang.org/x/exp/constraints"
)

/**
 * @brief Creates and returns an identity matrix.
 */
func NewMat3Identity[T constraints.Float]() Mat3[T] {
	return Mat3[T]{M00: 1, M11: 1, M22: 1}
}

// NewMat3 creates a matrix from its elements given in column-major order.
func NewMat3[T constraints.Float](m00, m01, m02, m10, m11, m12, m20, m21, m22 T) Mat3[T] {
	return Mat3[T]{
		M00: m00, M01: m01, M02: m02,
		M10: m10, M11: m11, M12: m12,
		M20: m20, M21: m21, M22: m22,
	}
}

// NewMat3FromColumns creates a matrix whose three columns are the given vectors.
func NewMat3FromColumns[T constraints.Float](col0, col1, col2 Vec3[T]) Mat3[T] {
	return Mat3[T]{
		M00: col0.X, M01: col0.Y, M02: col0.Z,
		M10: col1.X, M11: col1.Y, M12: col1.Z,
		M20: col2.X, M21: col2.Y, M22: col2.Z,
	}
}

// NewMat3FromMat4 returns the upper left 3x3 of mat.
func NewMat3FromMat4[T constraints.Float](mat Mat4[T]) Mat3[T] {
	var r Mat3[T]
	r.SetMat4(mat)
	return r
}

// NewMat3FromMat4x3 returns the linear (upper left 3x3) part of mat.
func NewMat3FromMat4x3[T constraints.Float](mat Mat4x3[T]) Mat3[T] {
	var r Mat3[T]
	r.SetMat4x3(mat)
	return r
}

// ConvertMat3 changes the precision of a matrix.
func ConvertMat3[U, T constraints.Float](mat Mat3[T]) Mat3[U] {
	return Mat3[U]{
		M00: U(mat.M00), M01: U(mat.M01), M02: U(mat.M02),
		M10: U(mat.M10), M11: U(mat.M11), M12: U(mat.M12),
		M20: U(mat.M20), M21: U(mat.M21), M22: U(mat.M22),
	}
}

func (m *Mat3[T]) Identity() *Mat3[T] {
	*m = Mat3[T]{M00: 1, M11: 1, M22: 1}
	return m
}

func (m *Mat3[T]) Zero() *Mat3[T] {
	*m = Mat3[T]{}
	return m
}

func (m *Mat3[T]) SetFrom(other Mat3[T]) *Mat3[T] {
	*m = other
	return m
}

// SetMat4 stores the upper left 3x3 of mat.
func (m *Mat3[T]) SetMat4(mat Mat4[T]) *Mat3[T] {
	m.M00, m.M01, m.M02 = mat.M00, mat.M01, mat.M02
	m.M10, m.M11, m.M12 = mat.M10, mat.M11, mat.M12
	m.M20, m.M21, m.M22 = mat.M20, mat.M21, mat.M22
	return m
}

// SetMat4x3 stores the linear part of mat.
func (m *Mat3[T]) SetMat4x3(mat Mat4x3[T]) *Mat3[T] {
	m.M00, m.M01, m.M02 = mat.M00, mat.M01, mat.M02
	m.M10, m.M11, m.M12 = mat.M10, mat.M11, mat.M12
	m.M20, m.M21, m.M22 = mat.M20, mat.M21, mat.M22
	return m
}

func (m *Mat3[T]) SetColumns(col0, col1, col2 Vec3[T]) *Mat3[T] {
	*m = NewMat3FromColumns(col0, col1, col2)
	return m
}

/**
 * @brief Returns the result of multiplying m and right into dest, i.e.
 * the transformation of right is applied first, then m.
 *
 * @param right The right operand.
 * @param dest Receives the result. May be the receiver.
 * @return dest
 */
func (m Mat3[T]) MulTo(right Mat3[T], dest *Mat3[T]) *Mat3[T] {
	nm00 := m.M00*right.M00 + m.M10*right.M01 + m.M20*right.M02
	nm01 := m.M01*right.M00 + m.M11*right.M01 + m.M21*right.M02
	nm02 := m.M02*right.M00 + m.M12*right.M01 + m.M22*right.M02
	nm10 := m.M00*right.M10 + m.M10*right.M11 + m.M20*right.M12
	nm11 := m.M01*right.M10 + m.M11*right.M11 + m.M21*right.M12
	nm12 := m.M02*right.M10 + m.M12*right.M11 + m.M22*right.M12
	nm20 := m.M00*right.M20 + m.M10*right.M21 + m.M20*right.M22
	nm21 := m.M01*right.M20 + m.M11*right.M21 + m.M21*right.M22
	nm22 := m.M02*right.M20 + m.M12*right.M21 + m.M22*right.M22
	dest.M00, dest.M01, dest.M02 = nm00, nm01, nm02
	dest.M10, dest.M11, dest.M12 = nm10, nm11, nm12
	dest.M20, dest.M21, dest.M22 = nm20, nm21, nm22
	return dest
}

func (m *Mat3[T]) Mul(right Mat3[T]) *Mat3[T] {
	return m.MulTo(right, m)
}

/**
 * @brief Pre-multiplies m by left: the transformation of m is applied
 * first, then left.
 */
func (m Mat3[T]) MulLocalTo(left Mat3[T], dest *Mat3[T]) *Mat3[T] {
	return left.MulTo(m, dest)
}

func (m *Mat3[T]) MulLocal(left Mat3[T]) *Mat3[T] {
	return m.MulLocalTo(left, m)
}

func (m Mat3[T]) MulComponentWiseTo(other Mat3[T], dest *Mat3[T]) *Mat3[T] {
	dest.M00, dest.M01, dest.M02 = m.M00*other.M00, m.M01*other.M01, m.M02*other.M02
	dest.M10, dest.M11, dest.M12 = m.M10*other.M10, m.M11*other.M11, m.M12*other.M12
	dest.M20, dest.M21, dest.M22 = m.M20*other.M20, m.M21*other.M21, m.M22*other.M22
	return dest
}

func (m *Mat3[T]) MulComponentWise(other Mat3[T]) *Mat3[T] {
	return m.MulComponentWiseTo(other, m)
}

func (m Mat3[T]) AddTo(other Mat3[T], dest *Mat3[T]) *Mat3[T] {
	dest.M00, dest.M01, dest.M02 = m.M00+other.M00, m.M01+other.M01, m.M02+other.M02
	dest.M10, dest.M11, dest.M12 = m.M10+other.M10, m.M11+other.M11, m.M12+other.M12
	dest.M20, dest.M21, dest.M22 = m.M20+other.M20, m.M21+other.M21, m.M22+other.M22
	return dest
}

func (m *Mat3[T]) Add(other Mat3[T]) *Mat3[T] {
	return m.AddTo(other, m)
}

func (m Mat3[T]) SubTo(subtrahend Mat3[T], dest *Mat3[T]) *Mat3[T] {
	dest.M00, dest.M01, dest.M02 = m.M00-subtrahend.M00, m.M01-subtrahend.M01, m.M02-subtrahend.M02
	dest.M10, dest.M11, dest.M12 = m.M10-subtrahend.M10, m.M11-subtrahend.M11, m.M12-subtrahend.M12
	dest.M20, dest.M21, dest.M22 = m.M20-subtrahend.M20, m.M21-subtrahend.M21, m.M22-subtrahend.M22
	return dest
}

func (m *Mat3[T]) Sub(subtrahend Mat3[T]) *Mat3[T] {
	return m.SubTo(subtrahend, m)
}

// LerpTo linearly interpolates every element between m and other.
func (m Mat3[T]) LerpTo(other Mat3[T], t T, dest *Mat3[T]) *Mat3[T] {
	dest.M00 = m.M00 + (other.M00-m.M00)*t
	dest.M01 = m.M01 + (other.M01-m.M01)*t
	dest.M02 = m.M02 + (other.M02-m.M02)*t
	dest.M10 = m.M10 + (other.M10-m.M10)*t
	dest.M11 = m.M11 + (other.M11-m.M11)*t
	dest.M12 = m.M12 + (other.M12-m.M12)*t
	dest.M20 = m.M20 + (other.M20-m.M20)*t
	dest.M21 = m.M21 + (other.M21-m.M21)*t
	dest.M22 = m.M22 + (other.M22-m.M22)*t
	return dest
}

func (m *Mat3[T]) Lerp(other Mat3[T], t T) *Mat3[T] {
	return m.LerpTo(other, t, m)
}

func (m Mat3[T]) Determinant() T {
	return (m.M00*m.M11-m.M01*m.M10)*m.M22 +
		(m.M02*m.M10-m.M00*m.M12)*m.M21 +
		(m.M01*m.M12-m.M02*m.M11)*m.M20
}

/**
 * @brief Inverts m into dest. The caller must make sure the matrix is
 * invertible, a zero determinant yields Inf/NaN elements.
 */
func (m Mat3[T]) InvertTo(dest *Mat3[T]) *Mat3[T] {
	s := 1.0 / m.Determinant()
	nm00 := (m.M11*m.M22 - m.M21*m.M12) * s
	nm01 := (m.M21*m.M02 - m.M01*m.M22) * s
	nm02 := (m.M01*m.M12 - m.M11*m.M02) * s
	nm10 := (m.M20*m.M12 - m.M10*m.M22) * s
	nm11 := (m.M00*m.M22 - m.M20*m.M02) * s
	nm12 := (m.M10*m.M02 - m.M00*m.M12) * s
	nm20 := (m.M10*m.M21 - m.M20*m.M11) * s
	nm21 := (m.M20*m.M01 - m.M00*m.M21) * s
	nm22 := (m.M00*m.M11 - m.M10*m.M01) * s
	dest.M00, dest.M01, dest.M02 = nm00, nm01, nm02
	dest.M10, dest.M11, dest.M12 = nm10, nm11, nm12
	dest.M20, dest.M21, dest.M22 = nm20, nm21, nm22
	return dest
}

func (m *Mat3[T]) Invert() *Mat3[T] {
	return m.InvertTo(m)
}

func (m Mat3[T]) TransposeTo(dest *Mat3[T]) *Mat3[T] {
	*dest = Mat3[T]{
		M00: m.M00, M01: m.M10, M02: m.M20,
		M10: m.M01, M11: m.M11, M12: m.M21,
		M20: m.M02, M21: m.M12, M22: m.M22,
	}
	return dest
}

func (m *Mat3[T]) Transpose() *Mat3[T] {
	return m.TransposeTo(m)
}

/**
 * @brief Computes the normal matrix of m, the inverse of its transpose,
 * in a single pass.
 */
func (m Mat3[T]) NormalTo(dest *Mat3[T]) *Mat3[T] {
	m00m11 := m.M00 * m.M11
	m01m10 := m.M01 * m.M10
	m02m10 := m.M02 * m.M10
	m00m12 := m.M00 * m.M12
	m01m12 := m.M01 * m.M12
	m02m11 := m.M02 * m.M11
	det := (m00m11-m01m10)*m.M22 + (m02m10-m00m12)*m.M21 + (m01m12-m02m11)*m.M20
	s := 1.0 / det
	nm00 := (m.M11*m.M22 - m.M21*m.M12) * s
	nm01 := (m.M20*m.M12 - m.M10*m.M22) * s
	nm02 := (m.M10*m.M21 - m.M20*m.M11) * s
	nm10 := (m.M21*m.M02 - m.M01*m.M22) * s
	nm11 := (m.M00*m.M22 - m.M20*m.M02) * s
	nm12 := (m.M20*m.M01 - m.M00*m.M21) * s
	nm20 := (m01m12 - m02m11) * s
	nm21 := (m02m10 - m00m12) * s
	nm22 := (m00m11 - m01m10) * s
	dest.M00, dest.M01, dest.M02 = nm00, nm01, nm02
	dest.M10, dest.M11, dest.M12 = nm10, nm11, nm12
	dest.M20, dest.M21, dest.M22 = nm20, nm21, nm22
	return dest
}

func (m *Mat3[T]) Normal() *Mat3[T] {
	return m.NormalTo(m)
}

/**
 * @brief Sets m to a scaling matrix.
 */
func (m *Mat3[T]) Scaling(x, y, z T) *Mat3[T] {
	*m = Mat3[T]{M00: x, M11: y, M22: z}
	return m
}

// ScaleTo applies a scaling transformation before m.
func (m Mat3[T]) ScaleTo(x, y, z T, dest *Mat3[T]) *Mat3[T] {
	dest.M00, dest.M01, dest.M02 = m.M00*x, m.M01*x, m.M02*x
	dest.M10, dest.M11, dest.M12 = m.M10*y, m.M11*y, m.M12*y
	dest.M20, dest.M21, dest.M22 = m.M20*z, m.M21*z, m.M22*z
	return dest
}

func (m *Mat3[T]) Scale(x, y, z T) *Mat3[T] {
	return m.ScaleTo(x, y, z, m)
}

// ScaleLocalTo applies a scaling transformation after m.
func (m Mat3[T]) ScaleLocalTo(x, y, z T, dest *Mat3[T]) *Mat3[T] {
	dest.M00, dest.M01, dest.M02 = x*m.M00, y*m.M01, z*m.M02
	dest.M10, dest.M11, dest.M12 = x*m.M10, y*m.M11, z*m.M12
	dest.M20, dest.M21, dest.M22 = x*m.M20, y*m.M21, z*m.M22
	return dest
}

func (m *Mat3[T]) ScaleLocal(x, y, z T) *Mat3[T] {
	return m.ScaleLocalTo(x, y, z, m)
}

/**
 * @brief Sets m to a rotation of angle radians about axis. The axis is
 * normalized first.
 */
func (m *Mat3[T]) Rotation(angle T, axis Vec3[T]) *Mat3[T] {
	n := axis.Normalize()
	x, y, z := n.X, n.Y, n.Z
	sin := Sin(angle)
	cos := CosFromSin(sin, angle)
	C := 1.0 - cos
	xy, xz, yz := x*y, x*z, y*z
	m.M00 = cos + x*x*C
	m.M10 = xy*C - z*sin
	m.M20 = xz*C + y*sin
	m.M01 = xy*C + z*sin
	m.M11 = cos + y*y*C
	m.M21 = yz*C - x*sin
	m.M02 = xz*C - y*sin
	m.M12 = yz*C + x*sin
	m.M22 = cos + z*z*C
	return m
}

// RotationAxisAngle sets m to the rotation described by a. The axis is
// normalized first.
func (m *Mat3[T]) RotationAxisAngle(a AxisAngle[T]) *Mat3[T] {
	return m.Rotation(a.Angle, a.Axis())
}

func (m *Mat3[T]) RotationX(ang T) *Mat3[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	*m = Mat3[T]{
		M00: 1,
		M11: cos, M12: sin,
		M21: -sin, M22: cos,
	}
	return m
}

func (m *Mat3[T]) RotationY(ang T) *Mat3[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	*m = Mat3[T]{
		M00: cos, M02: -sin,
		M11: 1,
		M20: sin, M22: cos,
	}
	return m
}

func (m *Mat3[T]) RotationZ(ang T) *Mat3[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	*m = Mat3[T]{
		M00: cos, M01: sin,
		M10: -sin, M11: cos,
		M22: 1,
	}
	return m
}

/**
 * @brief Sets m to a rotation of angleX about X, followed by angleY about
 * the rotated Y and angleZ about the twice rotated Z. Equivalent to
 * RotationX(angleX).RotateY(angleY).RotateZ(angleZ).
 */
func (m *Mat3[T]) RotationXYZ(angleX, angleY, angleZ T) *Mat3[T] {
	sinX := Sin(angleX)
	cosX := CosFromSin(sinX, angleX)
	sinY := Sin(angleY)
	cosY := CosFromSin(sinY, angleY)
	sinZ := Sin(angleZ)
	cosZ := CosFromSin(sinZ, angleZ)
	nsinX := -sinX
	nsinY := -sinY
	nsinZ := -sinZ

	// rotateX
	nm11 := cosX
	nm12 := sinX
	nm21 := nsinX
	nm22 := cosX
	// rotateY
	nm00 := cosY
	nm01 := nm21 * nsinY
	nm02 := nm22 * nsinY
	m.M20 = sinY
	m.M21 = nm21 * cosY
	m.M22 = nm22 * cosY
	// rotateZ
	m.M00 = nm00 * cosZ
	m.M01 = nm01*cosZ + nm11*sinZ
	m.M02 = nm02*cosZ + nm12*sinZ
	m.M10 = nm00 * nsinZ
	m.M11 = nm01*nsinZ + nm11*cosZ
	m.M12 = nm02*nsinZ + nm12*cosZ
	return m
}

// RotationZYX is equivalent to RotationZ(angleZ).RotateY(angleY).RotateX(angleX).
func (m *Mat3[T]) RotationZYX(angleZ, angleY, angleX T) *Mat3[T] {
	sinX := Sin(angleX)
	cosX := CosFromSin(sinX, angleX)
	sinY := Sin(angleY)
	cosY := CosFromSin(sinY, angleY)
	sinZ := Sin(angleZ)
	cosZ := CosFromSin(sinZ, angleZ)
	nsinZ := -sinZ
	nsinY := -sinY
	nsinX := -sinX

	// rotateZ
	nm00 := cosZ
	nm01 := sinZ
	nm10 := nsinZ
	nm11 := cosZ
	// rotateY
	nm20 := nm00 * sinY
	nm21 := nm01 * sinY
	nm22 := cosY
	m.M00 = nm00 * cosY
	m.M01 = nm01 * cosY
	m.M02 = nsinY
	// rotateX
	m.M10 = nm10*cosX + nm20*sinX
	m.M11 = nm11*cosX + nm21*sinX
	m.M12 = nm22 * sinX
	m.M20 = nm10*nsinX + nm20*cosX
	m.M21 = nm11*nsinX + nm21*cosX
	m.M22 = nm22 * cosX
	return m
}

// RotationYXZ is equivalent to RotationY(angleY).RotateX(angleX).RotateZ(angleZ).
func (m *Mat3[T]) RotationYXZ(angleY, angleX, angleZ T) *Mat3[T] {
	sinX := Sin(angleX)
	cosX := CosFromSin(sinX, angleX)
	sinY := Sin(angleY)
	cosY := CosFromSin(sinY, angleY)
	sinZ := Sin(angleZ)
	cosZ := CosFromSin(sinZ, angleZ)
	nsinY := -sinY
	nsinX := -sinX
	nsinZ := -sinZ

	// rotateY
	nm00 := cosY
	nm02 := nsinY
	nm20 := sinY
	nm22 := cosY
	// rotateX
	nm10 := nm20 * sinX
	nm11 := cosX
	nm12 := nm22 * sinX
	m.M20 = nm20 * cosX
	m.M21 = nsinX
	m.M22 = nm22 * cosX
	// rotateZ
	m.M00 = nm00*cosZ + nm10*sinZ
	m.M01 = nm11 * sinZ
	m.M02 = nm02*cosZ + nm12*sinZ
	m.M10 = nm00*nsinZ + nm10*cosZ
	m.M11 = nm11 * cosZ
	m.M12 = nm02*nsinZ + nm12*cosZ
	return m
}

/**
 * @brief Sets m to the rotation represented by the unit quaternion q.
 */
func (m *Mat3[T]) RotationQuat(q Quat[T]) *Mat3[T] {
	w2 := q.W * q.W
	x2 := q.X * q.X
	y2 := q.Y * q.Y
	z2 := q.Z * q.Z
	zw := q.Z * q.W
	xy := q.X * q.Y
	xz := q.X * q.Z
	yw := q.Y * q.W
	yz := q.Y * q.Z
	xw := q.X * q.W
	m.M00 = w2 + x2 - z2 - y2
	m.M01 = xy + zw + zw + xy
	m.M02 = xz - yw + xz - yw
	m.M10 = -zw + xy - zw + xy
	m.M11 = y2 - z2 + w2 - x2
	m.M12 = yz + yz + xw + xw
	m.M20 = yw + xz + xz + yw
	m.M21 = yz + yz - xw - xw
	m.M22 = z2 - y2 - x2 + w2
	return m
}

func (m Mat3[T]) RotateXTo(ang T, dest *Mat3[T]) *Mat3[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	rm11 := cos
	rm21 := -sin
	rm12 := sin
	rm22 := cos

	// add temporaries for dependent values
	nm10 := m.M10*rm11 + m.M20*rm12
	nm11 := m.M11*rm11 + m.M21*rm12
	nm12 := m.M12*rm11 + m.M22*rm12
	dest.M20 = m.M10*rm21 + m.M20*rm22
	dest.M21 = m.M11*rm21 + m.M21*rm22
	dest.M22 = m.M12*rm21 + m.M22*rm22
	dest.M10 = nm10
	dest.M11 = nm11
	dest.M12 = nm12
	dest.M00 = m.M00
	dest.M01 = m.M01
	dest.M02 = m.M02
	return dest
}

func (m *Mat3[T]) RotateX(ang T) *Mat3[T] {
	return m.RotateXTo(ang, m)
}

func (m Mat3[T]) RotateYTo(ang T, dest *Mat3[T]) *Mat3[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	rm00 := cos
	rm20 := sin
	rm02 := -sin
	rm22 := cos

	nm00 := m.M00*rm00 + m.M20*rm02
	nm01 := m.M01*rm00 + m.M21*rm02
	nm02 := m.M02*rm00 + m.M22*rm02
	dest.M20 = m.M00*rm20 + m.M20*rm22
	dest.M21 = m.M01*rm20 + m.M21*rm22
	dest.M22 = m.M02*rm20 + m.M22*rm22
	dest.M00 = nm00
	dest.M01 = nm01
	dest.M02 = nm02
	dest.M10 = m.M10
	dest.M11 = m.M11
	dest.M12 = m.M12
	return dest
}

func (m *Mat3[T]) RotateY(ang T) *Mat3[T] {
	return m.RotateYTo(ang, m)
}

func (m Mat3[T]) RotateZTo(ang T, dest *Mat3[T]) *Mat3[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	rm00 := cos
	rm10 := -sin
	rm01 := sin
	rm11 := cos

	nm00 := m.M00*rm00 + m.M10*rm01
	nm01 := m.M01*rm00 + m.M11*rm01
	nm02 := m.M02*rm00 + m.M12*rm01
	dest.M10 = m.M00*rm10 + m.M10*rm11
	dest.M11 = m.M01*rm10 + m.M11*rm11
	dest.M12 = m.M02*rm10 + m.M12*rm11
	dest.M00 = nm00
	dest.M01 = nm01
	dest.M02 = nm02
	dest.M20 = m.M20
	dest.M21 = m.M21
	dest.M22 = m.M22
	return dest
}

func (m *Mat3[T]) RotateZ(ang T) *Mat3[T] {
	return m.RotateZTo(ang, m)
}

// RotateXYZTo is equivalent to RotateX(angleX).RotateY(angleY).RotateZ(angleZ).
func (m Mat3[T]) RotateXYZTo(angleX, angleY, angleZ T, dest *Mat3[T]) *Mat3[T] {
	sinX := Sin(angleX)
	cosX := CosFromSin(sinX, angleX)
	sinY := Sin(angleY)
	cosY := CosFromSin(sinY, angleY)
	sinZ := Sin(angleZ)
	cosZ := CosFromSin(sinZ, angleZ)
	nsinX := -sinX
	nsinY := -sinY
	nsinZ := -sinZ

	// rotateX
	nm10 := m.M10*cosX + m.M20*sinX
	nm11 := m.M11*cosX + m.M21*sinX
	nm12 := m.M12*cosX + m.M22*sinX
	nm20 := m.M10*nsinX + m.M20*cosX
	nm21 := m.M11*nsinX + m.M21*cosX
	nm22 := m.M12*nsinX + m.M22*cosX
	// rotateY
	nm00 := m.M00*cosY + nm20*nsinY
	nm01 := m.M01*cosY + nm21*nsinY
	nm02 := m.M02*cosY + nm22*nsinY
	dest.M20 = m.M00*sinY + nm20*cosY
	dest.M21 = m.M01*sinY + nm21*cosY
	dest.M22 = m.M02*sinY + nm22*cosY
	// rotateZ
	dest.M00 = nm00*cosZ + nm10*sinZ
	dest.M01 = nm01*cosZ + nm11*sinZ
	dest.M02 = nm02*cosZ + nm12*sinZ
	dest.M10 = nm00*nsinZ + nm10*cosZ
	dest.M11 = nm01*nsinZ + nm11*cosZ
	dest.M12 = nm02*nsinZ + nm12*cosZ
	return dest
}

func (m *Mat3[T]) RotateXYZ(angleX, angleY, angleZ T) *Mat3[T] {
	return m.RotateXYZTo(angleX, angleY, angleZ, m)
}

// RotateZYXTo is equivalent to RotateZ(angleZ).RotateY(angleY).RotateX(angleX).
func (m Mat3[T]) RotateZYXTo(angleZ, angleY, angleX T, dest *Mat3[T]) *Mat3[T] {
	sinX := Sin(angleX)
	cosX := CosFromSin(sinX, angleX)
	sinY := Sin(angleY)
	cosY := CosFromSin(sinY, angleY)
	sinZ := Sin(angleZ)
	cosZ := CosFromSin(sinZ, angleZ)
	nsinZ := -sinZ
	nsinY := -sinY
	nsinX := -sinX

	// rotateZ
	nm00 := m.M00*cosZ + m.M10*sinZ
	nm01 := m.M01*cosZ + m.M11*sinZ
	nm02 := m.M02*cosZ + m.M12*sinZ
	nm10 := m.M00*nsinZ + m.M10*cosZ
	nm11 := m.M01*nsinZ + m.M11*cosZ
	nm12 := m.M02*nsinZ + m.M12*cosZ
	// rotateY
	nm20 := nm00*sinY + m.M20*cosY
	nm21 := nm01*sinY + m.M21*cosY
	nm22 := nm02*sinY + m.M22*cosY
	dest.M00 = nm00*cosY + m.M20*nsinY
	dest.M01 = nm01*cosY + m.M21*nsinY
	dest.M02 = nm02*cosY + m.M22*nsinY
	// rotateX
	dest.M10 = nm10*cosX + nm20*sinX
	dest.M11 = nm11*cosX + nm21*sinX
	dest.M12 = nm12*cosX + nm22*sinX
	dest.M20 = nm10*nsinX + nm20*cosX
	dest.M21 = nm11*nsinX + nm21*cosX
	dest.M22 = nm12*nsinX + nm22*cosX
	return dest
}

func (m *Mat3[T]) RotateZYX(angleZ, angleY, angleX T) *Mat3[T] {
	return m.RotateZYXTo(angleZ, angleY, angleX, m)
}

// RotateYXZTo is equivalent to RotateY(angleY).RotateX(angleX).RotateZ(angleZ).
func (m Mat3[T]) RotateYXZTo(angleY, angleX, angleZ T, dest *Mat3[T]) *Mat3[T] {
	sinX := Sin(angleX)
	cosX := CosFromSin(sinX, angleX)
	sinY := Sin(angleY)
	cosY := CosFromSin(sinY, angleY)
	sinZ := Sin(angleZ)
	cosZ := CosFromSin(sinZ, angleZ)
	nsinY := -sinY
	nsinX := -sinX
	nsinZ := -sinZ

	// rotateY
	nm20 := m.M00*sinY + m.M20*cosY
	nm21 := m.M01*sinY + m.M21*cosY
	nm22 := m.M02*sinY + m.M22*cosY
	nm00 := m.M00*cosY + m.M20*nsinY
	nm01 := m.M01*cosY + m.M21*nsinY
	nm02 := m.M02*cosY + m.M22*nsinY
	// rotateX
	nm10 := m.M10*cosX + nm20*sinX
	nm11 := m.M11*cosX + nm21*sinX
	nm12 := m.M12*cosX + nm22*sinX
	dest.M20 = m.M10*nsinX + nm20*cosX
	dest.M21 = m.M11*nsinX + nm21*cosX
	dest.M22 = m.M12*nsinX + nm22*cosX
	// rotateZ
	dest.M00 = nm00*cosZ + nm10*sinZ
	dest.M01 = nm01*cosZ + nm11*sinZ
	dest.M02 = nm02*cosZ + nm12*sinZ
	dest.M10 = nm00*nsinZ + nm10*cosZ
	dest.M11 = nm01*nsinZ + nm11*cosZ
	dest.M12 = nm02*nsinZ + nm12*cosZ
	return dest
}

func (m *Mat3[T]) RotateYXZ(angleY, angleX, angleZ T) *Mat3[T] {
	return m.RotateYXZTo(angleY, angleX, angleZ, m)
}

/**
 * @brief Applies a rotation of angle radians about axis, normalized first,
 * before m, i.e. dest = m * R. The rotation matrix is never built.
 */
func (m Mat3[T]) RotateTo(angle T, axis Vec3[T], dest *Mat3[T]) *Mat3[T] {
	n := axis.Normalize()
	x, y, z := n.X, n.Y, n.Z
	s := Sin(angle)
	c := CosFromSin(s, angle)
	C := 1.0 - c

	xx, xy, xz := x*x, x*y, x*z
	yy, yz := y*y, y*z
	zz := z * z
	rm00 := xx*C + c
	rm01 := xy*C + z*s
	rm02 := xz*C - y*s
	rm10 := xy*C - z*s
	rm11 := yy*C + c
	rm12 := yz*C + x*s
	rm20 := xz*C + y*s
	rm21 := yz*C - x*s
	rm22 := zz*C + c

	nm00 := m.M00*rm00 + m.M10*rm01 + m.M20*rm02
	nm01 := m.M01*rm00 + m.M11*rm01 + m.M21*rm02
	nm02 := m.M02*rm00 + m.M12*rm01 + m.M22*rm02
	nm10 := m.M00*rm10 + m.M10*rm11 + m.M20*rm12
	nm11 := m.M01*rm10 + m.M11*rm11 + m.M21*rm12
	nm12 := m.M02*rm10 + m.M12*rm11 + m.M22*rm12
	dest.M20 = m.M00*rm20 + m.M10*rm21 + m.M20*rm22
	dest.M21 = m.M01*rm20 + m.M11*rm21 + m.M21*rm22
	dest.M22 = m.M02*rm20 + m.M12*rm21 + m.M22*rm22
	dest.M00 = nm00
	dest.M01 = nm01
	dest.M02 = nm02
	dest.M10 = nm10
	dest.M11 = nm11
	dest.M12 = nm12
	return dest
}

func (m *Mat3[T]) Rotate(angle T, axis Vec3[T]) *Mat3[T] {
	return m.RotateTo(angle, axis, m)
}

func (m Mat3[T]) RotateAxisAngleTo(a AxisAngle[T], dest *Mat3[T]) *Mat3[T] {
	return m.RotateTo(a.Angle, a.Axis(), dest)
}

func (m *Mat3[T]) RotateAxisAngle(a AxisAngle[T]) *Mat3[T] {
	return m.RotateAxisAngleTo(a, m)
}

// RotateQuatTo applies the rotation of the unit quaternion q before m.
func (m Mat3[T]) RotateQuatTo(q Quat[T], dest *Mat3[T]) *Mat3[T] {
	var r Mat3[T]
	r.RotationQuat(q)
	nm00 := m.M00*r.M00 + m.M10*r.M01 + m.M20*r.M02
	nm01 := m.M01*r.M00 + m.M11*r.M01 + m.M21*r.M02
	nm02 := m.M02*r.M00 + m.M12*r.M01 + m.M22*r.M02
	nm10 := m.M00*r.M10 + m.M10*r.M11 + m.M20*r.M12
	nm11 := m.M01*r.M10 + m.M11*r.M11 + m.M21*r.M12
	nm12 := m.M02*r.M10 + m.M12*r.M11 + m.M22*r.M12
	dest.M20 = m.M00*r.M20 + m.M10*r.M21 + m.M20*r.M22
	dest.M21 = m.M01*r.M20 + m.M11*r.M21 + m.M21*r.M22
	dest.M22 = m.M02*r.M20 + m.M12*r.M21 + m.M22*r.M22
	dest.M00, dest.M01, dest.M02 = nm00, nm01, nm02
	dest.M10, dest.M11, dest.M12 = nm10, nm11, nm12
	return dest
}

func (m *Mat3[T]) RotateQuat(q Quat[T]) *Mat3[T] {
	return m.RotateQuatTo(q, m)
}

/**
 * @brief Applies a rotation of angle radians about axis, normalized first,
 * after m, i.e. dest = R * m.
 */
func (m Mat3[T]) RotateLocalTo(angle T, axis Vec3[T], dest *Mat3[T]) *Mat3[T] {
	n := axis.Normalize()
	x, y, z := n.X, n.Y, n.Z
	s := Sin(angle)
	c := CosFromSin(s, angle)
	C := 1.0 - c
	xx, xy, xz := x*x, x*y, x*z
	yy, yz := y*y, y*z
	zz := z * z
	lm00 := xx*C + c
	lm01 := xy*C + z*s
	lm02 := xz*C - y*s
	lm10 := xy*C - z*s
	lm11 := yy*C + c
	lm12 := yz*C + x*s
	lm20 := xz*C + y*s
	lm21 := yz*C - x*s
	lm22 := zz*C + c
	nm00 := lm00*m.M00 + lm10*m.M01 + lm20*m.M02
	nm01 := lm01*m.M00 + lm11*m.M01 + lm21*m.M02
	nm02 := lm02*m.M00 + lm12*m.M01 + lm22*m.M02
	nm10 := lm00*m.M10 + lm10*m.M11 + lm20*m.M12
	nm11 := lm01*m.M10 + lm11*m.M11 + lm21*m.M12
	nm12 := lm02*m.M10 + lm12*m.M11 + lm22*m.M12
	nm20 := lm00*m.M20 + lm10*m.M21 + lm20*m.M22
	nm21 := lm01*m.M20 + lm11*m.M21 + lm21*m.M22
	nm22 := lm02*m.M20 + lm12*m.M21 + lm22*m.M22
	dest.M00, dest.M01, dest.M02 = nm00, nm01, nm02
	dest.M10, dest.M11, dest.M12 = nm10, nm11, nm12
	dest.M20, dest.M21, dest.M22 = nm20, nm21, nm22
	return dest
}

func (m *Mat3[T]) RotateLocal(angle T, axis Vec3[T]) *Mat3[T] {
	return m.RotateLocalTo(angle, axis, m)
}

func (m Mat3[T]) RotateLocalXTo(ang T, dest *Mat3[T]) *Mat3[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	nm01 := cos*m.M01 - sin*m.M02
	nm02 := sin*m.M01 + cos*m.M02
	nm11 := cos*m.M11 - sin*m.M12
	nm12 := sin*m.M11 + cos*m.M12
	nm21 := cos*m.M21 - sin*m.M22
	nm22 := sin*m.M21 + cos*m.M22
	dest.M00, dest.M01, dest.M02 = m.M00, nm01, nm02
	dest.M10, dest.M11, dest.M12 = m.M10, nm11, nm12
	dest.M20, dest.M21, dest.M22 = m.M20, nm21, nm22
	return dest
}

func (m *Mat3[T]) RotateLocalX(ang T) *Mat3[T] {
	return m.RotateLocalXTo(ang, m)
}

func (m Mat3[T]) RotateLocalYTo(ang T, dest *Mat3[T]) *Mat3[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	nm00 := cos*m.M00 + sin*m.M02
	nm02 := -sin*m.M00 + cos*m.M02
	nm10 := cos*m.M10 + sin*m.M12
	nm12 := -sin*m.M10 + cos*m.M12
	nm20 := cos*m.M20 + sin*m.M22
	nm22 := -sin*m.M20 + cos*m.M22
	dest.M00, dest.M01, dest.M02 = nm00, m.M01, nm02
	dest.M10, dest.M11, dest.M12 = nm10, m.M11, nm12
	dest.M20, dest.M21, dest.M22 = nm20, m.M21, nm22
	return dest
}

func (m *Mat3[T]) RotateLocalY(ang T) *Mat3[T] {
	return m.RotateLocalYTo(ang, m)
}

func (m Mat3[T]) RotateLocalZTo(ang T, dest *Mat3[T]) *Mat3[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	nm00 := cos*m.M00 - sin*m.M01
	nm01 := sin*m.M00 + cos*m.M01
	nm10 := cos*m.M10 - sin*m.M11
	nm11 := sin*m.M10 + cos*m.M11
	nm20 := cos*m.M20 - sin*m.M21
	nm21 := sin*m.M20 + cos*m.M21
	dest.M00, dest.M01, dest.M02 = nm00, nm01, m.M02
	dest.M10, dest.M11, dest.M12 = nm10, nm11, m.M12
	dest.M20, dest.M21, dest.M22 = nm20, nm21, m.M22
	return dest
}

func (m *Mat3[T]) RotateLocalZ(ang T) *Mat3[T] {
	return m.RotateLocalZTo(ang, m)
}

// RotateLocalQuatTo applies the rotation of q after m.
func (m Mat3[T]) RotateLocalQuatTo(q Quat[T], dest *Mat3[T]) *Mat3[T] {
	var l Mat3[T]
	l.RotationQuat(q)
	return l.MulTo(m, dest)
}

func (m *Mat3[T]) RotateLocalQuat(q Quat[T]) *Mat3[T] {
	return m.RotateLocalQuatTo(q, m)
}

// Transform returns m * v.
func (m Mat3[T]) Transform(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m.M00*v.X + m.M10*v.Y + m.M20*v.Z,
		m.M01*v.X + m.M11*v.Y + m.M21*v.Z,
		m.M02*v.X + m.M12*v.Y + m.M22*v.Z,
	}
}

// TransformTranspose returns transpose(m) * v without transposing m.
func (m Mat3[T]) TransformTranspose(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m.M00*v.X + m.M01*v.Y + m.M02*v.Z,
		m.M10*v.X + m.M11*v.Y + m.M12*v.Z,
		m.M20*v.X + m.M21*v.Y + m.M22*v.Z,
	}
}

/**
 * @brief Returns the row at the given index.
 *
 * @return core.ErrIndexOutOfRange for an index outside [0, 3).
 */
func (m Mat3[T]) Row(row int) (Vec3[T], error) {
	switch row {
	case 0:
		return Vec3[T]{m.M00, m.M10, m.M20}, nil
	case 1:
		return Vec3[T]{m.M01, m.M11, m.M21}, nil
	case 2:
		return Vec3[T]{m.M02, m.M12, m.M22}, nil
	}
	return Vec3[T]{}, fmt.Errorf("mat3 row %d: %w", row, core.ErrIndexOutOfRange)
}

func (m *Mat3[T]) SetRow(row int, v Vec3[T]) error {
	switch row {
	case 0:
		m.M00, m.M10, m.M20 = v.X, v.Y, v.Z
	case 1:
		m.M01, m.M11, m.M21 = v.X, v.Y, v.Z
	case 2:
		m.M02, m.M12, m.M22 = v.X, v.Y, v.Z
	default:
		return fmt.Errorf("mat3 row %d: %w", row, core.ErrIndexOutOfRange)
	}
	return nil
}

func (m Mat3[T]) Column(column int) (Vec3[T], error) {
	switch column {
	case 0:
		return Vec3[T]{m.M00, m.M01, m.M02}, nil
	case 1:
		return Vec3[T]{m.M10, m.M11, m.M12}, nil
	case 2:
		return Vec3[T]{m.M20, m.M21, m.M22}, nil
	}
	return Vec3[T]{}, fmt.Errorf("mat3 column %d: %w", column, core.ErrIndexOutOfRange)
}

func (m *Mat3[T]) SetColumn(column int, v Vec3[T]) error {
	switch column {
	case 0:
		m.M00, m.M01, m.M02 = v.X, v.Y, v.Z
	case 1:
		m.M10, m.M11, m.M12 = v.X, v.Y, v.Z
	case 2:
		m.M20, m.M21, m.M22 = v.X, v.Y, v.Z
	default:
		return fmt.Errorf("mat3 column %d: %w", column, core.ErrIndexOutOfRange)
	}
	return nil
}

// Element returns the value at the given column and row.
func (m Mat3[T]) Element(column, row int) (T, error) {
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
	}
	return 0, fmt.Errorf("mat3 row %d: %w", row, core.ErrIndexOutOfRange)
}

func (m *Mat3[T]) SetElement(column, row int, value T) error {
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
	default:
		return fmt.Errorf("mat3 row %d: %w", row, core.ErrIndexOutOfRange)
	}
	return m.SetColumn(column, c)
}

/**
 * @brief Applies a rotation transformation that makes -Z point along dir
 * before m. up only needs to be roughly perpendicular to dir.
 */
func (m Mat3[T]) LookAlongTo(dir, up Vec3[T], dest *Mat3[T]) *Mat3[T] {
	var r Mat3[T]
	r.SetLookAlong(dir, up)
	return m.MulTo(r, dest)
}

func (m *Mat3[T]) LookAlong(dir, up Vec3[T]) *Mat3[T] {
	return m.LookAlongTo(dir, up, m)
}

// SetLookAlong sets m to a rotation that maps dir onto -Z.
func (m *Mat3[T]) SetLookAlong(dir, up Vec3[T]) *Mat3[T] {
	// Normalize direction
	invDirLength := InvSqrt(dir.LengthSquared())
	dirX := -dir.X * invDirLength
	dirY := -dir.Y * invDirLength
	dirZ := -dir.Z * invDirLength
	// left = up x direction
	leftX := up.Y*dirZ - up.Z*dirY
	leftY := up.Z*dirX - up.X*dirZ
	leftZ := up.X*dirY - up.Y*dirX
	invLeftLength := InvSqrt(leftX*leftX + leftY*leftY + leftZ*leftZ)
	leftX *= invLeftLength
	leftY *= invLeftLength
	leftZ *= invLeftLength
	// up = direction x left
	upnX := dirY*leftZ - dirZ*leftY
	upnY := dirZ*leftX - dirX*leftZ
	upnZ := dirX*leftY - dirY*leftX

	m.M00, m.M01, m.M02 = leftX, upnX, dirX
	m.M10, m.M11, m.M12 = leftY, upnY, dirY
	m.M20, m.M21, m.M22 = leftZ, upnZ, dirZ
	return m
}

/**
 * @brief Sets m to a rotation that maps +Z onto dir, the inverse of the
 * look-along rotation for a negated direction.
 */
func (m *Mat3[T]) RotationTowards(dir, up Vec3[T]) *Mat3[T] {
	ndir := dir.Normalize()
	// left = up x direction
	left := up.Cross(ndir).Normalize()
	// up = direction x left
	upn := ndir.Cross(left)
	m.M00, m.M01, m.M02 = left.X, left.Y, left.Z
	m.M10, m.M11, m.M12 = upn.X, upn.Y, upn.Z
	m.M20, m.M21, m.M22 = ndir.X, ndir.Y, ndir.Z
	return m
}

func (m Mat3[T]) RotateTowardsTo(dir, up Vec3[T], dest *Mat3[T]) *Mat3[T] {
	var r Mat3[T]
	r.RotationTowards(dir, up)
	return m.MulTo(r, dest)
}

func (m *Mat3[T]) RotateTowards(dir, up Vec3[T]) *Mat3[T] {
	return m.RotateTowardsTo(dir, up, m)
}

// GetScale returns the length of each column.
func (m Mat3[T]) GetScale() Vec3[T] {
	return Vec3[T]{
		Sqrt(m.M00*m.M00 + m.M01*m.M01 + m.M02*m.M02),
		Sqrt(m.M10*m.M10 + m.M11*m.M11 + m.M12*m.M12),
		Sqrt(m.M20*m.M20 + m.M21*m.M21 + m.M22*m.M22),
	}
}

// PositiveZ returns the direction +Z is mapped to by the inverse of m.
func (m Mat3[T]) PositiveZ() Vec3[T] {
	return Vec3[T]{
		m.M10*m.M21 - m.M11*m.M20,
		m.M20*m.M01 - m.M21*m.M00,
		m.M00*m.M11 - m.M01*m.M10,
	}.Normalize()
}

// NormalizedPositiveZ is PositiveZ for a matrix known to be orthonormal.
func (m Mat3[T]) NormalizedPositiveZ() Vec3[T] {
	return Vec3[T]{m.M02, m.M12, m.M22}
}

func (m Mat3[T]) PositiveX() Vec3[T] {
	return Vec3[T]{
		m.M11*m.M22 - m.M12*m.M21,
		m.M02*m.M21 - m.M01*m.M22,
		m.M01*m.M12 - m.M02*m.M11,
	}.Normalize()
}

func (m Mat3[T]) NormalizedPositiveX() Vec3[T] {
	return Vec3[T]{m.M00, m.M10, m.M20}
}

func (m Mat3[T]) PositiveY() Vec3[T] {
	return Vec3[T]{
		m.M12*m.M20 - m.M10*m.M22,
		m.M00*m.M22 - m.M02*m.M20,
		m.M02*m.M10 - m.M00*m.M12,
	}.Normalize()
}

func (m Mat3[T]) NormalizedPositiveY() Vec3[T] {
	return Vec3[T]{m.M01, m.M11, m.M21}
}

// GetRotation returns the rotation of m, which must be a pure rotation,
// as an axis-angle.
func (m Mat3[T]) GetRotation() AxisAngle[T] {
	return AxisAngleFromMat3(m)
}

// GetNormalizedRotation returns the rotation of m, assuming its columns
// have unit length.
func (m Mat3[T]) GetNormalizedRotation() Quat[T] {
	return QuatFromMat3(m)
}

// GetUnnormalizedRotation returns the rotation of m, normalizing its
// columns first so that any scale is ignored.
func (m Mat3[T]) GetUnnormalizedRotation() Quat[T] {
	return QuatFromMat3Unnormalized(m)
}

/**
 * @brief Extracts the Euler angles (x, y, z) such that m equals
 * RotationZYX(z, y, x). m must be a pure rotation; no check is made.
 */
func (m Mat3[T]) GetEulerAnglesZYX() Vec3[T] {
	return Vec3[T]{
		Atan2(m.M12, m.M22),
		Atan2(-m.M02, Sqrt(m.M12*m.M12+m.M22*m.M22)),
		Atan2(m.M01, m.M00),
	}
}

// SetSkewSymmetric sets m to the matrix of the cross product with (-c, -b, -a):
//
//	 0  a -b
//	-a  0  c
//	 b -c  0
func (m *Mat3[T]) SetSkewSymmetric(a, b, c T) *Mat3[T] {
	m.M00, m.M11, m.M22 = 0, 0, 0
	m.M01 = -a
	m.M02 = b
	m.M10 = a
	m.M12 = -c
	m.M20 = -b
	m.M21 = c
	return m
}

// Swap exchanges the contents of m and other.
func (m *Mat3[T]) Swap(other *Mat3[T]) *Mat3[T] {
	*m, *other = *other, *m
	return m
}

// Equals reports whether all elements are bit-identical.
func (m Mat3[T]) Equals(other Mat3[T]) bool {
	return bitsEqual(m.M00, other.M00) && bitsEqual(m.M01, other.M01) && bitsEqual(m.M02, other.M02) &&
		bitsEqual(m.M10, other.M10) && bitsEqual(m.M11, other.M11) && bitsEqual(m.M12, other.M12) &&
		bitsEqual(m.M20, other.M20) && bitsEqual(m.M21, other.M21) && bitsEqual(m.M22, other.M22)
}

func (m Mat3[T]) Hash() uint64 {
	return hashFloats(m.M00, m.M01, m.M02, m.M10, m.M11, m.M12, m.M20, m.M21, m.M22)
}

func (m Mat3[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%10.3e %10.3e %10.3e\n", m.M00, m.M10, m.M20)
	fmt.Fprintf(&sb, "%10.3e %10.3e %10.3e\n", m.M01, m.M11, m.M21)
	fmt.Fprintf(&sb, "%10.3e %10.3e %10.3e\n", m.M02, m.M12, m.M22)
	return sb.String()
}
