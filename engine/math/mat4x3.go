package math

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/linmath/engine/core"
	"golang.org/x/exp/constraints"
)

func NewMat4x3Identity[T constraints.Float]() Mat4x3[T] {
	return Mat4x3[T]{M00: 1, M11: 1, M22: 1}
}

// NewMat4x3 creates a matrix from its elements given in column-major order.
func NewMat4x3[T constraints.Float](
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22,
	m30, m31, m32 T) Mat4x3[T] {
	return Mat4x3[T]{
		M00: m00, M01: m01, M02: m02,
		M10: m10, M11: m11, M12: m12,
		M20: m20, M21: m21, M22: m22,
		M30: m30, M31: m31, M32: m32,
	}
}

// NewMat4x3FromMat4 drops the last row of mat, which is assumed to be
// (0, 0, 0, 1).
func NewMat4x3FromMat4[T constraints.Float](mat Mat4[T]) Mat4x3[T] {
	return Mat4x3[T]{
		M00: mat.M00, M01: mat.M01, M02: mat.M02,
		M10: mat.M10, M11: mat.M11, M12: mat.M12,
		M20: mat.M20, M21: mat.M21, M22: mat.M22,
		M30: mat.M30, M31: mat.M31, M32: mat.M32,
	}
}

func ConvertMat4x3[U, T constraints.Float](mat Mat4x3[T]) Mat4x3[U] {
	return Mat4x3[U]{
		M00: U(mat.M00), M01: U(mat.M01), M02: U(mat.M02),
		M10: U(mat.M10), M11: U(mat.M11), M12: U(mat.M12),
		M20: U(mat.M20), M21: U(mat.M21), M22: U(mat.M22),
		M30: U(mat.M30), M31: U(mat.M31), M32: U(mat.M32),
	}
}

func (m *Mat4x3[T]) Identity() *Mat4x3[T] {
	*m = Mat4x3[T]{M00: 1, M11: 1, M22: 1}
	return m
}

func (m *Mat4x3[T]) Zero() *Mat4x3[T] {
	*m = Mat4x3[T]{}
	return m
}

func (m *Mat4x3[T]) SetFrom(other Mat4x3[T]) *Mat4x3[T] {
	*m = other
	return m
}

// SetMat3 stores mat as the linear part and clears the translation.
func (m *Mat4x3[T]) SetMat3(mat Mat3[T]) *Mat4x3[T] {
	*m = Mat4x3[T]{
		M00: mat.M00, M01: mat.M01, M02: mat.M02,
		M10: mat.M10, M11: mat.M11, M12: mat.M12,
		M20: mat.M20, M21: mat.M21, M22: mat.M22,
	}
	return m
}

// Mat4 returns m with the implicit last row (0, 0, 0, 1) made explicit.
func (m Mat4x3[T]) Mat4() Mat4[T] {
	return NewMat4FromMat4x3(m)
}

/**
 * @brief Multiplies m by right: right is applied first, then m. Both are
 * affine so the product is computed without the implicit last row.
 */
func (m Mat4x3[T]) MulTo(right Mat4x3[T], dest *Mat4x3[T]) *Mat4x3[T] {
	nm00 := m.M00*right.M00 + m.M10*right.M01 + m.M20*right.M02
	nm01 := m.M01*right.M00 + m.M11*right.M01 + m.M21*right.M02
	nm02 := m.M02*right.M00 + m.M12*right.M01 + m.M22*right.M02
	nm10 := m.M00*right.M10 + m.M10*right.M11 + m.M20*right.M12
	nm11 := m.M01*right.M10 + m.M11*right.M11 + m.M21*right.M12
	nm12 := m.M02*right.M10 + m.M12*right.M11 + m.M22*right.M12
	nm20 := m.M00*right.M20 + m.M10*right.M21 + m.M20*right.M22
	nm21 := m.M01*right.M20 + m.M11*right.M21 + m.M21*right.M22
	nm22 := m.M02*right.M20 + m.M12*right.M21 + m.M22*right.M22
	nm30 := m.M00*right.M30 + m.M10*right.M31 + m.M20*right.M32 + m.M30
	nm31 := m.M01*right.M30 + m.M11*right.M31 + m.M21*right.M32 + m.M31
	nm32 := m.M02*right.M30 + m.M12*right.M31 + m.M22*right.M32 + m.M32
	dest.M00, dest.M01, dest.M02 = nm00, nm01, nm02
	dest.M10, dest.M11, dest.M12 = nm10, nm11, nm12
	dest.M20, dest.M21, dest.M22 = nm20, nm21, nm22
	dest.M30, dest.M31, dest.M32 = nm30, nm31, nm32
	return dest
}

func (m *Mat4x3[T]) Mul(right Mat4x3[T]) *Mat4x3[T] {
	return m.MulTo(right, m)
}

func (m Mat4x3[T]) MulLocalTo(left Mat4x3[T], dest *Mat4x3[T]) *Mat4x3[T] {
	return left.MulTo(m, dest)
}

func (m *Mat4x3[T]) MulLocal(left Mat4x3[T]) *Mat4x3[T] {
	return m.MulLocalTo(left, m)
}

func (m Mat4x3[T]) MulComponentWiseTo(other Mat4x3[T], dest *Mat4x3[T]) *Mat4x3[T] {
	dest.M00, dest.M01, dest.M02 = m.M00*other.M00, m.M01*other.M01, m.M02*other.M02
	dest.M10, dest.M11, dest.M12 = m.M10*other.M10, m.M11*other.M11, m.M12*other.M12
	dest.M20, dest.M21, dest.M22 = m.M20*other.M20, m.M21*other.M21, m.M22*other.M22
	dest.M30, dest.M31, dest.M32 = m.M30*other.M30, m.M31*other.M31, m.M32*other.M32
	return dest
}

func (m *Mat4x3[T]) MulComponentWise(other Mat4x3[T]) *Mat4x3[T] {
	return m.MulComponentWiseTo(other, m)
}

func (m Mat4x3[T]) AddTo(other Mat4x3[T], dest *Mat4x3[T]) *Mat4x3[T] {
	dest.M00, dest.M01, dest.M02 = m.M00+other.M00, m.M01+other.M01, m.M02+other.M02
	dest.M10, dest.M11, dest.M12 = m.M10+other.M10, m.M11+other.M11, m.M12+other.M12
	dest.M20, dest.M21, dest.M22 = m.M20+other.M20, m.M21+other.M21, m.M22+other.M22
	dest.M30, dest.M31, dest.M32 = m.M30+other.M30, m.M31+other.M31, m.M32+other.M32
	return dest
}

func (m *Mat4x3[T]) Add(other Mat4x3[T]) *Mat4x3[T] {
	return m.AddTo(other, m)
}

func (m Mat4x3[T]) SubTo(subtrahend Mat4x3[T], dest *Mat4x3[T]) *Mat4x3[T] {
	dest.M00, dest.M01, dest.M02 = m.M00-subtrahend.M00, m.M01-subtrahend.M01, m.M02-subtrahend.M02
	dest.M10, dest.M11, dest.M12 = m.M10-subtrahend.M10, m.M11-subtrahend.M11, m.M12-subtrahend.M12
	dest.M20, dest.M21, dest.M22 = m.M20-subtrahend.M20, m.M21-subtrahend.M21, m.M22-subtrahend.M22
	dest.M30, dest.M31, dest.M32 = m.M30-subtrahend.M30, m.M31-subtrahend.M31, m.M32-subtrahend.M32
	return dest
}

func (m *Mat4x3[T]) Sub(subtrahend Mat4x3[T]) *Mat4x3[T] {
	return m.SubTo(subtrahend, m)
}

func (m Mat4x3[T]) LerpTo(other Mat4x3[T], t T, dest *Mat4x3[T]) *Mat4x3[T] {
	dest.M00, dest.M01, dest.M02 = m.M00+(other.M00-m.M00)*t, m.M01+(other.M01-m.M01)*t, m.M02+(other.M02-m.M02)*t
	dest.M10, dest.M11, dest.M12 = m.M10+(other.M10-m.M10)*t, m.M11+(other.M11-m.M11)*t, m.M12+(other.M12-m.M12)*t
	dest.M20, dest.M21, dest.M22 = m.M20+(other.M20-m.M20)*t, m.M21+(other.M21-m.M21)*t, m.M22+(other.M22-m.M22)*t
	dest.M30, dest.M31, dest.M32 = m.M30+(other.M30-m.M30)*t, m.M31+(other.M31-m.M31)*t, m.M32+(other.M32-m.M32)*t
	return dest
}

func (m *Mat4x3[T]) Lerp(other Mat4x3[T], t T) *Mat4x3[T] {
	return m.LerpTo(other, t, m)
}

// Determinant of the linear part; the translation does not contribute.
func (m Mat4x3[T]) Determinant() T {
	return NewMat3FromMat4x3(m).Determinant()
}

/**
 * @brief Inverts the affine transformation m: the linear part is
 * inverted and the translation is mapped back through it.
 */
func (m Mat4x3[T]) InvertTo(dest *Mat4x3[T]) *Mat4x3[T] {
	var inv Mat3[T]
	NewMat3FromMat4x3(m).InvertTo(&inv)
	nm30 := -(inv.M00*m.M30 + inv.M10*m.M31 + inv.M20*m.M32)
	nm31 := -(inv.M01*m.M30 + inv.M11*m.M31 + inv.M21*m.M32)
	nm32 := -(inv.M02*m.M30 + inv.M12*m.M31 + inv.M22*m.M32)
	dest.SetMat3(inv)
	dest.M30, dest.M31, dest.M32 = nm30, nm31, nm32
	return dest
}

func (m *Mat4x3[T]) Invert() *Mat4x3[T] {
	return m.InvertTo(m)
}

// Transpose3x3To transposes the linear part and clears the translation.
func (m Mat4x3[T]) Transpose3x3To(dest *Mat4x3[T]) *Mat4x3[T] {
	var t Mat3[T]
	NewMat3FromMat4x3(m).TransposeTo(&t)
	return dest.SetMat3(t)
}

func (m *Mat4x3[T]) Transpose3x3() *Mat4x3[T] {
	return m.Transpose3x3To(m)
}

// NormalTo stores the normal matrix of the linear part in dest and clears
// its translation.
func (m Mat4x3[T]) NormalTo(dest *Mat4x3[T]) *Mat4x3[T] {
	var n Mat3[T]
	NewMat3FromMat4x3(m).NormalTo(&n)
	return dest.SetMat3(n)
}

func (m *Mat4x3[T]) Normal() *Mat4x3[T] {
	return m.NormalTo(m)
}

func (m Mat4x3[T]) NormalMat3() Mat3[T] {
	var n Mat3[T]
	NewMat3FromMat4x3(m).NormalTo(&n)
	return n
}

func (m *Mat4x3[T]) Scaling(x, y, z T) *Mat4x3[T] {
	*m = Mat4x3[T]{M00: x, M11: y, M22: z}
	return m
}

func (m *Mat4x3[T]) Translation(x, y, z T) *Mat4x3[T] {
	*m = Mat4x3[T]{M00: 1, M11: 1, M22: 1, M30: x, M31: y, M32: z}
	return m
}

// TranslationRotateScale sets m to T * R * S.
func (m *Mat4x3[T]) TranslationRotateScale(translation Vec3[T], rotation Quat[T], scale Vec3[T]) *Mat4x3[T] {
	var r Mat4[T]
	r.TranslationRotateScale(translation, rotation, scale)
	*m = NewMat4x3FromMat4(r)
	return m
}

func (m Mat4x3[T]) ScaleTo(x, y, z T, dest *Mat4x3[T]) *Mat4x3[T] {
	dest.M00, dest.M01, dest.M02 = m.M00*x, m.M01*x, m.M02*x
	dest.M10, dest.M11, dest.M12 = m.M10*y, m.M11*y, m.M12*y
	dest.M20, dest.M21, dest.M22 = m.M20*z, m.M21*z, m.M22*z
	dest.M30, dest.M31, dest.M32 = m.M30, m.M31, m.M32
	return dest
}

func (m *Mat4x3[T]) Scale(x, y, z T) *Mat4x3[T] {
	return m.ScaleTo(x, y, z, m)
}

// ScaleLocalTo scales after m, so the translation is scaled as well.
func (m Mat4x3[T]) ScaleLocalTo(x, y, z T, dest *Mat4x3[T]) *Mat4x3[T] {
	dest.M00, dest.M01, dest.M02 = x*m.M00, y*m.M01, z*m.M02
	dest.M10, dest.M11, dest.M12 = x*m.M10, y*m.M11, z*m.M12
	dest.M20, dest.M21, dest.M22 = x*m.M20, y*m.M21, z*m.M22
	dest.M30, dest.M31, dest.M32 = x*m.M30, y*m.M31, z*m.M32
	return dest
}

func (m *Mat4x3[T]) ScaleLocal(x, y, z T) *Mat4x3[T] {
	return m.ScaleLocalTo(x, y, z, m)
}

func (m Mat4x3[T]) TranslateTo(x, y, z T, dest *Mat4x3[T]) *Mat4x3[T] {
	nm30 := m.M00*x + m.M10*y + m.M20*z + m.M30
	nm31 := m.M01*x + m.M11*y + m.M21*z + m.M31
	nm32 := m.M02*x + m.M12*y + m.M22*z + m.M32
	*dest = m
	dest.M30, dest.M31, dest.M32 = nm30, nm31, nm32
	return dest
}

func (m *Mat4x3[T]) Translate(x, y, z T) *Mat4x3[T] {
	return m.TranslateTo(x, y, z, m)
}

func (m Mat4x3[T]) TranslateLocalTo(x, y, z T, dest *Mat4x3[T]) *Mat4x3[T] {
	*dest = m
	dest.M30, dest.M31, dest.M32 = m.M30+x, m.M31+y, m.M32+z
	return dest
}

func (m *Mat4x3[T]) TranslateLocal(x, y, z T) *Mat4x3[T] {
	return m.TranslateLocalTo(x, y, z, m)
}

func (m *Mat4x3[T]) Rotation(angle T, axis Vec3[T]) *Mat4x3[T] {
	var r Mat3[T]
	r.Rotation(angle, axis)
	return m.SetMat3(r)
}

func (m *Mat4x3[T]) RotationAxisAngle(a AxisAngle[T]) *Mat4x3[T] {
	var r Mat3[T]
	r.RotationAxisAngle(a)
	return m.SetMat3(r)
}

func (m *Mat4x3[T]) RotationX(ang T) *Mat4x3[T] {
	var r Mat3[T]
	r.RotationX(ang)
	return m.SetMat3(r)
}

func (m *Mat4x3[T]) RotationY(ang T) *Mat4x3[T] {
	var r Mat3[T]
	r.RotationY(ang)
	return m.SetMat3(r)
}

func (m *Mat4x3[T]) RotationZ(ang T) *Mat4x3[T] {
	var r Mat3[T]
	r.RotationZ(ang)
	return m.SetMat3(r)
}

func (m *Mat4x3[T]) RotationXYZ(angleX, angleY, angleZ T) *Mat4x3[T] {
	var r Mat3[T]
	r.RotationXYZ(angleX, angleY, angleZ)
	return m.SetMat3(r)
}

func (m *Mat4x3[T]) RotationZYX(angleZ, angleY, angleX T) *Mat4x3[T] {
	var r Mat3[T]
	r.RotationZYX(angleZ, angleY, angleX)
	return m.SetMat3(r)
}

func (m *Mat4x3[T]) RotationYXZ(angleY, angleX, angleZ T) *Mat4x3[T] {
	var r Mat3[T]
	r.RotationYXZ(angleY, angleX, angleZ)
	return m.SetMat3(r)
}

func (m *Mat4x3[T]) RotationQuat(q Quat[T]) *Mat4x3[T] {
	var r Mat3[T]
	r.RotationQuat(q)
	return m.SetMat3(r)
}

// mulRotationTo computes m * R for the rotation given by rm. The
// translation of m is kept.
func (m Mat4x3[T]) mulRotationTo(
	rm00, rm01, rm02,
	rm10, rm11, rm12,
	rm20, rm21, rm22 T, dest *Mat4x3[T]) *Mat4x3[T] {
	nm00 := m.M00*rm00 + m.M10*rm01 + m.M20*rm02
	nm01 := m.M01*rm00 + m.M11*rm01 + m.M21*rm02
	nm02 := m.M02*rm00 + m.M12*rm01 + m.M22*rm02
	nm10 := m.M00*rm10 + m.M10*rm11 + m.M20*rm12
	nm11 := m.M01*rm10 + m.M11*rm11 + m.M21*rm12
	nm12 := m.M02*rm10 + m.M12*rm11 + m.M22*rm12
	nm20 := m.M00*rm20 + m.M10*rm21 + m.M20*rm22
	nm21 := m.M01*rm20 + m.M11*rm21 + m.M21*rm22
	nm22 := m.M02*rm20 + m.M12*rm21 + m.M22*rm22
	dest.M30, dest.M31, dest.M32 = m.M30, m.M31, m.M32
	dest.M00, dest.M01, dest.M02 = nm00, nm01, nm02
	dest.M10, dest.M11, dest.M12 = nm10, nm11, nm12
	dest.M20, dest.M21, dest.M22 = nm20, nm21, nm22
	return dest
}

// mulLocalRotationTo computes L * m; the translation is rotated too.
func (m Mat4x3[T]) mulLocalRotationTo(
	lm00, lm01, lm02,
	lm10, lm11, lm12,
	lm20, lm21, lm22 T, dest *Mat4x3[T]) *Mat4x3[T] {
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
	dest.M00, dest.M01, dest.M02 = nm00, nm01, nm02
	dest.M10, dest.M11, dest.M12 = nm10, nm11, nm12
	dest.M20, dest.M21, dest.M22 = nm20, nm21, nm22
	dest.M30, dest.M31, dest.M32 = nm30, nm31, nm32
	return dest
}

func (m Mat4x3[T]) RotateXTo(ang T, dest *Mat4x3[T]) *Mat4x3[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	nm10 := m.M10*cos + m.M20*sin
	nm11 := m.M11*cos + m.M21*sin
	nm12 := m.M12*cos + m.M22*sin
	nm20 := -m.M10*sin + m.M20*cos
	nm21 := -m.M11*sin + m.M21*cos
	nm22 := -m.M12*sin + m.M22*cos
	dest.M00, dest.M01, dest.M02 = m.M00, m.M01, m.M02
	dest.M30, dest.M31, dest.M32 = m.M30, m.M31, m.M32
	dest.M10, dest.M11, dest.M12 = nm10, nm11, nm12
	dest.M20, dest.M21, dest.M22 = nm20, nm21, nm22
	return dest
}

func (m *Mat4x3[T]) RotateX(ang T) *Mat4x3[T] {
	return m.RotateXTo(ang, m)
}

func (m Mat4x3[T]) RotateYTo(ang T, dest *Mat4x3[T]) *Mat4x3[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	nm00 := m.M00*cos - m.M20*sin
	nm01 := m.M01*cos - m.M21*sin
	nm02 := m.M02*cos - m.M22*sin
	nm20 := m.M00*sin + m.M20*cos
	nm21 := m.M01*sin + m.M21*cos
	nm22 := m.M02*sin + m.M22*cos
	dest.M10, dest.M11, dest.M12 = m.M10, m.M11, m.M12
	dest.M30, dest.M31, dest.M32 = m.M30, m.M31, m.M32
	dest.M00, dest.M01, dest.M02 = nm00, nm01, nm02
	dest.M20, dest.M21, dest.M22 = nm20, nm21, nm22
	return dest
}

func (m *Mat4x3[T]) RotateY(ang T) *Mat4x3[T] {
	return m.RotateYTo(ang, m)
}

func (m Mat4x3[T]) RotateZTo(ang T, dest *Mat4x3[T]) *Mat4x3[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	nm00 := m.M00*cos + m.M10*sin
	nm01 := m.M01*cos + m.M11*sin
	nm02 := m.M02*cos + m.M12*sin
	nm10 := -m.M00*sin + m.M10*cos
	nm11 := -m.M01*sin + m.M11*cos
	nm12 := -m.M02*sin + m.M12*cos
	dest.M20, dest.M21, dest.M22 = m.M20, m.M21, m.M22
	dest.M30, dest.M31, dest.M32 = m.M30, m.M31, m.M32
	dest.M00, dest.M01, dest.M02 = nm00, nm01, nm02
	dest.M10, dest.M11, dest.M12 = nm10, nm11, nm12
	return dest
}

func (m *Mat4x3[T]) RotateZ(ang T) *Mat4x3[T] {
	return m.RotateZTo(ang, m)
}

func (m Mat4x3[T]) RotateXYZTo(angleX, angleY, angleZ T, dest *Mat4x3[T]) *Mat4x3[T] {
	return m.RotateXTo(angleX, dest).RotateY(angleY).RotateZ(angleZ)
}

func (m *Mat4x3[T]) RotateXYZ(angleX, angleY, angleZ T) *Mat4x3[T] {
	return m.RotateXYZTo(angleX, angleY, angleZ, m)
}

func (m Mat4x3[T]) RotateZYXTo(angleZ, angleY, angleX T, dest *Mat4x3[T]) *Mat4x3[T] {
	return m.RotateZTo(angleZ, dest).RotateY(angleY).RotateX(angleX)
}

func (m *Mat4x3[T]) RotateZYX(angleZ, angleY, angleX T) *Mat4x3[T] {
	return m.RotateZYXTo(angleZ, angleY, angleX, m)
}

func (m Mat4x3[T]) RotateYXZTo(angleY, angleX, angleZ T, dest *Mat4x3[T]) *Mat4x3[T] {
	return m.RotateYTo(angleY, dest).RotateX(angleX).RotateZ(angleZ)
}

func (m *Mat4x3[T]) RotateYXZ(angleY, angleX, angleZ T) *Mat4x3[T] {
	return m.RotateYXZTo(angleY, angleX, angleZ, m)
}

func (m Mat4x3[T]) RotateTo(angle T, axis Vec3[T], dest *Mat4x3[T]) *Mat4x3[T] {
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

func (m *Mat4x3[T]) Rotate(angle T, axis Vec3[T]) *Mat4x3[T] {
	return m.RotateTo(angle, axis, m)
}

func (m Mat4x3[T]) RotateQuatTo(q Quat[T], dest *Mat4x3[T]) *Mat4x3[T] {
	var r Mat3[T]
	r.RotationQuat(q)
	return m.mulRotationTo(
		r.M00, r.M01, r.M02,
		r.M10, r.M11, r.M12,
		r.M20, r.M21, r.M22,
		dest)
}

func (m *Mat4x3[T]) RotateQuat(q Quat[T]) *Mat4x3[T] {
	return m.RotateQuatTo(q, m)
}

func (m Mat4x3[T]) RotateLocalTo(angle T, axis Vec3[T], dest *Mat4x3[T]) *Mat4x3[T] {
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

func (m *Mat4x3[T]) RotateLocal(angle T, axis Vec3[T]) *Mat4x3[T] {
	return m.RotateLocalTo(angle, axis, m)
}

func (m Mat4x3[T]) RotateLocalXTo(ang T, dest *Mat4x3[T]) *Mat4x3[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	return m.mulLocalRotationTo(1, 0, 0, 0, cos, sin, 0, -sin, cos, dest)
}

func (m *Mat4x3[T]) RotateLocalX(ang T) *Mat4x3[T] {
	return m.RotateLocalXTo(ang, m)
}

func (m Mat4x3[T]) RotateLocalYTo(ang T, dest *Mat4x3[T]) *Mat4x3[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	return m.mulLocalRotationTo(cos, 0, -sin, 0, 1, 0, sin, 0, cos, dest)
}

func (m *Mat4x3[T]) RotateLocalY(ang T) *Mat4x3[T] {
	return m.RotateLocalYTo(ang, m)
}

func (m Mat4x3[T]) RotateLocalZTo(ang T, dest *Mat4x3[T]) *Mat4x3[T] {
	sin := Sin(ang)
	cos := CosFromSin(sin, ang)
	return m.mulLocalRotationTo(cos, sin, 0, -sin, cos, 0, 0, 0, 1, dest)
}

func (m *Mat4x3[T]) RotateLocalZ(ang T) *Mat4x3[T] {
	return m.RotateLocalZTo(ang, m)
}

func (m *Mat4x3[T]) SetLookAlong(dir, up Vec3[T]) *Mat4x3[T] {
	var r Mat3[T]
	r.SetLookAlong(dir, up)
	return m.SetMat3(r)
}

func (m Mat4x3[T]) LookAlongTo(dir, up Vec3[T], dest *Mat4x3[T]) *Mat4x3[T] {
	var r Mat3[T]
	r.SetLookAlong(dir, up)
	return m.mulRotationTo(
		r.M00, r.M01, r.M02,
		r.M10, r.M11, r.M12,
		r.M20, r.M21, r.M22,
		dest)
}

func (m *Mat4x3[T]) LookAlong(dir, up Vec3[T]) *Mat4x3[T] {
	return m.LookAlongTo(dir, up, m)
}

func (m *Mat4x3[T]) RotationTowards(dir, up Vec3[T]) *Mat4x3[T] {
	var r Mat3[T]
	r.RotationTowards(dir, up)
	return m.SetMat3(r)
}

func (m Mat4x3[T]) RotateTowardsTo(dir, up Vec3[T], dest *Mat4x3[T]) *Mat4x3[T] {
	var r Mat3[T]
	r.RotationTowards(dir, up)
	return m.mulRotationTo(
		r.M00, r.M01, r.M02,
		r.M10, r.M11, r.M12,
		r.M20, r.M21, r.M22,
		dest)
}

func (m *Mat4x3[T]) RotateTowards(dir, up Vec3[T]) *Mat4x3[T] {
	return m.RotateTowardsTo(dir, up, m)
}

// SetLookAt sets m to a right-handed view transformation.
func (m *Mat4x3[T]) SetLookAt(eye, center, up Vec3[T]) *Mat4x3[T] {
	var l Mat4[T]
	l.SetLookAt(eye, center, up)
	*m = NewMat4x3FromMat4(l)
	return m
}

func (m Mat4x3[T]) LookAtTo(eye, center, up Vec3[T], dest *Mat4x3[T]) *Mat4x3[T] {
	var l Mat4x3[T]
	l.SetLookAt(eye, center, up)
	return m.MulTo(l, dest)
}

func (m *Mat4x3[T]) LookAt(eye, center, up Vec3[T]) *Mat4x3[T] {
	return m.LookAtTo(eye, center, up, m)
}

// SetOrtho sets m to an orthographic projection, which is affine.
func (m *Mat4x3[T]) SetOrtho(left, right, bottom, top, near, far T) *Mat4x3[T] {
	var o Mat4[T]
	o.SetOrtho(left, right, bottom, top, near, far)
	*m = NewMat4x3FromMat4(o)
	return m
}

func (m Mat4x3[T]) OrthoTo(left, right, bottom, top, near, far T, dest *Mat4x3[T]) *Mat4x3[T] {
	var o Mat4x3[T]
	o.SetOrtho(left, right, bottom, top, near, far)
	return m.MulTo(o, dest)
}

func (m *Mat4x3[T]) Ortho(left, right, bottom, top, near, far T) *Mat4x3[T] {
	return m.OrthoTo(left, right, bottom, top, near, far, m)
}

// Transform returns m * v using the implicit last row.
func (m Mat4x3[T]) Transform(v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		m.M00*v.X + m.M10*v.Y + m.M20*v.Z + m.M30*v.W,
		m.M01*v.X + m.M11*v.Y + m.M21*v.Z + m.M31*v.W,
		m.M02*v.X + m.M12*v.Y + m.M22*v.Z + m.M32*v.W,
		v.W,
	}
}

func (m Mat4x3[T]) TransformPosition(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m.M00*v.X + m.M10*v.Y + m.M20*v.Z + m.M30,
		m.M01*v.X + m.M11*v.Y + m.M21*v.Z + m.M31,
		m.M02*v.X + m.M12*v.Y + m.M22*v.Z + m.M32,
	}
}

func (m Mat4x3[T]) TransformDirection(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m.M00*v.X + m.M10*v.Y + m.M20*v.Z,
		m.M01*v.X + m.M11*v.Y + m.M21*v.Z,
		m.M02*v.X + m.M12*v.Y + m.M22*v.Z,
	}
}

// Row returns the row at index as (c0, c1, c2, c3).
func (m Mat4x3[T]) Row(row int) (Vec4[T], error) {
	switch row {
	case 0:
		return Vec4[T]{m.M00, m.M10, m.M20, m.M30}, nil
	case 1:
		return Vec4[T]{m.M01, m.M11, m.M21, m.M31}, nil
	case 2:
		return Vec4[T]{m.M02, m.M12, m.M22, m.M32}, nil
	}
	return Vec4[T]{}, fmt.Errorf("mat4x3 row %d: %w", row, core.ErrIndexOutOfRange)
}

func (m *Mat4x3[T]) SetRow(row int, v Vec4[T]) error {
	switch row {
	case 0:
		m.M00, m.M10, m.M20, m.M30 = v.X, v.Y, v.Z, v.W
	case 1:
		m.M01, m.M11, m.M21, m.M31 = v.X, v.Y, v.Z, v.W
	case 2:
		m.M02, m.M12, m.M22, m.M32 = v.X, v.Y, v.Z, v.W
	default:
		return fmt.Errorf("mat4x3 row %d: %w", row, core.ErrIndexOutOfRange)
	}
	return nil
}

func (m Mat4x3[T]) Column(column int) (Vec3[T], error) {
	switch column {
	case 0:
		return Vec3[T]{m.M00, m.M01, m.M02}, nil
	case 1:
		return Vec3[T]{m.M10, m.M11, m.M12}, nil
	case 2:
		return Vec3[T]{m.M20, m.M21, m.M22}, nil
	case 3:
		return Vec3[T]{m.M30, m.M31, m.M32}, nil
	}
	return Vec3[T]{}, fmt.Errorf("mat4x3 column %d: %w", column, core.ErrIndexOutOfRange)
}

func (m *Mat4x3[T]) SetColumn(column int, v Vec3[T]) error {
	switch column {
	case 0:
		m.M00, m.M01, m.M02 = v.X, v.Y, v.Z
	case 1:
		m.M10, m.M11, m.M12 = v.X, v.Y, v.Z
	case 2:
		m.M20, m.M21, m.M22 = v.X, v.Y, v.Z
	case 3:
		m.M30, m.M31, m.M32 = v.X, v.Y, v.Z
	default:
		return fmt.Errorf("mat4x3 column %d: %w", column, core.ErrIndexOutOfRange)
	}
	return nil
}

func (m Mat4x3[T]) Element(column, row int) (T, error) {
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
	return 0, fmt.Errorf("mat4x3 row %d: %w", row, core.ErrIndexOutOfRange)
}

func (m *Mat4x3[T]) SetElement(column, row int, value T) error {
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
		return fmt.Errorf("mat4x3 row %d: %w", row, core.ErrIndexOutOfRange)
	}
	return m.SetColumn(column, c)
}

func (m Mat4x3[T]) GetTranslation() Vec3[T] {
	return Vec3[T]{m.M30, m.M31, m.M32}
}

func (m Mat4x3[T]) GetScale() Vec3[T] {
	return NewMat3FromMat4x3(m).GetScale()
}

func (m Mat4x3[T]) GetRotation() AxisAngle[T] {
	return AxisAngleFromMat3(NewMat3FromMat4x3(m))
}

func (m Mat4x3[T]) GetNormalizedRotation() Quat[T] {
	return QuatFromMat4x3(m)
}

func (m Mat4x3[T]) GetUnnormalizedRotation() Quat[T] {
	return QuatFromMat4x3Unnormalized(m)
}

func (m Mat4x3[T]) GetEulerAnglesZYX() Vec3[T] {
	return NewMat3FromMat4x3(m).GetEulerAnglesZYX()
}

func (m Mat4x3[T]) PositiveX() Vec3[T] {
	return NewMat3FromMat4x3(m).PositiveX()
}

func (m Mat4x3[T]) PositiveY() Vec3[T] {
	return NewMat3FromMat4x3(m).PositiveY()
}

func (m Mat4x3[T]) PositiveZ() Vec3[T] {
	return NewMat3FromMat4x3(m).PositiveZ()
}

func (m Mat4x3[T]) NormalizedPositiveX() Vec3[T] {
	return Vec3[T]{m.M00, m.M10, m.M20}
}

func (m Mat4x3[T]) NormalizedPositiveY() Vec3[T] {
	return Vec3[T]{m.M01, m.M11, m.M21}
}

func (m Mat4x3[T]) NormalizedPositiveZ() Vec3[T] {
	return Vec3[T]{m.M02, m.M12, m.M22}
}

func (m *Mat4x3[T]) Swap(other *Mat4x3[T]) *Mat4x3[T] {
	*m, *other = *other, *m
	return m
}

// Equals reports whether all elements are bit-identical.
func (m Mat4x3[T]) Equals(other Mat4x3[T]) bool {
	return bitsEqual(m.M00, other.M00) && bitsEqual(m.M01, other.M01) && bitsEqual(m.M02, other.M02) &&
		bitsEqual(m.M10, other.M10) && bitsEqual(m.M11, other.M11) && bitsEqual(m.M12, other.M12) &&
		bitsEqual(m.M20, other.M20) && bitsEqual(m.M21, other.M21) && bitsEqual(m.M22, other.M22) &&
		bitsEqual(m.M30, other.M30) && bitsEqual(m.M31, other.M31) && bitsEqual(m.M32, other.M32)
}

func (m Mat4x3[T]) Hash() uint64 {
	return hashFloats(
		m.M00, m.M01, m.M02,
		m.M10, m.M11, m.M12,
		m.M20, m.M21, m.M22,
		m.M30, m.M31, m.M32)
}

func (m Mat4x3[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%10.3e %10.3e %10.3e %10.3e\n", m.M00, m.M10, m.M20, m.M30)
	fmt.Fprintf(&sb, "%10.3e %10.3e %10.3e %10.3e\n", m.M01, m.M11, m.M21, m.M31)
	fmt.Fprintf(&sb, "%10.3e %10.3e %10.3e %10.3e\n", m.M02, m.M12, m.M22, m.M32)
	return sb.String()
}
