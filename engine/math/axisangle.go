package math

import "golang.org/x/exp/constraints"

func NewAxisAngle[T constraints.Float](angle T, axis Vec3[T]) AxisAngle[T] {
	return AxisAngle[T]{X: axis.X, Y: axis.Y, Z: axis.Z, Angle: angle}
}

/**
 * @brief Creates the axis-angle equivalent of q. A rotation by zero
 * radians has no defined axis and reports +Z.
 */
func AxisAngleFromQuat[T constraints.Float](q Quat[T]) AxisAngle[T] {
	w := q.W
	if w > 1 || w < -1 {
		q = q.Normalize()
		w = q.W
	}
	a := AxisAngle[T]{Angle: 2.0 * Acos(w)}
	s := Sqrt(1.0 - w*w)
	if s < 1e-7 {
		a.Z = 1
		return a
	}
	invS := 1.0 / s
	a.X, a.Y, a.Z = q.X*invS, q.Y*invS, q.Z*invS
	return a
}

// AxisAngleFromMat3 extracts the rotation of m. The columns are normalized
// first, so a scaled rotation is accepted.
func AxisAngleFromMat3[T constraints.Float](m Mat3[T]) AxisAngle[T] {
	return axisAngleFromRotation(m.M00, m.M01, m.M02, m.M10, m.M11, m.M12, m.M20, m.M21, m.M22)
}

func AxisAngleFromMat4[T constraints.Float](m Mat4[T]) AxisAngle[T] {
	return axisAngleFromRotation(m.M00, m.M01, m.M02, m.M10, m.M11, m.M12, m.M20, m.M21, m.M22)
}

func axisAngleFromRotation[T constraints.Float](m00, m01, m02, m10, m11, m12, m20, m21, m22 T) AxisAngle[T] {
	lenX := InvSqrt(m00*m00 + m01*m01 + m02*m02)
	lenY := InvSqrt(m10*m10 + m11*m11 + m12*m12)
	lenZ := InvSqrt(m20*m20 + m21*m21 + m22*m22)
	nm00, nm01, nm02 := m00*lenX, m01*lenX, m02*lenX
	nm10, nm11, nm12 := m10*lenY, m11*lenY, m12*lenY
	nm20, nm21, nm22 := m20*lenZ, m21*lenZ, m22*lenZ

	const epsilon = 1e-4
	const epsilon2 = 1e-3
	var a AxisAngle[T]
	if Abs(nm10-nm01) < epsilon && Abs(nm20-nm02) < epsilon && Abs(nm21-nm12) < epsilon {
		// symmetric: the angle is either 0 or PI
		if Abs(nm10+nm01) < epsilon2 && Abs(nm20+nm02) < epsilon2 && Abs(nm21+nm12) < epsilon2 &&
			Abs(nm00+nm11+nm22-3) < epsilon2 {
			a.Z = 1
			return a
		}
		a.Angle = K_PI
		xx := (nm00 + 1) / 2
		yy := (nm11 + 1) / 2
		zz := (nm22 + 1) / 2
		xy := (nm10 + nm01) / 4
		xz := (nm20 + nm02) / 4
		yz := (nm21 + nm12) / 4
		if xx > yy && xx > zz {
			a.X = Sqrt(xx)
			a.Y = xy / a.X
			a.Z = xz / a.X
		} else if yy > zz {
			a.Y = Sqrt(yy)
			a.X = xy / a.Y
			a.Z = yz / a.Y
		} else {
			a.Z = Sqrt(zz)
			a.X = xz / a.Z
			a.Y = yz / a.Z
		}
		return a
	}
	s := Sqrt((nm12-nm21)*(nm12-nm21) + (nm20-nm02)*(nm20-nm02) + (nm01-nm10)*(nm01-nm10))
	c := (nm00 + nm11 + nm22 - 1) / 2
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	a.Angle = Acos(c)
	a.X = (nm12 - nm21) / s
	a.Y = (nm20 - nm02) / s
	a.Z = (nm01 - nm10) / s
	return a
}

// Normalize normalizes the axis; the angle is left untouched.
func (a AxisAngle[T]) Normalize() AxisAngle[T] {
	n := NewVec3(a.X, a.Y, a.Z).Normalize()
	return AxisAngle[T]{X: n.X, Y: n.Y, Z: n.Z, Angle: a.Angle}
}

func (a AxisAngle[T]) Axis() Vec3[T] {
	return Vec3[T]{a.X, a.Y, a.Z}
}

func (a AxisAngle[T]) Quat() Quat[T] {
	return NewQuatFromAxisAngle(a.Axis(), a.Angle)
}

/**
 * @brief Rotates v using Rodrigues' formula. The axis must be normalized.
 */
func (a AxisAngle[T]) Transform(v Vec3[T]) Vec3[T] {
	sin := Sin(a.Angle)
	cos := CosFromSin(sin, a.Angle)
	axis := a.Axis()
	dot := axis.Dot(v)
	return v.MulScalar(cos).
		Add(axis.Cross(v).MulScalar(sin)).
		Add(axis.MulScalar(dot * (1.0 - cos)))
}

func (a AxisAngle[T]) Equals(other AxisAngle[T]) bool {
	return bitsEqual(a.X, other.X) && bitsEqual(a.Y, other.Y) &&
		bitsEqual(a.Z, other.Z) && bitsEqual(a.Angle, other.Angle)
}

func (a AxisAngle[T]) Hash() uint64 {
	return hashFloats(a.X, a.Y, a.Z, a.Angle)
}
