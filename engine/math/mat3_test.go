package math

import (
	"errors"
	"strings"
	"testing"

	"github.com/spaghettifunk/linmath/engine/core"
)

func TestMat3MulOrder(t *testing.T) {
	r := newRand(t)
	for i := 0; i < 50; i++ {
		a, b := randomMat3(r), randomMat3(r)
		v := randomVec3(r)

		var ab Mat3d
		a.MulTo(b, &ab)
		assertVec3Equal(t, a.Transform(b.Transform(v)), ab.Transform(v), 1e-9)

		var ba Mat3d
		a.MulLocalTo(b, &ba)
		assertVec3Equal(t, b.Transform(a.Transform(v)), ba.Transform(v), 1e-9)

		// Receiver as destination.
		c := a
		c.Mul(b)
		assertMat3Equal(t, ab, c, 0)
		c = a
		c.MulLocal(b)
		assertMat3Equal(t, ba, c, 0)
	}
}

func TestMat3InvertRoundTrip(t *testing.T) {
	r := newRand(t)
	id := NewMat3Identity[float64]()
	for i := 0; i < 50; i++ {
		m := randomMat3(r)
		var inv, prod Mat3d
		m.InvertTo(&inv)
		m.MulTo(inv, &prod)
		assertMat3Equal(t, id, prod, 1e-9)

		assertFloatEqual(t, "det(inv)", 1/m.Determinant(), inv.Determinant(), 1e-9)

		c := m
		c.Invert()
		assertMat3Equal(t, inv, c, 0)
	}

	// Single precision within 1e-6 of identity.
	mf := ConvertMat3[float32](randomQuat(r).Mat3())
	var invf Mat3f
	mf.InvertTo(&invf)
	mf.Mul(invf)
	assertMat3Equal(t, NewMat3Identity[float32](), mf, 1e-6)
}

func TestMat3TransposeAndNormal(t *testing.T) {
	r := newRand(t)
	for i := 0; i < 50; i++ {
		m := randomMat3(r)
		twice := m
		twice.Transpose().Transpose()
		assertMat3Equal(t, m, twice, 0)

		var want Mat3d
		m.InvertTo(&want)
		want.Transpose()
		var got Mat3d
		m.NormalTo(&got)
		assertMat3Equal(t, want, got, 1e-9)

		var tr Mat3d
		m.TransposeTo(&tr)
		v := randomVec3(r)
		assertVec3Equal(t, tr.Transform(v), m.TransformTranspose(v), 1e-12)
	}
}

func TestMat3RotationConsistency(t *testing.T) {
	r := newRand(t)
	for i := 0; i < 50; i++ {
		axis := randomUnitVec3(r)
		angle := randomAngle(r)

		var byAxis, byQuat, byAxisAngle Mat3d
		byAxis.Rotation(angle, axis)
		byQuat.RotationQuat(NewQuatFromAxisAngle(axis, angle))
		byAxisAngle.RotationAxisAngle(NewAxisAngle(angle, axis.MulScalar(3)))
		assertMat3Equal(t, byAxis, byQuat, 1e-9)
		assertMat3Equal(t, byAxis, byAxisAngle, 1e-9)

		// Rotate* applies the rotation before m, RotateLocal* after.
		m := randomMat3(r)
		var rot, want Mat3d
		rot.Rotation(angle, axis)
		m.MulTo(rot, &want)
		var got Mat3d
		m.RotateTo(angle, axis, &got)
		assertMat3Equal(t, want, got, 1e-9)
		m.RotateQuatTo(NewQuatFromAxisAngle(axis, angle), &got)
		assertMat3Equal(t, want, got, 1e-9)

		m.MulLocalTo(rot, &want)
		m.RotateLocalTo(angle, axis, &got)
		assertMat3Equal(t, want, got, 1e-9)
		m.RotateLocalQuatTo(NewQuatFromAxisAngle(axis, angle), &got)
		assertMat3Equal(t, want, got, 1e-9)
	}
}

func TestMat3AxisRotations(t *testing.T) {
	r := newRand(t)
	m := randomMat3(r)
	ang := 0.7
	tests := []struct {
		name     string
		axis     Vec3d
		rotation func(m *Mat3d) *Mat3d
		rotate   func(m Mat3d, dest *Mat3d) *Mat3d
		rotLocal func(m Mat3d, dest *Mat3d) *Mat3d
	}{
		{"x", NewVec3(1.0, 0.0, 0.0),
			func(m *Mat3d) *Mat3d { return m.RotationX(ang) },
			func(m Mat3d, d *Mat3d) *Mat3d { return m.RotateXTo(ang, d) },
			func(m Mat3d, d *Mat3d) *Mat3d { return m.RotateLocalXTo(ang, d) }},
		{"y", NewVec3(0.0, 1.0, 0.0),
			func(m *Mat3d) *Mat3d { return m.RotationY(ang) },
			func(m Mat3d, d *Mat3d) *Mat3d { return m.RotateYTo(ang, d) },
			func(m Mat3d, d *Mat3d) *Mat3d { return m.RotateLocalYTo(ang, d) }},
		{"z", NewVec3(0.0, 0.0, 1.0),
			func(m *Mat3d) *Mat3d { return m.RotationZ(ang) },
			func(m Mat3d, d *Mat3d) *Mat3d { return m.RotateZTo(ang, d) },
			func(m Mat3d, d *Mat3d) *Mat3d { return m.RotateLocalZTo(ang, d) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var want, got Mat3d
			want.Rotation(ang, tt.axis)
			tt.rotation(&got)
			assertMat3Equal(t, want, got, 1e-12)

			var rot Mat3d
			rot.Rotation(ang, tt.axis)
			m.MulTo(rot, &want)
			tt.rotate(m, &got)
			assertMat3Equal(t, want, got, 1e-12)

			m.MulLocalTo(rot, &want)
			tt.rotLocal(m, &got)
			assertMat3Equal(t, want, got, 1e-12)
		})
	}
}

func TestMat3EulerRotations(t *testing.T) {
	r := newRand(t)
	for i := 0; i < 50; i++ {
		x, y, z := randomAngle(r), RandomInRange(r, -1.4, 1.4), randomAngle(r)
		var rx, ry, rz Mat3d
		rx.RotationX(x)
		ry.RotationY(y)
		rz.RotationZ(z)

		var want, got Mat3d
		want.SetFrom(rx).Mul(ry).Mul(rz)
		got.RotationXYZ(x, y, z)
		assertMat3Equal(t, want, got, 1e-12)

		want.SetFrom(rz).Mul(ry).Mul(rx)
		got.RotationZYX(z, y, x)
		assertMat3Equal(t, want, got, 1e-12)
		assertVec3Equal(t, NewVec3(x, y, z), got.GetEulerAnglesZYX(), 1e-9)

		want.SetFrom(ry).Mul(rx).Mul(rz)
		got.RotationYXZ(y, x, z)
		assertMat3Equal(t, want, got, 1e-12)

		m := randomMat3(r)
		var rot Mat3d
		rot.RotationXYZ(x, y, z)
		m.MulTo(rot, &want)
		m.RotateXYZTo(x, y, z, &got)
		assertMat3Equal(t, want, got, 1e-9)

		rot.RotationZYX(z, y, x)
		m.MulTo(rot, &want)
		m.RotateZYXTo(z, y, x, &got)
		assertMat3Equal(t, want, got, 1e-9)

		rot.RotationYXZ(y, x, z)
		m.MulTo(rot, &want)
		m.RotateYXZTo(y, x, z, &got)
		assertMat3Equal(t, want, got, 1e-9)
	}
}

func TestMat3ScaleOrder(t *testing.T) {
	m := NewMat3(1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 10.0)
	var s Mat3d
	s.Scaling(2, 3, 4)

	var want, got Mat3d
	m.MulTo(s, &want)
	m.ScaleTo(2, 3, 4, &got)
	assertMat3Equal(t, want, got, 0)

	m.MulLocalTo(s, &want)
	m.ScaleLocalTo(2, 3, 4, &got)
	assertMat3Equal(t, want, got, 0)

	assertVec3Equal(t, NewVec3(2.0, 3.0, 4.0), s.GetScale(), 0)
}

func TestMat3ComponentWise(t *testing.T) {
	a := NewMat3(1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0)
	b := NewMat3(9.0, 8.0, 7.0, 6.0, 5.0, 4.0, 3.0, 2.0, 1.0)
	var got Mat3d

	a.AddTo(b, &got)
	assertMat3Equal(t, NewMat3(10.0, 10.0, 10.0, 10.0, 10.0, 10.0, 10.0, 10.0, 10.0), got, 0)
	a.SubTo(b, &got)
	assertMat3Equal(t, NewMat3(-8.0, -6.0, -4.0, -2.0, 0.0, 2.0, 4.0, 6.0, 8.0), got, 0)
	a.MulComponentWiseTo(b, &got)
	assertMat3Equal(t, NewMat3(9.0, 16.0, 21.0, 24.0, 25.0, 24.0, 21.0, 16.0, 9.0), got, 0)
	a.LerpTo(b, 0.5, &got)
	assertMat3Equal(t, NewMat3(5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0, 5.0), got, 0)

	c := a
	c.Add(b).Sub(b)
	assertMat3Equal(t, a, c, 0)
}

func TestMat3RowsColumnsElements(t *testing.T) {
	m := NewMat3(1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0)

	row, err := m.Row(1)
	if err != nil {
		t.Fatal(err)
	}
	assertVec3Equal(t, NewVec3(2.0, 5.0, 8.0), row, 0)

	col, err := m.Column(2)
	if err != nil {
		t.Fatal(err)
	}
	assertVec3Equal(t, NewVec3(7.0, 8.0, 9.0), col, 0)

	e, err := m.Element(1, 2)
	if err != nil || e != 6 {
		t.Fatalf("Element(1, 2) = %v, %v", e, err)
	}

	if err := m.SetRow(0, NewVec3(-1.0, -2.0, -3.0)); err != nil {
		t.Fatal(err)
	}
	if m.M00 != -1 || m.M10 != -2 || m.M20 != -3 {
		t.Fatalf("SetRow: %v", m)
	}
	if err := m.SetColumn(1, NewVec3(-4.0, -5.0, -6.0)); err != nil {
		t.Fatal(err)
	}
	if m.M10 != -4 || m.M11 != -5 || m.M12 != -6 {
		t.Fatalf("SetColumn: %v", m)
	}
	if err := m.SetElement(2, 0, 42); err != nil || m.M20 != 42 {
		t.Fatalf("SetElement: %v %v", m, err)
	}

	for _, idx := range []int{-1, 3} {
		if _, err := m.Row(idx); !errors.Is(err, core.ErrIndexOutOfRange) {
			t.Errorf("Row(%d): %v", idx, err)
		}
		if _, err := m.Column(idx); !errors.Is(err, core.ErrIndexOutOfRange) {
			t.Errorf("Column(%d): %v", idx, err)
		}
		if err := m.SetRow(idx, Vec3d{}); !errors.Is(err, core.ErrIndexOutOfRange) {
			t.Errorf("SetRow(%d): %v", idx, err)
		}
		if err := m.SetColumn(idx, Vec3d{}); !errors.Is(err, core.ErrIndexOutOfRange) {
			t.Errorf("SetColumn(%d): %v", idx, err)
		}
		if _, err := m.Element(idx, 0); !errors.Is(err, core.ErrIndexOutOfRange) {
			t.Errorf("Element(%d, 0): %v", idx, err)
		}
		if err := m.SetElement(0, idx, 1); !errors.Is(err, core.ErrIndexOutOfRange) {
			t.Errorf("SetElement(0, %d): %v", idx, err)
		}
	}
}

func TestMat3LookAlongAndTowards(t *testing.T) {
	r := newRand(t)
	up := NewVec3(0.0, 1.0, 0.0)
	for i := 0; i < 50; i++ {
		dir := randomUnitVec3(r)
		if Abs(dir.Dot(up)) > 0.99 {
			continue
		}

		var look Mat3d
		look.SetLookAlong(dir.MulScalar(2), up)
		assertVec3Equal(t, NewVec3(0.0, 0.0, -1.0), look.Transform(dir), 1e-9)
		assertFloatEqual(t, "det", 1, look.Determinant(), 1e-9)

		var towards Mat3d
		towards.RotationTowards(dir, up)
		assertVec3Equal(t, dir, towards.Transform(NewVec3(0.0, 0.0, 1.0)), 1e-9)
		assertFloatEqual(t, "det", 1, towards.Determinant(), 1e-9)

		// LookAlong applies the rotation before m.
		m := randomMat3(r)
		var want, got Mat3d
		m.MulTo(look, &want)
		m.LookAlongTo(dir, up, &got)
		assertMat3Equal(t, want, got, 1e-9)

		m.MulTo(towards, &want)
		m.RotateTowardsTo(dir, up, &got)
		assertMat3Equal(t, want, got, 1e-9)
	}
}

func TestMat3DirectionsAndRotation(t *testing.T) {
	var m Mat3d
	m.RotationY(K_HALF_PI)

	// +X of the rotated frame in world space is the inverse image of +X.
	assertVec3Equal(t, NewVec3(0.0, 0.0, 1.0), m.PositiveX(), 1e-12)
	assertVec3Equal(t, NewVec3(0.0, 1.0, 0.0), m.PositiveY(), 1e-12)
	assertVec3Equal(t, NewVec3(-1.0, 0.0, 0.0), m.PositiveZ(), 1e-12)
	assertVec3Equal(t, m.PositiveX(), m.NormalizedPositiveX(), 1e-12)
	assertVec3Equal(t, m.PositiveY(), m.NormalizedPositiveY(), 1e-12)
	assertVec3Equal(t, m.PositiveZ(), m.NormalizedPositiveZ(), 1e-12)

	a := m.GetRotation()
	assertFloatEqual(t, "angle", K_HALF_PI, a.Angle, 1e-9)
	assertVec3Equal(t, NewVec3(0.0, 1.0, 0.0), a.Axis(), 1e-9)
}

func TestRotationNormalizesAxis(t *testing.T) {
	axis := NewVec3(1.0, 1.0, 0.0)
	angle := 0.5
	q := NewQuatFromAxisAngle(axis, angle)
	a := NewAxisAngle(angle, axis)

	var want3, got3 Mat3d
	want3.RotationQuat(q)
	got3.Rotation(angle, axis)
	assertMat3Equal(t, want3, got3, 1e-12)
	assertFloatEqual(t, "det", 1.0, got3.Determinant(), 1e-12)
	got3.RotationAxisAngle(a)
	assertMat3Equal(t, want3, got3, 1e-12)
	got3 = NewMat3Identity[float64]()
	got3.Rotate(angle, axis)
	assertMat3Equal(t, want3, got3, 1e-12)
	got3 = NewMat3Identity[float64]()
	got3.RotateLocal(angle, axis)
	assertMat3Equal(t, want3, got3, 1e-12)
	got3 = NewMat3Identity[float64]()
	got3.RotateAxisAngle(a)
	assertMat3Equal(t, want3, got3, 1e-12)

	var want4, got4 Mat4d
	want4.RotationQuat(q)
	got4.Rotation(angle, axis)
	assertMat4Equal(t, want4, got4, 1e-12)
	got4 = NewMat4Identity[float64]()
	got4.Rotate(angle, axis)
	assertMat4Equal(t, want4, got4, 1e-12)
	got4 = NewMat4Identity[float64]()
	got4.RotateLocal(angle, axis)
	assertMat4Equal(t, want4, got4, 1e-12)
	got4 = NewMat4Identity[float64]()
	got4.RotateAxisAngle(a)
	assertMat4Equal(t, want4, got4, 1e-12)

	var want43, got43 Mat4x3d
	want43.RotationQuat(q)
	got43.Rotation(angle, axis)
	assertMat4x3Equal(t, want43, got43, 1e-12)
	got43 = NewMat4x3Identity[float64]()
	got43.Rotate(angle, axis)
	assertMat4x3Equal(t, want43, got43, 1e-12)
	got43 = NewMat4x3Identity[float64]()
	got43.RotateLocal(angle, axis)
	assertMat4x3Equal(t, want43, got43, 1e-12)
}

func TestMat3SkewSymmetric(t *testing.T) {
	var m Mat3d
	m.SetSkewSymmetric(1, 2, 3)
	w := NewVec3(-3.0, -2.0, -1.0)
	r := newRand(t)
	for i := 0; i < 10; i++ {
		v := randomVec3(r)
		assertVec3Equal(t, w.Cross(v), m.Transform(v), 1e-12)
	}
	var tr Mat3d
	m.TransposeTo(&tr)
	tr.Add(m)
	assertMat3Equal(t, Mat3d{}, tr, 0)
}

func TestMat3Conversions(t *testing.T) {
	r := newRand(t)
	m4 := randomMat4(r)
	m := NewMat3FromMat4(m4)
	var back Mat4d
	back.SetMat3(m)
	assertMat4Equal(t, NewMat4FromMat3(m), back, 0)
	if m.M21 != m4.M21 || m.M12 != m4.M12 {
		t.Fatalf("NewMat3FromMat4 dropped elements: %v", m)
	}

	m43 := randomMat4x3(r)
	var fromAffine Mat3d
	fromAffine.SetMat4x3(m43)
	assertMat3Equal(t, NewMat3FromMat4x3(m43), fromAffine, 0)

	cols := NewMat3FromColumns(NewVec3(1.0, 2.0, 3.0), NewVec3(4.0, 5.0, 6.0), NewVec3(7.0, 8.0, 9.0))
	assertMat3Equal(t, NewMat3(1.0, 2.0, 3.0, 4.0, 5.0, 6.0, 7.0, 8.0, 9.0), cols, 0)

	a, b := NewMat3Identity[float64](), cols
	a.Swap(&b)
	assertMat3Equal(t, cols, a, 0)
	assertMat3Equal(t, NewMat3Identity[float64](), b, 0)
	b.Zero()
	assertMat3Equal(t, Mat3d{}, b, 0)
}

func TestMat3EqualsHashString(t *testing.T) {
	a := NewMat3Identity[float32]()
	b := a
	if !a.Equals(b) || a.Hash() != b.Hash() {
		t.Fatal("copies should be equal with equal hashes")
	}
	b.M10 = float32(negZero())
	if a.Equals(b) {
		t.Fatal("-0 and +0 should differ")
	}
	s := a.String()
	if lines := strings.Split(strings.TrimSpace(s), "\n"); len(lines) != 3 {
		t.Fatalf("String() has %d lines: %q", len(lines), s)
	}
	if !strings.HasPrefix(s, " 1.000e+00  0.000e+00  0.000e+00\n") {
		t.Fatalf("String() = %q", s)
	}
}
