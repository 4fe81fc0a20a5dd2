package math

import "testing"

func TestAxisAngleFromQuatIdentity(t *testing.T) {
	a := AxisAngleFromQuat(NewQuatIdentity[float64]())
	if a.Angle != 0 || a.Axis() != NewVec3(0.0, 0.0, 1.0) {
		t.Fatalf("identity: got %+v", a)
	}
}

func TestAxisAngleQuatRoundTrip(t *testing.T) {
	r := newRand(t)
	for i := 0; i < 100; i++ {
		axis := randomUnitVec3(r)
		angle := RandomInRange(r, 0.01, K_PI-0.01)
		q := NewQuatFromAxisAngle(axis, angle)

		a := q.AxisAngle()
		assertFloatEqual(t, "angle", angle, a.Angle, 1e-9)
		assertVec3Equal(t, axis, a.Axis(), 1e-9)
		assertSameRotation(t, q, a.Quat(), 1e-9)
	}
}

func TestAxisAngleTransformMatchesQuat(t *testing.T) {
	r := newRand(t)
	for i := 0; i < 100; i++ {
		a := NewAxisAngle(randomAngle(r), randomUnitVec3(r))
		v := randomVec3(r)
		assertVec3Equal(t, a.Quat().Transform(v), a.Transform(v), 1e-9)

		var m Mat3d
		m.RotationAxisAngle(a)
		assertVec3Equal(t, m.Transform(v), a.Transform(v), 1e-9)
	}
}

func TestAxisAngleFromMat3(t *testing.T) {
	r := newRand(t)
	tests := []struct {
		name  string
		angle float64
	}{
		{"generic", 1.2},
		{"small", 0.05},
		{"half turn", K_PI},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				axis := randomUnitVec3(r)
				var m Mat3d
				m.Rotation(tt.angle, axis)
				got := AxisAngleFromMat3(m)
				assertFloatEqual(t, "angle", tt.angle, got.Angle, 1e-6)

				v := randomVec3(r)
				assertVec3Equal(t, m.Transform(v), got.Transform(v), 1e-6)

				// Scale on the columns is ignored.
				m.Scale(3, 3, 3)
				assertVec3Equal(t, got.Axis(), AxisAngleFromMat4(NewMat4FromMat3(m)).Axis(), 1e-6)
			}
		})
	}

	got := AxisAngleFromMat3(NewMat3Identity[float64]())
	if got.Angle != 0 || got.Z != 1 {
		t.Fatalf("identity: got %+v", got)
	}
}

func TestAxisAngleNormalize(t *testing.T) {
	a := NewAxisAngle(0.5, NewVec3(0.0, 3.0, 4.0)).Normalize()
	assertVec3Equal(t, NewVec3(0.0, 0.6, 0.8), a.Axis(), eps64)
	assertFloatEqual(t, "angle", 0.5, a.Angle, 0)

	b := a
	if !a.Equals(b) || a.Hash() != b.Hash() {
		t.Fatal("copies should be equal with equal hashes")
	}
}
