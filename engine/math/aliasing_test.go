package math

import "testing"

// Each in-place method must match its ...To form with a separate
// destination bit for bit, even though it writes into its own source.

func TestMat4InPlaceMatchesTo(t *testing.T) {
	r := newRand(t)
	other := randomMat4(r)
	axis := randomUnitVec3(r)
	q := randomQuat(r)
	aa := NewAxisAngle(0.8, axis)
	dir, up := NewVec3(1.0, -0.5, -2.0), NewVec3(0.0, 1.0, 0.0)
	eye, center := NewVec3(3.0, 2.0, 5.0), NewVec3(0.0, 0.5, 0.0)

	tests := []struct {
		name    string
		inPlace func(m *Mat4d)
		to      func(m Mat4d, dest *Mat4d)
	}{
		{"mul", func(m *Mat4d) { m.Mul(other) }, func(m Mat4d, d *Mat4d) { m.MulTo(other, d) }},
		{"mul local", func(m *Mat4d) { m.MulLocal(other) }, func(m Mat4d, d *Mat4d) { m.MulLocalTo(other, d) }},
		{"mul component wise", func(m *Mat4d) { m.MulComponentWise(other) }, func(m Mat4d, d *Mat4d) { m.MulComponentWiseTo(other, d) }},
		{"add", func(m *Mat4d) { m.Add(other) }, func(m Mat4d, d *Mat4d) { m.AddTo(other, d) }},
		{"sub", func(m *Mat4d) { m.Sub(other) }, func(m Mat4d, d *Mat4d) { m.SubTo(other, d) }},
		{"lerp", func(m *Mat4d) { m.Lerp(other, 0.3) }, func(m Mat4d, d *Mat4d) { m.LerpTo(other, 0.3, d) }},
		{"invert", func(m *Mat4d) { m.Invert() }, func(m Mat4d, d *Mat4d) { m.InvertTo(d) }},
		{"transpose", func(m *Mat4d) { m.Transpose() }, func(m Mat4d, d *Mat4d) { m.TransposeTo(d) }},
		{"normal", func(m *Mat4d) { m.Normal() }, func(m Mat4d, d *Mat4d) { m.NormalTo(d) }},
		{"scale", func(m *Mat4d) { m.Scale(2, 3, 4) }, func(m Mat4d, d *Mat4d) { m.ScaleTo(2, 3, 4, d) }},
		{"scale local", func(m *Mat4d) { m.ScaleLocal(2, 3, 4) }, func(m Mat4d, d *Mat4d) { m.ScaleLocalTo(2, 3, 4, d) }},
		{"translate", func(m *Mat4d) { m.Translate(1, -2, 3) }, func(m Mat4d, d *Mat4d) { m.TranslateTo(1, -2, 3, d) }},
		{"translate local", func(m *Mat4d) { m.TranslateLocal(1, -2, 3) }, func(m Mat4d, d *Mat4d) { m.TranslateLocalTo(1, -2, 3, d) }},
		{"rotate x", func(m *Mat4d) { m.RotateX(0.4) }, func(m Mat4d, d *Mat4d) { m.RotateXTo(0.4, d) }},
		{"rotate y", func(m *Mat4d) { m.RotateY(0.4) }, func(m Mat4d, d *Mat4d) { m.RotateYTo(0.4, d) }},
		{"rotate z", func(m *Mat4d) { m.RotateZ(0.4) }, func(m Mat4d, d *Mat4d) { m.RotateZTo(0.4, d) }},
		{"rotate xyz", func(m *Mat4d) { m.RotateXYZ(0.1, 0.2, 0.3) }, func(m Mat4d, d *Mat4d) { m.RotateXYZTo(0.1, 0.2, 0.3, d) }},
		{"rotate zyx", func(m *Mat4d) { m.RotateZYX(0.1, 0.2, 0.3) }, func(m Mat4d, d *Mat4d) { m.RotateZYXTo(0.1, 0.2, 0.3, d) }},
		{"rotate yxz", func(m *Mat4d) { m.RotateYXZ(0.1, 0.2, 0.3) }, func(m Mat4d, d *Mat4d) { m.RotateYXZTo(0.1, 0.2, 0.3, d) }},
		{"rotate", func(m *Mat4d) { m.Rotate(0.7, axis) }, func(m Mat4d, d *Mat4d) { m.RotateTo(0.7, axis, d) }},
		{"rotate axis angle", func(m *Mat4d) { m.RotateAxisAngle(aa) }, func(m Mat4d, d *Mat4d) { m.RotateAxisAngleTo(aa, d) }},
		{"rotate quat", func(m *Mat4d) { m.RotateQuat(q) }, func(m Mat4d, d *Mat4d) { m.RotateQuatTo(q, d) }},
		{"rotate local", func(m *Mat4d) { m.RotateLocal(0.7, axis) }, func(m Mat4d, d *Mat4d) { m.RotateLocalTo(0.7, axis, d) }},
		{"rotate local x", func(m *Mat4d) { m.RotateLocalX(0.4) }, func(m Mat4d, d *Mat4d) { m.RotateLocalXTo(0.4, d) }},
		{"rotate local y", func(m *Mat4d) { m.RotateLocalY(0.4) }, func(m Mat4d, d *Mat4d) { m.RotateLocalYTo(0.4, d) }},
		{"rotate local z", func(m *Mat4d) { m.RotateLocalZ(0.4) }, func(m Mat4d, d *Mat4d) { m.RotateLocalZTo(0.4, d) }},
		{"rotate local quat", func(m *Mat4d) { m.RotateLocalQuat(q) }, func(m Mat4d, d *Mat4d) { m.RotateLocalQuatTo(q, d) }},
		{"look along", func(m *Mat4d) { m.LookAlong(dir, up) }, func(m Mat4d, d *Mat4d) { m.LookAlongTo(dir, up, d) }},
		{"rotate towards", func(m *Mat4d) { m.RotateTowards(dir, up) }, func(m Mat4d, d *Mat4d) { m.RotateTowardsTo(dir, up, d) }},
		{"look at", func(m *Mat4d) { m.LookAt(eye, center, up) }, func(m Mat4d, d *Mat4d) { m.LookAtTo(eye, center, up, d) }},
		{"perspective", func(m *Mat4d) { m.Perspective(1, 1.5, 0.1, 50) }, func(m Mat4d, d *Mat4d) { m.PerspectiveTo(1, 1.5, 0.1, 50, d) }},
		{"ortho", func(m *Mat4d) { m.Ortho(-2, 3, -1, 4, 0.5, 20) }, func(m Mat4d, d *Mat4d) { m.OrthoTo(-2, 3, -1, 4, 0.5, 20, d) }},
		{"frustum", func(m *Mat4d) { m.Frustum(-1, 2, -1, 1, 0.5, 20) }, func(m Mat4d, d *Mat4d) { m.FrustumTo(-1, 2, -1, 1, 0.5, 20, d) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := randomMat4(r)
			var want Mat4d
			tt.to(src, &want)
			got := src
			tt.inPlace(&got)
			if !got.Equals(want) {
				t.Fatalf("in place %v\nTo %v", got, want)
			}
		})
	}
}

func TestMat3InPlaceMatchesTo(t *testing.T) {
	r := newRand(t)
	other := randomMat3(r)
	axis := randomUnitVec3(r)
	q := randomQuat(r)
	aa := NewAxisAngle(0.8, axis)
	dir, up := NewVec3(1.0, -0.5, -2.0), NewVec3(0.0, 1.0, 0.0)

	tests := []struct {
		name    string
		inPlace func(m *Mat3d)
		to      func(m Mat3d, dest *Mat3d)
	}{
		{"mul", func(m *Mat3d) { m.Mul(other) }, func(m Mat3d, d *Mat3d) { m.MulTo(other, d) }},
		{"mul local", func(m *Mat3d) { m.MulLocal(other) }, func(m Mat3d, d *Mat3d) { m.MulLocalTo(other, d) }},
		{"invert", func(m *Mat3d) { m.Invert() }, func(m Mat3d, d *Mat3d) { m.InvertTo(d) }},
		{"transpose", func(m *Mat3d) { m.Transpose() }, func(m Mat3d, d *Mat3d) { m.TransposeTo(d) }},
		{"mul component wise", func(m *Mat3d) { m.MulComponentWise(other) }, func(m Mat3d, d *Mat3d) { m.MulComponentWiseTo(other, d) }},
		{"add", func(m *Mat3d) { m.Add(other) }, func(m Mat3d, d *Mat3d) { m.AddTo(other, d) }},
		{"sub", func(m *Mat3d) { m.Sub(other) }, func(m Mat3d, d *Mat3d) { m.SubTo(other, d) }},
		{"lerp", func(m *Mat3d) { m.Lerp(other, 0.3) }, func(m Mat3d, d *Mat3d) { m.LerpTo(other, 0.3, d) }},
		{"normal", func(m *Mat3d) { m.Normal() }, func(m Mat3d, d *Mat3d) { m.NormalTo(d) }},
		{"scale", func(m *Mat3d) { m.Scale(2, 3, 4) }, func(m Mat3d, d *Mat3d) { m.ScaleTo(2, 3, 4, d) }},
		{"scale local", func(m *Mat3d) { m.ScaleLocal(2, 3, 4) }, func(m Mat3d, d *Mat3d) { m.ScaleLocalTo(2, 3, 4, d) }},
		{"rotate x", func(m *Mat3d) { m.RotateX(0.4) }, func(m Mat3d, d *Mat3d) { m.RotateXTo(0.4, d) }},
		{"rotate y", func(m *Mat3d) { m.RotateY(0.4) }, func(m Mat3d, d *Mat3d) { m.RotateYTo(0.4, d) }},
		{"rotate z", func(m *Mat3d) { m.RotateZ(0.4) }, func(m Mat3d, d *Mat3d) { m.RotateZTo(0.4, d) }},
		{"rotate xyz", func(m *Mat3d) { m.RotateXYZ(0.1, 0.2, 0.3) }, func(m Mat3d, d *Mat3d) { m.RotateXYZTo(0.1, 0.2, 0.3, d) }},
		{"rotate zyx", func(m *Mat3d) { m.RotateZYX(0.1, 0.2, 0.3) }, func(m Mat3d, d *Mat3d) { m.RotateZYXTo(0.1, 0.2, 0.3, d) }},
		{"rotate yxz", func(m *Mat3d) { m.RotateYXZ(0.1, 0.2, 0.3) }, func(m Mat3d, d *Mat3d) { m.RotateYXZTo(0.1, 0.2, 0.3, d) }},
		{"rotate", func(m *Mat3d) { m.Rotate(0.7, axis) }, func(m Mat3d, d *Mat3d) { m.RotateTo(0.7, axis, d) }},
		{"rotate axis angle", func(m *Mat3d) { m.RotateAxisAngle(aa) }, func(m Mat3d, d *Mat3d) { m.RotateAxisAngleTo(aa, d) }},
		{"rotate quat", func(m *Mat3d) { m.RotateQuat(q) }, func(m Mat3d, d *Mat3d) { m.RotateQuatTo(q, d) }},
		{"rotate local", func(m *Mat3d) { m.RotateLocal(0.7, axis) }, func(m Mat3d, d *Mat3d) { m.RotateLocalTo(0.7, axis, d) }},
		{"rotate local x", func(m *Mat3d) { m.RotateLocalX(0.4) }, func(m Mat3d, d *Mat3d) { m.RotateLocalXTo(0.4, d) }},
		{"rotate local y", func(m *Mat3d) { m.RotateLocalY(0.4) }, func(m Mat3d, d *Mat3d) { m.RotateLocalYTo(0.4, d) }},
		{"rotate local z", func(m *Mat3d) { m.RotateLocalZ(0.4) }, func(m Mat3d, d *Mat3d) { m.RotateLocalZTo(0.4, d) }},
		{"rotate local quat", func(m *Mat3d) { m.RotateLocalQuat(q) }, func(m Mat3d, d *Mat3d) { m.RotateLocalQuatTo(q, d) }},
		{"look along", func(m *Mat3d) { m.LookAlong(dir, up) }, func(m Mat3d, d *Mat3d) { m.LookAlongTo(dir, up, d) }},
		{"rotate towards", func(m *Mat3d) { m.RotateTowards(dir, up) }, func(m Mat3d, d *Mat3d) { m.RotateTowardsTo(dir, up, d) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := randomMat3(r)
			var want Mat3d
			tt.to(src, &want)
			got := src
			tt.inPlace(&got)
			if !got.Equals(want) {
				t.Fatalf("in place %v\nTo %v", got, want)
			}
		})
	}
}

func TestMat4x3InPlaceMatchesTo(t *testing.T) {
	r := newRand(t)
	other := randomMat4x3(r)
	axis := randomUnitVec3(r)
	q := randomQuat(r)
	dir, up := NewVec3(1.0, -0.5, -2.0), NewVec3(0.0, 1.0, 0.0)
	eye, center := NewVec3(3.0, 2.0, 5.0), NewVec3(0.0, 0.5, 0.0)

	tests := []struct {
		name    string
		inPlace func(m *Mat4x3d)
		to      func(m Mat4x3d, dest *Mat4x3d)
	}{
		{"mul", func(m *Mat4x3d) { m.Mul(other) }, func(m Mat4x3d, d *Mat4x3d) { m.MulTo(other, d) }},
		{"mul local", func(m *Mat4x3d) { m.MulLocal(other) }, func(m Mat4x3d, d *Mat4x3d) { m.MulLocalTo(other, d) }},
		{"mul component wise", func(m *Mat4x3d) { m.MulComponentWise(other) }, func(m Mat4x3d, d *Mat4x3d) { m.MulComponentWiseTo(other, d) }},
		{"add", func(m *Mat4x3d) { m.Add(other) }, func(m Mat4x3d, d *Mat4x3d) { m.AddTo(other, d) }},
		{"sub", func(m *Mat4x3d) { m.Sub(other) }, func(m Mat4x3d, d *Mat4x3d) { m.SubTo(other, d) }},
		{"lerp", func(m *Mat4x3d) { m.Lerp(other, 0.3) }, func(m Mat4x3d, d *Mat4x3d) { m.LerpTo(other, 0.3, d) }},
		{"invert", func(m *Mat4x3d) { m.Invert() }, func(m Mat4x3d, d *Mat4x3d) { m.InvertTo(d) }},
		{"transpose 3x3", func(m *Mat4x3d) { m.Transpose3x3() }, func(m Mat4x3d, d *Mat4x3d) { m.Transpose3x3To(d) }},
		{"normal", func(m *Mat4x3d) { m.Normal() }, func(m Mat4x3d, d *Mat4x3d) { m.NormalTo(d) }},
		{"scale", func(m *Mat4x3d) { m.Scale(2, 3, 4) }, func(m Mat4x3d, d *Mat4x3d) { m.ScaleTo(2, 3, 4, d) }},
		{"scale local", func(m *Mat4x3d) { m.ScaleLocal(2, 3, 4) }, func(m Mat4x3d, d *Mat4x3d) { m.ScaleLocalTo(2, 3, 4, d) }},
		{"translate", func(m *Mat4x3d) { m.Translate(1, -2, 3) }, func(m Mat4x3d, d *Mat4x3d) { m.TranslateTo(1, -2, 3, d) }},
		{"translate local", func(m *Mat4x3d) { m.TranslateLocal(1, 2, 3) }, func(m Mat4x3d, d *Mat4x3d) { m.TranslateLocalTo(1, 2, 3, d) }},
		{"rotate x", func(m *Mat4x3d) { m.RotateX(0.4) }, func(m Mat4x3d, d *Mat4x3d) { m.RotateXTo(0.4, d) }},
		{"rotate y", func(m *Mat4x3d) { m.RotateY(0.4) }, func(m Mat4x3d, d *Mat4x3d) { m.RotateYTo(0.4, d) }},
		{"rotate z", func(m *Mat4x3d) { m.RotateZ(0.4) }, func(m Mat4x3d, d *Mat4x3d) { m.RotateZTo(0.4, d) }},
		{"rotate xyz", func(m *Mat4x3d) { m.RotateXYZ(0.1, 0.2, 0.3) }, func(m Mat4x3d, d *Mat4x3d) { m.RotateXYZTo(0.1, 0.2, 0.3, d) }},
		{"rotate zyx", func(m *Mat4x3d) { m.RotateZYX(0.1, 0.2, 0.3) }, func(m Mat4x3d, d *Mat4x3d) { m.RotateZYXTo(0.1, 0.2, 0.3, d) }},
		{"rotate yxz", func(m *Mat4x3d) { m.RotateYXZ(0.1, 0.2, 0.3) }, func(m Mat4x3d, d *Mat4x3d) { m.RotateYXZTo(0.1, 0.2, 0.3, d) }},
		{"rotate", func(m *Mat4x3d) { m.Rotate(0.7, axis) }, func(m Mat4x3d, d *Mat4x3d) { m.RotateTo(0.7, axis, d) }},
		{"rotate quat", func(m *Mat4x3d) { m.RotateQuat(q) }, func(m Mat4x3d, d *Mat4x3d) { m.RotateQuatTo(q, d) }},
		{"rotate local", func(m *Mat4x3d) { m.RotateLocal(0.7, axis) }, func(m Mat4x3d, d *Mat4x3d) { m.RotateLocalTo(0.7, axis, d) }},
		{"rotate local x", func(m *Mat4x3d) { m.RotateLocalX(0.4) }, func(m Mat4x3d, d *Mat4x3d) { m.RotateLocalXTo(0.4, d) }},
		{"rotate local y", func(m *Mat4x3d) { m.RotateLocalY(0.4) }, func(m Mat4x3d, d *Mat4x3d) { m.RotateLocalYTo(0.4, d) }},
		{"rotate local z", func(m *Mat4x3d) { m.RotateLocalZ(0.4) }, func(m Mat4x3d, d *Mat4x3d) { m.RotateLocalZTo(0.4, d) }},
		{"look along", func(m *Mat4x3d) { m.LookAlong(dir, up) }, func(m Mat4x3d, d *Mat4x3d) { m.LookAlongTo(dir, up, d) }},
		{"rotate towards", func(m *Mat4x3d) { m.RotateTowards(dir, up) }, func(m Mat4x3d, d *Mat4x3d) { m.RotateTowardsTo(dir, up, d) }},
		{"look at", func(m *Mat4x3d) { m.LookAt(eye, center, up) }, func(m Mat4x3d, d *Mat4x3d) { m.LookAtTo(eye, center, up, d) }},
		{"ortho", func(m *Mat4x3d) { m.Ortho(-2, 3, -1, 4, 0.5, 20) }, func(m Mat4x3d, d *Mat4x3d) { m.OrthoTo(-2, 3, -1, 4, 0.5, 20, d) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := randomMat4x3(r)
			var want Mat4x3d
			tt.to(src, &want)
			got := src
			tt.inPlace(&got)
			if !got.Equals(want) {
				t.Fatalf("in place %v\nTo %v", got, want)
			}
		})
	}
}
