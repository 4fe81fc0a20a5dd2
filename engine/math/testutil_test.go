package math

import (
	m "math"
	"testing"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/rand"
)

const (
	eps32 = 1e-5
	eps64 = 1e-9
)

func negZero() float64 {
	return m.Copysign(0, -1)
}

func newRand(t *testing.T) *rand.Rand {
	t.Helper()
	return rand.New(rand.NewSource(20240601))
}

func assertFloatEqual[T constraints.Float](t *testing.T, name string, want, got, eps T) {
	t.Helper()
	if !CompareFloat(want, got, eps) {
		t.Errorf("%s: want %v, got %v (eps %v)", name, want, got, eps)
	}
}

func assertElementsEqual[T constraints.Float](t *testing.T, kind string, want, got []T, eps T) {
	t.Helper()
	for i := range want {
		if !CompareFloat(want[i], got[i], eps) {
			t.Fatalf("%s element %d: want %v, got %v (eps %v)\nwant %v\ngot  %v", kind, i, want[i], got[i], eps, want, got)
		}
	}
}

func assertMat3Equal[T constraints.Float](t *testing.T, want, got Mat3[T], eps T) {
	t.Helper()
	w, g := want.elements(), got.elements()
	assertElementsEqual(t, "mat3", w[:], g[:], eps)
}

func assertMat4Equal[T constraints.Float](t *testing.T, want, got Mat4[T], eps T) {
	t.Helper()
	w, g := want.elements(), got.elements()
	assertElementsEqual(t, "mat4", w[:], g[:], eps)
}

func assertMat4x3Equal[T constraints.Float](t *testing.T, want, got Mat4x3[T], eps T) {
	t.Helper()
	w, g := want.elements(), got.elements()
	assertElementsEqual(t, "mat4x3", w[:], g[:], eps)
}

func assertMat3x2Equal[T constraints.Float](t *testing.T, want, got Mat3x2[T], eps T) {
	t.Helper()
	w, g := want.elements(), got.elements()
	assertElementsEqual(t, "mat3x2", w[:], g[:], eps)
}

func assertVec2Equal[T constraints.Float](t *testing.T, want, got Vec2[T], eps T) {
	t.Helper()
	if !want.Compare(got, eps) {
		t.Fatalf("vec2: want %v, got %v (eps %v)", want, got, eps)
	}
}

func assertVec3Equal[T constraints.Float](t *testing.T, want, got Vec3[T], eps T) {
	t.Helper()
	if !want.Compare(got, eps) {
		t.Fatalf("vec3: want %v, got %v (eps %v)", want, got, eps)
	}
}

func assertVec4Equal[T constraints.Float](t *testing.T, want, got Vec4[T], eps T) {
	t.Helper()
	if !want.Compare(got, eps) {
		t.Fatalf("vec4: want %v, got %v (eps %v)", want, got, eps)
	}
}

// assertSameRotation accepts q or -q, which describe the same rotation.
func assertSameRotation[T constraints.Float](t *testing.T, want, got Quat[T], eps T) {
	t.Helper()
	neg := Quat[T]{-got.X, -got.Y, -got.Z, -got.W}
	if !want.Compare(got, eps) && !want.Compare(neg, eps) {
		t.Fatalf("quat: want %v, got %v (eps %v)", want, got, eps)
	}
}

func randomVec3(r *rand.Rand) Vec3d {
	return Vec3d{RandomInRange(r, -2.0, 2.0), RandomInRange(r, -2.0, 2.0), RandomInRange(r, -2.0, 2.0)}
}

func randomUnitVec3(r *rand.Rand) Vec3d {
	for {
		v := randomVec3(r)
		if v.LengthSquared() > 0.01 {
			return v.Normalize()
		}
	}
}

func randomAngle(r *rand.Rand) float64 {
	return RandomInRange(r, -K_PI, K_PI)
}

func randomQuat(r *rand.Rand) Quatd {
	return NewQuatFromAxisAngle(randomUnitVec3(r), randomAngle(r))
}

// randomMat3 returns a well conditioned matrix: a random rotation with a
// scale in [0.5, 2) on each axis, plus a small shear.
func randomMat3(r *rand.Rand) Mat3d {
	var mat Mat3d
	mat.RotationQuat(randomQuat(r)).Scale(
		RandomInRange(r, 0.5, 2.0), RandomInRange(r, 0.5, 2.0), RandomInRange(r, 0.5, 2.0))
	mat.M10 += RandomInRange(r, -0.2, 0.2)
	return mat
}

func randomMat4(r *rand.Rand) Mat4d {
	var mat Mat4d
	mat.SetMat3(randomMat3(r))
	mat.M30, mat.M31, mat.M32 = RandomInRange(r, -5.0, 5.0), RandomInRange(r, -5.0, 5.0), RandomInRange(r, -5.0, 5.0)
	mat.M03, mat.M13, mat.M23 = RandomInRange(r, -0.01, 0.01), RandomInRange(r, -0.01, 0.01), RandomInRange(r, -0.01, 0.01)
	return mat
}

func randomMat4x3(r *rand.Rand) Mat4x3d {
	var mat Mat4x3d
	mat.SetMat3(randomMat3(r))
	mat.M30, mat.M31, mat.M32 = RandomInRange(r, -5.0, 5.0), RandomInRange(r, -5.0, 5.0), RandomInRange(r, -5.0, 5.0)
	return mat
}
