package math

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// The x/image matrix types are row major; conversions transpose.

func (v Vec2[T]) F32() f32.Vec2 { return f32.Vec2{float32(v.X), float32(v.Y)} }
func (v Vec3[T]) F32() f32.Vec3 { return f32.Vec3{float32(v.X), float32(v.Y), float32(v.Z)} }
func (v Vec4[T]) F32() f32.Vec4 {
	return f32.Vec4{float32(v.X), float32(v.Y), float32(v.Z), float32(v.W)}
}

func (v Vec2[T]) F64() f64.Vec2 { return f64.Vec2{float64(v.X), float64(v.Y)} }
func (v Vec3[T]) F64() f64.Vec3 { return f64.Vec3{float64(v.X), float64(v.Y), float64(v.Z)} }
func (v Vec4[T]) F64() f64.Vec4 {
	return f64.Vec4{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)}
}

func (m Mat3[T]) F32() f32.Mat3 {
	return f32.Mat3{
		float32(m.M00), float32(m.M10), float32(m.M20),
		float32(m.M01), float32(m.M11), float32(m.M21),
		float32(m.M02), float32(m.M12), float32(m.M22),
	}
}

func (m Mat3[T]) F64() f64.Mat3 {
	return f64.Mat3{
		float64(m.M00), float64(m.M10), float64(m.M20),
		float64(m.M01), float64(m.M11), float64(m.M21),
		float64(m.M02), float64(m.M12), float64(m.M22),
	}
}

func Mat3FromF32[T constraints.Float](a f32.Mat3) Mat3[T] {
	return NewMat3(
		T(a[0]), T(a[3]), T(a[6]),
		T(a[1]), T(a[4]), T(a[7]),
		T(a[2]), T(a[5]), T(a[8]))
}

func Mat3FromF64[T constraints.Float](a f64.Mat3) Mat3[T] {
	return NewMat3(
		T(a[0]), T(a[3]), T(a[6]),
		T(a[1]), T(a[4]), T(a[7]),
		T(a[2]), T(a[5]), T(a[8]))
}

/**
 * @brief Converts to the row major f32.Mat4, element [4*r + c] being
 * row r, column c.
 */
func (m Mat4[T]) F32() f32.Mat4 {
	return f32.Mat4{
		float32(m.M00), float32(m.M10), float32(m.M20), float32(m.M30),
		float32(m.M01), float32(m.M11), float32(m.M21), float32(m.M31),
		float32(m.M02), float32(m.M12), float32(m.M22), float32(m.M32),
		float32(m.M03), float32(m.M13), float32(m.M23), float32(m.M33),
	}
}

func (m Mat4[T]) F64() f64.Mat4 {
	return f64.Mat4{
		float64(m.M00), float64(m.M10), float64(m.M20), float64(m.M30),
		float64(m.M01), float64(m.M11), float64(m.M21), float64(m.M31),
		float64(m.M02), float64(m.M12), float64(m.M22), float64(m.M32),
		float64(m.M03), float64(m.M13), float64(m.M23), float64(m.M33),
	}
}

func Mat4FromF32[T constraints.Float](a f32.Mat4) Mat4[T] {
	return NewMat4(
		T(a[0]), T(a[4]), T(a[8]), T(a[12]),
		T(a[1]), T(a[5]), T(a[9]), T(a[13]),
		T(a[2]), T(a[6]), T(a[10]), T(a[14]),
		T(a[3]), T(a[7]), T(a[11]), T(a[15]))
}

func Mat4FromF64[T constraints.Float](a f64.Mat4) Mat4[T] {
	return NewMat4(
		T(a[0]), T(a[4]), T(a[8]), T(a[12]),
		T(a[1]), T(a[5]), T(a[9]), T(a[13]),
		T(a[2]), T(a[6]), T(a[10]), T(a[14]),
		T(a[3]), T(a[7]), T(a[11]), T(a[15]))
}

// F64 converts to the affine type accepted by golang.org/x/image/draw
// transformers.
func (m Mat3x2[T]) F64() f64.Aff3 {
	return f64.Aff3{
		float64(m.M00), float64(m.M10), float64(m.M20),
		float64(m.M01), float64(m.M11), float64(m.M21),
	}
}

func (m Mat3x2[T]) F32() f32.Aff3 {
	return f32.Aff3{
		float32(m.M00), float32(m.M10), float32(m.M20),
		float32(m.M01), float32(m.M11), float32(m.M21),
	}
}

func Mat3x2FromF64[T constraints.Float](a f64.Aff3) Mat3x2[T] {
	return NewMat3x2(T(a[0]), T(a[3]), T(a[1]), T(a[4]), T(a[2]), T(a[5]))
}

func (m Mat4x3[T]) F32() f32.Aff4 {
	return f32.Aff4{
		float32(m.M00), float32(m.M10), float32(m.M20), float32(m.M30),
		float32(m.M01), float32(m.M11), float32(m.M21), float32(m.M31),
		float32(m.M02), float32(m.M12), float32(m.M22), float32(m.M32),
	}
}

func (m Mat4x3[T]) F64() f64.Aff4 {
	return f64.Aff4{
		float64(m.M00), float64(m.M10), float64(m.M20), float64(m.M30),
		float64(m.M01), float64(m.M11), float64(m.M21), float64(m.M31),
		float64(m.M02), float64(m.M12), float64(m.M22), float64(m.M32),
	}
}
