package math

import (
	"encoding/binary"
	"fmt"
	m "math"
	"unsafe"

	"github.com/spaghettifunk/linmath/engine/core"
	"golang.org/x/exp/constraints"
)

// Buffers hold matrices column-major at an absolute element offset. The
// caller's slice is never resliced or advanced.

func checkRange(need, offset, have int) error {
	if offset < 0 {
		return fmt.Errorf("offset %d: %w", offset, core.ErrIndexOutOfRange)
	}
	if need > have-offset {
		return fmt.Errorf("need %d elements at offset %d, buffer holds %d: %w", need, offset, have, core.ErrBufferTooSmall)
	}
	return nil
}

func putElements[T, U constraints.Float](elements []T, dst []U, offset int) error {
	if err := checkRange(len(elements), offset, len(dst)); err != nil {
		return err
	}
	for i, v := range elements {
		dst[offset+i] = U(v)
	}
	return nil
}

func readElements[T, U constraints.Float](dst []T, src []U, offset int) error {
	if err := checkRange(len(dst), offset, len(src)); err != nil {
		return err
	}
	for i := range dst {
		dst[i] = T(src[offset+i])
	}
	return nil
}

// putBytes encodes each element with the width of T: 4 bytes for
// float32, 8 for float64. offset is in bytes.
func putBytes[T constraints.Float](elements []T, buf []byte, offset int, order binary.ByteOrder) error {
	size := int(unsafe.Sizeof(T(0)))
	if err := checkRange(len(elements)*size, offset, len(buf)); err != nil {
		return err
	}
	for i, v := range elements {
		at := buf[offset+i*size:]
		if size == 4 {
			order.PutUint32(at, m.Float32bits(float32(v)))
		} else {
			order.PutUint64(at, m.Float64bits(float64(v)))
		}
	}
	return nil
}

func readBytes[T constraints.Float](dst []T, buf []byte, offset int, order binary.ByteOrder) error {
	size := int(unsafe.Sizeof(T(0)))
	if err := checkRange(len(dst)*size, offset, len(buf)); err != nil {
		return err
	}
	for i := range dst {
		at := buf[offset+i*size:]
		if size == 4 {
			dst[i] = T(m.Float32frombits(order.Uint32(at)))
		} else {
			dst[i] = T(m.Float64frombits(order.Uint64(at)))
		}
	}
	return nil
}

func (mat Mat3[T]) elements() [9]T {
	return [9]T{
		mat.M00, mat.M01, mat.M02,
		mat.M10, mat.M11, mat.M12,
		mat.M20, mat.M21, mat.M22,
	}
}

func (mat *Mat3[T]) setElements(e [9]T) {
	*mat = Mat3[T]{
		M00: e[0], M01: e[1], M02: e[2],
		M10: e[3], M11: e[4], M12: e[5],
		M20: e[6], M21: e[7], M22: e[8],
	}
}

/**
 * @brief Stores the matrix column-major into dst starting at offset.
 *
 * @return core.ErrBufferTooSmall if fewer than 9 elements are available.
 */
func (mat Mat3[T]) Get(dst []T, offset int) error {
	e := mat.elements()
	return putElements(e[:], dst, offset)
}

func (mat Mat3[T]) GetFloat32(dst []float32, offset int) error {
	e := mat.elements()
	return putElements(e[:], dst, offset)
}

func (mat Mat3[T]) GetFloat64(dst []float64, offset int) error {
	e := mat.elements()
	return putElements(e[:], dst, offset)
}

// Set reads a column-major matrix from src starting at offset.
func (mat *Mat3[T]) Set(src []T, offset int) error {
	var e [9]T
	if err := readElements(e[:], src, offset); err != nil {
		return err
	}
	mat.setElements(e)
	return nil
}

// PutBytes encodes the matrix into buf at the given byte offset.
func (mat Mat3[T]) PutBytes(buf []byte, offset int, order binary.ByteOrder) error {
	e := mat.elements()
	return putBytes(e[:], buf, offset, order)
}

func (mat *Mat3[T]) SetBytes(buf []byte, offset int, order binary.ByteOrder) error {
	var e [9]T
	if err := readBytes(e[:], buf, offset, order); err != nil {
		return err
	}
	mat.setElements(e)
	return nil
}

func (mat Mat3x2[T]) elements() [6]T {
	return [6]T{mat.M00, mat.M01, mat.M10, mat.M11, mat.M20, mat.M21}
}

func (mat *Mat3x2[T]) setElements(e [6]T) {
	*mat = Mat3x2[T]{e[0], e[1], e[2], e[3], e[4], e[5]}
}

func (mat Mat3x2[T]) Get(dst []T, offset int) error {
	e := mat.elements()
	return putElements(e[:], dst, offset)
}

func (mat Mat3x2[T]) GetFloat32(dst []float32, offset int) error {
	e := mat.elements()
	return putElements(e[:], dst, offset)
}

func (mat Mat3x2[T]) GetFloat64(dst []float64, offset int) error {
	e := mat.elements()
	return putElements(e[:], dst, offset)
}

func (mat *Mat3x2[T]) Set(src []T, offset int) error {
	var e [6]T
	if err := readElements(e[:], src, offset); err != nil {
		return err
	}
	mat.setElements(e)
	return nil
}

func (mat Mat3x2[T]) PutBytes(buf []byte, offset int, order binary.ByteOrder) error {
	e := mat.elements()
	return putBytes(e[:], buf, offset, order)
}

func (mat *Mat3x2[T]) SetBytes(buf []byte, offset int, order binary.ByteOrder) error {
	var e [6]T
	if err := readBytes(e[:], buf, offset, order); err != nil {
		return err
	}
	mat.setElements(e)
	return nil
}

func (mat Mat4x3[T]) elements() [12]T {
	return [12]T{
		mat.M00, mat.M01, mat.M02,
		mat.M10, mat.M11, mat.M12,
		mat.M20, mat.M21, mat.M22,
		mat.M30, mat.M31, mat.M32,
	}
}

func (mat *Mat4x3[T]) setElements(e [12]T) {
	*mat = Mat4x3[T]{
		M00: e[0], M01: e[1], M02: e[2],
		M10: e[3], M11: e[4], M12: e[5],
		M20: e[6], M21: e[7], M22: e[8],
		M30: e[9], M31: e[10], M32: e[11],
	}
}

func (mat Mat4x3[T]) Get(dst []T, offset int) error {
	e := mat.elements()
	return putElements(e[:], dst, offset)
}

func (mat Mat4x3[T]) GetFloat32(dst []float32, offset int) error {
	e := mat.elements()
	return putElements(e[:], dst, offset)
}

func (mat Mat4x3[T]) GetFloat64(dst []float64, offset int) error {
	e := mat.elements()
	return putElements(e[:], dst, offset)
}

func (mat *Mat4x3[T]) Set(src []T, offset int) error {
	var e [12]T
	if err := readElements(e[:], src, offset); err != nil {
		return err
	}
	mat.setElements(e)
	return nil
}

func (mat Mat4x3[T]) PutBytes(buf []byte, offset int, order binary.ByteOrder) error {
	e := mat.elements()
	return putBytes(e[:], buf, offset, order)
}

func (mat *Mat4x3[T]) SetBytes(buf []byte, offset int, order binary.ByteOrder) error {
	var e [12]T
	if err := readBytes(e[:], buf, offset, order); err != nil {
		return err
	}
	mat.setElements(e)
	return nil
}

func (mat Mat4[T]) elements() [16]T {
	return [16]T{
		mat.M00, mat.M01, mat.M02, mat.M03,
		mat.M10, mat.M11, mat.M12, mat.M13,
		mat.M20, mat.M21, mat.M22, mat.M23,
		mat.M30, mat.M31, mat.M32, mat.M33,
	}
}

func (mat *Mat4[T]) setElements(e [16]T) {
	*mat = Mat4[T]{
		M00: e[0], M01: e[1], M02: e[2], M03: e[3],
		M10: e[4], M11: e[5], M12: e[6], M13: e[7],
		M20: e[8], M21: e[9], M22: e[10], M23: e[11],
		M30: e[12], M31: e[13], M32: e[14], M33: e[15],
	}
}

/**
 * @brief Stores the matrix column-major into dst starting at offset, the
 * layout expected by GPU uniform uploads.
 *
 * @return core.ErrBufferTooSmall if fewer than 16 elements are available.
 */
func (mat Mat4[T]) Get(dst []T, offset int) error {
	e := mat.elements()
	return putElements(e[:], dst, offset)
}

func (mat Mat4[T]) GetFloat32(dst []float32, offset int) error {
	e := mat.elements()
	return putElements(e[:], dst, offset)
}

func (mat Mat4[T]) GetFloat64(dst []float64, offset int) error {
	e := mat.elements()
	return putElements(e[:], dst, offset)
}

func (mat *Mat4[T]) Set(src []T, offset int) error {
	var e [16]T
	if err := readElements(e[:], src, offset); err != nil {
		return err
	}
	mat.setElements(e)
	return nil
}

func (mat Mat4[T]) PutBytes(buf []byte, offset int, order binary.ByteOrder) error {
	e := mat.elements()
	return putBytes(e[:], buf, offset, order)
}

func (mat *Mat4[T]) SetBytes(buf []byte, offset int, order binary.ByteOrder) error {
	var e [16]T
	if err := readBytes(e[:], buf, offset, order); err != nil {
		return err
	}
	mat.setElements(e)
	return nil
}
