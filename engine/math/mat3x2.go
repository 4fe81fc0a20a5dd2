package math

import (
	"fmt"
	"strings"

	"github.com/spaghettifunk/linmath/engine/core"
	"golang.org/x/exp/constraints"
)

func NewMat3x2Identity[T constraints.Float]() Mat3x2[T] {
	return Mat3x2[T]{M00: 1, M11: 1}
}

// NewMat3x2 creates a matrix from its elements given in column-major order.
func NewMat3x2[T constraints.Float](m00, m01, m10, m11, m20, m21 T) Mat3x2[T] {
	return Mat3x2[T]{M00: m00, M01: m01, M10: m10, M11: m11, M20: m20, M21: m21}
}

func ConvertMat3x2[U, T constraints.Float](mat Mat3x2[T]) Mat3x2[U] {
	return Mat3x2[U]{
		M00: U(mat.M00), M01: U(mat.M01),
		M10: U(mat.M10), M11: U(mat.M11),
		M20: U(mat.M20), M21: U(mat.M21),
	}
}

func (m *Mat3x2[T]) Identity() *Mat3x2[T] {
	*m = Mat3x2[T]{M00: 1, M11: 1}
	return m
}

func (m *Mat3x2[T]) Zero() *Mat3x2[T] {
	*m = Mat3x2[T]{}
	return m
}

func (m *Mat3x2[T]) SetFrom(other Mat3x2[T]) *Mat3x2[T] {
	*m = other
	return m
}

/**
 * @brief Multiplies m by right: right is applied first, then m.
 */
func (m Mat3x2[T]) MulTo(right Mat3x2[T], dest *Mat3x2[T]) *Mat3x2[T] {
	nm00 := m.M00*right.M00 + m.M10*right.M01
	nm01 := m.M01*right.M00 + m.M11*right.M01
	nm10 := m.M00*right.M10 + m.M10*right.M11
	nm11 := m.M01*right.M10 + m.M11*right.M11
	nm20 := m.M00*right.M20 + m.M10*right.M21 + m.M20
	nm21 := m.M01*right.M20 + m.M11*right.M21 + m.M21
	*dest = Mat3x2[T]{nm00, nm01, nm10, nm11, nm20, nm21}
	return dest
}

func (m *Mat3x2[T]) Mul(right Mat3x2[T]) *Mat3x2[T] {
	return m.MulTo(right, m)
}

func (m Mat3x2[T]) MulLocalTo(left Mat3x2[T], dest *Mat3x2[T]) *Mat3x2[T] {
	return left.MulTo(m, dest)
}

func (m *Mat3x2[T]) MulLocal(left Mat3x2[T]) *Mat3x2[T] {
	return m.MulLocalTo(left, m)
}

func (m Mat3x2[T]) Determinant() T {
	return m.M00*m.M11 - m.M01*m.M10
}

// InvertTo inverts m into dest. A singular matrix yields Inf/NaN elements.
func (m Mat3x2[T]) InvertTo(dest *Mat3x2[T]) *Mat3x2[T] {
	s := 1.0 / m.Determinant()
	nm00 := m.M11 * s
	nm01 := -m.M01 * s
	nm10 := -m.M10 * s
	nm11 := m.M00 * s
	nm20 := (m.M10*m.M21 - m.M20*m.M11) * s
	nm21 := (m.M20*m.M01 - m.M00*m.M21) * s
	*dest = Mat3x2[T]{nm00, nm01, nm10, nm11, nm20, nm21}
	return dest
}

func (m *Mat3x2[T]) Invert() *Mat3x2[T] {
	return m.InvertTo(m)
}

func (m *Mat3x2[T]) Translation(x, y T) *Mat3x2[T] {
	*m = Mat3x2[T]{M00: 1, M11: 1, M20: x, M21: y}
	return m
}

// TranslateTo applies a translation before m.
func (m Mat3x2[T]) TranslateTo(x, y T, dest *Mat3x2[T]) *Mat3x2[T] {
	*dest = m
	dest.M20 = m.M00*x + m.M10*y + m.M20
	dest.M21 = m.M01*x + m.M11*y + m.M21
	return dest
}

func (m *Mat3x2[T]) Translate(x, y T) *Mat3x2[T] {
	return m.TranslateTo(x, y, m)
}

// TranslateLocalTo applies a translation after m.
func (m Mat3x2[T]) TranslateLocalTo(x, y T, dest *Mat3x2[T]) *Mat3x2[T] {
	*dest = m
	dest.M20 = m.M20 + x
	dest.M21 = m.M21 + y
	return dest
}

func (m *Mat3x2[T]) TranslateLocal(x, y T) *Mat3x2[T] {
	return m.TranslateLocalTo(x, y, m)
}

func (m *Mat3x2[T]) Scaling(x, y T) *Mat3x2[T] {
	*m = Mat3x2[T]{M00: x, M11: y}
	return m
}

func (m Mat3x2[T]) ScaleTo(x, y T, dest *Mat3x2[T]) *Mat3x2[T] {
	*dest = Mat3x2[T]{m.M00 * x, m.M01 * x, m.M10 * y, m.M11 * y, m.M20, m.M21}
	return dest
}

func (m *Mat3x2[T]) Scale(x, y T) *Mat3x2[T] {
	return m.ScaleTo(x, y, m)
}

func (m Mat3x2[T]) ScaleLocalTo(x, y T, dest *Mat3x2[T]) *Mat3x2[T] {
	*dest = Mat3x2[T]{x * m.M00, y * m.M01, x * m.M10, y * m.M11, x * m.M20, y * m.M21}
	return dest
}

func (m *Mat3x2[T]) ScaleLocal(x, y T) *Mat3x2[T] {
	return m.ScaleLocalTo(x, y, m)
}

// Rotation sets m to a counter-clockwise rotation of angle radians.
func (m *Mat3x2[T]) Rotation(angle T) *Mat3x2[T] {
	sin := Sin(angle)
	cos := CosFromSin(sin, angle)
	*m = Mat3x2[T]{M00: cos, M01: sin, M10: -sin, M11: cos}
	return m
}

// RotateTo applies a rotation before m.
func (m Mat3x2[T]) RotateTo(angle T, dest *Mat3x2[T]) *Mat3x2[T] {
	sin := Sin(angle)
	cos := CosFromSin(sin, angle)
	nm00 := m.M00*cos + m.M10*sin
	nm01 := m.M01*cos + m.M11*sin
	nm10 := m.M10*cos - m.M00*sin
	nm11 := m.M11*cos - m.M01*sin
	*dest = Mat3x2[T]{nm00, nm01, nm10, nm11, m.M20, m.M21}
	return dest
}

func (m *Mat3x2[T]) Rotate(angle T) *Mat3x2[T] {
	return m.RotateTo(angle, m)
}

// RotateLocalTo applies a rotation after m; the translation is rotated too.
func (m Mat3x2[T]) RotateLocalTo(angle T, dest *Mat3x2[T]) *Mat3x2[T] {
	sin := Sin(angle)
	cos := CosFromSin(sin, angle)
	nm00 := cos*m.M00 - sin*m.M01
	nm01 := sin*m.M00 + cos*m.M01
	nm10 := cos*m.M10 - sin*m.M11
	nm11 := sin*m.M10 + cos*m.M11
	nm20 := cos*m.M20 - sin*m.M21
	nm21 := sin*m.M20 + cos*m.M21
	*dest = Mat3x2[T]{nm00, nm01, nm10, nm11, nm20, nm21}
	return dest
}

func (m *Mat3x2[T]) RotateLocal(angle T) *Mat3x2[T] {
	return m.RotateLocalTo(angle, m)
}

/**
 * @brief Sets m to a 2D view transformation that maps the rectangle
 * [left, right] x [bottom, top] onto [-1, 1] x [-1, 1].
 */
func (m *Mat3x2[T]) SetView(left, right, bottom, top T) *Mat3x2[T] {
	*m = Mat3x2[T]{
		M00: 2.0 / (right - left),
		M11: 2.0 / (top - bottom),
		M20: (left + right) / (left - right),
		M21: (bottom + top) / (bottom - top),
	}
	return m
}

// ViewTo applies a view transformation before m.
func (m Mat3x2[T]) ViewTo(left, right, bottom, top T, dest *Mat3x2[T]) *Mat3x2[T] {
	rm00 := 2.0 / (right - left)
	rm11 := 2.0 / (top - bottom)
	rm20 := (left + right) / (left - right)
	rm21 := (bottom + top) / (bottom - top)
	nm20 := m.M00*rm20 + m.M10*rm21 + m.M20
	nm21 := m.M01*rm20 + m.M11*rm21 + m.M21
	*dest = Mat3x2[T]{m.M00 * rm00, m.M01 * rm00, m.M10 * rm11, m.M11 * rm11, nm20, nm21}
	return dest
}

func (m *Mat3x2[T]) View(left, right, bottom, top T) *Mat3x2[T] {
	return m.ViewTo(left, right, bottom, top, m)
}

func (m Mat3x2[T]) TransformPosition(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		m.M00*v.X + m.M10*v.Y + m.M20,
		m.M01*v.X + m.M11*v.Y + m.M21,
	}
}

func (m Mat3x2[T]) TransformDirection(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		m.M00*v.X + m.M10*v.Y,
		m.M01*v.X + m.M11*v.Y,
	}
}

/**
 * @brief Reports whether (x, y) is mapped into the [-1, 1] square by m,
 * boundary included. m is typically a view matrix.
 */
func (m Mat3x2[T]) TestPoint(x, y T) bool {
	nxX, nxY, nxW := m.M00, m.M10, 1.0+m.M20
	pxX, pxY, pxW := -m.M00, -m.M10, 1.0-m.M20
	nyX, nyY, nyW := m.M01, m.M11, 1.0+m.M21
	pyX, pyY, pyW := -m.M01, -m.M11, 1.0-m.M21
	return nxX*x+nxY*y+nxW >= 0 && pxX*x+pxY*y+pxW >= 0 &&
		nyX*x+nyY*y+nyW >= 0 && pyX*x+pyY*y+pyW >= 0
}

/**
 * @brief Returns the axis-aligned bounds of the region that m maps onto
 * [-1, 1] x [-1, 1], as (minX, minY, maxX, maxY).
 */
func (m Mat3x2[T]) ViewArea() [4]T {
	s := 1.0 / (m.M00*m.M11 - m.M01*m.M10)
	rm00 := m.M11 * s
	rm01 := -m.M01 * s
	rm10 := -m.M10 * s
	rm11 := m.M00 * s
	rm20 := (m.M10*m.M21 - m.M20*m.M11) * s
	rm21 := (m.M20*m.M01 - m.M00*m.M21) * s
	nxnyX := -rm00 - rm10
	nxnyY := -rm01 - rm11
	pxnyX := rm00 - rm10
	pxnyY := rm01 - rm11
	nxpyX := -rm00 + rm10
	nxpyY := -rm01 + rm11
	pxpyX := rm00 + rm10
	pxpyY := rm01 + rm11
	minX := min(nxnyX, nxpyX, pxnyX, pxpyX)
	minY := min(nxnyY, nxpyY, pxnyY, pxpyY)
	maxX := max(nxnyX, nxpyX, pxnyX, pxpyX)
	maxY := max(nxnyY, nxpyY, pxnyY, pxpyY)
	return [4]T{minX + rm20, minY + rm21, maxX + rm20, maxY + rm21}
}

/**
 * @brief Maps window coordinates back through the inverse of m.
 *
 * @param viewport (x, y, width, height) of the window area; must hold
 * exactly four values.
 * @return core.ErrInvalidArgument for a malformed viewport.
 */
func (m Mat3x2[T]) Unproject(winX, winY T, viewport []int) (Vec2[T], error) {
	if len(viewport) != 4 {
		return Vec2[T]{}, fmt.Errorf("viewport has %d values, want 4: %w", len(viewport), core.ErrInvalidArgument)
	}
	var inv Mat3x2[T]
	m.InvertTo(&inv)
	ndcX := (winX-T(viewport[0]))/T(viewport[2])*2.0 - 1.0
	ndcY := (winY-T(viewport[1]))/T(viewport[3])*2.0 - 1.0
	return inv.TransformPosition(Vec2[T]{ndcX, ndcY}), nil
}

// Row returns one of the two rows: the linear part followed by the
// translation.
func (m Mat3x2[T]) Row(row int) (Vec3[T], error) {
	switch row {
	case 0:
		return Vec3[T]{m.M00, m.M10, m.M20}, nil
	case 1:
		return Vec3[T]{m.M01, m.M11, m.M21}, nil
	}
	return Vec3[T]{}, fmt.Errorf("mat3x2 row %d: %w", row, core.ErrIndexOutOfRange)
}

func (m *Mat3x2[T]) SetRow(row int, v Vec3[T]) error {
	switch row {
	case 0:
		m.M00, m.M10, m.M20 = v.X, v.Y, v.Z
	case 1:
		m.M01, m.M11, m.M21 = v.X, v.Y, v.Z
	default:
		return fmt.Errorf("mat3x2 row %d: %w", row, core.ErrIndexOutOfRange)
	}
	return nil
}

func (m Mat3x2[T]) Column(column int) (Vec2[T], error) {
	switch column {
	case 0:
		return Vec2[T]{m.M00, m.M01}, nil
	case 1:
		return Vec2[T]{m.M10, m.M11}, nil
	case 2:
		return Vec2[T]{m.M20, m.M21}, nil
	}
	return Vec2[T]{}, fmt.Errorf("mat3x2 column %d: %w", column, core.ErrIndexOutOfRange)
}

func (m *Mat3x2[T]) SetColumn(column int, v Vec2[T]) error {
	switch column {
	case 0:
		m.M00, m.M01 = v.X, v.Y
	case 1:
		m.M10, m.M11 = v.X, v.Y
	case 2:
		m.M20, m.M21 = v.X, v.Y
	default:
		return fmt.Errorf("mat3x2 column %d: %w", column, core.ErrIndexOutOfRange)
	}
	return nil
}

// Element returns the value at the given column and row.
func (m Mat3x2[T]) Element(column, row int) (T, error) {
	c, err := m.Column(column)
	if err != nil {
		return 0, err
	}
	switch row {
	case 0:
		return c.X, nil
	case 1:
		return c.Y, nil
	}
	return 0, fmt.Errorf("mat3x2 row %d: %w", row, core.ErrIndexOutOfRange)
}

func (m *Mat3x2[T]) SetElement(column, row int, value T) error {
	c, err := m.Column(column)
	if err != nil {
		return err
	}
	switch row {
	case 0:
		c.X = value
	case 1:
		c.Y = value
	default:
		return fmt.Errorf("mat3x2 row %d: %w", row, core.ErrIndexOutOfRange)
	}
	return m.SetColumn(column, c)
}

func (m Mat3x2[T]) Equals(other Mat3x2[T]) bool {
	return bitsEqual(m.M00, other.M00) && bitsEqual(m.M01, other.M01) &&
		bitsEqual(m.M10, other.M10) && bitsEqual(m.M11, other.M11) &&
		bitsEqual(m.M20, other.M20) && bitsEqual(m.M21, other.M21)
}

func (m Mat3x2[T]) Hash() uint64 {
	return hashFloats(m.M00, m.M01, m.M10, m.M11, m.M20, m.M21)
}

func (m Mat3x2[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%10.3e %10.3e %10.3e\n", m.M00, m.M10, m.M20)
	fmt.Fprintf(&sb, "%10.3e %10.3e %10.3e\n", m.M01, m.M11, m.M21)
	return sb.String()
}
