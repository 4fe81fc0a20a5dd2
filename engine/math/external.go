package math

import (
	"encoding/binary"
	"fmt"
	"io"
)

// External form: every scalar field in declaration order, big-endian,
// 4 bytes per float32 and 8 per float64. Matrices are therefore written
// column-major. There is no header or version.

// countingWriter and countingReader let a failed transfer still report
// how many bytes moved.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func writeExternal(w io.Writer, v any) (int64, error) {
	cw := &countingWriter{w: w}
	if err := binary.Write(cw, binary.BigEndian, v); err != nil {
		return cw.n, fmt.Errorf("write %T: %w", v, err)
	}
	return cw.n, nil
}

// readExternal leaves v unchanged when the reader runs short.
func readExternal(r io.Reader, v any) (int64, error) {
	cr := &countingReader{r: r}
	if err := binary.Read(cr, binary.BigEndian, v); err != nil {
		return cr.n, fmt.Errorf("read %T: %w", v, err)
	}
	return cr.n, nil
}

func (v Vec2[T]) WriteTo(w io.Writer) (int64, error) { return writeExternal(w, v) }

func (v *Vec2[T]) ReadFrom(r io.Reader) (int64, error) { return readExternal(r, v) }

func (v Vec3[T]) WriteTo(w io.Writer) (int64, error) { return writeExternal(w, v) }

func (v *Vec3[T]) ReadFrom(r io.Reader) (int64, error) { return readExternal(r, v) }

func (v Vec4[T]) WriteTo(w io.Writer) (int64, error) { return writeExternal(w, v) }

func (v *Vec4[T]) ReadFrom(r io.Reader) (int64, error) { return readExternal(r, v) }

func (q Quat[T]) WriteTo(w io.Writer) (int64, error) { return writeExternal(w, q) }

func (q *Quat[T]) ReadFrom(r io.Reader) (int64, error) { return readExternal(r, q) }

func (a AxisAngle[T]) WriteTo(w io.Writer) (int64, error) { return writeExternal(w, a) }

func (a *AxisAngle[T]) ReadFrom(r io.Reader) (int64, error) { return readExternal(r, a) }

/**
 * @brief Writes the nine elements column-major, big-endian.
 */
func (m Mat3[T]) WriteTo(w io.Writer) (int64, error) {
	return writeExternal(w, m)
}

// ReadFrom replaces m with a matrix written by WriteTo.
func (m *Mat3[T]) ReadFrom(r io.Reader) (int64, error) {
	return readExternal(r, m)
}

func (m Mat3x2[T]) WriteTo(w io.Writer) (int64, error) {
	return writeExternal(w, m)
}

func (m *Mat3x2[T]) ReadFrom(r io.Reader) (int64, error) {
	return readExternal(r, m)
}

func (m Mat4x3[T]) WriteTo(w io.Writer) (int64, error) {
	return writeExternal(w, m)
}

func (m *Mat4x3[T]) ReadFrom(r io.Reader) (int64, error) {
	return readExternal(r, m)
}

func (m Mat4[T]) WriteTo(w io.Writer) (int64, error) {
	return writeExternal(w, m)
}

func (m *Mat4[T]) ReadFrom(r io.Reader) (int64, error) {
	return readExternal(r, m)
}
