package math

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	m "math"
	"testing"
)

func TestExternalRoundTrip(t *testing.T) {
	r := newRand(t)

	var buf bytes.Buffer
	mat := randomMat3(r)
	n, err := mat.WriteTo(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 9*8 || buf.Len() != 9*8 {
		t.Fatalf("Mat3d wrote %d bytes, buffer holds %d", n, buf.Len())
	}
	var back Mat3d
	if n, err = back.ReadFrom(&buf); err != nil || n != 9*8 {
		t.Fatalf("ReadFrom: %d, %v", n, err)
	}
	if !back.Equals(mat) {
		t.Fatalf("got %v, want %v", back, mat)
	}

	m4 := ConvertMat4[float32](randomMat4(r))
	if n, err = m4.WriteTo(&buf); err != nil || n != 16*4 {
		t.Fatalf("Mat4f WriteTo: %d, %v", n, err)
	}
	var back4 Mat4f
	if _, err = back4.ReadFrom(&buf); err != nil || !back4.Equals(m4) {
		t.Fatalf("Mat4f round trip: %v, %v", back4, err)
	}

	q := randomQuat(r)
	a := NewAxisAngle(0.7, randomUnitVec3(r))
	v := NewVec2[float32](1.5, -2)
	if _, err = q.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if _, err = a.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	if _, err = v.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	var q2 Quatd
	var a2 AxisAngle[float64]
	var v2 Vec2f
	if _, err = q2.ReadFrom(&buf); err != nil || !q2.Equals(q) {
		t.Fatalf("quat round trip: %v, %v", q2, err)
	}
	if _, err = a2.ReadFrom(&buf); err != nil || !a2.Equals(a) {
		t.Fatalf("axis angle round trip: %v, %v", a2, err)
	}
	if _, err = v2.ReadFrom(&buf); err != nil || !v2.Equals(v) {
		t.Fatalf("vec2 round trip: %v, %v", v2, err)
	}
}

func TestExternalLayout(t *testing.T) {
	mat := NewMat3x2[float32](1, 2, 3, 4, 5, 6)
	var buf bytes.Buffer
	if _, err := mat.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	raw := buf.Bytes()
	for i := 0; i < 6; i++ {
		got := binary.BigEndian.Uint32(raw[4*i:])
		if want := m.Float32bits(float32(i + 1)); got != want {
			t.Fatalf("element %d bits = %#x, want %#x", i, got, want)
		}
	}
}

func TestExternalShortRead(t *testing.T) {
	var buf bytes.Buffer
	if _, err := NewVec3(1.0, 2.0, 3.0).WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	var mat Mat4d
	n, err := mat.ReadFrom(bytes.NewReader(buf.Bytes()))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("reading a Mat4d from 24 bytes: %v", err)
	}
	if n != 24 {
		t.Fatalf("consumed %d bytes, want 24", n)
	}
	assertMat4Equal(t, Mat4d{}, mat, 0)
}

// shortWriter accepts limit bytes and then fails.
type shortWriter struct {
	limit int
}

func (w *shortWriter) Write(p []byte) (int, error) {
	if len(p) <= w.limit {
		w.limit -= len(p)
		return len(p), nil
	}
	n := w.limit
	w.limit = 0
	return n, io.ErrShortWrite
}

func TestExternalShortWrite(t *testing.T) {
	n, err := NewMat4Identity[float32]().WriteTo(&shortWriter{limit: 10})
	if !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != 10 {
		t.Fatalf("wrote %d bytes, want 10", n)
	}

	if n, err = NewVec2(1.0, 2.0).WriteTo(&shortWriter{limit: 64}); err != nil || n != 16 {
		t.Fatalf("WriteTo: %d, %v", n, err)
	}
}
