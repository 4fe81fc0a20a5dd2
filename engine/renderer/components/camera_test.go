package components

import (
	"testing"

	"github.com/spaghettifunk/linmath/engine/math"
)

const eps = float32(1e-5)

func assertVec(t *testing.T, name string, want, got math.Vec3f) {
	t.Helper()
	if !want.Compare(got, eps) {
		t.Fatalf("%s: want %v, got %v", name, want, got)
	}
}

func TestCameraDefaults(t *testing.T) {
	c := NewCamera()
	if !c.GetView().Equals(math.NewMat4Identity[float32]()) {
		t.Fatalf("default view %v", c.GetView())
	}
	assertVec(t, "forward", math.NewVec3[float32](0, 0, -1), c.Forward())
	assertVec(t, "right", math.NewVec3[float32](1, 0, 0), c.Right())
	assertVec(t, "left", math.NewVec3[float32](-1, 0, 0), c.Left())
	assertVec(t, "backward", math.NewVec3[float32](0, 0, 1), c.Backward())
}

func TestCameraViewFollowsPosition(t *testing.T) {
	c := NewCamera()
	pos := math.NewVec3[float32](1, 2, 3)
	c.SetPosition(pos)
	if !c.IsDirty {
		t.Fatal("SetPosition should mark the view dirty")
	}
	view := c.GetView()
	assertVec(t, "eye", math.NewVec3Zero[float32](), view.TransformPosition(pos))
	assertVec(t, "position", pos, c.GetPosition())

	c.MoveForward(2)
	c.MoveRight(1)
	c.MoveUp(0.5)
	c.MoveDown(1.5)
	c.MoveLeft(3)
	c.MoveBackward(1)
	assertVec(t, "moved", math.NewVec3[float32](-1, 1, 2), c.GetPosition())
}

func TestCameraLookAt(t *testing.T) {
	c := NewCamera()
	eye := math.NewVec3[float32](4, 3, 6)
	c.SetPosition(eye)
	c.LookAt(math.NewVec3Zero[float32](), math.NewVec3Up[float32]())

	assertVec(t, "forward", eye.Negate().Normalize(), c.Forward())
	assertVec(t, "target", math.NewVec3[float32](0, 0, -eye.Length()), c.GetView().TransformPosition(math.NewVec3Zero[float32]()))
	if c.Right().Y > eps || c.Right().Y < -eps {
		t.Fatalf("right vector %v should stay horizontal", c.Right())
	}

	// Rebuilding the view from position and rotation gives the same matrix.
	lookAt := c.GetView()
	c.SetPosition(eye)
	rebuilt := c.GetView()
	for col := 0; col < 4; col++ {
		a, _ := lookAt.Column(col)
		b, _ := rebuilt.Column(col)
		if !a.Compare(b, 1e-4) {
			t.Fatalf("column %d: look at %v, rebuilt %v", col, a, b)
		}
	}
}

func TestCameraYawPitch(t *testing.T) {
	c := NewCamera()
	c.Yaw(math.K_HALF_PI)
	assertVec(t, "yawed forward", math.NewVec3[float32](-1, 0, 0), c.Forward())

	c.Pitch(0.3)
	if got := c.Forward().Y; got < 0.2954 || got > 0.2956 {
		t.Fatalf("pitched forward %v, want y = sin(0.3)", c.Forward())
	}
	if y := c.Right().Y; y > eps || y < -eps {
		t.Fatalf("pitch should not roll, right = %v", c.Right())
	}

	c.Pitch(10)
	if got := c.Forward().Y; got >= 1 || got < 0.999 {
		t.Fatalf("pitch should clamp short of straight up, forward = %v", c.Forward())
	}
	c.Pitch(-20)
	if got := c.Forward().Y; got <= -1 || got > -0.999 {
		t.Fatalf("pitch should clamp short of straight down, forward = %v", c.Forward())
	}

	c.Reset()
	c.Yaw(0.5)
	euler := c.GetEulerRotation()
	if euler.X > eps || euler.X < -eps || euler.Y < 0.5-eps || euler.Y > 0.5+eps {
		t.Fatalf("GetEulerRotation = %v", euler)
	}
}

func TestCameraSetRotationNormalizes(t *testing.T) {
	c := NewCamera()
	c.SetRotation(math.NewQuat[float32](0, 2, 0, 2))
	if l := c.Rotation.Length(); l < 1-eps || l > 1+eps {
		t.Fatalf("rotation length %v", l)
	}
	assertVec(t, "forward", math.NewVec3[float32](-1, 0, 0), c.Forward())
}
