package components

import (
	"github.com/spaghettifunk/linmath/engine/math"
)

/**
 * @brief Represents a camera that can be used for
 * a variety of things, especially rendering. The orientation is
 * kept as a quaternion so yaw and pitch never lock.
 */
type Camera struct {
	/**
	 * @brief The position of this camera.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the view matrix is recalculated when needed.
	 */
	Position math.Vec3f
	/**
	 * @brief The orientation of this camera in world space. The camera
	 * looks down its local -Z axis.
	 */
	Rotation math.Quatf
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/**
	 * @brief The view matrix of this camera.
	 * NOTE: IMPORTANT: Do not get this directly, use GetView() instead
	 * so the view matrix is recalculated when needed.
	 */
	ViewMatrix math.Mat4f
}

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

// Pitch is clamped to 89 degrees either side of the horizon.
const pitchLimit = float32(1.55334306)

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

func (c *Camera) Reset() {
	c.Rotation = math.NewQuatIdentity[float32]()
	c.Position = math.NewVec3Zero[float32]()
	c.IsDirty = false
	c.ViewMatrix = math.NewMat4Identity[float32]()
}

func (c *Camera) GetPosition() math.Vec3f {
	return c.Position
}

func (c *Camera) SetPosition(position math.Vec3f) {
	c.Position = position
	c.IsDirty = true
}

func (c *Camera) SetRotation(rotation math.Quatf) {
	c.Rotation = rotation.Normalize()
	c.IsDirty = true
}

// GetEulerRotation reports the orientation as X, Y, Z angles in radians.
func (c *Camera) GetEulerRotation() math.Vec3f {
	return c.Rotation.EulerAnglesXYZ()
}

/**
 * @brief Turns the camera at its current position so that it faces
 * target with the given up reference.
 */
func (c *Camera) LookAt(target, up math.Vec3f) {
	var view math.Mat4f
	view.SetLookAt(c.Position, target, up)
	// the view rotation maps world to camera; the camera orientation is its inverse
	c.Rotation = view.GetNormalizedRotation().Conjugate()
	c.ViewMatrix = view
	c.IsDirty = false
}

func (c *Camera) GetView() math.Mat4f {
	if c.IsDirty {
		var world math.Mat4f
		world.Translation(c.Position.X, c.Position.Y, c.Position.Z).RotateQuat(c.Rotation)
		c.ViewMatrix = world
		c.ViewMatrix.Invert()
		c.IsDirty = false
	}
	return c.ViewMatrix
}

func (c *Camera) Forward() math.Vec3f {
	return c.Rotation.Transform(math.NewVec3Forward[float32]())
}

func (c *Camera) Backward() math.Vec3f {
	return c.Forward().Negate()
}

func (c *Camera) Left() math.Vec3f {
	return c.Right().Negate()
}

func (c *Camera) Right() math.Vec3f {
	return c.Rotation.Transform(math.NewVec3Right[float32]())
}

func (c *Camera) move(direction math.Vec3f, amount float32) {
	c.Position = c.Position.Add(direction.MulScalar(amount))
	c.IsDirty = true
}

func (c *Camera) MoveForward(amount float32) {
	c.move(c.Forward(), amount)
}

func (c *Camera) MoveBackward(amount float32) {
	c.move(c.Backward(), amount)
}

func (c *Camera) MoveLeft(amount float32) {
	c.move(c.Left(), amount)
}

func (c *Camera) MoveRight(amount float32) {
	c.move(c.Right(), amount)
}

func (c *Camera) MoveUp(amount float32) {
	c.move(math.NewVec3Up[float32](), amount)
}

func (c *Camera) MoveDown(amount float32) {
	c.move(math.NewVec3Down[float32](), amount)
}

// Yaw turns around the world Y axis.
func (c *Camera) Yaw(amount float32) {
	c.Rotation = c.Rotation.PreMul(math.NewQuatRotationY(amount)).Normalize()
	c.IsDirty = true
}

// Pitch turns around the camera's own X axis, stopping short of straight
// up or down.
func (c *Camera) Pitch(amount float32) {
	current := math.Asin(math.Clamp(c.Forward().Y, -1, 1))
	target := math.Clamp(current+amount, -pitchLimit, pitchLimit)
	c.Rotation = c.Rotation.Mul(math.NewQuatRotationX(target - current)).Normalize()
	c.IsDirty = true
}
