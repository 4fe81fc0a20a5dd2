package math

import "golang.org/x/exp/constraints"

func TransformCreate[T constraints.Float]() *Transform[T] {
	return TransformFromPositionRotationScale(NewVec3Zero[T](), NewQuatIdentity[T](), NewVec3One[T]())
}

func TransformFromPosition[T constraints.Float](position Vec3[T]) *Transform[T] {
	return TransformFromPositionRotationScale(position, NewQuatIdentity[T](), NewVec3One[T]())
}

func TransformFromRotation[T constraints.Float](rotation Quat[T]) *Transform[T] {
	return TransformFromPositionRotationScale(NewVec3Zero[T](), rotation, NewVec3One[T]())
}

func TransformFromPositionRotation[T constraints.Float](position Vec3[T], rotation Quat[T]) *Transform[T] {
	return TransformFromPositionRotationScale(position, rotation, NewVec3One[T]())
}

func TransformFromPositionRotationScale[T constraints.Float](position Vec3[T], rotation Quat[T], scale Vec3[T]) *Transform[T] {
	t := &Transform[T]{Local: NewMat4Identity[T]()}
	t.SetPositionRotationScale(position, rotation, scale)
	return t
}

func (t *Transform[T]) SetPosition(position Vec3[T]) {
	t.Position = position
	t.IsDirty = true
}

func (t *Transform[T]) Translate(translation Vec3[T]) {
	t.Position = t.Position.Add(translation)
	t.IsDirty = true
}

func (t *Transform[T]) SetRotation(rotation Quat[T]) {
	t.Rotation = rotation
	t.IsDirty = true
}

// Rotate applies rotation in the local frame of t.
func (t *Transform[T]) Rotate(rotation Quat[T]) {
	t.Rotation = t.Rotation.Mul(rotation)
	t.IsDirty = true
}

func (t *Transform[T]) SetScale(scale Vec3[T]) {
	t.Scale = scale
	t.IsDirty = true
}

// ScaleBy multiplies the current scale component-wise.
func (t *Transform[T]) ScaleBy(scale Vec3[T]) {
	t.Scale = t.Scale.Mul(scale)
	t.IsDirty = true
}

func (t *Transform[T]) SetPositionRotation(position Vec3[T], rotation Quat[T]) {
	t.Position = position
	t.Rotation = rotation
	t.IsDirty = true
}

func (t *Transform[T]) SetPositionRotationScale(position Vec3[T], rotation Quat[T], scale Vec3[T]) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform[T]) TranslateRotate(translation Vec3[T], rotation Quat[T]) {
	t.Position = t.Position.Add(translation)
	t.Rotation = t.Rotation.Mul(rotation)
	t.IsDirty = true
}

/**
 * @brief Returns the local matrix, scale first, then rotation, then
 * translation. The matrix is rebuilt only when a setter has run since
 * the last call. A nil transform yields the identity.
 */
func (t *Transform[T]) GetLocal() Mat4[T] {
	if t == nil {
		return NewMat4Identity[T]()
	}
	if t.IsDirty {
		t.Local.TranslationRotateScale(t.Position, t.Rotation, t.Scale)
		t.IsDirty = false
	}
	return t.Local
}

/**
 * @brief Returns the local matrix with every parent applied after it,
 * nearest parent first.
 */
func (t *Transform[T]) GetWorld() Mat4[T] {
	if t == nil {
		return NewMat4Identity[T]()
	}
	local := t.GetLocal()
	if t.Parent == nil {
		return local
	}
	world := t.Parent.GetWorld()
	world.Mul(local)
	return world
}
