// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
)

// Pose contains the full specification of position and orientation,
// always relative to the parent element.
//
// Rotation is kept as Euler angles in radians, applied in XYZ order.
type Pose struct {

	// Pos is the position of the center of the element (relative to parent).
	Pos math32.Vector3

	// Rotation is the Euler rotation in radians (relative to parent).
	Rotation math32.Vector3

	// Scale is the scale (relative to parent).
	Scale math32.Vector3

	// Matrix is the local matrix, containing all position, rotation and
	// scale information (relative to parent).
	Matrix math32.Matrix4 `display:"-"`

	// WorldMatrix contains all absolute position, rotation and scale
	// information (relative to the scene root). It is a cache that is
	// only valid after [UpdateWorldMatrix].
	WorldMatrix math32.Matrix4 `display:"-"`
}

// Defaults sets defaults only if current values are nil.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
}

// Quat returns the rotation as a quaternion.
func (ps *Pose) Quat() math32.Quat {
	return math32.NewQuatEuler(ps.Rotation)
}

// UpdateMatrix updates the local transform matrix based on its
// position, rotation and scale.
func (ps *Pose) UpdateMatrix() {
	ps.Matrix.SetTransform(ps.Pos, ps.Quat(), ps.Scale)
}

// UpdateWorldMatrix updates the world transform matrix based on Matrix
// and the given parent world matrix (nil for the root).
// Does NOT call UpdateMatrix.
func (ps *Pose) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	if parWorld == nil {
		parWorld = math32.Identity4()
	}
	ps.WorldMatrix.MulMatrices(parWorld, &ps.Matrix)
}

// WorldPos returns the current world position.
func (ps *Pose) WorldPos() math32.Vector3 {
	m := &ps.WorldMatrix
	return math32.Vec3(m[12], m[13], m[14])
}

// SetPos sets the position.
func (ps *Pose) SetPos(x, y, z float32) {
	ps.Pos.Set(x, y, z)
}

// RotateX adds the given angle in radians to the rotation around the X axis.
func (ps *Pose) RotateX(angle float32) {
	ps.Rotation.X = WrapAngle(ps.Rotation.X + angle)
}

// RotateY adds the given angle in radians to the rotation around the Y axis.
func (ps *Pose) RotateY(angle float32) {
	ps.Rotation.Y = WrapAngle(ps.Rotation.Y + angle)
}

// WrapAngle returns the angle reduced into the open interval (-2π, 2π),
// keeping its sign. The result is equal to the input mod 2π.
func WrapAngle(angle float32) float32 {
	return math32.Mod(angle, 2*math32.Pi)
}
