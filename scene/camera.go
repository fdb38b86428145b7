// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
)

// Camera defines the properties of a perspective camera looking at a Target.
type Camera struct {

	// Pos is the position of the camera in world coordinates.
	Pos math32.Vector3

	// Target is where the camera is pointing at; it defaults to the origin.
	Target math32.Vector3

	// UpDir is the up direction for the camera; defaults to positive Y axis.
	UpDir math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Near is the distance of the near clipping plane.
	Near float32

	// Far is the distance of the far clipping plane.
	Far float32
}

// Defaults sets the default perspective parameters and places the camera
// at 0,0,10 looking at the origin, with up Y axis.
func (cm *Camera) Defaults() {
	cm.FOV = 30
	cm.Near = .01
	cm.Far = 1000
	cm.Pos.Set(0, 0, 10)
	cm.LookAtOrigin()
}

// LookAt points the camera at given target location, using given up direction.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
}

// LookAtOrigin points the camera at origin with Y axis pointing Up (i.e., standard)
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// ViewVector is the vector between the camera position and target
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pos.Sub(cm.Target)
}

// Distance returns the distance from the camera to its target.
func (cm *Camera) Distance() float32 {
	return cm.ViewVector().Length()
}

// Basis returns the orthonormal camera axes: right, up, and forward
// (pointing from the camera toward the target).
func (cm *Camera) Basis() (right, up, forward math32.Vector3) {
	forward = cm.Target.Sub(cm.Pos)
	if forward == (math32.Vector3{}) {
		forward.Set(0, 0, -1)
	}
	forward = forward.Normal()
	right = forward.Cross(cm.UpDir)
	if right == (math32.Vector3{}) {
		right.Set(1, 0, 0)
	}
	right = right.Normal()
	up = right.Cross(forward)
	return
}

// ToView transforms the given world position into camera coordinates:
// X to the right, Y up and Z the depth along the viewing direction
// (positive in front of the camera).
func (cm *Camera) ToView(pos math32.Vector3) math32.Vector3 {
	right, up, forward := cm.Basis()
	d := pos.Sub(cm.Pos)
	return math32.Vec3(d.Dot(right), d.Dot(up), d.Dot(forward))
}

// Project projects the given world position into normalized device
// coordinates (-1..1 in X and Y, Y up) for the given aspect ratio
// (width / height). It also returns the view-space depth, and false
// if the point is outside of the Near..Far range.
func (cm *Camera) Project(pos math32.Vector3, aspect float32) (ndc math32.Vector2, depth float32, ok bool) {
	v := cm.ToView(pos)
	depth = v.Z
	if depth < cm.Near || depth > cm.Far {
		return ndc, depth, false
	}
	f := cm.FocalScale()
	ndc.X = v.X * f / (depth * aspect)
	ndc.Y = v.Y * f / depth
	return ndc, depth, true
}

// FocalScale returns 1 / tan(FOV/2), the factor that maps view-space
// slope to normalized device coordinates.
func (cm *Camera) FocalScale() float32 {
	return 1 / math32.Tan(math32.DegToRad(cm.FOV*0.5))
}

// Orbit moves the camera along the given 2D axes in degrees
// (delX = left/right, delY = up/down),
// relative to current position and orientation,
// keeping the same distance from the Target, and rotating the camera and
// the Up direction vector to keep looking at the target.
func (cm *Camera) Orbit(delX, delY float32) {
	ctdir := cm.ViewVector()
	if ctdir == (math32.Vector3{}) {
		ctdir.Set(0, 0, 1)
	}
	dir := ctdir.Normal()

	up := cm.UpDir
	right := cm.UpDir.Cross(dir).Normal()

	// delX rotates around the up vector
	dxq := math32.NewQuatAxisAngle(up, math32.DegToRad(delX))
	dx := ctdir.MulQuat(dxq).Sub(ctdir)
	// delY rotates around the right vector
	dyq := math32.NewQuatAxisAngle(right, math32.DegToRad(delY))
	dy := ctdir.MulQuat(dyq).Sub(ctdir)

	cm.Pos = cm.Pos.Add(dx).Add(dy)
	cm.UpDir = cm.UpDir.MulQuat(dyq) // this is only one that affects up

	// the two rotations are applied independently, so restore the distance
	dist := ctdir.Length()
	cm.Pos = cm.Target.Add(cm.ViewVector().Normal().MulScalar(dist))
}

// Zoom moves along axis given pct closer or further from the target:
// positive values move away, negative values move closer.
// It always moves the target back also if it distance is < 1
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	if ctaxis == (math32.Vector3{}) {
		ctaxis.Set(0, 0, 1)
	}
	dist := ctaxis.Length()
	del := ctaxis.MulScalar(zoomPct)
	cm.Pos = cm.Pos.Add(del)
	if zoomPct < 0 && dist < 1 {
		cm.Target = cm.Target.Add(del)
	}
}
