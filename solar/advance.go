// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import "cogentcore.org/solarsystem/scene"

// Per-tick angular steps, in radians. Rotations are decremented by these.
const (
	SunSpinY = 0.05
	SunSpinX = 0.001

	StarsSpinY = 0.004
	StarsSpinX = 0.003

	// Orbit and body steps are multiplied by the 1-based table index
	// of the body, so bodies further down the table move faster,
	// regardless of their orbit radius.
	OrbitStepY    = 0.001
	BodySpinStepY = 0.01
	BodySpinStepX = 0.001
)

// Advance applies the given number of animation ticks to the system.
// Each tick spins the sun and the starfield, turns every top-level orbit
// pivot, and spins the body inside it. Satellites are not updated
// relative to their own pivots.
// The world matrices are updated at the end, ready for rendering.
func Advance(sys *System, ticks int) {
	for range ticks {
		tick(sys)
	}
	scene.UpdateWorldMatrix(sys.Scene)
}

// tick applies one tick of rotation updates.
func tick(sys *System) {
	sys.Sun.Pose.RotateY(-SunSpinY)
	sys.Sun.Pose.RotateX(-SunSpinX)

	sys.Stars.Pose.RotateY(-StarsSpinY)
	sys.Stars.Pose.RotateX(-StarsSpinX)

	for i, pivot := range sys.SunOrbit.Children {
		f := float32(i + 1)
		_, pb := scene.AsNode(pivot)
		if pb == nil {
			continue
		}
		pb.Pose.RotateY(-OrbitStepY * f)
		_, bb := scene.AsNode(pb.Child(0))
		if bb == nil {
			continue
		}
		bb.Pose.RotateY(-BodySpinStepY * f)
		bb.Pose.RotateX(-BodySpinStepX * f)
	}
	sys.Ticks++
}
