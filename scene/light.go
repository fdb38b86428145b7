// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// PointLight is an omnidirectional light with a position
// and associated decay factors, which divide the light intensity as a function of
// linear and quadratic distance. The quadratic factor dominates at longer distances.
//
// Unlike a scene-wide light list, a PointLight is a node in the tree, so it
// moves with whatever it is attached to.
type PointLight struct {
	NodeBase

	// On is whether the light is turned on.
	On bool

	// Lumens is the brightness/intensity/strength of the light in normalized 0-1 units.
	// It is just multiplied by the color, and is convenient for easily modulating overall brightness.
	Lumens float32 `min:"0" step:"0.1"`

	// Color is the color of the light at full intensity.
	Color color.RGBA

	// Distance linear decay factor; defaults to .1
	LinDecay float32

	// Distance quadratic decay factor; defaults to .01; dominates at longer distances
	QuadDecay float32
}

// Init makes a white light at the parent origin with full lumens.
func (lt *PointLight) Init() {
	lt.NodeBase.Init()
	lt.On = true
	lt.Color = colors.White
	lt.Lumens = 1
	lt.LinDecay = .1
	lt.QuadDecay = .01
}

// Intensity returns the light intensity arriving at the given world position,
// after distance decay. The world matrix must be current.
func (lt *PointLight) Intensity(pos math32.Vector3) float32 {
	if !lt.On {
		return 0
	}
	d := pos.Sub(lt.Pose.WorldPos()).Length()
	return lt.Lumens / (1 + lt.LinDecay*d + lt.QuadDecay*d*d)
}

// test for impl
var _ Node = &PointLight{}
