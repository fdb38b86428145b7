// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene is a small retained-mode 3D scenegraph: groups, solids
// and lights arranged in a tree, each with a [Pose] relative to its parent,
// viewed through a [Camera]. It has no rendering of its own; see the
// render package for a software renderer.
package scene

import (
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/tree"
)

// Scene is the overall scenegraph containing nodes as children.
// The Scene itself is the root node, at the world origin.
type Scene struct {
	NodeBase

	// Camera determines the view onto the scene.
	Camera Camera `set:"-"`

	// Background is the background color.
	Background color.RGBA

	// Textures holds the named textures used by solid materials.
	Textures *TextureLibrary `set:"-"`
}

// Init sets up the default camera, a black background
// and an empty texture library.
func (sc *Scene) Init() {
	sc.NodeBase.Init()
	sc.Camera.Defaults()
	sc.Background = colors.Black
	sc.Textures = NewTextureLibrary("")
}

// Solids returns all of the solids in the scene, in depth-first order.
func (sc *Scene) Solids() []*Solid {
	var sds []*Solid
	sc.WalkDown(func(n tree.Node) bool {
		if sd, ok := n.(*Solid); ok {
			sds = append(sds, sd)
		}
		return tree.Continue
	})
	return sds
}

// Lights returns all of the point lights in the scene, in depth-first order.
func (sc *Scene) Lights() []*PointLight {
	var lts []*PointLight
	sc.WalkDown(func(n tree.Node) bool {
		if lt, ok := n.(*PointLight); ok {
			lts = append(lts, lt)
		}
		return tree.Continue
	})
	return lts
}

// test for impl
var _ Node = &Scene{}
