// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"
)

// Solid represents an individual 3D solid element.
// It has its own unique spatial transforms and material properties,
// and a mesh defining its shape.
type Solid struct {
	NodeBase

	// Mesh defines the shape of the solid.
	Mesh Mesh

	// Material contains the material properties of the surface (color,
	// texture, lighting model).
	Material Material `set:"-"`
}

func (sld *Solid) Init() {
	sld.NodeBase.Init()
	sld.Material.Defaults()
}

func (sld *Solid) IsSolid() bool {
	return true
}

func (sld *Solid) AsSolid() *Solid {
	return sld
}

// SetColor sets the [Material.Color].
func (sld *Solid) SetColor(v color.RGBA) *Solid {
	sld.Material.Color = v
	return sld
}

// SetOpacity sets the [Material.Opacity].
func (sld *Solid) SetOpacity(v float32) *Solid {
	sld.Material.Opacity = v
	return sld
}

// SetTextureName sets material to use given texture name
// (textures are accessed by name on the [Scene]).
func (sld *Solid) SetTextureName(name string) *Solid {
	sld.Material.TextureName = name
	return sld
}

// SetUnlit sets the [Material.Unlit] flag.
func (sld *Solid) SetUnlit(v bool) *Solid {
	sld.Material.Unlit = v
	return sld
}

// SetDoubleSided sets the [Material.DoubleSided] flag.
func (sld *Solid) SetDoubleSided(v bool) *Solid {
	sld.Material.DoubleSided = v
	return sld
}

// SetPos sets the [Pose.Pos] position of the solid.
func (sld *Solid) SetPos(x, y, z float32) *Solid {
	sld.Pose.SetPos(x, y, z)
	return sld
}

// Lights returns the point lights attached directly to this solid.
func (sld *Solid) Lights() []*PointLight {
	var lts []*PointLight
	for _, k := range sld.Children {
		if lt, ok := k.(*PointLight); ok {
			lts = append(lts, lt)
		}
	}
	return lts
}

// test for impl
var _ Node = &Solid{}
