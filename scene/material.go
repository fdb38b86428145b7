// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"image/color"

	"cogentcore.org/core/colors"
)

// Material describes the material properties of a surface (color,
// texture, lighting model), and is owned by each [Solid].
type Material struct {

	// Color is the main color of the surface, used when there is no
	// texture or the texture cannot be loaded.
	Color color.RGBA

	// Opacity is the overall opacity of the surface in 0-1 units.
	Opacity float32 `min:"0" max:"1"`

	// TextureName is the name of the texture in the scene's [TextureLibrary]
	// that covers the surface, if any.
	TextureName string

	// Unlit means that the color is used directly, independent of any
	// lighting; otherwise the surface is shaded by the scene lights.
	Unlit bool

	// DoubleSided renders both faces of flat meshes.
	DoubleSided bool
}

// Defaults sets default initial settings for material params.
func (mt *Material) Defaults() {
	mt.Color = colors.White
	mt.Opacity = 1
}

// IsTransparent returns true if the material has any transparency.
func (mt *Material) IsTransparent() bool {
	return mt.Opacity < 1 || mt.Color.A < 255
}
