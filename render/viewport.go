// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"

	"cogentcore.org/core/math32"
)

const (
	// MaxPixelRatio is the maximum device pixel ratio that frames are rendered at.
	MaxPixelRatio = 2

	// MaxFrameSide is the maximum width or height of a frame in pixels.
	MaxFrameSide = 8192

	// MaxFramePixels is the maximum number of pixels in a frame.
	// Larger frames are scaled down keeping their aspect ratio.
	MaxFramePixels = 4096 * 4096
)

// Viewport is the size of the window that frames are shown in.
type Viewport struct {

	// Width is the width of the window in device-independent units.
	Width int

	// Height is the height of the window in device-independent units.
	Height int

	// DevicePixelRatio is the number of device pixels per window unit.
	DevicePixelRatio float32
}

// PixelRatio returns the device pixel ratio capped at [MaxPixelRatio].
// A non-positive ratio is treated as 1.
func (vp Viewport) PixelRatio() float32 {
	if vp.DevicePixelRatio <= 0 {
		return 1
	}
	return min(vp.DevicePixelRatio, MaxPixelRatio)
}

// FrameSize returns the size of rendered frames in pixels,
// which is at least 1x1 and at most [MaxFrameSide] on each side
// and [MaxFramePixels] in total.
func (vp Viewport) FrameSize() image.Point {
	pr := vp.PixelRatio()
	side := func(v int) int {
		v = min(max(v, 1), MaxFrameSide)
		return min(max(int(float32(v)*pr), 1), MaxFrameSide)
	}
	w, h := side(vp.Width), side(vp.Height)
	if w*h > MaxFramePixels {
		sc := math32.Sqrt(float32(MaxFramePixels) / float32(w*h))
		w = max(int(float32(w)*sc), 1)
		h = max(int(float32(h)*sc), 1)
	}
	return image.Pt(w, h)
}

// Aspect returns the width / height aspect ratio.
func (vp Viewport) Aspect() float32 {
	sz := vp.FrameSize()
	return float32(sz.X) / float32(sz.Y)
}
