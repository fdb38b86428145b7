// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws a [scene.Scene] into an image in software,
// through the scene camera. Spheres are drawn as shaded discs and rings
// as thin projected strips, sorted back to front; there is no depth buffer.
package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"sort"

	"cogentcore.org/core/base/iox/imagex"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/solarsystem/scene"
	"golang.org/x/image/vector"
)

// Renderer renders scenes into frames of the size of its [Viewport].
type Renderer struct {

	// Viewport is the window that frames are rendered for.
	Viewport Viewport

	// Ambient is the light level of lit surfaces that no light reaches.
	Ambient float32

	// MinPointSize is the minimum diameter in pixels of drawn spheres,
	// so that distant stars stay visible.
	MinPointSize float32

	rast *vector.Rasterizer
}

// NewRenderer returns a new [Renderer] for the given viewport.
// Renderers must be made with NewRenderer.
func NewRenderer(vp Viewport) *Renderer {
	sz := vp.FrameSize()
	return &Renderer{Viewport: vp, Ambient: 0.35, MinPointSize: 1.5, rast: vector.NewRasterizer(sz.X, sz.Y)}
}

// shape is one projected solid to draw: a set of closed polygons
// in pixel coordinates, filled with one color.
type shape struct {
	depth float32
	polys [][]math32.Vector2
	color color.NRGBA
}

// Render renders the given scene, updating its world matrices first,
// and returns the new frame.
func (rd *Renderer) Render(sc *scene.Scene) *image.RGBA {
	sz := rd.Viewport.FrameSize()
	img := image.NewRGBA(image.Rectangle{Max: sz})
	draw.Draw(img, img.Bounds(), colors.Uniform(sc.Background), image.Point{}, draw.Src)

	scene.UpdateWorldMatrix(sc)
	lights := sc.Lights()
	var shapes []shape
	for _, sd := range sc.Solids() {
		var sh shape
		var ok bool
		switch ms := sd.Mesh.(type) {
		case *scene.Sphere:
			sh, ok = rd.sphere(sc, sd, ms)
		case *scene.Ring:
			sh, ok = rd.ring(sc, sd, ms)
		}
		if !ok {
			continue
		}
		sh.color = rd.shade(sc, sd, lights)
		shapes = append(shapes, sh)
	}
	sort.SliceStable(shapes, func(i, j int) bool {
		return shapes[i].depth > shapes[j].depth
	})

	for _, sh := range shapes {
		rd.fill(img, sh)
	}
	return img
}

// toPixel converts normalized device coordinates to pixel coordinates.
func (rd *Renderer) toPixel(ndc math32.Vector2) math32.Vector2 {
	sz := rd.Viewport.FrameSize()
	return math32.Vec2((ndc.X*0.5+0.5)*float32(sz.X), (0.5-ndc.Y*0.5)*float32(sz.Y))
}

// pixelScale returns the number of pixels per world unit at the given depth.
func (rd *Renderer) pixelScale(cam *scene.Camera, depth float32) float32 {
	sz := rd.Viewport.FrameSize()
	return cam.FocalScale() * 0.5 * float32(sz.Y) / depth
}

func (rd *Renderer) sphere(sc *scene.Scene, sd *scene.Solid, ms *scene.Sphere) (shape, bool) {
	cam := &sc.Camera
	pos := sd.Pose.WorldPos()
	ndc, depth, ok := cam.Project(pos, rd.Viewport.Aspect())
	if !ok {
		return shape{}, false
	}
	ctr := rd.toPixel(ndc)
	r := max(ms.Radius*rd.pixelScale(cam, depth), 0.5*rd.MinPointSize)
	sz := rd.Viewport.FrameSize()
	if ctr.X+r < 0 || ctr.Y+r < 0 || ctr.X-r > float32(sz.X) || ctr.Y-r > float32(sz.Y) {
		return shape{}, false
	}
	n := min(max(int(r), 8), 64)
	poly := make([]math32.Vector2, n)
	for i := range poly {
		ang := 2 * math32.Pi * float32(i) / float32(n)
		poly[i] = math32.Vec2(ctr.X+r*math32.Cos(ang), ctr.Y+r*math32.Sin(ang))
	}
	return shape{depth: depth, polys: [][]math32.Vector2{poly}}, true
}

func (rd *Renderer) ring(sc *scene.Scene, sd *scene.Solid, ms *scene.Ring) (shape, bool) {
	cam := &sc.Camera
	aspect := rd.Viewport.Aspect()
	wm := &sd.Pose.WorldMatrix
	_, depth, ok := cam.Project(sd.Pose.WorldPos(), aspect)
	if !ok {
		return shape{}, false
	}
	inner := ms.Points(ms.InnerRadius)
	outer := ms.Points(ms.OuterRadius)
	np := len(inner)
	type edge struct {
		in, out math32.Vector2
		ok      bool
	}
	edges := make([]edge, np)
	for i := range np {
		pi := inner[i].MulMatrix4AsVector4(wm, 1)
		po := outer[i].MulMatrix4AsVector4(wm, 1)
		ni, di, oki := cam.Project(pi, aspect)
		no, do, oko := cam.Project(po, aspect)
		e := edge{in: rd.toPixel(ni), out: rd.toPixel(no), ok: oki && oko}
		// keep strips at least one pixel wide
		if e.ok {
			w := e.out.Sub(e.in)
			if l := w.Length(); l < 1 {
				ctr := e.in.Add(e.out).MulScalar(0.5)
				dir := math32.Vec2(0, 1)
				if l > 0 {
					dir = w.DivScalar(l)
				}
				e.in = ctr.Sub(dir.MulScalar(0.5))
				e.out = ctr.Add(dir.MulScalar(0.5))
			}
			depth = min(depth, di, do)
		}
		edges[i] = e
	}
	var sh shape
	for i := range np {
		a, b := edges[i], edges[(i+1)%np]
		if !a.ok || !b.ok {
			continue
		}
		sh.polys = append(sh.polys, []math32.Vector2{a.out, b.out, b.in, a.in})
	}
	if len(sh.polys) == 0 {
		return shape{}, false
	}
	sh.depth = depth
	return sh, true
}

// shade returns the color of the given solid, from its texture or
// material color, lit by the given lights unless the material is unlit.
func (rd *Renderer) shade(sc *scene.Scene, sd *scene.Solid, lights []*scene.PointLight) color.NRGBA {
	mt := &sd.Material
	c := mt.Color
	if mt.TextureName != "" {
		if tc, err := sc.Textures.Color(mt.TextureName); err == nil {
			c = tc
		}
	}
	lum := float32(1)
	if !mt.Unlit {
		pos := sd.Pose.WorldPos()
		lum = rd.Ambient
		for _, lt := range lights {
			lum += lt.Intensity(pos)
		}
		lum = min(lum, 1)
	}
	scale := func(v uint8) uint8 {
		return uint8(float32(v) * lum)
	}
	alpha := float32(c.A) / 255 * mt.Opacity
	return color.NRGBA{scale(c.R), scale(c.G), scale(c.B), uint8(alpha * 255)}
}

// fill draws the polygons of the shape onto the image.
func (rd *Renderer) fill(img *image.RGBA, sh shape) {
	sz := img.Bounds().Size()
	z := rd.rast
	z.Reset(sz.X, sz.Y)
	z.DrawOp = draw.Over
	for _, poly := range sh.polys {
		z.MoveTo(poly[0].X, poly[0].Y)
		for _, p := range poly[1:] {
			z.LineTo(p.X, p.Y)
		}
		z.ClosePath()
	}
	z.Draw(img, img.Bounds(), image.NewUniform(sh.color), image.Point{})
}

// EncodePNG returns the given frame encoded as PNG.
func EncodePNG(img image.Image) ([]byte, error) {
	var b bytes.Buffer
	err := imagex.Write(img, &b, imagex.PNG)
	return b.Bytes(), err
}
