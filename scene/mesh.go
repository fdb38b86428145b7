// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"cogentcore.org/core/math32"
)

// Mesh parametrizes the shape used for rendering a [Solid].
// Meshes here are parametric: the renderer derives geometry from the
// parameters instead of reading vertex buffers.
type Mesh interface {

	// AsMeshBase returns the [MeshBase] for this Mesh,
	// which provides the core functionality of a mesh.
	AsMeshBase() *MeshBase

	// BoundingRadius returns the radius of a sphere centered on the
	// local origin that encloses the whole mesh.
	BoundingRadius() float32
}

// MeshBase provides the core implementation of the [Mesh] interface.
type MeshBase struct {

	// Name is the name of the mesh.
	Name string
}

func (ms *MeshBase) AsMeshBase() *MeshBase {
	return ms
}

// Sphere is a sphere mesh centered on the local origin.
type Sphere struct {
	MeshBase

	// Radius is the radius of the sphere.
	Radius float32

	// WidthSegs is the number of segments around the equator.
	WidthSegs int `min:"3"`

	// HeightSegs is the number of segments from pole to pole.
	HeightSegs int `min:"2"`
}

// NewSphere returns a new [Sphere] mesh with the given name, radius
// and number of segments, clamped to the minimum of 3 by 2 segments.
func NewSphere(name string, radius float32, segs int) *Sphere {
	sp := &Sphere{Radius: radius, WidthSegs: max(segs, 3), HeightSegs: max(segs, 2)}
	sp.Name = name
	return sp
}

func (sp *Sphere) BoundingRadius() float32 {
	return sp.Radius
}

// Ring is a flat annulus in the local XY plane, centered on the origin.
type Ring struct {
	MeshBase

	// InnerRadius is the radius of the inner edge.
	InnerRadius float32

	// OuterRadius is the radius of the outer edge.
	OuterRadius float32

	// Segments is the number of segments around the ring.
	Segments int `min:"3"`
}

// NewRing returns a new [Ring] mesh with the given name, inner and outer
// radius and number of segments.
func NewRing(name string, inner, outer float32, segs int) *Ring {
	rg := &Ring{InnerRadius: inner, OuterRadius: outer, Segments: max(segs, 3)}
	rg.Name = name
	return rg
}

func (rg *Ring) BoundingRadius() float32 {
	return rg.OuterRadius
}

// CenterRadius returns the radius halfway between the inner and outer edge.
func (rg *Ring) CenterRadius() float32 {
	return 0.5 * (rg.InnerRadius + rg.OuterRadius)
}

// Points returns the Segments points on the circle of the given radius,
// in the local XY plane.
func (rg *Ring) Points(radius float32) []math32.Vector3 {
	pts := make([]math32.Vector3, rg.Segments)
	for i := range pts {
		ang := 2 * math32.Pi * float32(i) / float32(rg.Segments)
		pts[i] = math32.Vec3(radius*math32.Cos(ang), radius*math32.Sin(ang), 0)
	}
	return pts
}
