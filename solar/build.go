// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"log/slog"
	"strconv"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/solarsystem/scene"
)

const (
	// NumStars is the number of stars in the starfield.
	NumStars = 1000

	// StarSpread is the full width of the cube that stars are scattered in,
	// centered on the starfield origin.
	StarSpread = 100

	// StarDepth is the Z offset of the whole starfield.
	StarDepth = -5

	// StarRadius is the radius of each star.
	StarRadius = 0.09

	// BodySegments is the number of sphere segments of the sun,
	// planets and satellites.
	BodySegments = 32

	// GuideInset and GuideOutset are the distances of the inner and outer
	// edges of an orbit guide ring from the orbit radius.
	GuideInset  = 0.01
	GuideOutset = 0.009

	// GuideSegments is the number of segments of each guide ring.
	GuideSegments = 64

	// GuideOpacity is the opacity of the guide rings.
	GuideOpacity = 0.2

	// SatelliteLightLumens is the brightness of the light carried by
	// each satellite.
	SatelliteLightLumens = 0.2

	// SceneLightLumens is the brightness of the light at the origin.
	SceneLightLumens = 0.5
)

// Options are the options for [Build].
type Options struct {

	// Rand is the random source for the starfield; nil uses the global source.
	Rand randx.Rand

	// TextureDir is the directory that texture files are resolved against.
	TextureDir string
}

// System is the handle on a built solar system scene, with direct
// access to the nodes that [Advance] rotates.
type System struct {

	// Scene is the whole scene graph.
	Scene *scene.Scene

	// Sun is the central body, at the origin.
	Sun *scene.Solid

	// SunOrbit holds one orbit pivot per top-level body, in table order.
	SunOrbit *scene.Group

	// GuideLines holds one guide ring per top-level body, in table order.
	GuideLines *scene.Group

	// Stars is the starfield.
	Stars *scene.Group

	// Light is the scene light at the origin.
	Light *scene.PointLight

	// Ticks is the number of ticks applied by [Advance] so far.
	Ticks int
}

// Build constructs the solar system scene from the given descriptor table.
// Each top-level descriptor gets an orbit pivot under the shared sun orbit
// group, a body at its orbit radius inside the pivot, and a guide ring.
// Satellites orbit their owning body and carry a dim point light.
func Build(table []Descriptor, opts Options) *System {
	sc := scene.NewScene()
	sc.SetName("solar-system")
	sc.Textures = scene.NewTextureLibrary(opts.TextureDir)
	sc.Camera.FOV = 80
	sc.Camera.Near = 0.1
	sc.Camera.Far = 300
	sc.Camera.Pos.Set(0, 5, 10)
	sc.Camera.LookAtOrigin()

	sys := &System{Scene: sc}
	sys.Sun = newBody(sc, sc, Sun).SetUnlit(true)
	sys.GuideLines = scene.NewGroup(sc)
	sys.GuideLines.SetName("guide-lines")
	sys.SunOrbit = scene.NewGroup(sc)
	sys.SunOrbit.SetName("sun-orbit")
	sys.Stars = newStars(sc, opts.Rand)

	for _, d := range table {
		pivot := scene.NewGroup(sys.SunOrbit)
		pivot.SetName(d.Name + "-orbit")
		body := newBody(sc, pivot, d)
		body.SetPos(d.OrbitRadius, 0, 0)
		for _, sd := range d.Satellites {
			spivot := scene.NewGroup(body).SetPos(sd.OrbitRadius, 0, 0)
			spivot.SetName(sd.Name + "-orbit")
			sat := newBody(sc, spivot, sd)
			scene.NewPointLight(sat).SetLumens(SatelliteLightLumens).SetName(sd.Name + "-light")
		}
		newGuide(sys.GuideLines, d)
	}

	sys.Light = scene.NewPointLight(sc).SetLumens(SceneLightLumens)
	sys.Light.SetName("light")
	scene.UpdateWorldMatrix(sc)
	slog.Debug("solar: built scene", "bodies", len(table), "stars", sys.Stars.NumChildren())
	return sys
}

// newBody adds a textured sphere for the given descriptor to the parent,
// and registers its texture on the scene.
func newBody(sc *scene.Scene, parent tree.Node, d Descriptor) *scene.Solid {
	sc.Textures.Add(d.Name, d.Texture)
	bd := scene.NewSolid(parent).SetMesh(scene.NewSphere(d.Name, d.Radius, BodySegments)).
		SetTextureName(d.Name)
	bd.SetName(d.Name)
	return bd
}

// newGuide adds a thin ring at the orbit radius of the given descriptor,
// turned into the orbit (XZ) plane.
func newGuide(parent tree.Node, d Descriptor) *scene.Solid {
	rg := scene.NewRing(d.Name+"-guide", d.OrbitRadius-GuideInset, d.OrbitRadius+GuideOutset, GuideSegments)
	gd := scene.NewSolid(parent).SetMesh(rg).
		SetColor(colors.White).SetOpacity(GuideOpacity).SetUnlit(true).SetDoubleSided(true)
	gd.SetName(d.Name + "-guide")
	gd.Pose.Rotation.X = math32.Pi / 2
	return gd
}

// newStars adds the starfield group with [NumStars] stars scattered
// uniformly within [StarSpread], offset to [StarDepth].
func newStars(parent tree.Node, rnd randx.Rand) *scene.Group {
	if rnd == nil {
		rnd = randx.NewGlobalRand()
	}
	stars := scene.NewGroup(parent)
	stars.SetName("stars")
	mesh := scene.NewSphere("star", StarRadius, 0)
	for i := range NumStars {
		st := scene.NewSolid(stars).SetMesh(mesh).SetColor(colors.White).SetUnlit(true)
		st.SetName("star-" + strconv.Itoa(i))
		st.SetPos(spread(rnd, StarSpread), spread(rnd, StarSpread), spread(rnd, StarSpread))
	}
	stars.Pose.Pos.Z = StarDepth
	return stars
}

// spread returns a random value in the interval [-rng/2, rng/2].
func spread(rnd randx.Rand, rng float32) float32 {
	return rng * (0.5 - rnd.Float32())
}

// Pivots returns the orbit pivots of the top-level bodies, in table order.
func (sys *System) Pivots() []*scene.Group {
	pvs := make([]*scene.Group, 0, sys.SunOrbit.NumChildren())
	for _, k := range sys.SunOrbit.Children {
		if pv, ok := k.(*scene.Group); ok {
			pvs = append(pvs, pv)
		}
	}
	return pvs
}

// Guides returns the orbit guide rings, in table order.
func (sys *System) Guides() []*scene.Solid {
	gds := make([]*scene.Solid, 0, sys.GuideLines.NumChildren())
	for _, k := range sys.GuideLines.Children {
		if gd, ok := k.(*scene.Solid); ok {
			gds = append(gds, gd)
		}
	}
	return gds
}

// Body returns the body (sun, planet or satellite) with the given name,
// or nil if there is none.
func (sys *System) Body(name string) *scene.Solid {
	var found *scene.Solid
	sys.Scene.WalkDown(func(n tree.Node) bool {
		if found != nil || n == tree.Node(sys.Stars) || n == tree.Node(sys.GuideLines) {
			return tree.Break
		}
		if sd, ok := n.(*scene.Solid); ok && sd.Name == name {
			found = sd
			return tree.Break
		}
		return tree.Continue
	})
	return found
}
