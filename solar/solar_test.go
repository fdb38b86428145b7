// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"strconv"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/lab/base/randx"
	"cogentcore.org/solarsystem/scene"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testSystem() *System {
	return Build(DefaultTable(), Options{Rand: randx.NewSysRand(42)})
}

// assertAngle checks that two angles are equal mod 2π.
func assertAngle(t *testing.T, expected, actual float32, msgs ...any) {
	t.Helper()
	d := math32.Mod(expected-actual, 2*math32.Pi)
	if d > math32.Pi {
		d -= 2 * math32.Pi
	} else if d < -math32.Pi {
		d += 2 * math32.Pi
	}
	assert.InDelta(t, 0, d, 1e-3, msgs...)
}

func TestDefaultTable(t *testing.T) {
	tbl := DefaultTable()
	require.Len(t, tbl, 8)
	var names []string
	for _, d := range tbl {
		names = append(names, d.Name)
	}
	want := []string{"mercury", "venus", "earth", "mars", "jupiter", "saturn", "uranus", "neptune"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("table order mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, tbl[2].Satellites, 1)
	assert.Equal(t, "moon", tbl[2].Satellites[0].Name)

	tbl[2].Satellites[0].Name = "changed"
	tbl[0].OrbitRadius = 100
	fresh := DefaultTable()
	assert.Equal(t, "moon", fresh[2].Satellites[0].Name)
	assert.Equal(t, float32(1.5), fresh[0].OrbitRadius)
}

func TestTextures(t *testing.T) {
	txs := Textures(DefaultTable())
	assert.Len(t, txs, 10)
	assert.Equal(t, "sun.jpeg", txs[0])
	assert.Contains(t, txs, "moon.jpeg")
}

func TestBuildHierarchy(t *testing.T) {
	sys := testSystem()
	sc := sys.Scene

	var top []string
	for _, k := range sc.Children {
		top = append(top, k.AsTree().Name)
	}
	assert.Equal(t, []string{"sun", "guide-lines", "sun-orbit", "stars", "light"}, top)

	assert.Equal(t, math32.Vector3{}, sys.Sun.Pose.Pos)
	assert.Equal(t, 8, sys.SunOrbit.NumChildren())
	assert.Len(t, sys.Pivots(), 8)
	assert.Len(t, sys.Guides(), 8)

	earth := sys.Body("earth")
	require.NotNil(t, earth)
	require.Equal(t, 1, earth.NumChildren())
	moonPivot, ok := earth.Child(0).(*scene.Group)
	require.True(t, ok, "earth child is an orbit pivot")
	assert.Equal(t, "moon-orbit", moonPivot.Name)
	for _, pv := range sys.Pivots() {
		body, ok := pv.Child(0).(*scene.Solid)
		require.True(t, ok)
		if body != earth {
			assert.Zero(t, body.NumChildren(), body.Name)
		}
	}
}

func TestBodiesAtOrbitRadius(t *testing.T) {
	sys := testSystem()
	tbl := DefaultTable()
	pivots := sys.Pivots()
	for i, d := range tbl {
		pv := pivots[i]
		assert.Equal(t, d.Name+"-orbit", pv.Name)
		assert.Equal(t, math32.Vector3{}, pv.Pose.Pos)
		body, ok := pv.Child(0).(*scene.Solid)
		require.True(t, ok)
		assert.Equal(t, d.Name, body.Name)
		assert.Equal(t, math32.Vec3(d.OrbitRadius, 0, 0), body.Pose.Pos)
		sp, ok := body.Mesh.(*scene.Sphere)
		require.True(t, ok)
		assert.Equal(t, d.Radius, sp.Radius)
		assert.Equal(t, d.Name, body.Material.TextureName)
		tx, ok := sys.Scene.Textures.Texture(d.Name)
		require.True(t, ok)
		assert.Equal(t, d.Texture, tx.File)
	}

	Advance(sys, 123)
	for i, d := range tbl {
		body := pivots[i].Child(0).(*scene.Solid)
		assert.InDelta(t, d.OrbitRadius, body.Pose.WorldPos().Length(), 1e-4, d.Name)
		assert.InDelta(t, 0, body.Pose.WorldPos().Y, 1e-4, d.Name)
	}
}

func TestGuideRings(t *testing.T) {
	sys := testSystem()
	tbl := DefaultTable()
	guides := sys.Guides()
	require.Len(t, guides, len(tbl))
	for i, d := range tbl {
		gd := guides[i]
		rg, ok := gd.Mesh.(*scene.Ring)
		require.True(t, ok)
		assert.InDelta(t, d.OrbitRadius-0.01, rg.InnerRadius, 1e-6, d.Name)
		assert.InDelta(t, d.OrbitRadius+0.009, rg.OuterRadius, 1e-6, d.Name)
		assert.InDelta(t, d.OrbitRadius, rg.CenterRadius(), 0.001, d.Name)
		assert.Equal(t, 64, rg.Segments)
		tolassert.EqualTol(t, math32.Pi/2, gd.Pose.Rotation.X, 1e-6)
		assert.True(t, gd.Material.IsTransparent())
		assert.True(t, gd.Material.DoubleSided)
	}
}

func TestSatellite(t *testing.T) {
	sys := testSystem()
	earth := sys.Body("earth")
	moon := sys.Body("moon")
	require.NotNil(t, moon)

	moonPivot := moon.Parent.(*scene.Group)
	assert.Equal(t, tree.Node(earth), moonPivot.Parent)
	assert.Equal(t, math32.Vec3(0.5, 0, 0), moonPivot.Pose.Pos)
	tolassert.EqualTol(t, 0.5, moon.Pose.WorldPos().Sub(earth.Pose.WorldPos()).Length(), 1e-5)

	for range 3 {
		Advance(sys, 17)
		tolassert.EqualTol(t, 0.5, moon.Pose.WorldPos().Sub(earth.Pose.WorldPos()).Length(), 1e-4)
	}

	lts := moon.Lights()
	require.Len(t, lts, 1)
	tolassert.EqualTol(t, 0.2, lts[0].Lumens, 1e-6)

	withLights := 0
	for _, sd := range sys.Scene.Solids() {
		if len(sd.Lights()) > 0 {
			withLights++
			assert.Equal(t, "moon", sd.Name)
		}
	}
	assert.Equal(t, 1, withLights)
	assert.Len(t, sys.Scene.Lights(), 2, "moon light and scene light")
}

func TestStars(t *testing.T) {
	sys := testSystem()
	require.Equal(t, NumStars, sys.Stars.NumChildren())
	assert.Equal(t, 1000, sys.Stars.NumChildren())
	assert.Equal(t, math32.Vec3(0, 0, -5), sys.Stars.Pose.Pos)
	half := float32(StarSpread) / 2
	for i, k := range sys.Stars.Children {
		assert.Equal(t, "star-"+strconv.Itoa(i), k.AsTree().Name)
		p := k.(*scene.Solid).Pose.Pos
		for _, v := range []float32{p.X, p.Y, p.Z} {
			assert.GreaterOrEqual(t, v, -half)
			assert.LessOrEqual(t, v, half)
		}
	}

	// same seed, same sky
	other := testSystem()
	assert.Equal(t, sys.Stars.Child(7).(*scene.Solid).Pose.Pos, other.Stars.Child(7).(*scene.Solid).Pose.Pos)
	assert.NotEqual(t, sys.Stars.Child(7).(*scene.Solid).Pose.Pos, sys.Stars.Child(8).(*scene.Solid).Pose.Pos)
}

func TestCamera(t *testing.T) {
	cm := testSystem().Scene.Camera
	assert.Equal(t, float32(80), cm.FOV)
	assert.Equal(t, float32(0.1), cm.Near)
	assert.Equal(t, float32(300), cm.Far)
	assert.Equal(t, math32.Vec3(0, 5, 10), cm.Pos)
	assert.Equal(t, math32.Vector3{}, cm.Target)
}

func TestAdvanceSun(t *testing.T) {
	sys := testSystem()
	for _, ticks := range []int{1, 9, 90, 400} {
		Advance(sys, ticks)
		T := float32(sys.Ticks)
		assertAngle(t, -0.05*T, sys.Sun.Pose.Rotation.Y, "sun Y")
		assertAngle(t, -0.001*T, sys.Sun.Pose.Rotation.X, "sun X")
		assertAngle(t, -0.004*T, sys.Stars.Pose.Rotation.Y, "stars Y")
		assertAngle(t, -0.003*T, sys.Stars.Pose.Rotation.X, "stars X")
		assert.Greater(t, sys.Sun.Pose.Rotation.Y, float32(-2*math32.Pi))
	}
	assert.Equal(t, 500, sys.Ticks)
}

func TestAdvancePlanets(t *testing.T) {
	sys := testSystem()
	const T = 250
	Advance(sys, T)
	for i, pv := range sys.Pivots() {
		f := float32(i + 1)
		_, body := scene.AsNode(pv.Child(0))
		require.NotNil(t, body)
		assertAngle(t, -0.001*f*T, pv.Pose.Rotation.Y, pv.Name)
		assertAngle(t, -0.01*f*T, body.Pose.Rotation.Y, body.Name)
		assertAngle(t, -0.001*f*T, body.Pose.Rotation.X, body.Name)
		assert.Zero(t, pv.Pose.Rotation.X)
	}

	// satellites are static relative to their pivots
	moon := sys.Body("moon")
	assert.Equal(t, math32.Vector3{}, moon.Pose.Rotation)
	assert.Equal(t, math32.Vector3{}, moon.Parent.(*scene.Group).Pose.Rotation)
	// guides never move
	for _, gd := range sys.Guides() {
		assert.Zero(t, gd.Pose.Rotation.Y)
	}
}

func TestAdvanceSpeedByIndex(t *testing.T) {
	sys := testSystem()
	Advance(sys, 10)
	pivots := sys.Pivots()
	for i := 1; i < len(pivots); i++ {
		assert.Less(t, pivots[i].Pose.Rotation.Y, pivots[i-1].Pose.Rotation.Y)
	}
}

func TestDump(t *testing.T) {
	sys := testSystem()
	b, err := Dump(sys)
	require.NoError(t, err)
	var root NodeInfo
	require.NoError(t, yaml.Unmarshal(b, &root))
	assert.Equal(t, "scene", root.Kind)

	var names []string
	var walk func(ni NodeInfo)
	walk = func(ni NodeInfo) {
		names = append(names, ni.Name)
		if ni.Name == "stars" {
			assert.Equal(t, NumStars, ni.Count)
			assert.Empty(t, ni.Children)
		}
		for _, k := range ni.Children {
			walk(k)
		}
	}
	walk(root)
	for _, nm := range []string{"sun", "mercury", "earth", "moon", "moon-light", "neptune-guide"} {
		assert.Contains(t, names, nm)
	}
	assert.Contains(t, string(b), "moon.jpeg")
}
