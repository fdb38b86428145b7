// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"cogentcore.org/core/base/errors"
	"github.com/jinzhu/copier"
)

// Descriptor describes a celestial body: its size, surface texture
// and orbit around its parent, plus any satellites orbiting it.
type Descriptor struct {

	// Name is the name of the body, used for the node names.
	Name string `yaml:"name"`

	// Radius is the radius of the body sphere.
	Radius float32 `yaml:"radius"`

	// Texture is the texture file name, relative to the texture directory.
	Texture string `yaml:"texture"`

	// OrbitRadius is the distance from the parent body.
	OrbitRadius float32 `yaml:"orbitRadius"`

	// Satellites are the bodies orbiting this one.
	Satellites []Descriptor `yaml:"satellites,omitempty"`
}

// Sun describes the central body, which has no orbit.
var Sun = Descriptor{Name: "sun", Radius: 0.8, Texture: "sun.jpeg"}

// planets is the fixed table of planets, in orbit order.
var planets = []Descriptor{
	{Name: "mercury", Radius: 0.1, Texture: "mercury.png", OrbitRadius: 1.5},
	{Name: "venus", Radius: 0.2, Texture: "venus.jpeg", OrbitRadius: 2},
	{Name: "earth", Radius: 0.4, Texture: "earth.jpg", OrbitRadius: 3,
		Satellites: []Descriptor{
			{Name: "moon", Radius: 0.1, Texture: "moon.jpeg", OrbitRadius: 0.5},
		}},
	{Name: "mars", Radius: 0.2, Texture: "mars.jpeg", OrbitRadius: 4},
	{Name: "jupiter", Radius: 0.5, Texture: "jupiter2_1k.jpg", OrbitRadius: 5},
	{Name: "saturn", Radius: 0.4, Texture: "saturnmap.jpg", OrbitRadius: 6},
	{Name: "uranus", Radius: 0.3, Texture: "uranusmap.jpg", OrbitRadius: 7},
	{Name: "neptune", Radius: 0.3, Texture: "neptunemap.jpg", OrbitRadius: 8},
}

// DefaultTable returns a deep copy of the fixed planet table,
// so that callers can never modify the original.
func DefaultTable() []Descriptor {
	var tbl []Descriptor
	errors.Log(copier.CopyWithOption(&tbl, &planets, copier.Option{DeepCopy: true}))
	return tbl
}

// Textures returns the texture file names used by the sun and the given
// table, including satellites, in table order.
func Textures(table []Descriptor) []string {
	txs := []string{Sun.Texture}
	var add func(ds []Descriptor)
	add = func(ds []Descriptor) {
		for _, d := range ds {
			txs = append(txs, d.Texture)
			add(d.Satellites)
		}
	}
	add(table)
	return txs
}
