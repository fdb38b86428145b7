// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solar

import (
	"cogentcore.org/core/tree"
	"cogentcore.org/solarsystem/scene"
	"gopkg.in/yaml.v3"
)

// NodeInfo is a serializable summary of a scene node.
type NodeInfo struct {
	Name     string     `yaml:"name"`
	Kind     string     `yaml:"kind"`
	Pos      [3]float32 `yaml:"pos,flow"`
	Rotation [3]float32 `yaml:"rotation,flow"`
	Texture  string     `yaml:"texture,omitempty"`
	Children []NodeInfo `yaml:"children,omitempty"`

	// Count is the number of children, set instead of Children
	// for the starfield.
	Count int `yaml:"count,omitempty"`
}

// Info returns the [NodeInfo] tree of the given node.
// The stars of the starfield are summarized as a count.
func (sys *System) Info(n tree.Node) NodeInfo {
	ni := NodeInfo{Name: n.AsTree().Name, Kind: kind(n)}
	if _, nb := scene.AsNode(n); nb != nil {
		ni.Pos = [3]float32{nb.Pose.Pos.X, nb.Pose.Pos.Y, nb.Pose.Pos.Z}
		ni.Rotation = [3]float32{nb.Pose.Rotation.X, nb.Pose.Rotation.Y, nb.Pose.Rotation.Z}
	}
	if sd, ok := n.(*scene.Solid); ok {
		if tx, ok := sys.Scene.Textures.Texture(sd.Material.TextureName); ok {
			ni.Texture = tx.File
		}
	}
	if n == tree.Node(sys.Stars) {
		ni.Count = n.AsTree().NumChildren()
		return ni
	}
	for _, k := range n.AsTree().Children {
		ni.Children = append(ni.Children, sys.Info(k))
	}
	return ni
}

func kind(n tree.Node) string {
	switch n.(type) {
	case *scene.Scene:
		return "scene"
	case *scene.Group:
		return "group"
	case *scene.PointLight:
		return "light"
	case *scene.Solid:
		return "solid"
	}
	return "node"
}

// Dump returns the scene tree of the system as YAML.
func Dump(sys *System) ([]byte, error) {
	return yaml.Marshal(sys.Info(sys.Scene))
}
