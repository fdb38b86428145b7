// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

//go:generate core generate -add-types

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
)

// Node is the interface for all scene graph nodes.
type Node interface {
	tree.Node

	// AsNodeBase returns the [NodeBase] for this node,
	// which contains the pose data.
	AsNodeBase() *NodeBase

	// IsSolid returns true if this is a [Solid] node (otherwise a [Group]
	// or a [PointLight]).
	IsSolid() bool

	// AsSolid returns the node as a [Solid] (nil if not).
	AsSolid() *Solid

	// UpdateWorldMatrix updates this node's local and world matrix based on
	// the given parent world matrix. It does not recurse; see the
	// [UpdateWorldMatrix] function for the whole-tree version.
	UpdateWorldMatrix(parWorld *math32.Matrix4)
}

// NodeBase is the basic scene graph node, which has a [Pose]
// relative to its parent on top of the core tree functionality.
type NodeBase struct {
	tree.NodeBase

	// Pose is the position, rotation and scale relative to the parent.
	Pose Pose `set:"-"`
}

// AsNode converts the given tree node to a [Node] and [NodeBase],
// returning nil if that is not possible.
func AsNode(n tree.Node) (Node, *NodeBase) {
	nii, ok := n.(Node)
	if ok {
		return nii, nii.AsNodeBase()
	}
	return nil, nil
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

func (nb *NodeBase) IsSolid() bool {
	return false
}

func (nb *NodeBase) AsSolid() *Solid {
	return nil
}

func (nb *NodeBase) Init() {
	nb.Pose.Defaults()
}

// UpdateWorldMatrix updates the local and world matrix of this node
// from its pose and the given parent world matrix.
func (nb *NodeBase) UpdateWorldMatrix(parWorld *math32.Matrix4) {
	nb.Pose.UpdateMatrix()
	nb.Pose.UpdateWorldMatrix(parWorld)
}

// UpdateWorldMatrix updates the world matrix for the given node and
// everything inside it. Parents are always visited before their children.
// It must be called after any pose changes and before reading world positions.
func UpdateWorldMatrix(n tree.Node) {
	idmtx := math32.Identity4()
	n.AsTree().WalkDown(func(c tree.Node) bool {
		ni, _ := AsNode(c)
		if ni == nil {
			return tree.Break
		}
		_, pd := AsNode(c.AsTree().Parent)
		if pd == nil {
			ni.UpdateWorldMatrix(idmtx)
		} else {
			ni.UpdateWorldMatrix(&pd.Pose.WorldMatrix)
		}
		return tree.Continue
	})
}
