// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

// Group collects individual elements in a scene but does not have a Mesh or
// Material of its own. It does have a transform that applies to all nodes
// under it, which makes it the natural pivot for orbiting children.
type Group struct {
	NodeBase
}

// SetPos sets the [Pose.Pos] position of the group.
func (gp *Group) SetPos(x, y, z float32) *Group {
	gp.Pose.SetPos(x, y, z)
	return gp
}

// test for impl
var _ Node = &Group{}
