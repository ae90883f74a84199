// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
)

// NewSolid adds a solid node under parent with its own mesh and material.
// The scene takes ownership of both; they are freed by [Scene.Release].
func (sc *Scene) NewSolid(parent NodeID, name string, ms Mesh, mt *Material) NodeID {
	id := sc.add(Node{Name: name, Parent: parent, Mesh: ms, Material: mt})
	if ms != nil {
		sc.live++
	}
	if mt != nil {
		sc.live++
	}
	return id
}

// SetPos sets the [Pose.Pos] position of the node.
func (nd *Node) SetPos(x, y, z float32) *Node {
	nd.Pose.Pos.Set(x, y, z)
	return nd
}

// SetRot sets the [Pose.Rot] Euler rotation of the node, in radians.
func (nd *Node) SetRot(x, y, z float32) *Node {
	nd.Pose.Rot.Set(x, y, z)
	return nd
}

// SetScale sets the [Pose.Scale] scale of the node.
func (nd *Node) SetScale(x, y, z float32) *Node {
	nd.Pose.Scale.Set(x, y, z)
	return nd
}

// WorldCenter returns the world position of the node origin.
func (sc *Scene) WorldCenter(id NodeID) math32.Vector3 {
	return sc.Chain(id).Apply(math32.Vector3{})
}
