// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyz is a small retained-mode 3D scenegraph, in which nodes are
// stored in an arena on the [Scene] and referred to by stable [NodeID]
// handles. Meshes and materials are render resources that are released
// explicitly through [Scene.Release], exactly once per node.
package xyz

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
)

// NodeID is a stable handle to a node in a [Scene]. Handles are never
// reused within a scene, so a released node keeps its handle.
type NodeID int32

// NoNode is the parent of the root node.
const NoNode NodeID = -1

var (
	// ErrReleased is returned when releasing a node whose resources
	// have already been freed.
	ErrReleased = errors.New("xyz: node resources already released")

	// ErrNoNode is returned for a handle that is not in the scene.
	ErrNoNode = errors.New("xyz: no such node")
)

// Node is one entry in the scene arena. A node with a Mesh is a solid;
// a node without one is a group that only contributes its Pose
// to its children.
type Node struct {

	// Name is a descriptive name for debugging and lookup.
	Name string

	// Parent is the handle of the parent node, or [NoNode] for the root.
	Parent NodeID

	// Pose is the transform relative to the parent.
	Pose Pose

	// Mesh is the geometry buffer, nil for groups.
	Mesh Mesh

	// Material is the surface material, nil for groups.
	Material *Material

	// Invisible excludes the node and its children from rendering.
	Invisible bool

	// released is set once Mesh and Material have been freed.
	released bool
}

// IsSolid returns true if the node has geometry.
func (nd *Node) IsSolid() bool {
	return nd.Mesh != nil
}

// Released returns whether the node's resources have been freed.
func (nd *Node) Released() bool {
	return nd.released
}

// Scene is the overall scenegraph: an arena of nodes plus lights,
// camera and background color.
type Scene struct {

	// Name is the name of the scene.
	Name string

	// Nodes is the node arena, indexed by [NodeID].
	Nodes []Node

	// Root is the handle of the root group, which every
	// other node descends from.
	Root NodeID

	// Camera determines the view onto the scene.
	Camera Camera

	// Lights are all the lights used in the scene.
	Lights []Light

	// Background is the clear color; the zero value is fully transparent.
	Background color.RGBA

	// live is the number of meshes and materials not yet released.
	live int
}

// NewScene returns a new scene with a root group and a default camera.
func NewScene(name string) *Scene {
	sc := &Scene{Name: name}
	sc.Camera.Defaults()
	sc.Root = sc.add(Node{Name: "root", Parent: NoNode})
	return sc
}

func (sc *Scene) add(nd Node) NodeID {
	nd.Pose.Defaults()
	id := NodeID(len(sc.Nodes))
	sc.Nodes = append(sc.Nodes, nd)
	return id
}

// Node returns the node for the given handle, or nil if there is none.
// The pointer is valid until the next node is added to the scene.
func (sc *Scene) Node(id NodeID) *Node {
	if id < 0 || int(id) >= len(sc.Nodes) {
		return nil
	}
	return &sc.Nodes[id]
}

// Len returns the number of nodes, including the root.
func (sc *Scene) Len() int {
	return len(sc.Nodes)
}

// Live returns the number of mesh and material resources
// that have been created and not yet released.
func (sc *Scene) Live() int {
	return sc.live
}

// AddLight adds the given light to the scene.
func (sc *Scene) AddLight(lt Light) {
	sc.Lights = append(sc.Lights, lt)
}

// Release frees the mesh and material of the given node.
// Releasing a node twice returns [ErrReleased]; releasing a
// group is a no-op.
func (sc *Scene) Release(id NodeID) error {
	nd := sc.Node(id)
	if nd == nil {
		return fmt.Errorf("xyz.Scene %s: Release %d: %w", sc.Name, id, ErrNoNode)
	}
	if nd.released {
		return fmt.Errorf("xyz.Scene %s: Release %q: %w", sc.Name, nd.Name, ErrReleased)
	}
	nd.released = true
	if nd.Mesh != nil {
		nd.Mesh.AsMeshBase().release()
		sc.live--
	}
	if nd.Material != nil {
		nd.Material.released = true
		sc.live--
	}
	slog.Debug("xyz: released node", "scene", sc.Name, "node", nd.Name)
	return nil
}

// FindNode returns the handle of the first node with the given name.
func (sc *Scene) FindNode(name string) (NodeID, bool) {
	for i := range sc.Nodes {
		if sc.Nodes[i].Name == name {
			return NodeID(i), true
		}
	}
	return NoNode, false
}
