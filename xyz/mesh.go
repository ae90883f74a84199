// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
)

// Topology is the primitive type a [Mesh] index list describes.
type Topology int32

const (
	// Triangles means every 3 indexes form one triangle.
	Triangles Topology = iota

	// Segments means every 2 vertexes form one line segment,
	// and the index list is unused.
	Segments
)

// Mesh is the geometry buffer used for rendering a node.
// Each mesh is owned by exactly one node and is freed explicitly
// through [Scene.Release]; it is never reclaimed implicitly.
type Mesh interface {

	// AsMeshBase returns the [MeshBase] for this Mesh,
	// which provides the core functionality of a mesh.
	AsMeshBase() *MeshBase
}

// MeshBase provides the core implementation of the [Mesh] interface.
type MeshBase struct {

	// Name is the name of the mesh.
	Name string

	// Topology is how Vertex and Index are interpreted.
	Topology Topology

	// Vertex holds the vertex positions in mesh-local coordinates.
	Vertex []math32.Vector3

	// Index holds triangle vertex indexes for [Triangles] meshes.
	Index []uint32

	// released is set once the buffers have been freed.
	released bool
}

func (ms *MeshBase) AsMeshBase() *MeshBase {
	return ms
}

// NumVertex returns the number of vertexes.
func (ms *MeshBase) NumVertex() int {
	return len(ms.Vertex)
}

// Released returns whether the mesh buffers have been freed.
func (ms *MeshBase) Released() bool {
	return ms.released
}

// release frees the vertex and index buffers.
func (ms *MeshBase) release() {
	ms.Vertex = nil
	ms.Index = nil
	ms.released = true
}

// Reset clears the buffers, keeping their capacity, in preparation
// for the mesh data being regenerated.
func (ms *MeshBase) Reset() {
	ms.Vertex = ms.Vertex[:0]
	ms.Index = ms.Index[:0]
}
