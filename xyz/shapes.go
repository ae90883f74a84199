// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
)

// Box is a rectangular box mesh centered on the origin.
type Box struct {
	MeshBase

	// Size is the size of the box along each axis.
	Size math32.Vector3
}

// NewBox returns a box mesh with the given width, height and depth.
func NewBox(name string, width, height, depth float32) *Box {
	bx := &Box{}
	bx.Name = name
	bx.Size.Set(width, height, depth)
	bx.Make()
	return bx
}

// Make generates the box vertexes and triangles from Size.
func (bx *Box) Make() {
	bx.Reset()
	h := bx.Size.MulScalar(0.5)
	for i := 0; i < 8; i++ {
		x, y, z := -h.X, -h.Y, -h.Z
		if i&1 != 0 {
			x = h.X
		}
		if i&2 != 0 {
			y = h.Y
		}
		if i&4 != 0 {
			z = h.Z
		}
		bx.Vertex = append(bx.Vertex, math32.Vec3(x, y, z))
	}
	// counter-clockwise when viewed from outside
	faces := [6][4]uint32{
		{0, 4, 6, 2}, // -x
		{1, 3, 7, 5}, // +x
		{0, 1, 5, 4}, // -y
		{2, 6, 7, 3}, // +y
		{0, 2, 3, 1}, // -z
		{4, 5, 7, 6}, // +z
	}
	for _, f := range faces {
		bx.Index = append(bx.Index, f[0], f[1], f[2], f[0], f[2], f[3])
	}
}

// Plane is a flat rectangle in the XY plane, facing +Z.
type Plane struct {
	MeshBase

	// Size is the width and height of the plane.
	Size math32.Vector2
}

// NewPlane returns a plane mesh with the given width and height.
func NewPlane(name string, width, height float32) *Plane {
	pl := &Plane{}
	pl.Name = name
	pl.Size.Set(width, height)
	pl.Make()
	return pl
}

// Make generates the plane vertexes and triangles from Size.
func (pl *Plane) Make() {
	pl.Reset()
	w, h := pl.Size.X*0.5, pl.Size.Y*0.5
	pl.Vertex = append(pl.Vertex,
		math32.Vec3(-w, -h, 0), math32.Vec3(w, -h, 0),
		math32.Vec3(w, h, 0), math32.Vec3(-w, h, 0))
	pl.Index = append(pl.Index, 0, 1, 2, 0, 2, 3)
}

// Sphere is a UV sphere mesh centered on the origin.
type Sphere struct {
	MeshBase

	// Radius is the radius of the sphere.
	Radius float32

	// WidthSegs is the number of segments around the equator.
	WidthSegs int `min:"3"`

	// HeightSegs is the number of segments from pole to pole.
	HeightSegs int `min:"2"`
}

// NewSphere returns a sphere mesh with the given radius and resolution.
func NewSphere(name string, radius float32, widthSegs, heightSegs int) *Sphere {
	sp := &Sphere{}
	sp.Name = name
	sp.Radius = radius
	sp.WidthSegs = max(widthSegs, 3)
	sp.HeightSegs = max(heightSegs, 2)
	sp.Make()
	return sp
}

// Make generates the sphere vertexes and triangles.
// Vertex rows run from the top pole (elevation 0) to the bottom pole (Pi).
func (sp *Sphere) Make() {
	sp.Reset()
	ws, hs := sp.WidthSegs, sp.HeightSegs
	for y := 0; y <= hs; y++ {
		elev := float32(y) / float32(hs) * math32.Pi
		for x := 0; x <= ws; x++ {
			ang := float32(x) / float32(ws) * 2 * math32.Pi
			px := -sp.Radius * math32.Cos(ang) * math32.Sin(elev)
			py := sp.Radius * math32.Cos(elev)
			pz := sp.Radius * math32.Sin(ang) * math32.Sin(elev)
			sp.Vertex = append(sp.Vertex, math32.Vec3(px, py, pz))
		}
	}
	row := uint32(ws + 1)
	for y := 0; y < hs; y++ {
		for x := 0; x < ws; x++ {
			v1 := uint32(y)*row + uint32(x+1)
			v2 := uint32(y)*row + uint32(x)
			v3 := uint32(y+1)*row + uint32(x)
			v4 := uint32(y+1)*row + uint32(x+1)
			if y != 0 {
				sp.Index = append(sp.Index, v1, v2, v4)
			}
			if y != hs-1 {
				sp.Index = append(sp.Index, v2, v3, v4)
			}
		}
	}
}

// Lines is a batched line segment mesh: vertexes 2i and 2i+1
// are the endpoints of segment i.
type Lines struct {
	MeshBase
}

// NewLines returns an empty line segment mesh.
func NewLines(name string) *Lines {
	ln := &Lines{}
	ln.Name = name
	ln.Topology = Segments
	return ln
}

// NumSegments returns the number of line segments.
func (ln *Lines) NumSegments() int {
	return len(ln.Vertex) / 2
}

// AddSegment appends one segment from a to b.
func (ln *Lines) AddSegment(a, b math32.Vector3) {
	ln.Vertex = append(ln.Vertex, a, b)
}
