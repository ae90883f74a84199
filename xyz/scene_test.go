// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSceneArena(t *testing.T) {
	sc := NewScene("test")
	assert.Equal(t, 1, sc.Len())
	assert.Equal(t, NoNode, sc.Node(sc.Root).Parent)

	gp := sc.NewGroup(sc.Root, "group")
	box := sc.NewSolid(gp, "box", NewBox("box", 1, 2, 3), NewMaterial(colors.FromRGB(255, 0, 0)))
	assert.Equal(t, NodeID(2), box)
	assert.Equal(t, 2, sc.Live())
	assert.True(t, sc.Node(box).IsSolid())
	assert.False(t, sc.Node(gp).IsSolid())
	assert.Equal(t, []NodeID{box}, sc.Children(gp))

	id, ok := sc.FindNode("box")
	assert.True(t, ok)
	assert.Equal(t, box, id)
	assert.Nil(t, sc.Node(99))
}

func TestReleaseExactlyOnce(t *testing.T) {
	sc := NewScene("test")
	ms := NewSphere("sphere", 1, 8, 8)
	mt := NewMaterial(colors.FromRGB(0, 255, 0))
	id := sc.NewSolid(sc.Root, "sphere", ms, mt)
	require.Equal(t, 2, sc.Live())

	require.NoError(t, sc.Release(id))
	assert.Equal(t, 0, sc.Live())
	assert.True(t, ms.Released())
	assert.True(t, mt.Released())
	assert.Nil(t, ms.Vertex)

	err := sc.Release(id)
	assert.ErrorIs(t, err, ErrReleased)
	assert.Equal(t, 0, sc.Live())

	assert.ErrorIs(t, sc.Release(42), ErrNoNode)
	assert.Empty(t, sc.RenderSolids())
}

func TestChain(t *testing.T) {
	sc := NewScene("test")
	gp := sc.NewGroup(sc.Root, "group")
	sc.Node(gp).SetRot(0, math32.Pi/2, 0)
	id := sc.NewSolid(gp, "box", NewBox("box", 1, 1, 1), NewMaterial(colors.FromRGB(0, 0, 255)))
	sc.Node(id).SetPos(1, 0, 0).SetScale(2, 2, 2)

	c := sc.WorldCenter(id)
	assert.InDelta(t, 0, c.X, 1e-5)
	assert.InDelta(t, 0, c.Y, 1e-5)
	assert.InDelta(t, -1, c.Z, 1e-5)

	p := sc.Chain(id).Apply(math32.Vec3(0.5, 0, 0))
	assert.InDelta(t, -2, p.Z, 1e-5)

	sc.Node(gp).Invisible = true
	assert.False(t, sc.IsVisible(id))
	assert.Empty(t, sc.RenderSolids())
}

func TestShapes(t *testing.T) {
	bx := NewBox("box", 1, 2, 3)
	assert.Len(t, bx.Vertex, 8)
	assert.Len(t, bx.Index, 36)
	for _, v := range bx.Vertex {
		assert.InDelta(t, 0.5, math32.Abs(v.X), 1e-6)
		assert.InDelta(t, 1, math32.Abs(v.Y), 1e-6)
		assert.InDelta(t, 1.5, math32.Abs(v.Z), 1e-6)
	}

	pl := NewPlane("plane", 1, 1.4)
	assert.Len(t, pl.Vertex, 4)
	assert.Len(t, pl.Index, 6)

	sp := NewSphere("sphere", 2, 32, 32)
	assert.Len(t, sp.Vertex, 33*33)
	assert.Len(t, sp.Index, 32*31*2*3)
	for _, v := range sp.Vertex {
		assert.InDelta(t, 2, v.Length(), 1e-4)
	}

	ln := NewLines("lines")
	assert.Equal(t, Segments, ln.Topology)
	ln.AddSegment(math32.Vec3(0, 0, 0), math32.Vec3(1, 1, 1))
	assert.Equal(t, 1, ln.NumSegments())
	ln.Reset()
	assert.Equal(t, 0, ln.NumSegments())
}

func TestLights(t *testing.T) {
	sc := NewScene("test")
	white := colors.FromRGB(255, 255, 255)
	NewAmbientLight(sc, "ambient", white, 0.5)
	NewPointLight(sc, "point", white, 1, 10, math32.Vec3(0, 5, 0))
	require.Len(t, sc.Lights, 2)

	amb := sc.Lights[0].Illuminate(math32.Vector3{}, math32.Vec3(0, 1, 0))
	assert.InDelta(t, 0.5, amb.X, 1e-5)

	up := sc.Lights[1].Illuminate(math32.Vector3{}, math32.Vec3(0, 1, 0))
	assert.InDelta(t, 0.5, up.Y, 1e-5) // half way to the range
	down := sc.Lights[1].Illuminate(math32.Vector3{}, math32.Vec3(0, -1, 0))
	assert.Equal(t, float32(0), down.X)
	far := sc.Lights[1].Illuminate(math32.Vec3(0, -20, 0), math32.Vec3(0, 1, 0))
	assert.Equal(t, float32(0), far.X)
}

func TestCameraProject(t *testing.T) {
	var cm Camera
	cm.Defaults()
	v := cm.ToView(math32.Vec3(0, 2, 0))
	ndc, depth, ok := cm.Project(v)
	require.True(t, ok)
	assert.InDelta(t, 8, depth, 1e-5)
	assert.InDelta(t, 0, ndc.X, 1e-6)
	assert.InDelta(t, 0, ndc.Y, 1e-6)

	_, _, ok = cm.Project(cm.ToView(math32.Vec3(0, 2, 10)))
	assert.False(t, ok)
}

func TestPointLightParent(t *testing.T) {
	sc := NewScene("test")
	gp := sc.NewGroup(sc.Root, "group")
	sc.Node(gp).SetRot(0, math32.Pi/2, 0)

	fixed := NewPointLight(sc, "fixed", colors.FromRGB(255, 255, 255), 1, 10, math32.Vec3(1, 0, 0))
	moving := NewPointLight(sc, "moving", colors.FromRGB(255, 255, 255), 1, 10, math32.Vec3(1, 0, 0)).SetParent(sc, gp)
	assert.Equal(t, NoNode, fixed.Parent)
	assert.Equal(t, math32.Vec3(1, 0, 0), moving.Local)
	assert.InDelta(t, 0, moving.Pos.X, 1e-5)
	assert.InDelta(t, -1, moving.Pos.Z, 1e-5)

	sc.Node(gp).SetRot(0, 0, 0)
	sc.UpdateLights()
	assert.InDelta(t, 1, moving.Pos.X, 1e-5)
	assert.InDelta(t, 0, moving.Pos.Z, 1e-5)
	assert.Equal(t, math32.Vec3(1, 0, 0), fixed.Pos)
}
