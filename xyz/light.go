// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// Light represents a light that illuminates a scene.
// These are stored on the [Scene] object and not within the node arena,
// and hold no render buffers.
type Light interface {

	// AsLightBase returns the [LightBase] for this Light,
	// which provides the core functionality of a light.
	AsLightBase() *LightBase

	// Illuminate returns the light intensity reaching a surface
	// at world position pos with world normal norm, per color channel in 0-1 units.
	Illuminate(pos, norm math32.Vector3) math32.Vector3
}

// LightBase provides the core implementation of the [Light] interface.
type LightBase struct {

	// Name is the name of the light.
	Name string

	// On is whether the light is turned on.
	On bool

	// Intensity is the brightness of the light in normalized units.
	// It is just multiplied by the color.
	Intensity float32 `min:"0" step:"0.1"`

	// Color is the color of the light at full intensity.
	Color color.RGBA
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

// rgb returns the color times intensity as a 0-1 vector.
func (lb *LightBase) rgb() math32.Vector3 {
	return math32.Vec3(float32(lb.Color.R), float32(lb.Color.G), float32(lb.Color.B)).MulScalar(lb.Intensity / 255)
}

// AmbientLight provides uniform lighting; typically only one of these in a [Scene].
type AmbientLight struct {
	LightBase
}

// NewAmbientLight adds an ambient light to the given scene.
func NewAmbientLight(sc *Scene, name string, clr color.RGBA, intensity float32) *AmbientLight {
	lt := &AmbientLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Intensity = intensity
	sc.AddLight(lt)
	return lt
}

func (al *AmbientLight) Illuminate(pos, norm math32.Vector3) math32.Vector3 {
	if !al.On {
		return math32.Vector3{}
	}
	return al.rgb()
}

// PointLight is an omnidirectional light with a position whose
// contribution falls off linearly to zero at Distance.
type PointLight struct {
	LightBase

	// Pos is the position of the light in world coordinates.
	// For a light with a Parent it is computed by [Scene.UpdateLights].
	Pos math32.Vector3

	// Parent is the node the light moves with, or [NoNode]
	// for a light fixed in world space.
	Parent NodeID

	// Local is the position of the light relative to Parent.
	Local math32.Vector3

	// Distance is the range of the light; 0 means unlimited.
	Distance float32
}

// NewPointLight adds a point light to the given scene at pos.
func NewPointLight(sc *Scene, name string, clr color.RGBA, intensity, distance float32, pos math32.Vector3) *PointLight {
	lt := &PointLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Intensity = intensity
	lt.Distance = distance
	lt.Pos = pos
	lt.Parent = NoNode
	lt.Local = pos
	sc.AddLight(lt)
	return lt
}

// SetParent attaches the light to the given node, keeping its
// current position as the position relative to that node.
func (pl *PointLight) SetParent(sc *Scene, parent NodeID) *PointLight {
	pl.Parent = parent
	pl.Local = pl.Pos
	pl.Pos = sc.Chain(parent).Apply(pl.Local)
	return pl
}

// UpdateLights recomputes the world position of every point light
// that has a parent, from the current parent transforms.
func (sc *Scene) UpdateLights() {
	for _, lt := range sc.Lights {
		pl, ok := lt.(*PointLight)
		if !ok || pl.Parent == NoNode {
			continue
		}
		pl.Pos = sc.Chain(pl.Parent).Apply(pl.Local)
	}
}

func (pl *PointLight) Illuminate(pos, norm math32.Vector3) math32.Vector3 {
	if !pl.On {
		return math32.Vector3{}
	}
	dir := pl.Pos.Sub(pos)
	dist := dir.Length()
	if dist == 0 {
		return pl.rgb()
	}
	att := float32(1)
	if pl.Distance > 0 {
		att = math32.Max(0, 1-dist/pl.Distance)
	}
	lambert := math32.Max(0, norm.Dot(dir.DivScalar(dist)))
	return pl.rgb().MulScalar(lambert * att)
}
