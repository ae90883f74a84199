// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"image/color"

	"cogentcore.org/core/colors"
)

// Material describes the material properties of a surface
// using a metalness / roughness model.
// Main color is used for both ambient and diffuse color.
// The Emissive color is only for glowing objects.
// Like [Mesh], a Material is owned by one node and freed through [Scene.Release].
type Material struct {

	// Color is the main color of the surface.
	Color color.RGBA

	// Emissive is the color that the surface emits independent of any lighting, i.e., glow.
	Emissive color.RGBA

	// EmissiveIntensity scales Emissive.
	EmissiveIntensity float32 `min:"0"`

	// Metalness is how metallic the surface is, 0-1.
	Metalness float32 `min:"0" max:"1"`

	// Roughness is how rough the surface is, 0-1. Rough surfaces have no specular highlight.
	Roughness float32 `min:"0" max:"1"`

	// Opacity is the alpha applied to the whole surface, 0-1.
	Opacity float32 `min:"0" max:"1"`

	// Wireframe renders the triangle edges instead of filled triangles.
	Wireframe bool

	// DoubleSide renders back-facing triangles too.
	DoubleSide bool

	// released is set once the material has been freed.
	released bool
}

// Defaults sets default surface parameters.
func (mt *Material) Defaults() {
	mt.Color = colors.FromRGB(255, 255, 255)
	mt.Emissive = color.RGBA{}
	mt.EmissiveIntensity = 1
	mt.Metalness = 0
	mt.Roughness = 1
	mt.Opacity = 1
}

// NewMaterial returns a material with defaults and the given color.
func NewMaterial(clr color.RGBA) *Material {
	mt := &Material{}
	mt.Defaults()
	mt.Color = clr
	return mt
}

// IsTransparent returns true if the material is not fully opaque.
func (mt *Material) IsTransparent() bool {
	return mt.Opacity < 1
}

// IsEmissive returns true if the material glows.
func (mt *Material) IsEmissive() bool {
	return mt.EmissiveIntensity > 0 && (mt.Emissive.R|mt.Emissive.G|mt.Emissive.B) != 0
}

// Released returns whether the material has been freed.
func (mt *Material) Released() bool {
	return mt.released
}

// SetMetalness sets [Material.Metalness].
func (mt *Material) SetMetalness(v float32) *Material {
	mt.Metalness = v
	return mt
}

// SetRoughness sets [Material.Roughness].
func (mt *Material) SetRoughness(v float32) *Material {
	mt.Roughness = v
	return mt
}

// SetOpacity sets [Material.Opacity].
func (mt *Material) SetOpacity(v float32) *Material {
	mt.Opacity = v
	return mt
}

// SetWireframe sets [Material.Wireframe].
func (mt *Material) SetWireframe(v bool) *Material {
	mt.Wireframe = v
	return mt
}

// SetDoubleSide sets [Material.DoubleSide].
func (mt *Material) SetDoubleSide(v bool) *Material {
	mt.DoubleSide = v
	return mt
}

// SetEmissive sets [Material.Emissive] and [Material.EmissiveIntensity].
func (mt *Material) SetEmissive(clr color.RGBA, intensity float32) *Material {
	mt.Emissive = clr
	mt.EmissiveIntensity = intensity
	return mt
}
