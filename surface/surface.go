// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface defines render surfaces that draw an [xyz.Scene],
// and provides [Raster], a software surface that renders into an
// [image.RGBA].
package surface

import (
	"errors"
	"image"

	"github.com/edualert/datasphere/xyz"
)

var (
	// ErrReleased is returned when rendering to a released surface.
	ErrReleased = errors.New("surface: render surface has been released")

	// ErrSize is returned when creating a surface with an empty size.
	ErrSize = errors.New("surface: width and height must be positive")
)

// Surface is a drawable target owned by a single component.
// All methods are called from the host loop.
type Surface interface {

	// SetSize sets the output size in pixels. Sizes below 1 are clamped to 1.
	SetSize(width, height int)

	// Size returns the current output size in pixels.
	Size() image.Point

	// Render draws the scene through its camera.
	Render(sc *xyz.Scene) error

	// Release frees the internal buffers. The surface cannot render afterwards.
	Release()
}

// Imager is a surface whose latest frame can be read back as an image.
type Imager interface {
	Image() *image.RGBA
}

// Factory creates a surface of the given size.
type Factory func(width, height int) (Surface, error)
