// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/core/base/randx"
	"github.com/edualert/datasphere/datasphere"
	"github.com/edualert/datasphere/xyz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boxScene returns a scene with a single 2x2x2 box centered in front of the camera.
func boxScene(clr color.RGBA) *xyz.Scene {
	sc := xyz.NewScene("box")
	sc.Background = color.RGBA{0, 0, 0, 255}
	xyz.NewAmbientLight(sc, "ambient", color.RGBA{255, 255, 255, 255}, 1)
	id := sc.NewSolid(sc.Root, "box", xyz.NewBox("box", 2, 2, 2), xyz.NewMaterial(clr))
	sc.Node(id).SetPos(0, 2, 0)
	return sc
}

func TestNewRasterSize(t *testing.T) {
	_, err := NewRaster(0, 10)
	assert.ErrorIs(t, err, ErrSize)

	rs, err := NewRaster(64, 32)
	require.NoError(t, err)
	assert.Equal(t, image.Pt(64, 32), rs.Size())
	assert.Equal(t, image.Rect(0, 0, 64, 32), rs.Image().Bounds())

	rs.SetSize(500, 500)
	assert.Equal(t, image.Pt(500, 500), rs.Size())
	assert.Equal(t, image.Rect(0, 0, 500, 500), rs.Image().Bounds())

	rs.SetSize(0, -3)
	assert.Equal(t, image.Pt(1, 1), rs.Size())
}

func TestRenderBox(t *testing.T) {
	clr := color.RGBA{200, 100, 50, 255}
	sc := boxScene(clr)
	rs, err := NewRaster(128, 128)
	require.NoError(t, err)
	require.NoError(t, rs.Render(sc))

	img := rs.Image()
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, img.RGBAAt(2, 2))

	got := img.RGBAAt(58, 66)
	assert.InDelta(t, clr.R, got.R, 2)
	assert.InDelta(t, clr.G, got.G, 2)
	assert.InDelta(t, clr.B, got.B, 2)
	assert.Equal(t, uint8(255), got.A)
}

func TestRenderHidden(t *testing.T) {
	sc := boxScene(color.RGBA{200, 100, 50, 255})
	id, ok := sc.FindNode("box")
	require.True(t, ok)
	require.NoError(t, sc.Release(id))

	rs, err := NewRaster(64, 64)
	require.NoError(t, err)
	require.NoError(t, rs.Render(sc))
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, rs.Image().RGBAAt(29, 33))
}

func TestRenderDataSphere(t *testing.T) {
	sc := xyz.NewScene("sphere")
	datasphere.Build(sc, datasphere.NewConfig(), randx.NewSysRand(5))
	rs, err := NewRaster(160, 160)
	require.NoError(t, err)
	require.NoError(t, rs.Render(sc))

	drawn := 0
	img := rs.Image()
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] > 0 {
			drawn++
		}
	}
	assert.Greater(t, drawn, 1000)
}

func TestRenderReleased(t *testing.T) {
	rs, err := NewRaster(32, 32)
	require.NoError(t, err)
	rs.Release()
	assert.True(t, rs.Released())
	assert.Nil(t, rs.Image())
	assert.ErrorIs(t, rs.Render(xyz.NewScene("late")), ErrReleased)

	rs.SetSize(64, 64)
	assert.Equal(t, image.Point{}, rs.Size())
}
