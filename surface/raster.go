// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"sort"

	"cogentcore.org/core/math32"
	"github.com/anthonynsimon/bild/blur"
	"github.com/edualert/datasphere/xyz"
	"golang.org/x/image/vector"
)

// Raster is a software [Surface]: it projects the scene through the camera,
// sorts the resulting triangles and lines back to front, and fills them with
// a vector rasterizer. Emissive solids get an additional blurred glow pass.
type Raster struct {

	// Glow is the blur radius in pixels of the emissive glow pass; 0 disables it.
	Glow float64

	// LineWidth is the width in pixels of lines and wireframe edges.
	LineWidth float32

	img      *image.RGBA
	glow     *image.RGBA
	rast     *vector.Rasterizer
	released bool

	// per-frame scratch buffers, reused across frames
	prims  []prim
	dots   []glowDot
	world  []math32.Vector3
	screen []math32.Vector2
	depth  []float32
	inView []bool
	edges  map[[2]uint32]struct{}
}

type primKind uint8

const (
	primFill primKind = iota
	primLine
)

// prim is one projected triangle or line in pixel coordinates.
type prim struct {
	kind  primKind
	depth float32
	pts   [3]math32.Vector2
	clr   color.NRGBA
}

// glowDot is the screen footprint of an emissive solid.
type glowDot struct {
	center math32.Vector2
	radius float32
	clr    color.NRGBA
}

// NewRaster returns a software surface of the given size.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrSize
	}
	rs := &Raster{Glow: 3, LineWidth: 1}
	rs.SetSize(width, height)
	return rs, nil
}

// NewRasterSurface is a [Factory] for [Raster] surfaces.
func NewRasterSurface(width, height int) (Surface, error) {
	return NewRaster(width, height)
}

func (rs *Raster) SetSize(width, height int) {
	if rs.released {
		return
	}
	width, height = max(width, 1), max(height, 1)
	if rs.img != nil && rs.img.Rect.Dx() == width && rs.img.Rect.Dy() == height {
		return
	}
	rs.img = image.NewRGBA(image.Rect(0, 0, width, height))
	rs.glow = nil
	if rs.rast == nil {
		rs.rast = vector.NewRasterizer(width, height)
	}
}

func (rs *Raster) Size() image.Point {
	if rs.img == nil {
		return image.Point{}
	}
	return rs.img.Rect.Size()
}

// Image returns the most recently rendered frame. The image is reused
// across frames and replaced on resize; it is nil after Release.
func (rs *Raster) Image() *image.RGBA {
	return rs.img
}

// Released returns whether Release has been called.
func (rs *Raster) Released() bool {
	return rs.released
}

func (rs *Raster) Release() {
	rs.released = true
	rs.img = nil
	rs.glow = nil
	rs.rast = nil
	rs.prims = nil
	rs.dots = nil
	rs.world = nil
	rs.screen = nil
	rs.depth = nil
	rs.inView = nil
	rs.edges = nil
}

func (rs *Raster) Render(sc *xyz.Scene) error {
	if rs.released {
		return ErrReleased
	}
	draw.Draw(rs.img, rs.img.Rect, image.NewUniform(sc.Background), image.Point{}, draw.Src)
	rs.prims = rs.prims[:0]
	rs.dots = rs.dots[:0]
	for _, so := range sc.RenderSolids() {
		rs.collect(sc, &so)
	}
	sort.SliceStable(rs.prims, func(i, j int) bool {
		return rs.prims[i].depth > rs.prims[j].depth
	})
	for i := range rs.prims {
		p := &rs.prims[i]
		if p.kind == primLine {
			rs.line(rs.img, p.pts[0], p.pts[1], p.clr)
		} else {
			rs.fill(rs.img, p.pts[:], p.clr)
		}
	}
	rs.renderGlow()
	return nil
}

// collect projects one solid into primitives.
func (rs *Raster) collect(sc *xyz.Scene, so *xyz.RenderSolid) {
	ms := so.Node.Mesh.AsMeshBase()
	mt := so.Node.Material
	if mt == nil {
		mt = xyz.NewMaterial(color.RGBA{255, 255, 255, 255})
	}
	cam := &sc.Camera
	sz := rs.Size()
	n := len(ms.Vertex)
	rs.world = resize(rs.world, n)
	rs.screen = resize(rs.screen, n)
	rs.depth = resize(rs.depth, n)
	rs.inView = resize(rs.inView, n)
	for i, v := range ms.Vertex {
		w := so.Chain.Apply(v)
		rs.world[i] = w
		ndc, d, ok := cam.Project(cam.ToView(w))
		rs.screen[i] = math32.Vec2((ndc.X+1)*0.5*float32(sz.X), (1-ndc.Y)*0.5*float32(sz.Y))
		rs.depth[i] = d
		rs.inView[i] = ok
	}
	base := nrgba(rgb(mt.Color), mt.Opacity)

	switch {
	case ms.Topology == xyz.Segments:
		for i := 0; i+1 < n; i += 2 {
			rs.addLine(uint32(i), uint32(i+1), base)
		}
	case mt.Wireframe:
		if rs.edges == nil {
			rs.edges = make(map[[2]uint32]struct{})
		}
		clear(rs.edges)
		for t := 0; t+2 < len(ms.Index); t += 3 {
			tri := ms.Index[t : t+3]
			for e := 0; e < 3; e++ {
				a, b := tri[e], tri[(e+1)%3]
				if a > b {
					a, b = b, a
				}
				key := [2]uint32{a, b}
				if _, has := rs.edges[key]; has {
					continue
				}
				rs.edges[key] = struct{}{}
				rs.addLine(a, b, base)
			}
		}
	default:
		rs.addTriangles(sc, ms, mt)
	}

	if mt.IsEmissive() && ms.Topology == xyz.Triangles && n > 0 {
		rs.addGlow(sc, so, mt)
	}
}

func (rs *Raster) addLine(a, b uint32, clr color.NRGBA) {
	if !rs.inView[a] || !rs.inView[b] {
		return
	}
	rs.prims = append(rs.prims, prim{
		kind:  primLine,
		depth: (rs.depth[a] + rs.depth[b]) * 0.5,
		pts:   [3]math32.Vector2{rs.screen[a], rs.screen[b]},
		clr:   clr,
	})
}

func (rs *Raster) addTriangles(sc *xyz.Scene, ms *xyz.MeshBase, mt *xyz.Material) {
	eye := sc.Camera.Pose.Pos
	for t := 0; t+2 < len(ms.Index); t += 3 {
		a, b, c := ms.Index[t], ms.Index[t+1], ms.Index[t+2]
		if !rs.inView[a] || !rs.inView[b] || !rs.inView[c] {
			continue
		}
		wa, wb, wc := rs.world[a], rs.world[b], rs.world[c]
		norm := wb.Sub(wa).Cross(wc.Sub(wa))
		if norm.Length() == 0 {
			continue
		}
		norm = norm.Normal()
		if norm.Dot(eye.Sub(wa)) < 0 {
			if !mt.DoubleSide {
				continue
			}
			norm = norm.MulScalar(-1)
		}
		center := wa.Add(wb).Add(wc).DivScalar(3)
		rs.prims = append(rs.prims, prim{
			kind:  primFill,
			depth: (rs.depth[a] + rs.depth[b] + rs.depth[c]) / 3,
			pts:   [3]math32.Vector2{rs.screen[a], rs.screen[b], rs.screen[c]},
			clr:   shade(sc, mt, center, norm),
		})
	}
}

func (rs *Raster) addGlow(sc *xyz.Scene, so *xyz.RenderSolid, mt *xyz.Material) {
	if rs.Glow <= 0 {
		return
	}
	cam := &sc.Camera
	center := so.Chain.Apply(math32.Vector3{})
	ndc, d, ok := cam.Project(cam.ToView(center))
	if !ok {
		return
	}
	sz := rs.Size()
	bound := rs.world[0].Sub(center).Length()
	radius := bound * cam.Focal() / d * 0.5 * float32(sz.Y)
	glow := rgb(mt.Emissive).MulScalar(mt.EmissiveIntensity)
	rs.dots = append(rs.dots, glowDot{
		center: math32.Vec2((ndc.X+1)*0.5*float32(sz.X), (1-ndc.Y)*0.5*float32(sz.Y)),
		radius: radius * 2.5,
		clr:    nrgba(glow, mt.EmissiveIntensity),
	})
}

// renderGlow draws the glow footprints onto a separate layer, blurs it,
// and composites it over the frame.
func (rs *Raster) renderGlow() {
	if len(rs.dots) == 0 || rs.Glow <= 0 {
		return
	}
	if rs.glow == nil || rs.glow.Rect != rs.img.Rect {
		rs.glow = image.NewRGBA(rs.img.Rect)
	} else {
		clear(rs.glow.Pix)
	}
	var circle [16]math32.Vector2
	for _, dt := range rs.dots {
		for i := range circle {
			a := float32(i) / float32(len(circle)) * 2 * math32.Pi
			circle[i] = math32.Vec2(dt.center.X+dt.radius*math32.Cos(a), dt.center.Y+dt.radius*math32.Sin(a))
		}
		rs.fill(rs.glow, circle[:], dt.clr)
	}
	blurred := blur.Gaussian(rs.glow, rs.Glow)
	draw.Draw(rs.img, rs.img.Rect, blurred, image.Point{}, draw.Over)
}

// fill fills the polygon pts into dst. The rasterizer only covers the
// polygon bounds clipped to dst.
func (rs *Raster) fill(dst *image.RGBA, pts []math32.Vector2, clr color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	mn, mx := pts[0], pts[0]
	for _, p := range pts[1:] {
		mn.Set(math32.Min(mn.X, p.X), math32.Min(mn.Y, p.Y))
		mx.Set(math32.Max(mx.X, p.X), math32.Max(mx.Y, p.Y))
	}
	bb := image.Rect(int(math32.Floor(mn.X)), int(math32.Floor(mn.Y)), int(math32.Ceil(mx.X))+1, int(math32.Ceil(mx.Y))+1)
	bb = bb.Intersect(dst.Rect)
	if bb.Empty() {
		return
	}
	ox, oy := float32(bb.Min.X), float32(bb.Min.Y)
	rs.rast.Reset(bb.Dx(), bb.Dy())
	rs.rast.DrawOp = draw.Over
	rs.rast.MoveTo(pts[0].X-ox, pts[0].Y-oy)
	for _, p := range pts[1:] {
		rs.rast.LineTo(p.X-ox, p.Y-oy)
	}
	rs.rast.ClosePath()
	rs.rast.Draw(dst, bb, image.NewUniform(clr), image.Point{})
}

// line strokes a segment from a to b as a thin quad.
func (rs *Raster) line(dst *image.RGBA, a, b math32.Vector2, clr color.NRGBA) {
	d := b.Sub(a)
	l := d.Length()
	if l < 1e-3 {
		return
	}
	hw := math32.Max(rs.LineWidth, 0.5) * 0.5
	off := math32.Vec2(-d.Y, d.X).MulScalar(hw / l)
	quad := [4]math32.Vector2{a.Add(off), b.Add(off), b.Sub(off), a.Sub(off)}
	rs.fill(dst, quad[:], clr)
}

// shade computes the lit color of a surface point with normal norm.
func shade(sc *xyz.Scene, mt *xyz.Material, pos, norm math32.Vector3) color.NRGBA {
	var light math32.Vector3
	for _, lt := range sc.Lights {
		light = light.Add(lt.Illuminate(pos, norm))
	}
	c := rgb(mt.Color).Mul(light).MulScalar(1 - 0.5*mt.Metalness)
	if mt.Roughness < 1 {
		view := sc.Camera.Pose.Pos.Sub(pos).Normal()
		shiny := 4 + 60*(1-mt.Roughness)
		for _, lt := range sc.Lights {
			pl, ok := lt.(*xyz.PointLight)
			if !ok || !pl.On {
				continue
			}
			half := pl.Pos.Sub(pos).Normal().Add(view).Normal()
			hl := math32.Pow(math32.Max(0, norm.Dot(half)), shiny) * (1 - mt.Roughness) * pl.Intensity
			c = c.Add(math32.Vec3(hl, hl, hl).MulScalar(0.5))
		}
	}
	c = c.Add(rgb(mt.Emissive).MulScalar(mt.EmissiveIntensity))
	return nrgba(c, mt.Opacity)
}

// rgb converts a color to a 0-1 vector, ignoring alpha.
func rgb(c color.RGBA) math32.Vector3 {
	return math32.Vec3(float32(c.R), float32(c.G), float32(c.B)).DivScalar(255)
}

// nrgba converts a 0-1 color vector and opacity to a clamped color.
func nrgba(c math32.Vector3, opacity float32) color.NRGBA {
	ch := func(v float32) uint8 {
		return uint8(math32.Clamp(v, 0, 1)*255 + 0.5)
	}
	return color.NRGBA{ch(c.X), ch(c.Y), ch(c.Z), ch(opacity)}
}

func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}
