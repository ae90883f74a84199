// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package datasphere builds and animates the data sphere scene:
// floating panels and sheets circling a pulsing wireframe core sphere,
// with a ring of orbiting data points joined by connector lines.
package datasphere

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/randx"
	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"github.com/edualert/datasphere/xyz"
)

// Entities holds the handles of every node created by [Build],
// grouped by kind, in build order.
type Entities struct {

	// Root is the group that spins the whole scene.
	Root xyz.NodeID

	// Panels are the floating books.
	Panels []xyz.NodeID

	// Sheets are the flat documents.
	Sheets []xyz.NodeID

	// Core is the central wire sphere.
	Core xyz.NodeID

	// Points are the orbiting data points.
	Points []xyz.NodeID

	// Connector is the line object joining the points in a ring.
	Connector xyz.NodeID

	// Lines is the connector mesh, whose buffer is rebuilt every frame.
	Lines *xyz.Lines
}

// Releasable returns every handle owning render resources, in release order:
// panels, sheets, core, points, then the connector.
func (en *Entities) Releasable() []xyz.NodeID {
	ids := make([]xyz.NodeID, 0, len(en.Panels)+len(en.Sheets)+len(en.Points)+2)
	ids = append(ids, en.Panels...)
	ids = append(ids, en.Sheets...)
	ids = append(ids, en.Core)
	ids = append(ids, en.Points...)
	ids = append(ids, en.Connector)
	return ids
}

// Build populates the scene with the fixed entity population described
// by cfg. All random sampling happens here, through rnd; animation never
// draws random numbers.
func Build(sc *xyz.Scene, cfg *Config, rnd randx.Rand) *Entities {
	en := &Entities{Root: sc.Root}
	pl := &cfg.Palette

	pc := &cfg.Panels
	for i := 0; i < pc.Count; i++ {
		w := pc.Width + rnd.Float32()*pc.WidthJitter
		h := pc.Height + rnd.Float32()*pc.HeightJitter
		clr := pl.Primary
		if i%2 != 0 {
			clr = pl.Secondary
		}
		mt := xyz.NewMaterial(clr).SetMetalness(0.3).SetRoughness(0.6)
		name := fmt.Sprintf("panel-%d", i)
		id := sc.NewSolid(en.Root, name, xyz.NewBox(name, w, h, pc.Depth), mt)

		angle := float32(i) / float32(pc.Count) * 2 * math32.Pi
		nd := sc.Node(id)
		nd.SetPos(math32.Cos(angle)*pc.Radius, -1+rnd.Float32()*2, math32.Sin(angle)*pc.Radius)
		nd.SetRot(rnd.Float32()*0.3, angle+math32.Pi/2, rnd.Float32()*0.2)
		en.Panels = append(en.Panels, id)
	}

	shc := &cfg.Sheets
	for i := 0; i < shc.Count; i++ {
		mt := xyz.NewMaterial(pl.Paper).SetMetalness(0.1).SetRoughness(0.8).SetDoubleSide(true)
		name := fmt.Sprintf("sheet-%d", i)
		id := sc.NewSolid(en.Root, name, xyz.NewPlane(name, shc.Width, shc.Height), mt)

		angle := float32(i)/float32(shc.Count)*2*math32.Pi + math32.Pi/4
		nd := sc.Node(id)
		nd.SetPos(math32.Cos(angle)*shc.Radius, rnd.Float32()*3-1, math32.Sin(angle)*shc.Radius)
		nd.SetRot(0, angle, 0)
		en.Sheets = append(en.Sheets, id)
	}

	cc := &cfg.Core
	cmt := xyz.NewMaterial(pl.Primary).SetWireframe(true).SetOpacity(cc.Opacity)
	en.Core = sc.NewSolid(en.Root, "core", xyz.NewSphere("core", cc.Radius, cc.Segments, cc.Segments), cmt)
	sc.Node(en.Core).SetPos(0, cc.Height, 0)

	ptc := &cfg.Points
	for i := 0; i < ptc.Count; i++ {
		mt := xyz.NewMaterial(pl.Secondary).SetEmissive(pl.Primary, ptc.Emissive)
		name := fmt.Sprintf("point-%d", i)
		id := sc.NewSolid(en.Root, name, xyz.NewSphere(name, ptc.Size, ptc.Segments, ptc.Segments), mt)

		theta := rnd.Float32() * 2 * math32.Pi
		phi := rnd.Float32() * math32.Pi
		sc.Node(id).SetPos(
			ptc.Radius*math32.Sin(phi)*math32.Cos(theta),
			ptc.Radius*math32.Cos(phi)+cc.Height,
			ptc.Radius*math32.Sin(phi)*math32.Sin(theta))
		en.Points = append(en.Points, id)
	}

	en.Lines = xyz.NewLines("connector")
	lmt := xyz.NewMaterial(pl.Primary).SetOpacity(ptc.LineOpacity)
	en.Connector = sc.NewSolid(en.Root, "connector", en.Lines, lmt)
	RebuildConnector(sc, en)

	white := colors.FromRGB(255, 255, 255)
	xyz.NewAmbientLight(sc, "ambient", white, 0.6)
	xyz.NewPointLight(sc, "key", pl.Primary, 1, 50, math32.Vec3(5, 5, 5)).SetParent(sc, en.Root)
	xyz.NewPointLight(sc, "fill", pl.Secondary, 0.5, 50, math32.Vec3(-5, -5, 5)).SetParent(sc, en.Root)

	slog.Debug("datasphere: built scene", "panels", len(en.Panels), "sheets", len(en.Sheets),
		"points", len(en.Points), "nodes", sc.Len())
	return en
}

// RebuildConnector regenerates the connector buffer from scratch from the
// current point positions, pairing point i with point (i+1) mod N.
// The pairing is by index, not by proximity.
func RebuildConnector(sc *xyz.Scene, en *Entities) {
	ln := en.Lines
	ln.Reset()
	n := len(en.Points)
	for i := 0; i < n; i++ {
		a := sc.Node(en.Points[i]).Pose.Pos
		b := sc.Node(en.Points[(i+1)%n]).Pose.Pos
		ln.AddSegment(a, b)
	}
}
