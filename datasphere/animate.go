// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datasphere

import (
	"cogentcore.org/core/math32"
	"github.com/edualert/datasphere/xyz"
)

// Animator updates the scene transforms once per frame.
//
// Points, sheets and the core scale are pure functions of elapsed time.
// Panel height and rotation and the core rotation drift: they accumulate
// frame over frame in the node Pose, so they depend on the number of
// frames stepped rather than on the time alone.
type Animator struct {

	// Config holds the animation rates and amplitudes.
	Config *Config

	// Scene is the scene being animated.
	Scene *xyz.Scene

	// Entities are the handles returned by [Build].
	Entities *Entities

	// Frames is the number of frames stepped so far.
	Frames int

	stopped bool
}

// NewAnimator returns a running animator for the given built scene.
func NewAnimator(sc *xyz.Scene, en *Entities, cfg *Config) *Animator {
	return &Animator{Config: cfg, Scene: sc, Entities: en}
}

// Running returns true until [Animator.Stop] is called.
func (an *Animator) Running() bool {
	return !an.stopped
}

// Stop permanently stops the animator; later calls to Step do nothing.
func (an *Animator) Stop() {
	an.stopped = true
}

// Step advances the scene to elapsed time t, in seconds since the first frame.
func (an *Animator) Step(t float32) {
	if an.stopped {
		return
	}
	sc, en, cfg := an.Scene, an.Entities, an.Config
	sc.Node(en.Root).Pose.Rot.Y = cfg.SceneSpin(t)
	sc.UpdateLights()
	for i, id := range en.Panels {
		cfg.StepPanel(sc.Node(id), i, t)
	}
	for i, id := range en.Sheets {
		cfg.StepSheet(sc.Node(id), i, t)
	}
	cfg.StepCore(sc.Node(en.Core), t)
	for i, id := range en.Points {
		sc.Node(id).Pose.Pos = cfg.OrbitPosition(i, t)
	}
	RebuildConnector(sc, en)
	an.Frames++
}

// SceneSpin returns the rotation of the whole scene around Y at time t.
func (cfg *Config) SceneSpin(t float32) float32 {
	return t * cfg.SpinRate
}

// StepPanel applies one frame of bobbing and drift to panel i.
// The height change is keyed by time and index, but it is added to the
// current height, as is the rotation drift.
func (cfg *Config) StepPanel(nd *xyz.Node, i int, t float32) {
	pc := &cfg.Panels
	nd.Pose.Pos.Y += math32.Sin(t*pc.BobRate+float32(i)) * pc.BobStep
	nd.Pose.Rot.Y += pc.Drift
}

// SheetHeight returns the height of sheet i at time t.
func (cfg *Config) SheetHeight(i int, t float32) float32 {
	sc := &cfg.Sheets
	return math32.Sin(t*sc.BobRate+float32(i)*sc.BobPhase) * sc.BobAmplitude
}

// SheetTilt returns the rotation around X of sheet i at time t.
func (cfg *Config) SheetTilt(i int, t float32) float32 {
	return math32.Sin(t+float32(i)) * cfg.Sheets.TiltAmplitude
}

// StepSheet sets the height and tilt of sheet i for time t.
func (cfg *Config) StepSheet(nd *xyz.Node, i int, t float32) {
	nd.Pose.Pos.Y = cfg.SheetHeight(i, t)
	nd.Pose.Rot.X = cfg.SheetTilt(i, t)
}

// CoreScale returns the uniform scale of the core sphere at time t.
func (cfg *Config) CoreScale(t float32) float32 {
	cc := &cfg.Core
	return 1 + math32.Sin(t*cc.PulseRate)*cc.PulseAmplitude
}

// StepCore sets the core scale for time t and applies one frame of rotation drift.
func (cfg *Config) StepCore(nd *xyz.Node, t float32) {
	cc := &cfg.Core
	nd.Pose.SetUniformScale(cfg.CoreScale(t))
	nd.Pose.Rot.X += cc.DriftX
	nd.Pose.Rot.Y += cc.DriftY
}

// OrbitRadius returns the distance of point i from the vertical axis
// through the core sphere at time t. It always lies within
// Radius ± RadiusAmplitude.
func (cfg *Config) OrbitRadius(i int, t float32) float32 {
	pc := &cfg.Points
	return pc.Radius + math32.Sin(t*pc.RadiusRate+float32(i))*pc.RadiusAmplitude
}

// OrbitPosition returns the position of point i at time t. Points are spread
// evenly around the orbit by index, and the position depends only on i and t.
func (cfg *Config) OrbitPosition(i int, t float32) math32.Vector3 {
	pc := &cfg.Points
	n := max(pc.Count, 1)
	angle := t*pc.OrbitRate + float32(i)/float32(n)*2*math32.Pi
	r := cfg.OrbitRadius(i, t)
	y := math32.Sin(t*pc.HeightRate+float32(i))*pc.HeightAmplitude + cfg.Core.Height
	return math32.Vec3(r*math32.Sin(angle), y, r*math32.Cos(angle))
}
