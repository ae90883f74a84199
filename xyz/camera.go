// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
)

// Camera defines the properties of a perspective camera.
// The camera looks down its local negative Z axis with positive Y up,
// rotated by Pose.Rot.
type Camera struct {

	// Pose is the position and orientation of the camera.
	Pose Pose

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the aspect ratio (width / height).
	Aspect float32

	// Near is the near clipping distance.
	Near float32

	// Far is the far clipping distance.
	Far float32

	// focal is the projection scale derived from FOV.
	focal float32

	// inv is the inverse rotation of the camera.
	inv math32.Quat
}

// Defaults sets the camera to a 75 degree square perspective
// looking at the origin from 0, 2, 8.
func (cm *Camera) Defaults() {
	cm.FOV = 75
	cm.Aspect = 1
	cm.Near = 0.1
	cm.Far = 1000
	cm.Pose = Pose{}
	cm.Pose.Defaults()
	cm.Pose.Pos.Set(0, 2, 8)
	cm.UpdateProjection()
}

// UpdateProjection recomputes the cached projection parameters.
// It must be called after changing FOV, Aspect or the Pose rotation.
func (cm *Camera) UpdateProjection() {
	if cm.Aspect <= 0 {
		cm.Aspect = 1
	}
	cm.focal = 1 / math32.Tan(math32.DegToRad(cm.FOV)*0.5)
	q := cm.Pose.Quat()
	cm.inv = q.Inverse()
}

// ToView transforms a world point into camera space.
func (cm *Camera) ToView(p math32.Vector3) math32.Vector3 {
	return p.Sub(cm.Pose.Pos).MulQuat(cm.inv)
}

// Project maps a camera-space point to normalized device coordinates
// in [-1, 1] for x and y, with y up. The returned depth is the distance
// in front of the camera; ok is false for points outside the near/far range.
func (cm *Camera) Project(v math32.Vector3) (ndc math32.Vector2, depth float32, ok bool) {
	depth = -v.Z
	if depth < cm.Near || depth > cm.Far {
		return ndc, depth, false
	}
	ndc.X = v.X * cm.focal / (cm.Aspect * depth)
	ndc.Y = v.Y * cm.focal / depth
	return ndc, depth, true
}

// Focal returns the projection scale factor, 1 / tan(FOV / 2).
func (cm *Camera) Focal() float32 {
	return cm.focal
}
