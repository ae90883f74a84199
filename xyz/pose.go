// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/core/math32"
)

// Pose contains the full specification of position, orientation and scale,
// always relative to the parent node.
type Pose struct {

	// Pos is the position of the center of the node, relative to its parent.
	Pos math32.Vector3

	// Rot is the rotation as Euler angles in radians, applied in XYZ order.
	// It is stored as angles rather than a quaternion so that animations can
	// accumulate drift on a single axis.
	Rot math32.Vector3

	// Scale is the scale relative to the parent.
	Scale math32.Vector3
}

// Defaults sets defaults only if current values are nil.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale.Set(1, 1, 1)
	}
}

// Quat returns the rotation of the pose as a quaternion.
func (ps *Pose) Quat() math32.Quat {
	return math32.NewQuatEuler(ps.Rot)
}

// Xform returns the compiled transform for this pose.
func (ps *Pose) Xform() Xform {
	return Xform{Pos: ps.Pos, Quat: ps.Quat(), Scale: ps.Scale}
}

// SetUniformScale sets all three scale components to s.
func (ps *Pose) SetUniformScale(s float32) {
	ps.Scale.Set(s, s, s)
}

// Xform is a compiled scale, rotate, translate transform.
// Rotation is held as a quaternion so repeated point transforms
// do not recompute trigonometry.
type Xform struct {
	Pos   math32.Vector3
	Quat  math32.Quat
	Scale math32.Vector3
}

// Apply transforms the given point: scale, then rotate, then translate.
func (xf *Xform) Apply(v math32.Vector3) math32.Vector3 {
	return v.Mul(xf.Scale).MulQuat(xf.Quat).Add(xf.Pos)
}

// Chain is a sequence of transforms from a node up to the root,
// innermost first.
type Chain []Xform

// Apply transforms the given point from node-local space to world space.
func (ch Chain) Apply(v math32.Vector3) math32.Vector3 {
	for i := range ch {
		v = ch[i].Apply(v)
	}
	return v
}
