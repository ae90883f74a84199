// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// Chain returns the transform chain from the given node up to the root,
// innermost first, for mapping node-local points to world space.
func (sc *Scene) Chain(id NodeID) Chain {
	var ch Chain
	for nd := sc.Node(id); nd != nil; nd = sc.Node(nd.Parent) {
		ch = append(ch, nd.Pose.Xform())
	}
	return ch
}

// IsVisible returns true if the node and all of its ancestors are visible.
func (sc *Scene) IsVisible(id NodeID) bool {
	for nd := sc.Node(id); nd != nil; nd = sc.Node(nd.Parent) {
		if nd.Invisible {
			return false
		}
	}
	return true
}

// RenderSolid is a solid ready for drawing: its node plus the
// transform chain mapping its mesh into world space.
type RenderSolid struct {
	ID    NodeID
	Node  *Node
	Chain Chain
}

// RenderSolids returns all visible, unreleased solids in arena order
// with their world transforms. It is called once per frame by render surfaces.
func (sc *Scene) RenderSolids() []RenderSolid {
	var rs []RenderSolid
	for i := range sc.Nodes {
		nd := &sc.Nodes[i]
		if !nd.IsSolid() || nd.released {
			continue
		}
		id := NodeID(i)
		if !sc.IsVisible(id) {
			continue
		}
		rs = append(rs, RenderSolid{ID: id, Node: nd, Chain: sc.Chain(id)})
	}
	return rs
}
