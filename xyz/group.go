// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

// NewGroup adds a group node under parent. A group has no Mesh or Material
// of its own; its transform applies to all nodes under it.
func (sc *Scene) NewGroup(parent NodeID, name string) NodeID {
	return sc.add(Node{Name: name, Parent: parent})
}

// Children returns the handles of the direct children of id, in creation order.
func (sc *Scene) Children(id NodeID) []NodeID {
	var kids []NodeID
	for i := range sc.Nodes {
		if sc.Nodes[i].Parent == id && NodeID(i) != id {
			kids = append(kids, NodeID(i))
		}
	}
	return kids
}
