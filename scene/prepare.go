// seehuhn.de/go/icon - render 3D objects to icon images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package scene

// Isolate readies a cloned hierarchy for capture: every node is activated
// and moved to layer, and skinned surfaces are made to refresh their bounds
// while hidden.
func Isolate(root *Node, layer int) {
	for _, n := range All(root) {
		n.Active = true
		n.Layer = layer
		if s := n.Surface; s != nil && s.Kind == KindSkinned {
			s.UpdateWhenHidden = true
		}
	}
}

// PrepareSingle returns an isolated copy of src, placed at the world
// position of src.  The source hierarchy is not modified.
func PrepareSingle(src *Node, layer int) *Node {
	if src == nil {
		return nil
	}
	c := Clone(src)
	c.Name = src.Name + "_IconClone"
	c.Local = Transform{
		Position: src.WorldPosition(),
		Rotation: src.WorldRotation(),
		Scale:    src.WorldScale(),
	}
	Isolate(c, layer)
	return c
}

// PrepareCombined builds a temporary parent at the world position and
// orientation of src and adds a copy of every node in nodes as a child,
// keeping the local transforms of the originals.  The copies are readied
// like in [PrepareSingle].  Nodes which are nil or not active in the
// hierarchy are skipped.
//
// If nodes is empty or no node qualifies, nil is returned.
func PrepareCombined(src *Node, nodes []*Node, layer int) *Node {
	if src == nil || len(nodes) == 0 {
		return nil
	}

	parent := New("IconGen_TempParent")
	parent.Local.Position = src.WorldPosition()
	parent.Local.Rotation = src.WorldRotation()
	parent.Layer = layer

	for _, n := range Unique(nodes) {
		if !n.ActiveInHierarchy() {
			continue
		}
		c := Clone(n)
		c.Local = n.Local
		Isolate(c, layer)
		parent.Add(c)
	}
	if len(parent.children) == 0 {
		return nil
	}
	return parent
}

// Unique returns the non-nil nodes of list, keeping only the first
// occurrence of each node.
func Unique(list []*Node) []*Node {
	seen := make(map[*Node]bool, len(list))
	res := make([]*Node, 0, len(list))
	for _, n := range list {
		if n == nil || seen[n] {
			continue
		}
		seen[n] = true
		res = append(res, n)
	}
	return res
}
