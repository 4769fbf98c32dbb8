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

// FindRenderable returns the nodes below root which carry a surface that
// can appear in an icon.  Nodes tagged [TagEditorOnly] and particle
// surfaces are left out.  Unless includeInactive is set, nodes which are
// not active in the hierarchy are skipped together with their subtrees.
func FindRenderable(root *Node, includeInactive bool) []*Node {
	if root == nil {
		return nil
	}
	if !includeInactive && !root.ActiveInHierarchy() {
		return nil
	}

	var res []*Node
	Walk(root, func(n *Node) bool {
		if !includeInactive && !n.Active {
			return false
		}
		s := n.Surface
		if s != nil && n.Tag != TagEditorOnly && s.Kind != KindParticles {
			res = append(res, n)
		}
		return true
	})
	return res
}
