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

// Clone returns a deep copy of the hierarchy below n.  The copy has no
// parent.  Surfaces are copied, while meshes are shared with the original.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}

	type job struct {
		src, parent *Node
	}
	var root *Node
	stack := []job{{src: n}}
	for len(stack) > 0 {
		j := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := &Node{
			Name:   j.src.Name,
			Local:  j.src.Local,
			Active: j.src.Active,
			Tag:    j.src.Tag,
			Layer:  j.src.Layer,
		}
		if j.src.Surface != nil {
			s := *j.src.Surface
			c.Surface = &s
		}
		if j.parent == nil {
			root = c
		} else {
			c.parent = j.parent
			j.parent.children = append(j.parent.children, c)
		}

		kids := j.src.children
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, job{src: kids[i], parent: c})
		}
	}
	return root
}
