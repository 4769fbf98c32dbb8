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

// Tree is implemented by node types with an ordered list of children.
type Tree[T any] interface {
	Children() []T
}

// Walk visits root and its descendants in depth-first pre-order, using an
// explicit stack.  If visit returns false, the children of the visited node
// are skipped.
func Walk[T Tree[T]](root T, visit func(T) bool) {
	stack := []T{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(n) {
			continue
		}
		kids := n.Children()
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
}

// All returns root and all its descendants in pre-order.
func All(root *Node) []*Node {
	if root == nil {
		return nil
	}
	var res []*Node
	Walk(root, func(n *Node) bool {
		res = append(res, n)
		return true
	})
	return res
}

// SetLayer moves root and all its descendants to the given layer.
func SetLayer(root *Node, layer int) {
	for _, n := range All(root) {
		n.Layer = layer
	}
}

// SetActive sets the active flag of root and all its descendants.
func SetActive(root *Node, active bool) {
	for _, n := range All(root) {
		n.Active = active
	}
}
