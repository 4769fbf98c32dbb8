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

// Package scene implements the node hierarchy which is captured into icons.
//
// The coordinate system is right-handed with +Y up.  Objects face +Z, so
// the "front" of an object is the side visible from a point on the +Z axis.
package scene

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
)

// TagEditorOnly marks helper nodes which never appear in icons.
const TagEditorOnly = "EditorOnly"

// Transform is the placement of a node relative to its parent.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Quat // the zero value is treated as the identity
	Scale    mgl64.Vec3
}

// Identity returns the transform which leaves coordinates unchanged.
func Identity() Transform {
	return Transform{
		Rotation: mgl64.QuatIdent(),
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

func (t Transform) rotation() mgl64.Quat {
	if t.Rotation == (mgl64.Quat{}) {
		return mgl64.QuatIdent()
	}
	return t.Rotation
}

// Matrix returns the transform as translation × rotation × scale.
func (t Transform) Matrix() mgl64.Mat4 {
	p, s := t.Position, t.Scale
	return mgl64.Translate3D(p[0], p[1], p[2]).
		Mul4(t.rotation().Normalize().Mat4()).
		Mul4(mgl64.Scale3D(s[0], s[1], s[2]))
}

// Euler converts angles in degrees to a rotation.  The rotation about Z is
// applied first, then X, then Y.
func Euler(deg mgl64.Vec3) mgl64.Quat {
	qx := mgl64.QuatRotate(mgl64.DegToRad(deg[0]), mgl64.Vec3{1, 0, 0})
	qy := mgl64.QuatRotate(mgl64.DegToRad(deg[1]), mgl64.Vec3{0, 1, 0})
	qz := mgl64.QuatRotate(mgl64.DegToRad(deg[2]), mgl64.Vec3{0, 0, 1})
	return qy.Mul(qx).Mul(qz)
}

// Kind distinguishes the different types of renderable surfaces.
type Kind int

const (
	// KindMesh is a static triangle mesh.
	KindMesh Kind = iota

	// KindSkinned is a deformable mesh.  Its bounds are only refreshed
	// while it is visible, unless UpdateWhenHidden is set.
	KindSkinned

	// KindParticles is a particle effect.  Particle surfaces are never
	// included in icons.
	KindParticles
)

func (k Kind) String() string {
	switch k {
	case KindMesh:
		return "mesh"
	case KindSkinned:
		return "skinned"
	case KindParticles:
		return "particles"
	default:
		return "unknown"
	}
}

// Surface is the renderable part attached to a node.
type Surface struct {
	Mesh    *Mesh // shared between clones, never modified
	Kind    Kind
	Enabled bool
	Color   color.NRGBA

	// UpdateWhenHidden makes a skinned surface compute its bounds from the
	// current vertex positions even when it was not visible in the last
	// frame.
	UpdateWhenHidden bool

	// Cached holds the local bounds recorded during the last visible frame.
	// It is reported by skinned surfaces without UpdateWhenHidden.
	Cached Bounds
}

// LocalBounds returns the bounds of the surface in node coordinates.
func (s *Surface) LocalBounds() Bounds {
	if s.Kind == KindSkinned && !s.UpdateWhenHidden {
		return s.Cached
	}
	if s.Mesh == nil {
		return Bounds{}
	}
	return s.Mesh.Bounds()
}

// Node is an element of a scene hierarchy.
type Node struct {
	Name    string
	Local   Transform
	Active  bool
	Tag     string
	Layer   int
	Surface *Surface

	parent   *Node
	children []*Node
}

// New allocates an active node with the identity transform.
func New(name string) *Node {
	return &Node{
		Name:   name,
		Local:  Identity(),
		Active: true,
	}
}

// Children returns the direct children of n, in order.
func (n *Node) Children() []*Node {
	if n == nil {
		return nil
	}
	return n.children
}

// Parent returns the parent of n, or nil for a root node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Add appends child to the children of n, detaching it from its previous
// parent.  It returns child.
func (n *Node) Add(child *Node) *Node {
	child.Detach()
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Detach removes n from its parent.
func (n *Node) Detach() {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.children {
		if c == n {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

// ActiveInHierarchy reports whether n and all its ancestors are active.
func (n *Node) ActiveInHierarchy() bool {
	for m := n; m != nil; m = m.parent {
		if !m.Active {
			return false
		}
	}
	return true
}

// World returns the matrix which maps node coordinates to world
// coordinates.
func (n *Node) World() mgl64.Mat4 {
	m := n.Local.Matrix()
	for p := n.parent; p != nil; p = p.parent {
		m = p.Local.Matrix().Mul4(m)
	}
	return m
}

// WorldPosition returns the origin of n in world coordinates.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return mgl64.TransformCoordinate(mgl64.Vec3{}, n.World())
}

// WorldRotation returns the accumulated rotation of n and its ancestors.
func (n *Node) WorldRotation() mgl64.Quat {
	q := n.Local.rotation()
	for p := n.parent; p != nil; p = p.parent {
		q = p.Local.rotation().Mul(q)
	}
	return q.Normalize()
}

// WorldScale returns the component-wise product of the scales of n and its
// ancestors.  This is exact only when no rotated parent has non-uniform
// scale.
func (n *Node) WorldScale() mgl64.Vec3 {
	s := n.Local.Scale
	for p := n.parent; p != nil; p = p.parent {
		ps := p.Local.Scale
		s = mgl64.Vec3{s[0] * ps[0], s[1] * ps[1], s[2] * ps[2]}
	}
	return s
}
