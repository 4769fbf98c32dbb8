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

package icon

import (
	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/icon/scene"
)

// MinExtent is the smallest half-size of a [Volume] along any axis.
const MinExtent = 0.05

// Volume is the axis-aligned world space box which the camera is framed
// around.
type Volume struct {
	Center  mgl64.Vec3
	Extents mgl64.Vec3 // half the size, at least MinExtent on every axis

	// Degenerate is set when no usable geometry was found and a small box
	// at the root position was substituted.
	Degenerate bool
}

// Aggregate computes the union of the world space bounds of all enabled
// surfaces below root which are on the given layer.
func Aggregate(root *scene.Node, layer int) Volume {
	var b scene.Bounds
	found := false
	for _, n := range scene.All(root) {
		s := n.Surface
		if s == nil || !s.Enabled || n.Layer != layer {
			continue
		}
		nb := s.LocalBounds().Transform(n.World())
		if !found {
			b = nb
			found = true
		} else {
			b.Encapsulate(nb)
		}
	}

	if !found || b.IsZero() {
		vol := Volume{
			Center:     b.Center,
			Extents:    mgl64.Vec3{MinExtent, MinExtent, MinExtent},
			Degenerate: true,
		}
		if !found && root != nil {
			vol.Center = root.WorldPosition()
		}
		return vol
	}

	vol := Volume{Center: b.Center, Extents: b.Extents}
	for i := range 3 {
		vol.Extents[i] = max(vol.Extents[i], MinExtent)
	}
	return vol
}
