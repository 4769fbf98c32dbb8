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

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Bounds is an axis-aligned box given by its centre and its half-widths
// along the three axes.
type Bounds struct {
	Center  mgl64.Vec3
	Extents mgl64.Vec3
}

// BoundsFromMinMax returns the box spanned by the two corners.
func BoundsFromMinMax(lo, hi mgl64.Vec3) Bounds {
	return Bounds{
		Center:  lo.Add(hi).Mul(0.5),
		Extents: hi.Sub(lo).Mul(0.5),
	}
}

// Min returns the corner with the smallest coordinates.
func (b Bounds) Min() mgl64.Vec3 { return b.Center.Sub(b.Extents) }

// Max returns the corner with the largest coordinates.
func (b Bounds) Max() mgl64.Vec3 { return b.Center.Add(b.Extents) }

// Size returns the full widths of the box.
func (b Bounds) Size() mgl64.Vec3 { return b.Extents.Mul(2) }

// IsZero reports whether the box has no extent at all.
func (b Bounds) IsZero() bool {
	return b.Extents == mgl64.Vec3{}
}

// Encapsulate grows b to contain o.
func (b *Bounds) Encapsulate(o Bounds) {
	lo, hi := b.Min(), b.Max()
	olo, ohi := o.Min(), o.Max()
	for i := range 3 {
		lo[i] = math.Min(lo[i], olo[i])
		hi[i] = math.Max(hi[i], ohi[i])
	}
	*b = BoundsFromMinMax(lo, hi)
}

// Transform returns the axis-aligned box enclosing b after mapping it
// through m.
func (b Bounds) Transform(m mgl64.Mat4) Bounds {
	c := mgl64.TransformCoordinate(b.Center, m)
	var e mgl64.Vec3
	for i := range 3 {
		for j := range 3 {
			// column-major: m.At(i, j) is row i, column j
			e[i] += math.Abs(m.At(i, j)) * b.Extents[j]
		}
	}
	return Bounds{Center: c, Extents: e}
}
