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

// Mesh is an indexed triangle mesh.  Triangles are counter-clockwise when
// seen from the side their normal points to.
type Mesh struct {
	Vertices  []mgl64.Vec3
	Triangles [][3]int
}

// Bounds returns the axis-aligned bounds of all vertices.
func (m *Mesh) Bounds() Bounds {
	if len(m.Vertices) == 0 {
		return Bounds{}
	}
	lo, hi := m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := range 3 {
			lo[i] = math.Min(lo[i], v[i])
			hi[i] = math.Max(hi[i], v[i])
		}
	}
	return BoundsFromMinMax(lo, hi)
}

// Quad returns a w×h rectangle in the XY plane, centred at the origin and
// facing +Z.
func Quad(w, h float64) *Mesh {
	x, y := w/2, h/2
	return &Mesh{
		Vertices: []mgl64.Vec3{
			{-x, -y, 0}, {x, -y, 0}, {x, y, 0}, {-x, y, 0},
		},
		Triangles: [][3]int{{0, 1, 2}, {0, 2, 3}},
	}
}

// Box returns a box with the given full widths, centred at the origin.
func Box(size mgl64.Vec3) *Mesh {
	x, y, z := size[0]/2, size[1]/2, size[2]/2
	m := &Mesh{
		Vertices: []mgl64.Vec3{
			{-x, -y, -z}, {x, -y, -z}, {x, y, -z}, {-x, y, -z},
			{-x, -y, z}, {x, -y, z}, {x, y, z}, {-x, y, z},
		},
	}
	faces := [][4]int{
		{4, 5, 6, 7}, // +Z
		{1, 0, 3, 2}, // -Z
		{5, 1, 2, 6}, // +X
		{0, 4, 7, 3}, // -X
		{7, 6, 2, 3}, // +Y
		{0, 1, 5, 4}, // -Y
	}
	for _, f := range faces {
		m.Triangles = append(m.Triangles,
			[3]int{f[0], f[1], f[2]},
			[3]int{f[0], f[2], f[3]})
	}
	return m
}

// Sphere returns a UV sphere centred at the origin.  segments is the number
// of subdivisions around the equator, and must be at least 3.
func Sphere(radius float64, segments int) *Mesh {
	segments = max(segments, 3)
	rings := max(segments/2, 2)

	m := &Mesh{}
	for r := 0; r <= rings; r++ {
		phi := math.Pi * float64(r) / float64(rings)
		y := radius * math.Cos(phi)
		rr := radius * math.Sin(phi)
		for s := range segments {
			theta := 2 * math.Pi * float64(s) / float64(segments)
			m.Vertices = append(m.Vertices, mgl64.Vec3{rr * math.Sin(theta), y, rr * math.Cos(theta)})
		}
	}
	idx := func(r, s int) int { return r*segments + s%segments }
	for r := range rings {
		for s := range segments {
			a, b := idx(r, s), idx(r, s+1)
			c, d := idx(r+1, s), idx(r+1, s+1)
			if r > 0 {
				m.Triangles = append(m.Triangles, [3]int{a, c, b})
			}
			if r < rings-1 {
				m.Triangles = append(m.Triangles, [3]int{b, c, d})
			}
		}
	}
	return m
}
