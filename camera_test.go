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
	"fmt"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestHalfSize(t *testing.T) {
	vol := Volume{Extents: mgl64.Vec3{1, 2, 3}}
	f := NewFrame(vol, Request{})
	assert.InDelta(t, 2*1.1*1.01, f.HalfSize, 1e-12)

	vol.Extents = mgl64.Vec3{5, 2, 3}
	f = NewFrame(vol, Request{})
	assert.InDelta(t, 5*1.1*1.01, f.HalfSize, 1e-12)
}

func TestHalfSizePositive(t *testing.T) {
	for _, e := range []mgl64.Vec3{
		{MinExtent, MinExtent, MinExtent},
		{1e-3, MinExtent, 7},
		{100, 0.5, 0.5},
	} {
		for _, zoom := range []int{1, 50, 100, 400, 0, -3} {
			f := NewFrame(Volume{Extents: e}, Request{Zoom: zoom})
			assert.Greater(t, f.HalfSize, 0.0, "extents %v, zoom %d", e, zoom)
		}
	}
}

func TestZoomInverse(t *testing.T) {
	vol := Volume{Extents: mgl64.Vec3{1.5, 0.7, 2}}
	base := NewFrame(vol, Request{Zoom: 100}).HalfSize
	for _, zoom := range []int{25, 50, 200, 300} {
		f := NewFrame(vol, Request{Zoom: zoom})
		assert.InDelta(t, base*100/float64(zoom), f.HalfSize, 1e-12, "zoom %d", zoom)
	}
	assert.Equal(t, base, NewFrame(vol, Request{Zoom: 0}).HalfSize)
}

func TestDirections(t *testing.T) {
	vol := Volume{Center: mgl64.Vec3{1, 2, 3}, Extents: mgl64.Vec3{1, 1, 1}}
	dist := 2 * math.Sqrt(3)
	cases := []struct {
		dir     Direction
		forward mgl64.Vec3
	}{
		{Front, mgl64.Vec3{0, 0, -1}},
		{Rear, mgl64.Vec3{0, 0, 1}},
		{Left, mgl64.Vec3{-1, 0, 0}},
		{Right, mgl64.Vec3{1, 0, 0}},
		{Direction(17), mgl64.Vec3{0, 0, -1}},
	}
	for _, c := range cases {
		t.Run(fmt.Sprint(c.dir), func(t *testing.T) {
			f := NewFrame(vol, Request{Direction: c.dir})
			wantPos := vol.Center.Sub(c.forward.Mul(dist))
			assert.True(t, vecNear(f.Position, wantPos), f.Position)

			fwd := f.Rotation.Rotate(mgl64.Vec3{0, 0, -1})
			assert.True(t, vecNear(fwd, c.forward), fwd)
			up := f.Rotation.Rotate(mgl64.Vec3{0, 1, 0})
			assert.True(t, vecNear(up, mgl64.Vec3{0, 1, 0}), up)
			assert.Equal(t, NearPlane, f.Near)
			assert.Equal(t, float64(FarPlane), f.Far)
		})
	}
}

func TestCustomAngleZeroIsFront(t *testing.T) {
	vol := Volume{Center: mgl64.Vec3{0, 1, 0}, Extents: mgl64.Vec3{2, 1, 0.5}}
	a := NewFrame(vol, Request{Direction: Front})
	b := NewFrame(vol, Request{UseCustomAngle: true})
	assert.True(t, vecNear(a.Position, b.Position))
	assert.True(t, a.Rotation.ApproxEqual(b.Rotation))
	assert.Equal(t, a.HalfSize, b.HalfSize)
}

func TestCustomAngle(t *testing.T) {
	vol := Volume{Extents: mgl64.Vec3{1, 1, 1}}
	dist := 2 * math.Sqrt(3)

	// turning by 90° about Y moves the camera to the +X side
	f := NewFrame(vol, Request{UseCustomAngle: true, CustomAngle: mgl64.Vec3{0, 90, 0}})
	assert.True(t, vecNear(f.Position, mgl64.Vec3{dist, 0, 0}), f.Position)
	fwd := f.Rotation.Rotate(mgl64.Vec3{0, 0, -1})
	assert.True(t, vecNear(fwd, mgl64.Vec3{-1, 0, 0}), fwd)

	// tilting by 90° about X looks at the object from below
	f = NewFrame(vol, Request{UseCustomAngle: true, CustomAngle: mgl64.Vec3{90, 0, 0}})
	assert.True(t, vecNear(f.Position, mgl64.Vec3{0, -dist, 0}), f.Position)
}

func TestViewProjection(t *testing.T) {
	vol := Volume{Center: mgl64.Vec3{1, 2, 3}, Extents: mgl64.Vec3{1, 1, 1}}
	f := NewFrame(vol, Request{})
	vp := f.ViewProjection()

	c := mgl64.TransformCoordinate(vol.Center, vp)
	assert.InDelta(t, 0, c[0], 1e-9)
	assert.InDelta(t, 0, c[1], 1e-9)
	assert.Greater(t, c[2], -1.0)
	assert.Less(t, c[2], 1.0)

	right := mgl64.TransformCoordinate(vol.Center.Add(mgl64.Vec3{f.HalfSize, 0, 0}), vp)
	assert.InDelta(t, 1, right[0], 1e-9)
	top := mgl64.TransformCoordinate(vol.Center.Add(mgl64.Vec3{0, f.HalfSize, 0}), vp)
	assert.InDelta(t, 1, top[1], 1e-9)

	// points closer to the camera have smaller depth
	near := mgl64.TransformCoordinate(vol.Center.Add(mgl64.Vec3{0, 0, 1}), vp)
	assert.Less(t, near[2], c[2])
}
