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
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"

	"seehuhn.de/go/icon/scene"
)

func TestAggregateFlatObject(t *testing.T) {
	n := quad("card", 2, 4, white)
	n.Layer = scene.CaptureLayer
	n.Local.Position = mgl64.Vec3{1, 2, 3}

	vol := Aggregate(n, scene.CaptureLayer)
	assert.False(t, vol.Degenerate)
	assert.True(t, vecNear(vol.Center, mgl64.Vec3{1, 2, 3}), vol.Center)
	assert.True(t, vecNear(vol.Extents, mgl64.Vec3{1, 2, MinExtent}), vol.Extents)
}

func TestAggregateUnion(t *testing.T) {
	root := scene.New("root")
	a := root.Add(quad("a", 2, 2, white))
	a.Local.Position = mgl64.Vec3{-3, 0, 0}
	b := root.Add(quad("b", 2, 2, white))
	b.Local.Position = mgl64.Vec3{3, 0, 0}
	hidden := root.Add(quad("hidden", 2, 2, white))
	hidden.Local.Position = mgl64.Vec3{0, 50, 0}
	hidden.Surface.Enabled = false
	other := root.Add(quad("other", 2, 2, white))
	other.Local.Position = mgl64.Vec3{0, -50, 0}
	scene.SetLayer(root, 5)
	other.Layer = 6

	vol := Aggregate(root, 5)
	assert.False(t, vol.Degenerate)
	assert.True(t, vecNear(vol.Center, mgl64.Vec3{}), vol.Center)
	assert.True(t, vecNear(vol.Extents, mgl64.Vec3{4, 1, MinExtent}), vol.Extents)
}

func TestAggregateNothing(t *testing.T) {
	root := scene.New("empty")
	root.Local.Position = mgl64.Vec3{3, 4, 5}

	vol := Aggregate(root, scene.DefaultLayer)
	assert.True(t, vol.Degenerate)
	assert.Equal(t, mgl64.Vec3{3, 4, 5}, vol.Center)
	assert.Equal(t, mgl64.Vec3{MinExtent, MinExtent, MinExtent}, vol.Extents)

	vol = Aggregate(nil, scene.DefaultLayer)
	assert.True(t, vol.Degenerate)
}

func TestAggregateZeroSize(t *testing.T) {
	n := scene.New("dot")
	n.Local.Position = mgl64.Vec3{1, 1, 1}
	n.Surface = &scene.Surface{
		Mesh:    &scene.Mesh{Vertices: []mgl64.Vec3{{0, 0, 0}}},
		Enabled: true,
	}

	vol := Aggregate(n, scene.DefaultLayer)
	assert.True(t, vol.Degenerate)
	assert.True(t, vecNear(vol.Center, mgl64.Vec3{1, 1, 1}), vol.Center)
	for i := range 3 {
		assert.Greater(t, vol.Extents[i], 0.0)
	}
}

func TestAggregateSkinned(t *testing.T) {
	n := scene.New("arm")
	n.Surface = &scene.Surface{
		Mesh:    scene.Box(mgl64.Vec3{4, 4, 4}),
		Kind:    scene.KindSkinned,
		Enabled: true,
		Cached:  scene.Bounds{Extents: mgl64.Vec3{0.5, 0.5, 0.5}},
	}

	// stale bounds are used unless the surface is refreshed while hidden
	vol := Aggregate(n, scene.DefaultLayer)
	assert.Equal(t, mgl64.Vec3{0.5, 0.5, 0.5}, vol.Extents)

	p := scene.PrepareSingle(n, scene.CaptureLayer)
	vol = Aggregate(p, scene.CaptureLayer)
	assert.True(t, vecNear(vol.Extents, mgl64.Vec3{2, 2, 2}), vol.Extents)
}
