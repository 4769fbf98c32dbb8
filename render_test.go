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
	"image"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/icon/scene"
)

// renderFront renders root from the front, framed around its bounds.
func renderFront(root *scene.Node, layer, res int) *image.RGBA {
	vol := Aggregate(root, layer)
	f := NewFrame(vol, Request{})
	return NewRenderer().Render(root, f, layer, res)
}

func TestRenderQuad(t *testing.T) {
	n := quad("q", 2, 2, white)
	img := renderFront(n, scene.DefaultLayer, 64)
	require.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())

	assert.Equal(t, uint8(255), img.RGBAAt(32, 32).A)
	assert.Zero(t, img.RGBAAt(0, 0).A)
	assert.Zero(t, img.RGBAAt(63, 63).A)

	// the quad spans ±0.9 in device coordinates: 3.2 to 60.8 pixels
	assert.Equal(t, image.Rect(3, 3, 61, 61), opaqueBox(img))
}

// The two triangles of a quad must join without a visible seam.
func TestRenderSeamless(t *testing.T) {
	n := quad("q", 2, 2, white)
	img := renderFront(n, scene.DefaultLayer, 64)
	for y := 4; y < 60; y++ {
		for x := 4; x < 60; x++ {
			require.Equal(t, uint8(255), img.RGBAAt(x, y).A, "pixel (%d,%d)", x, y)
		}
	}
}

func TestRenderLayer(t *testing.T) {
	root := scene.New("root")
	a := root.Add(quad("a", 1, 1, white))
	a.Layer = 3

	img := renderFront(root, 3, 32)
	assert.True(t, HasContent(img))

	vol := Aggregate(root, 3)
	img = NewRenderer().Render(root, NewFrame(vol, Request{}), 4, 32)
	assert.False(t, HasContent(img))
}

func TestRenderDisabled(t *testing.T) {
	n := quad("q", 1, 1, white)
	n.Surface.Enabled = false
	f := NewFrame(Volume{Extents: mgl64.Vec3{1, 1, 1}}, Request{})
	img := NewRenderer().Render(n, f, scene.DefaultLayer, 32)
	assert.False(t, HasContent(img))
}

func TestRenderDepthOrder(t *testing.T) {
	root := scene.New("root")
	// the nearer quad is listed first, so it must win by depth sorting
	near := root.Add(quad("near", 2, 2, red))
	near.Local.Position = mgl64.Vec3{0, 0, 0.5}
	far := root.Add(quad("far", 4, 4, blue))
	far.Local.Position = mgl64.Vec3{0, 0, -0.5}

	img := renderFront(root, scene.DefaultLayer, 64)
	c := img.RGBAAt(32, 32)
	assert.Equal(t, uint8(255), c.A)
	assert.Greater(t, c.R, uint8(150))
	assert.Zero(t, c.B)

	// the far quad is visible around the near one
	c = img.RGBAAt(32, 4)
	assert.Greater(t, c.B, uint8(150))
	assert.Zero(t, c.R)
}

func TestRenderShading(t *testing.T) {
	n := scene.New("box")
	n.Surface = &scene.Surface{Mesh: scene.Box(mgl64.Vec3{1, 1, 1}), Enabled: true, Color: white}
	n.Local.Rotation = scene.Euler(mgl64.Vec3{0, 45, 0})

	img := renderFront(n, scene.DefaultLayer, 64)
	left := img.RGBAAt(24, 32)
	right := img.RGBAAt(40, 32)
	assert.Equal(t, uint8(255), left.A)
	assert.Equal(t, uint8(255), right.A)
	// the light comes from the left
	assert.Greater(t, left.R, right.R)
	// ambient light keeps faces turned away from the light visible
	assert.Greater(t, float64(right.R), DefaultAmbient*255-1)
}

func TestRenderOutsideDepthRange(t *testing.T) {
	n := quad("q", 2, 2, white)
	f := Frame{
		Position: mgl64.Vec3{0, 0, 5},
		Rotation: mgl64.QuatIdent(),
		HalfSize: 2,
		Near:     NearPlane,
		Far:      1,
	}
	img := NewRenderer().Render(n, f, scene.DefaultLayer, 32)
	assert.False(t, HasContent(img))

	f.Far = FarPlane
	img = NewRenderer().Render(n, f, scene.DefaultLayer, 32)
	assert.True(t, HasContent(img))
}

func TestRenderTranslucent(t *testing.T) {
	n := quad("q", 2, 2, white)
	n.Surface.Color.A = 128
	img := renderFront(n, scene.DefaultLayer, 32)
	c := img.RGBAAt(16, 16)
	assert.Equal(t, uint8(128), c.A)
	assert.LessOrEqual(t, c.R, c.A)
}
