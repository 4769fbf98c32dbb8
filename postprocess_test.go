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
	"image/color"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasContent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	assert.False(t, HasContent(img))

	img.SetRGBA(15, 15, color.RGBA{A: 1})
	assert.True(t, HasContent(img))

	// colour without alpha does not count
	img = image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Pix[0] = 200
	assert.False(t, HasContent(img))

	// sub-images only look at their own pixels
	img = image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.SetRGBA(0, 0, color.RGBA{A: 255})
	assert.False(t, HasContent(img.SubImage(image.Rect(4, 4, 8, 8)).(*image.RGBA)))
}

func TestFinishTransparent(t *testing.T) {
	buf := image.NewRGBA(image.Rect(0, 0, 64, 64))
	img, transparent := Finish(buf, 32)
	assert.True(t, transparent)
	require.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
	for _, v := range img.Pix {
		require.Zero(t, v)
	}
}

func TestFinishResizes(t *testing.T) {
	buf := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 16; y < 48; y++ {
		for x := 16; x < 48; x++ {
			buf.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	img, transparent := Finish(buf, 16)
	assert.False(t, transparent)
	assert.Equal(t, image.Rect(0, 0, 16, 16), img.Bounds())
	assert.Equal(t, color.RGBA{R: 255, A: 255}, img.RGBAAt(8, 8))
	assert.Zero(t, img.RGBAAt(0, 0).A)
}

// A single pixel with the smallest non-zero alpha still counts as content.
func TestFinishFaintPixel(t *testing.T) {
	buf := image.NewRGBA(image.Rect(0, 0, 64, 64))
	buf.SetRGBA(10, 50, color.RGBA{A: 1})
	img, transparent := Finish(buf, 32)
	assert.False(t, transparent)
	assert.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())
}

func TestResizeIdentity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	src := image.NewRGBA(image.Rect(0, 0, 37, 23))
	for i := 0; i < len(src.Pix); i += 4 {
		a := uint8(rng.IntN(256))
		src.Pix[i+3] = a
		for j := range 3 {
			src.Pix[i+j] = uint8(rng.IntN(int(a) + 1))
		}
	}

	dst := Resize(src, 37, 23)
	require.Equal(t, src.Bounds(), dst.Bounds())
	assert.Equal(t, src.Pix, dst.Pix)
	assert.NotSame(t, &src.Pix[0], &dst.Pix[0])
}

// Scaling down a red pixel next to transparent ones must not produce a
// darkened colour.
func TestResizeAlphaCorrect(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{G: 255, A: 0})
	src.SetNRGBA(0, 1, color.NRGBA{G: 255, A: 0})
	src.SetNRGBA(1, 1, color.NRGBA{G: 255, A: 0})

	dst := Resize(src, 1, 1)
	c := dst.RGBAAt(0, 0)
	assert.Greater(t, c.A, uint8(0))
	assert.InDelta(t, int(c.A), int(c.R), 1)
	assert.Zero(t, c.G)
	assert.Zero(t, c.B)
}

func TestResizeEmpty(t *testing.T) {
	dst := Resize(image.NewRGBA(image.Rect(0, 0, 0, 0)), 4, 4)
	assert.Equal(t, image.Rect(0, 0, 4, 4), dst.Bounds())
}

func TestResizeNonPositive(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 8))
	src.SetRGBA(1, 1, color.RGBA{A: 255})
	for _, sz := range [][2]int{{-3, 4}, {4, -3}, {0, 4}, {4, 0}, {-1000, -1000}} {
		dst := Resize(src, sz[0], sz[1])
		assert.True(t, dst.Bounds().Empty(), "%v", sz)
		assert.Empty(t, dst.Pix, "%v", sz)
	}
}

func TestThumbnail(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 1024, 1024))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	th := Thumbnail(src)
	assert.Equal(t, image.Rect(0, 0, ThumbnailSize, ThumbnailSize), th.Bounds())
	c := th.RGBAAt(100, 100)
	assert.GreaterOrEqual(t, c.A, uint8(254))
	assert.GreaterOrEqual(t, c.R, uint8(254))

	small := image.NewRGBA(image.Rect(0, 0, ThumbnailSize, ThumbnailSize))
	small.SetRGBA(3, 4, color.RGBA{A: 255})
	assert.Equal(t, small.Pix, Thumbnail(small).Pix)
}

// Thumbnails must be scaled exactly like finished icons.
func TestThumbnailMatchesResize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 300, 200))
	for y := range 200 {
		for x := range 300 {
			a := uint8((x + y) % 256)
			src.SetRGBA(x, y, color.RGBA{
				R: uint8(uint(x) * uint(a) / 300),
				G: uint8(uint(y) * uint(a) / 200),
				B: a / 2,
				A: a,
			})
		}
	}
	th := Thumbnail(src)
	ref := Resize(src, ThumbnailSize, ThumbnailSize)
	require.Equal(t, ref.Bounds(), th.Bounds())
	assert.Equal(t, ref.Pix, th.Pix)
}
