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

	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/draw"
)

// HasContent reports whether any pixel of img has a non-zero alpha value.
func HasContent(img *image.RGBA) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):img.PixOffset(b.Max.X, y)]
		for i := 3; i < len(row); i += 4 {
			if row[i] != 0 {
				return true
			}
		}
	}
	return false
}

// Finish converts a working buffer into a size×size icon.  If the buffer
// is fully transparent, a new transparent image is returned and the second
// return value is true.
func Finish(img *image.RGBA, size int) (*image.RGBA, bool) {
	if !HasContent(img) {
		return image.NewRGBA(image.Rect(0, 0, size, size)), true
	}
	return Resize(img, size, size), false
}

// Resize scales src to w×h pixels.  Filtering is done on premultiplied
// colour values, so that transparent pixels do not bleed into the edges
// of opaque areas.  If src already has the requested size, a copy is
// returned.  If w or h is not positive, the result is an empty image.
func Resize(src image.Image, w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rectangle{})
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	sb := src.Bounds()
	if sb.Empty() {
		return dst
	}

	rgba := clone.AsRGBA(src)
	if sb.Dx() == w && sb.Dy() == h {
		draw.Draw(dst, dst.Bounds(), rgba, rgba.Bounds().Min, draw.Src)
		return dst
	}
	draw.BiLinear.Scale(dst, dst.Bounds(), rgba, rgba.Bounds(), draw.Src, nil)
	return dst
}

// Thumbnail returns a [ThumbnailSize] preview of img, for display in
// listings.  The scaling is the same as for finished icons.
func Thumbnail(img image.Image) *image.RGBA {
	return Resize(img, ThumbnailSize, ThumbnailSize)
}
