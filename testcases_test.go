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

package icon_test

import (
	"image"
	"maps"
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/icon"
	"seehuhn.de/go/icon/scene"
	"seehuhn.de/go/icon/testcases"
)

var validName = regexp.MustCompile(`^[a-z0-9_]+$`)

func TestCaseNames(t *testing.T) {
	seen := make(map[string]bool)
	for category, cases := range testcases.All {
		for _, tc := range cases {
			full := category + "_" + tc.Name
			assert.Regexp(t, validName, tc.Name)
			assert.False(t, seen[full], "duplicate test case %s", full)
			seen[full] = true
		}
	}
}

func TestCases(t *testing.T) {
	p := icon.NewPipeline()
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				root := tc.Build()
				layers := make(map[*scene.Node]int)
				active := make(map[*scene.Node]bool)
				for _, n := range scene.All(root) {
					layers[n] = n.Layer
					active[n] = n.Active
				}

				var res *icon.Result
				var err error
				if tc.Combine != nil {
					res, err = p.Capture(root, tc.Combine(root), tc.Request)
				} else {
					res, err = p.CaptureObject(root, tc.Request)
				}
				assert.Zero(t, p.Live())

				// the source scene is left alone
				for _, n := range scene.All(root) {
					assert.Equal(t, layers[n], n.Layer, n.Name)
					assert.Equal(t, active[n], n.Active, n.Name)
				}

				if tc.Want.Err != nil {
					assert.ErrorIs(t, err, tc.Want.Err)
					assert.Nil(t, res)
					return
				}
				require.NoError(t, err)

				size := tc.Request.Size
				require.Equal(t, image.Rect(0, 0, size, size), res.Image.Bounds())
				assert.Equal(t, tc.Want.Degenerate, res.Degenerate, "degenerate")
				assert.Equal(t, tc.Want.Transparent, res.Transparent, "transparent")
				assert.Equal(t, !tc.Want.Transparent, icon.HasContent(res.Image))

				if tc.Want.Inside {
					box := contentBox(res.Image)
					assert.True(t, box.In(image.Rect(1, 1, size-1, size-1)),
						"content %v touches the border", box)
				}
			})
		}
	}
}

func contentBox(img *image.RGBA) image.Rectangle {
	var r image.Rectangle
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A > 0 {
				r = r.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	return r
}
