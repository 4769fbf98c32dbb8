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
)

func TestNormalize(t *testing.T) {
	r := Request{Zoom: -1, Resolution: 0, Size: -256}.normalize()
	assert.Equal(t, DefaultZoom, r.Zoom)
	assert.Equal(t, DefaultResolution, r.Resolution)
	assert.Equal(t, DefaultSize, r.Size)

	r = Request{Zoom: 150, Resolution: 512, Size: 64}.normalize()
	assert.Equal(t, Request{Zoom: 150, Resolution: 512, Size: 64}, r)
}

func TestView(t *testing.T) {
	assert.Equal(t, "rear", Request{Direction: Rear}.View())
	assert.Equal(t, "CustomAngle(-30,46,0)",
		Request{UseCustomAngle: true, CustomAngle: mgl64.Vec3{-30.2, 45.5, 0.4}}.View())
}

func TestParseDirection(t *testing.T) {
	for _, d := range []Direction{Front, Rear, Left, Right} {
		got, err := ParseDirection(d.String())
		assert.NoError(t, err)
		assert.Equal(t, d, got)
	}
	got, err := ParseDirection("LEFT")
	assert.NoError(t, err)
	assert.Equal(t, Left, got)

	_, err = ParseDirection("up")
	assert.Error(t, err)
}
