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

// Package testcases contains named scenes which are used to test the
// capture pipeline and to produce reference images.
package testcases

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/icon"
	"seehuhn.de/go/icon/scene"
)

// TestCase defines a single capture test.
type TestCase struct {
	Name string // lowercase a-z, 0-9 and _ only

	// Build returns a fresh copy of the scene.
	Build func() *scene.Node

	// Combine, if set, selects the nodes which are captured into one
	// combined icon.  Otherwise the whole scene is captured.
	Combine func(root *scene.Node) []*scene.Node

	Request icon.Request

	Want Want
}

// Want describes the expected outcome of a capture.
type Want struct {
	Err         error // expected error, compared with errors.Is
	Degenerate  bool
	Transparent bool

	// Inside is set if the whole object must be visible with a margin
	// around it.
	Inside bool
}

// small is the request used by most cases: a 256 pixel working buffer
// scaled down to a 64 pixel icon.
var small = icon.Request{Resolution: 256, Size: 64}

func view(d icon.Direction) icon.Request {
	r := small
	r.Direction = d
	return r
}

func angle(x, y, z float64) icon.Request {
	r := small
	r.UseCustomAngle = true
	r.CustomAngle = mgl64.Vec3{x, y, z}
	return r
}

func zoom(z int) icon.Request {
	r := small
	r.Zoom = z
	return r
}

var (
	grey   = color.NRGBA{R: 0xC0, G: 0xC0, B: 0xC0, A: 0xFF}
	orange = color.NRGBA{R: 0xF0, G: 0x80, B: 0x20, A: 0xFF}
	teal   = color.NRGBA{R: 0x20, G: 0xA0, B: 0xA0, A: 0xFF}
	glass  = color.NRGBA{R: 0x80, G: 0xC0, B: 0xFF, A: 0x60}
)

// solid returns a node carrying the given mesh.
func solid(name string, m *scene.Mesh, col color.NRGBA) *scene.Node {
	n := scene.New(name)
	n.Surface = &scene.Surface{Mesh: m, Enabled: true, Color: col}
	return n
}
