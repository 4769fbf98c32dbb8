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

package testcases

import (
	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/icon/scene"
)

var hierarchyCases = []TestCase{
	{
		Name:    "robot",
		Build:   robot,
		Request: small,
		Want:    Want{Inside: true},
	},
	{
		Name:  "robot_combined",
		Build: robot,
		Combine: func(root *scene.Node) []*scene.Node {
			return scene.FindRenderable(root, false)
		},
		Request: small,
		Want:    Want{Inside: true},
	},
	{
		Name: "nested_scale",
		Build: func() *scene.Node {
			root := scene.New("root")
			root.Local.Scale = mgl64.Vec3{2, 2, 2}
			c := root.Add(solid("child", scene.Box(mgl64.Vec3{1, 1, 1}), teal))
			c.Local.Position = mgl64.Vec3{1, 0, 0}
			g := c.Add(solid("grandchild", scene.Sphere(0.25, 12), orange))
			g.Local.Position = mgl64.Vec3{0, 1, 0}
			return root
		},
		Request: small,
		Want:    Want{Inside: true},
	},
	{
		Name: "inactive_parts",
		Build: func() *scene.Node {
			root := solid("root", scene.Box(mgl64.Vec3{1, 1, 1}), grey)
			off := root.Add(solid("off", scene.Box(mgl64.Vec3{0.5, 0.5, 0.5}), orange))
			off.Active = false
			off.Local.Position = mgl64.Vec3{1, 0, 0}
			return root
		},
		Request: small,
		Want:    Want{Inside: true},
	},
	{
		Name: "combined_placed",
		Build: func() *scene.Node {
			root := scene.New("shelf")
			root.Local.Position = mgl64.Vec3{50, -3, 12}
			root.Local.Rotation = scene.Euler(mgl64.Vec3{0, 90, 0})
			a := root.Add(solid("a", scene.Box(mgl64.Vec3{1, 1, 1}), orange))
			a.Local.Position = mgl64.Vec3{0, 0, -1}
			b := root.Add(solid("b", scene.Sphere(0.5, 16), teal))
			b.Local.Position = mgl64.Vec3{0, 0, 1}
			return root
		},
		Combine: func(root *scene.Node) []*scene.Node {
			return root.Children()
		},
		Request: small,
		Want:    Want{Inside: true},
	},
	{
		Name: "skinned",
		Build: func() *scene.Node {
			n := scene.New("arm")
			n.Surface = &scene.Surface{
				Mesh:    scene.Box(mgl64.Vec3{2, 0.5, 0.5}),
				Kind:    scene.KindSkinned,
				Enabled: true,
				Color:   grey,
			}
			return n
		},
		Request: small,
		Want:    Want{Inside: true},
	},
}

// robot builds a small figure, together with the kind of helper objects
// which are found in real scenes.
func robot() *scene.Node {
	root := scene.New("robot")

	body := root.Add(solid("body", scene.Box(mgl64.Vec3{1, 1.4, 0.6}), grey))
	body.Local.Position = mgl64.Vec3{0, 1.2, 0}

	head := body.Add(solid("head", scene.Sphere(0.35, 16), orange))
	head.Local.Position = mgl64.Vec3{0, 1.05, 0}

	for _, x := range []float64{-0.65, 0.65} {
		arm := body.Add(solid("arm", scene.Box(mgl64.Vec3{0.25, 1.2, 0.25}), teal))
		arm.Local.Position = mgl64.Vec3{x, -0.1, 0}
	}
	for _, x := range []float64{-0.25, 0.25} {
		leg := root.Add(solid("leg", scene.Box(mgl64.Vec3{0.3, 0.5, 0.3}), teal))
		leg.Local.Position = mgl64.Vec3{x, 0.25, 0}
	}

	helper := root.Add(solid("gizmo", scene.Quad(0.2, 0.2), orange))
	helper.Tag = scene.TagEditorOnly
	helper.Surface.Enabled = false

	sparks := root.Add(scene.New("sparks"))
	sparks.Surface = &scene.Surface{Kind: scene.KindParticles, Enabled: true}

	return root
}
