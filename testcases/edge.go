package testcases

import (
	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/icon"
	"seehuhn.de/go/icon/scene"
)

var edgeCases = []TestCase{
	{
		Name:    "no_surfaces",
		Build:   func() *scene.Node { return scene.New("empty") },
		Request: small,
		Want:    Want{Err: icon.ErrNoRenderers},
	},
	{
		Name: "disabled",
		Build: func() *scene.Node {
			n := solid("hidden", scene.Box(mgl64.Vec3{1, 1, 1}), grey)
			n.Surface.Enabled = false
			return n
		},
		Request: small,
		Want:    Want{Degenerate: true, Transparent: true},
	},
	{
		Name: "point",
		Build: func() *scene.Node {
			n := solid("point", &scene.Mesh{Vertices: []mgl64.Vec3{{1, 2, 3}}}, grey)
			return n
		},
		Request: small,
		Want:    Want{Degenerate: true, Transparent: true},
	},
	{
		Name: "translucent",
		Build: func() *scene.Node {
			return solid("glass", scene.Box(mgl64.Vec3{1, 1, 1}), glass)
		},
		Request: small,
		Want:    Want{Inside: true},
	},
	{
		Name: "far_away",
		Build: func() *scene.Node {
			n := solid("far", scene.Sphere(1, 16), teal)
			n.Local.Position = mgl64.Vec3{5000, -2000, 3000}
			return n
		},
		Request: small,
		Want:    Want{Inside: true},
	},
	{
		Name:    "combine_nothing",
		Build:   robot,
		Combine: func(*scene.Node) []*scene.Node { return nil },
		Request: small,
		Want:    Want{Err: icon.ErrEmpty},
	},
	{
		Name: "combine_inactive",
		Build: func() *scene.Node {
			root := scene.New("root")
			c := root.Add(solid("c", scene.Box(mgl64.Vec3{1, 1, 1}), grey))
			c.Active = false
			return root
		},
		Combine: func(root *scene.Node) []*scene.Node { return root.Children() },
		Request: small,
		Want:    Want{Err: icon.ErrEmpty},
	},
}
