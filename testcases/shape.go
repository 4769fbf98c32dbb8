package testcases

import (
	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/icon/scene"
)

var shapeCases = []TestCase{
	{
		Name:    "quad",
		Build:   func() *scene.Node { return solid("quad", scene.Quad(2, 2), orange) },
		Request: small,
		Want:    Want{Inside: true},
	},
	{
		Name:    "cube",
		Build:   func() *scene.Node { return solid("cube", scene.Box(mgl64.Vec3{1, 1, 1}), grey) },
		Request: small,
		Want:    Want{Inside: true},
	},
	{
		Name: "cube_rotated",
		Build: func() *scene.Node {
			n := solid("cube", scene.Box(mgl64.Vec3{1, 1, 1}), grey)
			n.Local.Rotation = scene.Euler(mgl64.Vec3{20, 30, 0})
			return n
		},
		Request: small,
		Want:    Want{Inside: true},
	},
	{
		Name:    "sphere",
		Build:   func() *scene.Node { return solid("sphere", scene.Sphere(1, 24), teal) },
		Request: small,
		Want:    Want{Inside: true},
	},
	{
		Name:    "wide_box",
		Build:   func() *scene.Node { return solid("plank", scene.Box(mgl64.Vec3{4, 0.5, 1}), orange) },
		Request: small,
		Want:    Want{Inside: true},
	},
	{
		Name:    "tall_box",
		Build:   func() *scene.Node { return solid("pillar", scene.Box(mgl64.Vec3{0.5, 3, 0.5}), grey) },
		Request: small,
		Want:    Want{Inside: true},
	},
	{
		Name:    "thin_quad",
		Build:   func() *scene.Node { return solid("wire", scene.Quad(2, 0.01), orange) },
		Request: small,
		Want:    Want{Inside: true},
	},
}
