package testcases

import (
	"github.com/go-gl/mathgl/mgl64"

	"seehuhn.de/go/icon"
	"seehuhn.de/go/icon/scene"
)

var viewCases = []TestCase{
	{Name: "front", Build: lShape, Request: view(icon.Front), Want: Want{Inside: true}},
	{Name: "rear", Build: lShape, Request: view(icon.Rear), Want: Want{Inside: true}},
	{Name: "left", Build: lShape, Request: view(icon.Left), Want: Want{Inside: true}},
	{Name: "right", Build: lShape, Request: view(icon.Right), Want: Want{Inside: true}},
	{Name: "angle_0_0_0", Build: lShape, Request: angle(0, 0, 0), Want: Want{Inside: true}},
	{Name: "angle_30_45_0", Build: lShape, Request: angle(30, 45, 0)},
	{Name: "angle_0_0_90", Build: lShape, Request: angle(0, 0, 90)},
	{Name: "zoom_50", Build: lShape, Request: zoom(50), Want: Want{Inside: true}},
	{Name: "zoom_200", Build: lShape, Request: zoom(200)},
}

// lShape returns an object which looks different from every side.
func lShape() *scene.Node {
	root := scene.New("ell")
	a := root.Add(solid("upright", scene.Box(mgl64.Vec3{0.5, 2, 0.5}), orange))
	a.Local.Position = mgl64.Vec3{-0.75, 0, 0}
	b := root.Add(solid("foot", scene.Box(mgl64.Vec3{1.5, 0.5, 0.5}), teal))
	b.Local.Position = mgl64.Vec3{0, -0.75, 0}
	c := root.Add(solid("marker", scene.Sphere(0.2, 12), grey))
	c.Local.Position = mgl64.Vec3{0.5, -0.75, 0.3}
	return root
}
